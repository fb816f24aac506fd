// Package ledger holds the trophy and currency accrual rules. Every
// mutation is a full read-modify-write against storage inside one
// synchronous call, followed by a change publish for the keys touched.
package ledger

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vasanthkv/flowmate/internal/bus"
	"github.com/vasanthkv/flowmate/internal/model"
	"github.com/vasanthkv/flowmate/internal/storage"
)

// earningLogCap bounds the persisted earning history to the most
// recent entries.
const earningLogCap = 100

type Ledger struct {
	kv      storage.KV
	changes *bus.Bus
	rewards *bus.RewardFeed
	clock   storage.Clock
}

func New(kv storage.KV, changes *bus.Bus, rewards *bus.RewardFeed, clock storage.Clock) *Ledger {
	if clock == nil {
		clock = time.Now
	}
	return &Ledger{kv: kv, changes: changes, rewards: rewards, clock: clock}
}

// Stats returns the lifetime trophy stats.
func (l *Ledger) Stats() model.TrophyStats {
	return storage.Load(l.kv, storage.KeyTrophyStats, model.TrophyStats{})
}

// TodayTrophies returns the trophies earned today; the count resets
// implicitly at the local date rollover.
func (l *Ledger) TodayTrophies() int {
	return storage.LoadDaily(l.kv, l.clock, storage.KeyTodayTrophies, 0)
}

func (l *Ledger) Trophies() []model.Trophy {
	list := storage.Load(l.kv, storage.KeyTrophyLog, model.TrophyLog{})
	return list.Trophies
}

func (l *Ledger) Currency() model.CurrencyData {
	return storage.Load(l.kv, storage.KeyCurrency, model.CurrencyData{})
}

func (l *Ledger) DailyEarned() model.CurrencyAmount {
	return storage.LoadDaily(l.kv, l.clock, storage.KeyDailyEarned, model.CurrencyAmount{})
}

func (l *Ledger) Earnings() []model.EarningEntry {
	logRec := storage.Load(l.kv, storage.KeyEarningLog, model.EarningLog{})
	return logRec.Entries
}

// AwardTrophy mints one trophy for a finished activity and updates the
// streak. The streak increments when the previous award landed
// yesterday or today, otherwise it reseeds at 1.
func (l *Ledger) AwardTrophy(durationMinutes int) (model.Trophy, string) {
	now := l.clock()
	today := l.clock.Today()
	yesterday := now.Local().AddDate(0, 0, -1).Format(storage.DateLayout)

	stats := l.Stats()
	stats.TotalTrophies++

	switch stats.LastActivityDate {
	case today:
		if stats.CurrentStreak == 0 {
			stats.CurrentStreak = 1
		}
	case yesterday:
		stats.CurrentStreak++
	default:
		stats.CurrentStreak = 1
	}
	if stats.CurrentStreak > stats.BestStreak {
		stats.BestStreak = stats.CurrentStreak
	}
	stats.LastActivityDate = today

	trophy := model.Trophy{
		ID:              uuid.NewString(),
		Tier:            TierFor(stats.TotalTrophies, durationMinutes),
		DurationMinutes: durationMinutes,
		EarnedAt:        now,
	}

	logRec := storage.Load(l.kv, storage.KeyTrophyLog, model.TrophyLog{})
	logRec.Trophies = append(logRec.Trophies, trophy)

	todayCount := l.TodayTrophies() + 1

	storage.Save(l.kv, storage.KeyTrophyStats, stats)
	storage.Save(l.kv, storage.KeyTrophyLog, logRec)
	storage.SaveDaily(l.kv, l.clock, storage.KeyTodayTrophies, todayCount)
	l.changes.Publish(storage.KeyTrophyStats, storage.KeyTrophyLog, storage.KeyTodayTrophies)

	return trophy, tierMessages[trophy.Tier]
}

// AwardActivityCurrency pays the fixed rate for kind. Unknown kinds
// pay nothing and leave state untouched.
func (l *Ledger) AwardActivityCurrency(kind ActivityKind) model.CurrencyData {
	rate, ok := earningRates[kind]
	if !ok {
		return l.Currency()
	}
	return l.AwardCurrency(rate.Coins, rate.Gems, string(kind))
}

// AwardCurrency adds to balances and earned totals, appends to the
// capped earning log, and emits a one-shot reward event.
func (l *Ledger) AwardCurrency(coins, gems int, source string) model.CurrencyData {
	if coins < 0 {
		coins = 0
	}
	if gems < 0 {
		gems = 0
	}
	now := l.clock()

	cur := l.Currency()
	cur.Coins += coins
	cur.Gems += gems
	cur.TotalEarned.Coins += coins
	cur.TotalEarned.Gems += gems
	cur.LastUpdated = now

	daily := l.DailyEarned()
	daily.Coins += coins
	daily.Gems += gems

	logRec := storage.Load(l.kv, storage.KeyEarningLog, model.EarningLog{})
	logRec.Entries = append(logRec.Entries, model.EarningEntry{
		Coins:    coins,
		Gems:     gems,
		Source:   source,
		EarnedAt: now,
	})
	if len(logRec.Entries) > earningLogCap {
		logRec.Entries = logRec.Entries[len(logRec.Entries)-earningLogCap:]
	}

	storage.Save(l.kv, storage.KeyCurrency, cur)
	storage.SaveDaily(l.kv, l.clock, storage.KeyDailyEarned, daily)
	storage.Save(l.kv, storage.KeyEarningLog, logRec)
	l.changes.Publish(storage.KeyCurrency, storage.KeyDailyEarned, storage.KeyEarningLog)
	l.rewards.Emit(bus.RewardEvent{Coins: coins, Gems: gems, Source: source})

	return cur
}

// SpendCurrency subtracts both amounts in one read-modify-write. It
// returns false without mutating anything when either amount exceeds
// the balance; spend is all-or-nothing.
func (l *Ledger) SpendCurrency(coins, gems int, reason string) bool {
	if coins < 0 || gems < 0 {
		return false
	}
	cur := l.Currency()
	if coins > cur.Coins || gems > cur.Gems {
		return false
	}
	cur.Coins -= coins
	cur.Gems -= gems
	cur.LastUpdated = l.clock()
	storage.Save(l.kv, storage.KeyCurrency, cur)
	l.changes.Publish(storage.KeyCurrency)
	log.Debug("currency spent", "coins", coins, "gems", gems, "reason", reason)
	return true
}
