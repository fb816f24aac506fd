package ledger

import (
	"fmt"
	"testing"
	"time"

	"github.com/vasanthkv/flowmate/internal/bus"
	"github.com/vasanthkv/flowmate/internal/model"
	"github.com/vasanthkv/flowmate/internal/storage"
)

type testClock struct {
	now time.Time
}

func (c *testClock) clock() storage.Clock {
	return func() time.Time { return c.now }
}

func (c *testClock) advanceDays(n int) {
	c.now = c.now.AddDate(0, 0, n)
}

func setupLedger(t *testing.T) (*Ledger, *testClock) {
	t.Helper()
	tc := &testClock{now: time.Date(2026, 8, 31, 10, 0, 0, 0, time.Local)}
	kv := storage.NewMemoryKV()
	return New(kv, bus.New(), bus.NewRewardFeed(64), tc.clock()), tc
}

func TestAwardTrophyFreshState(t *testing.T) {
	l, _ := setupLedger(t)

	trophy, message := l.AwardTrophy(5)

	if trophy.Tier != model.TierBasic {
		t.Fatalf("tier = %s, want basic", trophy.Tier)
	}
	if message == "" {
		t.Fatal("expected a non-empty message")
	}
	stats := l.Stats()
	if stats.TotalTrophies != 1 || stats.CurrentStreak != 1 || stats.BestStreak != 1 {
		t.Fatalf("stats = %+v", stats)
	}
	if got := l.TodayTrophies(); got != 1 {
		t.Fatalf("today trophies = %d, want 1", got)
	}
}

func TestStreakGrowsAcrossConsecutiveDays(t *testing.T) {
	l, tc := setupLedger(t)

	for day := 0; day < 4; day++ {
		l.AwardTrophy(5)
		tc.advanceDays(1)
	}

	stats := l.Stats()
	if stats.CurrentStreak != 4 {
		t.Fatalf("streak = %d, want 4", stats.CurrentStreak)
	}
	if stats.BestStreak != 4 {
		t.Fatalf("best streak = %d, want 4", stats.BestStreak)
	}
}

func TestStreakResetsAfterSkippedDay(t *testing.T) {
	l, tc := setupLedger(t)

	l.AwardTrophy(5)
	tc.advanceDays(1)
	l.AwardTrophy(5)
	tc.advanceDays(2) // skip a calendar day
	l.AwardTrophy(5)

	stats := l.Stats()
	if stats.CurrentStreak != 1 {
		t.Fatalf("streak = %d, want 1 after a gap", stats.CurrentStreak)
	}
	if stats.BestStreak != 2 {
		t.Fatalf("best streak = %d, want 2", stats.BestStreak)
	}
}

func TestSameDayAwardsKeepStreak(t *testing.T) {
	l, _ := setupLedger(t)

	l.AwardTrophy(5)
	l.AwardTrophy(5)

	stats := l.Stats()
	if stats.CurrentStreak != 1 {
		t.Fatalf("streak = %d, want 1 for two same-day awards", stats.CurrentStreak)
	}
	if stats.TotalTrophies != 2 {
		t.Fatalf("total = %d, want 2", stats.TotalTrophies)
	}
}

func TestTodayTrophiesResetsNextDay(t *testing.T) {
	l, tc := setupLedger(t)

	l.AwardTrophy(5)
	l.AwardTrophy(5)
	if got := l.TodayTrophies(); got != 2 {
		t.Fatalf("today = %d, want 2", got)
	}

	tc.advanceDays(1)
	if got := l.TodayTrophies(); got != 0 {
		t.Fatalf("today after rollover = %d, want 0", got)
	}
}

func TestAwardCurrencySums(t *testing.T) {
	l, _ := setupLedger(t)

	l.AwardCurrency(10, 0, "task")
	cur := l.AwardCurrency(5, 1, "bonus")

	if cur.Coins != 15 || cur.Gems != 1 {
		t.Fatalf("balance = %d/%d, want 15/1", cur.Coins, cur.Gems)
	}
	if cur.TotalEarned.Coins != 15 || cur.TotalEarned.Gems != 1 {
		t.Fatalf("total earned = %+v", cur.TotalEarned)
	}

	entries := l.Earnings()
	if len(entries) != 2 {
		t.Fatalf("log has %d entries, want 2", len(entries))
	}
	if entries[0].Source != "task" || entries[1].Source != "bonus" {
		t.Fatalf("log order wrong: %+v", entries)
	}
}

func TestEarningLogCapped(t *testing.T) {
	l, _ := setupLedger(t)

	for i := 0; i < 110; i++ {
		l.AwardCurrency(1, 0, fmt.Sprintf("source-%d", i))
	}

	entries := l.Earnings()
	if len(entries) != 100 {
		t.Fatalf("log has %d entries, want the 100 most recent", len(entries))
	}
	if entries[len(entries)-1].Source != "source-109" {
		t.Fatalf("latest entry = %s", entries[len(entries)-1].Source)
	}
	if entries[0].Source != "source-10" {
		t.Fatalf("oldest retained entry = %s", entries[0].Source)
	}
}

func TestSpendInsufficientIsRejectedWithoutMutation(t *testing.T) {
	l, _ := setupLedger(t)
	l.AwardCurrency(150, 1, "seed")

	if l.SpendCurrency(1000, 0, "vault upgrade") {
		t.Fatal("spend beyond balance must return false")
	}
	cur := l.Currency()
	if cur.Coins != 150 || cur.Gems != 1 {
		t.Fatalf("balance mutated on rejected spend: %d/%d", cur.Coins, cur.Gems)
	}
}

func TestSpendSubtractsExactlyOnce(t *testing.T) {
	l, _ := setupLedger(t)
	l.AwardCurrency(100, 5, "seed")

	if !l.SpendCurrency(30, 2, "theme") {
		t.Fatal("affordable spend returned false")
	}
	cur := l.Currency()
	if cur.Coins != 70 || cur.Gems != 3 {
		t.Fatalf("balance = %d/%d, want 70/3", cur.Coins, cur.Gems)
	}
	// TotalEarned unaffected by spending.
	if cur.TotalEarned.Coins != 100 || cur.TotalEarned.Gems != 5 {
		t.Fatalf("total earned changed on spend: %+v", cur.TotalEarned)
	}
}

func TestSpendRejectsNegativeAmounts(t *testing.T) {
	l, _ := setupLedger(t)
	l.AwardCurrency(100, 0, "seed")

	if l.SpendCurrency(-10, 0, "glitch") {
		t.Fatal("negative spend must be rejected")
	}
	if cur := l.Currency(); cur.Coins != 100 {
		t.Fatalf("balance = %d, want 100", cur.Coins)
	}
}

func TestAwardActivityCurrencyUsesRateTable(t *testing.T) {
	l, _ := setupLedger(t)

	cur := l.AwardActivityCurrency(ActivityBigThreeBonus)
	want := earningRates[ActivityBigThreeBonus]
	if cur.Coins != want.Coins || cur.Gems != want.Gems {
		t.Fatalf("balance = %d/%d, want %d/%d", cur.Coins, cur.Gems, want.Coins, want.Gems)
	}
}

func TestAwardActivityCurrencyUnknownKindNoOp(t *testing.T) {
	l, _ := setupLedger(t)
	l.AwardCurrency(10, 0, "seed")

	cur := l.AwardActivityCurrency(ActivityKind("mystery"))
	if cur.Coins != 10 || cur.Gems != 0 {
		t.Fatalf("unknown kind mutated balance: %+v", cur)
	}
	if len(l.Earnings()) != 1 {
		t.Fatal("unknown kind appended to the earning log")
	}
}

func TestDailyEarnedResetsNextDay(t *testing.T) {
	l, tc := setupLedger(t)

	l.AwardCurrency(10, 1, "task")
	if daily := l.DailyEarned(); daily.Coins != 10 || daily.Gems != 1 {
		t.Fatalf("daily earned = %+v", daily)
	}

	tc.advanceDays(1)
	if daily := l.DailyEarned(); daily.Coins != 0 || daily.Gems != 0 {
		t.Fatalf("daily earned after rollover = %+v", daily)
	}
	if cur := l.Currency(); cur.Coins != 10 {
		t.Fatalf("lifetime balance lost at rollover: %+v", cur)
	}
}

func TestLedgerPublishesChangedKeys(t *testing.T) {
	tc := &testClock{now: time.Date(2026, 8, 31, 10, 0, 0, 0, time.Local)}
	kv := storage.NewMemoryKV()
	changes := bus.New()
	l := New(kv, changes, bus.NewRewardFeed(8), tc.clock())

	seen := make(map[string]bool)
	changes.Subscribe(func(keys []string) {
		for _, k := range keys {
			seen[k] = true
		}
	})

	l.AwardTrophy(5)
	l.AwardCurrency(10, 0, "task")

	for _, key := range []string{storage.KeyTrophyStats, storage.KeyTrophyLog, storage.KeyTodayTrophies, storage.KeyCurrency, storage.KeyEarningLog} {
		if !seen[key] {
			t.Fatalf("no change published for %s", key)
		}
	}
}

func TestTierPolicyTable(t *testing.T) {
	cases := []struct {
		cumulative int
		duration   int
		want       model.TrophyTier
	}{
		{1, 5, model.TierBasic},
		{10, 5, model.TierSilver},
		{25, 5, model.TierGold},
		{50, 5, model.TierDiamond},
		{100, 5, model.TierDiamond},
		{11, 45, model.TierSilver},
		{11, 90, model.TierGold},
		{11, 44, model.TierBasic},
	}
	for _, tc := range cases {
		if got := TierFor(tc.cumulative, tc.duration); got != tc.want {
			t.Fatalf("TierFor(%d, %d) = %s, want %s", tc.cumulative, tc.duration, got, tc.want)
		}
	}
}
