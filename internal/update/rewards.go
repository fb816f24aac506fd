package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vasanthkv/flowmate/internal/views"
)

const flashDuration = 3 * time.Second

func (m Model) handleRewardsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "m":
		settings := m.rt.Dispatch.Settings()
		settings.MinimalMode = !settings.MinimalMode
		m.rt.Dispatch.UpdateSettings(settings)
		if settings.MinimalMode {
			m.Status = StatusBar{Text: "minimal mode on"}
		} else {
			m.Status = StatusBar{Text: "minimal mode off"}
		}
		return m, nil
	case "s":
		settings := m.rt.Dispatch.Settings()
		settings.SoundEnabled = !settings.SoundEnabled
		m.rt.Dispatch.UpdateSettings(settings)
		m.Status = StatusBar{Text: "sound toggled"}
		return m, nil
	}
	return m, nil
}

func (m Model) renderRewardsView() string {
	earnings := make([]views.EarningData, 0, len(m.Rewards.Earnings))
	// Most recent first, capped for the panel.
	for i := len(m.Rewards.Earnings) - 1; i >= 0 && len(earnings) < 8; i-- {
		e := m.Rewards.Earnings[i]
		earnings = append(earnings, views.EarningData{
			Coins:  e.Coins,
			Gems:   e.Gems,
			Source: e.Source,
		})
	}
	return views.RenderRewards(views.RewardsData{
		TotalTrophies: m.Rewards.Stats.TotalTrophies,
		TodayTrophies: m.Rewards.TodayTrophies,
		CurrentStreak: m.Rewards.Stats.CurrentStreak,
		BestStreak:    m.Rewards.Stats.BestStreak,
		Coins:         m.Rewards.Currency.Coins,
		Gems:          m.Rewards.Currency.Gems,
		TodayCoins:    m.Rewards.DailyEarned.Coins,
		TodayGems:     m.Rewards.DailyEarned.Gems,
		Earnings:      earnings,
	})
}

func (m Model) renderPetView() string {
	return views.RenderPet(views.PetData{
		Name:  m.Rewards.Pet.Name,
		Stage: string(m.Rewards.Pet.Stage),
		XP:    m.Rewards.Pet.XP,
	})
}
