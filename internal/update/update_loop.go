package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vasanthkv/flowmate/internal/bus"
	"github.com/vasanthkv/flowmate/internal/celebrate"
	"github.com/vasanthkv/flowmate/internal/views"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForChangeCmd(m.changedKeys)}
	if m.rt.Rewards != nil {
		cmds = append(cmds, waitForRewardCmd(m.rt.Rewards.C()))
	}
	if m.rt.Timer != nil {
		cmds = append(cmds, waitForExpiryCmd(m.rt.Timer.C()))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}
		// A focused capture input owns every key except the kill switch,
		// so typing a title containing "q" or "1" stays in the input.
		if typed.String() != "ctrl+c" && m.CurrentView == ViewToday && m.quickAddInput.Focused() {
			return m.handleTodayKey(typed)
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active"}
			return m, nil
		case m.Keys.Today:
			m.CurrentView = ViewToday
			return m, nil
		case m.Keys.Focus:
			m.CurrentView = ViewFocus
			m.bootstrapFocusTask()
			return m, nil
		case m.Keys.Rewards:
			m.CurrentView = ViewRewards
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			m.Teardown()
			return m, tea.Quit
		}

		switch m.CurrentView {
		case ViewToday:
			return m.handleTodayKey(typed)
		case ViewFocus:
			return m.handleFocusKey(typed)
		case ViewRewards:
			return m.handleRewardsKey(typed)
		}

	case StateChangedMsg:
		m.applyChangedKeys(typed.Keys)
		return m, waitForChangeCmd(m.changedKeys)

	case RewardMsg:
		m.Rewards.LastReward = &typed.Event
		m.flashUntil = m.rt.Clock().Add(flashDuration)
		cmds := []tea.Cmd{m.rewardFlash.Tick}
		if m.rt.Rewards != nil {
			cmds = append(cmds, waitForRewardCmd(m.rt.Rewards.C()))
		}
		return m, tea.Batch(cmds...)

	case CelebrationExpiredMsg:
		m.rt.Dispatch.Expire(typed.ID)
		if m.Celebration != nil && m.Celebration.ID == typed.ID {
			m.Celebration = nil
		}
		if m.rt.Timer != nil {
			return m, waitForExpiryCmd(m.rt.Timer.C())
		}
		return m, nil

	case FocusTickMsg:
		return m.onFocusTick()

	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil

	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil

	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.rewardFlash, cmd = m.rewardFlash.Update(msg)
	return m, cmd
}

// applyChangedKeys refreshes the cached view state for the keys that
// changed. Widgets always re-read from storage; the keys only narrow
// how much re-reading happens.
func (m *Model) applyChangedKeys(keys []string) {
	today, rewards := false, false
	for _, k := range keys {
		switch k {
		case "", "*":
			today, rewards = true, true
		default:
			if isTodayKey(k) {
				today = true
			} else {
				rewards = true
			}
		}
	}
	if today {
		m.refreshToday()
	}
	if rewards {
		m.refreshRewards()
	}
	if c, ok := m.rt.Dispatch.Current(); ok {
		m.Celebration = &c
	}
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewToday:
		leftPane = m.renderTodayView()
		rightPane = m.renderWinsView() + m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewFocus:
		leftPane = m.renderFocusView()
		rightPane = m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewRewards:
		leftPane = m.renderRewardsView()
		rightPane = m.renderPetView() + m.renderCommandPalette() + m.renderHelpIfVisible()
	}

	celebration := ""
	if m.Celebration != nil {
		celebration = views.RenderCelebration(views.CelebrationData{
			Occasion: string(m.Celebration.Occasion),
			Message:  m.Celebration.Message,
			PetTheme: m.Celebration.PetTheme,
		})
	}
	if m.Rewards.LastReward != nil && m.rt.Clock().Before(m.flashUntil) {
		celebration += views.RenderRewardFlash(views.RewardFlashData{
			Spinner: m.rewardFlash.View(),
			Coins:   m.Rewards.LastReward.Coins,
			Gems:    m.Rewards.LastReward.Gems,
			Source:  m.Rewards.LastReward.Source,
		})
	}

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("flowmate | view: %s | streak: %d", m.CurrentView, m.Rewards.Stats.CurrentStreak),
		LeftPane:     leftPane,
		RightPane:    rightPane,
		StatusLine:   status,
		Notification: celebration,
		Footer:       fmt.Sprintf("keys: %s today | %s focus | %s rewards | / cmd | %s help | %s quit", m.Keys.Today, m.Keys.Focus, m.Keys.Rewards, m.Keys.Help, m.Keys.Quit),
	})
}

func waitForChangeCmd(ch <-chan []string) tea.Cmd {
	return func() tea.Msg {
		keys, ok := <-ch
		if !ok {
			return nil
		}
		return StateChangedMsg{Keys: keys}
	}
}

func waitForRewardCmd(ch <-chan bus.RewardEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return RewardMsg{Event: ev}
	}
}

func waitForExpiryCmd(ch <-chan celebrate.Expiry) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return nil
		}
		return CelebrationExpiredMsg{ID: e.ID}
	}
}
