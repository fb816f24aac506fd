package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vasanthkv/flowmate/internal/celebrate"
	"github.com/vasanthkv/flowmate/internal/ledger"
	"github.com/vasanthkv/flowmate/internal/views"
)

func (m Model) handleFocusKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ":
		if m.Focus.Running {
			m.Focus.Running = false
			m.Status = StatusBar{Text: "focus paused"}
			return m, nil
		}
		if m.Focus.RemainingSec <= 0 {
			m.Focus.RemainingSec = m.currentFocusTotal()
		}
		m.Focus.Running = true
		m.Status = StatusBar{Text: "focus running"}
		return m, focusTickCmd()
	case "r":
		m.Focus.Running = false
		m.Focus.RemainingSec = m.currentFocusTotal()
		m.Status = StatusBar{Text: "focus reset"}
		return m, nil
	case "n":
		m.completeFocusPhase()
		return m, nil
	}
	return m, nil
}

func (m Model) onFocusTick() (tea.Model, tea.Cmd) {
	if !m.Focus.Running {
		return m, nil
	}
	if m.Focus.RemainingSec > 0 {
		m.Focus.RemainingSec--
	}
	if m.Focus.RemainingSec == 0 {
		m.Focus.Running = false
		if m.Focus.Phase == FocusPhaseWork {
			m.Status = StatusBar{Text: "work session complete; press n to collect and start break"}
		} else {
			m.Status = StatusBar{Text: "break complete; press n for the next focus block"}
		}
		return m, nil
	}
	return m, focusTickCmd()
}

func (m *Model) bootstrapFocusTask() {
	if m.Focus.TaskID != "" {
		return
	}
	if m.Today.Cursor < len(m.Today.BigThree.Tasks) {
		task := m.Today.BigThree.Tasks[m.Today.Cursor]
		m.Focus.TaskID = task.ID
		m.Focus.TaskTitle = task.Title
	}
}

// completeFocusPhase finishes the current phase. Finishing a work
// phase is the reward moment: trophy, currency, celebration. The
// ledger mutations always run; the celebration may be suppressed.
func (m *Model) completeFocusPhase() {
	if m.Focus.Phase == FocusPhaseWork {
		m.Focus.CompletedPomodoros++
		minutes := m.Focus.WorkDurationSec / 60

		_, message := m.rt.Ledger.AwardTrophy(minutes)
		kind := ledger.ActivityFocusShort
		if minutes >= ledger.FocusLongMinutes {
			kind = ledger.ActivityFocusLong
		}
		m.rt.Ledger.AwardActivityCurrency(kind)
		m.rt.Dispatch.Dispatch(celebrate.Trigger{
			Occasion: celebrate.OccasionPomodoroComplete,
			Message:  message,
		})

		m.Focus.Phase = FocusPhaseBreak
		m.Focus.RemainingSec = m.Focus.BreakDurationSec
		m.Focus.Running = false
		m.Status = StatusBar{Text: message}
		return
	}
	m.Focus.Phase = FocusPhaseWork
	m.Focus.RemainingSec = m.Focus.WorkDurationSec
	m.Focus.Running = false
	m.Status = StatusBar{Text: "focus block ready"}
}

func (m Model) currentFocusTotal() int {
	if m.Focus.Phase == FocusPhaseBreak {
		return m.Focus.BreakDurationSec
	}
	return m.Focus.WorkDurationSec
}

func (m Model) renderFocusView() string {
	total := m.currentFocusTotal()
	pct := 0.0
	if total > 0 {
		pct = float64(total-m.Focus.RemainingSec) / float64(total)
	}
	return views.RenderFocus(views.FocusData{
		TaskTitle:          m.Focus.TaskTitle,
		Phase:              string(m.Focus.Phase),
		Timer:              fmt.Sprintf("%02d:%02d", m.Focus.RemainingSec/60, m.Focus.RemainingSec%60),
		ProgressView:       m.focusProgress.ViewAs(pct),
		Running:            m.Focus.Running,
		CompletedPomodoros: m.Focus.CompletedPomodoros,
	})
}

func focusTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return FocusTickMsg{} })
}
