package update

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vasanthkv/flowmate/internal/model"
	"github.com/vasanthkv/flowmate/internal/storage"
	"github.com/vasanthkv/flowmate/internal/views"
)

func isTodayKey(k string) bool {
	switch k {
	case storage.KeyBigThree, storage.KeyPetTasks, storage.KeyWins:
		return true
	default:
		return false
	}
}

func (m Model) handleTodayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.quickAddInput.Focused() {
		switch msg.String() {
		case "enter":
			title := strings.TrimSpace(m.quickAddInput.Value())
			m.quickAddInput.SetValue("")
			m.quickAddInput.Blur()
			if title == "" {
				return m, nil
			}
			if _, err := m.rt.Tasks.AddBigThree(title); err != nil {
				m.Status = StatusBar{Text: err.Error(), IsError: true}
				return m, nil
			}
			m.Status = StatusBar{Text: "task added"}
			return m, nil
		case "esc":
			m.quickAddInput.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.quickAddInput, cmd = m.quickAddInput.Update(msg)
			return m, cmd
		}
	}

	switch msg.String() {
	case "a":
		if len(m.Today.BigThree.Tasks) >= model.BigThreeSlots {
			m.Status = StatusBar{Text: "big three is full for today", IsError: true}
			return m, nil
		}
		m.quickAddInput.Focus()
		return m, nil
	case "j", "down":
		if m.Today.Cursor < len(m.Today.BigThree.Tasks)-1 {
			m.Today.Cursor++
		}
		return m, nil
	case "k", "up":
		if m.Today.Cursor > 0 {
			m.Today.Cursor--
		}
		return m, nil
	case "enter", "x":
		if m.Today.Cursor >= len(m.Today.BigThree.Tasks) {
			return m, nil
		}
		task := m.Today.BigThree.Tasks[m.Today.Cursor]
		if _, err := m.rt.Tasks.CompleteBigThree(task.ID, ""); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		m.Status = StatusBar{Text: "task completed"}
		return m, nil
	}
	return m, nil
}

func (m Model) renderTodayView() string {
	items := make([]views.TaskItemData, 0, len(m.Today.BigThree.Tasks))
	for i, t := range m.Today.BigThree.Tasks {
		items = append(items, views.TaskItemData{
			Title:     t.Title,
			Completed: t.Completed,
			Selected:  i == m.Today.Cursor,
		})
	}
	return views.RenderBigThree(views.BigThreeData{
		Items:        items,
		Slots:        model.BigThreeSlots,
		QuickAddView: m.quickAddInput.View(),
		Capturing:    m.quickAddInput.Focused(),
	})
}

func (m Model) renderWinsView() string {
	wins := make([]views.WinData, 0, len(m.Today.Wins))
	for _, w := range m.Today.Wins {
		wins = append(wins, views.WinData{
			Title: w.TaskTitle,
			Note:  w.CelebrationNote,
			At:    w.CompletedAt.Local().Format("15:04"),
		})
	}
	return views.RenderWins(wins)
}
