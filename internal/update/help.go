package update

import "github.com/vasanthkv/flowmate/internal/views"

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	bindings := []string{
		"1/2/3 switch view",
		"/ command palette",
		"a add task (Today)",
		"enter/x complete task (Today)",
		"space start/pause, r reset, n next phase (Focus)",
		"m minimal mode, s sound (Rewards)",
		"q quit",
	}
	return views.RenderHelp(views.HelpData{
		CurrentView: string(m.CurrentView),
		Bindings:    bindings,
	})
}
