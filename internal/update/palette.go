package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vasanthkv/flowmate/internal/commands"
	"github.com/vasanthkv/flowmate/internal/model"
	"github.com/vasanthkv/flowmate/internal/views"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed"}
		return m, nil
	case "enter":
		input := m.commandInput.Value()
		m.Palette.Active = false
		m.commandInput.Blur()
		m.commandInput.SetValue("")
		return m.runCommand(input), nil
	default:
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		m.Palette.Input = m.commandInput.Value()
		return m, cmd
	}
}

func (m Model) runCommand(input string) Model {
	cmd, err := commands.Parse(input)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	result, err := commands.Execute(cmd, m.commandHandlers())
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	m.Status = StatusBar{Text: result.Message}
	return m
}

func (m Model) commandHandlers() commands.Handlers {
	return commands.Handlers{
		Add: func(args commands.AddArgs) (commands.Result, error) {
			task, err := m.rt.Tasks.AddBigThree(args.Title)
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("added %q", task.Title)}, nil
		},
		Done: func(args commands.DoneArgs) (commands.Result, error) {
			list := m.rt.Tasks.BigThree()
			if args.Slot > len(list.Tasks) {
				return commands.Result{}, fmt.Errorf("%w: slot %d", model.ErrTaskNotFound, args.Slot)
			}
			task := list.Tasks[args.Slot-1]
			if _, err := m.rt.Tasks.CompleteBigThree(task.ID, args.Note); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("completed %q", task.Title)}, nil
		},
		Win: func(args commands.WinArgs) (commands.Result, error) {
			if _, err := m.rt.Tasks.LogMicroWin(args.Note); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: "win logged"}, nil
		},
		Spend: func(args commands.SpendArgs) (commands.Result, error) {
			if !m.rt.Ledger.SpendCurrency(args.Coins, args.Gems, args.Reason) {
				return commands.Result{Message: "not enough balance"}, nil
			}
			return commands.Result{Message: fmt.Sprintf("spent %d coins, %d gems on %s", args.Coins, args.Gems, args.Reason)}, nil
		},
		Show: func(args commands.ShowArgs) (commands.Result, error) {
			switch args.Subject {
			case "wins":
				return commands.Result{Message: fmt.Sprintf("%d wins today", len(m.rt.Tasks.Wins()))}, nil
			case "trophies":
				stats := m.rt.Ledger.Stats()
				return commands.Result{Message: fmt.Sprintf("%d trophies, streak %d (best %d)", stats.TotalTrophies, stats.CurrentStreak, stats.BestStreak)}, nil
			case "earnings":
				cur := m.rt.Ledger.Currency()
				return commands.Result{Message: fmt.Sprintf("%d coins, %d gems", cur.Coins, cur.Gems)}, nil
			case "pet":
				p := m.rt.Keeper.Pet()
				return commands.Result{Message: fmt.Sprintf("%s the %s, %d xp", p.Name, p.Stage, p.XP)}, nil
			default:
				return commands.Result{}, fmt.Errorf("unknown subject: %s", args.Subject)
			}
		},
		Celebrate: func(args commands.CelebrateArgs) (commands.Result, error) {
			settings := m.rt.Dispatch.Settings()
			switch args.Mode {
			case "on":
				settings.Enabled = true
			case "off":
				settings.Enabled = false
			case "minimal":
				settings.MinimalMode = true
			case "full":
				settings.MinimalMode = false
			}
			m.rt.Dispatch.UpdateSettings(settings)
			return commands.Result{Message: fmt.Sprintf("celebrations: %s", args.Mode)}, nil
		},
	}
}

func (m Model) renderCommandPalette() string {
	if !m.Palette.Active {
		return ""
	}
	return views.RenderCommandPalette(views.CommandPaletteData{
		InputView: m.commandInput.View(),
		Input:     strings.TrimSpace(m.Palette.Input),
	})
}
