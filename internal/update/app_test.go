package update

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vasanthkv/flowmate/internal/bus"
	"github.com/vasanthkv/flowmate/internal/celebrate"
	"github.com/vasanthkv/flowmate/internal/config"
	"github.com/vasanthkv/flowmate/internal/ledger"
	"github.com/vasanthkv/flowmate/internal/pet"
	"github.com/vasanthkv/flowmate/internal/storage"
	"github.com/vasanthkv/flowmate/internal/tasks"
)

func testRuntime(t *testing.T) (Runtime, *time.Time) {
	t.Helper()
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)
	clock := storage.Clock(func() time.Time { return now })

	kv := storage.NewMemoryKV()
	changes := bus.New()
	rewards := bus.NewRewardFeed(16)
	lgr := ledger.New(kv, changes, rewards, clock)
	keeper := pet.NewKeeper(kv, changes)
	dispatch := celebrate.NewDispatcher(kv, clock, nil, nil)
	svc := tasks.NewService(kv, clock, changes, lgr, keeper, dispatch)

	return Runtime{
		KV:       kv,
		Changes:  changes,
		Rewards:  rewards,
		Tasks:    svc,
		Ledger:   lgr,
		Keeper:   keeper,
		Dispatch: dispatch,
		Clock:    clock,
	}, &now
}

func testConfig() config.RuntimeConfig {
	return config.RuntimeConfig{
		Backend:           config.BackendMemory,
		FocusWorkMinutes:  25,
		FocusBreakMinutes: 5,
		CelebrationBuffer: 8,
	}
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewModelDefaults(t *testing.T) {
	rt, _ := testRuntime(t)
	m := NewModel(rt, testConfig())
	if m.CurrentView != ViewToday {
		t.Fatalf("expected default view %q, got %q", ViewToday, m.CurrentView)
	}
	if m.Focus.WorkDurationSec != 25*60 {
		t.Fatalf("work duration = %d", m.Focus.WorkDurationSec)
	}
	if m.Keys.Quit != "q" {
		t.Fatalf("expected quit key q, got %q", m.Keys.Quit)
	}
}

func TestUpdateKeySwitchesView(t *testing.T) {
	rt, _ := testRuntime(t)
	m := NewModel(rt, testConfig())

	updated, _ := m.Update(keyMsg('2'))
	next := updated.(Model)
	if next.CurrentView != ViewFocus {
		t.Fatalf("expected focus view, got %q", next.CurrentView)
	}

	updated, _ = next.Update(keyMsg('3'))
	next = updated.(Model)
	if next.CurrentView != ViewRewards {
		t.Fatalf("expected rewards view, got %q", next.CurrentView)
	}
}

func TestUpdateStatusAndError(t *testing.T) {
	rt, _ := testRuntime(t)
	m := NewModel(rt, testConfig())

	updated, _ := m.Update(SetStatusMsg{Text: "ready"})
	next := updated.(Model)
	if next.Status.Text != "ready" || next.Status.IsError {
		t.Fatalf("unexpected status: %+v", next.Status)
	}

	updated, _ = next.Update(AppErrorMsg{Err: errors.New("boom")})
	next = updated.(Model)
	if next.LastError == nil || !next.Status.IsError {
		t.Fatalf("expected error status, got: %+v", next.Status)
	}

	updated, _ = next.Update(ClearStatusMsg{})
	next = updated.(Model)
	if next.Status.Text != "" || next.Status.IsError {
		t.Fatalf("expected cleared status, got: %+v", next.Status)
	}
}

func TestUpdateQuitKey(t *testing.T) {
	rt, _ := testRuntime(t)
	m := NewModel(rt, testConfig())

	updated, cmd := m.Update(keyMsg('q'))
	next := updated.(Model)
	if !next.Quitting {
		t.Fatal("expected quitting flag true")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestStateChangedRefreshesCachedState(t *testing.T) {
	rt, _ := testRuntime(t)
	m := NewModel(rt, testConfig())

	if _, err := rt.Tasks.AddBigThree("Plan sprint"); err != nil {
		t.Fatalf("add: %v", err)
	}

	updated, _ := m.Update(StateChangedMsg{Keys: []string{storage.KeyBigThree}})
	next := updated.(Model)
	if len(next.Today.BigThree.Tasks) != 1 {
		t.Fatalf("cached list = %d tasks, want 1", len(next.Today.BigThree.Tasks))
	}
}

func TestFocusPhaseCompletionAwardsTrophy(t *testing.T) {
	rt, _ := testRuntime(t)
	m := NewModel(rt, testConfig())
	m.CurrentView = ViewFocus

	updated, _ := m.Update(keyMsg('n'))
	next := updated.(Model)

	if next.Focus.Phase != FocusPhaseBreak {
		t.Fatalf("phase = %s, want break", next.Focus.Phase)
	}
	if next.Focus.CompletedPomodoros != 1 {
		t.Fatalf("pomodoros = %d, want 1", next.Focus.CompletedPomodoros)
	}
	stats := rt.Ledger.Stats()
	if stats.TotalTrophies != 1 {
		t.Fatalf("trophies = %d, want 1", stats.TotalTrophies)
	}
	if rt.Ledger.Currency().Coins == 0 {
		t.Fatal("focus completion paid no currency")
	}
}

func TestFocusTickCountsDown(t *testing.T) {
	rt, _ := testRuntime(t)
	m := NewModel(rt, testConfig())
	m.Focus.Running = true
	m.Focus.RemainingSec = 2

	updated, cmd := m.Update(FocusTickMsg{})
	next := updated.(Model)
	if next.Focus.RemainingSec != 1 {
		t.Fatalf("remaining = %d, want 1", next.Focus.RemainingSec)
	}
	if cmd == nil {
		t.Fatal("expected another tick while running")
	}

	updated, _ = next.Update(FocusTickMsg{})
	next = updated.(Model)
	if next.Focus.Running {
		t.Fatal("timer still running at zero")
	}
}

func TestQuickAddCapturesGlobalKeys(t *testing.T) {
	rt, _ := testRuntime(t)
	m := NewModel(rt, testConfig())

	updated, _ := m.Update(keyMsg('a'))
	next := updated.(Model)
	if !next.quickAddInput.Focused() {
		t.Fatal("quick add not capturing")
	}

	for _, r := range "quiz q1" {
		updated, _ = next.Update(keyMsg(r))
		next = updated.(Model)
	}
	if next.Quitting {
		t.Fatal("typing q quit the app mid-entry")
	}
	if next.CurrentView != ViewToday {
		t.Fatalf("typing 1 switched view to %q", next.CurrentView)
	}

	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)
	list := rt.Tasks.BigThree()
	if len(list.Tasks) != 1 || list.Tasks[0].Title != "quiz q1" {
		t.Fatalf("captured title = %+v", list.Tasks)
	}
}

func TestPaletteCommandCompletesTask(t *testing.T) {
	rt, _ := testRuntime(t)
	m := NewModel(rt, testConfig())

	if _, err := rt.Tasks.AddBigThree("Plan sprint"); err != nil {
		t.Fatalf("add: %v", err)
	}
	m.refreshToday()

	next := m.runCommand("done 1 shipped")
	if next.Status.IsError {
		t.Fatalf("command failed: %s", next.Status.Text)
	}
	list := rt.Tasks.BigThree()
	if list.CompletedCount() != 1 {
		t.Fatalf("completed count = %d, want 1", list.CompletedCount())
	}
}

func TestPaletteUnknownCommandSetsErrorStatus(t *testing.T) {
	rt, _ := testRuntime(t)
	m := NewModel(rt, testConfig())

	next := m.runCommand("teleport home")
	if !next.Status.IsError {
		t.Fatalf("expected error status, got: %+v", next.Status)
	}
}

func TestCelebrationExpiryClearsOverlay(t *testing.T) {
	rt, _ := testRuntime(t)
	m := NewModel(rt, testConfig())

	rt.Dispatch.Dispatch(celebrate.Trigger{Occasion: celebrate.OccasionTaskComplete, Message: "done"})
	current, ok := rt.Dispatch.Current()
	if !ok {
		t.Fatal("no current celebration")
	}
	m.Celebration = &current

	updated, _ := m.Update(CelebrationExpiredMsg{ID: current.ID})
	next := updated.(Model)
	if next.Celebration != nil {
		t.Fatal("overlay survived expiry")
	}
	if _, ok := rt.Dispatch.Current(); ok {
		t.Fatal("dispatcher still reports a current celebration")
	}
}

func TestViewContainsCoreState(t *testing.T) {
	rt, _ := testRuntime(t)
	m := NewModel(rt, testConfig())
	m.Status = StatusBar{Text: "all good"}

	out := m.View()
	if !strings.Contains(out, "view: Today") {
		t.Fatalf("expected view header in output: %q", out)
	}
	if !strings.Contains(out, "all good") {
		t.Fatalf("expected status text in output: %q", out)
	}
}
