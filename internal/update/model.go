package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/vasanthkv/flowmate/internal/bus"
	"github.com/vasanthkv/flowmate/internal/celebrate"
	"github.com/vasanthkv/flowmate/internal/config"
	"github.com/vasanthkv/flowmate/internal/ledger"
	"github.com/vasanthkv/flowmate/internal/model"
	"github.com/vasanthkv/flowmate/internal/pet"
	"github.com/vasanthkv/flowmate/internal/storage"
	"github.com/vasanthkv/flowmate/internal/tasks"
)

type View string

const (
	ViewToday   View = "Today"
	ViewFocus   View = "Focus"
	ViewRewards View = "Rewards"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Today   string
	Focus   string
	Rewards string
	Help    string
	Quit    string
}

type TodayState struct {
	BigThree model.TaskList
	Wins     []model.Win
	Cursor   int
	NoteText string
}

type FocusPhase string

const (
	FocusPhaseWork  FocusPhase = "work"
	FocusPhaseBreak FocusPhase = "break"
)

type FocusState struct {
	TaskID             string
	TaskTitle          string
	WorkDurationSec    int
	BreakDurationSec   int
	RemainingSec       int
	Running            bool
	Phase              FocusPhase
	CompletedPomodoros int
}

type RewardsState struct {
	Stats         model.TrophyStats
	TodayTrophies int
	Currency      model.CurrencyData
	DailyEarned   model.CurrencyAmount
	Pet           model.Pet
	Earnings      []model.EarningEntry
	LastReward    *bus.RewardEvent
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// Runtime bundles the wired core services the TUI drives.
type Runtime struct {
	KV       storage.KV
	Changes  *bus.Bus
	Rewards  *bus.RewardFeed
	Tasks    *tasks.Service
	Ledger   *ledger.Ledger
	Keeper   *pet.Keeper
	Dispatch *celebrate.Dispatcher
	Timer    *celebrate.Timer
	Clock    storage.Clock
}

type Model struct {
	CurrentView View
	Today       TodayState
	Focus       FocusState
	Rewards     RewardsState
	Palette     CommandPaletteState
	Celebration *celebrate.Celebration
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error

	rt  Runtime
	cfg config.RuntimeConfig

	changedKeys chan []string
	unsubscribe func()

	quickAddInput textinput.Model
	commandInput  textinput.Model
	focusProgress progress.Model
	rewardFlash   spinner.Model
	helpModel     help.Model
	flashUntil    time.Time
}

type StateChangedMsg struct {
	Keys []string
}

type RewardMsg struct {
	Event bus.RewardEvent
}

type CelebrationExpiredMsg struct {
	ID string
}

type FocusTickMsg struct{}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

func NewModel(rt Runtime, cfg config.RuntimeConfig) Model {
	if rt.Clock == nil {
		rt.Clock = time.Now
	}
	m := Model{
		CurrentView: ViewToday,
		Focus: FocusState{
			WorkDurationSec:  cfg.FocusWorkMinutes * 60,
			BreakDurationSec: cfg.FocusBreakMinutes * 60,
			RemainingSec:     cfg.FocusWorkMinutes * 60,
			Phase:            FocusPhaseWork,
		},
		Keys: GlobalKeyMap{
			Today:   "1",
			Focus:   "2",
			Rewards: "3",
			Help:    "?",
			Quit:    "q",
		},
		rt:          rt,
		cfg:         cfg,
		changedKeys: make(chan []string, 16),
	}
	m.initBubbleComponents()
	m.unsubscribe = rt.Changes.Subscribe(m.forwardChangedKeys)
	m.refreshToday()
	m.refreshRewards()
	return m
}

// forwardChangedKeys bridges bus publishes into the tea message loop.
// Drops are fine: the refresh re-reads everything anyway.
func (m Model) forwardChangedKeys(keys []string) {
	select {
	case m.changedKeys <- keys:
	default:
	}
}

func (m *Model) initBubbleComponents() {
	quickAdd := textinput.New()
	quickAdd.Placeholder = "What matters today?"
	quickAdd.CharLimit = 120
	m.quickAddInput = quickAdd

	command := textinput.New()
	command.Placeholder = "add / done / win / spend / show / celebrate"
	command.CharLimit = 160
	m.commandInput = command

	m.focusProgress = progress.New(progress.WithDefaultGradient())

	flash := spinner.New()
	flash.Spinner = spinner.Points
	m.rewardFlash = flash

	m.helpModel = help.New()
}

func (m *Model) refreshToday() {
	m.Today.BigThree = m.rt.Tasks.BigThree()
	m.Today.Wins = m.rt.Tasks.Wins()
	if m.Today.Cursor >= len(m.Today.BigThree.Tasks) {
		m.Today.Cursor = 0
	}
}

func (m *Model) refreshRewards() {
	m.Rewards.Stats = m.rt.Ledger.Stats()
	m.Rewards.TodayTrophies = m.rt.Ledger.TodayTrophies()
	m.Rewards.Currency = m.rt.Ledger.Currency()
	m.Rewards.DailyEarned = m.rt.Ledger.DailyEarned()
	m.Rewards.Pet = m.rt.Keeper.Pet()
	m.Rewards.Earnings = m.rt.Ledger.Earnings()
}

// Teardown releases the bus subscription; pending dismiss timers are
// stopped by the caller that owns the timer.
func (m *Model) Teardown() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}
