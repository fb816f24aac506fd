// Package celebrate decides whether a reward event gets a visible
// celebration. Celebrations are purely cosmetic: the ledger mutation
// that caused a trigger has already completed, and nothing here can
// undo or block it.
package celebrate

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vasanthkv/flowmate/internal/model"
	"github.com/vasanthkv/flowmate/internal/storage"
)

type Occasion string

const (
	OccasionTaskComplete     Occasion = "taskComplete"
	OccasionPomodoroComplete Occasion = "pomodoroComplete"
	OccasionMicroWinLogged   Occasion = "microWinLogged"
	OccasionAllTasksComplete Occasion = "allTasksComplete"
	OccasionPetMilestone     Occasion = "petMilestone"
)

// Trigger is a celebration request with optional contextual payload.
type Trigger struct {
	Occasion Occasion
	Message  string
	PetTheme string
}

// Celebration is the currently visible effect.
type Celebration struct {
	ID        string
	Occasion  Occasion
	Message   string
	PetTheme  string
	FiredAt   time.Time
	DismissAt time.Time
}

// State is the dispatch outcome for one trigger; the dispatcher always
// returns to idle after reporting it.
type State string

const (
	StateSuppressed State = "suppressed"
	StateFiring     State = "firing"
)

type Outcome struct {
	State  State
	Reason string
}

// SoundPlayer requests playback of a named sound. Best-effort: a
// failure means silence, never an error shown to the user.
type SoundPlayer interface {
	Play(name string) error
}

type NoopSoundPlayer struct{}

func (NoopSoundPlayer) Play(string) error { return nil }

// DefaultDisplayDuration is how long a celebration stays on screen
// before the timer dismisses it.
const DefaultDisplayDuration = 6 * time.Second

type Dispatcher struct {
	kv     storage.KV
	clock  storage.Clock
	sounds SoundPlayer
	timer  *Timer

	displayFor time.Duration

	mu       sync.Mutex
	lastFire time.Time
	current  *Celebration
}

func NewDispatcher(kv storage.KV, clock storage.Clock, sounds SoundPlayer, timer *Timer) *Dispatcher {
	if clock == nil {
		clock = time.Now
	}
	if sounds == nil {
		sounds = NoopSoundPlayer{}
	}
	return &Dispatcher{
		kv:         kv,
		clock:      clock,
		sounds:     sounds,
		timer:      timer,
		displayFor: DefaultDisplayDuration,
	}
}

func (d *Dispatcher) Settings() model.CelebrationSettings {
	return storage.Load(d.kv, storage.KeySettings, model.DefaultCelebrationSettings())
}

func (d *Dispatcher) UpdateSettings(s model.CelebrationSettings) {
	storage.Save(d.kv, storage.KeySettings, s)
}

// Current returns the visible celebration, if any.
func (d *Dispatcher) Current() (Celebration, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.current == nil {
		return Celebration{}, false
	}
	return *d.current, true
}

// Expire clears the visible celebration if it still carries id. Stale
// expiries for a replaced celebration are ignored.
func (d *Dispatcher) Expire(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.current == nil || d.current.ID != id {
		return false
	}
	d.current = nil
	return true
}

// Dispatch evaluates a trigger against settings and the throttle
// window. A fired celebration replaces the visible one; triggers never
// queue.
func (d *Dispatcher) Dispatch(t Trigger) Outcome {
	settings := d.Settings()
	if !settings.Enabled {
		return Outcome{State: StateSuppressed, Reason: "celebrations disabled"}
	}
	if settings.MinimalMode {
		return Outcome{State: StateSuppressed, Reason: "minimal mode"}
	}

	now := d.clock()
	throttle := time.Duration(settings.ThrottleSeconds) * time.Second

	d.mu.Lock()
	if !d.lastFire.IsZero() && now.Sub(d.lastFire) < throttle {
		d.mu.Unlock()
		return Outcome{State: StateSuppressed, Reason: "throttled"}
	}
	d.lastFire = now

	c := Celebration{
		ID:        uuid.NewString(),
		Occasion:  t.Occasion,
		Message:   t.Message,
		PetTheme:  t.PetTheme,
		FiredAt:   now,
		DismissAt: now.Add(d.displayFor),
	}
	if settings.ForcePetTheme && c.PetTheme == "" {
		c.PetTheme = "default"
	}
	if settings.PopupsEnabled {
		d.current = &c
	}
	d.mu.Unlock()

	if settings.SoundEnabled {
		// Playback must never stall the caller; handlers run inside the
		// UI update loop.
		go func(occasion Occasion) {
			if err := d.sounds.Play(soundFor(occasion)); err != nil {
				log.Debug("celebration sound failed", "occasion", occasion, "err", err)
			}
		}(t.Occasion)
	}
	if settings.PopupsEnabled && d.timer != nil {
		if err := d.timer.Schedule(Expiry{ID: c.ID, DismissAt: c.DismissAt}); err != nil {
			log.Debug("schedule celebration dismiss", "err", err)
		}
	}
	return Outcome{State: StateFiring}
}

func soundFor(o Occasion) string {
	switch o {
	case OccasionAllTasksComplete:
		return "fanfare"
	case OccasionPetMilestone:
		return "chirp"
	default:
		return "chime"
	}
}
