package model

import (
	"errors"
	"fmt"
)

var ErrInvalidSettings = errors.New("model: invalid celebration settings")

// CelebrationSettings is the global singleton configuration consulted
// before every celebration trigger.
type CelebrationSettings struct {
	Enabled         bool `json:"enabled"`
	SoundEnabled    bool `json:"soundEnabled"`
	PopupsEnabled   bool `json:"popupsEnabled"`
	ThrottleSeconds int  `json:"throttleSeconds"`
	MinimalMode     bool `json:"minimalMode"`
	ForcePetTheme   bool `json:"forcePetTheme"`
}

func (s CelebrationSettings) Validate() error {
	if s.ThrottleSeconds < 0 {
		return fmt.Errorf("%w: negative throttle", ErrInvalidSettings)
	}
	return nil
}

func DefaultCelebrationSettings() CelebrationSettings {
	return CelebrationSettings{
		Enabled:         true,
		SoundEnabled:    true,
		PopupsEnabled:   true,
		ThrottleSeconds: 30,
	}
}
