package model

import (
	"errors"
	"fmt"
)

var ErrInvalidPet = errors.New("model: invalid pet")

type PetStage string

const (
	StageHatchling PetStage = "hatchling"
	StageSprout    PetStage = "sprout"
	StageCompanion PetStage = "companion"
	StageLegend    PetStage = "legend"
)

func (s PetStage) IsValid() bool {
	switch s {
	case StageHatchling, StageSprout, StageCompanion, StageLegend:
		return true
	default:
		return false
	}
}

// Pet grows as tasks complete. XP only ever increases; stage is
// derived from XP by the growth policy table in the pet package.
type Pet struct {
	Name  string   `json:"name"`
	Stage PetStage `json:"stage"`
	XP    int      `json:"xp"`
}

func (p Pet) Validate() error {
	if !p.Stage.IsValid() {
		return fmt.Errorf("%w: stage %q", ErrInvalidPet, p.Stage)
	}
	if p.XP < 0 {
		return fmt.Errorf("%w: negative xp", ErrInvalidPet)
	}
	return nil
}
