package model

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTrophy = errors.New("model: invalid trophy")

type TrophyTier string

const (
	TierBasic   TrophyTier = "basic"
	TierSilver  TrophyTier = "silver"
	TierGold    TrophyTier = "gold"
	TierDiamond TrophyTier = "diamond"
)

func (t TrophyTier) IsValid() bool {
	switch t {
	case TierBasic, TierSilver, TierGold, TierDiamond:
		return true
	default:
		return false
	}
}

type Trophy struct {
	ID              string     `json:"id"`
	Tier            TrophyTier `json:"tier"`
	DurationMinutes int        `json:"durationMinutes"`
	EarnedAt        time.Time  `json:"earnedAt"`
}

func (t Trophy) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidTrophy)
	}
	if !t.Tier.IsValid() {
		return fmt.Errorf("%w: tier %q", ErrInvalidTrophy, t.Tier)
	}
	if t.EarnedAt.IsZero() {
		return fmt.Errorf("%w: earned_at is required", ErrInvalidTrophy)
	}
	return nil
}

// TrophyLog is the full award history.
type TrophyLog struct {
	Trophies []Trophy `json:"trophies"`
}

func (l TrophyLog) Validate() error {
	for _, t := range l.Trophies {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// TrophyStats tracks lifetime trophy totals and the daily streak.
// LastActivityDate is a local calendar date in YYYY-MM-DD form.
type TrophyStats struct {
	TotalTrophies    int    `json:"totalTrophies"`
	CurrentStreak    int    `json:"currentStreak"`
	BestStreak       int    `json:"bestStreak"`
	LastActivityDate string `json:"lastActivityDate"`
}

func (s TrophyStats) Validate() error {
	if s.TotalTrophies < 0 || s.CurrentStreak < 0 || s.BestStreak < 0 {
		return fmt.Errorf("%w: negative counters", ErrInvalidTrophy)
	}
	if s.BestStreak < s.CurrentStreak {
		return fmt.Errorf("%w: best streak below current streak", ErrInvalidTrophy)
	}
	return nil
}
