package model

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidCurrency = errors.New("model: invalid currency data")

type CurrencyAmount struct {
	Coins int `json:"coins"`
	Gems  int `json:"gems"`
}

type CurrencyData struct {
	Coins       int            `json:"coins"`
	Gems        int            `json:"gems"`
	TotalEarned CurrencyAmount `json:"totalEarned"`
	LastUpdated time.Time      `json:"lastUpdated"`
}

func (c CurrencyData) Validate() error {
	if c.Coins < 0 || c.Gems < 0 {
		return fmt.Errorf("%w: negative balance", ErrInvalidCurrency)
	}
	if c.TotalEarned.Coins < 0 || c.TotalEarned.Gems < 0 {
		return fmt.Errorf("%w: negative earned totals", ErrInvalidCurrency)
	}
	return nil
}

// EarningEntry is one row of the capped earning log.
type EarningEntry struct {
	Coins    int       `json:"coins"`
	Gems     int       `json:"gems"`
	Source   string    `json:"source"`
	EarnedAt time.Time `json:"earnedAt"`
}

type EarningLog struct {
	Entries []EarningEntry `json:"entries"`
}

func (l EarningLog) Validate() error {
	for _, e := range l.Entries {
		if e.Coins < 0 || e.Gems < 0 {
			return fmt.Errorf("%w: negative earning entry", ErrInvalidCurrency)
		}
	}
	return nil
}
