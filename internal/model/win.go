package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidWin = errors.New("model: invalid win")

// Win is one celebration note logged when a task is completed. The
// task is referenced by copied title and index, never by pointer, so
// a win survives the task list being edited afterwards.
type Win struct {
	ID              string    `json:"id"`
	TaskTitle       string    `json:"taskTitle"`
	TaskIndex       int       `json:"taskIndex"`
	CelebrationNote string    `json:"celebrationNote"`
	CompletedAt     time.Time `json:"completedAt"`
}

func (w Win) Validate() error {
	if strings.TrimSpace(w.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidWin)
	}
	if strings.TrimSpace(w.TaskTitle) == "" {
		return fmt.Errorf("%w: task title is required", ErrInvalidWin)
	}
	if w.TaskIndex < 0 {
		return fmt.Errorf("%w: negative task index", ErrInvalidWin)
	}
	if w.CompletedAt.IsZero() {
		return fmt.Errorf("%w: completed_at is required", ErrInvalidWin)
	}
	return nil
}

// WinLog is append-only within a day; the daily scope wrapper clears
// it implicitly at rollover.
type WinLog struct {
	Wins []Win `json:"wins"`
}

func (l WinLog) Validate() error {
	for _, w := range l.Wins {
		if err := w.Validate(); err != nil {
			return err
		}
	}
	return nil
}
