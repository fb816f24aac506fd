package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidTask  = errors.New("model: invalid task")
	ErrListFull     = errors.New("model: task list is full")
	ErrTaskNotFound = errors.New("model: task not found")
)

// BigThreeSlots is the maximum number of active tasks in the Big Three
// list. Pet task lists are not slot-limited.
const BigThreeSlots = 3

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidTask)
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidTask)
	}
	if t.CreatedAt.IsZero() {
		return fmt.Errorf("%w: created_at is required", ErrInvalidTask)
	}
	if t.Completed && t.CompletedAt == nil {
		return fmt.Errorf("%w: completed_at is required when completed", ErrInvalidTask)
	}
	if !t.Completed && t.CompletedAt != nil {
		return fmt.Errorf("%w: completed_at must be nil when not completed", ErrInvalidTask)
	}
	return nil
}

// TaskList is the persisted form of a task list.
type TaskList struct {
	Tasks []Task `json:"tasks"`
}

func (l TaskList) Validate() error {
	seen := make(map[string]bool, len(l.Tasks))
	for _, t := range l.Tasks {
		if err := t.Validate(); err != nil {
			return err
		}
		if seen[t.ID] {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidTask, t.ID)
		}
		seen[t.ID] = true
	}
	return nil
}

func (l TaskList) Find(id string) (Task, bool) {
	for _, t := range l.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Update replaces the task carrying the same ID and reports whether a
// matching task was found.
func (l *TaskList) Update(task Task) bool {
	for i, t := range l.Tasks {
		if t.ID == task.ID {
			l.Tasks[i] = task
			return true
		}
	}
	return false
}

func (l TaskList) CompletedCount() int {
	count := 0
	for _, t := range l.Tasks {
		if t.Completed {
			count++
		}
	}
	return count
}

func (l TaskList) AllComplete() bool {
	return len(l.Tasks) > 0 && l.CompletedCount() == len(l.Tasks)
}
