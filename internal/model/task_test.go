package model

import (
	"errors"
	"testing"
	"time"
)

func TestTaskValidateSuccess(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	task := Task{
		ID:        "task-1",
		Title:     "Write the quarterly summary",
		CreatedAt: now,
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestTaskValidateCompletedAtInvariant(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	completedWithoutTimestamp := Task{ID: "task-1", Title: "Done task", Completed: true, CreatedAt: now}
	if err := completedWithoutTimestamp.Validate(); !errors.Is(err, ErrInvalidTask) {
		t.Fatalf("expected ErrInvalidTask, got: %v", err)
	}

	openWithTimestamp := Task{ID: "task-1", Title: "Open task", CreatedAt: now, CompletedAt: &now}
	if err := openWithTimestamp.Validate(); !errors.Is(err, ErrInvalidTask) {
		t.Fatalf("expected ErrInvalidTask, got: %v", err)
	}

	done := Task{ID: "task-1", Title: "Done task", Completed: true, CreatedAt: now, CompletedAt: &now}
	if err := done.Validate(); err != nil {
		t.Fatalf("expected valid completed task, got: %v", err)
	}
}

func TestTaskListRejectsDuplicateIDs(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	list := TaskList{Tasks: []Task{
		{ID: "dup", Title: "First", CreatedAt: now},
		{ID: "dup", Title: "Second", CreatedAt: now},
	}}
	if err := list.Validate(); !errors.Is(err, ErrInvalidTask) {
		t.Fatalf("expected ErrInvalidTask for duplicate ids, got: %v", err)
	}
}

func TestTaskListUpdateAndCompletion(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	list := TaskList{Tasks: []Task{
		{ID: "a", Title: "One", CreatedAt: now},
		{ID: "b", Title: "Two", CreatedAt: now},
	}}

	if list.AllComplete() {
		t.Fatal("list with open tasks reported all complete")
	}

	for _, id := range []string{"a", "b"} {
		task, ok := list.Find(id)
		if !ok {
			t.Fatalf("task %s not found", id)
		}
		task.Completed = true
		task.CompletedAt = &now
		if !list.Update(task) {
			t.Fatalf("update did not find task %s", id)
		}
	}

	if got := list.CompletedCount(); got != 2 {
		t.Fatalf("completed count = %d, want 2", got)
	}
	if !list.AllComplete() {
		t.Fatal("fully completed list not reported complete")
	}
	if list.Update(Task{ID: "missing", Title: "x", CreatedAt: now}) {
		t.Fatal("update reported success for unknown id")
	}
}

func TestEmptyListIsNotAllComplete(t *testing.T) {
	if (TaskList{}).AllComplete() {
		t.Fatal("empty list must not count as all complete")
	}
}
