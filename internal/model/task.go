package model

import (
	"fmt"
	"strings"
	"time"
)

// TaskStatus represents the lifecycle stage of a task.
type TaskStatus string

const (
	// TaskStatusNotStarted is the status every task is created with.
	TaskStatusNotStarted TaskStatus = "not-started"
	// TaskStatusOngoing indicates the task is being worked on.
	TaskStatusOngoing TaskStatus = "ongoing"
	// TaskStatusCompleted indicates the task is finished.
	TaskStatusCompleted TaskStatus = "completed"
)

// TaskStatuses returns all the valid statuses in lifecycle order.
func TaskStatuses() []TaskStatus {
	return []TaskStatus{TaskStatusNotStarted, TaskStatusOngoing, TaskStatusCompleted}
}

// TaskStatusValues returns the valid statuses as plain strings (for CLI enums).
func TaskStatusValues() []string {
	statuses := TaskStatuses()
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}
	return values
}

// IsValid returns true if the status is one of the known statuses.
func (s TaskStatus) IsValid() bool {
	for _, valid := range TaskStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// Label returns the human readable status, e.g. "Not Started".
func (s TaskStatus) Label() string {
	switch s {
	case TaskStatusNotStarted:
		return "Not Started"
	case TaskStatusOngoing:
		return "Ongoing"
	case TaskStatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// ParseTaskStatus parses a user provided status, accepting the label form too
// ("Not Started", "not started", "NOT-STARTED"...).
func ParseTaskStatus(s string) (TaskStatus, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, " ", "-")
	norm = strings.ReplaceAll(norm, "_", "-")

	status := TaskStatus(norm)
	if !status.IsValid() {
		return "", fmt.Errorf("unknown status %q (must be one of: %s): %w", s, strings.Join(TaskStatusValues(), ", "), ErrNotValid)
	}

	return status, nil
}

// Task is a single to-do entry.
type Task struct {
	ID        int64
	Title     string
	Status    TaskStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate validates the task model.
func (t Task) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("task id must be positive: %w", ErrNotValid)
	}

	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("task %d title is required: %w", t.ID, ErrNotValid)
	}

	if !t.Status.IsValid() {
		return fmt.Errorf("task %d status %q: %w", t.ID, t.Status, ErrNotValid)
	}

	if t.CreatedAt.IsZero() {
		return fmt.Errorf("task %d created at is required: %w", t.ID, ErrNotValid)
	}

	if t.UpdatedAt.Before(t.CreatedAt) {
		return fmt.Errorf("task %d updated before being created: %w", t.ID, ErrNotValid)
	}

	return nil
}

// ValidateTasks validates every task and checks that ids are unique.
func ValidateTasks(tasks []Task) error {
	seen := make(map[int64]struct{}, len(tasks))
	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return err
		}

		if _, ok := seen[t.ID]; ok {
			return fmt.Errorf("task %d: %w", t.ID, ErrAlreadyExists)
		}
		seen[t.ID] = struct{}{}
	}

	return nil
}
