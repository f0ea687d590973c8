package storage

import (
	"context"

	"github.com/gurama/tasktracker/internal/model"
)

// TasksKey is the fixed key the task list is persisted under.
const TasksKey = "tasks"

// KV is a durable key-value store.
type KV interface {
	// Get returns the value stored for key, or model.ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
}

// Repository is the interface for task list persistence.
type Repository interface {
	// LoadTasks returns the persisted tasks. Missing or corrupt data results
	// in an empty list, only backend failures are returned as errors.
	LoadTasks(ctx context.Context) ([]model.Task, error)
	// SaveTasks replaces the persisted tasks with the given list.
	SaveTasks(ctx context.Context, tasks []model.Task) error
}
