package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gurama/tasktracker/internal/log"
	"github.com/gurama/tasktracker/internal/model"
)

// TaskRepositoryConfig is the configuration for the task repository.
type TaskRepositoryConfig struct {
	KV     KV
	Key    string
	Logger log.Logger
}

func (c *TaskRepositoryConfig) defaults() error {
	if c.KV == nil {
		return fmt.Errorf("kv store is required")
	}
	if c.Key == "" {
		c.Key = TasksKey
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.TaskRepository"})
	return nil
}

// TaskRepository stores the task list as a JSON document on a KV store.
type TaskRepository struct {
	kv     KV
	key    string
	logger log.Logger
}

// NewTaskRepository creates a new task repository.
func NewTaskRepository(cfg TaskRepositoryConfig) (*TaskRepository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &TaskRepository{
		kv:     cfg.KV,
		key:    cfg.Key,
		logger: cfg.Logger,
	}, nil
}

// taskJSON is the persisted representation of a task.
type taskJSON struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LoadTasks loads the persisted tasks.
func (r *TaskRepository) LoadTasks(ctx context.Context) ([]model.Task, error) {
	data, err := r.kv.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			r.logger.Debugf("No saved tasks under key %q", r.key)
			return []model.Task{}, nil
		}
		return nil, fmt.Errorf("could not read %q: %w", r.key, err)
	}

	tasks, err := DecodeTasks(data)
	if err != nil {
		r.logger.Warningf("Ignoring saved tasks under key %q: %s", r.key, err)
		return []model.Task{}, nil
	}

	r.logger.Debugf("Loaded %d tasks", len(tasks))
	return tasks, nil
}

// SaveTasks persists the tasks.
func (r *TaskRepository) SaveTasks(ctx context.Context, tasks []model.Task) error {
	data, err := EncodeTasks(tasks)
	if err != nil {
		return err
	}

	if err := r.kv.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("could not write %q: %w", r.key, err)
	}

	r.logger.Debugf("Saved %d tasks", len(tasks))
	return nil
}

// EncodeTasks serializes tasks in the persisted JSON format.
func EncodeTasks(tasks []model.Task) ([]byte, error) {
	items := make([]taskJSON, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, taskJSON{
			ID:        t.ID,
			Title:     t.Title,
			Status:    string(t.Status),
			CreatedAt: t.CreatedAt.UTC(),
			UpdatedAt: t.UpdatedAt.UTC(),
		})
	}

	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("could not marshal tasks: %w", err)
	}

	return data, nil
}

// DecodeTasks parses and validates tasks in the persisted JSON format.
func DecodeTasks(data []byte) ([]model.Task, error) {
	var items []taskJSON
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("could not unmarshal tasks: %w", err)
	}

	tasks := make([]model.Task, 0, len(items))
	for _, it := range items {
		tasks = append(tasks, model.Task{
			ID:        it.ID,
			Title:     it.Title,
			Status:    model.TaskStatus(it.Status),
			CreatedAt: it.CreatedAt.UTC(),
			UpdatedAt: it.UpdatedAt.UTC(),
		})
	}

	if err := model.ValidateTasks(tasks); err != nil {
		return nil, fmt.Errorf("invalid tasks: %w", err)
	}

	return tasks, nil
}
