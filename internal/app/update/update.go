package update

import (
	"context"
	"fmt"

	"github.com/gurama/tasktracker/internal/log"
	"github.com/gurama/tasktracker/internal/model"
)

// TaskStatusSetter changes task statuses.
type TaskStatusSetter interface {
	SetStatus(ctx context.Context, id int64, status model.TaskStatus) (model.Task, bool)
}

// ServiceConfig is the configuration for the update service.
type ServiceConfig struct {
	Store  TaskStatusSetter
	Logger log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Store == nil {
		return fmt.Errorf("store is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.update.Service"})

	return nil
}

// Service changes the status of tasks.
type Service struct {
	store  TaskStatusSetter
	logger log.Logger
}

// NewService creates a new update service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		store:  cfg.Store,
		logger: cfg.Logger,
	}, nil
}

// Request represents the update request parameters.
type Request struct {
	ID int64
	// Status accepts the status values and their labels ("Not Started", "ongoing"...).
	Status string
}

// Run sets the status of a task. Any transition is allowed, including
// setting the status the task already has.
func (s *Service) Run(ctx context.Context, req Request) (*model.Task, error) {
	status, err := model.ParseTaskStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status: %w", err)
	}

	task, ok := s.store.SetStatus(ctx, req.ID, status)
	if !ok {
		return nil, fmt.Errorf("task %d: %w", req.ID, model.ErrNotFound)
	}

	s.logger.Infof("task %d status set to %s", task.ID, task.Status)
	return &task, nil
}
