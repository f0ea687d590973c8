package show

import (
	"context"
	"fmt"

	"github.com/gurama/tasktracker/internal/log"
	"github.com/gurama/tasktracker/internal/model"
)

// TaskGetter gets single tasks.
type TaskGetter interface {
	Get(id int64) (model.Task, bool)
}

// ServiceConfig is the configuration for the show service.
type ServiceConfig struct {
	Store  TaskGetter
	Logger log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Store == nil {
		return fmt.Errorf("store is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.show.Service"})

	return nil
}

// Service gets the details of a task.
type Service struct {
	store  TaskGetter
	logger log.Logger
}

// NewService creates a new show service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		store:  cfg.Store,
		logger: cfg.Logger,
	}, nil
}

// Request represents the show request parameters.
type Request struct {
	ID int64
}

// Run returns the task with the requested ID.
func (s *Service) Run(ctx context.Context, req Request) (*model.Task, error) {
	s.logger.Debugf("getting task: %d", req.ID)

	task, ok := s.store.Get(req.ID)
	if !ok {
		return nil, fmt.Errorf("task %d: %w", req.ID, model.ErrNotFound)
	}

	return &task, nil
}
