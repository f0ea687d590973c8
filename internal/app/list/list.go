package list

import (
	"context"
	"fmt"

	"github.com/gurama/tasktracker/internal/log"
	"github.com/gurama/tasktracker/internal/model"
)

// TaskLister returns the current tasks.
type TaskLister interface {
	Snapshot() []model.Task
}

// ServiceConfig is the configuration for the list service.
type ServiceConfig struct {
	Store  TaskLister
	Logger log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Store == nil {
		return fmt.Errorf("store is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.list.Service"})

	return nil
}

// Service lists tasks with optional filtering.
type Service struct {
	store  TaskLister
	logger log.Logger
}

// NewService creates a new list service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		store:  cfg.Store,
		logger: cfg.Logger,
	}, nil
}

// Request represents the list request parameters.
type Request struct {
	// StatusFilter is an optional filter to only show tasks with this status.
	StatusFilter *model.TaskStatus
}

// Run lists all tasks in creation order, optionally filtered by status.
func (s *Service) Run(ctx context.Context, req Request) ([]model.Task, error) {
	if req.StatusFilter != nil && !req.StatusFilter.IsValid() {
		return nil, fmt.Errorf("unknown status filter %q: %w", *req.StatusFilter, model.ErrNotValid)
	}

	s.logger.Debugf("listing tasks with filter: %v", req.StatusFilter)

	tasks := s.store.Snapshot()

	if req.StatusFilter != nil {
		filtered := make([]model.Task, 0, len(tasks))
		for _, t := range tasks {
			if t.Status == *req.StatusFilter {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}

	s.logger.Debugf("found %d tasks", len(tasks))
	return tasks, nil
}
