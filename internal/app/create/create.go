package create

import (
	"context"
	"fmt"
	"strings"

	"github.com/gurama/tasktracker/internal/log"
	"github.com/gurama/tasktracker/internal/model"
)

// TaskCreator creates tasks.
type TaskCreator interface {
	Create(ctx context.Context, title string) (model.Task, bool)
}

// ServiceConfig is the configuration for the create service.
type ServiceConfig struct {
	Store  TaskCreator
	Logger log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Store == nil {
		return fmt.Errorf("store is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.create.Service"})

	return nil
}

// Service creates tasks.
type Service struct {
	store  TaskCreator
	logger log.Logger
}

// NewService creates a new create service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		store:  cfg.Store,
		logger: cfg.Logger,
	}, nil
}

// Request represents the create request parameters.
type Request struct {
	Title string
}

// Run creates a new task. The store ignores blank titles, here that is
// reported as a not valid request.
func (s *Service) Run(ctx context.Context, req Request) (*model.Task, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("task title is required: %w", model.ErrNotValid)
	}

	task, ok := s.store.Create(ctx, req.Title)
	if !ok {
		return nil, fmt.Errorf("task was not created: %w", model.ErrNotValid)
	}

	s.logger.Infof("task %d created", task.ID)
	return &task, nil
}
