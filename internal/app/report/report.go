package report

import (
	"context"
	"fmt"
	"io"

	"github.com/gurama/tasktracker/internal/log"
	"github.com/gurama/tasktracker/internal/model"
	"github.com/gurama/tasktracker/internal/report"
)

// TaskLister returns the current tasks.
type TaskLister interface {
	Snapshot() []model.Task
}

// Generator renders tasks into a report document.
type Generator interface {
	Generate(format report.Format, tasks []model.Task) (*report.Report, error)
}

// ServiceConfig is the configuration for the report service.
type ServiceConfig struct {
	Store     TaskLister
	Generator Generator
	Logger    log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Store == nil {
		return fmt.Errorf("store is required")
	}

	if c.Generator == nil {
		return fmt.Errorf("generator is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.report.Service"})

	return nil
}

// Service exports the current tasks as a report.
type Service struct {
	store     TaskLister
	generator Generator
	logger    log.Logger
}

// NewService creates a new report service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		store:     cfg.Store,
		generator: cfg.Generator,
		logger:    cfg.Logger,
	}, nil
}

// Request represents the report request parameters.
type Request struct {
	Format report.Format
	// Output receives the report document.
	Output io.Writer
}

// Run generates a report of the current tasks and writes it to the request output.
func (s *Service) Run(ctx context.Context, req Request) (*report.Report, error) {
	if req.Output == nil {
		return nil, fmt.Errorf("output is required: %w", model.ErrNotValid)
	}

	tasks := s.store.Snapshot()
	s.logger.Debugf("generating %s report with %d tasks", req.Format, len(tasks))

	r, err := s.generator.Generate(req.Format, tasks)
	if err != nil {
		return nil, fmt.Errorf("could not generate report: %w", err)
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if _, err := req.Output.Write(r.Data); err != nil {
		return nil, fmt.Errorf("could not write report: %w", err)
	}

	s.logger.Infof("Generated report %s (%d tasks, %d bytes)", r.ID, len(tasks), len(r.Data))
	return r, nil
}
