package lib

import (
	"context"
	"fmt"
	"io"

	"k8s.io/client-go/util/homedir"

	"github.com/gurama/tasktracker/internal/app/create"
	"github.com/gurama/tasktracker/internal/app/list"
	appreport "github.com/gurama/tasktracker/internal/app/report"
	"github.com/gurama/tasktracker/internal/app/show"
	"github.com/gurama/tasktracker/internal/app/update"
	"github.com/gurama/tasktracker/internal/conventions"
	"github.com/gurama/tasktracker/internal/log"
	"github.com/gurama/tasktracker/internal/model"
	"github.com/gurama/tasktracker/internal/report"
	"github.com/gurama/tasktracker/internal/storage/backend"
	"github.com/gurama/tasktracker/internal/taskstore"
)

// Config configures the SDK client.
//
// All fields are optional and have sensible defaults. An empty Config{} uses
// the same SQLite database as the CLI (~/.tasktracker/tasks.db).
type Config struct {
	// Storage is the storage backend.
	// Default: [StorageSQLite].
	Storage StorageType

	// DBPath is the SQLite database path.
	// Default: ~/.tasktracker/tasks.db.
	DBPath string

	// DataDir is the directory used by [StorageFile].
	// Default: ~/.tasktracker/data.
	DataDir string

	// ReportTitle is the header of generated reports.
	// Default: "Task Report".
	ReportTitle string

	// ReportProductName is shown on the report footer.
	// Default: "Gurama Task Tracking".
	ReportProductName string

	// Logger receives structured log output from the SDK.
	// Default: noop (silent). See the log sub-package for the interface.
	Logger log.Logger
}

func (c *Config) defaults() error {
	if c.Storage == "" {
		c.Storage = StorageSQLite
	}

	if c.DBPath == "" || c.DataDir == "" {
		home := homedir.HomeDir()
		if home == "" {
			return fmt.Errorf("could not get user home dir")
		}
		if c.DBPath == "" {
			c.DBPath = conventions.DBPath(home)
		}
		if c.DataDir == "" {
			c.DataDir = conventions.FileDataDir(home)
		}
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Client is the main SDK entry point for managing tasks programmatically.
//
// Create a Client with [New] and release its resources with [Client.Close].
// A Client is safe for concurrent use.
type Client struct {
	store     *taskstore.Store
	generator *report.Generator
	logger    log.Logger
	closeFn   func() error
}

// New creates a new SDK client, loading the persisted tasks.
//
// The caller must call [Client.Close] when done to release the storage.
// Typically used with defer:
//
//	client, err := lib.New(ctx, lib.Config{})
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
func New(ctx context.Context, cfg Config) (*Client, error) {
	if err := cfg.defaults(); err != nil {
		return nil, mapError(fmt.Errorf("invalid config: %w", err))
	}

	b, err := backend.Open(ctx, backend.Config{
		Backend: model.StorageBackend(cfg.Storage),
		DBPath:  cfg.DBPath,
		DataDir: cfg.DataDir,
		Logger:  cfg.Logger,
	})
	if err != nil {
		return nil, mapError(fmt.Errorf("could not open storage: %w", err))
	}

	store, err := taskstore.New(ctx, taskstore.Config{
		Repository: b.Repository,
		Logger:     cfg.Logger,
	})
	if err != nil {
		_ = b.Close()
		return nil, mapError(fmt.Errorf("could not load tasks: %w", err))
	}

	gen, err := report.NewGenerator(report.GeneratorConfig{
		Title:       cfg.ReportTitle,
		ProductName: cfg.ReportProductName,
		Logger:      cfg.Logger,
	})
	if err != nil {
		_ = b.Close()
		return nil, fmt.Errorf("could not create report generator: %w", err)
	}

	return &Client{
		store:     store,
		generator: gen,
		logger:    cfg.Logger,
		closeFn:   b.Close,
	}, nil
}

// Close releases resources held by the client, including the database connection.
// After Close returns, the client must not be used.
func (c *Client) Close() error {
	if c.closeFn != nil {
		return c.closeFn()
	}
	return nil
}

// CreateTask creates a new not started task. The title is trimmed.
//
// Returns [ErrNotValid] if the title is blank.
func (c *Client) CreateTask(ctx context.Context, title string) (*Task, error) {
	svc, err := create.NewService(create.ServiceConfig{
		Store:  c.store,
		Logger: c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	t, err := svc.Run(ctx, create.Request{Title: title})
	if err != nil {
		return nil, mapError(err)
	}

	result := fromInternalTask(*t)
	return &result, nil
}

// SetTaskStatus changes the status of a task.
//
// Returns [ErrNotFound] if the task does not exist, or [ErrNotValid] if the
// status is unknown.
func (c *Client) SetTaskStatus(ctx context.Context, id int64, status TaskStatus) (*Task, error) {
	svc, err := update.NewService(update.ServiceConfig{
		Store:  c.store,
		Logger: c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	t, err := svc.Run(ctx, update.Request{ID: id, Status: string(status)})
	if err != nil {
		return nil, mapError(err)
	}

	result := fromInternalTask(*t)
	return &result, nil
}

// ListTasks returns the tasks in creation order.
// Pass nil opts to list all the tasks.
func (c *Client) ListTasks(ctx context.Context, opts *ListTasksOpts) ([]Task, error) {
	svc, err := list.NewService(list.ServiceConfig{
		Store:  c.store,
		Logger: c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	tasks, err := svc.Run(ctx, list.Request{StatusFilter: toInternalStatusFilter(opts)})
	if err != nil {
		return nil, mapError(err)
	}

	return fromInternalTaskList(tasks), nil
}

// GetTask returns a task by ID.
//
// Returns [ErrNotFound] if the task does not exist.
func (c *Client) GetTask(ctx context.Context, id int64) (*Task, error) {
	svc, err := show.NewService(show.ServiceConfig{
		Store:  c.store,
		Logger: c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	t, err := svc.Run(ctx, show.Request{ID: id})
	if err != nil {
		return nil, mapError(err)
	}

	result := fromInternalTask(*t)
	return &result, nil
}

// Report writes a report of the current tasks to w.
// Pass nil opts for a PDF report.
//
// Returns [ErrNotValid] if the format is unknown.
func (c *Client) Report(ctx context.Context, w io.Writer, opts *ReportOpts) (*ReportInfo, error) {
	format := ReportFormatPDF
	if opts != nil && opts.Format != "" {
		format = opts.Format
	}

	svc, err := appreport.NewService(appreport.ServiceConfig{
		Store:     c.store,
		Generator: c.generator,
		Logger:    c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	r, err := svc.Run(ctx, appreport.Request{Format: report.Format(format), Output: w})
	if err != nil {
		return nil, mapError(err)
	}

	return fromInternalReport(r), nil
}
