// Package backend opens the configured KV backend and returns the task
// repository on top of it.
package backend

import (
	"context"
	"fmt"

	"github.com/gurama/tasktracker/internal/log"
	"github.com/gurama/tasktracker/internal/model"
	"github.com/gurama/tasktracker/internal/storage"
	"github.com/gurama/tasktracker/internal/storage/file"
	"github.com/gurama/tasktracker/internal/storage/memory"
	"github.com/gurama/tasktracker/internal/storage/sqlite"
)

// Config is the configuration to open a backend.
type Config struct {
	Backend model.StorageBackend
	// DBPath is required by the SQLite backend.
	DBPath string
	// DataDir is required by the file backend.
	DataDir string
	Logger  log.Logger
}

func (c *Config) defaults() error {
	if c.Backend == "" {
		c.Backend = model.StorageBackendSQLite
	}
	if !c.Backend.IsValid() {
		return fmt.Errorf("unknown storage backend %q: %w", c.Backend, model.ErrNotValid)
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	return nil
}

// Backend is an opened storage backend.
type Backend struct {
	Repository *storage.TaskRepository
	closeFn    func() error
}

// Open opens the configured backend.
func Open(ctx context.Context, cfg Config) (*Backend, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	var (
		kv      storage.KV
		closeFn func() error
	)
	switch cfg.Backend {
	case model.StorageBackendSQLite:
		s, err := sqlite.NewKV(ctx, sqlite.KVConfig{DBPath: cfg.DBPath, Logger: cfg.Logger})
		if err != nil {
			return nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}
		kv, closeFn = s, s.Close
	case model.StorageBackendFile:
		f, err := file.NewKV(file.KVConfig{Dir: cfg.DataDir, Logger: cfg.Logger})
		if err != nil {
			return nil, fmt.Errorf("could not open file storage: %w", err)
		}
		kv = f
	case model.StorageBackendMemory:
		m, err := memory.NewKV(memory.KVConfig{Logger: cfg.Logger})
		if err != nil {
			return nil, fmt.Errorf("could not open memory storage: %w", err)
		}
		kv = m
	}

	repo, err := storage.NewTaskRepository(storage.TaskRepositoryConfig{KV: kv, Logger: cfg.Logger})
	if err != nil {
		if closeFn != nil {
			_ = closeFn()
		}
		return nil, fmt.Errorf("could not create task repository: %w", err)
	}

	cfg.Logger.Debugf("Opened %s storage backend", cfg.Backend)

	return &Backend{Repository: repo, closeFn: closeFn}, nil
}

// Close releases the backend resources.
func (b *Backend) Close() error {
	if b.closeFn != nil {
		return b.closeFn()
	}
	return nil
}
