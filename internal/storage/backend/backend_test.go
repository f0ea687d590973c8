package backend_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gurama/tasktracker/internal/model"
	"github.com/gurama/tasktracker/internal/storage/backend"
)

func TestOpen(t *testing.T) {
	tests := map[string]struct {
		config  func(dir string) backend.Config
		persist bool
		expErr  bool
	}{
		"SQLite backend should persist tasks.": {
			config: func(dir string) backend.Config {
				return backend.Config{Backend: model.StorageBackendSQLite, DBPath: filepath.Join(dir, "tasks.db")}
			},
			persist: true,
		},
		"The default backend should be SQLite.": {
			config: func(dir string) backend.Config {
				return backend.Config{DBPath: filepath.Join(dir, "db", "tasks.db")}
			},
			persist: true,
		},
		"File backend should persist tasks.": {
			config: func(dir string) backend.Config {
				return backend.Config{Backend: model.StorageBackendFile, DataDir: filepath.Join(dir, "data")}
			},
			persist: true,
		},
		"Memory backend should not persist tasks across opens.": {
			config: func(dir string) backend.Config {
				return backend.Config{Backend: model.StorageBackendMemory}
			},
		},
		"SQLite backend without db path should fail.": {
			config: func(dir string) backend.Config {
				return backend.Config{Backend: model.StorageBackendSQLite}
			},
			expErr: true,
		},
		"Unknown backend should fail.": {
			config: func(dir string) backend.Config {
				return backend.Config{Backend: "redis"}
			},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)
			ctx := context.Background()
			cfg := test.config(t.TempDir())

			b, err := backend.Open(ctx, cfg)
			if test.expErr {
				assert.Error(err)
				return
			}
			require.NoError(err)

			now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
			tasks := []model.Task{{ID: 1, Title: "Buy milk", Status: model.TaskStatusOngoing, CreatedAt: now, UpdatedAt: now}}
			require.NoError(b.Repository.SaveTasks(ctx, tasks))
			require.NoError(b.Close())

			b, err = backend.Open(ctx, cfg)
			require.NoError(err)
			defer b.Close()

			got, err := b.Repository.LoadTasks(ctx)
			require.NoError(err)
			if test.persist {
				assert.Equal(tasks, got)
			} else {
				assert.Empty(got)
			}
		})
	}
}
