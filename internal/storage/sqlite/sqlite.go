package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/gurama/tasktracker/internal/log"
	"github.com/gurama/tasktracker/internal/model"
	"github.com/gurama/tasktracker/internal/storage/sqlite/migrations"
)

// KVConfig is the configuration for the SQLite KV store.
type KVConfig struct {
	DBPath string
	Logger log.Logger
	// Clock is used to stamp updated_at, defaults to time.Now.
	Clock func() time.Time
}

func (c *KVConfig) defaults() error {
	if c.DBPath == "" {
		return fmt.Errorf("db path is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.SQLite"})
	return nil
}

// KV is a SQLite implementation of storage.KV.
type KV struct {
	db     *sql.DB
	clock  func() time.Time
	logger log.Logger
}

// NewKV opens (creating if required) the database and applies the migrations.
func NewKV(ctx context.Context, cfg KVConfig) (*KV, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	dir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.DBPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	migrator, err := migrations.NewMigrator(db, cfg.Logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create migrator: %w", err)
	}
	if err := migrator.Up(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not run migrations: %w", err)
	}

	cfg.Logger.Debugf("SQLite KV initialized at %s", cfg.DBPath)

	return &KV{db: db, clock: cfg.Clock, logger: cfg.Logger}, nil
}

// Close closes the database connection.
func (k *KV) Close() error { return k.db.Close() }

// Get returns the value stored for a key.
func (k *KV) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := k.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("key %s: %w", key, model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not query key: %w", err)
	}

	return value, nil
}

// Set stores a value for a key.
func (k *KV) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`

	if value == nil {
		value = []byte{}
	}

	_, err := k.db.ExecContext(ctx, query, key, value, k.clock().UTC().Unix())
	if err != nil {
		return fmt.Errorf("could not upsert key: %w", err)
	}

	k.logger.Debugf("Stored key %s (%d bytes)", key, len(value))
	return nil
}
