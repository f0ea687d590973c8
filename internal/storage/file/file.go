package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/gurama/tasktracker/internal/log"
	"github.com/gurama/tasktracker/internal/model"
)

var keyRegexp = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// KVConfig is the configuration for the file KV store.
type KVConfig struct {
	// Dir is the directory where every key is stored as <key>.json.
	Dir    string
	Logger log.Logger
}

func (c *KVConfig) defaults() error {
	if c.Dir == "" {
		return fmt.Errorf("dir is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.File"})
	return nil
}

// KV is a storage.KV implementation that keeps one file per key.
type KV struct {
	dir    string
	logger log.Logger
}

// NewKV creates a new file KV store.
func NewKV(cfg KVConfig) (*KV, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create data directory: %w", err)
	}

	return &KV{dir: cfg.Dir, logger: cfg.Logger}, nil
}

func (k *KV) path(key string) (string, error) {
	if !keyRegexp.MatchString(key) {
		return "", fmt.Errorf("key %q: %w", key, model.ErrNotValid)
	}
	return filepath.Join(k.dir, key+".json"), nil
}

// Get returns the value stored for a key.
func (k *KV) Get(ctx context.Context, key string) ([]byte, error) {
	path, err := k.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("key %s: %w", key, model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not read file: %w", err)
	}

	return data, nil
}

// Set stores a value for a key, atomically replacing the previous file.
func (k *KV) Set(ctx context.Context, key string, value []byte) error {
	path, err := k.path(key)
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(path); err == nil {
		if bytes.Equal(existing, value) {
			k.logger.Debugf("Key %s unchanged, skipping write", key)
			return nil
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not read file: %w", err)
	}

	tmpFile, err := os.CreateTemp(k.dir, filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("could not create temp file: %w", err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(value)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("could not write temp file: %w", err)
	}

	if err := os.Rename(name, path); err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("could not rename temp file: %w", err)
	}

	k.logger.Debugf("Stored key %s at %s", key, path)
	return nil
}
