package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/gurama/tasktracker/internal/log"
	"github.com/gurama/tasktracker/internal/model"
)

// KVConfig is the configuration for the memory KV store.
type KVConfig struct {
	Logger log.Logger
}

func (c *KVConfig) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.Memory"})
	return nil
}

// KV is an in-memory implementation of storage.KV.
type KV struct {
	values map[string][]byte
	mu     sync.RWMutex
	logger log.Logger
}

// NewKV creates a new memory KV store.
func NewKV(cfg KVConfig) (*KV, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &KV{
		values: make(map[string][]byte),
		logger: cfg.Logger,
	}, nil
}

// Get returns the value stored for a key.
func (k *KV) Get(ctx context.Context, key string) ([]byte, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	v, ok := k.values[key]
	if !ok {
		return nil, fmt.Errorf("key %s: %w", key, model.ErrNotFound)
	}

	// Return a copy.
	return append([]byte(nil), v...), nil
}

// Set stores a value for a key.
func (k *KV) Set(ctx context.Context, key string, value []byte) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.values[key] = append([]byte(nil), value...)
	k.logger.Debugf("Stored key %s (%d bytes)", key, len(value))

	return nil
}
