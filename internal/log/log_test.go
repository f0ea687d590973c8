package log_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gurama/tasktracker/internal/log"
)

func TestCtxValues(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, log.ValuesFromCtx(ctx))

	ctx = log.CtxWithValues(ctx, log.Kv{"a": 1})
	ctx = log.CtxWithValues(ctx, log.Kv{"b": "two"})

	got := log.ValuesFromCtx(ctx)
	assert.Equal(t, log.Kv{"a": 1, "b": "two"}, got)

	// Mutating the returned values must not leak into the context.
	got["c"] = true
	assert.Equal(t, log.Kv{"a": 1, "b": "two"}, log.ValuesFromCtx(ctx))
}

func TestNoopLogger(t *testing.T) {
	l := log.Noop.WithValues(log.Kv{"svc": "test"})
	l.Infof("ignored %d", 1)

	ctx := context.Background()
	assert.Equal(t, ctx, l.SetValuesOnCtx(ctx, log.Kv{"a": 1}))
}
