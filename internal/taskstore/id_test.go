package taskstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIDGenerator(t *testing.T) {
	now := time.UnixMilli(1000)
	g := &idGenerator{}

	assert.Equal(t, int64(1000), g.next(now))
	// Same tick.
	assert.Equal(t, int64(1001), g.next(now))
	// Clock going backwards.
	assert.Equal(t, int64(1002), g.next(time.UnixMilli(10)))
	// Clock ahead again.
	assert.Equal(t, int64(5000), g.next(time.UnixMilli(5000)))

	g.observe(9000)
	assert.Equal(t, int64(9001), g.next(time.UnixMilli(6000)))

	// Observing lower ids doesn't move the generator back.
	g.observe(1)
	assert.Equal(t, int64(9002), g.next(time.UnixMilli(6000)))
}
