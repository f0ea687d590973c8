package taskstore

import "time"

// idGenerator hands out strictly increasing ids based on the Unix
// millisecond clock, bumping by one when two creations share a tick.
type idGenerator struct {
	last int64
}

func (g *idGenerator) next(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// observe makes sure ids already in use are never handed out again.
func (g *idGenerator) observe(id int64) {
	if id > g.last {
		g.last = id
	}
}
