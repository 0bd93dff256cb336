package editor

import (
	"sync/atomic"
	"time"
)

// IDGenerator hands out unique int64 ids for list items that need one.
// Ids are millisecond timestamps, bumped past the previous value when two
// appends land in the same millisecond, so they stay strictly increasing.
type IDGenerator struct {
	last atomic.Int64
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns a fresh id.
func (g *IDGenerator) Next() int64 {
	for {
		now := time.Now().UnixMilli()
		last := g.last.Load()
		if now <= last {
			now = last + 1
		}
		if g.last.CompareAndSwap(last, now) {
			return now
		}
	}
}
