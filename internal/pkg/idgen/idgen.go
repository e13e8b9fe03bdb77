// Package idgen provides ID generation utilities
package idgen

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/KirkDiggler/rpg-oracle/internal/pkg/clock"
)

// Generator generates unique string identifiers
type Generator interface {
	Generate() string
}

// UUIDGenerator generates UUIDs with optional prefix
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a new UUID generator with optional prefix
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate creates a new UUID-based ID
func (g *UUIDGenerator) Generate() string {
	id := uuid.New().String()
	if g.prefix != "" {
		return fmt.Sprintf("%s_%s", g.prefix, id)
	}
	return id
}

// SequentialGenerator generates sequential IDs for testing
type SequentialGenerator struct {
	prefix  string
	counter uint64
}

// NewSequential creates a new sequential generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate creates a new sequential ID
func (g *SequentialGenerator) Generate() string {
	n := atomic.AddUint64(&g.counter, 1)
	if g.prefix != "" {
		return fmt.Sprintf("%s_%d", g.prefix, n)
	}
	return fmt.Sprintf("%d", n)
}

// SegmentSequence hands out story segment IDs: the current Unix time in
// milliseconds, bumped past the previous ID whenever the clock has not moved
// (or has moved backwards) so IDs strictly increase.
type SegmentSequence struct {
	mu    sync.Mutex
	clock clock.Clock
	last  int64
}

// NewSegmentSequence creates a sequence reading time from c
func NewSegmentSequence(c clock.Clock) *SegmentSequence {
	if c == nil {
		c = clock.New()
	}
	return &SegmentSequence{clock: c}
}

// Next returns the next segment ID
func (s *SegmentSequence) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.clock.Now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}
