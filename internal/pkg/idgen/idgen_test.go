package idgen_test

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-oracle/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-oracle/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("session")

	a := gen.Generate()
	b := gen.Generate()

	assert.True(t, strings.HasPrefix(a, "session_"))
	assert.NotEqual(t, a, b)
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("test")

	assert.Equal(t, "test_1", gen.Generate())
	assert.Equal(t, "test_2", gen.Generate())
	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}

func TestSegmentSequence_TimeDerived(t *testing.T) {
	start := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	c := clock.NewManual(start)
	seq := idgen.NewSegmentSequence(c)

	first := seq.Next()
	assert.Equal(t, start.UnixMilli(), first)

	c.Advance(250 * time.Millisecond)
	assert.Equal(t, start.Add(250*time.Millisecond).UnixMilli(), seq.Next())
}

func TestSegmentSequence_MonotonicWhenClockStalls(t *testing.T) {
	c := clock.NewManual(time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC))
	seq := idgen.NewSegmentSequence(c)

	a := seq.Next()
	b := seq.Next()
	c.Advance(-time.Second)
	d := seq.Next()

	assert.Equal(t, a+1, b)
	assert.Equal(t, b+1, d)
}

func TestSegmentSequence_ConcurrentCallersGetDistinctIDs(t *testing.T) {
	seq := idgen.NewSegmentSequence(clock.NewManual(time.Unix(0, 0)))

	const callers = 50
	ids := make(chan int64, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- seq.Next()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, callers)
}
