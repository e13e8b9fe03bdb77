package labels

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-oracle/internal/entities"
	"github.com/KirkDiggler/rpg-oracle/internal/errors"
	"github.com/KirkDiggler/rpg-oracle/internal/pkg/clock"
)

type entry struct {
	labels    entities.UILabels
	storedAt  time.Time
	expiresAt time.Time
}

// InMemoryRepository implements Repository for a single process
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]entry
	clock clock.Clock
	ttl   time.Duration
}

// NewInMemory creates an in-memory repository. A nil clock uses wall time
// and a zero ttl uses DefaultTTL.
func NewInMemory(c clock.Clock, ttl time.Duration) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &InMemoryRepository{
		store: make(map[string]entry),
		clock: c,
		ttl:   ttl,
	}
}

// Get retrieves the labels for a language
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || normalizeLanguage(input.Language) == "" {
		return nil, errors.InvalidArgument(errLanguageEmpty)
	}

	key := normalizeLanguage(input.Language)

	r.mu.RLock()
	e, ok := r.store[key]
	r.mu.RUnlock()

	if !ok || !r.clock.Now().Before(e.expiresAt) {
		return nil, errors.NotFoundf("labels for %s not cached", input.Language)
	}

	labels := e.labels
	return &GetOutput{Labels: &labels, StoredAt: e.storedAt}, nil
}

// Put stores the labels for a language
func (r *InMemoryRepository) Put(_ context.Context, input *PutInput) (*PutOutput, error) {
	if input == nil || normalizeLanguage(input.Language) == "" {
		return nil, errors.InvalidArgument(errLanguageEmpty)
	}
	if input.Labels == nil {
		return nil, errors.InvalidArgument(errLabelsNil)
	}

	now := r.clock.Now()
	e := entry{
		labels:    *input.Labels,
		storedAt:  now,
		expiresAt: now.Add(r.ttl),
	}

	r.mu.Lock()
	r.store[normalizeLanguage(input.Language)] = e
	r.mu.Unlock()

	return &PutOutput{ExpiresAt: e.expiresAt}, nil
}
