// Package labels caches localized UI labels per language
package labels

//go:generate mockgen -destination=mock/mock_repository.go -package=labelsmock github.com/KirkDiggler/rpg-oracle/internal/repositories/labels Repository

import (
	"context"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-oracle/internal/entities"
)

// DefaultTTL is how long a language's labels stay cached
const DefaultTTL = 7 * 24 * time.Hour

// Repository defines the interface for label caching
type Repository interface {
	// Get retrieves the labels for a language
	// Returns errors.InvalidArgument for an empty language
	// Returns errors.NotFound if nothing is cached or the entry expired
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Put stores the labels for a language, replacing any previous entry
	// Returns errors.InvalidArgument for an empty language or nil labels
	// Returns errors.Internal for storage failures
	Put(ctx context.Context, input *PutInput) (*PutOutput, error)
}

// GetInput defines the input for getting labels
type GetInput struct {
	Language string
}

// GetOutput defines the output for getting labels
type GetOutput struct {
	Labels   *entities.UILabels
	StoredAt time.Time
}

// PutInput defines the input for storing labels
type PutInput struct {
	Language string
	Labels   *entities.UILabels
}

// PutOutput defines the output for storing labels
type PutOutput struct {
	ExpiresAt time.Time
}

// normalizeLanguage folds "Polish", " polish " and "POLISH" onto one key
func normalizeLanguage(language string) string {
	return strings.ToLower(strings.Join(strings.Fields(language), " "))
}
