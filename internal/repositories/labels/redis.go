package labels

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-oracle/internal/entities"
	"github.com/KirkDiggler/rpg-oracle/internal/errors"
	"github.com/KirkDiggler/rpg-oracle/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-oracle/internal/redis"
)

const (
	labelsKeyPrefix = "labels:"

	errLanguageEmpty = "language cannot be empty"
	errLabelsNil     = "labels cannot be nil"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// RedisConfig contains configuration for the Redis label repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	TTL    time.Duration
}

// Validate validates the RedisConfig and fills in defaults.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	if cfg.TTL == 0 {
		cfg.TTL = DefaultTTL
	}
	return nil
}

// NewRedis creates a new Redis-backed label repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    cfg.TTL,
	}, nil
}

// labelsData is what gets serialized to Redis
type labelsData struct {
	Language string            `json:"language"`
	Labels   entities.UILabels `json:"labels"`
	StoredAt time.Time         `json:"stored_at"`
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || normalizeLanguage(input.Language) == "" {
		return nil, errors.InvalidArgument(errLanguageEmpty)
	}

	key := GetKey(input.Language)
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("labels for %s not cached", input.Language)
		}
		return nil, errors.Wrapf(err, "failed to get labels for %s", input.Language)
	}

	var data labelsData
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal labels data")
	}

	return &GetOutput{
		Labels:   &data.Labels,
		StoredAt: data.StoredAt,
	}, nil
}

func (r *redisRepository) Put(ctx context.Context, input *PutInput) (*PutOutput, error) {
	if input == nil || normalizeLanguage(input.Language) == "" {
		return nil, errors.InvalidArgument(errLanguageEmpty)
	}
	if input.Labels == nil {
		return nil, errors.InvalidArgument(errLabelsNil)
	}

	now := r.clock.Now()
	data := labelsData{
		Language: normalizeLanguage(input.Language),
		Labels:   *input.Labels,
		StoredAt: now,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal labels data")
	}

	if err := r.client.Set(ctx, GetKey(input.Language), jsonData, r.ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store labels for %s", input.Language)
	}

	return &PutOutput{ExpiresAt: now.Add(r.ttl)}, nil
}

// GetKey returns the Redis key for a language's labels
func GetKey(language string) string {
	return labelsKeyPrefix + normalizeLanguage(language)
}
