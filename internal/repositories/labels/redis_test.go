package labels_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-oracle/internal/entities"
	"github.com/KirkDiggler/rpg-oracle/internal/errors"
	"github.com/KirkDiggler/rpg-oracle/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-oracle/internal/redis"
	"github.com/KirkDiggler/rpg-oracle/internal/repositories/labels"
	"github.com/KirkDiggler/rpg-oracle/internal/testutils"
)

type RedisLabelsTestSuite struct {
	suite.Suite
	client redisclient.Client
	mr     *miniredis.Miniredis
	clock  *clock.Manual
	repo   labels.Repository
	ctx    context.Context
	labels *entities.UILabels
}

func (s *RedisLabelsTestSuite) SetupTest() {
	s.client, s.mr = testutils.CreateTestRedisClient(s.T())
	s.clock = clock.NewManual(time.Date(2024, 10, 31, 23, 0, 0, 0, time.UTC))
	s.ctx = context.Background()

	repo, err := labels.NewRedis(&labels.RedisConfig{
		Client: s.client,
		Clock:  s.clock,
		TTL:    time.Hour,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.labels = &entities.UILabels{
		Stability:      "Estabilidad",
		Traits:         "Rasgos",
		Advantages:     "Ventajas",
		Disadvantages:  "Desventajas",
		Inventory:      "Inventario",
		Setting:        "Ambientación",
		Location:       "Ubicación",
		Year:           "Año",
		TypeYourAction: "Escribe tu acción...",
	}
}

func (s *RedisLabelsTestSuite) TestNewRedis() {
	testCases := []struct {
		name    string
		config  *labels.RedisConfig
		wantErr bool
		errMsg  string
	}{
		{
			name:   "success with defaults",
			config: &labels.RedisConfig{Client: s.client},
		},
		{
			name:    "error with nil config",
			config:  nil,
			wantErr: true,
			errMsg:  "config cannot be nil",
		},
		{
			name:    "error with nil client",
			config:  &labels.RedisConfig{},
			wantErr: true,
			errMsg:  "client cannot be nil",
		},
		{
			name:    "error with negative ttl",
			config:  &labels.RedisConfig{Client: s.client, TTL: -time.Second},
			wantErr: true,
			errMsg:  "ttl cannot be negative",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := labels.NewRedis(tc.config)
			if tc.wantErr {
				s.Error(err)
				s.Contains(err.Error(), tc.errMsg)
				s.Nil(repo)
				return
			}
			s.NoError(err)
			s.NotNil(repo)
		})
	}
}

func (s *RedisLabelsTestSuite) TestPutThenGet() {
	out, err := s.repo.Put(s.ctx, &labels.PutInput{Language: "Spanish", Labels: s.labels})
	s.Require().NoError(err)
	s.Equal(s.clock.Now().Add(time.Hour), out.ExpiresAt)

	got, err := s.repo.Get(s.ctx, &labels.GetInput{Language: "  spanish "})
	s.Require().NoError(err)
	s.Equal(s.labels, got.Labels)
	s.True(got.StoredAt.Equal(s.clock.Now()))

	s.True(s.mr.Exists(labels.GetKey("Spanish")))
	s.Equal(time.Hour, s.mr.TTL(labels.GetKey("Spanish")))
}

func (s *RedisLabelsTestSuite) TestGet_Miss() {
	_, err := s.repo.Get(s.ctx, &labels.GetInput{Language: "Polish"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisLabelsTestSuite) TestGet_Expired() {
	_, err := s.repo.Put(s.ctx, &labels.PutInput{Language: "Spanish", Labels: s.labels})
	s.Require().NoError(err)

	s.mr.FastForward(time.Hour + time.Second)

	_, err = s.repo.Get(s.ctx, &labels.GetInput{Language: "Spanish"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisLabelsTestSuite) TestGet_CorruptEntry() {
	s.Require().NoError(s.mr.Set(labels.GetKey("spanish"), "{not json"))

	_, err := s.repo.Get(s.ctx, &labels.GetInput{Language: "Spanish"})
	s.Error(err)
	s.Equal(errors.CodeInternal, errors.GetCode(err))
}

func (s *RedisLabelsTestSuite) TestValidation() {
	_, err := s.repo.Get(s.ctx, &labels.GetInput{Language: " "})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Put(s.ctx, &labels.PutInput{Language: "Spanish"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Put(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisLabelsTestSuite(t *testing.T) {
	suite.Run(t, new(RedisLabelsTestSuite))
}
