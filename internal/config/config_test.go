package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-oracle/internal/config"
	"github.com/KirkDiggler/rpg-oracle/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestParse_Defaults() {
	cfg, err := config.Parse(map[string]string{"GEMINI_API_KEY": "k"})
	s.Require().NoError(err)

	s.Equal("k", cfg.APIKey)
	s.Equal("gemini-2.5-flash", cfg.TextModel)
	s.Equal("gemini-2.5-flash-image", cfg.ImageModel)
	s.Equal("gemini-2.5-flash-image", cfg.EditModel)
	s.Equal(config.LabelCacheNone, cfg.LabelCache)
	s.Equal("localhost:6379", cfg.RedisAddr)
	s.Equal(168*time.Hour, cfg.LabelCacheTTL)
	s.Equal(zerolog.InfoLevel, cfg.Level())

	r := cfg.Retry()
	s.Equal(uint(3), r.MaxAttempts)
	s.Equal(time.Second, r.InitialDelay)
}

func (s *ConfigTestSuite) TestParse_Overrides() {
	cfg, err := config.Parse(map[string]string{
		"GEMINI_API_KEY":             "k",
		"ORACLE_TEXT_MODEL":          "gemini-2.5-pro",
		"ORACLE_RETRY_ATTEMPTS":      "5",
		"ORACLE_RETRY_INITIAL_DELAY": "250ms",
		"ORACLE_LABEL_CACHE":         "redis",
		"ORACLE_REDIS_ADDR":          "cache:6379",
		"ORACLE_LABEL_CACHE_TTL":     "1h",
		"ORACLE_LOG_LEVEL":           "debug",
	})
	s.Require().NoError(err)

	s.Equal("gemini-2.5-pro", cfg.TextModel)
	s.Equal(uint(5), cfg.RetryAttempts)
	s.Equal(250*time.Millisecond, cfg.RetryInitialDelay)
	s.Equal(config.LabelCacheRedis, cfg.LabelCache)
	s.Equal("cache:6379", cfg.RedisAddr)
	s.Equal(time.Hour, cfg.LabelCacheTTL)
	s.Equal(zerolog.DebugLevel, cfg.Level())
}

func (s *ConfigTestSuite) TestParse_MissingAPIKey() {
	_, err := config.Parse(map[string]string{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "GEMINI_API_KEY")
}

func (s *ConfigTestSuite) TestParse_Invalid() {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "zero attempts", key: "ORACLE_RETRY_ATTEMPTS", value: "0"},
		{name: "too many attempts", key: "ORACLE_RETRY_ATTEMPTS", value: "11"},
		{name: "unknown cache", key: "ORACLE_LABEL_CACHE", value: "memcached"},
		{name: "unknown level", key: "ORACLE_LOG_LEVEL", value: "loud"},
		{name: "negative delay", key: "ORACLE_RETRY_INITIAL_DELAY", value: "-1s"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := config.Parse(map[string]string{"GEMINI_API_KEY": "k", tc.key: tc.value})
			s.Require().Error(err)
			s.Contains(err.Error(), tc.key)
		})
	}
}

func (s *ConfigTestSuite) TestParse_BadDuration() {
	_, err := config.Parse(map[string]string{
		"GEMINI_API_KEY":         "k",
		"ORACLE_LABEL_CACHE_TTL": "a week",
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestLoad_DotEnvDoesNotOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "oracle.env")
	require.NoError(t, os.WriteFile(path, []byte("GEMINI_API_KEY=from-file\nORACLE_TEXT_MODEL=from-file-model\n"), 0o600))

	t.Setenv("GEMINI_API_KEY", "from-env")
	t.Setenv("ORACLE_TEXT_MODEL", "")
	require.NoError(t, os.Unsetenv("ORACLE_TEXT_MODEL"))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.APIKey)
	assert.Equal(t, "from-file-model", cfg.TextModel)
}

func TestLoad_MissingFileIsSkipped(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "from-env")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.APIKey)
}
