package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/socialkit/pkg/config"
)

type testConfig struct {
	Name  string `env:"TEST_SOCIALKIT_NAME" envDefault:"socialkit"`
	Limit int    `env:"TEST_SOCIALKIT_LIMIT" envDefault:"10"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults apply", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "socialkit", cfg.Name)
		assert.Equal(t, 10, cfg.Limit)
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("TEST_SOCIALKIT_NAME", "Facebook")
		t.Setenv("TEST_SOCIALKIT_LIMIT", "3")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "Facebook", cfg.Name)
		assert.Equal(t, 3, cfg.Limit)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *testConfig
		require.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("parse failure", func(t *testing.T) {
		t.Setenv("TEST_SOCIALKIT_LIMIT", "not-a-number")

		var cfg testConfig
		require.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})

	t.Run("missing env file", func(t *testing.T) {
		require.ErrorIs(t, config.LoadEnv("testdata/does-not-exist.env"), config.ErrLoadingEnv)
	})
}
