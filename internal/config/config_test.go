package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	// No config.yaml in the test working directory: defaults and env only.
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.Embedding.Provider)
	assert.Equal(t, "text-embedding-3-small", cfg.Embedding.Model)
	assert.Equal(t, 3, cfg.Embedding.MaxAttempts)
	assert.Equal(t, "5002", cfg.Server.Port)
	assert.Equal(t, 0.7, cfg.Categorization.HighSimilarityThreshold)

	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		cfg.Embedding.Provider = "openai"
		cfg.Server.Port = "5002"
		cfg.Categorization.HighSimilarityThreshold = 0.7
		return cfg
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := base()
		cfg.Embedding.Provider = "sentencetransformers"
		assert.Error(t, cfg.Validate())
	})

	t.Run("threshold out of range", func(t *testing.T) {
		cfg := base()
		cfg.Categorization.HighSimilarityThreshold = 1.5
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		cfg := base()
		cfg.Server.Port = ""
		assert.Error(t, cfg.Validate())
	})
}
