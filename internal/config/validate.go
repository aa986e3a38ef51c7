package config

import (
	"errors"
	"fmt"
)

// Validate checks fields that would otherwise fail in confusing ways deep
// inside provider construction. API keys are deliberately not required
// here: providers fall back to environment variables and disable
// themselves with a warning when no key is found.
func (c *Config) Validate() error {
	switch c.Embedding.Provider {
	case "", "openai", "gemini", "fallback":
	default:
		return fmt.Errorf("embedding.provider must be openai, gemini or fallback, got %q", c.Embedding.Provider)
	}

	if c.Embedding.Dimension < 0 {
		return errors.New("embedding.dimension must not be negative")
	}
	if c.Embedding.MaxAttempts < 0 {
		return errors.New("embedding.max_attempts must not be negative")
	}
	if c.Embedding.BaseDelayMs < 0 {
		return errors.New("embedding.base_delay_ms must not be negative")
	}

	if t := c.Categorization.HighSimilarityThreshold; t < 0 || t > 1 {
		return fmt.Errorf("categorization.high_similarity_threshold must be in [0,1], got %v", t)
	}

	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}

	return nil
}
