package services

import (
	"context"
	"sync"

	"github.com/pgvector/pgvector-go"
)

// ProviderStatus reflects whether a provider is usable.
type ProviderStatus string

const (
	ProviderStatusActive   ProviderStatus = "active"
	ProviderStatusDisabled ProviderStatus = "disabled"
)

// EmbeddingProvider is one backend capable of turning text into vectors.
// Dimension is fixed per provider instance; all vectors a provider returns
// must have that dimension.
type EmbeddingProvider interface {
	Name() string
	ModelName() string
	Status() ProviderStatus
	GenerateEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
	GenerateEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error)
	Dimension() int
}

type RetryStrategy interface {
	NextBackoff(attempt int) int64 // ms, negative means stop retrying
}

// FallbackEmbeddingService wraps one or more providers and handles retries
// and provider cycling. Retry policy lives here, outside the categorization
// engine, which reports provider failures to its caller untouched.
type FallbackEmbeddingService struct {
	Providers      []EmbeddingProvider
	ActiveProvider int
	RetryStrategy  RetryStrategy
	mu             sync.RWMutex
}

// SimpleRetryStrategy provides basic exponential backoff.
type SimpleRetryStrategy struct {
	MaxAttempts int
	BaseDelayMs int64
}

// NextBackoff calculates the next backoff duration in milliseconds.
func (s *SimpleRetryStrategy) NextBackoff(attempt int) int64 {
	if s.MaxAttempts <= 0 {
		return -1
	}
	if attempt >= s.MaxAttempts {
		return -1
	}
	backoff := s.BaseDelayMs * (1 << attempt)
	maxDelay := int64(30000)
	if backoff > maxDelay {
		backoff = maxDelay
	}
	return backoff
}
