package services

import (
	"context"
	"fmt"
	"time"

	"github.com/pgvector/pgvector-go"
	log "github.com/sirupsen/logrus"
)

// NewFallbackEmbeddingService creates a fallback service over the given
// providers. All providers must share the same embedding dimension.
func NewFallbackEmbeddingService(providers []EmbeddingProvider, strategy RetryStrategy) (*FallbackEmbeddingService, error) {
	if len(providers) == 0 {
		return nil, fmt.Errorf("at least one embedding provider is required")
	}
	if strategy == nil {
		strategy = &SimpleRetryStrategy{MaxAttempts: 3, BaseDelayMs: 100}
	}
	if len(providers) > 1 {
		dim := providers[0].Dimension()
		for i := 1; i < len(providers); i++ {
			if providers[i].Dimension() != dim {
				return nil, fmt.Errorf("all embedding providers must have the same dimension (provider %s has %d, expected %d)",
					providers[i].Name(), providers[i].Dimension(), dim)
			}
		}
	}

	return &FallbackEmbeddingService{
		Providers:      providers,
		ActiveProvider: 0,
		RetryStrategy:  strategy,
	}, nil
}

// Name returns the name of the currently active provider.
func (s *FallbackEmbeddingService) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.Providers) == 0 {
		return ""
	}
	return s.Providers[s.ActiveProvider].Name()
}

// ModelName returns the model name of the currently active provider.
func (s *FallbackEmbeddingService) ModelName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.Providers) == 0 {
		return ""
	}
	return s.Providers[s.ActiveProvider].ModelName()
}

// Status returns the status of the currently active provider.
func (s *FallbackEmbeddingService) Status() ProviderStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.Providers) == 0 {
		return ProviderStatusDisabled
	}
	return s.Providers[s.ActiveProvider].Status()
}

// Dimension returns the dimension of the currently active provider.
// The constructor guarantees all providers agree.
func (s *FallbackEmbeddingService) Dimension() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.Providers) == 0 {
		log.Warn("FallbackEmbeddingService has no providers, returning dimension 0")
		return 0
	}
	return s.Providers[s.ActiveProvider].Dimension()
}

// GenerateEmbedding tries providers with retries until one succeeds or all fail.
func (s *FallbackEmbeddingService) GenerateEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	s.mu.RLock()
	initialProviderIndex := s.ActiveProvider
	numProviders := len(s.Providers)
	s.mu.RUnlock()
	if numProviders == 0 {
		return pgvector.Vector{}, fmt.Errorf("no embedding providers configured")
	}

	var lastErr error
	attempt := 0

	for {
		s.mu.RLock()
		provider := s.Providers[s.ActiveProvider]
		s.mu.RUnlock()

		vec, err := provider.GenerateEmbedding(ctx, text)

		if ctx.Err() != nil {
			return pgvector.Vector{}, fmt.Errorf("context cancelled during embedding generation: %w", ctx.Err())
		}

		if err == nil {
			return vec, nil
		}

		lastErr = fmt.Errorf("provider %s failed: %w", provider.Name(), err)
		log.Warnf("Provider %s failed: %v", provider.Name(), err)

		backoffMs := s.RetryStrategy.NextBackoff(attempt)
		if backoffMs < 0 {
			// Retries exhausted for this provider, switch to the next one.
			s.mu.Lock()
			nextProviderIndex := (s.ActiveProvider + 1) % numProviders
			if nextProviderIndex == initialProviderIndex {
				s.mu.Unlock()
				return pgvector.Vector{}, fmt.Errorf("all embedding providers failed: last error: %w", lastErr)
			}
			s.ActiveProvider = nextProviderIndex
			log.Infof("Switching active embedding provider to %s", s.Providers[nextProviderIndex].Name())
			s.mu.Unlock()

			attempt = 0
			continue
		}

		select {
		case <-time.After(time.Duration(backoffMs) * time.Millisecond):
			attempt++
		case <-ctx.Done():
			return pgvector.Vector{}, fmt.Errorf("context cancelled while waiting to retry: %w", ctx.Err())
		}
	}
}

// GenerateEmbeddings handles batch generation with fallback and retries.
func (s *FallbackEmbeddingService) GenerateEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error) {
	s.mu.RLock()
	initialProviderIndex := s.ActiveProvider
	numProviders := len(s.Providers)
	s.mu.RUnlock()
	if numProviders == 0 {
		return nil, fmt.Errorf("no embedding providers configured")
	}

	var lastErr error
	attempt := 0

	for {
		s.mu.RLock()
		provider := s.Providers[s.ActiveProvider]
		s.mu.RUnlock()

		vecs, err := provider.GenerateEmbeddings(ctx, texts)

		if ctx.Err() != nil {
			return nil, fmt.Errorf("context cancelled during batch embedding generation: %w", ctx.Err())
		}

		if err == nil {
			if len(vecs) == len(texts) {
				return vecs, nil
			}
			// A count mismatch is a provider implementation issue; treat it
			// like a failure and move on.
			lastErr = fmt.Errorf("provider %s returned mismatched vector count (%d != %d)", provider.Name(), len(vecs), len(texts))
			log.Warn(lastErr)
		} else {
			lastErr = fmt.Errorf("provider %s failed batch generation: %w", provider.Name(), err)
			log.Warnf("Provider %s failed batch generation: %v", provider.Name(), err)
		}

		backoffMs := s.RetryStrategy.NextBackoff(attempt)
		if backoffMs < 0 {
			s.mu.Lock()
			nextProviderIndex := (s.ActiveProvider + 1) % numProviders
			if nextProviderIndex == initialProviderIndex {
				s.mu.Unlock()
				return nil, fmt.Errorf("all embedding providers failed batch generation: last error: %w", lastErr)
			}
			s.ActiveProvider = nextProviderIndex
			log.Infof("Switching active embedding provider to %s", s.Providers[nextProviderIndex].Name())
			s.mu.Unlock()

			attempt = 0
			continue
		}

		select {
		case <-time.After(time.Duration(backoffMs) * time.Millisecond):
			attempt++
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled while waiting to retry batch: %w", ctx.Err())
		}
	}
}

var _ EmbeddingProvider = (*FallbackEmbeddingService)(nil)
