package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"sorucat/internal/categorizer"
	"sorucat/internal/config"
	"sorucat/internal/services"
)

// App wires the embedding provider stack and the categorization engine
// together. It is built once per process; after NewApp returns, the engine
// is initialized and every component is safe for concurrent use.
type App struct {
	Config           *config.Config
	EmbeddingService *services.FallbackEmbeddingService
	Engine           *categorizer.Engine
}

func NewApp(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	providers, err := buildProviders(cfg)
	if err != nil {
		return nil, err
	}

	strategy := &services.SimpleRetryStrategy{
		MaxAttempts: cfg.Embedding.MaxAttempts,
		BaseDelayMs: cfg.Embedding.BaseDelayMs,
	}
	embeddingService, err := services.NewFallbackEmbeddingService(providers, strategy)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize embedding service: %w", err)
	}

	if cfg.Embedding.Dimension > 0 && embeddingService.Dimension() != cfg.Embedding.Dimension {
		log.Warnf("Configured embedding dimension %d does not match provider dimension %d; using the provider's",
			cfg.Embedding.Dimension, embeddingService.Dimension())
	}

	engine := categorizer.NewEngine(embeddingService, cfg.Categorization.HighSimilarityThreshold)
	if err := engine.Initialize(context.Background(), categorizer.DefaultCategories()); err != nil {
		return nil, fmt.Errorf("failed to initialize categorization engine: %w", err)
	}

	return &App{
		Config:           cfg,
		EmbeddingService: embeddingService,
		Engine:           engine,
	}, nil
}

func buildProviders(cfg *config.Config) ([]services.EmbeddingProvider, error) {
	switch cfg.Embedding.Provider {
	case "openai", "":
		p, err := services.NewOpenAIProvider(cfg.Embedding.OpenaiApiKey, cfg.Embedding.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OpenAI provider: %w", err)
		}
		return []services.EmbeddingProvider{p}, nil
	case "gemini":
		p, err := services.NewGeminiProvider(cfg.Embedding.GoogleApiKey, cfg.Embedding.GeminiModelName)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini provider: %w", err)
		}
		return []services.EmbeddingProvider{p}, nil
	case "fallback":
		// Both providers, OpenAI first. They must be configured with models
		// of equal dimension or NewFallbackEmbeddingService will refuse.
		oa, err := services.NewOpenAIProvider(cfg.Embedding.OpenaiApiKey, cfg.Embedding.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OpenAI provider: %w", err)
		}
		gm, err := services.NewGeminiProvider(cfg.Embedding.GoogleApiKey, cfg.Embedding.GeminiModelName)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini provider: %w", err)
		}
		return []services.EmbeddingProvider{oa, gm}, nil
	default:
		return nil, fmt.Errorf("unknown embedding provider %q (expected openai, gemini or fallback)", cfg.Embedding.Provider)
	}
}
