package services

import (
	"context"
	"fmt"
	"os"

	"github.com/google/generative-ai-go/genai"
	"github.com/pgvector/pgvector-go"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// GeminiProvider implements EmbeddingProvider using the Google Gemini API.
type GeminiProvider struct {
	client         *genai.Client
	embeddingModel string
	dim            int
}

// NewGeminiProvider creates a new Gemini embedding provider.
func NewGeminiProvider(apiKey, modelName string) (*GeminiProvider, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY") // Fallback to env var
	}
	if apiKey == "" {
		log.Warn("Gemini API key not provided. Gemini provider will be disabled.")
		return &GeminiProvider{client: nil}, nil
	}

	var dim int
	switch modelName {
	case "models/embedding-001":
		dim = 768
	case "models/text-embedding-004":
		dim = 768
	default:
		log.Warnf("Unknown Gemini embedding model '%s', defaulting dimension to 768 (embedding-001). Accuracy may be affected.", modelName)
		dim = 768
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	log.Infof("Gemini provider initialized with model %s (dimension %d)", modelName, dim)

	return &GeminiProvider{
		client:         client,
		embeddingModel: modelName,
		dim:            dim,
	}, nil
}

// Name returns the provider name.
func (p *GeminiProvider) Name() string { return "gemini" }

// ModelName returns the specific model identifier.
func (p *GeminiProvider) ModelName() string { return p.embeddingModel }

// GenerateEmbedding generates an embedding for a single text.
func (p *GeminiProvider) GenerateEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	if p.client == nil {
		return pgvector.Vector{}, fmt.Errorf("Gemini provider is not initialized (missing API key)")
	}
	if text == "" {
		log.Warn("GenerateEmbedding called with empty text for Gemini")
		return pgvector.NewVector(make([]float32, p.dim)), nil
	}

	em := p.client.EmbeddingModel(p.embeddingModel)
	res, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("Gemini API error generating embedding: %w", err)
	}

	if res == nil || res.Embedding == nil || len(res.Embedding.Values) == 0 {
		return pgvector.Vector{}, fmt.Errorf("Gemini API returned no embedding data")
	}

	if len(res.Embedding.Values) != p.dim {
		log.Warnf("Gemini returned embedding dimension %d, expected %d for model %s", len(res.Embedding.Values), p.dim, p.embeddingModel)
		return pgvector.Vector{}, fmt.Errorf("Gemini API returned unexpected embedding dimension: got %d, want %d", len(res.Embedding.Values), p.dim)
	}

	return pgvector.NewVector(res.Embedding.Values), nil
}

// GenerateEmbeddings generates embeddings for multiple texts.
func (p *GeminiProvider) GenerateEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error) {
	if p.client == nil {
		return nil, fmt.Errorf("Gemini provider is not initialized (missing API key)")
	}
	if len(texts) == 0 {
		return []pgvector.Vector{}, nil
	}

	em := p.client.EmbeddingModel(p.embeddingModel)
	results := make([]pgvector.Vector, len(texts))

	for i, text := range texts {
		if text == "" {
			results[i] = pgvector.NewVector(make([]float32, p.dim))
			continue
		}

		res, err := em.EmbedContent(ctx, genai.Text(text))
		if err != nil {
			return nil, fmt.Errorf("Gemini API error generating embedding for text at index %d: %w", i, err)
		}

		if res == nil || res.Embedding == nil || len(res.Embedding.Values) == 0 {
			return nil, fmt.Errorf("Gemini API returned no embedding data for text at index %d", i)
		}

		if len(res.Embedding.Values) != p.dim {
			return nil, fmt.Errorf("Gemini API returned unexpected embedding dimension at index %d: got %d, want %d", i, len(res.Embedding.Values), p.dim)
		}

		results[i] = pgvector.NewVector(res.Embedding.Values)
	}

	return results, nil
}

// Dimension returns the expected embedding dimension for the configured model.
func (p *GeminiProvider) Dimension() int {
	return p.dim
}

// Status returns the operational status of the provider.
func (p *GeminiProvider) Status() ProviderStatus {
	if p.client == nil {
		return ProviderStatusDisabled
	}
	return ProviderStatusActive
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}

var _ EmbeddingProvider = (*GeminiProvider)(nil)
