package services

import (
	"context"
	"fmt"
	"os"

	"github.com/pgvector/pgvector-go"
	"github.com/sashabaranov/go-openai"

	log "github.com/sirupsen/logrus"
)

// OpenAIProvider implements EmbeddingProvider using the OpenAI API.
type OpenAIProvider struct {
	client *openai.Client
	model  openai.EmbeddingModel
	dim    int
}

// NewOpenAIProvider creates a new OpenAI embedding provider.
func NewOpenAIProvider(apiKey, modelID string) (*OpenAIProvider, error) {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY") // Fallback to env var
	}
	if apiKey == "" {
		log.Warn("OpenAI API key not provided. OpenAI provider will be disabled.")
		return &OpenAIProvider{client: nil}, nil
	}

	var dim int
	switch modelID {
	case string(openai.AdaEmbeddingV2):
		dim = 1536
	case "text-embedding-3-small":
		dim = 1536
	case "text-embedding-3-large":
		dim = 3072
	default:
		log.Warnf("Unknown OpenAI embedding model '%s', defaulting dimension to 1536 (AdaV2). Accuracy may be affected.", modelID)
		dim = 1536
	}

	client := openai.NewClient(apiKey)
	log.Infof("OpenAI provider initialized with model %s (dimension %d)", modelID, dim)

	return &OpenAIProvider{
		client: client,
		model:  openai.EmbeddingModel(modelID),
		dim:    dim,
	}, nil
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string { return "openai" }

// ModelName returns the specific model identifier.
func (p *OpenAIProvider) ModelName() string { return string(p.model) }

func (p *OpenAIProvider) GenerateEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	if p.client == nil {
		return pgvector.Vector{}, fmt.Errorf("OpenAI provider is not initialized (missing API key)")
	}
	if text == "" {
		log.Warn("GenerateEmbedding called with empty text for OpenAI")
		return pgvector.NewVector(make([]float32, p.dim)), nil
	}

	req := openai.EmbeddingRequestStrings{
		Input: []string{text},
		Model: p.model,
	}

	resp, err := p.client.CreateEmbeddings(ctx, req)
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("OpenAI API error generating embedding: %w", err)
	}

	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		return pgvector.Vector{}, fmt.Errorf("OpenAI API returned no embedding data")
	}

	if len(resp.Data[0].Embedding) != p.dim {
		log.Warnf("OpenAI returned embedding dimension %d, expected %d for model %s", len(resp.Data[0].Embedding), p.dim, p.model)
		return pgvector.Vector{}, fmt.Errorf("OpenAI API returned unexpected embedding dimension: got %d, want %d", len(resp.Data[0].Embedding), p.dim)
	}

	return pgvector.NewVector(resp.Data[0].Embedding), nil
}

func (p *OpenAIProvider) GenerateEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error) {
	if p.client == nil {
		return nil, fmt.Errorf("OpenAI provider is not initialized (missing API key)")
	}
	if len(texts) == 0 {
		return []pgvector.Vector{}, nil
	}

	validTexts := make([]string, 0, len(texts))
	originalIndices := make(map[int]int)
	for i, t := range texts {
		if t != "" {
			originalIndices[len(validTexts)] = i
			validTexts = append(validTexts, t)
		} else {
			log.Warnf("GenerateEmbeddings called with empty text at index %d for OpenAI", i)
		}
	}

	if len(validTexts) == 0 {
		results := make([]pgvector.Vector, len(texts))
		for i := range results {
			results[i] = pgvector.NewVector(make([]float32, p.dim))
		}
		return results, nil
	}

	req := openai.EmbeddingRequestStrings{
		Input: validTexts,
		Model: p.model,
	}

	resp, err := p.client.CreateEmbeddings(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error generating embeddings: %w", err)
	}

	if len(resp.Data) != len(validTexts) {
		return nil, fmt.Errorf("OpenAI API returned %d embeddings, expected %d", len(resp.Data), len(validTexts))
	}

	results := make([]pgvector.Vector, len(texts))
	for i := range results {
		results[i] = pgvector.NewVector(make([]float32, p.dim))
	}

	for i, data := range resp.Data {
		if len(data.Embedding) != p.dim {
			log.Warnf("OpenAI returned embedding dimension %d for index %d, expected %d for model %s", len(data.Embedding), i, p.dim, p.model)
			return nil, fmt.Errorf("OpenAI API returned unexpected embedding dimension in batch: got %d, want %d at index %d", len(data.Embedding), p.dim, i)
		}
		results[originalIndices[i]] = pgvector.NewVector(data.Embedding)
	}

	return results, nil
}

// Dimension returns the expected embedding dimension for the configured model.
func (p *OpenAIProvider) Dimension() int {
	return p.dim
}

// Status returns the operational status of the provider.
func (p *OpenAIProvider) Status() ProviderStatus {
	if p.client == nil {
		return ProviderStatusDisabled
	}
	return ProviderStatusActive
}

var _ EmbeddingProvider = (*OpenAIProvider)(nil)
