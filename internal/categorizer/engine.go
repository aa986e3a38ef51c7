// Package categorizer implements the embedding-based question
// categorization engine. The engine owns a fixed set of category
// definitions, reduces each category's example phrases to a single
// prototype vector at initialization, and classifies incoming questions by
// cosine similarity against those prototypes.
package categorizer

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/pgvector/pgvector-go"
	log "github.com/sirupsen/logrus"

	"sorucat/internal/models"
)

// DefaultHighSimilarityThreshold marks results whose confidence is high
// enough to act on without human review. Carried over from the reference
// deployment.
const DefaultHighSimilarityThreshold = 0.7

// Embedder is the engine's view of an embedding provider. Providers in
// internal/services satisfy it.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
	GenerateEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error)
	Dimension() int
}

// prototype pairs a category with the centroid of its embedded examples.
type prototype struct {
	category models.Category
	vector   []float32
}

// snapshot is the immutable state published by Initialize. Prototypes are
// kept in category definition order; that order is the tie-break order for
// Categorize.
type snapshot struct {
	prototypes []prototype
	dim        int
}

// Engine classifies questions against a fixed category set. It has two
// states: before a successful Initialize every Categorize call fails with
// models.ErrEngineNotReady; afterwards the prototype cache is read-only and
// Categorize is safe to call from any number of goroutines without locking.
type Engine struct {
	embedder  Embedder
	threshold float64

	state atomic.Pointer[snapshot]
}

// NewEngine returns an uninitialized engine. threshold controls the
// HighSimilarity flag on results; pass DefaultHighSimilarityThreshold unless
// configured otherwise.
func NewEngine(embedder Embedder, threshold float64) *Engine {
	if threshold <= 0 {
		threshold = DefaultHighSimilarityThreshold
	}
	return &Engine{embedder: embedder, threshold: threshold}
}

// Initialize validates the category set, embeds every example phrase and
// publishes the prototype cache. It builds the complete new snapshot before
// swapping it in, so concurrent Categorize calls only ever observe a fully
// constructed cache. On failure the previous state (usually "not ready") is
// left untouched and the call may be retried.
func (e *Engine) Initialize(ctx context.Context, categories []models.Category) error {
	if len(categories) == 0 {
		return fmt.Errorf("at least one category is required")
	}

	seen := make(map[string]struct{}, len(categories))
	for _, cat := range categories {
		if _, dup := seen[cat.ID]; dup {
			return fmt.Errorf("category %q: %w", cat.ID, models.ErrDuplicateCategoryID)
		}
		seen[cat.ID] = struct{}{}
		if len(cat.Examples) == 0 {
			return fmt.Errorf("category %q has no example phrases", cat.ID)
		}
	}

	snap := &snapshot{
		prototypes: make([]prototype, 0, len(categories)),
		dim:        e.embedder.Dimension(),
	}

	for _, cat := range categories {
		vecs, err := e.embedder.GenerateEmbeddings(ctx, cat.Examples)
		if err != nil {
			return fmt.Errorf("embedding examples for category %q: %w: %v", cat.ID, models.ErrEmbeddingUnavailable, err)
		}
		if len(vecs) != len(cat.Examples) {
			return fmt.Errorf("category %q: provider returned %d vectors for %d examples: %w",
				cat.ID, len(vecs), len(cat.Examples), models.ErrEmbeddingUnavailable)
		}

		raw := make([][]float32, len(vecs))
		for i, v := range vecs {
			raw[i] = v.Slice()
			if snap.dim == 0 {
				snap.dim = len(raw[i])
			}
			if len(raw[i]) != snap.dim {
				return fmt.Errorf("category %q example %d: embedding dimension %d, want %d: %w",
					cat.ID, i, len(raw[i]), snap.dim, models.ErrEmbeddingUnavailable)
			}
		}

		snap.prototypes = append(snap.prototypes, prototype{
			category: cat,
			vector:   Centroid(raw),
		})
	}

	e.state.Store(snap)
	log.WithFields(log.Fields{
		"categories": len(snap.prototypes),
		"dimension":  snap.dim,
	}).Info("Categorization engine initialized")
	return nil
}

// Ready reports whether Initialize has completed successfully.
func (e *Engine) Ready() bool {
	return e.state.Load() != nil
}

// Categories returns the current category definitions in canonical order.
// Returns nil before Initialize.
func (e *Engine) Categories() []models.Category {
	snap := e.state.Load()
	if snap == nil {
		return nil
	}
	cats := make([]models.Category, len(snap.prototypes))
	for i, p := range snap.prototypes {
		cats[i] = p.category
	}
	return cats
}

// Dimension returns the embedding dimension the engine was initialized
// with, or 0 before Initialize.
func (e *Engine) Dimension() int {
	snap := e.state.Load()
	if snap == nil {
		return 0
	}
	return snap.dim
}

// Categorize embeds the question and returns the best-matching category
// with a confidence score and the full similarity breakdown. The question
// embedding is the only provider call on the request path; prototypes are
// never recomputed here.
//
// Failures are typed: models.ErrEngineNotReady before Initialize,
// models.ErrEmptyInput for blank questions and models.ErrEmbeddingFailed
// when the provider errors or returns a malformed vector. No fallback
// category is ever chosen; a weak match simply carries a low confidence.
func (e *Engine) Categorize(ctx context.Context, question string) (*models.ClassificationResult, error) {
	snap := e.state.Load()
	if snap == nil {
		return nil, models.ErrEngineNotReady
	}

	question = strings.TrimSpace(question)
	if question == "" {
		return nil, models.ErrEmptyInput
	}

	vec, err := e.embedder.GenerateEmbedding(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("embedding question: %w: %v", models.ErrEmbeddingFailed, err)
	}
	q := vec.Slice()
	if len(q) != snap.dim {
		return nil, fmt.Errorf("question embedding dimension %d, want %d: %w", len(q), snap.dim, models.ErrEmbeddingFailed)
	}

	similarities := make(map[string]float64, len(snap.prototypes))
	best := 0
	bestScore := 0.0
	for i, p := range snap.prototypes {
		score := CosineSimilarity(q, p.vector)
		similarities[p.category.ID] = score
		// Strict > keeps the first category on ties, in definition order.
		if i == 0 || score > bestScore {
			best = i
			bestScore = score
		}
	}

	confidence := clamp01(bestScore)
	winner := snap.prototypes[best].category

	return &models.ClassificationResult{
		CategoryID:     winner.ID,
		CategoryName:   winner.DisplayName,
		Confidence:     confidence,
		Method:         models.MethodEmbedding,
		Similarities:   similarities,
		HighSimilarity: confidence >= e.threshold,
	}, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
