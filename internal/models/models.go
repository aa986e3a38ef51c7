package models

// Category is a static definition of one support-question category.
// The nine categories the service knows about are loaded once at startup
// and never change at runtime.
type Category struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Examples    []string `json:"examples"`
}

// ClassificationResult is the outcome of categorizing a single question.
// Results are produced per call and never persisted; Similarities holds the
// raw (unclamped) cosine score for every known category.
type ClassificationResult struct {
	CategoryID     string             `json:"category"`
	CategoryName   string             `json:"category_name"`
	Confidence     float64            `json:"confidence"`
	Method         string             `json:"method"`
	Similarities   map[string]float64 `json:"similarities"`
	HighSimilarity bool               `json:"is_high_similarity"`
}

// MethodEmbedding tags results produced by embedding similarity. It is the
// only method implemented today; the field exists so alternate strategies
// (e.g. a keyword fallback) can be told apart by callers later.
const MethodEmbedding = "embedding"
