package apihandlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sorucat/internal/app"
	"sorucat/internal/categorizer"
	"sorucat/internal/config"
	"sorucat/internal/models"
	"sorucat/internal/services"
)

// stubProvider is a deterministic in-process embedding provider.
type stubProvider struct {
	vectors map[string][]float32
}

func (s *stubProvider) Name() string                     { return "stub" }
func (s *stubProvider) ModelName() string                { return "stub-embedding-001" }
func (s *stubProvider) Status() services.ProviderStatus  { return services.ProviderStatusActive }
func (s *stubProvider) Dimension() int                   { return 3 }

func (s *stubProvider) GenerateEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	if v, ok := s.vectors[text]; ok {
		return pgvector.NewVector(v), nil
	}
	return pgvector.NewVector(make([]float32, 3)), nil
}

func (s *stubProvider) GenerateEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error) {
	out := make([]pgvector.Vector, len(texts))
	for i, t := range texts {
		v, _ := s.GenerateEmbedding(ctx, t)
		out[i] = v
	}
	return out, nil
}

func newTestRouter(t *testing.T, initialized bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	provider := &stubProvider{vectors: map[string][]float32{
		"Bu ürün stokta var mı?":   {1, 0, 0},
		"Ürün çalışmıyor":          {0, 1, 0},
		"Ürün arızalı, çalışmıyor": {0.05, 0.95, 0},
	}}
	embeddingService, err := services.NewFallbackEmbeddingService(
		[]services.EmbeddingProvider{provider}, &services.SimpleRetryStrategy{MaxAttempts: 1, BaseDelayMs: 1})
	require.NoError(t, err)

	engine := categorizer.NewEngine(embeddingService, categorizer.DefaultHighSimilarityThreshold)
	if initialized {
		require.NoError(t, engine.Initialize(context.Background(), []models.Category{
			{ID: "stok", DisplayName: "stok", Examples: []string{"Bu ürün stokta var mı?"}},
			{ID: "teknik", DisplayName: "teknik", Examples: []string{"Ürün çalışmıyor"}},
		}))
	}

	appInstance := &app.App{
		Config:           &config.Config{},
		EmbeddingService: embeddingService,
		Engine:           engine,
	}

	handler := NewAPIHandler(appInstance)
	router := gin.New()
	router.Use(RequestID())
	router.POST("/categorize", handler.CategorizeHandler)
	router.GET("/test", handler.TestHandler)
	router.GET("/health", handler.HealthHandler)
	router.GET("/", handler.HomeHandler)
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCategorizeHandler(t *testing.T) {
	router := newTestRouter(t, true)

	w := doRequest(router, http.MethodPost, "/categorize", `{"question": "Ürün arızalı, çalışmıyor"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                        `json:"success"`
		Data    models.ClassificationResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "teknik", resp.Data.CategoryID)
	assert.Equal(t, models.MethodEmbedding, resp.Data.Method)
	assert.Greater(t, resp.Data.Confidence, 0.7)
	assert.True(t, resp.Data.HighSimilarity)
	assert.Len(t, resp.Data.Similarities, 2)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestCategorizeHandlerEmptyQuestion(t *testing.T) {
	router := newTestRouter(t, true)

	for _, body := range []string{`{"question": ""}`, `{"question": "   "}`, `{}`} {
		w := doRequest(router, http.MethodPost, "/categorize", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)

		var resp struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.NotEmpty(t, resp.Message)
	}
}

func TestCategorizeHandlerInvalidBody(t *testing.T) {
	router := newTestRouter(t, true)

	w := doRequest(router, http.MethodPost, "/categorize", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCategorizeHandlerNotReady(t *testing.T) {
	router := newTestRouter(t, false)

	w := doRequest(router, http.MethodPost, "/categorize", `{"question": "Bu ürün stokta var mı?"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestTestHandler(t *testing.T) {
	router := newTestRouter(t, true)

	w := doRequest(router, http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success     bool         `json:"success"`
		TestResults []TestResult `json:"test_results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.TestResults, len(categorizer.RegressionQuestions()))
	for _, res := range resp.TestResults {
		assert.Empty(t, res.Error)
	}
}

func TestHealthHandler(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		router := newTestRouter(t, true)
		w := doRequest(router, http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"healthy"`)
	})

	t.Run("initializing", func(t *testing.T) {
		router := newTestRouter(t, false)
		w := doRequest(router, http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"initializing"`)
	})
}

func TestHomeHandler(t *testing.T) {
	router := newTestRouter(t, true)

	w := doRequest(router, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Service        string   `json:"service"`
		EmbeddingModel string   `json:"embedding_model"`
		Categories     []string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Question Categorization API", resp.Service)
	assert.Equal(t, "stub-embedding-001", resp.EmbeddingModel)
	assert.Equal(t, []string{"stok", "teknik"}, resp.Categories)
}
