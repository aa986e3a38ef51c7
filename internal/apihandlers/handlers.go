package apihandlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"sorucat/internal/app"
	"sorucat/internal/categorizer"
	"sorucat/internal/models"
)

type APIHandler struct {
	App *app.App
}

func NewAPIHandler(appInstance *app.App) *APIHandler {
	return &APIHandler{App: appInstance}
}

// CategorizeRequest is the body of POST /categorize.
type CategorizeRequest struct {
	Question string `json:"question"`
}

// CategorizeHandler classifies one question.
func (h *APIHandler) CategorizeHandler(c *gin.Context) {
	var req CategorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Soru parametresi gerekli")
		return
	}

	result, err := h.App.Engine.Categorize(c.Request.Context(), req.Question)
	if err != nil {
		h.respondWithCategorizeError(c, err)
		return
	}

	log.WithFields(log.Fields{
		"request_id": c.GetString(RequestIDKey),
		"category":   result.CategoryID,
		"confidence": result.Confidence,
	}).Info("Question categorized")

	OK(c, result)
}

// respondWithCategorizeError maps engine errors onto HTTP statuses. Input
// problems are the client's fault; a not-ready engine means the service is
// still starting; everything else is a server error.
func (h *APIHandler) respondWithCategorizeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrEmptyInput):
		BadRequest(c, "Soru parametresi gerekli")
	case errors.Is(err, models.ErrEngineNotReady):
		Unavailable(c, "Kategorizasyon motoru henüz hazır değil")
	default:
		log.WithField("request_id", c.GetString(RequestIDKey)).Errorf("Categorization failed: %v", err)
		Internal(c, fmt.Sprintf("Kategorizasyon hatası: %v", err))
	}
}

// TestResult is one row of the /test response.
type TestResult struct {
	Question     string  `json:"question"`
	Category     string  `json:"category,omitempty"`
	CategoryName string  `json:"category_name,omitempty"`
	Confidence   float64 `json:"confidence,omitempty"`
	Error        string  `json:"error,omitempty"`
}

// TestHandler runs the canned regression questions through the engine. One
// failing question does not abort the rest.
func (h *APIHandler) TestHandler(c *gin.Context) {
	cases := categorizer.RegressionQuestions()
	results := make([]TestResult, 0, len(cases))

	for _, tc := range cases {
		res, err := h.App.Engine.Categorize(c.Request.Context(), tc.Question)
		if err != nil {
			results = append(results, TestResult{Question: tc.Question, Error: err.Error()})
			continue
		}
		results = append(results, TestResult{
			Question:     tc.Question,
			Category:     res.CategoryID,
			CategoryName: res.CategoryName,
			Confidence:   round3(res.Confidence),
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "test_results": results})
}

// HealthHandler reports liveness and whether the engine has finished
// computing its prototype cache.
func (h *APIHandler) HealthHandler(c *gin.Context) {
	status := "healthy"
	httpStatus := http.StatusOK
	if !h.App.Engine.Ready() {
		status = "initializing"
		httpStatus = http.StatusServiceUnavailable
	}
	c.JSON(httpStatus, gin.H{
		"success":   httpStatus == http.StatusOK,
		"status":    status,
		"service":   "Question Categorization Service",
		"timestamp": time.Now().Format(time.RFC3339Nano),
	})
}

// HomeHandler serves a short JSON description of the API.
func (h *APIHandler) HomeHandler(c *gin.Context) {
	categories := h.App.Engine.Categories()
	ids := make([]string, len(categories))
	for i, cat := range categories {
		ids[i] = cat.ID
	}

	c.JSON(http.StatusOK, gin.H{
		"service":         "Question Categorization API",
		"version":         "1.0.0",
		"description":     "Embedding tabanlı soru kategorizasyon sistemi",
		"embedding_model": h.App.EmbeddingService.ModelName(),
		"categories":      ids,
		"endpoints": gin.H{
			"POST /categorize": "Soruyu kategorize et",
			"GET /test":        "Test sorularını çalıştır",
			"GET /health":      "Sağlık kontrolü",
			"GET /":            "API dokümantasyonu (bu sayfa)",
		},
	})
}

func round3(v float64) float64 {
	return float64(int(v*1000+0.5)) / 1000
}
