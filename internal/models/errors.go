package models

import (
	"errors"
)

var (
	ErrDuplicateCategoryID  = errors.New("duplicate category id")
	ErrEmbeddingUnavailable = errors.New("embedding provider unavailable")

	ErrEngineNotReady  = errors.New("engine not initialized")
	ErrEmptyInput      = errors.New("question is empty")
	ErrEmbeddingFailed = errors.New("embedding generation failed")
)
