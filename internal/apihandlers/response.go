package apihandlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same envelope:
//   { "success": true,  "data": ... }
//   { "success": false, "message": "..." }

// OK sends a successful response wrapping data.
func OK(ctx *gin.Context, data any) {
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// Fail sends a structured error response.
func Fail(ctx *gin.Context, status int, msg string) {
	ctx.JSON(status, gin.H{"success": false, "message": msg})
}

// Convenience wrappers
func BadRequest(ctx *gin.Context, msg string) {
	Fail(ctx, http.StatusBadRequest, msg)
}

func Internal(ctx *gin.Context, msg string) {
	Fail(ctx, http.StatusInternalServerError, msg)
}

func Unavailable(ctx *gin.Context, msg string) {
	Fail(ctx, http.StatusServiceUnavailable, msg)
}
