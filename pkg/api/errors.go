package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dayplan/dayplan/pkg/services"
)

// respondServiceError maps service-layer errors to HTTP error responses.
func respondServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
		return
	}
	if errors.Is(err, services.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, services.ErrNotFound) || errors.Is(err, services.ErrTaskGone) {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}
	if errors.Is(err, services.ErrTaskCompleted) ||
		errors.Is(err, services.ErrTaskNotActive) ||
		errors.Is(err, services.ErrAnotherTaskActive) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
