package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dayplan/dayplan/pkg/database"
	"github.com/dayplan/dayplan/pkg/version"
)

const defaultInferenceLimit = 20

// Health handles GET /health.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealth,
		"version":  version.Full(),
	})
}

// GetInferenceLog handles GET /api/inference/log. Newest first.
func (s *Server) GetInferenceLog(c *gin.Context) {
	limit := defaultInferenceLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	calls, err := s.inference.GetLatest(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, calls)
}

// TrimRetention handles POST /api/retention/trim.
func (s *Server) TrimRetention(c *gin.Context) {
	result := s.retention.Trim(c.Request.Context())
	c.JSON(http.StatusOK, result)
}
