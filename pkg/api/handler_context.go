package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UpdateContextRequest is the request body for PUT /api/context.
type UpdateContextRequest struct {
	Context string `json:"context"`
}

// GetContext handles GET /api/context.
func (s *Server) GetContext(c *gin.Context) {
	gc, err := s.globalCtx.GetOrCreate(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"context": gc.Context, "updated_at": gc.UpdatedAt})
}

// UpdateContext handles PUT /api/context.
func (s *Server) UpdateContext(c *gin.Context) {
	var req UpdateContextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gc, err := s.globalCtx.Update(c.Request.Context(), req.Context)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"context": gc.Context, "updated_at": gc.UpdatedAt})
}
