package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UpdateSettingsRequest is the request body for PUT /api/settings.
type UpdateSettingsRequest struct {
	LLMModel  string `json:"llm_model" binding:"required"`
	MaxTokens int    `json:"max_tokens" binding:"required"`
}

// GetSettings handles GET /api/settings.
func (s *Server) GetSettings(c *gin.Context) {
	st, err := s.settings.GetOrCreate(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"llm_model": st.LlmModel, "max_tokens": st.MaxTokens})
}

// UpdateSettings handles PUT /api/settings.
func (s *Server) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	st, err := s.settings.Update(c.Request.Context(), req.LLMModel, req.MaxTokens)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"llm_model": st.LlmModel, "max_tokens": st.MaxTokens})
}
