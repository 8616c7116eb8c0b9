package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultHistoryLimit = 50

// SendChatRequest is the request body for POST /api/chat.
type SendChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// SendChatMessage handles POST /api/chat.
func (s *Server) SendChatMessage(c *gin.Context) {
	var req SendChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := s.chat.Send(c.Request.Context(), req.Message)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

// GetChatHistory handles GET /api/chat/history. Newest first.
func (s *Server) GetChatHistory(c *gin.Context) {
	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	messages, err := s.chat.History(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// ClearChatHistory handles DELETE /api/chat/history.
func (s *Server) ClearChatHistory(c *gin.Context) {
	count, err := s.chat.ClearHistory(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": count})
}
