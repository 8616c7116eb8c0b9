package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dayplan/dayplan/pkg/services"
)

// CreateTaskRequest is the request body for POST /api/tasks.
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Context     string  `json:"context"`
	DueDate     *string `json:"due_date"`
}

// CreateTask handles POST /api/tasks.
func (s *Server) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svcReq := services.CreateTaskRequest{
		Title:       req.Title,
		Description: req.Description,
		Context:     req.Context,
	}
	if req.DueDate != nil && *req.DueDate != "" {
		due, err := time.Parse(time.RFC3339, *req.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "due_date must be RFC 3339"})
			return
		}
		svcReq.DueDate = &due
	}

	task, err := s.tasks.Create(c.Request.Context(), svcReq)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// ListTasks handles GET /api/tasks. The optional filter query selects a
// subset: scheduled, active, completed, or incomplete.
func (s *Server) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	switch c.Query("filter") {
	case "", "all":
		tasks, err := s.tasks.GetAll(ctx)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, tasks)
	case "scheduled":
		tasks, err := s.tasks.GetScheduled(ctx)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, tasks)
	case "incomplete":
		tasks, err := s.tasks.GetIncomplete(ctx)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, tasks)
	case "completed":
		tasks, err := s.tasks.GetCompleted(ctx)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, tasks)
	case "active":
		task, err := s.tasks.GetActive(ctx)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		if task == nil {
			c.JSON(http.StatusOK, gin.H{"active": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"active": task})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown filter"})
	}
}

// GetTask handles GET /api/tasks/:id.
func (s *Server) GetTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := s.tasks.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /api/tasks/:id.
func (s *Server) DeleteTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	if err := s.tasks.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// StartTask handles POST /api/tasks/:id/start.
func (s *Server) StartTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := s.tasks.Start(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// StopTask handles POST /api/tasks/:id/stop.
func (s *Server) StopTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := s.tasks.Stop(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// CompleteTask handles POST /api/tasks/:id/complete.
func (s *Server) CompleteTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := s.tasks.Complete(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func taskID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task id must be an integer"})
		return 0, false
	}
	return id, true
}
