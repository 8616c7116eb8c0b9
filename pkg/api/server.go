// Package api exposes the task scheduler over HTTP.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dayplan/dayplan/pkg/chat"
	"github.com/dayplan/dayplan/pkg/cleanup"
	"github.com/dayplan/dayplan/pkg/config"
	"github.com/dayplan/dayplan/pkg/database"
	"github.com/dayplan/dayplan/pkg/services"
)

// Server wires the service layer to HTTP routes.
type Server struct {
	db        *database.Client
	tasks     *services.TaskService
	globalCtx *services.ContextService
	settings  *services.SettingsService
	inference *services.InferenceService
	chat      *chat.Orchestrator
	retention *cleanup.Service

	httpServer *http.Server
}

// NewServer creates the API server and its router.
func NewServer(
	cfg *config.Config,
	db *database.Client,
	tasks *services.TaskService,
	globalCtx *services.ContextService,
	settings *services.SettingsService,
	inference *services.InferenceService,
	chatOrch *chat.Orchestrator,
	retention *cleanup.Service,
) *Server {
	s := &Server{
		db:        db,
		tasks:     tasks,
		globalCtx: globalCtx,
		settings:  settings,
		inference: inference,
		chat:      chatOrch,
		retention: retention,
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestID(), requestLogger())
	s.registerRoutes(router)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) registerRoutes(router *gin.Engine) {
	router.GET("/health", s.Health)

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/tasks", s.ListTasks)
		apiGroup.POST("/tasks", s.CreateTask)
		apiGroup.GET("/tasks/:id", s.GetTask)
		apiGroup.DELETE("/tasks/:id", s.DeleteTask)
		apiGroup.POST("/tasks/:id/start", s.StartTask)
		apiGroup.POST("/tasks/:id/stop", s.StopTask)
		apiGroup.POST("/tasks/:id/complete", s.CompleteTask)

		apiGroup.GET("/context", s.GetContext)
		apiGroup.PUT("/context", s.UpdateContext)

		apiGroup.GET("/settings", s.GetSettings)
		apiGroup.PUT("/settings", s.UpdateSettings)

		apiGroup.POST("/chat", s.SendChatMessage)
		apiGroup.GET("/chat/history", s.GetChatHistory)
		apiGroup.DELETE("/chat/history", s.ClearChatHistory)

		apiGroup.GET("/inference/log", s.GetInferenceLog)
		apiGroup.POST("/retention/trim", s.TrimRetention)
	}
}

// Start begins serving. Blocks until the listener fails or Shutdown is
// called.
func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}
