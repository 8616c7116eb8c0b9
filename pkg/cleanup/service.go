// Package cleanup enforces the retention policy on the LLM-call audit log
// and the chat transcript.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/dayplan/dayplan/pkg/config"
	"github.com/dayplan/dayplan/pkg/services"
)

// Service periodically deletes audit and transcript rows older than the
// retention horizon. All operations are idempotent.
type Service struct {
	retentionDays int
	interval      time.Duration
	inference     *services.InferenceService
	messages      *services.ChatMessageService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new retention service.
func NewService(cfg *config.Config, inference *services.InferenceService, messages *services.ChatMessageService) *Service {
	return &Service{
		retentionDays: cfg.RetentionDays,
		interval:      cfg.CleanupInterval,
		inference:     inference,
		messages:      messages,
	}
}

// Start launches the background retention loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Retention service started",
		"retention_days", s.retentionDays,
		"interval", s.interval)
}

// Stop signals the retention loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Retention service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.Trim(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Trim(ctx)
		}
	}
}

// TrimResult reports how many rows one pass removed.
type TrimResult struct {
	LLMCalls     int `json:"llm_calls_deleted"`
	ChatMessages int `json:"chat_messages_deleted"`
}

// Trim deletes everything past the retention horizon. Also invoked on
// demand through the API.
func (s *Service) Trim(ctx context.Context) TrimResult {
	var result TrimResult

	count, err := s.inference.DeleteOlderThan(ctx, s.retentionDays)
	if err != nil {
		slog.Error("Retention: LLM call trim failed", "error", err)
	} else {
		result.LLMCalls = count
		if count > 0 {
			slog.Info("Retention: trimmed LLM call log", "count", count)
		}
	}

	count, err = s.messages.DeleteOlderThan(ctx, s.retentionDays)
	if err != nil {
		slog.Error("Retention: chat transcript trim failed", "error", err)
	} else {
		result.ChatMessages = count
		if count > 0 {
			slog.Info("Retention: trimmed chat transcript", "count", count)
		}
	}

	return result
}
