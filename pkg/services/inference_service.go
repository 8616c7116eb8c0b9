package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dayplan/dayplan/ent"
	"github.com/dayplan/dayplan/ent/llmcall"
	"github.com/dayplan/dayplan/pkg/retry"
)

// InferenceService manages the durable LLM-call audit log.
type InferenceService struct {
	client *ent.Client
	policy retry.Policy
}

// NewInferenceService creates a new InferenceService.
func NewInferenceService(client *ent.Client) *InferenceService {
	return &InferenceService{
		client: client,
		policy: retry.DefaultPolicy(),
	}
}

// Record durably appends one audit row. The write is retried with backoff,
// and failures are logged but never propagated: a lost audit row must not
// fail the LLM call it describes.
func (s *InferenceService) Record(ctx context.Context, moduleName, inputs, outputs string, durationMs float64) {
	err := s.policy.Do(ctx, func(ctx context.Context) error {
		return s.client.LLMCall.Create().
			SetModuleName(moduleName).
			SetInputs(inputs).
			SetOutputs(outputs).
			SetDurationMs(durationMs).
			Exec(ctx)
	})
	if err != nil {
		slog.Error("Failed to record LLM call audit row",
			"module", moduleName, "error", err)
	}
}

// GetLatest returns the newest audit rows first.
func (s *InferenceService) GetLatest(ctx context.Context, limit int) ([]*ent.LLMCall, error) {
	return s.client.LLMCall.Query().
		Order(ent.Desc(llmcall.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}

// DeleteOlderThan removes audit rows past the retention horizon.
func (s *InferenceService) DeleteOlderThan(ctx context.Context, days int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	count, err := s.client.LLMCall.Delete().
		Where(llmcall.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old LLM call records: %w", err)
	}
	return count, nil
}
