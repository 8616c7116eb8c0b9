package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dayplan/dayplan/ent"
	"github.com/dayplan/dayplan/ent/settings"
)

// SettingsService manages the Settings singleton (active model identifier
// and max-token cap). Same get-or-create pattern as the global context.
type SettingsService struct {
	client           *ent.Client
	defaultModel     string
	defaultMaxTokens int
}

// NewSettingsService creates a new SettingsService. The defaults seed the
// singleton on first access.
func NewSettingsService(client *ent.Client, defaultModel string, defaultMaxTokens int) *SettingsService {
	return &SettingsService{
		client:           client,
		defaultModel:     defaultModel,
		defaultMaxTokens: defaultMaxTokens,
	}
}

// GetOrCreate returns the singleton row, creating it with configured
// defaults if absent.
func (s *SettingsService) GetOrCreate(ctx context.Context) (*ent.Settings, error) {
	err := s.client.Settings.Create().
		SetSingleton(true).
		SetLlmModel(s.defaultModel).
		SetMaxTokens(s.defaultMaxTokens).
		OnConflictColumns(settings.FieldSingleton).
		Ignore().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure settings: %w", err)
	}

	st, err := s.client.Settings.Query().
		Where(settings.Singleton(true)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return st, nil
}

// Update replaces the model identifier and max-token cap.
func (s *SettingsService) Update(ctx context.Context, llmModel string, maxTokens int) (*ent.Settings, error) {
	if !strings.Contains(llmModel, "/") {
		return nil, NewValidationError("llm_model", "must be in provider/model form")
	}
	if maxTokens <= 0 {
		return nil, NewValidationError("max_tokens", "must be positive")
	}

	st, err := s.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	st, err = st.Update().
		SetLlmModel(llmModel).
		SetMaxTokens(maxTokens).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return st, nil
}
