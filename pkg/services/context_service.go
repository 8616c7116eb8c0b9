package services

import (
	"context"
	"fmt"

	"github.com/dayplan/dayplan/ent"
	"github.com/dayplan/dayplan/ent/globalcontext"
)

// ContextService manages the GlobalContext singleton.
type ContextService struct {
	client *ent.Client
}

// NewContextService creates a new ContextService.
func NewContextService(client *ent.Client) *ContextService {
	return &ContextService{client: client}
}

// GetOrCreate returns the singleton row, creating it if absent.
// The singleton race is handled with INSERT .. ON CONFLICT DO NOTHING
// followed by a re-read, so N concurrent callers yield exactly one row.
func (s *ContextService) GetOrCreate(ctx context.Context) (*ent.GlobalContext, error) {
	err := s.client.GlobalContext.Create().
		SetSingleton(true).
		OnConflictColumns(globalcontext.FieldSingleton).
		Ignore().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure global context: %w", err)
	}

	gc, err := s.client.GlobalContext.Query().
		Where(globalcontext.Singleton(true)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load global context: %w", err)
	}
	return gc, nil
}

// Update replaces the context text.
func (s *ContextService) Update(ctx context.Context, text string) (*ent.GlobalContext, error) {
	if len(text) > 5000 {
		return nil, NewValidationError("context", "must be at most 5000 characters")
	}

	gc, err := s.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	gc, err = gc.Update().
		SetContext(text).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update global context: %w", err)
	}
	return gc, nil
}
