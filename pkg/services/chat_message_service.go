package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dayplan/dayplan/ent"
	"github.com/dayplan/dayplan/ent/chatmessage"
)

// ChatMessageService manages the append-only chat transcript.
type ChatMessageService struct {
	client *ent.Client
}

// NewChatMessageService creates a new ChatMessageService.
func NewChatMessageService(client *ent.Client) *ChatMessageService {
	return &ChatMessageService{client: client}
}

// Create appends one transcript row.
func (s *ChatMessageService) Create(ctx context.Context, userMessage, assistantResponse string) (*ent.ChatMessage, error) {
	msg, err := s.client.ChatMessage.Create().
		SetUserMessage(userMessage).
		SetAssistantResponse(assistantResponse).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat message: %w", err)
	}
	return msg, nil
}

// GetRecent returns the newest messages first.
func (s *ChatMessageService) GetRecent(ctx context.Context, limit int) ([]*ent.ChatMessage, error) {
	return s.client.ChatMessage.Query().
		Order(ent.Desc(chatmessage.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}

// DeleteAll clears the transcript and returns the number of rows removed.
func (s *ChatMessageService) DeleteAll(ctx context.Context) (int, error) {
	count, err := s.client.ChatMessage.Delete().Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete chat messages: %w", err)
	}
	return count, nil
}

// DeleteOlderThan removes transcript rows past the retention horizon.
func (s *ChatMessageService) DeleteOlderThan(ctx context.Context, days int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	count, err := s.client.ChatMessage.Delete().
		Where(chatmessage.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old chat messages: %w", err)
	}
	return count, nil
}
