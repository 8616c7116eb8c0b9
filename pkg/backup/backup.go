// Package backup exports the store to a JSON document and restores it.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dayplan/dayplan/ent"
	"github.com/dayplan/dayplan/ent/chatmessage"
	"github.com/dayplan/dayplan/ent/globalcontext"
	"github.com/dayplan/dayplan/ent/settings"
	"github.com/dayplan/dayplan/ent/task"
	"github.com/dayplan/dayplan/pkg/models"
)

// Manager reads and writes backup documents against the store.
type Manager struct {
	client *ent.Client
}

// NewManager creates a backup manager.
func NewManager(client *ent.Client) *Manager {
	return &Manager{client: client}
}

// Export snapshots the whole store into one document.
func (m *Manager) Export(ctx context.Context) (*models.BackupDocument, error) {
	doc := &models.BackupDocument{
		BackupTime: time.Now().Format(time.RFC3339),
	}

	tasks, err := m.client.Task.Query().Order(ent.Asc(task.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}
	doc.Tasks = make([]models.BackupTask, 0, len(tasks))
	for _, t := range tasks {
		doc.Tasks = append(doc.Tasks, models.BackupTask{
			Title:           t.Title,
			Description:     t.Description,
			Context:         t.Context,
			DueDate:         formatPtr(t.DueDate),
			ScheduledStart:  formatPtr(t.ScheduledStart),
			ScheduledEnd:    formatPtr(t.ScheduledEnd),
			ActualStart:     formatPtr(t.ActualStart),
			ActualEnd:       formatPtr(t.ActualEnd),
			Priority:        t.Priority,
			Completed:       t.Completed,
			NeedsScheduling: t.NeedsScheduling,
		})
	}

	gc, err := m.client.GlobalContext.Query().Where(globalcontext.Singleton(true)).Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to read global context: %w", err)
	}
	if gc != nil {
		doc.GlobalContext = &models.BackupContext{Context: gc.Context}
	}

	st, err := m.client.Settings.Query().Where(settings.Singleton(true)).Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	if st != nil {
		doc.Settings = &models.BackupSettings{LLMModel: st.LlmModel, MaxTokens: st.MaxTokens}
	}

	messages, err := m.client.ChatMessage.Query().Order(ent.Asc(chatmessage.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read chat messages: %w", err)
	}
	for _, msg := range messages {
		doc.ChatMessages = append(doc.ChatMessages, models.BackupChatMessage{
			UserMessage:       msg.UserMessage,
			AssistantResponse: msg.AssistantResponse,
			CreatedAt:         msg.CreatedAt.Format(time.RFC3339),
		})
	}

	return doc, nil
}

// ExportToFile writes the backup document to path as indented JSON.
func (m *Manager) ExportToFile(ctx context.Context, path string) error {
	doc, err := m.Export(ctx)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}

	slog.Info("Backup written", "path", path, "tasks", len(doc.Tasks), "chat_messages", len(doc.ChatMessages))
	return nil
}

// Import replaces the store's contents with the document's. Everything runs
// in one transaction; task IDs are re-issued. Missing optional sections
// leave the corresponding tables untouched.
func (m *Manager) Import(ctx context.Context, doc *models.BackupDocument) error {
	tx, err := m.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Task.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}
	for _, t := range doc.Tasks {
		builder := tx.Task.Create().
			SetTitle(t.Title).
			SetDescription(t.Description).
			SetContext(t.Context).
			SetPriority(t.Priority).
			SetCompleted(t.Completed).
			SetNeedsScheduling(t.NeedsScheduling)
		if ts := parsePtr(t.DueDate); ts != nil {
			builder = builder.SetDueDate(*ts)
		}
		if ts := parsePtr(t.ScheduledStart); ts != nil {
			builder = builder.SetScheduledStart(*ts)
		}
		if ts := parsePtr(t.ScheduledEnd); ts != nil {
			builder = builder.SetScheduledEnd(*ts)
		}
		if ts := parsePtr(t.ActualStart); ts != nil {
			builder = builder.SetActualStart(*ts)
		}
		if ts := parsePtr(t.ActualEnd); ts != nil {
			builder = builder.SetActualEnd(*ts)
		}
		if err := builder.Exec(ctx); err != nil {
			return fmt.Errorf("failed to restore task %q: %w", t.Title, err)
		}
	}

	if doc.GlobalContext != nil {
		if _, err := tx.GlobalContext.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("failed to clear global context: %w", err)
		}
		if err := tx.GlobalContext.Create().
			SetSingleton(true).
			SetContext(doc.GlobalContext.Context).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to restore global context: %w", err)
		}
	}

	if doc.Settings != nil {
		if _, err := tx.Settings.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("failed to clear settings: %w", err)
		}
		if err := tx.Settings.Create().
			SetSingleton(true).
			SetLlmModel(doc.Settings.LLMModel).
			SetMaxTokens(doc.Settings.MaxTokens).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to restore settings: %w", err)
		}
	}

	if len(doc.ChatMessages) > 0 {
		if _, err := tx.ChatMessage.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("failed to clear chat messages: %w", err)
		}
		for _, msg := range doc.ChatMessages {
			builder := tx.ChatMessage.Create().
				SetUserMessage(msg.UserMessage).
				SetAssistantResponse(msg.AssistantResponse)
			if ts := parsePtr(&msg.CreatedAt); ts != nil {
				builder = builder.SetCreatedAt(*ts)
			}
			if err := builder.Exec(ctx); err != nil {
				return fmt.Errorf("failed to restore chat message: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit restore: %w", err)
	}

	slog.Info("Backup restored", "tasks", len(doc.Tasks), "chat_messages", len(doc.ChatMessages))
	return nil
}

// ImportFromFile restores the store from a backup file.
func (m *Manager) ImportFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	var doc models.BackupDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse backup file: %w", err)
	}
	return m.Import(ctx, &doc)
}

func formatPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func parsePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	return &t
}
