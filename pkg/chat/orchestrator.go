// Package chat turns user utterances into task actions through the
// assistant model and keeps the conversation transcript.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dayplan/dayplan/ent"
	"github.com/dayplan/dayplan/pkg/models"
	"github.com/dayplan/dayplan/pkg/services"
)

// Assistant is the planner surface the orchestrator consumes.
type Assistant interface {
	AssistantAct(ctx context.Context, userMessage, taskListJSON, globalContext string) (*models.TaskAction, error)
}

const fallbackResponse = "Sorry, I couldn't process that request right now. Please try again."

// Orchestrator handles one chat turn end to end: snapshot state, ask the
// assistant, dispatch the chosen action, persist the exchange. Exactly one
// transcript row is written per turn, even when the model fails.
type Orchestrator struct {
	tasks     *services.TaskService
	messages  *services.ChatMessageService
	globalCtx *services.ContextService
	assistant Assistant
}

// NewOrchestrator creates a new chat orchestrator.
func NewOrchestrator(tasks *services.TaskService, messages *services.ChatMessageService, globalCtx *services.ContextService, assistant Assistant) *Orchestrator {
	return &Orchestrator{
		tasks:     tasks,
		messages:  messages,
		globalCtx: globalCtx,
		assistant: assistant,
	}
}

// Send processes one user message and returns the persisted exchange.
func (o *Orchestrator) Send(ctx context.Context, message string) (*ent.ChatMessage, error) {
	if message == "" {
		return nil, services.NewValidationError("message", "must not be empty")
	}

	response := o.respond(ctx, message)

	msg, err := o.messages.Create(ctx, message, response)
	if err != nil {
		return nil, fmt.Errorf("failed to persist chat exchange: %w", err)
	}
	return msg, nil
}

// History returns the newest transcript rows first.
func (o *Orchestrator) History(ctx context.Context, limit int) ([]*ent.ChatMessage, error) {
	return o.messages.GetRecent(ctx, limit)
}

// ClearHistory wipes the transcript and returns the number of rows removed.
func (o *Orchestrator) ClearHistory(ctx context.Context) (int, error) {
	return o.messages.DeleteAll(ctx)
}

// respond produces the assistant's reply. Model failure degrades to an
// apology; it never aborts the turn.
func (o *Orchestrator) respond(ctx context.Context, message string) string {
	taskList, err := o.snapshotTasks(ctx)
	if err != nil {
		slog.Error("Chat: failed to snapshot tasks", "error", err)
		return fallbackResponse
	}

	gc, err := o.globalCtx.GetOrCreate(ctx)
	if err != nil {
		slog.Error("Chat: failed to load global context", "error", err)
		return fallbackResponse
	}

	action, err := o.assistant.AssistantAct(ctx, message, taskList, gc.Context)
	if err != nil {
		slog.Error("Chat: assistant call failed", "error", err)
		return fallbackResponse
	}

	return o.dispatch(ctx, action)
}

// dispatch executes the assistant's chosen action and returns the final
// response text. Action failures append a note rather than replacing the
// model's reply.
func (o *Orchestrator) dispatch(ctx context.Context, action *models.TaskAction) string {
	response := action.Response

	switch action.Action {
	case models.ActionCreateTask:
		title := action.Title
		if title == "" {
			title = "Untitled Task"
		}
		_, err := o.tasks.Create(ctx, services.CreateTaskRequest{
			Title:       title,
			Description: action.Description,
			Context:     action.Context,
		})
		if err != nil {
			return withNote(response, "I couldn't create the task: "+err.Error())
		}

	case models.ActionUpdateTask:
		id, ok := requireID(action)
		if !ok {
			return withNote(response, "I couldn't tell which task to update.")
		}
		req := services.UpdateTaskRequest{}
		if action.Title != "" {
			req.Title = &action.Title
		}
		if action.Description != "" {
			req.Description = &action.Description
		}
		if action.Context != "" {
			req.Context = &action.Context
		}
		if _, err := o.tasks.Update(ctx, id, req); err != nil {
			return withNote(response, "I couldn't update the task: "+err.Error())
		}

	case models.ActionDeleteTask:
		id, ok := requireID(action)
		if !ok {
			return withNote(response, "I couldn't tell which task to delete.")
		}
		if err := o.tasks.Delete(ctx, id); err != nil {
			return withNote(response, "I couldn't delete the task: "+err.Error())
		}

	case models.ActionStartTask:
		id, ok := requireID(action)
		if !ok {
			return withNote(response, "I couldn't tell which task to start.")
		}
		if _, err := o.tasks.Start(ctx, id); err != nil {
			return withNote(response, "I couldn't start the task: "+err.Error())
		}

	case models.ActionCompleteTask:
		id, ok := requireID(action)
		if !ok {
			return withNote(response, "I couldn't tell which task to complete.")
		}
		if _, err := o.tasks.Complete(ctx, id); err != nil {
			return withNote(response, "I couldn't complete the task: "+err.Error())
		}

	case models.ActionStopTask:
		id, ok := requireID(action)
		if !ok {
			return withNote(response, "I couldn't tell which task to stop.")
		}
		if _, err := o.tasks.Stop(ctx, id); err != nil {
			return withNote(response, "I couldn't stop the task: "+err.Error())
		}

	case models.ActionListTasks, models.ActionGetTask, models.ActionChat:
		// Read-only or pure conversation; the model's response stands.
	}

	return response
}

// snapshotTasks serializes the full task list for the assistant prompt.
func (o *Orchestrator) snapshotTasks(ctx context.Context) (string, error) {
	tasks, err := o.tasks.GetAll(ctx)
	if err != nil {
		return "", err
	}

	snapshots := make([]models.TaskSnapshot, 0, len(tasks))
	for _, t := range tasks {
		snap := models.TaskSnapshot{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Context:     t.Context,
			Priority:    t.Priority,
			Completed:   t.Completed,
		}
		snap.ScheduledStart = formatPtr(t.ScheduledStart)
		snap.ScheduledEnd = formatPtr(t.ScheduledEnd)
		snap.ActualStart = formatPtr(t.ActualStart)
		snapshots = append(snapshots, snap)
	}

	b, err := json.Marshal(snapshots)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func formatPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func requireID(action *models.TaskAction) (int, bool) {
	if action.TaskID == nil {
		return 0, false
	}
	return *action.TaskID, true
}

func withNote(response, note string) string {
	if response == "" {
		return note
	}
	return response + "\n\nNote: " + note
}
