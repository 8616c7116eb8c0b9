// Package planner implements the three typed LLM calls behind scheduling,
// prioritization, and the chat assistant. Every terminal outcome, success or
// failure, is recorded as exactly one audit row.
package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dayplan/dayplan/ent"
	"github.com/dayplan/dayplan/pkg/llm"
	"github.com/dayplan/dayplan/pkg/models"
	"github.com/dayplan/dayplan/pkg/retry"
)

// Logical call names as they appear in the audit log.
const (
	ModuleTimeslot   = "TimeSlotScheduler"
	ModulePrioritize = "TaskPrioritizer"
	ModuleAssistant  = "ChatAssistant"
)

// SettingsSource resolves the active model identifier and token cap.
// Satisfied by services.SettingsService.
type SettingsSource interface {
	GetOrCreate(ctx context.Context) (*ent.Settings, error)
}

// AuditRecorder durably records one LLM call. Satisfied by
// services.InferenceService.
type AuditRecorder interface {
	Record(ctx context.Context, moduleName, inputs, outputs string, durationMs float64)
}

// Planner wraps the LanguageModel with prompt assembly, output parsing,
// retry, and audit recording. The active model identifier and token cap are
// read from settings on every call so runtime changes take effect
// immediately.
type Planner struct {
	model     llm.LanguageModel
	settings  SettingsSource
	inference AuditRecorder
	policy    retry.Policy
}

// NewPlanner creates a new Planner.
func NewPlanner(model llm.LanguageModel, settings SettingsSource, inference AuditRecorder) *Planner {
	return &Planner{
		model:     model,
		settings:  settings,
		inference: inference,
		policy:    retry.DefaultPolicy(),
	}
}

// ScheduleTimeslot asks the model for a time slot for one task. The request's
// ExistingSchedule must already exclude the subject task and completed tasks.
func (p *Planner) ScheduleTimeslot(ctx context.Context, req models.TimeslotRequest) (*models.TimeslotResult, error) {
	var result models.TimeslotResult
	err := p.traced(ctx, ModuleTimeslot, req, &result, func(raw string) error {
		var out models.TimeslotResult
		if err := decodeObject(raw, &out); err != nil {
			return err
		}
		if out.StartTime == "" || out.EndTime == "" {
			return fmt.Errorf("timeslot response missing start or end time")
		}
		result = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// prioritizeResponse is the wrapper shape the prioritizer is instructed to
// return.
type prioritizeResponse struct {
	PrioritizedTasks []models.PrioritizedTask `json:"prioritized_tasks"`
}

// Prioritize asks the model to score the given tasks. A single score outside
// [0,10] invalidates the whole response and triggers a retry.
func (p *Planner) Prioritize(ctx context.Context, tasks []models.TaskInput, globalContext string) ([]models.PrioritizedTask, error) {
	input := map[string]any{
		"tasks":          tasks,
		"global_context": globalContext,
	}

	var result []models.PrioritizedTask
	err := p.traced(ctx, ModulePrioritize, input, &result, func(raw string) error {
		var out prioritizeResponse
		if err := decodeObject(raw, &out); err != nil {
			return err
		}
		for _, t := range out.PrioritizedTasks {
			if t.Priority < 0 || t.Priority > 10 {
				return fmt.Errorf("priority %.2f for task %d outside [0,10]", t.Priority, t.ID)
			}
		}
		result = out.PrioritizedTasks
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AssistantAct asks the model to interpret one chat message against the
// current task list. An unrecognized action type degrades to chat rather
// than failing the turn.
func (p *Planner) AssistantAct(ctx context.Context, userMessage, taskListJSON, globalContext string) (*models.TaskAction, error) {
	input := map[string]any{
		"user_message":   userMessage,
		"task_list":      json.RawMessage(taskListJSON),
		"global_context": globalContext,
	}

	var result models.TaskAction
	err := p.traced(ctx, ModuleAssistant, input, &result, func(raw string) error {
		var out models.TaskAction
		if err := decodeObject(raw, &out); err != nil {
			return err
		}
		if out.Response == "" && out.Action == "" {
			return fmt.Errorf("assistant response missing both action and response")
		}
		if !models.KnownAction(out.Action) {
			slog.Warn("Unknown assistant action, degrading to chat", "action", out.Action)
			out.Action = models.ActionChat
		}
		result = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// traced runs one call end to end: resolve settings, prompt the model under
// the retry policy, parse with the supplied decoder, then write exactly one
// audit row describing the terminal outcome. parsed is the value serialized
// into the audit row on success.
func (p *Planner) traced(ctx context.Context, moduleName string, input any, parsed any, decode func(raw string) error) error {
	st, err := p.settings.GetOrCreate(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve model settings: %w", err)
	}

	system := systemPromptFor(moduleName)
	prompt := auditString(input)

	start := time.Now()
	callErr := p.policy.Do(ctx, func(ctx context.Context) error {
		resp, err := p.model.Complete(ctx, llm.CompletionRequest{
			Model:     st.LlmModel,
			MaxTokens: st.MaxTokens,
			System:    system,
			Prompt:    prompt,
		})
		if err != nil {
			return err
		}
		return decode(resp.Content)
	})
	durationMs := float64(time.Since(start)) / float64(time.Millisecond)

	outputs := ""
	if callErr != nil {
		outputs = auditString(map[string]string{"error": callErr.Error()})
	} else {
		outputs = auditString(parsed)
	}
	p.inference.Record(ctx, moduleName, prompt, outputs, durationMs)

	if callErr != nil {
		slog.Error("LLM call failed", "module", moduleName, "error", callErr)
		return fmt.Errorf("%s call failed: %w", moduleName, callErr)
	}
	slog.Debug("LLM call completed", "module", moduleName, "duration_ms", durationMs)
	return nil
}

func systemPromptFor(moduleName string) string {
	switch moduleName {
	case ModuleTimeslot:
		return timeslotSystemPrompt
	case ModulePrioritize:
		return prioritizeSystemPrompt
	default:
		return assistantSystemPrompt
	}
}
