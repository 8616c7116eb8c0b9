package planner

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayplan/dayplan/ent"
	"github.com/dayplan/dayplan/pkg/llm"
	"github.com/dayplan/dayplan/pkg/models"
	"github.com/dayplan/dayplan/pkg/retry"
)

type stubSettings struct{}

func (stubSettings) GetOrCreate(context.Context) (*ent.Settings, error) {
	return &ent.Settings{LlmModel: "openrouter/test/model", MaxTokens: 2000}, nil
}

type recordedCall struct {
	Module  string
	Inputs  string
	Outputs string
}

type stubAudit struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (a *stubAudit) Record(_ context.Context, moduleName, inputs, outputs string, _ float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls = append(a.calls, recordedCall{Module: moduleName, Inputs: inputs, Outputs: outputs})
}

func newTestPlanner(model llm.LanguageModel, audit *stubAudit) *Planner {
	p := NewPlanner(model, stubSettings{}, audit)
	p.policy = retry.Policy{Attempts: 3, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond}
	return p
}

func TestScheduleTimeslot(t *testing.T) {
	t.Run("parses fenced response", func(t *testing.T) {
		mock := llm.NewMockModel().Respond("```json\n{\"start_time\": \"2026-08-25T14:00:00\", \"end_time\": \"2026-08-25T15:00:00\", \"reasoning\": \"afternoon is free\"}\n```")
		audit := &stubAudit{}
		p := newTestPlanner(mock, audit)

		result, err := p.ScheduleTimeslot(context.Background(), models.TimeslotRequest{
			NewTask:         "Write report",
			CurrentDatetime: "2026-08-25T10:00:00",
		})
		require.NoError(t, err)
		assert.Equal(t, "2026-08-25T14:00:00", result.StartTime)
		assert.Equal(t, "2026-08-25T15:00:00", result.EndTime)
		assert.Equal(t, "afternoon is free", result.Reasoning)

		require.Len(t, audit.calls, 1)
		assert.Equal(t, ModuleTimeslot, audit.calls[0].Module)
		assert.Contains(t, audit.calls[0].Inputs, "Write report")
		assert.Contains(t, audit.calls[0].Outputs, "2026-08-25T14:00:00")
	})

	t.Run("retries on malformed output then succeeds", func(t *testing.T) {
		mock := llm.NewMockModel().
			Respond("I cannot answer that.").
			Respond(`{"start_time": "2026-08-25T09:00:00", "end_time": "2026-08-25T10:00:00", "reasoning": "ok"}`)
		audit := &stubAudit{}
		p := newTestPlanner(mock, audit)

		result, err := p.ScheduleTimeslot(context.Background(), models.TimeslotRequest{NewTask: "x"})
		require.NoError(t, err)
		assert.Equal(t, "2026-08-25T09:00:00", result.StartTime)
		assert.Equal(t, 2, mock.CallCount())
		// One audit row per terminal outcome, not per attempt.
		assert.Len(t, audit.calls, 1)
	})

	t.Run("exhausted retries record failure", func(t *testing.T) {
		mock := llm.NewMockModel().Fail(errors.New("upstream unavailable"))
		audit := &stubAudit{}
		p := newTestPlanner(mock, audit)

		_, err := p.ScheduleTimeslot(context.Background(), models.TimeslotRequest{NewTask: "x"})
		require.Error(t, err)
		assert.Equal(t, 3, mock.CallCount())
		require.Len(t, audit.calls, 1)
		assert.Contains(t, audit.calls[0].Outputs, "upstream unavailable")
	})
}

func TestPrioritize(t *testing.T) {
	tasks := []models.TaskInput{
		{ID: 1, Title: "Pay rent"},
		{ID: 2, Title: "Water plants"},
	}

	t.Run("returns scored tasks", func(t *testing.T) {
		mock := llm.NewMockModel().Respond(`{"prioritized_tasks": [
			{"id": 1, "title": "Pay rent", "priority": 9.5, "reasoning": "due soon"},
			{"id": 2, "title": "Water plants", "priority": 2, "reasoning": "can wait"}]}`)
		p := newTestPlanner(mock, &stubAudit{})

		result, err := p.Prioritize(context.Background(), tasks, "rent is due on the 1st")
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, 9.5, result[0].Priority)
		assert.Equal(t, 2, result[1].ID)
	})

	t.Run("out of range score invalidates whole response", func(t *testing.T) {
		bad := `{"prioritized_tasks": [{"id": 1, "title": "Pay rent", "priority": 11, "reasoning": "x"}]}`
		good := `{"prioritized_tasks": [{"id": 1, "title": "Pay rent", "priority": 10, "reasoning": "x"}]}`
		mock := llm.NewMockModel().Respond(bad).Respond(good)
		p := newTestPlanner(mock, &stubAudit{})

		result, err := p.Prioritize(context.Background(), tasks[:1], "")
		require.NoError(t, err)
		assert.Equal(t, 2, mock.CallCount())
		assert.Equal(t, 10.0, result[0].Priority)
	})

	t.Run("boundary scores are valid", func(t *testing.T) {
		mock := llm.NewMockModel().Respond(`{"prioritized_tasks": [
			{"id": 1, "title": "a", "priority": 0, "reasoning": ""},
			{"id": 2, "title": "b", "priority": 10, "reasoning": ""}]}`)
		p := newTestPlanner(mock, &stubAudit{})

		result, err := p.Prioritize(context.Background(), tasks, "")
		require.NoError(t, err)
		assert.Equal(t, 1, mock.CallCount())
		assert.Len(t, result, 2)
	})
}

func TestAssistantAct(t *testing.T) {
	t.Run("returns known action", func(t *testing.T) {
		mock := llm.NewMockModel().Respond(`{"action": "create_task", "title": "Buy milk", "response": "Created it."}`)
		p := newTestPlanner(mock, &stubAudit{})

		action, err := p.AssistantAct(context.Background(), "add buy milk", "[]", "")
		require.NoError(t, err)
		assert.Equal(t, models.ActionCreateTask, action.Action)
		assert.Equal(t, "Buy milk", action.Title)
	})

	t.Run("unknown action degrades to chat", func(t *testing.T) {
		mock := llm.NewMockModel().Respond(`{"action": "reschedule_everything", "response": "Done!"}`)
		p := newTestPlanner(mock, &stubAudit{})

		action, err := p.AssistantAct(context.Background(), "hi", "[]", "")
		require.NoError(t, err)
		assert.Equal(t, models.ActionChat, action.Action)
		assert.Equal(t, "Done!", action.Response)
		// Degrading is not a parse failure; no retry fires.
		assert.Equal(t, 1, mock.CallCount())
	})

	t.Run("model failure surfaces after retries", func(t *testing.T) {
		mock := llm.NewMockModel().Fail(errors.New("timeout"))
		audit := &stubAudit{}
		p := newTestPlanner(mock, audit)

		_, err := p.AssistantAct(context.Background(), "hi", "[]", "")
		require.Error(t, err)
		assert.Equal(t, 3, mock.CallCount())
		require.Len(t, audit.calls, 1)
		assert.Equal(t, ModuleAssistant, audit.calls[0].Module)
	})
}

func TestParseISOTime(t *testing.T) {
	t.Run("accepts common layouts", func(t *testing.T) {
		for _, s := range []string{
			"2026-08-25T14:30:00",
			"2026-08-25 14:30:00",
			"2026-08-25T14:30:00Z",
			"2026-08-25T14:30",
			"2026-08-25",
		} {
			result := ParseISOTime(s)
			require.NotNil(t, result, "layout %q", s)
			assert.Equal(t, 2026, result.Year())
		}
	})

	t.Run("returns nil on garbage", func(t *testing.T) {
		assert.Nil(t, ParseISOTime(""))
		assert.Nil(t, ParseISOTime("tomorrow afternoon"))
		assert.Nil(t, ParseISOTime("25/08/2026"))
	})
}

func TestDecodeObject(t *testing.T) {
	t.Run("repairs trailing comma", func(t *testing.T) {
		var out models.TimeslotResult
		err := decodeObject(`{"start_time": "a", "end_time": "b", "reasoning": "c",}`, &out)
		require.NoError(t, err)
		assert.Equal(t, "a", out.StartTime)
	})

	t.Run("strips leading prose", func(t *testing.T) {
		var out models.TaskAction
		err := decodeObject(`Sure, here is the action: {"action": "chat", "response": "hello"}`, &out)
		require.NoError(t, err)
		assert.Equal(t, "hello", out.Response)
	})

	t.Run("rejects empty output", func(t *testing.T) {
		var out models.TaskAction
		assert.Error(t, decodeObject("   ", &out))
	})
}
