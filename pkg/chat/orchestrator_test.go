package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayplan/dayplan/pkg/config"
	"github.com/dayplan/dayplan/pkg/models"
	"github.com/dayplan/dayplan/pkg/services"
	testdb "github.com/dayplan/dayplan/test/database"
)

type stubAssistant struct {
	action *models.TaskAction
	err    error

	lastTaskList string
}

func (s *stubAssistant) AssistantAct(_ context.Context, _, taskListJSON, _ string) (*models.TaskAction, error) {
	s.lastTaskList = taskListJSON
	if s.err != nil {
		return nil, s.err
	}
	return s.action, nil
}

func setupOrchestrator(t *testing.T, assistant Assistant) (*Orchestrator, *services.TaskService, *services.ChatMessageService) {
	client := testdb.NewTestClient(t)
	cfg := &config.Config{FallbackStartHour: 9, FallbackDuration: time.Hour}
	tasks := services.NewTaskService(client.Client, cfg)
	messages := services.NewChatMessageService(client.Client)
	globalCtx := services.NewContextService(client.Client)
	return NewOrchestrator(tasks, messages, globalCtx, assistant), tasks, messages
}

func TestOrchestrator_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("pure chat persists one exchange", func(t *testing.T) {
		orch, _, messages := setupOrchestrator(t, &stubAssistant{
			action: &models.TaskAction{Action: models.ActionChat, Response: "You have a free afternoon."},
		})

		msg, err := orch.Send(ctx, "how does my day look?")
		require.NoError(t, err)
		assert.Equal(t, "how does my day look?", msg.UserMessage)
		assert.Equal(t, "You have a free afternoon.", msg.AssistantResponse)

		history, err := messages.GetRecent(ctx, 10)
		require.NoError(t, err)
		assert.Len(t, history, 1)
	})

	t.Run("create action without title uses default", func(t *testing.T) {
		orch, tasks, _ := setupOrchestrator(t, &stubAssistant{
			action: &models.TaskAction{Action: models.ActionCreateTask, Response: "Added."},
		})

		_, err := orch.Send(ctx, "add something")
		require.NoError(t, err)

		all, err := tasks.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "Untitled Task", all[0].Title)
		assert.True(t, all[0].NeedsScheduling)
	})

	t.Run("complete action drives the state machine", func(t *testing.T) {
		assistant := &stubAssistant{}
		orch, tasks, _ := setupOrchestrator(t, assistant)

		task, err := tasks.Create(ctx, services.CreateTaskRequest{Title: "Ship it"})
		require.NoError(t, err)
		_, err = tasks.Start(ctx, task.ID)
		require.NoError(t, err)

		assistant.action = &models.TaskAction{
			Action:   models.ActionCompleteTask,
			TaskID:   &task.ID,
			Response: "Marked as done.",
		}
		msg, err := orch.Send(ctx, "I finished ship it")
		require.NoError(t, err)
		assert.Equal(t, "Marked as done.", msg.AssistantResponse)

		done, err := tasks.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.True(t, done.Completed)
	})

	t.Run("missing task id appends a note", func(t *testing.T) {
		orch, _, _ := setupOrchestrator(t, &stubAssistant{
			action: &models.TaskAction{Action: models.ActionStartTask, Response: "Starting it now."},
		})

		msg, err := orch.Send(ctx, "start that thing")
		require.NoError(t, err)
		assert.Contains(t, msg.AssistantResponse, "Starting it now.")
		assert.Contains(t, msg.AssistantResponse, "Note:")
	})

	t.Run("failed action appends a note instead of failing the turn", func(t *testing.T) {
		ghost := 999999
		orch, _, _ := setupOrchestrator(t, &stubAssistant{
			action: &models.TaskAction{Action: models.ActionDeleteTask, TaskID: &ghost, Response: "Deleted."},
		})

		msg, err := orch.Send(ctx, "delete it")
		require.NoError(t, err)
		assert.Contains(t, msg.AssistantResponse, "Note:")
	})

	t.Run("assistant failure persists an apology", func(t *testing.T) {
		orch, _, messages := setupOrchestrator(t, &stubAssistant{err: errors.New("model unavailable")})

		msg, err := orch.Send(ctx, "hello?")
		require.NoError(t, err)
		assert.Equal(t, fallbackResponse, msg.AssistantResponse)

		history, err := messages.GetRecent(ctx, 10)
		require.NoError(t, err)
		assert.Len(t, history, 1)
	})

	t.Run("empty message is rejected without persisting", func(t *testing.T) {
		orch, _, messages := setupOrchestrator(t, &stubAssistant{})

		_, err := orch.Send(ctx, "")
		require.Error(t, err)
		assert.True(t, services.IsValidationError(err))

		history, err := messages.GetRecent(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("task snapshot reaches the assistant", func(t *testing.T) {
		assistant := &stubAssistant{
			action: &models.TaskAction{Action: models.ActionChat, Response: "ok"},
		}
		orch, tasks, _ := setupOrchestrator(t, assistant)

		_, err := tasks.Create(ctx, services.CreateTaskRequest{Title: "Visible to the model"})
		require.NoError(t, err)

		_, err = orch.Send(ctx, "what do I have?")
		require.NoError(t, err)
		assert.Contains(t, assistant.lastTaskList, "Visible to the model")
	})
}
