package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/dayplan/dayplan/test/database"
)

func TestInferenceService(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewInferenceService(client.Client)
	ctx := context.Background()

	t.Run("record then read newest first", func(t *testing.T) {
		svc.Record(ctx, "TimeSlotScheduler", `{"task":"a"}`, `{"start":"x"}`, 120.5)
		svc.Record(ctx, "TaskPrioritizer", `{"tasks":[]}`, `{"scores":[]}`, 300)

		calls, err := svc.GetLatest(ctx, 10)
		require.NoError(t, err)
		require.Len(t, calls, 2)
		assert.Equal(t, "TaskPrioritizer", calls[0].ModuleName)
		assert.Equal(t, "TimeSlotScheduler", calls[1].ModuleName)
	})

	t.Run("limit caps the result", func(t *testing.T) {
		calls, err := svc.GetLatest(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, calls, 1)
	})

	t.Run("retention deletes only rows past the horizon", func(t *testing.T) {
		old := time.Now().AddDate(0, 0, -40)
		err := client.LLMCall.Create().
			SetModuleName("ChatAssistant").
			SetInputs("{}").
			SetOutputs("{}").
			SetDurationMs(10).
			SetCreatedAt(old).
			Exec(ctx)
		require.NoError(t, err)

		deleted, err := svc.DeleteOlderThan(ctx, 30)
		require.NoError(t, err)
		assert.Equal(t, 1, deleted)

		remaining, err := client.LLMCall.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, remaining)
	})
}

func TestChatMessageService(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewChatMessageService(client.Client)
	ctx := context.Background()

	t.Run("create and read newest first", func(t *testing.T) {
		_, err := svc.Create(ctx, "hello", "hi there")
		require.NoError(t, err)

		_, err = svc.Create(ctx, "what's next", "your report is at 2pm")
		require.NoError(t, err)

		messages, err := svc.GetRecent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, messages, 2)
		assert.Equal(t, "what's next", messages[0].UserMessage)
	})

	t.Run("retention deletes only rows past the horizon", func(t *testing.T) {
		old := time.Now().AddDate(0, 0, -31)
		err := client.ChatMessage.Create().
			SetUserMessage("ancient").
			SetAssistantResponse("history").
			SetCreatedAt(old).
			Exec(ctx)
		require.NoError(t, err)

		deleted, err := svc.DeleteOlderThan(ctx, 30)
		require.NoError(t, err)
		assert.Equal(t, 1, deleted)
	})

	t.Run("delete all clears the transcript", func(t *testing.T) {
		count, err := svc.DeleteAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		messages, err := svc.GetRecent(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, messages)
	})
}
