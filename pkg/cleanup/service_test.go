package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayplan/dayplan/pkg/config"
	"github.com/dayplan/dayplan/pkg/services"
	testdb "github.com/dayplan/dayplan/test/database"
)

func TestTrim(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := &config.Config{RetentionDays: 30, CleanupInterval: 12 * time.Hour}
	inference := services.NewInferenceService(client.Client)
	messages := services.NewChatMessageService(client.Client)
	svc := NewService(cfg, inference, messages)
	ctx := context.Background()

	old := time.Now().AddDate(0, 0, -45)

	require.NoError(t, client.LLMCall.Create().
		SetModuleName("TimeSlotScheduler").
		SetInputs("{}").SetOutputs("{}").SetDurationMs(5).
		SetCreatedAt(old).Exec(ctx))
	require.NoError(t, client.LLMCall.Create().
		SetModuleName("ChatAssistant").
		SetInputs("{}").SetOutputs("{}").SetDurationMs(5).
		Exec(ctx))
	require.NoError(t, client.ChatMessage.Create().
		SetUserMessage("old").SetAssistantResponse("old").
		SetCreatedAt(old).Exec(ctx))
	require.NoError(t, client.ChatMessage.Create().
		SetUserMessage("fresh").SetAssistantResponse("fresh").
		Exec(ctx))

	t.Run("removes only rows past the horizon", func(t *testing.T) {
		result := svc.Trim(ctx)
		assert.Equal(t, 1, result.LLMCalls)
		assert.Equal(t, 1, result.ChatMessages)

		calls, err := client.LLMCall.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		remaining, err := client.ChatMessage.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, remaining)
	})

	t.Run("second pass is a no-op", func(t *testing.T) {
		result := svc.Trim(ctx)
		assert.Zero(t, result.LLMCalls)
		assert.Zero(t, result.ChatMessages)
	})
}

func TestLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := &config.Config{RetentionDays: 30, CleanupInterval: time.Hour}
	svc := NewService(cfg,
		services.NewInferenceService(client.Client),
		services.NewChatMessageService(client.Client))

	svc.Start(context.Background())
	svc.Stop()

	// Stop after Stop must not block or panic.
	svc.Stop()
}
