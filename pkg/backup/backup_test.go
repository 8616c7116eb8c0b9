package backup

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayplan/dayplan/pkg/models"
	testdb "github.com/dayplan/dayplan/test/database"
)

func TestExportImportRoundTrip(t *testing.T) {
	client := testdb.NewTestClient(t)
	mgr := NewManager(client.Client)
	ctx := context.Background()

	due := time.Now().Add(48 * time.Hour).Truncate(time.Second)
	require.NoError(t, client.Task.Create().
		SetTitle("Backed up").
		SetDescription("with due date").
		SetDueDate(due).
		SetPriority(7.5).
		SetNeedsScheduling(true).
		Exec(ctx))
	require.NoError(t, client.GlobalContext.Create().
		SetSingleton(true).
		SetContext("remote on Fridays").
		Exec(ctx))
	require.NoError(t, client.Settings.Create().
		SetSingleton(true).
		SetLlmModel("openrouter/test/model").
		SetMaxTokens(1234).
		Exec(ctx))
	require.NoError(t, client.ChatMessage.Create().
		SetUserMessage("hi").
		SetAssistantResponse("hello").
		Exec(ctx))

	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, mgr.ExportToFile(ctx, path))

	// Mutate the store, then restore.
	_, err := client.Task.Delete().Exec(ctx)
	require.NoError(t, err)
	require.NoError(t, client.Task.Create().SetTitle("Impostor").Exec(ctx))

	require.NoError(t, mgr.ImportFromFile(ctx, path))

	tasks, err := client.Task.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Backed up", tasks[0].Title)
	assert.Equal(t, 7.5, tasks[0].Priority)
	assert.True(t, tasks[0].NeedsScheduling)
	require.NotNil(t, tasks[0].DueDate)
	assert.Equal(t, due.Unix(), tasks[0].DueDate.Unix())

	gcs, err := client.GlobalContext.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, gcs, 1)
	assert.Equal(t, "remote on Fridays", gcs[0].Context)

	msgs, err := client.ChatMessage.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "hi", msgs[0].UserMessage)
}

func TestImportToleratesMissingSections(t *testing.T) {
	client := testdb.NewTestClient(t)
	mgr := NewManager(client.Client)
	ctx := context.Background()

	require.NoError(t, client.Settings.Create().
		SetSingleton(true).
		SetLlmModel("openrouter/keep/me").
		SetMaxTokens(500).
		Exec(ctx))

	doc := &models.BackupDocument{
		BackupTime: time.Now().Format(time.RFC3339),
		Tasks:      []models.BackupTask{{Title: "Only task"}},
	}
	require.NoError(t, mgr.Import(ctx, doc))

	// Absent sections leave existing rows untouched.
	st, err := client.Settings.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "openrouter/keep/me", st.LlmModel)

	tasks, err := client.Task.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Only task", tasks[0].Title)
}
