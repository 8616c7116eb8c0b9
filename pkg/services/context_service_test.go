package services

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/dayplan/dayplan/test/database"
)

func TestContextService(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewContextService(client.Client)
	ctx := context.Background()

	t.Run("get or create seeds an empty singleton", func(t *testing.T) {
		gc, err := svc.GetOrCreate(ctx)
		require.NoError(t, err)
		assert.Equal(t, "", gc.Context)

		again, err := svc.GetOrCreate(ctx)
		require.NoError(t, err)
		assert.Equal(t, gc.ID, again.ID)
	})

	t.Run("concurrent get or create yields one row", func(t *testing.T) {
		var wg sync.WaitGroup
		errs := make([]error, 8)
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = svc.GetOrCreate(ctx)
			}(i)
		}
		wg.Wait()
		for _, err := range errs {
			require.NoError(t, err)
		}

		count, err := client.GlobalContext.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("update replaces the text", func(t *testing.T) {
		gc, err := svc.Update(ctx, "I work 9 to 5 and gym on Tuesdays")
		require.NoError(t, err)
		assert.Equal(t, "I work 9 to 5 and gym on Tuesdays", gc.Context)

		reread, err := svc.GetOrCreate(ctx)
		require.NoError(t, err)
		assert.Equal(t, gc.Context, reread.Context)
	})

	t.Run("rejects overlong context", func(t *testing.T) {
		_, err := svc.Update(ctx, strings.Repeat("a", 5001))
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestSettingsService(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSettingsService(client.Client, "openrouter/deepseek/deepseek-v3.2-exp", 2000)
	ctx := context.Background()

	t.Run("get or create seeds configured defaults", func(t *testing.T) {
		st, err := svc.GetOrCreate(ctx)
		require.NoError(t, err)
		assert.Equal(t, "openrouter/deepseek/deepseek-v3.2-exp", st.LlmModel)
		assert.Equal(t, 2000, st.MaxTokens)
	})

	t.Run("update replaces model and cap", func(t *testing.T) {
		st, err := svc.Update(ctx, "openrouter/openai/gpt-4o-mini", 4000)
		require.NoError(t, err)
		assert.Equal(t, "openrouter/openai/gpt-4o-mini", st.LlmModel)
		assert.Equal(t, 4000, st.MaxTokens)

		count, err := client.Settings.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("rejects model without provider", func(t *testing.T) {
		_, err := svc.Update(ctx, "gpt4", 1000)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects non-positive max tokens", func(t *testing.T) {
		_, err := svc.Update(ctx, "openai/gpt-4o", 0)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}
