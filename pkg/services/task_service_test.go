package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayplan/dayplan/pkg/config"
	testdb "github.com/dayplan/dayplan/test/database"
)

func testConfig() *config.Config {
	return &config.Config{
		FallbackStartHour: 9,
		FallbackDuration:  time.Hour,
	}
}

func setupTaskService(t *testing.T) *TaskService {
	client := testdb.NewTestClient(t)
	return NewTaskService(client.Client, testConfig())
}

func TestTaskService_Create(t *testing.T) {
	svc := setupTaskService(t)
	ctx := context.Background()

	t.Run("creates task with fallback schedule", func(t *testing.T) {
		task, err := svc.Create(ctx, CreateTaskRequest{
			Title:       "Write report",
			Description: "Quarterly numbers",
			Context:     "work",
		})
		require.NoError(t, err)

		assert.Equal(t, "Write report", task.Title)
		assert.True(t, task.NeedsScheduling)
		assert.False(t, task.Completed)
		assert.Nil(t, task.ActualStart)
		require.NotNil(t, task.ScheduledStart)
		require.NotNil(t, task.ScheduledEnd)
		assert.True(t, task.ScheduledEnd.After(*task.ScheduledStart))
		assert.Equal(t, 9, task.ScheduledStart.Hour())
	})

	t.Run("rejects empty title", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateTaskRequest{Title: ""})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects overlong title", func(t *testing.T) {
		long := make([]byte, 201)
		for i := range long {
			long[i] = 'a'
		}
		_, err := svc.Create(ctx, CreateTaskRequest{Title: string(long)})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects overlong description", func(t *testing.T) {
		long := make([]byte, 1001)
		for i := range long {
			long[i] = 'a'
		}
		_, err := svc.Create(ctx, CreateTaskRequest{Title: "ok", Description: string(long)})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestTaskService_FallbackWindow(t *testing.T) {
	svc := &TaskService{fallbackStartHour: 9, fallbackDuration: time.Hour}

	t.Run("same day when hour not yet reached", func(t *testing.T) {
		now := time.Date(2026, 8, 25, 7, 30, 0, 0, time.UTC)
		start, end := svc.FallbackWindow(now)
		assert.Equal(t, time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC), start)
		assert.Equal(t, start.Add(time.Hour), end)
	})

	t.Run("next day when hour has passed", func(t *testing.T) {
		now := time.Date(2026, 8, 25, 14, 0, 0, 0, time.UTC)
		start, _ := svc.FallbackWindow(now)
		assert.Equal(t, time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC), start)
	})
}

func TestTaskService_Lifecycle(t *testing.T) {
	svc := setupTaskService(t)
	ctx := context.Background()

	t.Run("start stop complete", func(t *testing.T) {
		task, err := svc.Create(ctx, CreateTaskRequest{Title: "Lifecycle"})
		require.NoError(t, err)

		started, err := svc.Start(ctx, task.ID)
		require.NoError(t, err)
		require.NotNil(t, started.ActualStart)

		stopped, err := svc.Stop(ctx, task.ID)
		require.NoError(t, err)
		assert.Nil(t, stopped.ActualStart)

		_, err = svc.Start(ctx, task.ID)
		require.NoError(t, err)

		completed, err := svc.Complete(ctx, task.ID)
		require.NoError(t, err)
		assert.True(t, completed.Completed)
		require.NotNil(t, completed.ActualEnd)
	})

	t.Run("start is idempotent for the active task", func(t *testing.T) {
		task, err := svc.Create(ctx, CreateTaskRequest{Title: "Idempotent"})
		require.NoError(t, err)

		first, err := svc.Start(ctx, task.ID)
		require.NoError(t, err)
		second, err := svc.Start(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, first.ActualStart.Unix(), second.ActualStart.Unix())

		_, err = svc.Complete(ctx, task.ID)
		require.NoError(t, err)
	})

	t.Run("second start conflicts and names the active task", func(t *testing.T) {
		a, err := svc.Create(ctx, CreateTaskRequest{Title: "Holds the slot"})
		require.NoError(t, err)
		b, err := svc.Create(ctx, CreateTaskRequest{Title: "Wants the slot"})
		require.NoError(t, err)

		_, err = svc.Start(ctx, a.ID)
		require.NoError(t, err)

		_, err = svc.Start(ctx, b.ID)
		require.ErrorIs(t, err, ErrAnotherTaskActive)
		assert.Contains(t, err.Error(), "Holds the slot")

		_, err = svc.Complete(ctx, a.ID)
		require.NoError(t, err)
	})

	t.Run("completed task cannot restart", func(t *testing.T) {
		task, err := svc.Create(ctx, CreateTaskRequest{Title: "Done"})
		require.NoError(t, err)
		_, err = svc.Start(ctx, task.ID)
		require.NoError(t, err)
		_, err = svc.Complete(ctx, task.ID)
		require.NoError(t, err)

		_, err = svc.Start(ctx, task.ID)
		require.ErrorIs(t, err, ErrTaskCompleted)
	})

	t.Run("stop and complete require an active task", func(t *testing.T) {
		task, err := svc.Create(ctx, CreateTaskRequest{Title: "Never started"})
		require.NoError(t, err)

		_, err = svc.Stop(ctx, task.ID)
		require.ErrorIs(t, err, ErrTaskNotActive)
		_, err = svc.Complete(ctx, task.ID)
		require.ErrorIs(t, err, ErrTaskNotActive)
	})

	t.Run("vanished task reports gone", func(t *testing.T) {
		_, err := svc.Start(ctx, 999999)
		require.ErrorIs(t, err, ErrTaskGone)
	})
}

func TestTaskService_StartRace(t *testing.T) {
	svc := setupTaskService(t)
	ctx := context.Background()

	const n = 8
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		task, err := svc.Create(ctx, CreateTaskRequest{Title: "Racer"})
		require.NoError(t, err)
		ids[i] = task.ID
	}

	var wg sync.WaitGroup
	results := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.Start(ctx, ids[i])
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range results {
		if err == nil {
			wins++
		} else {
			require.ErrorIs(t, err, ErrAnotherTaskActive)
		}
	}
	assert.Equal(t, 1, wins, "exactly one concurrent start may win")

	active, err := svc.GetActive(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
}

func TestTaskService_Queries(t *testing.T) {
	svc := setupTaskService(t)
	ctx := context.Background()

	t.Run("active is nil when nothing started", func(t *testing.T) {
		active, err := svc.GetActive(ctx)
		require.NoError(t, err)
		assert.Nil(t, active)
	})

	t.Run("all orders by priority descending", func(t *testing.T) {
		low, err := svc.Create(ctx, CreateTaskRequest{Title: "Low"})
		require.NoError(t, err)
		high, err := svc.Create(ctx, CreateTaskRequest{Title: "High"})
		require.NoError(t, err)

		require.NoError(t, svc.SetPriority(ctx, low.ID, 2))
		require.NoError(t, svc.SetPriority(ctx, high.ID, 8))

		all, err := svc.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "High", all[0].Title)
		assert.Equal(t, "Low", all[1].Title)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		task, err := svc.Create(ctx, CreateTaskRequest{Title: "Ephemeral"})
		require.NoError(t, err)
		require.NoError(t, svc.Delete(ctx, task.ID))

		_, err = svc.GetByID(ctx, task.ID)
		require.ErrorIs(t, err, ErrNotFound)
		require.ErrorIs(t, svc.Delete(ctx, task.ID), ErrNotFound)
	})
}

func TestTaskService_ApplySchedule(t *testing.T) {
	svc := setupTaskService(t)
	ctx := context.Background()

	t.Run("writes times and clears flag", func(t *testing.T) {
		task, err := svc.Create(ctx, CreateTaskRequest{Title: "Schedule me"})
		require.NoError(t, err)
		require.True(t, task.NeedsScheduling)

		start := time.Now().Add(time.Hour).Truncate(time.Second)
		end := start.Add(time.Hour)
		updated, err := svc.ApplySchedule(ctx, task.ID, &start, &end)
		require.NoError(t, err)

		assert.False(t, updated.NeedsScheduling)
		assert.Equal(t, start.Unix(), updated.ScheduledStart.Unix())
		assert.Equal(t, end.Unix(), updated.ScheduledEnd.Unix())
	})

	t.Run("nil times clear the schedule but still clear the flag", func(t *testing.T) {
		task, err := svc.Create(ctx, CreateTaskRequest{Title: "Unparseable"})
		require.NoError(t, err)

		updated, err := svc.ApplySchedule(ctx, task.ID, nil, nil)
		require.NoError(t, err)
		assert.False(t, updated.NeedsScheduling)
		assert.Nil(t, updated.ScheduledStart)
		assert.Nil(t, updated.ScheduledEnd)
	})

	t.Run("vanished task reports gone", func(t *testing.T) {
		_, err := svc.ApplySchedule(ctx, 999999, nil, nil)
		require.ErrorIs(t, err, ErrTaskGone)
	})
}
