package reconciler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayplan/dayplan/pkg/config"
	"github.com/dayplan/dayplan/pkg/models"
	"github.com/dayplan/dayplan/pkg/planner"
	"github.com/dayplan/dayplan/pkg/services"
	testdb "github.com/dayplan/dayplan/test/database"
)

type stubScheduler struct {
	mu sync.Mutex

	timeslot    *models.TimeslotResult
	timeslotErr error
	scores      []models.PrioritizedTask
	scoresErr   error

	timeslotCalls   int
	prioritizeCalls int
	lastRequest     *models.TimeslotRequest
}

func (s *stubScheduler) ScheduleTimeslot(_ context.Context, req models.TimeslotRequest) (*models.TimeslotResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timeslotCalls++
	s.lastRequest = &req
	if s.timeslotErr != nil {
		return nil, s.timeslotErr
	}
	return s.timeslot, nil
}

func (s *stubScheduler) Prioritize(_ context.Context, tasks []models.TaskInput, _ string) ([]models.PrioritizedTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prioritizeCalls++
	if s.scoresErr != nil {
		return nil, s.scoresErr
	}
	if s.scores != nil {
		return s.scores, nil
	}
	scored := make([]models.PrioritizedTask, 0, len(tasks))
	for _, t := range tasks {
		scored = append(scored, models.PrioritizedTask{ID: t.ID, Title: t.Title, Priority: 5})
	}
	return scored, nil
}

func setupReconciler(t *testing.T, sched *stubScheduler) (*Service, *services.TaskService) {
	client := testdb.NewTestClient(t)
	cfg := &config.Config{
		FallbackStartHour: 9,
		FallbackDuration:  time.Hour,
		SchedulerInterval: 5 * time.Second,
	}
	tasks := services.NewTaskService(client.Client, cfg)
	globalCtx := services.NewContextService(client.Client)
	return NewService(tasks, globalCtx, sched, planner.ParseISOTime, cfg), tasks
}

func TestTick_InitialScheduling(t *testing.T) {
	ctx := context.Background()

	t.Run("schedules new task and reprioritizes", func(t *testing.T) {
		future := time.Now().Add(2 * time.Hour).Truncate(time.Second)
		sched := &stubScheduler{
			timeslot: &models.TimeslotResult{
				StartTime: future.Format(time.RFC3339),
				EndTime:   future.Add(time.Hour).Format(time.RFC3339),
				Reasoning: "free slot",
			},
		}
		svc, tasks := setupReconciler(t, sched)

		task, err := tasks.Create(ctx, services.CreateTaskRequest{Title: "New work"})
		require.NoError(t, err)
		require.True(t, task.NeedsScheduling)

		svc.Tick(ctx)

		updated, err := tasks.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.False(t, updated.NeedsScheduling)
		require.NotNil(t, updated.ScheduledStart)
		assert.Equal(t, future.Unix(), updated.ScheduledStart.Unix())
		assert.Equal(t, 5.0, updated.Priority)
		assert.Equal(t, 1, sched.prioritizeCalls)
	})

	t.Run("unparseable times clear flag without schedule", func(t *testing.T) {
		sched := &stubScheduler{
			timeslot: &models.TimeslotResult{StartTime: "tomorrow-ish", EndTime: "later"},
		}
		svc, tasks := setupReconciler(t, sched)

		task, err := tasks.Create(ctx, services.CreateTaskRequest{Title: "Garbage times"})
		require.NoError(t, err)

		svc.Tick(ctx)

		updated, err := tasks.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.False(t, updated.NeedsScheduling, "flag must clear so the loop cannot spin")
		assert.Nil(t, updated.ScheduledStart)
	})

	t.Run("call failure leaves flag for a later tick", func(t *testing.T) {
		sched := &stubScheduler{timeslotErr: errors.New("model down")}
		svc, tasks := setupReconciler(t, sched)

		task, err := tasks.Create(ctx, services.CreateTaskRequest{Title: "Retry me"})
		require.NoError(t, err)

		svc.Tick(ctx)

		updated, err := tasks.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.True(t, updated.NeedsScheduling)
		// Nothing changed, so no reprioritization fires.
		assert.Equal(t, 0, sched.prioritizeCalls)
	})

	t.Run("repeated failures exhaust the per-task budget", func(t *testing.T) {
		sched := &stubScheduler{timeslotErr: errors.New("model down")}
		svc, tasks := setupReconciler(t, sched)

		_, err := tasks.Create(ctx, services.CreateTaskRequest{Title: "Doomed"})
		require.NoError(t, err)

		for i := 0; i < maxFailuresPerWindow+2; i++ {
			svc.Tick(ctx)
		}
		assert.Equal(t, maxFailuresPerWindow, sched.timeslotCalls)
	})

	t.Run("existing schedule excludes subject and completed tasks", func(t *testing.T) {
		future := time.Now().Add(3 * time.Hour)
		sched := &stubScheduler{
			timeslot: &models.TimeslotResult{
				StartTime: future.Format(time.RFC3339),
				EndTime:   future.Add(time.Hour).Format(time.RFC3339),
			},
		}
		svc, tasks := setupReconciler(t, sched)

		other, err := tasks.Create(ctx, services.CreateTaskRequest{Title: "Other scheduled"})
		require.NoError(t, err)
		_, err = tasks.ApplySchedule(ctx, other.ID,
			timePtr(time.Now().Add(4*time.Hour)), timePtr(time.Now().Add(5*time.Hour)))
		require.NoError(t, err)

		finished, err := tasks.Create(ctx, services.CreateTaskRequest{Title: "Finished"})
		require.NoError(t, err)
		_, err = tasks.ApplySchedule(ctx, finished.ID,
			timePtr(time.Now().Add(4*time.Hour)), timePtr(time.Now().Add(5*time.Hour)))
		require.NoError(t, err)
		_, err = tasks.Start(ctx, finished.ID)
		require.NoError(t, err)
		_, err = tasks.Complete(ctx, finished.ID)
		require.NoError(t, err)

		subject, err := tasks.Create(ctx, services.CreateTaskRequest{Title: "Subject"})
		require.NoError(t, err)

		svc.Tick(ctx)

		require.NotNil(t, sched.lastRequest)
		ids := make([]int, 0, len(sched.lastRequest.ExistingSchedule))
		for _, entry := range sched.lastRequest.ExistingSchedule {
			ids = append(ids, entry.ID)
		}
		assert.Contains(t, ids, other.ID)
		assert.NotContains(t, ids, subject.ID)
		assert.NotContains(t, ids, finished.ID)
	})
}

func TestTick_SlippedTasks(t *testing.T) {
	ctx := context.Background()

	t.Run("reschedules a task whose window passed", func(t *testing.T) {
		future := time.Now().Add(2 * time.Hour).Truncate(time.Second)
		sched := &stubScheduler{
			timeslot: &models.TimeslotResult{
				StartTime: future.Format(time.RFC3339),
				EndTime:   future.Add(time.Hour).Format(time.RFC3339),
			},
		}
		svc, tasks := setupReconciler(t, sched)

		task, err := tasks.Create(ctx, services.CreateTaskRequest{Title: "Slipped"})
		require.NoError(t, err)
		_, err = tasks.ApplySchedule(ctx, task.ID,
			timePtr(time.Now().Add(-3*time.Hour)), timePtr(time.Now().Add(-2*time.Hour)))
		require.NoError(t, err)

		svc.Tick(ctx)

		updated, err := tasks.GetByID(ctx, task.ID)
		require.NoError(t, err)
		require.NotNil(t, updated.ScheduledStart)
		assert.Equal(t, future.Unix(), updated.ScheduledStart.Unix())
	})

	t.Run("active task past its start is left alone", func(t *testing.T) {
		sched := &stubScheduler{
			timeslot: &models.TimeslotResult{
				StartTime: time.Now().Add(time.Hour).Format(time.RFC3339),
				EndTime:   time.Now().Add(2 * time.Hour).Format(time.RFC3339),
			},
		}
		svc, tasks := setupReconciler(t, sched)

		task, err := tasks.Create(ctx, services.CreateTaskRequest{Title: "In progress"})
		require.NoError(t, err)
		_, err = tasks.ApplySchedule(ctx, task.ID,
			timePtr(time.Now().Add(-time.Hour)), timePtr(time.Now().Add(time.Hour)))
		require.NoError(t, err)
		_, err = tasks.Start(ctx, task.ID)
		require.NoError(t, err)

		svc.Tick(ctx)
		assert.Equal(t, 0, sched.timeslotCalls)
	})
}
