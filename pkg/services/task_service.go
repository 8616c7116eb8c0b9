package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dayplan/dayplan/ent"
	"github.com/dayplan/dayplan/ent/task"
	"github.com/dayplan/dayplan/pkg/config"
)

// TaskService owns the task lifecycle and its state-machine invariants.
// Every operation opens its own short transaction; no entity state is held
// between invocations.
type TaskService struct {
	client            *ent.Client
	fallbackStartHour int
	fallbackDuration  time.Duration

	now func() time.Time
}

// NewTaskService creates a new TaskService.
func NewTaskService(client *ent.Client, cfg *config.Config) *TaskService {
	return &TaskService{
		client:            client,
		fallbackStartHour: cfg.FallbackStartHour,
		fallbackDuration:  cfg.FallbackDuration,
		now:               time.Now,
	}
}

// CreateTaskRequest carries the caller-supplied fields for a new task.
type CreateTaskRequest struct {
	Title       string
	Description string
	Context     string
	DueDate     *time.Time
}

// Create validates the request, computes a fallback schedule, and persists
// the task with needs_scheduling set. It never calls the LLM: the reconciler
// replaces the fallback slot on its next tick. Fast path.
func (s *TaskService) Create(ctx context.Context, req CreateTaskRequest) (*ent.Task, error) {
	if req.Title == "" {
		return nil, NewValidationError("title", "must not be empty")
	}
	if len(req.Title) > 200 {
		return nil, NewValidationError("title", "must be at most 200 characters")
	}
	if len(req.Description) > 1000 {
		return nil, NewValidationError("description", "must be at most 1000 characters")
	}
	if len(req.Context) > 1000 {
		return nil, NewValidationError("context", "must be at most 1000 characters")
	}

	start, end := s.FallbackWindow(s.now())

	builder := s.client.Task.Create().
		SetTitle(req.Title).
		SetDescription(req.Description).
		SetContext(req.Context).
		SetScheduledStart(start).
		SetScheduledEnd(end).
		SetNeedsScheduling(true)
	if req.DueDate != nil {
		builder = builder.SetDueDate(*req.DueDate)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return created, nil
}

// FallbackWindow computes the deterministic schedule used when the LLM is
// not consulted or returns unparseable times: today at the configured start
// hour, pushed to tomorrow if that has already passed.
func (s *TaskService) FallbackWindow(now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), now.Day(), s.fallbackStartHour, 0, 0, 0, now.Location())
	if start.Before(now) {
		start = start.AddDate(0, 0, 1)
	}
	return start, start.Add(s.fallbackDuration)
}

// Start marks a task as started. The active-task check and the write happen
// inside one transaction with the rows locked; the partial unique index
// tasks_single_active backs the invariant, and a constraint violation on
// commit is retried once before failing with a conflict naming the winner.
func (s *TaskService) Start(ctx context.Context, id int) (*ent.Task, error) {
	var (
		started *ent.Task
		err     error
	)
	for attempt := 0; attempt < 2; attempt++ {
		started, err = s.startOnce(ctx, id)
		if err == nil || !ent.IsConstraintError(err) {
			return started, err
		}
	}

	// Both attempts lost the race. Report whoever holds the slot now.
	if active, activeErr := s.GetActive(ctx); activeErr == nil && active != nil {
		return nil, fmt.Errorf("%w: task %q is already active", ErrAnotherTaskActive, active.Title)
	}
	return nil, fmt.Errorf("%w: concurrent start detected", ErrAnotherTaskActive)
}

func (s *TaskService) startOnce(ctx context.Context, id int) (*ent.Task, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Re-read under the transaction to detect concurrent deletion.
	t, err := tx.Task.Query().
		Where(task.ID(id)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrTaskGone
		}
		return nil, fmt.Errorf("failed to load task: %w", err)
	}

	if t.Completed {
		return nil, fmt.Errorf("%w: cannot start task %q", ErrTaskCompleted, t.Title)
	}
	if t.ActualStart != nil {
		// Already active; starting again is a no-op.
		return t, nil
	}

	active, err := tx.Task.Query().
		Where(
			task.ActualStartNotNil(),
			task.Completed(false),
			task.IDNEQ(id),
		).
		ForUpdate().
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query active task: %w", err)
	}
	if active != nil {
		return nil, fmt.Errorf("%w: task %q is already active", ErrAnotherTaskActive, active.Title)
	}

	t, err = t.Update().
		SetActualStart(s.now()).
		Save(ctx)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return t, nil
}

// Stop returns an active task to pending by clearing its actual start time.
func (s *TaskService) Stop(ctx context.Context, id int) (*ent.Task, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	t, err := tx.Task.Query().
		Where(task.ID(id)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrTaskGone
		}
		return nil, fmt.Errorf("failed to load task: %w", err)
	}

	if t.Completed {
		return nil, fmt.Errorf("%w: cannot stop task %q", ErrTaskCompleted, t.Title)
	}
	if t.ActualStart == nil {
		return nil, fmt.Errorf("%w: task %q has not been started", ErrTaskNotActive, t.Title)
	}

	t, err = t.Update().
		ClearActualStart().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to stop task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return t, nil
}

// Complete marks an active task as completed.
func (s *TaskService) Complete(ctx context.Context, id int) (*ent.Task, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	t, err := tx.Task.Query().
		Where(task.ID(id)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrTaskGone
		}
		return nil, fmt.Errorf("failed to load task: %w", err)
	}

	if t.Completed {
		return nil, fmt.Errorf("%w: task %q", ErrTaskCompleted, t.Title)
	}
	if t.ActualStart == nil {
		return nil, fmt.Errorf("%w: task %q has not been started", ErrTaskNotActive, t.Title)
	}

	t, err = t.Update().
		SetCompleted(true).
		SetActualEnd(s.now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateTaskRequest carries a partial update; nil fields are left untouched.
type UpdateTaskRequest struct {
	Title       *string
	Description *string
	Context     *string
	DueDate     *time.Time
}

// Update applies a partial edit to a task's descriptive fields.
func (s *TaskService) Update(ctx context.Context, id int, req UpdateTaskRequest) (*ent.Task, error) {
	if req.Title != nil {
		if *req.Title == "" {
			return nil, NewValidationError("title", "must not be empty")
		}
		if len(*req.Title) > 200 {
			return nil, NewValidationError("title", "must be at most 200 characters")
		}
	}
	if req.Description != nil && len(*req.Description) > 1000 {
		return nil, NewValidationError("description", "must be at most 1000 characters")
	}
	if req.Context != nil && len(*req.Context) > 1000 {
		return nil, NewValidationError("context", "must be at most 1000 characters")
	}

	builder := s.client.Task.UpdateOneID(id)
	if req.Title != nil {
		builder = builder.SetTitle(*req.Title)
	}
	if req.Description != nil {
		builder = builder.SetDescription(*req.Description)
	}
	if req.Context != nil {
		builder = builder.SetContext(*req.Context)
	}
	if req.DueDate != nil {
		builder = builder.SetDueDate(*req.DueDate)
	}

	t, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return t, nil
}

// ApplySchedule writes reconciler-derived times and clears the
// needs_scheduling flag. A nil start or end clears the corresponding field;
// the earlier fallback placeholder is then the last value the UI saw, which
// is intentional. ErrTaskGone when the row vanished mid-reconcile.
func (s *TaskService) ApplySchedule(ctx context.Context, id int, start, end *time.Time) (*ent.Task, error) {
	builder := s.client.Task.UpdateOneID(id).
		SetNeedsScheduling(false)
	if start != nil {
		builder = builder.SetScheduledStart(*start)
	} else {
		builder = builder.ClearScheduledStart()
	}
	if end != nil {
		builder = builder.SetScheduledEnd(*end)
	} else {
		builder = builder.ClearScheduledEnd()
	}

	t, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrTaskGone
		}
		return nil, fmt.Errorf("failed to apply schedule: %w", err)
	}
	return t, nil
}

// SetPriority stores a prioritizer score. ErrTaskGone when the row vanished.
func (s *TaskService) SetPriority(ctx context.Context, id int, priority float64) error {
	err := s.client.Task.UpdateOneID(id).
		SetPriority(priority).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrTaskGone
		}
		return fmt.Errorf("failed to set priority: %w", err)
	}
	return nil
}

// Delete removes a task. Permitted in any state.
func (s *TaskService) Delete(ctx context.Context, id int) error {
	err := s.client.Task.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// GetAll returns all tasks ordered by priority (desc) then due date (asc).
func (s *TaskService) GetAll(ctx context.Context) ([]*ent.Task, error) {
	return s.client.Task.Query().
		Order(ent.Desc(task.FieldPriority), ent.Asc(task.FieldDueDate)).
		All(ctx)
}

// GetByID returns one task or ErrNotFound.
func (s *TaskService) GetByID(ctx context.Context, id int) (*ent.Task, error) {
	t, err := s.client.Task.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

// GetIncomplete returns every task not yet completed.
func (s *TaskService) GetIncomplete(ctx context.Context) ([]*ent.Task, error) {
	return s.client.Task.Query().
		Where(task.Completed(false)).
		All(ctx)
}

// GetScheduled returns tasks with a scheduled start, ascending.
func (s *TaskService) GetScheduled(ctx context.Context) ([]*ent.Task, error) {
	return s.client.Task.Query().
		Where(task.ScheduledStartNotNil()).
		Order(ent.Asc(task.FieldScheduledStart)).
		All(ctx)
}

// GetNeedingScheduling returns incomplete tasks still carrying fallback
// placeholder times.
func (s *TaskService) GetNeedingScheduling(ctx context.Context) ([]*ent.Task, error) {
	return s.client.Task.Query().
		Where(
			task.NeedsScheduling(true),
			task.Completed(false),
		).
		All(ctx)
}

// GetActive returns the single active task, or nil when no task is active.
func (s *TaskService) GetActive(ctx context.Context) (*ent.Task, error) {
	t, err := s.client.Task.Query().
		Where(
			task.ActualStartNotNil(),
			task.Completed(false),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

// GetCompleted returns completed tasks, most recently finished first.
func (s *TaskService) GetCompleted(ctx context.Context) ([]*ent.Task, error) {
	return s.client.Task.Query().
		Where(task.Completed(true)).
		Order(ent.Desc(task.FieldActualEnd)).
		All(ctx)
}
