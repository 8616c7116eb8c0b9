// Package reconciler runs the periodic scheduling loop: initial scheduling
// of new tasks, rescheduling of slipped ones, and reprioritization of the
// incomplete set.
package reconciler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/dayplan/dayplan/ent"
	"github.com/dayplan/dayplan/pkg/config"
	"github.com/dayplan/dayplan/pkg/models"
	"github.com/dayplan/dayplan/pkg/services"
)

// Scheduler is the planner surface the reconciler consumes.
type Scheduler interface {
	ScheduleTimeslot(ctx context.Context, req models.TimeslotRequest) (*models.TimeslotResult, error)
	Prioritize(ctx context.Context, tasks []models.TaskInput, globalContext string) ([]models.PrioritizedTask, error)
}

// TimeParser turns a model-produced timestamp into a concrete time, nil on
// failure.
type TimeParser func(s string) *time.Time

// failure budget: a task whose scheduling call keeps failing is skipped
// until the window expires, so one broken task cannot monopolize the loop.
const (
	maxFailuresPerWindow = 3
	failureWindow        = time.Hour
)

type taskFailures struct {
	count       int
	windowStart time.Time
}

// Service is the reconciliation worker. One tick = one reconcile pass;
// ticks never overlap, a tick still running when the next interval fires
// causes that interval to be skipped.
type Service struct {
	tasks     *services.TaskService
	globalCtx *services.ContextService
	planner   Scheduler
	parseTime TimeParser
	interval  time.Duration

	now func() time.Time

	tickMu   sync.Mutex
	failMu   sync.Mutex
	failures map[int]*taskFailures

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new reconciler.
func NewService(tasks *services.TaskService, globalCtx *services.ContextService, planner Scheduler, parseTime TimeParser, cfg *config.Config) *Service {
	return &Service{
		tasks:     tasks,
		globalCtx: globalCtx,
		planner:   planner,
		parseTime: parseTime,
		interval:  cfg.SchedulerInterval,
		now:       time.Now,
		failures:  make(map[int]*taskFailures),
	}
}

// Start launches the background reconcile loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Reconciler started", "interval", s.interval)
}

// Stop signals the loop to exit and waits for the current tick to drain.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Reconciler stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick runs one reconcile pass. Reentry is skipped rather than queued.
func (s *Service) Tick(ctx context.Context) {
	if !s.tickMu.TryLock() {
		slog.Debug("Reconcile tick still running, skipping interval")
		return
	}
	defer s.tickMu.Unlock()

	changed := s.scheduleNewTasks(ctx)
	changed = s.rescheduleSlippedTasks(ctx) || changed

	if changed {
		s.reprioritize(ctx)
	}
}

// scheduleNewTasks is the initial-scheduling phase: every incomplete task
// still flagged needs_scheduling gets a real slot. Returns whether any row
// changed.
func (s *Service) scheduleNewTasks(ctx context.Context) bool {
	pending, err := s.tasks.GetNeedingScheduling(ctx)
	if err != nil {
		slog.Error("Reconcile: failed to list tasks needing scheduling", "error", err)
		return false
	}

	changed := false
	for _, t := range pending {
		if ctx.Err() != nil {
			return changed
		}
		if s.overFailureBudget(t.ID) {
			continue
		}
		if s.scheduleOne(ctx, t) {
			changed = true
		}
	}
	return changed
}

// scheduleOne asks the planner for a slot and writes the result. A call
// failure leaves needs_scheduling set for a later tick; unparseable times
// still clear the flag so the loop cannot spin on one task.
func (s *Service) scheduleOne(ctx context.Context, t *ent.Task) bool {
	req, err := s.timeslotRequest(ctx, t)
	if err != nil {
		slog.Error("Reconcile: failed to assemble timeslot request", "task_id", t.ID, "error", err)
		return false
	}

	result, err := s.planner.ScheduleTimeslot(ctx, *req)
	if err != nil {
		s.recordFailure(t.ID)
		slog.Error("Reconcile: timeslot call failed, will retry next tick", "task_id", t.ID, "error", err)
		return false
	}
	s.clearFailures(t.ID)

	start := s.parseTime(result.StartTime)
	end := s.parseTime(result.EndTime)
	if start == nil || end == nil {
		slog.Warn("Reconcile: unparseable times from model, clearing flag without schedule",
			"task_id", t.ID, "start", result.StartTime, "end", result.EndTime)
		start, end = nil, nil
	} else if !end.After(*start) {
		slog.Warn("Reconcile: model returned non-increasing slot, discarding",
			"task_id", t.ID, "start", result.StartTime, "end", result.EndTime)
		start, end = nil, nil
	}

	if _, err := s.tasks.ApplySchedule(ctx, t.ID, start, end); err != nil {
		if errors.Is(err, services.ErrTaskGone) {
			slog.Info("Reconcile: task deleted mid-schedule", "task_id", t.ID)
			return false
		}
		slog.Error("Reconcile: failed to write schedule", "task_id", t.ID, "error", err)
		return false
	}
	slog.Info("Reconcile: task scheduled", "task_id", t.ID, "title", t.Title)
	return true
}

// rescheduleSlippedTasks finds incomplete tasks whose window has passed
// without progress and asks for fresh slots.
func (s *Service) rescheduleSlippedTasks(ctx context.Context) bool {
	incomplete, err := s.tasks.GetIncomplete(ctx)
	if err != nil {
		slog.Error("Reconcile: failed to list incomplete tasks", "error", err)
		return false
	}

	now := s.now()
	changed := false
	for _, t := range incomplete {
		if ctx.Err() != nil {
			return changed
		}
		if !slipped(t, now) {
			continue
		}
		if s.overFailureBudget(t.ID) {
			continue
		}
		if s.scheduleOne(ctx, t) {
			changed = true
		}
	}
	return changed
}

// slipped reports whether the task's window has passed without it finishing
// (end behind us) or without it starting (start behind us, never begun).
func slipped(t *ent.Task, now time.Time) bool {
	if t.ScheduledEnd != nil && t.ScheduledEnd.Before(now) {
		return true
	}
	if t.ScheduledStart != nil && t.ScheduledStart.Before(now) && t.ActualStart == nil {
		return true
	}
	return false
}

// reprioritize scores every incomplete task. Scores are applied by id; rows
// the model did not mention keep their old score.
func (s *Service) reprioritize(ctx context.Context) {
	incomplete, err := s.tasks.GetIncomplete(ctx)
	if err != nil {
		slog.Error("Reconcile: failed to list tasks for prioritization", "error", err)
		return
	}
	if len(incomplete) == 0 {
		return
	}

	known := make(map[int]bool, len(incomplete))
	inputs := make([]models.TaskInput, 0, len(incomplete))
	for _, t := range incomplete {
		known[t.ID] = true
		in := models.TaskInput{ID: t.ID, Title: t.Title, Description: t.Description}
		if t.DueDate != nil {
			due := t.DueDate.Format(time.RFC3339)
			in.DueDate = &due
		}
		inputs = append(inputs, in)
	}

	gc, err := s.globalCtx.GetOrCreate(ctx)
	if err != nil {
		slog.Error("Reconcile: failed to load global context", "error", err)
		return
	}

	scored, err := s.planner.Prioritize(ctx, inputs, gc.Context)
	if err != nil {
		slog.Error("Reconcile: prioritize call failed", "error", err)
		return
	}

	for _, p := range scored {
		if !known[p.ID] {
			continue
		}
		if err := s.tasks.SetPriority(ctx, p.ID, p.Priority); err != nil {
			if !errors.Is(err, services.ErrTaskGone) {
				slog.Error("Reconcile: failed to store priority", "task_id", p.ID, "error", err)
			}
		}
	}
	slog.Info("Reconcile: reprioritized tasks", "count", len(scored))
}

// timeslotRequest assembles the scheduling prompt input. The existing
// schedule excludes the subject task and everything completed.
func (s *Service) timeslotRequest(ctx context.Context, t *ent.Task) (*models.TimeslotRequest, error) {
	scheduled, err := s.tasks.GetScheduled(ctx)
	if err != nil {
		return nil, err
	}

	existing := make([]models.ScheduledTask, 0, len(scheduled))
	for _, st := range scheduled {
		if st.ID == t.ID || st.Completed {
			continue
		}
		entry := models.ScheduledTask{ID: st.ID, Title: st.Title}
		if st.ScheduledStart != nil {
			entry.StartTime = st.ScheduledStart.Format(time.RFC3339)
		}
		if st.ScheduledEnd != nil {
			entry.EndTime = st.ScheduledEnd.Format(time.RFC3339)
		}
		existing = append(existing, entry)
	}

	gc, err := s.globalCtx.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	taskDesc := t.Title
	if t.Description != "" {
		b, _ := json.Marshal(map[string]string{"title": t.Title, "description": t.Description})
		taskDesc = string(b)
	}

	return &models.TimeslotRequest{
		NewTask:          taskDesc,
		TaskContext:      t.Context,
		GlobalContext:    gc.Context,
		CurrentDatetime:  s.now().Format(time.RFC3339),
		ExistingSchedule: existing,
	}, nil
}

func (s *Service) overFailureBudget(id int) bool {
	s.failMu.Lock()
	defer s.failMu.Unlock()

	f, ok := s.failures[id]
	if !ok {
		return false
	}
	if s.now().Sub(f.windowStart) > failureWindow {
		delete(s.failures, id)
		return false
	}
	return f.count >= maxFailuresPerWindow
}

func (s *Service) recordFailure(id int) {
	s.failMu.Lock()
	defer s.failMu.Unlock()

	f, ok := s.failures[id]
	if !ok || s.now().Sub(f.windowStart) > failureWindow {
		s.failures[id] = &taskFailures{count: 1, windowStart: s.now()}
		return
	}
	f.count++
}

func (s *Service) clearFailures(id int) {
	s.failMu.Lock()
	defer s.failMu.Unlock()
	delete(s.failures, id)
}
