package reconciler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dayplan/dayplan/ent"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestSlipped(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		task *ent.Task
		want bool
	}{
		{
			name: "window ended in the past",
			task: &ent.Task{
				ScheduledStart: timePtr(now.Add(-2 * time.Hour)),
				ScheduledEnd:   timePtr(now.Add(-time.Hour)),
			},
			want: true,
		},
		{
			name: "start passed without being started",
			task: &ent.Task{
				ScheduledStart: timePtr(now.Add(-time.Minute)),
				ScheduledEnd:   timePtr(now.Add(time.Hour)),
			},
			want: true,
		},
		{
			name: "start passed but task is active",
			task: &ent.Task{
				ScheduledStart: timePtr(now.Add(-time.Minute)),
				ScheduledEnd:   timePtr(now.Add(time.Hour)),
				ActualStart:    timePtr(now.Add(-time.Minute)),
			},
			want: false,
		},
		{
			name: "entirely in the future",
			task: &ent.Task{
				ScheduledStart: timePtr(now.Add(time.Hour)),
				ScheduledEnd:   timePtr(now.Add(2 * time.Hour)),
			},
			want: false,
		},
		{
			name: "no schedule at all",
			task: &ent.Task{},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slipped(tt.task, now))
		})
	}
}

func TestFailureBudget(t *testing.T) {
	clock := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	s := &Service{
		failures: make(map[int]*taskFailures),
		now:      func() time.Time { return clock },
	}

	t.Run("fresh task is under budget", func(t *testing.T) {
		assert.False(t, s.overFailureBudget(1))
	})

	t.Run("budget exhausts after repeated failures", func(t *testing.T) {
		for i := 0; i < maxFailuresPerWindow; i++ {
			assert.False(t, s.overFailureBudget(2))
			s.recordFailure(2)
		}
		assert.True(t, s.overFailureBudget(2))
	})

	t.Run("budget resets after the window expires", func(t *testing.T) {
		for i := 0; i < maxFailuresPerWindow; i++ {
			s.recordFailure(3)
		}
		assert.True(t, s.overFailureBudget(3))

		clock = clock.Add(failureWindow + time.Minute)
		assert.False(t, s.overFailureBudget(3))
	})

	t.Run("success clears the record", func(t *testing.T) {
		s.recordFailure(4)
		s.recordFailure(4)
		s.clearFailures(4)
		s.recordFailure(4)
		assert.False(t, s.overFailureBudget(4))
	})
}
