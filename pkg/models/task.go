// Package models holds the wire structures shared by the planner, the chat
// orchestrator, the API layer, and backup files.
package models

// TaskInput is one task as presented to the prioritizer.
type TaskInput struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	DueDate     *string `json:"due_date,omitempty"`
}

// PrioritizedTask is one row of the prioritizer's answer.
// Priority must be in [0,10]; out-of-range rows invalidate the whole response.
type PrioritizedTask struct {
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	Priority  float64 `json:"priority"`
	Reasoning string  `json:"reasoning"`
}

// ScheduledTask is one entry of the existing schedule shown to the
// timeslot scheduler. Times are ISO-8601 strings because the LLM boundary
// is textual.
type ScheduledTask struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// TimeslotRequest carries everything the timeslot scheduler needs to pick
// a fresh slot. ExistingSchedule deliberately excludes the task being
// (re)scheduled and all completed tasks.
type TimeslotRequest struct {
	NewTask          string          `json:"new_task"`
	TaskContext      string          `json:"task_context"`
	GlobalContext    string          `json:"global_context"`
	CurrentDatetime  string          `json:"current_datetime"`
	ExistingSchedule []ScheduledTask `json:"existing_schedule"`
}

// TimeslotResult is the timeslot scheduler's answer. Start and end times
// remain strings here; parsing happens at the caller with safe fallbacks.
type TimeslotResult struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Reasoning string `json:"reasoning"`
}

// TaskSnapshot is one task as serialized into the chat assistant's
// task-list input.
type TaskSnapshot struct {
	ID             int     `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Context        string  `json:"context"`
	Priority       float64 `json:"priority"`
	Completed      bool    `json:"completed"`
	ScheduledStart *string `json:"scheduled_start"`
	ScheduledEnd   *string `json:"scheduled_end"`
	ActualStart    *string `json:"actual_start"`
}
