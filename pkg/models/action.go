package models

// Assistant action types. Anything unrecognized degrades to ActionChat.
const (
	ActionCreateTask   = "create_task"
	ActionUpdateTask   = "update_task"
	ActionDeleteTask   = "delete_task"
	ActionStartTask    = "start_task"
	ActionCompleteTask = "complete_task"
	ActionStopTask     = "stop_task"
	ActionListTasks    = "list_tasks"
	ActionGetTask      = "get_task"
	ActionChat         = "chat"
)

// KnownAction reports whether the assistant returned a recognized action type.
func KnownAction(action string) bool {
	switch action {
	case ActionCreateTask, ActionUpdateTask, ActionDeleteTask, ActionStartTask,
		ActionCompleteTask, ActionStopTask, ActionListTasks, ActionGetTask, ActionChat:
		return true
	}
	return false
}

// TaskAction is the chat assistant's structured answer: at most one action
// plus a natural-language response for the user.
type TaskAction struct {
	Action      string `json:"action"`
	TaskID      *int   `json:"task_id,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Context     string `json:"context,omitempty"`
	Response    string `json:"response"`
}
