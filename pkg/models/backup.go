package models

// BackupDocument is the JSON backup file layout. Settings and ChatMessages
// are optional so older backups restore cleanly.
type BackupDocument struct {
	BackupTime    string              `json:"backup_time"`
	Tasks         []BackupTask        `json:"tasks"`
	GlobalContext *BackupContext      `json:"global_context"`
	Settings      *BackupSettings     `json:"settings,omitempty"`
	ChatMessages  []BackupChatMessage `json:"chat_messages,omitempty"`
}

// BackupTask is one exported task. IDs are not exported; restore re-issues them.
type BackupTask struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Context         string  `json:"context"`
	DueDate         *string `json:"due_date"`
	ScheduledStart  *string `json:"scheduled_start"`
	ScheduledEnd    *string `json:"scheduled_end"`
	ActualStart     *string `json:"actual_start"`
	ActualEnd       *string `json:"actual_end"`
	Priority        float64 `json:"priority"`
	Completed       bool    `json:"completed"`
	NeedsScheduling bool    `json:"needs_scheduling"`
}

// BackupContext is the exported global context singleton.
type BackupContext struct {
	Context string `json:"context"`
}

// BackupSettings is the exported settings singleton.
type BackupSettings struct {
	LLMModel  string `json:"llm_model"`
	MaxTokens int    `json:"max_tokens"`
}

// BackupChatMessage is one exported transcript row.
type BackupChatMessage struct {
	UserMessage       string `json:"user_message"`
	AssistantResponse string `json:"assistant_response"`
	CreatedAt         string `json:"created_at"`
}
