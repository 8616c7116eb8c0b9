// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_message", Type: field.TypeString, Size: 2147483647},
		{Name: "assistant_response", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[3]},
			},
		},
	}
	// GlobalContextsColumns holds the columns for the "global_contexts" table.
	GlobalContextsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "singleton", Type: field.TypeBool, Default: true},
		{Name: "context", Type: field.TypeString, Size: 5000, Default: ""},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// GlobalContextsTable holds the schema information for the "global_contexts" table.
	GlobalContextsTable = &schema.Table{
		Name:       "global_contexts",
		Columns:    GlobalContextsColumns,
		PrimaryKey: []*schema.Column{GlobalContextsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "globalcontext_singleton",
				Unique:  true,
				Columns: []*schema.Column{GlobalContextsColumns[1]},
			},
		},
	}
	// LlmCallsColumns holds the columns for the "llm_calls" table.
	LlmCallsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "module_name", Type: field.TypeString},
		{Name: "inputs", Type: field.TypeString, Size: 2147483647},
		{Name: "outputs", Type: field.TypeString, Size: 2147483647},
		{Name: "duration_ms", Type: field.TypeFloat64},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LlmCallsTable holds the schema information for the "llm_calls" table.
	LlmCallsTable = &schema.Table{
		Name:       "llm_calls",
		Columns:    LlmCallsColumns,
		PrimaryKey: []*schema.Column{LlmCallsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmcall_created_at",
				Unique:  false,
				Columns: []*schema.Column{LlmCallsColumns[5]},
			},
		},
	}
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "singleton", Type: field.TypeBool, Default: true},
		{Name: "llm_model", Type: field.TypeString, Default: ""},
		{Name: "max_tokens", Type: field.TypeInt, Default: 2000},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       "settings",
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "settings_singleton",
				Unique:  true,
				Columns: []*schema.Column{SettingsColumns[1]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString, Size: 200},
		{Name: "description", Type: field.TypeString, Size: 1000, Default: ""},
		{Name: "context", Type: field.TypeString, Size: 1000, Default: ""},
		{Name: "due_date", Type: field.TypeTime, Nullable: true},
		{Name: "scheduled_start", Type: field.TypeTime, Nullable: true},
		{Name: "scheduled_end", Type: field.TypeTime, Nullable: true},
		{Name: "actual_start", Type: field.TypeTime, Nullable: true},
		{Name: "actual_end", Type: field.TypeTime, Nullable: true},
		{Name: "priority", Type: field.TypeFloat64, Default: 0},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "needs_scheduling", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_completed",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[10]},
			},
			{
				Name:    "task_scheduled_start",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[5]},
			},
			{
				Name:    "task_needs_scheduling",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[11]},
			},
			{
				Name:    "task_actual_start",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChatMessagesTable,
		GlobalContextsTable,
		LlmCallsTable,
		SettingsTable,
		TasksTable,
	}
)

func init() {
}
