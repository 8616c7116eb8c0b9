// Code generated by ent, DO NOT EDIT.

package task

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the task type in the database.
	Label = "task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldContext holds the string denoting the context field in the database.
	FieldContext = "context"
	// FieldDueDate holds the string denoting the due_date field in the database.
	FieldDueDate = "due_date"
	// FieldScheduledStart holds the string denoting the scheduled_start field in the database.
	FieldScheduledStart = "scheduled_start"
	// FieldScheduledEnd holds the string denoting the scheduled_end field in the database.
	FieldScheduledEnd = "scheduled_end"
	// FieldActualStart holds the string denoting the actual_start field in the database.
	FieldActualStart = "actual_start"
	// FieldActualEnd holds the string denoting the actual_end field in the database.
	FieldActualEnd = "actual_end"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldCompleted holds the string denoting the completed field in the database.
	FieldCompleted = "completed"
	// FieldNeedsScheduling holds the string denoting the needs_scheduling field in the database.
	FieldNeedsScheduling = "needs_scheduling"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the task in the database.
	Table = "tasks"
)

// Columns holds all SQL columns for task fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldDescription,
	FieldContext,
	FieldDueDate,
	FieldScheduledStart,
	FieldScheduledEnd,
	FieldActualStart,
	FieldActualEnd,
	FieldPriority,
	FieldCompleted,
	FieldNeedsScheduling,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultDescription holds the default value on creation for the "description" field.
	DefaultDescription string
	// DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	DescriptionValidator func(string) error
	// DefaultContext holds the default value on creation for the "context" field.
	DefaultContext string
	// ContextValidator is a validator for the "context" field. It is called by the builders before save.
	ContextValidator func(string) error
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority float64
	// DefaultCompleted holds the default value on creation for the "completed" field.
	DefaultCompleted bool
	// DefaultNeedsScheduling holds the default value on creation for the "needs_scheduling" field.
	DefaultNeedsScheduling bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Task queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByContext orders the results by the context field.
func ByContext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContext, opts...).ToFunc()
}

// ByDueDate orders the results by the due_date field.
func ByDueDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDueDate, opts...).ToFunc()
}

// ByScheduledStart orders the results by the scheduled_start field.
func ByScheduledStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledStart, opts...).ToFunc()
}

// ByScheduledEnd orders the results by the scheduled_end field.
func ByScheduledEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledEnd, opts...).ToFunc()
}

// ByActualStart orders the results by the actual_start field.
func ByActualStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActualStart, opts...).ToFunc()
}

// ByActualEnd orders the results by the actual_end field.
func ByActualEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActualEnd, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByCompleted orders the results by the completed field.
func ByCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompleted, opts...).ToFunc()
}

// ByNeedsScheduling orders the results by the needs_scheduling field.
func ByNeedsScheduling(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsScheduling, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
