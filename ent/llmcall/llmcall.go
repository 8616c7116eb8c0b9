// Code generated by ent, DO NOT EDIT.

package llmcall

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the llmcall type in the database.
	Label = "llm_call"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldModuleName holds the string denoting the module_name field in the database.
	FieldModuleName = "module_name"
	// FieldInputs holds the string denoting the inputs field in the database.
	FieldInputs = "inputs"
	// FieldOutputs holds the string denoting the outputs field in the database.
	FieldOutputs = "outputs"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the llmcall in the database.
	Table = "llm_calls"
)

// Columns holds all SQL columns for llmcall fields.
var Columns = []string{
	FieldID,
	FieldModuleName,
	FieldInputs,
	FieldOutputs,
	FieldDurationMs,
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
	// ModuleNameValidator is a validator for the "module_name" field. It is called by the builders before save.
	ModuleNameValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the LLMCall queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByModuleName orders the results by the module_name field.
func ByModuleName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModuleName, opts...).ToFunc()
}

// ByInputs orders the results by the inputs field.
func ByInputs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputs, opts...).ToFunc()
}

// ByOutputs orders the results by the outputs field.
func ByOutputs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputs, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
