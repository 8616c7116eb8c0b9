// Code generated by ent, DO NOT EDIT.

package settings

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the settings type in the database.
	Label = "settings"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSingleton holds the string denoting the singleton field in the database.
	FieldSingleton = "singleton"
	// FieldLlmModel holds the string denoting the llm_model field in the database.
	FieldLlmModel = "llm_model"
	// FieldMaxTokens holds the string denoting the max_tokens field in the database.
	FieldMaxTokens = "max_tokens"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the settings in the database.
	Table = "settings"
)

// Columns holds all SQL columns for settings fields.
var Columns = []string{
	FieldID,
	FieldSingleton,
	FieldLlmModel,
	FieldMaxTokens,
	FieldUpdatedAt,
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
	// DefaultSingleton holds the default value on creation for the "singleton" field.
	DefaultSingleton bool
	// DefaultLlmModel holds the default value on creation for the "llm_model" field.
	DefaultLlmModel string
	// DefaultMaxTokens holds the default value on creation for the "max_tokens" field.
	DefaultMaxTokens int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Settings queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySingleton orders the results by the singleton field.
func BySingleton(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSingleton, opts...).ToFunc()
}

// ByLlmModel orders the results by the llm_model field.
func ByLlmModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmModel, opts...).ToFunc()
}

// ByMaxTokens orders the results by the max_tokens field.
func ByMaxTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxTokens, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
