// Code generated by ent, DO NOT EDIT.

package globalcontext

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the globalcontext type in the database.
	Label = "global_context"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSingleton holds the string denoting the singleton field in the database.
	FieldSingleton = "singleton"
	// FieldContext holds the string denoting the context field in the database.
	FieldContext = "context"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the globalcontext in the database.
	Table = "global_contexts"
)

// Columns holds all SQL columns for globalcontext fields.
var Columns = []string{
	FieldID,
	FieldSingleton,
	FieldContext,
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
	// DefaultContext holds the default value on creation for the "context" field.
	DefaultContext string
	// ContextValidator is a validator for the "context" field. It is called by the builders before save.
	ContextValidator func(string) error
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the GlobalContext queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySingleton orders the results by the singleton field.
func BySingleton(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSingleton, opts...).ToFunc()
}

// ByContext orders the results by the context field.
func ByContext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContext, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
