// Code generated by ent, DO NOT EDIT.

package chatmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the chatmessage type in the database.
	Label = "chat_message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserMessage holds the string denoting the user_message field in the database.
	FieldUserMessage = "user_message"
	// FieldAssistantResponse holds the string denoting the assistant_response field in the database.
	FieldAssistantResponse = "assistant_response"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the chatmessage in the database.
	Table = "chat_messages"
)

// Columns holds all SQL columns for chatmessage fields.
var Columns = []string{
	FieldID,
	FieldUserMessage,
	FieldAssistantResponse,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ChatMessage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserMessage orders the results by the user_message field.
func ByUserMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserMessage, opts...).ToFunc()
}

// ByAssistantResponse orders the results by the assistant_response field.
func ByAssistantResponse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssistantResponse, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
