// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// GlobalContext is the predicate function for globalcontext builders.
type GlobalContext func(*sql.Selector)

// LLMCall is the predicate function for llmcall builders.
type LLMCall func(*sql.Selector)

// Settings is the predicate function for settings builders.
type Settings func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)
