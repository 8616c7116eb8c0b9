// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dayplan/dayplan/ent/llmcall"
)

// LLMCall is the model entity for the LLMCall schema.
type LLMCall struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Logical call: TimeSlotScheduler, TaskPrioritizer, ChatAssistant
	ModuleName string `json:"module_name,omitempty"`
	// Serialized call inputs, JSON when possible
	Inputs string `json:"inputs,omitempty"`
	// Serialized call outputs or terminal error
	Outputs string `json:"outputs,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs float64 `json:"duration_ms,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LLMCall) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case llmcall.FieldDurationMs:
			values[i] = new(sql.NullFloat64)
		case llmcall.FieldID:
			values[i] = new(sql.NullInt64)
		case llmcall.FieldModuleName, llmcall.FieldInputs, llmcall.FieldOutputs:
			values[i] = new(sql.NullString)
		case llmcall.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LLMCall fields.
func (lc *LLMCall) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case llmcall.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			lc.ID = int(value.Int64)
		case llmcall.FieldModuleName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field module_name", values[i])
			} else if value.Valid {
				lc.ModuleName = value.String
			}
		case llmcall.FieldInputs:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field inputs", values[i])
			} else if value.Valid {
				lc.Inputs = value.String
			}
		case llmcall.FieldOutputs:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outputs", values[i])
			} else if value.Valid {
				lc.Outputs = value.String
			}
		case llmcall.FieldDurationMs:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				lc.DurationMs = value.Float64
			}
		case llmcall.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				lc.CreatedAt = value.Time
			}
		default:
			lc.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LLMCall.
// This includes values selected through modifiers, order, etc.
func (lc *LLMCall) Value(name string) (ent.Value, error) {
	return lc.selectValues.Get(name)
}

// Update returns a builder for updating this LLMCall.
// Note that you need to call LLMCall.Unwrap() before calling this method if this LLMCall
// was returned from a transaction, and the transaction was committed or rolled back.
func (lc *LLMCall) Update() *LLMCallUpdateOne {
	return NewLLMCallClient(lc.config).UpdateOne(lc)
}

// Unwrap unwraps the LLMCall entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (lc *LLMCall) Unwrap() *LLMCall {
	_tx, ok := lc.config.driver.(*txDriver)
	if !ok {
		panic("ent: LLMCall is not a transactional entity")
	}
	lc.config.driver = _tx.drv
	return lc
}

// String implements the fmt.Stringer.
func (lc *LLMCall) String() string {
	var builder strings.Builder
	builder.WriteString("LLMCall(")
	builder.WriteString(fmt.Sprintf("id=%v, ", lc.ID))
	builder.WriteString("module_name=")
	builder.WriteString(lc.ModuleName)
	builder.WriteString(", ")
	builder.WriteString("inputs=")
	builder.WriteString(lc.Inputs)
	builder.WriteString(", ")
	builder.WriteString("outputs=")
	builder.WriteString(lc.Outputs)
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", lc.DurationMs))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(lc.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LLMCalls is a parsable slice of LLMCall.
type LLMCalls []*LLMCall
