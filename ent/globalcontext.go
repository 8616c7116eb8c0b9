// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dayplan/dayplan/ent/globalcontext"
)

// GlobalContext is the model entity for the GlobalContext schema.
type GlobalContext struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Discriminator column, always true
	Singleton bool `json:"singleton,omitempty"`
	// Context holds the value of the "context" field.
	Context string `json:"context,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GlobalContext) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case globalcontext.FieldSingleton:
			values[i] = new(sql.NullBool)
		case globalcontext.FieldID:
			values[i] = new(sql.NullInt64)
		case globalcontext.FieldContext:
			values[i] = new(sql.NullString)
		case globalcontext.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GlobalContext fields.
func (gc *GlobalContext) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case globalcontext.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			gc.ID = int(value.Int64)
		case globalcontext.FieldSingleton:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field singleton", values[i])
			} else if value.Valid {
				gc.Singleton = value.Bool
			}
		case globalcontext.FieldContext:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field context", values[i])
			} else if value.Valid {
				gc.Context = value.String
			}
		case globalcontext.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				gc.UpdatedAt = value.Time
			}
		default:
			gc.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GlobalContext.
// This includes values selected through modifiers, order, etc.
func (gc *GlobalContext) Value(name string) (ent.Value, error) {
	return gc.selectValues.Get(name)
}

// Update returns a builder for updating this GlobalContext.
// Note that you need to call GlobalContext.Unwrap() before calling this method if this GlobalContext
// was returned from a transaction, and the transaction was committed or rolled back.
func (gc *GlobalContext) Update() *GlobalContextUpdateOne {
	return NewGlobalContextClient(gc.config).UpdateOne(gc)
}

// Unwrap unwraps the GlobalContext entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (gc *GlobalContext) Unwrap() *GlobalContext {
	_tx, ok := gc.config.driver.(*txDriver)
	if !ok {
		panic("ent: GlobalContext is not a transactional entity")
	}
	gc.config.driver = _tx.drv
	return gc
}

// String implements the fmt.Stringer.
func (gc *GlobalContext) String() string {
	var builder strings.Builder
	builder.WriteString("GlobalContext(")
	builder.WriteString(fmt.Sprintf("id=%v, ", gc.ID))
	builder.WriteString("singleton=")
	builder.WriteString(fmt.Sprintf("%v", gc.Singleton))
	builder.WriteString(", ")
	builder.WriteString("context=")
	builder.WriteString(gc.Context)
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(gc.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GlobalContexts is a parsable slice of GlobalContext.
type GlobalContexts []*GlobalContext
