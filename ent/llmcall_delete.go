// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dayplan/dayplan/ent/llmcall"
	"github.com/dayplan/dayplan/ent/predicate"
)

// LLMCallDelete is the builder for deleting a LLMCall entity.
type LLMCallDelete struct {
	config
	hooks    []Hook
	mutation *LLMCallMutation
}

// Where appends a list predicates to the LLMCallDelete builder.
func (lcd *LLMCallDelete) Where(ps ...predicate.LLMCall) *LLMCallDelete {
	lcd.mutation.Where(ps...)
	return lcd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (lcd *LLMCallDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, lcd.sqlExec, lcd.mutation, lcd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (lcd *LLMCallDelete) ExecX(ctx context.Context) int {
	n, err := lcd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (lcd *LLMCallDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(llmcall.Table, sqlgraph.NewFieldSpec(llmcall.FieldID, field.TypeInt))
	if ps := lcd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, lcd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	lcd.mutation.done = true
	return affected, err
}

// LLMCallDeleteOne is the builder for deleting a single LLMCall entity.
type LLMCallDeleteOne struct {
	lcd *LLMCallDelete
}

// Where appends a list predicates to the LLMCallDelete builder.
func (lcdo *LLMCallDeleteOne) Where(ps ...predicate.LLMCall) *LLMCallDeleteOne {
	lcdo.lcd.mutation.Where(ps...)
	return lcdo
}

// Exec executes the deletion query.
func (lcdo *LLMCallDeleteOne) Exec(ctx context.Context) error {
	n, err := lcdo.lcd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{llmcall.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (lcdo *LLMCallDeleteOne) ExecX(ctx context.Context) {
	if err := lcdo.Exec(ctx); err != nil {
		panic(err)
	}
}
