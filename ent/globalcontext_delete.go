// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dayplan/dayplan/ent/globalcontext"
	"github.com/dayplan/dayplan/ent/predicate"
)

// GlobalContextDelete is the builder for deleting a GlobalContext entity.
type GlobalContextDelete struct {
	config
	hooks    []Hook
	mutation *GlobalContextMutation
}

// Where appends a list predicates to the GlobalContextDelete builder.
func (gcd *GlobalContextDelete) Where(ps ...predicate.GlobalContext) *GlobalContextDelete {
	gcd.mutation.Where(ps...)
	return gcd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (gcd *GlobalContextDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, gcd.sqlExec, gcd.mutation, gcd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (gcd *GlobalContextDelete) ExecX(ctx context.Context) int {
	n, err := gcd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (gcd *GlobalContextDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(globalcontext.Table, sqlgraph.NewFieldSpec(globalcontext.FieldID, field.TypeInt))
	if ps := gcd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, gcd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	gcd.mutation.done = true
	return affected, err
}

// GlobalContextDeleteOne is the builder for deleting a single GlobalContext entity.
type GlobalContextDeleteOne struct {
	gcd *GlobalContextDelete
}

// Where appends a list predicates to the GlobalContextDelete builder.
func (gcdo *GlobalContextDeleteOne) Where(ps ...predicate.GlobalContext) *GlobalContextDeleteOne {
	gcdo.gcd.mutation.Where(ps...)
	return gcdo
}

// Exec executes the deletion query.
func (gcdo *GlobalContextDeleteOne) Exec(ctx context.Context) error {
	n, err := gcdo.gcd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{globalcontext.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (gcdo *GlobalContextDeleteOne) ExecX(ctx context.Context) {
	if err := gcdo.Exec(ctx); err != nil {
		panic(err)
	}
}
