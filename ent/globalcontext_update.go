// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dayplan/dayplan/ent/globalcontext"
	"github.com/dayplan/dayplan/ent/predicate"
)

// GlobalContextUpdate is the builder for updating GlobalContext entities.
type GlobalContextUpdate struct {
	config
	hooks    []Hook
	mutation *GlobalContextMutation
}

// Where appends a list predicates to the GlobalContextUpdate builder.
func (gcu *GlobalContextUpdate) Where(ps ...predicate.GlobalContext) *GlobalContextUpdate {
	gcu.mutation.Where(ps...)
	return gcu
}

// SetSingleton sets the "singleton" field.
func (gcu *GlobalContextUpdate) SetSingleton(b bool) *GlobalContextUpdate {
	gcu.mutation.SetSingleton(b)
	return gcu
}

// SetNillableSingleton sets the "singleton" field if the given value is not nil.
func (gcu *GlobalContextUpdate) SetNillableSingleton(b *bool) *GlobalContextUpdate {
	if b != nil {
		gcu.SetSingleton(*b)
	}
	return gcu
}

// SetContext sets the "context" field.
func (gcu *GlobalContextUpdate) SetContext(s string) *GlobalContextUpdate {
	gcu.mutation.SetContext(s)
	return gcu
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (gcu *GlobalContextUpdate) SetNillableContext(s *string) *GlobalContextUpdate {
	if s != nil {
		gcu.SetContext(*s)
	}
	return gcu
}

// SetUpdatedAt sets the "updated_at" field.
func (gcu *GlobalContextUpdate) SetUpdatedAt(t time.Time) *GlobalContextUpdate {
	gcu.mutation.SetUpdatedAt(t)
	return gcu
}

// Mutation returns the GlobalContextMutation object of the builder.
func (gcu *GlobalContextUpdate) Mutation() *GlobalContextMutation {
	return gcu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (gcu *GlobalContextUpdate) Save(ctx context.Context) (int, error) {
	gcu.defaults()
	return withHooks(ctx, gcu.sqlSave, gcu.mutation, gcu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (gcu *GlobalContextUpdate) SaveX(ctx context.Context) int {
	affected, err := gcu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (gcu *GlobalContextUpdate) Exec(ctx context.Context) error {
	_, err := gcu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (gcu *GlobalContextUpdate) ExecX(ctx context.Context) {
	if err := gcu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (gcu *GlobalContextUpdate) defaults() {
	if _, ok := gcu.mutation.UpdatedAt(); !ok {
		v := globalcontext.UpdateDefaultUpdatedAt()
		gcu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (gcu *GlobalContextUpdate) check() error {
	if v, ok := gcu.mutation.Context(); ok {
		if err := globalcontext.ContextValidator(v); err != nil {
			return &ValidationError{Name: "context", err: fmt.Errorf(`ent: validator failed for field "GlobalContext.context": %w`, err)}
		}
	}
	return nil
}

func (gcu *GlobalContextUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := gcu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(globalcontext.Table, globalcontext.Columns, sqlgraph.NewFieldSpec(globalcontext.FieldID, field.TypeInt))
	if ps := gcu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := gcu.mutation.Singleton(); ok {
		_spec.SetField(globalcontext.FieldSingleton, field.TypeBool, value)
	}
	if value, ok := gcu.mutation.Context(); ok {
		_spec.SetField(globalcontext.FieldContext, field.TypeString, value)
	}
	if value, ok := gcu.mutation.UpdatedAt(); ok {
		_spec.SetField(globalcontext.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, gcu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{globalcontext.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	gcu.mutation.done = true
	return n, nil
}

// GlobalContextUpdateOne is the builder for updating a single GlobalContext entity.
type GlobalContextUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GlobalContextMutation
}

// SetSingleton sets the "singleton" field.
func (gcuo *GlobalContextUpdateOne) SetSingleton(b bool) *GlobalContextUpdateOne {
	gcuo.mutation.SetSingleton(b)
	return gcuo
}

// SetNillableSingleton sets the "singleton" field if the given value is not nil.
func (gcuo *GlobalContextUpdateOne) SetNillableSingleton(b *bool) *GlobalContextUpdateOne {
	if b != nil {
		gcuo.SetSingleton(*b)
	}
	return gcuo
}

// SetContext sets the "context" field.
func (gcuo *GlobalContextUpdateOne) SetContext(s string) *GlobalContextUpdateOne {
	gcuo.mutation.SetContext(s)
	return gcuo
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (gcuo *GlobalContextUpdateOne) SetNillableContext(s *string) *GlobalContextUpdateOne {
	if s != nil {
		gcuo.SetContext(*s)
	}
	return gcuo
}

// SetUpdatedAt sets the "updated_at" field.
func (gcuo *GlobalContextUpdateOne) SetUpdatedAt(t time.Time) *GlobalContextUpdateOne {
	gcuo.mutation.SetUpdatedAt(t)
	return gcuo
}

// Mutation returns the GlobalContextMutation object of the builder.
func (gcuo *GlobalContextUpdateOne) Mutation() *GlobalContextMutation {
	return gcuo.mutation
}

// Where appends a list predicates to the GlobalContextUpdate builder.
func (gcuo *GlobalContextUpdateOne) Where(ps ...predicate.GlobalContext) *GlobalContextUpdateOne {
	gcuo.mutation.Where(ps...)
	return gcuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (gcuo *GlobalContextUpdateOne) Select(field string, fields ...string) *GlobalContextUpdateOne {
	gcuo.fields = append([]string{field}, fields...)
	return gcuo
}

// Save executes the query and returns the updated GlobalContext entity.
func (gcuo *GlobalContextUpdateOne) Save(ctx context.Context) (*GlobalContext, error) {
	gcuo.defaults()
	return withHooks(ctx, gcuo.sqlSave, gcuo.mutation, gcuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (gcuo *GlobalContextUpdateOne) SaveX(ctx context.Context) *GlobalContext {
	node, err := gcuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (gcuo *GlobalContextUpdateOne) Exec(ctx context.Context) error {
	_, err := gcuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (gcuo *GlobalContextUpdateOne) ExecX(ctx context.Context) {
	if err := gcuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (gcuo *GlobalContextUpdateOne) defaults() {
	if _, ok := gcuo.mutation.UpdatedAt(); !ok {
		v := globalcontext.UpdateDefaultUpdatedAt()
		gcuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (gcuo *GlobalContextUpdateOne) check() error {
	if v, ok := gcuo.mutation.Context(); ok {
		if err := globalcontext.ContextValidator(v); err != nil {
			return &ValidationError{Name: "context", err: fmt.Errorf(`ent: validator failed for field "GlobalContext.context": %w`, err)}
		}
	}
	return nil
}

func (gcuo *GlobalContextUpdateOne) sqlSave(ctx context.Context) (_node *GlobalContext, err error) {
	if err := gcuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(globalcontext.Table, globalcontext.Columns, sqlgraph.NewFieldSpec(globalcontext.FieldID, field.TypeInt))
	id, ok := gcuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GlobalContext.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := gcuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, globalcontext.FieldID)
		for _, f := range fields {
			if !globalcontext.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != globalcontext.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := gcuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := gcuo.mutation.Singleton(); ok {
		_spec.SetField(globalcontext.FieldSingleton, field.TypeBool, value)
	}
	if value, ok := gcuo.mutation.Context(); ok {
		_spec.SetField(globalcontext.FieldContext, field.TypeString, value)
	}
	if value, ok := gcuo.mutation.UpdatedAt(); ok {
		_spec.SetField(globalcontext.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &GlobalContext{config: gcuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, gcuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{globalcontext.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	gcuo.mutation.done = true
	return _node, nil
}
