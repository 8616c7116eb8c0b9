// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dayplan/dayplan/ent/llmcall"
	"github.com/dayplan/dayplan/ent/predicate"
)

// LLMCallUpdate is the builder for updating LLMCall entities.
type LLMCallUpdate struct {
	config
	hooks    []Hook
	mutation *LLMCallMutation
}

// Where appends a list predicates to the LLMCallUpdate builder.
func (lcu *LLMCallUpdate) Where(ps ...predicate.LLMCall) *LLMCallUpdate {
	lcu.mutation.Where(ps...)
	return lcu
}

// SetModuleName sets the "module_name" field.
func (lcu *LLMCallUpdate) SetModuleName(s string) *LLMCallUpdate {
	lcu.mutation.SetModuleName(s)
	return lcu
}

// SetNillableModuleName sets the "module_name" field if the given value is not nil.
func (lcu *LLMCallUpdate) SetNillableModuleName(s *string) *LLMCallUpdate {
	if s != nil {
		lcu.SetModuleName(*s)
	}
	return lcu
}

// SetInputs sets the "inputs" field.
func (lcu *LLMCallUpdate) SetInputs(s string) *LLMCallUpdate {
	lcu.mutation.SetInputs(s)
	return lcu
}

// SetNillableInputs sets the "inputs" field if the given value is not nil.
func (lcu *LLMCallUpdate) SetNillableInputs(s *string) *LLMCallUpdate {
	if s != nil {
		lcu.SetInputs(*s)
	}
	return lcu
}

// SetOutputs sets the "outputs" field.
func (lcu *LLMCallUpdate) SetOutputs(s string) *LLMCallUpdate {
	lcu.mutation.SetOutputs(s)
	return lcu
}

// SetNillableOutputs sets the "outputs" field if the given value is not nil.
func (lcu *LLMCallUpdate) SetNillableOutputs(s *string) *LLMCallUpdate {
	if s != nil {
		lcu.SetOutputs(*s)
	}
	return lcu
}

// SetDurationMs sets the "duration_ms" field.
func (lcu *LLMCallUpdate) SetDurationMs(f float64) *LLMCallUpdate {
	lcu.mutation.ResetDurationMs()
	lcu.mutation.SetDurationMs(f)
	return lcu
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (lcu *LLMCallUpdate) SetNillableDurationMs(f *float64) *LLMCallUpdate {
	if f != nil {
		lcu.SetDurationMs(*f)
	}
	return lcu
}

// AddDurationMs adds f to the "duration_ms" field.
func (lcu *LLMCallUpdate) AddDurationMs(f float64) *LLMCallUpdate {
	lcu.mutation.AddDurationMs(f)
	return lcu
}

// Mutation returns the LLMCallMutation object of the builder.
func (lcu *LLMCallUpdate) Mutation() *LLMCallMutation {
	return lcu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (lcu *LLMCallUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, lcu.sqlSave, lcu.mutation, lcu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (lcu *LLMCallUpdate) SaveX(ctx context.Context) int {
	affected, err := lcu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (lcu *LLMCallUpdate) Exec(ctx context.Context) error {
	_, err := lcu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lcu *LLMCallUpdate) ExecX(ctx context.Context) {
	if err := lcu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lcu *LLMCallUpdate) check() error {
	if v, ok := lcu.mutation.ModuleName(); ok {
		if err := llmcall.ModuleNameValidator(v); err != nil {
			return &ValidationError{Name: "module_name", err: fmt.Errorf(`ent: validator failed for field "LLMCall.module_name": %w`, err)}
		}
	}
	return nil
}

func (lcu *LLMCallUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := lcu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(llmcall.Table, llmcall.Columns, sqlgraph.NewFieldSpec(llmcall.FieldID, field.TypeInt))
	if ps := lcu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := lcu.mutation.ModuleName(); ok {
		_spec.SetField(llmcall.FieldModuleName, field.TypeString, value)
	}
	if value, ok := lcu.mutation.Inputs(); ok {
		_spec.SetField(llmcall.FieldInputs, field.TypeString, value)
	}
	if value, ok := lcu.mutation.Outputs(); ok {
		_spec.SetField(llmcall.FieldOutputs, field.TypeString, value)
	}
	if value, ok := lcu.mutation.DurationMs(); ok {
		_spec.SetField(llmcall.FieldDurationMs, field.TypeFloat64, value)
	}
	if value, ok := lcu.mutation.AddedDurationMs(); ok {
		_spec.AddField(llmcall.FieldDurationMs, field.TypeFloat64, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, lcu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmcall.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	lcu.mutation.done = true
	return n, nil
}

// LLMCallUpdateOne is the builder for updating a single LLMCall entity.
type LLMCallUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LLMCallMutation
}

// SetModuleName sets the "module_name" field.
func (lcuo *LLMCallUpdateOne) SetModuleName(s string) *LLMCallUpdateOne {
	lcuo.mutation.SetModuleName(s)
	return lcuo
}

// SetNillableModuleName sets the "module_name" field if the given value is not nil.
func (lcuo *LLMCallUpdateOne) SetNillableModuleName(s *string) *LLMCallUpdateOne {
	if s != nil {
		lcuo.SetModuleName(*s)
	}
	return lcuo
}

// SetInputs sets the "inputs" field.
func (lcuo *LLMCallUpdateOne) SetInputs(s string) *LLMCallUpdateOne {
	lcuo.mutation.SetInputs(s)
	return lcuo
}

// SetNillableInputs sets the "inputs" field if the given value is not nil.
func (lcuo *LLMCallUpdateOne) SetNillableInputs(s *string) *LLMCallUpdateOne {
	if s != nil {
		lcuo.SetInputs(*s)
	}
	return lcuo
}

// SetOutputs sets the "outputs" field.
func (lcuo *LLMCallUpdateOne) SetOutputs(s string) *LLMCallUpdateOne {
	lcuo.mutation.SetOutputs(s)
	return lcuo
}

// SetNillableOutputs sets the "outputs" field if the given value is not nil.
func (lcuo *LLMCallUpdateOne) SetNillableOutputs(s *string) *LLMCallUpdateOne {
	if s != nil {
		lcuo.SetOutputs(*s)
	}
	return lcuo
}

// SetDurationMs sets the "duration_ms" field.
func (lcuo *LLMCallUpdateOne) SetDurationMs(f float64) *LLMCallUpdateOne {
	lcuo.mutation.ResetDurationMs()
	lcuo.mutation.SetDurationMs(f)
	return lcuo
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (lcuo *LLMCallUpdateOne) SetNillableDurationMs(f *float64) *LLMCallUpdateOne {
	if f != nil {
		lcuo.SetDurationMs(*f)
	}
	return lcuo
}

// AddDurationMs adds f to the "duration_ms" field.
func (lcuo *LLMCallUpdateOne) AddDurationMs(f float64) *LLMCallUpdateOne {
	lcuo.mutation.AddDurationMs(f)
	return lcuo
}

// Mutation returns the LLMCallMutation object of the builder.
func (lcuo *LLMCallUpdateOne) Mutation() *LLMCallMutation {
	return lcuo.mutation
}

// Where appends a list predicates to the LLMCallUpdate builder.
func (lcuo *LLMCallUpdateOne) Where(ps ...predicate.LLMCall) *LLMCallUpdateOne {
	lcuo.mutation.Where(ps...)
	return lcuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (lcuo *LLMCallUpdateOne) Select(field string, fields ...string) *LLMCallUpdateOne {
	lcuo.fields = append([]string{field}, fields...)
	return lcuo
}

// Save executes the query and returns the updated LLMCall entity.
func (lcuo *LLMCallUpdateOne) Save(ctx context.Context) (*LLMCall, error) {
	return withHooks(ctx, lcuo.sqlSave, lcuo.mutation, lcuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (lcuo *LLMCallUpdateOne) SaveX(ctx context.Context) *LLMCall {
	node, err := lcuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (lcuo *LLMCallUpdateOne) Exec(ctx context.Context) error {
	_, err := lcuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lcuo *LLMCallUpdateOne) ExecX(ctx context.Context) {
	if err := lcuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lcuo *LLMCallUpdateOne) check() error {
	if v, ok := lcuo.mutation.ModuleName(); ok {
		if err := llmcall.ModuleNameValidator(v); err != nil {
			return &ValidationError{Name: "module_name", err: fmt.Errorf(`ent: validator failed for field "LLMCall.module_name": %w`, err)}
		}
	}
	return nil
}

func (lcuo *LLMCallUpdateOne) sqlSave(ctx context.Context) (_node *LLMCall, err error) {
	if err := lcuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(llmcall.Table, llmcall.Columns, sqlgraph.NewFieldSpec(llmcall.FieldID, field.TypeInt))
	id, ok := lcuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LLMCall.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := lcuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, llmcall.FieldID)
		for _, f := range fields {
			if !llmcall.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != llmcall.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := lcuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := lcuo.mutation.ModuleName(); ok {
		_spec.SetField(llmcall.FieldModuleName, field.TypeString, value)
	}
	if value, ok := lcuo.mutation.Inputs(); ok {
		_spec.SetField(llmcall.FieldInputs, field.TypeString, value)
	}
	if value, ok := lcuo.mutation.Outputs(); ok {
		_spec.SetField(llmcall.FieldOutputs, field.TypeString, value)
	}
	if value, ok := lcuo.mutation.DurationMs(); ok {
		_spec.SetField(llmcall.FieldDurationMs, field.TypeFloat64, value)
	}
	if value, ok := lcuo.mutation.AddedDurationMs(); ok {
		_spec.AddField(llmcall.FieldDurationMs, field.TypeFloat64, value)
	}
	_node = &LLMCall{config: lcuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, lcuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmcall.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	lcuo.mutation.done = true
	return _node, nil
}
