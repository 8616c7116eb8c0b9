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
	"github.com/dayplan/dayplan/ent/predicate"
	"github.com/dayplan/dayplan/ent/task"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (tu *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	tu.mutation.Where(ps...)
	return tu
}

// SetTitle sets the "title" field.
func (tu *TaskUpdate) SetTitle(s string) *TaskUpdate {
	tu.mutation.SetTitle(s)
	return tu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableTitle(s *string) *TaskUpdate {
	if s != nil {
		tu.SetTitle(*s)
	}
	return tu
}

// SetDescription sets the "description" field.
func (tu *TaskUpdate) SetDescription(s string) *TaskUpdate {
	tu.mutation.SetDescription(s)
	return tu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableDescription(s *string) *TaskUpdate {
	if s != nil {
		tu.SetDescription(*s)
	}
	return tu
}

// SetContext sets the "context" field.
func (tu *TaskUpdate) SetContext(s string) *TaskUpdate {
	tu.mutation.SetContext(s)
	return tu
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableContext(s *string) *TaskUpdate {
	if s != nil {
		tu.SetContext(*s)
	}
	return tu
}

// SetDueDate sets the "due_date" field.
func (tu *TaskUpdate) SetDueDate(t time.Time) *TaskUpdate {
	tu.mutation.SetDueDate(t)
	return tu
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableDueDate(t *time.Time) *TaskUpdate {
	if t != nil {
		tu.SetDueDate(*t)
	}
	return tu
}

// ClearDueDate clears the value of the "due_date" field.
func (tu *TaskUpdate) ClearDueDate() *TaskUpdate {
	tu.mutation.ClearDueDate()
	return tu
}

// SetScheduledStart sets the "scheduled_start" field.
func (tu *TaskUpdate) SetScheduledStart(t time.Time) *TaskUpdate {
	tu.mutation.SetScheduledStart(t)
	return tu
}

// SetNillableScheduledStart sets the "scheduled_start" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableScheduledStart(t *time.Time) *TaskUpdate {
	if t != nil {
		tu.SetScheduledStart(*t)
	}
	return tu
}

// ClearScheduledStart clears the value of the "scheduled_start" field.
func (tu *TaskUpdate) ClearScheduledStart() *TaskUpdate {
	tu.mutation.ClearScheduledStart()
	return tu
}

// SetScheduledEnd sets the "scheduled_end" field.
func (tu *TaskUpdate) SetScheduledEnd(t time.Time) *TaskUpdate {
	tu.mutation.SetScheduledEnd(t)
	return tu
}

// SetNillableScheduledEnd sets the "scheduled_end" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableScheduledEnd(t *time.Time) *TaskUpdate {
	if t != nil {
		tu.SetScheduledEnd(*t)
	}
	return tu
}

// ClearScheduledEnd clears the value of the "scheduled_end" field.
func (tu *TaskUpdate) ClearScheduledEnd() *TaskUpdate {
	tu.mutation.ClearScheduledEnd()
	return tu
}

// SetActualStart sets the "actual_start" field.
func (tu *TaskUpdate) SetActualStart(t time.Time) *TaskUpdate {
	tu.mutation.SetActualStart(t)
	return tu
}

// SetNillableActualStart sets the "actual_start" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableActualStart(t *time.Time) *TaskUpdate {
	if t != nil {
		tu.SetActualStart(*t)
	}
	return tu
}

// ClearActualStart clears the value of the "actual_start" field.
func (tu *TaskUpdate) ClearActualStart() *TaskUpdate {
	tu.mutation.ClearActualStart()
	return tu
}

// SetActualEnd sets the "actual_end" field.
func (tu *TaskUpdate) SetActualEnd(t time.Time) *TaskUpdate {
	tu.mutation.SetActualEnd(t)
	return tu
}

// SetNillableActualEnd sets the "actual_end" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableActualEnd(t *time.Time) *TaskUpdate {
	if t != nil {
		tu.SetActualEnd(*t)
	}
	return tu
}

// ClearActualEnd clears the value of the "actual_end" field.
func (tu *TaskUpdate) ClearActualEnd() *TaskUpdate {
	tu.mutation.ClearActualEnd()
	return tu
}

// SetPriority sets the "priority" field.
func (tu *TaskUpdate) SetPriority(f float64) *TaskUpdate {
	tu.mutation.ResetPriority()
	tu.mutation.SetPriority(f)
	return tu
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (tu *TaskUpdate) SetNillablePriority(f *float64) *TaskUpdate {
	if f != nil {
		tu.SetPriority(*f)
	}
	return tu
}

// AddPriority adds f to the "priority" field.
func (tu *TaskUpdate) AddPriority(f float64) *TaskUpdate {
	tu.mutation.AddPriority(f)
	return tu
}

// SetCompleted sets the "completed" field.
func (tu *TaskUpdate) SetCompleted(b bool) *TaskUpdate {
	tu.mutation.SetCompleted(b)
	return tu
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableCompleted(b *bool) *TaskUpdate {
	if b != nil {
		tu.SetCompleted(*b)
	}
	return tu
}

// SetNeedsScheduling sets the "needs_scheduling" field.
func (tu *TaskUpdate) SetNeedsScheduling(b bool) *TaskUpdate {
	tu.mutation.SetNeedsScheduling(b)
	return tu
}

// SetNillableNeedsScheduling sets the "needs_scheduling" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableNeedsScheduling(b *bool) *TaskUpdate {
	if b != nil {
		tu.SetNeedsScheduling(*b)
	}
	return tu
}

// Mutation returns the TaskMutation object of the builder.
func (tu *TaskUpdate) Mutation() *TaskMutation {
	return tu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (tu *TaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, tu.sqlSave, tu.mutation, tu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tu *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := tu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (tu *TaskUpdate) Exec(ctx context.Context) error {
	_, err := tu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tu *TaskUpdate) ExecX(ctx context.Context) {
	if err := tu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tu *TaskUpdate) check() error {
	if v, ok := tu.mutation.Title(); ok {
		if err := task.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Task.title": %w`, err)}
		}
	}
	if v, ok := tu.mutation.Description(); ok {
		if err := task.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Task.description": %w`, err)}
		}
	}
	if v, ok := tu.mutation.Context(); ok {
		if err := task.ContextValidator(v); err != nil {
			return &ValidationError{Name: "context", err: fmt.Errorf(`ent: validator failed for field "Task.context": %w`, err)}
		}
	}
	return nil
}

func (tu *TaskUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := tu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt))
	if ps := tu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tu.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := tu.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if value, ok := tu.mutation.Context(); ok {
		_spec.SetField(task.FieldContext, field.TypeString, value)
	}
	if value, ok := tu.mutation.DueDate(); ok {
		_spec.SetField(task.FieldDueDate, field.TypeTime, value)
	}
	if tu.mutation.DueDateCleared() {
		_spec.ClearField(task.FieldDueDate, field.TypeTime)
	}
	if value, ok := tu.mutation.ScheduledStart(); ok {
		_spec.SetField(task.FieldScheduledStart, field.TypeTime, value)
	}
	if tu.mutation.ScheduledStartCleared() {
		_spec.ClearField(task.FieldScheduledStart, field.TypeTime)
	}
	if value, ok := tu.mutation.ScheduledEnd(); ok {
		_spec.SetField(task.FieldScheduledEnd, field.TypeTime, value)
	}
	if tu.mutation.ScheduledEndCleared() {
		_spec.ClearField(task.FieldScheduledEnd, field.TypeTime)
	}
	if value, ok := tu.mutation.ActualStart(); ok {
		_spec.SetField(task.FieldActualStart, field.TypeTime, value)
	}
	if tu.mutation.ActualStartCleared() {
		_spec.ClearField(task.FieldActualStart, field.TypeTime)
	}
	if value, ok := tu.mutation.ActualEnd(); ok {
		_spec.SetField(task.FieldActualEnd, field.TypeTime, value)
	}
	if tu.mutation.ActualEndCleared() {
		_spec.ClearField(task.FieldActualEnd, field.TypeTime)
	}
	if value, ok := tu.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeFloat64, value)
	}
	if value, ok := tu.mutation.AddedPriority(); ok {
		_spec.AddField(task.FieldPriority, field.TypeFloat64, value)
	}
	if value, ok := tu.mutation.Completed(); ok {
		_spec.SetField(task.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := tu.mutation.NeedsScheduling(); ok {
		_spec.SetField(task.FieldNeedsScheduling, field.TypeBool, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, tu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	tu.mutation.done = true
	return n, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetTitle sets the "title" field.
func (tuo *TaskUpdateOne) SetTitle(s string) *TaskUpdateOne {
	tuo.mutation.SetTitle(s)
	return tuo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableTitle(s *string) *TaskUpdateOne {
	if s != nil {
		tuo.SetTitle(*s)
	}
	return tuo
}

// SetDescription sets the "description" field.
func (tuo *TaskUpdateOne) SetDescription(s string) *TaskUpdateOne {
	tuo.mutation.SetDescription(s)
	return tuo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableDescription(s *string) *TaskUpdateOne {
	if s != nil {
		tuo.SetDescription(*s)
	}
	return tuo
}

// SetContext sets the "context" field.
func (tuo *TaskUpdateOne) SetContext(s string) *TaskUpdateOne {
	tuo.mutation.SetContext(s)
	return tuo
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableContext(s *string) *TaskUpdateOne {
	if s != nil {
		tuo.SetContext(*s)
	}
	return tuo
}

// SetDueDate sets the "due_date" field.
func (tuo *TaskUpdateOne) SetDueDate(t time.Time) *TaskUpdateOne {
	tuo.mutation.SetDueDate(t)
	return tuo
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableDueDate(t *time.Time) *TaskUpdateOne {
	if t != nil {
		tuo.SetDueDate(*t)
	}
	return tuo
}

// ClearDueDate clears the value of the "due_date" field.
func (tuo *TaskUpdateOne) ClearDueDate() *TaskUpdateOne {
	tuo.mutation.ClearDueDate()
	return tuo
}

// SetScheduledStart sets the "scheduled_start" field.
func (tuo *TaskUpdateOne) SetScheduledStart(t time.Time) *TaskUpdateOne {
	tuo.mutation.SetScheduledStart(t)
	return tuo
}

// SetNillableScheduledStart sets the "scheduled_start" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableScheduledStart(t *time.Time) *TaskUpdateOne {
	if t != nil {
		tuo.SetScheduledStart(*t)
	}
	return tuo
}

// ClearScheduledStart clears the value of the "scheduled_start" field.
func (tuo *TaskUpdateOne) ClearScheduledStart() *TaskUpdateOne {
	tuo.mutation.ClearScheduledStart()
	return tuo
}

// SetScheduledEnd sets the "scheduled_end" field.
func (tuo *TaskUpdateOne) SetScheduledEnd(t time.Time) *TaskUpdateOne {
	tuo.mutation.SetScheduledEnd(t)
	return tuo
}

// SetNillableScheduledEnd sets the "scheduled_end" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableScheduledEnd(t *time.Time) *TaskUpdateOne {
	if t != nil {
		tuo.SetScheduledEnd(*t)
	}
	return tuo
}

// ClearScheduledEnd clears the value of the "scheduled_end" field.
func (tuo *TaskUpdateOne) ClearScheduledEnd() *TaskUpdateOne {
	tuo.mutation.ClearScheduledEnd()
	return tuo
}

// SetActualStart sets the "actual_start" field.
func (tuo *TaskUpdateOne) SetActualStart(t time.Time) *TaskUpdateOne {
	tuo.mutation.SetActualStart(t)
	return tuo
}

// SetNillableActualStart sets the "actual_start" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableActualStart(t *time.Time) *TaskUpdateOne {
	if t != nil {
		tuo.SetActualStart(*t)
	}
	return tuo
}

// ClearActualStart clears the value of the "actual_start" field.
func (tuo *TaskUpdateOne) ClearActualStart() *TaskUpdateOne {
	tuo.mutation.ClearActualStart()
	return tuo
}

// SetActualEnd sets the "actual_end" field.
func (tuo *TaskUpdateOne) SetActualEnd(t time.Time) *TaskUpdateOne {
	tuo.mutation.SetActualEnd(t)
	return tuo
}

// SetNillableActualEnd sets the "actual_end" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableActualEnd(t *time.Time) *TaskUpdateOne {
	if t != nil {
		tuo.SetActualEnd(*t)
	}
	return tuo
}

// ClearActualEnd clears the value of the "actual_end" field.
func (tuo *TaskUpdateOne) ClearActualEnd() *TaskUpdateOne {
	tuo.mutation.ClearActualEnd()
	return tuo
}

// SetPriority sets the "priority" field.
func (tuo *TaskUpdateOne) SetPriority(f float64) *TaskUpdateOne {
	tuo.mutation.ResetPriority()
	tuo.mutation.SetPriority(f)
	return tuo
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillablePriority(f *float64) *TaskUpdateOne {
	if f != nil {
		tuo.SetPriority(*f)
	}
	return tuo
}

// AddPriority adds f to the "priority" field.
func (tuo *TaskUpdateOne) AddPriority(f float64) *TaskUpdateOne {
	tuo.mutation.AddPriority(f)
	return tuo
}

// SetCompleted sets the "completed" field.
func (tuo *TaskUpdateOne) SetCompleted(b bool) *TaskUpdateOne {
	tuo.mutation.SetCompleted(b)
	return tuo
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableCompleted(b *bool) *TaskUpdateOne {
	if b != nil {
		tuo.SetCompleted(*b)
	}
	return tuo
}

// SetNeedsScheduling sets the "needs_scheduling" field.
func (tuo *TaskUpdateOne) SetNeedsScheduling(b bool) *TaskUpdateOne {
	tuo.mutation.SetNeedsScheduling(b)
	return tuo
}

// SetNillableNeedsScheduling sets the "needs_scheduling" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableNeedsScheduling(b *bool) *TaskUpdateOne {
	if b != nil {
		tuo.SetNeedsScheduling(*b)
	}
	return tuo
}

// Mutation returns the TaskMutation object of the builder.
func (tuo *TaskUpdateOne) Mutation() *TaskMutation {
	return tuo.mutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (tuo *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	tuo.mutation.Where(ps...)
	return tuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (tuo *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	tuo.fields = append([]string{field}, fields...)
	return tuo
}

// Save executes the query and returns the updated Task entity.
func (tuo *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	return withHooks(ctx, tuo.sqlSave, tuo.mutation, tuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tuo *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := tuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (tuo *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := tuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tuo *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := tuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tuo *TaskUpdateOne) check() error {
	if v, ok := tuo.mutation.Title(); ok {
		if err := task.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Task.title": %w`, err)}
		}
	}
	if v, ok := tuo.mutation.Description(); ok {
		if err := task.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Task.description": %w`, err)}
		}
	}
	if v, ok := tuo.mutation.Context(); ok {
		if err := task.ContextValidator(v); err != nil {
			return &ValidationError{Name: "context", err: fmt.Errorf(`ent: validator failed for field "Task.context": %w`, err)}
		}
	}
	return nil
}

func (tuo *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := tuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt))
	id, ok := tuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := tuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := tuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tuo.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := tuo.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if value, ok := tuo.mutation.Context(); ok {
		_spec.SetField(task.FieldContext, field.TypeString, value)
	}
	if value, ok := tuo.mutation.DueDate(); ok {
		_spec.SetField(task.FieldDueDate, field.TypeTime, value)
	}
	if tuo.mutation.DueDateCleared() {
		_spec.ClearField(task.FieldDueDate, field.TypeTime)
	}
	if value, ok := tuo.mutation.ScheduledStart(); ok {
		_spec.SetField(task.FieldScheduledStart, field.TypeTime, value)
	}
	if tuo.mutation.ScheduledStartCleared() {
		_spec.ClearField(task.FieldScheduledStart, field.TypeTime)
	}
	if value, ok := tuo.mutation.ScheduledEnd(); ok {
		_spec.SetField(task.FieldScheduledEnd, field.TypeTime, value)
	}
	if tuo.mutation.ScheduledEndCleared() {
		_spec.ClearField(task.FieldScheduledEnd, field.TypeTime)
	}
	if value, ok := tuo.mutation.ActualStart(); ok {
		_spec.SetField(task.FieldActualStart, field.TypeTime, value)
	}
	if tuo.mutation.ActualStartCleared() {
		_spec.ClearField(task.FieldActualStart, field.TypeTime)
	}
	if value, ok := tuo.mutation.ActualEnd(); ok {
		_spec.SetField(task.FieldActualEnd, field.TypeTime, value)
	}
	if tuo.mutation.ActualEndCleared() {
		_spec.ClearField(task.FieldActualEnd, field.TypeTime)
	}
	if value, ok := tuo.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeFloat64, value)
	}
	if value, ok := tuo.mutation.AddedPriority(); ok {
		_spec.AddField(task.FieldPriority, field.TypeFloat64, value)
	}
	if value, ok := tuo.mutation.Completed(); ok {
		_spec.SetField(task.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := tuo.mutation.NeedsScheduling(); ok {
		_spec.SetField(task.FieldNeedsScheduling, field.TypeBool, value)
	}
	_node = &Task{config: tuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, tuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	tuo.mutation.done = true
	return _node, nil
}
