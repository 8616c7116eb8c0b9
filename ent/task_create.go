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
	"github.com/dayplan/dayplan/ent/task"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTitle sets the "title" field.
func (tc *TaskCreate) SetTitle(s string) *TaskCreate {
	tc.mutation.SetTitle(s)
	return tc
}

// SetDescription sets the "description" field.
func (tc *TaskCreate) SetDescription(s string) *TaskCreate {
	tc.mutation.SetDescription(s)
	return tc
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (tc *TaskCreate) SetNillableDescription(s *string) *TaskCreate {
	if s != nil {
		tc.SetDescription(*s)
	}
	return tc
}

// SetContext sets the "context" field.
func (tc *TaskCreate) SetContext(s string) *TaskCreate {
	tc.mutation.SetContext(s)
	return tc
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (tc *TaskCreate) SetNillableContext(s *string) *TaskCreate {
	if s != nil {
		tc.SetContext(*s)
	}
	return tc
}

// SetDueDate sets the "due_date" field.
func (tc *TaskCreate) SetDueDate(t time.Time) *TaskCreate {
	tc.mutation.SetDueDate(t)
	return tc
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (tc *TaskCreate) SetNillableDueDate(t *time.Time) *TaskCreate {
	if t != nil {
		tc.SetDueDate(*t)
	}
	return tc
}

// SetScheduledStart sets the "scheduled_start" field.
func (tc *TaskCreate) SetScheduledStart(t time.Time) *TaskCreate {
	tc.mutation.SetScheduledStart(t)
	return tc
}

// SetNillableScheduledStart sets the "scheduled_start" field if the given value is not nil.
func (tc *TaskCreate) SetNillableScheduledStart(t *time.Time) *TaskCreate {
	if t != nil {
		tc.SetScheduledStart(*t)
	}
	return tc
}

// SetScheduledEnd sets the "scheduled_end" field.
func (tc *TaskCreate) SetScheduledEnd(t time.Time) *TaskCreate {
	tc.mutation.SetScheduledEnd(t)
	return tc
}

// SetNillableScheduledEnd sets the "scheduled_end" field if the given value is not nil.
func (tc *TaskCreate) SetNillableScheduledEnd(t *time.Time) *TaskCreate {
	if t != nil {
		tc.SetScheduledEnd(*t)
	}
	return tc
}

// SetActualStart sets the "actual_start" field.
func (tc *TaskCreate) SetActualStart(t time.Time) *TaskCreate {
	tc.mutation.SetActualStart(t)
	return tc
}

// SetNillableActualStart sets the "actual_start" field if the given value is not nil.
func (tc *TaskCreate) SetNillableActualStart(t *time.Time) *TaskCreate {
	if t != nil {
		tc.SetActualStart(*t)
	}
	return tc
}

// SetActualEnd sets the "actual_end" field.
func (tc *TaskCreate) SetActualEnd(t time.Time) *TaskCreate {
	tc.mutation.SetActualEnd(t)
	return tc
}

// SetNillableActualEnd sets the "actual_end" field if the given value is not nil.
func (tc *TaskCreate) SetNillableActualEnd(t *time.Time) *TaskCreate {
	if t != nil {
		tc.SetActualEnd(*t)
	}
	return tc
}

// SetPriority sets the "priority" field.
func (tc *TaskCreate) SetPriority(f float64) *TaskCreate {
	tc.mutation.SetPriority(f)
	return tc
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (tc *TaskCreate) SetNillablePriority(f *float64) *TaskCreate {
	if f != nil {
		tc.SetPriority(*f)
	}
	return tc
}

// SetCompleted sets the "completed" field.
func (tc *TaskCreate) SetCompleted(b bool) *TaskCreate {
	tc.mutation.SetCompleted(b)
	return tc
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (tc *TaskCreate) SetNillableCompleted(b *bool) *TaskCreate {
	if b != nil {
		tc.SetCompleted(*b)
	}
	return tc
}

// SetNeedsScheduling sets the "needs_scheduling" field.
func (tc *TaskCreate) SetNeedsScheduling(b bool) *TaskCreate {
	tc.mutation.SetNeedsScheduling(b)
	return tc
}

// SetNillableNeedsScheduling sets the "needs_scheduling" field if the given value is not nil.
func (tc *TaskCreate) SetNillableNeedsScheduling(b *bool) *TaskCreate {
	if b != nil {
		tc.SetNeedsScheduling(*b)
	}
	return tc
}

// SetCreatedAt sets the "created_at" field.
func (tc *TaskCreate) SetCreatedAt(t time.Time) *TaskCreate {
	tc.mutation.SetCreatedAt(t)
	return tc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (tc *TaskCreate) SetNillableCreatedAt(t *time.Time) *TaskCreate {
	if t != nil {
		tc.SetCreatedAt(*t)
	}
	return tc
}

// Mutation returns the TaskMutation object of the builder.
func (tc *TaskCreate) Mutation() *TaskMutation {
	return tc.mutation
}

// Save creates the Task in the database.
func (tc *TaskCreate) Save(ctx context.Context) (*Task, error) {
	tc.defaults()
	return withHooks(ctx, tc.sqlSave, tc.mutation, tc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (tc *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := tc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tc *TaskCreate) Exec(ctx context.Context) error {
	_, err := tc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tc *TaskCreate) ExecX(ctx context.Context) {
	if err := tc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tc *TaskCreate) defaults() {
	if _, ok := tc.mutation.Description(); !ok {
		v := task.DefaultDescription
		tc.mutation.SetDescription(v)
	}
	if _, ok := tc.mutation.Context(); !ok {
		v := task.DefaultContext
		tc.mutation.SetContext(v)
	}
	if _, ok := tc.mutation.Priority(); !ok {
		v := task.DefaultPriority
		tc.mutation.SetPriority(v)
	}
	if _, ok := tc.mutation.Completed(); !ok {
		v := task.DefaultCompleted
		tc.mutation.SetCompleted(v)
	}
	if _, ok := tc.mutation.NeedsScheduling(); !ok {
		v := task.DefaultNeedsScheduling
		tc.mutation.SetNeedsScheduling(v)
	}
	if _, ok := tc.mutation.CreatedAt(); !ok {
		v := task.DefaultCreatedAt()
		tc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tc *TaskCreate) check() error {
	if _, ok := tc.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Task.title"`)}
	}
	if v, ok := tc.mutation.Title(); ok {
		if err := task.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Task.title": %w`, err)}
		}
	}
	if _, ok := tc.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Task.description"`)}
	}
	if v, ok := tc.mutation.Description(); ok {
		if err := task.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Task.description": %w`, err)}
		}
	}
	if _, ok := tc.mutation.Context(); !ok {
		return &ValidationError{Name: "context", err: errors.New(`ent: missing required field "Task.context"`)}
	}
	if v, ok := tc.mutation.Context(); ok {
		if err := task.ContextValidator(v); err != nil {
			return &ValidationError{Name: "context", err: fmt.Errorf(`ent: validator failed for field "Task.context": %w`, err)}
		}
	}
	if _, ok := tc.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Task.priority"`)}
	}
	if _, ok := tc.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "Task.completed"`)}
	}
	if _, ok := tc.mutation.NeedsScheduling(); !ok {
		return &ValidationError{Name: "needs_scheduling", err: errors.New(`ent: missing required field "Task.needs_scheduling"`)}
	}
	if _, ok := tc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Task.created_at"`)}
	}
	return nil
}

func (tc *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
	if err := tc.check(); err != nil {
		return nil, err
	}
	_node, _spec := tc.createSpec()
	if err := sqlgraph.CreateNode(ctx, tc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	tc.mutation.id = &_node.ID
	tc.mutation.done = true
	return _node, nil
}

func (tc *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: tc.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt))
	)
	_spec.OnConflict = tc.conflict
	if value, ok := tc.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := tc.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := tc.mutation.Context(); ok {
		_spec.SetField(task.FieldContext, field.TypeString, value)
		_node.Context = value
	}
	if value, ok := tc.mutation.DueDate(); ok {
		_spec.SetField(task.FieldDueDate, field.TypeTime, value)
		_node.DueDate = &value
	}
	if value, ok := tc.mutation.ScheduledStart(); ok {
		_spec.SetField(task.FieldScheduledStart, field.TypeTime, value)
		_node.ScheduledStart = &value
	}
	if value, ok := tc.mutation.ScheduledEnd(); ok {
		_spec.SetField(task.FieldScheduledEnd, field.TypeTime, value)
		_node.ScheduledEnd = &value
	}
	if value, ok := tc.mutation.ActualStart(); ok {
		_spec.SetField(task.FieldActualStart, field.TypeTime, value)
		_node.ActualStart = &value
	}
	if value, ok := tc.mutation.ActualEnd(); ok {
		_spec.SetField(task.FieldActualEnd, field.TypeTime, value)
		_node.ActualEnd = &value
	}
	if value, ok := tc.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeFloat64, value)
		_node.Priority = value
	}
	if value, ok := tc.mutation.Completed(); ok {
		_spec.SetField(task.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := tc.mutation.NeedsScheduling(); ok {
		_spec.SetField(task.FieldNeedsScheduling, field.TypeBool, value)
		_node.NeedsScheduling = value
	}
	if value, ok := tc.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.Create().
//		SetTitle(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (tc *TaskCreate) OnConflict(opts ...sql.ConflictOption) *TaskUpsertOne {
	tc.conflict = opts
	return &TaskUpsertOne{
		create: tc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (tc *TaskCreate) OnConflictColumns(columns ...string) *TaskUpsertOne {
	tc.conflict = append(tc.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertOne{
		create: tc,
	}
}

type (
	// TaskUpsertOne is the builder for "upsert"-ing
	//  one Task node.
	TaskUpsertOne struct {
		create *TaskCreate
	}

	// TaskUpsert is the "OnConflict" setter.
	TaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *TaskUpsert) SetTitle(v string) *TaskUpsert {
	u.Set(task.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TaskUpsert) UpdateTitle() *TaskUpsert {
	u.SetExcluded(task.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *TaskUpsert) SetDescription(v string) *TaskUpsert {
	u.Set(task.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskUpsert) UpdateDescription() *TaskUpsert {
	u.SetExcluded(task.FieldDescription)
	return u
}

// SetContext sets the "context" field.
func (u *TaskUpsert) SetContext(v string) *TaskUpsert {
	u.Set(task.FieldContext, v)
	return u
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *TaskUpsert) UpdateContext() *TaskUpsert {
	u.SetExcluded(task.FieldContext)
	return u
}

// SetDueDate sets the "due_date" field.
func (u *TaskUpsert) SetDueDate(v time.Time) *TaskUpsert {
	u.Set(task.FieldDueDate, v)
	return u
}

// UpdateDueDate sets the "due_date" field to the value that was provided on create.
func (u *TaskUpsert) UpdateDueDate() *TaskUpsert {
	u.SetExcluded(task.FieldDueDate)
	return u
}

// ClearDueDate clears the value of the "due_date" field.
func (u *TaskUpsert) ClearDueDate() *TaskUpsert {
	u.SetNull(task.FieldDueDate)
	return u
}

// SetScheduledStart sets the "scheduled_start" field.
func (u *TaskUpsert) SetScheduledStart(v time.Time) *TaskUpsert {
	u.Set(task.FieldScheduledStart, v)
	return u
}

// UpdateScheduledStart sets the "scheduled_start" field to the value that was provided on create.
func (u *TaskUpsert) UpdateScheduledStart() *TaskUpsert {
	u.SetExcluded(task.FieldScheduledStart)
	return u
}

// ClearScheduledStart clears the value of the "scheduled_start" field.
func (u *TaskUpsert) ClearScheduledStart() *TaskUpsert {
	u.SetNull(task.FieldScheduledStart)
	return u
}

// SetScheduledEnd sets the "scheduled_end" field.
func (u *TaskUpsert) SetScheduledEnd(v time.Time) *TaskUpsert {
	u.Set(task.FieldScheduledEnd, v)
	return u
}

// UpdateScheduledEnd sets the "scheduled_end" field to the value that was provided on create.
func (u *TaskUpsert) UpdateScheduledEnd() *TaskUpsert {
	u.SetExcluded(task.FieldScheduledEnd)
	return u
}

// ClearScheduledEnd clears the value of the "scheduled_end" field.
func (u *TaskUpsert) ClearScheduledEnd() *TaskUpsert {
	u.SetNull(task.FieldScheduledEnd)
	return u
}

// SetActualStart sets the "actual_start" field.
func (u *TaskUpsert) SetActualStart(v time.Time) *TaskUpsert {
	u.Set(task.FieldActualStart, v)
	return u
}

// UpdateActualStart sets the "actual_start" field to the value that was provided on create.
func (u *TaskUpsert) UpdateActualStart() *TaskUpsert {
	u.SetExcluded(task.FieldActualStart)
	return u
}

// ClearActualStart clears the value of the "actual_start" field.
func (u *TaskUpsert) ClearActualStart() *TaskUpsert {
	u.SetNull(task.FieldActualStart)
	return u
}

// SetActualEnd sets the "actual_end" field.
func (u *TaskUpsert) SetActualEnd(v time.Time) *TaskUpsert {
	u.Set(task.FieldActualEnd, v)
	return u
}

// UpdateActualEnd sets the "actual_end" field to the value that was provided on create.
func (u *TaskUpsert) UpdateActualEnd() *TaskUpsert {
	u.SetExcluded(task.FieldActualEnd)
	return u
}

// ClearActualEnd clears the value of the "actual_end" field.
func (u *TaskUpsert) ClearActualEnd() *TaskUpsert {
	u.SetNull(task.FieldActualEnd)
	return u
}

// SetPriority sets the "priority" field.
func (u *TaskUpsert) SetPriority(v float64) *TaskUpsert {
	u.Set(task.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *TaskUpsert) UpdatePriority() *TaskUpsert {
	u.SetExcluded(task.FieldPriority)
	return u
}

// AddPriority adds v to the "priority" field.
func (u *TaskUpsert) AddPriority(v float64) *TaskUpsert {
	u.Add(task.FieldPriority, v)
	return u
}

// SetCompleted sets the "completed" field.
func (u *TaskUpsert) SetCompleted(v bool) *TaskUpsert {
	u.Set(task.FieldCompleted, v)
	return u
}

// UpdateCompleted sets the "completed" field to the value that was provided on create.
func (u *TaskUpsert) UpdateCompleted() *TaskUpsert {
	u.SetExcluded(task.FieldCompleted)
	return u
}

// SetNeedsScheduling sets the "needs_scheduling" field.
func (u *TaskUpsert) SetNeedsScheduling(v bool) *TaskUpsert {
	u.Set(task.FieldNeedsScheduling, v)
	return u
}

// UpdateNeedsScheduling sets the "needs_scheduling" field to the value that was provided on create.
func (u *TaskUpsert) UpdateNeedsScheduling() *TaskUpsert {
	u.SetExcluded(task.FieldNeedsScheduling)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TaskUpsertOne) UpdateNewValues() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(task.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TaskUpsertOne) Ignore() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertOne) DoNothing() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreate.OnConflict
// documentation for more info.
func (u *TaskUpsertOne) Update(set func(*TaskUpsert)) *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *TaskUpsertOne) SetTitle(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateTitle() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *TaskUpsertOne) SetDescription(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateDescription() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDescription()
	})
}

// SetContext sets the "context" field.
func (u *TaskUpsertOne) SetContext(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetContext(v)
	})
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateContext() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateContext()
	})
}

// SetDueDate sets the "due_date" field.
func (u *TaskUpsertOne) SetDueDate(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetDueDate(v)
	})
}

// UpdateDueDate sets the "due_date" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateDueDate() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDueDate()
	})
}

// ClearDueDate clears the value of the "due_date" field.
func (u *TaskUpsertOne) ClearDueDate() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDueDate()
	})
}

// SetScheduledStart sets the "scheduled_start" field.
func (u *TaskUpsertOne) SetScheduledStart(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetScheduledStart(v)
	})
}

// UpdateScheduledStart sets the "scheduled_start" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateScheduledStart() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateScheduledStart()
	})
}

// ClearScheduledStart clears the value of the "scheduled_start" field.
func (u *TaskUpsertOne) ClearScheduledStart() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearScheduledStart()
	})
}

// SetScheduledEnd sets the "scheduled_end" field.
func (u *TaskUpsertOne) SetScheduledEnd(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetScheduledEnd(v)
	})
}

// UpdateScheduledEnd sets the "scheduled_end" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateScheduledEnd() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateScheduledEnd()
	})
}

// ClearScheduledEnd clears the value of the "scheduled_end" field.
func (u *TaskUpsertOne) ClearScheduledEnd() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearScheduledEnd()
	})
}

// SetActualStart sets the "actual_start" field.
func (u *TaskUpsertOne) SetActualStart(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetActualStart(v)
	})
}

// UpdateActualStart sets the "actual_start" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateActualStart() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateActualStart()
	})
}

// ClearActualStart clears the value of the "actual_start" field.
func (u *TaskUpsertOne) ClearActualStart() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearActualStart()
	})
}

// SetActualEnd sets the "actual_end" field.
func (u *TaskUpsertOne) SetActualEnd(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetActualEnd(v)
	})
}

// UpdateActualEnd sets the "actual_end" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateActualEnd() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateActualEnd()
	})
}

// ClearActualEnd clears the value of the "actual_end" field.
func (u *TaskUpsertOne) ClearActualEnd() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearActualEnd()
	})
}

// SetPriority sets the "priority" field.
func (u *TaskUpsertOne) SetPriority(v float64) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *TaskUpsertOne) AddPriority(v float64) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdatePriority() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePriority()
	})
}

// SetCompleted sets the "completed" field.
func (u *TaskUpsertOne) SetCompleted(v bool) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetCompleted(v)
	})
}

// UpdateCompleted sets the "completed" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateCompleted() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCompleted()
	})
}

// SetNeedsScheduling sets the "needs_scheduling" field.
func (u *TaskUpsertOne) SetNeedsScheduling(v bool) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetNeedsScheduling(v)
	})
}

// UpdateNeedsScheduling sets the "needs_scheduling" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateNeedsScheduling() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateNeedsScheduling()
	})
}

// Exec executes the query.
func (u *TaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TaskUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TaskUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
	conflict []sql.ConflictOption
}

// Save creates the Task entities in the database.
func (tcb *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if tcb.err != nil {
		return nil, tcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(tcb.builders))
	nodes := make([]*Task, len(tcb.builders))
	mutators := make([]Mutator, len(tcb.builders))
	for i := range tcb.builders {
		func(i int, root context.Context) {
			builder := tcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, tcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = tcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, tcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, tcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (tcb *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := tcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tcb *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := tcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tcb *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := tcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (tcb *TaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *TaskUpsertBulk {
	tcb.conflict = opts
	return &TaskUpsertBulk{
		create: tcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (tcb *TaskCreateBulk) OnConflictColumns(columns ...string) *TaskUpsertBulk {
	tcb.conflict = append(tcb.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertBulk{
		create: tcb,
	}
}

// TaskUpsertBulk is the builder for "upsert"-ing
// a bulk of Task nodes.
type TaskUpsertBulk struct {
	create *TaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TaskUpsertBulk) UpdateNewValues() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(task.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TaskUpsertBulk) Ignore() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertBulk) DoNothing() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreateBulk.OnConflict
// documentation for more info.
func (u *TaskUpsertBulk) Update(set func(*TaskUpsert)) *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *TaskUpsertBulk) SetTitle(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateTitle() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *TaskUpsertBulk) SetDescription(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateDescription() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDescription()
	})
}

// SetContext sets the "context" field.
func (u *TaskUpsertBulk) SetContext(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetContext(v)
	})
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateContext() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateContext()
	})
}

// SetDueDate sets the "due_date" field.
func (u *TaskUpsertBulk) SetDueDate(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetDueDate(v)
	})
}

// UpdateDueDate sets the "due_date" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateDueDate() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDueDate()
	})
}

// ClearDueDate clears the value of the "due_date" field.
func (u *TaskUpsertBulk) ClearDueDate() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDueDate()
	})
}

// SetScheduledStart sets the "scheduled_start" field.
func (u *TaskUpsertBulk) SetScheduledStart(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetScheduledStart(v)
	})
}

// UpdateScheduledStart sets the "scheduled_start" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateScheduledStart() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateScheduledStart()
	})
}

// ClearScheduledStart clears the value of the "scheduled_start" field.
func (u *TaskUpsertBulk) ClearScheduledStart() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearScheduledStart()
	})
}

// SetScheduledEnd sets the "scheduled_end" field.
func (u *TaskUpsertBulk) SetScheduledEnd(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetScheduledEnd(v)
	})
}

// UpdateScheduledEnd sets the "scheduled_end" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateScheduledEnd() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateScheduledEnd()
	})
}

// ClearScheduledEnd clears the value of the "scheduled_end" field.
func (u *TaskUpsertBulk) ClearScheduledEnd() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearScheduledEnd()
	})
}

// SetActualStart sets the "actual_start" field.
func (u *TaskUpsertBulk) SetActualStart(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetActualStart(v)
	})
}

// UpdateActualStart sets the "actual_start" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateActualStart() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateActualStart()
	})
}

// ClearActualStart clears the value of the "actual_start" field.
func (u *TaskUpsertBulk) ClearActualStart() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearActualStart()
	})
}

// SetActualEnd sets the "actual_end" field.
func (u *TaskUpsertBulk) SetActualEnd(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetActualEnd(v)
	})
}

// UpdateActualEnd sets the "actual_end" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateActualEnd() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateActualEnd()
	})
}

// ClearActualEnd clears the value of the "actual_end" field.
func (u *TaskUpsertBulk) ClearActualEnd() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearActualEnd()
	})
}

// SetPriority sets the "priority" field.
func (u *TaskUpsertBulk) SetPriority(v float64) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *TaskUpsertBulk) AddPriority(v float64) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdatePriority() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePriority()
	})
}

// SetCompleted sets the "completed" field.
func (u *TaskUpsertBulk) SetCompleted(v bool) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetCompleted(v)
	})
}

// UpdateCompleted sets the "completed" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateCompleted() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCompleted()
	})
}

// SetNeedsScheduling sets the "needs_scheduling" field.
func (u *TaskUpsertBulk) SetNeedsScheduling(v bool) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetNeedsScheduling(v)
	})
}

// UpdateNeedsScheduling sets the "needs_scheduling" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateNeedsScheduling() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateNeedsScheduling()
	})
}

// Exec executes the query.
func (u *TaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
