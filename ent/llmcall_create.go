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
	"github.com/dayplan/dayplan/ent/llmcall"
)

// LLMCallCreate is the builder for creating a LLMCall entity.
type LLMCallCreate struct {
	config
	mutation *LLMCallMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetModuleName sets the "module_name" field.
func (lcc *LLMCallCreate) SetModuleName(s string) *LLMCallCreate {
	lcc.mutation.SetModuleName(s)
	return lcc
}

// SetInputs sets the "inputs" field.
func (lcc *LLMCallCreate) SetInputs(s string) *LLMCallCreate {
	lcc.mutation.SetInputs(s)
	return lcc
}

// SetOutputs sets the "outputs" field.
func (lcc *LLMCallCreate) SetOutputs(s string) *LLMCallCreate {
	lcc.mutation.SetOutputs(s)
	return lcc
}

// SetDurationMs sets the "duration_ms" field.
func (lcc *LLMCallCreate) SetDurationMs(f float64) *LLMCallCreate {
	lcc.mutation.SetDurationMs(f)
	return lcc
}

// SetCreatedAt sets the "created_at" field.
func (lcc *LLMCallCreate) SetCreatedAt(t time.Time) *LLMCallCreate {
	lcc.mutation.SetCreatedAt(t)
	return lcc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (lcc *LLMCallCreate) SetNillableCreatedAt(t *time.Time) *LLMCallCreate {
	if t != nil {
		lcc.SetCreatedAt(*t)
	}
	return lcc
}

// Mutation returns the LLMCallMutation object of the builder.
func (lcc *LLMCallCreate) Mutation() *LLMCallMutation {
	return lcc.mutation
}

// Save creates the LLMCall in the database.
func (lcc *LLMCallCreate) Save(ctx context.Context) (*LLMCall, error) {
	lcc.defaults()
	return withHooks(ctx, lcc.sqlSave, lcc.mutation, lcc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (lcc *LLMCallCreate) SaveX(ctx context.Context) *LLMCall {
	v, err := lcc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lcc *LLMCallCreate) Exec(ctx context.Context) error {
	_, err := lcc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lcc *LLMCallCreate) ExecX(ctx context.Context) {
	if err := lcc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (lcc *LLMCallCreate) defaults() {
	if _, ok := lcc.mutation.CreatedAt(); !ok {
		v := llmcall.DefaultCreatedAt()
		lcc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lcc *LLMCallCreate) check() error {
	if _, ok := lcc.mutation.ModuleName(); !ok {
		return &ValidationError{Name: "module_name", err: errors.New(`ent: missing required field "LLMCall.module_name"`)}
	}
	if v, ok := lcc.mutation.ModuleName(); ok {
		if err := llmcall.ModuleNameValidator(v); err != nil {
			return &ValidationError{Name: "module_name", err: fmt.Errorf(`ent: validator failed for field "LLMCall.module_name": %w`, err)}
		}
	}
	if _, ok := lcc.mutation.Inputs(); !ok {
		return &ValidationError{Name: "inputs", err: errors.New(`ent: missing required field "LLMCall.inputs"`)}
	}
	if _, ok := lcc.mutation.Outputs(); !ok {
		return &ValidationError{Name: "outputs", err: errors.New(`ent: missing required field "LLMCall.outputs"`)}
	}
	if _, ok := lcc.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "LLMCall.duration_ms"`)}
	}
	if _, ok := lcc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LLMCall.created_at"`)}
	}
	return nil
}

func (lcc *LLMCallCreate) sqlSave(ctx context.Context) (*LLMCall, error) {
	if err := lcc.check(); err != nil {
		return nil, err
	}
	_node, _spec := lcc.createSpec()
	if err := sqlgraph.CreateNode(ctx, lcc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	lcc.mutation.id = &_node.ID
	lcc.mutation.done = true
	return _node, nil
}

func (lcc *LLMCallCreate) createSpec() (*LLMCall, *sqlgraph.CreateSpec) {
	var (
		_node = &LLMCall{config: lcc.config}
		_spec = sqlgraph.NewCreateSpec(llmcall.Table, sqlgraph.NewFieldSpec(llmcall.FieldID, field.TypeInt))
	)
	_spec.OnConflict = lcc.conflict
	if value, ok := lcc.mutation.ModuleName(); ok {
		_spec.SetField(llmcall.FieldModuleName, field.TypeString, value)
		_node.ModuleName = value
	}
	if value, ok := lcc.mutation.Inputs(); ok {
		_spec.SetField(llmcall.FieldInputs, field.TypeString, value)
		_node.Inputs = value
	}
	if value, ok := lcc.mutation.Outputs(); ok {
		_spec.SetField(llmcall.FieldOutputs, field.TypeString, value)
		_node.Outputs = value
	}
	if value, ok := lcc.mutation.DurationMs(); ok {
		_spec.SetField(llmcall.FieldDurationMs, field.TypeFloat64, value)
		_node.DurationMs = value
	}
	if value, ok := lcc.mutation.CreatedAt(); ok {
		_spec.SetField(llmcall.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LLMCall.Create().
//		SetModuleName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LLMCallUpsert) {
//			SetModuleName(v+v).
//		}).
//		Exec(ctx)
func (lcc *LLMCallCreate) OnConflict(opts ...sql.ConflictOption) *LLMCallUpsertOne {
	lcc.conflict = opts
	return &LLMCallUpsertOne{
		create: lcc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LLMCall.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (lcc *LLMCallCreate) OnConflictColumns(columns ...string) *LLMCallUpsertOne {
	lcc.conflict = append(lcc.conflict, sql.ConflictColumns(columns...))
	return &LLMCallUpsertOne{
		create: lcc,
	}
}

type (
	// LLMCallUpsertOne is the builder for "upsert"-ing
	//  one LLMCall node.
	LLMCallUpsertOne struct {
		create *LLMCallCreate
	}

	// LLMCallUpsert is the "OnConflict" setter.
	LLMCallUpsert struct {
		*sql.UpdateSet
	}
)

// SetModuleName sets the "module_name" field.
func (u *LLMCallUpsert) SetModuleName(v string) *LLMCallUpsert {
	u.Set(llmcall.FieldModuleName, v)
	return u
}

// UpdateModuleName sets the "module_name" field to the value that was provided on create.
func (u *LLMCallUpsert) UpdateModuleName() *LLMCallUpsert {
	u.SetExcluded(llmcall.FieldModuleName)
	return u
}

// SetInputs sets the "inputs" field.
func (u *LLMCallUpsert) SetInputs(v string) *LLMCallUpsert {
	u.Set(llmcall.FieldInputs, v)
	return u
}

// UpdateInputs sets the "inputs" field to the value that was provided on create.
func (u *LLMCallUpsert) UpdateInputs() *LLMCallUpsert {
	u.SetExcluded(llmcall.FieldInputs)
	return u
}

// SetOutputs sets the "outputs" field.
func (u *LLMCallUpsert) SetOutputs(v string) *LLMCallUpsert {
	u.Set(llmcall.FieldOutputs, v)
	return u
}

// UpdateOutputs sets the "outputs" field to the value that was provided on create.
func (u *LLMCallUpsert) UpdateOutputs() *LLMCallUpsert {
	u.SetExcluded(llmcall.FieldOutputs)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *LLMCallUpsert) SetDurationMs(v float64) *LLMCallUpsert {
	u.Set(llmcall.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *LLMCallUpsert) UpdateDurationMs() *LLMCallUpsert {
	u.SetExcluded(llmcall.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *LLMCallUpsert) AddDurationMs(v float64) *LLMCallUpsert {
	u.Add(llmcall.FieldDurationMs, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.LLMCall.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LLMCallUpsertOne) UpdateNewValues() *LLMCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(llmcall.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LLMCall.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LLMCallUpsertOne) Ignore() *LLMCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LLMCallUpsertOne) DoNothing() *LLMCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LLMCallCreate.OnConflict
// documentation for more info.
func (u *LLMCallUpsertOne) Update(set func(*LLMCallUpsert)) *LLMCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LLMCallUpsert{UpdateSet: update})
	}))
	return u
}

// SetModuleName sets the "module_name" field.
func (u *LLMCallUpsertOne) SetModuleName(v string) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetModuleName(v)
	})
}

// UpdateModuleName sets the "module_name" field to the value that was provided on create.
func (u *LLMCallUpsertOne) UpdateModuleName() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateModuleName()
	})
}

// SetInputs sets the "inputs" field.
func (u *LLMCallUpsertOne) SetInputs(v string) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetInputs(v)
	})
}

// UpdateInputs sets the "inputs" field to the value that was provided on create.
func (u *LLMCallUpsertOne) UpdateInputs() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateInputs()
	})
}

// SetOutputs sets the "outputs" field.
func (u *LLMCallUpsertOne) SetOutputs(v string) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetOutputs(v)
	})
}

// UpdateOutputs sets the "outputs" field to the value that was provided on create.
func (u *LLMCallUpsertOne) UpdateOutputs() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateOutputs()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *LLMCallUpsertOne) SetDurationMs(v float64) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *LLMCallUpsertOne) AddDurationMs(v float64) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *LLMCallUpsertOne) UpdateDurationMs() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateDurationMs()
	})
}

// Exec executes the query.
func (u *LLMCallUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LLMCallCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LLMCallUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LLMCallUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LLMCallUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LLMCallCreateBulk is the builder for creating many LLMCall entities in bulk.
type LLMCallCreateBulk struct {
	config
	err      error
	builders []*LLMCallCreate
	conflict []sql.ConflictOption
}

// Save creates the LLMCall entities in the database.
func (lccb *LLMCallCreateBulk) Save(ctx context.Context) ([]*LLMCall, error) {
	if lccb.err != nil {
		return nil, lccb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(lccb.builders))
	nodes := make([]*LLMCall, len(lccb.builders))
	mutators := make([]Mutator, len(lccb.builders))
	for i := range lccb.builders {
		func(i int, root context.Context) {
			builder := lccb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LLMCallMutation)
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
					_, err = mutators[i+1].Mutate(root, lccb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = lccb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, lccb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, lccb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (lccb *LLMCallCreateBulk) SaveX(ctx context.Context) []*LLMCall {
	v, err := lccb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lccb *LLMCallCreateBulk) Exec(ctx context.Context) error {
	_, err := lccb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lccb *LLMCallCreateBulk) ExecX(ctx context.Context) {
	if err := lccb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LLMCall.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LLMCallUpsert) {
//			SetModuleName(v+v).
//		}).
//		Exec(ctx)
func (lccb *LLMCallCreateBulk) OnConflict(opts ...sql.ConflictOption) *LLMCallUpsertBulk {
	lccb.conflict = opts
	return &LLMCallUpsertBulk{
		create: lccb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LLMCall.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (lccb *LLMCallCreateBulk) OnConflictColumns(columns ...string) *LLMCallUpsertBulk {
	lccb.conflict = append(lccb.conflict, sql.ConflictColumns(columns...))
	return &LLMCallUpsertBulk{
		create: lccb,
	}
}

// LLMCallUpsertBulk is the builder for "upsert"-ing
// a bulk of LLMCall nodes.
type LLMCallUpsertBulk struct {
	create *LLMCallCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LLMCall.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LLMCallUpsertBulk) UpdateNewValues() *LLMCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(llmcall.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LLMCall.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LLMCallUpsertBulk) Ignore() *LLMCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LLMCallUpsertBulk) DoNothing() *LLMCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LLMCallCreateBulk.OnConflict
// documentation for more info.
func (u *LLMCallUpsertBulk) Update(set func(*LLMCallUpsert)) *LLMCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LLMCallUpsert{UpdateSet: update})
	}))
	return u
}

// SetModuleName sets the "module_name" field.
func (u *LLMCallUpsertBulk) SetModuleName(v string) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetModuleName(v)
	})
}

// UpdateModuleName sets the "module_name" field to the value that was provided on create.
func (u *LLMCallUpsertBulk) UpdateModuleName() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateModuleName()
	})
}

// SetInputs sets the "inputs" field.
func (u *LLMCallUpsertBulk) SetInputs(v string) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetInputs(v)
	})
}

// UpdateInputs sets the "inputs" field to the value that was provided on create.
func (u *LLMCallUpsertBulk) UpdateInputs() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateInputs()
	})
}

// SetOutputs sets the "outputs" field.
func (u *LLMCallUpsertBulk) SetOutputs(v string) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetOutputs(v)
	})
}

// UpdateOutputs sets the "outputs" field to the value that was provided on create.
func (u *LLMCallUpsertBulk) UpdateOutputs() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateOutputs()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *LLMCallUpsertBulk) SetDurationMs(v float64) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *LLMCallUpsertBulk) AddDurationMs(v float64) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *LLMCallUpsertBulk) UpdateDurationMs() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateDurationMs()
	})
}

// Exec executes the query.
func (u *LLMCallUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LLMCallCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LLMCallCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LLMCallUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
