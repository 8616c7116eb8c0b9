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
)

// GlobalContextCreate is the builder for creating a GlobalContext entity.
type GlobalContextCreate struct {
	config
	mutation *GlobalContextMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSingleton sets the "singleton" field.
func (gcc *GlobalContextCreate) SetSingleton(b bool) *GlobalContextCreate {
	gcc.mutation.SetSingleton(b)
	return gcc
}

// SetNillableSingleton sets the "singleton" field if the given value is not nil.
func (gcc *GlobalContextCreate) SetNillableSingleton(b *bool) *GlobalContextCreate {
	if b != nil {
		gcc.SetSingleton(*b)
	}
	return gcc
}

// SetContext sets the "context" field.
func (gcc *GlobalContextCreate) SetContext(s string) *GlobalContextCreate {
	gcc.mutation.SetContext(s)
	return gcc
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (gcc *GlobalContextCreate) SetNillableContext(s *string) *GlobalContextCreate {
	if s != nil {
		gcc.SetContext(*s)
	}
	return gcc
}

// SetUpdatedAt sets the "updated_at" field.
func (gcc *GlobalContextCreate) SetUpdatedAt(t time.Time) *GlobalContextCreate {
	gcc.mutation.SetUpdatedAt(t)
	return gcc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (gcc *GlobalContextCreate) SetNillableUpdatedAt(t *time.Time) *GlobalContextCreate {
	if t != nil {
		gcc.SetUpdatedAt(*t)
	}
	return gcc
}

// Mutation returns the GlobalContextMutation object of the builder.
func (gcc *GlobalContextCreate) Mutation() *GlobalContextMutation {
	return gcc.mutation
}

// Save creates the GlobalContext in the database.
func (gcc *GlobalContextCreate) Save(ctx context.Context) (*GlobalContext, error) {
	gcc.defaults()
	return withHooks(ctx, gcc.sqlSave, gcc.mutation, gcc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (gcc *GlobalContextCreate) SaveX(ctx context.Context) *GlobalContext {
	v, err := gcc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (gcc *GlobalContextCreate) Exec(ctx context.Context) error {
	_, err := gcc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (gcc *GlobalContextCreate) ExecX(ctx context.Context) {
	if err := gcc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (gcc *GlobalContextCreate) defaults() {
	if _, ok := gcc.mutation.Singleton(); !ok {
		v := globalcontext.DefaultSingleton
		gcc.mutation.SetSingleton(v)
	}
	if _, ok := gcc.mutation.Context(); !ok {
		v := globalcontext.DefaultContext
		gcc.mutation.SetContext(v)
	}
	if _, ok := gcc.mutation.UpdatedAt(); !ok {
		v := globalcontext.DefaultUpdatedAt()
		gcc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (gcc *GlobalContextCreate) check() error {
	if _, ok := gcc.mutation.Singleton(); !ok {
		return &ValidationError{Name: "singleton", err: errors.New(`ent: missing required field "GlobalContext.singleton"`)}
	}
	if _, ok := gcc.mutation.Context(); !ok {
		return &ValidationError{Name: "context", err: errors.New(`ent: missing required field "GlobalContext.context"`)}
	}
	if v, ok := gcc.mutation.Context(); ok {
		if err := globalcontext.ContextValidator(v); err != nil {
			return &ValidationError{Name: "context", err: fmt.Errorf(`ent: validator failed for field "GlobalContext.context": %w`, err)}
		}
	}
	if _, ok := gcc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "GlobalContext.updated_at"`)}
	}
	return nil
}

func (gcc *GlobalContextCreate) sqlSave(ctx context.Context) (*GlobalContext, error) {
	if err := gcc.check(); err != nil {
		return nil, err
	}
	_node, _spec := gcc.createSpec()
	if err := sqlgraph.CreateNode(ctx, gcc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	gcc.mutation.id = &_node.ID
	gcc.mutation.done = true
	return _node, nil
}

func (gcc *GlobalContextCreate) createSpec() (*GlobalContext, *sqlgraph.CreateSpec) {
	var (
		_node = &GlobalContext{config: gcc.config}
		_spec = sqlgraph.NewCreateSpec(globalcontext.Table, sqlgraph.NewFieldSpec(globalcontext.FieldID, field.TypeInt))
	)
	_spec.OnConflict = gcc.conflict
	if value, ok := gcc.mutation.Singleton(); ok {
		_spec.SetField(globalcontext.FieldSingleton, field.TypeBool, value)
		_node.Singleton = value
	}
	if value, ok := gcc.mutation.Context(); ok {
		_spec.SetField(globalcontext.FieldContext, field.TypeString, value)
		_node.Context = value
	}
	if value, ok := gcc.mutation.UpdatedAt(); ok {
		_spec.SetField(globalcontext.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GlobalContext.Create().
//		SetSingleton(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GlobalContextUpsert) {
//			SetSingleton(v+v).
//		}).
//		Exec(ctx)
func (gcc *GlobalContextCreate) OnConflict(opts ...sql.ConflictOption) *GlobalContextUpsertOne {
	gcc.conflict = opts
	return &GlobalContextUpsertOne{
		create: gcc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GlobalContext.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (gcc *GlobalContextCreate) OnConflictColumns(columns ...string) *GlobalContextUpsertOne {
	gcc.conflict = append(gcc.conflict, sql.ConflictColumns(columns...))
	return &GlobalContextUpsertOne{
		create: gcc,
	}
}

type (
	// GlobalContextUpsertOne is the builder for "upsert"-ing
	//  one GlobalContext node.
	GlobalContextUpsertOne struct {
		create *GlobalContextCreate
	}

	// GlobalContextUpsert is the "OnConflict" setter.
	GlobalContextUpsert struct {
		*sql.UpdateSet
	}
)

// SetSingleton sets the "singleton" field.
func (u *GlobalContextUpsert) SetSingleton(v bool) *GlobalContextUpsert {
	u.Set(globalcontext.FieldSingleton, v)
	return u
}

// UpdateSingleton sets the "singleton" field to the value that was provided on create.
func (u *GlobalContextUpsert) UpdateSingleton() *GlobalContextUpsert {
	u.SetExcluded(globalcontext.FieldSingleton)
	return u
}

// SetContext sets the "context" field.
func (u *GlobalContextUpsert) SetContext(v string) *GlobalContextUpsert {
	u.Set(globalcontext.FieldContext, v)
	return u
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *GlobalContextUpsert) UpdateContext() *GlobalContextUpsert {
	u.SetExcluded(globalcontext.FieldContext)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GlobalContextUpsert) SetUpdatedAt(v time.Time) *GlobalContextUpsert {
	u.Set(globalcontext.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GlobalContextUpsert) UpdateUpdatedAt() *GlobalContextUpsert {
	u.SetExcluded(globalcontext.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.GlobalContext.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *GlobalContextUpsertOne) UpdateNewValues() *GlobalContextUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GlobalContext.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GlobalContextUpsertOne) Ignore() *GlobalContextUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GlobalContextUpsertOne) DoNothing() *GlobalContextUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GlobalContextCreate.OnConflict
// documentation for more info.
func (u *GlobalContextUpsertOne) Update(set func(*GlobalContextUpsert)) *GlobalContextUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GlobalContextUpsert{UpdateSet: update})
	}))
	return u
}

// SetSingleton sets the "singleton" field.
func (u *GlobalContextUpsertOne) SetSingleton(v bool) *GlobalContextUpsertOne {
	return u.Update(func(s *GlobalContextUpsert) {
		s.SetSingleton(v)
	})
}

// UpdateSingleton sets the "singleton" field to the value that was provided on create.
func (u *GlobalContextUpsertOne) UpdateSingleton() *GlobalContextUpsertOne {
	return u.Update(func(s *GlobalContextUpsert) {
		s.UpdateSingleton()
	})
}

// SetContext sets the "context" field.
func (u *GlobalContextUpsertOne) SetContext(v string) *GlobalContextUpsertOne {
	return u.Update(func(s *GlobalContextUpsert) {
		s.SetContext(v)
	})
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *GlobalContextUpsertOne) UpdateContext() *GlobalContextUpsertOne {
	return u.Update(func(s *GlobalContextUpsert) {
		s.UpdateContext()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GlobalContextUpsertOne) SetUpdatedAt(v time.Time) *GlobalContextUpsertOne {
	return u.Update(func(s *GlobalContextUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GlobalContextUpsertOne) UpdateUpdatedAt() *GlobalContextUpsertOne {
	return u.Update(func(s *GlobalContextUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *GlobalContextUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GlobalContextCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GlobalContextUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GlobalContextUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GlobalContextUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GlobalContextCreateBulk is the builder for creating many GlobalContext entities in bulk.
type GlobalContextCreateBulk struct {
	config
	err      error
	builders []*GlobalContextCreate
	conflict []sql.ConflictOption
}

// Save creates the GlobalContext entities in the database.
func (gccb *GlobalContextCreateBulk) Save(ctx context.Context) ([]*GlobalContext, error) {
	if gccb.err != nil {
		return nil, gccb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(gccb.builders))
	nodes := make([]*GlobalContext, len(gccb.builders))
	mutators := make([]Mutator, len(gccb.builders))
	for i := range gccb.builders {
		func(i int, root context.Context) {
			builder := gccb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GlobalContextMutation)
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
					_, err = mutators[i+1].Mutate(root, gccb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = gccb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, gccb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, gccb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (gccb *GlobalContextCreateBulk) SaveX(ctx context.Context) []*GlobalContext {
	v, err := gccb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (gccb *GlobalContextCreateBulk) Exec(ctx context.Context) error {
	_, err := gccb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (gccb *GlobalContextCreateBulk) ExecX(ctx context.Context) {
	if err := gccb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GlobalContext.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GlobalContextUpsert) {
//			SetSingleton(v+v).
//		}).
//		Exec(ctx)
func (gccb *GlobalContextCreateBulk) OnConflict(opts ...sql.ConflictOption) *GlobalContextUpsertBulk {
	gccb.conflict = opts
	return &GlobalContextUpsertBulk{
		create: gccb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GlobalContext.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (gccb *GlobalContextCreateBulk) OnConflictColumns(columns ...string) *GlobalContextUpsertBulk {
	gccb.conflict = append(gccb.conflict, sql.ConflictColumns(columns...))
	return &GlobalContextUpsertBulk{
		create: gccb,
	}
}

// GlobalContextUpsertBulk is the builder for "upsert"-ing
// a bulk of GlobalContext nodes.
type GlobalContextUpsertBulk struct {
	create *GlobalContextCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.GlobalContext.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *GlobalContextUpsertBulk) UpdateNewValues() *GlobalContextUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GlobalContext.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GlobalContextUpsertBulk) Ignore() *GlobalContextUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GlobalContextUpsertBulk) DoNothing() *GlobalContextUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GlobalContextCreateBulk.OnConflict
// documentation for more info.
func (u *GlobalContextUpsertBulk) Update(set func(*GlobalContextUpsert)) *GlobalContextUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GlobalContextUpsert{UpdateSet: update})
	}))
	return u
}

// SetSingleton sets the "singleton" field.
func (u *GlobalContextUpsertBulk) SetSingleton(v bool) *GlobalContextUpsertBulk {
	return u.Update(func(s *GlobalContextUpsert) {
		s.SetSingleton(v)
	})
}

// UpdateSingleton sets the "singleton" field to the value that was provided on create.
func (u *GlobalContextUpsertBulk) UpdateSingleton() *GlobalContextUpsertBulk {
	return u.Update(func(s *GlobalContextUpsert) {
		s.UpdateSingleton()
	})
}

// SetContext sets the "context" field.
func (u *GlobalContextUpsertBulk) SetContext(v string) *GlobalContextUpsertBulk {
	return u.Update(func(s *GlobalContextUpsert) {
		s.SetContext(v)
	})
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *GlobalContextUpsertBulk) UpdateContext() *GlobalContextUpsertBulk {
	return u.Update(func(s *GlobalContextUpsert) {
		s.UpdateContext()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GlobalContextUpsertBulk) SetUpdatedAt(v time.Time) *GlobalContextUpsertBulk {
	return u.Update(func(s *GlobalContextUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GlobalContextUpsertBulk) UpdateUpdatedAt() *GlobalContextUpsertBulk {
	return u.Update(func(s *GlobalContextUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *GlobalContextUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GlobalContextCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GlobalContextCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GlobalContextUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
