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
	"github.com/dayplan/dayplan/ent/settings"
)

// SettingsCreate is the builder for creating a Settings entity.
type SettingsCreate struct {
	config
	mutation *SettingsMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSingleton sets the "singleton" field.
func (sc *SettingsCreate) SetSingleton(b bool) *SettingsCreate {
	sc.mutation.SetSingleton(b)
	return sc
}

// SetNillableSingleton sets the "singleton" field if the given value is not nil.
func (sc *SettingsCreate) SetNillableSingleton(b *bool) *SettingsCreate {
	if b != nil {
		sc.SetSingleton(*b)
	}
	return sc
}

// SetLlmModel sets the "llm_model" field.
func (sc *SettingsCreate) SetLlmModel(s string) *SettingsCreate {
	sc.mutation.SetLlmModel(s)
	return sc
}

// SetNillableLlmModel sets the "llm_model" field if the given value is not nil.
func (sc *SettingsCreate) SetNillableLlmModel(s *string) *SettingsCreate {
	if s != nil {
		sc.SetLlmModel(*s)
	}
	return sc
}

// SetMaxTokens sets the "max_tokens" field.
func (sc *SettingsCreate) SetMaxTokens(i int) *SettingsCreate {
	sc.mutation.SetMaxTokens(i)
	return sc
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (sc *SettingsCreate) SetNillableMaxTokens(i *int) *SettingsCreate {
	if i != nil {
		sc.SetMaxTokens(*i)
	}
	return sc
}

// SetUpdatedAt sets the "updated_at" field.
func (sc *SettingsCreate) SetUpdatedAt(t time.Time) *SettingsCreate {
	sc.mutation.SetUpdatedAt(t)
	return sc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (sc *SettingsCreate) SetNillableUpdatedAt(t *time.Time) *SettingsCreate {
	if t != nil {
		sc.SetUpdatedAt(*t)
	}
	return sc
}

// Mutation returns the SettingsMutation object of the builder.
func (sc *SettingsCreate) Mutation() *SettingsMutation {
	return sc.mutation
}

// Save creates the Settings in the database.
func (sc *SettingsCreate) Save(ctx context.Context) (*Settings, error) {
	sc.defaults()
	return withHooks(ctx, sc.sqlSave, sc.mutation, sc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (sc *SettingsCreate) SaveX(ctx context.Context) *Settings {
	v, err := sc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sc *SettingsCreate) Exec(ctx context.Context) error {
	_, err := sc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sc *SettingsCreate) ExecX(ctx context.Context) {
	if err := sc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sc *SettingsCreate) defaults() {
	if _, ok := sc.mutation.Singleton(); !ok {
		v := settings.DefaultSingleton
		sc.mutation.SetSingleton(v)
	}
	if _, ok := sc.mutation.LlmModel(); !ok {
		v := settings.DefaultLlmModel
		sc.mutation.SetLlmModel(v)
	}
	if _, ok := sc.mutation.MaxTokens(); !ok {
		v := settings.DefaultMaxTokens
		sc.mutation.SetMaxTokens(v)
	}
	if _, ok := sc.mutation.UpdatedAt(); !ok {
		v := settings.DefaultUpdatedAt()
		sc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sc *SettingsCreate) check() error {
	if _, ok := sc.mutation.Singleton(); !ok {
		return &ValidationError{Name: "singleton", err: errors.New(`ent: missing required field "Settings.singleton"`)}
	}
	if _, ok := sc.mutation.LlmModel(); !ok {
		return &ValidationError{Name: "llm_model", err: errors.New(`ent: missing required field "Settings.llm_model"`)}
	}
	if _, ok := sc.mutation.MaxTokens(); !ok {
		return &ValidationError{Name: "max_tokens", err: errors.New(`ent: missing required field "Settings.max_tokens"`)}
	}
	if _, ok := sc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Settings.updated_at"`)}
	}
	return nil
}

func (sc *SettingsCreate) sqlSave(ctx context.Context) (*Settings, error) {
	if err := sc.check(); err != nil {
		return nil, err
	}
	_node, _spec := sc.createSpec()
	if err := sqlgraph.CreateNode(ctx, sc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	sc.mutation.id = &_node.ID
	sc.mutation.done = true
	return _node, nil
}

func (sc *SettingsCreate) createSpec() (*Settings, *sqlgraph.CreateSpec) {
	var (
		_node = &Settings{config: sc.config}
		_spec = sqlgraph.NewCreateSpec(settings.Table, sqlgraph.NewFieldSpec(settings.FieldID, field.TypeInt))
	)
	_spec.OnConflict = sc.conflict
	if value, ok := sc.mutation.Singleton(); ok {
		_spec.SetField(settings.FieldSingleton, field.TypeBool, value)
		_node.Singleton = value
	}
	if value, ok := sc.mutation.LlmModel(); ok {
		_spec.SetField(settings.FieldLlmModel, field.TypeString, value)
		_node.LlmModel = value
	}
	if value, ok := sc.mutation.MaxTokens(); ok {
		_spec.SetField(settings.FieldMaxTokens, field.TypeInt, value)
		_node.MaxTokens = value
	}
	if value, ok := sc.mutation.UpdatedAt(); ok {
		_spec.SetField(settings.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Settings.Create().
//		SetSingleton(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SettingsUpsert) {
//			SetSingleton(v+v).
//		}).
//		Exec(ctx)
func (sc *SettingsCreate) OnConflict(opts ...sql.ConflictOption) *SettingsUpsertOne {
	sc.conflict = opts
	return &SettingsUpsertOne{
		create: sc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Settings.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (sc *SettingsCreate) OnConflictColumns(columns ...string) *SettingsUpsertOne {
	sc.conflict = append(sc.conflict, sql.ConflictColumns(columns...))
	return &SettingsUpsertOne{
		create: sc,
	}
}

type (
	// SettingsUpsertOne is the builder for "upsert"-ing
	//  one Settings node.
	SettingsUpsertOne struct {
		create *SettingsCreate
	}

	// SettingsUpsert is the "OnConflict" setter.
	SettingsUpsert struct {
		*sql.UpdateSet
	}
)

// SetSingleton sets the "singleton" field.
func (u *SettingsUpsert) SetSingleton(v bool) *SettingsUpsert {
	u.Set(settings.FieldSingleton, v)
	return u
}

// UpdateSingleton sets the "singleton" field to the value that was provided on create.
func (u *SettingsUpsert) UpdateSingleton() *SettingsUpsert {
	u.SetExcluded(settings.FieldSingleton)
	return u
}

// SetLlmModel sets the "llm_model" field.
func (u *SettingsUpsert) SetLlmModel(v string) *SettingsUpsert {
	u.Set(settings.FieldLlmModel, v)
	return u
}

// UpdateLlmModel sets the "llm_model" field to the value that was provided on create.
func (u *SettingsUpsert) UpdateLlmModel() *SettingsUpsert {
	u.SetExcluded(settings.FieldLlmModel)
	return u
}

// SetMaxTokens sets the "max_tokens" field.
func (u *SettingsUpsert) SetMaxTokens(v int) *SettingsUpsert {
	u.Set(settings.FieldMaxTokens, v)
	return u
}

// UpdateMaxTokens sets the "max_tokens" field to the value that was provided on create.
func (u *SettingsUpsert) UpdateMaxTokens() *SettingsUpsert {
	u.SetExcluded(settings.FieldMaxTokens)
	return u
}

// AddMaxTokens adds v to the "max_tokens" field.
func (u *SettingsUpsert) AddMaxTokens(v int) *SettingsUpsert {
	u.Add(settings.FieldMaxTokens, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SettingsUpsert) SetUpdatedAt(v time.Time) *SettingsUpsert {
	u.Set(settings.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SettingsUpsert) UpdateUpdatedAt() *SettingsUpsert {
	u.SetExcluded(settings.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Settings.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SettingsUpsertOne) UpdateNewValues() *SettingsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Settings.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SettingsUpsertOne) Ignore() *SettingsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SettingsUpsertOne) DoNothing() *SettingsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SettingsCreate.OnConflict
// documentation for more info.
func (u *SettingsUpsertOne) Update(set func(*SettingsUpsert)) *SettingsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SettingsUpsert{UpdateSet: update})
	}))
	return u
}

// SetSingleton sets the "singleton" field.
func (u *SettingsUpsertOne) SetSingleton(v bool) *SettingsUpsertOne {
	return u.Update(func(s *SettingsUpsert) {
		s.SetSingleton(v)
	})
}

// UpdateSingleton sets the "singleton" field to the value that was provided on create.
func (u *SettingsUpsertOne) UpdateSingleton() *SettingsUpsertOne {
	return u.Update(func(s *SettingsUpsert) {
		s.UpdateSingleton()
	})
}

// SetLlmModel sets the "llm_model" field.
func (u *SettingsUpsertOne) SetLlmModel(v string) *SettingsUpsertOne {
	return u.Update(func(s *SettingsUpsert) {
		s.SetLlmModel(v)
	})
}

// UpdateLlmModel sets the "llm_model" field to the value that was provided on create.
func (u *SettingsUpsertOne) UpdateLlmModel() *SettingsUpsertOne {
	return u.Update(func(s *SettingsUpsert) {
		s.UpdateLlmModel()
	})
}

// SetMaxTokens sets the "max_tokens" field.
func (u *SettingsUpsertOne) SetMaxTokens(v int) *SettingsUpsertOne {
	return u.Update(func(s *SettingsUpsert) {
		s.SetMaxTokens(v)
	})
}

// AddMaxTokens adds v to the "max_tokens" field.
func (u *SettingsUpsertOne) AddMaxTokens(v int) *SettingsUpsertOne {
	return u.Update(func(s *SettingsUpsert) {
		s.AddMaxTokens(v)
	})
}

// UpdateMaxTokens sets the "max_tokens" field to the value that was provided on create.
func (u *SettingsUpsertOne) UpdateMaxTokens() *SettingsUpsertOne {
	return u.Update(func(s *SettingsUpsert) {
		s.UpdateMaxTokens()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SettingsUpsertOne) SetUpdatedAt(v time.Time) *SettingsUpsertOne {
	return u.Update(func(s *SettingsUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SettingsUpsertOne) UpdateUpdatedAt() *SettingsUpsertOne {
	return u.Update(func(s *SettingsUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SettingsUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SettingsCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SettingsUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SettingsUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SettingsUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SettingsCreateBulk is the builder for creating many Settings entities in bulk.
type SettingsCreateBulk struct {
	config
	err      error
	builders []*SettingsCreate
	conflict []sql.ConflictOption
}

// Save creates the Settings entities in the database.
func (scb *SettingsCreateBulk) Save(ctx context.Context) ([]*Settings, error) {
	if scb.err != nil {
		return nil, scb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(scb.builders))
	nodes := make([]*Settings, len(scb.builders))
	mutators := make([]Mutator, len(scb.builders))
	for i := range scb.builders {
		func(i int, root context.Context) {
			builder := scb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SettingsMutation)
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
					_, err = mutators[i+1].Mutate(root, scb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = scb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, scb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, scb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (scb *SettingsCreateBulk) SaveX(ctx context.Context) []*Settings {
	v, err := scb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (scb *SettingsCreateBulk) Exec(ctx context.Context) error {
	_, err := scb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (scb *SettingsCreateBulk) ExecX(ctx context.Context) {
	if err := scb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Settings.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SettingsUpsert) {
//			SetSingleton(v+v).
//		}).
//		Exec(ctx)
func (scb *SettingsCreateBulk) OnConflict(opts ...sql.ConflictOption) *SettingsUpsertBulk {
	scb.conflict = opts
	return &SettingsUpsertBulk{
		create: scb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Settings.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (scb *SettingsCreateBulk) OnConflictColumns(columns ...string) *SettingsUpsertBulk {
	scb.conflict = append(scb.conflict, sql.ConflictColumns(columns...))
	return &SettingsUpsertBulk{
		create: scb,
	}
}

// SettingsUpsertBulk is the builder for "upsert"-ing
// a bulk of Settings nodes.
type SettingsUpsertBulk struct {
	create *SettingsCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Settings.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SettingsUpsertBulk) UpdateNewValues() *SettingsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Settings.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SettingsUpsertBulk) Ignore() *SettingsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SettingsUpsertBulk) DoNothing() *SettingsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SettingsCreateBulk.OnConflict
// documentation for more info.
func (u *SettingsUpsertBulk) Update(set func(*SettingsUpsert)) *SettingsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SettingsUpsert{UpdateSet: update})
	}))
	return u
}

// SetSingleton sets the "singleton" field.
func (u *SettingsUpsertBulk) SetSingleton(v bool) *SettingsUpsertBulk {
	return u.Update(func(s *SettingsUpsert) {
		s.SetSingleton(v)
	})
}

// UpdateSingleton sets the "singleton" field to the value that was provided on create.
func (u *SettingsUpsertBulk) UpdateSingleton() *SettingsUpsertBulk {
	return u.Update(func(s *SettingsUpsert) {
		s.UpdateSingleton()
	})
}

// SetLlmModel sets the "llm_model" field.
func (u *SettingsUpsertBulk) SetLlmModel(v string) *SettingsUpsertBulk {
	return u.Update(func(s *SettingsUpsert) {
		s.SetLlmModel(v)
	})
}

// UpdateLlmModel sets the "llm_model" field to the value that was provided on create.
func (u *SettingsUpsertBulk) UpdateLlmModel() *SettingsUpsertBulk {
	return u.Update(func(s *SettingsUpsert) {
		s.UpdateLlmModel()
	})
}

// SetMaxTokens sets the "max_tokens" field.
func (u *SettingsUpsertBulk) SetMaxTokens(v int) *SettingsUpsertBulk {
	return u.Update(func(s *SettingsUpsert) {
		s.SetMaxTokens(v)
	})
}

// AddMaxTokens adds v to the "max_tokens" field.
func (u *SettingsUpsertBulk) AddMaxTokens(v int) *SettingsUpsertBulk {
	return u.Update(func(s *SettingsUpsert) {
		s.AddMaxTokens(v)
	})
}

// UpdateMaxTokens sets the "max_tokens" field to the value that was provided on create.
func (u *SettingsUpsertBulk) UpdateMaxTokens() *SettingsUpsertBulk {
	return u.Update(func(s *SettingsUpsert) {
		s.UpdateMaxTokens()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SettingsUpsertBulk) SetUpdatedAt(v time.Time) *SettingsUpsertBulk {
	return u.Update(func(s *SettingsUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SettingsUpsertBulk) UpdateUpdatedAt() *SettingsUpsertBulk {
	return u.Update(func(s *SettingsUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SettingsUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SettingsCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SettingsCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SettingsUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
