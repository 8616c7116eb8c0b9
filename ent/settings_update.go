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
	"github.com/dayplan/dayplan/ent/settings"
)

// SettingsUpdate is the builder for updating Settings entities.
type SettingsUpdate struct {
	config
	hooks    []Hook
	mutation *SettingsMutation
}

// Where appends a list predicates to the SettingsUpdate builder.
func (su *SettingsUpdate) Where(ps ...predicate.Settings) *SettingsUpdate {
	su.mutation.Where(ps...)
	return su
}

// SetSingleton sets the "singleton" field.
func (su *SettingsUpdate) SetSingleton(b bool) *SettingsUpdate {
	su.mutation.SetSingleton(b)
	return su
}

// SetNillableSingleton sets the "singleton" field if the given value is not nil.
func (su *SettingsUpdate) SetNillableSingleton(b *bool) *SettingsUpdate {
	if b != nil {
		su.SetSingleton(*b)
	}
	return su
}

// SetLlmModel sets the "llm_model" field.
func (su *SettingsUpdate) SetLlmModel(s string) *SettingsUpdate {
	su.mutation.SetLlmModel(s)
	return su
}

// SetNillableLlmModel sets the "llm_model" field if the given value is not nil.
func (su *SettingsUpdate) SetNillableLlmModel(s *string) *SettingsUpdate {
	if s != nil {
		su.SetLlmModel(*s)
	}
	return su
}

// SetMaxTokens sets the "max_tokens" field.
func (su *SettingsUpdate) SetMaxTokens(i int) *SettingsUpdate {
	su.mutation.ResetMaxTokens()
	su.mutation.SetMaxTokens(i)
	return su
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (su *SettingsUpdate) SetNillableMaxTokens(i *int) *SettingsUpdate {
	if i != nil {
		su.SetMaxTokens(*i)
	}
	return su
}

// AddMaxTokens adds i to the "max_tokens" field.
func (su *SettingsUpdate) AddMaxTokens(i int) *SettingsUpdate {
	su.mutation.AddMaxTokens(i)
	return su
}

// SetUpdatedAt sets the "updated_at" field.
func (su *SettingsUpdate) SetUpdatedAt(t time.Time) *SettingsUpdate {
	su.mutation.SetUpdatedAt(t)
	return su
}

// Mutation returns the SettingsMutation object of the builder.
func (su *SettingsUpdate) Mutation() *SettingsMutation {
	return su.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (su *SettingsUpdate) Save(ctx context.Context) (int, error) {
	su.defaults()
	return withHooks(ctx, su.sqlSave, su.mutation, su.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (su *SettingsUpdate) SaveX(ctx context.Context) int {
	affected, err := su.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (su *SettingsUpdate) Exec(ctx context.Context) error {
	_, err := su.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (su *SettingsUpdate) ExecX(ctx context.Context) {
	if err := su.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (su *SettingsUpdate) defaults() {
	if _, ok := su.mutation.UpdatedAt(); !ok {
		v := settings.UpdateDefaultUpdatedAt()
		su.mutation.SetUpdatedAt(v)
	}
}

func (su *SettingsUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(settings.Table, settings.Columns, sqlgraph.NewFieldSpec(settings.FieldID, field.TypeInt))
	if ps := su.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := su.mutation.Singleton(); ok {
		_spec.SetField(settings.FieldSingleton, field.TypeBool, value)
	}
	if value, ok := su.mutation.LlmModel(); ok {
		_spec.SetField(settings.FieldLlmModel, field.TypeString, value)
	}
	if value, ok := su.mutation.MaxTokens(); ok {
		_spec.SetField(settings.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := su.mutation.AddedMaxTokens(); ok {
		_spec.AddField(settings.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := su.mutation.UpdatedAt(); ok {
		_spec.SetField(settings.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, su.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{settings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	su.mutation.done = true
	return n, nil
}

// SettingsUpdateOne is the builder for updating a single Settings entity.
type SettingsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SettingsMutation
}

// SetSingleton sets the "singleton" field.
func (suo *SettingsUpdateOne) SetSingleton(b bool) *SettingsUpdateOne {
	suo.mutation.SetSingleton(b)
	return suo
}

// SetNillableSingleton sets the "singleton" field if the given value is not nil.
func (suo *SettingsUpdateOne) SetNillableSingleton(b *bool) *SettingsUpdateOne {
	if b != nil {
		suo.SetSingleton(*b)
	}
	return suo
}

// SetLlmModel sets the "llm_model" field.
func (suo *SettingsUpdateOne) SetLlmModel(s string) *SettingsUpdateOne {
	suo.mutation.SetLlmModel(s)
	return suo
}

// SetNillableLlmModel sets the "llm_model" field if the given value is not nil.
func (suo *SettingsUpdateOne) SetNillableLlmModel(s *string) *SettingsUpdateOne {
	if s != nil {
		suo.SetLlmModel(*s)
	}
	return suo
}

// SetMaxTokens sets the "max_tokens" field.
func (suo *SettingsUpdateOne) SetMaxTokens(i int) *SettingsUpdateOne {
	suo.mutation.ResetMaxTokens()
	suo.mutation.SetMaxTokens(i)
	return suo
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (suo *SettingsUpdateOne) SetNillableMaxTokens(i *int) *SettingsUpdateOne {
	if i != nil {
		suo.SetMaxTokens(*i)
	}
	return suo
}

// AddMaxTokens adds i to the "max_tokens" field.
func (suo *SettingsUpdateOne) AddMaxTokens(i int) *SettingsUpdateOne {
	suo.mutation.AddMaxTokens(i)
	return suo
}

// SetUpdatedAt sets the "updated_at" field.
func (suo *SettingsUpdateOne) SetUpdatedAt(t time.Time) *SettingsUpdateOne {
	suo.mutation.SetUpdatedAt(t)
	return suo
}

// Mutation returns the SettingsMutation object of the builder.
func (suo *SettingsUpdateOne) Mutation() *SettingsMutation {
	return suo.mutation
}

// Where appends a list predicates to the SettingsUpdate builder.
func (suo *SettingsUpdateOne) Where(ps ...predicate.Settings) *SettingsUpdateOne {
	suo.mutation.Where(ps...)
	return suo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (suo *SettingsUpdateOne) Select(field string, fields ...string) *SettingsUpdateOne {
	suo.fields = append([]string{field}, fields...)
	return suo
}

// Save executes the query and returns the updated Settings entity.
func (suo *SettingsUpdateOne) Save(ctx context.Context) (*Settings, error) {
	suo.defaults()
	return withHooks(ctx, suo.sqlSave, suo.mutation, suo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (suo *SettingsUpdateOne) SaveX(ctx context.Context) *Settings {
	node, err := suo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (suo *SettingsUpdateOne) Exec(ctx context.Context) error {
	_, err := suo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (suo *SettingsUpdateOne) ExecX(ctx context.Context) {
	if err := suo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (suo *SettingsUpdateOne) defaults() {
	if _, ok := suo.mutation.UpdatedAt(); !ok {
		v := settings.UpdateDefaultUpdatedAt()
		suo.mutation.SetUpdatedAt(v)
	}
}

func (suo *SettingsUpdateOne) sqlSave(ctx context.Context) (_node *Settings, err error) {
	_spec := sqlgraph.NewUpdateSpec(settings.Table, settings.Columns, sqlgraph.NewFieldSpec(settings.FieldID, field.TypeInt))
	id, ok := suo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Settings.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := suo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, settings.FieldID)
		for _, f := range fields {
			if !settings.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != settings.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := suo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := suo.mutation.Singleton(); ok {
		_spec.SetField(settings.FieldSingleton, field.TypeBool, value)
	}
	if value, ok := suo.mutation.LlmModel(); ok {
		_spec.SetField(settings.FieldLlmModel, field.TypeString, value)
	}
	if value, ok := suo.mutation.MaxTokens(); ok {
		_spec.SetField(settings.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := suo.mutation.AddedMaxTokens(); ok {
		_spec.AddField(settings.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := suo.mutation.UpdatedAt(); ok {
		_spec.SetField(settings.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Settings{config: suo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, suo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{settings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	suo.mutation.done = true
	return _node, nil
}
