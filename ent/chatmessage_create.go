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
	"github.com/dayplan/dayplan/ent/chatmessage"
)

// ChatMessageCreate is the builder for creating a ChatMessage entity.
type ChatMessageCreate struct {
	config
	mutation *ChatMessageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserMessage sets the "user_message" field.
func (cmc *ChatMessageCreate) SetUserMessage(s string) *ChatMessageCreate {
	cmc.mutation.SetUserMessage(s)
	return cmc
}

// SetAssistantResponse sets the "assistant_response" field.
func (cmc *ChatMessageCreate) SetAssistantResponse(s string) *ChatMessageCreate {
	cmc.mutation.SetAssistantResponse(s)
	return cmc
}

// SetCreatedAt sets the "created_at" field.
func (cmc *ChatMessageCreate) SetCreatedAt(t time.Time) *ChatMessageCreate {
	cmc.mutation.SetCreatedAt(t)
	return cmc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (cmc *ChatMessageCreate) SetNillableCreatedAt(t *time.Time) *ChatMessageCreate {
	if t != nil {
		cmc.SetCreatedAt(*t)
	}
	return cmc
}

// Mutation returns the ChatMessageMutation object of the builder.
func (cmc *ChatMessageCreate) Mutation() *ChatMessageMutation {
	return cmc.mutation
}

// Save creates the ChatMessage in the database.
func (cmc *ChatMessageCreate) Save(ctx context.Context) (*ChatMessage, error) {
	cmc.defaults()
	return withHooks(ctx, cmc.sqlSave, cmc.mutation, cmc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (cmc *ChatMessageCreate) SaveX(ctx context.Context) *ChatMessage {
	v, err := cmc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cmc *ChatMessageCreate) Exec(ctx context.Context) error {
	_, err := cmc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cmc *ChatMessageCreate) ExecX(ctx context.Context) {
	if err := cmc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cmc *ChatMessageCreate) defaults() {
	if _, ok := cmc.mutation.CreatedAt(); !ok {
		v := chatmessage.DefaultCreatedAt()
		cmc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cmc *ChatMessageCreate) check() error {
	if _, ok := cmc.mutation.UserMessage(); !ok {
		return &ValidationError{Name: "user_message", err: errors.New(`ent: missing required field "ChatMessage.user_message"`)}
	}
	if _, ok := cmc.mutation.AssistantResponse(); !ok {
		return &ValidationError{Name: "assistant_response", err: errors.New(`ent: missing required field "ChatMessage.assistant_response"`)}
	}
	if _, ok := cmc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ChatMessage.created_at"`)}
	}
	return nil
}

func (cmc *ChatMessageCreate) sqlSave(ctx context.Context) (*ChatMessage, error) {
	if err := cmc.check(); err != nil {
		return nil, err
	}
	_node, _spec := cmc.createSpec()
	if err := sqlgraph.CreateNode(ctx, cmc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	cmc.mutation.id = &_node.ID
	cmc.mutation.done = true
	return _node, nil
}

func (cmc *ChatMessageCreate) createSpec() (*ChatMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &ChatMessage{config: cmc.config}
		_spec = sqlgraph.NewCreateSpec(chatmessage.Table, sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeInt))
	)
	_spec.OnConflict = cmc.conflict
	if value, ok := cmc.mutation.UserMessage(); ok {
		_spec.SetField(chatmessage.FieldUserMessage, field.TypeString, value)
		_node.UserMessage = value
	}
	if value, ok := cmc.mutation.AssistantResponse(); ok {
		_spec.SetField(chatmessage.FieldAssistantResponse, field.TypeString, value)
		_node.AssistantResponse = value
	}
	if value, ok := cmc.mutation.CreatedAt(); ok {
		_spec.SetField(chatmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ChatMessage.Create().
//		SetUserMessage(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChatMessageUpsert) {
//			SetUserMessage(v+v).
//		}).
//		Exec(ctx)
func (cmc *ChatMessageCreate) OnConflict(opts ...sql.ConflictOption) *ChatMessageUpsertOne {
	cmc.conflict = opts
	return &ChatMessageUpsertOne{
		create: cmc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ChatMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (cmc *ChatMessageCreate) OnConflictColumns(columns ...string) *ChatMessageUpsertOne {
	cmc.conflict = append(cmc.conflict, sql.ConflictColumns(columns...))
	return &ChatMessageUpsertOne{
		create: cmc,
	}
}

type (
	// ChatMessageUpsertOne is the builder for "upsert"-ing
	//  one ChatMessage node.
	ChatMessageUpsertOne struct {
		create *ChatMessageCreate
	}

	// ChatMessageUpsert is the "OnConflict" setter.
	ChatMessageUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserMessage sets the "user_message" field.
func (u *ChatMessageUpsert) SetUserMessage(v string) *ChatMessageUpsert {
	u.Set(chatmessage.FieldUserMessage, v)
	return u
}

// UpdateUserMessage sets the "user_message" field to the value that was provided on create.
func (u *ChatMessageUpsert) UpdateUserMessage() *ChatMessageUpsert {
	u.SetExcluded(chatmessage.FieldUserMessage)
	return u
}

// SetAssistantResponse sets the "assistant_response" field.
func (u *ChatMessageUpsert) SetAssistantResponse(v string) *ChatMessageUpsert {
	u.Set(chatmessage.FieldAssistantResponse, v)
	return u
}

// UpdateAssistantResponse sets the "assistant_response" field to the value that was provided on create.
func (u *ChatMessageUpsert) UpdateAssistantResponse() *ChatMessageUpsert {
	u.SetExcluded(chatmessage.FieldAssistantResponse)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ChatMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ChatMessageUpsertOne) UpdateNewValues() *ChatMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(chatmessage.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ChatMessage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ChatMessageUpsertOne) Ignore() *ChatMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChatMessageUpsertOne) DoNothing() *ChatMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChatMessageCreate.OnConflict
// documentation for more info.
func (u *ChatMessageUpsertOne) Update(set func(*ChatMessageUpsert)) *ChatMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChatMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserMessage sets the "user_message" field.
func (u *ChatMessageUpsertOne) SetUserMessage(v string) *ChatMessageUpsertOne {
	return u.Update(func(s *ChatMessageUpsert) {
		s.SetUserMessage(v)
	})
}

// UpdateUserMessage sets the "user_message" field to the value that was provided on create.
func (u *ChatMessageUpsertOne) UpdateUserMessage() *ChatMessageUpsertOne {
	return u.Update(func(s *ChatMessageUpsert) {
		s.UpdateUserMessage()
	})
}

// SetAssistantResponse sets the "assistant_response" field.
func (u *ChatMessageUpsertOne) SetAssistantResponse(v string) *ChatMessageUpsertOne {
	return u.Update(func(s *ChatMessageUpsert) {
		s.SetAssistantResponse(v)
	})
}

// UpdateAssistantResponse sets the "assistant_response" field to the value that was provided on create.
func (u *ChatMessageUpsertOne) UpdateAssistantResponse() *ChatMessageUpsertOne {
	return u.Update(func(s *ChatMessageUpsert) {
		s.UpdateAssistantResponse()
	})
}

// Exec executes the query.
func (u *ChatMessageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChatMessageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChatMessageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ChatMessageUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ChatMessageUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ChatMessageCreateBulk is the builder for creating many ChatMessage entities in bulk.
type ChatMessageCreateBulk struct {
	config
	err      error
	builders []*ChatMessageCreate
	conflict []sql.ConflictOption
}

// Save creates the ChatMessage entities in the database.
func (cmcb *ChatMessageCreateBulk) Save(ctx context.Context) ([]*ChatMessage, error) {
	if cmcb.err != nil {
		return nil, cmcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(cmcb.builders))
	nodes := make([]*ChatMessage, len(cmcb.builders))
	mutators := make([]Mutator, len(cmcb.builders))
	for i := range cmcb.builders {
		func(i int, root context.Context) {
			builder := cmcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChatMessageMutation)
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
					_, err = mutators[i+1].Mutate(root, cmcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = cmcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, cmcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, cmcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (cmcb *ChatMessageCreateBulk) SaveX(ctx context.Context) []*ChatMessage {
	v, err := cmcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cmcb *ChatMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := cmcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cmcb *ChatMessageCreateBulk) ExecX(ctx context.Context) {
	if err := cmcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ChatMessage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChatMessageUpsert) {
//			SetUserMessage(v+v).
//		}).
//		Exec(ctx)
func (cmcb *ChatMessageCreateBulk) OnConflict(opts ...sql.ConflictOption) *ChatMessageUpsertBulk {
	cmcb.conflict = opts
	return &ChatMessageUpsertBulk{
		create: cmcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ChatMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (cmcb *ChatMessageCreateBulk) OnConflictColumns(columns ...string) *ChatMessageUpsertBulk {
	cmcb.conflict = append(cmcb.conflict, sql.ConflictColumns(columns...))
	return &ChatMessageUpsertBulk{
		create: cmcb,
	}
}

// ChatMessageUpsertBulk is the builder for "upsert"-ing
// a bulk of ChatMessage nodes.
type ChatMessageUpsertBulk struct {
	create *ChatMessageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ChatMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ChatMessageUpsertBulk) UpdateNewValues() *ChatMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(chatmessage.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ChatMessage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ChatMessageUpsertBulk) Ignore() *ChatMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChatMessageUpsertBulk) DoNothing() *ChatMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChatMessageCreateBulk.OnConflict
// documentation for more info.
func (u *ChatMessageUpsertBulk) Update(set func(*ChatMessageUpsert)) *ChatMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChatMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserMessage sets the "user_message" field.
func (u *ChatMessageUpsertBulk) SetUserMessage(v string) *ChatMessageUpsertBulk {
	return u.Update(func(s *ChatMessageUpsert) {
		s.SetUserMessage(v)
	})
}

// UpdateUserMessage sets the "user_message" field to the value that was provided on create.
func (u *ChatMessageUpsertBulk) UpdateUserMessage() *ChatMessageUpsertBulk {
	return u.Update(func(s *ChatMessageUpsert) {
		s.UpdateUserMessage()
	})
}

// SetAssistantResponse sets the "assistant_response" field.
func (u *ChatMessageUpsertBulk) SetAssistantResponse(v string) *ChatMessageUpsertBulk {
	return u.Update(func(s *ChatMessageUpsert) {
		s.SetAssistantResponse(v)
	})
}

// UpdateAssistantResponse sets the "assistant_response" field to the value that was provided on create.
func (u *ChatMessageUpsertBulk) UpdateAssistantResponse() *ChatMessageUpsertBulk {
	return u.Update(func(s *ChatMessageUpsert) {
		s.UpdateAssistantResponse()
	})
}

// Exec executes the query.
func (u *ChatMessageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ChatMessageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChatMessageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChatMessageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
