// Code generated by ent, DO NOT EDIT.

package globalcontext

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dayplan/dayplan/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldLTE(FieldID, id))
}

// Singleton applies equality check predicate on the "singleton" field. It's identical to SingletonEQ.
func Singleton(v bool) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldEQ(FieldSingleton, v))
}

// Context applies equality check predicate on the "context" field. It's identical to ContextEQ.
func Context(v string) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldEQ(FieldContext, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldEQ(FieldUpdatedAt, v))
}

// SingletonEQ applies the EQ predicate on the "singleton" field.
func SingletonEQ(v bool) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldEQ(FieldSingleton, v))
}

// SingletonNEQ applies the NEQ predicate on the "singleton" field.
func SingletonNEQ(v bool) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldNEQ(FieldSingleton, v))
}

// ContextEQ applies the EQ predicate on the "context" field.
func ContextEQ(v string) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldEQ(FieldContext, v))
}

// ContextNEQ applies the NEQ predicate on the "context" field.
func ContextNEQ(v string) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldNEQ(FieldContext, v))
}

// ContextIn applies the In predicate on the "context" field.
func ContextIn(vs ...string) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldIn(FieldContext, vs...))
}

// ContextNotIn applies the NotIn predicate on the "context" field.
func ContextNotIn(vs ...string) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldNotIn(FieldContext, vs...))
}

// ContextGT applies the GT predicate on the "context" field.
func ContextGT(v string) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldGT(FieldContext, v))
}

// ContextGTE applies the GTE predicate on the "context" field.
func ContextGTE(v string) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldGTE(FieldContext, v))
}

// ContextLT applies the LT predicate on the "context" field.
func ContextLT(v string) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldLT(FieldContext, v))
}

// ContextLTE applies the LTE predicate on the "context" field.
func ContextLTE(v string) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldLTE(FieldContext, v))
}

// ContextContains applies the Contains predicate on the "context" field.
func ContextContains(v string) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldContains(FieldContext, v))
}

// ContextHasPrefix applies the HasPrefix predicate on the "context" field.
func ContextHasPrefix(v string) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldHasPrefix(FieldContext, v))
}

// ContextHasSuffix applies the HasSuffix predicate on the "context" field.
func ContextHasSuffix(v string) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldHasSuffix(FieldContext, v))
}

// ContextEqualFold applies the EqualFold predicate on the "context" field.
func ContextEqualFold(v string) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldEqualFold(FieldContext, v))
}

// ContextContainsFold applies the ContainsFold predicate on the "context" field.
func ContextContainsFold(v string) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldContainsFold(FieldContext, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.GlobalContext {
	return predicate.GlobalContext(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GlobalContext) predicate.GlobalContext {
	return predicate.GlobalContext(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GlobalContext) predicate.GlobalContext {
	return predicate.GlobalContext(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GlobalContext) predicate.GlobalContext {
	return predicate.GlobalContext(sql.NotPredicates(p))
}
