// Code generated by ent, DO NOT EDIT.

package settings

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dayplan/dayplan/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Settings {
	return predicate.Settings(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Settings {
	return predicate.Settings(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Settings {
	return predicate.Settings(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Settings {
	return predicate.Settings(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Settings {
	return predicate.Settings(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Settings {
	return predicate.Settings(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Settings {
	return predicate.Settings(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Settings {
	return predicate.Settings(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Settings {
	return predicate.Settings(sql.FieldLTE(FieldID, id))
}

// Singleton applies equality check predicate on the "singleton" field. It's identical to SingletonEQ.
func Singleton(v bool) predicate.Settings {
	return predicate.Settings(sql.FieldEQ(FieldSingleton, v))
}

// LlmModel applies equality check predicate on the "llm_model" field. It's identical to LlmModelEQ.
func LlmModel(v string) predicate.Settings {
	return predicate.Settings(sql.FieldEQ(FieldLlmModel, v))
}

// MaxTokens applies equality check predicate on the "max_tokens" field. It's identical to MaxTokensEQ.
func MaxTokens(v int) predicate.Settings {
	return predicate.Settings(sql.FieldEQ(FieldMaxTokens, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Settings {
	return predicate.Settings(sql.FieldEQ(FieldUpdatedAt, v))
}

// SingletonEQ applies the EQ predicate on the "singleton" field.
func SingletonEQ(v bool) predicate.Settings {
	return predicate.Settings(sql.FieldEQ(FieldSingleton, v))
}

// SingletonNEQ applies the NEQ predicate on the "singleton" field.
func SingletonNEQ(v bool) predicate.Settings {
	return predicate.Settings(sql.FieldNEQ(FieldSingleton, v))
}

// LlmModelEQ applies the EQ predicate on the "llm_model" field.
func LlmModelEQ(v string) predicate.Settings {
	return predicate.Settings(sql.FieldEQ(FieldLlmModel, v))
}

// LlmModelNEQ applies the NEQ predicate on the "llm_model" field.
func LlmModelNEQ(v string) predicate.Settings {
	return predicate.Settings(sql.FieldNEQ(FieldLlmModel, v))
}

// LlmModelIn applies the In predicate on the "llm_model" field.
func LlmModelIn(vs ...string) predicate.Settings {
	return predicate.Settings(sql.FieldIn(FieldLlmModel, vs...))
}

// LlmModelNotIn applies the NotIn predicate on the "llm_model" field.
func LlmModelNotIn(vs ...string) predicate.Settings {
	return predicate.Settings(sql.FieldNotIn(FieldLlmModel, vs...))
}

// LlmModelGT applies the GT predicate on the "llm_model" field.
func LlmModelGT(v string) predicate.Settings {
	return predicate.Settings(sql.FieldGT(FieldLlmModel, v))
}

// LlmModelGTE applies the GTE predicate on the "llm_model" field.
func LlmModelGTE(v string) predicate.Settings {
	return predicate.Settings(sql.FieldGTE(FieldLlmModel, v))
}

// LlmModelLT applies the LT predicate on the "llm_model" field.
func LlmModelLT(v string) predicate.Settings {
	return predicate.Settings(sql.FieldLT(FieldLlmModel, v))
}

// LlmModelLTE applies the LTE predicate on the "llm_model" field.
func LlmModelLTE(v string) predicate.Settings {
	return predicate.Settings(sql.FieldLTE(FieldLlmModel, v))
}

// LlmModelContains applies the Contains predicate on the "llm_model" field.
func LlmModelContains(v string) predicate.Settings {
	return predicate.Settings(sql.FieldContains(FieldLlmModel, v))
}

// LlmModelHasPrefix applies the HasPrefix predicate on the "llm_model" field.
func LlmModelHasPrefix(v string) predicate.Settings {
	return predicate.Settings(sql.FieldHasPrefix(FieldLlmModel, v))
}

// LlmModelHasSuffix applies the HasSuffix predicate on the "llm_model" field.
func LlmModelHasSuffix(v string) predicate.Settings {
	return predicate.Settings(sql.FieldHasSuffix(FieldLlmModel, v))
}

// LlmModelEqualFold applies the EqualFold predicate on the "llm_model" field.
func LlmModelEqualFold(v string) predicate.Settings {
	return predicate.Settings(sql.FieldEqualFold(FieldLlmModel, v))
}

// LlmModelContainsFold applies the ContainsFold predicate on the "llm_model" field.
func LlmModelContainsFold(v string) predicate.Settings {
	return predicate.Settings(sql.FieldContainsFold(FieldLlmModel, v))
}

// MaxTokensEQ applies the EQ predicate on the "max_tokens" field.
func MaxTokensEQ(v int) predicate.Settings {
	return predicate.Settings(sql.FieldEQ(FieldMaxTokens, v))
}

// MaxTokensNEQ applies the NEQ predicate on the "max_tokens" field.
func MaxTokensNEQ(v int) predicate.Settings {
	return predicate.Settings(sql.FieldNEQ(FieldMaxTokens, v))
}

// MaxTokensIn applies the In predicate on the "max_tokens" field.
func MaxTokensIn(vs ...int) predicate.Settings {
	return predicate.Settings(sql.FieldIn(FieldMaxTokens, vs...))
}

// MaxTokensNotIn applies the NotIn predicate on the "max_tokens" field.
func MaxTokensNotIn(vs ...int) predicate.Settings {
	return predicate.Settings(sql.FieldNotIn(FieldMaxTokens, vs...))
}

// MaxTokensGT applies the GT predicate on the "max_tokens" field.
func MaxTokensGT(v int) predicate.Settings {
	return predicate.Settings(sql.FieldGT(FieldMaxTokens, v))
}

// MaxTokensGTE applies the GTE predicate on the "max_tokens" field.
func MaxTokensGTE(v int) predicate.Settings {
	return predicate.Settings(sql.FieldGTE(FieldMaxTokens, v))
}

// MaxTokensLT applies the LT predicate on the "max_tokens" field.
func MaxTokensLT(v int) predicate.Settings {
	return predicate.Settings(sql.FieldLT(FieldMaxTokens, v))
}

// MaxTokensLTE applies the LTE predicate on the "max_tokens" field.
func MaxTokensLTE(v int) predicate.Settings {
	return predicate.Settings(sql.FieldLTE(FieldMaxTokens, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Settings {
	return predicate.Settings(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Settings {
	return predicate.Settings(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Settings {
	return predicate.Settings(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Settings {
	return predicate.Settings(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Settings {
	return predicate.Settings(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Settings {
	return predicate.Settings(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Settings {
	return predicate.Settings(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Settings {
	return predicate.Settings(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Settings) predicate.Settings {
	return predicate.Settings(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Settings) predicate.Settings {
	return predicate.Settings(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Settings) predicate.Settings {
	return predicate.Settings(sql.NotPredicates(p))
}
