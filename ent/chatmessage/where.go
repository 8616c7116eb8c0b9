// Code generated by ent, DO NOT EDIT.

package chatmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dayplan/dayplan/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldLTE(FieldID, id))
}

// UserMessage applies equality check predicate on the "user_message" field. It's identical to UserMessageEQ.
func UserMessage(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEQ(FieldUserMessage, v))
}

// AssistantResponse applies equality check predicate on the "assistant_response" field. It's identical to AssistantResponseEQ.
func AssistantResponse(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEQ(FieldAssistantResponse, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// UserMessageEQ applies the EQ predicate on the "user_message" field.
func UserMessageEQ(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEQ(FieldUserMessage, v))
}

// UserMessageNEQ applies the NEQ predicate on the "user_message" field.
func UserMessageNEQ(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNEQ(FieldUserMessage, v))
}

// UserMessageIn applies the In predicate on the "user_message" field.
func UserMessageIn(vs ...string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldIn(FieldUserMessage, vs...))
}

// UserMessageNotIn applies the NotIn predicate on the "user_message" field.
func UserMessageNotIn(vs ...string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNotIn(FieldUserMessage, vs...))
}

// UserMessageGT applies the GT predicate on the "user_message" field.
func UserMessageGT(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldGT(FieldUserMessage, v))
}

// UserMessageGTE applies the GTE predicate on the "user_message" field.
func UserMessageGTE(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldGTE(FieldUserMessage, v))
}

// UserMessageLT applies the LT predicate on the "user_message" field.
func UserMessageLT(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldLT(FieldUserMessage, v))
}

// UserMessageLTE applies the LTE predicate on the "user_message" field.
func UserMessageLTE(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldLTE(FieldUserMessage, v))
}

// UserMessageContains applies the Contains predicate on the "user_message" field.
func UserMessageContains(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldContains(FieldUserMessage, v))
}

// UserMessageHasPrefix applies the HasPrefix predicate on the "user_message" field.
func UserMessageHasPrefix(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldHasPrefix(FieldUserMessage, v))
}

// UserMessageHasSuffix applies the HasSuffix predicate on the "user_message" field.
func UserMessageHasSuffix(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldHasSuffix(FieldUserMessage, v))
}

// UserMessageEqualFold applies the EqualFold predicate on the "user_message" field.
func UserMessageEqualFold(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEqualFold(FieldUserMessage, v))
}

// UserMessageContainsFold applies the ContainsFold predicate on the "user_message" field.
func UserMessageContainsFold(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldContainsFold(FieldUserMessage, v))
}

// AssistantResponseEQ applies the EQ predicate on the "assistant_response" field.
func AssistantResponseEQ(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEQ(FieldAssistantResponse, v))
}

// AssistantResponseNEQ applies the NEQ predicate on the "assistant_response" field.
func AssistantResponseNEQ(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNEQ(FieldAssistantResponse, v))
}

// AssistantResponseIn applies the In predicate on the "assistant_response" field.
func AssistantResponseIn(vs ...string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldIn(FieldAssistantResponse, vs...))
}

// AssistantResponseNotIn applies the NotIn predicate on the "assistant_response" field.
func AssistantResponseNotIn(vs ...string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNotIn(FieldAssistantResponse, vs...))
}

// AssistantResponseGT applies the GT predicate on the "assistant_response" field.
func AssistantResponseGT(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldGT(FieldAssistantResponse, v))
}

// AssistantResponseGTE applies the GTE predicate on the "assistant_response" field.
func AssistantResponseGTE(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldGTE(FieldAssistantResponse, v))
}

// AssistantResponseLT applies the LT predicate on the "assistant_response" field.
func AssistantResponseLT(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldLT(FieldAssistantResponse, v))
}

// AssistantResponseLTE applies the LTE predicate on the "assistant_response" field.
func AssistantResponseLTE(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldLTE(FieldAssistantResponse, v))
}

// AssistantResponseContains applies the Contains predicate on the "assistant_response" field.
func AssistantResponseContains(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldContains(FieldAssistantResponse, v))
}

// AssistantResponseHasPrefix applies the HasPrefix predicate on the "assistant_response" field.
func AssistantResponseHasPrefix(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldHasPrefix(FieldAssistantResponse, v))
}

// AssistantResponseHasSuffix applies the HasSuffix predicate on the "assistant_response" field.
func AssistantResponseHasSuffix(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldHasSuffix(FieldAssistantResponse, v))
}

// AssistantResponseEqualFold applies the EqualFold predicate on the "assistant_response" field.
func AssistantResponseEqualFold(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEqualFold(FieldAssistantResponse, v))
}

// AssistantResponseContainsFold applies the ContainsFold predicate on the "assistant_response" field.
func AssistantResponseContainsFold(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldContainsFold(FieldAssistantResponse, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChatMessage) predicate.ChatMessage {
	return predicate.ChatMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChatMessage) predicate.ChatMessage {
	return predicate.ChatMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChatMessage) predicate.ChatMessage {
	return predicate.ChatMessage(sql.NotPredicates(p))
}
