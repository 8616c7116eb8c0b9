// Code generated by ent, DO NOT EDIT.

package llmcall

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dayplan/dayplan/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLTE(FieldID, id))
}

// ModuleName applies equality check predicate on the "module_name" field. It's identical to ModuleNameEQ.
func ModuleName(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldModuleName, v))
}

// Inputs applies equality check predicate on the "inputs" field. It's identical to InputsEQ.
func Inputs(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldInputs, v))
}

// Outputs applies equality check predicate on the "outputs" field. It's identical to OutputsEQ.
func Outputs(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldOutputs, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v float64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldDurationMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldCreatedAt, v))
}

// ModuleNameEQ applies the EQ predicate on the "module_name" field.
func ModuleNameEQ(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldModuleName, v))
}

// ModuleNameNEQ applies the NEQ predicate on the "module_name" field.
func ModuleNameNEQ(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNEQ(FieldModuleName, v))
}

// ModuleNameIn applies the In predicate on the "module_name" field.
func ModuleNameIn(vs ...string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldIn(FieldModuleName, vs...))
}

// ModuleNameNotIn applies the NotIn predicate on the "module_name" field.
func ModuleNameNotIn(vs ...string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNotIn(FieldModuleName, vs...))
}

// ModuleNameGT applies the GT predicate on the "module_name" field.
func ModuleNameGT(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGT(FieldModuleName, v))
}

// ModuleNameGTE applies the GTE predicate on the "module_name" field.
func ModuleNameGTE(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGTE(FieldModuleName, v))
}

// ModuleNameLT applies the LT predicate on the "module_name" field.
func ModuleNameLT(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLT(FieldModuleName, v))
}

// ModuleNameLTE applies the LTE predicate on the "module_name" field.
func ModuleNameLTE(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLTE(FieldModuleName, v))
}

// ModuleNameContains applies the Contains predicate on the "module_name" field.
func ModuleNameContains(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldContains(FieldModuleName, v))
}

// ModuleNameHasPrefix applies the HasPrefix predicate on the "module_name" field.
func ModuleNameHasPrefix(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldHasPrefix(FieldModuleName, v))
}

// ModuleNameHasSuffix applies the HasSuffix predicate on the "module_name" field.
func ModuleNameHasSuffix(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldHasSuffix(FieldModuleName, v))
}

// ModuleNameEqualFold applies the EqualFold predicate on the "module_name" field.
func ModuleNameEqualFold(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEqualFold(FieldModuleName, v))
}

// ModuleNameContainsFold applies the ContainsFold predicate on the "module_name" field.
func ModuleNameContainsFold(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldContainsFold(FieldModuleName, v))
}

// InputsEQ applies the EQ predicate on the "inputs" field.
func InputsEQ(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldInputs, v))
}

// InputsNEQ applies the NEQ predicate on the "inputs" field.
func InputsNEQ(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNEQ(FieldInputs, v))
}

// InputsIn applies the In predicate on the "inputs" field.
func InputsIn(vs ...string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldIn(FieldInputs, vs...))
}

// InputsNotIn applies the NotIn predicate on the "inputs" field.
func InputsNotIn(vs ...string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNotIn(FieldInputs, vs...))
}

// InputsGT applies the GT predicate on the "inputs" field.
func InputsGT(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGT(FieldInputs, v))
}

// InputsGTE applies the GTE predicate on the "inputs" field.
func InputsGTE(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGTE(FieldInputs, v))
}

// InputsLT applies the LT predicate on the "inputs" field.
func InputsLT(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLT(FieldInputs, v))
}

// InputsLTE applies the LTE predicate on the "inputs" field.
func InputsLTE(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLTE(FieldInputs, v))
}

// InputsContains applies the Contains predicate on the "inputs" field.
func InputsContains(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldContains(FieldInputs, v))
}

// InputsHasPrefix applies the HasPrefix predicate on the "inputs" field.
func InputsHasPrefix(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldHasPrefix(FieldInputs, v))
}

// InputsHasSuffix applies the HasSuffix predicate on the "inputs" field.
func InputsHasSuffix(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldHasSuffix(FieldInputs, v))
}

// InputsEqualFold applies the EqualFold predicate on the "inputs" field.
func InputsEqualFold(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEqualFold(FieldInputs, v))
}

// InputsContainsFold applies the ContainsFold predicate on the "inputs" field.
func InputsContainsFold(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldContainsFold(FieldInputs, v))
}

// OutputsEQ applies the EQ predicate on the "outputs" field.
func OutputsEQ(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldOutputs, v))
}

// OutputsNEQ applies the NEQ predicate on the "outputs" field.
func OutputsNEQ(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNEQ(FieldOutputs, v))
}

// OutputsIn applies the In predicate on the "outputs" field.
func OutputsIn(vs ...string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldIn(FieldOutputs, vs...))
}

// OutputsNotIn applies the NotIn predicate on the "outputs" field.
func OutputsNotIn(vs ...string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNotIn(FieldOutputs, vs...))
}

// OutputsGT applies the GT predicate on the "outputs" field.
func OutputsGT(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGT(FieldOutputs, v))
}

// OutputsGTE applies the GTE predicate on the "outputs" field.
func OutputsGTE(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGTE(FieldOutputs, v))
}

// OutputsLT applies the LT predicate on the "outputs" field.
func OutputsLT(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLT(FieldOutputs, v))
}

// OutputsLTE applies the LTE predicate on the "outputs" field.
func OutputsLTE(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLTE(FieldOutputs, v))
}

// OutputsContains applies the Contains predicate on the "outputs" field.
func OutputsContains(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldContains(FieldOutputs, v))
}

// OutputsHasPrefix applies the HasPrefix predicate on the "outputs" field.
func OutputsHasPrefix(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldHasPrefix(FieldOutputs, v))
}

// OutputsHasSuffix applies the HasSuffix predicate on the "outputs" field.
func OutputsHasSuffix(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldHasSuffix(FieldOutputs, v))
}

// OutputsEqualFold applies the EqualFold predicate on the "outputs" field.
func OutputsEqualFold(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEqualFold(FieldOutputs, v))
}

// OutputsContainsFold applies the ContainsFold predicate on the "outputs" field.
func OutputsContainsFold(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldContainsFold(FieldOutputs, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v float64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v float64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...float64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...float64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v float64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v float64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v float64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v float64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLTE(FieldDurationMs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LLMCall) predicate.LLMCall {
	return predicate.LLMCall(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LLMCall) predicate.LLMCall {
	return predicate.LLMCall(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LLMCall) predicate.LLMCall {
	return predicate.LLMCall(sql.NotPredicates(p))
}
