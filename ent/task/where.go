// Code generated by ent, DO NOT EDIT.

package task

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dayplan/dayplan/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDescription, v))
}

// Context applies equality check predicate on the "context" field. It's identical to ContextEQ.
func Context(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldContext, v))
}

// DueDate applies equality check predicate on the "due_date" field. It's identical to DueDateEQ.
func DueDate(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDueDate, v))
}

// ScheduledStart applies equality check predicate on the "scheduled_start" field. It's identical to ScheduledStartEQ.
func ScheduledStart(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldScheduledStart, v))
}

// ScheduledEnd applies equality check predicate on the "scheduled_end" field. It's identical to ScheduledEndEQ.
func ScheduledEnd(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldScheduledEnd, v))
}

// ActualStart applies equality check predicate on the "actual_start" field. It's identical to ActualStartEQ.
func ActualStart(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldActualStart, v))
}

// ActualEnd applies equality check predicate on the "actual_end" field. It's identical to ActualEndEQ.
func ActualEnd(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldActualEnd, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v float64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPriority, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCompleted, v))
}

// NeedsScheduling applies equality check predicate on the "needs_scheduling" field. It's identical to NeedsSchedulingEQ.
func NeedsScheduling(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldNeedsScheduling, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldDescription, v))
}

// ContextEQ applies the EQ predicate on the "context" field.
func ContextEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldContext, v))
}

// ContextNEQ applies the NEQ predicate on the "context" field.
func ContextNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldContext, v))
}

// ContextIn applies the In predicate on the "context" field.
func ContextIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldContext, vs...))
}

// ContextNotIn applies the NotIn predicate on the "context" field.
func ContextNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldContext, vs...))
}

// ContextGT applies the GT predicate on the "context" field.
func ContextGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldContext, v))
}

// ContextGTE applies the GTE predicate on the "context" field.
func ContextGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldContext, v))
}

// ContextLT applies the LT predicate on the "context" field.
func ContextLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldContext, v))
}

// ContextLTE applies the LTE predicate on the "context" field.
func ContextLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldContext, v))
}

// ContextContains applies the Contains predicate on the "context" field.
func ContextContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldContext, v))
}

// ContextHasPrefix applies the HasPrefix predicate on the "context" field.
func ContextHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldContext, v))
}

// ContextHasSuffix applies the HasSuffix predicate on the "context" field.
func ContextHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldContext, v))
}

// ContextEqualFold applies the EqualFold predicate on the "context" field.
func ContextEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldContext, v))
}

// ContextContainsFold applies the ContainsFold predicate on the "context" field.
func ContextContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldContext, v))
}

// DueDateEQ applies the EQ predicate on the "due_date" field.
func DueDateEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDueDate, v))
}

// DueDateNEQ applies the NEQ predicate on the "due_date" field.
func DueDateNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldDueDate, v))
}

// DueDateIn applies the In predicate on the "due_date" field.
func DueDateIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldDueDate, vs...))
}

// DueDateNotIn applies the NotIn predicate on the "due_date" field.
func DueDateNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldDueDate, vs...))
}

// DueDateGT applies the GT predicate on the "due_date" field.
func DueDateGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldDueDate, v))
}

// DueDateGTE applies the GTE predicate on the "due_date" field.
func DueDateGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldDueDate, v))
}

// DueDateLT applies the LT predicate on the "due_date" field.
func DueDateLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldDueDate, v))
}

// DueDateLTE applies the LTE predicate on the "due_date" field.
func DueDateLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldDueDate, v))
}

// DueDateIsNil applies the IsNil predicate on the "due_date" field.
func DueDateIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldDueDate))
}

// DueDateNotNil applies the NotNil predicate on the "due_date" field.
func DueDateNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldDueDate))
}

// ScheduledStartEQ applies the EQ predicate on the "scheduled_start" field.
func ScheduledStartEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldScheduledStart, v))
}

// ScheduledStartNEQ applies the NEQ predicate on the "scheduled_start" field.
func ScheduledStartNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldScheduledStart, v))
}

// ScheduledStartIn applies the In predicate on the "scheduled_start" field.
func ScheduledStartIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldScheduledStart, vs...))
}

// ScheduledStartNotIn applies the NotIn predicate on the "scheduled_start" field.
func ScheduledStartNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldScheduledStart, vs...))
}

// ScheduledStartGT applies the GT predicate on the "scheduled_start" field.
func ScheduledStartGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldScheduledStart, v))
}

// ScheduledStartGTE applies the GTE predicate on the "scheduled_start" field.
func ScheduledStartGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldScheduledStart, v))
}

// ScheduledStartLT applies the LT predicate on the "scheduled_start" field.
func ScheduledStartLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldScheduledStart, v))
}

// ScheduledStartLTE applies the LTE predicate on the "scheduled_start" field.
func ScheduledStartLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldScheduledStart, v))
}

// ScheduledStartIsNil applies the IsNil predicate on the "scheduled_start" field.
func ScheduledStartIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldScheduledStart))
}

// ScheduledStartNotNil applies the NotNil predicate on the "scheduled_start" field.
func ScheduledStartNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldScheduledStart))
}

// ScheduledEndEQ applies the EQ predicate on the "scheduled_end" field.
func ScheduledEndEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldScheduledEnd, v))
}

// ScheduledEndNEQ applies the NEQ predicate on the "scheduled_end" field.
func ScheduledEndNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldScheduledEnd, v))
}

// ScheduledEndIn applies the In predicate on the "scheduled_end" field.
func ScheduledEndIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldScheduledEnd, vs...))
}

// ScheduledEndNotIn applies the NotIn predicate on the "scheduled_end" field.
func ScheduledEndNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldScheduledEnd, vs...))
}

// ScheduledEndGT applies the GT predicate on the "scheduled_end" field.
func ScheduledEndGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldScheduledEnd, v))
}

// ScheduledEndGTE applies the GTE predicate on the "scheduled_end" field.
func ScheduledEndGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldScheduledEnd, v))
}

// ScheduledEndLT applies the LT predicate on the "scheduled_end" field.
func ScheduledEndLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldScheduledEnd, v))
}

// ScheduledEndLTE applies the LTE predicate on the "scheduled_end" field.
func ScheduledEndLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldScheduledEnd, v))
}

// ScheduledEndIsNil applies the IsNil predicate on the "scheduled_end" field.
func ScheduledEndIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldScheduledEnd))
}

// ScheduledEndNotNil applies the NotNil predicate on the "scheduled_end" field.
func ScheduledEndNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldScheduledEnd))
}

// ActualStartEQ applies the EQ predicate on the "actual_start" field.
func ActualStartEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldActualStart, v))
}

// ActualStartNEQ applies the NEQ predicate on the "actual_start" field.
func ActualStartNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldActualStart, v))
}

// ActualStartIn applies the In predicate on the "actual_start" field.
func ActualStartIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldActualStart, vs...))
}

// ActualStartNotIn applies the NotIn predicate on the "actual_start" field.
func ActualStartNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldActualStart, vs...))
}

// ActualStartGT applies the GT predicate on the "actual_start" field.
func ActualStartGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldActualStart, v))
}

// ActualStartGTE applies the GTE predicate on the "actual_start" field.
func ActualStartGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldActualStart, v))
}

// ActualStartLT applies the LT predicate on the "actual_start" field.
func ActualStartLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldActualStart, v))
}

// ActualStartLTE applies the LTE predicate on the "actual_start" field.
func ActualStartLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldActualStart, v))
}

// ActualStartIsNil applies the IsNil predicate on the "actual_start" field.
func ActualStartIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldActualStart))
}

// ActualStartNotNil applies the NotNil predicate on the "actual_start" field.
func ActualStartNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldActualStart))
}

// ActualEndEQ applies the EQ predicate on the "actual_end" field.
func ActualEndEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldActualEnd, v))
}

// ActualEndNEQ applies the NEQ predicate on the "actual_end" field.
func ActualEndNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldActualEnd, v))
}

// ActualEndIn applies the In predicate on the "actual_end" field.
func ActualEndIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldActualEnd, vs...))
}

// ActualEndNotIn applies the NotIn predicate on the "actual_end" field.
func ActualEndNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldActualEnd, vs...))
}

// ActualEndGT applies the GT predicate on the "actual_end" field.
func ActualEndGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldActualEnd, v))
}

// ActualEndGTE applies the GTE predicate on the "actual_end" field.
func ActualEndGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldActualEnd, v))
}

// ActualEndLT applies the LT predicate on the "actual_end" field.
func ActualEndLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldActualEnd, v))
}

// ActualEndLTE applies the LTE predicate on the "actual_end" field.
func ActualEndLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldActualEnd, v))
}

// ActualEndIsNil applies the IsNil predicate on the "actual_end" field.
func ActualEndIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldActualEnd))
}

// ActualEndNotNil applies the NotNil predicate on the "actual_end" field.
func ActualEndNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldActualEnd))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v float64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v float64) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...float64) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...float64) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v float64) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v float64) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v float64) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v float64) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldPriority, v))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCompleted, v))
}

// NeedsSchedulingEQ applies the EQ predicate on the "needs_scheduling" field.
func NeedsSchedulingEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldNeedsScheduling, v))
}

// NeedsSchedulingNEQ applies the NEQ predicate on the "needs_scheduling" field.
func NeedsSchedulingNEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldNeedsScheduling, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Task) predicate.Task {
	return predicate.Task(sql.NotPredicates(p))
}
