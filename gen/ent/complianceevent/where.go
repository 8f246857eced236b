// Code generated by ent, DO NOT EDIT.

package complianceevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/loanguard/loanguard/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldLTE(FieldID, id))
}

// LoanID applies equality check predicate on the "loan_id" field. It's identical to LoanIDEQ.
func LoanID(v uuid.UUID) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldEQ(FieldLoanID, v))
}

// RequirementID applies equality check predicate on the "requirement_id" field. It's identical to RequirementIDEQ.
func RequirementID(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldEQ(FieldRequirementID, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldEQ(FieldEventType, v))
}

// EventDate applies equality check predicate on the "event_date" field. It's identical to EventDateEQ.
func EventDate(v time.Time) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldEQ(FieldEventDate, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldEQ(FieldDescription, v))
}

// OldStatus applies equality check predicate on the "old_status" field. It's identical to OldStatusEQ.
func OldStatus(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldEQ(FieldOldStatus, v))
}

// NewStatus applies equality check predicate on the "new_status" field. It's identical to NewStatusEQ.
func NewStatus(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldEQ(FieldNewStatus, v))
}

// SubmittedBy applies equality check predicate on the "submitted_by" field. It's identical to SubmittedByEQ.
func SubmittedBy(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldEQ(FieldSubmittedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// LoanIDEQ applies the EQ predicate on the "loan_id" field.
func LoanIDEQ(v uuid.UUID) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldEQ(FieldLoanID, v))
}

// LoanIDNEQ applies the NEQ predicate on the "loan_id" field.
func LoanIDNEQ(v uuid.UUID) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldNEQ(FieldLoanID, v))
}

// LoanIDIn applies the In predicate on the "loan_id" field.
func LoanIDIn(vs ...uuid.UUID) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldIn(FieldLoanID, vs...))
}

// LoanIDNotIn applies the NotIn predicate on the "loan_id" field.
func LoanIDNotIn(vs ...uuid.UUID) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldNotIn(FieldLoanID, vs...))
}

// RequirementIDEQ applies the EQ predicate on the "requirement_id" field.
func RequirementIDEQ(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldEQ(FieldRequirementID, v))
}

// RequirementIDNEQ applies the NEQ predicate on the "requirement_id" field.
func RequirementIDNEQ(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldNEQ(FieldRequirementID, v))
}

// RequirementIDIn applies the In predicate on the "requirement_id" field.
func RequirementIDIn(vs ...string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldIn(FieldRequirementID, vs...))
}

// RequirementIDNotIn applies the NotIn predicate on the "requirement_id" field.
func RequirementIDNotIn(vs ...string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldNotIn(FieldRequirementID, vs...))
}

// RequirementIDGT applies the GT predicate on the "requirement_id" field.
func RequirementIDGT(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldGT(FieldRequirementID, v))
}

// RequirementIDGTE applies the GTE predicate on the "requirement_id" field.
func RequirementIDGTE(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldGTE(FieldRequirementID, v))
}

// RequirementIDLT applies the LT predicate on the "requirement_id" field.
func RequirementIDLT(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldLT(FieldRequirementID, v))
}

// RequirementIDLTE applies the LTE predicate on the "requirement_id" field.
func RequirementIDLTE(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldLTE(FieldRequirementID, v))
}

// RequirementIDContains applies the Contains predicate on the "requirement_id" field.
func RequirementIDContains(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldContains(FieldRequirementID, v))
}

// RequirementIDHasPrefix applies the HasPrefix predicate on the "requirement_id" field.
func RequirementIDHasPrefix(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldHasPrefix(FieldRequirementID, v))
}

// RequirementIDHasSuffix applies the HasSuffix predicate on the "requirement_id" field.
func RequirementIDHasSuffix(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldHasSuffix(FieldRequirementID, v))
}

// RequirementIDIsNil applies the IsNil predicate on the "requirement_id" field.
func RequirementIDIsNil() predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldIsNull(FieldRequirementID))
}

// RequirementIDNotNil applies the NotNil predicate on the "requirement_id" field.
func RequirementIDNotNil() predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldNotNull(FieldRequirementID))
}

// RequirementIDEqualFold applies the EqualFold predicate on the "requirement_id" field.
func RequirementIDEqualFold(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldEqualFold(FieldRequirementID, v))
}

// RequirementIDContainsFold applies the ContainsFold predicate on the "requirement_id" field.
func RequirementIDContainsFold(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldContainsFold(FieldRequirementID, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldContainsFold(FieldEventType, v))
}

// EventDateEQ applies the EQ predicate on the "event_date" field.
func EventDateEQ(v time.Time) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldEQ(FieldEventDate, v))
}

// EventDateNEQ applies the NEQ predicate on the "event_date" field.
func EventDateNEQ(v time.Time) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldNEQ(FieldEventDate, v))
}

// EventDateIn applies the In predicate on the "event_date" field.
func EventDateIn(vs ...time.Time) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldIn(FieldEventDate, vs...))
}

// EventDateNotIn applies the NotIn predicate on the "event_date" field.
func EventDateNotIn(vs ...time.Time) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldNotIn(FieldEventDate, vs...))
}

// EventDateGT applies the GT predicate on the "event_date" field.
func EventDateGT(v time.Time) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldGT(FieldEventDate, v))
}

// EventDateGTE applies the GTE predicate on the "event_date" field.
func EventDateGTE(v time.Time) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldGTE(FieldEventDate, v))
}

// EventDateLT applies the LT predicate on the "event_date" field.
func EventDateLT(v time.Time) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldLT(FieldEventDate, v))
}

// EventDateLTE applies the LTE predicate on the "event_date" field.
func EventDateLTE(v time.Time) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldLTE(FieldEventDate, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldContainsFold(FieldDescription, v))
}

// OldStatusEQ applies the EQ predicate on the "old_status" field.
func OldStatusEQ(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldEQ(FieldOldStatus, v))
}

// OldStatusNEQ applies the NEQ predicate on the "old_status" field.
func OldStatusNEQ(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldNEQ(FieldOldStatus, v))
}

// OldStatusIn applies the In predicate on the "old_status" field.
func OldStatusIn(vs ...string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldIn(FieldOldStatus, vs...))
}

// OldStatusNotIn applies the NotIn predicate on the "old_status" field.
func OldStatusNotIn(vs ...string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldNotIn(FieldOldStatus, vs...))
}

// OldStatusGT applies the GT predicate on the "old_status" field.
func OldStatusGT(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldGT(FieldOldStatus, v))
}

// OldStatusGTE applies the GTE predicate on the "old_status" field.
func OldStatusGTE(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldGTE(FieldOldStatus, v))
}

// OldStatusLT applies the LT predicate on the "old_status" field.
func OldStatusLT(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldLT(FieldOldStatus, v))
}

// OldStatusLTE applies the LTE predicate on the "old_status" field.
func OldStatusLTE(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldLTE(FieldOldStatus, v))
}

// OldStatusContains applies the Contains predicate on the "old_status" field.
func OldStatusContains(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldContains(FieldOldStatus, v))
}

// OldStatusHasPrefix applies the HasPrefix predicate on the "old_status" field.
func OldStatusHasPrefix(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldHasPrefix(FieldOldStatus, v))
}

// OldStatusHasSuffix applies the HasSuffix predicate on the "old_status" field.
func OldStatusHasSuffix(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldHasSuffix(FieldOldStatus, v))
}

// OldStatusIsNil applies the IsNil predicate on the "old_status" field.
func OldStatusIsNil() predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldIsNull(FieldOldStatus))
}

// OldStatusNotNil applies the NotNil predicate on the "old_status" field.
func OldStatusNotNil() predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldNotNull(FieldOldStatus))
}

// OldStatusEqualFold applies the EqualFold predicate on the "old_status" field.
func OldStatusEqualFold(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldEqualFold(FieldOldStatus, v))
}

// OldStatusContainsFold applies the ContainsFold predicate on the "old_status" field.
func OldStatusContainsFold(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldContainsFold(FieldOldStatus, v))
}

// NewStatusEQ applies the EQ predicate on the "new_status" field.
func NewStatusEQ(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldEQ(FieldNewStatus, v))
}

// NewStatusNEQ applies the NEQ predicate on the "new_status" field.
func NewStatusNEQ(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldNEQ(FieldNewStatus, v))
}

// NewStatusIn applies the In predicate on the "new_status" field.
func NewStatusIn(vs ...string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldIn(FieldNewStatus, vs...))
}

// NewStatusNotIn applies the NotIn predicate on the "new_status" field.
func NewStatusNotIn(vs ...string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldNotIn(FieldNewStatus, vs...))
}

// NewStatusGT applies the GT predicate on the "new_status" field.
func NewStatusGT(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldGT(FieldNewStatus, v))
}

// NewStatusGTE applies the GTE predicate on the "new_status" field.
func NewStatusGTE(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldGTE(FieldNewStatus, v))
}

// NewStatusLT applies the LT predicate on the "new_status" field.
func NewStatusLT(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldLT(FieldNewStatus, v))
}

// NewStatusLTE applies the LTE predicate on the "new_status" field.
func NewStatusLTE(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldLTE(FieldNewStatus, v))
}

// NewStatusContains applies the Contains predicate on the "new_status" field.
func NewStatusContains(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldContains(FieldNewStatus, v))
}

// NewStatusHasPrefix applies the HasPrefix predicate on the "new_status" field.
func NewStatusHasPrefix(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldHasPrefix(FieldNewStatus, v))
}

// NewStatusHasSuffix applies the HasSuffix predicate on the "new_status" field.
func NewStatusHasSuffix(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldHasSuffix(FieldNewStatus, v))
}

// NewStatusIsNil applies the IsNil predicate on the "new_status" field.
func NewStatusIsNil() predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldIsNull(FieldNewStatus))
}

// NewStatusNotNil applies the NotNil predicate on the "new_status" field.
func NewStatusNotNil() predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldNotNull(FieldNewStatus))
}

// NewStatusEqualFold applies the EqualFold predicate on the "new_status" field.
func NewStatusEqualFold(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldEqualFold(FieldNewStatus, v))
}

// NewStatusContainsFold applies the ContainsFold predicate on the "new_status" field.
func NewStatusContainsFold(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldContainsFold(FieldNewStatus, v))
}

// SubmittedByEQ applies the EQ predicate on the "submitted_by" field.
func SubmittedByEQ(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldEQ(FieldSubmittedBy, v))
}

// SubmittedByNEQ applies the NEQ predicate on the "submitted_by" field.
func SubmittedByNEQ(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldNEQ(FieldSubmittedBy, v))
}

// SubmittedByIn applies the In predicate on the "submitted_by" field.
func SubmittedByIn(vs ...string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldIn(FieldSubmittedBy, vs...))
}

// SubmittedByNotIn applies the NotIn predicate on the "submitted_by" field.
func SubmittedByNotIn(vs ...string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldNotIn(FieldSubmittedBy, vs...))
}

// SubmittedByGT applies the GT predicate on the "submitted_by" field.
func SubmittedByGT(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldGT(FieldSubmittedBy, v))
}

// SubmittedByGTE applies the GTE predicate on the "submitted_by" field.
func SubmittedByGTE(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldGTE(FieldSubmittedBy, v))
}

// SubmittedByLT applies the LT predicate on the "submitted_by" field.
func SubmittedByLT(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldLT(FieldSubmittedBy, v))
}

// SubmittedByLTE applies the LTE predicate on the "submitted_by" field.
func SubmittedByLTE(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldLTE(FieldSubmittedBy, v))
}

// SubmittedByContains applies the Contains predicate on the "submitted_by" field.
func SubmittedByContains(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldContains(FieldSubmittedBy, v))
}

// SubmittedByHasPrefix applies the HasPrefix predicate on the "submitted_by" field.
func SubmittedByHasPrefix(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldHasPrefix(FieldSubmittedBy, v))
}

// SubmittedByHasSuffix applies the HasSuffix predicate on the "submitted_by" field.
func SubmittedByHasSuffix(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldHasSuffix(FieldSubmittedBy, v))
}

// SubmittedByIsNil applies the IsNil predicate on the "submitted_by" field.
func SubmittedByIsNil() predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldIsNull(FieldSubmittedBy))
}

// SubmittedByNotNil applies the NotNil predicate on the "submitted_by" field.
func SubmittedByNotNil() predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldNotNull(FieldSubmittedBy))
}

// SubmittedByEqualFold applies the EqualFold predicate on the "submitted_by" field.
func SubmittedByEqualFold(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldEqualFold(FieldSubmittedBy, v))
}

// SubmittedByContainsFold applies the ContainsFold predicate on the "submitted_by" field.
func SubmittedByContainsFold(v string) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldContainsFold(FieldSubmittedBy, v))
}

// DocumentsIsNil applies the IsNil predicate on the "documents" field.
func DocumentsIsNil() predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldIsNull(FieldDocuments))
}

// DocumentsNotNil applies the NotNil predicate on the "documents" field.
func DocumentsNotNil() predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldNotNull(FieldDocuments))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// HasLoan applies the HasEdge predicate on the "loan" edge.
func HasLoan() predicate.ComplianceEvent {
	return predicate.ComplianceEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LoanTable, LoanColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLoanWith applies the HasEdge predicate on the "loan" edge with a given conditions (other predicates).
func HasLoanWith(preds ...predicate.Loan) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(func(s *sql.Selector) {
		step := newLoanStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ComplianceEvent) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ComplianceEvent) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ComplianceEvent) predicate.ComplianceEvent {
	return predicate.ComplianceEvent(sql.NotPredicates(p))
}
