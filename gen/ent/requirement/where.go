// Code generated by ent, DO NOT EDIT.

package requirement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/loanguard/loanguard/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Requirement {
	return predicate.Requirement(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Requirement {
	return predicate.Requirement(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Requirement {
	return predicate.Requirement(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Requirement {
	return predicate.Requirement(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Requirement {
	return predicate.Requirement(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Requirement {
	return predicate.Requirement(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Requirement {
	return predicate.Requirement(sql.FieldLTE(FieldID, id))
}

// LoanID applies equality check predicate on the "loan_id" field. It's identical to LoanIDEQ.
func LoanID(v uuid.UUID) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldLoanID, v))
}

// RequirementID applies equality check predicate on the "requirement_id" field. It's identical to RequirementIDEQ.
func RequirementID(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldRequirementID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldTitle, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldCategory, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldDescription, v))
}

// PlainLanguageSummary applies equality check predicate on the "plain_language_summary" field. It's identical to PlainLanguageSummaryEQ.
func PlainLanguageSummary(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldPlainLanguageSummary, v))
}

// OriginalText applies equality check predicate on the "original_text" field. It's identical to OriginalTextEQ.
func OriginalText(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldOriginalText, v))
}

// DocumentReference applies equality check predicate on the "document_reference" field. It's identical to DocumentReferenceEQ.
func DocumentReference(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldDocumentReference, v))
}

// Severity applies equality check predicate on the "severity" field. It's identical to SeverityEQ.
func Severity(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldSeverity, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldStatus, v))
}

// CurePeriodDays applies equality check predicate on the "cure_period_days" field. It's identical to CurePeriodDaysEQ.
func CurePeriodDays(v int) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldCurePeriodDays, v))
}

// LastChecked applies equality check predicate on the "last_checked" field. It's identical to LastCheckedEQ.
func LastChecked(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldLastChecked, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldUpdatedAt, v))
}

// LoanIDEQ applies the EQ predicate on the "loan_id" field.
func LoanIDEQ(v uuid.UUID) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldLoanID, v))
}

// LoanIDNEQ applies the NEQ predicate on the "loan_id" field.
func LoanIDNEQ(v uuid.UUID) predicate.Requirement {
	return predicate.Requirement(sql.FieldNEQ(FieldLoanID, v))
}

// LoanIDIn applies the In predicate on the "loan_id" field.
func LoanIDIn(vs ...uuid.UUID) predicate.Requirement {
	return predicate.Requirement(sql.FieldIn(FieldLoanID, vs...))
}

// LoanIDNotIn applies the NotIn predicate on the "loan_id" field.
func LoanIDNotIn(vs ...uuid.UUID) predicate.Requirement {
	return predicate.Requirement(sql.FieldNotIn(FieldLoanID, vs...))
}

// RequirementIDEQ applies the EQ predicate on the "requirement_id" field.
func RequirementIDEQ(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldRequirementID, v))
}

// RequirementIDNEQ applies the NEQ predicate on the "requirement_id" field.
func RequirementIDNEQ(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldNEQ(FieldRequirementID, v))
}

// RequirementIDIn applies the In predicate on the "requirement_id" field.
func RequirementIDIn(vs ...string) predicate.Requirement {
	return predicate.Requirement(sql.FieldIn(FieldRequirementID, vs...))
}

// RequirementIDNotIn applies the NotIn predicate on the "requirement_id" field.
func RequirementIDNotIn(vs ...string) predicate.Requirement {
	return predicate.Requirement(sql.FieldNotIn(FieldRequirementID, vs...))
}

// RequirementIDGT applies the GT predicate on the "requirement_id" field.
func RequirementIDGT(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldGT(FieldRequirementID, v))
}

// RequirementIDGTE applies the GTE predicate on the "requirement_id" field.
func RequirementIDGTE(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldGTE(FieldRequirementID, v))
}

// RequirementIDLT applies the LT predicate on the "requirement_id" field.
func RequirementIDLT(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldLT(FieldRequirementID, v))
}

// RequirementIDLTE applies the LTE predicate on the "requirement_id" field.
func RequirementIDLTE(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldLTE(FieldRequirementID, v))
}

// RequirementIDContains applies the Contains predicate on the "requirement_id" field.
func RequirementIDContains(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldContains(FieldRequirementID, v))
}

// RequirementIDHasPrefix applies the HasPrefix predicate on the "requirement_id" field.
func RequirementIDHasPrefix(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldHasPrefix(FieldRequirementID, v))
}

// RequirementIDHasSuffix applies the HasSuffix predicate on the "requirement_id" field.
func RequirementIDHasSuffix(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldHasSuffix(FieldRequirementID, v))
}

// RequirementIDEqualFold applies the EqualFold predicate on the "requirement_id" field.
func RequirementIDEqualFold(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEqualFold(FieldRequirementID, v))
}

// RequirementIDContainsFold applies the ContainsFold predicate on the "requirement_id" field.
func RequirementIDContainsFold(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldContainsFold(FieldRequirementID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Requirement {
	return predicate.Requirement(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Requirement {
	return predicate.Requirement(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldContainsFold(FieldTitle, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Requirement {
	return predicate.Requirement(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Requirement {
	return predicate.Requirement(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldContainsFold(FieldCategory, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Requirement {
	return predicate.Requirement(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Requirement {
	return predicate.Requirement(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Requirement {
	return predicate.Requirement(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Requirement {
	return predicate.Requirement(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldContainsFold(FieldDescription, v))
}

// PlainLanguageSummaryEQ applies the EQ predicate on the "plain_language_summary" field.
func PlainLanguageSummaryEQ(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldPlainLanguageSummary, v))
}

// PlainLanguageSummaryNEQ applies the NEQ predicate on the "plain_language_summary" field.
func PlainLanguageSummaryNEQ(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldNEQ(FieldPlainLanguageSummary, v))
}

// PlainLanguageSummaryIn applies the In predicate on the "plain_language_summary" field.
func PlainLanguageSummaryIn(vs ...string) predicate.Requirement {
	return predicate.Requirement(sql.FieldIn(FieldPlainLanguageSummary, vs...))
}

// PlainLanguageSummaryNotIn applies the NotIn predicate on the "plain_language_summary" field.
func PlainLanguageSummaryNotIn(vs ...string) predicate.Requirement {
	return predicate.Requirement(sql.FieldNotIn(FieldPlainLanguageSummary, vs...))
}

// PlainLanguageSummaryGT applies the GT predicate on the "plain_language_summary" field.
func PlainLanguageSummaryGT(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldGT(FieldPlainLanguageSummary, v))
}

// PlainLanguageSummaryGTE applies the GTE predicate on the "plain_language_summary" field.
func PlainLanguageSummaryGTE(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldGTE(FieldPlainLanguageSummary, v))
}

// PlainLanguageSummaryLT applies the LT predicate on the "plain_language_summary" field.
func PlainLanguageSummaryLT(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldLT(FieldPlainLanguageSummary, v))
}

// PlainLanguageSummaryLTE applies the LTE predicate on the "plain_language_summary" field.
func PlainLanguageSummaryLTE(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldLTE(FieldPlainLanguageSummary, v))
}

// PlainLanguageSummaryContains applies the Contains predicate on the "plain_language_summary" field.
func PlainLanguageSummaryContains(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldContains(FieldPlainLanguageSummary, v))
}

// PlainLanguageSummaryHasPrefix applies the HasPrefix predicate on the "plain_language_summary" field.
func PlainLanguageSummaryHasPrefix(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldHasPrefix(FieldPlainLanguageSummary, v))
}

// PlainLanguageSummaryHasSuffix applies the HasSuffix predicate on the "plain_language_summary" field.
func PlainLanguageSummaryHasSuffix(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldHasSuffix(FieldPlainLanguageSummary, v))
}

// PlainLanguageSummaryIsNil applies the IsNil predicate on the "plain_language_summary" field.
func PlainLanguageSummaryIsNil() predicate.Requirement {
	return predicate.Requirement(sql.FieldIsNull(FieldPlainLanguageSummary))
}

// PlainLanguageSummaryNotNil applies the NotNil predicate on the "plain_language_summary" field.
func PlainLanguageSummaryNotNil() predicate.Requirement {
	return predicate.Requirement(sql.FieldNotNull(FieldPlainLanguageSummary))
}

// PlainLanguageSummaryEqualFold applies the EqualFold predicate on the "plain_language_summary" field.
func PlainLanguageSummaryEqualFold(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEqualFold(FieldPlainLanguageSummary, v))
}

// PlainLanguageSummaryContainsFold applies the ContainsFold predicate on the "plain_language_summary" field.
func PlainLanguageSummaryContainsFold(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldContainsFold(FieldPlainLanguageSummary, v))
}

// OriginalTextEQ applies the EQ predicate on the "original_text" field.
func OriginalTextEQ(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldOriginalText, v))
}

// OriginalTextNEQ applies the NEQ predicate on the "original_text" field.
func OriginalTextNEQ(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldNEQ(FieldOriginalText, v))
}

// OriginalTextIn applies the In predicate on the "original_text" field.
func OriginalTextIn(vs ...string) predicate.Requirement {
	return predicate.Requirement(sql.FieldIn(FieldOriginalText, vs...))
}

// OriginalTextNotIn applies the NotIn predicate on the "original_text" field.
func OriginalTextNotIn(vs ...string) predicate.Requirement {
	return predicate.Requirement(sql.FieldNotIn(FieldOriginalText, vs...))
}

// OriginalTextGT applies the GT predicate on the "original_text" field.
func OriginalTextGT(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldGT(FieldOriginalText, v))
}

// OriginalTextGTE applies the GTE predicate on the "original_text" field.
func OriginalTextGTE(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldGTE(FieldOriginalText, v))
}

// OriginalTextLT applies the LT predicate on the "original_text" field.
func OriginalTextLT(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldLT(FieldOriginalText, v))
}

// OriginalTextLTE applies the LTE predicate on the "original_text" field.
func OriginalTextLTE(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldLTE(FieldOriginalText, v))
}

// OriginalTextContains applies the Contains predicate on the "original_text" field.
func OriginalTextContains(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldContains(FieldOriginalText, v))
}

// OriginalTextHasPrefix applies the HasPrefix predicate on the "original_text" field.
func OriginalTextHasPrefix(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldHasPrefix(FieldOriginalText, v))
}

// OriginalTextHasSuffix applies the HasSuffix predicate on the "original_text" field.
func OriginalTextHasSuffix(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldHasSuffix(FieldOriginalText, v))
}

// OriginalTextIsNil applies the IsNil predicate on the "original_text" field.
func OriginalTextIsNil() predicate.Requirement {
	return predicate.Requirement(sql.FieldIsNull(FieldOriginalText))
}

// OriginalTextNotNil applies the NotNil predicate on the "original_text" field.
func OriginalTextNotNil() predicate.Requirement {
	return predicate.Requirement(sql.FieldNotNull(FieldOriginalText))
}

// OriginalTextEqualFold applies the EqualFold predicate on the "original_text" field.
func OriginalTextEqualFold(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEqualFold(FieldOriginalText, v))
}

// OriginalTextContainsFold applies the ContainsFold predicate on the "original_text" field.
func OriginalTextContainsFold(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldContainsFold(FieldOriginalText, v))
}

// DocumentReferenceEQ applies the EQ predicate on the "document_reference" field.
func DocumentReferenceEQ(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldDocumentReference, v))
}

// DocumentReferenceNEQ applies the NEQ predicate on the "document_reference" field.
func DocumentReferenceNEQ(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldNEQ(FieldDocumentReference, v))
}

// DocumentReferenceIn applies the In predicate on the "document_reference" field.
func DocumentReferenceIn(vs ...string) predicate.Requirement {
	return predicate.Requirement(sql.FieldIn(FieldDocumentReference, vs...))
}

// DocumentReferenceNotIn applies the NotIn predicate on the "document_reference" field.
func DocumentReferenceNotIn(vs ...string) predicate.Requirement {
	return predicate.Requirement(sql.FieldNotIn(FieldDocumentReference, vs...))
}

// DocumentReferenceGT applies the GT predicate on the "document_reference" field.
func DocumentReferenceGT(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldGT(FieldDocumentReference, v))
}

// DocumentReferenceGTE applies the GTE predicate on the "document_reference" field.
func DocumentReferenceGTE(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldGTE(FieldDocumentReference, v))
}

// DocumentReferenceLT applies the LT predicate on the "document_reference" field.
func DocumentReferenceLT(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldLT(FieldDocumentReference, v))
}

// DocumentReferenceLTE applies the LTE predicate on the "document_reference" field.
func DocumentReferenceLTE(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldLTE(FieldDocumentReference, v))
}

// DocumentReferenceContains applies the Contains predicate on the "document_reference" field.
func DocumentReferenceContains(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldContains(FieldDocumentReference, v))
}

// DocumentReferenceHasPrefix applies the HasPrefix predicate on the "document_reference" field.
func DocumentReferenceHasPrefix(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldHasPrefix(FieldDocumentReference, v))
}

// DocumentReferenceHasSuffix applies the HasSuffix predicate on the "document_reference" field.
func DocumentReferenceHasSuffix(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldHasSuffix(FieldDocumentReference, v))
}

// DocumentReferenceIsNil applies the IsNil predicate on the "document_reference" field.
func DocumentReferenceIsNil() predicate.Requirement {
	return predicate.Requirement(sql.FieldIsNull(FieldDocumentReference))
}

// DocumentReferenceNotNil applies the NotNil predicate on the "document_reference" field.
func DocumentReferenceNotNil() predicate.Requirement {
	return predicate.Requirement(sql.FieldNotNull(FieldDocumentReference))
}

// DocumentReferenceEqualFold applies the EqualFold predicate on the "document_reference" field.
func DocumentReferenceEqualFold(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEqualFold(FieldDocumentReference, v))
}

// DocumentReferenceContainsFold applies the ContainsFold predicate on the "document_reference" field.
func DocumentReferenceContainsFold(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldContainsFold(FieldDocumentReference, v))
}

// DeadlineIsNil applies the IsNil predicate on the "deadline" field.
func DeadlineIsNil() predicate.Requirement {
	return predicate.Requirement(sql.FieldIsNull(FieldDeadline))
}

// DeadlineNotNil applies the NotNil predicate on the "deadline" field.
func DeadlineNotNil() predicate.Requirement {
	return predicate.Requirement(sql.FieldNotNull(FieldDeadline))
}

// ThresholdIsNil applies the IsNil predicate on the "threshold" field.
func ThresholdIsNil() predicate.Requirement {
	return predicate.Requirement(sql.FieldIsNull(FieldThreshold))
}

// ThresholdNotNil applies the NotNil predicate on the "threshold" field.
func ThresholdNotNil() predicate.Requirement {
	return predicate.Requirement(sql.FieldNotNull(FieldThreshold))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...string) predicate.Requirement {
	return predicate.Requirement(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...string) predicate.Requirement {
	return predicate.Requirement(sql.FieldNotIn(FieldSeverity, vs...))
}

// SeverityGT applies the GT predicate on the "severity" field.
func SeverityGT(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldGT(FieldSeverity, v))
}

// SeverityGTE applies the GTE predicate on the "severity" field.
func SeverityGTE(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldGTE(FieldSeverity, v))
}

// SeverityLT applies the LT predicate on the "severity" field.
func SeverityLT(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldLT(FieldSeverity, v))
}

// SeverityLTE applies the LTE predicate on the "severity" field.
func SeverityLTE(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldLTE(FieldSeverity, v))
}

// SeverityContains applies the Contains predicate on the "severity" field.
func SeverityContains(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldContains(FieldSeverity, v))
}

// SeverityHasPrefix applies the HasPrefix predicate on the "severity" field.
func SeverityHasPrefix(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldHasPrefix(FieldSeverity, v))
}

// SeverityHasSuffix applies the HasSuffix predicate on the "severity" field.
func SeverityHasSuffix(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldHasSuffix(FieldSeverity, v))
}

// SeverityEqualFold applies the EqualFold predicate on the "severity" field.
func SeverityEqualFold(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEqualFold(FieldSeverity, v))
}

// SeverityContainsFold applies the ContainsFold predicate on the "severity" field.
func SeverityContainsFold(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldContainsFold(FieldSeverity, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Requirement {
	return predicate.Requirement(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Requirement {
	return predicate.Requirement(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldContainsFold(FieldStatus, v))
}

// CurePeriodDaysEQ applies the EQ predicate on the "cure_period_days" field.
func CurePeriodDaysEQ(v int) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldCurePeriodDays, v))
}

// CurePeriodDaysNEQ applies the NEQ predicate on the "cure_period_days" field.
func CurePeriodDaysNEQ(v int) predicate.Requirement {
	return predicate.Requirement(sql.FieldNEQ(FieldCurePeriodDays, v))
}

// CurePeriodDaysIn applies the In predicate on the "cure_period_days" field.
func CurePeriodDaysIn(vs ...int) predicate.Requirement {
	return predicate.Requirement(sql.FieldIn(FieldCurePeriodDays, vs...))
}

// CurePeriodDaysNotIn applies the NotIn predicate on the "cure_period_days" field.
func CurePeriodDaysNotIn(vs ...int) predicate.Requirement {
	return predicate.Requirement(sql.FieldNotIn(FieldCurePeriodDays, vs...))
}

// CurePeriodDaysGT applies the GT predicate on the "cure_period_days" field.
func CurePeriodDaysGT(v int) predicate.Requirement {
	return predicate.Requirement(sql.FieldGT(FieldCurePeriodDays, v))
}

// CurePeriodDaysGTE applies the GTE predicate on the "cure_period_days" field.
func CurePeriodDaysGTE(v int) predicate.Requirement {
	return predicate.Requirement(sql.FieldGTE(FieldCurePeriodDays, v))
}

// CurePeriodDaysLT applies the LT predicate on the "cure_period_days" field.
func CurePeriodDaysLT(v int) predicate.Requirement {
	return predicate.Requirement(sql.FieldLT(FieldCurePeriodDays, v))
}

// CurePeriodDaysLTE applies the LTE predicate on the "cure_period_days" field.
func CurePeriodDaysLTE(v int) predicate.Requirement {
	return predicate.Requirement(sql.FieldLTE(FieldCurePeriodDays, v))
}

// CurePeriodDaysIsNil applies the IsNil predicate on the "cure_period_days" field.
func CurePeriodDaysIsNil() predicate.Requirement {
	return predicate.Requirement(sql.FieldIsNull(FieldCurePeriodDays))
}

// CurePeriodDaysNotNil applies the NotNil predicate on the "cure_period_days" field.
func CurePeriodDaysNotNil() predicate.Requirement {
	return predicate.Requirement(sql.FieldNotNull(FieldCurePeriodDays))
}

// LastCheckedEQ applies the EQ predicate on the "last_checked" field.
func LastCheckedEQ(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldLastChecked, v))
}

// LastCheckedNEQ applies the NEQ predicate on the "last_checked" field.
func LastCheckedNEQ(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldNEQ(FieldLastChecked, v))
}

// LastCheckedIn applies the In predicate on the "last_checked" field.
func LastCheckedIn(vs ...time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldIn(FieldLastChecked, vs...))
}

// LastCheckedNotIn applies the NotIn predicate on the "last_checked" field.
func LastCheckedNotIn(vs ...time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldNotIn(FieldLastChecked, vs...))
}

// LastCheckedGT applies the GT predicate on the "last_checked" field.
func LastCheckedGT(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldGT(FieldLastChecked, v))
}

// LastCheckedGTE applies the GTE predicate on the "last_checked" field.
func LastCheckedGTE(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldGTE(FieldLastChecked, v))
}

// LastCheckedLT applies the LT predicate on the "last_checked" field.
func LastCheckedLT(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldLT(FieldLastChecked, v))
}

// LastCheckedLTE applies the LTE predicate on the "last_checked" field.
func LastCheckedLTE(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldLTE(FieldLastChecked, v))
}

// LastCheckedIsNil applies the IsNil predicate on the "last_checked" field.
func LastCheckedIsNil() predicate.Requirement {
	return predicate.Requirement(sql.FieldIsNull(FieldLastChecked))
}

// LastCheckedNotNil applies the NotNil predicate on the "last_checked" field.
func LastCheckedNotNil() predicate.Requirement {
	return predicate.Requirement(sql.FieldNotNull(FieldLastChecked))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Requirement {
	return predicate.Requirement(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Requirement {
	return predicate.Requirement(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Requirement {
	return predicate.Requirement(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Requirement {
	return predicate.Requirement(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldContainsFold(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasLoan applies the HasEdge predicate on the "loan" edge.
func HasLoan() predicate.Requirement {
	return predicate.Requirement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LoanTable, LoanColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLoanWith applies the HasEdge predicate on the "loan" edge with a given conditions (other predicates).
func HasLoanWith(preds ...predicate.Loan) predicate.Requirement {
	return predicate.Requirement(func(s *sql.Selector) {
		step := newLoanStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Requirement) predicate.Requirement {
	return predicate.Requirement(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Requirement) predicate.Requirement {
	return predicate.Requirement(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Requirement) predicate.Requirement {
	return predicate.Requirement(sql.NotPredicates(p))
}
