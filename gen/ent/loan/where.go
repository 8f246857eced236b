// Code generated by ent, DO NOT EDIT.

package loan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/loanguard/loanguard/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Loan {
	return predicate.Loan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Loan {
	return predicate.Loan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Loan {
	return predicate.Loan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Loan {
	return predicate.Loan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Loan {
	return predicate.Loan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Loan {
	return predicate.Loan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Loan {
	return predicate.Loan(sql.FieldLTE(FieldID, id))
}

// LoanID applies equality check predicate on the "loan_id" field. It's identical to LoanIDEQ.
func LoanID(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldLoanID, v))
}

// LoanName applies equality check predicate on the "loan_name" field. It's identical to LoanNameEQ.
func LoanName(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldLoanName, v))
}

// PropertyName applies equality check predicate on the "property_name" field. It's identical to PropertyNameEQ.
func PropertyName(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldPropertyName, v))
}

// BorrowerName applies equality check predicate on the "borrower_name" field. It's identical to BorrowerNameEQ.
func BorrowerName(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldBorrowerName, v))
}

// LenderName applies equality check predicate on the "lender_name" field. It's identical to LenderNameEQ.
func LenderName(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldLenderName, v))
}

// OriginalLoanAmount applies equality check predicate on the "original_loan_amount" field. It's identical to OriginalLoanAmountEQ.
func OriginalLoanAmount(v float64) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldOriginalLoanAmount, v))
}

// CurrentBalance applies equality check predicate on the "current_balance" field. It's identical to CurrentBalanceEQ.
func CurrentBalance(v float64) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldCurrentBalance, v))
}

// OriginationDate applies equality check predicate on the "origination_date" field. It's identical to OriginationDateEQ.
func OriginationDate(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldOriginationDate, v))
}

// MaturityDate applies equality check predicate on the "maturity_date" field. It's identical to MaturityDateEQ.
func MaturityDate(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldMaturityDate, v))
}

// ComplianceScore applies equality check predicate on the "compliance_score" field. It's identical to ComplianceScoreEQ.
func ComplianceScore(v int) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldComplianceScore, v))
}

// ExtractionDate applies equality check predicate on the "extraction_date" field. It's identical to ExtractionDateEQ.
func ExtractionDate(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldExtractionDate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldUpdatedAt, v))
}

// LoanIDEQ applies the EQ predicate on the "loan_id" field.
func LoanIDEQ(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldLoanID, v))
}

// LoanIDNEQ applies the NEQ predicate on the "loan_id" field.
func LoanIDNEQ(v string) predicate.Loan {
	return predicate.Loan(sql.FieldNEQ(FieldLoanID, v))
}

// LoanIDIn applies the In predicate on the "loan_id" field.
func LoanIDIn(vs ...string) predicate.Loan {
	return predicate.Loan(sql.FieldIn(FieldLoanID, vs...))
}

// LoanIDNotIn applies the NotIn predicate on the "loan_id" field.
func LoanIDNotIn(vs ...string) predicate.Loan {
	return predicate.Loan(sql.FieldNotIn(FieldLoanID, vs...))
}

// LoanIDGT applies the GT predicate on the "loan_id" field.
func LoanIDGT(v string) predicate.Loan {
	return predicate.Loan(sql.FieldGT(FieldLoanID, v))
}

// LoanIDGTE applies the GTE predicate on the "loan_id" field.
func LoanIDGTE(v string) predicate.Loan {
	return predicate.Loan(sql.FieldGTE(FieldLoanID, v))
}

// LoanIDLT applies the LT predicate on the "loan_id" field.
func LoanIDLT(v string) predicate.Loan {
	return predicate.Loan(sql.FieldLT(FieldLoanID, v))
}

// LoanIDLTE applies the LTE predicate on the "loan_id" field.
func LoanIDLTE(v string) predicate.Loan {
	return predicate.Loan(sql.FieldLTE(FieldLoanID, v))
}

// LoanIDContains applies the Contains predicate on the "loan_id" field.
func LoanIDContains(v string) predicate.Loan {
	return predicate.Loan(sql.FieldContains(FieldLoanID, v))
}

// LoanIDHasPrefix applies the HasPrefix predicate on the "loan_id" field.
func LoanIDHasPrefix(v string) predicate.Loan {
	return predicate.Loan(sql.FieldHasPrefix(FieldLoanID, v))
}

// LoanIDHasSuffix applies the HasSuffix predicate on the "loan_id" field.
func LoanIDHasSuffix(v string) predicate.Loan {
	return predicate.Loan(sql.FieldHasSuffix(FieldLoanID, v))
}

// LoanIDEqualFold applies the EqualFold predicate on the "loan_id" field.
func LoanIDEqualFold(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEqualFold(FieldLoanID, v))
}

// LoanIDContainsFold applies the ContainsFold predicate on the "loan_id" field.
func LoanIDContainsFold(v string) predicate.Loan {
	return predicate.Loan(sql.FieldContainsFold(FieldLoanID, v))
}

// LoanNameEQ applies the EQ predicate on the "loan_name" field.
func LoanNameEQ(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldLoanName, v))
}

// LoanNameNEQ applies the NEQ predicate on the "loan_name" field.
func LoanNameNEQ(v string) predicate.Loan {
	return predicate.Loan(sql.FieldNEQ(FieldLoanName, v))
}

// LoanNameIn applies the In predicate on the "loan_name" field.
func LoanNameIn(vs ...string) predicate.Loan {
	return predicate.Loan(sql.FieldIn(FieldLoanName, vs...))
}

// LoanNameNotIn applies the NotIn predicate on the "loan_name" field.
func LoanNameNotIn(vs ...string) predicate.Loan {
	return predicate.Loan(sql.FieldNotIn(FieldLoanName, vs...))
}

// LoanNameGT applies the GT predicate on the "loan_name" field.
func LoanNameGT(v string) predicate.Loan {
	return predicate.Loan(sql.FieldGT(FieldLoanName, v))
}

// LoanNameGTE applies the GTE predicate on the "loan_name" field.
func LoanNameGTE(v string) predicate.Loan {
	return predicate.Loan(sql.FieldGTE(FieldLoanName, v))
}

// LoanNameLT applies the LT predicate on the "loan_name" field.
func LoanNameLT(v string) predicate.Loan {
	return predicate.Loan(sql.FieldLT(FieldLoanName, v))
}

// LoanNameLTE applies the LTE predicate on the "loan_name" field.
func LoanNameLTE(v string) predicate.Loan {
	return predicate.Loan(sql.FieldLTE(FieldLoanName, v))
}

// LoanNameContains applies the Contains predicate on the "loan_name" field.
func LoanNameContains(v string) predicate.Loan {
	return predicate.Loan(sql.FieldContains(FieldLoanName, v))
}

// LoanNameHasPrefix applies the HasPrefix predicate on the "loan_name" field.
func LoanNameHasPrefix(v string) predicate.Loan {
	return predicate.Loan(sql.FieldHasPrefix(FieldLoanName, v))
}

// LoanNameHasSuffix applies the HasSuffix predicate on the "loan_name" field.
func LoanNameHasSuffix(v string) predicate.Loan {
	return predicate.Loan(sql.FieldHasSuffix(FieldLoanName, v))
}

// LoanNameIsNil applies the IsNil predicate on the "loan_name" field.
func LoanNameIsNil() predicate.Loan {
	return predicate.Loan(sql.FieldIsNull(FieldLoanName))
}

// LoanNameNotNil applies the NotNil predicate on the "loan_name" field.
func LoanNameNotNil() predicate.Loan {
	return predicate.Loan(sql.FieldNotNull(FieldLoanName))
}

// LoanNameEqualFold applies the EqualFold predicate on the "loan_name" field.
func LoanNameEqualFold(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEqualFold(FieldLoanName, v))
}

// LoanNameContainsFold applies the ContainsFold predicate on the "loan_name" field.
func LoanNameContainsFold(v string) predicate.Loan {
	return predicate.Loan(sql.FieldContainsFold(FieldLoanName, v))
}

// PropertyNameEQ applies the EQ predicate on the "property_name" field.
func PropertyNameEQ(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldPropertyName, v))
}

// PropertyNameNEQ applies the NEQ predicate on the "property_name" field.
func PropertyNameNEQ(v string) predicate.Loan {
	return predicate.Loan(sql.FieldNEQ(FieldPropertyName, v))
}

// PropertyNameIn applies the In predicate on the "property_name" field.
func PropertyNameIn(vs ...string) predicate.Loan {
	return predicate.Loan(sql.FieldIn(FieldPropertyName, vs...))
}

// PropertyNameNotIn applies the NotIn predicate on the "property_name" field.
func PropertyNameNotIn(vs ...string) predicate.Loan {
	return predicate.Loan(sql.FieldNotIn(FieldPropertyName, vs...))
}

// PropertyNameGT applies the GT predicate on the "property_name" field.
func PropertyNameGT(v string) predicate.Loan {
	return predicate.Loan(sql.FieldGT(FieldPropertyName, v))
}

// PropertyNameGTE applies the GTE predicate on the "property_name" field.
func PropertyNameGTE(v string) predicate.Loan {
	return predicate.Loan(sql.FieldGTE(FieldPropertyName, v))
}

// PropertyNameLT applies the LT predicate on the "property_name" field.
func PropertyNameLT(v string) predicate.Loan {
	return predicate.Loan(sql.FieldLT(FieldPropertyName, v))
}

// PropertyNameLTE applies the LTE predicate on the "property_name" field.
func PropertyNameLTE(v string) predicate.Loan {
	return predicate.Loan(sql.FieldLTE(FieldPropertyName, v))
}

// PropertyNameContains applies the Contains predicate on the "property_name" field.
func PropertyNameContains(v string) predicate.Loan {
	return predicate.Loan(sql.FieldContains(FieldPropertyName, v))
}

// PropertyNameHasPrefix applies the HasPrefix predicate on the "property_name" field.
func PropertyNameHasPrefix(v string) predicate.Loan {
	return predicate.Loan(sql.FieldHasPrefix(FieldPropertyName, v))
}

// PropertyNameHasSuffix applies the HasSuffix predicate on the "property_name" field.
func PropertyNameHasSuffix(v string) predicate.Loan {
	return predicate.Loan(sql.FieldHasSuffix(FieldPropertyName, v))
}

// PropertyNameEqualFold applies the EqualFold predicate on the "property_name" field.
func PropertyNameEqualFold(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEqualFold(FieldPropertyName, v))
}

// PropertyNameContainsFold applies the ContainsFold predicate on the "property_name" field.
func PropertyNameContainsFold(v string) predicate.Loan {
	return predicate.Loan(sql.FieldContainsFold(FieldPropertyName, v))
}

// BorrowerNameEQ applies the EQ predicate on the "borrower_name" field.
func BorrowerNameEQ(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldBorrowerName, v))
}

// BorrowerNameNEQ applies the NEQ predicate on the "borrower_name" field.
func BorrowerNameNEQ(v string) predicate.Loan {
	return predicate.Loan(sql.FieldNEQ(FieldBorrowerName, v))
}

// BorrowerNameIn applies the In predicate on the "borrower_name" field.
func BorrowerNameIn(vs ...string) predicate.Loan {
	return predicate.Loan(sql.FieldIn(FieldBorrowerName, vs...))
}

// BorrowerNameNotIn applies the NotIn predicate on the "borrower_name" field.
func BorrowerNameNotIn(vs ...string) predicate.Loan {
	return predicate.Loan(sql.FieldNotIn(FieldBorrowerName, vs...))
}

// BorrowerNameGT applies the GT predicate on the "borrower_name" field.
func BorrowerNameGT(v string) predicate.Loan {
	return predicate.Loan(sql.FieldGT(FieldBorrowerName, v))
}

// BorrowerNameGTE applies the GTE predicate on the "borrower_name" field.
func BorrowerNameGTE(v string) predicate.Loan {
	return predicate.Loan(sql.FieldGTE(FieldBorrowerName, v))
}

// BorrowerNameLT applies the LT predicate on the "borrower_name" field.
func BorrowerNameLT(v string) predicate.Loan {
	return predicate.Loan(sql.FieldLT(FieldBorrowerName, v))
}

// BorrowerNameLTE applies the LTE predicate on the "borrower_name" field.
func BorrowerNameLTE(v string) predicate.Loan {
	return predicate.Loan(sql.FieldLTE(FieldBorrowerName, v))
}

// BorrowerNameContains applies the Contains predicate on the "borrower_name" field.
func BorrowerNameContains(v string) predicate.Loan {
	return predicate.Loan(sql.FieldContains(FieldBorrowerName, v))
}

// BorrowerNameHasPrefix applies the HasPrefix predicate on the "borrower_name" field.
func BorrowerNameHasPrefix(v string) predicate.Loan {
	return predicate.Loan(sql.FieldHasPrefix(FieldBorrowerName, v))
}

// BorrowerNameHasSuffix applies the HasSuffix predicate on the "borrower_name" field.
func BorrowerNameHasSuffix(v string) predicate.Loan {
	return predicate.Loan(sql.FieldHasSuffix(FieldBorrowerName, v))
}

// BorrowerNameIsNil applies the IsNil predicate on the "borrower_name" field.
func BorrowerNameIsNil() predicate.Loan {
	return predicate.Loan(sql.FieldIsNull(FieldBorrowerName))
}

// BorrowerNameNotNil applies the NotNil predicate on the "borrower_name" field.
func BorrowerNameNotNil() predicate.Loan {
	return predicate.Loan(sql.FieldNotNull(FieldBorrowerName))
}

// BorrowerNameEqualFold applies the EqualFold predicate on the "borrower_name" field.
func BorrowerNameEqualFold(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEqualFold(FieldBorrowerName, v))
}

// BorrowerNameContainsFold applies the ContainsFold predicate on the "borrower_name" field.
func BorrowerNameContainsFold(v string) predicate.Loan {
	return predicate.Loan(sql.FieldContainsFold(FieldBorrowerName, v))
}

// LenderNameEQ applies the EQ predicate on the "lender_name" field.
func LenderNameEQ(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldLenderName, v))
}

// LenderNameNEQ applies the NEQ predicate on the "lender_name" field.
func LenderNameNEQ(v string) predicate.Loan {
	return predicate.Loan(sql.FieldNEQ(FieldLenderName, v))
}

// LenderNameIn applies the In predicate on the "lender_name" field.
func LenderNameIn(vs ...string) predicate.Loan {
	return predicate.Loan(sql.FieldIn(FieldLenderName, vs...))
}

// LenderNameNotIn applies the NotIn predicate on the "lender_name" field.
func LenderNameNotIn(vs ...string) predicate.Loan {
	return predicate.Loan(sql.FieldNotIn(FieldLenderName, vs...))
}

// LenderNameGT applies the GT predicate on the "lender_name" field.
func LenderNameGT(v string) predicate.Loan {
	return predicate.Loan(sql.FieldGT(FieldLenderName, v))
}

// LenderNameGTE applies the GTE predicate on the "lender_name" field.
func LenderNameGTE(v string) predicate.Loan {
	return predicate.Loan(sql.FieldGTE(FieldLenderName, v))
}

// LenderNameLT applies the LT predicate on the "lender_name" field.
func LenderNameLT(v string) predicate.Loan {
	return predicate.Loan(sql.FieldLT(FieldLenderName, v))
}

// LenderNameLTE applies the LTE predicate on the "lender_name" field.
func LenderNameLTE(v string) predicate.Loan {
	return predicate.Loan(sql.FieldLTE(FieldLenderName, v))
}

// LenderNameContains applies the Contains predicate on the "lender_name" field.
func LenderNameContains(v string) predicate.Loan {
	return predicate.Loan(sql.FieldContains(FieldLenderName, v))
}

// LenderNameHasPrefix applies the HasPrefix predicate on the "lender_name" field.
func LenderNameHasPrefix(v string) predicate.Loan {
	return predicate.Loan(sql.FieldHasPrefix(FieldLenderName, v))
}

// LenderNameHasSuffix applies the HasSuffix predicate on the "lender_name" field.
func LenderNameHasSuffix(v string) predicate.Loan {
	return predicate.Loan(sql.FieldHasSuffix(FieldLenderName, v))
}

// LenderNameIsNil applies the IsNil predicate on the "lender_name" field.
func LenderNameIsNil() predicate.Loan {
	return predicate.Loan(sql.FieldIsNull(FieldLenderName))
}

// LenderNameNotNil applies the NotNil predicate on the "lender_name" field.
func LenderNameNotNil() predicate.Loan {
	return predicate.Loan(sql.FieldNotNull(FieldLenderName))
}

// LenderNameEqualFold applies the EqualFold predicate on the "lender_name" field.
func LenderNameEqualFold(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEqualFold(FieldLenderName, v))
}

// LenderNameContainsFold applies the ContainsFold predicate on the "lender_name" field.
func LenderNameContainsFold(v string) predicate.Loan {
	return predicate.Loan(sql.FieldContainsFold(FieldLenderName, v))
}

// OriginalLoanAmountEQ applies the EQ predicate on the "original_loan_amount" field.
func OriginalLoanAmountEQ(v float64) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldOriginalLoanAmount, v))
}

// OriginalLoanAmountNEQ applies the NEQ predicate on the "original_loan_amount" field.
func OriginalLoanAmountNEQ(v float64) predicate.Loan {
	return predicate.Loan(sql.FieldNEQ(FieldOriginalLoanAmount, v))
}

// OriginalLoanAmountIn applies the In predicate on the "original_loan_amount" field.
func OriginalLoanAmountIn(vs ...float64) predicate.Loan {
	return predicate.Loan(sql.FieldIn(FieldOriginalLoanAmount, vs...))
}

// OriginalLoanAmountNotIn applies the NotIn predicate on the "original_loan_amount" field.
func OriginalLoanAmountNotIn(vs ...float64) predicate.Loan {
	return predicate.Loan(sql.FieldNotIn(FieldOriginalLoanAmount, vs...))
}

// OriginalLoanAmountGT applies the GT predicate on the "original_loan_amount" field.
func OriginalLoanAmountGT(v float64) predicate.Loan {
	return predicate.Loan(sql.FieldGT(FieldOriginalLoanAmount, v))
}

// OriginalLoanAmountGTE applies the GTE predicate on the "original_loan_amount" field.
func OriginalLoanAmountGTE(v float64) predicate.Loan {
	return predicate.Loan(sql.FieldGTE(FieldOriginalLoanAmount, v))
}

// OriginalLoanAmountLT applies the LT predicate on the "original_loan_amount" field.
func OriginalLoanAmountLT(v float64) predicate.Loan {
	return predicate.Loan(sql.FieldLT(FieldOriginalLoanAmount, v))
}

// OriginalLoanAmountLTE applies the LTE predicate on the "original_loan_amount" field.
func OriginalLoanAmountLTE(v float64) predicate.Loan {
	return predicate.Loan(sql.FieldLTE(FieldOriginalLoanAmount, v))
}

// CurrentBalanceEQ applies the EQ predicate on the "current_balance" field.
func CurrentBalanceEQ(v float64) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldCurrentBalance, v))
}

// CurrentBalanceNEQ applies the NEQ predicate on the "current_balance" field.
func CurrentBalanceNEQ(v float64) predicate.Loan {
	return predicate.Loan(sql.FieldNEQ(FieldCurrentBalance, v))
}

// CurrentBalanceIn applies the In predicate on the "current_balance" field.
func CurrentBalanceIn(vs ...float64) predicate.Loan {
	return predicate.Loan(sql.FieldIn(FieldCurrentBalance, vs...))
}

// CurrentBalanceNotIn applies the NotIn predicate on the "current_balance" field.
func CurrentBalanceNotIn(vs ...float64) predicate.Loan {
	return predicate.Loan(sql.FieldNotIn(FieldCurrentBalance, vs...))
}

// CurrentBalanceGT applies the GT predicate on the "current_balance" field.
func CurrentBalanceGT(v float64) predicate.Loan {
	return predicate.Loan(sql.FieldGT(FieldCurrentBalance, v))
}

// CurrentBalanceGTE applies the GTE predicate on the "current_balance" field.
func CurrentBalanceGTE(v float64) predicate.Loan {
	return predicate.Loan(sql.FieldGTE(FieldCurrentBalance, v))
}

// CurrentBalanceLT applies the LT predicate on the "current_balance" field.
func CurrentBalanceLT(v float64) predicate.Loan {
	return predicate.Loan(sql.FieldLT(FieldCurrentBalance, v))
}

// CurrentBalanceLTE applies the LTE predicate on the "current_balance" field.
func CurrentBalanceLTE(v float64) predicate.Loan {
	return predicate.Loan(sql.FieldLTE(FieldCurrentBalance, v))
}

// CurrentBalanceIsNil applies the IsNil predicate on the "current_balance" field.
func CurrentBalanceIsNil() predicate.Loan {
	return predicate.Loan(sql.FieldIsNull(FieldCurrentBalance))
}

// CurrentBalanceNotNil applies the NotNil predicate on the "current_balance" field.
func CurrentBalanceNotNil() predicate.Loan {
	return predicate.Loan(sql.FieldNotNull(FieldCurrentBalance))
}

// OriginationDateEQ applies the EQ predicate on the "origination_date" field.
func OriginationDateEQ(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldOriginationDate, v))
}

// OriginationDateNEQ applies the NEQ predicate on the "origination_date" field.
func OriginationDateNEQ(v string) predicate.Loan {
	return predicate.Loan(sql.FieldNEQ(FieldOriginationDate, v))
}

// OriginationDateIn applies the In predicate on the "origination_date" field.
func OriginationDateIn(vs ...string) predicate.Loan {
	return predicate.Loan(sql.FieldIn(FieldOriginationDate, vs...))
}

// OriginationDateNotIn applies the NotIn predicate on the "origination_date" field.
func OriginationDateNotIn(vs ...string) predicate.Loan {
	return predicate.Loan(sql.FieldNotIn(FieldOriginationDate, vs...))
}

// OriginationDateGT applies the GT predicate on the "origination_date" field.
func OriginationDateGT(v string) predicate.Loan {
	return predicate.Loan(sql.FieldGT(FieldOriginationDate, v))
}

// OriginationDateGTE applies the GTE predicate on the "origination_date" field.
func OriginationDateGTE(v string) predicate.Loan {
	return predicate.Loan(sql.FieldGTE(FieldOriginationDate, v))
}

// OriginationDateLT applies the LT predicate on the "origination_date" field.
func OriginationDateLT(v string) predicate.Loan {
	return predicate.Loan(sql.FieldLT(FieldOriginationDate, v))
}

// OriginationDateLTE applies the LTE predicate on the "origination_date" field.
func OriginationDateLTE(v string) predicate.Loan {
	return predicate.Loan(sql.FieldLTE(FieldOriginationDate, v))
}

// OriginationDateContains applies the Contains predicate on the "origination_date" field.
func OriginationDateContains(v string) predicate.Loan {
	return predicate.Loan(sql.FieldContains(FieldOriginationDate, v))
}

// OriginationDateHasPrefix applies the HasPrefix predicate on the "origination_date" field.
func OriginationDateHasPrefix(v string) predicate.Loan {
	return predicate.Loan(sql.FieldHasPrefix(FieldOriginationDate, v))
}

// OriginationDateHasSuffix applies the HasSuffix predicate on the "origination_date" field.
func OriginationDateHasSuffix(v string) predicate.Loan {
	return predicate.Loan(sql.FieldHasSuffix(FieldOriginationDate, v))
}

// OriginationDateIsNil applies the IsNil predicate on the "origination_date" field.
func OriginationDateIsNil() predicate.Loan {
	return predicate.Loan(sql.FieldIsNull(FieldOriginationDate))
}

// OriginationDateNotNil applies the NotNil predicate on the "origination_date" field.
func OriginationDateNotNil() predicate.Loan {
	return predicate.Loan(sql.FieldNotNull(FieldOriginationDate))
}

// OriginationDateEqualFold applies the EqualFold predicate on the "origination_date" field.
func OriginationDateEqualFold(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEqualFold(FieldOriginationDate, v))
}

// OriginationDateContainsFold applies the ContainsFold predicate on the "origination_date" field.
func OriginationDateContainsFold(v string) predicate.Loan {
	return predicate.Loan(sql.FieldContainsFold(FieldOriginationDate, v))
}

// MaturityDateEQ applies the EQ predicate on the "maturity_date" field.
func MaturityDateEQ(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldMaturityDate, v))
}

// MaturityDateNEQ applies the NEQ predicate on the "maturity_date" field.
func MaturityDateNEQ(v string) predicate.Loan {
	return predicate.Loan(sql.FieldNEQ(FieldMaturityDate, v))
}

// MaturityDateIn applies the In predicate on the "maturity_date" field.
func MaturityDateIn(vs ...string) predicate.Loan {
	return predicate.Loan(sql.FieldIn(FieldMaturityDate, vs...))
}

// MaturityDateNotIn applies the NotIn predicate on the "maturity_date" field.
func MaturityDateNotIn(vs ...string) predicate.Loan {
	return predicate.Loan(sql.FieldNotIn(FieldMaturityDate, vs...))
}

// MaturityDateGT applies the GT predicate on the "maturity_date" field.
func MaturityDateGT(v string) predicate.Loan {
	return predicate.Loan(sql.FieldGT(FieldMaturityDate, v))
}

// MaturityDateGTE applies the GTE predicate on the "maturity_date" field.
func MaturityDateGTE(v string) predicate.Loan {
	return predicate.Loan(sql.FieldGTE(FieldMaturityDate, v))
}

// MaturityDateLT applies the LT predicate on the "maturity_date" field.
func MaturityDateLT(v string) predicate.Loan {
	return predicate.Loan(sql.FieldLT(FieldMaturityDate, v))
}

// MaturityDateLTE applies the LTE predicate on the "maturity_date" field.
func MaturityDateLTE(v string) predicate.Loan {
	return predicate.Loan(sql.FieldLTE(FieldMaturityDate, v))
}

// MaturityDateContains applies the Contains predicate on the "maturity_date" field.
func MaturityDateContains(v string) predicate.Loan {
	return predicate.Loan(sql.FieldContains(FieldMaturityDate, v))
}

// MaturityDateHasPrefix applies the HasPrefix predicate on the "maturity_date" field.
func MaturityDateHasPrefix(v string) predicate.Loan {
	return predicate.Loan(sql.FieldHasPrefix(FieldMaturityDate, v))
}

// MaturityDateHasSuffix applies the HasSuffix predicate on the "maturity_date" field.
func MaturityDateHasSuffix(v string) predicate.Loan {
	return predicate.Loan(sql.FieldHasSuffix(FieldMaturityDate, v))
}

// MaturityDateIsNil applies the IsNil predicate on the "maturity_date" field.
func MaturityDateIsNil() predicate.Loan {
	return predicate.Loan(sql.FieldIsNull(FieldMaturityDate))
}

// MaturityDateNotNil applies the NotNil predicate on the "maturity_date" field.
func MaturityDateNotNil() predicate.Loan {
	return predicate.Loan(sql.FieldNotNull(FieldMaturityDate))
}

// MaturityDateEqualFold applies the EqualFold predicate on the "maturity_date" field.
func MaturityDateEqualFold(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEqualFold(FieldMaturityDate, v))
}

// MaturityDateContainsFold applies the ContainsFold predicate on the "maturity_date" field.
func MaturityDateContainsFold(v string) predicate.Loan {
	return predicate.Loan(sql.FieldContainsFold(FieldMaturityDate, v))
}

// ComplianceScoreEQ applies the EQ predicate on the "compliance_score" field.
func ComplianceScoreEQ(v int) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldComplianceScore, v))
}

// ComplianceScoreNEQ applies the NEQ predicate on the "compliance_score" field.
func ComplianceScoreNEQ(v int) predicate.Loan {
	return predicate.Loan(sql.FieldNEQ(FieldComplianceScore, v))
}

// ComplianceScoreIn applies the In predicate on the "compliance_score" field.
func ComplianceScoreIn(vs ...int) predicate.Loan {
	return predicate.Loan(sql.FieldIn(FieldComplianceScore, vs...))
}

// ComplianceScoreNotIn applies the NotIn predicate on the "compliance_score" field.
func ComplianceScoreNotIn(vs ...int) predicate.Loan {
	return predicate.Loan(sql.FieldNotIn(FieldComplianceScore, vs...))
}

// ComplianceScoreGT applies the GT predicate on the "compliance_score" field.
func ComplianceScoreGT(v int) predicate.Loan {
	return predicate.Loan(sql.FieldGT(FieldComplianceScore, v))
}

// ComplianceScoreGTE applies the GTE predicate on the "compliance_score" field.
func ComplianceScoreGTE(v int) predicate.Loan {
	return predicate.Loan(sql.FieldGTE(FieldComplianceScore, v))
}

// ComplianceScoreLT applies the LT predicate on the "compliance_score" field.
func ComplianceScoreLT(v int) predicate.Loan {
	return predicate.Loan(sql.FieldLT(FieldComplianceScore, v))
}

// ComplianceScoreLTE applies the LTE predicate on the "compliance_score" field.
func ComplianceScoreLTE(v int) predicate.Loan {
	return predicate.Loan(sql.FieldLTE(FieldComplianceScore, v))
}

// SourceDocumentsIsNil applies the IsNil predicate on the "source_documents" field.
func SourceDocumentsIsNil() predicate.Loan {
	return predicate.Loan(sql.FieldIsNull(FieldSourceDocuments))
}

// SourceDocumentsNotNil applies the NotNil predicate on the "source_documents" field.
func SourceDocumentsNotNil() predicate.Loan {
	return predicate.Loan(sql.FieldNotNull(FieldSourceDocuments))
}

// ExtractionDateEQ applies the EQ predicate on the "extraction_date" field.
func ExtractionDateEQ(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldExtractionDate, v))
}

// ExtractionDateNEQ applies the NEQ predicate on the "extraction_date" field.
func ExtractionDateNEQ(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldNEQ(FieldExtractionDate, v))
}

// ExtractionDateIn applies the In predicate on the "extraction_date" field.
func ExtractionDateIn(vs ...time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldIn(FieldExtractionDate, vs...))
}

// ExtractionDateNotIn applies the NotIn predicate on the "extraction_date" field.
func ExtractionDateNotIn(vs ...time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldNotIn(FieldExtractionDate, vs...))
}

// ExtractionDateGT applies the GT predicate on the "extraction_date" field.
func ExtractionDateGT(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldGT(FieldExtractionDate, v))
}

// ExtractionDateGTE applies the GTE predicate on the "extraction_date" field.
func ExtractionDateGTE(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldGTE(FieldExtractionDate, v))
}

// ExtractionDateLT applies the LT predicate on the "extraction_date" field.
func ExtractionDateLT(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldLT(FieldExtractionDate, v))
}

// ExtractionDateLTE applies the LTE predicate on the "extraction_date" field.
func ExtractionDateLTE(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldLTE(FieldExtractionDate, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasRequirements applies the HasEdge predicate on the "requirements" edge.
func HasRequirements() predicate.Loan {
	return predicate.Loan(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RequirementsTable, RequirementsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRequirementsWith applies the HasEdge predicate on the "requirements" edge with a given conditions (other predicates).
func HasRequirementsWith(preds ...predicate.Requirement) predicate.Loan {
	return predicate.Loan(func(s *sql.Selector) {
		step := newRequirementsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Loan {
	return predicate.Loan(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.ComplianceEvent) predicate.Loan {
	return predicate.Loan(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Loan) predicate.Loan {
	return predicate.Loan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Loan) predicate.Loan {
	return predicate.Loan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Loan) predicate.Loan {
	return predicate.Loan(sql.NotPredicates(p))
}
