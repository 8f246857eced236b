// Code generated by ent, DO NOT EDIT.

package requirement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the requirement type in the database.
	Label = "requirement"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLoanID holds the string denoting the loan_id field in the database.
	FieldLoanID = "loan_id"
	// FieldRequirementID holds the string denoting the requirement_id field in the database.
	FieldRequirementID = "requirement_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldPlainLanguageSummary holds the string denoting the plain_language_summary field in the database.
	FieldPlainLanguageSummary = "plain_language_summary"
	// FieldOriginalText holds the string denoting the original_text field in the database.
	FieldOriginalText = "original_text"
	// FieldDocumentReference holds the string denoting the document_reference field in the database.
	FieldDocumentReference = "document_reference"
	// FieldDeadline holds the string denoting the deadline field in the database.
	FieldDeadline = "deadline"
	// FieldThreshold holds the string denoting the threshold field in the database.
	FieldThreshold = "threshold"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCurePeriodDays holds the string denoting the cure_period_days field in the database.
	FieldCurePeriodDays = "cure_period_days"
	// FieldLastChecked holds the string denoting the last_checked field in the database.
	FieldLastChecked = "last_checked"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeLoan holds the string denoting the loan edge name in mutations.
	EdgeLoan = "loan"
	// Table holds the table name of the requirement in the database.
	Table = "requirements"
	// LoanTable is the table that holds the loan relation/edge.
	LoanTable = "requirements"
	// LoanInverseTable is the table name for the Loan entity.
	// It exists in this package in order to avoid circular dependency with the "loan" package.
	LoanInverseTable = "loans"
	// LoanColumn is the table column denoting the loan relation/edge.
	LoanColumn = "loan_id"
)

// Columns holds all SQL columns for requirement fields.
var Columns = []string{
	FieldID,
	FieldLoanID,
	FieldRequirementID,
	FieldTitle,
	FieldCategory,
	FieldDescription,
	FieldPlainLanguageSummary,
	FieldOriginalText,
	FieldDocumentReference,
	FieldDeadline,
	FieldThreshold,
	FieldSeverity,
	FieldStatus,
	FieldCurePeriodDays,
	FieldLastChecked,
	FieldNotes,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// RequirementIDValidator is a validator for the "requirement_id" field. It is called by the builders before save.
	RequirementIDValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultCategory holds the default value on creation for the "category" field.
	DefaultCategory string
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// DefaultSeverity holds the default value on creation for the "severity" field.
	DefaultSeverity string
	// SeverityValidator is a validator for the "severity" field. It is called by the builders before save.
	SeverityValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// CurePeriodDaysValidator is a validator for the "cure_period_days" field. It is called by the builders before save.
	CurePeriodDaysValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Requirement queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLoanID orders the results by the loan_id field.
func ByLoanID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoanID, opts...).ToFunc()
}

// ByRequirementID orders the results by the requirement_id field.
func ByRequirementID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequirementID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByPlainLanguageSummary orders the results by the plain_language_summary field.
func ByPlainLanguageSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlainLanguageSummary, opts...).ToFunc()
}

// ByOriginalText orders the results by the original_text field.
func ByOriginalText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalText, opts...).ToFunc()
}

// ByDocumentReference orders the results by the document_reference field.
func ByDocumentReference(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentReference, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCurePeriodDays orders the results by the cure_period_days field.
func ByCurePeriodDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurePeriodDays, opts...).ToFunc()
}

// ByLastChecked orders the results by the last_checked field.
func ByLastChecked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastChecked, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByLoanField orders the results by loan field.
func ByLoanField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLoanStep(), sql.OrderByField(field, opts...))
	}
}
func newLoanStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LoanInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, LoanTable, LoanColumn),
	)
}
