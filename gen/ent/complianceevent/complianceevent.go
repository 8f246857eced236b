// Code generated by ent, DO NOT EDIT.

package complianceevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the complianceevent type in the database.
	Label = "compliance_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLoanID holds the string denoting the loan_id field in the database.
	FieldLoanID = "loan_id"
	// FieldRequirementID holds the string denoting the requirement_id field in the database.
	FieldRequirementID = "requirement_id"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldEventDate holds the string denoting the event_date field in the database.
	FieldEventDate = "event_date"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldOldStatus holds the string denoting the old_status field in the database.
	FieldOldStatus = "old_status"
	// FieldNewStatus holds the string denoting the new_status field in the database.
	FieldNewStatus = "new_status"
	// FieldSubmittedBy holds the string denoting the submitted_by field in the database.
	FieldSubmittedBy = "submitted_by"
	// FieldDocuments holds the string denoting the documents field in the database.
	FieldDocuments = "documents"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeLoan holds the string denoting the loan edge name in mutations.
	EdgeLoan = "loan"
	// Table holds the table name of the complianceevent in the database.
	Table = "compliance_events"
	// LoanTable is the table that holds the loan relation/edge.
	LoanTable = "compliance_events"
	// LoanInverseTable is the table name for the Loan entity.
	// It exists in this package in order to avoid circular dependency with the "loan" package.
	LoanInverseTable = "loans"
	// LoanColumn is the table column denoting the loan relation/edge.
	LoanColumn = "loan_id"
)

// Columns holds all SQL columns for complianceevent fields.
var Columns = []string{
	FieldID,
	FieldLoanID,
	FieldRequirementID,
	FieldEventType,
	FieldEventDate,
	FieldDescription,
	FieldOldStatus,
	FieldNewStatus,
	FieldSubmittedBy,
	FieldDocuments,
	FieldCreatedAt,
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
	// EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	EventTypeValidator func(string) error
	// DefaultEventDate holds the default value on creation for the "event_date" field.
	DefaultEventDate func() time.Time
	// OldStatusValidator is a validator for the "old_status" field. It is called by the builders before save.
	OldStatusValidator func(string) error
	// NewStatusValidator is a validator for the "new_status" field. It is called by the builders before save.
	NewStatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ComplianceEvent queries.
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

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByEventDate orders the results by the event_date field.
func ByEventDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventDate, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByOldStatus orders the results by the old_status field.
func ByOldStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOldStatus, opts...).ToFunc()
}

// ByNewStatus orders the results by the new_status field.
func ByNewStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewStatus, opts...).ToFunc()
}

// BySubmittedBy orders the results by the submitted_by field.
func BySubmittedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmittedBy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
