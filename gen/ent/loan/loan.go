// Code generated by ent, DO NOT EDIT.

package loan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the loan type in the database.
	Label = "loan"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLoanID holds the string denoting the loan_id field in the database.
	FieldLoanID = "loan_id"
	// FieldLoanName holds the string denoting the loan_name field in the database.
	FieldLoanName = "loan_name"
	// FieldPropertyName holds the string denoting the property_name field in the database.
	FieldPropertyName = "property_name"
	// FieldBorrowerName holds the string denoting the borrower_name field in the database.
	FieldBorrowerName = "borrower_name"
	// FieldLenderName holds the string denoting the lender_name field in the database.
	FieldLenderName = "lender_name"
	// FieldOriginalLoanAmount holds the string denoting the original_loan_amount field in the database.
	FieldOriginalLoanAmount = "original_loan_amount"
	// FieldCurrentBalance holds the string denoting the current_balance field in the database.
	FieldCurrentBalance = "current_balance"
	// FieldOriginationDate holds the string denoting the origination_date field in the database.
	FieldOriginationDate = "origination_date"
	// FieldMaturityDate holds the string denoting the maturity_date field in the database.
	FieldMaturityDate = "maturity_date"
	// FieldComplianceScore holds the string denoting the compliance_score field in the database.
	FieldComplianceScore = "compliance_score"
	// FieldSourceDocuments holds the string denoting the source_documents field in the database.
	FieldSourceDocuments = "source_documents"
	// FieldExtractionDate holds the string denoting the extraction_date field in the database.
	FieldExtractionDate = "extraction_date"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeRequirements holds the string denoting the requirements edge name in mutations.
	EdgeRequirements = "requirements"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// Table holds the table name of the loan in the database.
	Table = "loans"
	// RequirementsTable is the table that holds the requirements relation/edge.
	RequirementsTable = "requirements"
	// RequirementsInverseTable is the table name for the Requirement entity.
	// It exists in this package in order to avoid circular dependency with the "requirement" package.
	RequirementsInverseTable = "requirements"
	// RequirementsColumn is the table column denoting the requirements relation/edge.
	RequirementsColumn = "loan_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "compliance_events"
	// EventsInverseTable is the table name for the ComplianceEvent entity.
	// It exists in this package in order to avoid circular dependency with the "complianceevent" package.
	EventsInverseTable = "compliance_events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "loan_id"
)

// Columns holds all SQL columns for loan fields.
var Columns = []string{
	FieldID,
	FieldLoanID,
	FieldLoanName,
	FieldPropertyName,
	FieldBorrowerName,
	FieldLenderName,
	FieldOriginalLoanAmount,
	FieldCurrentBalance,
	FieldOriginationDate,
	FieldMaturityDate,
	FieldComplianceScore,
	FieldSourceDocuments,
	FieldExtractionDate,
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
	// LoanIDValidator is a validator for the "loan_id" field. It is called by the builders before save.
	LoanIDValidator func(string) error
	// PropertyNameValidator is a validator for the "property_name" field. It is called by the builders before save.
	PropertyNameValidator func(string) error
	// DefaultOriginalLoanAmount holds the default value on creation for the "original_loan_amount" field.
	DefaultOriginalLoanAmount float64
	// OriginationDateValidator is a validator for the "origination_date" field. It is called by the builders before save.
	OriginationDateValidator func(string) error
	// MaturityDateValidator is a validator for the "maturity_date" field. It is called by the builders before save.
	MaturityDateValidator func(string) error
	// DefaultComplianceScore holds the default value on creation for the "compliance_score" field.
	DefaultComplianceScore int
	// ComplianceScoreValidator is a validator for the "compliance_score" field. It is called by the builders before save.
	ComplianceScoreValidator func(int) error
	// DefaultExtractionDate holds the default value on creation for the "extraction_date" field.
	DefaultExtractionDate func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Loan queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLoanID orders the results by the loan_id field.
func ByLoanID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoanID, opts...).ToFunc()
}

// ByLoanName orders the results by the loan_name field.
func ByLoanName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoanName, opts...).ToFunc()
}

// ByPropertyName orders the results by the property_name field.
func ByPropertyName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPropertyName, opts...).ToFunc()
}

// ByBorrowerName orders the results by the borrower_name field.
func ByBorrowerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBorrowerName, opts...).ToFunc()
}

// ByLenderName orders the results by the lender_name field.
func ByLenderName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLenderName, opts...).ToFunc()
}

// ByOriginalLoanAmount orders the results by the original_loan_amount field.
func ByOriginalLoanAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalLoanAmount, opts...).ToFunc()
}

// ByCurrentBalance orders the results by the current_balance field.
func ByCurrentBalance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentBalance, opts...).ToFunc()
}

// ByOriginationDate orders the results by the origination_date field.
func ByOriginationDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginationDate, opts...).ToFunc()
}

// ByMaturityDate orders the results by the maturity_date field.
func ByMaturityDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaturityDate, opts...).ToFunc()
}

// ByComplianceScore orders the results by the compliance_score field.
func ByComplianceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComplianceScore, opts...).ToFunc()
}

// ByExtractionDate orders the results by the extraction_date field.
func ByExtractionDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionDate, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByRequirementsCount orders the results by requirements count.
func ByRequirementsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRequirementsStep(), opts...)
	}
}

// ByRequirements orders the results by requirements terms.
func ByRequirements(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRequirementsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRequirementsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RequirementsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RequirementsTable, RequirementsColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
