// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/loanguard/loanguard/gen/ent/loan"
)

// Loan is the model entity for the Loan schema.
type Loan struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// LoanID holds the value of the "loan_id" field.
	LoanID string `json:"loan_id,omitempty"`
	// LoanName holds the value of the "loan_name" field.
	LoanName string `json:"loan_name,omitempty"`
	// PropertyName holds the value of the "property_name" field.
	PropertyName string `json:"property_name,omitempty"`
	// BorrowerName holds the value of the "borrower_name" field.
	BorrowerName string `json:"borrower_name,omitempty"`
	// LenderName holds the value of the "lender_name" field.
	LenderName string `json:"lender_name,omitempty"`
	// OriginalLoanAmount holds the value of the "original_loan_amount" field.
	OriginalLoanAmount float64 `json:"original_loan_amount,omitempty"`
	// CurrentBalance holds the value of the "current_balance" field.
	CurrentBalance *float64 `json:"current_balance,omitempty"`
	// OriginationDate holds the value of the "origination_date" field.
	OriginationDate *string `json:"origination_date,omitempty"`
	// MaturityDate holds the value of the "maturity_date" field.
	MaturityDate *string `json:"maturity_date,omitempty"`
	// ComplianceScore holds the value of the "compliance_score" field.
	ComplianceScore int `json:"compliance_score,omitempty"`
	// SourceDocuments holds the value of the "source_documents" field.
	SourceDocuments []string `json:"source_documents,omitempty"`
	// ExtractionDate holds the value of the "extraction_date" field.
	ExtractionDate time.Time `json:"extraction_date,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LoanQuery when eager-loading is set.
	Edges        LoanEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LoanEdges holds the relations/edges for other nodes in the graph.
type LoanEdges struct {
	// Requirements holds the value of the requirements edge.
	Requirements []*Requirement `json:"requirements,omitempty"`
	// Events holds the value of the events edge.
	Events []*ComplianceEvent `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// RequirementsOrErr returns the Requirements value or an error if the edge
// was not loaded in eager-loading.
func (e LoanEdges) RequirementsOrErr() ([]*Requirement, error) {
	if e.loadedTypes[0] {
		return e.Requirements, nil
	}
	return nil, &NotLoadedError{edge: "requirements"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e LoanEdges) EventsOrErr() ([]*ComplianceEvent, error) {
	if e.loadedTypes[1] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Loan) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case loan.FieldSourceDocuments:
			values[i] = new([]byte)
		case loan.FieldOriginalLoanAmount, loan.FieldCurrentBalance:
			values[i] = new(sql.NullFloat64)
		case loan.FieldComplianceScore:
			values[i] = new(sql.NullInt64)
		case loan.FieldLoanID, loan.FieldLoanName, loan.FieldPropertyName, loan.FieldBorrowerName, loan.FieldLenderName, loan.FieldOriginationDate, loan.FieldMaturityDate:
			values[i] = new(sql.NullString)
		case loan.FieldExtractionDate, loan.FieldCreatedAt, loan.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case loan.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Loan fields.
func (_m *Loan) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case loan.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case loan.FieldLoanID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field loan_id", values[i])
			} else if value.Valid {
				_m.LoanID = value.String
			}
		case loan.FieldLoanName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field loan_name", values[i])
			} else if value.Valid {
				_m.LoanName = value.String
			}
		case loan.FieldPropertyName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field property_name", values[i])
			} else if value.Valid {
				_m.PropertyName = value.String
			}
		case loan.FieldBorrowerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field borrower_name", values[i])
			} else if value.Valid {
				_m.BorrowerName = value.String
			}
		case loan.FieldLenderName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lender_name", values[i])
			} else if value.Valid {
				_m.LenderName = value.String
			}
		case loan.FieldOriginalLoanAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field original_loan_amount", values[i])
			} else if value.Valid {
				_m.OriginalLoanAmount = value.Float64
			}
		case loan.FieldCurrentBalance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field current_balance", values[i])
			} else if value.Valid {
				_m.CurrentBalance = new(float64)
				*_m.CurrentBalance = value.Float64
			}
		case loan.FieldOriginationDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field origination_date", values[i])
			} else if value.Valid {
				_m.OriginationDate = new(string)
				*_m.OriginationDate = value.String
			}
		case loan.FieldMaturityDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field maturity_date", values[i])
			} else if value.Valid {
				_m.MaturityDate = new(string)
				*_m.MaturityDate = value.String
			}
		case loan.FieldComplianceScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field compliance_score", values[i])
			} else if value.Valid {
				_m.ComplianceScore = int(value.Int64)
			}
		case loan.FieldSourceDocuments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field source_documents", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SourceDocuments); err != nil {
					return fmt.Errorf("unmarshal field source_documents: %w", err)
				}
			}
		case loan.FieldExtractionDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_date", values[i])
			} else if value.Valid {
				_m.ExtractionDate = value.Time
			}
		case loan.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case loan.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Loan.
// This includes values selected through modifiers, order, etc.
func (_m *Loan) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRequirements queries the "requirements" edge of the Loan entity.
func (_m *Loan) QueryRequirements() *RequirementQuery {
	return NewLoanClient(_m.config).QueryRequirements(_m)
}

// QueryEvents queries the "events" edge of the Loan entity.
func (_m *Loan) QueryEvents() *ComplianceEventQuery {
	return NewLoanClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this Loan.
// Note that you need to call Loan.Unwrap() before calling this method if this Loan
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Loan) Update() *LoanUpdateOne {
	return NewLoanClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Loan entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Loan) Unwrap() *Loan {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Loan is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Loan) String() string {
	var builder strings.Builder
	builder.WriteString("Loan(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("loan_id=")
	builder.WriteString(_m.LoanID)
	builder.WriteString(", ")
	builder.WriteString("loan_name=")
	builder.WriteString(_m.LoanName)
	builder.WriteString(", ")
	builder.WriteString("property_name=")
	builder.WriteString(_m.PropertyName)
	builder.WriteString(", ")
	builder.WriteString("borrower_name=")
	builder.WriteString(_m.BorrowerName)
	builder.WriteString(", ")
	builder.WriteString("lender_name=")
	builder.WriteString(_m.LenderName)
	builder.WriteString(", ")
	builder.WriteString("original_loan_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.OriginalLoanAmount))
	builder.WriteString(", ")
	if v := _m.CurrentBalance; v != nil {
		builder.WriteString("current_balance=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.OriginationDate; v != nil {
		builder.WriteString("origination_date=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MaturityDate; v != nil {
		builder.WriteString("maturity_date=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("compliance_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ComplianceScore))
	builder.WriteString(", ")
	builder.WriteString("source_documents=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceDocuments))
	builder.WriteString(", ")
	builder.WriteString("extraction_date=")
	builder.WriteString(_m.ExtractionDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Loans is a parsable slice of Loan.
type Loans []*Loan
