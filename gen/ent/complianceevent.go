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
	"github.com/loanguard/loanguard/gen/ent/complianceevent"
	"github.com/loanguard/loanguard/gen/ent/loan"
)

// ComplianceEvent is the model entity for the ComplianceEvent schema.
type ComplianceEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// LoanID holds the value of the "loan_id" field.
	LoanID uuid.UUID `json:"loan_id,omitempty"`
	// RequirementID holds the value of the "requirement_id" field.
	RequirementID string `json:"requirement_id,omitempty"`
	// EventType holds the value of the "event_type" field.
	EventType string `json:"event_type,omitempty"`
	// EventDate holds the value of the "event_date" field.
	EventDate time.Time `json:"event_date,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// OldStatus holds the value of the "old_status" field.
	OldStatus *string `json:"old_status,omitempty"`
	// NewStatus holds the value of the "new_status" field.
	NewStatus *string `json:"new_status,omitempty"`
	// SubmittedBy holds the value of the "submitted_by" field.
	SubmittedBy *string `json:"submitted_by,omitempty"`
	// Documents holds the value of the "documents" field.
	Documents []string `json:"documents,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ComplianceEventQuery when eager-loading is set.
	Edges        ComplianceEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ComplianceEventEdges holds the relations/edges for other nodes in the graph.
type ComplianceEventEdges struct {
	// Loan holds the value of the loan edge.
	Loan *Loan `json:"loan,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LoanOrErr returns the Loan value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ComplianceEventEdges) LoanOrErr() (*Loan, error) {
	if e.Loan != nil {
		return e.Loan, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: loan.Label}
	}
	return nil, &NotLoadedError{edge: "loan"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ComplianceEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case complianceevent.FieldDocuments:
			values[i] = new([]byte)
		case complianceevent.FieldRequirementID, complianceevent.FieldEventType, complianceevent.FieldDescription, complianceevent.FieldOldStatus, complianceevent.FieldNewStatus, complianceevent.FieldSubmittedBy:
			values[i] = new(sql.NullString)
		case complianceevent.FieldEventDate, complianceevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case complianceevent.FieldID, complianceevent.FieldLoanID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ComplianceEvent fields.
func (_m *ComplianceEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case complianceevent.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case complianceevent.FieldLoanID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field loan_id", values[i])
			} else if value != nil {
				_m.LoanID = *value
			}
		case complianceevent.FieldRequirementID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field requirement_id", values[i])
			} else if value.Valid {
				_m.RequirementID = value.String
			}
		case complianceevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = value.String
			}
		case complianceevent.FieldEventDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field event_date", values[i])
			} else if value.Valid {
				_m.EventDate = value.Time
			}
		case complianceevent.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case complianceevent.FieldOldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field old_status", values[i])
			} else if value.Valid {
				_m.OldStatus = new(string)
				*_m.OldStatus = value.String
			}
		case complianceevent.FieldNewStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field new_status", values[i])
			} else if value.Valid {
				_m.NewStatus = new(string)
				*_m.NewStatus = value.String
			}
		case complianceevent.FieldSubmittedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field submitted_by", values[i])
			} else if value.Valid {
				_m.SubmittedBy = new(string)
				*_m.SubmittedBy = value.String
			}
		case complianceevent.FieldDocuments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field documents", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Documents); err != nil {
					return fmt.Errorf("unmarshal field documents: %w", err)
				}
			}
		case complianceevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ComplianceEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ComplianceEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLoan queries the "loan" edge of the ComplianceEvent entity.
func (_m *ComplianceEvent) QueryLoan() *LoanQuery {
	return NewComplianceEventClient(_m.config).QueryLoan(_m)
}

// Update returns a builder for updating this ComplianceEvent.
// Note that you need to call ComplianceEvent.Unwrap() before calling this method if this ComplianceEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ComplianceEvent) Update() *ComplianceEventUpdateOne {
	return NewComplianceEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ComplianceEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ComplianceEvent) Unwrap() *ComplianceEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ComplianceEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ComplianceEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ComplianceEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("loan_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LoanID))
	builder.WriteString(", ")
	builder.WriteString("requirement_id=")
	builder.WriteString(_m.RequirementID)
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(_m.EventType)
	builder.WriteString(", ")
	builder.WriteString("event_date=")
	builder.WriteString(_m.EventDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	if v := _m.OldStatus; v != nil {
		builder.WriteString("old_status=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.NewStatus; v != nil {
		builder.WriteString("new_status=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SubmittedBy; v != nil {
		builder.WriteString("submitted_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("documents=")
	builder.WriteString(fmt.Sprintf("%v", _m.Documents))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ComplianceEvents is a parsable slice of ComplianceEvent.
type ComplianceEvents []*ComplianceEvent
