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
	"github.com/loanguard/loanguard/gen/ent/requirement"
)

// Requirement is the model entity for the Requirement schema.
type Requirement struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// LoanID holds the value of the "loan_id" field.
	LoanID uuid.UUID `json:"loan_id,omitempty"`
	// RequirementID holds the value of the "requirement_id" field.
	RequirementID string `json:"requirement_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// PlainLanguageSummary holds the value of the "plain_language_summary" field.
	PlainLanguageSummary string `json:"plain_language_summary,omitempty"`
	// OriginalText holds the value of the "original_text" field.
	OriginalText string `json:"original_text,omitempty"`
	// DocumentReference holds the value of the "document_reference" field.
	DocumentReference string `json:"document_reference,omitempty"`
	// Deadline holds the value of the "deadline" field.
	Deadline map[string]interface{} `json:"deadline,omitempty"`
	// Threshold holds the value of the "threshold" field.
	Threshold map[string]interface{} `json:"threshold,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity string `json:"severity,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CurePeriodDays holds the value of the "cure_period_days" field.
	CurePeriodDays *int `json:"cure_period_days,omitempty"`
	// LastChecked holds the value of the "last_checked" field.
	LastChecked *time.Time `json:"last_checked,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RequirementQuery when eager-loading is set.
	Edges        RequirementEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RequirementEdges holds the relations/edges for other nodes in the graph.
type RequirementEdges struct {
	// Loan holds the value of the loan edge.
	Loan *Loan `json:"loan,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LoanOrErr returns the Loan value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RequirementEdges) LoanOrErr() (*Loan, error) {
	if e.Loan != nil {
		return e.Loan, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: loan.Label}
	}
	return nil, &NotLoadedError{edge: "loan"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Requirement) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case requirement.FieldDeadline, requirement.FieldThreshold:
			values[i] = new([]byte)
		case requirement.FieldCurePeriodDays:
			values[i] = new(sql.NullInt64)
		case requirement.FieldRequirementID, requirement.FieldTitle, requirement.FieldCategory, requirement.FieldDescription, requirement.FieldPlainLanguageSummary, requirement.FieldOriginalText, requirement.FieldDocumentReference, requirement.FieldSeverity, requirement.FieldStatus, requirement.FieldNotes:
			values[i] = new(sql.NullString)
		case requirement.FieldLastChecked, requirement.FieldCreatedAt, requirement.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case requirement.FieldID, requirement.FieldLoanID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Requirement fields.
func (_m *Requirement) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case requirement.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case requirement.FieldLoanID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field loan_id", values[i])
			} else if value != nil {
				_m.LoanID = *value
			}
		case requirement.FieldRequirementID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field requirement_id", values[i])
			} else if value.Valid {
				_m.RequirementID = value.String
			}
		case requirement.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case requirement.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case requirement.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case requirement.FieldPlainLanguageSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plain_language_summary", values[i])
			} else if value.Valid {
				_m.PlainLanguageSummary = value.String
			}
		case requirement.FieldOriginalText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_text", values[i])
			} else if value.Valid {
				_m.OriginalText = value.String
			}
		case requirement.FieldDocumentReference:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_reference", values[i])
			} else if value.Valid {
				_m.DocumentReference = value.String
			}
		case requirement.FieldDeadline:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field deadline", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Deadline); err != nil {
					return fmt.Errorf("unmarshal field deadline: %w", err)
				}
			}
		case requirement.FieldThreshold:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field threshold", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Threshold); err != nil {
					return fmt.Errorf("unmarshal field threshold: %w", err)
				}
			}
		case requirement.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = value.String
			}
		case requirement.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case requirement.FieldCurePeriodDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cure_period_days", values[i])
			} else if value.Valid {
				_m.CurePeriodDays = new(int)
				*_m.CurePeriodDays = int(value.Int64)
			}
		case requirement.FieldLastChecked:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_checked", values[i])
			} else if value.Valid {
				_m.LastChecked = new(time.Time)
				*_m.LastChecked = value.Time
			}
		case requirement.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case requirement.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case requirement.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Requirement.
// This includes values selected through modifiers, order, etc.
func (_m *Requirement) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLoan queries the "loan" edge of the Requirement entity.
func (_m *Requirement) QueryLoan() *LoanQuery {
	return NewRequirementClient(_m.config).QueryLoan(_m)
}

// Update returns a builder for updating this Requirement.
// Note that you need to call Requirement.Unwrap() before calling this method if this Requirement
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Requirement) Update() *RequirementUpdateOne {
	return NewRequirementClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Requirement entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Requirement) Unwrap() *Requirement {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Requirement is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Requirement) String() string {
	var builder strings.Builder
	builder.WriteString("Requirement(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("loan_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LoanID))
	builder.WriteString(", ")
	builder.WriteString("requirement_id=")
	builder.WriteString(_m.RequirementID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("plain_language_summary=")
	builder.WriteString(_m.PlainLanguageSummary)
	builder.WriteString(", ")
	builder.WriteString("original_text=")
	builder.WriteString(_m.OriginalText)
	builder.WriteString(", ")
	builder.WriteString("document_reference=")
	builder.WriteString(_m.DocumentReference)
	builder.WriteString(", ")
	builder.WriteString("deadline=")
	builder.WriteString(fmt.Sprintf("%v", _m.Deadline))
	builder.WriteString(", ")
	builder.WriteString("threshold=")
	builder.WriteString(fmt.Sprintf("%v", _m.Threshold))
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(_m.Severity)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.CurePeriodDays; v != nil {
		builder.WriteString("cure_period_days=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LastChecked; v != nil {
		builder.WriteString("last_checked=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Requirements is a parsable slice of Requirement.
type Requirements []*Requirement
