// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ComplianceEvent is the predicate function for complianceevent builders.
type ComplianceEvent func(*sql.Selector)

// Loan is the predicate function for loan builders.
type Loan func(*sql.Selector)

// Requirement is the predicate function for requirement builders.
type Requirement func(*sql.Selector)
