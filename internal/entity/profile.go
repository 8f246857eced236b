package entity

import (
	"time"

	"github.com/loanguard/loanguard/constants"
)

// LoanProfile is the aggregate root for one loan's compliance requirements.
//
// Requirements keep extraction order (monotonically increasing ids within
// one extraction run); the ordering is the stable tie-break for display.
// The profile's shape is fixed after construction: requirements are
// appended during build and only their status/notes mutate afterward.
type LoanProfile struct {
	LoanID             string   `json:"loan_id"`
	LoanName           string   `json:"loan_name"`
	PropertyName       string   `json:"property_name"`
	BorrowerName       string   `json:"borrower_name"`
	LenderName         string   `json:"lender_name"`
	OriginalLoanAmount float64  `json:"original_loan_amount"`
	CurrentBalance     *float64 `json:"current_balance,omitempty"`
	OriginationDate    *string  `json:"origination_date,omitempty"` // ISO date
	MaturityDate       *string  `json:"maturity_date,omitempty"`    // ISO date

	Requirements []*LoanRequirement `json:"requirements"`
	Events       []*ComplianceEvent `json:"events"`

	SourceDocuments []string  `json:"source_documents"`
	ExtractionDate  time.Time `json:"extraction_date"`
}

// RequirementsByCategory returns the requirements matching category,
// preserving extraction order.
func (p *LoanProfile) RequirementsByCategory(category constants.RequirementCategory) []*LoanRequirement {
	var out []*LoanRequirement
	for _, r := range p.Requirements {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// Requirement looks up a requirement by its id.
func (p *LoanProfile) Requirement(id string) (*LoanRequirement, bool) {
	for _, r := range p.Requirements {
		if r.ID == id {
			return r, true
		}
	}
	return nil, false
}

// NonCompliant returns requirements currently in breach.
func (p *LoanProfile) NonCompliant() []*LoanRequirement {
	return p.byStatus(constants.NonCompliant)
}

// AtRisk returns requirements trending toward breach.
func (p *LoanProfile) AtRisk() []*LoanRequirement {
	return p.byStatus(constants.AtRisk)
}

func (p *LoanProfile) byStatus(status constants.ComplianceStatus) []*LoanRequirement {
	var out []*LoanRequirement
	for _, r := range p.Requirements {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}

// CriticalRequirements returns critical-severity requirements, in
// extraction order.
func (p *LoanProfile) CriticalRequirements() []*LoanRequirement {
	var out []*LoanRequirement
	for _, r := range p.Requirements {
		if r.Severity == constants.Critical {
			out = append(out, r)
		}
	}
	return out
}

// WithDeadlines returns requirements that carry a deadline, in extraction order.
func (p *LoanProfile) WithDeadlines() []*LoanRequirement {
	var out []*LoanRequirement
	for _, r := range p.Requirements {
		if r.Deadline != nil {
			out = append(out, r)
		}
	}
	return out
}
