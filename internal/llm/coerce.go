package llm

import (
	"time"

	"github.com/loanguard/loanguard/internal/entity"
)

// BuildLoanProfile converts a parsed extraction payload into the domain
// model. This is the trust boundary: every field is defensively coerced
// (unknown enum labels to their defaults, missing optionals to absent,
// wrong-typed values dropped) and no single malformed requirement entry
// aborts its siblings. Downstream code never re-validates.
func BuildLoanProfile(parsed map[string]any, loanID string) *entity.LoanProfile {
	loanInfo := entity.MapField(parsed, "loan_info")
	if loanInfo == nil {
		loanInfo = map[string]any{}
	}

	profile := &entity.LoanProfile{
		LoanID:             loanID,
		LoanName:           "Loan " + loanID,
		PropertyName:       stringOr(loanInfo, "property_name", "Unknown Property"),
		BorrowerName:       stringOr(loanInfo, "borrower_name", "Unknown Borrower"),
		LenderName:         stringOr(loanInfo, "lender_name", "Unknown Lender"),
		OriginalLoanAmount: entity.FloatField(loanInfo, "loan_amount"),
		OriginationDate:    entity.StringPtrField(loanInfo, "origination_date"),
		MaturityDate:       entity.StringPtrField(loanInfo, "maturity_date"),
		ExtractionDate:     time.Now().UTC(),
	}

	for i, item := range entity.SliceField(parsed, "requirements") {
		m, _ := item.(map[string]any)
		if m == nil {
			// a non-object entry still occupies its ordinal; it coerces
			// to an all-defaults requirement rather than aborting the run
			m = map[string]any{}
		}
		req := entity.RequirementFromMap(m, entity.RequirementID(i+1))
		profile.Requirements = append(profile.Requirements, req)
	}

	return profile
}

func stringOr(m map[string]any, key, fallback string) string {
	if v := entity.StringField(m, key); v != "" {
		return v
	}
	return fallback
}
