package constants

import "strings"

// RequirementCategory classifies a borrower obligation.
type RequirementCategory string

const (
	FinancialReporting  RequirementCategory = "financial_reporting"
	CovenantCompliance  RequirementCategory = "covenant_compliance"
	Insurance           RequirementCategory = "insurance"
	ReserveFunding      RequirementCategory = "reserve_funding"
	PropertyManagement  RequirementCategory = "property_management"
	Leasing             RequirementCategory = "leasing"
	CapitalImprovements RequirementCategory = "capital_improvements"
	TaxEscrow           RequirementCategory = "tax_escrow"
	Environmental       RequirementCategory = "environmental"
	LegalEntity         RequirementCategory = "legal_entity"
	OtherCategory       RequirementCategory = "other"
)

var allCategories = []RequirementCategory{
	FinancialReporting,
	CovenantCompliance,
	Insurance,
	ReserveFunding,
	PropertyManagement,
	Leasing,
	CapitalImprovements,
	TaxEscrow,
	Environmental,
	LegalEntity,
	OtherCategory,
}

// AllCategories returns every category in declaration order.
func AllCategories() []RequirementCategory {
	out := make([]RequirementCategory, len(allCategories))
	copy(out, allCategories)
	return out
}

// CategoryStrings returns the category values as strings, for prompt
// construction and schema enums.
func CategoryStrings() []string {
	result := make([]string, len(allCategories))
	for i, c := range allCategories {
		result[i] = string(c)
	}
	return result
}

// CanonicalizeCategory maps an untrusted label to a valid category.
// Unrecognized input falls back to OtherCategory; the second return
// reports whether the input matched.
func CanonicalizeCategory(input string) (RequirementCategory, bool) {
	normalized := normalizeEnumToken(input)
	if normalized == "" {
		return OtherCategory, false
	}
	for _, c := range allCategories {
		if normalized == string(c) {
			return c, true
		}
	}
	return OtherCategory, false
}

// normalizeEnumToken lowercases and collapses separators so "Financial Reporting"
// and "financial-reporting" both resolve to "financial_reporting".
func normalizeEnumToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
