package extract

import (
	"context"
	"time"

	"github.com/loanguard/loanguard/constants"
	"github.com/loanguard/loanguard/internal/entity"
)

// FixtureExtractor is the deterministic reference extractor: it ignores
// its document text and returns the same hand-authored profile covering
// one representative instance of every requirement shape the domain
// model supports. It backs demo mode (no network dependency) and is the
// canonical fixture for downstream tests.
type FixtureExtractor struct{}

func NewFixtureExtractor() *FixtureExtractor {
	return &FixtureExtractor{}
}

// ExtractRequirements always yields the 8-requirement sample profile for
// "123 Main Street Office Building". The contents are a contract: tests
// of every downstream component rely on them.
func (e *FixtureExtractor) ExtractRequirements(_ context.Context, _ string, loanID string) (*entity.LoanProfile, error) {
	origination := "2024-01-15"
	maturity := "2029-01-15"

	profile := &entity.LoanProfile{
		LoanID:             loanID,
		LoanName:           "Sample Loan " + loanID,
		PropertyName:       "123 Main Street Office Building",
		BorrowerName:       "Sample Borrower LLC",
		LenderName:         "Sample Bank, N.A.",
		OriginalLoanAmount: 10000000,
		OriginationDate:    &origination,
		MaturityDate:       &maturity,
		ExtractionDate:     time.Now().UTC(),
	}

	days45, days120, cure30 := 45, 120, 30
	day1, day15 := 1, 15
	unitX, unitDollar := "x", "$"

	profile.Requirements = []*entity.LoanRequirement{
		{
			ID:                   "REQ-001",
			Title:                "Quarterly Financial Statements",
			Category:             constants.FinancialReporting,
			Description:          "Borrower must deliver quarterly unaudited financial statements",
			PlainLanguageSummary: "Send your quarterly financial statements to the lender within 45 days after each quarter ends",
			OriginalText:         "Borrower shall deliver to Lender within forty-five (45) days after the end of each fiscal quarter...",
			DocumentReference:    "Section 5.1.1",
			Deadline: &entity.Deadline{
				Description:        "45 days after quarter end",
				DaysAfterPeriodEnd: &days45,
				Frequency:          constants.Quarterly,
			},
			Severity: constants.High,
			Status:   constants.Unknown,
		},
		{
			ID:                   "REQ-002",
			Title:                "Annual Audited Financials",
			Category:             constants.FinancialReporting,
			Description:          "Borrower must deliver annual audited financial statements",
			PlainLanguageSummary: "Have a CPA audit your financials and send the report within 120 days after year end",
			OriginalText:         "Borrower shall deliver to Lender within one hundred twenty (120) days after the end of each fiscal year, audited financial statements...",
			DocumentReference:    "Section 5.1.2",
			Deadline: &entity.Deadline{
				Description:        "120 days after fiscal year end",
				DaysAfterPeriodEnd: &days120,
				Frequency:          constants.Annual,
			},
			Severity: constants.Critical,
			Status:   constants.Unknown,
		},
		{
			ID:                   "REQ-003",
			Title:                "DSCR Covenant",
			Category:             constants.CovenantCompliance,
			Description:          "Maintain minimum Debt Service Coverage Ratio",
			PlainLanguageSummary: "Your property's net operating income divided by your loan payments must be at least 1.25x",
			OriginalText:         "Borrower shall maintain a Debt Service Coverage Ratio of not less than 1.25:1.00...",
			DocumentReference:    "Section 6.2",
			Deadline: &entity.Deadline{
				Description: "Tested quarterly",
				Frequency:   constants.Quarterly,
			},
			Threshold: &entity.Threshold{
				Metric:   "DSCR",
				Operator: ">=",
				Value:    1.25,
				Unit:     &unitX,
			},
			Severity:       constants.Critical,
			CurePeriodDays: &cure30,
			Status:         constants.Unknown,
		},
		{
			ID:                   "REQ-004",
			Title:                "Property Insurance",
			Category:             constants.Insurance,
			Description:          "Maintain property insurance with specified coverage",
			PlainLanguageSummary: "Keep your property insured for full replacement cost. Send proof to lender before each renewal.",
			OriginalText:         "Borrower shall maintain property insurance in an amount not less than the full replacement cost...",
			DocumentReference:    "Section 4.1",
			Deadline: &entity.Deadline{
				Description: "30 days before policy expiration",
				Frequency:   constants.Annual,
			},
			Severity: constants.Critical,
			Status:   constants.Unknown,
		},
		{
			ID:                   "REQ-005",
			Title:                "Replacement Reserve Deposits",
			Category:             constants.ReserveFunding,
			Description:          "Monthly deposits to replacement reserve",
			PlainLanguageSummary: "Deposit $2,500 monthly into your replacement reserve account",
			OriginalText:         "Borrower shall deposit with Lender on each Payment Date the sum of $2,500...",
			DocumentReference:    "Section 7.3",
			Deadline: &entity.Deadline{
				Description: "Monthly with mortgage payment",
				DayOfMonth:  &day1,
				Frequency:   constants.Monthly,
			},
			Threshold: &entity.Threshold{
				Metric:   "Monthly Deposit",
				Operator: ">=",
				Value:    2500,
				Unit:     &unitDollar,
			},
			Severity: constants.Medium,
			Status:   constants.Unknown,
		},
		{
			ID:                   "REQ-006",
			Title:                "Monthly Rent Roll",
			Category:             constants.FinancialReporting,
			Description:          "Submit monthly rent roll",
			PlainLanguageSummary: "Send a current rent roll showing all tenants, lease terms, and rental rates by the 15th of each month",
			OriginalText:         "Borrower shall deliver to Lender by the fifteenth (15th) day of each calendar month a current rent roll...",
			DocumentReference:    "Section 5.1.4",
			Deadline: &entity.Deadline{
				Description: "By the 15th of each month",
				DayOfMonth:  &day15,
				Frequency:   constants.Monthly,
			},
			Severity: constants.Medium,
			Status:   constants.Unknown,
		},
		{
			ID:                   "REQ-007",
			Title:                "Major Lease Approval",
			Category:             constants.Leasing,
			Description:          "Lender approval required for major leases",
			PlainLanguageSummary: "Get lender approval before signing any lease over 10,000 SF or with a tenant getting more than 3 months free rent",
			OriginalText:         "Borrower shall not enter into any lease for more than 10,000 square feet or containing concessions in excess of three (3) months free rent without Lender's prior written consent...",
			DocumentReference:    "Section 8.2",
			Deadline: &entity.Deadline{
				Description: "Prior to lease execution",
				Frequency:   constants.AsNeeded,
			},
			Severity: constants.High,
			Status:   constants.Unknown,
		},
		{
			ID:                   "REQ-008",
			Title:                "Annual Operating Budget",
			Category:             constants.FinancialReporting,
			Description:          "Submit annual operating budget",
			PlainLanguageSummary: "Submit next year's operating budget for lender approval by November 15th each year",
			OriginalText:         "Not later than November 15 of each year, Borrower shall submit to Lender for approval the proposed annual operating budget...",
			DocumentReference:    "Section 5.1.5",
			Deadline: &entity.Deadline{
				Description: "November 15 annually",
				Frequency:   constants.Annual,
			},
			Severity: constants.Medium,
			Status:   constants.Unknown,
		},
	}

	return profile, nil
}
