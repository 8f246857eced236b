package llm

import (
	"testing"

	"github.com/loanguard/loanguard/constants"
)

func TestBuildLoanProfileDefaults(t *testing.T) {
	profile := BuildLoanProfile(map[string]any{}, "LOAN-42")

	if profile.LoanID != "LOAN-42" {
		t.Errorf("LoanID = %q", profile.LoanID)
	}
	if profile.LoanName != "Loan LOAN-42" {
		t.Errorf("LoanName = %q", profile.LoanName)
	}
	if profile.PropertyName != "Unknown Property" {
		t.Errorf("PropertyName = %q", profile.PropertyName)
	}
	if profile.BorrowerName != "Unknown Borrower" {
		t.Errorf("BorrowerName = %q", profile.BorrowerName)
	}
	if profile.LenderName != "Unknown Lender" {
		t.Errorf("LenderName = %q", profile.LenderName)
	}
	if profile.OriginalLoanAmount != 0 {
		t.Errorf("OriginalLoanAmount = %v, want 0", profile.OriginalLoanAmount)
	}
	if len(profile.Requirements) != 0 {
		t.Errorf("Requirements = %d, want none", len(profile.Requirements))
	}
	if profile.ExtractionDate.IsZero() {
		t.Error("ExtractionDate not stamped")
	}
}

func TestBuildLoanProfileLoanInfo(t *testing.T) {
	parsed := map[string]any{
		"loan_info": map[string]any{
			"property_name":    "Harborview Apartments",
			"borrower_name":    "Harborview Holdings LLC",
			"lender_name":      "First National Bank",
			"loan_amount":      float64(24500000),
			"origination_date": "2023-06-01",
			"maturity_date":    "2033-06-01",
		},
	}
	profile := BuildLoanProfile(parsed, "LOAN-9")

	if profile.PropertyName != "Harborview Apartments" {
		t.Errorf("PropertyName = %q", profile.PropertyName)
	}
	if profile.OriginalLoanAmount != 24500000 {
		t.Errorf("OriginalLoanAmount = %v", profile.OriginalLoanAmount)
	}
	if profile.OriginationDate == nil || *profile.OriginationDate != "2023-06-01" {
		t.Errorf("OriginationDate = %v", profile.OriginationDate)
	}
	if profile.MaturityDate == nil || *profile.MaturityDate != "2033-06-01" {
		t.Errorf("MaturityDate = %v", profile.MaturityDate)
	}
}

func TestBuildLoanProfileNonObjectRequirementEntry(t *testing.T) {
	parsed := map[string]any{
		"requirements": []any{
			map[string]any{"title": "DSCR Covenant", "category": "covenant_compliance"},
			"this is not an object",
			map[string]any{"title": "Insurance", "category": "insurance"},
		},
	}
	profile := BuildLoanProfile(parsed, "LOAN-3")

	if len(profile.Requirements) != 3 {
		t.Fatalf("got %d requirements, want 3 (bad entry keeps its slot)", len(profile.Requirements))
	}
	bad := profile.Requirements[1]
	if bad.ID != "REQ-002" {
		t.Errorf("bad entry id = %q, want REQ-002", bad.ID)
	}
	if bad.Category != constants.OtherCategory {
		t.Errorf("bad entry category = %q, want other", bad.Category)
	}
	if bad.Severity != constants.Medium {
		t.Errorf("bad entry severity = %q, want medium", bad.Severity)
	}
	if profile.Requirements[2].ID != "REQ-003" {
		t.Errorf("trailing entry id = %q, want REQ-003", profile.Requirements[2].ID)
	}
	if profile.Requirements[2].Category != constants.Insurance {
		t.Errorf("trailing entry category = %q", profile.Requirements[2].Category)
	}
}

func TestBuildLoanProfileWrongTypedLoanInfo(t *testing.T) {
	parsed := map[string]any{
		"loan_info": map[string]any{
			"property_name": 123,
			"loan_amount":   "a lot",
		},
	}
	profile := BuildLoanProfile(parsed, "LOAN-5")

	if profile.PropertyName != "Unknown Property" {
		t.Errorf("PropertyName = %q, want default for wrong-typed value", profile.PropertyName)
	}
	if profile.OriginalLoanAmount != 0 {
		t.Errorf("OriginalLoanAmount = %v, want 0", profile.OriginalLoanAmount)
	}
}
