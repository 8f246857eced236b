package format

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/loanguard/loanguard/constants"
	"github.com/loanguard/loanguard/internal/extract"
)

func TestMarkdown(t *testing.T) {
	profile, err := extract.NewFixtureExtractor().ExtractRequirements(t.Context(), "", "LOAN-001")
	if err != nil {
		t.Fatalf("fixture extractor: %v", err)
	}
	now := time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)

	out := Markdown(profile, now)

	for _, want := range []string{
		"# Loan Compliance Checklist",
		"**Loan ID:** LOAN-001",
		"**Property:** 123 Main Street Office Building",
		"**Original Loan Amount:** $10,000,000.00",
		"**Report Generated:** 2026-03-15 09:30",
		"## Compliance Summary",
		"- **Total Requirements:** 8",
		"## Financial Reporting",
		"## Covenant Compliance",
		"### DSCR Covenant",
		"**Cure Period:** 30 days",
		"<details>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
	if strings.Contains(out, "## Environmental") {
		t.Error("empty categories must be omitted")
	}
}

func TestChecklist(t *testing.T) {
	profile, err := extract.NewFixtureExtractor().ExtractRequirements(t.Context(), "", "LOAN-002")
	if err != nil {
		t.Fatalf("fixture extractor: %v", err)
	}
	// mark one item compliant so both checkbox states appear
	profile.Requirements[0].Status = constants.Compliant

	out := Checklist(profile)

	if !strings.Contains(out, "# 123 Main Street Office Building - Compliance Checklist") {
		t.Error("checklist missing title")
	}
	if !strings.Contains(out, "- [x] **Quarterly Financial Statements**") {
		t.Error("compliant item not checked")
	}
	if !strings.Contains(out, "- [ ] **DSCR Covenant**") {
		t.Error("open item should be unchecked")
	}
}

func TestJSONSummary(t *testing.T) {
	profile, err := extract.NewFixtureExtractor().ExtractRequirements(t.Context(), "", "LOAN-003")
	if err != nil {
		t.Fatalf("fixture extractor: %v", err)
	}

	raw, err := JSONSummary(profile)
	if err != nil {
		t.Fatalf("JSONSummary() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["loan_id"] != "LOAN-003" {
		t.Errorf("loan_id = %v", decoded["loan_id"])
	}
	cs, ok := decoded["compliance_summary"].(map[string]any)
	if !ok {
		t.Fatal("compliance_summary missing")
	}
	if cs["total_requirements"] != float64(8) {
		t.Errorf("total_requirements = %v, want 8", cs["total_requirements"])
	}
	if cs["critical_items"] != float64(3) {
		t.Errorf("critical_items = %v, want 3", cs["critical_items"])
	}
	critical, ok := decoded["critical_requirements"].([]any)
	if !ok || len(critical) != 3 {
		t.Errorf("critical_requirements = %v", decoded["critical_requirements"])
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{10000000, "$10,000,000.00"},
		{1234.5, "$1,234.50"},
		{0, "$0.00"},
		{999, "$999.00"},
	}
	for _, tt := range tests {
		if got := formatAmount(tt.in); got != tt.want {
			t.Errorf("formatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
