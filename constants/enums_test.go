package constants

import "testing"

func TestCanonicalizeCategory(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  RequirementCategory
		ok    bool
	}{
		{"exact", "financial_reporting", FinancialReporting, true},
		{"uppercase", "INSURANCE", Insurance, true},
		{"spaces", "Covenant Compliance", CovenantCompliance, true},
		{"dashes", "reserve-funding", ReserveFunding, true},
		{"padded", "  leasing  ", Leasing, true},
		{"unknown", "zoning", OtherCategory, false},
		{"empty", "", OtherCategory, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := CanonicalizeCategory(tc.input)
			if got != tc.want || ok != tc.ok {
				t.Errorf("CanonicalizeCategory(%q) = (%q, %v), want (%q, %v)", tc.input, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestCanonicalizeFrequency(t *testing.T) {
	cases := []struct {
		input string
		want  Frequency
		ok    bool
	}{
		{"quarterly", Quarterly, true},
		{"Semi Annual", SemiAnnual, true},
		{"ONE_TIME", OneTime, true},
		{"upon request", UponRequest, true},
		{"whenever", AsNeeded, false},
		{"", AsNeeded, false},
	}
	for _, tc := range cases {
		got, ok := CanonicalizeFrequency(tc.input)
		if got != tc.want || ok != tc.ok {
			t.Errorf("CanonicalizeFrequency(%q) = (%q, %v), want (%q, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCanonicalizeSeverity(t *testing.T) {
	cases := []struct {
		input string
		want  Severity
		ok    bool
	}{
		{"critical", Critical, true},
		{"HIGH", High, true},
		{"Low", Low, true},
		{"severe", Medium, false},
		{"", Medium, false},
	}
	for _, tc := range cases {
		got, ok := CanonicalizeSeverity(tc.input)
		if got != tc.want || ok != tc.ok {
			t.Errorf("CanonicalizeSeverity(%q) = (%q, %v), want (%q, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCanonicalizeStatus(t *testing.T) {
	cases := []struct {
		input string
		want  ComplianceStatus
		ok    bool
	}{
		{"compliant", Compliant, true},
		{"Non Compliant", NonCompliant, true},
		{"at-risk", AtRisk, true},
		{"not_yet_due", NotYetDue, true},
		{"fine", Unknown, false},
		{"", Unknown, false},
	}
	for _, tc := range cases {
		got, ok := CanonicalizeStatus(tc.input)
		if got != tc.want || ok != tc.ok {
			t.Errorf("CanonicalizeStatus(%q) = (%q, %v), want (%q, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestEnumMemberCounts(t *testing.T) {
	if n := len(AllCategories()); n != 11 {
		t.Errorf("expected 11 categories, got %d", n)
	}
	if n := len(AllFrequencies()); n != 7 {
		t.Errorf("expected 7 frequencies, got %d", n)
	}
	if n := len(AllStatuses()); n != 6 {
		t.Errorf("expected 6 statuses, got %d", n)
	}
	if n := len(AllSeverities()); n != 4 {
		t.Errorf("expected 4 severities, got %d", n)
	}
}
