package entity

import (
	"reflect"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/loanguard/loanguard/constants"
)

func TestThresholdHumanReadable(t *testing.T) {
	unit := "x"
	dollar := "$"
	secondary := 1.5

	cases := []struct {
		name string
		th   Threshold
		want string
	}{
		{"at least", Threshold{Metric: "DSCR", Operator: ">=", Value: 1.25, Unit: &unit}, "DSCR must be at least 1.25x"},
		{"not exceed", Threshold{Metric: "LTV", Operator: "<=", Value: 75}, "LTV must not exceed 75"},
		{"greater than", Threshold{Metric: "Debt Yield", Operator: ">", Value: 8}, "Debt Yield must be greater than 8"},
		{"less than", Threshold{Metric: "Vacancy", Operator: "<", Value: 10}, "Vacancy must be less than 10"},
		{"between", Threshold{Metric: "DSCR", Operator: "between", Value: 1.2, SecondaryValue: &secondary, Unit: &unit}, "DSCR must be between 1.2x and 1.5x"},
		{"fallback", Threshold{Metric: "Deposit", Operator: "==", Value: 2500, Unit: &dollar}, "Deposit == 2500$"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.th.HumanReadable(); got != tc.want {
				t.Errorf("HumanReadable() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRequirementFromMapCoercion(t *testing.T) {
	t.Run("invalid enums fall back to defaults", func(t *testing.T) {
		r := RequirementFromMap(map[string]any{
			"title":    "Covenant",
			"category": "zoning-nonsense",
			"severity": "catastrophic",
			"status":   "great",
		}, "REQ-001")
		if r.Category != constants.OtherCategory {
			t.Errorf("category = %q, want other", r.Category)
		}
		if r.Severity != constants.Medium {
			t.Errorf("severity = %q, want medium", r.Severity)
		}
		if r.Status != constants.Unknown {
			t.Errorf("status = %q, want unknown", r.Status)
		}
		// sibling fields unaffected
		if r.Title != "Covenant" {
			t.Errorf("title = %q, want Covenant", r.Title)
		}
	})

	t.Run("missing fields get defaults", func(t *testing.T) {
		r := RequirementFromMap(map[string]any{}, "REQ-003")
		if r.Title != "Requirement 3" {
			t.Errorf("title = %q, want Requirement 3", r.Title)
		}
		if r.Severity != constants.Medium || r.Status != constants.Unknown || r.Category != constants.OtherCategory {
			t.Errorf("defaults wrong: %q %q %q", r.Severity, r.Status, r.Category)
		}
		if r.Deadline != nil || r.Threshold != nil || r.CurePeriodDays != nil {
			t.Error("optional fields should be absent")
		}
		if r.PlainLanguageSummary != "" {
			t.Errorf("summary = %q, want empty", r.PlainLanguageSummary)
		}
	})

	t.Run("wrong-typed fields are absorbed", func(t *testing.T) {
		r := RequirementFromMap(map[string]any{
			"title":            42.0,
			"deadline":         "next week",
			"threshold":        []any{"DSCR"},
			"cure_period_days": "thirty",
		}, "REQ-001")
		if r.Title != "Requirement 1" {
			t.Errorf("title = %q", r.Title)
		}
		if r.Deadline != nil || r.Threshold != nil || r.CurePeriodDays != nil {
			t.Error("wrong-typed optionals should coerce to absent")
		}
	})

	t.Run("negative cure period is absent", func(t *testing.T) {
		r := RequirementFromMap(map[string]any{"cure_period_days": -5.0}, "REQ-001")
		if r.CurePeriodDays != nil {
			t.Errorf("cure_period_days = %v, want nil", *r.CurePeriodDays)
		}
	})

	t.Run("long excerpt is truncated", func(t *testing.T) {
		r := RequirementFromMap(map[string]any{
			"original_text": strings.Repeat("a", 900),
		}, "REQ-001")
		if n := utf8.RuneCountInString(r.OriginalText); n != MaxOriginalTextLen {
			t.Errorf("original_text runes = %d, want %d", n, MaxOriginalTextLen)
		}
	})

	t.Run("excerpt cap counts characters not bytes", func(t *testing.T) {
		r := RequirementFromMap(map[string]any{
			"original_text": strings.Repeat("é", 400),
		}, "REQ-001")
		if n := utf8.RuneCountInString(r.OriginalText); n != 400 {
			t.Errorf("original_text runes = %d, want 400 (untruncated)", n)
		}

		r = RequirementFromMap(map[string]any{
			"original_text": strings.Repeat("é", 900),
		}, "REQ-001")
		if !utf8.ValidString(r.OriginalText) {
			t.Error("truncation produced invalid UTF-8")
		}
		if n := utf8.RuneCountInString(r.OriginalText); n != MaxOriginalTextLen {
			t.Errorf("original_text runes = %d, want %d", n, MaxOriginalTextLen)
		}
	})

	t.Run("deadline frequency coerces", func(t *testing.T) {
		r := RequirementFromMap(map[string]any{
			"deadline": map[string]any{
				"description": "45 days after quarter end",
				"frequency":   "every so often",
			},
		}, "REQ-001")
		if r.Deadline == nil {
			t.Fatal("deadline missing")
		}
		if r.Deadline.Frequency != constants.AsNeeded {
			t.Errorf("frequency = %q, want as_needed", r.Deadline.Frequency)
		}
	})
}

func TestCriticalRequirements(t *testing.T) {
	p := &LoanProfile{
		Requirements: []*LoanRequirement{
			{ID: "REQ-001", Severity: constants.Critical},
			{ID: "REQ-002", Severity: constants.Medium},
			{ID: "REQ-003", Severity: constants.Critical},
		},
	}
	got := p.CriticalRequirements()
	if len(got) != 2 {
		t.Fatalf("critical count = %d, want 2", len(got))
	}
	if got[0].ID != "REQ-001" || got[1].ID != "REQ-003" {
		t.Errorf("critical ids = %s, %s; want REQ-001, REQ-003", got[0].ID, got[1].ID)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	days := 45
	cure := 30
	unit := "x"
	balance := 9500000.0
	orig := "2024-01-15"
	submittedBy := "analyst@example.com"
	checked := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	p := &LoanProfile{
		LoanID:             "LOAN-042",
		LoanName:           "Loan LOAN-042",
		PropertyName:       "Harborview Plaza",
		BorrowerName:       "Harborview LLC",
		LenderName:         "First National",
		OriginalLoanAmount: 12000000,
		CurrentBalance:     &balance,
		OriginationDate:    &orig,
		Requirements: []*LoanRequirement{
			{
				ID:                   "REQ-001",
				Title:                "Quarterly Financials",
				Category:             constants.FinancialReporting,
				Description:          "Deliver quarterly statements",
				PlainLanguageSummary: "Send statements every quarter",
				OriginalText:         "Borrower shall deliver...",
				DocumentReference:    "Section 5.1",
				Deadline: &Deadline{
					Description:        "45 days after quarter end",
					Frequency:          constants.Quarterly,
					DaysAfterPeriodEnd: &days,
				},
				Severity:    constants.High,
				Status:      constants.Compliant,
				LastChecked: &checked,
				Notes:       "submitted on time",
			},
			{
				ID:       "REQ-002",
				Title:    "DSCR Covenant",
				Category: constants.CovenantCompliance,
				Threshold: &Threshold{
					Metric:   "DSCR",
					Operator: ">=",
					Value:    1.25,
					Unit:     &unit,
				},
				Severity:       constants.Critical,
				CurePeriodDays: &cure,
				Status:         constants.Unknown,
			},
		},
		Events: []*ComplianceEvent{
			{
				RequirementID: "REQ-001",
				EventDate:     time.Date(2025, 5, 15, 9, 0, 0, 0, time.UTC),
				EventType:     "status_change",
				Description:   "unknown -> compliant",
				SubmittedBy:   &submittedBy,
				Documents:     []string{"q1-financials.pdf"},
			},
		},
		SourceDocuments: []string{"loan-agreement.pdf"},
		ExtractionDate:  time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	got := ProfileFromMap(p.ToMap())
	if !reflect.DeepEqual(got, p) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, p)
	}
}
