package extract

import (
	"context"
	"testing"

	"github.com/loanguard/loanguard/constants"
)

func TestFixtureExtractorIsDeterministic(t *testing.T) {
	e := NewFixtureExtractor()

	a, err := e.ExtractRequirements(context.Background(), "any document text", "DEMO-001")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	b, err := e.ExtractRequirements(context.Background(), "completely different text", "DEMO-001")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	if a.PropertyName != "123 Main Street Office Building" {
		t.Errorf("property = %q", a.PropertyName)
	}
	if len(a.Requirements) != 8 || len(b.Requirements) != 8 {
		t.Fatalf("requirement counts = %d, %d, want 8", len(a.Requirements), len(b.Requirements))
	}
	for i, r := range a.Requirements {
		if r.ID != b.Requirements[i].ID || r.Title != b.Requirements[i].Title {
			t.Errorf("requirement %d differs across invocations", i)
		}
	}
	if a.Requirements[0].ID != "REQ-001" || a.Requirements[7].ID != "REQ-008" {
		t.Errorf("ids = %s..%s, want REQ-001..REQ-008", a.Requirements[0].ID, a.Requirements[7].ID)
	}
}

func TestFixtureCoversRepresentativeShapes(t *testing.T) {
	e := NewFixtureExtractor()
	p, err := e.ExtractRequirements(context.Background(), "", "DEMO-001")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	var withThreshold, withCure, withDayOfMonth int
	categories := map[constants.RequirementCategory]int{}
	for _, r := range p.Requirements {
		categories[r.Category]++
		if r.Threshold != nil {
			withThreshold++
		}
		if r.CurePeriodDays != nil {
			withCure++
		}
		if r.Deadline != nil && r.Deadline.DayOfMonth != nil {
			withDayOfMonth++
		}
		if r.Status != constants.Unknown {
			t.Errorf("%s: initial status = %q, want unknown", r.ID, r.Status)
		}
	}

	if categories[constants.FinancialReporting] != 4 {
		t.Errorf("financial_reporting count = %d, want 4", categories[constants.FinancialReporting])
	}
	for _, cat := range []constants.RequirementCategory{
		constants.CovenantCompliance, constants.Insurance, constants.ReserveFunding, constants.Leasing,
	} {
		if categories[cat] != 1 {
			t.Errorf("%s count = %d, want 1", cat, categories[cat])
		}
	}
	if withThreshold != 2 {
		t.Errorf("threshold count = %d, want 2", withThreshold)
	}
	if withCure != 1 {
		t.Errorf("cure period count = %d, want 1", withCure)
	}
	if withDayOfMonth != 2 {
		t.Errorf("day-of-month count = %d, want 2", withDayOfMonth)
	}
}
