package compliance

import (
	"testing"

	"github.com/loanguard/loanguard/constants"
	"github.com/loanguard/loanguard/internal/entity"
)

func reqWith(status constants.ComplianceStatus, severity constants.Severity, category constants.RequirementCategory) *entity.LoanRequirement {
	return &entity.LoanRequirement{
		ID:       "REQ-000",
		Title:    "Requirement",
		Category: category,
		Severity: severity,
		Status:   status,
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		statuses []constants.ComplianceStatus
		want     int
	}{
		{"empty scores full marks", nil, 100},
		{"all compliant", []constants.ComplianceStatus{constants.Compliant, constants.Compliant}, 100},
		{"all non compliant", []constants.ComplianceStatus{constants.NonCompliant, constants.NonCompliant}, 0},
		{"at risk counts half", []constants.ComplianceStatus{constants.AtRisk, constants.AtRisk}, 50},
		{
			"mixed truncates toward zero",
			[]constants.ComplianceStatus{constants.Compliant, constants.Compliant, constants.AtRisk, constants.NonCompliant},
			62,
		},
		{"unknown counts zero", []constants.ComplianceStatus{constants.Unknown, constants.Compliant}, 50},
		{"pending counts zero", []constants.ComplianceStatus{constants.Pending, constants.NotYetDue, constants.Compliant}, 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reqs []*entity.LoanRequirement
			for _, st := range tt.statuses {
				reqs = append(reqs, reqWith(st, constants.Medium, constants.OtherCategory))
			}
			if got := Score(reqs); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	profile := &entity.LoanProfile{
		LoanID: "LOAN-001",
		Requirements: []*entity.LoanRequirement{
			reqWith(constants.Compliant, constants.Critical, constants.FinancialReporting),
			reqWith(constants.Compliant, constants.High, constants.FinancialReporting),
			reqWith(constants.AtRisk, constants.Medium, constants.CovenantCompliance),
			reqWith(constants.NonCompliant, constants.Critical, constants.Insurance),
		},
	}

	s := Summarize(profile)

	if s.TotalRequirements != 4 {
		t.Errorf("TotalRequirements = %d, want 4", s.TotalRequirements)
	}
	if s.CriticalItems != 2 {
		t.Errorf("CriticalItems = %d, want 2", s.CriticalItems)
	}
	if s.NonCompliantCount != 1 {
		t.Errorf("NonCompliantCount = %d, want 1", s.NonCompliantCount)
	}
	if s.AtRiskCount != 1 {
		t.Errorf("AtRiskCount = %d, want 1", s.AtRiskCount)
	}
	if s.Score != 62 {
		t.Errorf("Score = %d, want 62", s.Score)
	}
	if got := s.ByStatus[constants.Compliant]; got != 2 {
		t.Errorf("ByStatus[compliant] = %d, want 2", got)
	}
	if got := s.ByCategory[constants.FinancialReporting]; got != 2 {
		t.Errorf("ByCategory[financial_reporting] = %d, want 2", got)
	}
}

func TestSummarizeEmptyProfileHasCompleteMaps(t *testing.T) {
	s := Summarize(&entity.LoanProfile{LoanID: "LOAN-002"})

	if s.Score != 100 {
		t.Errorf("Score = %d, want 100", s.Score)
	}
	if len(s.ByStatus) != len(constants.AllStatuses()) {
		t.Errorf("ByStatus has %d keys, want %d", len(s.ByStatus), len(constants.AllStatuses()))
	}
	if len(s.ByCategory) != len(constants.AllCategories()) {
		t.Errorf("ByCategory has %d keys, want %d", len(s.ByCategory), len(constants.AllCategories()))
	}
	for st, n := range s.ByStatus {
		if n != 0 {
			t.Errorf("ByStatus[%s] = %d, want 0", st, n)
		}
	}
}

func TestCountBySeverity(t *testing.T) {
	reqs := []*entity.LoanRequirement{
		reqWith(constants.Unknown, constants.Critical, constants.OtherCategory),
		reqWith(constants.Unknown, constants.Critical, constants.OtherCategory),
		reqWith(constants.Unknown, constants.Low, constants.OtherCategory),
	}
	counts := CountBySeverity(reqs)
	if counts[constants.Critical] != 2 {
		t.Errorf("critical = %d, want 2", counts[constants.Critical])
	}
	if counts[constants.Low] != 1 {
		t.Errorf("low = %d, want 1", counts[constants.Low])
	}
	if counts[constants.High] != 0 || counts[constants.Medium] != 0 {
		t.Errorf("untouched severities should be zero, got high=%d medium=%d",
			counts[constants.High], counts[constants.Medium])
	}
}
