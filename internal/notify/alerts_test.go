package notify

import (
	"testing"
	"time"

	"github.com/loanguard/loanguard/constants"
	"github.com/loanguard/loanguard/internal/entity"
)

var refDate = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func datedReq(id, date string, severity constants.Severity) *entity.LoanRequirement {
	return &entity.LoanRequirement{
		ID:       id,
		Title:    "Requirement " + id,
		Category: constants.FinancialReporting,
		Deadline: &entity.Deadline{SpecificDate: &date, Frequency: constants.OneTime},
		Severity: severity,
		Status:   constants.Unknown,
	}
}

func TestCheckLoanDeadlines(t *testing.T) {
	tests := []struct {
		name     string
		req      *entity.LoanRequirement
		wantType AlertType
		wantNone bool
	}{
		{"past due raises overdue", datedReq("REQ-001", "2026-03-01", constants.Medium), DeadlineOverdue, false},
		{"due in a week raises upcoming", datedReq("REQ-002", "2026-03-20", constants.Medium), DeadlineUpcoming, false},
		{"due today raises upcoming", datedReq("REQ-003", "2026-03-15", constants.Medium), DeadlineUpcoming, false},
		{"far out medium stays quiet", datedReq("REQ-004", "2026-04-10", constants.Medium), "", true},
		{"far out critical gets the long window", datedReq("REQ-005", "2026-04-10", constants.Critical), DeadlineUpcoming, false},
		{"beyond a month even critical stays quiet", datedReq("REQ-006", "2026-06-01", constants.Critical), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := &entity.LoanProfile{
				LoanID:       "LOAN-1",
				PropertyName: "Park Plaza",
				Requirements: []*entity.LoanRequirement{tt.req},
			}
			alerts := CheckLoan(profile, refDate)
			if tt.wantNone {
				if len(alerts) != 0 {
					t.Fatalf("got %d alerts, want none: %+v", len(alerts), alerts)
				}
				return
			}
			if len(alerts) != 1 {
				t.Fatalf("got %d alerts, want 1", len(alerts))
			}
			if alerts[0].Type != tt.wantType {
				t.Errorf("alert type = %s, want %s", alerts[0].Type, tt.wantType)
			}
			if alerts[0].RequirementID != tt.req.ID {
				t.Errorf("requirement id = %s, want %s", alerts[0].RequirementID, tt.req.ID)
			}
		})
	}
}

func TestCheckLoanUnparseableDateSkipped(t *testing.T) {
	bad := "next quarter"
	profile := &entity.LoanProfile{
		LoanID: "LOAN-2",
		Requirements: []*entity.LoanRequirement{{
			ID:       "REQ-001",
			Title:    "Budget",
			Deadline: &entity.Deadline{SpecificDate: &bad},
			Severity: constants.Critical,
			Status:   constants.Unknown,
		}},
	}
	if alerts := CheckLoan(profile, refDate); len(alerts) != 0 {
		t.Errorf("unparseable deadline produced %d alerts, want 0", len(alerts))
	}
}

func TestCheckLoanCovenants(t *testing.T) {
	threshold := &entity.Threshold{Metric: "DSCR", Operator: ">=", Value: 1.25}
	cure := 30
	mk := func(status constants.ComplianceStatus) *entity.LoanProfile {
		return &entity.LoanProfile{
			LoanID:       "LOAN-3",
			PropertyName: "Park Plaza",
			Requirements: []*entity.LoanRequirement{{
				ID: "REQ-001", Title: "DSCR Covenant",
				Threshold: threshold, CurePeriodDays: &cure,
				Severity: constants.Critical, Status: status,
			}},
		}
	}

	atRisk := CheckLoan(mk(constants.AtRisk), refDate)
	if len(atRisk) != 1 || atRisk[0].Type != CovenantAtRisk {
		t.Fatalf("at-risk covenant: got %+v", atRisk)
	}

	breach := CheckLoan(mk(constants.NonCompliant), refDate)
	if len(breach) != 1 || breach[0].Type != CovenantBreach {
		t.Fatalf("breached covenant: got %+v", breach)
	}
	if breach[0].Data["cure_period_days"] != 30 {
		t.Errorf("cure_period_days = %v, want 30", breach[0].Data["cure_period_days"])
	}

	quiet := CheckLoan(mk(constants.Compliant), refDate)
	if len(quiet) != 0 {
		t.Errorf("compliant covenant produced %d alerts, want 0", len(quiet))
	}
}

func TestPortfolioSummary(t *testing.T) {
	profiles := []*entity.LoanProfile{
		{
			PropertyName: "Park Plaza",
			Requirements: []*entity.LoanRequirement{
				{Status: constants.Compliant}, {Status: constants.NonCompliant},
			},
		},
		{
			PropertyName: "Harborview",
			Requirements: []*entity.LoanRequirement{
				{Status: constants.Compliant}, {Status: constants.AtRisk},
			},
		},
	}

	alert := PortfolioSummary(profiles)

	if alert.Type != WeeklySummary {
		t.Errorf("type = %s", alert.Type)
	}
	if alert.Data["total_requirements"] != 4 {
		t.Errorf("total_requirements = %v, want 4", alert.Data["total_requirements"])
	}
	if alert.Data["overdue_count"] != 1 || alert.Data["at_risk_count"] != 1 {
		t.Errorf("counts = %v / %v", alert.Data["overdue_count"], alert.Data["at_risk_count"])
	}
	if alert.Data["compliance_rate"] != 50.0 {
		t.Errorf("compliance_rate = %v, want 50", alert.Data["compliance_rate"])
	}
}

func TestPortfolioSummaryEmpty(t *testing.T) {
	alert := PortfolioSummary(nil)
	if alert.Data["compliance_rate"] != 0.0 {
		t.Errorf("compliance_rate = %v, want 0", alert.Data["compliance_rate"])
	}
}
