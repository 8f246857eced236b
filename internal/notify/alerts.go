// Package notify derives compliance alerts from loan profiles: overdue
// and upcoming deadlines, covenant breaches, and portfolio rollups.
// Delivery (email, webhooks) is a separate concern wired by callers.
package notify

import (
	"fmt"
	"time"

	"github.com/loanguard/loanguard/constants"
	"github.com/loanguard/loanguard/internal/entity"
)

type AlertType string

const (
	DeadlineUpcoming AlertType = "deadline_upcoming"
	DeadlineOverdue  AlertType = "deadline_overdue"
	CovenantAtRisk   AlertType = "covenant_at_risk"
	CovenantBreach   AlertType = "covenant_breach"
	WeeklySummary    AlertType = "weekly_summary"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Alert is one actionable finding against a loan.
type Alert struct {
	Type          AlertType      `json:"type"`
	Subject       string         `json:"subject"`
	LoanID        string         `json:"loan_id"`
	RequirementID string         `json:"requirement_id,omitempty"`
	Priority      Priority       `json:"priority"`
	Data          map[string]any `json:"data"`
}

const upcomingWindowDays = 7
const criticalWindowDays = 30

// CheckLoan scans a profile's requirements against the reference date and
// returns every alert it warrants. A dated deadline past due raises an
// overdue alert; one within seven days raises an upcoming alert, and
// critical items get the longer thirty-day window. Requirements with a
// threshold that are at risk or non-compliant raise a covenant alert.
// Undated or unparseable deadlines are skipped, not errors.
func CheckLoan(profile *entity.LoanProfile, now time.Time) []Alert {
	var alerts []Alert
	today := now.UTC().Truncate(24 * time.Hour)

	for _, req := range profile.Requirements {
		if req.Deadline != nil && req.Deadline.SpecificDate != nil {
			due, err := time.Parse("2006-01-02", *req.Deadline.SpecificDate)
			if err == nil {
				daysUntil := int(due.Sub(today).Hours() / 24)
				switch {
				case daysUntil < 0:
					alerts = append(alerts, overdueAlert(profile, req, -daysUntil))
				case daysUntil <= upcomingWindowDays:
					alerts = append(alerts, upcomingAlert(profile, req, daysUntil))
				case daysUntil <= criticalWindowDays && req.Severity == constants.Critical:
					alerts = append(alerts, upcomingAlert(profile, req, daysUntil))
				}
			}
		}

		if req.Threshold != nil &&
			(req.Status == constants.AtRisk || req.Status == constants.NonCompliant) {
			alerts = append(alerts, covenantAlert(profile, req))
		}
	}
	return alerts
}

func overdueAlert(profile *entity.LoanProfile, req *entity.LoanRequirement, daysOverdue int) Alert {
	return Alert{
		Type:          DeadlineOverdue,
		Subject:       fmt.Sprintf("OVERDUE: %s - %s", req.Title, profile.PropertyName),
		LoanID:        profile.LoanID,
		RequirementID: req.ID,
		Priority:      PriorityHigh,
		Data: map[string]any{
			"property_name":      profile.PropertyName,
			"requirement_title":  req.Title,
			"days_overdue":       daysOverdue,
			"description":        req.PlainLanguageSummary,
			"document_reference": req.DocumentReference,
			"severity":           string(req.Severity),
		},
	}
}

func upcomingAlert(profile *entity.LoanProfile, req *entity.LoanRequirement, daysUntil int) Alert {
	priority := PriorityHigh
	if daysUntil > upcomingWindowDays {
		priority = PriorityMedium
	}
	return Alert{
		Type:          DeadlineUpcoming,
		Subject:       fmt.Sprintf("Upcoming: %s due in %d days", req.Title, daysUntil),
		LoanID:        profile.LoanID,
		RequirementID: req.ID,
		Priority:      priority,
		Data: map[string]any{
			"property_name":      profile.PropertyName,
			"requirement_title":  req.Title,
			"days_until":         daysUntil,
			"description":        req.PlainLanguageSummary,
			"document_reference": req.DocumentReference,
		},
	}
}

func covenantAlert(profile *entity.LoanProfile, req *entity.LoanRequirement) Alert {
	alertType := CovenantAtRisk
	label := "AT RISK"
	if req.Status == constants.NonCompliant {
		alertType = CovenantBreach
		label = "BREACH"
	}
	data := map[string]any{
		"property_name":     profile.PropertyName,
		"requirement_title": req.Title,
		"description":       req.PlainLanguageSummary,
	}
	if req.Threshold != nil {
		data["threshold"] = req.Threshold.ToMap()
	}
	if req.CurePeriodDays != nil {
		data["cure_period_days"] = *req.CurePeriodDays
	}
	return Alert{
		Type:          alertType,
		Subject:       fmt.Sprintf("%s: %s - %s", label, req.Title, profile.PropertyName),
		LoanID:        profile.LoanID,
		RequirementID: req.ID,
		Priority:      PriorityHigh,
		Data:          data,
	}
}

// PortfolioSummary rolls up every profile into one low-priority digest
// alert addressed to the whole portfolio.
func PortfolioSummary(profiles []*entity.LoanProfile) Alert {
	var total, overdue, atRisk, compliant int
	loans := make([]map[string]any, 0, len(profiles))
	for _, p := range profiles {
		issues := 0
		for _, req := range p.Requirements {
			total++
			switch req.Status {
			case constants.NonCompliant:
				overdue++
				issues++
			case constants.AtRisk:
				atRisk++
				issues++
			case constants.Compliant:
				compliant++
			}
		}
		loans = append(loans, map[string]any{
			"property_name": p.PropertyName,
			"issues":        issues,
		})
	}

	rate := 0.0
	if total > 0 {
		rate = float64(compliant) / float64(total) * 100
	}

	return Alert{
		Type:     WeeklySummary,
		Subject:  fmt.Sprintf("Weekly Compliance Summary - %d Loans", len(profiles)),
		LoanID:   "ALL",
		Priority: PriorityLow,
		Data: map[string]any{
			"total_loans":        len(profiles),
			"total_requirements": total,
			"overdue_count":      overdue,
			"at_risk_count":      atRisk,
			"compliant_count":    compliant,
			"compliance_rate":    rate,
			"loans_summary":      loans,
		},
	}
}
