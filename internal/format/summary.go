package format

import (
	"encoding/json"

	"github.com/loanguard/loanguard/internal/compliance"
	"github.com/loanguard/loanguard/internal/entity"
)

// JSONSummary renders the compact machine-readable rollup: identity
// fields, counts, the critical items, and every dated obligation.
func JSONSummary(profile *entity.LoanProfile) ([]byte, error) {
	summary := compliance.Summarize(profile)

	type criticalItem struct {
		ID       string  `json:"id"`
		Title    string  `json:"title"`
		Status   string  `json:"status"`
		Deadline *string `json:"deadline"`
	}
	var critical []criticalItem
	for _, req := range profile.CriticalRequirements() {
		item := criticalItem{ID: req.ID, Title: req.Title, Status: string(req.Status)}
		if req.Deadline != nil {
			d := req.Deadline.Description
			item.Deadline = &d
		}
		critical = append(critical, item)
	}

	type deadlineItem struct {
		RequirementID string `json:"requirement_id"`
		Title         string `json:"title"`
		Frequency     string `json:"frequency"`
		Description   string `json:"description"`
	}
	var deadlines []deadlineItem
	for _, req := range profile.WithDeadlines() {
		deadlines = append(deadlines, deadlineItem{
			RequirementID: req.ID,
			Title:         req.Title,
			Frequency:     string(req.Deadline.Frequency),
			Description:   req.Deadline.Description,
		})
	}

	byStatus := make(map[string]int, len(summary.ByStatus))
	for status, n := range summary.ByStatus {
		byStatus[string(status)] = n
	}

	out := map[string]any{
		"loan_id":       profile.LoanID,
		"property_name": profile.PropertyName,
		"borrower_name": profile.BorrowerName,
		"lender_name":   profile.LenderName,
		"compliance_summary": map[string]any{
			"total_requirements":  summary.TotalRequirements,
			"critical_items":      summary.CriticalItems,
			"non_compliant_count": summary.NonCompliantCount,
			"at_risk_count":       summary.AtRiskCount,
			"compliance_score":    summary.Score,
			"by_status":           byStatus,
		},
		"critical_requirements": critical,
		"upcoming_deadlines":    deadlines,
	}
	return json.MarshalIndent(out, "", "  ")
}
