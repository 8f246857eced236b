package utils

import (
	"time"

	compliancepb "github.com/loanguard/loanguard/gen/proto/compliance/v1"
	"github.com/loanguard/loanguard/internal/entity"
	"github.com/loanguard/loanguard/internal/repository"
)

func ToPBProfile(p *entity.LoanProfile) *compliancepb.LoanProfile {
	out := &compliancepb.LoanProfile{
		LoanId:             p.LoanID,
		LoanName:           p.LoanName,
		PropertyName:       p.PropertyName,
		BorrowerName:       p.BorrowerName,
		LenderName:         p.LenderName,
		OriginalLoanAmount: p.OriginalLoanAmount,
		CurrentBalance:     p.CurrentBalance,
		OriginationDate:    p.OriginationDate,
		MaturityDate:       p.MaturityDate,
		SourceDocuments:    p.SourceDocuments,
		ExtractionDate:     p.ExtractionDate.UTC().Format(time.RFC3339),
	}
	for _, req := range p.Requirements {
		out.Requirements = append(out.Requirements, ToPBRequirement(req))
	}
	for _, ev := range p.Events {
		out.Events = append(out.Events, toPBEvent(ev))
	}
	return out
}

func ToPBRequirement(r *entity.LoanRequirement) *compliancepb.Requirement {
	out := &compliancepb.Requirement{
		Id:                   r.ID,
		Title:                r.Title,
		Category:             string(r.Category),
		Description:          r.Description,
		PlainLanguageSummary: r.PlainLanguageSummary,
		OriginalText:         r.OriginalText,
		DocumentReference:    r.DocumentReference,
		Severity:             string(r.Severity),
		CurePeriodDays:       i32Ptr(r.CurePeriodDays),
		Status:               string(r.Status),
		Notes:                r.Notes,
	}
	if r.Deadline != nil {
		out.Deadline = &compliancepb.Deadline{
			Description:        r.Deadline.Description,
			Frequency:          string(r.Deadline.Frequency),
			DaysAfterPeriodEnd: i32Ptr(r.Deadline.DaysAfterPeriodEnd),
			DayOfMonth:         i32Ptr(r.Deadline.DayOfMonth),
			SpecificDate:       r.Deadline.SpecificDate,
		}
	}
	if r.Threshold != nil {
		out.Threshold = &compliancepb.Threshold{
			Metric:         r.Threshold.Metric,
			Operator:       r.Threshold.Operator,
			Value:          r.Threshold.Value,
			SecondaryValue: r.Threshold.SecondaryValue,
			Unit:           r.Threshold.Unit,
		}
	}
	if r.LastChecked != nil {
		checked := r.LastChecked.UTC().Format(time.RFC3339)
		out.LastChecked = &checked
	}
	return out
}

func toPBEvent(ev *entity.ComplianceEvent) *compliancepb.ComplianceEvent {
	return &compliancepb.ComplianceEvent{
		RequirementId: ev.RequirementID,
		EventDate:     ev.EventDate.UTC().Format(time.RFC3339),
		EventType:     ev.EventType,
		Description:   ev.Description,
		SubmittedBy:   ev.SubmittedBy,
		Documents:     ev.Documents,
	}
}

func ToPBLoanSummary(row *repository.LoanSummaryRow) *compliancepb.LoanSummary {
	return &compliancepb.LoanSummary{
		LoanId:           row.LoanID,
		LoanName:         row.LoanName,
		PropertyName:     row.PropertyName,
		BorrowerName:     row.BorrowerName,
		LenderName:       row.LenderName,
		ComplianceScore:  int32(row.ComplianceScore),
		RequirementCount: int32(row.Requirements),
		ExtractionDate:   row.ExtractionDate.UTC().Format(time.RFC3339),
	}
}

func i32Ptr(p *int) *int32 {
	if p == nil {
		return nil
	}
	v := int32(*p)
	return &v
}
