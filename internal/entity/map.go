package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/loanguard/loanguard/constants"
)

// This file holds the canonical mapping-to-primitives form consumed by
// formatting/storage collaborators, and its defensive inverse. Enums
// serialize to their string values, absent optionals to nil, nested
// entities to nested maps or nil.
//
// The From-Map constructors are the single coercion boundary: every
// enum-valued field is canonicalized with its default on miss, every
// optional field tolerates absence or a wrong type, and no input map
// ever causes an error. Downstream code treats the result as fully
// validated.

// ToMap serializes the deadline to its primitive form.
func (d *Deadline) ToMap() map[string]any {
	return map[string]any{
		"description":           d.Description,
		"days_after_period_end": intPtrValue(d.DaysAfterPeriodEnd),
		"specific_date":         strPtrValue(d.SpecificDate),
		"day_of_month":          intPtrValue(d.DayOfMonth),
		"frequency":             string(d.Frequency),
	}
}

// ToMap serializes the threshold to its primitive form.
func (t *Threshold) ToMap() map[string]any {
	return map[string]any{
		"metric":          t.Metric,
		"operator":        t.Operator,
		"value":           t.Value,
		"secondary_value": floatPtrValue(t.SecondaryValue),
		"unit":            strPtrValue(t.Unit),
	}
}

// ToMap serializes the requirement to its primitive form.
func (r *LoanRequirement) ToMap() map[string]any {
	var deadline, threshold any
	if r.Deadline != nil {
		deadline = r.Deadline.ToMap()
	}
	if r.Threshold != nil {
		threshold = r.Threshold.ToMap()
	}
	var lastChecked any
	if r.LastChecked != nil {
		lastChecked = r.LastChecked.UTC().Format(time.RFC3339)
	}
	return map[string]any{
		"id":                     r.ID,
		"title":                  r.Title,
		"category":               string(r.Category),
		"description":            r.Description,
		"plain_language_summary": r.PlainLanguageSummary,
		"original_text":          r.OriginalText,
		"document_reference":     r.DocumentReference,
		"deadline":               deadline,
		"threshold":              threshold,
		"severity":               string(r.Severity),
		"cure_period_days":       intPtrValue(r.CurePeriodDays),
		"status":                 string(r.Status),
		"last_checked":           lastChecked,
		"notes":                  r.Notes,
	}
}

// ToMap serializes the event to its primitive form.
func (e *ComplianceEvent) ToMap() map[string]any {
	docs := e.Documents
	if docs == nil {
		docs = []string{}
	}
	return map[string]any{
		"requirement_id": e.RequirementID,
		"event_date":     e.EventDate.UTC().Format(time.RFC3339),
		"event_type":     e.EventType,
		"description":    e.Description,
		"submitted_by":   strPtrValue(e.SubmittedBy),
		"documents":      docs,
	}
}

// ToMap serializes the profile to its primitive form.
func (p *LoanProfile) ToMap() map[string]any {
	reqs := make([]any, len(p.Requirements))
	for i, r := range p.Requirements {
		reqs[i] = r.ToMap()
	}
	events := make([]any, len(p.Events))
	for i, e := range p.Events {
		events[i] = e.ToMap()
	}
	docs := p.SourceDocuments
	if docs == nil {
		docs = []string{}
	}
	return map[string]any{
		"loan_id":              p.LoanID,
		"loan_name":            p.LoanName,
		"property_name":        p.PropertyName,
		"borrower_name":        p.BorrowerName,
		"lender_name":          p.LenderName,
		"original_loan_amount": p.OriginalLoanAmount,
		"current_balance":      floatPtrValue(p.CurrentBalance),
		"origination_date":     strPtrValue(p.OriginationDate),
		"maturity_date":        strPtrValue(p.MaturityDate),
		"requirements":         reqs,
		"events":               events,
		"source_documents":     docs,
		"extraction_date":      p.ExtractionDate.UTC().Format(time.RFC3339),
	}
}

// DeadlineFromMap coerces a loose map into a Deadline.
func DeadlineFromMap(m map[string]any) *Deadline {
	frequency, _ := constants.CanonicalizeFrequency(StringField(m, "frequency"))
	return &Deadline{
		Description:        StringField(m, "description"),
		Frequency:          frequency,
		DaysAfterPeriodEnd: IntPtrField(m, "days_after_period_end"),
		DayOfMonth:         IntPtrField(m, "day_of_month"),
		SpecificDate:       StringPtrField(m, "specific_date"),
	}
}

// ThresholdFromMap coerces a loose map into a Threshold.
func ThresholdFromMap(m map[string]any) *Threshold {
	operator := StringField(m, "operator")
	if operator == "" {
		operator = ">="
	}
	return &Threshold{
		Metric:         StringField(m, "metric"),
		Operator:       operator,
		Value:          FloatField(m, "value"),
		SecondaryValue: FloatPtrField(m, "secondary_value"),
		Unit:           StringPtrField(m, "unit"),
	}
}

// RequirementFromMap coerces a loose map into a LoanRequirement with the
// given id. The id always wins over any "id" key in the map; callers
// that preserve serialized ids pass them explicitly.
func RequirementFromMap(m map[string]any, id string) *LoanRequirement {
	category, _ := constants.CanonicalizeCategory(StringField(m, "category"))
	severity, _ := constants.CanonicalizeSeverity(StringField(m, "severity"))
	status, _ := constants.CanonicalizeStatus(StringField(m, "status"))

	title := StringField(m, "title")
	if title == "" {
		title = "Requirement " + strconv.Itoa(ordinalFromID(id))
	}

	var deadline *Deadline
	if dm := MapField(m, "deadline"); dm != nil {
		deadline = DeadlineFromMap(dm)
	}
	var threshold *Threshold
	if tm := MapField(m, "threshold"); tm != nil {
		threshold = ThresholdFromMap(tm)
	}

	cure := IntPtrField(m, "cure_period_days")
	if cure != nil && *cure < 0 {
		cure = nil
	}

	var lastChecked *time.Time
	if raw := StringField(m, "last_checked"); raw != "" {
		if ts, err := time.Parse(time.RFC3339, raw); err == nil {
			lastChecked = &ts
		}
	}

	return &LoanRequirement{
		ID:                   id,
		Title:                title,
		Category:             category,
		Description:          StringField(m, "description"),
		PlainLanguageSummary: StringField(m, "plain_language_summary"),
		OriginalText:         TruncateExcerpt(StringField(m, "original_text")),
		DocumentReference:    StringField(m, "document_reference"),
		Deadline:             deadline,
		Threshold:            threshold,
		Severity:             severity,
		CurePeriodDays:       cure,
		Status:               status,
		LastChecked:          lastChecked,
		Notes:                StringField(m, "notes"),
	}
}

// EventFromMap coerces a loose map into a ComplianceEvent.
func EventFromMap(m map[string]any) *ComplianceEvent {
	var eventDate time.Time
	if raw := StringField(m, "event_date"); raw != "" {
		if ts, err := time.Parse(time.RFC3339, raw); err == nil {
			eventDate = ts
		}
	}
	return &ComplianceEvent{
		RequirementID: StringField(m, "requirement_id"),
		EventDate:     eventDate,
		EventType:     StringField(m, "event_type"),
		Description:   StringField(m, "description"),
		SubmittedBy:   StringPtrField(m, "submitted_by"),
		Documents:     StringSliceField(m, "documents"),
	}
}

// ProfileFromMap reconstructs a profile from its primitive form.
// Requirement ids are preserved from the serialized data.
func ProfileFromMap(m map[string]any) *LoanProfile {
	var extractionDate time.Time
	if raw := StringField(m, "extraction_date"); raw != "" {
		if ts, err := time.Parse(time.RFC3339, raw); err == nil {
			extractionDate = ts
		}
	}

	var requirements []*LoanRequirement
	for i, item := range SliceField(m, "requirements") {
		rm, _ := item.(map[string]any)
		if rm == nil {
			rm = map[string]any{}
		}
		id := StringField(rm, "id")
		if id == "" {
			id = RequirementID(i + 1)
		}
		requirements = append(requirements, RequirementFromMap(rm, id))
	}

	var events []*ComplianceEvent
	for _, item := range SliceField(m, "events") {
		if em, ok := item.(map[string]any); ok {
			events = append(events, EventFromMap(em))
		}
	}

	return &LoanProfile{
		LoanID:             StringField(m, "loan_id"),
		LoanName:           StringField(m, "loan_name"),
		PropertyName:       StringField(m, "property_name"),
		BorrowerName:       StringField(m, "borrower_name"),
		LenderName:         StringField(m, "lender_name"),
		OriginalLoanAmount: FloatField(m, "original_loan_amount"),
		CurrentBalance:     FloatPtrField(m, "current_balance"),
		OriginationDate:    StringPtrField(m, "origination_date"),
		MaturityDate:       StringPtrField(m, "maturity_date"),
		Requirements:       requirements,
		Events:             events,
		SourceDocuments:    StringSliceField(m, "source_documents"),
		ExtractionDate:     extractionDate,
	}
}

func ordinalFromID(id string) int {
	if i := strings.LastIndexByte(id, '-'); i >= 0 {
		if n, err := strconv.Atoi(strings.TrimLeft(id[i+1:], "0")); err == nil {
			return n
		}
	}
	return 0
}

func intPtrValue(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func floatPtrValue(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func strPtrValue(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
