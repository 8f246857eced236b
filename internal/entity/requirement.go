package entity

import (
	"fmt"
	"time"

	"github.com/loanguard/loanguard/constants"
)

// MaxOriginalTextLen caps the source excerpt carried on a requirement.
// Longer excerpts are truncated, never rejected.
const MaxOriginalTextLen = 500

// Deadline is the timing contract for a requirement.
type Deadline struct {
	Description        string              `json:"description"`
	Frequency          constants.Frequency `json:"frequency"`
	DaysAfterPeriodEnd *int                `json:"days_after_period_end,omitempty"`
	DayOfMonth         *int                `json:"day_of_month,omitempty"`
	SpecificDate       *string             `json:"specific_date,omitempty"` // YYYY-MM-DD, for one-time items
}

// Threshold is a covenant limit, e.g. DSCR >= 1.25x.
type Threshold struct {
	Metric         string   `json:"metric"`
	Operator       string   `json:"operator"` // >=, <=, >, <, ==, between
	Value          float64  `json:"value"`
	SecondaryValue *float64 `json:"secondary_value,omitempty"` // only for "between"
	Unit           *string  `json:"unit,omitempty"`            // %, $, x
}

// HumanReadable renders the threshold as natural language.
func (t *Threshold) HumanReadable() string {
	unit := ""
	if t.Unit != nil {
		unit = *t.Unit
	}
	switch t.Operator {
	case "between":
		secondary := 0.0
		if t.SecondaryValue != nil {
			secondary = *t.SecondaryValue
		}
		return fmt.Sprintf("%s must be between %v%s and %v%s", t.Metric, t.Value, unit, secondary, unit)
	case ">=":
		return fmt.Sprintf("%s must be at least %v%s", t.Metric, t.Value, unit)
	case "<=":
		return fmt.Sprintf("%s must not exceed %v%s", t.Metric, t.Value, unit)
	case ">":
		return fmt.Sprintf("%s must be greater than %v%s", t.Metric, t.Value, unit)
	case "<":
		return fmt.Sprintf("%s must be less than %v%s", t.Metric, t.Value, unit)
	default:
		return fmt.Sprintf("%s %s %v%s", t.Metric, t.Operator, t.Value, unit)
	}
}

// LoanRequirement is one obligation extracted from a loan document.
//
// Category, severity, and status are always valid enum members; the
// builders coerce any unrecognized input to the enum's default, so
// downstream code never re-validates. Only Status, Notes, and
// LastChecked are mutated after construction.
type LoanRequirement struct {
	ID                   string                        `json:"id"` // REQ-001.., monotonic within a profile
	Title                string                        `json:"title"`
	Category             constants.RequirementCategory `json:"category"`
	Description          string                        `json:"description"`
	PlainLanguageSummary string                        `json:"plain_language_summary"`
	OriginalText         string                        `json:"original_text"`
	DocumentReference    string                        `json:"document_reference"`

	Deadline  *Deadline  `json:"deadline,omitempty"`
	Threshold *Threshold `json:"threshold,omitempty"`

	Severity       constants.Severity `json:"severity"`
	CurePeriodDays *int               `json:"cure_period_days,omitempty"`

	Status      constants.ComplianceStatus `json:"status"`
	LastChecked *time.Time                 `json:"last_checked,omitempty"`
	Notes       string                     `json:"notes"`
}

// RequirementID formats the ordinal-based requirement id for index (1-based).
func RequirementID(index int) string {
	return fmt.Sprintf("REQ-%03d", index)
}

// TruncateExcerpt bounds a source excerpt to MaxOriginalTextLen
// characters without splitting a rune.
func TruncateExcerpt(s string) string {
	if len(s) <= MaxOriginalTextLen {
		return s
	}
	runes := []rune(s)
	if len(runes) <= MaxOriginalTextLen {
		return s
	}
	return string(runes[:MaxOriginalTextLen])
}
