// Package format renders loan profiles for human review: a full markdown
// report, a task-style checklist, and a compact JSON summary for
// machine consumers.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/loanguard/loanguard/constants"
	"github.com/loanguard/loanguard/internal/compliance"
	"github.com/loanguard/loanguard/internal/entity"
)

// Markdown renders the full compliance report, grouped by category in
// canonical enum order.
func Markdown(profile *entity.LoanProfile, now time.Time) string {
	summary := compliance.Summarize(profile)

	var b strings.Builder
	b.WriteString("# Loan Compliance Checklist\n\n")
	fmt.Fprintf(&b, "**Loan ID:** %s\n", profile.LoanID)
	fmt.Fprintf(&b, "**Property:** %s\n", profile.PropertyName)
	fmt.Fprintf(&b, "**Borrower:** %s\n", profile.BorrowerName)
	fmt.Fprintf(&b, "**Lender:** %s\n", profile.LenderName)
	fmt.Fprintf(&b, "**Original Loan Amount:** %s\n\n", formatAmount(profile.OriginalLoanAmount))
	fmt.Fprintf(&b, "**Origination Date:** %s\n", orNA(profile.OriginationDate))
	fmt.Fprintf(&b, "**Maturity Date:** %s\n\n", orNA(profile.MaturityDate))
	fmt.Fprintf(&b, "**Report Generated:** %s\n\n", now.Format("2006-01-02 15:04"))
	b.WriteString("---\n\n## Compliance Summary\n\n")
	fmt.Fprintf(&b, "- **Total Requirements:** %d\n", summary.TotalRequirements)
	fmt.Fprintf(&b, "- **Critical Items:** %d\n", summary.CriticalItems)
	fmt.Fprintf(&b, "- **Non-Compliant:** %d\n", summary.NonCompliantCount)
	fmt.Fprintf(&b, "- **At Risk:** %d\n", summary.AtRiskCount)
	fmt.Fprintf(&b, "- **Compliance Score:** %d\n\n", summary.Score)
	b.WriteString("---\n\n")

	for _, cat := range constants.AllCategories() {
		reqs := profile.RequirementsByCategory(cat)
		if len(reqs) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n", titleize(string(cat)))
		for _, req := range reqs {
			writeRequirement(&b, req)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func writeRequirement(b *strings.Builder, req *entity.LoanRequirement) {
	fmt.Fprintf(b, "### %s\n\n", req.Title)
	fmt.Fprintf(b, "**Status:** %s\n", titleize(string(req.Status)))
	fmt.Fprintf(b, "**Severity:** %s\n", titleize(string(req.Severity)))
	fmt.Fprintf(b, "**Reference:** %s\n\n", req.DocumentReference)

	if req.Deadline != nil {
		fmt.Fprintf(b, "**Deadline:** %s (%s)\n\n",
			req.Deadline.Description, strings.ReplaceAll(string(req.Deadline.Frequency), "_", " "))
	}
	if req.Threshold != nil {
		fmt.Fprintf(b, "**Threshold:** %s\n\n", req.Threshold.HumanReadable())
	}
	if req.CurePeriodDays != nil {
		fmt.Fprintf(b, "**Cure Period:** %d days\n\n", *req.CurePeriodDays)
	}

	b.WriteString("**What You Need to Do:**\n")
	fmt.Fprintf(b, "> %s\n\n", req.PlainLanguageSummary)
	b.WriteString("<details>\n<summary>Original Document Text</summary>\n\n```\n")
	b.WriteString(req.OriginalText)
	b.WriteString("\n```\n</details>\n")
}

// Checklist renders a compact task list: compliant items are checked off,
// everything else stays open.
func Checklist(profile *entity.LoanProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s - Compliance Checklist\n\n", profile.PropertyName)
	fmt.Fprintf(&b, "Borrower: %s\n\n", profile.BorrowerName)

	for _, cat := range constants.AllCategories() {
		reqs := profile.RequirementsByCategory(cat)
		if len(reqs) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n", titleize(string(cat)))
		for _, req := range reqs {
			box := "[ ]"
			if req.Status == constants.Compliant {
				box = "[x]"
			}
			fmt.Fprintf(&b, "- %s **%s**\n", box, req.Title)
			fmt.Fprintf(&b, "  - %s\n", req.PlainLanguageSummary)
			if req.Deadline != nil {
				fmt.Fprintf(&b, "  - Due: %s\n", req.Deadline.Description)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func formatAmount(amount float64) string {
	whole := int64(amount)
	cents := int64((amount - float64(whole)) * 100)
	if cents < 0 {
		cents = -cents
	}

	digits := fmt.Sprintf("%d", whole)
	neg := strings.HasPrefix(digits, "-")
	digits = strings.TrimPrefix(digits, "-")
	var parts []string
	for len(digits) > 3 {
		parts = append([]string{digits[len(digits)-3:]}, parts...)
		digits = digits[:len(digits)-3]
	}
	parts = append([]string{digits}, parts...)

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%02d", sign, strings.Join(parts, ","), cents)
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}

func titleize(label string) string {
	words := strings.Split(strings.ReplaceAll(label, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
