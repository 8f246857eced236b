package llm

import (
	"strings"

	"github.com/loanguard/loanguard/constants"
)

// MaxDocumentChars is the character budget for a single extraction
// request. Oversized documents keep the first and last half of the
// budget: boilerplate and definitions cluster at the start, signature
// and exhibit sections at the end, and both are rich in covenant
// language.
const MaxDocumentChars = 150000

// TruncationMarker joins the head and tail of a truncated document.
const TruncationMarker = "\n\n[...document truncated...]\n\n"

const promptTemplate = `You are an expert commercial real estate loan analyst. Your task is to extract ALL operational requirements from this loan document that a borrower must comply with.

For each requirement, identify:
1. What the borrower must do
2. When/how often they must do it
3. What happens if they don't (severity)
4. Any specific thresholds or limits
5. The exact document reference (section/page)

Focus especially on:
- Financial reporting requirements (when to submit statements, budgets, rent rolls)
- Covenant compliance (DSCR, LTV, debt yield thresholds)
- Insurance requirements (types, amounts, deadlines)
- Reserve/escrow requirements (amounts, funding schedules)
- Property management requirements
- Leasing restrictions and approval requirements
- Capital improvement obligations
- Tax and insurance escrow requirements

IMPORTANT: Extract requirements that are OPERATIONAL - things the borrower must actually DO, not just legal boilerplate.

Here is the loan document text:

<document>
{{DOCUMENT_TEXT}}
</document>

Please respond with a JSON object in this exact format:
{
    "loan_info": {
        "borrower_name": "extracted or null",
        "lender_name": "extracted or null",
        "property_name": "extracted or null",
        "loan_amount": number or null,
        "origination_date": "YYYY-MM-DD or null",
        "maturity_date": "YYYY-MM-DD or null"
    },
    "requirements": [
        {
            "title": "Brief title for the requirement",
            "category": "one of: {{CATEGORIES}}",
            "description": "Detailed description of what must be done",
            "plain_language_summary": "Simple, plain English explanation a property owner would understand",
            "original_text": "The actual text from the document (abbreviated if very long)",
            "document_reference": "Section X.X, Page Y",
            "deadline": {
                "description": "When this is due",
                "frequency": "one of: {{FREQUENCIES}}",
                "days_after_period_end": number or null,
                "day_of_month": number or null
            },
            "threshold": {
                "metric": "e.g., DSCR, LTV",
                "operator": ">=, <=, >, <, ==, between",
                "value": number,
                "secondary_value": number or null,
                "unit": "%, $, x, etc."
            } or null,
            "severity": "one of: critical, high, medium, low",
            "cure_period_days": number or null
        }
    ]
}

Extract ALL requirements you can find. Be thorough.`

// BuildExtractionPrompt interpolates the prepared document text into the
// fixed instruction template. Callers truncate first; the template grows
// by a constant amount only.
func BuildExtractionPrompt(documentText string) string {
	p := strings.ReplaceAll(promptTemplate, "{{CATEGORIES}}", strings.Join(constants.CategoryStrings(), ", "))
	p = strings.ReplaceAll(p, "{{FREQUENCIES}}", strings.Join(constants.FrequencyStrings(), ", "))
	return strings.ReplaceAll(p, "{{DOCUMENT_TEXT}}", documentText)
}

// TruncateDocumentText applies the head-and-tail truncation policy.
// Text within the budget passes through unchanged. The budget counts
// characters, not bytes, so multibyte text is never split mid-rune.
func TruncateDocumentText(text string) string {
	if len(text) <= MaxDocumentChars {
		return text
	}
	runes := []rune(text)
	if len(runes) <= MaxDocumentChars {
		return text
	}
	half := MaxDocumentChars / 2
	return string(runes[:half]) + TruncationMarker + string(runes[len(runes)-half:])
}
