package constants

// Severity is the consequence tier if a requirement is breached.
type Severity string

const (
	Critical Severity = "critical" // could trigger default
	High     Severity = "high"     // material breach, cure period likely
	Medium   Severity = "medium"   // administrative issue
	Low      Severity = "low"      // minor, unlikely to cause issues
)

var allSeverities = []Severity{Critical, High, Medium, Low}

// AllSeverities returns every severity in declaration order.
func AllSeverities() []Severity {
	out := make([]Severity, len(allSeverities))
	copy(out, allSeverities)
	return out
}

// SeverityStrings returns every severity as its storage label.
func SeverityStrings() []string {
	out := make([]string, len(allSeverities))
	for i, s := range allSeverities {
		out[i] = string(s)
	}
	return out
}

// CanonicalizeSeverity maps an untrusted label to a valid severity.
// Unrecognized input falls back to Medium.
func CanonicalizeSeverity(input string) (Severity, bool) {
	normalized := normalizeEnumToken(input)
	if normalized == "" {
		return Medium, false
	}
	for _, s := range allSeverities {
		if normalized == string(s) {
			return s, true
		}
	}
	return Medium, false
}
