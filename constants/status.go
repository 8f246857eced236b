package constants

// ComplianceStatus is the assessed state of a requirement.
type ComplianceStatus string

const (
	Compliant    ComplianceStatus = "compliant"
	NonCompliant ComplianceStatus = "non_compliant"
	AtRisk       ComplianceStatus = "at_risk"
	Pending      ComplianceStatus = "pending"
	Unknown      ComplianceStatus = "unknown"
	NotYetDue    ComplianceStatus = "not_yet_due"
)

var allStatuses = []ComplianceStatus{
	Compliant,
	NonCompliant,
	AtRisk,
	Pending,
	Unknown,
	NotYetDue,
}

// AllStatuses returns every status in declaration order.
func AllStatuses() []ComplianceStatus {
	out := make([]ComplianceStatus, len(allStatuses))
	copy(out, allStatuses)
	return out
}

// StatusStrings returns every status as its storage label.
func StatusStrings() []string {
	out := make([]string, len(allStatuses))
	for i, s := range allStatuses {
		out[i] = string(s)
	}
	return out
}

// CanonicalizeStatus maps an untrusted label to a valid status.
// Unrecognized input falls back to Unknown.
func CanonicalizeStatus(input string) (ComplianceStatus, bool) {
	normalized := normalizeEnumToken(input)
	if normalized == "" {
		return Unknown, false
	}
	for _, s := range allStatuses {
		if normalized == string(s) {
			return s, true
		}
	}
	return Unknown, false
}
