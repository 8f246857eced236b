package constants

// Frequency is how often a requirement recurs.
type Frequency string

const (
	Monthly     Frequency = "monthly"
	Quarterly   Frequency = "quarterly"
	SemiAnnual  Frequency = "semi_annual"
	Annual      Frequency = "annual"
	OneTime     Frequency = "one_time"
	AsNeeded    Frequency = "as_needed"
	UponRequest Frequency = "upon_request"
)

var allFrequencies = []Frequency{
	Monthly,
	Quarterly,
	SemiAnnual,
	Annual,
	OneTime,
	AsNeeded,
	UponRequest,
}

// AllFrequencies returns every frequency in declaration order.
func AllFrequencies() []Frequency {
	out := make([]Frequency, len(allFrequencies))
	copy(out, allFrequencies)
	return out
}

// FrequencyStrings returns the frequency values as strings.
func FrequencyStrings() []string {
	result := make([]string, len(allFrequencies))
	for i, f := range allFrequencies {
		result[i] = string(f)
	}
	return result
}

// CanonicalizeFrequency maps an untrusted label to a valid frequency.
// Unparseable input falls back to AsNeeded.
func CanonicalizeFrequency(input string) (Frequency, bool) {
	normalized := normalizeEnumToken(input)
	if normalized == "" {
		return AsNeeded, false
	}
	for _, f := range allFrequencies {
		if normalized == string(f) {
			return f, true
		}
	}
	return AsNeeded, false
}
