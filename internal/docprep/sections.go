package docprep

import "strings"

// Keyword scan over common CRE loan agreement sections. This is a
// discoverable-context aid for reviewers; the extraction pipeline treats
// the language-model output as authoritative and never reconciles it
// with these hits.

// SectionHit is one keyword occurrence with surrounding context.
type SectionHit struct {
	Keyword  string
	Position int
	Context  string
}

var sectionKeywords = map[string][]string{
	"financial_reporting": {
		"financial statements", "financial reporting", "annual budget",
		"operating statements", "rent roll", "occupancy report",
		"quarterly report", "monthly report", "annual report",
	},
	"covenants": {
		"debt service coverage", "DSCR", "loan to value", "LTV",
		"debt yield", "coverage ratio", "financial covenant",
		"shall maintain", "shall not exceed",
	},
	"insurance": {
		"insurance", "property insurance", "liability insurance",
		"flood insurance", "certificate of insurance", "additional insured",
	},
	"reserves": {
		"reserve", "escrow", "tax escrow", "insurance escrow",
		"replacement reserve", "capital reserve", "tenant improvement",
		"leasing commission",
	},
	"property_management": {
		"property manager", "management agreement", "property management",
		"managing agent",
	},
	"leasing": {
		"leasing", "tenant", "lease approval", "major lease",
		"lease consent", "sublease", "assignment",
	},
	"defaults": {
		"event of default", "default", "acceleration", "cure period",
		"notice of default", "material breach",
	},
	"transfers": {
		"transfer", "assumption", "conveyance",
		"change of control", "prohibited transfer",
	},
}

// ScanSections evaluates each category's keyword patterns independently
// against the document text and returns per-category hits with context,
// de-duplicated by position.
func ScanSections(d Document, contextChars int) map[string][]SectionHit {
	if contextChars <= 0 {
		contextChars = 500
	}
	out := make(map[string][]SectionHit, len(sectionKeywords))
	for category, keywords := range sectionKeywords {
		var hits []SectionHit
		seen := make(map[int]struct{})
		for _, kw := range keywords {
			for _, hit := range keywordHits(d.Text, kw, contextChars) {
				if _, dup := seen[hit.Position]; dup {
					continue
				}
				seen[hit.Position] = struct{}{}
				hits = append(hits, hit)
			}
		}
		out[category] = hits
	}
	return out
}

func keywordHits(text, keyword string, contextChars int) []SectionHit {
	var hits []SectionHit
	lower := strings.ToLower(text)
	kw := strings.ToLower(keyword)

	start := 0
	for {
		pos := strings.Index(lower[start:], kw)
		if pos < 0 {
			break
		}
		pos += start

		ctxStart := max(0, pos-contextChars)
		ctxEnd := min(len(text), pos+len(kw)+contextChars)
		hits = append(hits, SectionHit{
			Keyword:  keyword,
			Position: pos,
			Context:  text[ctxStart:ctxEnd],
		})

		start = pos + 1
	}
	return hits
}
