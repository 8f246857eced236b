package docprep

import (
	"strings"
	"testing"
)

func TestForAnalysis(t *testing.T) {
	t.Run("includes header and body", func(t *testing.T) {
		d := Document{Filename: "loan-agreement.pdf", Pages: 87, Text: "Borrower shall maintain..."}
		got := d.ForAnalysis()
		for _, want := range []string{
			"# Loan Document: loan-agreement.pdf",
			"Total Pages: 87",
			"## Full Document Text",
			"Borrower shall maintain...",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("ForAnalysis() missing %q", want)
			}
		}
	})

	t.Run("empty text degrades to empty body", func(t *testing.T) {
		d := Document{Filename: "empty.pdf"}
		got := d.ForAnalysis()
		if !strings.Contains(got, "# Loan Document: empty.pdf") {
			t.Error("header missing for empty document")
		}
		if !strings.HasSuffix(got, "## Full Document Text\n\n") {
			t.Errorf("expected empty body, got %q", got)
		}
	})
}

func TestScanSections(t *testing.T) {
	text := "The Borrower shall maintain a Debt Service Coverage Ratio of 1.25. " +
		"Borrower shall deliver a rent roll monthly. Property insurance is required."

	hits := ScanSections(Document{Text: text}, 40)

	if len(hits["covenants"]) == 0 {
		t.Error("expected covenant hits for 'shall maintain'/'debt service coverage'")
	}
	if len(hits["financial_reporting"]) == 0 {
		t.Error("expected financial_reporting hit for 'rent roll'")
	}
	if len(hits["insurance"]) == 0 {
		t.Error("expected insurance hit")
	}
	// every category key is present even with zero hits
	if _, ok := hits["transfers"]; !ok {
		t.Error("expected transfers key with no hits")
	}

	for _, h := range hits["financial_reporting"] {
		if !strings.Contains(strings.ToLower(h.Context), strings.ToLower(h.Keyword)) {
			t.Errorf("context %q does not contain keyword %q", h.Context, h.Keyword)
		}
	}
}

func TestScanSectionsDeduplicatesPositions(t *testing.T) {
	// "insurance" matches both "insurance" and "property insurance" at
	// overlapping positions; identical positions must collapse.
	text := "property insurance policy"
	hits := ScanSections(Document{Text: text}, 10)
	seen := map[int]int{}
	for _, h := range hits["insurance"] {
		seen[h.Position]++
		if seen[h.Position] > 1 {
			t.Errorf("duplicate position %d in insurance hits", h.Position)
		}
	}
}
