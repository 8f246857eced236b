package llm

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestBuildExtractionPrompt(t *testing.T) {
	prompt := BuildExtractionPrompt("THE LOAN AGREEMENT BODY")

	if !strings.Contains(prompt, "THE LOAN AGREEMENT BODY") {
		t.Error("document text not interpolated")
	}
	if strings.Contains(prompt, "{{") {
		t.Error("unreplaced template placeholder remains")
	}
	for _, label := range []string{"financial_reporting", "covenant_compliance", "quarterly", "as_needed"} {
		if !strings.Contains(prompt, label) {
			t.Errorf("prompt missing enum label %q", label)
		}
	}
}

func TestTruncateDocumentTextWithinBudget(t *testing.T) {
	text := strings.Repeat("a", MaxDocumentChars)
	if got := TruncateDocumentText(text); got != text {
		t.Error("text at the budget must pass through unchanged")
	}
}

func TestTruncateDocumentTextOverBudget(t *testing.T) {
	head := strings.Repeat("h", MaxDocumentChars/2)
	middle := strings.Repeat("m", 40000)
	tail := strings.Repeat("t", MaxDocumentChars/2)
	text := head + middle + tail

	got := TruncateDocumentText(text)

	if !strings.HasPrefix(got, head) {
		t.Error("truncation lost the document head")
	}
	if !strings.HasSuffix(got, tail) {
		t.Error("truncation lost the document tail")
	}
	if !strings.Contains(got, TruncationMarker) {
		t.Error("truncation marker missing")
	}
	if strings.Contains(got, "mmmm") {
		t.Error("middle of oversized document should be dropped")
	}
	want := MaxDocumentChars + len(TruncationMarker)
	if len(got) != want {
		t.Errorf("truncated length = %d, want %d", len(got), want)
	}
}

func TestTruncateDocumentTextCountsCharacters(t *testing.T) {
	// three bytes per rune, well under the character budget
	text := strings.Repeat("’", 80000)
	if got := TruncateDocumentText(text); got != text {
		t.Errorf("multibyte text under the character budget was truncated to %d runes",
			utf8.RuneCountInString(got))
	}

	over := strings.Repeat("’", MaxDocumentChars+1000)
	got := TruncateDocumentText(over)
	if !utf8.ValidString(got) {
		t.Error("truncation produced invalid UTF-8")
	}
	want := MaxDocumentChars + utf8.RuneCountInString(TruncationMarker)
	if n := utf8.RuneCountInString(got); n != want {
		t.Errorf("truncated rune count = %d, want %d", n, want)
	}
}
