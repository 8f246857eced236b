package docprep

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Document is the text form of a loan document, as produced by an
// external PDF-to-text collaborator.
type Document struct {
	Filename string
	Pages    int
	Text     string
}

// TextExtractor is the boundary to the byte-level extraction collaborator:
// file -> text. Implementations live outside this module.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (ExtractionResult, error)
}

// ExtractionResult carries the extracted text plus optional structure.
type ExtractionResult struct {
	Text     string
	Pages    int
	Method   string // "pdf-text" | "pdf-table" | "ocr"
	Duration time.Duration
	Warnings []string
}

// ForAnalysis renders the single analysis-ready blob submitted to the
// extraction protocol: a filename/page-count header followed by the full
// text body. Absent text degrades to an empty body; this never fails.
func (d Document) ForAnalysis() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("# Loan Document: %s\n", d.Filename))
	b.WriteString(fmt.Sprintf("Total Pages: %d\n", d.Pages))
	b.WriteString("\n## Full Document Text\n\n")
	b.WriteString(d.Text)
	return b.String()
}
