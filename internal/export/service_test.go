package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/loanguard/loanguard/internal/extract"
)

func TestChecklistXLSX(t *testing.T) {
	profile, err := extract.NewFixtureExtractor().ExtractRequirements(t.Context(), "", "LOAN-001")
	if err != nil {
		t.Fatalf("fixture extractor: %v", err)
	}

	raw, err := NewService(nil).ChecklistXLSX(profile)
	if err != nil {
		t.Fatalf("ChecklistXLSX() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("workbook does not reopen: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Requirements")
	if err != nil {
		t.Fatalf("read Requirements sheet: %v", err)
	}
	if len(rows) != 9 {
		t.Fatalf("got %d rows, want header + 8 requirements", len(rows))
	}
	if rows[0][0] != "ID" || rows[0][2] != "Title" {
		t.Errorf("unexpected header row: %v", rows[0])
	}

	// rows follow canonical category order: financial_reporting first
	if rows[1][1] != "financial_reporting" {
		t.Errorf("first data row category = %q, want financial_reporting", rows[1][1])
	}

	ids := map[string]bool{}
	for _, row := range rows[1:] {
		ids[row[0]] = true
	}
	for _, want := range []string{"REQ-001", "REQ-003", "REQ-008"} {
		if !ids[want] {
			t.Errorf("missing requirement row %s", want)
		}
	}

	sum, err := f.GetRows("Summary")
	if err != nil {
		t.Fatalf("read Summary sheet: %v", err)
	}
	if len(sum) != 10 {
		t.Fatalf("summary has %d rows, want 10", len(sum))
	}
	if sum[0][0] != "Loan ID" || sum[0][1] != "LOAN-001" {
		t.Errorf("summary identity row = %v", sum[0])
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 140); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'x'
	}
	got := truncate(string(long), 140)
	if len([]rune(got)) != 140 {
		t.Errorf("truncated length = %d runes, want 140", len([]rune(got)))
	}
}
