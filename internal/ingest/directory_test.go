package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanDirectory(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("park plaza.txt", "loan agreement body")
	write("harborview.md", "deed of trust body")
	write("scan.pdf", "binary")
	write(".draft.txt", "hidden")

	results, stats, err := ScanDirectory(dir, nil)
	if err != nil {
		t.Fatalf("ScanDirectory() error = %v", err)
	}
	if stats.Succeeded != 2 {
		t.Errorf("Succeeded = %d, want 2", stats.Succeeded)
	}
	if stats.Failed != 0 {
		t.Errorf("Failed = %d, want 0", stats.Failed)
	}

	byID := map[string]FileResult{}
	for _, r := range results {
		byID[r.LoanID] = r
	}
	got, ok := byID["PARK-PLAZA"]
	if !ok {
		t.Fatalf("missing PARK-PLAZA, got %v", byID)
	}
	if got.Document.Text != "loan agreement body" {
		t.Errorf("document text = %q", got.Document.Text)
	}
	if got.Document.Filename != "park plaza.txt" {
		t.Errorf("document filename = %q", got.Document.Filename)
	}
	if _, ok := byID["HARBORVIEW"]; !ok {
		t.Error("missing HARBORVIEW")
	}
	if _, ok := byID["SCAN"]; ok {
		t.Error("pdf should be filtered out by default")
	}
	if _, ok := byID["DRAFT"]; ok {
		t.Error("hidden file should be skipped")
	}
}

func TestScanDirectoryEmptyRoot(t *testing.T) {
	if _, _, err := ScanDirectory("  ", nil); err == nil {
		t.Fatal("expected error for blank root")
	}
}

func TestLoanIDForPath(t *testing.T) {
	tests := []struct{ in, want string }{
		{"/docs/park plaza loan.txt", "PARK-PLAZA-LOAN"},
		{"main_street.md", "MAIN-STREET"},
		{"///.txt", "LOAN"},
		{"Deal#42 (final).txt", "DEAL-42-FINAL"},
	}
	for _, tt := range tests {
		if got := LoanIDForPath(tt.in); got != tt.want {
			t.Errorf("LoanIDForPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
