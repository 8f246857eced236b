package processor

import (
	"context"
	"errors"
	"testing"

	"github.com/loanguard/loanguard/constants"
	"github.com/loanguard/loanguard/internal/common"
	"github.com/loanguard/loanguard/internal/docprep"
	"github.com/loanguard/loanguard/internal/entity"
	"github.com/loanguard/loanguard/internal/extract"
)

type stubExtractor struct {
	profile *entity.LoanProfile
	err     error
	calls   int
}

func (s *stubExtractor) ExtractRequirements(_ context.Context, _, loanID string) (*entity.LoanProfile, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	p := s.profile
	if p == nil {
		p = &entity.LoanProfile{LoanID: loanID}
	}
	return p, nil
}

func testDoc() docprep.Document {
	return docprep.Document{
		Filename: "loan-agreement.pdf",
		Pages:    12,
		Text:     "Borrower shall deliver quarterly financial statements.",
	}
}

func TestAnalyzeHappyPath(t *testing.T) {
	primary := &stubExtractor{
		profile: &entity.LoanProfile{
			LoanID: "LOAN-1",
			Requirements: []*entity.LoanRequirement{
				{ID: "REQ-001", Title: "Financials", Category: constants.FinancialReporting,
					Severity: constants.High, Status: constants.Compliant},
			},
		},
	}
	p := NewProcessor(nil, primary, nil)

	res, err := p.Analyze(context.Background(), testDoc(), "LOAN-1")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if res.Summary.TotalRequirements != 1 {
		t.Errorf("TotalRequirements = %d, want 1", res.Summary.TotalRequirements)
	}
	if res.Summary.Score != 100 {
		t.Errorf("Score = %d, want 100", res.Summary.Score)
	}
	if len(res.Profile.SourceDocuments) != 1 || res.Profile.SourceDocuments[0] != "loan-agreement.pdf" {
		t.Errorf("SourceDocuments = %v", res.Profile.SourceDocuments)
	}
}

func TestAnalyzeFallsBackOnConfigurationError(t *testing.T) {
	primary := &stubExtractor{err: common.NewAppError("CONFIG_ERROR", "no api key", common.ErrConfiguration)}
	fallback := extract.NewFixtureExtractor()
	p := NewProcessor(nil, primary, fallback)

	res, err := p.Analyze(context.Background(), testDoc(), "LOAN-2")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if primary.calls != 1 {
		t.Errorf("primary called %d times, want 1", primary.calls)
	}
	if len(res.Profile.Requirements) != 8 {
		t.Errorf("fallback profile has %d requirements, want 8", len(res.Profile.Requirements))
	}
}

func TestAnalyzeTransportErrorDoesNotFallBack(t *testing.T) {
	primary := &stubExtractor{err: common.ErrTransport}
	fallback := &stubExtractor{}
	p := NewProcessor(nil, primary, fallback)

	_, err := p.Analyze(context.Background(), testDoc(), "LOAN-3")
	if !errors.Is(err, common.ErrTransport) {
		t.Fatalf("error = %v, want ErrTransport", err)
	}
	if fallback.calls != 0 {
		t.Errorf("fallback called %d times, want 0", fallback.calls)
	}
}

func TestAnalyzeConfigurationErrorWithoutFallback(t *testing.T) {
	primary := &stubExtractor{err: common.ErrConfiguration}
	p := NewProcessor(nil, primary, nil)

	_, err := p.Analyze(context.Background(), testDoc(), "LOAN-4")
	if !errors.Is(err, common.ErrConfiguration) {
		t.Fatalf("error = %v, want ErrConfiguration", err)
	}
}
