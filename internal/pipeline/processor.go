package processor

import (
	"context"
	"errors"
	"log/slog"

	"github.com/loanguard/loanguard/internal/common"
	"github.com/loanguard/loanguard/internal/compliance"
	"github.com/loanguard/loanguard/internal/docprep"
	"github.com/loanguard/loanguard/internal/entity"
	"github.com/loanguard/loanguard/internal/extract"
)

// Processor coordinates document prep then requirement extraction and
// rolls the result up into a compliance summary.
type Processor struct {
	Logger    *slog.Logger
	Extractor extract.RequirementExtractor
	Fallback  extract.RequirementExtractor // used when the primary is unconfigured; nil disables
}

func NewProcessor(logger *slog.Logger, extractor, fallback extract.RequirementExtractor) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Extractor: extractor, Fallback: fallback}
}

// Result bundles the extracted profile with its summary so callers get
// both from one pass.
type Result struct {
	Profile *entity.LoanProfile
	Summary *compliance.Summary
}

// Analyze runs the full pipeline for one document: section scan for
// logging, extraction, source attribution, then rollup. A primary
// extractor that fails with a configuration error falls back to the
// deterministic extractor when one is wired; every other error aborts.
func (p *Processor) Analyze(ctx context.Context, doc docprep.Document, loanID string) (*Result, error) {
	hits := docprep.ScanSections(doc, 200)
	p.Logger.Info("processor.analyze.start",
		"loan_id", loanID,
		"filename", doc.Filename,
		"pages", doc.Pages,
		"text_chars", len(doc.Text),
		"section_hits", len(hits),
	)

	text := doc.ForAnalysis()
	profile, err := p.Extractor.ExtractRequirements(ctx, text, loanID)
	if err != nil {
		if errors.Is(err, common.ErrConfiguration) && p.Fallback != nil {
			p.Logger.Warn("processor.extract.fallback", "loan_id", loanID, "err", err)
			profile, err = p.Fallback.ExtractRequirements(ctx, text, loanID)
		}
		if err != nil {
			p.Logger.Error("processor.extract.failed", "loan_id", loanID, "err", err)
			return nil, err
		}
	}

	if doc.Filename != "" {
		profile.SourceDocuments = append(profile.SourceDocuments, doc.Filename)
	}

	summary := compliance.Summarize(profile)
	p.Logger.Info("processor.analyze.ok",
		"loan_id", loanID,
		"requirements", summary.TotalRequirements,
		"critical", summary.CriticalItems,
		"score", summary.Score,
	)
	return &Result{Profile: profile, Summary: summary}, nil
}
