// Package server exposes the compliance pipeline and loan store over gRPC.
package server

import (
	"log/slog"

	compliancepb "github.com/loanguard/loanguard/gen/proto/compliance/v1"
	"github.com/loanguard/loanguard/internal/export"
	"github.com/loanguard/loanguard/internal/extract"
	processor "github.com/loanguard/loanguard/internal/pipeline"
	"github.com/loanguard/loanguard/internal/repository"
)

type ComplianceService struct {
	compliancepb.UnimplementedComplianceServiceServer
	loans     repository.LoanRepository
	processor *processor.Processor
	exporter  *export.Service
	logger    *slog.Logger
}

func NewComplianceService(
	loans repository.LoanRepository,
	proc *processor.Processor,
	exporter *export.Service,
	logger *slog.Logger,
) *ComplianceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ComplianceService{
		loans:     loans,
		processor: proc,
		exporter:  exporter,
		logger:    logger,
	}
}

// sampleProcessor runs the pipeline with the deterministic extractor, for
// demos and smoke tests that must not call the LLM.
func (s *ComplianceService) sampleProcessor() *processor.Processor {
	return processor.NewProcessor(s.logger, extract.NewFixtureExtractor(), nil)
}
