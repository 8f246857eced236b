package server

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	compliancepb "github.com/loanguard/loanguard/gen/proto/compliance/v1"
	"github.com/loanguard/loanguard/internal/common"
	"github.com/loanguard/loanguard/internal/docprep"
	"github.com/loanguard/loanguard/internal/utils"
)

func (s *ComplianceService) AnalyzeDocument(ctx context.Context, req *compliancepb.AnalyzeDocumentRequest) (*compliancepb.AnalyzeDocumentResponse, error) {
	loanID := strings.TrimSpace(req.GetLoanId())
	if loanID == "" {
		s.logger.Error("analyze request missing loan_id")
		return nil, status.Error(codes.InvalidArgument, "loan_id is required")
	}
	if strings.TrimSpace(req.GetDocumentText()) == "" && !req.GetUseSample() {
		return nil, status.Error(codes.InvalidArgument, "document_text is required")
	}

	doc := docprep.Document{
		Filename: req.GetFilename(),
		Pages:    int(req.GetPages()),
		Text:     req.GetDocumentText(),
	}

	proc := s.processor
	if req.GetUseSample() {
		proc = s.sampleProcessor()
	}

	res, err := proc.Analyze(ctx, doc, loanID)
	if err != nil {
		s.logger.Error("analysis failed", "loan_id", loanID, "error", err)
		switch {
		case errors.Is(err, common.ErrConfiguration):
			return nil, status.Error(codes.FailedPrecondition, "extraction service is not configured")
		case errors.Is(err, common.ErrPayloadNotFound), errors.Is(err, common.ErrPayloadMalformed):
			return nil, status.Errorf(codes.Internal, "extraction response unusable: %v", err)
		default:
			return nil, status.Errorf(codes.Internal, "analyze: %v", err)
		}
	}

	score, err := s.loans.CreateFromProfile(ctx, res.Profile)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, status.Errorf(codes.AlreadyExists, "loan %s already exists", loanID)
		}
		s.logger.Error("failed to persist profile", "loan_id", loanID, "error", err)
		return nil, status.Errorf(codes.Internal, "persist profile: %v", err)
	}

	s.logger.Info("document analyzed",
		"loan_id", loanID,
		"requirements", res.Summary.TotalRequirements,
		"score", score,
	)
	return &compliancepb.AnalyzeDocumentResponse{
		Profile:         utils.ToPBProfile(res.Profile),
		ComplianceScore: int32(score),
	}, nil
}

func (s *ComplianceService) GetLoan(ctx context.Context, req *compliancepb.GetLoanRequest) (*compliancepb.GetLoanResponse, error) {
	loanID := strings.TrimSpace(req.GetLoanId())
	if loanID == "" {
		return nil, status.Error(codes.InvalidArgument, "loan_id is required")
	}

	profile, score, err := s.loans.GetProfile(ctx, loanID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "loan %s not found", loanID)
		}
		s.logger.Error("failed to load loan", "loan_id", loanID, "error", err)
		return nil, status.Errorf(codes.Internal, "get loan: %v", err)
	}

	return &compliancepb.GetLoanResponse{
		Profile:         utils.ToPBProfile(profile),
		ComplianceScore: int32(score),
	}, nil
}

func (s *ComplianceService) ListLoans(ctx context.Context, _ *compliancepb.ListLoansRequest) (*compliancepb.ListLoansResponse, error) {
	rows, err := s.loans.ListLoans(ctx)
	if err != nil {
		s.logger.Error("failed to list loans", "error", err)
		return nil, status.Errorf(codes.Internal, "list loans: %v", err)
	}

	out := make([]*compliancepb.LoanSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, utils.ToPBLoanSummary(row))
	}
	return &compliancepb.ListLoansResponse{Loans: out}, nil
}

func (s *ComplianceService) DeleteLoan(ctx context.Context, req *compliancepb.DeleteLoanRequest) (*emptypb.Empty, error) {
	loanID := strings.TrimSpace(req.GetLoanId())
	if loanID == "" {
		return nil, status.Error(codes.InvalidArgument, "loan_id is required")
	}

	if err := s.loans.DeleteLoan(ctx, loanID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "loan %s not found", loanID)
		}
		s.logger.Error("failed to delete loan", "loan_id", loanID, "error", err)
		return nil, status.Errorf(codes.Internal, "delete loan: %v", err)
	}
	return &emptypb.Empty{}, nil
}
