package server

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	compliancepb "github.com/loanguard/loanguard/gen/proto/compliance/v1"
	"github.com/loanguard/loanguard/internal/common"
)

func (s *ComplianceService) ExportChecklist(ctx context.Context, req *compliancepb.ExportChecklistRequest) (*compliancepb.ExportChecklistResponse, error) {
	loanID := strings.TrimSpace(req.GetLoanId())
	if loanID == "" {
		return nil, status.Error(codes.InvalidArgument, "loan_id is required")
	}

	profile, _, err := s.loans.GetProfile(ctx, loanID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "loan %s not found", loanID)
		}
		s.logger.Error("failed to load loan for export", "loan_id", loanID, "error", err)
		return nil, status.Errorf(codes.Internal, "get loan: %v", err)
	}

	raw, err := s.exporter.ChecklistXLSX(profile)
	if err != nil {
		s.logger.Error("checklist export failed", "loan_id", loanID, "error", err)
		return nil, status.Errorf(codes.Internal, "export: %v", err)
	}

	return &compliancepb.ExportChecklistResponse{
		Xlsx:     raw,
		Filename: fmt.Sprintf("%s-compliance-checklist.xlsx", loanID),
	}, nil
}
