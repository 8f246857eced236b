package server

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/loanguard/loanguard/constants"
	compliancepb "github.com/loanguard/loanguard/gen/proto/compliance/v1"
	"github.com/loanguard/loanguard/internal/common"
	"github.com/loanguard/loanguard/internal/compliance"
	"github.com/loanguard/loanguard/internal/entity"
)

// event types accepted over the API; status_change events are produced
// by UpdateRequirementStatus only.
var recordableEventTypes = map[string]bool{
	"submission":   true,
	"verification": true,
	"breach":       true,
	"cure":         true,
}

func (s *ComplianceService) UpdateRequirementStatus(ctx context.Context, req *compliancepb.UpdateRequirementStatusRequest) (*compliancepb.UpdateRequirementStatusResponse, error) {
	loanID := strings.TrimSpace(req.GetLoanId())
	requirementID := strings.TrimSpace(req.GetRequirementId())
	if loanID == "" || requirementID == "" {
		return nil, status.Error(codes.InvalidArgument, "loan_id and requirement_id are required")
	}

	newStatus, ok := constants.CanonicalizeStatus(req.GetStatus())
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument,
			"status must be one of: %s", strings.Join(constants.StatusStrings(), ", "))
	}

	change, err := s.loans.UpdateRequirementStatus(ctx, loanID, requirementID, newStatus, req.GetNotes())
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "%v", err)
		}
		s.logger.Error("failed to update requirement status",
			"loan_id", loanID, "requirement_id", requirementID, "error", err)
		return nil, status.Errorf(codes.Internal, "update status: %v", err)
	}

	return &compliancepb.UpdateRequirementStatusResponse{
		RequirementId:   change.RequirementID,
		OldStatus:       string(change.OldStatus),
		NewStatus:       string(change.NewStatus),
		ComplianceScore: int32(change.ComplianceScore),
	}, nil
}

func (s *ComplianceService) RecordComplianceEvent(ctx context.Context, req *compliancepb.RecordComplianceEventRequest) (*emptypb.Empty, error) {
	loanID := strings.TrimSpace(req.GetLoanId())
	if loanID == "" {
		return nil, status.Error(codes.InvalidArgument, "loan_id is required")
	}
	eventType := strings.TrimSpace(req.GetEventType())
	if !recordableEventTypes[eventType] {
		return nil, status.Error(codes.InvalidArgument,
			"event_type must be one of: submission, verification, breach, cure")
	}

	ev := &entity.ComplianceEvent{
		RequirementID: strings.TrimSpace(req.GetRequirementId()),
		EventType:     eventType,
		Description:   req.GetDescription(),
		SubmittedBy:   req.SubmittedBy,
		Documents:     req.GetDocuments(),
	}
	if err := s.loans.AppendEvent(ctx, loanID, ev); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "%v", err)
		}
		if errors.Is(err, common.ErrInvalidInput) {
			return nil, status.Errorf(codes.InvalidArgument, "%v", err)
		}
		s.logger.Error("failed to record compliance event",
			"loan_id", loanID, "event_type", eventType, "error", err)
		return nil, status.Errorf(codes.Internal, "record event: %v", err)
	}
	return &emptypb.Empty{}, nil
}

func (s *ComplianceService) GetComplianceSummary(ctx context.Context, req *compliancepb.GetComplianceSummaryRequest) (*compliancepb.GetComplianceSummaryResponse, error) {
	loanID := strings.TrimSpace(req.GetLoanId())
	if loanID == "" {
		return nil, status.Error(codes.InvalidArgument, "loan_id is required")
	}

	profile, score, err := s.loans.GetProfile(ctx, loanID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "loan %s not found", loanID)
		}
		s.logger.Error("failed to load loan for summary", "loan_id", loanID, "error", err)
		return nil, status.Errorf(codes.Internal, "get loan: %v", err)
	}

	summary := compliance.Summarize(profile)
	byStatus := make(map[string]int32, len(summary.ByStatus))
	for st, n := range summary.ByStatus {
		byStatus[string(st)] = int32(n)
	}
	byCategory := make(map[string]int32, len(summary.ByCategory))
	for cat, n := range summary.ByCategory {
		byCategory[string(cat)] = int32(n)
	}

	return &compliancepb.GetComplianceSummaryResponse{
		TotalRequirements: int32(summary.TotalRequirements),
		CriticalItems:     int32(summary.CriticalItems),
		NonCompliantCount: int32(summary.NonCompliantCount),
		AtRiskCount:       int32(summary.AtRiskCount),
		ComplianceScore:   int32(score),
		ByStatus:          byStatus,
		ByCategory:        byCategory,
	}, nil
}
