package server

import (
	"context"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/loanguard/loanguard/constants"
	compliancepb "github.com/loanguard/loanguard/gen/proto/compliance/v1"
	"github.com/loanguard/loanguard/internal/common"
	"github.com/loanguard/loanguard/internal/entity"
	"github.com/loanguard/loanguard/internal/repository"
)

// stubLoanStore lets handler tests drive the persistence outcome without a
// database.
type stubLoanStore struct {
	createErr error
	created   int
}

func (s *stubLoanStore) CreateFromProfile(ctx context.Context, profile *entity.LoanProfile) (int, error) {
	if s.createErr != nil {
		return 0, s.createErr
	}
	s.created++
	return 100, nil
}

func (s *stubLoanStore) GetProfile(ctx context.Context, loanID string) (*entity.LoanProfile, int, error) {
	return nil, 0, fmt.Errorf("%w: loan %s", common.ErrNotFound, loanID)
}

func (s *stubLoanStore) ListLoans(ctx context.Context) ([]*repository.LoanSummaryRow, error) {
	return nil, nil
}

func (s *stubLoanStore) DeleteLoan(ctx context.Context, loanID string) error {
	return fmt.Errorf("%w: loan %s", common.ErrNotFound, loanID)
}

func (s *stubLoanStore) AppendEvent(ctx context.Context, loanID string, event *entity.ComplianceEvent) error {
	return nil
}

func (s *stubLoanStore) UpdateRequirementStatus(ctx context.Context, loanID, requirementID string, st constants.ComplianceStatus, notes string) (*repository.StatusChange, error) {
	return nil, fmt.Errorf("%w: loan %s", common.ErrNotFound, loanID)
}

func TestAnalyzeDocumentDuplicateLoan(t *testing.T) {
	store := &stubLoanStore{
		createErr: fmt.Errorf("%w: loan LOAN-001", common.ErrAlreadyExists),
	}
	svc := NewComplianceService(store, nil, nil, nil)

	_, err := svc.AnalyzeDocument(t.Context(), &compliancepb.AnalyzeDocumentRequest{
		LoanId:    "LOAN-001",
		UseSample: true,
	})
	if err == nil {
		t.Fatal("expected error for duplicate loan_id")
	}
	if got := status.Code(err); got != codes.AlreadyExists {
		t.Errorf("status code = %v, want %v", got, codes.AlreadyExists)
	}
}

func TestAnalyzeDocumentPersistFailure(t *testing.T) {
	store := &stubLoanStore{
		createErr: fmt.Errorf("%w: create loan: boom", common.ErrDatabase),
	}
	svc := NewComplianceService(store, nil, nil, nil)

	_, err := svc.AnalyzeDocument(t.Context(), &compliancepb.AnalyzeDocumentRequest{
		LoanId:    "LOAN-001",
		UseSample: true,
	})
	if got := status.Code(err); got != codes.Internal {
		t.Errorf("status code = %v, want %v", got, codes.Internal)
	}
}

func TestAnalyzeDocumentSamplePersists(t *testing.T) {
	store := &stubLoanStore{}
	svc := NewComplianceService(store, nil, nil, nil)

	resp, err := svc.AnalyzeDocument(t.Context(), &compliancepb.AnalyzeDocumentRequest{
		LoanId:    "LOAN-001",
		UseSample: true,
	})
	if err != nil {
		t.Fatalf("AnalyzeDocument: %v", err)
	}
	if store.created != 1 {
		t.Errorf("profiles persisted = %d, want 1", store.created)
	}
	if resp.GetProfile().GetLoanId() != "LOAN-001" {
		t.Errorf("profile loan_id = %q, want LOAN-001", resp.GetProfile().GetLoanId())
	}
}
