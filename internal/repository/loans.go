package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/loanguard/loanguard/constants"
	"github.com/loanguard/loanguard/gen/ent"
	loanrow "github.com/loanguard/loanguard/gen/ent/loan"
	"github.com/loanguard/loanguard/internal/common"
	"github.com/loanguard/loanguard/internal/compliance"
	"github.com/loanguard/loanguard/internal/entity"
)

// LoanSummaryRow is the listing projection: identity plus the persisted
// score, without hydrating requirements.
type LoanSummaryRow struct {
	LoanID          string
	LoanName        string
	PropertyName    string
	BorrowerName    string
	LenderName      string
	ComplianceScore int
	Requirements    int
	ExtractionDate  time.Time
}

// StatusChange reports the outcome of a requirement status update.
type StatusChange struct {
	RequirementID   string
	OldStatus       constants.ComplianceStatus
	NewStatus       constants.ComplianceStatus
	ComplianceScore int
}

type LoanRepository interface {
	// CreateFromProfile persists a full extracted profile and returns the
	// computed compliance score.
	CreateFromProfile(ctx context.Context, profile *entity.LoanProfile) (int, error)
	GetProfile(ctx context.Context, loanID string) (*entity.LoanProfile, int, error)
	ListLoans(ctx context.Context) ([]*LoanSummaryRow, error)
	DeleteLoan(ctx context.Context, loanID string) error
	// AppendEvent records a submission, verification, breach, or cure
	// event against an existing loan.
	AppendEvent(ctx context.Context, loanID string, event *entity.ComplianceEvent) error
	// UpdateRequirementStatus moves one requirement to a new status,
	// appends a status_change event, and re-persists the score.
	UpdateRequirementStatus(ctx context.Context, loanID, requirementID string, status constants.ComplianceStatus, notes string) (*StatusChange, error)
}

type loanRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewLoanRepository(client *ent.Client, logger *slog.Logger) LoanRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &loanRepository{client: client, logger: logger}
}

func (r *loanRepository) CreateFromProfile(ctx context.Context, profile *entity.LoanProfile) (int, error) {
	score := compliance.Score(profile.Requirements)

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: begin: %v", common.ErrDatabase, err)
	}

	create := tx.Loan.Create().
		SetLoanID(profile.LoanID).
		SetLoanName(profile.LoanName).
		SetPropertyName(profile.PropertyName).
		SetBorrowerName(profile.BorrowerName).
		SetLenderName(profile.LenderName).
		SetOriginalLoanAmount(profile.OriginalLoanAmount).
		SetNillableCurrentBalance(profile.CurrentBalance).
		SetNillableOriginationDate(profile.OriginationDate).
		SetNillableMaturityDate(profile.MaturityDate).
		SetComplianceScore(score).
		SetSourceDocuments(profile.SourceDocuments).
		SetExtractionDate(profile.ExtractionDate)

	row, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return 0, rollback(tx, fmt.Errorf("%w: loan %s", common.ErrAlreadyExists, profile.LoanID))
		}
		return 0, rollback(tx, fmt.Errorf("%w: create loan: %v", common.ErrDatabase, err))
	}

	for _, req := range profile.Requirements {
		rc := tx.Requirement.Create().
			SetLoanID(row.ID).
			SetRequirementID(req.ID).
			SetTitle(req.Title).
			SetCategory(string(req.Category)).
			SetDescription(req.Description).
			SetPlainLanguageSummary(req.PlainLanguageSummary).
			SetOriginalText(req.OriginalText).
			SetDocumentReference(req.DocumentReference).
			SetSeverity(string(req.Severity)).
			SetStatus(string(req.Status)).
			SetNillableCurePeriodDays(req.CurePeriodDays).
			SetNillableLastChecked(req.LastChecked).
			SetNotes(req.Notes)
		if req.Deadline != nil {
			rc = rc.SetDeadline(req.Deadline.ToMap())
		}
		if req.Threshold != nil {
			rc = rc.SetThreshold(req.Threshold.ToMap())
		}
		if _, err := rc.Save(ctx); err != nil {
			return 0, rollback(tx, fmt.Errorf("%w: create requirement %s: %v", common.ErrDatabase, req.ID, err))
		}
	}

	for _, ev := range profile.Events {
		ec := tx.ComplianceEvent.Create().
			SetLoanID(row.ID).
			SetRequirementID(ev.RequirementID).
			SetEventType(ev.EventType).
			SetEventDate(ev.EventDate).
			SetDescription(ev.Description).
			SetNillableSubmittedBy(ev.SubmittedBy).
			SetDocuments(ev.Documents)
		if _, err := ec.Save(ctx); err != nil {
			return 0, rollback(tx, fmt.Errorf("%w: create event: %v", common.ErrDatabase, err))
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: commit: %v", common.ErrDatabase, err)
	}

	r.logger.Info("repository.loan.created",
		"loan_id", profile.LoanID,
		"requirements", len(profile.Requirements),
		"score", score,
	)
	return score, nil
}

func (r *loanRepository) GetProfile(ctx context.Context, loanID string) (*entity.LoanProfile, int, error) {
	row, err := r.client.Loan.Query().
		Where(loanrow.LoanID(loanID)).
		WithRequirements().
		WithEvents().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, 0, fmt.Errorf("%w: loan %s", common.ErrNotFound, loanID)
		}
		return nil, 0, fmt.Errorf("%w: get loan: %v", common.ErrDatabase, err)
	}
	return toProfile(row), row.ComplianceScore, nil
}

func (r *loanRepository) ListLoans(ctx context.Context) ([]*LoanSummaryRow, error) {
	rows, err := r.client.Loan.Query().
		WithRequirements().
		Order(ent.Asc(loanrow.FieldLoanID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list loans: %v", common.ErrDatabase, err)
	}

	out := make([]*LoanSummaryRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, &LoanSummaryRow{
			LoanID:          row.LoanID,
			LoanName:        row.LoanName,
			PropertyName:    row.PropertyName,
			BorrowerName:    row.BorrowerName,
			LenderName:      row.LenderName,
			ComplianceScore: row.ComplianceScore,
			Requirements:    len(row.Edges.Requirements),
			ExtractionDate:  row.ExtractionDate,
		})
	}
	return out, nil
}

func (r *loanRepository) DeleteLoan(ctx context.Context, loanID string) error {
	n, err := r.client.Loan.Delete().Where(loanrow.LoanID(loanID)).Exec(ctx)
	if err != nil {
		return fmt.Errorf("%w: delete loan: %v", common.ErrDatabase, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: loan %s", common.ErrNotFound, loanID)
	}
	r.logger.Info("repository.loan.deleted", "loan_id", loanID)
	return nil
}

func (r *loanRepository) AppendEvent(ctx context.Context, loanID string, event *entity.ComplianceEvent) error {
	if event == nil || event.EventType == "" {
		return fmt.Errorf("%w: event type is required", common.ErrInvalidInput)
	}
	loan, err := r.client.Loan.Query().Where(loanrow.LoanID(loanID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: loan %s", common.ErrNotFound, loanID)
		}
		return fmt.Errorf("%w: get loan: %v", common.ErrDatabase, err)
	}

	when := event.EventDate
	if when.IsZero() {
		when = time.Now().UTC()
	}
	if _, err := r.client.ComplianceEvent.Create().
		SetLoanID(loan.ID).
		SetRequirementID(event.RequirementID).
		SetEventType(event.EventType).
		SetEventDate(when).
		SetDescription(event.Description).
		SetNillableSubmittedBy(event.SubmittedBy).
		SetDocuments(event.Documents).
		Save(ctx); err != nil {
		return fmt.Errorf("%w: record event: %v", common.ErrDatabase, err)
	}

	r.logger.Info("repository.event.appended",
		"loan_id", loanID,
		"event_type", event.EventType,
	)
	return nil
}

func (r *loanRepository) UpdateRequirementStatus(ctx context.Context, loanID, requirementID string, status constants.ComplianceStatus, notes string) (*StatusChange, error) {
	if _, ok := constants.CanonicalizeStatus(string(status)); !ok {
		return nil, fmt.Errorf("%w: status %q", common.ErrInvalidInput, status)
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: begin: %v", common.ErrDatabase, err)
	}

	loan, err := tx.Loan.Query().
		Where(loanrow.LoanID(loanID)).
		WithRequirements().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, rollback(tx, fmt.Errorf("%w: loan %s", common.ErrNotFound, loanID))
		}
		return nil, rollback(tx, fmt.Errorf("%w: get loan: %v", common.ErrDatabase, err))
	}

	var target *ent.Requirement
	for _, row := range loan.Edges.Requirements {
		if row.RequirementID == requirementID {
			target = row
			break
		}
	}
	if target == nil {
		return nil, rollback(tx, fmt.Errorf("%w: requirement %s", common.ErrNotFound, requirementID))
	}
	oldStatus := constants.ComplianceStatus(target.Status)

	upd := tx.Requirement.UpdateOneID(target.ID).
		SetStatus(string(status)).
		SetLastChecked(time.Now().UTC())
	if notes != "" {
		upd = upd.SetNotes(notes)
	}
	if _, err := upd.Save(ctx); err != nil {
		return nil, rollback(tx, fmt.Errorf("%w: update requirement: %v", common.ErrDatabase, err))
	}

	if _, err := tx.ComplianceEvent.Create().
		SetLoanID(loan.ID).
		SetRequirementID(requirementID).
		SetEventType("status_change").
		SetEventDate(time.Now().UTC()).
		SetDescription(fmt.Sprintf("Status changed from %s to %s", oldStatus, status)).
		SetOldStatus(string(oldStatus)).
		SetNewStatus(string(status)).
		Save(ctx); err != nil {
		return nil, rollback(tx, fmt.Errorf("%w: record event: %v", common.ErrDatabase, err))
	}

	// recompute the score against the updated statuses
	score := recomputeScore(loan.Edges.Requirements, target.ID, status)
	if _, err := tx.Loan.UpdateOneID(loan.ID).SetComplianceScore(score).Save(ctx); err != nil {
		return nil, rollback(tx, fmt.Errorf("%w: persist score: %v", common.ErrDatabase, err))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: commit: %v", common.ErrDatabase, err)
	}

	r.logger.Info("repository.requirement.status_updated",
		"loan_id", loanID,
		"requirement_id", requirementID,
		"old_status", string(oldStatus),
		"new_status", string(status),
		"score", score,
	)
	return &StatusChange{
		RequirementID:   requirementID,
		OldStatus:       oldStatus,
		NewStatus:       status,
		ComplianceScore: score,
	}, nil
}

func recomputeScore(rows []*ent.Requirement, updatedID uuid.UUID, status constants.ComplianceStatus) int {
	reqs := make([]*entity.LoanRequirement, 0, len(rows))
	for _, row := range rows {
		st := constants.ComplianceStatus(row.Status)
		if row.ID == updatedID {
			st = status
		}
		reqs = append(reqs, &entity.LoanRequirement{Status: st})
	}
	return compliance.Score(reqs)
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%v: rolling back: %w", rerr, err)
	}
	return err
}

// toProfile rehydrates the domain model from rows. Deadline and threshold
// round-trip through the same loose-map constructors the wire parser uses.
func toProfile(row *ent.Loan) *entity.LoanProfile {
	profile := &entity.LoanProfile{
		LoanID:             row.LoanID,
		LoanName:           row.LoanName,
		PropertyName:       row.PropertyName,
		BorrowerName:       row.BorrowerName,
		LenderName:         row.LenderName,
		OriginalLoanAmount: row.OriginalLoanAmount,
		CurrentBalance:     row.CurrentBalance,
		OriginationDate:    row.OriginationDate,
		MaturityDate:       row.MaturityDate,
		SourceDocuments:    row.SourceDocuments,
		ExtractionDate:     row.ExtractionDate,
	}

	for _, req := range row.Edges.Requirements {
		profile.Requirements = append(profile.Requirements, toRequirement(req))
	}
	for _, ev := range row.Edges.Events {
		profile.Events = append(profile.Events, &entity.ComplianceEvent{
			RequirementID: ev.RequirementID,
			EventDate:     ev.EventDate,
			EventType:     ev.EventType,
			Description:   ev.Description,
			SubmittedBy:   ev.SubmittedBy,
			Documents:     ev.Documents,
		})
	}
	return profile
}

func toRequirement(row *ent.Requirement) *entity.LoanRequirement {
	category, _ := constants.CanonicalizeCategory(row.Category)
	severity, _ := constants.CanonicalizeSeverity(row.Severity)
	status, _ := constants.CanonicalizeStatus(row.Status)

	req := &entity.LoanRequirement{
		ID:                   row.RequirementID,
		Title:                row.Title,
		Category:             category,
		Description:          row.Description,
		PlainLanguageSummary: row.PlainLanguageSummary,
		OriginalText:         row.OriginalText,
		DocumentReference:    row.DocumentReference,
		Severity:             severity,
		CurePeriodDays:       row.CurePeriodDays,
		Status:               status,
		LastChecked:          row.LastChecked,
		Notes:                row.Notes,
	}
	if len(row.Deadline) > 0 {
		req.Deadline = entity.DeadlineFromMap(row.Deadline)
	}
	if len(row.Threshold) > 0 {
		req.Threshold = entity.ThresholdFromMap(row.Threshold)
	}
	return req
}
