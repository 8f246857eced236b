package extract

import (
	"context"

	"github.com/loanguard/loanguard/internal/entity"
)

// RequirementExtractor turns prepared document text into a validated
// loan profile. Implementations own the call to whatever understands
// the text (the hosted model client, or the deterministic fixture);
// callers treat the returned profile as fully coerced.
type RequirementExtractor interface {
	ExtractRequirements(ctx context.Context, documentText, loanID string) (*entity.LoanProfile, error)
}
