package entity

import "time"

// ComplianceEvent is an append-only audit record of a status change or
// submission against a requirement. Events are never mutated or deleted.
type ComplianceEvent struct {
	RequirementID string    `json:"requirement_id"`
	EventDate     time.Time `json:"event_date"`
	EventType     string    `json:"event_type"` // submission, verification, breach, cure, status_change
	Description   string    `json:"description"`
	SubmittedBy   *string   `json:"submitted_by,omitempty"`
	Documents     []string  `json:"documents"`
}
