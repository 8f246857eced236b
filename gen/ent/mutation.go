// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/loanguard/loanguard/gen/ent/complianceevent"
	"github.com/loanguard/loanguard/gen/ent/loan"
	"github.com/loanguard/loanguard/gen/ent/predicate"
	"github.com/loanguard/loanguard/gen/ent/requirement"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeComplianceEvent = "ComplianceEvent"
	TypeLoan            = "Loan"
	TypeRequirement     = "Requirement"
)

// ComplianceEventMutation represents an operation that mutates the ComplianceEvent nodes in the graph.
type ComplianceEventMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	requirement_id  *string
	event_type      *string
	event_date      *time.Time
	description     *string
	old_status      *string
	new_status      *string
	submitted_by    *string
	documents       *[]string
	appenddocuments []string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	loan            *uuid.UUID
	clearedloan     bool
	done            bool
	oldValue        func(context.Context) (*ComplianceEvent, error)
	predicates      []predicate.ComplianceEvent
}

var _ ent.Mutation = (*ComplianceEventMutation)(nil)

// complianceeventOption allows management of the mutation configuration using functional options.
type complianceeventOption func(*ComplianceEventMutation)

// newComplianceEventMutation creates new mutation for the ComplianceEvent entity.
func newComplianceEventMutation(c config, op Op, opts ...complianceeventOption) *ComplianceEventMutation {
	m := &ComplianceEventMutation{
		config:        c,
		op:            op,
		typ:           TypeComplianceEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withComplianceEventID sets the ID field of the mutation.
func withComplianceEventID(id uuid.UUID) complianceeventOption {
	return func(m *ComplianceEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ComplianceEvent
		)
		m.oldValue = func(ctx context.Context) (*ComplianceEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ComplianceEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withComplianceEvent sets the old ComplianceEvent of the mutation.
func withComplianceEvent(node *ComplianceEvent) complianceeventOption {
	return func(m *ComplianceEventMutation) {
		m.oldValue = func(context.Context) (*ComplianceEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ComplianceEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ComplianceEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ComplianceEvent entities.
func (m *ComplianceEventMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ComplianceEventMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ComplianceEventMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ComplianceEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLoanID sets the "loan_id" field.
func (m *ComplianceEventMutation) SetLoanID(u uuid.UUID) {
	m.loan = &u
}

// LoanID returns the value of the "loan_id" field in the mutation.
func (m *ComplianceEventMutation) LoanID() (r uuid.UUID, exists bool) {
	v := m.loan
	if v == nil {
		return
	}
	return *v, true
}

// OldLoanID returns the old "loan_id" field's value of the ComplianceEvent entity.
// If the ComplianceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComplianceEventMutation) OldLoanID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoanID: %w", err)
	}
	return oldValue.LoanID, nil
}

// ResetLoanID resets all changes to the "loan_id" field.
func (m *ComplianceEventMutation) ResetLoanID() {
	m.loan = nil
}

// SetRequirementID sets the "requirement_id" field.
func (m *ComplianceEventMutation) SetRequirementID(s string) {
	m.requirement_id = &s
}

// RequirementID returns the value of the "requirement_id" field in the mutation.
func (m *ComplianceEventMutation) RequirementID() (r string, exists bool) {
	v := m.requirement_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequirementID returns the old "requirement_id" field's value of the ComplianceEvent entity.
// If the ComplianceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComplianceEventMutation) OldRequirementID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequirementID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequirementID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequirementID: %w", err)
	}
	return oldValue.RequirementID, nil
}

// ClearRequirementID clears the value of the "requirement_id" field.
func (m *ComplianceEventMutation) ClearRequirementID() {
	m.requirement_id = nil
	m.clearedFields[complianceevent.FieldRequirementID] = struct{}{}
}

// RequirementIDCleared returns if the "requirement_id" field was cleared in this mutation.
func (m *ComplianceEventMutation) RequirementIDCleared() bool {
	_, ok := m.clearedFields[complianceevent.FieldRequirementID]
	return ok
}

// ResetRequirementID resets all changes to the "requirement_id" field.
func (m *ComplianceEventMutation) ResetRequirementID() {
	m.requirement_id = nil
	delete(m.clearedFields, complianceevent.FieldRequirementID)
}

// SetEventType sets the "event_type" field.
func (m *ComplianceEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *ComplianceEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the ComplianceEvent entity.
// If the ComplianceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComplianceEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *ComplianceEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetEventDate sets the "event_date" field.
func (m *ComplianceEventMutation) SetEventDate(t time.Time) {
	m.event_date = &t
}

// EventDate returns the value of the "event_date" field in the mutation.
func (m *ComplianceEventMutation) EventDate() (r time.Time, exists bool) {
	v := m.event_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEventDate returns the old "event_date" field's value of the ComplianceEvent entity.
// If the ComplianceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComplianceEventMutation) OldEventDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventDate: %w", err)
	}
	return oldValue.EventDate, nil
}

// ResetEventDate resets all changes to the "event_date" field.
func (m *ComplianceEventMutation) ResetEventDate() {
	m.event_date = nil
}

// SetDescription sets the "description" field.
func (m *ComplianceEventMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ComplianceEventMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ComplianceEvent entity.
// If the ComplianceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComplianceEventMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ComplianceEventMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[complianceevent.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ComplianceEventMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[complianceevent.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ComplianceEventMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, complianceevent.FieldDescription)
}

// SetOldStatus sets the "old_status" field.
func (m *ComplianceEventMutation) SetOldStatus(s string) {
	m.old_status = &s
}

// OldStatus returns the value of the "old_status" field in the mutation.
func (m *ComplianceEventMutation) OldStatus() (r string, exists bool) {
	v := m.old_status
	if v == nil {
		return
	}
	return *v, true
}

// OldOldStatus returns the old "old_status" field's value of the ComplianceEvent entity.
// If the ComplianceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComplianceEventMutation) OldOldStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOldStatus: %w", err)
	}
	return oldValue.OldStatus, nil
}

// ClearOldStatus clears the value of the "old_status" field.
func (m *ComplianceEventMutation) ClearOldStatus() {
	m.old_status = nil
	m.clearedFields[complianceevent.FieldOldStatus] = struct{}{}
}

// OldStatusCleared returns if the "old_status" field was cleared in this mutation.
func (m *ComplianceEventMutation) OldStatusCleared() bool {
	_, ok := m.clearedFields[complianceevent.FieldOldStatus]
	return ok
}

// ResetOldStatus resets all changes to the "old_status" field.
func (m *ComplianceEventMutation) ResetOldStatus() {
	m.old_status = nil
	delete(m.clearedFields, complianceevent.FieldOldStatus)
}

// SetNewStatus sets the "new_status" field.
func (m *ComplianceEventMutation) SetNewStatus(s string) {
	m.new_status = &s
}

// NewStatus returns the value of the "new_status" field in the mutation.
func (m *ComplianceEventMutation) NewStatus() (r string, exists bool) {
	v := m.new_status
	if v == nil {
		return
	}
	return *v, true
}

// OldNewStatus returns the old "new_status" field's value of the ComplianceEvent entity.
// If the ComplianceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComplianceEventMutation) OldNewStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewStatus: %w", err)
	}
	return oldValue.NewStatus, nil
}

// ClearNewStatus clears the value of the "new_status" field.
func (m *ComplianceEventMutation) ClearNewStatus() {
	m.new_status = nil
	m.clearedFields[complianceevent.FieldNewStatus] = struct{}{}
}

// NewStatusCleared returns if the "new_status" field was cleared in this mutation.
func (m *ComplianceEventMutation) NewStatusCleared() bool {
	_, ok := m.clearedFields[complianceevent.FieldNewStatus]
	return ok
}

// ResetNewStatus resets all changes to the "new_status" field.
func (m *ComplianceEventMutation) ResetNewStatus() {
	m.new_status = nil
	delete(m.clearedFields, complianceevent.FieldNewStatus)
}

// SetSubmittedBy sets the "submitted_by" field.
func (m *ComplianceEventMutation) SetSubmittedBy(s string) {
	m.submitted_by = &s
}

// SubmittedBy returns the value of the "submitted_by" field in the mutation.
func (m *ComplianceEventMutation) SubmittedBy() (r string, exists bool) {
	v := m.submitted_by
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmittedBy returns the old "submitted_by" field's value of the ComplianceEvent entity.
// If the ComplianceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComplianceEventMutation) OldSubmittedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmittedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmittedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmittedBy: %w", err)
	}
	return oldValue.SubmittedBy, nil
}

// ClearSubmittedBy clears the value of the "submitted_by" field.
func (m *ComplianceEventMutation) ClearSubmittedBy() {
	m.submitted_by = nil
	m.clearedFields[complianceevent.FieldSubmittedBy] = struct{}{}
}

// SubmittedByCleared returns if the "submitted_by" field was cleared in this mutation.
func (m *ComplianceEventMutation) SubmittedByCleared() bool {
	_, ok := m.clearedFields[complianceevent.FieldSubmittedBy]
	return ok
}

// ResetSubmittedBy resets all changes to the "submitted_by" field.
func (m *ComplianceEventMutation) ResetSubmittedBy() {
	m.submitted_by = nil
	delete(m.clearedFields, complianceevent.FieldSubmittedBy)
}

// SetDocuments sets the "documents" field.
func (m *ComplianceEventMutation) SetDocuments(s []string) {
	m.documents = &s
	m.appenddocuments = nil
}

// Documents returns the value of the "documents" field in the mutation.
func (m *ComplianceEventMutation) Documents() (r []string, exists bool) {
	v := m.documents
	if v == nil {
		return
	}
	return *v, true
}

// OldDocuments returns the old "documents" field's value of the ComplianceEvent entity.
// If the ComplianceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComplianceEventMutation) OldDocuments(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocuments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocuments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocuments: %w", err)
	}
	return oldValue.Documents, nil
}

// AppendDocuments adds s to the "documents" field.
func (m *ComplianceEventMutation) AppendDocuments(s []string) {
	m.appenddocuments = append(m.appenddocuments, s...)
}

// AppendedDocuments returns the list of values that were appended to the "documents" field in this mutation.
func (m *ComplianceEventMutation) AppendedDocuments() ([]string, bool) {
	if len(m.appenddocuments) == 0 {
		return nil, false
	}
	return m.appenddocuments, true
}

// ClearDocuments clears the value of the "documents" field.
func (m *ComplianceEventMutation) ClearDocuments() {
	m.documents = nil
	m.appenddocuments = nil
	m.clearedFields[complianceevent.FieldDocuments] = struct{}{}
}

// DocumentsCleared returns if the "documents" field was cleared in this mutation.
func (m *ComplianceEventMutation) DocumentsCleared() bool {
	_, ok := m.clearedFields[complianceevent.FieldDocuments]
	return ok
}

// ResetDocuments resets all changes to the "documents" field.
func (m *ComplianceEventMutation) ResetDocuments() {
	m.documents = nil
	m.appenddocuments = nil
	delete(m.clearedFields, complianceevent.FieldDocuments)
}

// SetCreatedAt sets the "created_at" field.
func (m *ComplianceEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ComplianceEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ComplianceEvent entity.
// If the ComplianceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComplianceEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ComplianceEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearLoan clears the "loan" edge to the Loan entity.
func (m *ComplianceEventMutation) ClearLoan() {
	m.clearedloan = true
	m.clearedFields[complianceevent.FieldLoanID] = struct{}{}
}

// LoanCleared reports if the "loan" edge to the Loan entity was cleared.
func (m *ComplianceEventMutation) LoanCleared() bool {
	return m.clearedloan
}

// LoanIDs returns the "loan" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LoanID instead. It exists only for internal usage by the builders.
func (m *ComplianceEventMutation) LoanIDs() (ids []uuid.UUID) {
	if id := m.loan; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLoan resets all changes to the "loan" edge.
func (m *ComplianceEventMutation) ResetLoan() {
	m.loan = nil
	m.clearedloan = false
}

// Where appends a list predicates to the ComplianceEventMutation builder.
func (m *ComplianceEventMutation) Where(ps ...predicate.ComplianceEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ComplianceEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ComplianceEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ComplianceEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ComplianceEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ComplianceEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ComplianceEvent).
func (m *ComplianceEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ComplianceEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.loan != nil {
		fields = append(fields, complianceevent.FieldLoanID)
	}
	if m.requirement_id != nil {
		fields = append(fields, complianceevent.FieldRequirementID)
	}
	if m.event_type != nil {
		fields = append(fields, complianceevent.FieldEventType)
	}
	if m.event_date != nil {
		fields = append(fields, complianceevent.FieldEventDate)
	}
	if m.description != nil {
		fields = append(fields, complianceevent.FieldDescription)
	}
	if m.old_status != nil {
		fields = append(fields, complianceevent.FieldOldStatus)
	}
	if m.new_status != nil {
		fields = append(fields, complianceevent.FieldNewStatus)
	}
	if m.submitted_by != nil {
		fields = append(fields, complianceevent.FieldSubmittedBy)
	}
	if m.documents != nil {
		fields = append(fields, complianceevent.FieldDocuments)
	}
	if m.created_at != nil {
		fields = append(fields, complianceevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ComplianceEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case complianceevent.FieldLoanID:
		return m.LoanID()
	case complianceevent.FieldRequirementID:
		return m.RequirementID()
	case complianceevent.FieldEventType:
		return m.EventType()
	case complianceevent.FieldEventDate:
		return m.EventDate()
	case complianceevent.FieldDescription:
		return m.Description()
	case complianceevent.FieldOldStatus:
		return m.OldStatus()
	case complianceevent.FieldNewStatus:
		return m.NewStatus()
	case complianceevent.FieldSubmittedBy:
		return m.SubmittedBy()
	case complianceevent.FieldDocuments:
		return m.Documents()
	case complianceevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ComplianceEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case complianceevent.FieldLoanID:
		return m.OldLoanID(ctx)
	case complianceevent.FieldRequirementID:
		return m.OldRequirementID(ctx)
	case complianceevent.FieldEventType:
		return m.OldEventType(ctx)
	case complianceevent.FieldEventDate:
		return m.OldEventDate(ctx)
	case complianceevent.FieldDescription:
		return m.OldDescription(ctx)
	case complianceevent.FieldOldStatus:
		return m.OldOldStatus(ctx)
	case complianceevent.FieldNewStatus:
		return m.OldNewStatus(ctx)
	case complianceevent.FieldSubmittedBy:
		return m.OldSubmittedBy(ctx)
	case complianceevent.FieldDocuments:
		return m.OldDocuments(ctx)
	case complianceevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ComplianceEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ComplianceEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case complianceevent.FieldLoanID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoanID(v)
		return nil
	case complianceevent.FieldRequirementID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequirementID(v)
		return nil
	case complianceevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case complianceevent.FieldEventDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventDate(v)
		return nil
	case complianceevent.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case complianceevent.FieldOldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOldStatus(v)
		return nil
	case complianceevent.FieldNewStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewStatus(v)
		return nil
	case complianceevent.FieldSubmittedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmittedBy(v)
		return nil
	case complianceevent.FieldDocuments:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocuments(v)
		return nil
	case complianceevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ComplianceEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ComplianceEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ComplianceEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ComplianceEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ComplianceEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ComplianceEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(complianceevent.FieldRequirementID) {
		fields = append(fields, complianceevent.FieldRequirementID)
	}
	if m.FieldCleared(complianceevent.FieldDescription) {
		fields = append(fields, complianceevent.FieldDescription)
	}
	if m.FieldCleared(complianceevent.FieldOldStatus) {
		fields = append(fields, complianceevent.FieldOldStatus)
	}
	if m.FieldCleared(complianceevent.FieldNewStatus) {
		fields = append(fields, complianceevent.FieldNewStatus)
	}
	if m.FieldCleared(complianceevent.FieldSubmittedBy) {
		fields = append(fields, complianceevent.FieldSubmittedBy)
	}
	if m.FieldCleared(complianceevent.FieldDocuments) {
		fields = append(fields, complianceevent.FieldDocuments)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ComplianceEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ComplianceEventMutation) ClearField(name string) error {
	switch name {
	case complianceevent.FieldRequirementID:
		m.ClearRequirementID()
		return nil
	case complianceevent.FieldDescription:
		m.ClearDescription()
		return nil
	case complianceevent.FieldOldStatus:
		m.ClearOldStatus()
		return nil
	case complianceevent.FieldNewStatus:
		m.ClearNewStatus()
		return nil
	case complianceevent.FieldSubmittedBy:
		m.ClearSubmittedBy()
		return nil
	case complianceevent.FieldDocuments:
		m.ClearDocuments()
		return nil
	}
	return fmt.Errorf("unknown ComplianceEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ComplianceEventMutation) ResetField(name string) error {
	switch name {
	case complianceevent.FieldLoanID:
		m.ResetLoanID()
		return nil
	case complianceevent.FieldRequirementID:
		m.ResetRequirementID()
		return nil
	case complianceevent.FieldEventType:
		m.ResetEventType()
		return nil
	case complianceevent.FieldEventDate:
		m.ResetEventDate()
		return nil
	case complianceevent.FieldDescription:
		m.ResetDescription()
		return nil
	case complianceevent.FieldOldStatus:
		m.ResetOldStatus()
		return nil
	case complianceevent.FieldNewStatus:
		m.ResetNewStatus()
		return nil
	case complianceevent.FieldSubmittedBy:
		m.ResetSubmittedBy()
		return nil
	case complianceevent.FieldDocuments:
		m.ResetDocuments()
		return nil
	case complianceevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ComplianceEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ComplianceEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.loan != nil {
		edges = append(edges, complianceevent.EdgeLoan)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ComplianceEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case complianceevent.EdgeLoan:
		if id := m.loan; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ComplianceEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ComplianceEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ComplianceEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedloan {
		edges = append(edges, complianceevent.EdgeLoan)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ComplianceEventMutation) EdgeCleared(name string) bool {
	switch name {
	case complianceevent.EdgeLoan:
		return m.clearedloan
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ComplianceEventMutation) ClearEdge(name string) error {
	switch name {
	case complianceevent.EdgeLoan:
		m.ClearLoan()
		return nil
	}
	return fmt.Errorf("unknown ComplianceEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ComplianceEventMutation) ResetEdge(name string) error {
	switch name {
	case complianceevent.EdgeLoan:
		m.ResetLoan()
		return nil
	}
	return fmt.Errorf("unknown ComplianceEvent edge %s", name)
}

// LoanMutation represents an operation that mutates the Loan nodes in the graph.
type LoanMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	loan_id                 *string
	loan_name               *string
	property_name           *string
	borrower_name           *string
	lender_name             *string
	original_loan_amount    *float64
	addoriginal_loan_amount *float64
	current_balance         *float64
	addcurrent_balance      *float64
	origination_date        *string
	maturity_date           *string
	compliance_score        *int
	addcompliance_score     *int
	source_documents        *[]string
	appendsource_documents  []string
	extraction_date         *time.Time
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	requirements            map[uuid.UUID]struct{}
	removedrequirements     map[uuid.UUID]struct{}
	clearedrequirements     bool
	events                  map[uuid.UUID]struct{}
	removedevents           map[uuid.UUID]struct{}
	clearedevents           bool
	done                    bool
	oldValue                func(context.Context) (*Loan, error)
	predicates              []predicate.Loan
}

var _ ent.Mutation = (*LoanMutation)(nil)

// loanOption allows management of the mutation configuration using functional options.
type loanOption func(*LoanMutation)

// newLoanMutation creates new mutation for the Loan entity.
func newLoanMutation(c config, op Op, opts ...loanOption) *LoanMutation {
	m := &LoanMutation{
		config:        c,
		op:            op,
		typ:           TypeLoan,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLoanID sets the ID field of the mutation.
func withLoanID(id uuid.UUID) loanOption {
	return func(m *LoanMutation) {
		var (
			err   error
			once  sync.Once
			value *Loan
		)
		m.oldValue = func(ctx context.Context) (*Loan, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Loan.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLoan sets the old Loan of the mutation.
func withLoan(node *Loan) loanOption {
	return func(m *LoanMutation) {
		m.oldValue = func(context.Context) (*Loan, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LoanMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LoanMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Loan entities.
func (m *LoanMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LoanMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LoanMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Loan.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLoanID sets the "loan_id" field.
func (m *LoanMutation) SetLoanID(s string) {
	m.loan_id = &s
}

// LoanID returns the value of the "loan_id" field in the mutation.
func (m *LoanMutation) LoanID() (r string, exists bool) {
	v := m.loan_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLoanID returns the old "loan_id" field's value of the Loan entity.
// If the Loan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoanMutation) OldLoanID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoanID: %w", err)
	}
	return oldValue.LoanID, nil
}

// ResetLoanID resets all changes to the "loan_id" field.
func (m *LoanMutation) ResetLoanID() {
	m.loan_id = nil
}

// SetLoanName sets the "loan_name" field.
func (m *LoanMutation) SetLoanName(s string) {
	m.loan_name = &s
}

// LoanName returns the value of the "loan_name" field in the mutation.
func (m *LoanMutation) LoanName() (r string, exists bool) {
	v := m.loan_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLoanName returns the old "loan_name" field's value of the Loan entity.
// If the Loan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoanMutation) OldLoanName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoanName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoanName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoanName: %w", err)
	}
	return oldValue.LoanName, nil
}

// ClearLoanName clears the value of the "loan_name" field.
func (m *LoanMutation) ClearLoanName() {
	m.loan_name = nil
	m.clearedFields[loan.FieldLoanName] = struct{}{}
}

// LoanNameCleared returns if the "loan_name" field was cleared in this mutation.
func (m *LoanMutation) LoanNameCleared() bool {
	_, ok := m.clearedFields[loan.FieldLoanName]
	return ok
}

// ResetLoanName resets all changes to the "loan_name" field.
func (m *LoanMutation) ResetLoanName() {
	m.loan_name = nil
	delete(m.clearedFields, loan.FieldLoanName)
}

// SetPropertyName sets the "property_name" field.
func (m *LoanMutation) SetPropertyName(s string) {
	m.property_name = &s
}

// PropertyName returns the value of the "property_name" field in the mutation.
func (m *LoanMutation) PropertyName() (r string, exists bool) {
	v := m.property_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPropertyName returns the old "property_name" field's value of the Loan entity.
// If the Loan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoanMutation) OldPropertyName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPropertyName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPropertyName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPropertyName: %w", err)
	}
	return oldValue.PropertyName, nil
}

// ResetPropertyName resets all changes to the "property_name" field.
func (m *LoanMutation) ResetPropertyName() {
	m.property_name = nil
}

// SetBorrowerName sets the "borrower_name" field.
func (m *LoanMutation) SetBorrowerName(s string) {
	m.borrower_name = &s
}

// BorrowerName returns the value of the "borrower_name" field in the mutation.
func (m *LoanMutation) BorrowerName() (r string, exists bool) {
	v := m.borrower_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBorrowerName returns the old "borrower_name" field's value of the Loan entity.
// If the Loan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoanMutation) OldBorrowerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBorrowerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBorrowerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBorrowerName: %w", err)
	}
	return oldValue.BorrowerName, nil
}

// ClearBorrowerName clears the value of the "borrower_name" field.
func (m *LoanMutation) ClearBorrowerName() {
	m.borrower_name = nil
	m.clearedFields[loan.FieldBorrowerName] = struct{}{}
}

// BorrowerNameCleared returns if the "borrower_name" field was cleared in this mutation.
func (m *LoanMutation) BorrowerNameCleared() bool {
	_, ok := m.clearedFields[loan.FieldBorrowerName]
	return ok
}

// ResetBorrowerName resets all changes to the "borrower_name" field.
func (m *LoanMutation) ResetBorrowerName() {
	m.borrower_name = nil
	delete(m.clearedFields, loan.FieldBorrowerName)
}

// SetLenderName sets the "lender_name" field.
func (m *LoanMutation) SetLenderName(s string) {
	m.lender_name = &s
}

// LenderName returns the value of the "lender_name" field in the mutation.
func (m *LoanMutation) LenderName() (r string, exists bool) {
	v := m.lender_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLenderName returns the old "lender_name" field's value of the Loan entity.
// If the Loan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoanMutation) OldLenderName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLenderName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLenderName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLenderName: %w", err)
	}
	return oldValue.LenderName, nil
}

// ClearLenderName clears the value of the "lender_name" field.
func (m *LoanMutation) ClearLenderName() {
	m.lender_name = nil
	m.clearedFields[loan.FieldLenderName] = struct{}{}
}

// LenderNameCleared returns if the "lender_name" field was cleared in this mutation.
func (m *LoanMutation) LenderNameCleared() bool {
	_, ok := m.clearedFields[loan.FieldLenderName]
	return ok
}

// ResetLenderName resets all changes to the "lender_name" field.
func (m *LoanMutation) ResetLenderName() {
	m.lender_name = nil
	delete(m.clearedFields, loan.FieldLenderName)
}

// SetOriginalLoanAmount sets the "original_loan_amount" field.
func (m *LoanMutation) SetOriginalLoanAmount(f float64) {
	m.original_loan_amount = &f
	m.addoriginal_loan_amount = nil
}

// OriginalLoanAmount returns the value of the "original_loan_amount" field in the mutation.
func (m *LoanMutation) OriginalLoanAmount() (r float64, exists bool) {
	v := m.original_loan_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalLoanAmount returns the old "original_loan_amount" field's value of the Loan entity.
// If the Loan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoanMutation) OldOriginalLoanAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalLoanAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalLoanAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalLoanAmount: %w", err)
	}
	return oldValue.OriginalLoanAmount, nil
}

// AddOriginalLoanAmount adds f to the "original_loan_amount" field.
func (m *LoanMutation) AddOriginalLoanAmount(f float64) {
	if m.addoriginal_loan_amount != nil {
		*m.addoriginal_loan_amount += f
	} else {
		m.addoriginal_loan_amount = &f
	}
}

// AddedOriginalLoanAmount returns the value that was added to the "original_loan_amount" field in this mutation.
func (m *LoanMutation) AddedOriginalLoanAmount() (r float64, exists bool) {
	v := m.addoriginal_loan_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetOriginalLoanAmount resets all changes to the "original_loan_amount" field.
func (m *LoanMutation) ResetOriginalLoanAmount() {
	m.original_loan_amount = nil
	m.addoriginal_loan_amount = nil
}

// SetCurrentBalance sets the "current_balance" field.
func (m *LoanMutation) SetCurrentBalance(f float64) {
	m.current_balance = &f
	m.addcurrent_balance = nil
}

// CurrentBalance returns the value of the "current_balance" field in the mutation.
func (m *LoanMutation) CurrentBalance() (r float64, exists bool) {
	v := m.current_balance
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentBalance returns the old "current_balance" field's value of the Loan entity.
// If the Loan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoanMutation) OldCurrentBalance(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentBalance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentBalance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentBalance: %w", err)
	}
	return oldValue.CurrentBalance, nil
}

// AddCurrentBalance adds f to the "current_balance" field.
func (m *LoanMutation) AddCurrentBalance(f float64) {
	if m.addcurrent_balance != nil {
		*m.addcurrent_balance += f
	} else {
		m.addcurrent_balance = &f
	}
}

// AddedCurrentBalance returns the value that was added to the "current_balance" field in this mutation.
func (m *LoanMutation) AddedCurrentBalance() (r float64, exists bool) {
	v := m.addcurrent_balance
	if v == nil {
		return
	}
	return *v, true
}

// ClearCurrentBalance clears the value of the "current_balance" field.
func (m *LoanMutation) ClearCurrentBalance() {
	m.current_balance = nil
	m.addcurrent_balance = nil
	m.clearedFields[loan.FieldCurrentBalance] = struct{}{}
}

// CurrentBalanceCleared returns if the "current_balance" field was cleared in this mutation.
func (m *LoanMutation) CurrentBalanceCleared() bool {
	_, ok := m.clearedFields[loan.FieldCurrentBalance]
	return ok
}

// ResetCurrentBalance resets all changes to the "current_balance" field.
func (m *LoanMutation) ResetCurrentBalance() {
	m.current_balance = nil
	m.addcurrent_balance = nil
	delete(m.clearedFields, loan.FieldCurrentBalance)
}

// SetOriginationDate sets the "origination_date" field.
func (m *LoanMutation) SetOriginationDate(s string) {
	m.origination_date = &s
}

// OriginationDate returns the value of the "origination_date" field in the mutation.
func (m *LoanMutation) OriginationDate() (r string, exists bool) {
	v := m.origination_date
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginationDate returns the old "origination_date" field's value of the Loan entity.
// If the Loan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoanMutation) OldOriginationDate(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginationDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginationDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginationDate: %w", err)
	}
	return oldValue.OriginationDate, nil
}

// ClearOriginationDate clears the value of the "origination_date" field.
func (m *LoanMutation) ClearOriginationDate() {
	m.origination_date = nil
	m.clearedFields[loan.FieldOriginationDate] = struct{}{}
}

// OriginationDateCleared returns if the "origination_date" field was cleared in this mutation.
func (m *LoanMutation) OriginationDateCleared() bool {
	_, ok := m.clearedFields[loan.FieldOriginationDate]
	return ok
}

// ResetOriginationDate resets all changes to the "origination_date" field.
func (m *LoanMutation) ResetOriginationDate() {
	m.origination_date = nil
	delete(m.clearedFields, loan.FieldOriginationDate)
}

// SetMaturityDate sets the "maturity_date" field.
func (m *LoanMutation) SetMaturityDate(s string) {
	m.maturity_date = &s
}

// MaturityDate returns the value of the "maturity_date" field in the mutation.
func (m *LoanMutation) MaturityDate() (r string, exists bool) {
	v := m.maturity_date
	if v == nil {
		return
	}
	return *v, true
}

// OldMaturityDate returns the old "maturity_date" field's value of the Loan entity.
// If the Loan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoanMutation) OldMaturityDate(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaturityDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaturityDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaturityDate: %w", err)
	}
	return oldValue.MaturityDate, nil
}

// ClearMaturityDate clears the value of the "maturity_date" field.
func (m *LoanMutation) ClearMaturityDate() {
	m.maturity_date = nil
	m.clearedFields[loan.FieldMaturityDate] = struct{}{}
}

// MaturityDateCleared returns if the "maturity_date" field was cleared in this mutation.
func (m *LoanMutation) MaturityDateCleared() bool {
	_, ok := m.clearedFields[loan.FieldMaturityDate]
	return ok
}

// ResetMaturityDate resets all changes to the "maturity_date" field.
func (m *LoanMutation) ResetMaturityDate() {
	m.maturity_date = nil
	delete(m.clearedFields, loan.FieldMaturityDate)
}

// SetComplianceScore sets the "compliance_score" field.
func (m *LoanMutation) SetComplianceScore(i int) {
	m.compliance_score = &i
	m.addcompliance_score = nil
}

// ComplianceScore returns the value of the "compliance_score" field in the mutation.
func (m *LoanMutation) ComplianceScore() (r int, exists bool) {
	v := m.compliance_score
	if v == nil {
		return
	}
	return *v, true
}

// OldComplianceScore returns the old "compliance_score" field's value of the Loan entity.
// If the Loan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoanMutation) OldComplianceScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComplianceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComplianceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComplianceScore: %w", err)
	}
	return oldValue.ComplianceScore, nil
}

// AddComplianceScore adds i to the "compliance_score" field.
func (m *LoanMutation) AddComplianceScore(i int) {
	if m.addcompliance_score != nil {
		*m.addcompliance_score += i
	} else {
		m.addcompliance_score = &i
	}
}

// AddedComplianceScore returns the value that was added to the "compliance_score" field in this mutation.
func (m *LoanMutation) AddedComplianceScore() (r int, exists bool) {
	v := m.addcompliance_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetComplianceScore resets all changes to the "compliance_score" field.
func (m *LoanMutation) ResetComplianceScore() {
	m.compliance_score = nil
	m.addcompliance_score = nil
}

// SetSourceDocuments sets the "source_documents" field.
func (m *LoanMutation) SetSourceDocuments(s []string) {
	m.source_documents = &s
	m.appendsource_documents = nil
}

// SourceDocuments returns the value of the "source_documents" field in the mutation.
func (m *LoanMutation) SourceDocuments() (r []string, exists bool) {
	v := m.source_documents
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceDocuments returns the old "source_documents" field's value of the Loan entity.
// If the Loan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoanMutation) OldSourceDocuments(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceDocuments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceDocuments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceDocuments: %w", err)
	}
	return oldValue.SourceDocuments, nil
}

// AppendSourceDocuments adds s to the "source_documents" field.
func (m *LoanMutation) AppendSourceDocuments(s []string) {
	m.appendsource_documents = append(m.appendsource_documents, s...)
}

// AppendedSourceDocuments returns the list of values that were appended to the "source_documents" field in this mutation.
func (m *LoanMutation) AppendedSourceDocuments() ([]string, bool) {
	if len(m.appendsource_documents) == 0 {
		return nil, false
	}
	return m.appendsource_documents, true
}

// ClearSourceDocuments clears the value of the "source_documents" field.
func (m *LoanMutation) ClearSourceDocuments() {
	m.source_documents = nil
	m.appendsource_documents = nil
	m.clearedFields[loan.FieldSourceDocuments] = struct{}{}
}

// SourceDocumentsCleared returns if the "source_documents" field was cleared in this mutation.
func (m *LoanMutation) SourceDocumentsCleared() bool {
	_, ok := m.clearedFields[loan.FieldSourceDocuments]
	return ok
}

// ResetSourceDocuments resets all changes to the "source_documents" field.
func (m *LoanMutation) ResetSourceDocuments() {
	m.source_documents = nil
	m.appendsource_documents = nil
	delete(m.clearedFields, loan.FieldSourceDocuments)
}

// SetExtractionDate sets the "extraction_date" field.
func (m *LoanMutation) SetExtractionDate(t time.Time) {
	m.extraction_date = &t
}

// ExtractionDate returns the value of the "extraction_date" field in the mutation.
func (m *LoanMutation) ExtractionDate() (r time.Time, exists bool) {
	v := m.extraction_date
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionDate returns the old "extraction_date" field's value of the Loan entity.
// If the Loan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoanMutation) OldExtractionDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionDate: %w", err)
	}
	return oldValue.ExtractionDate, nil
}

// ResetExtractionDate resets all changes to the "extraction_date" field.
func (m *LoanMutation) ResetExtractionDate() {
	m.extraction_date = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LoanMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LoanMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Loan entity.
// If the Loan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoanMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LoanMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LoanMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LoanMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Loan entity.
// If the Loan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoanMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LoanMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddRequirementIDs adds the "requirements" edge to the Requirement entity by ids.
func (m *LoanMutation) AddRequirementIDs(ids ...uuid.UUID) {
	if m.requirements == nil {
		m.requirements = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.requirements[ids[i]] = struct{}{}
	}
}

// ClearRequirements clears the "requirements" edge to the Requirement entity.
func (m *LoanMutation) ClearRequirements() {
	m.clearedrequirements = true
}

// RequirementsCleared reports if the "requirements" edge to the Requirement entity was cleared.
func (m *LoanMutation) RequirementsCleared() bool {
	return m.clearedrequirements
}

// RemoveRequirementIDs removes the "requirements" edge to the Requirement entity by IDs.
func (m *LoanMutation) RemoveRequirementIDs(ids ...uuid.UUID) {
	if m.removedrequirements == nil {
		m.removedrequirements = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.requirements, ids[i])
		m.removedrequirements[ids[i]] = struct{}{}
	}
}

// RemovedRequirements returns the removed IDs of the "requirements" edge to the Requirement entity.
func (m *LoanMutation) RemovedRequirementsIDs() (ids []uuid.UUID) {
	for id := range m.removedrequirements {
		ids = append(ids, id)
	}
	return
}

// RequirementsIDs returns the "requirements" edge IDs in the mutation.
func (m *LoanMutation) RequirementsIDs() (ids []uuid.UUID) {
	for id := range m.requirements {
		ids = append(ids, id)
	}
	return
}

// ResetRequirements resets all changes to the "requirements" edge.
func (m *LoanMutation) ResetRequirements() {
	m.requirements = nil
	m.clearedrequirements = false
	m.removedrequirements = nil
}

// AddEventIDs adds the "events" edge to the ComplianceEvent entity by ids.
func (m *LoanMutation) AddEventIDs(ids ...uuid.UUID) {
	if m.events == nil {
		m.events = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the ComplianceEvent entity.
func (m *LoanMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the ComplianceEvent entity was cleared.
func (m *LoanMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the ComplianceEvent entity by IDs.
func (m *LoanMutation) RemoveEventIDs(ids ...uuid.UUID) {
	if m.removedevents == nil {
		m.removedevents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the ComplianceEvent entity.
func (m *LoanMutation) RemovedEventsIDs() (ids []uuid.UUID) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *LoanMutation) EventsIDs() (ids []uuid.UUID) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *LoanMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the LoanMutation builder.
func (m *LoanMutation) Where(ps ...predicate.Loan) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LoanMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LoanMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Loan, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LoanMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LoanMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Loan).
func (m *LoanMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LoanMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.loan_id != nil {
		fields = append(fields, loan.FieldLoanID)
	}
	if m.loan_name != nil {
		fields = append(fields, loan.FieldLoanName)
	}
	if m.property_name != nil {
		fields = append(fields, loan.FieldPropertyName)
	}
	if m.borrower_name != nil {
		fields = append(fields, loan.FieldBorrowerName)
	}
	if m.lender_name != nil {
		fields = append(fields, loan.FieldLenderName)
	}
	if m.original_loan_amount != nil {
		fields = append(fields, loan.FieldOriginalLoanAmount)
	}
	if m.current_balance != nil {
		fields = append(fields, loan.FieldCurrentBalance)
	}
	if m.origination_date != nil {
		fields = append(fields, loan.FieldOriginationDate)
	}
	if m.maturity_date != nil {
		fields = append(fields, loan.FieldMaturityDate)
	}
	if m.compliance_score != nil {
		fields = append(fields, loan.FieldComplianceScore)
	}
	if m.source_documents != nil {
		fields = append(fields, loan.FieldSourceDocuments)
	}
	if m.extraction_date != nil {
		fields = append(fields, loan.FieldExtractionDate)
	}
	if m.created_at != nil {
		fields = append(fields, loan.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, loan.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LoanMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case loan.FieldLoanID:
		return m.LoanID()
	case loan.FieldLoanName:
		return m.LoanName()
	case loan.FieldPropertyName:
		return m.PropertyName()
	case loan.FieldBorrowerName:
		return m.BorrowerName()
	case loan.FieldLenderName:
		return m.LenderName()
	case loan.FieldOriginalLoanAmount:
		return m.OriginalLoanAmount()
	case loan.FieldCurrentBalance:
		return m.CurrentBalance()
	case loan.FieldOriginationDate:
		return m.OriginationDate()
	case loan.FieldMaturityDate:
		return m.MaturityDate()
	case loan.FieldComplianceScore:
		return m.ComplianceScore()
	case loan.FieldSourceDocuments:
		return m.SourceDocuments()
	case loan.FieldExtractionDate:
		return m.ExtractionDate()
	case loan.FieldCreatedAt:
		return m.CreatedAt()
	case loan.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LoanMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case loan.FieldLoanID:
		return m.OldLoanID(ctx)
	case loan.FieldLoanName:
		return m.OldLoanName(ctx)
	case loan.FieldPropertyName:
		return m.OldPropertyName(ctx)
	case loan.FieldBorrowerName:
		return m.OldBorrowerName(ctx)
	case loan.FieldLenderName:
		return m.OldLenderName(ctx)
	case loan.FieldOriginalLoanAmount:
		return m.OldOriginalLoanAmount(ctx)
	case loan.FieldCurrentBalance:
		return m.OldCurrentBalance(ctx)
	case loan.FieldOriginationDate:
		return m.OldOriginationDate(ctx)
	case loan.FieldMaturityDate:
		return m.OldMaturityDate(ctx)
	case loan.FieldComplianceScore:
		return m.OldComplianceScore(ctx)
	case loan.FieldSourceDocuments:
		return m.OldSourceDocuments(ctx)
	case loan.FieldExtractionDate:
		return m.OldExtractionDate(ctx)
	case loan.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case loan.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Loan field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LoanMutation) SetField(name string, value ent.Value) error {
	switch name {
	case loan.FieldLoanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoanID(v)
		return nil
	case loan.FieldLoanName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoanName(v)
		return nil
	case loan.FieldPropertyName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPropertyName(v)
		return nil
	case loan.FieldBorrowerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBorrowerName(v)
		return nil
	case loan.FieldLenderName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLenderName(v)
		return nil
	case loan.FieldOriginalLoanAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalLoanAmount(v)
		return nil
	case loan.FieldCurrentBalance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentBalance(v)
		return nil
	case loan.FieldOriginationDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginationDate(v)
		return nil
	case loan.FieldMaturityDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaturityDate(v)
		return nil
	case loan.FieldComplianceScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComplianceScore(v)
		return nil
	case loan.FieldSourceDocuments:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceDocuments(v)
		return nil
	case loan.FieldExtractionDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionDate(v)
		return nil
	case loan.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case loan.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Loan field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LoanMutation) AddedFields() []string {
	var fields []string
	if m.addoriginal_loan_amount != nil {
		fields = append(fields, loan.FieldOriginalLoanAmount)
	}
	if m.addcurrent_balance != nil {
		fields = append(fields, loan.FieldCurrentBalance)
	}
	if m.addcompliance_score != nil {
		fields = append(fields, loan.FieldComplianceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LoanMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case loan.FieldOriginalLoanAmount:
		return m.AddedOriginalLoanAmount()
	case loan.FieldCurrentBalance:
		return m.AddedCurrentBalance()
	case loan.FieldComplianceScore:
		return m.AddedComplianceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LoanMutation) AddField(name string, value ent.Value) error {
	switch name {
	case loan.FieldOriginalLoanAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOriginalLoanAmount(v)
		return nil
	case loan.FieldCurrentBalance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentBalance(v)
		return nil
	case loan.FieldComplianceScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddComplianceScore(v)
		return nil
	}
	return fmt.Errorf("unknown Loan numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LoanMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(loan.FieldLoanName) {
		fields = append(fields, loan.FieldLoanName)
	}
	if m.FieldCleared(loan.FieldBorrowerName) {
		fields = append(fields, loan.FieldBorrowerName)
	}
	if m.FieldCleared(loan.FieldLenderName) {
		fields = append(fields, loan.FieldLenderName)
	}
	if m.FieldCleared(loan.FieldCurrentBalance) {
		fields = append(fields, loan.FieldCurrentBalance)
	}
	if m.FieldCleared(loan.FieldOriginationDate) {
		fields = append(fields, loan.FieldOriginationDate)
	}
	if m.FieldCleared(loan.FieldMaturityDate) {
		fields = append(fields, loan.FieldMaturityDate)
	}
	if m.FieldCleared(loan.FieldSourceDocuments) {
		fields = append(fields, loan.FieldSourceDocuments)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LoanMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LoanMutation) ClearField(name string) error {
	switch name {
	case loan.FieldLoanName:
		m.ClearLoanName()
		return nil
	case loan.FieldBorrowerName:
		m.ClearBorrowerName()
		return nil
	case loan.FieldLenderName:
		m.ClearLenderName()
		return nil
	case loan.FieldCurrentBalance:
		m.ClearCurrentBalance()
		return nil
	case loan.FieldOriginationDate:
		m.ClearOriginationDate()
		return nil
	case loan.FieldMaturityDate:
		m.ClearMaturityDate()
		return nil
	case loan.FieldSourceDocuments:
		m.ClearSourceDocuments()
		return nil
	}
	return fmt.Errorf("unknown Loan nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LoanMutation) ResetField(name string) error {
	switch name {
	case loan.FieldLoanID:
		m.ResetLoanID()
		return nil
	case loan.FieldLoanName:
		m.ResetLoanName()
		return nil
	case loan.FieldPropertyName:
		m.ResetPropertyName()
		return nil
	case loan.FieldBorrowerName:
		m.ResetBorrowerName()
		return nil
	case loan.FieldLenderName:
		m.ResetLenderName()
		return nil
	case loan.FieldOriginalLoanAmount:
		m.ResetOriginalLoanAmount()
		return nil
	case loan.FieldCurrentBalance:
		m.ResetCurrentBalance()
		return nil
	case loan.FieldOriginationDate:
		m.ResetOriginationDate()
		return nil
	case loan.FieldMaturityDate:
		m.ResetMaturityDate()
		return nil
	case loan.FieldComplianceScore:
		m.ResetComplianceScore()
		return nil
	case loan.FieldSourceDocuments:
		m.ResetSourceDocuments()
		return nil
	case loan.FieldExtractionDate:
		m.ResetExtractionDate()
		return nil
	case loan.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case loan.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Loan field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LoanMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.requirements != nil {
		edges = append(edges, loan.EdgeRequirements)
	}
	if m.events != nil {
		edges = append(edges, loan.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LoanMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case loan.EdgeRequirements:
		ids := make([]ent.Value, 0, len(m.requirements))
		for id := range m.requirements {
			ids = append(ids, id)
		}
		return ids
	case loan.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LoanMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedrequirements != nil {
		edges = append(edges, loan.EdgeRequirements)
	}
	if m.removedevents != nil {
		edges = append(edges, loan.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LoanMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case loan.EdgeRequirements:
		ids := make([]ent.Value, 0, len(m.removedrequirements))
		for id := range m.removedrequirements {
			ids = append(ids, id)
		}
		return ids
	case loan.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LoanMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrequirements {
		edges = append(edges, loan.EdgeRequirements)
	}
	if m.clearedevents {
		edges = append(edges, loan.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LoanMutation) EdgeCleared(name string) bool {
	switch name {
	case loan.EdgeRequirements:
		return m.clearedrequirements
	case loan.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LoanMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Loan unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LoanMutation) ResetEdge(name string) error {
	switch name {
	case loan.EdgeRequirements:
		m.ResetRequirements()
		return nil
	case loan.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown Loan edge %s", name)
}

// RequirementMutation represents an operation that mutates the Requirement nodes in the graph.
type RequirementMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	requirement_id         *string
	title                  *string
	category               *string
	description            *string
	plain_language_summary *string
	original_text          *string
	document_reference     *string
	deadline               *map[string]interface{}
	threshold              *map[string]interface{}
	severity               *string
	status                 *string
	cure_period_days       *int
	addcure_period_days    *int
	last_checked           *time.Time
	notes                  *string
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	loan                   *uuid.UUID
	clearedloan            bool
	done                   bool
	oldValue               func(context.Context) (*Requirement, error)
	predicates             []predicate.Requirement
}

var _ ent.Mutation = (*RequirementMutation)(nil)

// requirementOption allows management of the mutation configuration using functional options.
type requirementOption func(*RequirementMutation)

// newRequirementMutation creates new mutation for the Requirement entity.
func newRequirementMutation(c config, op Op, opts ...requirementOption) *RequirementMutation {
	m := &RequirementMutation{
		config:        c,
		op:            op,
		typ:           TypeRequirement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRequirementID sets the ID field of the mutation.
func withRequirementID(id uuid.UUID) requirementOption {
	return func(m *RequirementMutation) {
		var (
			err   error
			once  sync.Once
			value *Requirement
		)
		m.oldValue = func(ctx context.Context) (*Requirement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Requirement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRequirement sets the old Requirement of the mutation.
func withRequirement(node *Requirement) requirementOption {
	return func(m *RequirementMutation) {
		m.oldValue = func(context.Context) (*Requirement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RequirementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RequirementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Requirement entities.
func (m *RequirementMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RequirementMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RequirementMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Requirement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLoanID sets the "loan_id" field.
func (m *RequirementMutation) SetLoanID(u uuid.UUID) {
	m.loan = &u
}

// LoanID returns the value of the "loan_id" field in the mutation.
func (m *RequirementMutation) LoanID() (r uuid.UUID, exists bool) {
	v := m.loan
	if v == nil {
		return
	}
	return *v, true
}

// OldLoanID returns the old "loan_id" field's value of the Requirement entity.
// If the Requirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequirementMutation) OldLoanID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoanID: %w", err)
	}
	return oldValue.LoanID, nil
}

// ResetLoanID resets all changes to the "loan_id" field.
func (m *RequirementMutation) ResetLoanID() {
	m.loan = nil
}

// SetRequirementID sets the "requirement_id" field.
func (m *RequirementMutation) SetRequirementID(s string) {
	m.requirement_id = &s
}

// RequirementID returns the value of the "requirement_id" field in the mutation.
func (m *RequirementMutation) RequirementID() (r string, exists bool) {
	v := m.requirement_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequirementID returns the old "requirement_id" field's value of the Requirement entity.
// If the Requirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequirementMutation) OldRequirementID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequirementID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequirementID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequirementID: %w", err)
	}
	return oldValue.RequirementID, nil
}

// ResetRequirementID resets all changes to the "requirement_id" field.
func (m *RequirementMutation) ResetRequirementID() {
	m.requirement_id = nil
}

// SetTitle sets the "title" field.
func (m *RequirementMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *RequirementMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Requirement entity.
// If the Requirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequirementMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *RequirementMutation) ResetTitle() {
	m.title = nil
}

// SetCategory sets the "category" field.
func (m *RequirementMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *RequirementMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Requirement entity.
// If the Requirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequirementMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *RequirementMutation) ResetCategory() {
	m.category = nil
}

// SetDescription sets the "description" field.
func (m *RequirementMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *RequirementMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Requirement entity.
// If the Requirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequirementMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *RequirementMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[requirement.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *RequirementMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[requirement.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *RequirementMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, requirement.FieldDescription)
}

// SetPlainLanguageSummary sets the "plain_language_summary" field.
func (m *RequirementMutation) SetPlainLanguageSummary(s string) {
	m.plain_language_summary = &s
}

// PlainLanguageSummary returns the value of the "plain_language_summary" field in the mutation.
func (m *RequirementMutation) PlainLanguageSummary() (r string, exists bool) {
	v := m.plain_language_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldPlainLanguageSummary returns the old "plain_language_summary" field's value of the Requirement entity.
// If the Requirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequirementMutation) OldPlainLanguageSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlainLanguageSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlainLanguageSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlainLanguageSummary: %w", err)
	}
	return oldValue.PlainLanguageSummary, nil
}

// ClearPlainLanguageSummary clears the value of the "plain_language_summary" field.
func (m *RequirementMutation) ClearPlainLanguageSummary() {
	m.plain_language_summary = nil
	m.clearedFields[requirement.FieldPlainLanguageSummary] = struct{}{}
}

// PlainLanguageSummaryCleared returns if the "plain_language_summary" field was cleared in this mutation.
func (m *RequirementMutation) PlainLanguageSummaryCleared() bool {
	_, ok := m.clearedFields[requirement.FieldPlainLanguageSummary]
	return ok
}

// ResetPlainLanguageSummary resets all changes to the "plain_language_summary" field.
func (m *RequirementMutation) ResetPlainLanguageSummary() {
	m.plain_language_summary = nil
	delete(m.clearedFields, requirement.FieldPlainLanguageSummary)
}

// SetOriginalText sets the "original_text" field.
func (m *RequirementMutation) SetOriginalText(s string) {
	m.original_text = &s
}

// OriginalText returns the value of the "original_text" field in the mutation.
func (m *RequirementMutation) OriginalText() (r string, exists bool) {
	v := m.original_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalText returns the old "original_text" field's value of the Requirement entity.
// If the Requirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequirementMutation) OldOriginalText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalText: %w", err)
	}
	return oldValue.OriginalText, nil
}

// ClearOriginalText clears the value of the "original_text" field.
func (m *RequirementMutation) ClearOriginalText() {
	m.original_text = nil
	m.clearedFields[requirement.FieldOriginalText] = struct{}{}
}

// OriginalTextCleared returns if the "original_text" field was cleared in this mutation.
func (m *RequirementMutation) OriginalTextCleared() bool {
	_, ok := m.clearedFields[requirement.FieldOriginalText]
	return ok
}

// ResetOriginalText resets all changes to the "original_text" field.
func (m *RequirementMutation) ResetOriginalText() {
	m.original_text = nil
	delete(m.clearedFields, requirement.FieldOriginalText)
}

// SetDocumentReference sets the "document_reference" field.
func (m *RequirementMutation) SetDocumentReference(s string) {
	m.document_reference = &s
}

// DocumentReference returns the value of the "document_reference" field in the mutation.
func (m *RequirementMutation) DocumentReference() (r string, exists bool) {
	v := m.document_reference
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentReference returns the old "document_reference" field's value of the Requirement entity.
// If the Requirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequirementMutation) OldDocumentReference(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentReference is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentReference requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentReference: %w", err)
	}
	return oldValue.DocumentReference, nil
}

// ClearDocumentReference clears the value of the "document_reference" field.
func (m *RequirementMutation) ClearDocumentReference() {
	m.document_reference = nil
	m.clearedFields[requirement.FieldDocumentReference] = struct{}{}
}

// DocumentReferenceCleared returns if the "document_reference" field was cleared in this mutation.
func (m *RequirementMutation) DocumentReferenceCleared() bool {
	_, ok := m.clearedFields[requirement.FieldDocumentReference]
	return ok
}

// ResetDocumentReference resets all changes to the "document_reference" field.
func (m *RequirementMutation) ResetDocumentReference() {
	m.document_reference = nil
	delete(m.clearedFields, requirement.FieldDocumentReference)
}

// SetDeadline sets the "deadline" field.
func (m *RequirementMutation) SetDeadline(value map[string]interface{}) {
	m.deadline = &value
}

// Deadline returns the value of the "deadline" field in the mutation.
func (m *RequirementMutation) Deadline() (r map[string]interface{}, exists bool) {
	v := m.deadline
	if v == nil {
		return
	}
	return *v, true
}

// OldDeadline returns the old "deadline" field's value of the Requirement entity.
// If the Requirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequirementMutation) OldDeadline(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeadline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeadline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeadline: %w", err)
	}
	return oldValue.Deadline, nil
}

// ClearDeadline clears the value of the "deadline" field.
func (m *RequirementMutation) ClearDeadline() {
	m.deadline = nil
	m.clearedFields[requirement.FieldDeadline] = struct{}{}
}

// DeadlineCleared returns if the "deadline" field was cleared in this mutation.
func (m *RequirementMutation) DeadlineCleared() bool {
	_, ok := m.clearedFields[requirement.FieldDeadline]
	return ok
}

// ResetDeadline resets all changes to the "deadline" field.
func (m *RequirementMutation) ResetDeadline() {
	m.deadline = nil
	delete(m.clearedFields, requirement.FieldDeadline)
}

// SetThreshold sets the "threshold" field.
func (m *RequirementMutation) SetThreshold(value map[string]interface{}) {
	m.threshold = &value
}

// Threshold returns the value of the "threshold" field in the mutation.
func (m *RequirementMutation) Threshold() (r map[string]interface{}, exists bool) {
	v := m.threshold
	if v == nil {
		return
	}
	return *v, true
}

// OldThreshold returns the old "threshold" field's value of the Requirement entity.
// If the Requirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequirementMutation) OldThreshold(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreshold is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreshold requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreshold: %w", err)
	}
	return oldValue.Threshold, nil
}

// ClearThreshold clears the value of the "threshold" field.
func (m *RequirementMutation) ClearThreshold() {
	m.threshold = nil
	m.clearedFields[requirement.FieldThreshold] = struct{}{}
}

// ThresholdCleared returns if the "threshold" field was cleared in this mutation.
func (m *RequirementMutation) ThresholdCleared() bool {
	_, ok := m.clearedFields[requirement.FieldThreshold]
	return ok
}

// ResetThreshold resets all changes to the "threshold" field.
func (m *RequirementMutation) ResetThreshold() {
	m.threshold = nil
	delete(m.clearedFields, requirement.FieldThreshold)
}

// SetSeverity sets the "severity" field.
func (m *RequirementMutation) SetSeverity(s string) {
	m.severity = &s
}

// Severity returns the value of the "severity" field in the mutation.
func (m *RequirementMutation) Severity() (r string, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the Requirement entity.
// If the Requirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequirementMutation) OldSeverity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *RequirementMutation) ResetSeverity() {
	m.severity = nil
}

// SetStatus sets the "status" field.
func (m *RequirementMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *RequirementMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Requirement entity.
// If the Requirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequirementMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RequirementMutation) ResetStatus() {
	m.status = nil
}

// SetCurePeriodDays sets the "cure_period_days" field.
func (m *RequirementMutation) SetCurePeriodDays(i int) {
	m.cure_period_days = &i
	m.addcure_period_days = nil
}

// CurePeriodDays returns the value of the "cure_period_days" field in the mutation.
func (m *RequirementMutation) CurePeriodDays() (r int, exists bool) {
	v := m.cure_period_days
	if v == nil {
		return
	}
	return *v, true
}

// OldCurePeriodDays returns the old "cure_period_days" field's value of the Requirement entity.
// If the Requirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequirementMutation) OldCurePeriodDays(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurePeriodDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurePeriodDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurePeriodDays: %w", err)
	}
	return oldValue.CurePeriodDays, nil
}

// AddCurePeriodDays adds i to the "cure_period_days" field.
func (m *RequirementMutation) AddCurePeriodDays(i int) {
	if m.addcure_period_days != nil {
		*m.addcure_period_days += i
	} else {
		m.addcure_period_days = &i
	}
}

// AddedCurePeriodDays returns the value that was added to the "cure_period_days" field in this mutation.
func (m *RequirementMutation) AddedCurePeriodDays() (r int, exists bool) {
	v := m.addcure_period_days
	if v == nil {
		return
	}
	return *v, true
}

// ClearCurePeriodDays clears the value of the "cure_period_days" field.
func (m *RequirementMutation) ClearCurePeriodDays() {
	m.cure_period_days = nil
	m.addcure_period_days = nil
	m.clearedFields[requirement.FieldCurePeriodDays] = struct{}{}
}

// CurePeriodDaysCleared returns if the "cure_period_days" field was cleared in this mutation.
func (m *RequirementMutation) CurePeriodDaysCleared() bool {
	_, ok := m.clearedFields[requirement.FieldCurePeriodDays]
	return ok
}

// ResetCurePeriodDays resets all changes to the "cure_period_days" field.
func (m *RequirementMutation) ResetCurePeriodDays() {
	m.cure_period_days = nil
	m.addcure_period_days = nil
	delete(m.clearedFields, requirement.FieldCurePeriodDays)
}

// SetLastChecked sets the "last_checked" field.
func (m *RequirementMutation) SetLastChecked(t time.Time) {
	m.last_checked = &t
}

// LastChecked returns the value of the "last_checked" field in the mutation.
func (m *RequirementMutation) LastChecked() (r time.Time, exists bool) {
	v := m.last_checked
	if v == nil {
		return
	}
	return *v, true
}

// OldLastChecked returns the old "last_checked" field's value of the Requirement entity.
// If the Requirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequirementMutation) OldLastChecked(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastChecked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastChecked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastChecked: %w", err)
	}
	return oldValue.LastChecked, nil
}

// ClearLastChecked clears the value of the "last_checked" field.
func (m *RequirementMutation) ClearLastChecked() {
	m.last_checked = nil
	m.clearedFields[requirement.FieldLastChecked] = struct{}{}
}

// LastCheckedCleared returns if the "last_checked" field was cleared in this mutation.
func (m *RequirementMutation) LastCheckedCleared() bool {
	_, ok := m.clearedFields[requirement.FieldLastChecked]
	return ok
}

// ResetLastChecked resets all changes to the "last_checked" field.
func (m *RequirementMutation) ResetLastChecked() {
	m.last_checked = nil
	delete(m.clearedFields, requirement.FieldLastChecked)
}

// SetNotes sets the "notes" field.
func (m *RequirementMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *RequirementMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Requirement entity.
// If the Requirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequirementMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *RequirementMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[requirement.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *RequirementMutation) NotesCleared() bool {
	_, ok := m.clearedFields[requirement.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *RequirementMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, requirement.FieldNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *RequirementMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RequirementMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Requirement entity.
// If the Requirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequirementMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RequirementMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RequirementMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RequirementMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Requirement entity.
// If the Requirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequirementMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RequirementMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearLoan clears the "loan" edge to the Loan entity.
func (m *RequirementMutation) ClearLoan() {
	m.clearedloan = true
	m.clearedFields[requirement.FieldLoanID] = struct{}{}
}

// LoanCleared reports if the "loan" edge to the Loan entity was cleared.
func (m *RequirementMutation) LoanCleared() bool {
	return m.clearedloan
}

// LoanIDs returns the "loan" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LoanID instead. It exists only for internal usage by the builders.
func (m *RequirementMutation) LoanIDs() (ids []uuid.UUID) {
	if id := m.loan; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLoan resets all changes to the "loan" edge.
func (m *RequirementMutation) ResetLoan() {
	m.loan = nil
	m.clearedloan = false
}

// Where appends a list predicates to the RequirementMutation builder.
func (m *RequirementMutation) Where(ps ...predicate.Requirement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RequirementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RequirementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Requirement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RequirementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RequirementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Requirement).
func (m *RequirementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RequirementMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.loan != nil {
		fields = append(fields, requirement.FieldLoanID)
	}
	if m.requirement_id != nil {
		fields = append(fields, requirement.FieldRequirementID)
	}
	if m.title != nil {
		fields = append(fields, requirement.FieldTitle)
	}
	if m.category != nil {
		fields = append(fields, requirement.FieldCategory)
	}
	if m.description != nil {
		fields = append(fields, requirement.FieldDescription)
	}
	if m.plain_language_summary != nil {
		fields = append(fields, requirement.FieldPlainLanguageSummary)
	}
	if m.original_text != nil {
		fields = append(fields, requirement.FieldOriginalText)
	}
	if m.document_reference != nil {
		fields = append(fields, requirement.FieldDocumentReference)
	}
	if m.deadline != nil {
		fields = append(fields, requirement.FieldDeadline)
	}
	if m.threshold != nil {
		fields = append(fields, requirement.FieldThreshold)
	}
	if m.severity != nil {
		fields = append(fields, requirement.FieldSeverity)
	}
	if m.status != nil {
		fields = append(fields, requirement.FieldStatus)
	}
	if m.cure_period_days != nil {
		fields = append(fields, requirement.FieldCurePeriodDays)
	}
	if m.last_checked != nil {
		fields = append(fields, requirement.FieldLastChecked)
	}
	if m.notes != nil {
		fields = append(fields, requirement.FieldNotes)
	}
	if m.created_at != nil {
		fields = append(fields, requirement.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, requirement.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RequirementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case requirement.FieldLoanID:
		return m.LoanID()
	case requirement.FieldRequirementID:
		return m.RequirementID()
	case requirement.FieldTitle:
		return m.Title()
	case requirement.FieldCategory:
		return m.Category()
	case requirement.FieldDescription:
		return m.Description()
	case requirement.FieldPlainLanguageSummary:
		return m.PlainLanguageSummary()
	case requirement.FieldOriginalText:
		return m.OriginalText()
	case requirement.FieldDocumentReference:
		return m.DocumentReference()
	case requirement.FieldDeadline:
		return m.Deadline()
	case requirement.FieldThreshold:
		return m.Threshold()
	case requirement.FieldSeverity:
		return m.Severity()
	case requirement.FieldStatus:
		return m.Status()
	case requirement.FieldCurePeriodDays:
		return m.CurePeriodDays()
	case requirement.FieldLastChecked:
		return m.LastChecked()
	case requirement.FieldNotes:
		return m.Notes()
	case requirement.FieldCreatedAt:
		return m.CreatedAt()
	case requirement.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RequirementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case requirement.FieldLoanID:
		return m.OldLoanID(ctx)
	case requirement.FieldRequirementID:
		return m.OldRequirementID(ctx)
	case requirement.FieldTitle:
		return m.OldTitle(ctx)
	case requirement.FieldCategory:
		return m.OldCategory(ctx)
	case requirement.FieldDescription:
		return m.OldDescription(ctx)
	case requirement.FieldPlainLanguageSummary:
		return m.OldPlainLanguageSummary(ctx)
	case requirement.FieldOriginalText:
		return m.OldOriginalText(ctx)
	case requirement.FieldDocumentReference:
		return m.OldDocumentReference(ctx)
	case requirement.FieldDeadline:
		return m.OldDeadline(ctx)
	case requirement.FieldThreshold:
		return m.OldThreshold(ctx)
	case requirement.FieldSeverity:
		return m.OldSeverity(ctx)
	case requirement.FieldStatus:
		return m.OldStatus(ctx)
	case requirement.FieldCurePeriodDays:
		return m.OldCurePeriodDays(ctx)
	case requirement.FieldLastChecked:
		return m.OldLastChecked(ctx)
	case requirement.FieldNotes:
		return m.OldNotes(ctx)
	case requirement.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case requirement.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Requirement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequirementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case requirement.FieldLoanID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoanID(v)
		return nil
	case requirement.FieldRequirementID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequirementID(v)
		return nil
	case requirement.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case requirement.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case requirement.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case requirement.FieldPlainLanguageSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlainLanguageSummary(v)
		return nil
	case requirement.FieldOriginalText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalText(v)
		return nil
	case requirement.FieldDocumentReference:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentReference(v)
		return nil
	case requirement.FieldDeadline:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeadline(v)
		return nil
	case requirement.FieldThreshold:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreshold(v)
		return nil
	case requirement.FieldSeverity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case requirement.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case requirement.FieldCurePeriodDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurePeriodDays(v)
		return nil
	case requirement.FieldLastChecked:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastChecked(v)
		return nil
	case requirement.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case requirement.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case requirement.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Requirement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RequirementMutation) AddedFields() []string {
	var fields []string
	if m.addcure_period_days != nil {
		fields = append(fields, requirement.FieldCurePeriodDays)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RequirementMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case requirement.FieldCurePeriodDays:
		return m.AddedCurePeriodDays()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequirementMutation) AddField(name string, value ent.Value) error {
	switch name {
	case requirement.FieldCurePeriodDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurePeriodDays(v)
		return nil
	}
	return fmt.Errorf("unknown Requirement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RequirementMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(requirement.FieldDescription) {
		fields = append(fields, requirement.FieldDescription)
	}
	if m.FieldCleared(requirement.FieldPlainLanguageSummary) {
		fields = append(fields, requirement.FieldPlainLanguageSummary)
	}
	if m.FieldCleared(requirement.FieldOriginalText) {
		fields = append(fields, requirement.FieldOriginalText)
	}
	if m.FieldCleared(requirement.FieldDocumentReference) {
		fields = append(fields, requirement.FieldDocumentReference)
	}
	if m.FieldCleared(requirement.FieldDeadline) {
		fields = append(fields, requirement.FieldDeadline)
	}
	if m.FieldCleared(requirement.FieldThreshold) {
		fields = append(fields, requirement.FieldThreshold)
	}
	if m.FieldCleared(requirement.FieldCurePeriodDays) {
		fields = append(fields, requirement.FieldCurePeriodDays)
	}
	if m.FieldCleared(requirement.FieldLastChecked) {
		fields = append(fields, requirement.FieldLastChecked)
	}
	if m.FieldCleared(requirement.FieldNotes) {
		fields = append(fields, requirement.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RequirementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RequirementMutation) ClearField(name string) error {
	switch name {
	case requirement.FieldDescription:
		m.ClearDescription()
		return nil
	case requirement.FieldPlainLanguageSummary:
		m.ClearPlainLanguageSummary()
		return nil
	case requirement.FieldOriginalText:
		m.ClearOriginalText()
		return nil
	case requirement.FieldDocumentReference:
		m.ClearDocumentReference()
		return nil
	case requirement.FieldDeadline:
		m.ClearDeadline()
		return nil
	case requirement.FieldThreshold:
		m.ClearThreshold()
		return nil
	case requirement.FieldCurePeriodDays:
		m.ClearCurePeriodDays()
		return nil
	case requirement.FieldLastChecked:
		m.ClearLastChecked()
		return nil
	case requirement.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown Requirement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RequirementMutation) ResetField(name string) error {
	switch name {
	case requirement.FieldLoanID:
		m.ResetLoanID()
		return nil
	case requirement.FieldRequirementID:
		m.ResetRequirementID()
		return nil
	case requirement.FieldTitle:
		m.ResetTitle()
		return nil
	case requirement.FieldCategory:
		m.ResetCategory()
		return nil
	case requirement.FieldDescription:
		m.ResetDescription()
		return nil
	case requirement.FieldPlainLanguageSummary:
		m.ResetPlainLanguageSummary()
		return nil
	case requirement.FieldOriginalText:
		m.ResetOriginalText()
		return nil
	case requirement.FieldDocumentReference:
		m.ResetDocumentReference()
		return nil
	case requirement.FieldDeadline:
		m.ResetDeadline()
		return nil
	case requirement.FieldThreshold:
		m.ResetThreshold()
		return nil
	case requirement.FieldSeverity:
		m.ResetSeverity()
		return nil
	case requirement.FieldStatus:
		m.ResetStatus()
		return nil
	case requirement.FieldCurePeriodDays:
		m.ResetCurePeriodDays()
		return nil
	case requirement.FieldLastChecked:
		m.ResetLastChecked()
		return nil
	case requirement.FieldNotes:
		m.ResetNotes()
		return nil
	case requirement.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case requirement.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Requirement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RequirementMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.loan != nil {
		edges = append(edges, requirement.EdgeLoan)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RequirementMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case requirement.EdgeLoan:
		if id := m.loan; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RequirementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RequirementMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RequirementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedloan {
		edges = append(edges, requirement.EdgeLoan)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RequirementMutation) EdgeCleared(name string) bool {
	switch name {
	case requirement.EdgeLoan:
		return m.clearedloan
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RequirementMutation) ClearEdge(name string) error {
	switch name {
	case requirement.EdgeLoan:
		m.ClearLoan()
		return nil
	}
	return fmt.Errorf("unknown Requirement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RequirementMutation) ResetEdge(name string) error {
	switch name {
	case requirement.EdgeLoan:
		m.ResetLoan()
		return nil
	}
	return fmt.Errorf("unknown Requirement edge %s", name)
}
