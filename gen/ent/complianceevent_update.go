// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/loanguard/loanguard/gen/ent/complianceevent"
	"github.com/loanguard/loanguard/gen/ent/loan"
	"github.com/loanguard/loanguard/gen/ent/predicate"
)

// ComplianceEventUpdate is the builder for updating ComplianceEvent entities.
type ComplianceEventUpdate struct {
	config
	hooks    []Hook
	mutation *ComplianceEventMutation
}

// Where appends a list predicates to the ComplianceEventUpdate builder.
func (_u *ComplianceEventUpdate) Where(ps ...predicate.ComplianceEvent) *ComplianceEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLoanID sets the "loan_id" field.
func (_u *ComplianceEventUpdate) SetLoanID(v uuid.UUID) *ComplianceEventUpdate {
	_u.mutation.SetLoanID(v)
	return _u
}

// SetNillableLoanID sets the "loan_id" field if the given value is not nil.
func (_u *ComplianceEventUpdate) SetNillableLoanID(v *uuid.UUID) *ComplianceEventUpdate {
	if v != nil {
		_u.SetLoanID(*v)
	}
	return _u
}

// SetRequirementID sets the "requirement_id" field.
func (_u *ComplianceEventUpdate) SetRequirementID(v string) *ComplianceEventUpdate {
	_u.mutation.SetRequirementID(v)
	return _u
}

// SetNillableRequirementID sets the "requirement_id" field if the given value is not nil.
func (_u *ComplianceEventUpdate) SetNillableRequirementID(v *string) *ComplianceEventUpdate {
	if v != nil {
		_u.SetRequirementID(*v)
	}
	return _u
}

// ClearRequirementID clears the value of the "requirement_id" field.
func (_u *ComplianceEventUpdate) ClearRequirementID() *ComplianceEventUpdate {
	_u.mutation.ClearRequirementID()
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *ComplianceEventUpdate) SetEventType(v string) *ComplianceEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *ComplianceEventUpdate) SetNillableEventType(v *string) *ComplianceEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetEventDate sets the "event_date" field.
func (_u *ComplianceEventUpdate) SetEventDate(v time.Time) *ComplianceEventUpdate {
	_u.mutation.SetEventDate(v)
	return _u
}

// SetNillableEventDate sets the "event_date" field if the given value is not nil.
func (_u *ComplianceEventUpdate) SetNillableEventDate(v *time.Time) *ComplianceEventUpdate {
	if v != nil {
		_u.SetEventDate(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ComplianceEventUpdate) SetDescription(v string) *ComplianceEventUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ComplianceEventUpdate) SetNillableDescription(v *string) *ComplianceEventUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ComplianceEventUpdate) ClearDescription() *ComplianceEventUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetOldStatus sets the "old_status" field.
func (_u *ComplianceEventUpdate) SetOldStatus(v string) *ComplianceEventUpdate {
	_u.mutation.SetOldStatus(v)
	return _u
}

// SetNillableOldStatus sets the "old_status" field if the given value is not nil.
func (_u *ComplianceEventUpdate) SetNillableOldStatus(v *string) *ComplianceEventUpdate {
	if v != nil {
		_u.SetOldStatus(*v)
	}
	return _u
}

// ClearOldStatus clears the value of the "old_status" field.
func (_u *ComplianceEventUpdate) ClearOldStatus() *ComplianceEventUpdate {
	_u.mutation.ClearOldStatus()
	return _u
}

// SetNewStatus sets the "new_status" field.
func (_u *ComplianceEventUpdate) SetNewStatus(v string) *ComplianceEventUpdate {
	_u.mutation.SetNewStatus(v)
	return _u
}

// SetNillableNewStatus sets the "new_status" field if the given value is not nil.
func (_u *ComplianceEventUpdate) SetNillableNewStatus(v *string) *ComplianceEventUpdate {
	if v != nil {
		_u.SetNewStatus(*v)
	}
	return _u
}

// ClearNewStatus clears the value of the "new_status" field.
func (_u *ComplianceEventUpdate) ClearNewStatus() *ComplianceEventUpdate {
	_u.mutation.ClearNewStatus()
	return _u
}

// SetSubmittedBy sets the "submitted_by" field.
func (_u *ComplianceEventUpdate) SetSubmittedBy(v string) *ComplianceEventUpdate {
	_u.mutation.SetSubmittedBy(v)
	return _u
}

// SetNillableSubmittedBy sets the "submitted_by" field if the given value is not nil.
func (_u *ComplianceEventUpdate) SetNillableSubmittedBy(v *string) *ComplianceEventUpdate {
	if v != nil {
		_u.SetSubmittedBy(*v)
	}
	return _u
}

// ClearSubmittedBy clears the value of the "submitted_by" field.
func (_u *ComplianceEventUpdate) ClearSubmittedBy() *ComplianceEventUpdate {
	_u.mutation.ClearSubmittedBy()
	return _u
}

// SetDocuments sets the "documents" field.
func (_u *ComplianceEventUpdate) SetDocuments(v []string) *ComplianceEventUpdate {
	_u.mutation.SetDocuments(v)
	return _u
}

// AppendDocuments appends value to the "documents" field.
func (_u *ComplianceEventUpdate) AppendDocuments(v []string) *ComplianceEventUpdate {
	_u.mutation.AppendDocuments(v)
	return _u
}

// ClearDocuments clears the value of the "documents" field.
func (_u *ComplianceEventUpdate) ClearDocuments() *ComplianceEventUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ComplianceEventUpdate) SetCreatedAt(v time.Time) *ComplianceEventUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ComplianceEventUpdate) SetNillableCreatedAt(v *time.Time) *ComplianceEventUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetLoan sets the "loan" edge to the Loan entity.
func (_u *ComplianceEventUpdate) SetLoan(v *Loan) *ComplianceEventUpdate {
	return _u.SetLoanID(v.ID)
}

// Mutation returns the ComplianceEventMutation object of the builder.
func (_u *ComplianceEventUpdate) Mutation() *ComplianceEventMutation {
	return _u.mutation
}

// ClearLoan clears the "loan" edge to the Loan entity.
func (_u *ComplianceEventUpdate) ClearLoan() *ComplianceEventUpdate {
	_u.mutation.ClearLoan()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ComplianceEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ComplianceEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ComplianceEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ComplianceEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ComplianceEventUpdate) check() error {
	if v, ok := _u.mutation.RequirementID(); ok {
		if err := complianceevent.RequirementIDValidator(v); err != nil {
			return &ValidationError{Name: "requirement_id", err: fmt.Errorf(`ent: validator failed for field "ComplianceEvent.requirement_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EventType(); ok {
		if err := complianceevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "ComplianceEvent.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OldStatus(); ok {
		if err := complianceevent.OldStatusValidator(v); err != nil {
			return &ValidationError{Name: "old_status", err: fmt.Errorf(`ent: validator failed for field "ComplianceEvent.old_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NewStatus(); ok {
		if err := complianceevent.NewStatusValidator(v); err != nil {
			return &ValidationError{Name: "new_status", err: fmt.Errorf(`ent: validator failed for field "ComplianceEvent.new_status": %w`, err)}
		}
	}
	if _u.mutation.LoanCleared() && len(_u.mutation.LoanIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ComplianceEvent.loan"`)
	}
	return nil
}

func (_u *ComplianceEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(complianceevent.Table, complianceevent.Columns, sqlgraph.NewFieldSpec(complianceevent.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RequirementID(); ok {
		_spec.SetField(complianceevent.FieldRequirementID, field.TypeString, value)
	}
	if _u.mutation.RequirementIDCleared() {
		_spec.ClearField(complianceevent.FieldRequirementID, field.TypeString)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(complianceevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventDate(); ok {
		_spec.SetField(complianceevent.FieldEventDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(complianceevent.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(complianceevent.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.OldStatus(); ok {
		_spec.SetField(complianceevent.FieldOldStatus, field.TypeString, value)
	}
	if _u.mutation.OldStatusCleared() {
		_spec.ClearField(complianceevent.FieldOldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.NewStatus(); ok {
		_spec.SetField(complianceevent.FieldNewStatus, field.TypeString, value)
	}
	if _u.mutation.NewStatusCleared() {
		_spec.ClearField(complianceevent.FieldNewStatus, field.TypeString)
	}
	if value, ok := _u.mutation.SubmittedBy(); ok {
		_spec.SetField(complianceevent.FieldSubmittedBy, field.TypeString, value)
	}
	if _u.mutation.SubmittedByCleared() {
		_spec.ClearField(complianceevent.FieldSubmittedBy, field.TypeString)
	}
	if value, ok := _u.mutation.Documents(); ok {
		_spec.SetField(complianceevent.FieldDocuments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDocuments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, complianceevent.FieldDocuments, value)
		})
	}
	if _u.mutation.DocumentsCleared() {
		_spec.ClearField(complianceevent.FieldDocuments, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(complianceevent.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.LoanCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   complianceevent.LoanTable,
			Columns: []string{complianceevent.LoanColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(loan.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LoanIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   complianceevent.LoanTable,
			Columns: []string{complianceevent.LoanColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(loan.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{complianceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ComplianceEventUpdateOne is the builder for updating a single ComplianceEvent entity.
type ComplianceEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ComplianceEventMutation
}

// SetLoanID sets the "loan_id" field.
func (_u *ComplianceEventUpdateOne) SetLoanID(v uuid.UUID) *ComplianceEventUpdateOne {
	_u.mutation.SetLoanID(v)
	return _u
}

// SetNillableLoanID sets the "loan_id" field if the given value is not nil.
func (_u *ComplianceEventUpdateOne) SetNillableLoanID(v *uuid.UUID) *ComplianceEventUpdateOne {
	if v != nil {
		_u.SetLoanID(*v)
	}
	return _u
}

// SetRequirementID sets the "requirement_id" field.
func (_u *ComplianceEventUpdateOne) SetRequirementID(v string) *ComplianceEventUpdateOne {
	_u.mutation.SetRequirementID(v)
	return _u
}

// SetNillableRequirementID sets the "requirement_id" field if the given value is not nil.
func (_u *ComplianceEventUpdateOne) SetNillableRequirementID(v *string) *ComplianceEventUpdateOne {
	if v != nil {
		_u.SetRequirementID(*v)
	}
	return _u
}

// ClearRequirementID clears the value of the "requirement_id" field.
func (_u *ComplianceEventUpdateOne) ClearRequirementID() *ComplianceEventUpdateOne {
	_u.mutation.ClearRequirementID()
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *ComplianceEventUpdateOne) SetEventType(v string) *ComplianceEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *ComplianceEventUpdateOne) SetNillableEventType(v *string) *ComplianceEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetEventDate sets the "event_date" field.
func (_u *ComplianceEventUpdateOne) SetEventDate(v time.Time) *ComplianceEventUpdateOne {
	_u.mutation.SetEventDate(v)
	return _u
}

// SetNillableEventDate sets the "event_date" field if the given value is not nil.
func (_u *ComplianceEventUpdateOne) SetNillableEventDate(v *time.Time) *ComplianceEventUpdateOne {
	if v != nil {
		_u.SetEventDate(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ComplianceEventUpdateOne) SetDescription(v string) *ComplianceEventUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ComplianceEventUpdateOne) SetNillableDescription(v *string) *ComplianceEventUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ComplianceEventUpdateOne) ClearDescription() *ComplianceEventUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetOldStatus sets the "old_status" field.
func (_u *ComplianceEventUpdateOne) SetOldStatus(v string) *ComplianceEventUpdateOne {
	_u.mutation.SetOldStatus(v)
	return _u
}

// SetNillableOldStatus sets the "old_status" field if the given value is not nil.
func (_u *ComplianceEventUpdateOne) SetNillableOldStatus(v *string) *ComplianceEventUpdateOne {
	if v != nil {
		_u.SetOldStatus(*v)
	}
	return _u
}

// ClearOldStatus clears the value of the "old_status" field.
func (_u *ComplianceEventUpdateOne) ClearOldStatus() *ComplianceEventUpdateOne {
	_u.mutation.ClearOldStatus()
	return _u
}

// SetNewStatus sets the "new_status" field.
func (_u *ComplianceEventUpdateOne) SetNewStatus(v string) *ComplianceEventUpdateOne {
	_u.mutation.SetNewStatus(v)
	return _u
}

// SetNillableNewStatus sets the "new_status" field if the given value is not nil.
func (_u *ComplianceEventUpdateOne) SetNillableNewStatus(v *string) *ComplianceEventUpdateOne {
	if v != nil {
		_u.SetNewStatus(*v)
	}
	return _u
}

// ClearNewStatus clears the value of the "new_status" field.
func (_u *ComplianceEventUpdateOne) ClearNewStatus() *ComplianceEventUpdateOne {
	_u.mutation.ClearNewStatus()
	return _u
}

// SetSubmittedBy sets the "submitted_by" field.
func (_u *ComplianceEventUpdateOne) SetSubmittedBy(v string) *ComplianceEventUpdateOne {
	_u.mutation.SetSubmittedBy(v)
	return _u
}

// SetNillableSubmittedBy sets the "submitted_by" field if the given value is not nil.
func (_u *ComplianceEventUpdateOne) SetNillableSubmittedBy(v *string) *ComplianceEventUpdateOne {
	if v != nil {
		_u.SetSubmittedBy(*v)
	}
	return _u
}

// ClearSubmittedBy clears the value of the "submitted_by" field.
func (_u *ComplianceEventUpdateOne) ClearSubmittedBy() *ComplianceEventUpdateOne {
	_u.mutation.ClearSubmittedBy()
	return _u
}

// SetDocuments sets the "documents" field.
func (_u *ComplianceEventUpdateOne) SetDocuments(v []string) *ComplianceEventUpdateOne {
	_u.mutation.SetDocuments(v)
	return _u
}

// AppendDocuments appends value to the "documents" field.
func (_u *ComplianceEventUpdateOne) AppendDocuments(v []string) *ComplianceEventUpdateOne {
	_u.mutation.AppendDocuments(v)
	return _u
}

// ClearDocuments clears the value of the "documents" field.
func (_u *ComplianceEventUpdateOne) ClearDocuments() *ComplianceEventUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ComplianceEventUpdateOne) SetCreatedAt(v time.Time) *ComplianceEventUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ComplianceEventUpdateOne) SetNillableCreatedAt(v *time.Time) *ComplianceEventUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetLoan sets the "loan" edge to the Loan entity.
func (_u *ComplianceEventUpdateOne) SetLoan(v *Loan) *ComplianceEventUpdateOne {
	return _u.SetLoanID(v.ID)
}

// Mutation returns the ComplianceEventMutation object of the builder.
func (_u *ComplianceEventUpdateOne) Mutation() *ComplianceEventMutation {
	return _u.mutation
}

// ClearLoan clears the "loan" edge to the Loan entity.
func (_u *ComplianceEventUpdateOne) ClearLoan() *ComplianceEventUpdateOne {
	_u.mutation.ClearLoan()
	return _u
}

// Where appends a list predicates to the ComplianceEventUpdate builder.
func (_u *ComplianceEventUpdateOne) Where(ps ...predicate.ComplianceEvent) *ComplianceEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ComplianceEventUpdateOne) Select(field string, fields ...string) *ComplianceEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ComplianceEvent entity.
func (_u *ComplianceEventUpdateOne) Save(ctx context.Context) (*ComplianceEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ComplianceEventUpdateOne) SaveX(ctx context.Context) *ComplianceEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ComplianceEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ComplianceEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ComplianceEventUpdateOne) check() error {
	if v, ok := _u.mutation.RequirementID(); ok {
		if err := complianceevent.RequirementIDValidator(v); err != nil {
			return &ValidationError{Name: "requirement_id", err: fmt.Errorf(`ent: validator failed for field "ComplianceEvent.requirement_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EventType(); ok {
		if err := complianceevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "ComplianceEvent.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OldStatus(); ok {
		if err := complianceevent.OldStatusValidator(v); err != nil {
			return &ValidationError{Name: "old_status", err: fmt.Errorf(`ent: validator failed for field "ComplianceEvent.old_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NewStatus(); ok {
		if err := complianceevent.NewStatusValidator(v); err != nil {
			return &ValidationError{Name: "new_status", err: fmt.Errorf(`ent: validator failed for field "ComplianceEvent.new_status": %w`, err)}
		}
	}
	if _u.mutation.LoanCleared() && len(_u.mutation.LoanIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ComplianceEvent.loan"`)
	}
	return nil
}

func (_u *ComplianceEventUpdateOne) sqlSave(ctx context.Context) (_node *ComplianceEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(complianceevent.Table, complianceevent.Columns, sqlgraph.NewFieldSpec(complianceevent.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ComplianceEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, complianceevent.FieldID)
		for _, f := range fields {
			if !complianceevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != complianceevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RequirementID(); ok {
		_spec.SetField(complianceevent.FieldRequirementID, field.TypeString, value)
	}
	if _u.mutation.RequirementIDCleared() {
		_spec.ClearField(complianceevent.FieldRequirementID, field.TypeString)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(complianceevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventDate(); ok {
		_spec.SetField(complianceevent.FieldEventDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(complianceevent.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(complianceevent.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.OldStatus(); ok {
		_spec.SetField(complianceevent.FieldOldStatus, field.TypeString, value)
	}
	if _u.mutation.OldStatusCleared() {
		_spec.ClearField(complianceevent.FieldOldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.NewStatus(); ok {
		_spec.SetField(complianceevent.FieldNewStatus, field.TypeString, value)
	}
	if _u.mutation.NewStatusCleared() {
		_spec.ClearField(complianceevent.FieldNewStatus, field.TypeString)
	}
	if value, ok := _u.mutation.SubmittedBy(); ok {
		_spec.SetField(complianceevent.FieldSubmittedBy, field.TypeString, value)
	}
	if _u.mutation.SubmittedByCleared() {
		_spec.ClearField(complianceevent.FieldSubmittedBy, field.TypeString)
	}
	if value, ok := _u.mutation.Documents(); ok {
		_spec.SetField(complianceevent.FieldDocuments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDocuments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, complianceevent.FieldDocuments, value)
		})
	}
	if _u.mutation.DocumentsCleared() {
		_spec.ClearField(complianceevent.FieldDocuments, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(complianceevent.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.LoanCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   complianceevent.LoanTable,
			Columns: []string{complianceevent.LoanColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(loan.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LoanIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   complianceevent.LoanTable,
			Columns: []string{complianceevent.LoanColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(loan.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ComplianceEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{complianceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
