// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/loanguard/loanguard/gen/ent/loan"
	"github.com/loanguard/loanguard/gen/ent/predicate"
	"github.com/loanguard/loanguard/gen/ent/requirement"
)

// RequirementUpdate is the builder for updating Requirement entities.
type RequirementUpdate struct {
	config
	hooks    []Hook
	mutation *RequirementMutation
}

// Where appends a list predicates to the RequirementUpdate builder.
func (_u *RequirementUpdate) Where(ps ...predicate.Requirement) *RequirementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLoanID sets the "loan_id" field.
func (_u *RequirementUpdate) SetLoanID(v uuid.UUID) *RequirementUpdate {
	_u.mutation.SetLoanID(v)
	return _u
}

// SetNillableLoanID sets the "loan_id" field if the given value is not nil.
func (_u *RequirementUpdate) SetNillableLoanID(v *uuid.UUID) *RequirementUpdate {
	if v != nil {
		_u.SetLoanID(*v)
	}
	return _u
}

// SetRequirementID sets the "requirement_id" field.
func (_u *RequirementUpdate) SetRequirementID(v string) *RequirementUpdate {
	_u.mutation.SetRequirementID(v)
	return _u
}

// SetNillableRequirementID sets the "requirement_id" field if the given value is not nil.
func (_u *RequirementUpdate) SetNillableRequirementID(v *string) *RequirementUpdate {
	if v != nil {
		_u.SetRequirementID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *RequirementUpdate) SetTitle(v string) *RequirementUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RequirementUpdate) SetNillableTitle(v *string) *RequirementUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *RequirementUpdate) SetCategory(v string) *RequirementUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *RequirementUpdate) SetNillableCategory(v *string) *RequirementUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RequirementUpdate) SetDescription(v string) *RequirementUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RequirementUpdate) SetNillableDescription(v *string) *RequirementUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *RequirementUpdate) ClearDescription() *RequirementUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetPlainLanguageSummary sets the "plain_language_summary" field.
func (_u *RequirementUpdate) SetPlainLanguageSummary(v string) *RequirementUpdate {
	_u.mutation.SetPlainLanguageSummary(v)
	return _u
}

// SetNillablePlainLanguageSummary sets the "plain_language_summary" field if the given value is not nil.
func (_u *RequirementUpdate) SetNillablePlainLanguageSummary(v *string) *RequirementUpdate {
	if v != nil {
		_u.SetPlainLanguageSummary(*v)
	}
	return _u
}

// ClearPlainLanguageSummary clears the value of the "plain_language_summary" field.
func (_u *RequirementUpdate) ClearPlainLanguageSummary() *RequirementUpdate {
	_u.mutation.ClearPlainLanguageSummary()
	return _u
}

// SetOriginalText sets the "original_text" field.
func (_u *RequirementUpdate) SetOriginalText(v string) *RequirementUpdate {
	_u.mutation.SetOriginalText(v)
	return _u
}

// SetNillableOriginalText sets the "original_text" field if the given value is not nil.
func (_u *RequirementUpdate) SetNillableOriginalText(v *string) *RequirementUpdate {
	if v != nil {
		_u.SetOriginalText(*v)
	}
	return _u
}

// ClearOriginalText clears the value of the "original_text" field.
func (_u *RequirementUpdate) ClearOriginalText() *RequirementUpdate {
	_u.mutation.ClearOriginalText()
	return _u
}

// SetDocumentReference sets the "document_reference" field.
func (_u *RequirementUpdate) SetDocumentReference(v string) *RequirementUpdate {
	_u.mutation.SetDocumentReference(v)
	return _u
}

// SetNillableDocumentReference sets the "document_reference" field if the given value is not nil.
func (_u *RequirementUpdate) SetNillableDocumentReference(v *string) *RequirementUpdate {
	if v != nil {
		_u.SetDocumentReference(*v)
	}
	return _u
}

// ClearDocumentReference clears the value of the "document_reference" field.
func (_u *RequirementUpdate) ClearDocumentReference() *RequirementUpdate {
	_u.mutation.ClearDocumentReference()
	return _u
}

// SetDeadline sets the "deadline" field.
func (_u *RequirementUpdate) SetDeadline(v map[string]interface{}) *RequirementUpdate {
	_u.mutation.SetDeadline(v)
	return _u
}

// ClearDeadline clears the value of the "deadline" field.
func (_u *RequirementUpdate) ClearDeadline() *RequirementUpdate {
	_u.mutation.ClearDeadline()
	return _u
}

// SetThreshold sets the "threshold" field.
func (_u *RequirementUpdate) SetThreshold(v map[string]interface{}) *RequirementUpdate {
	_u.mutation.SetThreshold(v)
	return _u
}

// ClearThreshold clears the value of the "threshold" field.
func (_u *RequirementUpdate) ClearThreshold() *RequirementUpdate {
	_u.mutation.ClearThreshold()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *RequirementUpdate) SetSeverity(v string) *RequirementUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *RequirementUpdate) SetNillableSeverity(v *string) *RequirementUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RequirementUpdate) SetStatus(v string) *RequirementUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RequirementUpdate) SetNillableStatus(v *string) *RequirementUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurePeriodDays sets the "cure_period_days" field.
func (_u *RequirementUpdate) SetCurePeriodDays(v int) *RequirementUpdate {
	_u.mutation.ResetCurePeriodDays()
	_u.mutation.SetCurePeriodDays(v)
	return _u
}

// SetNillableCurePeriodDays sets the "cure_period_days" field if the given value is not nil.
func (_u *RequirementUpdate) SetNillableCurePeriodDays(v *int) *RequirementUpdate {
	if v != nil {
		_u.SetCurePeriodDays(*v)
	}
	return _u
}

// AddCurePeriodDays adds value to the "cure_period_days" field.
func (_u *RequirementUpdate) AddCurePeriodDays(v int) *RequirementUpdate {
	_u.mutation.AddCurePeriodDays(v)
	return _u
}

// ClearCurePeriodDays clears the value of the "cure_period_days" field.
func (_u *RequirementUpdate) ClearCurePeriodDays() *RequirementUpdate {
	_u.mutation.ClearCurePeriodDays()
	return _u
}

// SetLastChecked sets the "last_checked" field.
func (_u *RequirementUpdate) SetLastChecked(v time.Time) *RequirementUpdate {
	_u.mutation.SetLastChecked(v)
	return _u
}

// SetNillableLastChecked sets the "last_checked" field if the given value is not nil.
func (_u *RequirementUpdate) SetNillableLastChecked(v *time.Time) *RequirementUpdate {
	if v != nil {
		_u.SetLastChecked(*v)
	}
	return _u
}

// ClearLastChecked clears the value of the "last_checked" field.
func (_u *RequirementUpdate) ClearLastChecked() *RequirementUpdate {
	_u.mutation.ClearLastChecked()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *RequirementUpdate) SetNotes(v string) *RequirementUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *RequirementUpdate) SetNillableNotes(v *string) *RequirementUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *RequirementUpdate) ClearNotes() *RequirementUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RequirementUpdate) SetCreatedAt(v time.Time) *RequirementUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RequirementUpdate) SetNillableCreatedAt(v *time.Time) *RequirementUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RequirementUpdate) SetUpdatedAt(v time.Time) *RequirementUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLoan sets the "loan" edge to the Loan entity.
func (_u *RequirementUpdate) SetLoan(v *Loan) *RequirementUpdate {
	return _u.SetLoanID(v.ID)
}

// Mutation returns the RequirementMutation object of the builder.
func (_u *RequirementUpdate) Mutation() *RequirementMutation {
	return _u.mutation
}

// ClearLoan clears the "loan" edge to the Loan entity.
func (_u *RequirementUpdate) ClearLoan() *RequirementUpdate {
	_u.mutation.ClearLoan()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RequirementUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequirementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RequirementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequirementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RequirementUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := requirement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequirementUpdate) check() error {
	if v, ok := _u.mutation.RequirementID(); ok {
		if err := requirement.RequirementIDValidator(v); err != nil {
			return &ValidationError{Name: "requirement_id", err: fmt.Errorf(`ent: validator failed for field "Requirement.requirement_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := requirement.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Requirement.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := requirement.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Requirement.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := requirement.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Requirement.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := requirement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Requirement.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurePeriodDays(); ok {
		if err := requirement.CurePeriodDaysValidator(v); err != nil {
			return &ValidationError{Name: "cure_period_days", err: fmt.Errorf(`ent: validator failed for field "Requirement.cure_period_days": %w`, err)}
		}
	}
	if _u.mutation.LoanCleared() && len(_u.mutation.LoanIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Requirement.loan"`)
	}
	return nil
}

func (_u *RequirementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(requirement.Table, requirement.Columns, sqlgraph.NewFieldSpec(requirement.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RequirementID(); ok {
		_spec.SetField(requirement.FieldRequirementID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(requirement.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(requirement.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(requirement.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(requirement.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.PlainLanguageSummary(); ok {
		_spec.SetField(requirement.FieldPlainLanguageSummary, field.TypeString, value)
	}
	if _u.mutation.PlainLanguageSummaryCleared() {
		_spec.ClearField(requirement.FieldPlainLanguageSummary, field.TypeString)
	}
	if value, ok := _u.mutation.OriginalText(); ok {
		_spec.SetField(requirement.FieldOriginalText, field.TypeString, value)
	}
	if _u.mutation.OriginalTextCleared() {
		_spec.ClearField(requirement.FieldOriginalText, field.TypeString)
	}
	if value, ok := _u.mutation.DocumentReference(); ok {
		_spec.SetField(requirement.FieldDocumentReference, field.TypeString, value)
	}
	if _u.mutation.DocumentReferenceCleared() {
		_spec.ClearField(requirement.FieldDocumentReference, field.TypeString)
	}
	if value, ok := _u.mutation.Deadline(); ok {
		_spec.SetField(requirement.FieldDeadline, field.TypeJSON, value)
	}
	if _u.mutation.DeadlineCleared() {
		_spec.ClearField(requirement.FieldDeadline, field.TypeJSON)
	}
	if value, ok := _u.mutation.Threshold(); ok {
		_spec.SetField(requirement.FieldThreshold, field.TypeJSON, value)
	}
	if _u.mutation.ThresholdCleared() {
		_spec.ClearField(requirement.FieldThreshold, field.TypeJSON)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(requirement.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(requirement.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurePeriodDays(); ok {
		_spec.SetField(requirement.FieldCurePeriodDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurePeriodDays(); ok {
		_spec.AddField(requirement.FieldCurePeriodDays, field.TypeInt, value)
	}
	if _u.mutation.CurePeriodDaysCleared() {
		_spec.ClearField(requirement.FieldCurePeriodDays, field.TypeInt)
	}
	if value, ok := _u.mutation.LastChecked(); ok {
		_spec.SetField(requirement.FieldLastChecked, field.TypeTime, value)
	}
	if _u.mutation.LastCheckedCleared() {
		_spec.ClearField(requirement.FieldLastChecked, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(requirement.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(requirement.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(requirement.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(requirement.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LoanCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   requirement.LoanTable,
			Columns: []string{requirement.LoanColumn},
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
			Table:   requirement.LoanTable,
			Columns: []string{requirement.LoanColumn},
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
			err = &NotFoundError{requirement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RequirementUpdateOne is the builder for updating a single Requirement entity.
type RequirementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RequirementMutation
}

// SetLoanID sets the "loan_id" field.
func (_u *RequirementUpdateOne) SetLoanID(v uuid.UUID) *RequirementUpdateOne {
	_u.mutation.SetLoanID(v)
	return _u
}

// SetNillableLoanID sets the "loan_id" field if the given value is not nil.
func (_u *RequirementUpdateOne) SetNillableLoanID(v *uuid.UUID) *RequirementUpdateOne {
	if v != nil {
		_u.SetLoanID(*v)
	}
	return _u
}

// SetRequirementID sets the "requirement_id" field.
func (_u *RequirementUpdateOne) SetRequirementID(v string) *RequirementUpdateOne {
	_u.mutation.SetRequirementID(v)
	return _u
}

// SetNillableRequirementID sets the "requirement_id" field if the given value is not nil.
func (_u *RequirementUpdateOne) SetNillableRequirementID(v *string) *RequirementUpdateOne {
	if v != nil {
		_u.SetRequirementID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *RequirementUpdateOne) SetTitle(v string) *RequirementUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RequirementUpdateOne) SetNillableTitle(v *string) *RequirementUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *RequirementUpdateOne) SetCategory(v string) *RequirementUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *RequirementUpdateOne) SetNillableCategory(v *string) *RequirementUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RequirementUpdateOne) SetDescription(v string) *RequirementUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RequirementUpdateOne) SetNillableDescription(v *string) *RequirementUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *RequirementUpdateOne) ClearDescription() *RequirementUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetPlainLanguageSummary sets the "plain_language_summary" field.
func (_u *RequirementUpdateOne) SetPlainLanguageSummary(v string) *RequirementUpdateOne {
	_u.mutation.SetPlainLanguageSummary(v)
	return _u
}

// SetNillablePlainLanguageSummary sets the "plain_language_summary" field if the given value is not nil.
func (_u *RequirementUpdateOne) SetNillablePlainLanguageSummary(v *string) *RequirementUpdateOne {
	if v != nil {
		_u.SetPlainLanguageSummary(*v)
	}
	return _u
}

// ClearPlainLanguageSummary clears the value of the "plain_language_summary" field.
func (_u *RequirementUpdateOne) ClearPlainLanguageSummary() *RequirementUpdateOne {
	_u.mutation.ClearPlainLanguageSummary()
	return _u
}

// SetOriginalText sets the "original_text" field.
func (_u *RequirementUpdateOne) SetOriginalText(v string) *RequirementUpdateOne {
	_u.mutation.SetOriginalText(v)
	return _u
}

// SetNillableOriginalText sets the "original_text" field if the given value is not nil.
func (_u *RequirementUpdateOne) SetNillableOriginalText(v *string) *RequirementUpdateOne {
	if v != nil {
		_u.SetOriginalText(*v)
	}
	return _u
}

// ClearOriginalText clears the value of the "original_text" field.
func (_u *RequirementUpdateOne) ClearOriginalText() *RequirementUpdateOne {
	_u.mutation.ClearOriginalText()
	return _u
}

// SetDocumentReference sets the "document_reference" field.
func (_u *RequirementUpdateOne) SetDocumentReference(v string) *RequirementUpdateOne {
	_u.mutation.SetDocumentReference(v)
	return _u
}

// SetNillableDocumentReference sets the "document_reference" field if the given value is not nil.
func (_u *RequirementUpdateOne) SetNillableDocumentReference(v *string) *RequirementUpdateOne {
	if v != nil {
		_u.SetDocumentReference(*v)
	}
	return _u
}

// ClearDocumentReference clears the value of the "document_reference" field.
func (_u *RequirementUpdateOne) ClearDocumentReference() *RequirementUpdateOne {
	_u.mutation.ClearDocumentReference()
	return _u
}

// SetDeadline sets the "deadline" field.
func (_u *RequirementUpdateOne) SetDeadline(v map[string]interface{}) *RequirementUpdateOne {
	_u.mutation.SetDeadline(v)
	return _u
}

// ClearDeadline clears the value of the "deadline" field.
func (_u *RequirementUpdateOne) ClearDeadline() *RequirementUpdateOne {
	_u.mutation.ClearDeadline()
	return _u
}

// SetThreshold sets the "threshold" field.
func (_u *RequirementUpdateOne) SetThreshold(v map[string]interface{}) *RequirementUpdateOne {
	_u.mutation.SetThreshold(v)
	return _u
}

// ClearThreshold clears the value of the "threshold" field.
func (_u *RequirementUpdateOne) ClearThreshold() *RequirementUpdateOne {
	_u.mutation.ClearThreshold()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *RequirementUpdateOne) SetSeverity(v string) *RequirementUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *RequirementUpdateOne) SetNillableSeverity(v *string) *RequirementUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RequirementUpdateOne) SetStatus(v string) *RequirementUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RequirementUpdateOne) SetNillableStatus(v *string) *RequirementUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurePeriodDays sets the "cure_period_days" field.
func (_u *RequirementUpdateOne) SetCurePeriodDays(v int) *RequirementUpdateOne {
	_u.mutation.ResetCurePeriodDays()
	_u.mutation.SetCurePeriodDays(v)
	return _u
}

// SetNillableCurePeriodDays sets the "cure_period_days" field if the given value is not nil.
func (_u *RequirementUpdateOne) SetNillableCurePeriodDays(v *int) *RequirementUpdateOne {
	if v != nil {
		_u.SetCurePeriodDays(*v)
	}
	return _u
}

// AddCurePeriodDays adds value to the "cure_period_days" field.
func (_u *RequirementUpdateOne) AddCurePeriodDays(v int) *RequirementUpdateOne {
	_u.mutation.AddCurePeriodDays(v)
	return _u
}

// ClearCurePeriodDays clears the value of the "cure_period_days" field.
func (_u *RequirementUpdateOne) ClearCurePeriodDays() *RequirementUpdateOne {
	_u.mutation.ClearCurePeriodDays()
	return _u
}

// SetLastChecked sets the "last_checked" field.
func (_u *RequirementUpdateOne) SetLastChecked(v time.Time) *RequirementUpdateOne {
	_u.mutation.SetLastChecked(v)
	return _u
}

// SetNillableLastChecked sets the "last_checked" field if the given value is not nil.
func (_u *RequirementUpdateOne) SetNillableLastChecked(v *time.Time) *RequirementUpdateOne {
	if v != nil {
		_u.SetLastChecked(*v)
	}
	return _u
}

// ClearLastChecked clears the value of the "last_checked" field.
func (_u *RequirementUpdateOne) ClearLastChecked() *RequirementUpdateOne {
	_u.mutation.ClearLastChecked()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *RequirementUpdateOne) SetNotes(v string) *RequirementUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *RequirementUpdateOne) SetNillableNotes(v *string) *RequirementUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *RequirementUpdateOne) ClearNotes() *RequirementUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RequirementUpdateOne) SetCreatedAt(v time.Time) *RequirementUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RequirementUpdateOne) SetNillableCreatedAt(v *time.Time) *RequirementUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RequirementUpdateOne) SetUpdatedAt(v time.Time) *RequirementUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLoan sets the "loan" edge to the Loan entity.
func (_u *RequirementUpdateOne) SetLoan(v *Loan) *RequirementUpdateOne {
	return _u.SetLoanID(v.ID)
}

// Mutation returns the RequirementMutation object of the builder.
func (_u *RequirementUpdateOne) Mutation() *RequirementMutation {
	return _u.mutation
}

// ClearLoan clears the "loan" edge to the Loan entity.
func (_u *RequirementUpdateOne) ClearLoan() *RequirementUpdateOne {
	_u.mutation.ClearLoan()
	return _u
}

// Where appends a list predicates to the RequirementUpdate builder.
func (_u *RequirementUpdateOne) Where(ps ...predicate.Requirement) *RequirementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RequirementUpdateOne) Select(field string, fields ...string) *RequirementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Requirement entity.
func (_u *RequirementUpdateOne) Save(ctx context.Context) (*Requirement, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequirementUpdateOne) SaveX(ctx context.Context) *Requirement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RequirementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequirementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RequirementUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := requirement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequirementUpdateOne) check() error {
	if v, ok := _u.mutation.RequirementID(); ok {
		if err := requirement.RequirementIDValidator(v); err != nil {
			return &ValidationError{Name: "requirement_id", err: fmt.Errorf(`ent: validator failed for field "Requirement.requirement_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := requirement.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Requirement.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := requirement.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Requirement.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := requirement.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Requirement.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := requirement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Requirement.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurePeriodDays(); ok {
		if err := requirement.CurePeriodDaysValidator(v); err != nil {
			return &ValidationError{Name: "cure_period_days", err: fmt.Errorf(`ent: validator failed for field "Requirement.cure_period_days": %w`, err)}
		}
	}
	if _u.mutation.LoanCleared() && len(_u.mutation.LoanIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Requirement.loan"`)
	}
	return nil
}

func (_u *RequirementUpdateOne) sqlSave(ctx context.Context) (_node *Requirement, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(requirement.Table, requirement.Columns, sqlgraph.NewFieldSpec(requirement.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Requirement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, requirement.FieldID)
		for _, f := range fields {
			if !requirement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != requirement.FieldID {
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
		_spec.SetField(requirement.FieldRequirementID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(requirement.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(requirement.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(requirement.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(requirement.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.PlainLanguageSummary(); ok {
		_spec.SetField(requirement.FieldPlainLanguageSummary, field.TypeString, value)
	}
	if _u.mutation.PlainLanguageSummaryCleared() {
		_spec.ClearField(requirement.FieldPlainLanguageSummary, field.TypeString)
	}
	if value, ok := _u.mutation.OriginalText(); ok {
		_spec.SetField(requirement.FieldOriginalText, field.TypeString, value)
	}
	if _u.mutation.OriginalTextCleared() {
		_spec.ClearField(requirement.FieldOriginalText, field.TypeString)
	}
	if value, ok := _u.mutation.DocumentReference(); ok {
		_spec.SetField(requirement.FieldDocumentReference, field.TypeString, value)
	}
	if _u.mutation.DocumentReferenceCleared() {
		_spec.ClearField(requirement.FieldDocumentReference, field.TypeString)
	}
	if value, ok := _u.mutation.Deadline(); ok {
		_spec.SetField(requirement.FieldDeadline, field.TypeJSON, value)
	}
	if _u.mutation.DeadlineCleared() {
		_spec.ClearField(requirement.FieldDeadline, field.TypeJSON)
	}
	if value, ok := _u.mutation.Threshold(); ok {
		_spec.SetField(requirement.FieldThreshold, field.TypeJSON, value)
	}
	if _u.mutation.ThresholdCleared() {
		_spec.ClearField(requirement.FieldThreshold, field.TypeJSON)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(requirement.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(requirement.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurePeriodDays(); ok {
		_spec.SetField(requirement.FieldCurePeriodDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurePeriodDays(); ok {
		_spec.AddField(requirement.FieldCurePeriodDays, field.TypeInt, value)
	}
	if _u.mutation.CurePeriodDaysCleared() {
		_spec.ClearField(requirement.FieldCurePeriodDays, field.TypeInt)
	}
	if value, ok := _u.mutation.LastChecked(); ok {
		_spec.SetField(requirement.FieldLastChecked, field.TypeTime, value)
	}
	if _u.mutation.LastCheckedCleared() {
		_spec.ClearField(requirement.FieldLastChecked, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(requirement.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(requirement.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(requirement.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(requirement.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LoanCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   requirement.LoanTable,
			Columns: []string{requirement.LoanColumn},
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
			Table:   requirement.LoanTable,
			Columns: []string{requirement.LoanColumn},
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
	_node = &Requirement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{requirement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
