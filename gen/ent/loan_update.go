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
	"github.com/loanguard/loanguard/gen/ent/requirement"
)

// LoanUpdate is the builder for updating Loan entities.
type LoanUpdate struct {
	config
	hooks    []Hook
	mutation *LoanMutation
}

// Where appends a list predicates to the LoanUpdate builder.
func (_u *LoanUpdate) Where(ps ...predicate.Loan) *LoanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLoanID sets the "loan_id" field.
func (_u *LoanUpdate) SetLoanID(v string) *LoanUpdate {
	_u.mutation.SetLoanID(v)
	return _u
}

// SetNillableLoanID sets the "loan_id" field if the given value is not nil.
func (_u *LoanUpdate) SetNillableLoanID(v *string) *LoanUpdate {
	if v != nil {
		_u.SetLoanID(*v)
	}
	return _u
}

// SetLoanName sets the "loan_name" field.
func (_u *LoanUpdate) SetLoanName(v string) *LoanUpdate {
	_u.mutation.SetLoanName(v)
	return _u
}

// SetNillableLoanName sets the "loan_name" field if the given value is not nil.
func (_u *LoanUpdate) SetNillableLoanName(v *string) *LoanUpdate {
	if v != nil {
		_u.SetLoanName(*v)
	}
	return _u
}

// ClearLoanName clears the value of the "loan_name" field.
func (_u *LoanUpdate) ClearLoanName() *LoanUpdate {
	_u.mutation.ClearLoanName()
	return _u
}

// SetPropertyName sets the "property_name" field.
func (_u *LoanUpdate) SetPropertyName(v string) *LoanUpdate {
	_u.mutation.SetPropertyName(v)
	return _u
}

// SetNillablePropertyName sets the "property_name" field if the given value is not nil.
func (_u *LoanUpdate) SetNillablePropertyName(v *string) *LoanUpdate {
	if v != nil {
		_u.SetPropertyName(*v)
	}
	return _u
}

// SetBorrowerName sets the "borrower_name" field.
func (_u *LoanUpdate) SetBorrowerName(v string) *LoanUpdate {
	_u.mutation.SetBorrowerName(v)
	return _u
}

// SetNillableBorrowerName sets the "borrower_name" field if the given value is not nil.
func (_u *LoanUpdate) SetNillableBorrowerName(v *string) *LoanUpdate {
	if v != nil {
		_u.SetBorrowerName(*v)
	}
	return _u
}

// ClearBorrowerName clears the value of the "borrower_name" field.
func (_u *LoanUpdate) ClearBorrowerName() *LoanUpdate {
	_u.mutation.ClearBorrowerName()
	return _u
}

// SetLenderName sets the "lender_name" field.
func (_u *LoanUpdate) SetLenderName(v string) *LoanUpdate {
	_u.mutation.SetLenderName(v)
	return _u
}

// SetNillableLenderName sets the "lender_name" field if the given value is not nil.
func (_u *LoanUpdate) SetNillableLenderName(v *string) *LoanUpdate {
	if v != nil {
		_u.SetLenderName(*v)
	}
	return _u
}

// ClearLenderName clears the value of the "lender_name" field.
func (_u *LoanUpdate) ClearLenderName() *LoanUpdate {
	_u.mutation.ClearLenderName()
	return _u
}

// SetOriginalLoanAmount sets the "original_loan_amount" field.
func (_u *LoanUpdate) SetOriginalLoanAmount(v float64) *LoanUpdate {
	_u.mutation.ResetOriginalLoanAmount()
	_u.mutation.SetOriginalLoanAmount(v)
	return _u
}

// SetNillableOriginalLoanAmount sets the "original_loan_amount" field if the given value is not nil.
func (_u *LoanUpdate) SetNillableOriginalLoanAmount(v *float64) *LoanUpdate {
	if v != nil {
		_u.SetOriginalLoanAmount(*v)
	}
	return _u
}

// AddOriginalLoanAmount adds value to the "original_loan_amount" field.
func (_u *LoanUpdate) AddOriginalLoanAmount(v float64) *LoanUpdate {
	_u.mutation.AddOriginalLoanAmount(v)
	return _u
}

// SetCurrentBalance sets the "current_balance" field.
func (_u *LoanUpdate) SetCurrentBalance(v float64) *LoanUpdate {
	_u.mutation.ResetCurrentBalance()
	_u.mutation.SetCurrentBalance(v)
	return _u
}

// SetNillableCurrentBalance sets the "current_balance" field if the given value is not nil.
func (_u *LoanUpdate) SetNillableCurrentBalance(v *float64) *LoanUpdate {
	if v != nil {
		_u.SetCurrentBalance(*v)
	}
	return _u
}

// AddCurrentBalance adds value to the "current_balance" field.
func (_u *LoanUpdate) AddCurrentBalance(v float64) *LoanUpdate {
	_u.mutation.AddCurrentBalance(v)
	return _u
}

// ClearCurrentBalance clears the value of the "current_balance" field.
func (_u *LoanUpdate) ClearCurrentBalance() *LoanUpdate {
	_u.mutation.ClearCurrentBalance()
	return _u
}

// SetOriginationDate sets the "origination_date" field.
func (_u *LoanUpdate) SetOriginationDate(v string) *LoanUpdate {
	_u.mutation.SetOriginationDate(v)
	return _u
}

// SetNillableOriginationDate sets the "origination_date" field if the given value is not nil.
func (_u *LoanUpdate) SetNillableOriginationDate(v *string) *LoanUpdate {
	if v != nil {
		_u.SetOriginationDate(*v)
	}
	return _u
}

// ClearOriginationDate clears the value of the "origination_date" field.
func (_u *LoanUpdate) ClearOriginationDate() *LoanUpdate {
	_u.mutation.ClearOriginationDate()
	return _u
}

// SetMaturityDate sets the "maturity_date" field.
func (_u *LoanUpdate) SetMaturityDate(v string) *LoanUpdate {
	_u.mutation.SetMaturityDate(v)
	return _u
}

// SetNillableMaturityDate sets the "maturity_date" field if the given value is not nil.
func (_u *LoanUpdate) SetNillableMaturityDate(v *string) *LoanUpdate {
	if v != nil {
		_u.SetMaturityDate(*v)
	}
	return _u
}

// ClearMaturityDate clears the value of the "maturity_date" field.
func (_u *LoanUpdate) ClearMaturityDate() *LoanUpdate {
	_u.mutation.ClearMaturityDate()
	return _u
}

// SetComplianceScore sets the "compliance_score" field.
func (_u *LoanUpdate) SetComplianceScore(v int) *LoanUpdate {
	_u.mutation.ResetComplianceScore()
	_u.mutation.SetComplianceScore(v)
	return _u
}

// SetNillableComplianceScore sets the "compliance_score" field if the given value is not nil.
func (_u *LoanUpdate) SetNillableComplianceScore(v *int) *LoanUpdate {
	if v != nil {
		_u.SetComplianceScore(*v)
	}
	return _u
}

// AddComplianceScore adds value to the "compliance_score" field.
func (_u *LoanUpdate) AddComplianceScore(v int) *LoanUpdate {
	_u.mutation.AddComplianceScore(v)
	return _u
}

// SetSourceDocuments sets the "source_documents" field.
func (_u *LoanUpdate) SetSourceDocuments(v []string) *LoanUpdate {
	_u.mutation.SetSourceDocuments(v)
	return _u
}

// AppendSourceDocuments appends value to the "source_documents" field.
func (_u *LoanUpdate) AppendSourceDocuments(v []string) *LoanUpdate {
	_u.mutation.AppendSourceDocuments(v)
	return _u
}

// ClearSourceDocuments clears the value of the "source_documents" field.
func (_u *LoanUpdate) ClearSourceDocuments() *LoanUpdate {
	_u.mutation.ClearSourceDocuments()
	return _u
}

// SetExtractionDate sets the "extraction_date" field.
func (_u *LoanUpdate) SetExtractionDate(v time.Time) *LoanUpdate {
	_u.mutation.SetExtractionDate(v)
	return _u
}

// SetNillableExtractionDate sets the "extraction_date" field if the given value is not nil.
func (_u *LoanUpdate) SetNillableExtractionDate(v *time.Time) *LoanUpdate {
	if v != nil {
		_u.SetExtractionDate(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *LoanUpdate) SetCreatedAt(v time.Time) *LoanUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *LoanUpdate) SetNillableCreatedAt(v *time.Time) *LoanUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LoanUpdate) SetUpdatedAt(v time.Time) *LoanUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddRequirementIDs adds the "requirements" edge to the Requirement entity by IDs.
func (_u *LoanUpdate) AddRequirementIDs(ids ...uuid.UUID) *LoanUpdate {
	_u.mutation.AddRequirementIDs(ids...)
	return _u
}

// AddRequirements adds the "requirements" edges to the Requirement entity.
func (_u *LoanUpdate) AddRequirements(v ...*Requirement) *LoanUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRequirementIDs(ids...)
}

// AddEventIDs adds the "events" edge to the ComplianceEvent entity by IDs.
func (_u *LoanUpdate) AddEventIDs(ids ...uuid.UUID) *LoanUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the ComplianceEvent entity.
func (_u *LoanUpdate) AddEvents(v ...*ComplianceEvent) *LoanUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the LoanMutation object of the builder.
func (_u *LoanUpdate) Mutation() *LoanMutation {
	return _u.mutation
}

// ClearRequirements clears all "requirements" edges to the Requirement entity.
func (_u *LoanUpdate) ClearRequirements() *LoanUpdate {
	_u.mutation.ClearRequirements()
	return _u
}

// RemoveRequirementIDs removes the "requirements" edge to Requirement entities by IDs.
func (_u *LoanUpdate) RemoveRequirementIDs(ids ...uuid.UUID) *LoanUpdate {
	_u.mutation.RemoveRequirementIDs(ids...)
	return _u
}

// RemoveRequirements removes "requirements" edges to Requirement entities.
func (_u *LoanUpdate) RemoveRequirements(v ...*Requirement) *LoanUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRequirementIDs(ids...)
}

// ClearEvents clears all "events" edges to the ComplianceEvent entity.
func (_u *LoanUpdate) ClearEvents() *LoanUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to ComplianceEvent entities by IDs.
func (_u *LoanUpdate) RemoveEventIDs(ids ...uuid.UUID) *LoanUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to ComplianceEvent entities.
func (_u *LoanUpdate) RemoveEvents(v ...*ComplianceEvent) *LoanUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LoanUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LoanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LoanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LoanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LoanUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := loan.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LoanUpdate) check() error {
	if v, ok := _u.mutation.LoanID(); ok {
		if err := loan.LoanIDValidator(v); err != nil {
			return &ValidationError{Name: "loan_id", err: fmt.Errorf(`ent: validator failed for field "Loan.loan_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PropertyName(); ok {
		if err := loan.PropertyNameValidator(v); err != nil {
			return &ValidationError{Name: "property_name", err: fmt.Errorf(`ent: validator failed for field "Loan.property_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginationDate(); ok {
		if err := loan.OriginationDateValidator(v); err != nil {
			return &ValidationError{Name: "origination_date", err: fmt.Errorf(`ent: validator failed for field "Loan.origination_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaturityDate(); ok {
		if err := loan.MaturityDateValidator(v); err != nil {
			return &ValidationError{Name: "maturity_date", err: fmt.Errorf(`ent: validator failed for field "Loan.maturity_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ComplianceScore(); ok {
		if err := loan.ComplianceScoreValidator(v); err != nil {
			return &ValidationError{Name: "compliance_score", err: fmt.Errorf(`ent: validator failed for field "Loan.compliance_score": %w`, err)}
		}
	}
	return nil
}

func (_u *LoanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(loan.Table, loan.Columns, sqlgraph.NewFieldSpec(loan.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LoanID(); ok {
		_spec.SetField(loan.FieldLoanID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LoanName(); ok {
		_spec.SetField(loan.FieldLoanName, field.TypeString, value)
	}
	if _u.mutation.LoanNameCleared() {
		_spec.ClearField(loan.FieldLoanName, field.TypeString)
	}
	if value, ok := _u.mutation.PropertyName(); ok {
		_spec.SetField(loan.FieldPropertyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BorrowerName(); ok {
		_spec.SetField(loan.FieldBorrowerName, field.TypeString, value)
	}
	if _u.mutation.BorrowerNameCleared() {
		_spec.ClearField(loan.FieldBorrowerName, field.TypeString)
	}
	if value, ok := _u.mutation.LenderName(); ok {
		_spec.SetField(loan.FieldLenderName, field.TypeString, value)
	}
	if _u.mutation.LenderNameCleared() {
		_spec.ClearField(loan.FieldLenderName, field.TypeString)
	}
	if value, ok := _u.mutation.OriginalLoanAmount(); ok {
		_spec.SetField(loan.FieldOriginalLoanAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOriginalLoanAmount(); ok {
		_spec.AddField(loan.FieldOriginalLoanAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrentBalance(); ok {
		_spec.SetField(loan.FieldCurrentBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCurrentBalance(); ok {
		_spec.AddField(loan.FieldCurrentBalance, field.TypeFloat64, value)
	}
	if _u.mutation.CurrentBalanceCleared() {
		_spec.ClearField(loan.FieldCurrentBalance, field.TypeFloat64)
	}
	if value, ok := _u.mutation.OriginationDate(); ok {
		_spec.SetField(loan.FieldOriginationDate, field.TypeString, value)
	}
	if _u.mutation.OriginationDateCleared() {
		_spec.ClearField(loan.FieldOriginationDate, field.TypeString)
	}
	if value, ok := _u.mutation.MaturityDate(); ok {
		_spec.SetField(loan.FieldMaturityDate, field.TypeString, value)
	}
	if _u.mutation.MaturityDateCleared() {
		_spec.ClearField(loan.FieldMaturityDate, field.TypeString)
	}
	if value, ok := _u.mutation.ComplianceScore(); ok {
		_spec.SetField(loan.FieldComplianceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedComplianceScore(); ok {
		_spec.AddField(loan.FieldComplianceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SourceDocuments(); ok {
		_spec.SetField(loan.FieldSourceDocuments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourceDocuments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, loan.FieldSourceDocuments, value)
		})
	}
	if _u.mutation.SourceDocumentsCleared() {
		_spec.ClearField(loan.FieldSourceDocuments, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractionDate(); ok {
		_spec.SetField(loan.FieldExtractionDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(loan.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(loan.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RequirementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   loan.RequirementsTable,
			Columns: []string{loan.RequirementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requirement.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRequirementsIDs(); len(nodes) > 0 && !_u.mutation.RequirementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   loan.RequirementsTable,
			Columns: []string{loan.RequirementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requirement.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RequirementsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   loan.RequirementsTable,
			Columns: []string{loan.RequirementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requirement.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   loan.EventsTable,
			Columns: []string{loan.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(complianceevent.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   loan.EventsTable,
			Columns: []string{loan.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(complianceevent.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   loan.EventsTable,
			Columns: []string{loan.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(complianceevent.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{loan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LoanUpdateOne is the builder for updating a single Loan entity.
type LoanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LoanMutation
}

// SetLoanID sets the "loan_id" field.
func (_u *LoanUpdateOne) SetLoanID(v string) *LoanUpdateOne {
	_u.mutation.SetLoanID(v)
	return _u
}

// SetNillableLoanID sets the "loan_id" field if the given value is not nil.
func (_u *LoanUpdateOne) SetNillableLoanID(v *string) *LoanUpdateOne {
	if v != nil {
		_u.SetLoanID(*v)
	}
	return _u
}

// SetLoanName sets the "loan_name" field.
func (_u *LoanUpdateOne) SetLoanName(v string) *LoanUpdateOne {
	_u.mutation.SetLoanName(v)
	return _u
}

// SetNillableLoanName sets the "loan_name" field if the given value is not nil.
func (_u *LoanUpdateOne) SetNillableLoanName(v *string) *LoanUpdateOne {
	if v != nil {
		_u.SetLoanName(*v)
	}
	return _u
}

// ClearLoanName clears the value of the "loan_name" field.
func (_u *LoanUpdateOne) ClearLoanName() *LoanUpdateOne {
	_u.mutation.ClearLoanName()
	return _u
}

// SetPropertyName sets the "property_name" field.
func (_u *LoanUpdateOne) SetPropertyName(v string) *LoanUpdateOne {
	_u.mutation.SetPropertyName(v)
	return _u
}

// SetNillablePropertyName sets the "property_name" field if the given value is not nil.
func (_u *LoanUpdateOne) SetNillablePropertyName(v *string) *LoanUpdateOne {
	if v != nil {
		_u.SetPropertyName(*v)
	}
	return _u
}

// SetBorrowerName sets the "borrower_name" field.
func (_u *LoanUpdateOne) SetBorrowerName(v string) *LoanUpdateOne {
	_u.mutation.SetBorrowerName(v)
	return _u
}

// SetNillableBorrowerName sets the "borrower_name" field if the given value is not nil.
func (_u *LoanUpdateOne) SetNillableBorrowerName(v *string) *LoanUpdateOne {
	if v != nil {
		_u.SetBorrowerName(*v)
	}
	return _u
}

// ClearBorrowerName clears the value of the "borrower_name" field.
func (_u *LoanUpdateOne) ClearBorrowerName() *LoanUpdateOne {
	_u.mutation.ClearBorrowerName()
	return _u
}

// SetLenderName sets the "lender_name" field.
func (_u *LoanUpdateOne) SetLenderName(v string) *LoanUpdateOne {
	_u.mutation.SetLenderName(v)
	return _u
}

// SetNillableLenderName sets the "lender_name" field if the given value is not nil.
func (_u *LoanUpdateOne) SetNillableLenderName(v *string) *LoanUpdateOne {
	if v != nil {
		_u.SetLenderName(*v)
	}
	return _u
}

// ClearLenderName clears the value of the "lender_name" field.
func (_u *LoanUpdateOne) ClearLenderName() *LoanUpdateOne {
	_u.mutation.ClearLenderName()
	return _u
}

// SetOriginalLoanAmount sets the "original_loan_amount" field.
func (_u *LoanUpdateOne) SetOriginalLoanAmount(v float64) *LoanUpdateOne {
	_u.mutation.ResetOriginalLoanAmount()
	_u.mutation.SetOriginalLoanAmount(v)
	return _u
}

// SetNillableOriginalLoanAmount sets the "original_loan_amount" field if the given value is not nil.
func (_u *LoanUpdateOne) SetNillableOriginalLoanAmount(v *float64) *LoanUpdateOne {
	if v != nil {
		_u.SetOriginalLoanAmount(*v)
	}
	return _u
}

// AddOriginalLoanAmount adds value to the "original_loan_amount" field.
func (_u *LoanUpdateOne) AddOriginalLoanAmount(v float64) *LoanUpdateOne {
	_u.mutation.AddOriginalLoanAmount(v)
	return _u
}

// SetCurrentBalance sets the "current_balance" field.
func (_u *LoanUpdateOne) SetCurrentBalance(v float64) *LoanUpdateOne {
	_u.mutation.ResetCurrentBalance()
	_u.mutation.SetCurrentBalance(v)
	return _u
}

// SetNillableCurrentBalance sets the "current_balance" field if the given value is not nil.
func (_u *LoanUpdateOne) SetNillableCurrentBalance(v *float64) *LoanUpdateOne {
	if v != nil {
		_u.SetCurrentBalance(*v)
	}
	return _u
}

// AddCurrentBalance adds value to the "current_balance" field.
func (_u *LoanUpdateOne) AddCurrentBalance(v float64) *LoanUpdateOne {
	_u.mutation.AddCurrentBalance(v)
	return _u
}

// ClearCurrentBalance clears the value of the "current_balance" field.
func (_u *LoanUpdateOne) ClearCurrentBalance() *LoanUpdateOne {
	_u.mutation.ClearCurrentBalance()
	return _u
}

// SetOriginationDate sets the "origination_date" field.
func (_u *LoanUpdateOne) SetOriginationDate(v string) *LoanUpdateOne {
	_u.mutation.SetOriginationDate(v)
	return _u
}

// SetNillableOriginationDate sets the "origination_date" field if the given value is not nil.
func (_u *LoanUpdateOne) SetNillableOriginationDate(v *string) *LoanUpdateOne {
	if v != nil {
		_u.SetOriginationDate(*v)
	}
	return _u
}

// ClearOriginationDate clears the value of the "origination_date" field.
func (_u *LoanUpdateOne) ClearOriginationDate() *LoanUpdateOne {
	_u.mutation.ClearOriginationDate()
	return _u
}

// SetMaturityDate sets the "maturity_date" field.
func (_u *LoanUpdateOne) SetMaturityDate(v string) *LoanUpdateOne {
	_u.mutation.SetMaturityDate(v)
	return _u
}

// SetNillableMaturityDate sets the "maturity_date" field if the given value is not nil.
func (_u *LoanUpdateOne) SetNillableMaturityDate(v *string) *LoanUpdateOne {
	if v != nil {
		_u.SetMaturityDate(*v)
	}
	return _u
}

// ClearMaturityDate clears the value of the "maturity_date" field.
func (_u *LoanUpdateOne) ClearMaturityDate() *LoanUpdateOne {
	_u.mutation.ClearMaturityDate()
	return _u
}

// SetComplianceScore sets the "compliance_score" field.
func (_u *LoanUpdateOne) SetComplianceScore(v int) *LoanUpdateOne {
	_u.mutation.ResetComplianceScore()
	_u.mutation.SetComplianceScore(v)
	return _u
}

// SetNillableComplianceScore sets the "compliance_score" field if the given value is not nil.
func (_u *LoanUpdateOne) SetNillableComplianceScore(v *int) *LoanUpdateOne {
	if v != nil {
		_u.SetComplianceScore(*v)
	}
	return _u
}

// AddComplianceScore adds value to the "compliance_score" field.
func (_u *LoanUpdateOne) AddComplianceScore(v int) *LoanUpdateOne {
	_u.mutation.AddComplianceScore(v)
	return _u
}

// SetSourceDocuments sets the "source_documents" field.
func (_u *LoanUpdateOne) SetSourceDocuments(v []string) *LoanUpdateOne {
	_u.mutation.SetSourceDocuments(v)
	return _u
}

// AppendSourceDocuments appends value to the "source_documents" field.
func (_u *LoanUpdateOne) AppendSourceDocuments(v []string) *LoanUpdateOne {
	_u.mutation.AppendSourceDocuments(v)
	return _u
}

// ClearSourceDocuments clears the value of the "source_documents" field.
func (_u *LoanUpdateOne) ClearSourceDocuments() *LoanUpdateOne {
	_u.mutation.ClearSourceDocuments()
	return _u
}

// SetExtractionDate sets the "extraction_date" field.
func (_u *LoanUpdateOne) SetExtractionDate(v time.Time) *LoanUpdateOne {
	_u.mutation.SetExtractionDate(v)
	return _u
}

// SetNillableExtractionDate sets the "extraction_date" field if the given value is not nil.
func (_u *LoanUpdateOne) SetNillableExtractionDate(v *time.Time) *LoanUpdateOne {
	if v != nil {
		_u.SetExtractionDate(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *LoanUpdateOne) SetCreatedAt(v time.Time) *LoanUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *LoanUpdateOne) SetNillableCreatedAt(v *time.Time) *LoanUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LoanUpdateOne) SetUpdatedAt(v time.Time) *LoanUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddRequirementIDs adds the "requirements" edge to the Requirement entity by IDs.
func (_u *LoanUpdateOne) AddRequirementIDs(ids ...uuid.UUID) *LoanUpdateOne {
	_u.mutation.AddRequirementIDs(ids...)
	return _u
}

// AddRequirements adds the "requirements" edges to the Requirement entity.
func (_u *LoanUpdateOne) AddRequirements(v ...*Requirement) *LoanUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRequirementIDs(ids...)
}

// AddEventIDs adds the "events" edge to the ComplianceEvent entity by IDs.
func (_u *LoanUpdateOne) AddEventIDs(ids ...uuid.UUID) *LoanUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the ComplianceEvent entity.
func (_u *LoanUpdateOne) AddEvents(v ...*ComplianceEvent) *LoanUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the LoanMutation object of the builder.
func (_u *LoanUpdateOne) Mutation() *LoanMutation {
	return _u.mutation
}

// ClearRequirements clears all "requirements" edges to the Requirement entity.
func (_u *LoanUpdateOne) ClearRequirements() *LoanUpdateOne {
	_u.mutation.ClearRequirements()
	return _u
}

// RemoveRequirementIDs removes the "requirements" edge to Requirement entities by IDs.
func (_u *LoanUpdateOne) RemoveRequirementIDs(ids ...uuid.UUID) *LoanUpdateOne {
	_u.mutation.RemoveRequirementIDs(ids...)
	return _u
}

// RemoveRequirements removes "requirements" edges to Requirement entities.
func (_u *LoanUpdateOne) RemoveRequirements(v ...*Requirement) *LoanUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRequirementIDs(ids...)
}

// ClearEvents clears all "events" edges to the ComplianceEvent entity.
func (_u *LoanUpdateOne) ClearEvents() *LoanUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to ComplianceEvent entities by IDs.
func (_u *LoanUpdateOne) RemoveEventIDs(ids ...uuid.UUID) *LoanUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to ComplianceEvent entities.
func (_u *LoanUpdateOne) RemoveEvents(v ...*ComplianceEvent) *LoanUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the LoanUpdate builder.
func (_u *LoanUpdateOne) Where(ps ...predicate.Loan) *LoanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LoanUpdateOne) Select(field string, fields ...string) *LoanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Loan entity.
func (_u *LoanUpdateOne) Save(ctx context.Context) (*Loan, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LoanUpdateOne) SaveX(ctx context.Context) *Loan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LoanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LoanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LoanUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := loan.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LoanUpdateOne) check() error {
	if v, ok := _u.mutation.LoanID(); ok {
		if err := loan.LoanIDValidator(v); err != nil {
			return &ValidationError{Name: "loan_id", err: fmt.Errorf(`ent: validator failed for field "Loan.loan_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PropertyName(); ok {
		if err := loan.PropertyNameValidator(v); err != nil {
			return &ValidationError{Name: "property_name", err: fmt.Errorf(`ent: validator failed for field "Loan.property_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginationDate(); ok {
		if err := loan.OriginationDateValidator(v); err != nil {
			return &ValidationError{Name: "origination_date", err: fmt.Errorf(`ent: validator failed for field "Loan.origination_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaturityDate(); ok {
		if err := loan.MaturityDateValidator(v); err != nil {
			return &ValidationError{Name: "maturity_date", err: fmt.Errorf(`ent: validator failed for field "Loan.maturity_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ComplianceScore(); ok {
		if err := loan.ComplianceScoreValidator(v); err != nil {
			return &ValidationError{Name: "compliance_score", err: fmt.Errorf(`ent: validator failed for field "Loan.compliance_score": %w`, err)}
		}
	}
	return nil
}

func (_u *LoanUpdateOne) sqlSave(ctx context.Context) (_node *Loan, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(loan.Table, loan.Columns, sqlgraph.NewFieldSpec(loan.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Loan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, loan.FieldID)
		for _, f := range fields {
			if !loan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != loan.FieldID {
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
	if value, ok := _u.mutation.LoanID(); ok {
		_spec.SetField(loan.FieldLoanID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LoanName(); ok {
		_spec.SetField(loan.FieldLoanName, field.TypeString, value)
	}
	if _u.mutation.LoanNameCleared() {
		_spec.ClearField(loan.FieldLoanName, field.TypeString)
	}
	if value, ok := _u.mutation.PropertyName(); ok {
		_spec.SetField(loan.FieldPropertyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BorrowerName(); ok {
		_spec.SetField(loan.FieldBorrowerName, field.TypeString, value)
	}
	if _u.mutation.BorrowerNameCleared() {
		_spec.ClearField(loan.FieldBorrowerName, field.TypeString)
	}
	if value, ok := _u.mutation.LenderName(); ok {
		_spec.SetField(loan.FieldLenderName, field.TypeString, value)
	}
	if _u.mutation.LenderNameCleared() {
		_spec.ClearField(loan.FieldLenderName, field.TypeString)
	}
	if value, ok := _u.mutation.OriginalLoanAmount(); ok {
		_spec.SetField(loan.FieldOriginalLoanAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOriginalLoanAmount(); ok {
		_spec.AddField(loan.FieldOriginalLoanAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrentBalance(); ok {
		_spec.SetField(loan.FieldCurrentBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCurrentBalance(); ok {
		_spec.AddField(loan.FieldCurrentBalance, field.TypeFloat64, value)
	}
	if _u.mutation.CurrentBalanceCleared() {
		_spec.ClearField(loan.FieldCurrentBalance, field.TypeFloat64)
	}
	if value, ok := _u.mutation.OriginationDate(); ok {
		_spec.SetField(loan.FieldOriginationDate, field.TypeString, value)
	}
	if _u.mutation.OriginationDateCleared() {
		_spec.ClearField(loan.FieldOriginationDate, field.TypeString)
	}
	if value, ok := _u.mutation.MaturityDate(); ok {
		_spec.SetField(loan.FieldMaturityDate, field.TypeString, value)
	}
	if _u.mutation.MaturityDateCleared() {
		_spec.ClearField(loan.FieldMaturityDate, field.TypeString)
	}
	if value, ok := _u.mutation.ComplianceScore(); ok {
		_spec.SetField(loan.FieldComplianceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedComplianceScore(); ok {
		_spec.AddField(loan.FieldComplianceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SourceDocuments(); ok {
		_spec.SetField(loan.FieldSourceDocuments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourceDocuments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, loan.FieldSourceDocuments, value)
		})
	}
	if _u.mutation.SourceDocumentsCleared() {
		_spec.ClearField(loan.FieldSourceDocuments, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractionDate(); ok {
		_spec.SetField(loan.FieldExtractionDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(loan.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(loan.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RequirementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   loan.RequirementsTable,
			Columns: []string{loan.RequirementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requirement.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRequirementsIDs(); len(nodes) > 0 && !_u.mutation.RequirementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   loan.RequirementsTable,
			Columns: []string{loan.RequirementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requirement.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RequirementsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   loan.RequirementsTable,
			Columns: []string{loan.RequirementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requirement.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   loan.EventsTable,
			Columns: []string{loan.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(complianceevent.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   loan.EventsTable,
			Columns: []string{loan.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(complianceevent.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   loan.EventsTable,
			Columns: []string{loan.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(complianceevent.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Loan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{loan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
