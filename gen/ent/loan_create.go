// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/loanguard/loanguard/gen/ent/complianceevent"
	"github.com/loanguard/loanguard/gen/ent/loan"
	"github.com/loanguard/loanguard/gen/ent/requirement"
)

// LoanCreate is the builder for creating a Loan entity.
type LoanCreate struct {
	config
	mutation *LoanMutation
	hooks    []Hook
}

// SetLoanID sets the "loan_id" field.
func (_c *LoanCreate) SetLoanID(v string) *LoanCreate {
	_c.mutation.SetLoanID(v)
	return _c
}

// SetLoanName sets the "loan_name" field.
func (_c *LoanCreate) SetLoanName(v string) *LoanCreate {
	_c.mutation.SetLoanName(v)
	return _c
}

// SetNillableLoanName sets the "loan_name" field if the given value is not nil.
func (_c *LoanCreate) SetNillableLoanName(v *string) *LoanCreate {
	if v != nil {
		_c.SetLoanName(*v)
	}
	return _c
}

// SetPropertyName sets the "property_name" field.
func (_c *LoanCreate) SetPropertyName(v string) *LoanCreate {
	_c.mutation.SetPropertyName(v)
	return _c
}

// SetBorrowerName sets the "borrower_name" field.
func (_c *LoanCreate) SetBorrowerName(v string) *LoanCreate {
	_c.mutation.SetBorrowerName(v)
	return _c
}

// SetNillableBorrowerName sets the "borrower_name" field if the given value is not nil.
func (_c *LoanCreate) SetNillableBorrowerName(v *string) *LoanCreate {
	if v != nil {
		_c.SetBorrowerName(*v)
	}
	return _c
}

// SetLenderName sets the "lender_name" field.
func (_c *LoanCreate) SetLenderName(v string) *LoanCreate {
	_c.mutation.SetLenderName(v)
	return _c
}

// SetNillableLenderName sets the "lender_name" field if the given value is not nil.
func (_c *LoanCreate) SetNillableLenderName(v *string) *LoanCreate {
	if v != nil {
		_c.SetLenderName(*v)
	}
	return _c
}

// SetOriginalLoanAmount sets the "original_loan_amount" field.
func (_c *LoanCreate) SetOriginalLoanAmount(v float64) *LoanCreate {
	_c.mutation.SetOriginalLoanAmount(v)
	return _c
}

// SetNillableOriginalLoanAmount sets the "original_loan_amount" field if the given value is not nil.
func (_c *LoanCreate) SetNillableOriginalLoanAmount(v *float64) *LoanCreate {
	if v != nil {
		_c.SetOriginalLoanAmount(*v)
	}
	return _c
}

// SetCurrentBalance sets the "current_balance" field.
func (_c *LoanCreate) SetCurrentBalance(v float64) *LoanCreate {
	_c.mutation.SetCurrentBalance(v)
	return _c
}

// SetNillableCurrentBalance sets the "current_balance" field if the given value is not nil.
func (_c *LoanCreate) SetNillableCurrentBalance(v *float64) *LoanCreate {
	if v != nil {
		_c.SetCurrentBalance(*v)
	}
	return _c
}

// SetOriginationDate sets the "origination_date" field.
func (_c *LoanCreate) SetOriginationDate(v string) *LoanCreate {
	_c.mutation.SetOriginationDate(v)
	return _c
}

// SetNillableOriginationDate sets the "origination_date" field if the given value is not nil.
func (_c *LoanCreate) SetNillableOriginationDate(v *string) *LoanCreate {
	if v != nil {
		_c.SetOriginationDate(*v)
	}
	return _c
}

// SetMaturityDate sets the "maturity_date" field.
func (_c *LoanCreate) SetMaturityDate(v string) *LoanCreate {
	_c.mutation.SetMaturityDate(v)
	return _c
}

// SetNillableMaturityDate sets the "maturity_date" field if the given value is not nil.
func (_c *LoanCreate) SetNillableMaturityDate(v *string) *LoanCreate {
	if v != nil {
		_c.SetMaturityDate(*v)
	}
	return _c
}

// SetComplianceScore sets the "compliance_score" field.
func (_c *LoanCreate) SetComplianceScore(v int) *LoanCreate {
	_c.mutation.SetComplianceScore(v)
	return _c
}

// SetNillableComplianceScore sets the "compliance_score" field if the given value is not nil.
func (_c *LoanCreate) SetNillableComplianceScore(v *int) *LoanCreate {
	if v != nil {
		_c.SetComplianceScore(*v)
	}
	return _c
}

// SetSourceDocuments sets the "source_documents" field.
func (_c *LoanCreate) SetSourceDocuments(v []string) *LoanCreate {
	_c.mutation.SetSourceDocuments(v)
	return _c
}

// SetExtractionDate sets the "extraction_date" field.
func (_c *LoanCreate) SetExtractionDate(v time.Time) *LoanCreate {
	_c.mutation.SetExtractionDate(v)
	return _c
}

// SetNillableExtractionDate sets the "extraction_date" field if the given value is not nil.
func (_c *LoanCreate) SetNillableExtractionDate(v *time.Time) *LoanCreate {
	if v != nil {
		_c.SetExtractionDate(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LoanCreate) SetCreatedAt(v time.Time) *LoanCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LoanCreate) SetNillableCreatedAt(v *time.Time) *LoanCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LoanCreate) SetUpdatedAt(v time.Time) *LoanCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LoanCreate) SetNillableUpdatedAt(v *time.Time) *LoanCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LoanCreate) SetID(v uuid.UUID) *LoanCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LoanCreate) SetNillableID(v *uuid.UUID) *LoanCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddRequirementIDs adds the "requirements" edge to the Requirement entity by IDs.
func (_c *LoanCreate) AddRequirementIDs(ids ...uuid.UUID) *LoanCreate {
	_c.mutation.AddRequirementIDs(ids...)
	return _c
}

// AddRequirements adds the "requirements" edges to the Requirement entity.
func (_c *LoanCreate) AddRequirements(v ...*Requirement) *LoanCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRequirementIDs(ids...)
}

// AddEventIDs adds the "events" edge to the ComplianceEvent entity by IDs.
func (_c *LoanCreate) AddEventIDs(ids ...uuid.UUID) *LoanCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the ComplianceEvent entity.
func (_c *LoanCreate) AddEvents(v ...*ComplianceEvent) *LoanCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the LoanMutation object of the builder.
func (_c *LoanCreate) Mutation() *LoanMutation {
	return _c.mutation
}

// Save creates the Loan in the database.
func (_c *LoanCreate) Save(ctx context.Context) (*Loan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LoanCreate) SaveX(ctx context.Context) *Loan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LoanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LoanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LoanCreate) defaults() {
	if _, ok := _c.mutation.OriginalLoanAmount(); !ok {
		v := loan.DefaultOriginalLoanAmount
		_c.mutation.SetOriginalLoanAmount(v)
	}
	if _, ok := _c.mutation.ComplianceScore(); !ok {
		v := loan.DefaultComplianceScore
		_c.mutation.SetComplianceScore(v)
	}
	if _, ok := _c.mutation.ExtractionDate(); !ok {
		v := loan.DefaultExtractionDate()
		_c.mutation.SetExtractionDate(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := loan.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := loan.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := loan.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LoanCreate) check() error {
	if _, ok := _c.mutation.LoanID(); !ok {
		return &ValidationError{Name: "loan_id", err: errors.New(`ent: missing required field "Loan.loan_id"`)}
	}
	if v, ok := _c.mutation.LoanID(); ok {
		if err := loan.LoanIDValidator(v); err != nil {
			return &ValidationError{Name: "loan_id", err: fmt.Errorf(`ent: validator failed for field "Loan.loan_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PropertyName(); !ok {
		return &ValidationError{Name: "property_name", err: errors.New(`ent: missing required field "Loan.property_name"`)}
	}
	if v, ok := _c.mutation.PropertyName(); ok {
		if err := loan.PropertyNameValidator(v); err != nil {
			return &ValidationError{Name: "property_name", err: fmt.Errorf(`ent: validator failed for field "Loan.property_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OriginalLoanAmount(); !ok {
		return &ValidationError{Name: "original_loan_amount", err: errors.New(`ent: missing required field "Loan.original_loan_amount"`)}
	}
	if v, ok := _c.mutation.OriginationDate(); ok {
		if err := loan.OriginationDateValidator(v); err != nil {
			return &ValidationError{Name: "origination_date", err: fmt.Errorf(`ent: validator failed for field "Loan.origination_date": %w`, err)}
		}
	}
	if v, ok := _c.mutation.MaturityDate(); ok {
		if err := loan.MaturityDateValidator(v); err != nil {
			return &ValidationError{Name: "maturity_date", err: fmt.Errorf(`ent: validator failed for field "Loan.maturity_date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ComplianceScore(); !ok {
		return &ValidationError{Name: "compliance_score", err: errors.New(`ent: missing required field "Loan.compliance_score"`)}
	}
	if v, ok := _c.mutation.ComplianceScore(); ok {
		if err := loan.ComplianceScoreValidator(v); err != nil {
			return &ValidationError{Name: "compliance_score", err: fmt.Errorf(`ent: validator failed for field "Loan.compliance_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractionDate(); !ok {
		return &ValidationError{Name: "extraction_date", err: errors.New(`ent: missing required field "Loan.extraction_date"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Loan.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Loan.updated_at"`)}
	}
	return nil
}

func (_c *LoanCreate) sqlSave(ctx context.Context) (*Loan, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LoanCreate) createSpec() (*Loan, *sqlgraph.CreateSpec) {
	var (
		_node = &Loan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(loan.Table, sqlgraph.NewFieldSpec(loan.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.LoanID(); ok {
		_spec.SetField(loan.FieldLoanID, field.TypeString, value)
		_node.LoanID = value
	}
	if value, ok := _c.mutation.LoanName(); ok {
		_spec.SetField(loan.FieldLoanName, field.TypeString, value)
		_node.LoanName = value
	}
	if value, ok := _c.mutation.PropertyName(); ok {
		_spec.SetField(loan.FieldPropertyName, field.TypeString, value)
		_node.PropertyName = value
	}
	if value, ok := _c.mutation.BorrowerName(); ok {
		_spec.SetField(loan.FieldBorrowerName, field.TypeString, value)
		_node.BorrowerName = value
	}
	if value, ok := _c.mutation.LenderName(); ok {
		_spec.SetField(loan.FieldLenderName, field.TypeString, value)
		_node.LenderName = value
	}
	if value, ok := _c.mutation.OriginalLoanAmount(); ok {
		_spec.SetField(loan.FieldOriginalLoanAmount, field.TypeFloat64, value)
		_node.OriginalLoanAmount = value
	}
	if value, ok := _c.mutation.CurrentBalance(); ok {
		_spec.SetField(loan.FieldCurrentBalance, field.TypeFloat64, value)
		_node.CurrentBalance = &value
	}
	if value, ok := _c.mutation.OriginationDate(); ok {
		_spec.SetField(loan.FieldOriginationDate, field.TypeString, value)
		_node.OriginationDate = &value
	}
	if value, ok := _c.mutation.MaturityDate(); ok {
		_spec.SetField(loan.FieldMaturityDate, field.TypeString, value)
		_node.MaturityDate = &value
	}
	if value, ok := _c.mutation.ComplianceScore(); ok {
		_spec.SetField(loan.FieldComplianceScore, field.TypeInt, value)
		_node.ComplianceScore = value
	}
	if value, ok := _c.mutation.SourceDocuments(); ok {
		_spec.SetField(loan.FieldSourceDocuments, field.TypeJSON, value)
		_node.SourceDocuments = value
	}
	if value, ok := _c.mutation.ExtractionDate(); ok {
		_spec.SetField(loan.FieldExtractionDate, field.TypeTime, value)
		_node.ExtractionDate = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(loan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(loan.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.RequirementsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LoanCreateBulk is the builder for creating many Loan entities in bulk.
type LoanCreateBulk struct {
	config
	err      error
	builders []*LoanCreate
}

// Save creates the Loan entities in the database.
func (_c *LoanCreateBulk) Save(ctx context.Context) ([]*Loan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Loan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LoanMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LoanCreateBulk) SaveX(ctx context.Context) []*Loan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LoanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LoanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
