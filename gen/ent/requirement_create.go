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
	"github.com/loanguard/loanguard/gen/ent/loan"
	"github.com/loanguard/loanguard/gen/ent/requirement"
)

// RequirementCreate is the builder for creating a Requirement entity.
type RequirementCreate struct {
	config
	mutation *RequirementMutation
	hooks    []Hook
}

// SetLoanID sets the "loan_id" field.
func (_c *RequirementCreate) SetLoanID(v uuid.UUID) *RequirementCreate {
	_c.mutation.SetLoanID(v)
	return _c
}

// SetRequirementID sets the "requirement_id" field.
func (_c *RequirementCreate) SetRequirementID(v string) *RequirementCreate {
	_c.mutation.SetRequirementID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *RequirementCreate) SetTitle(v string) *RequirementCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *RequirementCreate) SetCategory(v string) *RequirementCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *RequirementCreate) SetNillableCategory(v *string) *RequirementCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *RequirementCreate) SetDescription(v string) *RequirementCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *RequirementCreate) SetNillableDescription(v *string) *RequirementCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetPlainLanguageSummary sets the "plain_language_summary" field.
func (_c *RequirementCreate) SetPlainLanguageSummary(v string) *RequirementCreate {
	_c.mutation.SetPlainLanguageSummary(v)
	return _c
}

// SetNillablePlainLanguageSummary sets the "plain_language_summary" field if the given value is not nil.
func (_c *RequirementCreate) SetNillablePlainLanguageSummary(v *string) *RequirementCreate {
	if v != nil {
		_c.SetPlainLanguageSummary(*v)
	}
	return _c
}

// SetOriginalText sets the "original_text" field.
func (_c *RequirementCreate) SetOriginalText(v string) *RequirementCreate {
	_c.mutation.SetOriginalText(v)
	return _c
}

// SetNillableOriginalText sets the "original_text" field if the given value is not nil.
func (_c *RequirementCreate) SetNillableOriginalText(v *string) *RequirementCreate {
	if v != nil {
		_c.SetOriginalText(*v)
	}
	return _c
}

// SetDocumentReference sets the "document_reference" field.
func (_c *RequirementCreate) SetDocumentReference(v string) *RequirementCreate {
	_c.mutation.SetDocumentReference(v)
	return _c
}

// SetNillableDocumentReference sets the "document_reference" field if the given value is not nil.
func (_c *RequirementCreate) SetNillableDocumentReference(v *string) *RequirementCreate {
	if v != nil {
		_c.SetDocumentReference(*v)
	}
	return _c
}

// SetDeadline sets the "deadline" field.
func (_c *RequirementCreate) SetDeadline(v map[string]interface{}) *RequirementCreate {
	_c.mutation.SetDeadline(v)
	return _c
}

// SetThreshold sets the "threshold" field.
func (_c *RequirementCreate) SetThreshold(v map[string]interface{}) *RequirementCreate {
	_c.mutation.SetThreshold(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *RequirementCreate) SetSeverity(v string) *RequirementCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_c *RequirementCreate) SetNillableSeverity(v *string) *RequirementCreate {
	if v != nil {
		_c.SetSeverity(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *RequirementCreate) SetStatus(v string) *RequirementCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RequirementCreate) SetNillableStatus(v *string) *RequirementCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurePeriodDays sets the "cure_period_days" field.
func (_c *RequirementCreate) SetCurePeriodDays(v int) *RequirementCreate {
	_c.mutation.SetCurePeriodDays(v)
	return _c
}

// SetNillableCurePeriodDays sets the "cure_period_days" field if the given value is not nil.
func (_c *RequirementCreate) SetNillableCurePeriodDays(v *int) *RequirementCreate {
	if v != nil {
		_c.SetCurePeriodDays(*v)
	}
	return _c
}

// SetLastChecked sets the "last_checked" field.
func (_c *RequirementCreate) SetLastChecked(v time.Time) *RequirementCreate {
	_c.mutation.SetLastChecked(v)
	return _c
}

// SetNillableLastChecked sets the "last_checked" field if the given value is not nil.
func (_c *RequirementCreate) SetNillableLastChecked(v *time.Time) *RequirementCreate {
	if v != nil {
		_c.SetLastChecked(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *RequirementCreate) SetNotes(v string) *RequirementCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *RequirementCreate) SetNillableNotes(v *string) *RequirementCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RequirementCreate) SetCreatedAt(v time.Time) *RequirementCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RequirementCreate) SetNillableCreatedAt(v *time.Time) *RequirementCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RequirementCreate) SetUpdatedAt(v time.Time) *RequirementCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RequirementCreate) SetNillableUpdatedAt(v *time.Time) *RequirementCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RequirementCreate) SetID(v uuid.UUID) *RequirementCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RequirementCreate) SetNillableID(v *uuid.UUID) *RequirementCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetLoan sets the "loan" edge to the Loan entity.
func (_c *RequirementCreate) SetLoan(v *Loan) *RequirementCreate {
	return _c.SetLoanID(v.ID)
}

// Mutation returns the RequirementMutation object of the builder.
func (_c *RequirementCreate) Mutation() *RequirementMutation {
	return _c.mutation
}

// Save creates the Requirement in the database.
func (_c *RequirementCreate) Save(ctx context.Context) (*Requirement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RequirementCreate) SaveX(ctx context.Context) *Requirement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequirementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequirementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RequirementCreate) defaults() {
	if _, ok := _c.mutation.Category(); !ok {
		v := requirement.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.Severity(); !ok {
		v := requirement.DefaultSeverity
		_c.mutation.SetSeverity(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := requirement.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := requirement.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := requirement.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := requirement.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RequirementCreate) check() error {
	if _, ok := _c.mutation.LoanID(); !ok {
		return &ValidationError{Name: "loan_id", err: errors.New(`ent: missing required field "Requirement.loan_id"`)}
	}
	if _, ok := _c.mutation.RequirementID(); !ok {
		return &ValidationError{Name: "requirement_id", err: errors.New(`ent: missing required field "Requirement.requirement_id"`)}
	}
	if v, ok := _c.mutation.RequirementID(); ok {
		if err := requirement.RequirementIDValidator(v); err != nil {
			return &ValidationError{Name: "requirement_id", err: fmt.Errorf(`ent: validator failed for field "Requirement.requirement_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Requirement.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := requirement.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Requirement.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Requirement.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := requirement.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Requirement.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "Requirement.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := requirement.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Requirement.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Requirement.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := requirement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Requirement.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CurePeriodDays(); ok {
		if err := requirement.CurePeriodDaysValidator(v); err != nil {
			return &ValidationError{Name: "cure_period_days", err: fmt.Errorf(`ent: validator failed for field "Requirement.cure_period_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Requirement.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Requirement.updated_at"`)}
	}
	if len(_c.mutation.LoanIDs()) == 0 {
		return &ValidationError{Name: "loan", err: errors.New(`ent: missing required edge "Requirement.loan"`)}
	}
	return nil
}

func (_c *RequirementCreate) sqlSave(ctx context.Context) (*Requirement, error) {
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

func (_c *RequirementCreate) createSpec() (*Requirement, *sqlgraph.CreateSpec) {
	var (
		_node = &Requirement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(requirement.Table, sqlgraph.NewFieldSpec(requirement.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RequirementID(); ok {
		_spec.SetField(requirement.FieldRequirementID, field.TypeString, value)
		_node.RequirementID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(requirement.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(requirement.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(requirement.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.PlainLanguageSummary(); ok {
		_spec.SetField(requirement.FieldPlainLanguageSummary, field.TypeString, value)
		_node.PlainLanguageSummary = value
	}
	if value, ok := _c.mutation.OriginalText(); ok {
		_spec.SetField(requirement.FieldOriginalText, field.TypeString, value)
		_node.OriginalText = value
	}
	if value, ok := _c.mutation.DocumentReference(); ok {
		_spec.SetField(requirement.FieldDocumentReference, field.TypeString, value)
		_node.DocumentReference = value
	}
	if value, ok := _c.mutation.Deadline(); ok {
		_spec.SetField(requirement.FieldDeadline, field.TypeJSON, value)
		_node.Deadline = value
	}
	if value, ok := _c.mutation.Threshold(); ok {
		_spec.SetField(requirement.FieldThreshold, field.TypeJSON, value)
		_node.Threshold = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(requirement.FieldSeverity, field.TypeString, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(requirement.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CurePeriodDays(); ok {
		_spec.SetField(requirement.FieldCurePeriodDays, field.TypeInt, value)
		_node.CurePeriodDays = &value
	}
	if value, ok := _c.mutation.LastChecked(); ok {
		_spec.SetField(requirement.FieldLastChecked, field.TypeTime, value)
		_node.LastChecked = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(requirement.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(requirement.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(requirement.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.LoanIDs(); len(nodes) > 0 {
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
		_node.LoanID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RequirementCreateBulk is the builder for creating many Requirement entities in bulk.
type RequirementCreateBulk struct {
	config
	err      error
	builders []*RequirementCreate
}

// Save creates the Requirement entities in the database.
func (_c *RequirementCreateBulk) Save(ctx context.Context) ([]*Requirement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Requirement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RequirementMutation)
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
func (_c *RequirementCreateBulk) SaveX(ctx context.Context) []*Requirement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequirementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequirementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
