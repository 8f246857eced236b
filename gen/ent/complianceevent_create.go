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
)

// ComplianceEventCreate is the builder for creating a ComplianceEvent entity.
type ComplianceEventCreate struct {
	config
	mutation *ComplianceEventMutation
	hooks    []Hook
}

// SetLoanID sets the "loan_id" field.
func (_c *ComplianceEventCreate) SetLoanID(v uuid.UUID) *ComplianceEventCreate {
	_c.mutation.SetLoanID(v)
	return _c
}

// SetRequirementID sets the "requirement_id" field.
func (_c *ComplianceEventCreate) SetRequirementID(v string) *ComplianceEventCreate {
	_c.mutation.SetRequirementID(v)
	return _c
}

// SetNillableRequirementID sets the "requirement_id" field if the given value is not nil.
func (_c *ComplianceEventCreate) SetNillableRequirementID(v *string) *ComplianceEventCreate {
	if v != nil {
		_c.SetRequirementID(*v)
	}
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *ComplianceEventCreate) SetEventType(v string) *ComplianceEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetEventDate sets the "event_date" field.
func (_c *ComplianceEventCreate) SetEventDate(v time.Time) *ComplianceEventCreate {
	_c.mutation.SetEventDate(v)
	return _c
}

// SetNillableEventDate sets the "event_date" field if the given value is not nil.
func (_c *ComplianceEventCreate) SetNillableEventDate(v *time.Time) *ComplianceEventCreate {
	if v != nil {
		_c.SetEventDate(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *ComplianceEventCreate) SetDescription(v string) *ComplianceEventCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ComplianceEventCreate) SetNillableDescription(v *string) *ComplianceEventCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetOldStatus sets the "old_status" field.
func (_c *ComplianceEventCreate) SetOldStatus(v string) *ComplianceEventCreate {
	_c.mutation.SetOldStatus(v)
	return _c
}

// SetNillableOldStatus sets the "old_status" field if the given value is not nil.
func (_c *ComplianceEventCreate) SetNillableOldStatus(v *string) *ComplianceEventCreate {
	if v != nil {
		_c.SetOldStatus(*v)
	}
	return _c
}

// SetNewStatus sets the "new_status" field.
func (_c *ComplianceEventCreate) SetNewStatus(v string) *ComplianceEventCreate {
	_c.mutation.SetNewStatus(v)
	return _c
}

// SetNillableNewStatus sets the "new_status" field if the given value is not nil.
func (_c *ComplianceEventCreate) SetNillableNewStatus(v *string) *ComplianceEventCreate {
	if v != nil {
		_c.SetNewStatus(*v)
	}
	return _c
}

// SetSubmittedBy sets the "submitted_by" field.
func (_c *ComplianceEventCreate) SetSubmittedBy(v string) *ComplianceEventCreate {
	_c.mutation.SetSubmittedBy(v)
	return _c
}

// SetNillableSubmittedBy sets the "submitted_by" field if the given value is not nil.
func (_c *ComplianceEventCreate) SetNillableSubmittedBy(v *string) *ComplianceEventCreate {
	if v != nil {
		_c.SetSubmittedBy(*v)
	}
	return _c
}

// SetDocuments sets the "documents" field.
func (_c *ComplianceEventCreate) SetDocuments(v []string) *ComplianceEventCreate {
	_c.mutation.SetDocuments(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ComplianceEventCreate) SetCreatedAt(v time.Time) *ComplianceEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ComplianceEventCreate) SetNillableCreatedAt(v *time.Time) *ComplianceEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ComplianceEventCreate) SetID(v uuid.UUID) *ComplianceEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ComplianceEventCreate) SetNillableID(v *uuid.UUID) *ComplianceEventCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetLoan sets the "loan" edge to the Loan entity.
func (_c *ComplianceEventCreate) SetLoan(v *Loan) *ComplianceEventCreate {
	return _c.SetLoanID(v.ID)
}

// Mutation returns the ComplianceEventMutation object of the builder.
func (_c *ComplianceEventCreate) Mutation() *ComplianceEventMutation {
	return _c.mutation
}

// Save creates the ComplianceEvent in the database.
func (_c *ComplianceEventCreate) Save(ctx context.Context) (*ComplianceEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ComplianceEventCreate) SaveX(ctx context.Context) *ComplianceEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ComplianceEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ComplianceEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ComplianceEventCreate) defaults() {
	if _, ok := _c.mutation.EventDate(); !ok {
		v := complianceevent.DefaultEventDate()
		_c.mutation.SetEventDate(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := complianceevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := complianceevent.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ComplianceEventCreate) check() error {
	if _, ok := _c.mutation.LoanID(); !ok {
		return &ValidationError{Name: "loan_id", err: errors.New(`ent: missing required field "ComplianceEvent.loan_id"`)}
	}
	if v, ok := _c.mutation.RequirementID(); ok {
		if err := complianceevent.RequirementIDValidator(v); err != nil {
			return &ValidationError{Name: "requirement_id", err: fmt.Errorf(`ent: validator failed for field "ComplianceEvent.requirement_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "ComplianceEvent.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := complianceevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "ComplianceEvent.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EventDate(); !ok {
		return &ValidationError{Name: "event_date", err: errors.New(`ent: missing required field "ComplianceEvent.event_date"`)}
	}
	if v, ok := _c.mutation.OldStatus(); ok {
		if err := complianceevent.OldStatusValidator(v); err != nil {
			return &ValidationError{Name: "old_status", err: fmt.Errorf(`ent: validator failed for field "ComplianceEvent.old_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.NewStatus(); ok {
		if err := complianceevent.NewStatusValidator(v); err != nil {
			return &ValidationError{Name: "new_status", err: fmt.Errorf(`ent: validator failed for field "ComplianceEvent.new_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ComplianceEvent.created_at"`)}
	}
	if len(_c.mutation.LoanIDs()) == 0 {
		return &ValidationError{Name: "loan", err: errors.New(`ent: missing required edge "ComplianceEvent.loan"`)}
	}
	return nil
}

func (_c *ComplianceEventCreate) sqlSave(ctx context.Context) (*ComplianceEvent, error) {
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

func (_c *ComplianceEventCreate) createSpec() (*ComplianceEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ComplianceEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(complianceevent.Table, sqlgraph.NewFieldSpec(complianceevent.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RequirementID(); ok {
		_spec.SetField(complianceevent.FieldRequirementID, field.TypeString, value)
		_node.RequirementID = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(complianceevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.EventDate(); ok {
		_spec.SetField(complianceevent.FieldEventDate, field.TypeTime, value)
		_node.EventDate = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(complianceevent.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.OldStatus(); ok {
		_spec.SetField(complianceevent.FieldOldStatus, field.TypeString, value)
		_node.OldStatus = &value
	}
	if value, ok := _c.mutation.NewStatus(); ok {
		_spec.SetField(complianceevent.FieldNewStatus, field.TypeString, value)
		_node.NewStatus = &value
	}
	if value, ok := _c.mutation.SubmittedBy(); ok {
		_spec.SetField(complianceevent.FieldSubmittedBy, field.TypeString, value)
		_node.SubmittedBy = &value
	}
	if value, ok := _c.mutation.Documents(); ok {
		_spec.SetField(complianceevent.FieldDocuments, field.TypeJSON, value)
		_node.Documents = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(complianceevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.LoanIDs(); len(nodes) > 0 {
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
		_node.LoanID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ComplianceEventCreateBulk is the builder for creating many ComplianceEvent entities in bulk.
type ComplianceEventCreateBulk struct {
	config
	err      error
	builders []*ComplianceEventCreate
}

// Save creates the ComplianceEvent entities in the database.
func (_c *ComplianceEventCreateBulk) Save(ctx context.Context) ([]*ComplianceEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ComplianceEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ComplianceEventMutation)
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
func (_c *ComplianceEventCreateBulk) SaveX(ctx context.Context) []*ComplianceEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ComplianceEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ComplianceEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
