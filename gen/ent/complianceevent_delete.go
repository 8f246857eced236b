// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loanguard/loanguard/gen/ent/complianceevent"
	"github.com/loanguard/loanguard/gen/ent/predicate"
)

// ComplianceEventDelete is the builder for deleting a ComplianceEvent entity.
type ComplianceEventDelete struct {
	config
	hooks    []Hook
	mutation *ComplianceEventMutation
}

// Where appends a list predicates to the ComplianceEventDelete builder.
func (_d *ComplianceEventDelete) Where(ps ...predicate.ComplianceEvent) *ComplianceEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ComplianceEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ComplianceEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ComplianceEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(complianceevent.Table, sqlgraph.NewFieldSpec(complianceevent.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ComplianceEventDeleteOne is the builder for deleting a single ComplianceEvent entity.
type ComplianceEventDeleteOne struct {
	_d *ComplianceEventDelete
}

// Where appends a list predicates to the ComplianceEventDelete builder.
func (_d *ComplianceEventDeleteOne) Where(ps ...predicate.ComplianceEvent) *ComplianceEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ComplianceEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{complianceevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ComplianceEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
