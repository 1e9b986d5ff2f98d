// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/leadrouter/crm-backend/ent/predicate"
	"github.com/leadrouter/crm-backend/ent/whatsapptrigger"
)

// WhatsAppTriggerDelete is the builder for deleting a WhatsAppTrigger entity.
type WhatsAppTriggerDelete struct {
	config
	hooks    []Hook
	mutation *WhatsAppTriggerMutation
}

// Where appends a list predicates to the WhatsAppTriggerDelete builder.
func (_d *WhatsAppTriggerDelete) Where(ps ...predicate.WhatsAppTrigger) *WhatsAppTriggerDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *WhatsAppTriggerDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WhatsAppTriggerDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *WhatsAppTriggerDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(whatsapptrigger.Table, sqlgraph.NewFieldSpec(whatsapptrigger.FieldID, field.TypeInt))
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

// WhatsAppTriggerDeleteOne is the builder for deleting a single WhatsAppTrigger entity.
type WhatsAppTriggerDeleteOne struct {
	_d *WhatsAppTriggerDelete
}

// Where appends a list predicates to the WhatsAppTriggerDelete builder.
func (_d *WhatsAppTriggerDeleteOne) Where(ps ...predicate.WhatsAppTrigger) *WhatsAppTriggerDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *WhatsAppTriggerDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{whatsapptrigger.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WhatsAppTriggerDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
