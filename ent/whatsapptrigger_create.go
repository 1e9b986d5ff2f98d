// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/leadrouter/crm-backend/ent/whatsapptrigger"
	"github.com/leadrouter/crm-backend/ent/workspace"
)

// WhatsAppTriggerCreate is the builder for creating a WhatsAppTrigger entity.
type WhatsAppTriggerCreate struct {
	config
	mutation *WhatsAppTriggerMutation
	hooks    []Hook
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *WhatsAppTriggerCreate) SetWorkspaceID(v int) *WhatsAppTriggerCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *WhatsAppTriggerCreate) SetStatus(v string) *WhatsAppTriggerCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetIsEnabled sets the "is_enabled" field.
func (_c *WhatsAppTriggerCreate) SetIsEnabled(v bool) *WhatsAppTriggerCreate {
	_c.mutation.SetIsEnabled(v)
	return _c
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_c *WhatsAppTriggerCreate) SetNillableIsEnabled(v *bool) *WhatsAppTriggerCreate {
	if v != nil {
		_c.SetIsEnabled(*v)
	}
	return _c
}

// SetCampaignName sets the "campaign_name" field.
func (_c *WhatsAppTriggerCreate) SetCampaignName(v string) *WhatsAppTriggerCreate {
	_c.mutation.SetCampaignName(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *WhatsAppTriggerCreate) SetSource(v string) *WhatsAppTriggerCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *WhatsAppTriggerCreate) SetNillableSource(v *string) *WhatsAppTriggerCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetTemplateParams sets the "template_params" field.
func (_c *WhatsAppTriggerCreate) SetTemplateParams(v string) *WhatsAppTriggerCreate {
	_c.mutation.SetTemplateParams(v)
	return _c
}

// SetNillableTemplateParams sets the "template_params" field if the given value is not nil.
func (_c *WhatsAppTriggerCreate) SetNillableTemplateParams(v *string) *WhatsAppTriggerCreate {
	if v != nil {
		_c.SetTemplateParams(*v)
	}
	return _c
}

// SetParamsFallback sets the "params_fallback" field.
func (_c *WhatsAppTriggerCreate) SetParamsFallback(v string) *WhatsAppTriggerCreate {
	_c.mutation.SetParamsFallback(v)
	return _c
}

// SetNillableParamsFallback sets the "params_fallback" field if the given value is not nil.
func (_c *WhatsAppTriggerCreate) SetNillableParamsFallback(v *string) *WhatsAppTriggerCreate {
	if v != nil {
		_c.SetParamsFallback(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WhatsAppTriggerCreate) SetCreatedAt(v time.Time) *WhatsAppTriggerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WhatsAppTriggerCreate) SetNillableCreatedAt(v *time.Time) *WhatsAppTriggerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WhatsAppTriggerCreate) SetUpdatedAt(v time.Time) *WhatsAppTriggerCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WhatsAppTriggerCreate) SetNillableUpdatedAt(v *time.Time) *WhatsAppTriggerCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_c *WhatsAppTriggerCreate) SetWorkspace(v *Workspace) *WhatsAppTriggerCreate {
	return _c.SetWorkspaceID(v.ID)
}

// Mutation returns the WhatsAppTriggerMutation object of the builder.
func (_c *WhatsAppTriggerCreate) Mutation() *WhatsAppTriggerMutation {
	return _c.mutation
}

// Save creates the WhatsAppTrigger in the database.
func (_c *WhatsAppTriggerCreate) Save(ctx context.Context) (*WhatsAppTrigger, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WhatsAppTriggerCreate) SaveX(ctx context.Context) *WhatsAppTrigger {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WhatsAppTriggerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WhatsAppTriggerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WhatsAppTriggerCreate) defaults() {
	if _, ok := _c.mutation.IsEnabled(); !ok {
		v := whatsapptrigger.DefaultIsEnabled
		_c.mutation.SetIsEnabled(v)
	}
	if _, ok := _c.mutation.Source(); !ok {
		v := whatsapptrigger.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.TemplateParams(); !ok {
		v := whatsapptrigger.DefaultTemplateParams
		_c.mutation.SetTemplateParams(v)
	}
	if _, ok := _c.mutation.ParamsFallback(); !ok {
		v := whatsapptrigger.DefaultParamsFallback
		_c.mutation.SetParamsFallback(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := whatsapptrigger.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := whatsapptrigger.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WhatsAppTriggerCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "WhatsAppTrigger.workspace_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WhatsAppTrigger.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := whatsapptrigger.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WhatsAppTrigger.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsEnabled(); !ok {
		return &ValidationError{Name: "is_enabled", err: errors.New(`ent: missing required field "WhatsAppTrigger.is_enabled"`)}
	}
	if _, ok := _c.mutation.CampaignName(); !ok {
		return &ValidationError{Name: "campaign_name", err: errors.New(`ent: missing required field "WhatsAppTrigger.campaign_name"`)}
	}
	if v, ok := _c.mutation.CampaignName(); ok {
		if err := whatsapptrigger.CampaignNameValidator(v); err != nil {
			return &ValidationError{Name: "campaign_name", err: fmt.Errorf(`ent: validator failed for field "WhatsAppTrigger.campaign_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "WhatsAppTrigger.source"`)}
	}
	if _, ok := _c.mutation.TemplateParams(); !ok {
		return &ValidationError{Name: "template_params", err: errors.New(`ent: missing required field "WhatsAppTrigger.template_params"`)}
	}
	if _, ok := _c.mutation.ParamsFallback(); !ok {
		return &ValidationError{Name: "params_fallback", err: errors.New(`ent: missing required field "WhatsAppTrigger.params_fallback"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WhatsAppTrigger.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WhatsAppTrigger.updated_at"`)}
	}
	if len(_c.mutation.WorkspaceIDs()) == 0 {
		return &ValidationError{Name: "workspace", err: errors.New(`ent: missing required edge "WhatsAppTrigger.workspace"`)}
	}
	return nil
}

func (_c *WhatsAppTriggerCreate) sqlSave(ctx context.Context) (*WhatsAppTrigger, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WhatsAppTriggerCreate) createSpec() (*WhatsAppTrigger, *sqlgraph.CreateSpec) {
	var (
		_node = &WhatsAppTrigger{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(whatsapptrigger.Table, sqlgraph.NewFieldSpec(whatsapptrigger.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(whatsapptrigger.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.IsEnabled(); ok {
		_spec.SetField(whatsapptrigger.FieldIsEnabled, field.TypeBool, value)
		_node.IsEnabled = value
	}
	if value, ok := _c.mutation.CampaignName(); ok {
		_spec.SetField(whatsapptrigger.FieldCampaignName, field.TypeString, value)
		_node.CampaignName = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(whatsapptrigger.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.TemplateParams(); ok {
		_spec.SetField(whatsapptrigger.FieldTemplateParams, field.TypeString, value)
		_node.TemplateParams = value
	}
	if value, ok := _c.mutation.ParamsFallback(); ok {
		_spec.SetField(whatsapptrigger.FieldParamsFallback, field.TypeString, value)
		_node.ParamsFallback = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(whatsapptrigger.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(whatsapptrigger.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.WorkspaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   whatsapptrigger.WorkspaceTable,
			Columns: []string{whatsapptrigger.WorkspaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WorkspaceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WhatsAppTriggerCreateBulk is the builder for creating many WhatsAppTrigger entities in bulk.
type WhatsAppTriggerCreateBulk struct {
	config
	err      error
	builders []*WhatsAppTriggerCreate
}

// Save creates the WhatsAppTrigger entities in the database.
func (_c *WhatsAppTriggerCreateBulk) Save(ctx context.Context) ([]*WhatsAppTrigger, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WhatsAppTrigger, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WhatsAppTriggerMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *WhatsAppTriggerCreateBulk) SaveX(ctx context.Context) []*WhatsAppTrigger {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WhatsAppTriggerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WhatsAppTriggerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
