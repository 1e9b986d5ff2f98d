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
	"github.com/leadrouter/crm-backend/ent/predicate"
	"github.com/leadrouter/crm-backend/ent/whatsapptrigger"
	"github.com/leadrouter/crm-backend/ent/workspace"
)

// WhatsAppTriggerUpdate is the builder for updating WhatsAppTrigger entities.
type WhatsAppTriggerUpdate struct {
	config
	hooks    []Hook
	mutation *WhatsAppTriggerMutation
}

// Where appends a list predicates to the WhatsAppTriggerUpdate builder.
func (_u *WhatsAppTriggerUpdate) Where(ps ...predicate.WhatsAppTrigger) *WhatsAppTriggerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *WhatsAppTriggerUpdate) SetWorkspaceID(v int) *WhatsAppTriggerUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *WhatsAppTriggerUpdate) SetNillableWorkspaceID(v *int) *WhatsAppTriggerUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WhatsAppTriggerUpdate) SetStatus(v string) *WhatsAppTriggerUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WhatsAppTriggerUpdate) SetNillableStatus(v *string) *WhatsAppTriggerUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIsEnabled sets the "is_enabled" field.
func (_u *WhatsAppTriggerUpdate) SetIsEnabled(v bool) *WhatsAppTriggerUpdate {
	_u.mutation.SetIsEnabled(v)
	return _u
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_u *WhatsAppTriggerUpdate) SetNillableIsEnabled(v *bool) *WhatsAppTriggerUpdate {
	if v != nil {
		_u.SetIsEnabled(*v)
	}
	return _u
}

// SetCampaignName sets the "campaign_name" field.
func (_u *WhatsAppTriggerUpdate) SetCampaignName(v string) *WhatsAppTriggerUpdate {
	_u.mutation.SetCampaignName(v)
	return _u
}

// SetNillableCampaignName sets the "campaign_name" field if the given value is not nil.
func (_u *WhatsAppTriggerUpdate) SetNillableCampaignName(v *string) *WhatsAppTriggerUpdate {
	if v != nil {
		_u.SetCampaignName(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *WhatsAppTriggerUpdate) SetSource(v string) *WhatsAppTriggerUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *WhatsAppTriggerUpdate) SetNillableSource(v *string) *WhatsAppTriggerUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetTemplateParams sets the "template_params" field.
func (_u *WhatsAppTriggerUpdate) SetTemplateParams(v string) *WhatsAppTriggerUpdate {
	_u.mutation.SetTemplateParams(v)
	return _u
}

// SetNillableTemplateParams sets the "template_params" field if the given value is not nil.
func (_u *WhatsAppTriggerUpdate) SetNillableTemplateParams(v *string) *WhatsAppTriggerUpdate {
	if v != nil {
		_u.SetTemplateParams(*v)
	}
	return _u
}

// SetParamsFallback sets the "params_fallback" field.
func (_u *WhatsAppTriggerUpdate) SetParamsFallback(v string) *WhatsAppTriggerUpdate {
	_u.mutation.SetParamsFallback(v)
	return _u
}

// SetNillableParamsFallback sets the "params_fallback" field if the given value is not nil.
func (_u *WhatsAppTriggerUpdate) SetNillableParamsFallback(v *string) *WhatsAppTriggerUpdate {
	if v != nil {
		_u.SetParamsFallback(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WhatsAppTriggerUpdate) SetUpdatedAt(v time.Time) *WhatsAppTriggerUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *WhatsAppTriggerUpdate) SetWorkspace(v *Workspace) *WhatsAppTriggerUpdate {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the WhatsAppTriggerMutation object of the builder.
func (_u *WhatsAppTriggerUpdate) Mutation() *WhatsAppTriggerMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *WhatsAppTriggerUpdate) ClearWorkspace() *WhatsAppTriggerUpdate {
	_u.mutation.ClearWorkspace()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WhatsAppTriggerUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WhatsAppTriggerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WhatsAppTriggerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WhatsAppTriggerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WhatsAppTriggerUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := whatsapptrigger.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WhatsAppTriggerUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := whatsapptrigger.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WhatsAppTrigger.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CampaignName(); ok {
		if err := whatsapptrigger.CampaignNameValidator(v); err != nil {
			return &ValidationError{Name: "campaign_name", err: fmt.Errorf(`ent: validator failed for field "WhatsAppTrigger.campaign_name": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WhatsAppTrigger.workspace"`)
	}
	return nil
}

func (_u *WhatsAppTriggerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(whatsapptrigger.Table, whatsapptrigger.Columns, sqlgraph.NewFieldSpec(whatsapptrigger.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(whatsapptrigger.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsEnabled(); ok {
		_spec.SetField(whatsapptrigger.FieldIsEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CampaignName(); ok {
		_spec.SetField(whatsapptrigger.FieldCampaignName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(whatsapptrigger.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.TemplateParams(); ok {
		_spec.SetField(whatsapptrigger.FieldTemplateParams, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParamsFallback(); ok {
		_spec.SetField(whatsapptrigger.FieldParamsFallback, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(whatsapptrigger.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkspaceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkspaceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{whatsapptrigger.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WhatsAppTriggerUpdateOne is the builder for updating a single WhatsAppTrigger entity.
type WhatsAppTriggerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WhatsAppTriggerMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *WhatsAppTriggerUpdateOne) SetWorkspaceID(v int) *WhatsAppTriggerUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *WhatsAppTriggerUpdateOne) SetNillableWorkspaceID(v *int) *WhatsAppTriggerUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WhatsAppTriggerUpdateOne) SetStatus(v string) *WhatsAppTriggerUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WhatsAppTriggerUpdateOne) SetNillableStatus(v *string) *WhatsAppTriggerUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIsEnabled sets the "is_enabled" field.
func (_u *WhatsAppTriggerUpdateOne) SetIsEnabled(v bool) *WhatsAppTriggerUpdateOne {
	_u.mutation.SetIsEnabled(v)
	return _u
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_u *WhatsAppTriggerUpdateOne) SetNillableIsEnabled(v *bool) *WhatsAppTriggerUpdateOne {
	if v != nil {
		_u.SetIsEnabled(*v)
	}
	return _u
}

// SetCampaignName sets the "campaign_name" field.
func (_u *WhatsAppTriggerUpdateOne) SetCampaignName(v string) *WhatsAppTriggerUpdateOne {
	_u.mutation.SetCampaignName(v)
	return _u
}

// SetNillableCampaignName sets the "campaign_name" field if the given value is not nil.
func (_u *WhatsAppTriggerUpdateOne) SetNillableCampaignName(v *string) *WhatsAppTriggerUpdateOne {
	if v != nil {
		_u.SetCampaignName(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *WhatsAppTriggerUpdateOne) SetSource(v string) *WhatsAppTriggerUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *WhatsAppTriggerUpdateOne) SetNillableSource(v *string) *WhatsAppTriggerUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetTemplateParams sets the "template_params" field.
func (_u *WhatsAppTriggerUpdateOne) SetTemplateParams(v string) *WhatsAppTriggerUpdateOne {
	_u.mutation.SetTemplateParams(v)
	return _u
}

// SetNillableTemplateParams sets the "template_params" field if the given value is not nil.
func (_u *WhatsAppTriggerUpdateOne) SetNillableTemplateParams(v *string) *WhatsAppTriggerUpdateOne {
	if v != nil {
		_u.SetTemplateParams(*v)
	}
	return _u
}

// SetParamsFallback sets the "params_fallback" field.
func (_u *WhatsAppTriggerUpdateOne) SetParamsFallback(v string) *WhatsAppTriggerUpdateOne {
	_u.mutation.SetParamsFallback(v)
	return _u
}

// SetNillableParamsFallback sets the "params_fallback" field if the given value is not nil.
func (_u *WhatsAppTriggerUpdateOne) SetNillableParamsFallback(v *string) *WhatsAppTriggerUpdateOne {
	if v != nil {
		_u.SetParamsFallback(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WhatsAppTriggerUpdateOne) SetUpdatedAt(v time.Time) *WhatsAppTriggerUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *WhatsAppTriggerUpdateOne) SetWorkspace(v *Workspace) *WhatsAppTriggerUpdateOne {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the WhatsAppTriggerMutation object of the builder.
func (_u *WhatsAppTriggerUpdateOne) Mutation() *WhatsAppTriggerMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *WhatsAppTriggerUpdateOne) ClearWorkspace() *WhatsAppTriggerUpdateOne {
	_u.mutation.ClearWorkspace()
	return _u
}

// Where appends a list predicates to the WhatsAppTriggerUpdate builder.
func (_u *WhatsAppTriggerUpdateOne) Where(ps ...predicate.WhatsAppTrigger) *WhatsAppTriggerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WhatsAppTriggerUpdateOne) Select(field string, fields ...string) *WhatsAppTriggerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WhatsAppTrigger entity.
func (_u *WhatsAppTriggerUpdateOne) Save(ctx context.Context) (*WhatsAppTrigger, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WhatsAppTriggerUpdateOne) SaveX(ctx context.Context) *WhatsAppTrigger {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WhatsAppTriggerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WhatsAppTriggerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WhatsAppTriggerUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := whatsapptrigger.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WhatsAppTriggerUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := whatsapptrigger.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WhatsAppTrigger.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CampaignName(); ok {
		if err := whatsapptrigger.CampaignNameValidator(v); err != nil {
			return &ValidationError{Name: "campaign_name", err: fmt.Errorf(`ent: validator failed for field "WhatsAppTrigger.campaign_name": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WhatsAppTrigger.workspace"`)
	}
	return nil
}

func (_u *WhatsAppTriggerUpdateOne) sqlSave(ctx context.Context) (_node *WhatsAppTrigger, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(whatsapptrigger.Table, whatsapptrigger.Columns, sqlgraph.NewFieldSpec(whatsapptrigger.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WhatsAppTrigger.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, whatsapptrigger.FieldID)
		for _, f := range fields {
			if !whatsapptrigger.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != whatsapptrigger.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(whatsapptrigger.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsEnabled(); ok {
		_spec.SetField(whatsapptrigger.FieldIsEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CampaignName(); ok {
		_spec.SetField(whatsapptrigger.FieldCampaignName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(whatsapptrigger.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.TemplateParams(); ok {
		_spec.SetField(whatsapptrigger.FieldTemplateParams, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParamsFallback(); ok {
		_spec.SetField(whatsapptrigger.FieldParamsFallback, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(whatsapptrigger.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkspaceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkspaceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WhatsAppTrigger{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{whatsapptrigger.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
