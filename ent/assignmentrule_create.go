// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/leadrouter/crm-backend/ent/assignmentrule"
	"github.com/leadrouter/crm-backend/ent/workspace"
)

// AssignmentRuleCreate is the builder for creating a AssignmentRule entity.
type AssignmentRuleCreate struct {
	config
	mutation *AssignmentRuleMutation
	hooks    []Hook
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *AssignmentRuleCreate) SetWorkspaceID(v int) *AssignmentRuleCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *AssignmentRuleCreate) SetSource(v string) *AssignmentRuleCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *AssignmentRuleCreate) SetNillableSource(v *string) *AssignmentRuleCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetAssignmentType sets the "assignment_type" field.
func (_c *AssignmentRuleCreate) SetAssignmentType(v assignmentrule.AssignmentType) *AssignmentRuleCreate {
	_c.mutation.SetAssignmentType(v)
	return _c
}

// SetAssigneeID sets the "assignee_id" field.
func (_c *AssignmentRuleCreate) SetAssigneeID(v int) *AssignmentRuleCreate {
	_c.mutation.SetAssigneeID(v)
	return _c
}

// SetPercentage sets the "percentage" field.
func (_c *AssignmentRuleCreate) SetPercentage(v int) *AssignmentRuleCreate {
	_c.mutation.SetPercentage(v)
	return _c
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_c *AssignmentRuleCreate) SetNillablePercentage(v *int) *AssignmentRuleCreate {
	if v != nil {
		_c.SetPercentage(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *AssignmentRuleCreate) SetPriority(v int) *AssignmentRuleCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *AssignmentRuleCreate) SetNillablePriority(v *int) *AssignmentRuleCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetIsEnabled sets the "is_enabled" field.
func (_c *AssignmentRuleCreate) SetIsEnabled(v bool) *AssignmentRuleCreate {
	_c.mutation.SetIsEnabled(v)
	return _c
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_c *AssignmentRuleCreate) SetNillableIsEnabled(v *bool) *AssignmentRuleCreate {
	if v != nil {
		_c.SetIsEnabled(*v)
	}
	return _c
}

// SetLastAssignedAt sets the "last_assigned_at" field.
func (_c *AssignmentRuleCreate) SetLastAssignedAt(v time.Time) *AssignmentRuleCreate {
	_c.mutation.SetLastAssignedAt(v)
	return _c
}

// SetNillableLastAssignedAt sets the "last_assigned_at" field if the given value is not nil.
func (_c *AssignmentRuleCreate) SetNillableLastAssignedAt(v *time.Time) *AssignmentRuleCreate {
	if v != nil {
		_c.SetLastAssignedAt(*v)
	}
	return _c
}

// SetAssignmentCount sets the "assignment_count" field.
func (_c *AssignmentRuleCreate) SetAssignmentCount(v int) *AssignmentRuleCreate {
	_c.mutation.SetAssignmentCount(v)
	return _c
}

// SetNillableAssignmentCount sets the "assignment_count" field if the given value is not nil.
func (_c *AssignmentRuleCreate) SetNillableAssignmentCount(v *int) *AssignmentRuleCreate {
	if v != nil {
		_c.SetAssignmentCount(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *AssignmentRuleCreate) SetVersion(v int) *AssignmentRuleCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *AssignmentRuleCreate) SetNillableVersion(v *int) *AssignmentRuleCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AssignmentRuleCreate) SetCreatedAt(v time.Time) *AssignmentRuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AssignmentRuleCreate) SetNillableCreatedAt(v *time.Time) *AssignmentRuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AssignmentRuleCreate) SetUpdatedAt(v time.Time) *AssignmentRuleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AssignmentRuleCreate) SetNillableUpdatedAt(v *time.Time) *AssignmentRuleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_c *AssignmentRuleCreate) SetWorkspace(v *Workspace) *AssignmentRuleCreate {
	return _c.SetWorkspaceID(v.ID)
}

// Mutation returns the AssignmentRuleMutation object of the builder.
func (_c *AssignmentRuleCreate) Mutation() *AssignmentRuleMutation {
	return _c.mutation
}

// Save creates the AssignmentRule in the database.
func (_c *AssignmentRuleCreate) Save(ctx context.Context) (*AssignmentRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssignmentRuleCreate) SaveX(ctx context.Context) *AssignmentRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssignmentRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssignmentRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssignmentRuleCreate) defaults() {
	if _, ok := _c.mutation.Percentage(); !ok {
		v := assignmentrule.DefaultPercentage
		_c.mutation.SetPercentage(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := assignmentrule.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.IsEnabled(); !ok {
		v := assignmentrule.DefaultIsEnabled
		_c.mutation.SetIsEnabled(v)
	}
	if _, ok := _c.mutation.AssignmentCount(); !ok {
		v := assignmentrule.DefaultAssignmentCount
		_c.mutation.SetAssignmentCount(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := assignmentrule.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := assignmentrule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := assignmentrule.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssignmentRuleCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "AssignmentRule.workspace_id"`)}
	}
	if _, ok := _c.mutation.AssignmentType(); !ok {
		return &ValidationError{Name: "assignment_type", err: errors.New(`ent: missing required field "AssignmentRule.assignment_type"`)}
	}
	if v, ok := _c.mutation.AssignmentType(); ok {
		if err := assignmentrule.AssignmentTypeValidator(v); err != nil {
			return &ValidationError{Name: "assignment_type", err: fmt.Errorf(`ent: validator failed for field "AssignmentRule.assignment_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssigneeID(); !ok {
		return &ValidationError{Name: "assignee_id", err: errors.New(`ent: missing required field "AssignmentRule.assignee_id"`)}
	}
	if v, ok := _c.mutation.AssigneeID(); ok {
		if err := assignmentrule.AssigneeIDValidator(v); err != nil {
			return &ValidationError{Name: "assignee_id", err: fmt.Errorf(`ent: validator failed for field "AssignmentRule.assignee_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Percentage(); !ok {
		return &ValidationError{Name: "percentage", err: errors.New(`ent: missing required field "AssignmentRule.percentage"`)}
	}
	if v, ok := _c.mutation.Percentage(); ok {
		if err := assignmentrule.PercentageValidator(v); err != nil {
			return &ValidationError{Name: "percentage", err: fmt.Errorf(`ent: validator failed for field "AssignmentRule.percentage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "AssignmentRule.priority"`)}
	}
	if _, ok := _c.mutation.IsEnabled(); !ok {
		return &ValidationError{Name: "is_enabled", err: errors.New(`ent: missing required field "AssignmentRule.is_enabled"`)}
	}
	if _, ok := _c.mutation.AssignmentCount(); !ok {
		return &ValidationError{Name: "assignment_count", err: errors.New(`ent: missing required field "AssignmentRule.assignment_count"`)}
	}
	if v, ok := _c.mutation.AssignmentCount(); ok {
		if err := assignmentrule.AssignmentCountValidator(v); err != nil {
			return &ValidationError{Name: "assignment_count", err: fmt.Errorf(`ent: validator failed for field "AssignmentRule.assignment_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "AssignmentRule.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AssignmentRule.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AssignmentRule.updated_at"`)}
	}
	if len(_c.mutation.WorkspaceIDs()) == 0 {
		return &ValidationError{Name: "workspace", err: errors.New(`ent: missing required edge "AssignmentRule.workspace"`)}
	}
	return nil
}

func (_c *AssignmentRuleCreate) sqlSave(ctx context.Context) (*AssignmentRule, error) {
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

func (_c *AssignmentRuleCreate) createSpec() (*AssignmentRule, *sqlgraph.CreateSpec) {
	var (
		_node = &AssignmentRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assignmentrule.Table, sqlgraph.NewFieldSpec(assignmentrule.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(assignmentrule.FieldSource, field.TypeString, value)
		_node.Source = &value
	}
	if value, ok := _c.mutation.AssignmentType(); ok {
		_spec.SetField(assignmentrule.FieldAssignmentType, field.TypeEnum, value)
		_node.AssignmentType = value
	}
	if value, ok := _c.mutation.AssigneeID(); ok {
		_spec.SetField(assignmentrule.FieldAssigneeID, field.TypeInt, value)
		_node.AssigneeID = value
	}
	if value, ok := _c.mutation.Percentage(); ok {
		_spec.SetField(assignmentrule.FieldPercentage, field.TypeInt, value)
		_node.Percentage = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(assignmentrule.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.IsEnabled(); ok {
		_spec.SetField(assignmentrule.FieldIsEnabled, field.TypeBool, value)
		_node.IsEnabled = value
	}
	if value, ok := _c.mutation.LastAssignedAt(); ok {
		_spec.SetField(assignmentrule.FieldLastAssignedAt, field.TypeTime, value)
		_node.LastAssignedAt = &value
	}
	if value, ok := _c.mutation.AssignmentCount(); ok {
		_spec.SetField(assignmentrule.FieldAssignmentCount, field.TypeInt, value)
		_node.AssignmentCount = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(assignmentrule.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(assignmentrule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(assignmentrule.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.WorkspaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assignmentrule.WorkspaceTable,
			Columns: []string{assignmentrule.WorkspaceColumn},
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

// AssignmentRuleCreateBulk is the builder for creating many AssignmentRule entities in bulk.
type AssignmentRuleCreateBulk struct {
	config
	err      error
	builders []*AssignmentRuleCreate
}

// Save creates the AssignmentRule entities in the database.
func (_c *AssignmentRuleCreateBulk) Save(ctx context.Context) ([]*AssignmentRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssignmentRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssignmentRuleMutation)
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
func (_c *AssignmentRuleCreateBulk) SaveX(ctx context.Context) []*AssignmentRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssignmentRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssignmentRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
