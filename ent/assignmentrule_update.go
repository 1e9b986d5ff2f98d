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
	"github.com/leadrouter/crm-backend/ent/assignmentrule"
	"github.com/leadrouter/crm-backend/ent/predicate"
	"github.com/leadrouter/crm-backend/ent/workspace"
)

// AssignmentRuleUpdate is the builder for updating AssignmentRule entities.
type AssignmentRuleUpdate struct {
	config
	hooks    []Hook
	mutation *AssignmentRuleMutation
}

// Where appends a list predicates to the AssignmentRuleUpdate builder.
func (_u *AssignmentRuleUpdate) Where(ps ...predicate.AssignmentRule) *AssignmentRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *AssignmentRuleUpdate) SetWorkspaceID(v int) *AssignmentRuleUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *AssignmentRuleUpdate) SetNillableWorkspaceID(v *int) *AssignmentRuleUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *AssignmentRuleUpdate) SetSource(v string) *AssignmentRuleUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *AssignmentRuleUpdate) SetNillableSource(v *string) *AssignmentRuleUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *AssignmentRuleUpdate) ClearSource() *AssignmentRuleUpdate {
	_u.mutation.ClearSource()
	return _u
}

// SetAssignmentType sets the "assignment_type" field.
func (_u *AssignmentRuleUpdate) SetAssignmentType(v assignmentrule.AssignmentType) *AssignmentRuleUpdate {
	_u.mutation.SetAssignmentType(v)
	return _u
}

// SetNillableAssignmentType sets the "assignment_type" field if the given value is not nil.
func (_u *AssignmentRuleUpdate) SetNillableAssignmentType(v *assignmentrule.AssignmentType) *AssignmentRuleUpdate {
	if v != nil {
		_u.SetAssignmentType(*v)
	}
	return _u
}

// SetAssigneeID sets the "assignee_id" field.
func (_u *AssignmentRuleUpdate) SetAssigneeID(v int) *AssignmentRuleUpdate {
	_u.mutation.ResetAssigneeID()
	_u.mutation.SetAssigneeID(v)
	return _u
}

// SetNillableAssigneeID sets the "assignee_id" field if the given value is not nil.
func (_u *AssignmentRuleUpdate) SetNillableAssigneeID(v *int) *AssignmentRuleUpdate {
	if v != nil {
		_u.SetAssigneeID(*v)
	}
	return _u
}

// AddAssigneeID adds value to the "assignee_id" field.
func (_u *AssignmentRuleUpdate) AddAssigneeID(v int) *AssignmentRuleUpdate {
	_u.mutation.AddAssigneeID(v)
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *AssignmentRuleUpdate) SetPercentage(v int) *AssignmentRuleUpdate {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *AssignmentRuleUpdate) SetNillablePercentage(v *int) *AssignmentRuleUpdate {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *AssignmentRuleUpdate) AddPercentage(v int) *AssignmentRuleUpdate {
	_u.mutation.AddPercentage(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *AssignmentRuleUpdate) SetPriority(v int) *AssignmentRuleUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *AssignmentRuleUpdate) SetNillablePriority(v *int) *AssignmentRuleUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *AssignmentRuleUpdate) AddPriority(v int) *AssignmentRuleUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetIsEnabled sets the "is_enabled" field.
func (_u *AssignmentRuleUpdate) SetIsEnabled(v bool) *AssignmentRuleUpdate {
	_u.mutation.SetIsEnabled(v)
	return _u
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_u *AssignmentRuleUpdate) SetNillableIsEnabled(v *bool) *AssignmentRuleUpdate {
	if v != nil {
		_u.SetIsEnabled(*v)
	}
	return _u
}

// SetLastAssignedAt sets the "last_assigned_at" field.
func (_u *AssignmentRuleUpdate) SetLastAssignedAt(v time.Time) *AssignmentRuleUpdate {
	_u.mutation.SetLastAssignedAt(v)
	return _u
}

// SetNillableLastAssignedAt sets the "last_assigned_at" field if the given value is not nil.
func (_u *AssignmentRuleUpdate) SetNillableLastAssignedAt(v *time.Time) *AssignmentRuleUpdate {
	if v != nil {
		_u.SetLastAssignedAt(*v)
	}
	return _u
}

// ClearLastAssignedAt clears the value of the "last_assigned_at" field.
func (_u *AssignmentRuleUpdate) ClearLastAssignedAt() *AssignmentRuleUpdate {
	_u.mutation.ClearLastAssignedAt()
	return _u
}

// SetAssignmentCount sets the "assignment_count" field.
func (_u *AssignmentRuleUpdate) SetAssignmentCount(v int) *AssignmentRuleUpdate {
	_u.mutation.ResetAssignmentCount()
	_u.mutation.SetAssignmentCount(v)
	return _u
}

// SetNillableAssignmentCount sets the "assignment_count" field if the given value is not nil.
func (_u *AssignmentRuleUpdate) SetNillableAssignmentCount(v *int) *AssignmentRuleUpdate {
	if v != nil {
		_u.SetAssignmentCount(*v)
	}
	return _u
}

// AddAssignmentCount adds value to the "assignment_count" field.
func (_u *AssignmentRuleUpdate) AddAssignmentCount(v int) *AssignmentRuleUpdate {
	_u.mutation.AddAssignmentCount(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *AssignmentRuleUpdate) SetVersion(v int) *AssignmentRuleUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *AssignmentRuleUpdate) SetNillableVersion(v *int) *AssignmentRuleUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *AssignmentRuleUpdate) AddVersion(v int) *AssignmentRuleUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AssignmentRuleUpdate) SetUpdatedAt(v time.Time) *AssignmentRuleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *AssignmentRuleUpdate) SetWorkspace(v *Workspace) *AssignmentRuleUpdate {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the AssignmentRuleMutation object of the builder.
func (_u *AssignmentRuleUpdate) Mutation() *AssignmentRuleMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *AssignmentRuleUpdate) ClearWorkspace() *AssignmentRuleUpdate {
	_u.mutation.ClearWorkspace()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssignmentRuleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssignmentRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssignmentRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssignmentRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AssignmentRuleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := assignmentrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssignmentRuleUpdate) check() error {
	if v, ok := _u.mutation.AssignmentType(); ok {
		if err := assignmentrule.AssignmentTypeValidator(v); err != nil {
			return &ValidationError{Name: "assignment_type", err: fmt.Errorf(`ent: validator failed for field "AssignmentRule.assignment_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssigneeID(); ok {
		if err := assignmentrule.AssigneeIDValidator(v); err != nil {
			return &ValidationError{Name: "assignee_id", err: fmt.Errorf(`ent: validator failed for field "AssignmentRule.assignee_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Percentage(); ok {
		if err := assignmentrule.PercentageValidator(v); err != nil {
			return &ValidationError{Name: "percentage", err: fmt.Errorf(`ent: validator failed for field "AssignmentRule.percentage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssignmentCount(); ok {
		if err := assignmentrule.AssignmentCountValidator(v); err != nil {
			return &ValidationError{Name: "assignment_count", err: fmt.Errorf(`ent: validator failed for field "AssignmentRule.assignment_count": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AssignmentRule.workspace"`)
	}
	return nil
}

func (_u *AssignmentRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assignmentrule.Table, assignmentrule.Columns, sqlgraph.NewFieldSpec(assignmentrule.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(assignmentrule.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(assignmentrule.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.AssignmentType(); ok {
		_spec.SetField(assignmentrule.FieldAssignmentType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssigneeID(); ok {
		_spec.SetField(assignmentrule.FieldAssigneeID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAssigneeID(); ok {
		_spec.AddField(assignmentrule.FieldAssigneeID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(assignmentrule.FieldPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(assignmentrule.FieldPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(assignmentrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(assignmentrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsEnabled(); ok {
		_spec.SetField(assignmentrule.FieldIsEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastAssignedAt(); ok {
		_spec.SetField(assignmentrule.FieldLastAssignedAt, field.TypeTime, value)
	}
	if _u.mutation.LastAssignedAtCleared() {
		_spec.ClearField(assignmentrule.FieldLastAssignedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AssignmentCount(); ok {
		_spec.SetField(assignmentrule.FieldAssignmentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAssignmentCount(); ok {
		_spec.AddField(assignmentrule.FieldAssignmentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(assignmentrule.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(assignmentrule.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(assignmentrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkspaceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkspaceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assignmentrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssignmentRuleUpdateOne is the builder for updating a single AssignmentRule entity.
type AssignmentRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssignmentRuleMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *AssignmentRuleUpdateOne) SetWorkspaceID(v int) *AssignmentRuleUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *AssignmentRuleUpdateOne) SetNillableWorkspaceID(v *int) *AssignmentRuleUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *AssignmentRuleUpdateOne) SetSource(v string) *AssignmentRuleUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *AssignmentRuleUpdateOne) SetNillableSource(v *string) *AssignmentRuleUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *AssignmentRuleUpdateOne) ClearSource() *AssignmentRuleUpdateOne {
	_u.mutation.ClearSource()
	return _u
}

// SetAssignmentType sets the "assignment_type" field.
func (_u *AssignmentRuleUpdateOne) SetAssignmentType(v assignmentrule.AssignmentType) *AssignmentRuleUpdateOne {
	_u.mutation.SetAssignmentType(v)
	return _u
}

// SetNillableAssignmentType sets the "assignment_type" field if the given value is not nil.
func (_u *AssignmentRuleUpdateOne) SetNillableAssignmentType(v *assignmentrule.AssignmentType) *AssignmentRuleUpdateOne {
	if v != nil {
		_u.SetAssignmentType(*v)
	}
	return _u
}

// SetAssigneeID sets the "assignee_id" field.
func (_u *AssignmentRuleUpdateOne) SetAssigneeID(v int) *AssignmentRuleUpdateOne {
	_u.mutation.ResetAssigneeID()
	_u.mutation.SetAssigneeID(v)
	return _u
}

// SetNillableAssigneeID sets the "assignee_id" field if the given value is not nil.
func (_u *AssignmentRuleUpdateOne) SetNillableAssigneeID(v *int) *AssignmentRuleUpdateOne {
	if v != nil {
		_u.SetAssigneeID(*v)
	}
	return _u
}

// AddAssigneeID adds value to the "assignee_id" field.
func (_u *AssignmentRuleUpdateOne) AddAssigneeID(v int) *AssignmentRuleUpdateOne {
	_u.mutation.AddAssigneeID(v)
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *AssignmentRuleUpdateOne) SetPercentage(v int) *AssignmentRuleUpdateOne {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *AssignmentRuleUpdateOne) SetNillablePercentage(v *int) *AssignmentRuleUpdateOne {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *AssignmentRuleUpdateOne) AddPercentage(v int) *AssignmentRuleUpdateOne {
	_u.mutation.AddPercentage(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *AssignmentRuleUpdateOne) SetPriority(v int) *AssignmentRuleUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *AssignmentRuleUpdateOne) SetNillablePriority(v *int) *AssignmentRuleUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *AssignmentRuleUpdateOne) AddPriority(v int) *AssignmentRuleUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetIsEnabled sets the "is_enabled" field.
func (_u *AssignmentRuleUpdateOne) SetIsEnabled(v bool) *AssignmentRuleUpdateOne {
	_u.mutation.SetIsEnabled(v)
	return _u
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_u *AssignmentRuleUpdateOne) SetNillableIsEnabled(v *bool) *AssignmentRuleUpdateOne {
	if v != nil {
		_u.SetIsEnabled(*v)
	}
	return _u
}

// SetLastAssignedAt sets the "last_assigned_at" field.
func (_u *AssignmentRuleUpdateOne) SetLastAssignedAt(v time.Time) *AssignmentRuleUpdateOne {
	_u.mutation.SetLastAssignedAt(v)
	return _u
}

// SetNillableLastAssignedAt sets the "last_assigned_at" field if the given value is not nil.
func (_u *AssignmentRuleUpdateOne) SetNillableLastAssignedAt(v *time.Time) *AssignmentRuleUpdateOne {
	if v != nil {
		_u.SetLastAssignedAt(*v)
	}
	return _u
}

// ClearLastAssignedAt clears the value of the "last_assigned_at" field.
func (_u *AssignmentRuleUpdateOne) ClearLastAssignedAt() *AssignmentRuleUpdateOne {
	_u.mutation.ClearLastAssignedAt()
	return _u
}

// SetAssignmentCount sets the "assignment_count" field.
func (_u *AssignmentRuleUpdateOne) SetAssignmentCount(v int) *AssignmentRuleUpdateOne {
	_u.mutation.ResetAssignmentCount()
	_u.mutation.SetAssignmentCount(v)
	return _u
}

// SetNillableAssignmentCount sets the "assignment_count" field if the given value is not nil.
func (_u *AssignmentRuleUpdateOne) SetNillableAssignmentCount(v *int) *AssignmentRuleUpdateOne {
	if v != nil {
		_u.SetAssignmentCount(*v)
	}
	return _u
}

// AddAssignmentCount adds value to the "assignment_count" field.
func (_u *AssignmentRuleUpdateOne) AddAssignmentCount(v int) *AssignmentRuleUpdateOne {
	_u.mutation.AddAssignmentCount(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *AssignmentRuleUpdateOne) SetVersion(v int) *AssignmentRuleUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *AssignmentRuleUpdateOne) SetNillableVersion(v *int) *AssignmentRuleUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *AssignmentRuleUpdateOne) AddVersion(v int) *AssignmentRuleUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AssignmentRuleUpdateOne) SetUpdatedAt(v time.Time) *AssignmentRuleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *AssignmentRuleUpdateOne) SetWorkspace(v *Workspace) *AssignmentRuleUpdateOne {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the AssignmentRuleMutation object of the builder.
func (_u *AssignmentRuleUpdateOne) Mutation() *AssignmentRuleMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *AssignmentRuleUpdateOne) ClearWorkspace() *AssignmentRuleUpdateOne {
	_u.mutation.ClearWorkspace()
	return _u
}

// Where appends a list predicates to the AssignmentRuleUpdate builder.
func (_u *AssignmentRuleUpdateOne) Where(ps ...predicate.AssignmentRule) *AssignmentRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssignmentRuleUpdateOne) Select(field string, fields ...string) *AssignmentRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssignmentRule entity.
func (_u *AssignmentRuleUpdateOne) Save(ctx context.Context) (*AssignmentRule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssignmentRuleUpdateOne) SaveX(ctx context.Context) *AssignmentRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssignmentRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssignmentRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AssignmentRuleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := assignmentrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssignmentRuleUpdateOne) check() error {
	if v, ok := _u.mutation.AssignmentType(); ok {
		if err := assignmentrule.AssignmentTypeValidator(v); err != nil {
			return &ValidationError{Name: "assignment_type", err: fmt.Errorf(`ent: validator failed for field "AssignmentRule.assignment_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssigneeID(); ok {
		if err := assignmentrule.AssigneeIDValidator(v); err != nil {
			return &ValidationError{Name: "assignee_id", err: fmt.Errorf(`ent: validator failed for field "AssignmentRule.assignee_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Percentage(); ok {
		if err := assignmentrule.PercentageValidator(v); err != nil {
			return &ValidationError{Name: "percentage", err: fmt.Errorf(`ent: validator failed for field "AssignmentRule.percentage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssignmentCount(); ok {
		if err := assignmentrule.AssignmentCountValidator(v); err != nil {
			return &ValidationError{Name: "assignment_count", err: fmt.Errorf(`ent: validator failed for field "AssignmentRule.assignment_count": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AssignmentRule.workspace"`)
	}
	return nil
}

func (_u *AssignmentRuleUpdateOne) sqlSave(ctx context.Context) (_node *AssignmentRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assignmentrule.Table, assignmentrule.Columns, sqlgraph.NewFieldSpec(assignmentrule.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssignmentRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assignmentrule.FieldID)
		for _, f := range fields {
			if !assignmentrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assignmentrule.FieldID {
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
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(assignmentrule.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(assignmentrule.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.AssignmentType(); ok {
		_spec.SetField(assignmentrule.FieldAssignmentType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssigneeID(); ok {
		_spec.SetField(assignmentrule.FieldAssigneeID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAssigneeID(); ok {
		_spec.AddField(assignmentrule.FieldAssigneeID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(assignmentrule.FieldPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(assignmentrule.FieldPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(assignmentrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(assignmentrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsEnabled(); ok {
		_spec.SetField(assignmentrule.FieldIsEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastAssignedAt(); ok {
		_spec.SetField(assignmentrule.FieldLastAssignedAt, field.TypeTime, value)
	}
	if _u.mutation.LastAssignedAtCleared() {
		_spec.ClearField(assignmentrule.FieldLastAssignedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AssignmentCount(); ok {
		_spec.SetField(assignmentrule.FieldAssignmentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAssignmentCount(); ok {
		_spec.AddField(assignmentrule.FieldAssignmentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(assignmentrule.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(assignmentrule.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(assignmentrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkspaceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkspaceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AssignmentRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assignmentrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
