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
	"github.com/leadrouter/crm-backend/ent/activity"
	"github.com/leadrouter/crm-backend/ent/assignmentrule"
	"github.com/leadrouter/crm-backend/ent/lead"
	"github.com/leadrouter/crm-backend/ent/predicate"
	"github.com/leadrouter/crm-backend/ent/whatsapptrigger"
	"github.com/leadrouter/crm-backend/ent/workspace"
	"github.com/leadrouter/crm-backend/ent/workspacemember"
)

// WorkspaceUpdate is the builder for updating Workspace entities.
type WorkspaceUpdate struct {
	config
	hooks    []Hook
	mutation *WorkspaceMutation
}

// Where appends a list predicates to the WorkspaceUpdate builder.
func (_u *WorkspaceUpdate) Where(ps ...predicate.Workspace) *WorkspaceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *WorkspaceUpdate) SetName(v string) *WorkspaceUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WorkspaceUpdate) SetNillableName(v *string) *WorkspaceUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetWebhookSecret sets the "webhook_secret" field.
func (_u *WorkspaceUpdate) SetWebhookSecret(v string) *WorkspaceUpdate {
	_u.mutation.SetWebhookSecret(v)
	return _u
}

// SetNillableWebhookSecret sets the "webhook_secret" field if the given value is not nil.
func (_u *WorkspaceUpdate) SetNillableWebhookSecret(v *string) *WorkspaceUpdate {
	if v != nil {
		_u.SetWebhookSecret(*v)
	}
	return _u
}

// SetDefaultCountryCode sets the "default_country_code" field.
func (_u *WorkspaceUpdate) SetDefaultCountryCode(v string) *WorkspaceUpdate {
	_u.mutation.SetDefaultCountryCode(v)
	return _u
}

// SetNillableDefaultCountryCode sets the "default_country_code" field if the given value is not nil.
func (_u *WorkspaceUpdate) SetNillableDefaultCountryCode(v *string) *WorkspaceUpdate {
	if v != nil {
		_u.SetDefaultCountryCode(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkspaceUpdate) SetUpdatedAt(v time.Time) *WorkspaceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMemberIDs adds the "members" edge to the WorkspaceMember entity by IDs.
func (_u *WorkspaceUpdate) AddMemberIDs(ids ...int) *WorkspaceUpdate {
	_u.mutation.AddMemberIDs(ids...)
	return _u
}

// AddMembers adds the "members" edges to the WorkspaceMember entity.
func (_u *WorkspaceUpdate) AddMembers(v ...*WorkspaceMember) *WorkspaceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMemberIDs(ids...)
}

// AddLeadIDs adds the "leads" edge to the Lead entity by IDs.
func (_u *WorkspaceUpdate) AddLeadIDs(ids ...int) *WorkspaceUpdate {
	_u.mutation.AddLeadIDs(ids...)
	return _u
}

// AddLeads adds the "leads" edges to the Lead entity.
func (_u *WorkspaceUpdate) AddLeads(v ...*Lead) *WorkspaceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLeadIDs(ids...)
}

// AddAssignmentRuleIDs adds the "assignment_rules" edge to the AssignmentRule entity by IDs.
func (_u *WorkspaceUpdate) AddAssignmentRuleIDs(ids ...int) *WorkspaceUpdate {
	_u.mutation.AddAssignmentRuleIDs(ids...)
	return _u
}

// AddAssignmentRules adds the "assignment_rules" edges to the AssignmentRule entity.
func (_u *WorkspaceUpdate) AddAssignmentRules(v ...*AssignmentRule) *WorkspaceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignmentRuleIDs(ids...)
}

// AddWhatsappTriggerIDs adds the "whatsapp_triggers" edge to the WhatsAppTrigger entity by IDs.
func (_u *WorkspaceUpdate) AddWhatsappTriggerIDs(ids ...int) *WorkspaceUpdate {
	_u.mutation.AddWhatsappTriggerIDs(ids...)
	return _u
}

// AddWhatsappTriggers adds the "whatsapp_triggers" edges to the WhatsAppTrigger entity.
func (_u *WorkspaceUpdate) AddWhatsappTriggers(v ...*WhatsAppTrigger) *WorkspaceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWhatsappTriggerIDs(ids...)
}

// AddActivityIDs adds the "activities" edge to the Activity entity by IDs.
func (_u *WorkspaceUpdate) AddActivityIDs(ids ...int) *WorkspaceUpdate {
	_u.mutation.AddActivityIDs(ids...)
	return _u
}

// AddActivities adds the "activities" edges to the Activity entity.
func (_u *WorkspaceUpdate) AddActivities(v ...*Activity) *WorkspaceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActivityIDs(ids...)
}

// Mutation returns the WorkspaceMutation object of the builder.
func (_u *WorkspaceUpdate) Mutation() *WorkspaceMutation {
	return _u.mutation
}

// ClearMembers clears all "members" edges to the WorkspaceMember entity.
func (_u *WorkspaceUpdate) ClearMembers() *WorkspaceUpdate {
	_u.mutation.ClearMembers()
	return _u
}

// RemoveMemberIDs removes the "members" edge to WorkspaceMember entities by IDs.
func (_u *WorkspaceUpdate) RemoveMemberIDs(ids ...int) *WorkspaceUpdate {
	_u.mutation.RemoveMemberIDs(ids...)
	return _u
}

// RemoveMembers removes "members" edges to WorkspaceMember entities.
func (_u *WorkspaceUpdate) RemoveMembers(v ...*WorkspaceMember) *WorkspaceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMemberIDs(ids...)
}

// ClearLeads clears all "leads" edges to the Lead entity.
func (_u *WorkspaceUpdate) ClearLeads() *WorkspaceUpdate {
	_u.mutation.ClearLeads()
	return _u
}

// RemoveLeadIDs removes the "leads" edge to Lead entities by IDs.
func (_u *WorkspaceUpdate) RemoveLeadIDs(ids ...int) *WorkspaceUpdate {
	_u.mutation.RemoveLeadIDs(ids...)
	return _u
}

// RemoveLeads removes "leads" edges to Lead entities.
func (_u *WorkspaceUpdate) RemoveLeads(v ...*Lead) *WorkspaceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLeadIDs(ids...)
}

// ClearAssignmentRules clears all "assignment_rules" edges to the AssignmentRule entity.
func (_u *WorkspaceUpdate) ClearAssignmentRules() *WorkspaceUpdate {
	_u.mutation.ClearAssignmentRules()
	return _u
}

// RemoveAssignmentRuleIDs removes the "assignment_rules" edge to AssignmentRule entities by IDs.
func (_u *WorkspaceUpdate) RemoveAssignmentRuleIDs(ids ...int) *WorkspaceUpdate {
	_u.mutation.RemoveAssignmentRuleIDs(ids...)
	return _u
}

// RemoveAssignmentRules removes "assignment_rules" edges to AssignmentRule entities.
func (_u *WorkspaceUpdate) RemoveAssignmentRules(v ...*AssignmentRule) *WorkspaceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignmentRuleIDs(ids...)
}

// ClearWhatsappTriggers clears all "whatsapp_triggers" edges to the WhatsAppTrigger entity.
func (_u *WorkspaceUpdate) ClearWhatsappTriggers() *WorkspaceUpdate {
	_u.mutation.ClearWhatsappTriggers()
	return _u
}

// RemoveWhatsappTriggerIDs removes the "whatsapp_triggers" edge to WhatsAppTrigger entities by IDs.
func (_u *WorkspaceUpdate) RemoveWhatsappTriggerIDs(ids ...int) *WorkspaceUpdate {
	_u.mutation.RemoveWhatsappTriggerIDs(ids...)
	return _u
}

// RemoveWhatsappTriggers removes "whatsapp_triggers" edges to WhatsAppTrigger entities.
func (_u *WorkspaceUpdate) RemoveWhatsappTriggers(v ...*WhatsAppTrigger) *WorkspaceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWhatsappTriggerIDs(ids...)
}

// ClearActivities clears all "activities" edges to the Activity entity.
func (_u *WorkspaceUpdate) ClearActivities() *WorkspaceUpdate {
	_u.mutation.ClearActivities()
	return _u
}

// RemoveActivityIDs removes the "activities" edge to Activity entities by IDs.
func (_u *WorkspaceUpdate) RemoveActivityIDs(ids ...int) *WorkspaceUpdate {
	_u.mutation.RemoveActivityIDs(ids...)
	return _u
}

// RemoveActivities removes "activities" edges to Activity entities.
func (_u *WorkspaceUpdate) RemoveActivities(v ...*Activity) *WorkspaceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActivityIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkspaceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkspaceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkspaceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkspaceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkspaceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workspace.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkspaceUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := workspace.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Workspace.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WebhookSecret(); ok {
		if err := workspace.WebhookSecretValidator(v); err != nil {
			return &ValidationError{Name: "webhook_secret", err: fmt.Errorf(`ent: validator failed for field "Workspace.webhook_secret": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkspaceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workspace.Table, workspace.Columns, sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(workspace.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.WebhookSecret(); ok {
		_spec.SetField(workspace.FieldWebhookSecret, field.TypeString, value)
	}
	if value, ok := _u.mutation.DefaultCountryCode(); ok {
		_spec.SetField(workspace.FieldDefaultCountryCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workspace.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MembersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.MembersTable,
			Columns: []string{workspace.MembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspacemember.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMembersIDs(); len(nodes) > 0 && !_u.mutation.MembersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.MembersTable,
			Columns: []string{workspace.MembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspacemember.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MembersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.MembersTable,
			Columns: []string{workspace.MembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspacemember.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LeadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.LeadsTable,
			Columns: []string{workspace.LeadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLeadsIDs(); len(nodes) > 0 && !_u.mutation.LeadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.LeadsTable,
			Columns: []string{workspace.LeadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.LeadsTable,
			Columns: []string{workspace.LeadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssignmentRulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.AssignmentRulesTable,
			Columns: []string{workspace.AssignmentRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignmentrule.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssignmentRulesIDs(); len(nodes) > 0 && !_u.mutation.AssignmentRulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.AssignmentRulesTable,
			Columns: []string{workspace.AssignmentRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignmentrule.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentRulesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.AssignmentRulesTable,
			Columns: []string{workspace.AssignmentRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignmentrule.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WhatsappTriggersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.WhatsappTriggersTable,
			Columns: []string{workspace.WhatsappTriggersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(whatsapptrigger.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWhatsappTriggersIDs(); len(nodes) > 0 && !_u.mutation.WhatsappTriggersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.WhatsappTriggersTable,
			Columns: []string{workspace.WhatsappTriggersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(whatsapptrigger.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WhatsappTriggersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.WhatsappTriggersTable,
			Columns: []string{workspace.WhatsappTriggersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(whatsapptrigger.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ActivitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.ActivitiesTable,
			Columns: []string{workspace.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActivitiesIDs(); len(nodes) > 0 && !_u.mutation.ActivitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.ActivitiesTable,
			Columns: []string{workspace.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActivitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.ActivitiesTable,
			Columns: []string{workspace.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workspace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkspaceUpdateOne is the builder for updating a single Workspace entity.
type WorkspaceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkspaceMutation
}

// SetName sets the "name" field.
func (_u *WorkspaceUpdateOne) SetName(v string) *WorkspaceUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WorkspaceUpdateOne) SetNillableName(v *string) *WorkspaceUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetWebhookSecret sets the "webhook_secret" field.
func (_u *WorkspaceUpdateOne) SetWebhookSecret(v string) *WorkspaceUpdateOne {
	_u.mutation.SetWebhookSecret(v)
	return _u
}

// SetNillableWebhookSecret sets the "webhook_secret" field if the given value is not nil.
func (_u *WorkspaceUpdateOne) SetNillableWebhookSecret(v *string) *WorkspaceUpdateOne {
	if v != nil {
		_u.SetWebhookSecret(*v)
	}
	return _u
}

// SetDefaultCountryCode sets the "default_country_code" field.
func (_u *WorkspaceUpdateOne) SetDefaultCountryCode(v string) *WorkspaceUpdateOne {
	_u.mutation.SetDefaultCountryCode(v)
	return _u
}

// SetNillableDefaultCountryCode sets the "default_country_code" field if the given value is not nil.
func (_u *WorkspaceUpdateOne) SetNillableDefaultCountryCode(v *string) *WorkspaceUpdateOne {
	if v != nil {
		_u.SetDefaultCountryCode(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkspaceUpdateOne) SetUpdatedAt(v time.Time) *WorkspaceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMemberIDs adds the "members" edge to the WorkspaceMember entity by IDs.
func (_u *WorkspaceUpdateOne) AddMemberIDs(ids ...int) *WorkspaceUpdateOne {
	_u.mutation.AddMemberIDs(ids...)
	return _u
}

// AddMembers adds the "members" edges to the WorkspaceMember entity.
func (_u *WorkspaceUpdateOne) AddMembers(v ...*WorkspaceMember) *WorkspaceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMemberIDs(ids...)
}

// AddLeadIDs adds the "leads" edge to the Lead entity by IDs.
func (_u *WorkspaceUpdateOne) AddLeadIDs(ids ...int) *WorkspaceUpdateOne {
	_u.mutation.AddLeadIDs(ids...)
	return _u
}

// AddLeads adds the "leads" edges to the Lead entity.
func (_u *WorkspaceUpdateOne) AddLeads(v ...*Lead) *WorkspaceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLeadIDs(ids...)
}

// AddAssignmentRuleIDs adds the "assignment_rules" edge to the AssignmentRule entity by IDs.
func (_u *WorkspaceUpdateOne) AddAssignmentRuleIDs(ids ...int) *WorkspaceUpdateOne {
	_u.mutation.AddAssignmentRuleIDs(ids...)
	return _u
}

// AddAssignmentRules adds the "assignment_rules" edges to the AssignmentRule entity.
func (_u *WorkspaceUpdateOne) AddAssignmentRules(v ...*AssignmentRule) *WorkspaceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignmentRuleIDs(ids...)
}

// AddWhatsappTriggerIDs adds the "whatsapp_triggers" edge to the WhatsAppTrigger entity by IDs.
func (_u *WorkspaceUpdateOne) AddWhatsappTriggerIDs(ids ...int) *WorkspaceUpdateOne {
	_u.mutation.AddWhatsappTriggerIDs(ids...)
	return _u
}

// AddWhatsappTriggers adds the "whatsapp_triggers" edges to the WhatsAppTrigger entity.
func (_u *WorkspaceUpdateOne) AddWhatsappTriggers(v ...*WhatsAppTrigger) *WorkspaceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWhatsappTriggerIDs(ids...)
}

// AddActivityIDs adds the "activities" edge to the Activity entity by IDs.
func (_u *WorkspaceUpdateOne) AddActivityIDs(ids ...int) *WorkspaceUpdateOne {
	_u.mutation.AddActivityIDs(ids...)
	return _u
}

// AddActivities adds the "activities" edges to the Activity entity.
func (_u *WorkspaceUpdateOne) AddActivities(v ...*Activity) *WorkspaceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActivityIDs(ids...)
}

// Mutation returns the WorkspaceMutation object of the builder.
func (_u *WorkspaceUpdateOne) Mutation() *WorkspaceMutation {
	return _u.mutation
}

// ClearMembers clears all "members" edges to the WorkspaceMember entity.
func (_u *WorkspaceUpdateOne) ClearMembers() *WorkspaceUpdateOne {
	_u.mutation.ClearMembers()
	return _u
}

// RemoveMemberIDs removes the "members" edge to WorkspaceMember entities by IDs.
func (_u *WorkspaceUpdateOne) RemoveMemberIDs(ids ...int) *WorkspaceUpdateOne {
	_u.mutation.RemoveMemberIDs(ids...)
	return _u
}

// RemoveMembers removes "members" edges to WorkspaceMember entities.
func (_u *WorkspaceUpdateOne) RemoveMembers(v ...*WorkspaceMember) *WorkspaceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMemberIDs(ids...)
}

// ClearLeads clears all "leads" edges to the Lead entity.
func (_u *WorkspaceUpdateOne) ClearLeads() *WorkspaceUpdateOne {
	_u.mutation.ClearLeads()
	return _u
}

// RemoveLeadIDs removes the "leads" edge to Lead entities by IDs.
func (_u *WorkspaceUpdateOne) RemoveLeadIDs(ids ...int) *WorkspaceUpdateOne {
	_u.mutation.RemoveLeadIDs(ids...)
	return _u
}

// RemoveLeads removes "leads" edges to Lead entities.
func (_u *WorkspaceUpdateOne) RemoveLeads(v ...*Lead) *WorkspaceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLeadIDs(ids...)
}

// ClearAssignmentRules clears all "assignment_rules" edges to the AssignmentRule entity.
func (_u *WorkspaceUpdateOne) ClearAssignmentRules() *WorkspaceUpdateOne {
	_u.mutation.ClearAssignmentRules()
	return _u
}

// RemoveAssignmentRuleIDs removes the "assignment_rules" edge to AssignmentRule entities by IDs.
func (_u *WorkspaceUpdateOne) RemoveAssignmentRuleIDs(ids ...int) *WorkspaceUpdateOne {
	_u.mutation.RemoveAssignmentRuleIDs(ids...)
	return _u
}

// RemoveAssignmentRules removes "assignment_rules" edges to AssignmentRule entities.
func (_u *WorkspaceUpdateOne) RemoveAssignmentRules(v ...*AssignmentRule) *WorkspaceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignmentRuleIDs(ids...)
}

// ClearWhatsappTriggers clears all "whatsapp_triggers" edges to the WhatsAppTrigger entity.
func (_u *WorkspaceUpdateOne) ClearWhatsappTriggers() *WorkspaceUpdateOne {
	_u.mutation.ClearWhatsappTriggers()
	return _u
}

// RemoveWhatsappTriggerIDs removes the "whatsapp_triggers" edge to WhatsAppTrigger entities by IDs.
func (_u *WorkspaceUpdateOne) RemoveWhatsappTriggerIDs(ids ...int) *WorkspaceUpdateOne {
	_u.mutation.RemoveWhatsappTriggerIDs(ids...)
	return _u
}

// RemoveWhatsappTriggers removes "whatsapp_triggers" edges to WhatsAppTrigger entities.
func (_u *WorkspaceUpdateOne) RemoveWhatsappTriggers(v ...*WhatsAppTrigger) *WorkspaceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWhatsappTriggerIDs(ids...)
}

// ClearActivities clears all "activities" edges to the Activity entity.
func (_u *WorkspaceUpdateOne) ClearActivities() *WorkspaceUpdateOne {
	_u.mutation.ClearActivities()
	return _u
}

// RemoveActivityIDs removes the "activities" edge to Activity entities by IDs.
func (_u *WorkspaceUpdateOne) RemoveActivityIDs(ids ...int) *WorkspaceUpdateOne {
	_u.mutation.RemoveActivityIDs(ids...)
	return _u
}

// RemoveActivities removes "activities" edges to Activity entities.
func (_u *WorkspaceUpdateOne) RemoveActivities(v ...*Activity) *WorkspaceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActivityIDs(ids...)
}

// Where appends a list predicates to the WorkspaceUpdate builder.
func (_u *WorkspaceUpdateOne) Where(ps ...predicate.Workspace) *WorkspaceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkspaceUpdateOne) Select(field string, fields ...string) *WorkspaceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Workspace entity.
func (_u *WorkspaceUpdateOne) Save(ctx context.Context) (*Workspace, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkspaceUpdateOne) SaveX(ctx context.Context) *Workspace {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkspaceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkspaceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkspaceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workspace.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkspaceUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := workspace.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Workspace.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WebhookSecret(); ok {
		if err := workspace.WebhookSecretValidator(v); err != nil {
			return &ValidationError{Name: "webhook_secret", err: fmt.Errorf(`ent: validator failed for field "Workspace.webhook_secret": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkspaceUpdateOne) sqlSave(ctx context.Context) (_node *Workspace, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workspace.Table, workspace.Columns, sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Workspace.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workspace.FieldID)
		for _, f := range fields {
			if !workspace.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workspace.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(workspace.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.WebhookSecret(); ok {
		_spec.SetField(workspace.FieldWebhookSecret, field.TypeString, value)
	}
	if value, ok := _u.mutation.DefaultCountryCode(); ok {
		_spec.SetField(workspace.FieldDefaultCountryCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workspace.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MembersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.MembersTable,
			Columns: []string{workspace.MembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspacemember.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMembersIDs(); len(nodes) > 0 && !_u.mutation.MembersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.MembersTable,
			Columns: []string{workspace.MembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspacemember.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MembersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.MembersTable,
			Columns: []string{workspace.MembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspacemember.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LeadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.LeadsTable,
			Columns: []string{workspace.LeadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLeadsIDs(); len(nodes) > 0 && !_u.mutation.LeadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.LeadsTable,
			Columns: []string{workspace.LeadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.LeadsTable,
			Columns: []string{workspace.LeadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssignmentRulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.AssignmentRulesTable,
			Columns: []string{workspace.AssignmentRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignmentrule.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssignmentRulesIDs(); len(nodes) > 0 && !_u.mutation.AssignmentRulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.AssignmentRulesTable,
			Columns: []string{workspace.AssignmentRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignmentrule.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentRulesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.AssignmentRulesTable,
			Columns: []string{workspace.AssignmentRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignmentrule.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WhatsappTriggersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.WhatsappTriggersTable,
			Columns: []string{workspace.WhatsappTriggersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(whatsapptrigger.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWhatsappTriggersIDs(); len(nodes) > 0 && !_u.mutation.WhatsappTriggersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.WhatsappTriggersTable,
			Columns: []string{workspace.WhatsappTriggersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(whatsapptrigger.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WhatsappTriggersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.WhatsappTriggersTable,
			Columns: []string{workspace.WhatsappTriggersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(whatsapptrigger.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ActivitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.ActivitiesTable,
			Columns: []string{workspace.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActivitiesIDs(); len(nodes) > 0 && !_u.mutation.ActivitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.ActivitiesTable,
			Columns: []string{workspace.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActivitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.ActivitiesTable,
			Columns: []string{workspace.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Workspace{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workspace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
