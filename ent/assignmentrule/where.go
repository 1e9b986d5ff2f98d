// Code generated by ent, DO NOT EDIT.

package assignmentrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/leadrouter/crm-backend/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldLTE(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldWorkspaceID, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldSource, v))
}

// AssigneeID applies equality check predicate on the "assignee_id" field. It's identical to AssigneeIDEQ.
func AssigneeID(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldAssigneeID, v))
}

// Percentage applies equality check predicate on the "percentage" field. It's identical to PercentageEQ.
func Percentage(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldPercentage, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldPriority, v))
}

// IsEnabled applies equality check predicate on the "is_enabled" field. It's identical to IsEnabledEQ.
func IsEnabled(v bool) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldIsEnabled, v))
}

// LastAssignedAt applies equality check predicate on the "last_assigned_at" field. It's identical to LastAssignedAtEQ.
func LastAssignedAt(v time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldLastAssignedAt, v))
}

// AssignmentCount applies equality check predicate on the "assignment_count" field. It's identical to AssignmentCountEQ.
func AssignmentCount(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldAssignmentCount, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldHasSuffix(FieldSource, v))
}

// SourceIsNil applies the IsNil predicate on the "source" field.
func SourceIsNil() predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldIsNull(FieldSource))
}

// SourceNotNil applies the NotNil predicate on the "source" field.
func SourceNotNil() predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNotNull(FieldSource))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldContainsFold(FieldSource, v))
}

// AssignmentTypeEQ applies the EQ predicate on the "assignment_type" field.
func AssignmentTypeEQ(v AssignmentType) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldAssignmentType, v))
}

// AssignmentTypeNEQ applies the NEQ predicate on the "assignment_type" field.
func AssignmentTypeNEQ(v AssignmentType) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNEQ(FieldAssignmentType, v))
}

// AssignmentTypeIn applies the In predicate on the "assignment_type" field.
func AssignmentTypeIn(vs ...AssignmentType) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldIn(FieldAssignmentType, vs...))
}

// AssignmentTypeNotIn applies the NotIn predicate on the "assignment_type" field.
func AssignmentTypeNotIn(vs ...AssignmentType) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNotIn(FieldAssignmentType, vs...))
}

// AssigneeIDEQ applies the EQ predicate on the "assignee_id" field.
func AssigneeIDEQ(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldAssigneeID, v))
}

// AssigneeIDNEQ applies the NEQ predicate on the "assignee_id" field.
func AssigneeIDNEQ(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNEQ(FieldAssigneeID, v))
}

// AssigneeIDIn applies the In predicate on the "assignee_id" field.
func AssigneeIDIn(vs ...int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldIn(FieldAssigneeID, vs...))
}

// AssigneeIDNotIn applies the NotIn predicate on the "assignee_id" field.
func AssigneeIDNotIn(vs ...int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNotIn(FieldAssigneeID, vs...))
}

// AssigneeIDGT applies the GT predicate on the "assignee_id" field.
func AssigneeIDGT(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldGT(FieldAssigneeID, v))
}

// AssigneeIDGTE applies the GTE predicate on the "assignee_id" field.
func AssigneeIDGTE(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldGTE(FieldAssigneeID, v))
}

// AssigneeIDLT applies the LT predicate on the "assignee_id" field.
func AssigneeIDLT(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldLT(FieldAssigneeID, v))
}

// AssigneeIDLTE applies the LTE predicate on the "assignee_id" field.
func AssigneeIDLTE(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldLTE(FieldAssigneeID, v))
}

// PercentageEQ applies the EQ predicate on the "percentage" field.
func PercentageEQ(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldPercentage, v))
}

// PercentageNEQ applies the NEQ predicate on the "percentage" field.
func PercentageNEQ(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNEQ(FieldPercentage, v))
}

// PercentageIn applies the In predicate on the "percentage" field.
func PercentageIn(vs ...int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldIn(FieldPercentage, vs...))
}

// PercentageNotIn applies the NotIn predicate on the "percentage" field.
func PercentageNotIn(vs ...int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNotIn(FieldPercentage, vs...))
}

// PercentageGT applies the GT predicate on the "percentage" field.
func PercentageGT(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldGT(FieldPercentage, v))
}

// PercentageGTE applies the GTE predicate on the "percentage" field.
func PercentageGTE(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldGTE(FieldPercentage, v))
}

// PercentageLT applies the LT predicate on the "percentage" field.
func PercentageLT(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldLT(FieldPercentage, v))
}

// PercentageLTE applies the LTE predicate on the "percentage" field.
func PercentageLTE(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldLTE(FieldPercentage, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldLTE(FieldPriority, v))
}

// IsEnabledEQ applies the EQ predicate on the "is_enabled" field.
func IsEnabledEQ(v bool) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldIsEnabled, v))
}

// IsEnabledNEQ applies the NEQ predicate on the "is_enabled" field.
func IsEnabledNEQ(v bool) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNEQ(FieldIsEnabled, v))
}

// LastAssignedAtEQ applies the EQ predicate on the "last_assigned_at" field.
func LastAssignedAtEQ(v time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldLastAssignedAt, v))
}

// LastAssignedAtNEQ applies the NEQ predicate on the "last_assigned_at" field.
func LastAssignedAtNEQ(v time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNEQ(FieldLastAssignedAt, v))
}

// LastAssignedAtIn applies the In predicate on the "last_assigned_at" field.
func LastAssignedAtIn(vs ...time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldIn(FieldLastAssignedAt, vs...))
}

// LastAssignedAtNotIn applies the NotIn predicate on the "last_assigned_at" field.
func LastAssignedAtNotIn(vs ...time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNotIn(FieldLastAssignedAt, vs...))
}

// LastAssignedAtGT applies the GT predicate on the "last_assigned_at" field.
func LastAssignedAtGT(v time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldGT(FieldLastAssignedAt, v))
}

// LastAssignedAtGTE applies the GTE predicate on the "last_assigned_at" field.
func LastAssignedAtGTE(v time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldGTE(FieldLastAssignedAt, v))
}

// LastAssignedAtLT applies the LT predicate on the "last_assigned_at" field.
func LastAssignedAtLT(v time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldLT(FieldLastAssignedAt, v))
}

// LastAssignedAtLTE applies the LTE predicate on the "last_assigned_at" field.
func LastAssignedAtLTE(v time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldLTE(FieldLastAssignedAt, v))
}

// LastAssignedAtIsNil applies the IsNil predicate on the "last_assigned_at" field.
func LastAssignedAtIsNil() predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldIsNull(FieldLastAssignedAt))
}

// LastAssignedAtNotNil applies the NotNil predicate on the "last_assigned_at" field.
func LastAssignedAtNotNil() predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNotNull(FieldLastAssignedAt))
}

// AssignmentCountEQ applies the EQ predicate on the "assignment_count" field.
func AssignmentCountEQ(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldAssignmentCount, v))
}

// AssignmentCountNEQ applies the NEQ predicate on the "assignment_count" field.
func AssignmentCountNEQ(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNEQ(FieldAssignmentCount, v))
}

// AssignmentCountIn applies the In predicate on the "assignment_count" field.
func AssignmentCountIn(vs ...int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldIn(FieldAssignmentCount, vs...))
}

// AssignmentCountNotIn applies the NotIn predicate on the "assignment_count" field.
func AssignmentCountNotIn(vs ...int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNotIn(FieldAssignmentCount, vs...))
}

// AssignmentCountGT applies the GT predicate on the "assignment_count" field.
func AssignmentCountGT(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldGT(FieldAssignmentCount, v))
}

// AssignmentCountGTE applies the GTE predicate on the "assignment_count" field.
func AssignmentCountGTE(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldGTE(FieldAssignmentCount, v))
}

// AssignmentCountLT applies the LT predicate on the "assignment_count" field.
func AssignmentCountLT(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldLT(FieldAssignmentCount, v))
}

// AssignmentCountLTE applies the LTE predicate on the "assignment_count" field.
func AssignmentCountLTE(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldLTE(FieldAssignmentCount, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldLTE(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasWorkspace applies the HasEdge predicate on the "workspace" edge.
func HasWorkspace() predicate.AssignmentRule {
	return predicate.AssignmentRule(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkspaceTable, WorkspaceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkspaceWith applies the HasEdge predicate on the "workspace" edge with a given conditions (other predicates).
func HasWorkspaceWith(preds ...predicate.Workspace) predicate.AssignmentRule {
	return predicate.AssignmentRule(func(s *sql.Selector) {
		step := newWorkspaceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AssignmentRule) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AssignmentRule) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AssignmentRule) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.NotPredicates(p))
}
