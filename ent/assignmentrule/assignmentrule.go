// Code generated by ent, DO NOT EDIT.

package assignmentrule

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the assignmentrule type in the database.
	Label = "assignment_rule"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldAssignmentType holds the string denoting the assignment_type field in the database.
	FieldAssignmentType = "assignment_type"
	// FieldAssigneeID holds the string denoting the assignee_id field in the database.
	FieldAssigneeID = "assignee_id"
	// FieldPercentage holds the string denoting the percentage field in the database.
	FieldPercentage = "percentage"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldIsEnabled holds the string denoting the is_enabled field in the database.
	FieldIsEnabled = "is_enabled"
	// FieldLastAssignedAt holds the string denoting the last_assigned_at field in the database.
	FieldLastAssignedAt = "last_assigned_at"
	// FieldAssignmentCount holds the string denoting the assignment_count field in the database.
	FieldAssignmentCount = "assignment_count"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeWorkspace holds the string denoting the workspace edge name in mutations.
	EdgeWorkspace = "workspace"
	// Table holds the table name of the assignmentrule in the database.
	Table = "assignment_rules"
	// WorkspaceTable is the table that holds the workspace relation/edge.
	WorkspaceTable = "assignment_rules"
	// WorkspaceInverseTable is the table name for the Workspace entity.
	// It exists in this package in order to avoid circular dependency with the "workspace" package.
	WorkspaceInverseTable = "workspaces"
	// WorkspaceColumn is the table column denoting the workspace relation/edge.
	WorkspaceColumn = "workspace_id"
)

// Columns holds all SQL columns for assignmentrule fields.
var Columns = []string{
	FieldID,
	FieldWorkspaceID,
	FieldSource,
	FieldAssignmentType,
	FieldAssigneeID,
	FieldPercentage,
	FieldPriority,
	FieldIsEnabled,
	FieldLastAssignedAt,
	FieldAssignmentCount,
	FieldVersion,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// AssigneeIDValidator is a validator for the "assignee_id" field. It is called by the builders before save.
	AssigneeIDValidator func(int) error
	// DefaultPercentage holds the default value on creation for the "percentage" field.
	DefaultPercentage int
	// PercentageValidator is a validator for the "percentage" field. It is called by the builders before save.
	PercentageValidator func(int) error
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultIsEnabled holds the default value on creation for the "is_enabled" field.
	DefaultIsEnabled bool
	// DefaultAssignmentCount holds the default value on creation for the "assignment_count" field.
	DefaultAssignmentCount int
	// AssignmentCountValidator is a validator for the "assignment_count" field. It is called by the builders before save.
	AssignmentCountValidator func(int) error
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// AssignmentType defines the type for the "assignment_type" enum field.
type AssignmentType string

// AssignmentType values.
const (
	AssignmentTypeSpecific   AssignmentType = "specific"
	AssignmentTypeRoundRobin AssignmentType = "round_robin"
	AssignmentTypePercentage AssignmentType = "percentage"
)

func (at AssignmentType) String() string {
	return string(at)
}

// AssignmentTypeValidator is a validator for the "assignment_type" field enum values. It is called by the builders before save.
func AssignmentTypeValidator(at AssignmentType) error {
	switch at {
	case AssignmentTypeSpecific, AssignmentTypeRoundRobin, AssignmentTypePercentage:
		return nil
	default:
		return fmt.Errorf("assignmentrule: invalid enum value for assignment_type field: %q", at)
	}
}

// OrderOption defines the ordering options for the AssignmentRule queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByAssignmentType orders the results by the assignment_type field.
func ByAssignmentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignmentType, opts...).ToFunc()
}

// ByAssigneeID orders the results by the assignee_id field.
func ByAssigneeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssigneeID, opts...).ToFunc()
}

// ByPercentage orders the results by the percentage field.
func ByPercentage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPercentage, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByIsEnabled orders the results by the is_enabled field.
func ByIsEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsEnabled, opts...).ToFunc()
}

// ByLastAssignedAt orders the results by the last_assigned_at field.
func ByLastAssignedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAssignedAt, opts...).ToFunc()
}

// ByAssignmentCount orders the results by the assignment_count field.
func ByAssignmentCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignmentCount, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByWorkspaceField orders the results by workspace field.
func ByWorkspaceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkspaceStep(), sql.OrderByField(field, opts...))
	}
}
func newWorkspaceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkspaceInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WorkspaceTable, WorkspaceColumn),
	)
}
