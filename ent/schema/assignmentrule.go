package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssignmentRule holds the schema definition for the AssignmentRule entity.
// Rules route newly ingested leads to workspace users. The bookkeeping
// columns (last_assigned_at, assignment_count, version) are mutated only
// through the rule store as a side effect of round-robin and percentage
// selections.
type AssignmentRule struct {
	ent.Schema
}

// Fields of the AssignmentRule.
func (AssignmentRule) Fields() []ent.Field {
	return []ent.Field{
		field.Int("workspace_id").
			Comment("Workspace this rule belongs to"),
		field.String("source").
			Optional().
			Nillable().
			Comment("Lead source this rule matches (null = any source)"),
		field.Enum("assignment_type").
			Values("specific", "round_robin", "percentage").
			Comment("Selection strategy"),
		field.Int("assignee_id").
			Positive().
			Comment("User who receives leads matched by this rule"),
		field.Int("percentage").
			Default(0).
			Min(0).
			Max(100).
			Comment("Share of leads for percentage rules (0-100)"),
		field.Int("priority").
			Default(0).
			Comment("Ascending precedence: lower value wins"),
		field.Bool("is_enabled").
			Default(true).
			Comment("Disabled rules are never candidates"),
		field.Time("last_assigned_at").
			Optional().
			Nillable().
			Comment("When this rule last assigned a lead (null = never)"),
		field.Int("assignment_count").
			Default(0).
			Min(0).
			Comment("Monotonic count of leads assigned through this rule"),
		field.Int("version").
			Default(0).
			Comment("Optimistic concurrency token for bookkeeping updates"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the AssignmentRule.
func (AssignmentRule) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("assignment_rules").
			Field("workspace_id").
			Unique().
			Required(),
	}
}

// Indexes of the AssignmentRule.
func (AssignmentRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "is_enabled"),
		index.Fields("workspace_id", "source"),
		index.Fields("priority"),
	}
}
