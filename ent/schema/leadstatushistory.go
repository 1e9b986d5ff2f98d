package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LeadStatusHistory holds the schema definition for the LeadStatusHistory entity.
type LeadStatusHistory struct {
	ent.Schema
}

// Fields of the LeadStatusHistory.
func (LeadStatusHistory) Fields() []ent.Field {
	return []ent.Field{
		field.Int("lead_id").
			Comment("Lead whose status changed"),
		field.Int("user_id").
			Optional().
			Nillable().
			Comment("User who made the change, empty for system changes"),
		field.String("old_status").
			Optional().
			Comment("Status before the change"),
		field.String("new_status").
			NotEmpty().
			Comment("Status after the change"),
		field.String("reason").
			Optional().
			Comment("Optional reason for the change"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the change happened"),
	}
}

// Edges of the LeadStatusHistory.
func (LeadStatusHistory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lead", Lead.Type).
			Ref("status_history").
			Field("lead_id").
			Unique().
			Required(),
		edge.From("user", User.Type).
			Ref("status_changes").
			Field("user_id").
			Unique(),
	}
}

// Indexes of the LeadStatusHistory.
func (LeadStatusHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lead_id", "created_at"),
	}
}
