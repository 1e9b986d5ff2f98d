package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Activity holds the schema definition for the Activity entity.
// The activity log is append-only: rows are never updated or deleted.
type Activity struct {
	ent.Schema
}

// Fields of the Activity.
func (Activity) Fields() []ent.Field {
	return []ent.Field{
		field.Int("workspace_id").
			Comment("Workspace the activity belongs to"),
		field.Int("lead_id").
			Comment("Lead the activity is attached to"),
		field.Int("user_id").
			Optional().
			Nillable().
			Comment("Acting user (null for system actions)"),
		field.Enum("type").
			Values("system", "whatsapp", "status_change", "call", "note").
			Comment("Kind of activity"),
		field.String("subject").
			NotEmpty().
			Comment("Short summary"),
		field.String("description").
			Optional().
			Comment("Details, including raw provider responses on failures"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Timestamp of the activity"),
	}
}

// Edges of the Activity.
func (Activity) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("activities").
			Field("workspace_id").
			Unique().
			Required(),
		edge.From("lead", Lead.Type).
			Ref("activities").
			Field("lead_id").
			Unique().
			Required(),
		edge.From("user", User.Type).
			Ref("activities").
			Field("user_id").
			Unique(),
	}
}

// Indexes of the Activity.
func (Activity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lead_id", "created_at"),
		index.Fields("workspace_id", "type"),
		index.Fields("created_at"),
	}
}
