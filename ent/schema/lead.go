package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lead holds the schema definition for the Lead entity.
type Lead struct {
	ent.Schema
}

// Fields of the Lead.
func (Lead) Fields() []ent.Field {
	return []ent.Field{
		field.Int("workspace_id").
			Comment("Workspace this lead belongs to"),
		field.String("first_name").
			NotEmpty().
			Comment("First name"),
		field.String("last_name").
			Optional().
			Comment("Last name"),
		field.String("phone").
			NotEmpty().
			Comment("Canonical phone number, dedup key within a workspace"),
		field.String("email").
			Optional().
			Comment("Email address"),
		field.String("source").
			Default("OTHER").
			Comment("Normalized acquisition source (FACEBOOK, WEBSITE, IMPORT, ...)"),
		field.String("raw_source").
			Optional().
			Comment("Source tag exactly as received, before alias normalization"),
		field.Enum("status").
			Values("new", "contacted", "qualified", "negotiating", "won", "lost", "archived").
			Default("new").
			Comment("Lead lifecycle status"),
		field.Time("status_changed_at").
			Default(time.Now).
			Comment("When the status was last changed"),
		field.Int("owner_id").
			Optional().
			Nillable().
			Comment("Assigned owner (null = unassigned)"),
		field.String("course_interested").
			Optional().
			Comment("Course or product the lead asked about"),
		field.JSON("custom_fields", map[string]interface{}{}).
			Optional().
			Comment("User-defined custom fields (flexible metadata storage)"),
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

// Edges of the Lead.
func (Lead) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("leads").
			Field("workspace_id").
			Unique().
			Required(),
		edge.From("owner", User.Type).
			Ref("owned_leads").
			Field("owner_id").
			Unique(),
		edge.To("activities", Activity.Type),
		edge.To("status_history", LeadStatusHistory.Type),
	}
}

// Indexes of the Lead.
func (Lead) Indexes() []ent.Index {
	return []ent.Index{
		// Soft-unique dedup key: the ingestor merges on a match rather
		// than creating a duplicate. Not a unique constraint so that
		// pre-existing duplicates keep loading.
		index.Fields("workspace_id", "phone"),
		index.Fields("workspace_id", "status"),
		index.Fields("workspace_id", "source"),
		index.Fields("owner_id"),
		index.Fields("created_at"),
	}
}
