package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Full name"),
		field.String("email").
			NotEmpty().
			Unique().
			Comment("Email address"),
		field.String("phone").
			Optional().
			Comment("Phone number"),
		field.Bool("is_active").
			Default(true).
			Comment("Whether the user can be assigned leads"),
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

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("workspace_memberships", WorkspaceMember.Type),
		edge.To("owned_leads", Lead.Type),
		edge.To("activities", Activity.Type),
		edge.To("status_changes", LeadStatusHistory.Type),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
	}
}
