package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkspaceMember holds the schema definition for the WorkspaceMember entity.
type WorkspaceMember struct {
	ent.Schema
}

// Fields of the WorkspaceMember.
func (WorkspaceMember) Fields() []ent.Field {
	return []ent.Field{
		field.Int("workspace_id").
			Comment("Workspace ID"),
		field.Int("user_id").
			Comment("User ID"),
		field.Enum("role").
			Values("admin", "member").
			Default("member").
			Comment("Member role in workspace"),
		field.Enum("status").
			Values("active", "suspended").
			Default("active").
			Comment("Member status"),
		field.Time("joined_at").
			Default(time.Now).
			Comment("When the member joined the workspace"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the WorkspaceMember.
func (WorkspaceMember) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("members").
			Field("workspace_id").
			Unique().
			Required(),
		edge.From("user", User.Type).
			Ref("workspace_memberships").
			Field("user_id").
			Unique().
			Required(),
	}
}

// Indexes of the WorkspaceMember.
func (WorkspaceMember) Indexes() []ent.Index {
	return []ent.Index{
		// A user can only be in a workspace once.
		index.Fields("workspace_id", "user_id").Unique(),
		index.Fields("workspace_id", "role"),
		index.Fields("user_id"),
	}
}
