package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Workspace holds the schema definition for the Workspace entity.
// A workspace is the tenant boundary: every lead, rule, trigger and
// activity belongs to exactly one workspace.
type Workspace struct {
	ent.Schema
}

// Fields of the Workspace.
func (Workspace) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Workspace display name"),
		field.String("webhook_secret").
			Sensitive().
			NotEmpty().
			Comment("Shared secret required on inbound lead webhooks"),
		field.String("default_country_code").
			Default("91").
			Comment("Country calling code prefixed to 10-digit phone numbers on dispatch"),
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

// Edges of the Workspace.
func (Workspace) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("members", WorkspaceMember.Type),
		edge.To("leads", Lead.Type),
		edge.To("assignment_rules", AssignmentRule.Type),
		edge.To("whatsapp_triggers", WhatsAppTrigger.Type),
		edge.To("activities", Activity.Type),
	}
}

// Indexes of the Workspace.
func (Workspace) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
