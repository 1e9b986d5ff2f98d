package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WhatsAppTrigger holds the schema definition for the WhatsAppTrigger entity.
// A trigger binds a lead status value to an outbound templated WhatsApp
// message. Template configuration is stored as raw JSON text and parsed
// defensively at dispatch time.
type WhatsAppTrigger struct {
	ent.Schema
}

// Fields of the WhatsAppTrigger.
func (WhatsAppTrigger) Fields() []ent.Field {
	return []ent.Field{
		field.Int("workspace_id").
			Comment("Workspace this trigger belongs to"),
		field.String("status").
			NotEmpty().
			Comment("Lead status value that activates this trigger"),
		field.Bool("is_enabled").
			Default(true).
			Comment("Disabled triggers never fire"),
		field.String("campaign_name").
			NotEmpty().
			Comment("Provider campaign identifier"),
		field.String("source").
			Default("crm").
			Comment("Source label sent to the provider (not the lead source)"),
		field.String("template_params").
			Default("[]").
			Comment(`Ordered JSON array of placeholder tokens, e.g. ["{{FirstName}}"]`),
		field.String("params_fallback").
			Default("{}").
			Comment("JSON object mapping token names to fallback literals"),
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

// Edges of the WhatsAppTrigger.
func (WhatsAppTrigger) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("whatsapp_triggers").
			Field("workspace_id").
			Unique().
			Required(),
	}
}

// Indexes of the WhatsAppTrigger.
func (WhatsAppTrigger) Indexes() []ent.Index {
	return []ent.Index{
		// Intentionally not unique: when several enabled triggers exist
		// for the same status, the store picks the lowest id.
		index.Fields("workspace_id", "status", "is_enabled"),
	}
}
