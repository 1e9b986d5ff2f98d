// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/leadrouter/crm-backend/ent/workspace"
)

// Workspace is the model entity for the Workspace schema.
type Workspace struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Workspace display name
	Name string `json:"name,omitempty"`
	// Shared secret required on inbound lead webhooks
	WebhookSecret string `json:"-"`
	// Country calling code prefixed to 10-digit phone numbers on dispatch
	DefaultCountryCode string `json:"default_country_code,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkspaceQuery when eager-loading is set.
	Edges        WorkspaceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkspaceEdges holds the relations/edges for other nodes in the graph.
type WorkspaceEdges struct {
	// Members holds the value of the members edge.
	Members []*WorkspaceMember `json:"members,omitempty"`
	// Leads holds the value of the leads edge.
	Leads []*Lead `json:"leads,omitempty"`
	// AssignmentRules holds the value of the assignment_rules edge.
	AssignmentRules []*AssignmentRule `json:"assignment_rules,omitempty"`
	// WhatsappTriggers holds the value of the whatsapp_triggers edge.
	WhatsappTriggers []*WhatsAppTrigger `json:"whatsapp_triggers,omitempty"`
	// Activities holds the value of the activities edge.
	Activities []*Activity `json:"activities,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// MembersOrErr returns the Members value or an error if the edge
// was not loaded in eager-loading.
func (e WorkspaceEdges) MembersOrErr() ([]*WorkspaceMember, error) {
	if e.loadedTypes[0] {
		return e.Members, nil
	}
	return nil, &NotLoadedError{edge: "members"}
}

// LeadsOrErr returns the Leads value or an error if the edge
// was not loaded in eager-loading.
func (e WorkspaceEdges) LeadsOrErr() ([]*Lead, error) {
	if e.loadedTypes[1] {
		return e.Leads, nil
	}
	return nil, &NotLoadedError{edge: "leads"}
}

// AssignmentRulesOrErr returns the AssignmentRules value or an error if the edge
// was not loaded in eager-loading.
func (e WorkspaceEdges) AssignmentRulesOrErr() ([]*AssignmentRule, error) {
	if e.loadedTypes[2] {
		return e.AssignmentRules, nil
	}
	return nil, &NotLoadedError{edge: "assignment_rules"}
}

// WhatsappTriggersOrErr returns the WhatsappTriggers value or an error if the edge
// was not loaded in eager-loading.
func (e WorkspaceEdges) WhatsappTriggersOrErr() ([]*WhatsAppTrigger, error) {
	if e.loadedTypes[3] {
		return e.WhatsappTriggers, nil
	}
	return nil, &NotLoadedError{edge: "whatsapp_triggers"}
}

// ActivitiesOrErr returns the Activities value or an error if the edge
// was not loaded in eager-loading.
func (e WorkspaceEdges) ActivitiesOrErr() ([]*Activity, error) {
	if e.loadedTypes[4] {
		return e.Activities, nil
	}
	return nil, &NotLoadedError{edge: "activities"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Workspace) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workspace.FieldID:
			values[i] = new(sql.NullInt64)
		case workspace.FieldName, workspace.FieldWebhookSecret, workspace.FieldDefaultCountryCode:
			values[i] = new(sql.NullString)
		case workspace.FieldCreatedAt, workspace.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Workspace fields.
func (_m *Workspace) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workspace.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case workspace.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case workspace.FieldWebhookSecret:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field webhook_secret", values[i])
			} else if value.Valid {
				_m.WebhookSecret = value.String
			}
		case workspace.FieldDefaultCountryCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field default_country_code", values[i])
			} else if value.Valid {
				_m.DefaultCountryCode = value.String
			}
		case workspace.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case workspace.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Workspace.
// This includes values selected through modifiers, order, etc.
func (_m *Workspace) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMembers queries the "members" edge of the Workspace entity.
func (_m *Workspace) QueryMembers() *WorkspaceMemberQuery {
	return NewWorkspaceClient(_m.config).QueryMembers(_m)
}

// QueryLeads queries the "leads" edge of the Workspace entity.
func (_m *Workspace) QueryLeads() *LeadQuery {
	return NewWorkspaceClient(_m.config).QueryLeads(_m)
}

// QueryAssignmentRules queries the "assignment_rules" edge of the Workspace entity.
func (_m *Workspace) QueryAssignmentRules() *AssignmentRuleQuery {
	return NewWorkspaceClient(_m.config).QueryAssignmentRules(_m)
}

// QueryWhatsappTriggers queries the "whatsapp_triggers" edge of the Workspace entity.
func (_m *Workspace) QueryWhatsappTriggers() *WhatsAppTriggerQuery {
	return NewWorkspaceClient(_m.config).QueryWhatsappTriggers(_m)
}

// QueryActivities queries the "activities" edge of the Workspace entity.
func (_m *Workspace) QueryActivities() *ActivityQuery {
	return NewWorkspaceClient(_m.config).QueryActivities(_m)
}

// Update returns a builder for updating this Workspace.
// Note that you need to call Workspace.Unwrap() before calling this method if this Workspace
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Workspace) Update() *WorkspaceUpdateOne {
	return NewWorkspaceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Workspace entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Workspace) Unwrap() *Workspace {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Workspace is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Workspace) String() string {
	var builder strings.Builder
	builder.WriteString("Workspace(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("webhook_secret=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("default_country_code=")
	builder.WriteString(_m.DefaultCountryCode)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Workspaces is a parsable slice of Workspace.
type Workspaces []*Workspace
