// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/leadrouter/crm-backend/ent/whatsapptrigger"
	"github.com/leadrouter/crm-backend/ent/workspace"
)

// WhatsAppTrigger is the model entity for the WhatsAppTrigger schema.
type WhatsAppTrigger struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Workspace this trigger belongs to
	WorkspaceID int `json:"workspace_id,omitempty"`
	// Lead status value that activates this trigger
	Status string `json:"status,omitempty"`
	// Disabled triggers never fire
	IsEnabled bool `json:"is_enabled,omitempty"`
	// Provider campaign identifier
	CampaignName string `json:"campaign_name,omitempty"`
	// Source label sent to the provider (not the lead source)
	Source string `json:"source,omitempty"`
	// Ordered JSON array of placeholder tokens, e.g. ["{{FirstName}}"]
	TemplateParams string `json:"template_params,omitempty"`
	// JSON object mapping token names to fallback literals
	ParamsFallback string `json:"params_fallback,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WhatsAppTriggerQuery when eager-loading is set.
	Edges        WhatsAppTriggerEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WhatsAppTriggerEdges holds the relations/edges for other nodes in the graph.
type WhatsAppTriggerEdges struct {
	// Workspace holds the value of the workspace edge.
	Workspace *Workspace `json:"workspace,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WorkspaceOrErr returns the Workspace value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WhatsAppTriggerEdges) WorkspaceOrErr() (*Workspace, error) {
	if e.Workspace != nil {
		return e.Workspace, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workspace.Label}
	}
	return nil, &NotLoadedError{edge: "workspace"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WhatsAppTrigger) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case whatsapptrigger.FieldIsEnabled:
			values[i] = new(sql.NullBool)
		case whatsapptrigger.FieldID, whatsapptrigger.FieldWorkspaceID:
			values[i] = new(sql.NullInt64)
		case whatsapptrigger.FieldStatus, whatsapptrigger.FieldCampaignName, whatsapptrigger.FieldSource, whatsapptrigger.FieldTemplateParams, whatsapptrigger.FieldParamsFallback:
			values[i] = new(sql.NullString)
		case whatsapptrigger.FieldCreatedAt, whatsapptrigger.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WhatsAppTrigger fields.
func (_m *WhatsAppTrigger) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case whatsapptrigger.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case whatsapptrigger.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = int(value.Int64)
			}
		case whatsapptrigger.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case whatsapptrigger.FieldIsEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_enabled", values[i])
			} else if value.Valid {
				_m.IsEnabled = value.Bool
			}
		case whatsapptrigger.FieldCampaignName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field campaign_name", values[i])
			} else if value.Valid {
				_m.CampaignName = value.String
			}
		case whatsapptrigger.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case whatsapptrigger.FieldTemplateParams:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field template_params", values[i])
			} else if value.Valid {
				_m.TemplateParams = value.String
			}
		case whatsapptrigger.FieldParamsFallback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field params_fallback", values[i])
			} else if value.Valid {
				_m.ParamsFallback = value.String
			}
		case whatsapptrigger.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case whatsapptrigger.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the WhatsAppTrigger.
// This includes values selected through modifiers, order, etc.
func (_m *WhatsAppTrigger) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkspace queries the "workspace" edge of the WhatsAppTrigger entity.
func (_m *WhatsAppTrigger) QueryWorkspace() *WorkspaceQuery {
	return NewWhatsAppTriggerClient(_m.config).QueryWorkspace(_m)
}

// Update returns a builder for updating this WhatsAppTrigger.
// Note that you need to call WhatsAppTrigger.Unwrap() before calling this method if this WhatsAppTrigger
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WhatsAppTrigger) Update() *WhatsAppTriggerUpdateOne {
	return NewWhatsAppTriggerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WhatsAppTrigger entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WhatsAppTrigger) Unwrap() *WhatsAppTrigger {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WhatsAppTrigger is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WhatsAppTrigger) String() string {
	var builder strings.Builder
	builder.WriteString("WhatsAppTrigger(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workspace_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkspaceID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("is_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsEnabled))
	builder.WriteString(", ")
	builder.WriteString("campaign_name=")
	builder.WriteString(_m.CampaignName)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("template_params=")
	builder.WriteString(_m.TemplateParams)
	builder.WriteString(", ")
	builder.WriteString("params_fallback=")
	builder.WriteString(_m.ParamsFallback)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WhatsAppTriggers is a parsable slice of WhatsAppTrigger.
type WhatsAppTriggers []*WhatsAppTrigger
