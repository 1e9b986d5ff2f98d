// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/leadrouter/crm-backend/ent/assignmentrule"
	"github.com/leadrouter/crm-backend/ent/workspace"
)

// AssignmentRule is the model entity for the AssignmentRule schema.
type AssignmentRule struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Workspace this rule belongs to
	WorkspaceID int `json:"workspace_id,omitempty"`
	// Lead source this rule matches (null = any source)
	Source *string `json:"source,omitempty"`
	// Selection strategy
	AssignmentType assignmentrule.AssignmentType `json:"assignment_type,omitempty"`
	// User who receives leads matched by this rule
	AssigneeID int `json:"assignee_id,omitempty"`
	// Share of leads for percentage rules (0-100)
	Percentage int `json:"percentage,omitempty"`
	// Ascending precedence: lower value wins
	Priority int `json:"priority,omitempty"`
	// Disabled rules are never candidates
	IsEnabled bool `json:"is_enabled,omitempty"`
	// When this rule last assigned a lead (null = never)
	LastAssignedAt *time.Time `json:"last_assigned_at,omitempty"`
	// Monotonic count of leads assigned through this rule
	AssignmentCount int `json:"assignment_count,omitempty"`
	// Optimistic concurrency token for bookkeeping updates
	Version int `json:"version,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AssignmentRuleQuery when eager-loading is set.
	Edges        AssignmentRuleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AssignmentRuleEdges holds the relations/edges for other nodes in the graph.
type AssignmentRuleEdges struct {
	// Workspace holds the value of the workspace edge.
	Workspace *Workspace `json:"workspace,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WorkspaceOrErr returns the Workspace value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AssignmentRuleEdges) WorkspaceOrErr() (*Workspace, error) {
	if e.Workspace != nil {
		return e.Workspace, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workspace.Label}
	}
	return nil, &NotLoadedError{edge: "workspace"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AssignmentRule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assignmentrule.FieldIsEnabled:
			values[i] = new(sql.NullBool)
		case assignmentrule.FieldID, assignmentrule.FieldWorkspaceID, assignmentrule.FieldAssigneeID, assignmentrule.FieldPercentage, assignmentrule.FieldPriority, assignmentrule.FieldAssignmentCount, assignmentrule.FieldVersion:
			values[i] = new(sql.NullInt64)
		case assignmentrule.FieldSource, assignmentrule.FieldAssignmentType:
			values[i] = new(sql.NullString)
		case assignmentrule.FieldLastAssignedAt, assignmentrule.FieldCreatedAt, assignmentrule.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AssignmentRule fields.
func (_m *AssignmentRule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assignmentrule.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case assignmentrule.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = int(value.Int64)
			}
		case assignmentrule.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = new(string)
				*_m.Source = value.String
			}
		case assignmentrule.FieldAssignmentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assignment_type", values[i])
			} else if value.Valid {
				_m.AssignmentType = assignmentrule.AssignmentType(value.String)
			}
		case assignmentrule.FieldAssigneeID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field assignee_id", values[i])
			} else if value.Valid {
				_m.AssigneeID = int(value.Int64)
			}
		case assignmentrule.FieldPercentage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field percentage", values[i])
			} else if value.Valid {
				_m.Percentage = int(value.Int64)
			}
		case assignmentrule.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case assignmentrule.FieldIsEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_enabled", values[i])
			} else if value.Valid {
				_m.IsEnabled = value.Bool
			}
		case assignmentrule.FieldLastAssignedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_assigned_at", values[i])
			} else if value.Valid {
				_m.LastAssignedAt = new(time.Time)
				*_m.LastAssignedAt = value.Time
			}
		case assignmentrule.FieldAssignmentCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field assignment_count", values[i])
			} else if value.Valid {
				_m.AssignmentCount = int(value.Int64)
			}
		case assignmentrule.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case assignmentrule.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case assignmentrule.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AssignmentRule.
// This includes values selected through modifiers, order, etc.
func (_m *AssignmentRule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkspace queries the "workspace" edge of the AssignmentRule entity.
func (_m *AssignmentRule) QueryWorkspace() *WorkspaceQuery {
	return NewAssignmentRuleClient(_m.config).QueryWorkspace(_m)
}

// Update returns a builder for updating this AssignmentRule.
// Note that you need to call AssignmentRule.Unwrap() before calling this method if this AssignmentRule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AssignmentRule) Update() *AssignmentRuleUpdateOne {
	return NewAssignmentRuleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AssignmentRule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AssignmentRule) Unwrap() *AssignmentRule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AssignmentRule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AssignmentRule) String() string {
	var builder strings.Builder
	builder.WriteString("AssignmentRule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workspace_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkspaceID))
	builder.WriteString(", ")
	if v := _m.Source; v != nil {
		builder.WriteString("source=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("assignment_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssignmentType))
	builder.WriteString(", ")
	builder.WriteString("assignee_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssigneeID))
	builder.WriteString(", ")
	builder.WriteString("percentage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Percentage))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("is_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsEnabled))
	builder.WriteString(", ")
	if v := _m.LastAssignedAt; v != nil {
		builder.WriteString("last_assigned_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("assignment_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssignmentCount))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AssignmentRules is a parsable slice of AssignmentRule.
type AssignmentRules []*AssignmentRule
