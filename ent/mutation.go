// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/leadrouter/crm-backend/ent/activity"
	"github.com/leadrouter/crm-backend/ent/assignmentrule"
	"github.com/leadrouter/crm-backend/ent/lead"
	"github.com/leadrouter/crm-backend/ent/leadstatushistory"
	"github.com/leadrouter/crm-backend/ent/predicate"
	"github.com/leadrouter/crm-backend/ent/user"
	"github.com/leadrouter/crm-backend/ent/whatsapptrigger"
	"github.com/leadrouter/crm-backend/ent/workspace"
	"github.com/leadrouter/crm-backend/ent/workspacemember"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeActivity          = "Activity"
	TypeAssignmentRule    = "AssignmentRule"
	TypeLead              = "Lead"
	TypeLeadStatusHistory = "LeadStatusHistory"
	TypeUser              = "User"
	TypeWhatsAppTrigger   = "WhatsAppTrigger"
	TypeWorkspace         = "Workspace"
	TypeWorkspaceMember   = "WorkspaceMember"
)

// ActivityMutation represents an operation that mutates the Activity nodes in the graph.
type ActivityMutation struct {
	config
	op               Op
	typ              string
	id               *int
	_type            *activity.Type
	subject          *string
	description      *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	workspace        *int
	clearedworkspace bool
	lead             *int
	clearedlead      bool
	user             *int
	cleareduser      bool
	done             bool
	oldValue         func(context.Context) (*Activity, error)
	predicates       []predicate.Activity
}

var _ ent.Mutation = (*ActivityMutation)(nil)

// activityOption allows management of the mutation configuration using functional options.
type activityOption func(*ActivityMutation)

// newActivityMutation creates new mutation for the Activity entity.
func newActivityMutation(c config, op Op, opts ...activityOption) *ActivityMutation {
	m := &ActivityMutation{
		config:        c,
		op:            op,
		typ:           TypeActivity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActivityID sets the ID field of the mutation.
func withActivityID(id int) activityOption {
	return func(m *ActivityMutation) {
		var (
			err   error
			once  sync.Once
			value *Activity
		)
		m.oldValue = func(ctx context.Context) (*Activity, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Activity.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActivity sets the old Activity of the mutation.
func withActivity(node *Activity) activityOption {
	return func(m *ActivityMutation) {
		m.oldValue = func(context.Context) (*Activity, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActivityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActivityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActivityMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActivityMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Activity.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *ActivityMutation) SetWorkspaceID(i int) {
	m.workspace = &i
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *ActivityMutation) WorkspaceID() (r int, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldWorkspaceID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *ActivityMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetLeadID sets the "lead_id" field.
func (m *ActivityMutation) SetLeadID(i int) {
	m.lead = &i
}

// LeadID returns the value of the "lead_id" field in the mutation.
func (m *ActivityMutation) LeadID() (r int, exists bool) {
	v := m.lead
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadID returns the old "lead_id" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldLeadID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadID: %w", err)
	}
	return oldValue.LeadID, nil
}

// ResetLeadID resets all changes to the "lead_id" field.
func (m *ActivityMutation) ResetLeadID() {
	m.lead = nil
}

// SetUserID sets the "user_id" field.
func (m *ActivityMutation) SetUserID(i int) {
	m.user = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ActivityMutation) UserID() (r int, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldUserID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *ActivityMutation) ClearUserID() {
	m.user = nil
	m.clearedFields[activity.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *ActivityMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[activity.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ActivityMutation) ResetUserID() {
	m.user = nil
	delete(m.clearedFields, activity.FieldUserID)
}

// SetType sets the "type" field.
func (m *ActivityMutation) SetType(a activity.Type) {
	m._type = &a
}

// GetType returns the value of the "type" field in the mutation.
func (m *ActivityMutation) GetType() (r activity.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldType(ctx context.Context) (v activity.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *ActivityMutation) ResetType() {
	m._type = nil
}

// SetSubject sets the "subject" field.
func (m *ActivityMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *ActivityMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *ActivityMutation) ResetSubject() {
	m.subject = nil
}

// SetDescription sets the "description" field.
func (m *ActivityMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ActivityMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ActivityMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[activity.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ActivityMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[activity.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ActivityMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, activity.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *ActivityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ActivityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ActivityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *ActivityMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[activity.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *ActivityMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *ActivityMutation) WorkspaceIDs() (ids []int) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *ActivityMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// ClearLead clears the "lead" edge to the Lead entity.
func (m *ActivityMutation) ClearLead() {
	m.clearedlead = true
	m.clearedFields[activity.FieldLeadID] = struct{}{}
}

// LeadCleared reports if the "lead" edge to the Lead entity was cleared.
func (m *ActivityMutation) LeadCleared() bool {
	return m.clearedlead
}

// LeadIDs returns the "lead" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LeadID instead. It exists only for internal usage by the builders.
func (m *ActivityMutation) LeadIDs() (ids []int) {
	if id := m.lead; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLead resets all changes to the "lead" edge.
func (m *ActivityMutation) ResetLead() {
	m.lead = nil
	m.clearedlead = false
}

// ClearUser clears the "user" edge to the User entity.
func (m *ActivityMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[activity.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *ActivityMutation) UserCleared() bool {
	return m.UserIDCleared() || m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *ActivityMutation) UserIDs() (ids []int) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *ActivityMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the ActivityMutation builder.
func (m *ActivityMutation) Where(ps ...predicate.Activity) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActivityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActivityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Activity, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActivityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActivityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Activity).
func (m *ActivityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActivityMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.workspace != nil {
		fields = append(fields, activity.FieldWorkspaceID)
	}
	if m.lead != nil {
		fields = append(fields, activity.FieldLeadID)
	}
	if m.user != nil {
		fields = append(fields, activity.FieldUserID)
	}
	if m._type != nil {
		fields = append(fields, activity.FieldType)
	}
	if m.subject != nil {
		fields = append(fields, activity.FieldSubject)
	}
	if m.description != nil {
		fields = append(fields, activity.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, activity.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActivityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case activity.FieldWorkspaceID:
		return m.WorkspaceID()
	case activity.FieldLeadID:
		return m.LeadID()
	case activity.FieldUserID:
		return m.UserID()
	case activity.FieldType:
		return m.GetType()
	case activity.FieldSubject:
		return m.Subject()
	case activity.FieldDescription:
		return m.Description()
	case activity.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActivityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case activity.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case activity.FieldLeadID:
		return m.OldLeadID(ctx)
	case activity.FieldUserID:
		return m.OldUserID(ctx)
	case activity.FieldType:
		return m.OldType(ctx)
	case activity.FieldSubject:
		return m.OldSubject(ctx)
	case activity.FieldDescription:
		return m.OldDescription(ctx)
	case activity.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Activity field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case activity.FieldWorkspaceID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case activity.FieldLeadID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadID(v)
		return nil
	case activity.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case activity.FieldType:
		v, ok := value.(activity.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case activity.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case activity.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case activity.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Activity field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActivityMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActivityMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Activity numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActivityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(activity.FieldUserID) {
		fields = append(fields, activity.FieldUserID)
	}
	if m.FieldCleared(activity.FieldDescription) {
		fields = append(fields, activity.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActivityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActivityMutation) ClearField(name string) error {
	switch name {
	case activity.FieldUserID:
		m.ClearUserID()
		return nil
	case activity.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Activity nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActivityMutation) ResetField(name string) error {
	switch name {
	case activity.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case activity.FieldLeadID:
		m.ResetLeadID()
		return nil
	case activity.FieldUserID:
		m.ResetUserID()
		return nil
	case activity.FieldType:
		m.ResetType()
		return nil
	case activity.FieldSubject:
		m.ResetSubject()
		return nil
	case activity.FieldDescription:
		m.ResetDescription()
		return nil
	case activity.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Activity field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActivityMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.workspace != nil {
		edges = append(edges, activity.EdgeWorkspace)
	}
	if m.lead != nil {
		edges = append(edges, activity.EdgeLead)
	}
	if m.user != nil {
		edges = append(edges, activity.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActivityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case activity.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	case activity.EdgeLead:
		if id := m.lead; id != nil {
			return []ent.Value{*id}
		}
	case activity.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActivityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActivityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActivityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedworkspace {
		edges = append(edges, activity.EdgeWorkspace)
	}
	if m.clearedlead {
		edges = append(edges, activity.EdgeLead)
	}
	if m.cleareduser {
		edges = append(edges, activity.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActivityMutation) EdgeCleared(name string) bool {
	switch name {
	case activity.EdgeWorkspace:
		return m.clearedworkspace
	case activity.EdgeLead:
		return m.clearedlead
	case activity.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActivityMutation) ClearEdge(name string) error {
	switch name {
	case activity.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	case activity.EdgeLead:
		m.ClearLead()
		return nil
	case activity.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Activity unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActivityMutation) ResetEdge(name string) error {
	switch name {
	case activity.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	case activity.EdgeLead:
		m.ResetLead()
		return nil
	case activity.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown Activity edge %s", name)
}

// AssignmentRuleMutation represents an operation that mutates the AssignmentRule nodes in the graph.
type AssignmentRuleMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	source              *string
	assignment_type     *assignmentrule.AssignmentType
	assignee_id         *int
	addassignee_id      *int
	percentage          *int
	addpercentage       *int
	priority            *int
	addpriority         *int
	is_enabled          *bool
	last_assigned_at    *time.Time
	assignment_count    *int
	addassignment_count *int
	version             *int
	addversion          *int
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	workspace           *int
	clearedworkspace    bool
	done                bool
	oldValue            func(context.Context) (*AssignmentRule, error)
	predicates          []predicate.AssignmentRule
}

var _ ent.Mutation = (*AssignmentRuleMutation)(nil)

// assignmentruleOption allows management of the mutation configuration using functional options.
type assignmentruleOption func(*AssignmentRuleMutation)

// newAssignmentRuleMutation creates new mutation for the AssignmentRule entity.
func newAssignmentRuleMutation(c config, op Op, opts ...assignmentruleOption) *AssignmentRuleMutation {
	m := &AssignmentRuleMutation{
		config:        c,
		op:            op,
		typ:           TypeAssignmentRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssignmentRuleID sets the ID field of the mutation.
func withAssignmentRuleID(id int) assignmentruleOption {
	return func(m *AssignmentRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *AssignmentRule
		)
		m.oldValue = func(ctx context.Context) (*AssignmentRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AssignmentRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAssignmentRule sets the old AssignmentRule of the mutation.
func withAssignmentRule(node *AssignmentRule) assignmentruleOption {
	return func(m *AssignmentRuleMutation) {
		m.oldValue = func(context.Context) (*AssignmentRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssignmentRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssignmentRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssignmentRuleMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssignmentRuleMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AssignmentRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *AssignmentRuleMutation) SetWorkspaceID(i int) {
	m.workspace = &i
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *AssignmentRuleMutation) WorkspaceID() (r int, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the AssignmentRule entity.
// If the AssignmentRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentRuleMutation) OldWorkspaceID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *AssignmentRuleMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetSource sets the "source" field.
func (m *AssignmentRuleMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *AssignmentRuleMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the AssignmentRule entity.
// If the AssignmentRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentRuleMutation) OldSource(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ClearSource clears the value of the "source" field.
func (m *AssignmentRuleMutation) ClearSource() {
	m.source = nil
	m.clearedFields[assignmentrule.FieldSource] = struct{}{}
}

// SourceCleared returns if the "source" field was cleared in this mutation.
func (m *AssignmentRuleMutation) SourceCleared() bool {
	_, ok := m.clearedFields[assignmentrule.FieldSource]
	return ok
}

// ResetSource resets all changes to the "source" field.
func (m *AssignmentRuleMutation) ResetSource() {
	m.source = nil
	delete(m.clearedFields, assignmentrule.FieldSource)
}

// SetAssignmentType sets the "assignment_type" field.
func (m *AssignmentRuleMutation) SetAssignmentType(at assignmentrule.AssignmentType) {
	m.assignment_type = &at
}

// AssignmentType returns the value of the "assignment_type" field in the mutation.
func (m *AssignmentRuleMutation) AssignmentType() (r assignmentrule.AssignmentType, exists bool) {
	v := m.assignment_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignmentType returns the old "assignment_type" field's value of the AssignmentRule entity.
// If the AssignmentRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentRuleMutation) OldAssignmentType(ctx context.Context) (v assignmentrule.AssignmentType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignmentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignmentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignmentType: %w", err)
	}
	return oldValue.AssignmentType, nil
}

// ResetAssignmentType resets all changes to the "assignment_type" field.
func (m *AssignmentRuleMutation) ResetAssignmentType() {
	m.assignment_type = nil
}

// SetAssigneeID sets the "assignee_id" field.
func (m *AssignmentRuleMutation) SetAssigneeID(i int) {
	m.assignee_id = &i
	m.addassignee_id = nil
}

// AssigneeID returns the value of the "assignee_id" field in the mutation.
func (m *AssignmentRuleMutation) AssigneeID() (r int, exists bool) {
	v := m.assignee_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssigneeID returns the old "assignee_id" field's value of the AssignmentRule entity.
// If the AssignmentRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentRuleMutation) OldAssigneeID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssigneeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssigneeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssigneeID: %w", err)
	}
	return oldValue.AssigneeID, nil
}

// AddAssigneeID adds i to the "assignee_id" field.
func (m *AssignmentRuleMutation) AddAssigneeID(i int) {
	if m.addassignee_id != nil {
		*m.addassignee_id += i
	} else {
		m.addassignee_id = &i
	}
}

// AddedAssigneeID returns the value that was added to the "assignee_id" field in this mutation.
func (m *AssignmentRuleMutation) AddedAssigneeID() (r int, exists bool) {
	v := m.addassignee_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetAssigneeID resets all changes to the "assignee_id" field.
func (m *AssignmentRuleMutation) ResetAssigneeID() {
	m.assignee_id = nil
	m.addassignee_id = nil
}

// SetPercentage sets the "percentage" field.
func (m *AssignmentRuleMutation) SetPercentage(i int) {
	m.percentage = &i
	m.addpercentage = nil
}

// Percentage returns the value of the "percentage" field in the mutation.
func (m *AssignmentRuleMutation) Percentage() (r int, exists bool) {
	v := m.percentage
	if v == nil {
		return
	}
	return *v, true
}

// OldPercentage returns the old "percentage" field's value of the AssignmentRule entity.
// If the AssignmentRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentRuleMutation) OldPercentage(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPercentage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPercentage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPercentage: %w", err)
	}
	return oldValue.Percentage, nil
}

// AddPercentage adds i to the "percentage" field.
func (m *AssignmentRuleMutation) AddPercentage(i int) {
	if m.addpercentage != nil {
		*m.addpercentage += i
	} else {
		m.addpercentage = &i
	}
}

// AddedPercentage returns the value that was added to the "percentage" field in this mutation.
func (m *AssignmentRuleMutation) AddedPercentage() (r int, exists bool) {
	v := m.addpercentage
	if v == nil {
		return
	}
	return *v, true
}

// ResetPercentage resets all changes to the "percentage" field.
func (m *AssignmentRuleMutation) ResetPercentage() {
	m.percentage = nil
	m.addpercentage = nil
}

// SetPriority sets the "priority" field.
func (m *AssignmentRuleMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *AssignmentRuleMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the AssignmentRule entity.
// If the AssignmentRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentRuleMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *AssignmentRuleMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *AssignmentRuleMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *AssignmentRuleMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetIsEnabled sets the "is_enabled" field.
func (m *AssignmentRuleMutation) SetIsEnabled(b bool) {
	m.is_enabled = &b
}

// IsEnabled returns the value of the "is_enabled" field in the mutation.
func (m *AssignmentRuleMutation) IsEnabled() (r bool, exists bool) {
	v := m.is_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldIsEnabled returns the old "is_enabled" field's value of the AssignmentRule entity.
// If the AssignmentRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentRuleMutation) OldIsEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsEnabled: %w", err)
	}
	return oldValue.IsEnabled, nil
}

// ResetIsEnabled resets all changes to the "is_enabled" field.
func (m *AssignmentRuleMutation) ResetIsEnabled() {
	m.is_enabled = nil
}

// SetLastAssignedAt sets the "last_assigned_at" field.
func (m *AssignmentRuleMutation) SetLastAssignedAt(t time.Time) {
	m.last_assigned_at = &t
}

// LastAssignedAt returns the value of the "last_assigned_at" field in the mutation.
func (m *AssignmentRuleMutation) LastAssignedAt() (r time.Time, exists bool) {
	v := m.last_assigned_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAssignedAt returns the old "last_assigned_at" field's value of the AssignmentRule entity.
// If the AssignmentRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentRuleMutation) OldLastAssignedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAssignedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAssignedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAssignedAt: %w", err)
	}
	return oldValue.LastAssignedAt, nil
}

// ClearLastAssignedAt clears the value of the "last_assigned_at" field.
func (m *AssignmentRuleMutation) ClearLastAssignedAt() {
	m.last_assigned_at = nil
	m.clearedFields[assignmentrule.FieldLastAssignedAt] = struct{}{}
}

// LastAssignedAtCleared returns if the "last_assigned_at" field was cleared in this mutation.
func (m *AssignmentRuleMutation) LastAssignedAtCleared() bool {
	_, ok := m.clearedFields[assignmentrule.FieldLastAssignedAt]
	return ok
}

// ResetLastAssignedAt resets all changes to the "last_assigned_at" field.
func (m *AssignmentRuleMutation) ResetLastAssignedAt() {
	m.last_assigned_at = nil
	delete(m.clearedFields, assignmentrule.FieldLastAssignedAt)
}

// SetAssignmentCount sets the "assignment_count" field.
func (m *AssignmentRuleMutation) SetAssignmentCount(i int) {
	m.assignment_count = &i
	m.addassignment_count = nil
}

// AssignmentCount returns the value of the "assignment_count" field in the mutation.
func (m *AssignmentRuleMutation) AssignmentCount() (r int, exists bool) {
	v := m.assignment_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignmentCount returns the old "assignment_count" field's value of the AssignmentRule entity.
// If the AssignmentRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentRuleMutation) OldAssignmentCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignmentCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignmentCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignmentCount: %w", err)
	}
	return oldValue.AssignmentCount, nil
}

// AddAssignmentCount adds i to the "assignment_count" field.
func (m *AssignmentRuleMutation) AddAssignmentCount(i int) {
	if m.addassignment_count != nil {
		*m.addassignment_count += i
	} else {
		m.addassignment_count = &i
	}
}

// AddedAssignmentCount returns the value that was added to the "assignment_count" field in this mutation.
func (m *AssignmentRuleMutation) AddedAssignmentCount() (r int, exists bool) {
	v := m.addassignment_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAssignmentCount resets all changes to the "assignment_count" field.
func (m *AssignmentRuleMutation) ResetAssignmentCount() {
	m.assignment_count = nil
	m.addassignment_count = nil
}

// SetVersion sets the "version" field.
func (m *AssignmentRuleMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *AssignmentRuleMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the AssignmentRule entity.
// If the AssignmentRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentRuleMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *AssignmentRuleMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *AssignmentRuleMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *AssignmentRuleMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AssignmentRuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AssignmentRuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AssignmentRule entity.
// If the AssignmentRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentRuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AssignmentRuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AssignmentRuleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AssignmentRuleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AssignmentRule entity.
// If the AssignmentRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentRuleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AssignmentRuleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *AssignmentRuleMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[assignmentrule.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *AssignmentRuleMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *AssignmentRuleMutation) WorkspaceIDs() (ids []int) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *AssignmentRuleMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// Where appends a list predicates to the AssignmentRuleMutation builder.
func (m *AssignmentRuleMutation) Where(ps ...predicate.AssignmentRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssignmentRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssignmentRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AssignmentRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssignmentRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssignmentRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AssignmentRule).
func (m *AssignmentRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssignmentRuleMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.workspace != nil {
		fields = append(fields, assignmentrule.FieldWorkspaceID)
	}
	if m.source != nil {
		fields = append(fields, assignmentrule.FieldSource)
	}
	if m.assignment_type != nil {
		fields = append(fields, assignmentrule.FieldAssignmentType)
	}
	if m.assignee_id != nil {
		fields = append(fields, assignmentrule.FieldAssigneeID)
	}
	if m.percentage != nil {
		fields = append(fields, assignmentrule.FieldPercentage)
	}
	if m.priority != nil {
		fields = append(fields, assignmentrule.FieldPriority)
	}
	if m.is_enabled != nil {
		fields = append(fields, assignmentrule.FieldIsEnabled)
	}
	if m.last_assigned_at != nil {
		fields = append(fields, assignmentrule.FieldLastAssignedAt)
	}
	if m.assignment_count != nil {
		fields = append(fields, assignmentrule.FieldAssignmentCount)
	}
	if m.version != nil {
		fields = append(fields, assignmentrule.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, assignmentrule.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, assignmentrule.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssignmentRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case assignmentrule.FieldWorkspaceID:
		return m.WorkspaceID()
	case assignmentrule.FieldSource:
		return m.Source()
	case assignmentrule.FieldAssignmentType:
		return m.AssignmentType()
	case assignmentrule.FieldAssigneeID:
		return m.AssigneeID()
	case assignmentrule.FieldPercentage:
		return m.Percentage()
	case assignmentrule.FieldPriority:
		return m.Priority()
	case assignmentrule.FieldIsEnabled:
		return m.IsEnabled()
	case assignmentrule.FieldLastAssignedAt:
		return m.LastAssignedAt()
	case assignmentrule.FieldAssignmentCount:
		return m.AssignmentCount()
	case assignmentrule.FieldVersion:
		return m.Version()
	case assignmentrule.FieldCreatedAt:
		return m.CreatedAt()
	case assignmentrule.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssignmentRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case assignmentrule.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case assignmentrule.FieldSource:
		return m.OldSource(ctx)
	case assignmentrule.FieldAssignmentType:
		return m.OldAssignmentType(ctx)
	case assignmentrule.FieldAssigneeID:
		return m.OldAssigneeID(ctx)
	case assignmentrule.FieldPercentage:
		return m.OldPercentage(ctx)
	case assignmentrule.FieldPriority:
		return m.OldPriority(ctx)
	case assignmentrule.FieldIsEnabled:
		return m.OldIsEnabled(ctx)
	case assignmentrule.FieldLastAssignedAt:
		return m.OldLastAssignedAt(ctx)
	case assignmentrule.FieldAssignmentCount:
		return m.OldAssignmentCount(ctx)
	case assignmentrule.FieldVersion:
		return m.OldVersion(ctx)
	case assignmentrule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case assignmentrule.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AssignmentRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssignmentRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case assignmentrule.FieldWorkspaceID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case assignmentrule.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case assignmentrule.FieldAssignmentType:
		v, ok := value.(assignmentrule.AssignmentType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignmentType(v)
		return nil
	case assignmentrule.FieldAssigneeID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssigneeID(v)
		return nil
	case assignmentrule.FieldPercentage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPercentage(v)
		return nil
	case assignmentrule.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case assignmentrule.FieldIsEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsEnabled(v)
		return nil
	case assignmentrule.FieldLastAssignedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAssignedAt(v)
		return nil
	case assignmentrule.FieldAssignmentCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignmentCount(v)
		return nil
	case assignmentrule.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case assignmentrule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case assignmentrule.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AssignmentRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssignmentRuleMutation) AddedFields() []string {
	var fields []string
	if m.addassignee_id != nil {
		fields = append(fields, assignmentrule.FieldAssigneeID)
	}
	if m.addpercentage != nil {
		fields = append(fields, assignmentrule.FieldPercentage)
	}
	if m.addpriority != nil {
		fields = append(fields, assignmentrule.FieldPriority)
	}
	if m.addassignment_count != nil {
		fields = append(fields, assignmentrule.FieldAssignmentCount)
	}
	if m.addversion != nil {
		fields = append(fields, assignmentrule.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssignmentRuleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case assignmentrule.FieldAssigneeID:
		return m.AddedAssigneeID()
	case assignmentrule.FieldPercentage:
		return m.AddedPercentage()
	case assignmentrule.FieldPriority:
		return m.AddedPriority()
	case assignmentrule.FieldAssignmentCount:
		return m.AddedAssignmentCount()
	case assignmentrule.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssignmentRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case assignmentrule.FieldAssigneeID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAssigneeID(v)
		return nil
	case assignmentrule.FieldPercentage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPercentage(v)
		return nil
	case assignmentrule.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case assignmentrule.FieldAssignmentCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAssignmentCount(v)
		return nil
	case assignmentrule.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown AssignmentRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssignmentRuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(assignmentrule.FieldSource) {
		fields = append(fields, assignmentrule.FieldSource)
	}
	if m.FieldCleared(assignmentrule.FieldLastAssignedAt) {
		fields = append(fields, assignmentrule.FieldLastAssignedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssignmentRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssignmentRuleMutation) ClearField(name string) error {
	switch name {
	case assignmentrule.FieldSource:
		m.ClearSource()
		return nil
	case assignmentrule.FieldLastAssignedAt:
		m.ClearLastAssignedAt()
		return nil
	}
	return fmt.Errorf("unknown AssignmentRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssignmentRuleMutation) ResetField(name string) error {
	switch name {
	case assignmentrule.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case assignmentrule.FieldSource:
		m.ResetSource()
		return nil
	case assignmentrule.FieldAssignmentType:
		m.ResetAssignmentType()
		return nil
	case assignmentrule.FieldAssigneeID:
		m.ResetAssigneeID()
		return nil
	case assignmentrule.FieldPercentage:
		m.ResetPercentage()
		return nil
	case assignmentrule.FieldPriority:
		m.ResetPriority()
		return nil
	case assignmentrule.FieldIsEnabled:
		m.ResetIsEnabled()
		return nil
	case assignmentrule.FieldLastAssignedAt:
		m.ResetLastAssignedAt()
		return nil
	case assignmentrule.FieldAssignmentCount:
		m.ResetAssignmentCount()
		return nil
	case assignmentrule.FieldVersion:
		m.ResetVersion()
		return nil
	case assignmentrule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case assignmentrule.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AssignmentRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssignmentRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workspace != nil {
		edges = append(edges, assignmentrule.EdgeWorkspace)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssignmentRuleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case assignmentrule.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssignmentRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssignmentRuleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssignmentRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkspace {
		edges = append(edges, assignmentrule.EdgeWorkspace)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssignmentRuleMutation) EdgeCleared(name string) bool {
	switch name {
	case assignmentrule.EdgeWorkspace:
		return m.clearedworkspace
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssignmentRuleMutation) ClearEdge(name string) error {
	switch name {
	case assignmentrule.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	}
	return fmt.Errorf("unknown AssignmentRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssignmentRuleMutation) ResetEdge(name string) error {
	switch name {
	case assignmentrule.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	}
	return fmt.Errorf("unknown AssignmentRule edge %s", name)
}

// LeadMutation represents an operation that mutates the Lead nodes in the graph.
type LeadMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	first_name            *string
	last_name             *string
	phone                 *string
	email                 *string
	source                *string
	raw_source            *string
	status                *lead.Status
	status_changed_at     *time.Time
	course_interested     *string
	custom_fields         *map[string]interface{}
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	workspace             *int
	clearedworkspace      bool
	owner                 *int
	clearedowner          bool
	activities            map[int]struct{}
	removedactivities     map[int]struct{}
	clearedactivities     bool
	status_history        map[int]struct{}
	removedstatus_history map[int]struct{}
	clearedstatus_history bool
	done                  bool
	oldValue              func(context.Context) (*Lead, error)
	predicates            []predicate.Lead
}

var _ ent.Mutation = (*LeadMutation)(nil)

// leadOption allows management of the mutation configuration using functional options.
type leadOption func(*LeadMutation)

// newLeadMutation creates new mutation for the Lead entity.
func newLeadMutation(c config, op Op, opts ...leadOption) *LeadMutation {
	m := &LeadMutation{
		config:        c,
		op:            op,
		typ:           TypeLead,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeadID sets the ID field of the mutation.
func withLeadID(id int) leadOption {
	return func(m *LeadMutation) {
		var (
			err   error
			once  sync.Once
			value *Lead
		)
		m.oldValue = func(ctx context.Context) (*Lead, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Lead.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLead sets the old Lead of the mutation.
func withLead(node *Lead) leadOption {
	return func(m *LeadMutation) {
		m.oldValue = func(context.Context) (*Lead, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeadMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeadMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Lead.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *LeadMutation) SetWorkspaceID(i int) {
	m.workspace = &i
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *LeadMutation) WorkspaceID() (r int, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldWorkspaceID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *LeadMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetFirstName sets the "first_name" field.
func (m *LeadMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *LeadMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *LeadMutation) ResetFirstName() {
	m.first_name = nil
}

// SetLastName sets the "last_name" field.
func (m *LeadMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *LeadMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ClearLastName clears the value of the "last_name" field.
func (m *LeadMutation) ClearLastName() {
	m.last_name = nil
	m.clearedFields[lead.FieldLastName] = struct{}{}
}

// LastNameCleared returns if the "last_name" field was cleared in this mutation.
func (m *LeadMutation) LastNameCleared() bool {
	_, ok := m.clearedFields[lead.FieldLastName]
	return ok
}

// ResetLastName resets all changes to the "last_name" field.
func (m *LeadMutation) ResetLastName() {
	m.last_name = nil
	delete(m.clearedFields, lead.FieldLastName)
}

// SetPhone sets the "phone" field.
func (m *LeadMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *LeadMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ResetPhone resets all changes to the "phone" field.
func (m *LeadMutation) ResetPhone() {
	m.phone = nil
}

// SetEmail sets the "email" field.
func (m *LeadMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *LeadMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *LeadMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[lead.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *LeadMutation) EmailCleared() bool {
	_, ok := m.clearedFields[lead.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *LeadMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, lead.FieldEmail)
}

// SetSource sets the "source" field.
func (m *LeadMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *LeadMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *LeadMutation) ResetSource() {
	m.source = nil
}

// SetRawSource sets the "raw_source" field.
func (m *LeadMutation) SetRawSource(s string) {
	m.raw_source = &s
}

// RawSource returns the value of the "raw_source" field in the mutation.
func (m *LeadMutation) RawSource() (r string, exists bool) {
	v := m.raw_source
	if v == nil {
		return
	}
	return *v, true
}

// OldRawSource returns the old "raw_source" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldRawSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawSource: %w", err)
	}
	return oldValue.RawSource, nil
}

// ClearRawSource clears the value of the "raw_source" field.
func (m *LeadMutation) ClearRawSource() {
	m.raw_source = nil
	m.clearedFields[lead.FieldRawSource] = struct{}{}
}

// RawSourceCleared returns if the "raw_source" field was cleared in this mutation.
func (m *LeadMutation) RawSourceCleared() bool {
	_, ok := m.clearedFields[lead.FieldRawSource]
	return ok
}

// ResetRawSource resets all changes to the "raw_source" field.
func (m *LeadMutation) ResetRawSource() {
	m.raw_source = nil
	delete(m.clearedFields, lead.FieldRawSource)
}

// SetStatus sets the "status" field.
func (m *LeadMutation) SetStatus(l lead.Status) {
	m.status = &l
}

// Status returns the value of the "status" field in the mutation.
func (m *LeadMutation) Status() (r lead.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldStatus(ctx context.Context) (v lead.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *LeadMutation) ResetStatus() {
	m.status = nil
}

// SetStatusChangedAt sets the "status_changed_at" field.
func (m *LeadMutation) SetStatusChangedAt(t time.Time) {
	m.status_changed_at = &t
}

// StatusChangedAt returns the value of the "status_changed_at" field in the mutation.
func (m *LeadMutation) StatusChangedAt() (r time.Time, exists bool) {
	v := m.status_changed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusChangedAt returns the old "status_changed_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldStatusChangedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusChangedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusChangedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusChangedAt: %w", err)
	}
	return oldValue.StatusChangedAt, nil
}

// ResetStatusChangedAt resets all changes to the "status_changed_at" field.
func (m *LeadMutation) ResetStatusChangedAt() {
	m.status_changed_at = nil
}

// SetOwnerID sets the "owner_id" field.
func (m *LeadMutation) SetOwnerID(i int) {
	m.owner = &i
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *LeadMutation) OwnerID() (r int, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldOwnerID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ClearOwnerID clears the value of the "owner_id" field.
func (m *LeadMutation) ClearOwnerID() {
	m.owner = nil
	m.clearedFields[lead.FieldOwnerID] = struct{}{}
}

// OwnerIDCleared returns if the "owner_id" field was cleared in this mutation.
func (m *LeadMutation) OwnerIDCleared() bool {
	_, ok := m.clearedFields[lead.FieldOwnerID]
	return ok
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *LeadMutation) ResetOwnerID() {
	m.owner = nil
	delete(m.clearedFields, lead.FieldOwnerID)
}

// SetCourseInterested sets the "course_interested" field.
func (m *LeadMutation) SetCourseInterested(s string) {
	m.course_interested = &s
}

// CourseInterested returns the value of the "course_interested" field in the mutation.
func (m *LeadMutation) CourseInterested() (r string, exists bool) {
	v := m.course_interested
	if v == nil {
		return
	}
	return *v, true
}

// OldCourseInterested returns the old "course_interested" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCourseInterested(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourseInterested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourseInterested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourseInterested: %w", err)
	}
	return oldValue.CourseInterested, nil
}

// ClearCourseInterested clears the value of the "course_interested" field.
func (m *LeadMutation) ClearCourseInterested() {
	m.course_interested = nil
	m.clearedFields[lead.FieldCourseInterested] = struct{}{}
}

// CourseInterestedCleared returns if the "course_interested" field was cleared in this mutation.
func (m *LeadMutation) CourseInterestedCleared() bool {
	_, ok := m.clearedFields[lead.FieldCourseInterested]
	return ok
}

// ResetCourseInterested resets all changes to the "course_interested" field.
func (m *LeadMutation) ResetCourseInterested() {
	m.course_interested = nil
	delete(m.clearedFields, lead.FieldCourseInterested)
}

// SetCustomFields sets the "custom_fields" field.
func (m *LeadMutation) SetCustomFields(value map[string]interface{}) {
	m.custom_fields = &value
}

// CustomFields returns the value of the "custom_fields" field in the mutation.
func (m *LeadMutation) CustomFields() (r map[string]interface{}, exists bool) {
	v := m.custom_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomFields returns the old "custom_fields" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCustomFields(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomFields: %w", err)
	}
	return oldValue.CustomFields, nil
}

// ClearCustomFields clears the value of the "custom_fields" field.
func (m *LeadMutation) ClearCustomFields() {
	m.custom_fields = nil
	m.clearedFields[lead.FieldCustomFields] = struct{}{}
}

// CustomFieldsCleared returns if the "custom_fields" field was cleared in this mutation.
func (m *LeadMutation) CustomFieldsCleared() bool {
	_, ok := m.clearedFields[lead.FieldCustomFields]
	return ok
}

// ResetCustomFields resets all changes to the "custom_fields" field.
func (m *LeadMutation) ResetCustomFields() {
	m.custom_fields = nil
	delete(m.clearedFields, lead.FieldCustomFields)
}

// SetCreatedAt sets the "created_at" field.
func (m *LeadMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LeadMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LeadMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LeadMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LeadMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LeadMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *LeadMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[lead.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *LeadMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *LeadMutation) WorkspaceIDs() (ids []int) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *LeadMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// ClearOwner clears the "owner" edge to the User entity.
func (m *LeadMutation) ClearOwner() {
	m.clearedowner = true
	m.clearedFields[lead.FieldOwnerID] = struct{}{}
}

// OwnerCleared reports if the "owner" edge to the User entity was cleared.
func (m *LeadMutation) OwnerCleared() bool {
	return m.OwnerIDCleared() || m.clearedowner
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *LeadMutation) OwnerIDs() (ids []int) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *LeadMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// AddActivityIDs adds the "activities" edge to the Activity entity by ids.
func (m *LeadMutation) AddActivityIDs(ids ...int) {
	if m.activities == nil {
		m.activities = make(map[int]struct{})
	}
	for i := range ids {
		m.activities[ids[i]] = struct{}{}
	}
}

// ClearActivities clears the "activities" edge to the Activity entity.
func (m *LeadMutation) ClearActivities() {
	m.clearedactivities = true
}

// ActivitiesCleared reports if the "activities" edge to the Activity entity was cleared.
func (m *LeadMutation) ActivitiesCleared() bool {
	return m.clearedactivities
}

// RemoveActivityIDs removes the "activities" edge to the Activity entity by IDs.
func (m *LeadMutation) RemoveActivityIDs(ids ...int) {
	if m.removedactivities == nil {
		m.removedactivities = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.activities, ids[i])
		m.removedactivities[ids[i]] = struct{}{}
	}
}

// RemovedActivities returns the removed IDs of the "activities" edge to the Activity entity.
func (m *LeadMutation) RemovedActivitiesIDs() (ids []int) {
	for id := range m.removedactivities {
		ids = append(ids, id)
	}
	return
}

// ActivitiesIDs returns the "activities" edge IDs in the mutation.
func (m *LeadMutation) ActivitiesIDs() (ids []int) {
	for id := range m.activities {
		ids = append(ids, id)
	}
	return
}

// ResetActivities resets all changes to the "activities" edge.
func (m *LeadMutation) ResetActivities() {
	m.activities = nil
	m.clearedactivities = false
	m.removedactivities = nil
}

// AddStatusHistoryIDs adds the "status_history" edge to the LeadStatusHistory entity by ids.
func (m *LeadMutation) AddStatusHistoryIDs(ids ...int) {
	if m.status_history == nil {
		m.status_history = make(map[int]struct{})
	}
	for i := range ids {
		m.status_history[ids[i]] = struct{}{}
	}
}

// ClearStatusHistory clears the "status_history" edge to the LeadStatusHistory entity.
func (m *LeadMutation) ClearStatusHistory() {
	m.clearedstatus_history = true
}

// StatusHistoryCleared reports if the "status_history" edge to the LeadStatusHistory entity was cleared.
func (m *LeadMutation) StatusHistoryCleared() bool {
	return m.clearedstatus_history
}

// RemoveStatusHistoryIDs removes the "status_history" edge to the LeadStatusHistory entity by IDs.
func (m *LeadMutation) RemoveStatusHistoryIDs(ids ...int) {
	if m.removedstatus_history == nil {
		m.removedstatus_history = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.status_history, ids[i])
		m.removedstatus_history[ids[i]] = struct{}{}
	}
}

// RemovedStatusHistory returns the removed IDs of the "status_history" edge to the LeadStatusHistory entity.
func (m *LeadMutation) RemovedStatusHistoryIDs() (ids []int) {
	for id := range m.removedstatus_history {
		ids = append(ids, id)
	}
	return
}

// StatusHistoryIDs returns the "status_history" edge IDs in the mutation.
func (m *LeadMutation) StatusHistoryIDs() (ids []int) {
	for id := range m.status_history {
		ids = append(ids, id)
	}
	return
}

// ResetStatusHistory resets all changes to the "status_history" edge.
func (m *LeadMutation) ResetStatusHistory() {
	m.status_history = nil
	m.clearedstatus_history = false
	m.removedstatus_history = nil
}

// Where appends a list predicates to the LeadMutation builder.
func (m *LeadMutation) Where(ps ...predicate.Lead) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Lead, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Lead).
func (m *LeadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeadMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.workspace != nil {
		fields = append(fields, lead.FieldWorkspaceID)
	}
	if m.first_name != nil {
		fields = append(fields, lead.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, lead.FieldLastName)
	}
	if m.phone != nil {
		fields = append(fields, lead.FieldPhone)
	}
	if m.email != nil {
		fields = append(fields, lead.FieldEmail)
	}
	if m.source != nil {
		fields = append(fields, lead.FieldSource)
	}
	if m.raw_source != nil {
		fields = append(fields, lead.FieldRawSource)
	}
	if m.status != nil {
		fields = append(fields, lead.FieldStatus)
	}
	if m.status_changed_at != nil {
		fields = append(fields, lead.FieldStatusChangedAt)
	}
	if m.owner != nil {
		fields = append(fields, lead.FieldOwnerID)
	}
	if m.course_interested != nil {
		fields = append(fields, lead.FieldCourseInterested)
	}
	if m.custom_fields != nil {
		fields = append(fields, lead.FieldCustomFields)
	}
	if m.created_at != nil {
		fields = append(fields, lead.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, lead.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lead.FieldWorkspaceID:
		return m.WorkspaceID()
	case lead.FieldFirstName:
		return m.FirstName()
	case lead.FieldLastName:
		return m.LastName()
	case lead.FieldPhone:
		return m.Phone()
	case lead.FieldEmail:
		return m.Email()
	case lead.FieldSource:
		return m.Source()
	case lead.FieldRawSource:
		return m.RawSource()
	case lead.FieldStatus:
		return m.Status()
	case lead.FieldStatusChangedAt:
		return m.StatusChangedAt()
	case lead.FieldOwnerID:
		return m.OwnerID()
	case lead.FieldCourseInterested:
		return m.CourseInterested()
	case lead.FieldCustomFields:
		return m.CustomFields()
	case lead.FieldCreatedAt:
		return m.CreatedAt()
	case lead.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lead.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case lead.FieldFirstName:
		return m.OldFirstName(ctx)
	case lead.FieldLastName:
		return m.OldLastName(ctx)
	case lead.FieldPhone:
		return m.OldPhone(ctx)
	case lead.FieldEmail:
		return m.OldEmail(ctx)
	case lead.FieldSource:
		return m.OldSource(ctx)
	case lead.FieldRawSource:
		return m.OldRawSource(ctx)
	case lead.FieldStatus:
		return m.OldStatus(ctx)
	case lead.FieldStatusChangedAt:
		return m.OldStatusChangedAt(ctx)
	case lead.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case lead.FieldCourseInterested:
		return m.OldCourseInterested(ctx)
	case lead.FieldCustomFields:
		return m.OldCustomFields(ctx)
	case lead.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case lead.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Lead field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lead.FieldWorkspaceID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case lead.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case lead.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case lead.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case lead.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case lead.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case lead.FieldRawSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawSource(v)
		return nil
	case lead.FieldStatus:
		v, ok := value.(lead.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case lead.FieldStatusChangedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusChangedAt(v)
		return nil
	case lead.FieldOwnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case lead.FieldCourseInterested:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourseInterested(v)
		return nil
	case lead.FieldCustomFields:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomFields(v)
		return nil
	case lead.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case lead.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeadMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeadMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Lead numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeadMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lead.FieldLastName) {
		fields = append(fields, lead.FieldLastName)
	}
	if m.FieldCleared(lead.FieldEmail) {
		fields = append(fields, lead.FieldEmail)
	}
	if m.FieldCleared(lead.FieldRawSource) {
		fields = append(fields, lead.FieldRawSource)
	}
	if m.FieldCleared(lead.FieldOwnerID) {
		fields = append(fields, lead.FieldOwnerID)
	}
	if m.FieldCleared(lead.FieldCourseInterested) {
		fields = append(fields, lead.FieldCourseInterested)
	}
	if m.FieldCleared(lead.FieldCustomFields) {
		fields = append(fields, lead.FieldCustomFields)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeadMutation) ClearField(name string) error {
	switch name {
	case lead.FieldLastName:
		m.ClearLastName()
		return nil
	case lead.FieldEmail:
		m.ClearEmail()
		return nil
	case lead.FieldRawSource:
		m.ClearRawSource()
		return nil
	case lead.FieldOwnerID:
		m.ClearOwnerID()
		return nil
	case lead.FieldCourseInterested:
		m.ClearCourseInterested()
		return nil
	case lead.FieldCustomFields:
		m.ClearCustomFields()
		return nil
	}
	return fmt.Errorf("unknown Lead nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeadMutation) ResetField(name string) error {
	switch name {
	case lead.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case lead.FieldFirstName:
		m.ResetFirstName()
		return nil
	case lead.FieldLastName:
		m.ResetLastName()
		return nil
	case lead.FieldPhone:
		m.ResetPhone()
		return nil
	case lead.FieldEmail:
		m.ResetEmail()
		return nil
	case lead.FieldSource:
		m.ResetSource()
		return nil
	case lead.FieldRawSource:
		m.ResetRawSource()
		return nil
	case lead.FieldStatus:
		m.ResetStatus()
		return nil
	case lead.FieldStatusChangedAt:
		m.ResetStatusChangedAt()
		return nil
	case lead.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case lead.FieldCourseInterested:
		m.ResetCourseInterested()
		return nil
	case lead.FieldCustomFields:
		m.ResetCustomFields()
		return nil
	case lead.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case lead.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeadMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.workspace != nil {
		edges = append(edges, lead.EdgeWorkspace)
	}
	if m.owner != nil {
		edges = append(edges, lead.EdgeOwner)
	}
	if m.activities != nil {
		edges = append(edges, lead.EdgeActivities)
	}
	if m.status_history != nil {
		edges = append(edges, lead.EdgeStatusHistory)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeadMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case lead.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	case lead.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	case lead.EdgeActivities:
		ids := make([]ent.Value, 0, len(m.activities))
		for id := range m.activities {
			ids = append(ids, id)
		}
		return ids
	case lead.EdgeStatusHistory:
		ids := make([]ent.Value, 0, len(m.status_history))
		for id := range m.status_history {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedactivities != nil {
		edges = append(edges, lead.EdgeActivities)
	}
	if m.removedstatus_history != nil {
		edges = append(edges, lead.EdgeStatusHistory)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeadMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case lead.EdgeActivities:
		ids := make([]ent.Value, 0, len(m.removedactivities))
		for id := range m.removedactivities {
			ids = append(ids, id)
		}
		return ids
	case lead.EdgeStatusHistory:
		ids := make([]ent.Value, 0, len(m.removedstatus_history))
		for id := range m.removedstatus_history {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedworkspace {
		edges = append(edges, lead.EdgeWorkspace)
	}
	if m.clearedowner {
		edges = append(edges, lead.EdgeOwner)
	}
	if m.clearedactivities {
		edges = append(edges, lead.EdgeActivities)
	}
	if m.clearedstatus_history {
		edges = append(edges, lead.EdgeStatusHistory)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeadMutation) EdgeCleared(name string) bool {
	switch name {
	case lead.EdgeWorkspace:
		return m.clearedworkspace
	case lead.EdgeOwner:
		return m.clearedowner
	case lead.EdgeActivities:
		return m.clearedactivities
	case lead.EdgeStatusHistory:
		return m.clearedstatus_history
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeadMutation) ClearEdge(name string) error {
	switch name {
	case lead.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	case lead.EdgeOwner:
		m.ClearOwner()
		return nil
	}
	return fmt.Errorf("unknown Lead unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeadMutation) ResetEdge(name string) error {
	switch name {
	case lead.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	case lead.EdgeOwner:
		m.ResetOwner()
		return nil
	case lead.EdgeActivities:
		m.ResetActivities()
		return nil
	case lead.EdgeStatusHistory:
		m.ResetStatusHistory()
		return nil
	}
	return fmt.Errorf("unknown Lead edge %s", name)
}

// LeadStatusHistoryMutation represents an operation that mutates the LeadStatusHistory nodes in the graph.
type LeadStatusHistoryMutation struct {
	config
	op            Op
	typ           string
	id            *int
	old_status    *string
	new_status    *string
	reason        *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	lead          *int
	clearedlead   bool
	user          *int
	cleareduser   bool
	done          bool
	oldValue      func(context.Context) (*LeadStatusHistory, error)
	predicates    []predicate.LeadStatusHistory
}

var _ ent.Mutation = (*LeadStatusHistoryMutation)(nil)

// leadstatushistoryOption allows management of the mutation configuration using functional options.
type leadstatushistoryOption func(*LeadStatusHistoryMutation)

// newLeadStatusHistoryMutation creates new mutation for the LeadStatusHistory entity.
func newLeadStatusHistoryMutation(c config, op Op, opts ...leadstatushistoryOption) *LeadStatusHistoryMutation {
	m := &LeadStatusHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeLeadStatusHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeadStatusHistoryID sets the ID field of the mutation.
func withLeadStatusHistoryID(id int) leadstatushistoryOption {
	return func(m *LeadStatusHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *LeadStatusHistory
		)
		m.oldValue = func(ctx context.Context) (*LeadStatusHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LeadStatusHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLeadStatusHistory sets the old LeadStatusHistory of the mutation.
func withLeadStatusHistory(node *LeadStatusHistory) leadstatushistoryOption {
	return func(m *LeadStatusHistoryMutation) {
		m.oldValue = func(context.Context) (*LeadStatusHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeadStatusHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeadStatusHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeadStatusHistoryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeadStatusHistoryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LeadStatusHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLeadID sets the "lead_id" field.
func (m *LeadStatusHistoryMutation) SetLeadID(i int) {
	m.lead = &i
}

// LeadID returns the value of the "lead_id" field in the mutation.
func (m *LeadStatusHistoryMutation) LeadID() (r int, exists bool) {
	v := m.lead
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadID returns the old "lead_id" field's value of the LeadStatusHistory entity.
// If the LeadStatusHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadStatusHistoryMutation) OldLeadID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadID: %w", err)
	}
	return oldValue.LeadID, nil
}

// ResetLeadID resets all changes to the "lead_id" field.
func (m *LeadStatusHistoryMutation) ResetLeadID() {
	m.lead = nil
}

// SetUserID sets the "user_id" field.
func (m *LeadStatusHistoryMutation) SetUserID(i int) {
	m.user = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *LeadStatusHistoryMutation) UserID() (r int, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the LeadStatusHistory entity.
// If the LeadStatusHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadStatusHistoryMutation) OldUserID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *LeadStatusHistoryMutation) ClearUserID() {
	m.user = nil
	m.clearedFields[leadstatushistory.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *LeadStatusHistoryMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[leadstatushistory.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *LeadStatusHistoryMutation) ResetUserID() {
	m.user = nil
	delete(m.clearedFields, leadstatushistory.FieldUserID)
}

// SetOldStatus sets the "old_status" field.
func (m *LeadStatusHistoryMutation) SetOldStatus(s string) {
	m.old_status = &s
}

// OldStatus returns the value of the "old_status" field in the mutation.
func (m *LeadStatusHistoryMutation) OldStatus() (r string, exists bool) {
	v := m.old_status
	if v == nil {
		return
	}
	return *v, true
}

// OldOldStatus returns the old "old_status" field's value of the LeadStatusHistory entity.
// If the LeadStatusHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadStatusHistoryMutation) OldOldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOldStatus: %w", err)
	}
	return oldValue.OldStatus, nil
}

// ClearOldStatus clears the value of the "old_status" field.
func (m *LeadStatusHistoryMutation) ClearOldStatus() {
	m.old_status = nil
	m.clearedFields[leadstatushistory.FieldOldStatus] = struct{}{}
}

// OldStatusCleared returns if the "old_status" field was cleared in this mutation.
func (m *LeadStatusHistoryMutation) OldStatusCleared() bool {
	_, ok := m.clearedFields[leadstatushistory.FieldOldStatus]
	return ok
}

// ResetOldStatus resets all changes to the "old_status" field.
func (m *LeadStatusHistoryMutation) ResetOldStatus() {
	m.old_status = nil
	delete(m.clearedFields, leadstatushistory.FieldOldStatus)
}

// SetNewStatus sets the "new_status" field.
func (m *LeadStatusHistoryMutation) SetNewStatus(s string) {
	m.new_status = &s
}

// NewStatus returns the value of the "new_status" field in the mutation.
func (m *LeadStatusHistoryMutation) NewStatus() (r string, exists bool) {
	v := m.new_status
	if v == nil {
		return
	}
	return *v, true
}

// OldNewStatus returns the old "new_status" field's value of the LeadStatusHistory entity.
// If the LeadStatusHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadStatusHistoryMutation) OldNewStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewStatus: %w", err)
	}
	return oldValue.NewStatus, nil
}

// ResetNewStatus resets all changes to the "new_status" field.
func (m *LeadStatusHistoryMutation) ResetNewStatus() {
	m.new_status = nil
}

// SetReason sets the "reason" field.
func (m *LeadStatusHistoryMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *LeadStatusHistoryMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the LeadStatusHistory entity.
// If the LeadStatusHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadStatusHistoryMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *LeadStatusHistoryMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[leadstatushistory.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *LeadStatusHistoryMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[leadstatushistory.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *LeadStatusHistoryMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, leadstatushistory.FieldReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *LeadStatusHistoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LeadStatusHistoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LeadStatusHistory entity.
// If the LeadStatusHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadStatusHistoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LeadStatusHistoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearLead clears the "lead" edge to the Lead entity.
func (m *LeadStatusHistoryMutation) ClearLead() {
	m.clearedlead = true
	m.clearedFields[leadstatushistory.FieldLeadID] = struct{}{}
}

// LeadCleared reports if the "lead" edge to the Lead entity was cleared.
func (m *LeadStatusHistoryMutation) LeadCleared() bool {
	return m.clearedlead
}

// LeadIDs returns the "lead" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LeadID instead. It exists only for internal usage by the builders.
func (m *LeadStatusHistoryMutation) LeadIDs() (ids []int) {
	if id := m.lead; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLead resets all changes to the "lead" edge.
func (m *LeadStatusHistoryMutation) ResetLead() {
	m.lead = nil
	m.clearedlead = false
}

// ClearUser clears the "user" edge to the User entity.
func (m *LeadStatusHistoryMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[leadstatushistory.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *LeadStatusHistoryMutation) UserCleared() bool {
	return m.UserIDCleared() || m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *LeadStatusHistoryMutation) UserIDs() (ids []int) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *LeadStatusHistoryMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the LeadStatusHistoryMutation builder.
func (m *LeadStatusHistoryMutation) Where(ps ...predicate.LeadStatusHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeadStatusHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeadStatusHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LeadStatusHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeadStatusHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeadStatusHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LeadStatusHistory).
func (m *LeadStatusHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeadStatusHistoryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.lead != nil {
		fields = append(fields, leadstatushistory.FieldLeadID)
	}
	if m.user != nil {
		fields = append(fields, leadstatushistory.FieldUserID)
	}
	if m.old_status != nil {
		fields = append(fields, leadstatushistory.FieldOldStatus)
	}
	if m.new_status != nil {
		fields = append(fields, leadstatushistory.FieldNewStatus)
	}
	if m.reason != nil {
		fields = append(fields, leadstatushistory.FieldReason)
	}
	if m.created_at != nil {
		fields = append(fields, leadstatushistory.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeadStatusHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case leadstatushistory.FieldLeadID:
		return m.LeadID()
	case leadstatushistory.FieldUserID:
		return m.UserID()
	case leadstatushistory.FieldOldStatus:
		return m.OldStatus()
	case leadstatushistory.FieldNewStatus:
		return m.NewStatus()
	case leadstatushistory.FieldReason:
		return m.Reason()
	case leadstatushistory.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeadStatusHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case leadstatushistory.FieldLeadID:
		return m.OldLeadID(ctx)
	case leadstatushistory.FieldUserID:
		return m.OldUserID(ctx)
	case leadstatushistory.FieldOldStatus:
		return m.OldOldStatus(ctx)
	case leadstatushistory.FieldNewStatus:
		return m.OldNewStatus(ctx)
	case leadstatushistory.FieldReason:
		return m.OldReason(ctx)
	case leadstatushistory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LeadStatusHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadStatusHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case leadstatushistory.FieldLeadID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadID(v)
		return nil
	case leadstatushistory.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case leadstatushistory.FieldOldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOldStatus(v)
		return nil
	case leadstatushistory.FieldNewStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewStatus(v)
		return nil
	case leadstatushistory.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case leadstatushistory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LeadStatusHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeadStatusHistoryMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeadStatusHistoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadStatusHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown LeadStatusHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeadStatusHistoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(leadstatushistory.FieldUserID) {
		fields = append(fields, leadstatushistory.FieldUserID)
	}
	if m.FieldCleared(leadstatushistory.FieldOldStatus) {
		fields = append(fields, leadstatushistory.FieldOldStatus)
	}
	if m.FieldCleared(leadstatushistory.FieldReason) {
		fields = append(fields, leadstatushistory.FieldReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeadStatusHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeadStatusHistoryMutation) ClearField(name string) error {
	switch name {
	case leadstatushistory.FieldUserID:
		m.ClearUserID()
		return nil
	case leadstatushistory.FieldOldStatus:
		m.ClearOldStatus()
		return nil
	case leadstatushistory.FieldReason:
		m.ClearReason()
		return nil
	}
	return fmt.Errorf("unknown LeadStatusHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeadStatusHistoryMutation) ResetField(name string) error {
	switch name {
	case leadstatushistory.FieldLeadID:
		m.ResetLeadID()
		return nil
	case leadstatushistory.FieldUserID:
		m.ResetUserID()
		return nil
	case leadstatushistory.FieldOldStatus:
		m.ResetOldStatus()
		return nil
	case leadstatushistory.FieldNewStatus:
		m.ResetNewStatus()
		return nil
	case leadstatushistory.FieldReason:
		m.ResetReason()
		return nil
	case leadstatushistory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LeadStatusHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeadStatusHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.lead != nil {
		edges = append(edges, leadstatushistory.EdgeLead)
	}
	if m.user != nil {
		edges = append(edges, leadstatushistory.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeadStatusHistoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case leadstatushistory.EdgeLead:
		if id := m.lead; id != nil {
			return []ent.Value{*id}
		}
	case leadstatushistory.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeadStatusHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeadStatusHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeadStatusHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedlead {
		edges = append(edges, leadstatushistory.EdgeLead)
	}
	if m.cleareduser {
		edges = append(edges, leadstatushistory.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeadStatusHistoryMutation) EdgeCleared(name string) bool {
	switch name {
	case leadstatushistory.EdgeLead:
		return m.clearedlead
	case leadstatushistory.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeadStatusHistoryMutation) ClearEdge(name string) error {
	switch name {
	case leadstatushistory.EdgeLead:
		m.ClearLead()
		return nil
	case leadstatushistory.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown LeadStatusHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeadStatusHistoryMutation) ResetEdge(name string) error {
	switch name {
	case leadstatushistory.EdgeLead:
		m.ResetLead()
		return nil
	case leadstatushistory.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown LeadStatusHistory edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                           Op
	typ                          string
	id                           *int
	name                         *string
	email                        *string
	phone                        *string
	is_active                    *bool
	created_at                   *time.Time
	updated_at                   *time.Time
	clearedFields                map[string]struct{}
	workspace_memberships        map[int]struct{}
	removedworkspace_memberships map[int]struct{}
	clearedworkspace_memberships bool
	owned_leads                  map[int]struct{}
	removedowned_leads           map[int]struct{}
	clearedowned_leads           bool
	activities                   map[int]struct{}
	removedactivities            map[int]struct{}
	clearedactivities            bool
	status_changes               map[int]struct{}
	removedstatus_changes        map[int]struct{}
	clearedstatus_changes        bool
	done                         bool
	oldValue                     func(context.Context) (*User, error)
	predicates                   []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id int) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetPhone sets the "phone" field.
func (m *UserMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *UserMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *UserMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[user.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *UserMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[user.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *UserMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, user.FieldPhone)
}

// SetIsActive sets the "is_active" field.
func (m *UserMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *UserMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *UserMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddWorkspaceMembershipIDs adds the "workspace_memberships" edge to the WorkspaceMember entity by ids.
func (m *UserMutation) AddWorkspaceMembershipIDs(ids ...int) {
	if m.workspace_memberships == nil {
		m.workspace_memberships = make(map[int]struct{})
	}
	for i := range ids {
		m.workspace_memberships[ids[i]] = struct{}{}
	}
}

// ClearWorkspaceMemberships clears the "workspace_memberships" edge to the WorkspaceMember entity.
func (m *UserMutation) ClearWorkspaceMemberships() {
	m.clearedworkspace_memberships = true
}

// WorkspaceMembershipsCleared reports if the "workspace_memberships" edge to the WorkspaceMember entity was cleared.
func (m *UserMutation) WorkspaceMembershipsCleared() bool {
	return m.clearedworkspace_memberships
}

// RemoveWorkspaceMembershipIDs removes the "workspace_memberships" edge to the WorkspaceMember entity by IDs.
func (m *UserMutation) RemoveWorkspaceMembershipIDs(ids ...int) {
	if m.removedworkspace_memberships == nil {
		m.removedworkspace_memberships = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.workspace_memberships, ids[i])
		m.removedworkspace_memberships[ids[i]] = struct{}{}
	}
}

// RemovedWorkspaceMemberships returns the removed IDs of the "workspace_memberships" edge to the WorkspaceMember entity.
func (m *UserMutation) RemovedWorkspaceMembershipsIDs() (ids []int) {
	for id := range m.removedworkspace_memberships {
		ids = append(ids, id)
	}
	return
}

// WorkspaceMembershipsIDs returns the "workspace_memberships" edge IDs in the mutation.
func (m *UserMutation) WorkspaceMembershipsIDs() (ids []int) {
	for id := range m.workspace_memberships {
		ids = append(ids, id)
	}
	return
}

// ResetWorkspaceMemberships resets all changes to the "workspace_memberships" edge.
func (m *UserMutation) ResetWorkspaceMemberships() {
	m.workspace_memberships = nil
	m.clearedworkspace_memberships = false
	m.removedworkspace_memberships = nil
}

// AddOwnedLeadIDs adds the "owned_leads" edge to the Lead entity by ids.
func (m *UserMutation) AddOwnedLeadIDs(ids ...int) {
	if m.owned_leads == nil {
		m.owned_leads = make(map[int]struct{})
	}
	for i := range ids {
		m.owned_leads[ids[i]] = struct{}{}
	}
}

// ClearOwnedLeads clears the "owned_leads" edge to the Lead entity.
func (m *UserMutation) ClearOwnedLeads() {
	m.clearedowned_leads = true
}

// OwnedLeadsCleared reports if the "owned_leads" edge to the Lead entity was cleared.
func (m *UserMutation) OwnedLeadsCleared() bool {
	return m.clearedowned_leads
}

// RemoveOwnedLeadIDs removes the "owned_leads" edge to the Lead entity by IDs.
func (m *UserMutation) RemoveOwnedLeadIDs(ids ...int) {
	if m.removedowned_leads == nil {
		m.removedowned_leads = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.owned_leads, ids[i])
		m.removedowned_leads[ids[i]] = struct{}{}
	}
}

// RemovedOwnedLeads returns the removed IDs of the "owned_leads" edge to the Lead entity.
func (m *UserMutation) RemovedOwnedLeadsIDs() (ids []int) {
	for id := range m.removedowned_leads {
		ids = append(ids, id)
	}
	return
}

// OwnedLeadsIDs returns the "owned_leads" edge IDs in the mutation.
func (m *UserMutation) OwnedLeadsIDs() (ids []int) {
	for id := range m.owned_leads {
		ids = append(ids, id)
	}
	return
}

// ResetOwnedLeads resets all changes to the "owned_leads" edge.
func (m *UserMutation) ResetOwnedLeads() {
	m.owned_leads = nil
	m.clearedowned_leads = false
	m.removedowned_leads = nil
}

// AddActivityIDs adds the "activities" edge to the Activity entity by ids.
func (m *UserMutation) AddActivityIDs(ids ...int) {
	if m.activities == nil {
		m.activities = make(map[int]struct{})
	}
	for i := range ids {
		m.activities[ids[i]] = struct{}{}
	}
}

// ClearActivities clears the "activities" edge to the Activity entity.
func (m *UserMutation) ClearActivities() {
	m.clearedactivities = true
}

// ActivitiesCleared reports if the "activities" edge to the Activity entity was cleared.
func (m *UserMutation) ActivitiesCleared() bool {
	return m.clearedactivities
}

// RemoveActivityIDs removes the "activities" edge to the Activity entity by IDs.
func (m *UserMutation) RemoveActivityIDs(ids ...int) {
	if m.removedactivities == nil {
		m.removedactivities = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.activities, ids[i])
		m.removedactivities[ids[i]] = struct{}{}
	}
}

// RemovedActivities returns the removed IDs of the "activities" edge to the Activity entity.
func (m *UserMutation) RemovedActivitiesIDs() (ids []int) {
	for id := range m.removedactivities {
		ids = append(ids, id)
	}
	return
}

// ActivitiesIDs returns the "activities" edge IDs in the mutation.
func (m *UserMutation) ActivitiesIDs() (ids []int) {
	for id := range m.activities {
		ids = append(ids, id)
	}
	return
}

// ResetActivities resets all changes to the "activities" edge.
func (m *UserMutation) ResetActivities() {
	m.activities = nil
	m.clearedactivities = false
	m.removedactivities = nil
}

// AddStatusChangeIDs adds the "status_changes" edge to the LeadStatusHistory entity by ids.
func (m *UserMutation) AddStatusChangeIDs(ids ...int) {
	if m.status_changes == nil {
		m.status_changes = make(map[int]struct{})
	}
	for i := range ids {
		m.status_changes[ids[i]] = struct{}{}
	}
}

// ClearStatusChanges clears the "status_changes" edge to the LeadStatusHistory entity.
func (m *UserMutation) ClearStatusChanges() {
	m.clearedstatus_changes = true
}

// StatusChangesCleared reports if the "status_changes" edge to the LeadStatusHistory entity was cleared.
func (m *UserMutation) StatusChangesCleared() bool {
	return m.clearedstatus_changes
}

// RemoveStatusChangeIDs removes the "status_changes" edge to the LeadStatusHistory entity by IDs.
func (m *UserMutation) RemoveStatusChangeIDs(ids ...int) {
	if m.removedstatus_changes == nil {
		m.removedstatus_changes = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.status_changes, ids[i])
		m.removedstatus_changes[ids[i]] = struct{}{}
	}
}

// RemovedStatusChanges returns the removed IDs of the "status_changes" edge to the LeadStatusHistory entity.
func (m *UserMutation) RemovedStatusChangesIDs() (ids []int) {
	for id := range m.removedstatus_changes {
		ids = append(ids, id)
	}
	return
}

// StatusChangesIDs returns the "status_changes" edge IDs in the mutation.
func (m *UserMutation) StatusChangesIDs() (ids []int) {
	for id := range m.status_changes {
		ids = append(ids, id)
	}
	return
}

// ResetStatusChanges resets all changes to the "status_changes" edge.
func (m *UserMutation) ResetStatusChanges() {
	m.status_changes = nil
	m.clearedstatus_changes = false
	m.removedstatus_changes = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, user.FieldPhone)
	}
	if m.is_active != nil {
		fields = append(fields, user.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldName:
		return m.Name()
	case user.FieldEmail:
		return m.Email()
	case user.FieldPhone:
		return m.Phone()
	case user.FieldIsActive:
		return m.IsActive()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPhone:
		return m.OldPhone(ctx)
	case user.FieldIsActive:
		return m.OldIsActive(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case user.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldPhone) {
		fields = append(fields, user.FieldPhone)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldPhone:
		m.ClearPhone()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPhone:
		m.ResetPhone()
		return nil
	case user.FieldIsActive:
		m.ResetIsActive()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.workspace_memberships != nil {
		edges = append(edges, user.EdgeWorkspaceMemberships)
	}
	if m.owned_leads != nil {
		edges = append(edges, user.EdgeOwnedLeads)
	}
	if m.activities != nil {
		edges = append(edges, user.EdgeActivities)
	}
	if m.status_changes != nil {
		edges = append(edges, user.EdgeStatusChanges)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeWorkspaceMemberships:
		ids := make([]ent.Value, 0, len(m.workspace_memberships))
		for id := range m.workspace_memberships {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeOwnedLeads:
		ids := make([]ent.Value, 0, len(m.owned_leads))
		for id := range m.owned_leads {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeActivities:
		ids := make([]ent.Value, 0, len(m.activities))
		for id := range m.activities {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeStatusChanges:
		ids := make([]ent.Value, 0, len(m.status_changes))
		for id := range m.status_changes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedworkspace_memberships != nil {
		edges = append(edges, user.EdgeWorkspaceMemberships)
	}
	if m.removedowned_leads != nil {
		edges = append(edges, user.EdgeOwnedLeads)
	}
	if m.removedactivities != nil {
		edges = append(edges, user.EdgeActivities)
	}
	if m.removedstatus_changes != nil {
		edges = append(edges, user.EdgeStatusChanges)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeWorkspaceMemberships:
		ids := make([]ent.Value, 0, len(m.removedworkspace_memberships))
		for id := range m.removedworkspace_memberships {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeOwnedLeads:
		ids := make([]ent.Value, 0, len(m.removedowned_leads))
		for id := range m.removedowned_leads {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeActivities:
		ids := make([]ent.Value, 0, len(m.removedactivities))
		for id := range m.removedactivities {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeStatusChanges:
		ids := make([]ent.Value, 0, len(m.removedstatus_changes))
		for id := range m.removedstatus_changes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedworkspace_memberships {
		edges = append(edges, user.EdgeWorkspaceMemberships)
	}
	if m.clearedowned_leads {
		edges = append(edges, user.EdgeOwnedLeads)
	}
	if m.clearedactivities {
		edges = append(edges, user.EdgeActivities)
	}
	if m.clearedstatus_changes {
		edges = append(edges, user.EdgeStatusChanges)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeWorkspaceMemberships:
		return m.clearedworkspace_memberships
	case user.EdgeOwnedLeads:
		return m.clearedowned_leads
	case user.EdgeActivities:
		return m.clearedactivities
	case user.EdgeStatusChanges:
		return m.clearedstatus_changes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeWorkspaceMemberships:
		m.ResetWorkspaceMemberships()
		return nil
	case user.EdgeOwnedLeads:
		m.ResetOwnedLeads()
		return nil
	case user.EdgeActivities:
		m.ResetActivities()
		return nil
	case user.EdgeStatusChanges:
		m.ResetStatusChanges()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}

// WhatsAppTriggerMutation represents an operation that mutates the WhatsAppTrigger nodes in the graph.
type WhatsAppTriggerMutation struct {
	config
	op               Op
	typ              string
	id               *int
	status           *string
	is_enabled       *bool
	campaign_name    *string
	source           *string
	template_params  *string
	params_fallback  *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	workspace        *int
	clearedworkspace bool
	done             bool
	oldValue         func(context.Context) (*WhatsAppTrigger, error)
	predicates       []predicate.WhatsAppTrigger
}

var _ ent.Mutation = (*WhatsAppTriggerMutation)(nil)

// whatsapptriggerOption allows management of the mutation configuration using functional options.
type whatsapptriggerOption func(*WhatsAppTriggerMutation)

// newWhatsAppTriggerMutation creates new mutation for the WhatsAppTrigger entity.
func newWhatsAppTriggerMutation(c config, op Op, opts ...whatsapptriggerOption) *WhatsAppTriggerMutation {
	m := &WhatsAppTriggerMutation{
		config:        c,
		op:            op,
		typ:           TypeWhatsAppTrigger,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWhatsAppTriggerID sets the ID field of the mutation.
func withWhatsAppTriggerID(id int) whatsapptriggerOption {
	return func(m *WhatsAppTriggerMutation) {
		var (
			err   error
			once  sync.Once
			value *WhatsAppTrigger
		)
		m.oldValue = func(ctx context.Context) (*WhatsAppTrigger, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WhatsAppTrigger.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWhatsAppTrigger sets the old WhatsAppTrigger of the mutation.
func withWhatsAppTrigger(node *WhatsAppTrigger) whatsapptriggerOption {
	return func(m *WhatsAppTriggerMutation) {
		m.oldValue = func(context.Context) (*WhatsAppTrigger, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WhatsAppTriggerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WhatsAppTriggerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WhatsAppTriggerMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WhatsAppTriggerMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WhatsAppTrigger.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *WhatsAppTriggerMutation) SetWorkspaceID(i int) {
	m.workspace = &i
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *WhatsAppTriggerMutation) WorkspaceID() (r int, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the WhatsAppTrigger entity.
// If the WhatsAppTrigger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WhatsAppTriggerMutation) OldWorkspaceID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *WhatsAppTriggerMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetStatus sets the "status" field.
func (m *WhatsAppTriggerMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *WhatsAppTriggerMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WhatsAppTrigger entity.
// If the WhatsAppTrigger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WhatsAppTriggerMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WhatsAppTriggerMutation) ResetStatus() {
	m.status = nil
}

// SetIsEnabled sets the "is_enabled" field.
func (m *WhatsAppTriggerMutation) SetIsEnabled(b bool) {
	m.is_enabled = &b
}

// IsEnabled returns the value of the "is_enabled" field in the mutation.
func (m *WhatsAppTriggerMutation) IsEnabled() (r bool, exists bool) {
	v := m.is_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldIsEnabled returns the old "is_enabled" field's value of the WhatsAppTrigger entity.
// If the WhatsAppTrigger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WhatsAppTriggerMutation) OldIsEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsEnabled: %w", err)
	}
	return oldValue.IsEnabled, nil
}

// ResetIsEnabled resets all changes to the "is_enabled" field.
func (m *WhatsAppTriggerMutation) ResetIsEnabled() {
	m.is_enabled = nil
}

// SetCampaignName sets the "campaign_name" field.
func (m *WhatsAppTriggerMutation) SetCampaignName(s string) {
	m.campaign_name = &s
}

// CampaignName returns the value of the "campaign_name" field in the mutation.
func (m *WhatsAppTriggerMutation) CampaignName() (r string, exists bool) {
	v := m.campaign_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignName returns the old "campaign_name" field's value of the WhatsAppTrigger entity.
// If the WhatsAppTrigger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WhatsAppTriggerMutation) OldCampaignName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignName: %w", err)
	}
	return oldValue.CampaignName, nil
}

// ResetCampaignName resets all changes to the "campaign_name" field.
func (m *WhatsAppTriggerMutation) ResetCampaignName() {
	m.campaign_name = nil
}

// SetSource sets the "source" field.
func (m *WhatsAppTriggerMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *WhatsAppTriggerMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the WhatsAppTrigger entity.
// If the WhatsAppTrigger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WhatsAppTriggerMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *WhatsAppTriggerMutation) ResetSource() {
	m.source = nil
}

// SetTemplateParams sets the "template_params" field.
func (m *WhatsAppTriggerMutation) SetTemplateParams(s string) {
	m.template_params = &s
}

// TemplateParams returns the value of the "template_params" field in the mutation.
func (m *WhatsAppTriggerMutation) TemplateParams() (r string, exists bool) {
	v := m.template_params
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateParams returns the old "template_params" field's value of the WhatsAppTrigger entity.
// If the WhatsAppTrigger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WhatsAppTriggerMutation) OldTemplateParams(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateParams: %w", err)
	}
	return oldValue.TemplateParams, nil
}

// ResetTemplateParams resets all changes to the "template_params" field.
func (m *WhatsAppTriggerMutation) ResetTemplateParams() {
	m.template_params = nil
}

// SetParamsFallback sets the "params_fallback" field.
func (m *WhatsAppTriggerMutation) SetParamsFallback(s string) {
	m.params_fallback = &s
}

// ParamsFallback returns the value of the "params_fallback" field in the mutation.
func (m *WhatsAppTriggerMutation) ParamsFallback() (r string, exists bool) {
	v := m.params_fallback
	if v == nil {
		return
	}
	return *v, true
}

// OldParamsFallback returns the old "params_fallback" field's value of the WhatsAppTrigger entity.
// If the WhatsAppTrigger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WhatsAppTriggerMutation) OldParamsFallback(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParamsFallback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParamsFallback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParamsFallback: %w", err)
	}
	return oldValue.ParamsFallback, nil
}

// ResetParamsFallback resets all changes to the "params_fallback" field.
func (m *WhatsAppTriggerMutation) ResetParamsFallback() {
	m.params_fallback = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WhatsAppTriggerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WhatsAppTriggerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WhatsAppTrigger entity.
// If the WhatsAppTrigger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WhatsAppTriggerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WhatsAppTriggerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WhatsAppTriggerMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WhatsAppTriggerMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WhatsAppTrigger entity.
// If the WhatsAppTrigger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WhatsAppTriggerMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WhatsAppTriggerMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *WhatsAppTriggerMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[whatsapptrigger.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *WhatsAppTriggerMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *WhatsAppTriggerMutation) WorkspaceIDs() (ids []int) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *WhatsAppTriggerMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// Where appends a list predicates to the WhatsAppTriggerMutation builder.
func (m *WhatsAppTriggerMutation) Where(ps ...predicate.WhatsAppTrigger) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WhatsAppTriggerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WhatsAppTriggerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WhatsAppTrigger, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WhatsAppTriggerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WhatsAppTriggerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WhatsAppTrigger).
func (m *WhatsAppTriggerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WhatsAppTriggerMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.workspace != nil {
		fields = append(fields, whatsapptrigger.FieldWorkspaceID)
	}
	if m.status != nil {
		fields = append(fields, whatsapptrigger.FieldStatus)
	}
	if m.is_enabled != nil {
		fields = append(fields, whatsapptrigger.FieldIsEnabled)
	}
	if m.campaign_name != nil {
		fields = append(fields, whatsapptrigger.FieldCampaignName)
	}
	if m.source != nil {
		fields = append(fields, whatsapptrigger.FieldSource)
	}
	if m.template_params != nil {
		fields = append(fields, whatsapptrigger.FieldTemplateParams)
	}
	if m.params_fallback != nil {
		fields = append(fields, whatsapptrigger.FieldParamsFallback)
	}
	if m.created_at != nil {
		fields = append(fields, whatsapptrigger.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, whatsapptrigger.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WhatsAppTriggerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case whatsapptrigger.FieldWorkspaceID:
		return m.WorkspaceID()
	case whatsapptrigger.FieldStatus:
		return m.Status()
	case whatsapptrigger.FieldIsEnabled:
		return m.IsEnabled()
	case whatsapptrigger.FieldCampaignName:
		return m.CampaignName()
	case whatsapptrigger.FieldSource:
		return m.Source()
	case whatsapptrigger.FieldTemplateParams:
		return m.TemplateParams()
	case whatsapptrigger.FieldParamsFallback:
		return m.ParamsFallback()
	case whatsapptrigger.FieldCreatedAt:
		return m.CreatedAt()
	case whatsapptrigger.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WhatsAppTriggerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case whatsapptrigger.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case whatsapptrigger.FieldStatus:
		return m.OldStatus(ctx)
	case whatsapptrigger.FieldIsEnabled:
		return m.OldIsEnabled(ctx)
	case whatsapptrigger.FieldCampaignName:
		return m.OldCampaignName(ctx)
	case whatsapptrigger.FieldSource:
		return m.OldSource(ctx)
	case whatsapptrigger.FieldTemplateParams:
		return m.OldTemplateParams(ctx)
	case whatsapptrigger.FieldParamsFallback:
		return m.OldParamsFallback(ctx)
	case whatsapptrigger.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case whatsapptrigger.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WhatsAppTrigger field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WhatsAppTriggerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case whatsapptrigger.FieldWorkspaceID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case whatsapptrigger.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case whatsapptrigger.FieldIsEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsEnabled(v)
		return nil
	case whatsapptrigger.FieldCampaignName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignName(v)
		return nil
	case whatsapptrigger.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case whatsapptrigger.FieldTemplateParams:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateParams(v)
		return nil
	case whatsapptrigger.FieldParamsFallback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParamsFallback(v)
		return nil
	case whatsapptrigger.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case whatsapptrigger.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WhatsAppTrigger field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WhatsAppTriggerMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WhatsAppTriggerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WhatsAppTriggerMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WhatsAppTrigger numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WhatsAppTriggerMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WhatsAppTriggerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WhatsAppTriggerMutation) ClearField(name string) error {
	return fmt.Errorf("unknown WhatsAppTrigger nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WhatsAppTriggerMutation) ResetField(name string) error {
	switch name {
	case whatsapptrigger.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case whatsapptrigger.FieldStatus:
		m.ResetStatus()
		return nil
	case whatsapptrigger.FieldIsEnabled:
		m.ResetIsEnabled()
		return nil
	case whatsapptrigger.FieldCampaignName:
		m.ResetCampaignName()
		return nil
	case whatsapptrigger.FieldSource:
		m.ResetSource()
		return nil
	case whatsapptrigger.FieldTemplateParams:
		m.ResetTemplateParams()
		return nil
	case whatsapptrigger.FieldParamsFallback:
		m.ResetParamsFallback()
		return nil
	case whatsapptrigger.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case whatsapptrigger.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown WhatsAppTrigger field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WhatsAppTriggerMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workspace != nil {
		edges = append(edges, whatsapptrigger.EdgeWorkspace)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WhatsAppTriggerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case whatsapptrigger.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WhatsAppTriggerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WhatsAppTriggerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WhatsAppTriggerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkspace {
		edges = append(edges, whatsapptrigger.EdgeWorkspace)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WhatsAppTriggerMutation) EdgeCleared(name string) bool {
	switch name {
	case whatsapptrigger.EdgeWorkspace:
		return m.clearedworkspace
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WhatsAppTriggerMutation) ClearEdge(name string) error {
	switch name {
	case whatsapptrigger.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	}
	return fmt.Errorf("unknown WhatsAppTrigger unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WhatsAppTriggerMutation) ResetEdge(name string) error {
	switch name {
	case whatsapptrigger.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	}
	return fmt.Errorf("unknown WhatsAppTrigger edge %s", name)
}

// WorkspaceMutation represents an operation that mutates the Workspace nodes in the graph.
type WorkspaceMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	name                     *string
	webhook_secret           *string
	default_country_code     *string
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	members                  map[int]struct{}
	removedmembers           map[int]struct{}
	clearedmembers           bool
	leads                    map[int]struct{}
	removedleads             map[int]struct{}
	clearedleads             bool
	assignment_rules         map[int]struct{}
	removedassignment_rules  map[int]struct{}
	clearedassignment_rules  bool
	whatsapp_triggers        map[int]struct{}
	removedwhatsapp_triggers map[int]struct{}
	clearedwhatsapp_triggers bool
	activities               map[int]struct{}
	removedactivities        map[int]struct{}
	clearedactivities        bool
	done                     bool
	oldValue                 func(context.Context) (*Workspace, error)
	predicates               []predicate.Workspace
}

var _ ent.Mutation = (*WorkspaceMutation)(nil)

// workspaceOption allows management of the mutation configuration using functional options.
type workspaceOption func(*WorkspaceMutation)

// newWorkspaceMutation creates new mutation for the Workspace entity.
func newWorkspaceMutation(c config, op Op, opts ...workspaceOption) *WorkspaceMutation {
	m := &WorkspaceMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkspace,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkspaceID sets the ID field of the mutation.
func withWorkspaceID(id int) workspaceOption {
	return func(m *WorkspaceMutation) {
		var (
			err   error
			once  sync.Once
			value *Workspace
		)
		m.oldValue = func(ctx context.Context) (*Workspace, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Workspace.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkspace sets the old Workspace of the mutation.
func withWorkspace(node *Workspace) workspaceOption {
	return func(m *WorkspaceMutation) {
		m.oldValue = func(context.Context) (*Workspace, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkspaceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkspaceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkspaceMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkspaceMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Workspace.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *WorkspaceMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *WorkspaceMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *WorkspaceMutation) ResetName() {
	m.name = nil
}

// SetWebhookSecret sets the "webhook_secret" field.
func (m *WorkspaceMutation) SetWebhookSecret(s string) {
	m.webhook_secret = &s
}

// WebhookSecret returns the value of the "webhook_secret" field in the mutation.
func (m *WorkspaceMutation) WebhookSecret() (r string, exists bool) {
	v := m.webhook_secret
	if v == nil {
		return
	}
	return *v, true
}

// OldWebhookSecret returns the old "webhook_secret" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldWebhookSecret(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebhookSecret is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebhookSecret requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebhookSecret: %w", err)
	}
	return oldValue.WebhookSecret, nil
}

// ResetWebhookSecret resets all changes to the "webhook_secret" field.
func (m *WorkspaceMutation) ResetWebhookSecret() {
	m.webhook_secret = nil
}

// SetDefaultCountryCode sets the "default_country_code" field.
func (m *WorkspaceMutation) SetDefaultCountryCode(s string) {
	m.default_country_code = &s
}

// DefaultCountryCode returns the value of the "default_country_code" field in the mutation.
func (m *WorkspaceMutation) DefaultCountryCode() (r string, exists bool) {
	v := m.default_country_code
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultCountryCode returns the old "default_country_code" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldDefaultCountryCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultCountryCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultCountryCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultCountryCode: %w", err)
	}
	return oldValue.DefaultCountryCode, nil
}

// ResetDefaultCountryCode resets all changes to the "default_country_code" field.
func (m *WorkspaceMutation) ResetDefaultCountryCode() {
	m.default_country_code = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkspaceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkspaceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkspaceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkspaceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkspaceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkspaceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddMemberIDs adds the "members" edge to the WorkspaceMember entity by ids.
func (m *WorkspaceMutation) AddMemberIDs(ids ...int) {
	if m.members == nil {
		m.members = make(map[int]struct{})
	}
	for i := range ids {
		m.members[ids[i]] = struct{}{}
	}
}

// ClearMembers clears the "members" edge to the WorkspaceMember entity.
func (m *WorkspaceMutation) ClearMembers() {
	m.clearedmembers = true
}

// MembersCleared reports if the "members" edge to the WorkspaceMember entity was cleared.
func (m *WorkspaceMutation) MembersCleared() bool {
	return m.clearedmembers
}

// RemoveMemberIDs removes the "members" edge to the WorkspaceMember entity by IDs.
func (m *WorkspaceMutation) RemoveMemberIDs(ids ...int) {
	if m.removedmembers == nil {
		m.removedmembers = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.members, ids[i])
		m.removedmembers[ids[i]] = struct{}{}
	}
}

// RemovedMembers returns the removed IDs of the "members" edge to the WorkspaceMember entity.
func (m *WorkspaceMutation) RemovedMembersIDs() (ids []int) {
	for id := range m.removedmembers {
		ids = append(ids, id)
	}
	return
}

// MembersIDs returns the "members" edge IDs in the mutation.
func (m *WorkspaceMutation) MembersIDs() (ids []int) {
	for id := range m.members {
		ids = append(ids, id)
	}
	return
}

// ResetMembers resets all changes to the "members" edge.
func (m *WorkspaceMutation) ResetMembers() {
	m.members = nil
	m.clearedmembers = false
	m.removedmembers = nil
}

// AddLeadIDs adds the "leads" edge to the Lead entity by ids.
func (m *WorkspaceMutation) AddLeadIDs(ids ...int) {
	if m.leads == nil {
		m.leads = make(map[int]struct{})
	}
	for i := range ids {
		m.leads[ids[i]] = struct{}{}
	}
}

// ClearLeads clears the "leads" edge to the Lead entity.
func (m *WorkspaceMutation) ClearLeads() {
	m.clearedleads = true
}

// LeadsCleared reports if the "leads" edge to the Lead entity was cleared.
func (m *WorkspaceMutation) LeadsCleared() bool {
	return m.clearedleads
}

// RemoveLeadIDs removes the "leads" edge to the Lead entity by IDs.
func (m *WorkspaceMutation) RemoveLeadIDs(ids ...int) {
	if m.removedleads == nil {
		m.removedleads = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.leads, ids[i])
		m.removedleads[ids[i]] = struct{}{}
	}
}

// RemovedLeads returns the removed IDs of the "leads" edge to the Lead entity.
func (m *WorkspaceMutation) RemovedLeadsIDs() (ids []int) {
	for id := range m.removedleads {
		ids = append(ids, id)
	}
	return
}

// LeadsIDs returns the "leads" edge IDs in the mutation.
func (m *WorkspaceMutation) LeadsIDs() (ids []int) {
	for id := range m.leads {
		ids = append(ids, id)
	}
	return
}

// ResetLeads resets all changes to the "leads" edge.
func (m *WorkspaceMutation) ResetLeads() {
	m.leads = nil
	m.clearedleads = false
	m.removedleads = nil
}

// AddAssignmentRuleIDs adds the "assignment_rules" edge to the AssignmentRule entity by ids.
func (m *WorkspaceMutation) AddAssignmentRuleIDs(ids ...int) {
	if m.assignment_rules == nil {
		m.assignment_rules = make(map[int]struct{})
	}
	for i := range ids {
		m.assignment_rules[ids[i]] = struct{}{}
	}
}

// ClearAssignmentRules clears the "assignment_rules" edge to the AssignmentRule entity.
func (m *WorkspaceMutation) ClearAssignmentRules() {
	m.clearedassignment_rules = true
}

// AssignmentRulesCleared reports if the "assignment_rules" edge to the AssignmentRule entity was cleared.
func (m *WorkspaceMutation) AssignmentRulesCleared() bool {
	return m.clearedassignment_rules
}

// RemoveAssignmentRuleIDs removes the "assignment_rules" edge to the AssignmentRule entity by IDs.
func (m *WorkspaceMutation) RemoveAssignmentRuleIDs(ids ...int) {
	if m.removedassignment_rules == nil {
		m.removedassignment_rules = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.assignment_rules, ids[i])
		m.removedassignment_rules[ids[i]] = struct{}{}
	}
}

// RemovedAssignmentRules returns the removed IDs of the "assignment_rules" edge to the AssignmentRule entity.
func (m *WorkspaceMutation) RemovedAssignmentRulesIDs() (ids []int) {
	for id := range m.removedassignment_rules {
		ids = append(ids, id)
	}
	return
}

// AssignmentRulesIDs returns the "assignment_rules" edge IDs in the mutation.
func (m *WorkspaceMutation) AssignmentRulesIDs() (ids []int) {
	for id := range m.assignment_rules {
		ids = append(ids, id)
	}
	return
}

// ResetAssignmentRules resets all changes to the "assignment_rules" edge.
func (m *WorkspaceMutation) ResetAssignmentRules() {
	m.assignment_rules = nil
	m.clearedassignment_rules = false
	m.removedassignment_rules = nil
}

// AddWhatsappTriggerIDs adds the "whatsapp_triggers" edge to the WhatsAppTrigger entity by ids.
func (m *WorkspaceMutation) AddWhatsappTriggerIDs(ids ...int) {
	if m.whatsapp_triggers == nil {
		m.whatsapp_triggers = make(map[int]struct{})
	}
	for i := range ids {
		m.whatsapp_triggers[ids[i]] = struct{}{}
	}
}

// ClearWhatsappTriggers clears the "whatsapp_triggers" edge to the WhatsAppTrigger entity.
func (m *WorkspaceMutation) ClearWhatsappTriggers() {
	m.clearedwhatsapp_triggers = true
}

// WhatsappTriggersCleared reports if the "whatsapp_triggers" edge to the WhatsAppTrigger entity was cleared.
func (m *WorkspaceMutation) WhatsappTriggersCleared() bool {
	return m.clearedwhatsapp_triggers
}

// RemoveWhatsappTriggerIDs removes the "whatsapp_triggers" edge to the WhatsAppTrigger entity by IDs.
func (m *WorkspaceMutation) RemoveWhatsappTriggerIDs(ids ...int) {
	if m.removedwhatsapp_triggers == nil {
		m.removedwhatsapp_triggers = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.whatsapp_triggers, ids[i])
		m.removedwhatsapp_triggers[ids[i]] = struct{}{}
	}
}

// RemovedWhatsappTriggers returns the removed IDs of the "whatsapp_triggers" edge to the WhatsAppTrigger entity.
func (m *WorkspaceMutation) RemovedWhatsappTriggersIDs() (ids []int) {
	for id := range m.removedwhatsapp_triggers {
		ids = append(ids, id)
	}
	return
}

// WhatsappTriggersIDs returns the "whatsapp_triggers" edge IDs in the mutation.
func (m *WorkspaceMutation) WhatsappTriggersIDs() (ids []int) {
	for id := range m.whatsapp_triggers {
		ids = append(ids, id)
	}
	return
}

// ResetWhatsappTriggers resets all changes to the "whatsapp_triggers" edge.
func (m *WorkspaceMutation) ResetWhatsappTriggers() {
	m.whatsapp_triggers = nil
	m.clearedwhatsapp_triggers = false
	m.removedwhatsapp_triggers = nil
}

// AddActivityIDs adds the "activities" edge to the Activity entity by ids.
func (m *WorkspaceMutation) AddActivityIDs(ids ...int) {
	if m.activities == nil {
		m.activities = make(map[int]struct{})
	}
	for i := range ids {
		m.activities[ids[i]] = struct{}{}
	}
}

// ClearActivities clears the "activities" edge to the Activity entity.
func (m *WorkspaceMutation) ClearActivities() {
	m.clearedactivities = true
}

// ActivitiesCleared reports if the "activities" edge to the Activity entity was cleared.
func (m *WorkspaceMutation) ActivitiesCleared() bool {
	return m.clearedactivities
}

// RemoveActivityIDs removes the "activities" edge to the Activity entity by IDs.
func (m *WorkspaceMutation) RemoveActivityIDs(ids ...int) {
	if m.removedactivities == nil {
		m.removedactivities = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.activities, ids[i])
		m.removedactivities[ids[i]] = struct{}{}
	}
}

// RemovedActivities returns the removed IDs of the "activities" edge to the Activity entity.
func (m *WorkspaceMutation) RemovedActivitiesIDs() (ids []int) {
	for id := range m.removedactivities {
		ids = append(ids, id)
	}
	return
}

// ActivitiesIDs returns the "activities" edge IDs in the mutation.
func (m *WorkspaceMutation) ActivitiesIDs() (ids []int) {
	for id := range m.activities {
		ids = append(ids, id)
	}
	return
}

// ResetActivities resets all changes to the "activities" edge.
func (m *WorkspaceMutation) ResetActivities() {
	m.activities = nil
	m.clearedactivities = false
	m.removedactivities = nil
}

// Where appends a list predicates to the WorkspaceMutation builder.
func (m *WorkspaceMutation) Where(ps ...predicate.Workspace) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkspaceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkspaceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Workspace, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkspaceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkspaceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Workspace).
func (m *WorkspaceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkspaceMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, workspace.FieldName)
	}
	if m.webhook_secret != nil {
		fields = append(fields, workspace.FieldWebhookSecret)
	}
	if m.default_country_code != nil {
		fields = append(fields, workspace.FieldDefaultCountryCode)
	}
	if m.created_at != nil {
		fields = append(fields, workspace.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workspace.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkspaceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workspace.FieldName:
		return m.Name()
	case workspace.FieldWebhookSecret:
		return m.WebhookSecret()
	case workspace.FieldDefaultCountryCode:
		return m.DefaultCountryCode()
	case workspace.FieldCreatedAt:
		return m.CreatedAt()
	case workspace.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkspaceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workspace.FieldName:
		return m.OldName(ctx)
	case workspace.FieldWebhookSecret:
		return m.OldWebhookSecret(ctx)
	case workspace.FieldDefaultCountryCode:
		return m.OldDefaultCountryCode(ctx)
	case workspace.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workspace.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Workspace field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkspaceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workspace.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case workspace.FieldWebhookSecret:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebhookSecret(v)
		return nil
	case workspace.FieldDefaultCountryCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultCountryCode(v)
		return nil
	case workspace.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workspace.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Workspace field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkspaceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkspaceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkspaceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Workspace numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkspaceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkspaceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkspaceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Workspace nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkspaceMutation) ResetField(name string) error {
	switch name {
	case workspace.FieldName:
		m.ResetName()
		return nil
	case workspace.FieldWebhookSecret:
		m.ResetWebhookSecret()
		return nil
	case workspace.FieldDefaultCountryCode:
		m.ResetDefaultCountryCode()
		return nil
	case workspace.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workspace.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Workspace field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkspaceMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.members != nil {
		edges = append(edges, workspace.EdgeMembers)
	}
	if m.leads != nil {
		edges = append(edges, workspace.EdgeLeads)
	}
	if m.assignment_rules != nil {
		edges = append(edges, workspace.EdgeAssignmentRules)
	}
	if m.whatsapp_triggers != nil {
		edges = append(edges, workspace.EdgeWhatsappTriggers)
	}
	if m.activities != nil {
		edges = append(edges, workspace.EdgeActivities)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkspaceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workspace.EdgeMembers:
		ids := make([]ent.Value, 0, len(m.members))
		for id := range m.members {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeLeads:
		ids := make([]ent.Value, 0, len(m.leads))
		for id := range m.leads {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeAssignmentRules:
		ids := make([]ent.Value, 0, len(m.assignment_rules))
		for id := range m.assignment_rules {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeWhatsappTriggers:
		ids := make([]ent.Value, 0, len(m.whatsapp_triggers))
		for id := range m.whatsapp_triggers {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeActivities:
		ids := make([]ent.Value, 0, len(m.activities))
		for id := range m.activities {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkspaceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedmembers != nil {
		edges = append(edges, workspace.EdgeMembers)
	}
	if m.removedleads != nil {
		edges = append(edges, workspace.EdgeLeads)
	}
	if m.removedassignment_rules != nil {
		edges = append(edges, workspace.EdgeAssignmentRules)
	}
	if m.removedwhatsapp_triggers != nil {
		edges = append(edges, workspace.EdgeWhatsappTriggers)
	}
	if m.removedactivities != nil {
		edges = append(edges, workspace.EdgeActivities)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkspaceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workspace.EdgeMembers:
		ids := make([]ent.Value, 0, len(m.removedmembers))
		for id := range m.removedmembers {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeLeads:
		ids := make([]ent.Value, 0, len(m.removedleads))
		for id := range m.removedleads {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeAssignmentRules:
		ids := make([]ent.Value, 0, len(m.removedassignment_rules))
		for id := range m.removedassignment_rules {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeWhatsappTriggers:
		ids := make([]ent.Value, 0, len(m.removedwhatsapp_triggers))
		for id := range m.removedwhatsapp_triggers {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeActivities:
		ids := make([]ent.Value, 0, len(m.removedactivities))
		for id := range m.removedactivities {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkspaceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedmembers {
		edges = append(edges, workspace.EdgeMembers)
	}
	if m.clearedleads {
		edges = append(edges, workspace.EdgeLeads)
	}
	if m.clearedassignment_rules {
		edges = append(edges, workspace.EdgeAssignmentRules)
	}
	if m.clearedwhatsapp_triggers {
		edges = append(edges, workspace.EdgeWhatsappTriggers)
	}
	if m.clearedactivities {
		edges = append(edges, workspace.EdgeActivities)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkspaceMutation) EdgeCleared(name string) bool {
	switch name {
	case workspace.EdgeMembers:
		return m.clearedmembers
	case workspace.EdgeLeads:
		return m.clearedleads
	case workspace.EdgeAssignmentRules:
		return m.clearedassignment_rules
	case workspace.EdgeWhatsappTriggers:
		return m.clearedwhatsapp_triggers
	case workspace.EdgeActivities:
		return m.clearedactivities
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkspaceMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Workspace unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkspaceMutation) ResetEdge(name string) error {
	switch name {
	case workspace.EdgeMembers:
		m.ResetMembers()
		return nil
	case workspace.EdgeLeads:
		m.ResetLeads()
		return nil
	case workspace.EdgeAssignmentRules:
		m.ResetAssignmentRules()
		return nil
	case workspace.EdgeWhatsappTriggers:
		m.ResetWhatsappTriggers()
		return nil
	case workspace.EdgeActivities:
		m.ResetActivities()
		return nil
	}
	return fmt.Errorf("unknown Workspace edge %s", name)
}

// WorkspaceMemberMutation represents an operation that mutates the WorkspaceMember nodes in the graph.
type WorkspaceMemberMutation struct {
	config
	op               Op
	typ              string
	id               *int
	role             *workspacemember.Role
	status           *workspacemember.Status
	joined_at        *time.Time
	created_at       *time.Time
	clearedFields    map[string]struct{}
	workspace        *int
	clearedworkspace bool
	user             *int
	cleareduser      bool
	done             bool
	oldValue         func(context.Context) (*WorkspaceMember, error)
	predicates       []predicate.WorkspaceMember
}

var _ ent.Mutation = (*WorkspaceMemberMutation)(nil)

// workspacememberOption allows management of the mutation configuration using functional options.
type workspacememberOption func(*WorkspaceMemberMutation)

// newWorkspaceMemberMutation creates new mutation for the WorkspaceMember entity.
func newWorkspaceMemberMutation(c config, op Op, opts ...workspacememberOption) *WorkspaceMemberMutation {
	m := &WorkspaceMemberMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkspaceMember,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkspaceMemberID sets the ID field of the mutation.
func withWorkspaceMemberID(id int) workspacememberOption {
	return func(m *WorkspaceMemberMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkspaceMember
		)
		m.oldValue = func(ctx context.Context) (*WorkspaceMember, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkspaceMember.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkspaceMember sets the old WorkspaceMember of the mutation.
func withWorkspaceMember(node *WorkspaceMember) workspacememberOption {
	return func(m *WorkspaceMemberMutation) {
		m.oldValue = func(context.Context) (*WorkspaceMember, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkspaceMemberMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkspaceMemberMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkspaceMemberMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkspaceMemberMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkspaceMember.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *WorkspaceMemberMutation) SetWorkspaceID(i int) {
	m.workspace = &i
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *WorkspaceMemberMutation) WorkspaceID() (r int, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the WorkspaceMember entity.
// If the WorkspaceMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMemberMutation) OldWorkspaceID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *WorkspaceMemberMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetUserID sets the "user_id" field.
func (m *WorkspaceMemberMutation) SetUserID(i int) {
	m.user = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *WorkspaceMemberMutation) UserID() (r int, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the WorkspaceMember entity.
// If the WorkspaceMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMemberMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *WorkspaceMemberMutation) ResetUserID() {
	m.user = nil
}

// SetRole sets the "role" field.
func (m *WorkspaceMemberMutation) SetRole(w workspacemember.Role) {
	m.role = &w
}

// Role returns the value of the "role" field in the mutation.
func (m *WorkspaceMemberMutation) Role() (r workspacemember.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the WorkspaceMember entity.
// If the WorkspaceMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMemberMutation) OldRole(ctx context.Context) (v workspacemember.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *WorkspaceMemberMutation) ResetRole() {
	m.role = nil
}

// SetStatus sets the "status" field.
func (m *WorkspaceMemberMutation) SetStatus(w workspacemember.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkspaceMemberMutation) Status() (r workspacemember.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WorkspaceMember entity.
// If the WorkspaceMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMemberMutation) OldStatus(ctx context.Context) (v workspacemember.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkspaceMemberMutation) ResetStatus() {
	m.status = nil
}

// SetJoinedAt sets the "joined_at" field.
func (m *WorkspaceMemberMutation) SetJoinedAt(t time.Time) {
	m.joined_at = &t
}

// JoinedAt returns the value of the "joined_at" field in the mutation.
func (m *WorkspaceMemberMutation) JoinedAt() (r time.Time, exists bool) {
	v := m.joined_at
	if v == nil {
		return
	}
	return *v, true
}

// OldJoinedAt returns the old "joined_at" field's value of the WorkspaceMember entity.
// If the WorkspaceMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMemberMutation) OldJoinedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJoinedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJoinedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJoinedAt: %w", err)
	}
	return oldValue.JoinedAt, nil
}

// ResetJoinedAt resets all changes to the "joined_at" field.
func (m *WorkspaceMemberMutation) ResetJoinedAt() {
	m.joined_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkspaceMemberMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkspaceMemberMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkspaceMember entity.
// If the WorkspaceMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMemberMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkspaceMemberMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *WorkspaceMemberMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[workspacemember.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *WorkspaceMemberMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *WorkspaceMemberMutation) WorkspaceIDs() (ids []int) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *WorkspaceMemberMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// ClearUser clears the "user" edge to the User entity.
func (m *WorkspaceMemberMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[workspacemember.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *WorkspaceMemberMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *WorkspaceMemberMutation) UserIDs() (ids []int) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *WorkspaceMemberMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the WorkspaceMemberMutation builder.
func (m *WorkspaceMemberMutation) Where(ps ...predicate.WorkspaceMember) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkspaceMemberMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkspaceMemberMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkspaceMember, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkspaceMemberMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkspaceMemberMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkspaceMember).
func (m *WorkspaceMemberMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkspaceMemberMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.workspace != nil {
		fields = append(fields, workspacemember.FieldWorkspaceID)
	}
	if m.user != nil {
		fields = append(fields, workspacemember.FieldUserID)
	}
	if m.role != nil {
		fields = append(fields, workspacemember.FieldRole)
	}
	if m.status != nil {
		fields = append(fields, workspacemember.FieldStatus)
	}
	if m.joined_at != nil {
		fields = append(fields, workspacemember.FieldJoinedAt)
	}
	if m.created_at != nil {
		fields = append(fields, workspacemember.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkspaceMemberMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workspacemember.FieldWorkspaceID:
		return m.WorkspaceID()
	case workspacemember.FieldUserID:
		return m.UserID()
	case workspacemember.FieldRole:
		return m.Role()
	case workspacemember.FieldStatus:
		return m.Status()
	case workspacemember.FieldJoinedAt:
		return m.JoinedAt()
	case workspacemember.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkspaceMemberMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workspacemember.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case workspacemember.FieldUserID:
		return m.OldUserID(ctx)
	case workspacemember.FieldRole:
		return m.OldRole(ctx)
	case workspacemember.FieldStatus:
		return m.OldStatus(ctx)
	case workspacemember.FieldJoinedAt:
		return m.OldJoinedAt(ctx)
	case workspacemember.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkspaceMember field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkspaceMemberMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workspacemember.FieldWorkspaceID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case workspacemember.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case workspacemember.FieldRole:
		v, ok := value.(workspacemember.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case workspacemember.FieldStatus:
		v, ok := value.(workspacemember.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workspacemember.FieldJoinedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJoinedAt(v)
		return nil
	case workspacemember.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkspaceMember field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkspaceMemberMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkspaceMemberMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkspaceMemberMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WorkspaceMember numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkspaceMemberMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkspaceMemberMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkspaceMemberMutation) ClearField(name string) error {
	return fmt.Errorf("unknown WorkspaceMember nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkspaceMemberMutation) ResetField(name string) error {
	switch name {
	case workspacemember.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case workspacemember.FieldUserID:
		m.ResetUserID()
		return nil
	case workspacemember.FieldRole:
		m.ResetRole()
		return nil
	case workspacemember.FieldStatus:
		m.ResetStatus()
		return nil
	case workspacemember.FieldJoinedAt:
		m.ResetJoinedAt()
		return nil
	case workspacemember.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkspaceMember field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkspaceMemberMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.workspace != nil {
		edges = append(edges, workspacemember.EdgeWorkspace)
	}
	if m.user != nil {
		edges = append(edges, workspacemember.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkspaceMemberMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workspacemember.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	case workspacemember.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkspaceMemberMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkspaceMemberMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkspaceMemberMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedworkspace {
		edges = append(edges, workspacemember.EdgeWorkspace)
	}
	if m.cleareduser {
		edges = append(edges, workspacemember.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkspaceMemberMutation) EdgeCleared(name string) bool {
	switch name {
	case workspacemember.EdgeWorkspace:
		return m.clearedworkspace
	case workspacemember.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkspaceMemberMutation) ClearEdge(name string) error {
	switch name {
	case workspacemember.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	case workspacemember.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown WorkspaceMember unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkspaceMemberMutation) ResetEdge(name string) error {
	switch name {
	case workspacemember.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	case workspacemember.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown WorkspaceMember edge %s", name)
}
