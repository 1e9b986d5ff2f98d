// Package ingest creates and merges leads from webhooks, bulk imports
// and manual entry, routing new leads through the assignment resolver.
package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/leadrouter/crm-backend/ent"
	entactivity "github.com/leadrouter/crm-backend/ent/activity"
	"github.com/leadrouter/crm-backend/ent/lead"
	"github.com/leadrouter/crm-backend/ent/workspacemember"
	"github.com/leadrouter/crm-backend/pkg/assignment"
	"github.com/leadrouter/crm-backend/pkg/domain"
	"github.com/leadrouter/crm-backend/pkg/logger"
	"github.com/leadrouter/crm-backend/pkg/metrics"
	"github.com/leadrouter/crm-backend/pkg/phone"
	"github.com/leadrouter/crm-backend/pkg/rules"
)

// Action reports what the ingestor did with a payload.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
)

// Result is the outcome of ingesting one payload.
type Result struct {
	Lead     *ent.Lead           `json:"lead"`
	Action   string              `json:"action"`
	Strategy assignment.Strategy `json:"strategy,omitempty"`
}

// Ingestor orchestrates lead creation: dedup by phone, default field
// mapping, owner assignment and audit activities.
type Ingestor struct {
	db            *ent.Client
	rules         *rules.Store
	resolver      *assignment.Resolver
	log           logger.Logger
	metrics       *metrics.Metrics
	defaultRegion string
}

// NewIngestor creates a new lead ingestor
func NewIngestor(db *ent.Client, ruleStore *rules.Store, resolver *assignment.Resolver, log logger.Logger, defaultRegion string) *Ingestor {
	if log == nil {
		log = logger.Default()
	}
	if defaultRegion == "" {
		defaultRegion = "IN"
	}
	return &Ingestor{
		db:            db,
		rules:         ruleStore,
		resolver:      resolver,
		log:           log,
		defaultRegion: defaultRegion,
	}
}

// WithMetrics attaches a metrics recorder.
func (i *Ingestor) WithMetrics(m *metrics.Metrics) *Ingestor {
	i.metrics = m
	return i
}

// Ingest validates, dedups and persists one inbound lead payload.
//
// A payload whose phone matches an existing lead in the workspace
// updates that lead (non-empty incoming fields win, custom fields
// union) and does not re-run assignment. Otherwise a new lead is
// created with the resolver's assignee, and the rule bookkeeping
// mutation is committed in the same transaction as the lead row.
func (i *Ingestor) Ingest(ctx context.Context, workspaceID int, payload map[string]interface{}) (*Result, error) {
	f := resolveFields(payload)

	if f.FirstName == "" {
		return nil, domain.NewValidationError("firstName is required (accepted aliases: firstName, first_name, fname)")
	}
	if f.Phone == "" {
		return nil, domain.NewValidationError("phone is required (accepted aliases: phone, mobile, phone_number)")
	}

	normalizedSource := NormalizeSource(f.Source)
	canonicalPhone := phone.Canonical(f.Phone, i.defaultRegion)

	existing, err := i.db.Lead.Query().
		Where(
			lead.WorkspaceIDEQ(workspaceID),
			lead.PhoneEQ(canonicalPhone),
		).
		Order(ent.Asc(lead.FieldID)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, domain.NewInternalError(fmt.Errorf("failed to look up lead by phone: %w", err))
	}

	result, err := i.ingest(ctx, workspaceID, existing, f, normalizedSource, canonicalPhone)
	if err == nil {
		strategy := result.Strategy
		if strategy == "" {
			strategy = assignment.StrategyNone
		}
		i.metrics.RecordLeadIngested(result.Action, string(strategy))
	}
	return result, err
}

func (i *Ingestor) ingest(ctx context.Context, workspaceID int, existing *ent.Lead, f fields, normalizedSource, canonicalPhone string) (*Result, error) {
	if existing != nil {
		return i.update(ctx, existing, f, normalizedSource)
	}
	return i.create(ctx, workspaceID, f, normalizedSource, canonicalPhone)
}

// update merges an inbound payload into an already known lead.
// Ownership is untouched: duplicates never re-run assignment.
func (i *Ingestor) update(ctx context.Context, existing *ent.Lead, f fields, normalizedSource string) (*Result, error) {
	tx, err := i.db.Tx(ctx)
	if err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("failed to start transaction: %w", err))
	}

	update := tx.Lead.UpdateOne(existing)
	if f.FirstName != "" {
		update.SetFirstName(f.FirstName)
	}
	if f.LastName != "" {
		update.SetLastName(f.LastName)
	}
	if f.Email != "" {
		update.SetEmail(f.Email)
	}
	if f.CourseInterested != "" {
		update.SetCourseInterested(f.CourseInterested)
	}
	if f.Source != "" {
		update.SetSource(normalizedSource)
		update.SetRawSource(f.Source)
	}
	if len(f.Custom) > 0 {
		merged := map[string]interface{}{}
		for k, v := range existing.CustomFields {
			merged[k] = v
		}
		for k, v := range f.Custom {
			merged[k] = v
		}
		update.SetCustomFields(merged)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewInternalError(fmt.Errorf("failed to merge lead: %w", err))
	}

	_, err = tx.Activity.Create().
		SetWorkspaceID(existing.WorkspaceID).
		SetLeadID(existing.ID).
		SetType(entactivity.TypeSystem).
		SetSubject("Lead updated from duplicate submission").
		SetDescription(fmt.Sprintf("Repeat inbound lead via %s merged into existing record", normalizedSource)).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewInternalError(fmt.Errorf("failed to record activity: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("failed to commit merge: %w", err))
	}

	return &Result{Lead: updated, Action: ActionUpdated}, nil
}

// create persists a brand-new lead with a resolved owner.
//
// Assignment runs at most twice: a compare-and-swap miss on the rule
// bookkeeping means a concurrent ingestion took the same rule, so the
// candidate set is re-read and re-resolved once. A second conflict
// degrades to an unassigned lead rather than failing the write.
func (i *Ingestor) create(ctx context.Context, workspaceID int, f fields, normalizedSource, canonicalPhone string) (*Result, error) {
	creatorID, err := i.resolveCreator(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	outcome := i.resolveAssignment(ctx, workspaceID, normalizedSource, f.Source)

	for attempt := 0; ; attempt++ {
		created, err := i.createTx(ctx, workspaceID, f, normalizedSource, canonicalPhone, creatorID, outcome)
		if err == nil {
			return &Result{Lead: created, Action: ActionCreated, Strategy: outcome.Strategy}, nil
		}
		if !domain.IsConcurrency(err) {
			return nil, err
		}
		i.metrics.RecordAssignmentConflict()
		if attempt >= 1 {
			// Two straight conflicts: degrade to unassigned instead of
			// failing lead creation.
			i.log.Warn("assignment bookkeeping conflicted twice, creating lead unassigned",
				"workspace_id", workspaceID, "source", normalizedSource)
			outcome = assignment.Outcome{Strategy: assignment.StrategyNone}
			continue
		}
		outcome = i.resolveAssignment(ctx, workspaceID, normalizedSource, f.Source)
	}
}

// resolveAssignment fetches candidates and resolves them. Rule storage
// being briefly unavailable degrades the assignment to NONE; it never
// blocks the lead write.
func (i *Ingestor) resolveAssignment(ctx context.Context, workspaceID int, normalizedSource, rawSource string) assignment.Outcome {
	candidates, err := i.rules.AssignmentRules(ctx, workspaceID, normalizedSource, rawSource)
	if err != nil {
		i.log.Warn("assignment rules unavailable, lead will be unassigned",
			"workspace_id", workspaceID, "error", err)
		return assignment.Outcome{Strategy: assignment.StrategyNone}
	}
	return i.resolver.Resolve(candidates, time.Now())
}

func (i *Ingestor) createTx(ctx context.Context, workspaceID int, f fields, normalizedSource, canonicalPhone string, creatorID int, outcome assignment.Outcome) (*ent.Lead, error) {
	tx, err := i.db.Tx(ctx)
	if err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("failed to start transaction: %w", err))
	}

	create := tx.Lead.Create().
		SetWorkspaceID(workspaceID).
		SetFirstName(f.FirstName).
		SetPhone(canonicalPhone).
		SetSource(normalizedSource).
		SetRawSource(f.Source)
	if f.LastName != "" {
		create.SetLastName(f.LastName)
	}
	if f.Email != "" {
		create.SetEmail(f.Email)
	}
	if f.CourseInterested != "" {
		create.SetCourseInterested(f.CourseInterested)
	}
	if len(f.Custom) > 0 {
		create.SetCustomFields(f.Custom)
	}
	if outcome.AssigneeID != nil {
		create.SetOwnerID(*outcome.AssigneeID)
	}

	created, err := create.Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewInternalError(fmt.Errorf("failed to create lead: %w", err))
	}

	if outcome.Mutation != nil {
		if err := i.rules.ApplyMutation(ctx, tx, *outcome.Mutation); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	_, err = tx.Activity.Create().
		SetWorkspaceID(workspaceID).
		SetLeadID(created.ID).
		SetUserID(creatorID).
		SetType(entactivity.TypeSystem).
		SetSubject("Lead created").
		SetDescription(fmt.Sprintf("Inbound lead via %s, assignment strategy %s", normalizedSource, outcome.Strategy)).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewInternalError(fmt.Errorf("failed to record activity: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("failed to commit lead creation: %w", err))
	}

	return created, nil
}

// resolveCreator picks the user recorded as the lead's creator: the
// first active admin of the workspace, else any active member.
func (i *Ingestor) resolveCreator(ctx context.Context, workspaceID int) (int, error) {
	admin, err := i.db.WorkspaceMember.Query().
		Where(
			workspacemember.WorkspaceIDEQ(workspaceID),
			workspacemember.StatusEQ(workspacemember.StatusActive),
			workspacemember.RoleEQ(workspacemember.RoleAdmin),
		).
		Order(ent.Asc(workspacemember.FieldID)).
		First(ctx)
	if err == nil {
		return admin.UserID, nil
	}
	if !ent.IsNotFound(err) {
		return 0, domain.NewInternalError(fmt.Errorf("failed to query workspace admins: %w", err))
	}

	member, err := i.db.WorkspaceMember.Query().
		Where(
			workspacemember.WorkspaceIDEQ(workspaceID),
			workspacemember.StatusEQ(workspacemember.StatusActive),
		).
		Order(ent.Asc(workspacemember.FieldID)).
		First(ctx)
	if err == nil {
		return member.UserID, nil
	}
	if ent.IsNotFound(err) {
		return 0, domain.NewConfigurationError("workspace has no members to act as lead creator")
	}
	return 0, domain.NewInternalError(fmt.Errorf("failed to query workspace members: %w", err))
}
