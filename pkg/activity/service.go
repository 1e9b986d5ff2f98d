package activity

import (
	"context"
	"time"

	"github.com/leadrouter/crm-backend/ent"
	entactivity "github.com/leadrouter/crm-backend/ent/activity"
)

// Service handles the append-only lead activity log
type Service struct {
	db *ent.Client
}

// NewService creates a new activity service
func NewService(db *ent.Client) *Service {
	return &Service{
		db: db,
	}
}

// Entry represents an activity log entry
type Entry struct {
	WorkspaceID int
	LeadID      int
	UserID      *int
	Type        entactivity.Type
	Subject     string
	Description string
}

// Log creates a new activity record
func (s *Service) Log(ctx context.Context, entry Entry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	create := s.db.Activity.Create().
		SetWorkspaceID(entry.WorkspaceID).
		SetLeadID(entry.LeadID).
		SetType(entry.Type).
		SetSubject(entry.Subject)

	if entry.UserID != nil {
		create = create.SetUserID(*entry.UserID)
	}
	if entry.Description != "" {
		create = create.SetDescription(entry.Description)
	}

	_, err := create.Save(ctx)
	return err
}

// LogTx creates a new activity record inside the caller's transaction.
func (s *Service) LogTx(ctx context.Context, tx *ent.Tx, entry Entry) error {
	create := tx.Activity.Create().
		SetWorkspaceID(entry.WorkspaceID).
		SetLeadID(entry.LeadID).
		SetType(entry.Type).
		SetSubject(entry.Subject)

	if entry.UserID != nil {
		create = create.SetUserID(*entry.UserID)
	}
	if entry.Description != "" {
		create = create.SetDescription(entry.Description)
	}

	_, err := create.Save(ctx)
	return err
}

// ListByLead retrieves activities for a lead, newest first.
func (s *Service) ListByLead(ctx context.Context, leadID int, limit int) ([]*ent.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if limit <= 0 || limit > 200 {
		limit = 50
	}

	return s.db.Activity.Query().
		Where(entactivity.LeadIDEQ(leadID)).
		Order(ent.Desc(entactivity.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}

// CountByType counts a workspace's activities of a given type, for the
// admin dashboard.
func (s *Service) CountByType(ctx context.Context, workspaceID int, activityType entactivity.Type) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return s.db.Activity.Query().
		Where(
			entactivity.WorkspaceIDEQ(workspaceID),
			entactivity.TypeEQ(activityType),
		).
		Count(ctx)
}
