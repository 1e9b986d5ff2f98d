package leadlifecycle

import (
	"context"
	"fmt"
	"time"

	"github.com/leadrouter/crm-backend/ent"
	entactivity "github.com/leadrouter/crm-backend/ent/activity"
	"github.com/leadrouter/crm-backend/ent/lead"
	"github.com/leadrouter/crm-backend/ent/leadstatushistory"
	"github.com/leadrouter/crm-backend/pkg/activity"
	"github.com/leadrouter/crm-backend/pkg/domain"
	"github.com/leadrouter/crm-backend/pkg/logger"
	"github.com/leadrouter/crm-backend/pkg/metrics"
	"github.com/leadrouter/crm-backend/pkg/notify"
)

// Service handles lead lifecycle operations.
type Service struct {
	client     *ent.Client
	activities *activity.Service
	notifier   *notify.Notifier
	log        logger.Logger
	metrics    *metrics.Metrics
}

// NewService creates a new lead lifecycle service. The notifier is
// optional; without one, status changes are recorded but nothing is
// dispatched.
func NewService(client *ent.Client, notifier *notify.Notifier, log logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	return &Service{client: client, activities: activity.NewService(client), notifier: notifier, log: log}
}

// WithMetrics attaches a metrics recorder.
func (s *Service) WithMetrics(m *metrics.Metrics) *Service {
	s.metrics = m
	return s
}

// UpdateStatusRequest represents a request to update lead status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted qualified negotiating won lost archived"`
	Reason string `json:"reason,omitempty"`
}

// StatusHistoryResponse represents a status change event.
type StatusHistoryResponse struct {
	ID        int       `json:"id"`
	LeadID    int       `json:"lead_id"`
	UserID    *int      `json:"user_id,omitempty"`
	UserName  string    `json:"user_name"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// LeadStatusResponse represents a lead with its current status.
type LeadStatusResponse struct {
	ID              int       `json:"id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Phone           string    `json:"phone"`
	Status          string    `json:"status"`
	StatusChangedAt time.Time `json:"status_changed_at"`
	Changed         bool      `json:"changed"`
}

// UpdateLeadStatus moves a lead to a new status, records the change in
// history and the activity timeline, and kicks off any configured
// WhatsApp trigger for the new status. Setting the status a lead is
// already in is a no-op.
func (s *Service) UpdateLeadStatus(ctx context.Context, workspaceID, leadID int, userID *int, req UpdateStatusRequest) (*LeadStatusResponse, error) {
	currentLead, err := s.client.Lead.
		Query().
		Where(lead.ID(leadID), lead.WorkspaceIDEQ(workspaceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("lead not found")
		}
		return nil, fmt.Errorf("failed to fetch lead: %w", err)
	}

	// Same status: nothing to record, nothing to trigger.
	if currentLead.Status == lead.Status(req.Status) {
		return statusResponse(currentLead, false), nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	oldStatus := string(currentLead.Status)
	newStatus := req.Status
	now := time.Now()

	updatedLead, err := tx.Lead.
		UpdateOne(currentLead).
		SetStatus(lead.Status(newStatus)).
		SetStatusChangedAt(now).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update lead status: %w", err)
	}

	historyBuilder := tx.LeadStatusHistory.
		Create().
		SetLeadID(leadID).
		SetOldStatus(oldStatus).
		SetNewStatus(newStatus)
	if userID != nil {
		historyBuilder.SetUserID(*userID)
	}
	if req.Reason != "" {
		historyBuilder.SetReason(req.Reason)
	}
	if _, err := historyBuilder.Save(ctx); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create status history: %w", err)
	}

	if err := s.activities.LogTx(ctx, tx, activity.Entry{
		WorkspaceID: workspaceID,
		LeadID:      leadID,
		UserID:      userID,
		Type:        entactivity.TypeStatusChange,
		Subject:     fmt.Sprintf("Status changed to %s", newStatus),
		Description: fmt.Sprintf("Status changed from %s to %s", oldStatus, newStatus),
	}); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to record status change activity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.metrics.RecordStatusChange()

	// Dispatch runs off the request path; a slow or failing provider
	// must not delay the status update response.
	if s.notifier != nil {
		go s.notifier.NotifyStatusChange(context.WithoutCancel(ctx), workspaceID, leadID, newStatus)
	}

	return statusResponse(updatedLead, true), nil
}

// GetLeadStatusHistory retrieves the status change history for a lead,
// newest first.
func (s *Service) GetLeadStatusHistory(ctx context.Context, workspaceID, leadID int) ([]StatusHistoryResponse, error) {
	exists, err := s.client.Lead.
		Query().
		Where(lead.ID(leadID), lead.WorkspaceIDEQ(workspaceID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check lead existence: %w", err)
	}
	if !exists {
		return nil, domain.NewNotFoundError("lead not found")
	}

	history, err := s.client.LeadStatusHistory.
		Query().
		Where(leadstatushistory.LeadID(leadID)).
		WithUser().
		Order(ent.Desc(leadstatushistory.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch status history: %w", err)
	}

	response := make([]StatusHistoryResponse, len(history))
	for i, h := range history {
		var reason *string
		if h.Reason != "" {
			reason = &h.Reason
		}

		userName := "System"
		if user := h.Edges.User; user != nil {
			userName = user.Name
		}

		response[i] = StatusHistoryResponse{
			ID:        h.ID,
			LeadID:    h.LeadID,
			UserID:    h.UserID,
			UserName:  userName,
			OldStatus: h.OldStatus,
			NewStatus: h.NewStatus,
			Reason:    reason,
			CreatedAt: h.CreatedAt,
		}
	}

	return response, nil
}

// GetLeadsByStatus retrieves workspace leads in a given status.
func (s *Service) GetLeadsByStatus(ctx context.Context, workspaceID int, status string, limit int) ([]LeadStatusResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	leads, err := s.client.Lead.
		Query().
		Where(lead.WorkspaceIDEQ(workspaceID), lead.StatusEQ(lead.Status(status))).
		Order(ent.Desc(lead.FieldStatusChangedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leads by status: %w", err)
	}

	response := make([]LeadStatusResponse, len(leads))
	for i, l := range leads {
		response[i] = *statusResponse(l, false)
	}

	return response, nil
}

// GetStatusCounts returns the count of workspace leads in each status.
func (s *Service) GetStatusCounts(ctx context.Context, workspaceID int) (map[string]int, error) {
	counts := make(map[string]int)
	for _, status := range []lead.Status{
		lead.StatusNew, lead.StatusContacted, lead.StatusQualified,
		lead.StatusNegotiating, lead.StatusWon, lead.StatusLost, lead.StatusArchived,
	} {
		count, err := s.client.Lead.
			Query().
			Where(lead.WorkspaceIDEQ(workspaceID), lead.StatusEQ(status)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count leads for status %s: %w", status, err)
		}
		counts[string(status)] = count
	}

	return counts, nil
}

func statusResponse(l *ent.Lead, changed bool) *LeadStatusResponse {
	return &LeadStatusResponse{
		ID:              l.ID,
		FirstName:       l.FirstName,
		LastName:        l.LastName,
		Phone:           l.Phone,
		Status:          string(l.Status),
		StatusChangedAt: l.StatusChangedAt,
		Changed:         changed,
	}
}
