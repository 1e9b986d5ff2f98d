package models

import (
	"time"

	"github.com/leadrouter/crm-backend/ent"
)

// LeadResponse is the public shape of a lead.
type LeadResponse struct {
	ID               int                    `json:"id"`
	WorkspaceID      int                    `json:"workspace_id"`
	FirstName        string                 `json:"first_name"`
	LastName         string                 `json:"last_name,omitempty"`
	Phone            string                 `json:"phone"`
	Email            string                 `json:"email,omitempty"`
	Source           string                 `json:"source"`
	RawSource        string                 `json:"raw_source,omitempty"`
	Status           string                 `json:"status"`
	StatusChangedAt  time.Time              `json:"status_changed_at"`
	OwnerID          *int                   `json:"owner_id,omitempty"`
	CourseInterested string                 `json:"course_interested,omitempty"`
	CustomFields     map[string]interface{} `json:"custom_fields,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

// NewLeadResponse converts an ent lead into its public shape.
func NewLeadResponse(l *ent.Lead) LeadResponse {
	return LeadResponse{
		ID:               l.ID,
		WorkspaceID:      l.WorkspaceID,
		FirstName:        l.FirstName,
		LastName:         l.LastName,
		Phone:            l.Phone,
		Email:            l.Email,
		Source:           l.Source,
		RawSource:        l.RawSource,
		Status:           string(l.Status),
		StatusChangedAt:  l.StatusChangedAt,
		OwnerID:          l.OwnerID,
		CourseInterested: l.CourseInterested,
		CustomFields:     l.CustomFields,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

// IngestResponse is the webhook endpoint's reply.
type IngestResponse struct {
	Success  bool         `json:"success"`
	Action   string       `json:"action"`
	Strategy string       `json:"strategy"`
	Lead     LeadResponse `json:"lead"`
}

// ActivityResponse is the public shape of an activity entry.
type ActivityResponse struct {
	ID          int       `json:"id"`
	LeadID      int       `json:"lead_id"`
	UserID      *int      `json:"user_id,omitempty"`
	Type        string    `json:"type"`
	Subject     string    `json:"subject"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewActivityResponse converts an ent activity into its public shape.
func NewActivityResponse(a *ent.Activity) ActivityResponse {
	return ActivityResponse{
		ID:          a.ID,
		LeadID:      a.LeadID,
		UserID:      a.UserID,
		Type:        string(a.Type),
		Subject:     a.Subject,
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
	}
}
