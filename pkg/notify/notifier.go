package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/leadrouter/crm-backend/ent"
	entactivity "github.com/leadrouter/crm-backend/ent/activity"
	"github.com/leadrouter/crm-backend/pkg/activity"
	"github.com/leadrouter/crm-backend/pkg/logger"
	"github.com/leadrouter/crm-backend/pkg/metrics"
	"github.com/leadrouter/crm-backend/pkg/phone"
	"github.com/leadrouter/crm-backend/pkg/rules"
	"github.com/leadrouter/crm-backend/pkg/template"
)

// SendResult is the provider's answer to a single dispatch.
type SendResult struct {
	Success     bool
	StatusCode  int
	RawResponse string
}

// MessageGateway delivers one templated campaign message.
type MessageGateway interface {
	Send(ctx context.Context, phone, campaignName, sourceLabel string, params []string) (*SendResult, error)
}

// Notifier reacts to lead status changes by dispatching WhatsApp
// campaign messages per the workspace's trigger configuration.
type Notifier struct {
	db                 *ent.Client
	rules              *rules.Store
	activities         *activity.Service
	gateway            MessageGateway
	log                logger.Logger
	metrics            *metrics.Metrics
	defaultCountryCode string
	dispatchTimeout    time.Duration
}

// NewNotifier creates a new status change notifier
func NewNotifier(db *ent.Client, ruleStore *rules.Store, gateway MessageGateway, log logger.Logger, defaultCountryCode string, dispatchTimeout time.Duration) *Notifier {
	if log == nil {
		log = logger.Default()
	}
	if defaultCountryCode == "" {
		defaultCountryCode = "91"
	}
	if dispatchTimeout <= 0 {
		dispatchTimeout = 30 * time.Second
	}
	return &Notifier{
		db:                 db,
		rules:              ruleStore,
		activities:         activity.NewService(db),
		gateway:            gateway,
		log:                log,
		defaultCountryCode: defaultCountryCode,
		dispatchTimeout:    dispatchTimeout,
	}
}

// WithMetrics attaches a metrics recorder.
func (n *Notifier) WithMetrics(m *metrics.Metrics) *Notifier {
	n.metrics = m
	return n
}

// NotifyStatusChange runs the trigger pipeline for one lead status
// transition. It never breaks the caller: every failure is logged and,
// once a matching trigger is found, recorded as a WHATSAPP activity on
// the lead. Exactly one activity is written per matched trigger.
func (n *Notifier) NotifyStatusChange(ctx context.Context, workspaceID, leadID int, newStatus string) {
	trigger, err := n.rules.Trigger(ctx, workspaceID, newStatus)
	if err != nil {
		n.log.Error("failed to look up whatsapp trigger",
			"workspace_id", workspaceID, "lead_id", leadID, "status", newStatus, "error", err)
		return
	}
	if trigger == nil {
		// No trigger configured for this status, nothing to do.
		return
	}

	lead, err := n.db.Lead.Get(ctx, leadID)
	if err != nil {
		n.log.Error("failed to load lead for whatsapp dispatch",
			"workspace_id", workspaceID, "lead_id", leadID, "error", err)
		return
	}

	destination := phone.DispatchFormat(lead.Phone, n.countryCode(ctx, workspaceID))
	if destination == "" {
		// A phone with no digits formats to an empty destination; the
		// provider call is skipped and the failure recorded.
		n.recordFailure(ctx, trigger, lead, "lead has no dispatchable phone number")
		return
	}

	params := template.Render(parseParams(trigger.TemplateParams), leadView(lead), parseFallbacks(trigger.ParamsFallback))

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.dispatchTimeout)
	defer cancel()

	result, err := n.gateway.Send(sendCtx, destination, trigger.CampaignName, trigger.Source, params)
	if err != nil {
		n.recordFailure(ctx, trigger, lead, err.Error())
		return
	}
	if !result.Success {
		n.recordFailure(ctx, trigger, lead,
			fmt.Sprintf("provider returned status %d: %s", result.StatusCode, result.RawResponse))
		return
	}

	n.metrics.RecordWhatsAppDispatch(true)

	if err := n.activities.Log(ctx, activity.Entry{
		WorkspaceID: trigger.WorkspaceID,
		LeadID:      lead.ID,
		Type:        entactivity.TypeWhatsapp,
		Subject:     fmt.Sprintf("WhatsApp sent: %s", trigger.CampaignName),
		Description: fmt.Sprintf("Campaign %q dispatched to %s on status %s", trigger.CampaignName, destination, trigger.Status),
	}); err != nil {
		n.log.Error("failed to record whatsapp activity",
			"workspace_id", trigger.WorkspaceID, "lead_id", lead.ID, "error", err)
	}
}

// countryCode returns the workspace's configured calling code. The
// process-wide default applies when the workspace cannot be read or
// carries an empty code.
func (n *Notifier) countryCode(ctx context.Context, workspaceID int) string {
	ws, err := n.db.Workspace.Get(ctx, workspaceID)
	if err != nil || ws.DefaultCountryCode == "" {
		return n.defaultCountryCode
	}
	return ws.DefaultCountryCode
}

func (n *Notifier) recordFailure(ctx context.Context, trigger *ent.WhatsAppTrigger, lead *ent.Lead, reason string) {
	n.metrics.RecordWhatsAppDispatch(false)
	n.log.Warn("whatsapp dispatch failed",
		"workspace_id", trigger.WorkspaceID, "lead_id", lead.ID,
		"campaign", trigger.CampaignName, "reason", reason)

	if err := n.activities.Log(ctx, activity.Entry{
		WorkspaceID: trigger.WorkspaceID,
		LeadID:      lead.ID,
		Type:        entactivity.TypeWhatsapp,
		Subject:     fmt.Sprintf("WhatsApp failed: %s", trigger.CampaignName),
		Description: reason,
	}); err != nil {
		n.log.Error("failed to record whatsapp failure activity",
			"workspace_id", trigger.WorkspaceID, "lead_id", lead.ID, "error", err)
	}
}

// parseParams decodes the trigger's template parameter list. A
// malformed config degrades to no parameters rather than blocking the
// status change.
func parseParams(raw string) []string {
	if raw == "" {
		return nil
	}
	var params []string
	if err := json.Unmarshal([]byte(raw), &params); err != nil {
		return nil
	}
	return params
}

func parseFallbacks(raw string) map[string]string {
	if raw == "" {
		return nil
	}
	var fallbacks map[string]string
	if err := json.Unmarshal([]byte(raw), &fallbacks); err != nil {
		return nil
	}
	return fallbacks
}

func leadView(lead *ent.Lead) template.LeadView {
	return template.LeadView{
		FirstName:        lead.FirstName,
		Phone:            lead.Phone,
		Email:            lead.Email,
		Source:           lead.Source,
		CourseInterested: lead.CourseInterested,
	}
}
