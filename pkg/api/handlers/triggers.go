package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/leadrouter/crm-backend/ent"
	"github.com/leadrouter/crm-backend/ent/whatsapptrigger"
	apierrors "github.com/leadrouter/crm-backend/pkg/api/errors"
	"github.com/leadrouter/crm-backend/pkg/logger"
	"github.com/leadrouter/crm-backend/pkg/models"
	"github.com/leadrouter/crm-backend/pkg/rules"
)

// TriggersHandler manages a workspace's WhatsApp triggers.
type TriggersHandler struct {
	client    *ent.Client
	rules     *rules.Store
	validator *validator.Validate
	log       logger.Logger
}

// NewTriggersHandler creates a new WhatsApp triggers handler.
func NewTriggersHandler(client *ent.Client, ruleStore *rules.Store, log logger.Logger) *TriggersHandler {
	if log == nil {
		log = logger.Default()
	}
	return &TriggersHandler{
		client:    client,
		rules:     ruleStore,
		validator: validator.New(),
		log:       log,
	}
}

// TriggerRequest is the create/update payload for a WhatsApp trigger.
type TriggerRequest struct {
	Status         string            `json:"status" validate:"required,oneof=new contacted qualified negotiating won lost archived"`
	CampaignName   string            `json:"campaign_name" validate:"required"`
	Source         string            `json:"source,omitempty"`
	TemplateParams []string          `json:"template_params,omitempty"`
	ParamsFallback map[string]string `json:"params_fallback,omitempty"`
	IsEnabled      *bool             `json:"is_enabled,omitempty"`
}

// TriggerResponse is the public shape of a WhatsApp trigger.
type TriggerResponse struct {
	ID             int               `json:"id"`
	WorkspaceID    int               `json:"workspace_id"`
	Status         string            `json:"status"`
	IsEnabled      bool              `json:"is_enabled"`
	CampaignName   string            `json:"campaign_name"`
	Source         string            `json:"source"`
	TemplateParams []string          `json:"template_params"`
	ParamsFallback map[string]string `json:"params_fallback"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func newTriggerResponse(t *ent.WhatsAppTrigger) TriggerResponse {
	params := []string{}
	if err := json.Unmarshal([]byte(t.TemplateParams), &params); err != nil {
		params = []string{}
	}
	fallback := map[string]string{}
	if err := json.Unmarshal([]byte(t.ParamsFallback), &fallback); err != nil {
		fallback = map[string]string{}
	}
	return TriggerResponse{
		ID:             t.ID,
		WorkspaceID:    t.WorkspaceID,
		Status:         t.Status,
		IsEnabled:      t.IsEnabled,
		CampaignName:   t.CampaignName,
		Source:         t.Source,
		TemplateParams: params,
		ParamsFallback: fallback,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

// List handles GET /workspaces/:workspace_id/whatsapp-triggers.
func (h *TriggersHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	workspaceID, err := strconv.Atoi(c.Param("workspace_id"))
	if err != nil || workspaceID <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid workspace id",
		})
	}

	triggers, err := h.client.WhatsAppTrigger.Query().
		Where(whatsapptrigger.WorkspaceIDEQ(workspaceID)).
		Order(ent.Asc(whatsapptrigger.FieldID)).
		All(ctx)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	response := make([]TriggerResponse, len(triggers))
	for i, t := range triggers {
		response[i] = newTriggerResponse(t)
	}
	return c.JSON(http.StatusOK, response)
}

// Create handles POST /workspaces/:workspace_id/whatsapp-triggers.
func (h *TriggersHandler) Create(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	workspaceID, err := strconv.Atoi(c.Param("workspace_id"))
	if err != nil || workspaceID <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid workspace id",
		})
	}

	var req TriggerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	params, fallback, err := marshalTriggerConfig(req)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	create := h.client.WhatsAppTrigger.Create().
		SetWorkspaceID(workspaceID).
		SetStatus(req.Status).
		SetCampaignName(req.CampaignName).
		SetTemplateParams(params).
		SetParamsFallback(fallback)
	if req.Source != "" {
		create.SetSource(req.Source)
	}
	if req.IsEnabled != nil {
		create.SetIsEnabled(*req.IsEnabled)
	}

	trigger, err := create.Save(ctx)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	h.invalidate(ctx, workspaceID, req.Status)

	return c.JSON(http.StatusCreated, newTriggerResponse(trigger))
}

// Update handles PUT /workspaces/:workspace_id/whatsapp-triggers/:id.
func (h *TriggersHandler) Update(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	workspaceID, triggerID, err := workspaceRuleParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid workspace or trigger id",
		})
	}

	var req TriggerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	trigger, err := h.client.WhatsAppTrigger.Query().
		Where(whatsapptrigger.IDEQ(triggerID), whatsapptrigger.WorkspaceIDEQ(workspaceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return apierrors.NotFoundError(c, "WhatsApp trigger")
		}
		return apierrors.InternalError(c, err)
	}

	params, fallback, err := marshalTriggerConfig(req)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	oldStatus := trigger.Status

	update := trigger.Update().
		SetStatus(req.Status).
		SetCampaignName(req.CampaignName).
		SetTemplateParams(params).
		SetParamsFallback(fallback)
	if req.Source != "" {
		update.SetSource(req.Source)
	}
	if req.IsEnabled != nil {
		update.SetIsEnabled(*req.IsEnabled)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	// A status change leaves the old cache entry stale too.
	h.invalidate(ctx, workspaceID, oldStatus)
	h.invalidate(ctx, workspaceID, req.Status)

	return c.JSON(http.StatusOK, newTriggerResponse(updated))
}

// Delete handles DELETE /workspaces/:workspace_id/whatsapp-triggers/:id.
func (h *TriggersHandler) Delete(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	workspaceID, triggerID, err := workspaceRuleParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid workspace or trigger id",
		})
	}

	trigger, err := h.client.WhatsAppTrigger.Query().
		Where(whatsapptrigger.IDEQ(triggerID), whatsapptrigger.WorkspaceIDEQ(workspaceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return apierrors.NotFoundError(c, "WhatsApp trigger")
		}
		return apierrors.InternalError(c, err)
	}

	if err := h.client.WhatsAppTrigger.DeleteOne(trigger).Exec(ctx); err != nil {
		return apierrors.InternalError(c, err)
	}

	h.invalidate(ctx, workspaceID, trigger.Status)

	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: "WhatsApp trigger deleted"})
}

func (h *TriggersHandler) invalidate(ctx context.Context, workspaceID int, status string) {
	if err := h.rules.InvalidateTrigger(ctx, workspaceID, status); err != nil {
		h.log.Warn("failed to invalidate trigger cache",
			"workspace_id", workspaceID, "status", status, "error", err)
	}
}

func marshalTriggerConfig(req TriggerRequest) (string, string, error) {
	params := req.TemplateParams
	if params == nil {
		params = []string{}
	}
	fallback := req.ParamsFallback
	if fallback == nil {
		fallback = map[string]string{}
	}
	rawParams, err := json.Marshal(params)
	if err != nil {
		return "", "", err
	}
	rawFallback, err := json.Marshal(fallback)
	if err != nil {
		return "", "", err
	}
	return string(rawParams), string(rawFallback), nil
}
