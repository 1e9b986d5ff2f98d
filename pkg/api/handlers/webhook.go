package handlers

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/leadrouter/crm-backend/ent"
	apierrors "github.com/leadrouter/crm-backend/pkg/api/errors"
	"github.com/leadrouter/crm-backend/pkg/ingest"
	"github.com/leadrouter/crm-backend/pkg/logger"
	"github.com/leadrouter/crm-backend/pkg/models"
)

// WebhookHandler receives lead submissions from external sources.
type WebhookHandler struct {
	client   *ent.Client
	ingestor *ingest.Ingestor
	log      logger.Logger
}

// NewWebhookHandler creates a new webhook handler.
func NewWebhookHandler(client *ent.Client, ingestor *ingest.Ingestor, log logger.Logger) *WebhookHandler {
	if log == nil {
		log = logger.Default()
	}
	return &WebhookHandler{client: client, ingestor: ingestor, log: log}
}

// IngestLead handles POST /webhooks/:workspace_id/leads. The payload is
// an arbitrary JSON object; field names go through alias resolution so
// ad platforms with different conventions can post without mapping
// config. Replies 201 when a lead was created, 200 when a duplicate
// submission merged into an existing one.
func (h *WebhookHandler) IngestLead(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	workspaceID, err := strconv.Atoi(c.Param("workspace_id"))
	if err != nil || workspaceID <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid workspace id",
		})
	}

	ws, err := h.client.Workspace.Get(ctx, workspaceID)
	if err != nil {
		if ent.IsNotFound(err) {
			return apierrors.NotFoundError(c, "Workspace")
		}
		return apierrors.InternalError(c, err)
	}

	secret := c.Request().Header.Get("X-Webhook-Secret")
	if subtle.ConstantTimeCompare([]byte(secret), []byte(ws.WebhookSecret)) != 1 {
		return apierrors.UnauthorizedError(c)
	}

	var payload map[string]interface{}
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Request body must be a JSON object",
		})
	}

	eventID := uuid.NewString()
	c.Response().Header().Set("X-Event-ID", eventID)

	result, err := h.ingestor.Ingest(ctx, workspaceID, payload)
	if err != nil {
		h.log.Warn("webhook ingest rejected",
			"event_id", eventID, "workspace_id", workspaceID, "error", err)
		return apierrors.FromDomain(c, err)
	}

	h.log.Info("webhook lead ingested",
		"event_id", eventID,
		"workspace_id", workspaceID,
		"lead_id", result.Lead.ID,
		"action", result.Action,
		"strategy", string(result.Strategy),
	)

	status := http.StatusOK
	if result.Action == ingest.ActionCreated {
		status = http.StatusCreated
	}
	return c.JSON(status, models.IngestResponse{
		Success:  true,
		Action:   string(result.Action),
		Strategy: string(result.Strategy),
		Lead:     models.NewLeadResponse(result.Lead),
	})
}
