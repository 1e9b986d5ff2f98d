package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/leadrouter/crm-backend/ent"
	"github.com/leadrouter/crm-backend/ent/lead"
	"github.com/leadrouter/crm-backend/pkg/activity"
	apierrors "github.com/leadrouter/crm-backend/pkg/api/errors"
	"github.com/leadrouter/crm-backend/pkg/models"
)

// ActivitiesHandler serves the per-lead activity timeline.
type ActivitiesHandler struct {
	client     *ent.Client
	activities *activity.Service
}

// NewActivitiesHandler creates a new activities handler.
func NewActivitiesHandler(client *ent.Client) *ActivitiesHandler {
	return &ActivitiesHandler{
		client:     client,
		activities: activity.NewService(client),
	}
}

// ListByLead handles GET /workspaces/:workspace_id/leads/:id/activities.
func (h *ActivitiesHandler) ListByLead(c echo.Context) error {
	ctx := c.Request().Context()

	workspaceID, leadID, err := workspaceLeadParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid workspace or lead id",
		})
	}

	exists, err := h.client.Lead.Query().
		Where(lead.IDEQ(leadID), lead.WorkspaceIDEQ(workspaceID)).
		Exist(ctx)
	if err != nil {
		return apierrors.InternalError(c, err)
	}
	if !exists {
		return apierrors.NotFoundError(c, "Lead")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	entries, err := h.activities.ListByLead(ctx, leadID, limit)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	response := make([]models.ActivityResponse, len(entries))
	for i, a := range entries {
		response[i] = models.NewActivityResponse(a)
	}
	return c.JSON(http.StatusOK, response)
}
