package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/leadrouter/crm-backend/pkg/api/errors"
	"github.com/leadrouter/crm-backend/pkg/leadlifecycle"
	"github.com/leadrouter/crm-backend/pkg/models"
)

// LeadStatusHandler handles lead status transitions and history.
type LeadStatusHandler struct {
	lifecycle *leadlifecycle.Service
	validator *validator.Validate
}

// NewLeadStatusHandler creates a new lead status handler.
func NewLeadStatusHandler(lifecycle *leadlifecycle.Service) *LeadStatusHandler {
	return &LeadStatusHandler{
		lifecycle: lifecycle,
		validator: validator.New(),
	}
}

// UpdateStatus handles PATCH /workspaces/:workspace_id/leads/:id/status.
func (h *LeadStatusHandler) UpdateStatus(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	workspaceID, leadID, err := workspaceLeadParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid workspace or lead id",
		})
	}

	var req leadlifecycle.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	var userID *int
	if id, ok := c.Get("user_id").(int); ok {
		userID = &id
	}

	resp, err := h.lifecycle.UpdateLeadStatus(ctx, workspaceID, leadID, userID, req)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// StatusHistory handles GET /workspaces/:workspace_id/leads/:id/status-history.
func (h *LeadStatusHandler) StatusHistory(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	workspaceID, leadID, err := workspaceLeadParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid workspace or lead id",
		})
	}

	history, err := h.lifecycle.GetLeadStatusHistory(ctx, workspaceID, leadID)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, history)
}

// LeadsByStatus handles GET /workspaces/:workspace_id/leads?status=...
func (h *LeadStatusHandler) LeadsByStatus(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	workspaceID, err := strconv.Atoi(c.Param("workspace_id"))
	if err != nil || workspaceID <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid workspace id",
		})
	}

	status := c.QueryParam("status")
	if status == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "status query parameter is required",
		})
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	leads, err := h.lifecycle.GetLeadsByStatus(ctx, workspaceID, status, limit)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, leads)
}

// StatusCounts handles GET /workspaces/:workspace_id/leads/status-counts.
func (h *LeadStatusHandler) StatusCounts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	workspaceID, err := strconv.Atoi(c.Param("workspace_id"))
	if err != nil || workspaceID <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid workspace id",
		})
	}

	counts, err := h.lifecycle.GetStatusCounts(ctx, workspaceID)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, counts)
}

func workspaceLeadParams(c echo.Context) (int, int, error) {
	workspaceID, err := strconv.Atoi(c.Param("workspace_id"))
	if err != nil || workspaceID <= 0 {
		return 0, 0, echo.ErrBadRequest
	}
	leadID, err := strconv.Atoi(c.Param("id"))
	if err != nil || leadID <= 0 {
		return 0, 0, echo.ErrBadRequest
	}
	return workspaceID, leadID, nil
}
