package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/leadrouter/crm-backend/ent"
	"github.com/leadrouter/crm-backend/ent/assignmentrule"
	"github.com/leadrouter/crm-backend/ent/workspacemember"
	apierrors "github.com/leadrouter/crm-backend/pkg/api/errors"
	"github.com/leadrouter/crm-backend/pkg/models"
)

// RulesHandler manages a workspace's assignment rules.
type RulesHandler struct {
	client    *ent.Client
	validator *validator.Validate
}

// NewRulesHandler creates a new assignment rules handler.
func NewRulesHandler(client *ent.Client) *RulesHandler {
	return &RulesHandler{
		client:    client,
		validator: validator.New(),
	}
}

// RuleRequest is the create/update payload for an assignment rule.
type RuleRequest struct {
	Source         *string `json:"source,omitempty"`
	AssignmentType string  `json:"assignment_type" validate:"required,oneof=specific round_robin percentage"`
	AssigneeID     int     `json:"assignee_id" validate:"required,gt=0"`
	Percentage     int     `json:"percentage" validate:"gte=0,lte=100"`
	Priority       int     `json:"priority" validate:"gte=0"`
	IsEnabled      *bool   `json:"is_enabled,omitempty"`
}

// RuleResponse is the public shape of an assignment rule.
type RuleResponse struct {
	ID              int        `json:"id"`
	WorkspaceID     int        `json:"workspace_id"`
	Source          *string    `json:"source,omitempty"`
	AssignmentType  string     `json:"assignment_type"`
	AssigneeID      int        `json:"assignee_id"`
	Percentage      int        `json:"percentage"`
	Priority        int        `json:"priority"`
	IsEnabled       bool       `json:"is_enabled"`
	LastAssignedAt  *time.Time `json:"last_assigned_at,omitempty"`
	AssignmentCount int        `json:"assignment_count"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func newRuleResponse(r *ent.AssignmentRule) RuleResponse {
	return RuleResponse{
		ID:              r.ID,
		WorkspaceID:     r.WorkspaceID,
		Source:          r.Source,
		AssignmentType:  string(r.AssignmentType),
		AssigneeID:      r.AssigneeID,
		Percentage:      r.Percentage,
		Priority:        r.Priority,
		IsEnabled:       r.IsEnabled,
		LastAssignedAt:  r.LastAssignedAt,
		AssignmentCount: r.AssignmentCount,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// List handles GET /workspaces/:workspace_id/assignment-rules.
func (h *RulesHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	workspaceID, err := strconv.Atoi(c.Param("workspace_id"))
	if err != nil || workspaceID <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid workspace id",
		})
	}

	rules, err := h.client.AssignmentRule.Query().
		Where(assignmentrule.WorkspaceIDEQ(workspaceID)).
		Order(ent.Asc(assignmentrule.FieldPriority), ent.Asc(assignmentrule.FieldID)).
		All(ctx)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	response := make([]RuleResponse, len(rules))
	for i, r := range rules {
		response[i] = newRuleResponse(r)
	}
	return c.JSON(http.StatusOK, response)
}

// Create handles POST /workspaces/:workspace_id/assignment-rules.
func (h *RulesHandler) Create(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	workspaceID, err := strconv.Atoi(c.Param("workspace_id"))
	if err != nil || workspaceID <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid workspace id",
		})
	}

	var req RuleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	// The assignee must be an active member of the workspace.
	isMember, err := h.client.WorkspaceMember.Query().
		Where(
			workspacemember.WorkspaceIDEQ(workspaceID),
			workspacemember.UserIDEQ(req.AssigneeID),
			workspacemember.StatusEQ(workspacemember.StatusActive),
		).
		Exist(ctx)
	if err != nil {
		return apierrors.InternalError(c, err)
	}
	if !isMember {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "Assignee is not an active member of this workspace",
		})
	}

	create := h.client.AssignmentRule.Create().
		SetWorkspaceID(workspaceID).
		SetAssignmentType(assignmentrule.AssignmentType(req.AssignmentType)).
		SetAssigneeID(req.AssigneeID).
		SetPercentage(req.Percentage).
		SetPriority(req.Priority)
	if req.Source != nil {
		create.SetSource(*req.Source)
	}
	if req.IsEnabled != nil {
		create.SetIsEnabled(*req.IsEnabled)
	}

	rule, err := create.Save(ctx)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusCreated, newRuleResponse(rule))
}

// Update handles PUT /workspaces/:workspace_id/assignment-rules/:id.
func (h *RulesHandler) Update(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	workspaceID, ruleID, err := workspaceRuleParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid workspace or rule id",
		})
	}

	var req RuleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	rule, err := h.client.AssignmentRule.Query().
		Where(assignmentrule.IDEQ(ruleID), assignmentrule.WorkspaceIDEQ(workspaceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return apierrors.NotFoundError(c, "Assignment rule")
		}
		return apierrors.InternalError(c, err)
	}

	update := rule.Update().
		SetAssignmentType(assignmentrule.AssignmentType(req.AssignmentType)).
		SetAssigneeID(req.AssigneeID).
		SetPercentage(req.Percentage).
		SetPriority(req.Priority)
	if req.Source != nil {
		update.SetSource(*req.Source)
	} else {
		update.ClearSource()
	}
	if req.IsEnabled != nil {
		update.SetIsEnabled(*req.IsEnabled)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, newRuleResponse(updated))
}

// Delete handles DELETE /workspaces/:workspace_id/assignment-rules/:id.
func (h *RulesHandler) Delete(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	workspaceID, ruleID, err := workspaceRuleParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid workspace or rule id",
		})
	}

	deleted, err := h.client.AssignmentRule.Delete().
		Where(assignmentrule.IDEQ(ruleID), assignmentrule.WorkspaceIDEQ(workspaceID)).
		Exec(ctx)
	if err != nil {
		return apierrors.InternalError(c, err)
	}
	if deleted == 0 {
		return apierrors.NotFoundError(c, "Assignment rule")
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: "Assignment rule deleted"})
}

func workspaceRuleParams(c echo.Context) (int, int, error) {
	workspaceID, err := strconv.Atoi(c.Param("workspace_id"))
	if err != nil || workspaceID <= 0 {
		return 0, 0, echo.ErrBadRequest
	}
	ruleID, err := strconv.Atoi(c.Param("id"))
	if err != nil || ruleID <= 0 {
		return 0, 0, echo.ErrBadRequest
	}
	return workspaceID, ruleID, nil
}
