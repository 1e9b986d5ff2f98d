package handlers

import (
	"context"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	apierrors "github.com/leadrouter/crm-backend/pkg/api/errors"
	"github.com/leadrouter/crm-backend/pkg/importer"
	"github.com/leadrouter/crm-backend/pkg/models"
)

// ImportHandler handles bulk lead uploads.
type ImportHandler struct {
	importer *importer.Service
}

// NewImportHandler creates a new import handler.
func NewImportHandler(svc *importer.Service) *ImportHandler {
	return &ImportHandler{importer: svc}
}

// ImportLeads handles POST /workspaces/:workspace_id/leads/import. The
// request is multipart with a "file" field; the extension picks the
// parser.
func (h *ImportHandler) ImportLeads(c echo.Context) error {
	// Imports can take a while against a busy database.
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Minute)
	defer cancel()

	workspaceID, err := strconv.Atoi(c.Param("workspace_id"))
	if err != nil || workspaceID <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid workspace id",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Multipart field 'file' is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apierrors.InternalError(c, err)
	}
	defer file.Close()

	config := importer.DefaultConfig()
	if tag := c.FormValue("source"); tag != "" {
		config.Source = tag
	}

	var result *importer.Result
	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".csv":
		result, err = h.importer.ImportCSV(ctx, workspaceID, file, config)
	case ".xlsx":
		result, err = h.importer.ImportXLSX(ctx, workspaceID, file, config)
	default:
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "Only .csv and .xlsx files are supported",
		})
	}
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
