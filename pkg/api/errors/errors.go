package errors

import (
	stderrors "errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/leadrouter/crm-backend/pkg/domain"
	"github.com/leadrouter/crm-backend/pkg/models"
)

// FromDomain maps a service error onto the right HTTP reply. Anything
// without a domain code is treated as internal and kept out of the
// response body.
func FromDomain(c echo.Context, err error) error {
	switch {
	case domain.IsNotFound(err):
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: domainMessage(err, "The requested resource was not found."),
		})
	case domain.IsValidation(err):
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: domainMessage(err, "Invalid request data."),
		})
	case domain.IsConfiguration(err):
		return c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "configuration_error",
			Message: domainMessage(err, "The workspace is not configured for this operation."),
		})
	case domain.IsConflict(err), domain.IsConcurrency(err):
		return c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "conflict",
			Message: domainMessage(err, "The resource was modified concurrently. Please retry."),
		})
	case domain.IsUnauthorized(err):
		return UnauthorizedError(c)
	default:
		return InternalError(c, err)
	}
}

func domainMessage(err error, fallback string) string {
	var derr *domain.DomainError
	if stderrors.As(err, &derr) && derr.Message != "" {
		return derr.Message
	}
	return fallback
}

// ValidationError returns a generic validation error without exposing internal details
func ValidationError(c echo.Context, err error) error {
	log.Printf("[VALIDATION ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "validation_error",
		Message: "Invalid request data. Please check your input and try again.",
	})
}

// InternalError returns a generic internal server error
func InternalError(c echo.Context, err error) error {
	log.Printf("[INTERNAL ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred. Please try again later.",
	})
}

// UnauthorizedError returns a generic unauthorized error
func UnauthorizedError(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Error:   "unauthorized",
		Message: "You are not authorized to access this resource.",
	})
}

// NotFoundError returns a generic not found error
func NotFoundError(c echo.Context, resource string) error {
	return c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "not_found",
		Message: resource + " not found.",
	})
}

// ConflictError returns a generic conflict error
func ConflictError(c echo.Context, message string) error {
	return c.JSON(http.StatusConflict, models.ErrorResponse{
		Error:   "conflict",
		Message: message,
	})
}
