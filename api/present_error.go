package api

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/tablescope/tablescope-backend/dto"
	"github.com/tablescope/tablescope-backend/models"
	"github.com/tablescope/tablescope-backend/utils"
)

// presentError converts the error taxonomy into the ActionResponse envelope.
// Nothing escapes this function as an uncaught fault: unrecognized errors
// are logged and rendered as a generic 500 so internals never leak.
func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	var ruleErr models.RuleValidationError
	switch {
	case errors.As(err, &ruleErr):
		renderError(c, http.StatusBadRequest, ruleErr.Error(), ruleErr.Details())
	case errors.Is(err, models.BadParameterError):
		renderError(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, models.NotFoundError):
		renderError(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, models.ConflictError):
		renderError(c, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, models.StoreError):
		utils.LoggerFromContext(ctx).ErrorContext(ctx, "query store error", "error", err.Error())
		renderError(c, http.StatusServiceUnavailable, models.StoreError.Error(), nil)
	default:
		utils.LoggerFromContext(ctx).ErrorContext(ctx, "unexpected error", "error", err.Error())
		renderError(c, http.StatusInternalServerError, "An unexpected error occurred.", nil)
	}
	return true
}

func renderError(c *gin.Context, status int, message string, details map[string][]string) {
	c.JSON(status, dto.ActionResponse[struct{}]{
		Success: false,
		Error: &dto.APIError{
			Message: message,
			Details: details,
		},
	})
}

func presentBindError(c *gin.Context, err error) {
	renderError(c, http.StatusBadRequest, err.Error(), nil)
}
