package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tailyapp/taily-api/internal/models"
)

// ErrorResponse is the error payload shape of every endpoint.
type ErrorResponse struct {
	Message string   `json:"message"`
	Field   string   `json:"field,omitempty"`
	Details []string `json:"details,omitempty"`
	Stack   string   `json:"stack,omitempty"`
}

// ErrorHandler normalizes the domain error taxonomy to HTTP statuses.
// includeTrace echoes the underlying error chain on 500s and is only enabled
// outside production.
func ErrorHandler(log Logger, includeTrace bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if err == nil || c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		resp := &ErrorResponse{Message: "Internal Server Error"}

		var (
			notFound   *models.NotFoundError
			invalidArg *models.InvalidArgumentError
			conflict   *models.ConflictError
			validation *models.ValidationError
			httpErr    *echo.HTTPError
		)
		switch {
		case errors.As(err, &notFound):
			status = http.StatusNotFound
			resp.Message = notFound.Message
		case errors.As(err, &invalidArg):
			status = http.StatusBadRequest
			resp.Message = invalidArg.Message
		case errors.As(err, &conflict):
			status = http.StatusBadRequest
			resp.Message = conflict.Message
			resp.Field = conflict.Field
		case errors.As(err, &validation):
			status = http.StatusBadRequest
			resp.Message = "Validation error"
			resp.Details = validation.Details
		case errors.As(err, &httpErr):
			status = httpErr.Code
			resp.Message = fmt.Sprint(httpErr.Message)
		default:
			if includeTrace {
				resp.Stack = err.Error()
			}
		}

		if status >= http.StatusInternalServerError {
			log.Errorw("request failed",
				"method", c.Request().Method,
				"uri", c.Request().RequestURI,
				"error", err.Error(),
			)
		}

		if err := c.JSON(status, resp); err != nil {
			log.Errorw("could not write error response", "status", status, "error", err.Error())
		}
	}
}
