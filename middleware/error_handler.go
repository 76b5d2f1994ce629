package middleware

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/NomadCrew/openweather-go/errors"
	"github.com/NomadCrew/openweather-go/logger"
	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Code    string `json:"code,omitempty"`
}

// ErrorHandler renders the last error attached to the context. Validation
// errors become 400, upstream API errors keep the upstream status and
// anything else is reported as 502 since the gateway has nothing to fail on
// its own.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		ginErr := c.Errors.Last()
		err := ginErr.Err
		metadata := map[string]interface{}{
			"path":      c.Request.URL.Path,
			"method":    c.Request.Method,
			"client_ip": c.ClientIP(),
		}

		var appErr *errors.AppError
		showDetail := true
		switch {
		case stderrors.As(err, &appErr):
		case ginErr.Type == gin.ErrorTypeBind:
			appErr = errors.New(errors.ValidationError, "Failed to bind request", err.Error())
			showDetail = gin.IsDebugging()
		default:
			appErr = errors.Wrap(err, errors.ServerError, "Weather service unavailable")
			showDetail = gin.IsDebugging()
		}

		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		metadata["error_type"] = string(appErr.Type)
		metadata["status"] = status

		switch appErr.Type {
		case errors.ValidationError:
			logger.GetLogger().Debugw("Rejected request", "path", c.Request.URL.Path, "error", err)
		case errors.ServerError:
			logger.LogError(c.Request.Context(), err, "Weather service unreachable", metadata)
		default:
			logger.LogError(c.Request.Context(), err, "Upstream error", metadata)
		}

		response := ErrorResponse{
			Type:    string(appErr.Type),
			Message: appErr.Message,
			Code:    strconv.Itoa(status),
		}
		if showDetail {
			response.Details = appErr.Detail
		}
		c.JSON(status, response)
	}
}
