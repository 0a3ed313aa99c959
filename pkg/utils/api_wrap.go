package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps a service error onto a status code and a client-safe
// message. The underlying error is only logged.
func HandleServiceError(c *gin.Context, logger *zap.Logger, err error) {
	code, message := StatusFor(err)
	if code >= http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("trace_id", traceID(c)),
			zap.String("path", c.FullPath()),
			zap.Error(err))
	}
	RespondError(c, code, message)
}

func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest, "Invalid request"
	case errors.Is(err, ErrUserAlreadyExists):
		return http.StatusBadRequest, "User already exists"
	case errors.Is(err, ErrIncompleteSession):
		return http.StatusBadRequest, "Incomplete planning data"
	case errors.Is(err, ErrInvalidStep):
		return http.StatusBadRequest, "Invalid planning step"
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound, "Planning session not found"
	case errors.Is(err, ErrDestinationMissing):
		return http.StatusNotFound, "Destination not found"
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, ErrServiceUnavailable):
		return http.StatusServiceUnavailable, "Service not available"
	case errors.Is(err, ErrUpstreamFailure):
		return http.StatusBadGateway, "Upstream provider error"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
