// internal/common/errors/handler.go
package errors

import (
	"time"

	"petfinder-bot/internal/common/metrics"
)

// ErrorHandler normalizes, logs and counts invocation errors.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// HandleInvocationError records a failed invocation and returns the
// normalized error. The original error is returned to the caller unchanged
// when it already is a StandardError.
func (h *ErrorHandler) HandleInvocationError(err error, fields map[string]interface{}) *StandardError {
	stdErr := h.normalizeError(err)

	h.logError(stdErr, fields)
	metrics.InvocationErrors.WithLabelValues(string(stdErr.Code)).Inc()

	return stdErr
}

// normalizeError ensures we always have a StandardError
func (h *ErrorHandler) normalizeError(err error) *StandardError {
	if stdErr, ok := AsStandardError(err); ok {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

func (h *ErrorHandler) logError(stdErr *StandardError, fields map[string]interface{}) {
	out := map[string]interface{}{
		"errorCode":     string(stdErr.Code),
		"message":       stdErr.Message,
		"details":       stdErr.Details,
		"retryable":     stdErr.Retryable,
		"retries":       GetRetryCount(stdErr.Code),
		"errorCategory": GetErrorCategory(stdErr.Code),
	}
	for k, v := range fields {
		out[k] = v
	}
	h.logger.Error("invocation failed", out)
}
