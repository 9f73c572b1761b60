// Package errors provides standardized error handling for Lex fulfillment.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeUnsupportedIntent ErrorCode = "UNSUPPORTED_INTENT"
	ErrCodeInvalidBotName    ErrorCode = "INVALID_BOT_NAME"
	ErrCodeInvalidRequest    ErrorCode = "INVALID_REQUEST"

	ErrCodeExternalLookupFailed  ErrorCode = "EXTERNAL_LOOKUP_FAILED"
	ErrCodeExternalLookupTimeout ErrorCode = "EXTERNAL_LOOKUP_TIMEOUT"

	ErrCodeHistoryWriteFailed     ErrorCode = "HISTORY_WRITE_FAILED"
	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`

	cause error
}

func (e *StandardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("StandardError[%s]: %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause so errors.Is keeps working on wrapped
// transport errors such as context.DeadlineExceeded.
func (e *StandardError) Unwrap() error {
	return e.cause
}

// ==========================
// 2. Error Constructors
// ==========================

// NewUnsupportedIntentError creates a non-retryable dispatch error naming the intent.
func NewUnsupportedIntentError(intentName string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnsupportedIntent,
		Message:   fmt.Sprintf("Intent with name %s not supported", intentName),
		Details:   fmt.Sprintf("intentName: %s", intentName),
		Retryable: false,
		Metadata:  map[string]interface{}{"intentName": intentName},
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidBotNameError creates a non-retryable guard error.
func NewInvalidBotNameError(botName string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidBotName,
		Message:   "Invalid Bot Name",
		Details:   fmt.Sprintf("botName: %s", botName),
		Retryable: false,
		Metadata:  map[string]interface{}{"botName": botName},
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidRequestError creates a non-retryable error for malformed events.
func NewInvalidRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequest,
		Message:   "Malformed dialog request",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewExternalLookupFailedError wraps a pet directory failure.
func NewExternalLookupFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeExternalLookupFailed,
		Message:   "Pet directory lookup failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewExternalLookupTimeoutError wraps a pet directory call that ran out of time.
func NewExternalLookupTimeoutError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeExternalLookupTimeout,
		Message:   "Pet directory lookup timeout",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewHistoryWriteFailedError creates a retryable redis error.
func NewHistoryWriteFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeHistoryWriteFailed,
		Message:   "Match history write failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewNotificationSendFailedError creates a retryable notification send error.
func NewNotificationSendFailedError(notificationType string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationSendFailed,
		Message:   "Notification send failed",
		Details:   fmt.Sprintf("type: %s, error: %s", notificationType, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// GetRetryCount returns the recommended retry count for a code. The handler
// itself never retries; the count is reported so callers can decide.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeExternalLookupFailed,
		ErrCodeHistoryWriteFailed,
		ErrCodeNotificationSendFailed:
		return 3

	case ErrCodeExternalLookupTimeout:
		return 1

	default:
		return 0
	}
}

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "INTENT") || strings.Contains(codeStr, "BOT"):
		return "DISPATCH"
	case strings.Contains(codeStr, "LOOKUP"):
		return "EXTERNAL"
	case strings.Contains(codeStr, "HISTORY"):
		return "STORAGE"
	case strings.Contains(codeStr, "NOTIFICATION"):
		return "NOTIFICATION"
	case strings.Contains(codeStr, "INVALID"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}

// AsStandardError extracts a StandardError from an error chain.
func AsStandardError(err error) (*StandardError, bool) {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr, true
	}
	return nil, false
}

// CodeOf returns the error code carried by err, or INTERNAL_ERROR.
func CodeOf(err error) ErrorCode {
	if stdErr, ok := AsStandardError(err); ok {
		return stdErr.Code
	}
	return ErrCodeInternal
}
