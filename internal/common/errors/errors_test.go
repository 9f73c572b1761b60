package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureLogger struct {
	msg    string
	fields map[string]interface{}
}

func (c *captureLogger) Error(msg string, fields map[string]interface{}) {
	c.msg = msg
	c.fields = fields
}

func TestNewUnsupportedIntentError(t *testing.T) {
	err := NewUnsupportedIntentError("BookFlight")

	assert.Equal(t, ErrCodeUnsupportedIntent, err.Code)
	assert.Equal(t, "Intent with name BookFlight not supported", err.Message)
	assert.Equal(t, "BookFlight", err.Metadata["intentName"])
	assert.False(t, err.Retryable)
	assert.Contains(t, err.Error(), "UNSUPPORTED_INTENT")
}

func TestNewInvalidBotNameError(t *testing.T) {
	err := NewInvalidBotNameError("Impostor")
	assert.Equal(t, "Invalid Bot Name", err.Message)
	assert.Equal(t, "DISPATCH", GetErrorCategory(err.Code))
}

func TestWrappedCausesUnwrap(t *testing.T) {
	err := NewExternalLookupTimeoutError(fmt.Errorf("get: %w", context.DeadlineExceeded))
	assert.True(t, stderrors.Is(err, context.DeadlineExceeded))

	wrapped := fmt.Errorf("fulfill: %w", err)
	stdErr, ok := AsStandardError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrCodeExternalLookupTimeout, stdErr.Code)
	assert.Equal(t, ErrCodeExternalLookupTimeout, CodeOf(wrapped))
}

func TestCodeOf_PlainError(t *testing.T) {
	assert.Equal(t, ErrCodeInternal, CodeOf(stderrors.New("plain")))
	_, ok := AsStandardError(stderrors.New("plain"))
	assert.False(t, ok)
}

func TestRetryPolicy(t *testing.T) {
	assert.Equal(t, 3, GetRetryCount(ErrCodeExternalLookupFailed))
	assert.Equal(t, 1, GetRetryCount(ErrCodeExternalLookupTimeout))
	assert.Equal(t, 0, GetRetryCount(ErrCodeUnsupportedIntent))
	assert.True(t, IsRetryableErrorCode(ErrCodeHistoryWriteFailed))
	assert.False(t, IsRetryableErrorCode(ErrCodeInvalidRequest))
}

func TestGetErrorCategory(t *testing.T) {
	tests := map[ErrorCode]string{
		ErrCodeUnsupportedIntent:      "DISPATCH",
		ErrCodeInvalidBotName:         "DISPATCH",
		ErrCodeExternalLookupFailed:   "EXTERNAL",
		ErrCodeExternalLookupTimeout:  "EXTERNAL",
		ErrCodeHistoryWriteFailed:     "STORAGE",
		ErrCodeNotificationSendFailed: "NOTIFICATION",
		ErrCodeInvalidRequest:         "VALIDATION",
		ErrCodeInternal:               "OTHER",
	}
	for code, want := range tests {
		assert.Equal(t, want, GetErrorCategory(code), string(code))
	}
}

func TestErrorHandler_NormalizesAndLogs(t *testing.T) {
	log := &captureLogger{}
	h := NewErrorHandler(log)

	stdErr := h.HandleInvocationError(stderrors.New("kaboom"), map[string]interface{}{"userId": "u1"})

	assert.Equal(t, ErrCodeInternal, stdErr.Code)
	assert.Equal(t, "kaboom", stdErr.Details)
	assert.Equal(t, "invocation failed", log.msg)
	assert.Equal(t, "u1", log.fields["userId"])
	assert.Equal(t, "INTERNAL_ERROR", log.fields["errorCode"])
	assert.Equal(t, "OTHER", log.fields["errorCategory"])
}

func TestErrorHandler_KeepsStandardError(t *testing.T) {
	h := NewErrorHandler(&captureLogger{})
	original := NewUnsupportedIntentError("X")

	assert.Same(t, original, h.HandleInvocationError(original, nil))
}
