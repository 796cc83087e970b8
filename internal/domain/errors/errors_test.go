package errors

import (
	"net/http"
	"testing"

	"tontine/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatchesSentinel(t *testing.T) {
	err := ErrBackendUnavailable.WithDetails("dial tcp: connection refused")

	assert.True(t, errors.Is(err, ErrBackendUnavailable))
	assert.False(t, errors.Is(err, ErrInvalidCredentials))
	assert.Equal(t, "dial tcp: connection refused", err.Details())
	assert.Equal(t, http.StatusBadGateway, err.HTTPCode())
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	wrapped := ErrFormNotFound.WrapMessage("lookup form")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "FORM_NOT_FOUND", appErr.ErrorCode())
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}
