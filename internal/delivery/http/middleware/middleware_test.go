package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"tontine/internal/delivery/http/response"
	domainerrors "tontine/internal/domain/errors"
	mockUsecase "tontine/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/tontines", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:        "app error with details",
			err:         errors.WithStack(domainerrors.ErrBackendUnavailable.WithDetails("Unable to reach the server.")),
			wantStatus:  http.StatusBadGateway,
			wantCode:    "BACKEND_UNAVAILABLE",
			wantDetails: "Unable to reach the server.",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "internal error hides details",
			err:        errors.WithStack(domainerrors.ErrInternalError.WithDetails("disk full")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
		})
	}
}

func TestSessionMiddleware_RequireSession(t *testing.T) {
	session := mockUsecase.NewMockSessionUsecase(t)
	m := NewSessionMiddleware(session)
	next := func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}

	session.EXPECT().IsAuthenticated().Return(false).Once()
	c, _ := newContext()
	err := m.RequireSession(next)(c)
	assert.True(t, errors.Is(err, domainerrors.ErrNotAuthenticated))

	session.EXPECT().IsAuthenticated().Return(true).Once()
	c, rec := newContext()
	require.NoError(t, m.RequireSession(next)(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
