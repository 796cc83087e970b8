package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "tontine/internal/delivery/context"
	"tontine/internal/delivery/http/response"
	"tontine/internal/delivery/http/validator"
	"tontine/internal/domain/entity"
	"tontine/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	AuthUC    usecase.AuthUsecase
	Logger    *slog.Logger
}

// SessionHandler serves sign-in, sign-out and the session snapshot.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	authUC    usecase.AuthUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		authUC:    params.AuthUC,
		logger:    params.Logger,
	}
}

// SessionResponse is the session snapshot screens render.
type SessionResponse struct {
	Authenticated bool                 `json:"authenticated"`
	Loading       bool                 `json:"loading"`
	User          *entity.UserIdentity `json:"user,omitempty"`
}

// LogoutRequest represents the request body for signing out
type LogoutRequest struct {
	ShowMessage bool `json:"showMessage"`
}

// LogoutResponse carries the notice to display, if any.
type LogoutResponse struct {
	Notice *entity.Notice `json:"notice,omitempty"`
}

// GetSession returns the current session.
func (h *SessionHandler) GetSession(c echo.Context) error {
	session := h.sessionUC.Current()

	return response.Success(c, http.StatusOK, SessionResponse{
		Authenticated: session.IsAuthenticated(),
		Loading:       session.IsLoading,
		User:          session.User,
	})
}

// Login handles member sign-in
func (h *SessionHandler) Login(c echo.Context) error {
	var req usecase.SignInInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Identifier and password are required", validator.FieldErrors(err))
	}

	out, err := h.authUC.SignIn(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Member signed in",
		slog.String("userID", out.User.ID.String()),
		slog.Bool("firstLogin", out.FirstLogin),
	)

	return response.Success(c, http.StatusOK, out)
}

// Logout handles member sign-out. An empty body signs out silently.
func (h *SessionHandler) Logout(c echo.Context) error {
	var req LogoutRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid sign-out input")
		}
	}

	notice := h.authUC.SignOut(c.Request().Context(), req.ShowMessage)

	return response.Success(c, http.StatusOK, LogoutResponse{Notice: notice})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
