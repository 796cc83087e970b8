package middleware

import (
	domainerrors "tontine/internal/domain/errors"
	"tontine/internal/errors"
	"tontine/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware guards routes that need a signed-in member.
type SessionMiddleware struct {
	session usecase.SessionUsecase
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(session usecase.SessionUsecase) *SessionMiddleware {
	return &SessionMiddleware{session: session}
}

// RequireSession rejects the request unless a member is signed in.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.session.IsAuthenticated() {
			return errors.WithStack(domainerrors.ErrNotAuthenticated)
		}

		return next(c)
	}
}
