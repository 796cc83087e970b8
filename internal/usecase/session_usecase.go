// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"tontine/internal/domain/entity"
)

// SessionUsecase owns the process-wide session state. There is exactly one per process,
// constructed at startup and injected into everything that needs it.
type SessionUsecase interface {
	// Initialize loads a persisted session. IsLoading is true for the duration of the attempt.
	// Failures are logged and leave the session empty.
	Initialize(ctx context.Context)

	// Login makes identity the current user. It performs no remote call.
	Login(ctx context.Context, identity *entity.UserIdentity)

	// Logout clears the current user. When showMessage is true the notice to display
	// before clearing is returned; otherwise the session is cleared silently and nil is returned.
	// Calling Logout repeatedly is safe.
	Logout(ctx context.Context, showMessage bool) *entity.Notice

	// Current returns a snapshot of the session.
	Current() entity.Session

	// IsAuthenticated reports whether a member is signed in.
	IsAuthenticated() bool

	// AccessToken returns the bearer token of the signed-in member.
	AccessToken() string
}
