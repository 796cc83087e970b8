package service

import (
	"context"

	"tontine/internal/domain/entity"
)

// SessionStore loads a session persisted by a previous run.
type SessionStore interface {
	// Load returns the persisted identity, or nil when there is none.
	Load(ctx context.Context) (*entity.UserIdentity, error)
}

// AccessTokenSource yields the bearer token of the signed-in member, or "" when signed out.
type AccessTokenSource interface {
	AccessToken() string
}
