package service

import (
	"tontine/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// IdentityClaims are the claims the backend puts in member access tokens.
type IdentityClaims struct {
	Email      string   `json:"email"`
	Name       string   `json:"name"`
	Roles      []string `json:"roles"`
	FirstLogin bool     `json:"firstLogin"`
	jwt.RegisteredClaims
}

// IdentityDecoder extracts the member identity from an access token.
type IdentityDecoder interface {
	Decode(accessToken string) (*entity.UserIdentity, error)
}
