// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"tontine/config"
	"tontine/internal/domain/entity"
	"tontine/internal/domain/service"
	"tontine/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtDecoder reads the member identity out of backend access tokens.
type jwtDecoder struct {
	secret    []byte // HMAC secret; nil when signatures are not checked.
	parser    *jwt.Parser
	validator *jwt.Validator
}

// NewJWTDecoder is the constructor for jwtDecoder.
// Without a verification secret the token is trusted as issued, since the backend that
// minted it is the only party that could check it; expiry is still enforced.
func NewJWTDecoder(cfg *config.Config) service.IdentityDecoder {
	var secret []byte
	if cfg.Identity != nil && cfg.Identity.VerificationSecret != "" {
		secret = []byte(cfg.Identity.VerificationSecret)
	}

	return newJWTDecoder(secret, time.Now)
}

func newJWTDecoder(secret []byte, now func() time.Time) *jwtDecoder {
	return &jwtDecoder{
		secret:    secret,
		parser:    jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS384.Alg(), jwt.SigningMethodHS512.Alg()}), jwt.WithTimeFunc(now)),
		validator: jwt.NewValidator(jwt.WithTimeFunc(now)),
	}
}

// Decode parses accessToken and maps its claims onto a UserIdentity.
func (d *jwtDecoder) Decode(accessToken string) (*entity.UserIdentity, error) {
	claims := &service.IdentityClaims{}

	if d.secret != nil {
		if _, err := d.parser.ParseWithClaims(accessToken, claims, func(*jwt.Token) (any, error) {
			return d.secret, nil
		}); err != nil {
			return nil, errors.Wrap(err, "verify access token")
		}
	} else {
		if _, _, err := d.parser.ParseUnverified(accessToken, claims); err != nil {
			return nil, errors.Wrap(err, "parse access token")
		}
		if err := d.validator.Validate(claims); err != nil {
			return nil, errors.Wrap(err, "validate access token")
		}
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "access token subject is not a member id")
	}

	return &entity.UserIdentity{
		ID:          id,
		Email:       claims.Email,
		Name:        claims.Name,
		Roles:       claims.Roles,
		FirstLogin:  claims.FirstLogin,
		AccessToken: accessToken,
	}, nil
}
