package auth

import (
	"testing"
	"time"

	"tontine/config"
	"tontine/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_identity_secret_key_very_long_for_testing"

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func signToken(t *testing.T, secret string, claims service.IdentityClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func memberClaims(userID uuid.UUID, expiresAt time.Time) service.IdentityClaims {
	return service.IdentityClaims{
		Email:      "awa@example.com",
		Name:       "Awa",
		Roles:      []string{"member"},
		FirstLogin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
}

func TestJWTDecoder_Unverified(t *testing.T) {
	decoder := newJWTDecoder(nil, func() time.Time { return fixedNow })
	userID := uuid.New()
	token := signToken(t, "some-backend-secret", memberClaims(userID, fixedNow.Add(time.Hour)))

	identity, err := decoder.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, userID, identity.ID)
	assert.Equal(t, "awa@example.com", identity.Email)
	assert.Equal(t, "Awa", identity.Name)
	assert.Equal(t, []string{"member"}, identity.Roles)
	assert.True(t, identity.FirstLogin)
	assert.Equal(t, token, identity.AccessToken)
}

func TestJWTDecoder_Verified(t *testing.T) {
	decoder := newJWTDecoder([]byte(testSecret), func() time.Time { return fixedNow })
	userID := uuid.New()

	identity, err := decoder.Decode(signToken(t, testSecret, memberClaims(userID, fixedNow.Add(time.Hour))))
	require.NoError(t, err)
	assert.Equal(t, userID, identity.ID)

	_, err = decoder.Decode(signToken(t, "wrong-secret", memberClaims(userID, fixedNow.Add(time.Hour))))
	assert.Error(t, err)
}

func TestJWTDecoder_Rejects(t *testing.T) {
	decoder := newJWTDecoder(nil, func() time.Time { return fixedNow })

	badSubject := memberClaims(uuid.New(), fixedNow.Add(time.Hour))
	badSubject.Subject = "not-a-uuid"

	tests := []struct {
		name  string
		token string
	}{
		{name: "malformed", token: "not.a.jwt"},
		{name: "expired", token: signToken(t, testSecret, memberClaims(uuid.New(), fixedNow.Add(-time.Minute)))},
		{name: "bad subject", token: signToken(t, testSecret, badSubject)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := decoder.Decode(tt.token)
			assert.Error(t, err)
			assert.Nil(t, identity)
		})
	}
}

func TestNewJWTDecoder_FromConfig(t *testing.T) {
	decoder := NewJWTDecoder(&config.Config{Identity: &config.IdentityConfig{VerificationSecret: testSecret}})

	_, err := decoder.Decode(signToken(t, "other", memberClaims(uuid.New(), time.Now().Add(time.Hour))))
	assert.Error(t, err)
}
