package handler

import (
	"net/http"
	"testing"

	"tontine/internal/domain/entity"
	domainerrors "tontine/internal/domain/errors"
	mockUsecase "tontine/internal/mocks/usecase"
	"tontine/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionHandlerFixtures struct {
	handler   *SessionHandler
	sessionUC *mockUsecase.MockSessionUsecase
	authUC    *mockUsecase.MockAuthUsecase
}

func createTestSessionHandler(t *testing.T) sessionHandlerFixtures {
	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	authUC := mockUsecase.NewMockAuthUsecase(t)

	return sessionHandlerFixtures{
		handler: NewSessionHandler(SessionHandlerParams{
			SessionUC: sessionUC,
			AuthUC:    authUC,
			Logger:    newDiscardLogger(),
		}),
		sessionUC: sessionUC,
		authUC:    authUC,
	}
}

func TestSessionHandler_GetSession(t *testing.T) {
	fx := createTestSessionHandler(t)
	user := &entity.UserIdentity{ID: uuid.New(), Email: "awa@example.com", AccessToken: "secret-token"}
	fx.sessionUC.EXPECT().Current().Return(entity.Session{User: user})

	c, rec := newTestContext(http.MethodGet, "/session", "")
	require.NoError(t, fx.handler.GetSession(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret-token")

	var got SessionResponse
	decodeData(t, rec, &got)
	assert.True(t, got.Authenticated)
	assert.Equal(t, user.ID, got.User.ID)
}

func TestSessionHandler_Login(t *testing.T) {
	fx := createTestSessionHandler(t)
	user := &entity.UserIdentity{ID: uuid.New(), Email: "awa@example.com"}
	fx.authUC.EXPECT().SignIn(mock.Anything, usecase.SignInInput{Identifier: "awa@example.com", Password: "Temp123!"}).
		Return(&usecase.SignInOutput{User: user, FirstLogin: true}, nil)

	c, rec := newTestContext(http.MethodPost, "/session/login", `{"identifier":"awa@example.com","password":"Temp123!"}`)
	require.NoError(t, fx.handler.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var got usecase.SignInOutput
	decodeData(t, rec, &got)
	assert.True(t, got.FirstLogin)
}

func TestSessionHandler_Login_Errors(t *testing.T) {
	t.Run("missing password", func(t *testing.T) {
		fx := createTestSessionHandler(t)

		c, rec := newTestContext(http.MethodPost, "/session/login", `{"identifier":"awa@example.com"}`)
		require.NoError(t, fx.handler.Login(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		info := decodeError(t, rec)
		assert.Equal(t, "VALIDATION_ERROR", info.Code)
		assert.Equal(t, map[string]any{"password": "required"}, info.Details)
	})

	t.Run("rejected", func(t *testing.T) {
		fx := createTestSessionHandler(t)
		fx.authUC.EXPECT().SignIn(mock.Anything, mock.Anything).
			Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials.WithDetails("Bad credentials")))

		c, rec := newTestContext(http.MethodPost, "/session/login", `{"identifier":"awa@example.com","password":"wrong"}`)
		require.NoError(t, fx.handler.Login(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		info := decodeError(t, rec)
		assert.Equal(t, "INVALID_CREDENTIALS", info.Code)
		assert.Equal(t, "Bad credentials", info.Details)
	})
}

func TestSessionHandler_Logout(t *testing.T) {
	t.Run("with message", func(t *testing.T) {
		fx := createTestSessionHandler(t)
		notice := &entity.Notice{Kind: entity.NoticeInfo, Title: "Signed out"}
		fx.authUC.EXPECT().SignOut(mock.Anything, true).Return(notice)

		c, rec := newTestContext(http.MethodPost, "/session/logout", `{"showMessage":true}`)
		require.NoError(t, fx.handler.Logout(c))

		var got LogoutResponse
		decodeData(t, rec, &got)
		require.NotNil(t, got.Notice)
		assert.Equal(t, "Signed out", got.Notice.Title)
	})

	t.Run("silent", func(t *testing.T) {
		fx := createTestSessionHandler(t)
		fx.authUC.EXPECT().SignOut(mock.Anything, false).Return(nil)

		c, rec := newTestContext(http.MethodPost, "/session/logout", "")
		require.NoError(t, fx.handler.Logout(c))

		var got LogoutResponse
		decodeData(t, rec, &got)
		assert.Nil(t, got.Notice)
	})
}
