package impl

import (
	"context"
	"testing"

	"tontine/internal/domain/entity"
	mockSvc "tontine/internal/mocks/service"
	"tontine/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_Initialize_NoPersistedSession(t *testing.T) {
	store := mockSvc.NewMockSessionStore(t)
	srv := NewSessionService(store, newDiscardLogger())
	ctx := context.Background()

	store.EXPECT().Load(ctx).RunAndReturn(func(context.Context) (*entity.UserIdentity, error) {
		assert.True(t, srv.Current().IsLoading, "loading flag must be set during the load")

		return nil, nil
	})

	srv.Initialize(ctx)

	current := srv.Current()
	assert.False(t, current.IsLoading)
	assert.Nil(t, current.User)
	assert.False(t, srv.IsAuthenticated())
}

func TestSessionService_Initialize_LoadFailureIsSwallowed(t *testing.T) {
	store := mockSvc.NewMockSessionStore(t)
	srv := NewSessionService(store, newDiscardLogger())
	ctx := context.Background()

	store.EXPECT().Load(ctx).Return(nil, errors.New("storage unavailable"))

	assert.NotPanics(t, func() { srv.Initialize(ctx) })
	assert.False(t, srv.Current().IsLoading)
	assert.False(t, srv.IsAuthenticated())
}

func TestSessionService_Initialize_RestoresPersistedIdentity(t *testing.T) {
	store := mockSvc.NewMockSessionStore(t)
	srv := NewSessionService(store, newDiscardLogger())
	ctx := context.Background()
	identity := newTestIdentity()

	store.EXPECT().Load(ctx).Return(identity, nil)

	srv.Initialize(ctx)

	assert.Equal(t, identity, srv.Current().User)
	assert.Equal(t, "access-token", srv.AccessToken())
}

func TestSessionService_LoginLogout(t *testing.T) {
	srv := NewSessionService(emptySessionStore{}, newDiscardLogger())
	ctx := context.Background()
	identity := newTestIdentity()

	srv.Login(ctx, identity)
	require.True(t, srv.IsAuthenticated())
	assert.Equal(t, identity, srv.Current().User)

	notice := srv.Logout(ctx, false)
	assert.Nil(t, notice)
	assert.False(t, srv.IsAuthenticated())
	assert.Empty(t, srv.AccessToken())
}

func TestSessionService_LogoutWithMessage(t *testing.T) {
	srv := newSignedInSession(t)

	notice := srv.Logout(context.Background(), true)

	require.NotNil(t, notice)
	assert.Equal(t, entity.NoticeInfo, notice.Kind)
	assert.NotEmpty(t, notice.Title)
	assert.False(t, srv.IsAuthenticated())
}

func TestSessionService_LogoutIsIdempotent(t *testing.T) {
	srv := newSignedInSession(t)
	ctx := context.Background()

	srv.Logout(ctx, false)
	assert.NotPanics(t, func() {
		srv.Logout(ctx, false)
		srv.Logout(ctx, true)
	})
	assert.Equal(t, entity.Session{}, srv.Current())
}

var _ usecase.SessionUsecase = (*sessionService)(nil)
