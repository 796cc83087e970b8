package impl

import (
	"context"
	"testing"

	"tontine/internal/domain/entity"
	domainerrors "tontine/internal/domain/errors"
	"tontine/internal/domain/service"
	mockSvc "tontine/internal/mocks/service"
	"tontine/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type formServiceFixtures struct {
	service usecase.PasswordFormUsecase
	store   *mockSvc.MockCredentialStore
	auth    *mockSvc.MockAuthService
	session usecase.SessionUsecase
}

func createTestFormService(t *testing.T) formServiceFixtures {
	store := mockSvc.NewMockCredentialStore(t)
	auth := mockSvc.NewMockAuthService(t)
	session := newSignedInSession(t)

	return formServiceFixtures{
		service: NewPasswordFormService(store, auth, session, nil, newDiscardLogger()),
		store:   store,
		auth:    auth,
		session: session,
	}
}

func TestPasswordFormService_FullForcedFlow(t *testing.T) {
	fx := createTestFormService(t)
	ctx := context.Background()

	fx.store.EXPECT().Get(mock.Anything, entity.CurrentPasswordKey).Return("Temp123!", true, nil)
	fx.auth.EXPECT().FirstPasswordChange(mock.Anything, "Temp123!", "Abcdef1!").Return(&service.ChangeResult{Success: true}, nil)
	fx.store.EXPECT().Remove(mock.Anything, entity.CurrentPasswordKey).Return(nil)

	opened, err := fx.service.OpenForm(ctx, usecase.VariantForcedFirstChange)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, opened.ID)

	state, err := fx.service.EditField(ctx, opened.ID, entity.FieldNewPassword, "Abcdef1!")
	require.NoError(t, err)
	assert.Empty(t, state.Form.Errors)

	state, err = fx.service.BlurField(ctx, opened.ID, entity.FieldConfirmPassword)
	require.NoError(t, err)
	assert.Equal(t, entity.ValidationRequired.Message(entity.FieldConfirmPassword), state.Form.Errors[entity.FieldConfirmPassword])

	state, err = fx.service.EditField(ctx, opened.ID, entity.FieldConfirmPassword, "Abcdef1!")
	require.NoError(t, err)
	assert.Empty(t, state.Form.Errors)

	out, err := fx.service.Submit(ctx, opened.ID)
	require.NoError(t, err)
	assert.True(t, out.Succeeded)

	current, err := fx.service.GetForm(ctx, opened.ID)
	require.NoError(t, err)
	assert.Equal(t, usecase.StateAwaitingAcknowledgement, current.State)
	assert.True(t, current.Loading)

	_, err = fx.service.Acknowledge(ctx, opened.ID)
	require.NoError(t, err)
	assert.False(t, fx.session.IsAuthenticated())

	_, err = fx.service.GetForm(ctx, opened.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrFormNotFound))
}

func TestPasswordFormService_UnknownVariant(t *testing.T) {
	fx := createTestFormService(t)

	_, err := fx.service.OpenForm(context.Background(), usecase.PasswordVariant("reset"))
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownVariant))
}

func TestPasswordFormService_RequiresSession(t *testing.T) {
	fx := createTestFormService(t)
	ctx := context.Background()
	fx.session.Logout(ctx, false)

	_, err := fx.service.OpenForm(ctx, usecase.VariantConfirmedChange)
	assert.True(t, errors.Is(err, domainerrors.ErrNotAuthenticated))
}

func TestPasswordFormService_SignedOutFormIsNotKept(t *testing.T) {
	fx := createTestFormService(t)
	ctx := context.Background()

	fx.store.EXPECT().Get(mock.Anything, entity.CurrentPasswordKey).Return("", false, nil)

	opened, err := fx.service.OpenForm(ctx, usecase.VariantConfirmedChange)
	require.NoError(t, err)
	assert.Equal(t, usecase.StateLoggedOut, opened.State)
	require.NotNil(t, opened.Notice)

	_, err = fx.service.GetForm(ctx, opened.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrFormNotFound))
}

func TestPasswordFormService_CloseForm(t *testing.T) {
	fx := createTestFormService(t)
	ctx := context.Background()

	fx.store.EXPECT().Get(mock.Anything, entity.CurrentPasswordKey).Return("Temp123!", true, nil)

	opened, err := fx.service.OpenForm(ctx, usecase.VariantConfirmedChange)
	require.NoError(t, err)

	require.NoError(t, fx.service.CloseForm(ctx, opened.ID))

	_, err = fx.service.EditField(ctx, opened.ID, entity.FieldNewPassword, "x")
	assert.True(t, errors.Is(err, domainerrors.ErrFormNotFound))

	err = fx.service.CloseForm(ctx, opened.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrFormNotFound))
}

func TestPasswordFormService_UnknownForm(t *testing.T) {
	fx := createTestFormService(t)
	ctx := context.Background()
	id := uuid.New()

	_, err := fx.service.Submit(ctx, id)
	assert.True(t, errors.Is(err, domainerrors.ErrFormNotFound))

	_, err = fx.service.Acknowledge(ctx, id)
	assert.True(t, errors.Is(err, domainerrors.ErrFormNotFound))

	_, err = fx.service.BlurField(ctx, id, entity.FieldNewPassword)
	assert.True(t, errors.Is(err, domainerrors.ErrFormNotFound))
}

func TestPasswordFormService_FormEndsWithItsSignIn(t *testing.T) {
	fx := createTestFormService(t)
	ctx := context.Background()

	fx.store.EXPECT().Get(mock.Anything, entity.CurrentPasswordKey).Return("FirstMember1!", true, nil).Once()

	opened, err := fx.service.OpenForm(ctx, usecase.VariantConfirmedChange)
	require.NoError(t, err)

	fx.session.Logout(ctx, false)
	other := newTestIdentity()
	other.Email = "binta@example.com"
	fx.session.Login(ctx, other)

	_, err = fx.service.EditField(ctx, opened.ID, entity.FieldNewPassword, "Abcdef1!")
	assert.True(t, errors.Is(err, domainerrors.ErrFormNotFound))

	_, err = fx.service.Submit(ctx, opened.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrFormNotFound))
	fx.auth.AssertNotCalled(t, "ChangePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestPasswordFormService_SignOutDiscardsForms(t *testing.T) {
	fx := createTestFormService(t)
	ctx := context.Background()
	identity := fx.session.Current().User

	fx.store.EXPECT().Get(mock.Anything, entity.CurrentPasswordKey).Return("Temp123!", true, nil)

	opened, err := fx.service.OpenForm(ctx, usecase.VariantConfirmedChange)
	require.NoError(t, err)

	// Signing the same member in again starts a new sign-in.
	fx.session.Logout(ctx, false)
	again := *identity
	fx.session.Login(ctx, &again)

	_, err = fx.service.GetForm(ctx, opened.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrFormNotFound))

	reopened, err := fx.service.OpenForm(ctx, usecase.VariantConfirmedChange)
	require.NoError(t, err)

	state, err := fx.service.GetForm(ctx, reopened.ID)
	require.NoError(t, err)
	assert.Equal(t, usecase.StateReady, state.State)
}
