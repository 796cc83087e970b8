package main

import (
	"testing"

	"tontine/internal/domain/entity"
	domainerrors "tontine/internal/domain/errors"
	"tontine/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoginCommand_SignsIn(t *testing.T) {
	f := createTestApp(t)
	useApp(t, f.app)

	f.auth.EXPECT().
		SignIn(mock.Anything, usecase.SignInInput{Identifier: "alice@example.com", Password: "Secret@123"}).
		Return(&usecase.SignInOutput{User: &entity.UserIdentity{Name: "Alice"}}, nil)

	output, err := runRoot(t, "alice@example.com\nSecret@123\n", "login")
	require.NoError(t, err)
	assert.Contains(t, output, "Identifier: ")
	assert.Contains(t, output, "Signed in as Alice")
}

func TestLoginCommand_FirstLoginRunsForcedChange(t *testing.T) {
	f := createTestApp(t)
	useApp(t, f.app)
	formID := uuid.New()

	f.auth.EXPECT().
		SignIn(mock.Anything, usecase.SignInInput{Identifier: "alice@example.com", Password: "Temp@123"}).
		Return(&usecase.SignInOutput{User: &entity.UserIdentity{Email: "alice@example.com"}, FirstLogin: true}, nil)
	f.forms.EXPECT().OpenForm(mock.Anything, usecase.VariantForcedFirstChange).
		Return(&usecase.FormOutput{ID: formID, OpenOutput: &usecase.OpenOutput{
			FormState: usecase.FormState{State: usecase.StateReady},
		}}, nil)
	f.forms.EXPECT().EditField(mock.Anything, formID, entity.FieldNewPassword, "NewPass@1").Return(&usecase.FormState{}, nil)
	f.forms.EXPECT().BlurField(mock.Anything, formID, entity.FieldNewPassword).Return(&usecase.FormState{}, nil)
	f.forms.EXPECT().EditField(mock.Anything, formID, entity.FieldConfirmPassword, "NewPass@1").Return(&usecase.FormState{}, nil)
	f.forms.EXPECT().BlurField(mock.Anything, formID, entity.FieldConfirmPassword).Return(&usecase.FormState{}, nil)
	f.forms.EXPECT().Submit(mock.Anything, formID).Return(&usecase.SubmitOutput{
		FormState: usecase.FormState{State: usecase.StateAwaitingAcknowledgement, Loading: true},
		Submitted: true,
		Succeeded: true,
		Notice:    &entity.Notice{Kind: entity.NoticeInfo, Title: "Password changed", Message: "Please sign in again."},
	}, nil)
	f.forms.EXPECT().Acknowledge(mock.Anything, formID).Return(&usecase.FormState{State: usecase.StateLoggedOut}, nil)
	f.forms.EXPECT().CloseForm(mock.Anything, formID).Return(domainerrors.ErrFormNotFound)

	output, err := runRoot(t, "Temp@123\nNewPass@1\nNewPass@1\n\n", "login", "-u", "alice@example.com")
	require.NoError(t, err)
	assert.Contains(t, output, "Signed in as alice@example.com")
	assert.Contains(t, output, "must be changed now")
	assert.Contains(t, output, "Password changed")
	assert.Contains(t, output, "Signed out.")
}

func TestLoginCommand_RejectedShowsDetails(t *testing.T) {
	f := createTestApp(t)
	useApp(t, f.app)

	f.auth.EXPECT().SignIn(mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials.WithDetails("Incorrect password")))

	_, err := runRoot(t, "wrong\n", "login", "-u", "alice@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Incorrect password")
	assert.Contains(t, err.Error(), domainerrors.ErrInvalidCredentials.Message())
}

func TestDescribeError(t *testing.T) {
	assert.NoError(t, describeError(nil))

	plain := errors.New("boom")
	assert.Equal(t, plain, describeError(plain))

	err := describeError(errors.WithStack(domainerrors.ErrNotAuthenticated))
	assert.EqualError(t, err, domainerrors.ErrNotAuthenticated.Message())
}

func TestPrintNotice(t *testing.T) {
	_, out := newTestPrompter("")
	printNotice(out, &entity.Notice{
		Title:   "Check your email",
		Message: "Confirm the change.",
		Steps:   []string{"Open the email", "Follow the link"},
	})
	printNotice(out, nil)

	assert.Equal(t, "Check your email\nConfirm the change.\n  1. Open the email\n  2. Follow the link\n", out.String())
}
