package handler

import (
	"net/http"
	"testing"

	"tontine/internal/domain/entity"
	domainerrors "tontine/internal/domain/errors"
	"tontine/internal/domain/validation"
	mockUsecase "tontine/internal/mocks/usecase"
	"tontine/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPasswordHandler(t *testing.T) (*PasswordHandler, *mockUsecase.MockPasswordFormUsecase) {
	formUC := mockUsecase.NewMockPasswordFormUsecase(t)

	return NewPasswordHandler(PasswordHandlerParams{PasswordFormUC: formUC, Logger: newDiscardLogger()}), formUC
}

func readyState(variant usecase.PasswordVariant) usecase.FormState {
	return usecase.FormState{
		Variant: variant,
		State:   usecase.StateReady,
		Form:    validation.FormView{HasOld: true},
	}
}

func TestPasswordHandler_OpenForm(t *testing.T) {
	h, formUC := createTestPasswordHandler(t)
	id := uuid.New()
	formUC.EXPECT().OpenForm(mock.Anything, usecase.VariantForcedFirstChange).Return(&usecase.FormOutput{
		ID:         id,
		OpenOutput: &usecase.OpenOutput{FormState: readyState(usecase.VariantForcedFirstChange)},
	}, nil)

	c, rec := newTestContext(http.MethodPost, "/password/forms", `{"variant":"forced"}`)
	require.NoError(t, h.OpenForm(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var got struct {
		ID      uuid.UUID             `json:"id"`
		Variant string                `json:"variant"`
		State   usecase.WorkflowState `json:"state"`
	}
	decodeData(t, rec, &got)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "forced", got.Variant)
	assert.Equal(t, usecase.StateReady, got.State)
}

func TestPasswordHandler_OpenForm_UnknownVariant(t *testing.T) {
	h, _ := createTestPasswordHandler(t)

	c, rec := newTestContext(http.MethodPost, "/password/forms", `{"variant":"reset"}`)
	require.NoError(t, h.OpenForm(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UNKNOWN_VARIANT", decodeError(t, rec).Code)
}

func TestPasswordHandler_EditField(t *testing.T) {
	h, formUC := createTestPasswordHandler(t)
	id := uuid.New()

	state := readyState(usecase.VariantConfirmedChange)
	state.Form.Errors = map[entity.PasswordField]string{
		entity.FieldConfirmPassword: entity.ValidationMismatch.Message(entity.FieldConfirmPassword),
	}
	formUC.EXPECT().EditField(mock.Anything, id, entity.FieldConfirmPassword, "Abcdef1?").Return(&state, nil)

	c, rec := newTestContext(http.MethodPut, "/", `{"value":"Abcdef1?"}`, "id", id.String(), "field", "confirmPassword")
	require.NoError(t, h.EditField(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var got usecase.FormState
	decodeData(t, rec, &got)
	assert.Equal(t, state.Form.Errors, got.Form.Errors)
}

func TestPasswordHandler_PathErrors(t *testing.T) {
	h, _ := createTestPasswordHandler(t)

	c, _ := newTestContext(http.MethodPut, "/", `{"value":"x"}`, "id", "not-a-uuid", "field", "newPassword")
	err := h.EditField(c)
	assert.True(t, errors.Is(err, domainerrors.ErrFormNotFound))

	c, _ = newTestContext(http.MethodPost, "/", "", "id", uuid.NewString(), "field", "pin")
	err = h.BlurField(c)
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownField))
}

func TestPasswordHandler_Submit(t *testing.T) {
	h, formUC := createTestPasswordHandler(t)
	id := uuid.New()

	formUC.EXPECT().Submit(mock.Anything, id).Return(&usecase.SubmitOutput{
		FormState: readyState(usecase.VariantForcedFirstChange),
		Submitted: true,
		Notice:    &entity.Notice{Kind: entity.NoticeError, Title: "Incorrect password", Message: "Old password is wrong"},
	}, nil)

	c, rec := newTestContext(http.MethodPost, "/", "", "id", id.String())
	require.NoError(t, h.Submit(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var got usecase.SubmitOutput
	decodeData(t, rec, &got)
	assert.True(t, got.Submitted)
	assert.False(t, got.Succeeded)
	require.NotNil(t, got.Notice)
	assert.Equal(t, "Incorrect password", got.Notice.Title)
}

func TestPasswordHandler_SubmitInProgress(t *testing.T) {
	h, formUC := createTestPasswordHandler(t)
	id := uuid.New()
	formUC.EXPECT().Submit(mock.Anything, id).Return(nil, errors.WithStack(domainerrors.ErrSubmissionInProgress))

	c, rec := newTestContext(http.MethodPost, "/", "", "id", id.String())
	require.NoError(t, h.Submit(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "SUBMISSION_IN_PROGRESS", decodeError(t, rec).Code)
}

func TestPasswordHandler_AcknowledgeAndClose(t *testing.T) {
	h, formUC := createTestPasswordHandler(t)
	id := uuid.New()

	formUC.EXPECT().Acknowledge(mock.Anything, id).Return(&usecase.FormState{State: usecase.StateLoggedOut}, nil)
	formUC.EXPECT().CloseForm(mock.Anything, id).Return(errors.WithStack(domainerrors.ErrFormNotFound))

	c, rec := newTestContext(http.MethodPost, "/", "", "id", id.String())
	require.NoError(t, h.Acknowledge(c))
	var got usecase.FormState
	decodeData(t, rec, &got)
	assert.Equal(t, usecase.StateLoggedOut, got.State)

	c, rec = newTestContext(http.MethodDelete, "/", "", "id", id.String())
	require.NoError(t, h.CloseForm(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPasswordHandler_GetForm(t *testing.T) {
	h, formUC := createTestPasswordHandler(t)
	id := uuid.New()
	state := readyState(usecase.VariantConfirmedChange)
	formUC.EXPECT().GetForm(mock.Anything, id).Return(&state, nil)
	formUC.EXPECT().BlurField(mock.Anything, id, entity.FieldNewPassword).Return(&state, nil)

	c, rec := newTestContext(http.MethodGet, "/", "", "id", id.String())
	require.NoError(t, h.GetForm(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newTestContext(http.MethodPost, "/", "", "id", id.String(), "field", "newPassword")
	require.NoError(t, h.BlurField(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
