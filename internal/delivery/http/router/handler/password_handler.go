package handler

import (
	"log/slog"
	"net/http"

	"tontine/internal/delivery/http/response"
	"tontine/internal/delivery/http/validator"
	"tontine/internal/domain/entity"
	domainerrors "tontine/internal/domain/errors"
	"tontine/internal/errors"
	"tontine/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PasswordHandlerParams holds dependencies for PasswordHandler, injected by Fx.
type PasswordHandlerParams struct {
	fx.In

	PasswordFormUC usecase.PasswordFormUsecase
	Logger         *slog.Logger
}

// PasswordHandler drives the password change forms of the app screens.
type PasswordHandler struct {
	formUC usecase.PasswordFormUsecase
	logger *slog.Logger
}

// NewPasswordHandler is the constructor for PasswordHandler
func NewPasswordHandler(params PasswordHandlerParams) *PasswordHandler {
	return &PasswordHandler{
		formUC: params.PasswordFormUC,
		logger: params.Logger,
	}
}

// OpenFormRequest represents the request body for opening a password form
type OpenFormRequest struct {
	Variant string `json:"variant" validate:"required"`
}

// EditFieldRequest represents the request body for editing a form field
type EditFieldRequest struct {
	Value string `json:"value"`
}

// OpenForm mounts a password form.
func (h *PasswordHandler) OpenForm(c echo.Context) error {
	var req OpenFormRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid form input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "A variant is required", validator.FieldErrors(err))
	}

	variant, ok := usecase.ParsePasswordVariant(req.Variant)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnknownVariant.WithDetails(req.Variant))
	}

	out, err := h.formUC.OpenForm(c.Request().Context(), variant)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, out)
}

// GetForm returns the state of a form.
func (h *PasswordHandler) GetForm(c echo.Context) error {
	id, err := formID(c)
	if err != nil {
		return err
	}

	state, err := h.formUC.GetForm(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state)
}

// EditField records an edit.
func (h *PasswordHandler) EditField(c echo.Context) error {
	id, err := formID(c)
	if err != nil {
		return err
	}

	field, err := formField(c)
	if err != nil {
		return err
	}

	var req EditFieldRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid field input")
	}

	state, err := h.formUC.EditField(c.Request().Context(), id, field, req.Value)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state)
}

// BlurField marks a field as touched.
func (h *PasswordHandler) BlurField(c echo.Context) error {
	id, err := formID(c)
	if err != nil {
		return err
	}

	field, err := formField(c)
	if err != nil {
		return err
	}

	state, err := h.formUC.BlurField(c.Request().Context(), id, field)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state)
}

// Submit submits a form. Rejections are part of the result, not an error status.
func (h *PasswordHandler) Submit(c echo.Context) error {
	id, err := formID(c)
	if err != nil {
		return err
	}

	out, err := h.formUC.Submit(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// Acknowledge dismisses the success notice, which signs the member out.
func (h *PasswordHandler) Acknowledge(c echo.Context) error {
	id, err := formID(c)
	if err != nil {
		return err
	}

	state, err := h.formUC.Acknowledge(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state)
}

// CloseForm unmounts a form.
func (h *PasswordHandler) CloseForm(c echo.Context) error {
	id, err := formID(c)
	if err != nil {
		return err
	}

	if err := h.formUC.CloseForm(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func formID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrFormNotFound.WithDetails("invalid form ID"))
	}

	return id, nil
}

func formField(c echo.Context) (entity.PasswordField, error) {
	field, ok := entity.ParsePasswordField(c.Param("field"))
	if !ok {
		return "", errors.WithStack(domainerrors.ErrUnknownField.WithDetails(c.Param("field")))
	}

	return field, nil
}
