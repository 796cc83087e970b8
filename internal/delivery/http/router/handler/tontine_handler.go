package handler

import (
	"log/slog"
	"net/http"

	"tontine/internal/delivery/http/response"
	"tontine/internal/domain/entity"
	domainerrors "tontine/internal/domain/errors"
	"tontine/internal/errors"
	"tontine/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TontineHandlerParams holds dependencies for TontineHandler, injected by Fx.
type TontineHandlerParams struct {
	fx.In

	TontineUC usecase.TontineUsecase
	Logger    *slog.Logger
}

// TontineHandler serves the tontine and tirage screens.
type TontineHandler struct {
	tontineUC usecase.TontineUsecase
	logger    *slog.Logger
}

// NewTontineHandler is the constructor for TontineHandler
func NewTontineHandler(params TontineHandlerParams) *TontineHandler {
	return &TontineHandler{
		tontineUC: params.TontineUC,
		logger:    params.Logger,
	}
}

// ListTontinesQuery represents the query parameters of the tontine list
type ListTontinesQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=pending active completed"`
	Query  string `query:"q"`
}

// ListTiragesQuery represents the query parameters of the tirage list
type ListTiragesQuery struct {
	Status        string `query:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
	BeneficiaryID string `query:"beneficiaryId" validate:"omitempty,uuid"`
	Query         string `query:"q"`
}

// ListTontines lists the member's tontines.
func (h *TontineHandler) ListTontines(c echo.Context) error {
	var query ListTontinesQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	if err := c.Validate(&query); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid tontine status")
	}

	tontines, err := h.tontineUC.ListTontines(c.Request().Context(), usecase.TontineFilter{
		Status: entity.TontineStatus(query.Status),
		Query:  query.Query,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tontines)
}

// GetTontine returns one tontine.
func (h *TontineHandler) GetTontine(c echo.Context) error {
	id, err := tontineID(c)
	if err != nil {
		return err
	}

	tontine, err := h.tontineUC.GetTontine(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tontine)
}

// ListTirages lists the draws of a tontine.
func (h *TontineHandler) ListTirages(c echo.Context) error {
	id, err := tontineID(c)
	if err != nil {
		return err
	}

	var query ListTiragesQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	if err := c.Validate(&query); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid tirage filter")
	}

	filter := usecase.TirageFilter{
		Status: entity.TirageStatus(query.Status),
		Query:  query.Query,
	}
	if query.BeneficiaryID != "" {
		filter.BeneficiaryID = uuid.MustParse(query.BeneficiaryID)
	}

	tirages, err := h.tontineUC.ListTirages(c.Request().Context(), id, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tirages)
}

// GetInvitationQR renders the invitation QR code of a tontine as a PNG.
func (h *TontineHandler) GetInvitationQR(c echo.Context) error {
	id, err := tontineID(c)
	if err != nil {
		return err
	}

	png, err := h.tontineUC.InvitationQRCode(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func tontineID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrTontineNotFound.WithDetails("invalid tontine ID"))
	}

	return id, nil
}
