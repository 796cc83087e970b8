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

func createTestTontineHandler(t *testing.T) (*TontineHandler, *mockUsecase.MockTontineUsecase) {
	tontineUC := mockUsecase.NewMockTontineUsecase(t)

	return NewTontineHandler(TontineHandlerParams{TontineUC: tontineUC, Logger: newDiscardLogger()}), tontineUC
}

func TestTontineHandler_ListTontines(t *testing.T) {
	h, tontineUC := createTestTontineHandler(t)
	tontines := []*entity.Tontine{{ID: uuid.New(), Code: "TNT-001", Name: "Caisse famille", Status: entity.TontineStatusActive}}
	tontineUC.EXPECT().ListTontines(mock.Anything, usecase.TontineFilter{Status: entity.TontineStatusActive, Query: "caisse"}).Return(tontines, nil)

	c, rec := newTestContext(http.MethodGet, "/tontines?status=active&q=caisse", "")
	require.NoError(t, h.ListTontines(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var got []entity.Tontine
	decodeData(t, rec, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "TNT-001", got[0].Code)
}

func TestTontineHandler_ListTontines_InvalidStatus(t *testing.T) {
	h, _ := createTestTontineHandler(t)

	c, rec := newTestContext(http.MethodGet, "/tontines?status=archived", "")
	require.NoError(t, h.ListTontines(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTontineHandler_ListTirages(t *testing.T) {
	h, tontineUC := createTestTontineHandler(t)
	tontineID := uuid.New()
	beneficiary := uuid.New()

	tontineUC.EXPECT().ListTirages(mock.Anything, tontineID, usecase.TirageFilter{
		Status:        entity.TirageStatusCompleted,
		BeneficiaryID: beneficiary,
	}).Return([]*entity.Tirage{{Round: 2}}, nil)

	c, rec := newTestContext(http.MethodGet, "/?status=completed&beneficiaryId="+beneficiary.String(), "", "id", tontineID.String())
	require.NoError(t, h.ListTirages(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var got []entity.Tirage
	decodeData(t, rec, &got)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Round)
}

func TestTontineHandler_GetTontine(t *testing.T) {
	h, tontineUC := createTestTontineHandler(t)
	id := uuid.New()
	tontineUC.EXPECT().GetTontine(mock.Anything, id).Return(nil, errors.WithStack(domainerrors.ErrTontineNotFound))

	c, rec := newTestContext(http.MethodGet, "/", "", "id", id.String())
	require.NoError(t, h.GetTontine(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	c, _ = newTestContext(http.MethodGet, "/", "", "id", "bad")
	assert.True(t, errors.Is(h.GetTontine(c), domainerrors.ErrTontineNotFound))
}

func TestTontineHandler_GetInvitationQR(t *testing.T) {
	h, tontineUC := createTestTontineHandler(t)
	id := uuid.New()
	tontineUC.EXPECT().InvitationQRCode(mock.Anything, id).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	c, rec := newTestContext(http.MethodGet, "/", "", "id", id.String())
	require.NoError(t, h.GetInvitationQR(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, rec.Body.Bytes())
}
