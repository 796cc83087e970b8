package usecase

import (
	"context"

	"tontine/internal/domain/entity"

	"github.com/google/uuid"
)

// TontineFilter narrows the tontine list.
type TontineFilter struct {
	Status entity.TontineStatus
	Query  string // Case-insensitive match on name or code.
}

// TirageFilter narrows the draw history of a tontine.
type TirageFilter struct {
	Status        entity.TirageStatus
	BeneficiaryID uuid.UUID
	Query         string // Case-insensitive match on beneficiary name.
}

// TontineUsecase serves the tontine and tirage screens.
type TontineUsecase interface {
	ListTontines(ctx context.Context, filter TontineFilter) ([]*entity.Tontine, error)
	GetTontine(ctx context.Context, id uuid.UUID) (*entity.Tontine, error)
	ListTirages(ctx context.Context, tontineID uuid.UUID, filter TirageFilter) ([]*entity.Tirage, error)
	InvitationQRCode(ctx context.Context, id uuid.UUID) ([]byte, error)
}
