package service

import (
	"context"

	"tontine/internal/domain/entity"

	"github.com/google/uuid"
)

// TontineService reads tontines and their draws from the backend.
type TontineService interface {
	ListTontines(ctx context.Context) ([]*entity.Tontine, error)
	GetTontine(ctx context.Context, id uuid.UUID) (*entity.Tontine, error)
	ListTirages(ctx context.Context, tontineID uuid.UUID) ([]*entity.Tirage, error)
}
