package backend

import (
	"context"
	"net/http"

	"tontine/internal/domain/entity"
	domainerrors "tontine/internal/domain/errors"

	"github.com/google/uuid"
)

// ListTontines returns the tontines of the signed-in member.
func (c *Client) ListTontines(ctx context.Context) ([]*entity.Tontine, error) {
	var tontines []*entity.Tontine
	if err := c.get(ctx, "/tontines", nil, &tontines); err != nil {
		return nil, err
	}

	return tontines, nil
}

// GetTontine returns one tontine with its members.
func (c *Client) GetTontine(ctx context.Context, id uuid.UUID) (*entity.Tontine, error) {
	var tontine entity.Tontine
	if err := c.get(ctx, "/tontines/"+id.String(), domainerrors.ErrTontineNotFound, &tontine); err != nil {
		return nil, err
	}

	return &tontine, nil
}

// ListTirages returns the draws of a tontine.
func (c *Client) ListTirages(ctx context.Context, tontineID uuid.UUID) ([]*entity.Tirage, error) {
	var tirages []*entity.Tirage
	if err := c.get(ctx, "/tontines/"+tontineID.String()+"/tirages", domainerrors.ErrTontineNotFound, &tirages); err != nil {
		return nil, err
	}

	return tirages, nil
}

func (c *Client) get(ctx context.Context, path string, notFound *domainerrors.BaseError, out any) error {
	status, data, err := c.do(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return err
	}

	if !isSuccess(status) {
		return statusError(status, notFound)
	}

	return decode(data, out)
}
