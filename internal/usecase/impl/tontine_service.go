package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"

	"tontine/internal/domain/entity"
	domainerrors "tontine/internal/domain/errors"
	"tontine/internal/domain/service"
	"tontine/internal/errors"
	"tontine/internal/usecase"

	"github.com/google/uuid"
)

type tontineService struct {
	tontines service.TontineService
	qrcodes  service.QRCodeService
	session  usecase.SessionUsecase
	logger   *slog.Logger
}

// NewTontineService creates a new tontine service instance
func NewTontineService(
	tontines service.TontineService,
	qrcodes service.QRCodeService,
	session usecase.SessionUsecase,
	logger *slog.Logger,
) usecase.TontineUsecase {
	return &tontineService{
		tontines: tontines,
		qrcodes:  qrcodes,
		session:  session,
		logger:   logger,
	}
}

// ListTontines returns the member's tontines matching filter, ordered by name.
func (s *tontineService) ListTontines(ctx context.Context, filter usecase.TontineFilter) ([]*entity.Tontine, error) {
	if err := s.requireSession(); err != nil {
		return nil, err
	}

	tontines, err := s.tontines.ListTontines(ctx)
	if err != nil {
		return nil, s.backendError(ctx, err, "list tontines")
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	matched := make([]*entity.Tontine, 0, len(tontines))
	for _, t := range tontines {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(t.Name), query) && !strings.Contains(strings.ToLower(t.Code), query) {
			continue
		}
		matched = append(matched, t)
	}

	slices.SortStableFunc(matched, func(a, b *entity.Tontine) int {
		return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})

	return matched, nil
}

// GetTontine returns one tontine with its members ordered by payout position.
func (s *tontineService) GetTontine(ctx context.Context, id uuid.UUID) (*entity.Tontine, error) {
	if err := s.requireSession(); err != nil {
		return nil, err
	}

	tontine, err := s.tontines.GetTontine(ctx, id)
	if err != nil {
		return nil, s.backendError(ctx, err, "get tontine")
	}

	slices.SortStableFunc(tontine.Members, func(a, b entity.TontineMember) int {
		return cmp.Compare(a.Position, b.Position)
	})

	return tontine, nil
}

// ListTirages returns the draws of a tontine matching filter, most recent first.
func (s *tontineService) ListTirages(ctx context.Context, tontineID uuid.UUID, filter usecase.TirageFilter) ([]*entity.Tirage, error) {
	if err := s.requireSession(); err != nil {
		return nil, err
	}

	tirages, err := s.tontines.ListTirages(ctx, tontineID)
	if err != nil {
		return nil, s.backendError(ctx, err, "list tirages")
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	matched := make([]*entity.Tirage, 0, len(tirages))
	for _, t := range tirages {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.BeneficiaryID != uuid.Nil && t.BeneficiaryID != filter.BeneficiaryID {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(t.BeneficiaryName), query) {
			continue
		}
		matched = append(matched, t)
	}

	slices.SortStableFunc(matched, func(a, b *entity.Tirage) int {
		if c := b.ScheduledAt.Compare(a.ScheduledAt); c != 0 {
			return c
		}

		return cmp.Compare(b.Round, a.Round)
	})

	return matched, nil
}

// InvitationQRCode renders the invitation QR code of a tontine.
func (s *tontineService) InvitationQRCode(ctx context.Context, id uuid.UUID) ([]byte, error) {
	tontine, err := s.GetTontine(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcodes.GenerateInvitationQR(tontine.ID, tontine.Code)
	if err != nil {
		return nil, errors.Wrap(err, "generate invitation QR code")
	}

	return png, nil
}

func (s *tontineService) requireSession() error {
	if !s.session.IsAuthenticated() {
		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	return nil
}

// backendError maps a backend failure. An expired token ends the session silently.
func (s *tontineService) backendError(ctx context.Context, err error, operation string) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if errors.Is(err, domainerrors.ErrNotAuthenticated) {
			s.logger.Info("Backend rejected the session, signing out", slog.String("operation", operation))
			s.session.Logout(ctx, false)
		}

		return err
	}

	s.logger.Warn("Backend call failed", slog.String("operation", operation), slog.Any("error", err))
	notice := ClassifyException(err)

	return errors.WithStack(domainerrors.ErrBackendUnavailable.WithDetails(notice.Message))
}
