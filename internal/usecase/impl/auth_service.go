package impl

import (
	"context"
	"log/slog"
	"strings"

	"tontine/internal/domain/entity"
	domainerrors "tontine/internal/domain/errors"
	"tontine/internal/domain/service"
	"tontine/internal/errors"
	"tontine/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	auth    service.AuthService
	decoder service.IdentityDecoder
	store   service.CredentialStore
	session usecase.SessionUsecase
	logger  *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	auth service.AuthService,
	decoder service.IdentityDecoder,
	store service.CredentialStore,
	session usecase.SessionUsecase,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		auth:    auth,
		decoder: decoder,
		store:   store,
		session: session,
		logger:  logger,
	}
}

// SignIn authenticates against the backend, caches the password for a later change and
// opens the session.
func (srv *authService) SignIn(ctx context.Context, input usecase.SignInInput) (*usecase.SignInOutput, error) {
	identifier := strings.TrimSpace(input.Identifier)
	if identifier == "" || input.Password == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("identifier and password are required"))
	}

	result, err := srv.auth.Login(ctx, identifier, input.Password)
	if err != nil {
		srv.logger.Warn("Sign-in call failed", slog.Any("error", err))
		notice := ClassifyException(err)

		return nil, errors.WithStack(domainerrors.ErrBackendUnavailable.WithDetails(notice.Message))
	}

	if result == nil || !result.Success {
		return nil, srv.rejection(result)
	}

	identity, err := srv.decoder.Decode(result.AccessToken)
	if err != nil {
		srv.logger.Error("Failed to decode access token", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrInvalidIdentityToken)
	}
	identity.FirstLogin = identity.FirstLogin || result.FirstLogin
	if identity.Email == "" {
		identity.Email = identifier
	}

	if err := srv.store.Set(ctx, entity.CurrentPasswordKey, input.Password); err != nil {
		srv.logger.Error("Failed to cache password", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrInternalError.WithDetails("unable to store credentials on this device"))
	}

	srv.session.Login(ctx, identity)

	return &usecase.SignInOutput{
		User:       identity,
		FirstLogin: identity.FirstLogin,
	}, nil
}

// SignOut ends the session.
func (srv *authService) SignOut(ctx context.Context, showMessage bool) *entity.Notice {
	return srv.session.Logout(ctx, showMessage)
}

func (srv *authService) rejection(result *service.LoginResult) error {
	var remote *service.RemoteError
	if result != nil {
		remote = result.Error
	}

	notice := ClassifyRemoteError(remote)
	code := ""
	if remote != nil {
		code = remote.Code
	}
	srv.logger.Info("Sign-in rejected", slog.String("code", code))

	if code == service.RemoteCodeNetworkError {
		return errors.WithStack(domainerrors.ErrBackendUnavailable.WithDetails(notice.Message))
	}

	return errors.WithStack(domainerrors.ErrInvalidCredentials.WithDetails(notice.Message))
}
