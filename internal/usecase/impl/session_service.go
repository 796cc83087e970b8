package impl

import (
	"context"
	"log/slog"
	"sync"

	"tontine/internal/domain/entity"
	"tontine/internal/domain/service"
	"tontine/internal/usecase"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	store  service.SessionStore
	logger *slog.Logger

	mu      sync.RWMutex
	user    *entity.UserIdentity
	loading bool
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(store service.SessionStore, logger *slog.Logger) usecase.SessionUsecase {
	return &sessionService{
		store:  store,
		logger: logger,
	}
}

// Initialize loads a session persisted by a previous run.
func (srv *sessionService) Initialize(ctx context.Context) {
	srv.setLoading(true)
	defer srv.setLoading(false)

	identity, err := srv.store.Load(ctx)
	if err != nil {
		srv.logger.Warn("Failed to load persisted session", slog.Any("error", err))

		return
	}

	if identity == nil {
		srv.logger.Debug("No persisted session")

		return
	}

	srv.mu.Lock()
	srv.user = identity
	srv.mu.Unlock()

	srv.logger.Info("Restored persisted session", slog.String("userID", identity.ID.String()))
}

// Login makes identity the current user.
func (srv *sessionService) Login(_ context.Context, identity *entity.UserIdentity) {
	srv.mu.Lock()
	srv.user = identity
	srv.mu.Unlock()

	if identity != nil {
		srv.logger.Info("Member signed in",
			slog.String("userID", identity.ID.String()),
			slog.Bool("firstLogin", identity.FirstLogin),
		)
	}
}

// Logout clears the current user.
func (srv *sessionService) Logout(_ context.Context, showMessage bool) *entity.Notice {
	var notice *entity.Notice
	if showMessage {
		notice = &entity.Notice{
			Kind:    entity.NoticeInfo,
			Title:   "Signed out",
			Message: "You have been signed out.",
		}
	}

	srv.mu.Lock()
	previous := srv.user
	srv.user = nil
	srv.mu.Unlock()

	if previous != nil {
		srv.logger.Info("Member signed out",
			slog.String("userID", previous.ID.String()),
			slog.Bool("showMessage", showMessage),
		)
	}

	return notice
}

// Current returns a snapshot of the session.
func (srv *sessionService) Current() entity.Session {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return entity.Session{
		User:      srv.user,
		IsLoading: srv.loading,
	}
}

// IsAuthenticated reports whether a member is signed in.
func (srv *sessionService) IsAuthenticated() bool {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.user != nil
}

// AccessToken returns the bearer token of the signed-in member.
func (srv *sessionService) AccessToken() string {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	if srv.user == nil {
		return ""
	}

	return srv.user.AccessToken
}

func (srv *sessionService) setLoading(loading bool) {
	srv.mu.Lock()
	srv.loading = loading
	srv.mu.Unlock()
}
