// Package session holds the session persistence used when the application starts.
package session

import (
	"context"
	"log/slog"

	"tontine/internal/domain/entity"
	"tontine/internal/domain/service"
)

// emptyStore never restores a session: members sign in on every start.
type emptyStore struct {
	logger *slog.Logger
}

// NewEmptyStore is the constructor for emptyStore.
func NewEmptyStore(logger *slog.Logger) service.SessionStore {
	return &emptyStore{logger: logger}
}

// Load always reports that no session was persisted.
func (s *emptyStore) Load(_ context.Context) (*entity.UserIdentity, error) {
	s.logger.Debug("No persisted session to restore")

	return nil, nil
}
