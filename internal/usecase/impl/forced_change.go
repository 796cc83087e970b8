package impl

import (
	"context"
	"log/slog"

	"tontine/internal/domain/entity"
	"tontine/internal/domain/service"
	"tontine/internal/usecase"
)

// forcedChangeSteps replaces the server-issued temporary password after a first login.
type forcedChangeSteps struct {
	deps WorkflowDeps
}

// NewForcedChangeWorkflow creates the mandatory first password change.
func NewForcedChangeWorkflow(deps WorkflowDeps) usecase.PasswordWorkflow {
	return newPasswordWorkflow(deps, &forcedChangeSteps{deps: deps})
}

func (s *forcedChangeSteps) variant() usecase.PasswordVariant {
	return usecase.VariantForcedFirstChange
}

// missingCredential lets the form open with an empty old password; submitting it is then
// refused locally.
func (s *forcedChangeSteps) missingCredential(context.Context) (*entity.Notice, bool) {
	s.deps.Logger.Warn("Temporary password missing, opening forced change without it")

	return nil, false
}

// oldPasswordEditable lets the member type the temporary password when it was not cached.
func (s *forcedChangeSteps) oldPasswordEditable() bool {
	return true
}

func (s *forcedChangeSteps) submit(ctx context.Context, oldPassword, newPassword string) (*service.ChangeResult, error) {
	return s.deps.Auth.FirstPasswordChange(ctx, oldPassword, newPassword)
}

// succeeded drops the temporary password: it is no longer valid on the backend.
func (s *forcedChangeSteps) succeeded(ctx context.Context) *entity.Notice {
	if err := s.deps.Store.Remove(ctx, entity.CurrentPasswordKey); err != nil {
		s.deps.Logger.Error("Failed to remove temporary password", slog.Any("error", err))
	}

	return &entity.Notice{
		Kind:        entity.NoticeInfo,
		Title:       "Password changed",
		Message:     "Your password has been changed successfully. Please sign in again with your new password.",
		RequiresAck: true,
	}
}
