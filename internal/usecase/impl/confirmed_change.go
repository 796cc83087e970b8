package impl

import (
	"context"

	"tontine/internal/domain/entity"
	"tontine/internal/domain/service"
	"tontine/internal/usecase"
)

// confirmedChangeSteps requests a voluntary change that the backend applies only once the
// member follows the confirmation link sent by email.
type confirmedChangeSteps struct {
	deps WorkflowDeps
}

// NewConfirmedChangeWorkflow creates the email-confirmed password change.
func NewConfirmedChangeWorkflow(deps WorkflowDeps) usecase.PasswordWorkflow {
	return newPasswordWorkflow(deps, &confirmedChangeSteps{deps: deps})
}

func (s *confirmedChangeSteps) variant() usecase.PasswordVariant {
	return usecase.VariantConfirmedChange
}

// missingCredential ends the session: without the current password the change cannot be requested.
func (s *confirmedChangeSteps) missingCredential(ctx context.Context) (*entity.Notice, bool) {
	s.deps.Logger.Warn("Current password missing, signing out")
	s.deps.Session.Logout(ctx, false)

	return &entity.Notice{
		Kind:        entity.NoticeBlocking,
		Title:       "Session expired",
		Message:     "Your session has expired. Please sign in again to change your password.",
		RequiresAck: true,
	}, true
}

// oldPasswordEditable is false: the current password comes from the sign-in, never from the member.
func (s *confirmedChangeSteps) oldPasswordEditable() bool {
	return false
}

func (s *confirmedChangeSteps) submit(ctx context.Context, oldPassword, newPassword string) (*service.ChangeResult, error) {
	return s.deps.Auth.ChangePassword(ctx, oldPassword, newPassword)
}

// succeeded leaves the cached password untouched: the new one is not active until confirmed.
func (s *confirmedChangeSteps) succeeded(context.Context) *entity.Notice {
	return &entity.Notice{
		Kind:    entity.NoticeInfo,
		Title:   "Confirm your new password",
		Message: "Your request has been recorded. Your new password will only be active once confirmed.",
		Steps: []string{
			"Check your email inbox for our confirmation message.",
			"Click the confirmation link in that email.",
			"Come back and sign in with your new password.",
		},
		RequiresAck: true,
	}
}
