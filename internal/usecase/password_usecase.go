package usecase

import (
	"context"

	"tontine/internal/domain/entity"
	"tontine/internal/domain/validation"

	"github.com/google/uuid"
)

// PasswordVariant selects one of the password change flows.
type PasswordVariant string

const (
	// VariantForcedFirstChange replaces the server-issued temporary password after a first login.
	VariantForcedFirstChange PasswordVariant = "forced"
	// VariantConfirmedChange is a voluntary change applied after email confirmation.
	VariantConfirmedChange PasswordVariant = "confirmed"
)

// ParsePasswordVariant converts a wire name into a PasswordVariant.
func ParsePasswordVariant(name string) (PasswordVariant, bool) {
	switch PasswordVariant(name) {
	case VariantForcedFirstChange, VariantConfirmedChange:
		return PasswordVariant(name), true
	default:
		return "", false
	}
}

// WorkflowState is a step of the password change state machine.
type WorkflowState string

const (
	StateIdle                    WorkflowState = "idle"
	StateLoadingCredential       WorkflowState = "loadingCredential"
	StateReady                   WorkflowState = "ready"
	StateValidating              WorkflowState = "validating"
	StateSubmitting              WorkflowState = "submitting"
	StateAwaitingAcknowledgement WorkflowState = "awaitingAcknowledgement"
	StateLoggedOut               WorkflowState = "loggedOut"
)

// FormState is what presentation renders for an open password form.
type FormState struct {
	Variant PasswordVariant     `json:"variant"`
	State   WorkflowState       `json:"state"`
	Loading bool                `json:"loading"`
	Form    validation.FormView `json:"form"`
}

// OpenOutput is the result of opening a workflow.
type OpenOutput struct {
	FormState
	// Notice is set when the workflow could not start normally.
	Notice *entity.Notice `json:"notice,omitempty"`
}

// SubmitOutput is the result of a submit attempt.
type SubmitOutput struct {
	FormState
	// Submitted is true when the remote call was issued.
	Submitted bool `json:"submitted"`
	// Succeeded is true when the backend accepted the change.
	Succeeded bool           `json:"succeeded"`
	Notice    *entity.Notice `json:"notice,omitempty"`
}

// PasswordWorkflow is one short-lived password change form.
// Steps of a single workflow never run concurrently: while a submission is pending or its
// success notice awaits acknowledgement, every interaction is rejected.
type PasswordWorkflow interface {
	Variant() PasswordVariant
	State() WorkflowState
	IsLoading() bool
	Snapshot() FormState

	// Open loads the cached password and prepares the form.
	Open(ctx context.Context) (*OpenOutput, error)

	// SetField records an edit and re-validates touched fields that depend on it.
	SetField(field entity.PasswordField, value string) (*FormState, error)

	// Blur marks a field touched and validates it.
	Blur(field entity.PasswordField) (*FormState, error)

	// Submit validates the form and issues the remote change.
	Submit(ctx context.Context) (*SubmitOutput, error)

	// Acknowledge dismisses the success notice and signs the member out.
	Acknowledge(ctx context.Context) (*FormState, error)
}

// FormOutput identifies a form opened through the PasswordFormUsecase.
type FormOutput struct {
	ID uuid.UUID `json:"id"`
	*OpenOutput
}

// PasswordFormUsecase keeps the password forms currently mounted by screens.
type PasswordFormUsecase interface {
	OpenForm(ctx context.Context, variant PasswordVariant) (*FormOutput, error)
	GetForm(ctx context.Context, id uuid.UUID) (*FormState, error)
	EditField(ctx context.Context, id uuid.UUID, field entity.PasswordField, value string) (*FormState, error)
	BlurField(ctx context.Context, id uuid.UUID, field entity.PasswordField) (*FormState, error)
	Submit(ctx context.Context, id uuid.UUID) (*SubmitOutput, error)
	Acknowledge(ctx context.Context, id uuid.UUID) (*FormState, error)
	CloseForm(ctx context.Context, id uuid.UUID) error
}
