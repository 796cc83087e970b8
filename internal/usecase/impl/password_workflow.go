package impl

import (
	"context"
	"log/slog"
	"sync"

	"tontine/internal/domain/entity"
	domainerrors "tontine/internal/domain/errors"
	"tontine/internal/domain/service"
	"tontine/internal/domain/validation"
	"tontine/internal/errors"
	"tontine/internal/usecase"
)

// WorkflowDeps are the collaborators shared by both password change variants.
type WorkflowDeps struct {
	Store   service.CredentialStore
	Auth    service.AuthService
	Session usecase.SessionUsecase
	Rules   *validation.PasswordRules
	Logger  *slog.Logger
}

// variantSteps holds the side effects that differ between the two variants.
type variantSteps interface {
	variant() usecase.PasswordVariant

	// missingCredential runs when the store holds no password. It returns the notice to show
	// and whether the workflow must stop.
	missingCredential(ctx context.Context) (*entity.Notice, bool)

	// oldPasswordEditable reports whether the member may type the old password.
	oldPasswordEditable() bool

	// submit issues the remote change.
	submit(ctx context.Context, oldPassword, newPassword string) (*service.ChangeResult, error)

	// succeeded applies local effects of an accepted change and returns the notice to acknowledge.
	succeeded(ctx context.Context) *entity.Notice
}

// passwordWorkflow is the state machine shared by the forced and confirmed variants.
type passwordWorkflow struct {
	deps  WorkflowDeps
	steps variantSteps

	mu      sync.Mutex
	state   usecase.WorkflowState
	loading bool
	form    *validation.PasswordForm
}

func newPasswordWorkflow(deps WorkflowDeps, steps variantSteps) *passwordWorkflow {
	if deps.Rules == nil {
		deps.Rules = validation.NewPasswordRules(validation.DefaultPolicy())
	}

	return &passwordWorkflow{
		deps:  deps,
		steps: steps,
		state: usecase.StateIdle,
		form:  validation.NewPasswordForm(deps.Rules, ""),
	}
}

func (w *passwordWorkflow) Variant() usecase.PasswordVariant {
	return w.steps.variant()
}

func (w *passwordWorkflow) State() usecase.WorkflowState {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.state
}

func (w *passwordWorkflow) IsLoading() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.loading
}

func (w *passwordWorkflow) Snapshot() usecase.FormState {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.snapshot()
}

// Open reads the cached password and prefills the form with it.
func (w *passwordWorkflow) Open(ctx context.Context) (*usecase.OpenOutput, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != usecase.StateIdle {
		return nil, errors.WithStack(domainerrors.ErrWorkflowClosed)
	}

	w.state = usecase.StateLoadingCredential
	w.loading = true

	oldPassword, ok, err := w.deps.Store.Get(ctx, entity.CurrentPasswordKey)
	if err != nil {
		w.deps.Logger.Warn("Failed to read cached password",
			slog.String("variant", string(w.steps.variant())),
			slog.Any("error", err),
		)
		ok = false
	}

	out := &usecase.OpenOutput{}
	if !ok || oldPassword == "" {
		notice, stop := w.steps.missingCredential(ctx)
		out.Notice = notice
		if stop {
			w.state = usecase.StateLoggedOut
			w.loading = false
			out.FormState = w.snapshot()

			return out, nil
		}
		oldPassword = ""
	}

	w.form = validation.NewPasswordForm(w.deps.Rules, oldPassword)
	w.state = usecase.StateReady
	w.loading = false
	out.FormState = w.snapshot()

	return out, nil
}

// SetField records an edit.
func (w *passwordWorkflow) SetField(field entity.PasswordField, value string) (*usecase.FormState, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.checkEditable(field); err != nil {
		return nil, err
	}

	w.form.SetField(field, value)
	state := w.snapshot()

	return &state, nil
}

// Blur marks a field touched and validates it.
func (w *passwordWorkflow) Blur(field entity.PasswordField) (*usecase.FormState, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.checkEditable(field); err != nil {
		return nil, err
	}

	w.form.Blur(field)
	state := w.snapshot()

	return &state, nil
}

// Submit validates the form and issues the remote change. The lock is released while the
// backend call is in flight; the loading flag keeps concurrent submits out meanwhile.
func (w *passwordWorkflow) Submit(ctx context.Context) (*usecase.SubmitOutput, error) {
	w.mu.Lock()
	request, out, err := w.beginSubmit()
	w.mu.Unlock()

	if err != nil || out != nil {
		return out, err
	}

	defer w.settle()

	// A submission cannot be cancelled once issued.
	callCtx := context.WithoutCancel(ctx)
	result, callErr := w.steps.submit(callCtx, request.OldPassword, request.NewPassword)

	w.mu.Lock()
	defer w.mu.Unlock()

	return w.resolve(callCtx, result, callErr), nil
}

// Acknowledge dismisses the success notice and signs the member out silently.
func (w *passwordWorkflow) Acknowledge(ctx context.Context) (*usecase.FormState, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != usecase.StateAwaitingAcknowledgement {
		return nil, errors.WithStack(domainerrors.ErrWorkflowClosed)
	}

	w.deps.Session.Logout(ctx, false)
	w.state = usecase.StateLoggedOut
	w.loading = false
	state := w.snapshot()

	return &state, nil
}

// beginSubmit runs the local checks. It returns the request to send, or an output when the
// submission stops before the remote call. Callers hold w.mu.
func (w *passwordWorkflow) beginSubmit() (entity.PasswordChangeRequest, *usecase.SubmitOutput, error) {
	if err := w.checkInteractive(); err != nil {
		return entity.PasswordChangeRequest{}, nil, err
	}

	if w.form.OldPassword() == "" {
		return entity.PasswordChangeRequest{}, &usecase.SubmitOutput{
			FormState: w.snapshot(),
			Notice:    missingOldPasswordNotice(),
		}, nil
	}

	w.state = usecase.StateValidating
	if !w.form.ValidateAll() {
		w.state = usecase.StateReady

		return entity.PasswordChangeRequest{}, &usecase.SubmitOutput{FormState: w.snapshot()}, nil
	}

	w.state = usecase.StateSubmitting
	w.loading = true

	return w.form.Request(), nil, nil
}

// resolve interprets the backend answer. Callers hold w.mu.
func (w *passwordWorkflow) resolve(ctx context.Context, result *service.ChangeResult, callErr error) *usecase.SubmitOutput {
	out := &usecase.SubmitOutput{Submitted: true}
	variant := slog.String("variant", string(w.steps.variant()))

	switch {
	case callErr != nil:
		w.deps.Logger.Warn("Password change call failed", variant, slog.Any("error", callErr))
		notice := ClassifyException(callErr)
		out.Notice = &notice
		w.state = usecase.StateReady
	case result == nil:
		w.deps.Logger.Warn("Password change returned no result", variant)
		notice := ClassifyException(nil)
		out.Notice = &notice
		w.state = usecase.StateReady
	case !result.Success:
		code := ""
		if result.Error != nil {
			code = result.Error.Code
		}
		w.deps.Logger.Info("Password change rejected", variant, slog.String("code", code))
		notice := ClassifyRemoteError(result.Error)
		out.Notice = &notice
		w.state = usecase.StateReady
	default:
		w.deps.Logger.Info("Password change accepted", variant)
		out.Succeeded = true
		out.Notice = w.steps.succeeded(ctx)
		w.state = usecase.StateAwaitingAcknowledgement
	}

	if w.state != usecase.StateAwaitingAcknowledgement {
		w.loading = false
	}
	out.FormState = w.snapshot()

	return out
}

// settle guarantees the form is interactive again unless a success notice is pending,
// whichever way the submission ended.
func (w *passwordWorkflow) settle() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state == usecase.StateSubmitting {
		w.state = usecase.StateReady
	}
	if w.state != usecase.StateAwaitingAcknowledgement {
		w.loading = false
	}
}

func (w *passwordWorkflow) checkInteractive() error {
	if w.loading {
		return errors.WithStack(domainerrors.ErrSubmissionInProgress)
	}
	if w.state != usecase.StateReady {
		return errors.WithStack(domainerrors.ErrWorkflowClosed)
	}

	return nil
}

// checkEditable rejects edits outside the fields the variant lets the member fill in.
func (w *passwordWorkflow) checkEditable(field entity.PasswordField) error {
	if err := w.checkInteractive(); err != nil {
		return err
	}
	if field == entity.FieldOldPassword && !w.steps.oldPasswordEditable() {
		return errors.WithStack(domainerrors.ErrUnknownField.WithDetails(string(field)))
	}

	return nil
}

func (w *passwordWorkflow) snapshot() usecase.FormState {
	return usecase.FormState{
		Variant: w.steps.variant(),
		State:   w.state,
		Loading: w.loading,
		Form:    w.form.View(),
	}
}

func missingOldPasswordNotice() *entity.Notice {
	return &entity.Notice{
		Kind:        entity.NoticeBlocking,
		Title:       "Current password missing",
		Message:     "Your current password could not be found. Please sign in again before changing it.",
		RequiresAck: true,
	}
}
