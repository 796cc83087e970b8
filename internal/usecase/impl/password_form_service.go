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

	"github.com/google/uuid"
)

// workflowFactory builds a workflow of one variant.
type workflowFactory func(WorkflowDeps) usecase.PasswordWorkflow

// openForm is a workflow bound to the sign-in that opened it.
type openForm struct {
	workflow usecase.PasswordWorkflow
	owner    *entity.UserIdentity
}

// passwordFormService keeps the password workflows of mounted screens, keyed by form id.
// A form only lives as long as the sign-in that opened it: once the session ends or
// another member signs in, it is discarded.
type passwordFormService struct {
	deps      WorkflowDeps
	factories map[usecase.PasswordVariant]workflowFactory

	mu    sync.Mutex
	forms map[uuid.UUID]openForm
}

// NewPasswordFormService is the constructor for passwordFormService.
func NewPasswordFormService(
	store service.CredentialStore,
	auth service.AuthService,
	session usecase.SessionUsecase,
	rules *validation.PasswordRules,
	logger *slog.Logger,
) usecase.PasswordFormUsecase {
	return &passwordFormService{
		deps: WorkflowDeps{
			Store:   store,
			Auth:    auth,
			Session: session,
			Rules:   rules,
			Logger:  logger,
		},
		factories: map[usecase.PasswordVariant]workflowFactory{
			usecase.VariantForcedFirstChange: NewForcedChangeWorkflow,
			usecase.VariantConfirmedChange:   NewConfirmedChangeWorkflow,
		},
		forms: make(map[uuid.UUID]openForm),
	}
}

// OpenForm creates and opens a workflow. Forms that end up signed out are not kept.
func (srv *passwordFormService) OpenForm(ctx context.Context, variant usecase.PasswordVariant) (*usecase.FormOutput, error) {
	factory, ok := srv.factories[variant]
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrUnknownVariant)
	}

	owner := srv.deps.Session.Current().User
	if owner == nil {
		return nil, errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	workflow := factory(srv.deps)
	out, err := workflow.Open(ctx)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	srv.mu.Lock()
	srv.purgeStale(owner)
	if out.State != usecase.StateLoggedOut {
		srv.forms[id] = openForm{workflow: workflow, owner: owner}
	}
	srv.mu.Unlock()

	srv.deps.Logger.Debug("Password form opened",
		slog.String("formID", id.String()),
		slog.String("variant", string(variant)),
		slog.String("state", string(out.State)),
	)

	return &usecase.FormOutput{ID: id, OpenOutput: out}, nil
}

// GetForm returns the current state of a form.
func (srv *passwordFormService) GetForm(_ context.Context, id uuid.UUID) (*usecase.FormState, error) {
	workflow, err := srv.lookup(id)
	if err != nil {
		return nil, err
	}

	state := workflow.Snapshot()

	return &state, nil
}

// EditField records an edit on a form.
func (srv *passwordFormService) EditField(_ context.Context, id uuid.UUID, field entity.PasswordField, value string) (*usecase.FormState, error) {
	workflow, err := srv.lookup(id)
	if err != nil {
		return nil, err
	}

	return workflow.SetField(field, value)
}

// BlurField marks a field of a form as touched.
func (srv *passwordFormService) BlurField(_ context.Context, id uuid.UUID, field entity.PasswordField) (*usecase.FormState, error) {
	workflow, err := srv.lookup(id)
	if err != nil {
		return nil, err
	}

	return workflow.Blur(field)
}

// Submit submits a form.
func (srv *passwordFormService) Submit(ctx context.Context, id uuid.UUID) (*usecase.SubmitOutput, error) {
	workflow, err := srv.lookup(id)
	if err != nil {
		return nil, err
	}

	return workflow.Submit(ctx)
}

// Acknowledge dismisses the success notice of a form, signing the member out. The form is discarded.
func (srv *passwordFormService) Acknowledge(ctx context.Context, id uuid.UUID) (*usecase.FormState, error) {
	workflow, err := srv.lookup(id)
	if err != nil {
		return nil, err
	}

	state, err := workflow.Acknowledge(ctx)
	if err != nil {
		return nil, err
	}

	srv.discard(id)

	return state, nil
}

// CloseForm discards a form, as when its screen unmounts.
// A form whose submission is in flight is kept until the call resolves.
func (srv *passwordFormService) CloseForm(_ context.Context, id uuid.UUID) error {
	workflow, err := srv.lookup(id)
	if err != nil {
		return err
	}

	if workflow.State() == usecase.StateSubmitting {
		return errors.WithStack(domainerrors.ErrSubmissionInProgress)
	}

	srv.discard(id)

	return nil
}

// lookup returns the form id if it belongs to the current sign-in. Forms left over from an
// ended sign-in are discarded on the way.
func (srv *passwordFormService) lookup(id uuid.UUID) (usecase.PasswordWorkflow, error) {
	current := srv.deps.Session.Current().User

	srv.mu.Lock()
	defer srv.mu.Unlock()

	form, ok := srv.forms[id]
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrFormNotFound)
	}

	if current == nil || form.owner != current {
		srv.purgeStale(current)

		return nil, errors.WithStack(domainerrors.ErrFormNotFound)
	}

	return form.workflow, nil
}

// purgeStale drops every form not opened by current. Callers hold srv.mu.
func (srv *passwordFormService) purgeStale(current *entity.UserIdentity) {
	for id, form := range srv.forms {
		if current != nil && form.owner == current {
			continue
		}

		delete(srv.forms, id)
		srv.deps.Logger.Debug("Password form discarded with its session", slog.String("formID", id.String()))
	}
}

func (srv *passwordFormService) discard(id uuid.UUID) {
	srv.mu.Lock()
	delete(srv.forms, id)
	srv.mu.Unlock()
}
