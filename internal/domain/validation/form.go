package validation

import (
	"tontine/internal/domain/entity"
)

// PasswordForm tracks the values, touched flags and field errors of one password change form.
// An error is only reported for a touched field; untouched fields stay silent even when
// latently invalid.
type PasswordForm struct {
	rules   *PasswordRules
	request entity.PasswordChangeRequest
	errors  map[entity.PasswordField]entity.ValidationErrorKind
	touched map[entity.PasswordField]bool
}

// FormView is what a screen needs to render the form.
type FormView struct {
	Errors  map[entity.PasswordField]string `json:"errors"`
	Touched map[entity.PasswordField]bool   `json:"touched"`
	HasOld  bool                            `json:"hasOldPassword"`
}

// NewPasswordForm creates a form with the old password prefilled.
// A nil rules value uses the default policy.
func NewPasswordForm(rules *PasswordRules, oldPassword string) *PasswordForm {
	if rules == nil {
		rules = defaultRules
	}

	return &PasswordForm{
		rules:   rules,
		request: entity.PasswordChangeRequest{OldPassword: oldPassword},
		errors:  make(map[entity.PasswordField]entity.ValidationErrorKind),
		touched: make(map[entity.PasswordField]bool),
	}
}

// SetField records an edit. Touched fields are re-validated immediately, and so is every
// touched field that depends on the edited one.
func (f *PasswordForm) SetField(field entity.PasswordField, value string) {
	f.request.Set(field, value)

	if f.touched[field] {
		f.validateField(field)
	}

	for _, dependent := range dependents(field) {
		if f.touched[dependent] {
			f.validateField(dependent)
		}
	}
}

// Blur marks field as touched and validates it.
func (f *PasswordForm) Blur(field entity.PasswordField) {
	f.touched[field] = true
	f.validateField(field)
}

// ValidateAll touches and validates every validated field, as done on submit.
// It reports whether the form is valid.
func (f *PasswordForm) ValidateAll() bool {
	f.Blur(entity.FieldNewPassword)
	f.Blur(entity.FieldConfirmPassword)

	return f.IsValid()
}

// IsValid reports whether no field currently holds an error.
func (f *PasswordForm) IsValid() bool {
	return len(f.errors) == 0
}

// Error returns the visible error of field.
func (f *PasswordForm) Error(field entity.PasswordField) (entity.ValidationErrorKind, bool) {
	if !f.touched[field] {
		return entity.ValidationNone, false
	}

	kind, ok := f.errors[field]

	return kind, ok
}

// Touched reports whether field has been blurred or submitted.
func (f *PasswordForm) Touched(field entity.PasswordField) bool {
	return f.touched[field]
}

// Request returns a copy of the typed values.
func (f *PasswordForm) Request() entity.PasswordChangeRequest {
	return f.request
}

// OldPassword returns the old password the form was opened with, or as edited since.
func (f *PasswordForm) OldPassword() string {
	return f.request.OldPassword
}

// View renders the visible errors and touched flags.
func (f *PasswordForm) View() FormView {
	view := FormView{
		Errors:  make(map[entity.PasswordField]string),
		Touched: make(map[entity.PasswordField]bool, len(f.touched)),
		HasOld:  f.request.OldPassword != "",
	}

	for field, touched := range f.touched {
		view.Touched[field] = touched
	}

	for field, kind := range f.errors {
		if f.touched[field] {
			view.Errors[field] = f.rules.Message(kind, field)
		}
	}

	return view
}

func (f *PasswordForm) validateField(field entity.PasswordField) {
	var kind entity.ValidationErrorKind

	switch field {
	case entity.FieldNewPassword:
		kind = f.rules.ValidateNewPassword(f.request.NewPassword, f.request.OldPassword)
	case entity.FieldConfirmPassword:
		kind = f.rules.ValidateConfirmPassword(f.request.ConfirmPassword, f.request.NewPassword)
	default:
		return
	}

	if kind == entity.ValidationNone {
		delete(f.errors, field)

		return
	}

	f.errors[field] = kind
}

// dependents lists the fields whose rules read the value of field.
func dependents(field entity.PasswordField) []entity.PasswordField {
	switch field {
	case entity.FieldOldPassword:
		return []entity.PasswordField{entity.FieldNewPassword}
	case entity.FieldNewPassword:
		return []entity.PasswordField{entity.FieldConfirmPassword}
	default:
		return nil
	}
}
