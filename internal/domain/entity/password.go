package entity

import "fmt"

// PasswordField names an input of the password change form.
type PasswordField string

const (
	FieldOldPassword     PasswordField = "oldPassword"
	FieldNewPassword     PasswordField = "newPassword"
	FieldConfirmPassword PasswordField = "confirmPassword"
)

// ValidationErrorKind classifies why a password field is invalid.
// The zero value means the field is valid.
type ValidationErrorKind string

const (
	ValidationNone       ValidationErrorKind = ""
	ValidationRequired   ValidationErrorKind = "Required"
	ValidationTooShort   ValidationErrorKind = "TooShort"
	ValidationWeakFormat ValidationErrorKind = "WeakFormat"
	ValidationSameAsOld  ValidationErrorKind = "SameAsOld"
	ValidationMismatch   ValidationErrorKind = "Mismatch"
)

// Strength requirements the default messages describe.
const (
	defaultMinLength         = 8
	defaultSpecialCharacters = "@$!%*?&"
)

// Message returns the text shown next to the offending field under the default policy.
func (k ValidationErrorKind) Message(field PasswordField) string {
	return k.MessageFor(field, defaultMinLength, defaultSpecialCharacters)
}

// MessageFor returns the text shown next to the offending field for a policy requiring
// minLength characters and one of specialCharacters.
func (k ValidationErrorKind) MessageFor(field PasswordField, minLength int, specialCharacters string) string {
	switch k {
	case ValidationRequired:
		if field == FieldConfirmPassword {
			return "Please confirm your new password"
		}

		return "New password is required"
	case ValidationTooShort:
		return fmt.Sprintf("Password must be at least %d characters long", minLength)
	case ValidationWeakFormat:
		return fmt.Sprintf("Password must contain an uppercase letter, a lowercase letter, a digit and a special character (%s)", specialCharacters)
	case ValidationSameAsOld:
		return "New password must be different from the current one"
	case ValidationMismatch:
		return "Passwords do not match"
	default:
		return ""
	}
}

// PasswordChangeRequest carries the three values typed into a password change form.
type PasswordChangeRequest struct {
	OldPassword     string
	NewPassword     string
	ConfirmPassword string
}

// Value returns the current value of field.
func (r *PasswordChangeRequest) Value(field PasswordField) string {
	switch field {
	case FieldOldPassword:
		return r.OldPassword
	case FieldNewPassword:
		return r.NewPassword
	case FieldConfirmPassword:
		return r.ConfirmPassword
	default:
		return ""
	}
}

// Set replaces the value of field. Unknown fields are ignored.
func (r *PasswordChangeRequest) Set(field PasswordField, value string) {
	switch field {
	case FieldOldPassword:
		r.OldPassword = value
	case FieldNewPassword:
		r.NewPassword = value
	case FieldConfirmPassword:
		r.ConfirmPassword = value
	}
}

// ParsePasswordField converts a wire name into a PasswordField.
func ParsePasswordField(name string) (PasswordField, bool) {
	switch PasswordField(name) {
	case FieldOldPassword, FieldNewPassword, FieldConfirmPassword:
		return PasswordField(name), true
	default:
		return "", false
	}
}
