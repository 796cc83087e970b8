// Package validation holds the password rules shared by every password change flow.
// Functions here are pure: they depend only on their arguments and the configured policy.
package validation

import (
	"strconv"
	"strings"

	"tontine/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultMinLength         = 8
	DefaultSpecialCharacters = "@$!%*?&"

	tagPasswordFormat = "password_format"
)

// Policy configures the strength rules applied to new passwords.
type Policy struct {
	MinLength         int
	SpecialCharacters string
}

// DefaultPolicy returns the rules the backend enforces for member passwords.
func DefaultPolicy() Policy {
	return Policy{
		MinLength:         DefaultMinLength,
		SpecialCharacters: DefaultSpecialCharacters,
	}
}

// PasswordRules evaluates password fields against a Policy.
type PasswordRules struct {
	policy   Policy
	validate *validator.Validate
	newTag   string
}

var defaultRules = NewPasswordRules(DefaultPolicy())

// NewPasswordRules builds the rule set for policy. Zero values fall back to the defaults.
func NewPasswordRules(policy Policy) *PasswordRules {
	if policy.MinLength <= 0 {
		policy.MinLength = DefaultMinLength
	}
	if policy.SpecialCharacters == "" {
		policy.SpecialCharacters = DefaultSpecialCharacters
	}

	rules := &PasswordRules{
		policy:   policy,
		validate: validator.New(),
		newTag:   "min=" + strconv.Itoa(policy.MinLength) + "," + tagPasswordFormat,
	}
	// Registration only fails for empty tags or nil funcs.
	_ = rules.validate.RegisterValidation(tagPasswordFormat, rules.passwordFormat)

	return rules
}

// Policy returns the policy the rules were built with.
func (r *PasswordRules) Policy() Policy {
	return r.policy
}

// Message returns the text for kind on field, describing this policy's requirements.
func (r *PasswordRules) Message(kind entity.ValidationErrorKind, field entity.PasswordField) string {
	return kind.MessageFor(field, r.policy.MinLength, r.policy.SpecialCharacters)
}

// ValidateNewPassword checks a candidate new password with the default policy.
func ValidateNewPassword(candidate, referenceOld string) entity.ValidationErrorKind {
	return defaultRules.ValidateNewPassword(candidate, referenceOld)
}

// ValidateConfirmPassword checks the confirmation against the live new password.
func ValidateConfirmPassword(candidate, referenceNew string) entity.ValidationErrorKind {
	return defaultRules.ValidateConfirmPassword(candidate, referenceNew)
}

// ValidateNewPassword returns the first rule candidate breaks, in order Required, TooShort,
// WeakFormat, SameAsOld. SameAsOld is only checked when referenceOld is known.
func (r *PasswordRules) ValidateNewPassword(candidate, referenceOld string) entity.ValidationErrorKind {
	if strings.TrimSpace(candidate) == "" {
		return entity.ValidationRequired
	}

	if err := r.validate.Var(candidate, r.newTag); err != nil {
		return kindFromError(err)
	}

	if referenceOld != "" {
		if err := r.validate.VarWithValue(candidate, referenceOld, "necsfield"); err != nil {
			return entity.ValidationSameAsOld
		}
	}

	return entity.ValidationNone
}

// ValidateConfirmPassword returns Required when the confirmation is blank and Mismatch when it
// differs from referenceNew.
func (r *PasswordRules) ValidateConfirmPassword(candidate, referenceNew string) entity.ValidationErrorKind {
	if strings.TrimSpace(candidate) == "" {
		return entity.ValidationRequired
	}

	if err := r.validate.VarWithValue(candidate, referenceNew, "eqcsfield"); err != nil {
		return entity.ValidationMismatch
	}

	return entity.ValidationNone
}

func (r *PasswordRules) passwordFormat(fl validator.FieldLevel) bool {
	var lower, upper, digit, special bool
	for _, c := range fl.Field().String() {
		switch {
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= '0' && c <= '9':
			digit = true
		case strings.ContainsRune(r.policy.SpecialCharacters, c):
			special = true
		}
	}

	return lower && upper && digit && special
}

func kindFromError(err error) entity.ValidationErrorKind {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrs) == 0 {
		return entity.ValidationWeakFormat
	}

	switch fieldErrs[0].Tag() {
	case "min":
		return entity.ValidationTooShort
	default:
		return entity.ValidationWeakFormat
	}
}
