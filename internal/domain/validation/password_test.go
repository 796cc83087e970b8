package validation

import (
	"testing"

	"tontine/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestValidateNewPassword(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		old       string
		want      entity.ValidationErrorKind
	}{
		{name: "valid", candidate: "Abcdef1!", old: "Temp123!", want: entity.ValidationNone},
		{name: "valid without known old password", candidate: "Abcdef1!", old: "", want: entity.ValidationNone},
		{name: "empty", candidate: "", old: "Temp123!", want: entity.ValidationRequired},
		{name: "blank after trim", candidate: "    ", old: "Temp123!", want: entity.ValidationRequired},
		{name: "too short", candidate: "Ab1!", old: "", want: entity.ValidationTooShort},
		{name: "seven characters", candidate: "Abcde1!", old: "", want: entity.ValidationTooShort},
		{name: "no uppercase", candidate: "abcdef1!", old: "", want: entity.ValidationWeakFormat},
		{name: "no lowercase", candidate: "ABCDEF1!", old: "", want: entity.ValidationWeakFormat},
		{name: "no digit", candidate: "Abcdefg!", old: "", want: entity.ValidationWeakFormat},
		{name: "no special", candidate: "Abcdefg1", old: "", want: entity.ValidationWeakFormat},
		{name: "unsupported special only", candidate: "Abcdef1#", old: "", want: entity.ValidationWeakFormat},
		{name: "other characters allowed", candidate: "Abc def1?", old: "", want: entity.ValidationNone},
		{name: "same as old", candidate: "Temp123!", old: "Temp123!", want: entity.ValidationSameAsOld},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateNewPassword(tt.candidate, tt.old))
		})
	}
}

func TestValidateNewPassword_EverySpecialCharacterAccepted(t *testing.T) {
	for _, special := range DefaultSpecialCharacters {
		candidate := "Abcdef1" + string(special)
		assert.Equal(t, entity.ValidationNone, ValidateNewPassword(candidate, ""), "special %q", special)
	}
}

func TestValidateConfirmPassword(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		newPass   string
		want      entity.ValidationErrorKind
	}{
		{name: "matches", candidate: "Abcdef1!", newPass: "Abcdef1!", want: entity.ValidationNone},
		{name: "empty", candidate: "", newPass: "Abcdef1!", want: entity.ValidationRequired},
		{name: "blank", candidate: "   ", newPass: "   ", want: entity.ValidationRequired},
		{name: "mismatch", candidate: "Abcdef1?", newPass: "Abcdef1!", want: entity.ValidationMismatch},
		{name: "case sensitive", candidate: "abcdef1!", newPass: "Abcdef1!", want: entity.ValidationMismatch},
		{name: "new password empty", candidate: "Abcdef1!", newPass: "", want: entity.ValidationMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateConfirmPassword(tt.candidate, tt.newPass))
		})
	}
}

func TestPasswordRules_CustomPolicy(t *testing.T) {
	rules := NewPasswordRules(Policy{MinLength: 12, SpecialCharacters: "#"})

	assert.Equal(t, entity.ValidationTooShort, rules.ValidateNewPassword("Abcdef1#", ""))
	assert.Equal(t, entity.ValidationWeakFormat, rules.ValidateNewPassword("Abcdefghij1!", ""))
	assert.Equal(t, entity.ValidationNone, rules.ValidateNewPassword("Abcdefghij1#", ""))
}

func TestNewPasswordRules_ZeroPolicyUsesDefaults(t *testing.T) {
	rules := NewPasswordRules(Policy{})

	assert.Equal(t, DefaultPolicy(), rules.Policy())
}
