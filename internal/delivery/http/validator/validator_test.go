package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Identifier string `json:"identifier" validate:"required"`
	Variant    string `json:"variant" validate:"omitempty,oneof=forced confirmed"`
}

func TestCustomValidator_Validate(t *testing.T) {
	cv := New()

	assert.NoError(t, cv.Validate(&sample{Identifier: "awa@example.com"}))

	err := cv.Validate(&sample{Variant: "reset"})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"identifier": "required", "variant": "oneof"}, FieldErrors(err))
}

func TestFieldErrors_OtherError(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}
