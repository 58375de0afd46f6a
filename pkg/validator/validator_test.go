package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email string `validate:"required,email"`
	Age   int    `validate:"gte=0,lte=150"`
	Sex   string `validate:"oneof=Homme Femme"`
}

func TestCustomValidator_FormatValidationErrors(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sample{Email: "nope", Age: 200, Sex: "X"})
	assert.Error(t, err)

	msgs := v.FormatValidationErrors(err)
	assert.Equal(t, "Email must be a valid email address", msgs["Email"])
	assert.Equal(t, "Age must be less than or equal to 150", msgs["Age"])
	assert.Equal(t, "Sex must be one of: Homme Femme", msgs["Sex"])
}

func TestCustomValidator_Valid(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.Validate(&sample{Email: "a@b.co", Age: 30, Sex: "Femme"}))
}
