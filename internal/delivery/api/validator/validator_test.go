package validator

import (
	"testing"

	domainerrors "townscoffee/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Action   string `json:"action,omitempty" validate:"omitempty,oneof=add remove"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&signInRequest{Email: "ana@example.com", Password: "x"}))

	err := v.Validate(&signInRequest{Email: "not-an-email", Action: "drop"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t,
		"action: must be one of: add, remove; email: invalid email format; password: this field is required",
		appErr.Details(),
	)
}
