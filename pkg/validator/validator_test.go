package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingForm struct {
	Reason string `json:"reason" validate:"required,max=10"`
	Email  string `json:"email" validate:"required,email"`
	Status string `json:"status" validate:"omitempty,oneof=pending confirmed"`
	Rating int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
}

func TestFormatValidationErrorsUsesWireNames(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&bookingForm{Email: "not-an-email", Status: "archived", Rating: 9})
	require.Error(t, err)

	errors := cv.FormatValidationErrors(err)
	assert.Equal(t, "reason is required", errors["reason"])
	assert.Equal(t, "email must be a valid email address", errors["email"])
	assert.Equal(t, "status must be one of: pending, confirmed", errors["status"])
	assert.Equal(t, "rating must be less than or equal to 5", errors["rating"])
}

func TestValidatePassesCleanInput(t *testing.T) {
	cv := NewValidator()
	assert.NoError(t, cv.Validate(&bookingForm{Reason: "checkup", Email: "a@b.com", Status: "pending", Rating: 5}))
}
