package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Name     string `json:"name" validate:"required,max=5"`
	Email    string `form:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=8"`
	Confirm  string `json:"confirmPassword" validate:"eqfield=Password"`
	Seats    int    `json:"seats" validate:"gte=0"`
}

type window struct {
	StartDateTime time.Time `json:"startDateTime"`
	EndDateTime   time.Time `json:"endDateTime" validate:"gtfield=StartDateTime"`
}

func TestFieldErrors(t *testing.T) {
	err := Validator().Struct(signup{Name: "Too long", Email: "nope", Password: "short", Confirm: "other", Seats: -1})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, "name must be at most 5 characters", fields["name"])
	assert.Equal(t, "email must be a valid email", fields["email"])
	assert.Equal(t, "password must be at least 8 characters", fields["password"])
	assert.Equal(t, "confirmPassword must match password", fields["confirmPassword"])
	assert.Equal(t, "seats must be greater than or equal to 0", fields["seats"])
}

func TestValidationMessage(t *testing.T) {
	err := Validator().Struct(signup{Password: "longenough", Confirm: "longenough"})
	assert.Equal(t, "name is required", ValidationMessage(err))

	now := time.Now()
	err = Validator().Struct(window{StartDateTime: now, EndDateTime: now.Add(-time.Hour)})
	assert.Equal(t, "endDateTime must be after startDateTime", ValidationMessage(err))

	assert.Equal(t, "Invalid input", ValidationMessage(assert.AnError))
	assert.Nil(t, FieldErrors(assert.AnError))
}
