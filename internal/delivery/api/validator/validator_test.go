package validator

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type address struct {
	City string `json:"city" validate:"required"`
}

type signupRequest struct {
	Email    string    `json:"email" validate:"required,email"`
	Password string    `json:"password" validate:"required,maxbytes=72"`
	Address  address   `json:"address"`
	Items    []address `json:"items" validate:"dive"`
	Ignored  string    `json:"-"`
}

func TestValidate_Passes(t *testing.T) {
	req := signupRequest{
		Email:    "a@example.com",
		Password: "secret",
		Address:  address{City: "Pune"},
		Items:    []address{{City: "Delhi"}},
	}

	assert.NoError(t, New().Validate(&req))
}

func TestFieldErrors_UsesJSONNames(t *testing.T) {
	req := signupRequest{
		Email:    "not-an-email",
		Password: string(make([]byte, 73)),
		Items:    []address{{City: ""}},
	}

	err := New().Validate(&req)
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, map[string]string{
		"email":         "email",
		"password":      "maxbytes=72",
		"address.city":  "required",
		"items[0].city": "required",
	}, fields)
}

func TestValidate_MaxBytesCountsBytes(t *testing.T) {
	req := signupRequest{
		Email:    "a@example.com",
		Password: strings.Repeat("é", 40),
		Address:  address{City: "Pune"},
	}

	err := New().Validate(&req)
	require.Error(t, err)
	assert.Equal(t, map[string]string{"password": "maxbytes=72"}, FieldErrors(err))

	req.Password = strings.Repeat("é", 36)
	assert.NoError(t, New().Validate(&req))
}

func TestFieldErrors_IgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, FieldErrors(errors.New("boom")))
}
