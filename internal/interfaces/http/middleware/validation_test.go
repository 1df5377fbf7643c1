package middleware

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSetupValidator_JSONTagNames(t *testing.T) {
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	type payload struct {
		FullName string `json:"full_name" binding:"required" validate:"required"`
	}

	err := v.Struct(payload{})
	require.Error(t, err)

	validationErrors, ok := err.(validator.ValidationErrors)
	require.True(t, ok)
	require.Len(t, validationErrors, 1)
	assert.Equal(t, "full_name", validationErrors[0].Field())
}

func TestWilayaValidation(t *testing.T) {
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	tests := []struct {
		code  string
		valid bool
	}{
		{"16", true},
		{"01", true},
		{"58", true},
		{"00", false},
		{"59", false},
		{"5", false},
		{"xx", false},
		{"160", false},
	}

	for _, tt := range tests {
		err := v.Var(tt.code, "wilaya")
		if tt.valid {
			assert.NoError(t, err, "code %q should be valid", tt.code)
		} else {
			assert.Error(t, err, "code %q should be invalid", tt.code)
		}
	}
}

func TestFormatValidationErrors(t *testing.T) {
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	type payload struct {
		Name   string `json:"name" validate:"required"`
		Wilaya string `json:"wilaya" validate:"wilaya"`
	}

	err := v.Struct(payload{Wilaya: "99"})
	require.Error(t, err)

	resp := FormatValidationErrors(err, "req-42")
	require.NotNil(t, resp.Error)
	assert.False(t, resp.Success)
	assert.Equal(t, "req-42", resp.Error.RequestID)
	require.Len(t, resp.Error.Details, 2)
	assert.Equal(t, "name", resp.Error.Details[0].Field)
	assert.Equal(t, "This field is required", resp.Error.Details[0].Message)
	assert.Equal(t, "wilaya", resp.Error.Details[1].Field)
	assert.Equal(t, "Invalid wilaya code", resp.Error.Details[1].Message)
}

func TestFormatValidationErrors_NonValidatorError(t *testing.T) {
	resp := FormatValidationErrors(assert.AnError, "")
	require.NotNil(t, resp.Error)
	assert.Empty(t, resp.Error.Details)
}
