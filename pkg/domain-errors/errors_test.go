package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasCode(t *testing.T) {
	t.Run("direct error carries its code", func(t *testing.T) {
		err := New(CodeConflict, "email already registered")
		assert.True(t, HasCode(err, CodeConflict))
		assert.False(t, HasCode(err, CodeInternal))
	})

	t.Run("code survives fmt wrapping", func(t *testing.T) {
		inner := New(CodeUnavailable, "risk service unreachable")
		wrapped := fmt.Errorf("register: %w", inner)
		assert.True(t, HasCode(wrapped, CodeUnavailable))
	})

	t.Run("plain errors have no code", func(t *testing.T) {
		assert.False(t, HasCode(errors.New("boom"), CodeInternal))
		assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
	})
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeUnavailable, "assessment call failed")

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "assessment call failed")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestWithFields(t *testing.T) {
	base := New(CodeInvalidInput, "missing required fields")
	annotated := base.WithFields(map[string]string{"email": "required"})

	assert.Nil(t, base.Fields, "original error must stay untouched")
	assert.Equal(t, "required", FieldsOf(annotated)["email"])
}

func TestToHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeInvalidInput, http.StatusBadRequest},
		{CodeBadRequest, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusConflict},
		{CodeUnavailable, http.StatusServiceUnavailable},
		{CodeInternal, http.StatusInternalServerError},
		{Code("unknown"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToHTTPStatus(tt.code), "code %s", tt.code)
	}
}
