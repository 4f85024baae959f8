package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusFromErr(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", NewError("tax rule missing").Mark(ErrNotFound), http.StatusNotFound},
		{"invalid input", NewError("negative base").Mark(ErrInvalidInput), http.StatusBadRequest},
		{"invalid rule", NewError("rate missing").Mark(ErrInvalidRule), http.StatusUnprocessableEntity},
		{"repository", NewError("db down").Mark(ErrRepositoryUnavailable), http.StatusServiceUnavailable},
		{"unmarked", NewError("boom").Error(), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, HTTPStatusFromErr(tt.err))
		})
	}
}

func TestHint(t *testing.T) {
	err := NewError("rate is required").
		WithHint("Rate is required for percentage taxes").
		Mark(ErrInvalidRule)

	assert.True(t, IsInvalidRule(err))
	assert.False(t, IsNotFound(err))
	assert.Equal(t, "Rate is required for percentage taxes", Hint(err))

	plain := NewError("plain failure").Error()
	assert.Equal(t, "plain failure", Hint(plain))
}
