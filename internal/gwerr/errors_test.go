package gwerr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"paygate/internal/gwerr"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"invalid request", gwerr.InvalidRequest("bad field"), http.StatusBadRequest},
		{"serialization", gwerr.Serialization(errors.New("decode")), http.StatusBadRequest},
		{"transport", gwerr.Transport(errors.New("conn refused")), http.StatusInternalServerError},
		{"secret store", gwerr.SecretStore(errors.New("denied")), http.StatusInternalServerError},
		{"unexpected", gwerr.Unexpected("no key"), http.StatusInternalServerError},
		{"plain error", errors.New("anything"), http.StatusInternalServerError},
		{"wrapped gateway error", fmt.Errorf("stage: %w", gwerr.InvalidRequest("bad")), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, gwerr.StatusOf(tt.err))
		})
	}
}

func TestKindOf(t *testing.T) {
	kind, ok := gwerr.KindOf(gwerr.InvalidRequest("x"))
	assert.True(t, ok)
	assert.Equal(t, gwerr.KindInvalidRequest, kind)

	_, ok = gwerr.KindOf(errors.New("x"))
	assert.False(t, ok)
}

func TestErrorMessage(t *testing.T) {
	err := gwerr.InvalidRequest("invalid request type: %s", "FOO")
	assert.Equal(t, "invalid request: invalid request type: FOO", err.Error())

	wrapped := gwerr.SecretStore(errors.New("access denied"))
	assert.Equal(t, "secret store error: access denied", wrapped.Error())
	assert.ErrorContains(t, errors.Unwrap(wrapped), "access denied")
}
