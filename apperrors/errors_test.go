package apperrors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindHelpers(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		auth       bool
		notFound   bool
		validation bool
	}{
		{"auth", NewAuth("nope"), true, false, false},
		{"not found", NewNotFound("gone"), false, true, false},
		{"validation", NewValidation("bad"), false, false, true},
		{"plain", fmt.Errorf("boom"), false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.auth, IsAuth(tt.err))
			assert.Equal(t, tt.notFound, IsNotFound(tt.err))
			assert.Equal(t, tt.validation, IsValidation(tt.err))
		})
	}
}

func TestWrappedErrorsKeepTheirKind(t *testing.T) {
	err := fmt.Errorf("resolver failed: %w", NewAuth("nope"))
	assert.True(t, IsAuth(err))
	assert.Contains(t, err.Error(), "nope")
}
