package engines

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		code      string
		retryable bool
	}{
		{CodeResourceExhausted, true},
		{CodeTimeout, true},
		{CodeBackendError, false},
		{CodeBadResponse, false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := NewError(tt.code, "boom")
			assert.Equal(t, tt.retryable, err.IsRetryable())
			assert.Equal(t, tt.retryable, IsResourceError(err))
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := WrapError(CodeBackendError, "model runner unreachable", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "[backend_error]")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestIsResourceErrorWrapped(t *testing.T) {
	inner := NewError(CodeResourceExhausted, "gpu oom")
	wrapped := fmt.Errorf("batch 3: %w", inner)
	assert.True(t, IsResourceError(wrapped))
	assert.False(t, IsResourceError(errors.New("plain")))
	assert.False(t, IsResourceError(nil))
}
