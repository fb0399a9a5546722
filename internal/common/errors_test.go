package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestErrorConstructorsKeepSentinel(t *testing.T) {
	err := NotFoundf("batch %s", "b1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "batch b1")

	assert.ErrorIs(t, Validationf("bad input"), ErrValidation)
	assert.ErrorIs(t, Conflictf("busy"), ErrConflict)
	assert.ErrorIs(t, Persistencef("tx failed"), ErrPersistence)
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"not found", NotFoundf("x"), codes.NotFound},
		{"validation", Validationf("x"), codes.InvalidArgument},
		{"conflict", Conflictf("x"), codes.AlreadyExists},
		{"timeout", ErrTimeout, codes.DeadlineExceeded},
		{"unknown", errors.New("boom"), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, ok := status.FromError(StatusFromError(tt.err))
			require.True(t, ok)
			assert.Equal(t, tt.code, st.Code())
		})
	}

	assert.NoError(t, StatusFromError(nil))
}
