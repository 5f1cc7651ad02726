// pkg/tyche_err/errors_test.go

package tyche_err

import (
	"fmt"
	"testing"

	cerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpectedErrorMarking(t *testing.T) {
	base := cerr.New("unknown wordlist name")

	err := NewExpectedError(base)
	require.Error(t, err)
	assert.True(t, IsExpectedUserError(err))
	assert.Equal(t, base.Error(), err.Error())
	assert.ErrorIs(t, err, base)

	// Marking survives further wrapping.
	wrapped := fmt.Errorf("resolving wordlist: %w", err)
	assert.True(t, IsExpectedUserError(wrapped))
}

func TestNewExpectedErrorNil(t *testing.T) {
	assert.NoError(t, NewExpectedError(nil))
}

func TestIsExpectedUserErrorPlainError(t *testing.T) {
	assert.False(t, IsExpectedUserError(cerr.New("entropy source failed")))
	assert.False(t, IsExpectedUserError(nil))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", err: nil, want: ExitOK},
		{name: "user error", err: NewExpectedError(cerr.New("length must be at least 1")), want: ExitValidation},
		{name: "internal error", err: cerr.New("read from entropy source"), want: ExitInternal},
		{name: "wrapped user error", err: fmt.Errorf("outer: %w", NewExpectedError(cerr.New("bad"))), want: ExitValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
