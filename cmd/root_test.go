// cmd/root_test.go

package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeMonkeyCybersecurity/tyche/pkg/alphabet"
	"github.com/CodeMonkeyCybersecurity/tyche/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/tyche/pkg/passgen"
	"github.com/CodeMonkeyCybersecurity/tyche/pkg/tyche_err"
	"github.com/CodeMonkeyCybersecurity/tyche/pkg/wordlist"
)

// resetFlags clears flag state left over from a previous Execute call, since
// the package-level cobra commands are shared across tests.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	logger.InitFallback()
	RegisterCommands()
	resetFlags(RootCmd)
	RootCmd.SetArgs(args)
	return RootCmd.Execute()
}

func TestPasswordCommand(t *testing.T) {
	err := execute(t, "password", "--length", "16", "--count", "2")
	require.NoError(t, err)
}

func TestPasswordCommandInvalidLength(t *testing.T) {
	err := execute(t, "password", "--length", "0")
	require.Error(t, err)
	assert.True(t, tyche_err.IsExpectedUserError(err))
	assert.ErrorIs(t, err, passgen.ErrInvalidLength)
	assert.Equal(t, tyche_err.ExitValidation, tyche_err.ExitCode(err))
}

func TestPasswordCommandUnknownAlphabet(t *testing.T) {
	err := execute(t, "password", "--alphabet", "bogus")
	require.Error(t, err)
	assert.True(t, tyche_err.IsExpectedUserError(err))
	assert.ErrorIs(t, err, alphabet.ErrUnknownPreset)
}

func TestPassphraseCommandUnknownWordlist(t *testing.T) {
	err := execute(t, "passphrase", "--wordlist", "bogus")
	require.Error(t, err)
	assert.True(t, tyche_err.IsExpectedUserError(err))
	assert.ErrorIs(t, err, wordlist.ErrUnknownPreset)
}

func TestPassphraseCommandCustomWords(t *testing.T) {
	err := execute(t, "passphrase", "--custom", "apple", "--custom", "banana")
	require.NoError(t, err)
}

func TestCheckCommand(t *testing.T) {
	err := execute(t, "check", "correct-horse-battery")
	require.NoError(t, err)
}

func TestCheckCommandOutsideAlphabet(t *testing.T) {
	err := execute(t, "check", "Password", "--alphabet", "lowercase")
	require.Error(t, err)
	assert.True(t, tyche_err.IsExpectedUserError(err))
	assert.ErrorIs(t, err, alphabet.ErrOutsideAlphabet)
}
