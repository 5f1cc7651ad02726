// cmd/root.go

package cmd

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	// Subcommands
	"github.com/CodeMonkeyCybersecurity/tyche/cmd/check"
	"github.com/CodeMonkeyCybersecurity/tyche/cmd/passphrase"
	"github.com/CodeMonkeyCybersecurity/tyche/cmd/password"

	"github.com/CodeMonkeyCybersecurity/tyche/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/tyche/pkg/telemetry"
	"github.com/CodeMonkeyCybersecurity/tyche/pkg/tyche_err"
)

var debugCount int

// RootCmd is the base command for tyche.
var RootCmd = &cobra.Command{
	Use:   "tyche",
	Short: "Tyche generates random passwords and diceware passphrases",
	Long: `Tyche is a command-line generator for random passwords and diceware-style
passphrases, with an entropy-based strength checker.

All randomness comes from the operating system CSPRNG with bias-free index
selection; nothing is seeded, persisted, or replayed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetDebug(debugCount)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var registerOnce sync.Once

// RegisterCommands adds all subcommands to the root command.
func RegisterCommands() {
	registerOnce.Do(func() {
		for _, subCmd := range []*cobra.Command{
			password.PasswordCmd,
			passphrase.PassphraseCmd,
			check.CheckCmd,
		} {
			RootCmd.AddCommand(subCmd)
		}
	})
}

func init() {
	RootCmd.PersistentFlags().CountVarP(&debugCount, "debug", "d",
		"raise log verbosity (repeat for debug output)")

	// Flag defaults are overridable via TYCHE_* env, e.g.
	// TYCHE_PASSWORD_LENGTH=20 or TYCHE_PASSPHRASE_SEPARATOR=.
	viper.SetEnvPrefix("TYCHE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("password.length", 12)
	viper.SetDefault("passphrase.length", 3)
	viper.SetDefault("passphrase.separator", "-")
	viper.SetDefault("count", 1)
}

// Execute initializes and runs the root command, mapping errors to exit codes.
func Execute() {
	if err := telemetry.Init("tyche"); err != nil {
		fmt.Fprintf(os.Stderr, "warning: telemetry disabled: %v\n", err)
	}

	RegisterCommands()

	err := RootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	_ = logger.Sync()
	os.Exit(tyche_err.ExitCode(err))
}
