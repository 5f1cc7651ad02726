// cmd/check/check.go

package check

import (
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/tyche/pkg/alphabet"
	"github.com/CodeMonkeyCybersecurity/tyche/pkg/output"
	"github.com/CodeMonkeyCybersecurity/tyche/pkg/strength"
	tyche "github.com/CodeMonkeyCybersecurity/tyche/pkg/tyche_cli"
	"github.com/CodeMonkeyCybersecurity/tyche/pkg/tyche_err"
	"github.com/CodeMonkeyCybersecurity/tyche/pkg/tyche_io"
)

// CheckCmd evaluates the strength of a supplied password.
var CheckCmd = &cobra.Command{
	Use:   "check STRING",
	Short: "Evaluate the strength of a password",
	Long: `Evaluate the strength of a password you already have.

Without --alphabet or --custom, the symbol space is inferred from the
character classes present in the input (lowercase 26, uppercase 26, digits
10, anything else 32), so a lowercase-only password is not credited with
the full printable range. With an explicit alphabet the password must use
only that alphabet's characters, and its size is taken as the space.

Entropy is length * log2(space) bits; the zxcvbn score additionally flags
dictionary words, common passwords, and names.

USAGE EXAMPLES:
  tyche check 'correct-horse-battery'
  tyche check 'hunter2' --alphabet lowercase
  tyche check 'a1b2c3' --custom 'abc123'`,
	Args: cobra.ExactArgs(1),
	RunE: tyche.Wrap(runCheck),
}

func init() {
	flags := CheckCmd.Flags()
	flags.StringP("alphabet", "a", "", "alphabet the password is asserted to come from")
	flags.StringP("custom", "C", "", "custom alphabet characters (deduplicated)")
	flags.Bool("json", false, "emit the report as JSON")
	CheckCmd.MarkFlagsMutuallyExclusive("alphabet", "custom")
}

func runCheck(rc *tyche_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	log := otelzap.Ctx(rc.Ctx)
	input := args[0]

	alphabetName, _ := cmd.Flags().GetString("alphabet")
	custom, _ := cmd.Flags().GetString("custom")

	var rep strength.Report
	switch {
	case cmd.Flags().Changed("custom"):
		set, err := alphabet.Custom(custom)
		if err != nil {
			return tyche_err.NewExpectedError(err)
		}
		rep, err = strength.AnalyzeAgainst(input, set)
		if err != nil {
			return tyche_err.NewExpectedError(err)
		}
	case alphabetName != "":
		set, err := alphabet.Resolve(alphabetName)
		if err != nil {
			return tyche_err.NewExpectedError(err)
		}
		rep, err = strength.AnalyzeAgainst(input, set)
		if err != nil {
			return tyche_err.NewExpectedError(err)
		}
	default:
		rep = strength.AnalyzeDetect(input)
	}

	log.Info("Password checked",
		zap.Int("length", rep.Length),
		zap.Int("space", rep.SpaceSize),
		zap.Float64("bits", rep.Bits),
		zap.String("tier", rep.Tier.String()))

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return output.Stdout().JSONReport(input, rep)
	}
	output.Stdout().Report(input, rep)
	return nil
}
