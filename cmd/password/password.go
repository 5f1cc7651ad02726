// cmd/password/password.go

package password

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/tyche/pkg/alphabet"
	"github.com/CodeMonkeyCybersecurity/tyche/pkg/output"
	"github.com/CodeMonkeyCybersecurity/tyche/pkg/passgen"
	"github.com/CodeMonkeyCybersecurity/tyche/pkg/strength"
	tyche "github.com/CodeMonkeyCybersecurity/tyche/pkg/tyche_cli"
	"github.com/CodeMonkeyCybersecurity/tyche/pkg/tyche_err"
	"github.com/CodeMonkeyCybersecurity/tyche/pkg/tyche_io"
)

// PasswordCmd generates random passwords.
var PasswordCmd = &cobra.Command{
	Use:     "password",
	Aliases: []string{"pw"},
	Short:   "Generate random passwords",
	Long: `Generate one or more random passwords.

Each character is drawn independently and uniformly from the selected
alphabet, so a password of length L over an alphabet of N symbols carries
L * log2(N) bits of entropy.

ALPHABETS:
  lowercase     a-z                                (26 symbols)
  uppercase     A-Z                                (26 symbols)
  digits        0-9                                (10 symbols)
  alphanumeric  a-z A-Z 0-9                        (62 symbols)
  special       alphanumeric plus !@#$%^&*()       (72 symbols, default)

USAGE EXAMPLES:
  tyche password                           # 12 chars from the special alphabet
  tyche password --length 20 --count 5     # five 20-char passwords
  tyche password --alphabet alphanumeric   # shell-safe characters only
  tyche password --custom 'abc123' -s      # custom alphabet, annotate strength`,
	RunE: tyche.Wrap(runPassword),
}

func init() {
	flags := PasswordCmd.Flags()
	flags.IntP("length", "l", 0, "password length in characters (default 12)")
	flags.IntP("count", "c", 0, "number of passwords to generate (default 1)")
	flags.StringP("alphabet", "a", "", "named alphabet to draw from")
	flags.StringP("custom", "C", "", "custom alphabet characters (deduplicated)")
	flags.BoolP("strength", "s", false, "annotate each password with its strength")
	PasswordCmd.MarkFlagsMutuallyExclusive("alphabet", "custom")
}

func runPassword(rc *tyche_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	log := otelzap.Ctx(rc.Ctx)

	length, _ := cmd.Flags().GetInt("length")
	count, _ := cmd.Flags().GetInt("count")
	alphabetName, _ := cmd.Flags().GetString("alphabet")
	custom, _ := cmd.Flags().GetString("custom")
	annotate, _ := cmd.Flags().GetBool("strength")

	if !cmd.Flags().Changed("length") {
		length = viper.GetInt("password.length")
	}
	if !cmd.Flags().Changed("count") {
		count = viper.GetInt("count")
	}

	set, err := resolveSet(alphabetName, custom, cmd.Flags().Changed("custom"))
	if err != nil {
		return tyche_err.NewExpectedError(err)
	}

	req := passgen.Request{Length: length, Count: count}
	if err := req.Validate(); err != nil {
		return tyche_err.NewExpectedError(err)
	}

	rc.Attributes["alphabet"] = set.Name()
	log.Info("Generating passwords",
		zap.Int("length", length),
		zap.Int("count", count),
		zap.String("alphabet", set.Name()),
		zap.Int("symbols", set.Size()))

	values, err := passgen.N(count, func() (string, error) {
		return passgen.Password(set, length)
	})
	if err != nil {
		return err
	}

	printer := output.Stdout()
	for _, value := range values {
		if annotate {
			rep, err := strength.Analyze(value, set.Size())
			if err != nil {
				return err
			}
			printer.AnnotatedValue(value, rep)
		} else {
			printer.Value(value)
		}
	}
	return nil
}

// resolveSet picks the alphabet: custom wins when given, then a named
// preset, then the default. An unknown name is an error, never a fallback.
func resolveSet(name, custom string, customSet bool) (alphabet.Set, error) {
	if customSet {
		return alphabet.Custom(custom)
	}
	if name == "" {
		name = alphabet.Default
	}
	return alphabet.Resolve(name)
}
