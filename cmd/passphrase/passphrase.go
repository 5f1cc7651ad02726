// cmd/passphrase/passphrase.go

package passphrase

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/tyche/pkg/output"
	"github.com/CodeMonkeyCybersecurity/tyche/pkg/passgen"
	"github.com/CodeMonkeyCybersecurity/tyche/pkg/strength"
	tyche "github.com/CodeMonkeyCybersecurity/tyche/pkg/tyche_cli"
	"github.com/CodeMonkeyCybersecurity/tyche/pkg/tyche_err"
	"github.com/CodeMonkeyCybersecurity/tyche/pkg/tyche_io"
	"github.com/CodeMonkeyCybersecurity/tyche/pkg/wordlist"
)

// PassphraseCmd generates diceware-style passphrases.
var PassphraseCmd = &cobra.Command{
	Use:     "passphrase",
	Aliases: []string{"pp", "diceware"},
	Short:   "Generate diceware-style passphrases",
	Long: `Generate one or more passphrases by drawing words uniformly from a
wordlist and joining them with a separator.

A passphrase of W words over a list of N entries carries W * log2(N) bits of
entropy; with the default eff-large list each word contributes ~12.9 bits.

WORDLISTS:
  eff-large     EFF large list, 5 dice              (7776 words, default)
  eff-short1    EFF short list, 4 dice              (1296 words)
  eff-short2    4-dice list derived from eff-large  (1296 words)
  embedded      compiled-in BIP39 English list      (2048 words)

USAGE EXAMPLES:
  tyche passphrase                          # 3 words joined by "-"
  tyche passphrase --length 6 --strength    # 6 words, annotate entropy
  tyche passphrase --separator . -w embedded
  tyche passphrase --custom correct --custom horse --custom battery`,
	RunE: tyche.Wrap(runPassphrase),
}

func init() {
	flags := PassphraseCmd.Flags()
	flags.IntP("length", "l", 0, "number of words per passphrase (default 3)")
	flags.IntP("count", "c", 0, "number of passphrases to generate (default 1)")
	flags.StringP("separator", "j", "", `string joining the words (default "-")`)
	flags.StringP("wordlist", "w", "", "named wordlist to draw from")
	flags.StringArrayP("custom", "C", nil, "custom word (repeatable)")
	flags.BoolP("strength", "s", false, "annotate each passphrase with its strength")
	PassphraseCmd.MarkFlagsMutuallyExclusive("wordlist", "custom")
}

func runPassphrase(rc *tyche_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	log := otelzap.Ctx(rc.Ctx)

	words, _ := cmd.Flags().GetInt("length")
	count, _ := cmd.Flags().GetInt("count")
	separator, _ := cmd.Flags().GetString("separator")
	listName, _ := cmd.Flags().GetString("wordlist")
	custom, _ := cmd.Flags().GetStringArray("custom")
	annotate, _ := cmd.Flags().GetBool("strength")

	if !cmd.Flags().Changed("length") {
		words = viper.GetInt("passphrase.length")
	}
	if !cmd.Flags().Changed("count") {
		count = viper.GetInt("count")
	}
	if !cmd.Flags().Changed("separator") {
		separator = viper.GetString("passphrase.separator")
	}

	list, err := resolveList(listName, custom)
	if err != nil {
		return tyche_err.NewExpectedError(err)
	}

	req := passgen.Request{Length: words, Count: count, Separator: separator}
	if err := req.Validate(); err != nil {
		return tyche_err.NewExpectedError(err)
	}

	rc.Attributes["wordlist"] = list.Name()
	log.Info("Generating passphrases",
		zap.Int("words", words),
		zap.Int("count", count),
		zap.String("wordlist", list.Name()),
		zap.Int("entries", list.Size()))

	values, err := passgen.N(count, func() (string, error) {
		return passgen.Passphrase(list, words, separator)
	})
	if err != nil {
		return err
	}

	printer := output.Stdout()
	for _, value := range values {
		if annotate {
			rep, err := strength.Words(words, list.Size())
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

func resolveList(name string, custom []string) (wordlist.List, error) {
	if len(custom) > 0 {
		return wordlist.Custom(custom)
	}
	if name == "" {
		name = wordlist.Default
	}
	return wordlist.Resolve(name)
}
