// pkg/passgen/passphrase.go

package passgen

import (
	"strings"

	"github.com/CodeMonkeyCybersecurity/tyche/pkg/crypto"
	"github.com/CodeMonkeyCybersecurity/tyche/pkg/wordlist"
	cerr "github.com/cockroachdb/errors"
)

// Passphrase draws words independent entries from list (with replacement)
// and joins them with separator verbatim: no trimming, no case changes.
func Passphrase(list wordlist.List, words int, separator string) (string, error) {
	parts := make([]string, 0, words)
	for i := 0; i < words; i++ {
		idx, err := crypto.Index(list.Size())
		if err != nil {
			return "", cerr.Wrap(err, "draw passphrase word")
		}
		parts = append(parts, list.At(idx))
	}
	return strings.Join(parts, separator), nil
}
