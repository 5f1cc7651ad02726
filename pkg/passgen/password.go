// pkg/passgen/password.go

// Package passgen generates passwords and passphrases by drawing uniformly,
// with replacement, from an alphabet or wordlist.
package passgen

import (
	"strings"

	"github.com/CodeMonkeyCybersecurity/tyche/pkg/alphabet"
	"github.com/CodeMonkeyCybersecurity/tyche/pkg/crypto"
	cerr "github.com/cockroachdb/errors"
)

// Password draws length independent symbols from set and concatenates them
// in draw order. Every position sees the full set with equal per-symbol
// probability; symbols may repeat.
func Password(set alphabet.Set, length int) (string, error) {
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		idx, err := crypto.Index(set.Size())
		if err != nil {
			return "", cerr.Wrap(err, "draw password symbol")
		}
		sb.WriteRune(set.At(idx))
	}
	return sb.String(), nil
}
