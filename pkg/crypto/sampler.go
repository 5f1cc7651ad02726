// pkg/crypto/sampler.go

package crypto

import (
	"crypto/rand"
	"math/big"

	cerr "github.com/cockroachdb/errors"
)

// ErrInvalidRange reports a draw over an empty or negative range. This is a
// programming error in the caller, never a user-input problem.
var ErrInvalidRange = cerr.New("sample range must be positive")

// Index returns a uniform random integer in [0, n) drawn from the system
// CSPRNG. rand.Int rejection-samples internally, so the result carries no
// modulo bias regardless of n.
func Index(n int) (int, error) {
	if n <= 0 {
		return 0, cerr.Wrapf(ErrInvalidRange, "got n=%d", n)
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, cerr.Wrap(err, "read from entropy source")
	}
	return int(v.Int64()), nil
}

// Rune draws one rune from set with equal probability.
func Rune(set []rune) (rune, error) {
	i, err := Index(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

// Word draws one word from list with equal probability.
func Word(list []string) (string, error) {
	i, err := Index(len(list))
	if err != nil {
		return "", err
	}
	return list[i], nil
}
