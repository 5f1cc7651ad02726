// pkg/strength/strength.go

// Package strength estimates password strength with the standard entropy
// model: bits = length * log2(symbol space size). The symbol space is either
// asserted by the caller (a named or custom alphabet, or a wordlist's
// cardinality) or inferred from the character classes present in the input.
package strength

import (
	"math"
	"unicode"
	"unicode/utf8"

	"github.com/CodeMonkeyCybersecurity/tyche/pkg/alphabet"
	cerr "github.com/cockroachdb/errors"
)

// Tier is the qualitative rating for an entropy estimate.
type Tier int

const (
	VeryWeak Tier = iota
	Weak
	Reasonable
	Strong
	VeryStrong
)

func (t Tier) String() string {
	switch t {
	case VeryWeak:
		return "very weak"
	case Weak:
		return "weak"
	case Reasonable:
		return "reasonable"
	case Strong:
		return "strong"
	case VeryStrong:
		return "very strong"
	default:
		return "unknown"
	}
}

// Tier boundaries in entropy bits. Monotonic, disjoint, and total over
// [0, inf): [0,28) very weak, [28,36) weak, [36,60) reasonable,
// [60,128) strong, [128,inf) very strong.
const (
	weakBits       = 28
	reasonableBits = 36
	strongBits     = 60
	veryStrongBits = 128
)

// Inferred class sizes: 26 lowercase, 26 uppercase, 10 digits, and 32 for
// anything else (the ASCII punctuation count, the usual convention for the
// symbols class).
const (
	lowerSpace = 26
	upperSpace = 26
	digitSpace = 10
	otherSpace = 32
)

// ErrInvalidSpace reports a non-positive symbol space, a programming error.
var ErrInvalidSpace = cerr.New("symbol space size must be positive")

// Report is the derived strength estimate for one input.
type Report struct {
	// Bits of entropy under the assumed symbol space.
	Bits float64
	// Tier is the qualitative rating for Bits.
	Tier Tier
	// SpaceSize is the assumed or inferred symbol space cardinality.
	SpaceSize int
	// Length of the input in symbols (runes for passwords).
	Length int
	// Score is the zxcvbn 0-4 rating, or -1 when scoring was skipped.
	Score int
}

// Analyze computes the entropy of input against an asserted symbol space.
// Empty input rates 0 bits regardless of the space; a space of 1 rates 0
// bits regardless of length.
func Analyze(input string, spaceSize int) (Report, error) {
	if spaceSize < 1 {
		return Report{}, cerr.Wrapf(ErrInvalidSpace, "got %d", spaceSize)
	}

	length := utf8.RuneCountInString(input)
	bits := float64(length) * math.Log2(float64(spaceSize))

	return Report{
		Bits:      bits,
		Tier:      tierFor(bits),
		SpaceSize: spaceSize,
		Length:    length,
		Score:     -1,
	}, nil
}

// AnalyzeDetect infers the symbol space from the character classes observed
// in input, so a password that only ever used lowercase letters is not
// credited with the full printable range.
func AnalyzeDetect(input string) Report {
	space := detectSpace(input)

	length := utf8.RuneCountInString(input)
	var bits float64
	if space > 0 {
		bits = float64(length) * math.Log2(float64(space))
	}

	return Report{
		Bits:      bits,
		Tier:      tierFor(bits),
		SpaceSize: space,
		Length:    length,
		Score:     Score(input),
	}
}

// AnalyzeAgainst computes entropy assuming input was drawn from set. Inputs
// containing symbols outside the set are rejected rather than silently
// rated against the wrong space.
func AnalyzeAgainst(input string, set alphabet.Set) (Report, error) {
	for _, r := range input {
		if !set.Contains(r) {
			return Report{}, cerr.WithHintf(
				cerr.Wrapf(alphabet.ErrOutsideAlphabet, "character %q", r),
				"alphabet %q has %d symbols", set.Name(), set.Size())
		}
	}

	rep, err := Analyze(input, set.Size())
	if err != nil {
		return Report{}, err
	}
	rep.Score = Score(input)
	return rep, nil
}

// Words computes passphrase entropy: bits = words * log2(list cardinality).
func Words(wordCount, listSize int) (Report, error) {
	if listSize < 1 {
		return Report{}, cerr.Wrapf(ErrInvalidSpace, "got %d", listSize)
	}

	bits := float64(wordCount) * math.Log2(float64(listSize))
	return Report{
		Bits:      bits,
		Tier:      tierFor(bits),
		SpaceSize: listSize,
		Length:    wordCount,
		Score:     -1,
	}, nil
}

func detectSpace(input string) int {
	var hasLower, hasUpper, hasDigit, hasOther bool
	for _, r := range input {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasOther = true
		}
	}

	space := 0
	if hasLower {
		space += lowerSpace
	}
	if hasUpper {
		space += upperSpace
	}
	if hasDigit {
		space += digitSpace
	}
	if hasOther {
		space += otherSpace
	}
	return space
}

func tierFor(bits float64) Tier {
	switch {
	case bits < weakBits:
		return VeryWeak
	case bits < reasonableBits:
		return Weak
	case bits < strongBits:
		return Reasonable
	case bits < veryStrongBits:
		return Strong
	default:
		return VeryStrong
	}
}
