// pkg/alphabet/alphabet.go

// Package alphabet resolves character-set selectors for password generation
// and strength analysis. Preset contents are part of the tool's contract:
// they feed directly into the entropy math, so they must stay stable.
package alphabet

import (
	"sort"
	"strings"

	cerr "github.com/cockroachdb/errors"
)

const (
	Lowercase    = "lowercase"
	Uppercase    = "uppercase"
	Digits       = "digits"
	Alphanumeric = "alphanumeric"
	Special      = "special"

	// Default is the preset used when the caller names none.
	Default = Special
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"

	// punctuationChars is fixed; changing it would change the advertised
	// entropy of the special preset (62 + 10 = 72 symbols).
	punctuationChars = "!@#$%^&*()"
)

var presets = map[string]string{
	Lowercase:    lowercaseChars,
	Uppercase:    uppercaseChars,
	Digits:       digitChars,
	Alphanumeric: lowercaseChars + uppercaseChars + digitChars,
	Special:      lowercaseChars + uppercaseChars + digitChars + punctuationChars,
}

var (
	ErrEmptyAlphabet   = cerr.New("custom alphabet is empty")
	ErrUnknownPreset   = cerr.New("unknown alphabet name")
	ErrOutsideAlphabet = cerr.New("input contains characters outside the alphabet")
)

// Set is an immutable ordered collection of unique symbols, each drawn with
// equal probability during generation.
type Set struct {
	name     string
	runes    []rune
	contains map[rune]struct{}
}

// Resolve maps a preset name to its Set.
func Resolve(name string) (Set, error) {
	chars, ok := presets[name]
	if !ok {
		return Set{}, cerr.WithHintf(
			cerr.Wrapf(ErrUnknownPreset, "%q", name),
			"valid names: %s", strings.Join(Names(), ", "))
	}
	return newSet(name, chars), nil
}

// Custom builds a Set from caller-supplied characters, deduplicating while
// preserving first-occurrence order.
func Custom(chars string) (Set, error) {
	s := newSet("custom", chars)
	if s.Size() == 0 {
		return Set{}, cerr.WithHint(ErrEmptyAlphabet,
			"supply at least one character with --custom")
	}
	return s, nil
}

func newSet(name, chars string) Set {
	seen := make(map[rune]struct{}, len(chars))
	runes := make([]rune, 0, len(chars))
	for _, r := range chars {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		runes = append(runes, r)
	}
	return Set{name: name, runes: runes, contains: seen}
}

// Name reports which preset the set came from, or "custom".
func (s Set) Name() string { return s.name }

// Size is the number of unique symbols.
func (s Set) Size() int { return len(s.runes) }

// At returns the symbol at position i in registration order.
func (s Set) At(i int) rune { return s.runes[i] }

// Contains reports whether r is one of the set's symbols.
func (s Set) Contains(r rune) bool {
	_, ok := s.contains[r]
	return ok
}

func (s Set) String() string { return string(s.runes) }

// Names lists the valid preset names, sorted for stable error messages.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
