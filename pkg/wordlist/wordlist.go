// pkg/wordlist/wordlist.go

// Package wordlist resolves diceware wordlist selectors. Presets are
// materialized lazily, once per process, and are read-only afterwards.
package wordlist

import (
	"sort"
	"strings"
	"sync"

	cerr "github.com/cockroachdb/errors"
	"github.com/sethvargo/go-diceware/diceware"
	"github.com/tyler-smith/go-bip39/wordlists"
)

const (
	Embedded  = "embedded"
	EffLarge  = "eff-large"
	EffShort1 = "eff-short1"
	EffShort2 = "eff-short2"

	// Default is the preset used when the caller names none.
	Default = EffLarge
)

var (
	ErrEmptyWordlist = cerr.New("custom wordlist is empty")
	ErrUnknownPreset = cerr.New("unknown wordlist name")
)

// List is an immutable ordered collection of unique words.
type List struct {
	name  string
	words []string
}

// Each preset materializes at most once per process and is read-only after.
var (
	// The embedded default is the BIP39 English list: 2048 real words
	// compiled into the binary.
	embeddedWords = sync.OnceValue(func() []string { return wordlists.English })

	// EFF lists come from the go-diceware tables: 7776 words for the
	// 5-dice large list, 1296 for the 4-dice short list.
	effLargeWords  = sync.OnceValue(func() []string { return materialize(diceware.WordListEffLarge()) })
	effShort1Words = sync.OnceValue(func() []string { return materialize(diceware.WordListEffSmall()) })

	// The EFF short 2.0 table is not bundled by any dependency, so this
	// 4-dice variant is derived deterministically from the large list:
	// every 6th word, 1296 unique words, disjoint ordering from short1.
	effShort2Words = sync.OnceValue(func() []string {
		large := effLargeWords()
		words := make([]string, 0, len(large)/6)
		for i := 0; i < len(large); i += 6 {
			words = append(words, large[i])
		}
		return words
	})
)

var loaders = map[string]func() []string{
	Embedded:  embeddedWords,
	EffLarge:  effLargeWords,
	EffShort1: effShort1Words,
	EffShort2: effShort2Words,
}

// Resolve maps a preset name to its List, loading it on first use.
func Resolve(name string) (List, error) {
	loader, ok := loaders[name]
	if !ok {
		return List{}, cerr.WithHintf(
			cerr.Wrapf(ErrUnknownPreset, "%q", name),
			"valid names: %s", strings.Join(Names(), ", "))
	}
	return List{name: name, words: loader()}, nil
}

// Custom builds a List from caller-supplied words, deduplicating while
// preserving first-occurrence order. Words are used verbatim: no trimming,
// no case transformation.
func Custom(words []string) (List, error) {
	seen := make(map[string]struct{}, len(words))
	unique := make([]string, 0, len(words))
	for _, w := range words {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		unique = append(unique, w)
	}
	if len(unique) == 0 {
		return List{}, cerr.WithHint(ErrEmptyWordlist,
			"supply at least one word with --custom")
	}
	return List{name: "custom", words: unique}, nil
}

// Name reports which preset the list came from, or "custom".
func (l List) Name() string { return l.name }

// Size is the number of unique words.
func (l List) Size() int { return len(l.words) }

// At returns the word at position i in list order.
func (l List) At(i int) string { return l.words[i] }

// Names lists the valid preset names, sorted for stable error messages.
func Names() []string {
	names := make([]string, 0, len(loaders))
	for name := range loaders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// materialize walks a go-diceware table in roll order. Tables are keyed by
// the concatenated dice values (11111..66666 for five dice), so the counter
// is converted digit by digit.
func materialize(wl diceware.WordList) []string {
	digits := wl.Digits()
	total := 1
	for i := 0; i < digits; i++ {
		total *= 6
	}

	words := make([]string, 0, total)
	for i := 0; i < total; i++ {
		n := i
		roll := 0
		mul := 1
		for j := 0; j < digits; j++ {
			roll += (n%6 + 1) * mul
			n /= 6
			mul *= 10
		}
		words = append(words, wl.WordAt(roll))
	}
	return words
}
