// pkg/strength/strength_test.go

package strength

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeMonkeyCybersecurity/tyche/pkg/alphabet"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		space    int
		wantBits float64
		wantTier Tier
	}{
		{name: "empty input", input: "", space: 72, wantBits: 0, wantTier: VeryWeak},
		{name: "space of one", input: "aaaaaaaaaaaaaaaa", space: 1, wantBits: 0, wantTier: VeryWeak},
		{name: "8 lowercase", input: "password", space: 26, wantBits: 37.6, wantTier: Reasonable},
		{name: "3 lowercase", input: "abc", space: 26, wantBits: 14.1, wantTier: VeryWeak},
		{name: "6 lowercase", input: "abcdef", space: 26, wantBits: 28.2, wantTier: Weak},
		{name: "12 over full space", input: "Password123!", space: 72, wantBits: 74.0, wantTier: Strong},
		{name: "8 digits", input: "12345678", space: 10, wantBits: 26.6, wantTier: VeryWeak},
		{name: "28 over special space", input: strings.Repeat("x", 28), space: 72, wantBits: 172.7, wantTier: VeryStrong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep, err := Analyze(tt.input, tt.space)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantBits, rep.Bits, 0.1)
			assert.Equal(t, tt.wantTier, rep.Tier)
			assert.Equal(t, tt.space, rep.SpaceSize)
		})
	}
}

func TestAnalyzeInvalidSpace(t *testing.T) {
	for _, space := range []int{0, -1} {
		_, err := Analyze("whatever", space)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidSpace)
	}
}

func TestAnalyzeDetect(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantSpace int
		wantBits  float64
		wantTier  Tier
	}{
		{name: "lowercase only", input: "aaaa", wantSpace: 26, wantBits: 18.8, wantTier: VeryWeak},
		{name: "empty", input: "", wantSpace: 0, wantBits: 0, wantTier: VeryWeak},
		{name: "lower and upper", input: "aA", wantSpace: 52, wantBits: 11.4, wantTier: VeryWeak},
		{name: "digits only", input: "123456", wantSpace: 10, wantBits: 19.9, wantTier: VeryWeak},
		{name: "all four classes", input: "aA1!", wantSpace: 94, wantBits: 26.2, wantTier: VeryWeak},
		{name: "punctuation counts as other", input: "____", wantSpace: 32, wantBits: 20, wantTier: VeryWeak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := AnalyzeDetect(tt.input)
			assert.Equal(t, tt.wantSpace, rep.SpaceSize)
			assert.InDelta(t, tt.wantBits, rep.Bits, 0.1)
			assert.Equal(t, tt.wantTier, rep.Tier)
		})
	}
}

func TestAnalyzeDetectAvoidsOverestimate(t *testing.T) {
	// Same length, smaller observed class set, lower entropy.
	lower := AnalyzeDetect("abcdefgh")
	mixed := AnalyzeDetect("abcdefG1")
	assert.Less(t, lower.Bits, mixed.Bits)
}

func TestAnalyzeAgainst(t *testing.T) {
	lowercase, err := alphabet.Resolve(alphabet.Lowercase)
	require.NoError(t, err)
	special, err := alphabet.Resolve(alphabet.Special)
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   string
		set     alphabet.Set
		wantErr bool
	}{
		{name: "lowercase ok", input: "password", set: lowercase},
		{name: "uppercase rejected by lowercase", input: "Password", set: lowercase, wantErr: true},
		{name: "full special ok", input: "Password123!", set: special},
		{name: "tilde outside special", input: "password~", set: special, wantErr: true},
		{name: "unicode outside special", input: "café", set: special, wantErr: true},
		{name: "space outside special", input: "pass word", set: special, wantErr: true},
		{name: "empty ok", input: "", set: special},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep, err := AnalyzeAgainst(tt.input, tt.set)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, alphabet.ErrOutsideAlphabet)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.set.Size(), rep.SpaceSize)
		})
	}
}

func TestEntropyMonotonicInLength(t *testing.T) {
	prev := -1.0
	for length := 0; length <= 40; length++ {
		rep, err := Analyze(strings.Repeat("a", length), 26)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, rep.Bits, prev)
		prev = rep.Bits
	}
}

func TestEntropyMonotonicInSpace(t *testing.T) {
	prev := -1.0
	for space := 1; space <= 100; space++ {
		rep, err := Analyze("abcdefgh", space)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, rep.Bits, prev)
		prev = rep.Bits
	}
}

func TestTierBoundaries(t *testing.T) {
	tests := []struct {
		bits float64
		want Tier
	}{
		{bits: 0, want: VeryWeak},
		{bits: 27.9, want: VeryWeak},
		{bits: 28, want: Weak},
		{bits: 35.9, want: Weak},
		{bits: 36, want: Reasonable},
		{bits: 59.9, want: Reasonable},
		{bits: 60, want: Strong},
		{bits: 127.9, want: Strong},
		{bits: 128, want: VeryStrong},
		{bits: 1000, want: VeryStrong},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tierFor(tt.bits), "bits=%v", tt.bits)
	}
}

func TestTierStrings(t *testing.T) {
	assert.Equal(t, "very weak", VeryWeak.String())
	assert.Equal(t, "weak", Weak.String())
	assert.Equal(t, "reasonable", Reasonable.String())
	assert.Equal(t, "strong", Strong.String())
	assert.Equal(t, "very strong", VeryStrong.String())
}

func TestWords(t *testing.T) {
	tests := []struct {
		name     string
		words    int
		listSize int
		wantBits float64
	}{
		{name: "3 words eff-large", words: 3, listSize: 7776, wantBits: 38.8},
		{name: "6 words eff-large", words: 6, listSize: 7776, wantBits: 77.5},
		{name: "4 words short list", words: 4, listSize: 1296, wantBits: 41.4},
		{name: "single entry list", words: 10, listSize: 1, wantBits: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep, err := Words(tt.words, tt.listSize)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantBits, rep.Bits, 0.1)
		})
	}

	_, err := Words(3, 0)
	assert.ErrorIs(t, err, ErrInvalidSpace)
}
