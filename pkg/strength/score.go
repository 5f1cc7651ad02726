// pkg/strength/score.go

package strength

import (
	"github.com/nbutton23/zxcvbn-go"
)

// maxScoredLen caps the input fed to zxcvbn; its match search gets slow on
// long inputs and anything past 50 chars is far beyond the top score anyway.
const maxScoredLen = 50

// Score rates input 0-4 with zxcvbn, whose frequency dictionaries (common
// passwords, english words, names) catch weaknesses the pure entropy model
// cannot see. Empty input scores 0.
func Score(input string) int {
	if input == "" {
		return 0
	}
	if len(input) > maxScoredLen {
		input = input[:maxScoredLen]
	}
	return zxcvbn.PasswordStrength(input, nil).Score
}
