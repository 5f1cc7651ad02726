// pkg/output/json.go

package output

import (
	"encoding/json"

	"github.com/CodeMonkeyCybersecurity/tyche/pkg/strength"
)

type jsonReport struct {
	Password string  `json:"password"`
	Tier     string  `json:"tier"`
	Bits     float64 `json:"bits"`
	Length   int     `json:"length"`
	Space    int     `json:"space"`
	Score    *int    `json:"score,omitempty"`
}

// JSONReport prints a strength report as indented JSON for machine
// consumption. The zxcvbn score is omitted when it was not computed.
func (p *Printer) JSONReport(input string, rep strength.Report) error {
	out := jsonReport{
		Password: input,
		Tier:     rep.Tier.String(),
		Bits:     rep.Bits,
		Length:   rep.Length,
		Space:    rep.SpaceSize,
	}
	if rep.Score >= 0 {
		score := rep.Score
		out.Score = &score
	}

	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
