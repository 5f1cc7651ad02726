// pkg/output/output.go

// Package output prints generated values and strength reports. Values go to
// stdout one per line so they pipe cleanly; annotations ride on the same
// line. Colour degrades automatically when stdout is not a terminal.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/CodeMonkeyCybersecurity/tyche/pkg/strength"
	"github.com/charmbracelet/lipgloss"
)

var tierStyles = map[strength.Tier]lipgloss.Style{
	strength.VeryWeak:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	strength.Weak:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	strength.Reasonable: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	strength.Strong:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	strength.VeryStrong: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
}

var labelStyle = lipgloss.NewStyle().Faint(true)

// Printer writes results to a single destination.
type Printer struct {
	w io.Writer
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Stdout returns the default Printer.
func Stdout() *Printer {
	return New(os.Stdout)
}

// Value prints one generated value on its own line.
func (p *Printer) Value(value string) {
	fmt.Fprintln(p.w, value)
}

// AnnotatedValue prints a generated value with its strength annotation.
func (p *Printer) AnnotatedValue(value string, rep strength.Report) {
	fmt.Fprintf(p.w, "%s  %s\n", value, renderTier(rep))
}

// Report prints a full strength report for a checked password.
func (p *Printer) Report(input string, rep strength.Report) {
	fmt.Fprintf(p.w, "%s %s\n", labelStyle.Render("password:"), input)
	fmt.Fprintf(p.w, "%s %s\n", labelStyle.Render("strength:"), renderTier(rep))
	fmt.Fprintf(p.w, "%s %d symbols over a space of %d\n",
		labelStyle.Render("assumed: "), rep.Length, rep.SpaceSize)
	if rep.Score >= 0 {
		fmt.Fprintf(p.w, "%s %d/4\n", labelStyle.Render("zxcvbn:  "), rep.Score)
	}
}

func renderTier(rep strength.Report) string {
	style, ok := tierStyles[rep.Tier]
	if !ok {
		style = lipgloss.NewStyle()
	}
	return fmt.Sprintf("[%s, %.1f bits]", style.Render(rep.Tier.String()), rep.Bits)
}
