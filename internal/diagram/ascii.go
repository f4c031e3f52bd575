package diagram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"

	"github.com/structeng/beamreport/internal/statics"
)

// ASCIISFD draws the shear force curve as a terminal chart.
func ASCIISFD(d *statics.Diagram, width int) string {
	return asciiCurve(d, width, "Shear Force (kN)", d.Beam.ShearAt)
}

// ASCIIBMD draws the bending moment curve as a terminal chart.
func ASCIIBMD(d *statics.Diagram, width int) string {
	return asciiCurve(d, width, "Bending Moment (kN·m)", d.Beam.MomentAt)
}

// asciiCurve resamples the curve on a uniform grid, since asciigraph
// assumes equally spaced values.
func asciiCurve(d *statics.Diagram, width int, caption string, f func(float64) float64) string {
	if width < 10 {
		width = 10
	}
	ys := make([]float64, width)
	for i := range ys {
		x := d.Beam.Span * float64(i) / float64(width-1)
		ys[i] = f(x)
	}
	return asciigraph.Plot(ys,
		asciigraph.Height(12),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// DrawSummaryBox renders a boxed result block for console output.
// Widths are measured in runes so lines with units like kN·m keep the
// right border aligned.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
