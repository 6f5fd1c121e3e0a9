package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// Bar is one labeled value in a bar chart.
type Bar struct {
	Label string
	Value float64
	Text  string // shown after the bar; empty means no annotation
}

// RenderBars draws a horizontal bar per entry, scaled to the largest value.
// Non-positive values draw an empty bar.
func RenderBars(bars []Bar, width int) string {
	if len(bars) == 0 {
		return ""
	}
	if width < 2 {
		width = 2
	}

	maxVal, labelWidth := 0.0, 0
	for _, b := range bars {
		maxVal = max(maxVal, b.Value)
		labelWidth = max(labelWidth, lipgloss.Width(b.Label))
	}

	var sb strings.Builder
	for _, b := range bars {
		filled := 0
		if maxVal > 0 && b.Value > 0 {
			filled = max(int(b.Value/maxVal*float64(width)+0.5), 1)
		}
		filled = min(filled, width)
		bar := StyleBlue.Render(strings.Repeat(filledBlock, filled)) +
			StyleDim.Render(strings.Repeat(emptyBlock, width-filled))

		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(b.Label))
		sb.WriteString(b.Label + pad + "  " + bar)
		if b.Text != "" {
			sb.WriteString("  " + b.Text)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
