package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░]  45% for a pct in
// [0,1]. The bar color tracks the percentage: green above 2/3, yellow above
// 1/3, red below.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case pct < 0.33:
		style = StyleRed
	case pct < 0.66:
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title != "" {
		content = StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content
	}
	return boxStyle.Render(content)
}

// DateOrDash formats a date, or a dimmed dash when nil.
func DateOrDash(t *time.Time) string {
	if t == nil {
		return Dim("--")
	}
	return StyleFg.Render(t.Format("2006-01-02"))
}
