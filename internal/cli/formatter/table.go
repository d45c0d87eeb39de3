package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const tableGap = 2

// RenderTable renders an aligned table with a header separator. Column
// widths are measured with lipgloss.Width so ANSI styling in cells does not
// skew the padding.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder

	writeCell := func(col int, rendered string, visible int) {
		b.WriteString(rendered)
		if col < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", widths[col]-visible+tableGap))
		}
	}

	for i, h := range headers {
		writeCell(i, StyleHeader.Render(h), lipgloss.Width(h))
	}
	b.WriteString("\n")

	for i, w := range widths {
		writeCell(i, StyleDim.Render(strings.Repeat("─", w)), w)
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			writeCell(i, cell, lipgloss.Width(cell))
		}
		b.WriteString("\n")
	}

	return b.String()
}
