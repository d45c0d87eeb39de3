package formatter

import (
	"fmt"
	"strings"

	"github.com/avernier/chantier/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SeverityStyle returns the lipgloss style for an alert severity.
func SeverityStyle(severity domain.Severity) lipgloss.Style {
	switch severity {
	case domain.SeverityError:
		return StyleRed
	case domain.SeverityWarning:
		return StyleYellow
	case domain.SeverityInfo:
		return StyleBlue
	default:
		return StyleDim
	}
}

// SeverityTag renders a colored upper-case severity tag such as "ERROR".
func SeverityTag(severity domain.Severity) string {
	return SeverityStyle(severity).Render(strings.ToUpper(string(severity)))
}

// ScheduleIndicator returns a colored schedule-status indicator such as
// "● BEHIND".
func ScheduleIndicator(status domain.ScheduleStatus) string {
	switch status {
	case domain.ScheduleAhead:
		return StyleGreen.Render("● AHEAD")
	case domain.ScheduleOnTime:
		return StyleGreen.Render("● ON TIME")
	case domain.ScheduleBehind:
		return StyleRed.Render("● BEHIND")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
