package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/avernier/chantier/internal/contract"
	"github.com/avernier/chantier/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	completionBarWidth = 14
	maxTerminalAlerts  = 20
	severityColWidth   = 9
)

// FormatReport renders an analysis report for the terminal: headline KPIs,
// earned value, the per-block breakdown and the alert list. The framed
// variant is meant for interactive terminals; pass framed=false when output
// is piped.
func FormatReport(report *contract.AnalysisReport, framed bool) string {
	var b strings.Builder

	kpis := report.KPIs

	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(report.Source),
		Dim(fmt.Sprintf("%d rows, %d tasks", len(report.Rows), kpis.TotalTasks))))
	b.WriteString(fmt.Sprintf("Completion   %s  %s\n",
		RenderProgress(kpis.CompletionRate/100, completionBarWidth),
		Dim(fmt.Sprintf("%d of %d tasks done", kpis.CompletedTasks, kpis.TotalTasks))))
	b.WriteString(fmt.Sprintf("Total value  %s\n", StyleFg.Render(fmt.Sprintf("%.0f", kpis.TotalValue))))
	b.WriteString(fmt.Sprintf("Avg duration %s\n", StyleFg.Render(fmt.Sprintf("%.1fd", kpis.AvgDuration))))
	b.WriteString(fmt.Sprintf("Date span    %s %s %s\n",
		DateOrDash(kpis.StartDate), Dim("→"), DateOrDash(kpis.EndDate)))

	if ev := report.EarnedValue; ev != nil {
		b.WriteString(fmt.Sprintf("Earned value %s  %s\n",
			StyleFg.Render(fmt.Sprintf("EV %.0f / PV %.0f, SPI %.2f", ev.EarnedValue, ev.PlannedValue, ev.SPI)),
			ScheduleIndicator(ev.Status)))
	}

	if len(kpis.ByBloc) > 0 {
		b.WriteString("\n")
		b.WriteString(formatBlocTable(kpis.ByBloc))
	}

	b.WriteString("\n")
	b.WriteString(formatAlerts(report.Alerts, report.Summary))

	content := strings.TrimRight(b.String(), "\n")
	if !framed {
		return Header("Schedule Analysis") + "\n" + content + "\n"
	}
	return RenderBox("Schedule Analysis", content) + "\n"
}

func formatBlocTable(byBloc map[string]domain.BlocKPI) string {
	blocs := make([]string, 0, len(byBloc))
	for bloc := range byBloc {
		blocs = append(blocs, bloc)
	}
	sort.Strings(blocs)

	headers := []string{"BLOCK", "TASKS", "DONE", "PROGRESS", "VALUE"}
	rows := make([][]string, 0, len(blocs))
	for _, bloc := range blocs {
		kpi := byBloc[bloc]
		rows = append(rows, []string{
			Bold(bloc),
			fmt.Sprintf("%d", kpi.TotalTasks),
			fmt.Sprintf("%d", kpi.Completed),
			RenderProgress(kpi.AvgProgress/100, completionBarWidth/2),
			fmt.Sprintf("%.0f", kpi.TotalValue),
		})
	}
	return RenderTable(headers, rows)
}

func formatAlerts(alerts []domain.Alert, summary domain.Summary) string {
	if len(alerts) == 0 {
		return StyleGreen.Render("No issues found") + "\n"
	}

	var b strings.Builder
	for i, a := range alerts {
		if i == maxTerminalAlerts {
			b.WriteString(Dim(fmt.Sprintf("… and %d more", len(alerts)-maxTerminalAlerts)) + "\n")
			break
		}
		location := ""
		if a.Row != nil {
			location = Dim(fmt.Sprintf(" (row %d)", *a.Row))
		}
		tag := SeverityTag(a.Severity)
		pad := severityColWidth - lipgloss.Width(tag)
		if pad < 1 {
			pad = 1
		}
		b.WriteString(fmt.Sprintf("%s%s%s%s\n", tag, strings.Repeat(" ", pad), a.Message, location))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s, %s, %s %s\n",
		StyleRed.Render(fmt.Sprintf("%d errors", summary.Errors)),
		StyleYellow.Render(fmt.Sprintf("%d warnings", summary.Warnings)),
		StyleBlue.Render(fmt.Sprintf("%d info", summary.Infos)),
		Dim(fmt.Sprintf("(%d total)", summary.Total))))
	return b.String()
}
