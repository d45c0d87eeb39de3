package export

import (
	"fmt"
	"html/template"
	"os"
	"strings"
	"time"

	"github.com/avernier/chantier/internal/contract"
	"github.com/avernier/chantier/internal/domain"
)

const (
	// Caps keep the report self-contained and readable in a mail client.
	maxReportAlerts = 20
	maxReportTasks  = 50
)

type htmlAlertView struct {
	Severity string
	Message  string
}

type htmlTaskView struct {
	Bloc     string
	Phase    string
	Task     string
	Start    string
	End      string
	Duration string
	Progress string
}

type htmlEVView struct {
	PlannedValue string
	EarnedValue  string
	SPI          string
	Status       string
}

type htmlReportView struct {
	Source         string
	GeneratedAt    string
	TotalTasks     int
	CompletedTasks int
	CompletionRate string
	TotalValue     string
	TotalAlerts    int
	Alerts         []htmlAlertView
	MoreAlerts     int
	Tasks          []htmlTaskView
	MoreTasks      int
	EarnedValue    *htmlEVView
}

// RenderHTML produces a self-contained HTML report: KPI cards, the alert
// list capped at 20 entries and a task sample capped at 50 rows.
func RenderHTML(report *contract.AnalysisReport) (string, error) {
	view := buildHTMLView(report)

	var b strings.Builder
	if err := reportTemplate.Execute(&b, view); err != nil {
		return "", fmt.Errorf("rendering html report: %w", err)
	}
	return b.String(), nil
}

// WriteHTML renders the report and writes it to path.
func WriteHTML(report *contract.AnalysisReport, path string) error {
	html, err := RenderHTML(report)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("writing html report: %w", err)
	}
	return nil
}

func buildHTMLView(report *contract.AnalysisReport) htmlReportView {
	kpis := report.KPIs
	view := htmlReportView{
		Source:         report.Source,
		GeneratedAt:    report.GeneratedAt.Format("02/01/2006 15:04"),
		TotalTasks:     kpis.TotalTasks,
		CompletedTasks: kpis.CompletedTasks,
		CompletionRate: fmt.Sprintf("%.1f%%", kpis.CompletionRate),
		TotalValue:     fmt.Sprintf("%.1fM", kpis.TotalValue/1e6),
		TotalAlerts:    len(report.Alerts),
	}

	for i, a := range report.Alerts {
		if i == maxReportAlerts {
			view.MoreAlerts = len(report.Alerts) - maxReportAlerts
			break
		}
		view.Alerts = append(view.Alerts, htmlAlertView{
			Severity: string(a.Severity),
			Message:  a.Message,
		})
	}

	tasks := domain.TaskRows(report.Rows)
	for i, t := range tasks {
		if i == maxReportTasks {
			view.MoreTasks = len(tasks) - maxReportTasks
			break
		}
		view.Tasks = append(view.Tasks, htmlTaskView{
			Bloc:     domain.StrOrDefault("N/A", t.Bloc),
			Phase:    domain.StrOrDefault("N/A", t.Phase),
			Task:     t.Label(),
			Start:    formatHTMLDate(t.StartDate),
			End:      formatHTMLDate(t.EndDate),
			Duration: formatHTMLDuration(t.Duration),
			Progress: fmt.Sprintf("%.0f%%", domain.Float64OrDefault(0, t.Progress)),
		})
	}

	if ev := report.EarnedValue; ev != nil {
		view.EarnedValue = &htmlEVView{
			PlannedValue: fmt.Sprintf("%.0f", ev.PlannedValue),
			EarnedValue:  fmt.Sprintf("%.0f", ev.EarnedValue),
			SPI:          fmt.Sprintf("%.2f", ev.SPI),
			Status:       scheduleStatusLabel(ev.Status),
		}
	}

	return view
}

func formatHTMLDate(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.Format("02/01/2006")
}

func formatHTMLDuration(d *int) string {
	if d == nil {
		return "N/A"
	}
	return fmt.Sprintf("%dd", *d)
}

func scheduleStatusLabel(s domain.ScheduleStatus) string {
	switch s {
	case domain.ScheduleAhead:
		return "Ahead of schedule"
	case domain.ScheduleOnTime:
		return "On time"
	default:
		return "Behind schedule"
	}
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Schedule Report - {{.Source}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 20px; background-color: #f5f5f5; }
.container { max-width: 1200px; margin: 0 auto; background: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
h1 { color: #1f77b4; border-bottom: 3px solid #1f77b4; padding-bottom: 10px; }
h2 { color: #333; margin-top: 30px; }
.kpi-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 20px; margin: 20px 0; }
.kpi-card { background: #f0f8ff; padding: 20px; border-radius: 8px; border-left: 4px solid #1f77b4; }
.kpi-value { font-size: 2em; font-weight: bold; color: #1f77b4; }
.kpi-label { color: #666; margin-top: 5px; }
table { width: 100%; border-collapse: collapse; margin: 20px 0; }
th, td { padding: 12px; text-align: left; border-bottom: 1px solid #ddd; }
th { background-color: #1f77b4; color: white; }
tr:hover { background-color: #f5f5f5; }
.alert { padding: 10px; margin: 10px 0; border-radius: 5px; }
.alert-error { background-color: #ffebee; border-left: 4px solid #f44336; }
.alert-warning { background-color: #fff3e0; border-left: 4px solid #ff9800; }
.alert-info { background-color: #e3f2fd; border-left: 4px solid #2196f3; }
.more { color: #666; font-style: italic; }
.footer { margin-top: 40px; padding-top: 20px; border-top: 1px solid #ddd; text-align: center; color: #666; }
</style>
</head>
<body>
<div class="container">
<h1>Schedule Analysis Report</h1>
<p><strong>Source:</strong> {{.Source}} &mdash; <strong>Generated:</strong> {{.GeneratedAt}}</p>

<h2>Key Figures</h2>
<div class="kpi-grid">
<div class="kpi-card"><div class="kpi-value">{{.TotalTasks}}</div><div class="kpi-label">Total tasks</div></div>
<div class="kpi-card"><div class="kpi-value">{{.CompletedTasks}}</div><div class="kpi-label">Completed tasks</div></div>
<div class="kpi-card"><div class="kpi-value">{{.CompletionRate}}</div><div class="kpi-label">Completion rate</div></div>
<div class="kpi-card"><div class="kpi-value">{{.TotalValue}}</div><div class="kpi-label">Total value</div></div>
</div>
{{if .EarnedValue}}
<h2>Earned Value</h2>
<table>
<tr><th>Planned value</th><th>Earned value</th><th>SPI</th><th>Status</th></tr>
<tr><td>{{.EarnedValue.PlannedValue}}</td><td>{{.EarnedValue.EarnedValue}}</td><td>{{.EarnedValue.SPI}}</td><td>{{.EarnedValue.Status}}</td></tr>
</table>
{{end}}
<h2>Alerts &amp; Validation</h2>
<p><strong>Total alerts:</strong> {{.TotalAlerts}}</p>
{{range .Alerts}}<div class="alert alert-{{.Severity}}">{{.Message}}</div>
{{end}}{{if .MoreAlerts}}<p class="more">&hellip; and {{.MoreAlerts}} more</p>{{end}}

<h2>Tasks (sample)</h2>
<table>
<tr><th>Block</th><th>Phase</th><th>Task</th><th>Start</th><th>End</th><th>Duration</th><th>Progress</th></tr>
{{range .Tasks}}<tr><td>{{.Bloc}}</td><td>{{.Phase}}</td><td>{{.Task}}</td><td>{{.Start}}</td><td>{{.End}}</td><td>{{.Duration}}</td><td>{{.Progress}}</td></tr>
{{end}}</table>
{{if .MoreTasks}}<p class="more">&hellip; and {{.MoreTasks}} more tasks</p>{{end}}

<div class="footer"><p>Generated by chantier</p></div>
</div>
</body>
</html>
`))
