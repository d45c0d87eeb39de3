package analytics

import (
	"time"

	"github.com/avernier/chantier/internal/domain"
)

// GanttRow is one bar of a Gantt chart: a dated task flattened to concrete
// values with placeholders for missing attribution.
type GanttRow struct {
	Task     string
	Start    time.Time
	End      time.Time
	Duration int
	Progress float64
	Bloc     string
	Phase    string
}

// GanttRows flattens the dated task rows for charting, in document order.
// Tasks without both dates are skipped.
func GanttRows(rows []domain.Row) []GanttRow {
	var bars []GanttRow
	for _, t := range domain.TaskRows(rows) {
		if !t.HasDates() {
			continue
		}
		bars = append(bars, GanttRow{
			Task:     t.Label(),
			Start:    *t.StartDate,
			End:      *t.EndDate,
			Duration: domain.IntOrDefault(0, t.Duration),
			Progress: domain.Float64OrDefault(0, t.Progress),
			Bloc:     domain.StrOrDefault("(no block)", t.Bloc),
			Phase:    domain.StrOrDefault("(no phase)", t.Phase),
		})
	}
	return bars
}
