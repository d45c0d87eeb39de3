// Package contract defines the data shapes exchanged between the analysis
// service and its consumers (CLI rendering, exporters, persistence).
package contract

import (
	"time"

	"github.com/avernier/chantier/internal/domain"
)

// AnalysisReport is the complete outcome of one parse-validate-compute cycle
// over a schedule. Rows are the normalized, classified dataset; everything
// else is derived from them.
type AnalysisReport struct {
	ID          string              `json:"id"`
	Source      string              `json:"source"`
	GeneratedAt time.Time           `json:"generated_at"`
	Rows        []domain.Row        `json:"rows"`
	Alerts      []domain.Alert      `json:"alerts"`
	Summary     domain.Summary      `json:"summary"`
	KPIs        domain.KPISet       `json:"kpis"`
	EarnedValue *domain.EarnedValue `json:"earned_value,omitempty"`
}

// TaskCount returns the number of task-level rows in the report.
func (r *AnalysisReport) TaskCount() int {
	return len(domain.TaskRows(r.Rows))
}
