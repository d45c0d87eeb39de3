// Package analytics computes read-only aggregates over a normalized
// schedule. Nothing here mutates rows; every metric is recomputed from
// scratch on each call.
package analytics

import (
	"github.com/avernier/chantier/internal/domain"
)

// ComputeKPIs aggregates the headline progress and financial metrics plus a
// per-block breakdown. A task counts as completed at exactly 100% progress.
func ComputeKPIs(rows []domain.Row) domain.KPISet {
	tasks := domain.TaskRows(rows)

	kpis := domain.KPISet{
		TotalTasks: len(tasks),
		ByBloc:     kpisByBloc(tasks),
	}

	durationSum, durationCount := 0, 0
	for _, t := range tasks {
		if t.Progress != nil && *t.Progress == 100 {
			kpis.CompletedTasks++
		}
		if t.Duration != nil {
			durationSum += *t.Duration
			durationCount++
		}
		if t.Value != nil {
			kpis.TotalValue += *t.Value
		}
		if t.HasDates() {
			if kpis.StartDate == nil || t.StartDate.Before(*kpis.StartDate) {
				kpis.StartDate = t.StartDate
			}
			if kpis.EndDate == nil || t.EndDate.After(*kpis.EndDate) {
				kpis.EndDate = t.EndDate
			}
		}
	}

	if kpis.TotalTasks > 0 {
		kpis.CompletionRate = float64(kpis.CompletedTasks) / float64(kpis.TotalTasks) * 100
	}
	if durationCount > 0 {
		kpis.AvgDuration = float64(durationSum) / float64(durationCount)
	}

	return kpis
}

func kpisByBloc(tasks []domain.Row) map[string]domain.BlocKPI {
	byBloc := make(map[string]domain.BlocKPI)

	progressSums := make(map[string]float64)
	progressCounts := make(map[string]int)

	for _, t := range tasks {
		if t.Bloc == nil {
			continue
		}
		bloc := *t.Bloc

		kpi := byBloc[bloc]
		kpi.TotalTasks++
		if t.Progress != nil {
			if *t.Progress == 100 {
				kpi.Completed++
			}
			progressSums[bloc] += *t.Progress
			progressCounts[bloc]++
		}
		if t.Value != nil {
			kpi.TotalValue += *t.Value
		}
		byBloc[bloc] = kpi
	}

	for bloc, kpi := range byBloc {
		if kpi.TotalTasks > 0 {
			kpi.CompletionRate = float64(kpi.Completed) / float64(kpi.TotalTasks) * 100
		}
		if progressCounts[bloc] > 0 {
			kpi.AvgProgress = progressSums[bloc] / float64(progressCounts[bloc])
		}
		byBloc[bloc] = kpi
	}

	return byBloc
}
