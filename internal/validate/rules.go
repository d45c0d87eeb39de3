package validate

import (
	"fmt"
	"sort"
	"time"

	"github.com/avernier/chantier/internal/domain"
)

// checkMissingDates flags task rows lacking a start or end date. Both checks
// fire independently, so a fully undated task yields two errors.
func checkMissingDates(rows []domain.Row, _ time.Time) []domain.Alert {
	var alerts []domain.Alert
	for _, r := range domain.TaskRows(rows) {
		if r.StartDate == nil {
			alerts = append(alerts, rowAlert(domain.SeverityError, r,
				fmt.Sprintf("Missing start date: %s", r.Label())))
		}
		if r.EndDate == nil {
			alerts = append(alerts, rowAlert(domain.SeverityError, r,
				fmt.Sprintf("Missing end date: %s", r.Label())))
		}
	}
	return alerts
}

// checkDurationCoherence compares the stated duration against the date span.
// A one-day discrepancy is tolerated since schedules disagree on whether the
// end day is inclusive.
func checkDurationCoherence(rows []domain.Row, _ time.Time) []domain.Alert {
	var alerts []domain.Alert
	for _, r := range domain.TaskRows(rows) {
		if !r.HasDates() || r.Duration == nil {
			continue
		}
		computed := int(r.EndDate.Sub(*r.StartDate).Hours() / 24)
		stated := *r.Duration
		if abs(computed-stated) > 1 {
			alerts = append(alerts, rowAlert(domain.SeverityWarning, r,
				fmt.Sprintf("Duration mismatch: %s (computed: %dd, stated: %dd)", r.Label(), computed, stated)))
		}
	}
	return alerts
}

// checkProgressRange flags progress values outside [0, 100].
func checkProgressRange(rows []domain.Row, _ time.Time) []domain.Alert {
	var alerts []domain.Alert
	for _, r := range domain.TaskRows(rows) {
		if r.Progress == nil {
			continue
		}
		if *r.Progress < 0 || *r.Progress > 100 {
			alerts = append(alerts, rowAlert(domain.SeverityError, r,
				fmt.Sprintf("Invalid progress (%g%%): %s", *r.Progress, r.Label())))
		}
	}
	return alerts
}

// checkDateOrder flags tasks whose start date does not precede the end date.
func checkDateOrder(rows []domain.Row, _ time.Time) []domain.Alert {
	var alerts []domain.Alert
	for _, r := range domain.TaskRows(rows) {
		if !r.HasDates() {
			continue
		}
		if !r.StartDate.Before(*r.EndDate) {
			alerts = append(alerts, rowAlert(domain.SeverityError, r,
				fmt.Sprintf("End date before start date: %s", r.Label())))
		}
	}
	return alerts
}

// checkOrphanTasks flags tasks missing a block (warning) or phase (info)
// attribution. Both can fire for one row.
func checkOrphanTasks(rows []domain.Row, _ time.Time) []domain.Alert {
	var alerts []domain.Alert
	for _, r := range domain.TaskRows(rows) {
		if r.Bloc == nil {
			alerts = append(alerts, rowAlert(domain.SeverityWarning, r,
				fmt.Sprintf("Task without block: %s", r.Label())))
		}
		if r.Phase == nil {
			alerts = append(alerts, rowAlert(domain.SeverityInfo, r,
				fmt.Sprintf("Task without phase: %s", r.Label())))
		}
	}
	return alerts
}

// checkOverlappingTasks detects schedule overlaps inside each phase. Tasks
// are sorted by start date and only adjacent pairs are compared; a task fully
// nested inside an earlier, non-adjacent span is deliberately not flagged.
func checkOverlappingTasks(rows []domain.Row, _ time.Time) []domain.Alert {
	var dated []domain.Row
	for _, r := range domain.TaskRows(rows) {
		if r.Phase != nil && r.HasDates() {
			dated = append(dated, r)
		}
	}

	// Group by phase, keeping first-appearance order for deterministic output.
	var phases []string
	byPhase := make(map[string][]domain.Row)
	for _, r := range dated {
		if _, seen := byPhase[*r.Phase]; !seen {
			phases = append(phases, *r.Phase)
		}
		byPhase[*r.Phase] = append(byPhase[*r.Phase], r)
	}

	var alerts []domain.Alert
	for _, phase := range phases {
		tasks := byPhase[phase]
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].StartDate.Before(*tasks[j].StartDate)
		})
		for i := 0; i < len(tasks)-1; i++ {
			current, next := tasks[i], tasks[i+1]
			if current.EndDate.After(*next.StartDate) {
				alerts = append(alerts, rowAlert(domain.SeverityInfo, current,
					fmt.Sprintf("Overlap: %s and %s", current.Label(), next.Label())))
			}
		}
	}
	return alerts
}

// checkMissingValues emits a single dataset-level finding counting the tasks
// without a financial value.
func checkMissingValues(rows []domain.Row, _ time.Time) []domain.Alert {
	missing := 0
	for _, r := range domain.TaskRows(rows) {
		if r.Value == nil {
			missing++
		}
	}
	if missing == 0 {
		return nil
	}
	return []domain.Alert{{
		Severity: domain.SeverityInfo,
		Message:  fmt.Sprintf("%d tasks without financial value", missing),
	}}
}

// checkFutureProgress flags tasks that report progress before their start
// date has arrived.
func checkFutureProgress(rows []domain.Row, now time.Time) []domain.Alert {
	var alerts []domain.Alert
	for _, r := range domain.TaskRows(rows) {
		if r.StartDate == nil || r.Progress == nil {
			continue
		}
		if r.StartDate.After(now) && *r.Progress > 0 {
			alerts = append(alerts, rowAlert(domain.SeverityWarning, r,
				fmt.Sprintf("Future task already in progress: %s (%g%%)", r.Label(), *r.Progress)))
		}
	}
	return alerts
}

func rowAlert(severity domain.Severity, r domain.Row, message string) domain.Alert {
	idx := r.Index
	return domain.Alert{Severity: severity, Message: message, Row: &idx}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
