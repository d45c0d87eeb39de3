// Package validate runs the schedule quality rules over a normalized dataset.
//
// Every rule is a pure function of the full row set and a reference time; it
// filters internally to the rows it cares about and returns findings, never
// errors. Findings are data-quality observations: an empty result means "no
// issues found", not "validation did not run".
package validate

import (
	"time"

	"github.com/avernier/chantier/internal/domain"
)

// Rule inspects the full normalized row set and returns its findings.
// Rules are stateless and never interact with each other.
type Rule func(rows []domain.Row, now time.Time) []domain.Alert

// Rules returns the fixed rule battery in evaluation order. The order
// determines output order; it is part of the engine's contract.
func Rules() []Rule {
	return []Rule{
		checkMissingDates,
		checkDurationCoherence,
		checkProgressRange,
		checkDateOrder,
		checkOrphanTasks,
		checkOverlappingTasks,
		checkMissingValues,
		checkFutureProgress,
	}
}

// Run evaluates every rule against rows and concatenates the findings in
// rule order. The reference time is injected so results are deterministic
// for identical input.
func Run(rows []domain.Row, now time.Time) []domain.Alert {
	var alerts []domain.Alert
	for _, rule := range Rules() {
		alerts = append(alerts, rule(rows, now)...)
	}
	return alerts
}

// Summarize tallies alerts per severity. Alerts with a severity outside the
// known set still count toward Total.
func Summarize(alerts []domain.Alert) domain.Summary {
	summary := domain.Summary{Total: len(alerts)}
	for _, a := range alerts {
		switch a.Severity {
		case domain.SeverityError:
			summary.Errors++
		case domain.SeverityWarning:
			summary.Warnings++
		case domain.SeverityInfo:
			summary.Infos++
		}
	}
	return summary
}
