package analytics

import "github.com/avernier/chantier/internal/domain"

// ComputeEarnedValue derives the Earned Value Management metrics from the
// tasks carrying both a value and a progress figure. Returns nil when no
// task qualifies.
//
// Planned value is the summed budget, earned value weights each budget by its
// progress, and SPI is their ratio.
func ComputeEarnedValue(rows []domain.Row) *domain.EarnedValue {
	var pv, ev float64
	eligible := 0

	for _, t := range domain.TaskRows(rows) {
		if t.Value == nil || t.Progress == nil {
			continue
		}
		eligible++
		pv += *t.Value
		ev += *t.Value * *t.Progress / 100
	}

	if eligible == 0 {
		return nil
	}

	spi := 0.0
	if pv > 0 {
		spi = ev / pv
	}

	return &domain.EarnedValue{
		PlannedValue: pv,
		EarnedValue:  ev,
		SPI:          spi,
		Status:       scheduleStatus(spi),
	}
}

func scheduleStatus(spi float64) domain.ScheduleStatus {
	switch {
	case spi >= 1.0:
		return domain.ScheduleAhead
	case spi >= 0.9:
		return domain.ScheduleOnTime
	default:
		return domain.ScheduleBehind
	}
}
