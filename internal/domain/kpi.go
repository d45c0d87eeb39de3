package domain

import "time"

// KPISet holds dataset-wide progress and financial aggregates. It is
// recomputed from scratch on every request and never mutates rows.
type KPISet struct {
	TotalTasks     int                `json:"total_tasks"`
	CompletedTasks int                `json:"completed_tasks"`
	CompletionRate float64            `json:"completion_rate"` // percent
	AvgDuration    float64            `json:"avg_duration"`    // days
	TotalValue     float64            `json:"total_value"`
	StartDate      *time.Time         `json:"start_date,omitempty"`
	EndDate        *time.Time         `json:"end_date,omitempty"`
	ByBloc         map[string]BlocKPI `json:"by_bloc,omitempty"`
}

// BlocKPI is the per-block KPI breakdown.
type BlocKPI struct {
	TotalTasks     int     `json:"total_tasks"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completion_rate"`
	AvgProgress    float64 `json:"avg_progress"`
	TotalValue     float64 `json:"total_value"`
}

// EarnedValue holds the Earned Value Management metrics. A nil *EarnedValue
// means no task carried both a value and a progress figure.
type EarnedValue struct {
	PlannedValue float64        `json:"planned_value"`
	EarnedValue  float64        `json:"earned_value"`
	SPI          float64        `json:"spi"`
	Status       ScheduleStatus `json:"status"`
}
