package testutil

import (
	"time"

	"github.com/avernier/chantier/internal/domain"
)

// RowOption mutates a fixture row before it is returned.
type RowOption func(*domain.Row)

func WithIndex(i int) RowOption {
	return func(r *domain.Row) { r.Index = i }
}

func WithBloc(bloc string) RowOption {
	return func(r *domain.Row) { r.Bloc = &bloc }
}

func WithPhase(phase string) RowOption {
	return func(r *domain.Row) { r.Phase = &phase }
}

func WithDates(start, end time.Time) RowOption {
	return func(r *domain.Row) {
		r.StartDate = &start
		r.EndDate = &end
	}
}

func WithStartDate(start time.Time) RowOption {
	return func(r *domain.Row) { r.StartDate = &start }
}

func WithDuration(days int) RowOption {
	return func(r *domain.Row) { r.Duration = &days }
}

func WithProgress(pct float64) RowOption {
	return func(r *domain.Row) { r.Progress = &pct }
}

func WithValue(v float64) RowOption {
	return func(r *domain.Row) { r.Value = &v }
}

// TaskRow builds a task-level fixture row with sensible attribution defaults.
func TaskRow(name string, opts ...RowOption) domain.Row {
	bloc, phase := "BLOCK A", "1.1 - Phase"
	row := domain.Row{
		Level:    domain.LevelTask,
		TaskName: name,
		Bloc:     &bloc,
		Phase:    &phase,
	}
	for _, opt := range opts {
		opt(&row)
	}
	return row
}

// BareTaskRow builds a task row with no attribution and no optional fields.
func BareTaskRow(name string, opts ...RowOption) domain.Row {
	row := domain.Row{Level: domain.LevelTask, TaskName: name}
	for _, opt := range opts {
		opt(&row)
	}
	return row
}

// BlockRow builds a block header row.
func BlockRow(label string) domain.Row {
	return domain.Row{Level: domain.LevelBlock, TaskName: label, Bloc: &label}
}

// PhaseRow builds a phase header row under the given block.
func PhaseRow(label, bloc string) domain.Row {
	return domain.Row{Level: domain.LevelPhase, TaskName: label, Phase: &label, Bloc: &bloc}
}

// Date is shorthand for a UTC midnight date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
