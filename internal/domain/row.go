package domain

import "time"

// Row is one schedule entry after column mapping and normalization.
// Optional fields are nil pointers. Rows are created once per parse and are
// not mutated afterwards; Level, Bloc and Phase are written exactly once by
// the hierarchy detector during the parse pass.
type Row struct {
	Index       int        `json:"index"`
	Level       Level      `json:"level"`
	Bloc        *string    `json:"bloc,omitempty"`
	Phase       *string    `json:"phase,omitempty"`
	TaskName    string     `json:"task_name"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Duration    *int       `json:"duration,omitempty"` // days; stated in source or derived from the date span
	Progress    *float64   `json:"progress,omitempty"`
	Status      *string    `json:"status,omitempty"`
	Responsible *string    `json:"responsible,omitempty"`
	Value       *float64   `json:"value,omitempty"`
}

// TaskRows returns the task-level rows of the dataset in document order.
func TaskRows(rows []Row) []Row {
	var tasks []Row
	for _, r := range rows {
		if r.Level == LevelTask {
			tasks = append(tasks, r)
		}
	}
	return tasks
}

// Label returns the task name, or a placeholder when the source cell was empty.
func (r Row) Label() string {
	if r.TaskName == "" {
		return "N/A"
	}
	return r.TaskName
}

// HasDates reports whether both the start and end date are present.
func (r Row) HasDates() bool {
	return r.StartDate != nil && r.EndDate != nil
}
