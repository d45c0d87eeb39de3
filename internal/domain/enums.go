package domain

type Level string

const (
	LevelBlock Level = "block"
	LevelPhase Level = "phase"
	LevelTask  Level = "task"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

type ScheduleStatus string

const (
	ScheduleAhead  ScheduleStatus = "ahead"
	ScheduleOnTime ScheduleStatus = "on_time"
	ScheduleBehind ScheduleStatus = "behind"
)

// ValidSeverities is the canonical set of accepted alert severity strings.
var ValidSeverities = map[string]bool{
	"error": true, "warning": true, "info": true,
}
