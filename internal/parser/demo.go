package parser

import (
	"time"

	"github.com/avernier/chantier/internal/domain"
)

// demoTask is one generated task: name, duration in days, progress percent
// and financial value.
type demoTask struct {
	name     string
	duration int
	progress float64
	value    float64
}

type demoPhase struct {
	label string
	tasks []demoTask
}

type demoBlock struct {
	label  string
	phases []demoPhase
}

var demoBlocks = []demoBlock{
	{
		label: "INFRASTRUCTURE",
		phases: []demoPhase{
			{label: "1.1 - Earthworks", tasks: []demoTask{
				{"Site stripping", 5, 100, 50000},
				{"Bulk excavation", 10, 100, 120000},
				{"Backfilling", 7, 80, 85000},
			}},
			{label: "1.2 - Foundations", tasks: []demoTask{
				{"Concrete footings", 8, 100, 180000},
				{"Ground beams", 6, 90, 140000},
				{"Retaining walls", 12, 60, 220000},
			}},
		},
	},
	{
		label: "STRUCTURE",
		phases: []demoPhase{
			{label: "2.1 - Superstructure", tasks: []demoTask{
				{"Ground floor columns", 10, 100, 250000},
				{"Ground floor beams", 8, 100, 180000},
				{"Ground floor slab", 6, 70, 200000},
				{"First floor columns", 10, 40, 250000},
				{"First floor beams", 8, 20, 180000},
			}},
		},
	},
	{
		label: "FINISHING WORKS",
		phases: []demoPhase{
			{label: "3.1 - Electrical", tasks: []demoTask{
				{"Chasing and conduits", 15, 0, 120000},
				{"General wiring", 20, 0, 180000},
				{"Distribution boards", 5, 0, 80000},
			}},
		},
	},
}

// DemoSchedule generates a fully classified demonstration schedule: three
// blocks with phased, back-to-back dated tasks starting from a fixed base
// date. Useful for trying the tool without a workbook at hand.
func DemoSchedule() []domain.Row {
	var rows []domain.Row
	cursor := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	for _, block := range demoBlocks {
		bloc := block.label
		rows = append(rows, domain.Row{
			Index:    len(rows),
			Level:    domain.LevelBlock,
			Bloc:     &bloc,
			TaskName: block.label,
		})

		for _, phase := range block.phases {
			ph := phase.label
			rows = append(rows, domain.Row{
				Index:    len(rows),
				Level:    domain.LevelPhase,
				Bloc:     &bloc,
				Phase:    &ph,
				TaskName: phase.label,
			})

			for _, task := range phase.tasks {
				start := cursor
				end := cursor.AddDate(0, 0, task.duration)
				duration := task.duration
				progress := task.progress
				value := task.value
				status := demoStatus(task.progress)

				rows = append(rows, domain.Row{
					Index:     len(rows),
					Level:     domain.LevelTask,
					Bloc:      &bloc,
					Phase:     &ph,
					TaskName:  task.name,
					StartDate: &start,
					EndDate:   &end,
					Duration:  &duration,
					Progress:  &progress,
					Value:     &value,
					Status:    &status,
				})
				cursor = end
			}
		}
	}

	return rows
}

func demoStatus(progress float64) string {
	switch {
	case progress == 100:
		return "completed"
	case progress > 0:
		return "in progress"
	default:
		return "not started"
	}
}
