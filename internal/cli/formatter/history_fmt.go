package formatter

import (
	"fmt"

	"github.com/avernier/chantier/internal/repository"
)

// FormatHistory renders persisted analysis runs as a table, newest first.
func FormatHistory(runs []*repository.AnalysisRun) string {
	if len(runs) == 0 {
		return Dim("No saved analyses") + "\n"
	}

	headers := []string{"ID", "SOURCE", "ROWS", "TASKS", "ALERTS", "SPI", "WHEN"}
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		spi := Dim("--")
		if run.SPI != nil {
			spi = StyleFg.Render(fmt.Sprintf("%.2f", *run.SPI))
		}

		alerts := fmt.Sprintf("%s/%s/%s",
			StyleRed.Render(fmt.Sprintf("%d", run.Errors)),
			StyleYellow.Render(fmt.Sprintf("%d", run.Warnings)),
			StyleBlue.Render(fmt.Sprintf("%d", run.Infos)))

		rows = append(rows, []string{
			Dim(shortID(run.ID)),
			Bold(run.Source),
			fmt.Sprintf("%d", run.RowCount),
			fmt.Sprintf("%d", run.TaskCount),
			alerts,
			spi,
			Dim(run.CreatedAt.Format("2006-01-02 15:04")),
		})
	}
	return RenderTable(headers, rows)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
