// Package export renders an analysis report into workbook and HTML
// artifacts. It only reads the report; persistence of the files is up to the
// caller.
package export

import (
	"fmt"
	"io"

	"github.com/avernier/chantier/internal/analytics"
	"github.com/avernier/chantier/internal/contract"
	"github.com/avernier/chantier/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	sheetSchedule = "Schedule"
	sheetTasks    = "Tasks"
	sheetGantt    = "Gantt"
	sheetBlocks   = "Blocks"

	dateNumFmt  = "dd/mm/yyyy"
	valueNumFmt = "#,##0"
)

var scheduleHeaders = []any{
	"Level", "Block", "Phase", "Task", "Start", "End",
	"Duration (d)", "Progress (%)", "Status", "Responsible", "Value",
}

// WriteWorkbook renders the report into an xlsx workbook with four sheets:
// the full dataset, the task rows only, the dated tasks flattened for
// charting, and the block list.
func WriteWorkbook(report *contract.AnalysisReport) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", sheetSchedule); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}
	for _, sheet := range []string{sheetTasks, sheetGantt, sheetBlocks} {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("creating %s sheet: %w", sheet, err)
		}
	}

	if err := writeRowSheet(f, sheetSchedule, report.Rows); err != nil {
		return nil, err
	}
	if err := writeRowSheet(f, sheetTasks, domain.TaskRows(report.Rows)); err != nil {
		return nil, err
	}
	if err := writeGanttSheet(f, report.Rows); err != nil {
		return nil, err
	}
	if err := writeBlockSheet(f, report.Rows); err != nil {
		return nil, err
	}

	return f, nil
}

// SaveWorkbook renders the report and writes the workbook to path.
func SaveWorkbook(report *contract.AnalysisReport, path string) error {
	f, err := WriteWorkbook(report)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

// StreamWorkbook renders the report and writes the workbook bytes to w.
func StreamWorkbook(report *contract.AnalysisReport, w io.Writer) error {
	f, err := WriteWorkbook(report)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeRowSheet(f *excelize.File, sheet string, rows []domain.Row) error {
	if err := f.SetSheetRow(sheet, "A1", &scheduleHeaders); err != nil {
		return fmt.Errorf("writing %s headers: %w", sheet, err)
	}

	for i, r := range rows {
		cells := []any{
			string(r.Level),
			domain.StrOrDefault("", r.Bloc),
			domain.StrOrDefault("", r.Phase),
			r.TaskName,
			optionalCell(r.StartDate),
			optionalCell(r.EndDate),
			optionalCell(r.Duration),
			optionalCell(r.Progress),
			domain.StrOrDefault("", r.Status),
			domain.StrOrDefault("", r.Responsible),
			optionalCell(r.Value),
		}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("computing cell address: %w", err)
		}
		if err := f.SetSheetRow(sheet, addr, &cells); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i, err)
		}
	}

	return styleRowSheet(f, sheet, len(rows))
}

func styleRowSheet(f *excelize.File, sheet string, rowCount int) error {
	dateFmt := dateNumFmt
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt})
	if err != nil {
		return fmt.Errorf("creating date style: %w", err)
	}
	valueFmt := valueNumFmt
	valueStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &valueFmt})
	if err != nil {
		return fmt.Errorf("creating value style: %w", err)
	}

	if rowCount > 0 {
		last := rowCount + 1
		if err := f.SetCellStyle(sheet, "E2", fmt.Sprintf("F%d", last), dateStyle); err != nil {
			return fmt.Errorf("styling date columns: %w", err)
		}
		if err := f.SetCellStyle(sheet, "K2", fmt.Sprintf("K%d", last), valueStyle); err != nil {
			return fmt.Errorf("styling value column: %w", err)
		}
	}

	if err := f.SetColWidth(sheet, "D", "D", 32); err != nil {
		return fmt.Errorf("sizing task column: %w", err)
	}
	if err := f.SetColWidth(sheet, "E", "F", 12); err != nil {
		return fmt.Errorf("sizing date columns: %w", err)
	}
	return nil
}

func writeGanttSheet(f *excelize.File, rows []domain.Row) error {
	headers := []any{"Task", "Block", "Phase", "Start", "End", "Duration (d)", "Progress (%)"}
	if err := f.SetSheetRow(sheetGantt, "A1", &headers); err != nil {
		return fmt.Errorf("writing gantt headers: %w", err)
	}

	bars := analytics.GanttRows(rows)
	for i, bar := range bars {
		cells := []any{bar.Task, bar.Bloc, bar.Phase, bar.Start, bar.End, bar.Duration, bar.Progress}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("computing cell address: %w", err)
		}
		if err := f.SetSheetRow(sheetGantt, addr, &cells); err != nil {
			return fmt.Errorf("writing gantt row %d: %w", i, err)
		}
	}

	if len(bars) > 0 {
		dateFmt := dateNumFmt
		dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt})
		if err != nil {
			return fmt.Errorf("creating date style: %w", err)
		}
		if err := f.SetCellStyle(sheetGantt, "D2", fmt.Sprintf("E%d", len(bars)+1), dateStyle); err != nil {
			return fmt.Errorf("styling gantt dates: %w", err)
		}
	}
	return f.SetColWidth(sheetGantt, "A", "C", 24)
}

func writeBlockSheet(f *excelize.File, rows []domain.Row) error {
	headers := []any{"Block"}
	if err := f.SetSheetRow(sheetBlocks, "A1", &headers); err != nil {
		return fmt.Errorf("writing block headers: %w", err)
	}

	line := 2
	seen := make(map[string]bool)
	for _, r := range rows {
		if r.Level != domain.LevelBlock || r.Bloc == nil || seen[*r.Bloc] {
			continue
		}
		seen[*r.Bloc] = true
		if err := f.SetCellValue(sheetBlocks, fmt.Sprintf("A%d", line), *r.Bloc); err != nil {
			return fmt.Errorf("writing block row: %w", err)
		}
		line++
	}
	return nil
}

// optionalCell maps a nil pointer to an empty cell and anything else to its
// dereferenced value.
func optionalCell[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
