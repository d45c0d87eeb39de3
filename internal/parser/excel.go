package parser

import (
	"errors"
	"io"

	"github.com/xuri/excelize/v2"
)

var errEmptySheet = errors.New("first sheet has no rows")

// ReadWorkbookFile reads the first sheet of an xlsx workbook into a Table.
func ReadWorkbookFile(path string) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, &ParseError{Source: path, Err: err}
	}
	defer f.Close()
	return firstSheetTable(f, path)
}

// ReadWorkbook reads the first sheet of an xlsx workbook from r. The first
// row is taken as the header row; cells come back as the formatted text
// excelize renders for them.
func ReadWorkbook(r io.Reader) (Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Table{}, &ParseError{Source: "workbook", Err: err}
	}
	defer f.Close()
	return firstSheetTable(f, "workbook")
}

func firstSheetTable(f *excelize.File, source string) (Table, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, &ParseError{Source: source, Err: errEmptySheet}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Table{}, &ParseError{Source: source, Err: err}
	}
	if len(rows) == 0 {
		return Table{}, &ParseError{Source: source, Err: errEmptySheet}
	}

	return Table{Headers: rows[0], Records: rows[1:]}, nil
}
