package parser

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
)

var errEmptyCSV = errors.New("no rows")

// ReadCSVFile reads a CSV schedule export into a Table.
func ReadCSVFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, &ParseError{Source: path, Err: err}
	}
	defer f.Close()
	return readCSV(f, path)
}

// ReadCSV reads CSV data from r. The first record is the header row; ragged
// records are tolerated since hand-edited exports rarely pad every column.
func ReadCSV(r io.Reader) (Table, error) {
	return readCSV(r, "csv")
}

func readCSV(r io.Reader, source string) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return Table{}, &ParseError{Source: source, Err: err}
	}
	if len(records) == 0 {
		return Table{}, &ParseError{Source: source, Err: errEmptyCSV}
	}

	return Table{Headers: records[0], Records: records[1:]}, nil
}
