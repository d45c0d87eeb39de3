package parser

import (
	"fmt"
	"strings"

	"github.com/avernier/chantier/internal/domain"
)

// Table is raw tabular input: one header row plus data records, as read from
// a workbook or CSV file. Cells are untyped strings.
type Table struct {
	Headers []string
	Records [][]string
}

// Record is one mapped, not-yet-normalized schedule row. Fields holds raw
// cell text keyed by canonical field name; absent or empty cells are omitted.
type Record struct {
	Index  int
	Fields map[string]string
}

// ParseError means the input could not be read as tabular data at all.
// It aborts the pipeline before any row is classified; no partial dataset
// is returned alongside it.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse runs the full parse pass over a raw table: column mapping, hierarchy
// detection, then normalization. The returned rows are fully classified and
// typed; individual cell coercion failures surface as nil fields, never as
// errors.
func Parse(t Table) []domain.Row {
	recs := MapColumns(t)
	rows := DetectHierarchy(recs)
	return Normalize(rows, recs)
}

// MapColumns maps source columns onto the canonical schema and extracts one
// Record per data row. Headers are matched case-insensitively by keyword
// substring; the first matching source column wins and unmatched canonical
// fields stay absent.
func MapColumns(t Table) []Record {
	colIndex := mapHeaders(t.Headers)

	recs := make([]Record, len(t.Records))
	for i, raw := range t.Records {
		fields := make(map[string]string, len(colIndex))
		for field, col := range colIndex {
			if col < len(raw) {
				if v := strings.TrimSpace(raw[col]); v != "" {
					fields[field] = v
				}
			}
		}
		recs[i] = Record{Index: i, Fields: fields}
	}
	return recs
}
