package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/avernier/chantier/internal/domain"
)

// dateLayouts are tried in order when coercing a raw cell to a calendar date.
// Workbook cells arrive pre-formatted as text, so the list covers ISO dates,
// the common European day-first forms, and the default short form excelize
// renders for date-styled cells.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"02/01/2006",
	"02/01/2006 15:04",
	"2/1/06 15:04",
	"01-02-06",
	"02-01-2006",
	"2006/01/02",
}

// Normalize coerces the raw cell text of each record into the typed fields of
// the corresponding row. Every coercion failure is absorbed as a nil field;
// normalization never rejects a row. Missing durations are back-filled from
// the date span when both dates parsed.
func Normalize(rows []domain.Row, recs []Record) []domain.Row {
	out := make([]domain.Row, len(rows))

	for i, row := range rows {
		rec := recs[i]

		row.StartDate = parseDate(rec.Fields[FieldStart])
		row.EndDate = parseDate(rec.Fields[FieldEnd])
		row.Duration = parseDays(rec.Fields[FieldDuration])
		row.Progress = parseProgress(rec.Fields[FieldProgress])
		row.Value = parseNumber(rec.Fields[FieldValue])
		row.Status = optionalText(rec.Fields[FieldStatus])
		row.Responsible = optionalText(rec.Fields[FieldResponsible])

		if row.Duration == nil && row.HasDates() {
			days := daysBetween(*row.StartDate, *row.EndDate)
			row.Duration = &days
		}

		out[i] = row
	}

	return out
}

func parseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

func parseProgress(raw string) *float64 {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, "%", ""))
	return parseNumber(raw)
}

func parseNumber(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseDays(raw string) *int {
	v := parseNumber(raw)
	if v == nil {
		return nil
	}
	days := int(*v)
	return &days
}

func optionalText(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return &raw
}

func daysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}
