package parser

import (
	"unicode"
	"unicode/utf8"

	"github.com/avernier/chantier/internal/domain"
)

// DetectHierarchy classifies every record as block, phase or task in a single
// forward pass and propagates the enclosing block/phase labels onto each row.
//
// Classification looks only at the task text and the presence of a raw start
// cell, in priority order:
//
//  1. entirely upper-case text without a start date opens a new block and
//     resets the running phase;
//  2. text whose first rune is a digit, or which starts with a dash, without
//     a start date opens a new phase under the running block;
//  3. anything else is a task attributed to the running block and phase.
//
// There is no lookahead: classifying row i never depends on rows after i, so
// a mislabeled header skews attribution until the next matching header. Rows
// with no task text stay at the default task classification with nil
// block/phase.
func DetectHierarchy(recs []Record) []domain.Row {
	rows := make([]domain.Row, len(recs))

	var currentBloc, currentPhase *string
	for i, rec := range recs {
		row := domain.Row{Index: rec.Index, Level: domain.LevelTask}

		text, ok := rec.Fields[FieldTask]
		if !ok || text == "" {
			rows[i] = row
			continue
		}
		row.TaskName = text

		_, hasStart := rec.Fields[FieldStart]

		switch {
		case isUpperCase(text) && !hasStart:
			row.Level = domain.LevelBlock
			label := text
			row.Bloc = &label
			currentBloc = &label
			currentPhase = nil

		case startsPhaseMarker(text) && !hasStart:
			row.Level = domain.LevelPhase
			label := text
			row.Phase = &label
			row.Bloc = currentBloc
			currentPhase = &label

		default:
			row.Level = domain.LevelTask
			row.Bloc = currentBloc
			row.Phase = currentPhase
		}

		rows[i] = row
	}

	return rows
}

// isUpperCase reports whether s counts as an all-caps block header: at least
// one cased rune and no lower-case rune. Strings with no cased runes at all
// (pure digits or punctuation) fail the test.
func isUpperCase(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}

// startsPhaseMarker reports whether s opens with a phase marker: a leading
// digit or a dash.
func startsPhaseMarker(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsDigit(r) || r == '-'
}
