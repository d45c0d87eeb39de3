package parser

import "strings"

// Canonical field names produced by the column mapper.
const (
	FieldBloc        = "bloc"
	FieldPhase       = "phase"
	FieldTask        = "task"
	FieldStart       = "start"
	FieldEnd         = "end"
	FieldDuration    = "duration"
	FieldProgress    = "progress"
	FieldStatus      = "status"
	FieldResponsible = "responsible"
	FieldValue       = "value"
)

// columnKeywords maps each canonical field to the header keywords that
// identify it. French and English synonyms are both accepted since schedules
// circulate in either. Order matters: earlier fields claim columns first.
var columnKeywords = []struct {
	field    string
	keywords []string
}{
	{FieldBloc, []string{"bloc", "block", "lot", "secteur"}},
	{FieldPhase, []string{"phase", "etape", "step"}},
	{FieldTask, []string{"tache", "tâche", "task", "activite", "activité"}},
	{FieldStart, []string{"debut", "début", "start", "date_debut", "date début"}},
	{FieldEnd, []string{"fin", "end", "date_fin", "date fin"}},
	{FieldDuration, []string{"duree", "durée", "duration", "jours"}},
	{FieldProgress, []string{"avancement", "progress", "%", "pourcent"}},
	{FieldStatus, []string{"statut", "status", "etat", "état"}},
	{FieldResponsible, []string{"responsable", "responsible", "pilote"}},
	{FieldValue, []string{"valeur", "value", "montant", "cout", "coût"}},
}

// mapHeaders resolves each canonical field to a source column index.
// Headers are trimmed and lower-cased before the substring match; the first
// column containing any keyword wins and unmatched fields are left out.
func mapHeaders(headers []string) map[string]int {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = strings.ToLower(strings.TrimSpace(h))
	}

	colIndex := make(map[string]int, len(columnKeywords))
	for _, ck := range columnKeywords {
		for col, header := range normalized {
			if headerMatches(header, ck.keywords) {
				colIndex[ck.field] = col
				break
			}
		}
	}
	return colIndex
}

func headerMatches(header string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(header, kw) {
			return true
		}
	}
	return false
}
