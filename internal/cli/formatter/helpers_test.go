package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name   string
		pct    float64
		filled int
	}{
		{"empty", 0, 0},
		{"half", 0.5, 5},
		{"full", 1, 10},
		{"clamped low", -0.5, 0},
		{"clamped high", 1.5, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderProgress(tt.pct, 10)
			assert.Equal(t, tt.filled, strings.Count(out, filledBlock))
			assert.Equal(t, 10-tt.filled, strings.Count(out, emptyBlock))
		})
	}
}

func TestRenderProgress_ShowsPercentage(t *testing.T) {
	assert.Contains(t, RenderProgress(0.45, 10), "45%")
	assert.Contains(t, RenderProgress(1, 10), "100%")
}

func TestRenderProgress_MinimumWidth(t *testing.T) {
	out := RenderProgress(1, 0)
	assert.Equal(t, 2, strings.Count(out, filledBlock))
}

func TestDateOrDash(t *testing.T) {
	d := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Contains(t, DateOrDash(&d), "2024-03-15")
	assert.Contains(t, DateOrDash(nil), "--")
}

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable(
		[]string{"NAME", "COUNT"},
		[][]string{
			{"a", "1"},
			{"longer name", "22"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4, "header, separator and two rows")
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[1], "─")
	assert.Contains(t, lines[3], "longer name")
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderTable_ShortRows(t *testing.T) {
	out := RenderTable([]string{"A", "B"}, [][]string{{"only"}})
	assert.Contains(t, out, "only")
}
