package analytics

import (
	"testing"

	"github.com/avernier/chantier/internal/domain"
	"github.com/avernier/chantier/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGanttRows(t *testing.T) {
	rows := []domain.Row{
		testutil.BlockRow("FOUNDATIONS"),
		testutil.TaskRow("strip site",
			testutil.WithDates(testutil.Date(2024, 1, 1), testutil.Date(2024, 1, 6)),
			testutil.WithDuration(5),
			testutil.WithProgress(80),
		),
		testutil.TaskRow("undated"),
	}

	bars := GanttRows(rows)
	require.Len(t, bars, 1, "undated tasks and headers carry no bar")

	bar := bars[0]
	assert.Equal(t, "strip site", bar.Task)
	assert.True(t, testutil.Date(2024, 1, 1).Equal(bar.Start))
	assert.True(t, testutil.Date(2024, 1, 6).Equal(bar.End))
	assert.Equal(t, 5, bar.Duration)
	assert.Equal(t, 80.0, bar.Progress)
	assert.Equal(t, "BLOCK A", bar.Bloc)
	assert.Equal(t, "1.1 - Phase", bar.Phase)
}

func TestGanttRows_Placeholders(t *testing.T) {
	rows := []domain.Row{
		testutil.BareTaskRow("orphan",
			testutil.WithDates(testutil.Date(2024, 1, 1), testutil.Date(2024, 1, 6))),
	}

	bars := GanttRows(rows)
	require.Len(t, bars, 1)
	assert.Equal(t, "(no block)", bars[0].Bloc)
	assert.Equal(t, "(no phase)", bars[0].Phase)
	assert.Zero(t, bars[0].Duration)
	assert.Zero(t, bars[0].Progress)
}
