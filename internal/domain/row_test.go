package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRows(t *testing.T) {
	rows := []Row{
		{Index: 0, Level: LevelBlock},
		{Index: 1, Level: LevelPhase},
		{Index: 2, Level: LevelTask},
		{Index: 3, Level: LevelTask},
	}

	tasks := TaskRows(rows)
	require.Len(t, tasks, 2)
	assert.Equal(t, 2, tasks[0].Index)
	assert.Equal(t, 3, tasks[1].Index)
}

func TestRowLabel(t *testing.T) {
	assert.Equal(t, "pour slab", Row{TaskName: "pour slab"}.Label())
	assert.Equal(t, "N/A", Row{}.Label())
}

func TestRowHasDates(t *testing.T) {
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.False(t, Row{}.HasDates())
	assert.False(t, Row{StartDate: &d}.HasDates())
	assert.True(t, Row{StartDate: &d, EndDate: &d}.HasDates())
}

func TestCoalesceStr(t *testing.T) {
	assert.Equal(t, "a", CoalesceStr("", "a", "b"))
	assert.Equal(t, "", CoalesceStr("", ""))
}

func TestOrDefaultHelpers(t *testing.T) {
	s := "x"
	assert.Equal(t, "x", StrOrDefault("fallback", &s))
	assert.Equal(t, "fallback", StrOrDefault("fallback", nil))

	n := 3
	assert.Equal(t, 3, IntOrDefault(7, &n))
	assert.Equal(t, 7, IntOrDefault(7, nil))

	f := 1.5
	assert.Equal(t, 1.5, Float64OrDefault(9, &f))
	assert.Equal(t, 9.0, Float64OrDefault(9, nil))
}
