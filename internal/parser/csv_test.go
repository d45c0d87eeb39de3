package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avernier/chantier/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	input := strings.Join([]string{
		"Task,Start,End,Progress,Value",
		"FOUNDATIONS,,,,",
		"1.1 - Earthworks,,,,",
		"Strip site,2024-01-01,2024-01-06,100%,50000",
	}, "\n")

	table, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"Task", "Start", "End", "Progress", "Value"}, table.Headers)
	require.Len(t, table.Records, 3)

	rows := Parse(table)
	require.Len(t, rows, 3)
	assert.Equal(t, domain.LevelTask, rows[2].Level)
	require.NotNil(t, rows[2].Bloc)
	assert.Equal(t, "FOUNDATIONS", *rows[2].Bloc)
}

func TestReadCSV_RaggedRecords(t *testing.T) {
	input := "Task,Start,End\nFOUNDATIONS\nStrip site,2024-01-01,2024-01-06"

	table, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, table.Records, 2)
	assert.Len(t, table.Records[0], 1)
	assert.Len(t, table.Records[1], 3)
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	require.Error(t, err)

	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestReadCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.csv")
	require.NoError(t, os.WriteFile(path, []byte("Task,Start\nFOUNDATIONS,\n"), 0o644))

	table, err := ReadCSVFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Task", "Start"}, table.Headers)
	require.Len(t, table.Records, 1)
}

func TestReadCSVFile_Missing(t *testing.T) {
	_, err := ReadCSVFile("no-such-file.csv")
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "no-such-file.csv", parseErr.Source)
}
