package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/avernier/chantier/internal/domain"
	"github.com/avernier/chantier/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRun(id string, createdAt time.Time) *AnalysisRun {
	spi := 0.85
	return &AnalysisRun{
		ID:          id,
		Source:      "site.xlsx",
		RowCount:    21,
		TaskCount:   14,
		Errors:      1,
		Warnings:    2,
		Infos:       3,
		TotalAlerts: 6,
		TotalValue:  2235000,
		SPI:         &spi,
		CreatedAt:   createdAt,
	}
}

func TestSQLiteAnalysisRepo_SaveAndGet(t *testing.T) {
	repo := NewSQLiteAnalysisRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	created := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	idx := 4
	alerts := []domain.Alert{
		{Severity: domain.SeverityError, Message: "Missing start date: pour slab", Row: &idx},
		{Severity: domain.SeverityInfo, Message: "3 tasks without financial value"},
	}

	require.NoError(t, repo.Save(ctx, testRun("run-1", created), alerts))

	got, err := repo.GetByID(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "site.xlsx", got.Source)
	assert.Equal(t, 21, got.RowCount)
	assert.Equal(t, 14, got.TaskCount)
	assert.Equal(t, 1, got.Errors)
	assert.Equal(t, 2, got.Warnings)
	assert.Equal(t, 3, got.Infos)
	assert.Equal(t, 6, got.TotalAlerts)
	assert.Equal(t, 2235000.0, got.TotalValue)
	require.NotNil(t, got.SPI)
	assert.Equal(t, 0.85, *got.SPI)
	assert.True(t, created.Equal(got.CreatedAt))
}

func TestSQLiteAnalysisRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteAnalysisRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteAnalysisRepo_NilSPIRoundTrips(t *testing.T) {
	repo := NewSQLiteAnalysisRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	run := testRun("run-1", time.Now().UTC())
	run.SPI = nil
	require.NoError(t, repo.Save(ctx, run, nil))

	got, err := repo.GetByID(ctx, "run-1")
	require.NoError(t, err)
	assert.Nil(t, got.SPI)
}

func TestSQLiteAnalysisRepo_List(t *testing.T) {
	repo := NewSQLiteAnalysisRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		run := testRun(fmt.Sprintf("run-%d", i), base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, repo.Save(ctx, run, nil))
	}

	runs, err := repo.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "run-4", runs[0].ID, "newest first")
	assert.Equal(t, "run-3", runs[1].ID)
	assert.Equal(t, "run-2", runs[2].ID)
}

func TestSQLiteAnalysisRepo_List_DefaultLimit(t *testing.T) {
	repo := NewSQLiteAnalysisRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		run := testRun(fmt.Sprintf("run-%02d", i), base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, repo.Save(ctx, run, nil))
	}

	runs, err := repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, runs, 20)
}

func TestSQLiteAnalysisRepo_List_Empty(t *testing.T) {
	repo := NewSQLiteAnalysisRepo(testutil.NewTestDB(t))

	runs, err := repo.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestSQLiteAnalysisRepo_AlertsFor(t *testing.T) {
	repo := NewSQLiteAnalysisRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	idx := 7
	alerts := []domain.Alert{
		{Severity: domain.SeverityError, Message: "Missing end date: ground beams", Row: &idx},
		{Severity: domain.SeverityInfo, Message: "2 tasks without financial value"},
	}
	require.NoError(t, repo.Save(ctx, testRun("run-1", time.Now().UTC()), alerts))
	require.NoError(t, repo.Save(ctx, testRun("run-2", time.Now().UTC()), []domain.Alert{
		{Severity: domain.SeverityWarning, Message: "other run"},
	}))

	got, err := repo.AlertsFor(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, got, 2, "only the requested run's alerts come back")

	assert.Equal(t, domain.SeverityError, got[0].Severity)
	assert.Equal(t, "Missing end date: ground beams", got[0].Message)
	require.NotNil(t, got[0].Row)
	assert.Equal(t, 7, *got[0].Row)

	assert.Equal(t, domain.SeverityInfo, got[1].Severity)
	assert.Nil(t, got[1].Row, "dataset-level findings persist without a row index")
}

func TestSQLiteAnalysisRepo_SaveDuplicateIDFails(t *testing.T) {
	repo := NewSQLiteAnalysisRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	run := testRun("run-1", time.Now().UTC())
	require.NoError(t, repo.Save(ctx, run, nil))
	assert.Error(t, repo.Save(ctx, run, nil))
}
