package repository

import (
	"context"
	"time"

	"github.com/avernier/chantier/internal/domain"
)

// AnalysisRun is the persisted summary of one analysis: dataset size, alert
// tallies and headline financial figures.
type AnalysisRun struct {
	ID          string
	Source      string
	RowCount    int
	TaskCount   int
	Errors      int
	Warnings    int
	Infos       int
	TotalAlerts int
	TotalValue  float64
	SPI         *float64
	CreatedAt   time.Time
}

// AnalysisRepo persists analysis runs and their alerts.
type AnalysisRepo interface {
	Save(ctx context.Context, run *AnalysisRun, alerts []domain.Alert) error
	GetByID(ctx context.Context, id string) (*AnalysisRun, error)
	List(ctx context.Context, limit int) ([]*AnalysisRun, error)
	AlertsFor(ctx context.Context, analysisID string) ([]domain.Alert, error)
}
