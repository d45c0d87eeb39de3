package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avernier/chantier/internal/domain"
)

// SQLiteAnalysisRepo implements AnalysisRepo using a SQLite database.
type SQLiteAnalysisRepo struct {
	db *sql.DB
}

// NewSQLiteAnalysisRepo creates a new SQLiteAnalysisRepo.
func NewSQLiteAnalysisRepo(db *sql.DB) *SQLiteAnalysisRepo {
	return &SQLiteAnalysisRepo{db: db}
}

// ErrNotFound is returned when the requested analysis does not exist.
var ErrNotFound = errors.New("analysis not found")

func (r *SQLiteAnalysisRepo) Save(ctx context.Context, run *AnalysisRun, alerts []domain.Alert) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	query := `INSERT INTO analyses (id, source, row_count, task_count, errors, warnings, infos, total_alerts, total_value, spi, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = tx.ExecContext(ctx, query,
		run.ID,
		run.Source,
		run.RowCount,
		run.TaskCount,
		run.Errors,
		run.Warnings,
		run.Infos,
		run.TotalAlerts,
		run.TotalValue,
		nullableFloat(run.SPI),
		run.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting analysis: %w", err)
	}

	for _, a := range alerts {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO analysis_alerts (analysis_id, severity, message, row_index) VALUES (?, ?, ?, ?)`,
			run.ID, string(a.Severity), a.Message, nullableInt(a.Row))
		if err != nil {
			return fmt.Errorf("inserting alert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing analysis: %w", err)
	}
	committed = true
	return nil
}

func (r *SQLiteAnalysisRepo) GetByID(ctx context.Context, id string) (*AnalysisRun, error) {
	query := `SELECT id, source, row_count, task_count, errors, warnings, infos, total_alerts, total_value, spi, created_at
		FROM analyses WHERE id = ?`
	return scanRun(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteAnalysisRepo) List(ctx context.Context, limit int) ([]*AnalysisRun, error) {
	query := `SELECT id, source, row_count, task_count, errors, warnings, infos, total_alerts, total_value, spi, created_at
		FROM analyses ORDER BY created_at DESC, id LIMIT ?`
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing analyses: %w", err)
	}
	defer rows.Close()

	var runs []*AnalysisRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating analyses: %w", err)
	}
	return runs, nil
}

func (r *SQLiteAnalysisRepo) AlertsFor(ctx context.Context, analysisID string) ([]domain.Alert, error) {
	query := `SELECT severity, message, row_index FROM analysis_alerts WHERE analysis_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, analysisID)
	if err != nil {
		return nil, fmt.Errorf("loading alerts: %w", err)
	}
	defer rows.Close()

	var alerts []domain.Alert
	for rows.Next() {
		var severity, message string
		var rowIndex sql.NullInt64
		if err := rows.Scan(&severity, &message, &rowIndex); err != nil {
			return nil, fmt.Errorf("scanning alert: %w", err)
		}
		alert := domain.Alert{Severity: domain.Severity(severity), Message: message}
		if rowIndex.Valid {
			idx := int(rowIndex.Int64)
			alert.Row = &idx
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating alerts: %w", err)
	}
	return alerts, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(s rowScanner) (*AnalysisRun, error) {
	var run AnalysisRun
	var spi sql.NullFloat64
	var createdAt string

	err := s.Scan(
		&run.ID,
		&run.Source,
		&run.RowCount,
		&run.TaskCount,
		&run.Errors,
		&run.Warnings,
		&run.Infos,
		&run.TotalAlerts,
		&run.TotalValue,
		&spi,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning analysis: %w", err)
	}

	if spi.Valid {
		v := spi.Float64
		run.SPI = &v
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		run.CreatedAt = t
	}
	return &run, nil
}

func nullableFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
