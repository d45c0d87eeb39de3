package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/avernier/chantier/internal/analytics"
	"github.com/avernier/chantier/internal/contract"
	"github.com/avernier/chantier/internal/domain"
	"github.com/avernier/chantier/internal/parser"
	"github.com/avernier/chantier/internal/repository"
	"github.com/avernier/chantier/internal/validate"
	"github.com/google/uuid"
)

type analysisService struct {
	repo repository.AnalysisRepo
	now  func() time.Time
}

// NewAnalysisService creates the production AnalysisService. repo may be nil
// when persistence is not wired; Save and History then report an error.
func NewAnalysisService(repo repository.AnalysisRepo) AnalysisService {
	return &analysisService{repo: repo, now: time.Now}
}

// NewAnalysisServiceWithClock injects the reference time, for deterministic
// tests of time-sensitive rules.
func NewAnalysisServiceWithClock(repo repository.AnalysisRepo, now func() time.Time) AnalysisService {
	return &analysisService{repo: repo, now: now}
}

func (s *analysisService) AnalyzeFile(ctx context.Context, path string) (*contract.AnalysisReport, error) {
	var t parser.Table
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		t, err = parser.ReadCSVFile(path)
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		t, err = parser.ReadWorkbookFile(path)
	default:
		return nil, &parser.ParseError{Source: path, Err: fmt.Errorf("unsupported file extension %q", filepath.Ext(path))}
	}
	if err != nil {
		return nil, err
	}

	return s.AnalyzeTable(ctx, filepath.Base(path), t)
}

func (s *analysisService) AnalyzeTable(_ context.Context, source string, t parser.Table) (*contract.AnalysisReport, error) {
	rows := parser.Parse(t)
	return s.buildReport(source, rows), nil
}

func (s *analysisService) AnalyzeDemo(_ context.Context) (*contract.AnalysisReport, error) {
	return s.buildReport("demo", parser.DemoSchedule()), nil
}

func (s *analysisService) buildReport(source string, rows []domain.Row) *contract.AnalysisReport {
	now := s.now()
	alerts := validate.Run(rows, now)

	return &contract.AnalysisReport{
		ID:          uuid.New().String(),
		Source:      source,
		GeneratedAt: now,
		Rows:        rows,
		Alerts:      alerts,
		Summary:     validate.Summarize(alerts),
		KPIs:        analytics.ComputeKPIs(rows),
		EarnedValue: analytics.ComputeEarnedValue(rows),
	}
}

func (s *analysisService) Save(ctx context.Context, report *contract.AnalysisReport) error {
	if s.repo == nil {
		return fmt.Errorf("no analysis store configured")
	}

	run := &repository.AnalysisRun{
		ID:          report.ID,
		Source:      report.Source,
		RowCount:    len(report.Rows),
		TaskCount:   report.TaskCount(),
		Errors:      report.Summary.Errors,
		Warnings:    report.Summary.Warnings,
		Infos:       report.Summary.Infos,
		TotalAlerts: report.Summary.Total,
		TotalValue:  report.KPIs.TotalValue,
		CreatedAt:   report.GeneratedAt,
	}
	if report.EarnedValue != nil {
		spi := report.EarnedValue.SPI
		run.SPI = &spi
	}

	return s.repo.Save(ctx, run, report.Alerts)
}

func (s *analysisService) History(ctx context.Context, limit int) ([]*repository.AnalysisRun, error) {
	if s.repo == nil {
		return nil, fmt.Errorf("no analysis store configured")
	}
	return s.repo.List(ctx, limit)
}
