package service

import (
	"context"

	"github.com/avernier/chantier/internal/contract"
	"github.com/avernier/chantier/internal/parser"
	"github.com/avernier/chantier/internal/repository"
)

// AnalysisService runs the parse-validate-compute pipeline and, on request,
// persists the outcome.
type AnalysisService interface {
	// AnalyzeFile reads a schedule file (xlsx or csv, by extension) and
	// analyzes it. A *parser.ParseError means the file was unreadable and no
	// partial dataset exists.
	AnalyzeFile(ctx context.Context, path string) (*contract.AnalysisReport, error)

	// AnalyzeTable analyzes an already-read raw table.
	AnalyzeTable(ctx context.Context, source string, t parser.Table) (*contract.AnalysisReport, error)

	// AnalyzeDemo analyzes the built-in demonstration schedule.
	AnalyzeDemo(ctx context.Context) (*contract.AnalysisReport, error)

	// Save persists a report's run summary and alerts.
	Save(ctx context.Context, report *contract.AnalysisReport) error

	// History returns the most recent persisted runs, newest first.
	History(ctx context.Context, limit int) ([]*repository.AnalysisRun, error)
}
