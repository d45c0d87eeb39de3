package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/avernier/chantier/internal/cli"
	"github.com/avernier/chantier/internal/db"
	"github.com/avernier/chantier/internal/repository"
	"github.com/avernier/chantier/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.chantier/chantier.db
	dbPath := os.Getenv("CHANTIER_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".chantier", "chantier.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	analysisRepo := repository.NewSQLiteAnalysisRepo(database)

	app := &cli.App{
		Analysis: service.NewAnalysisService(analysisRepo),
	}

	// Drop decorative framing when stdout is piped.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
