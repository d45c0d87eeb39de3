package cli

import (
	"github.com/avernier/chantier/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Analysis service.AnalysisService

	// IsInteractive reports whether stdout is a terminal; non-interactive
	// output drops decorative framing so it pipes cleanly.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "chantier" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "chantier",
		Short: "Construction schedule analyzer",
		Long: `chantier ingests a construction schedule (xlsx or csv), reconstructs its
block/phase/task hierarchy, validates it against quality rules and computes
progress and earned-value metrics.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newAnalyzeCmd(app),
		newDemoCmd(app),
		newExportCmd(app),
		newHistoryCmd(app),
	)

	return root
}
