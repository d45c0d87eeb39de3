package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/avernier/chantier/internal/cli/formatter"
	"github.com/avernier/chantier/internal/contract"
	"github.com/avernier/chantier/internal/export"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	var save, asJSON bool
	var outPath, htmlPath string

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze a schedule file (xlsx or csv)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Analysis.AnalyzeFile(context.Background(), args[0])
			if err != nil {
				return err
			}
			return finishReport(app, cmd, report, save, asJSON, outPath, htmlPath)
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Persist the analysis run")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the full report as JSON")
	cmd.Flags().StringVar(&outPath, "out", "", "Write the cleaned workbook to this path")
	cmd.Flags().StringVar(&htmlPath, "html", "", "Write the HTML report to this path")

	return cmd
}

// finishReport applies the output flags shared by analyze and demo: optional
// persistence, artifact exports, then terminal or JSON rendering.
func finishReport(app *App, cmd *cobra.Command, report *contract.AnalysisReport, save, asJSON bool, outPath, htmlPath string) error {
	if save {
		if err := app.Analysis.Save(context.Background(), report); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved analysis %s\n", report.ID)
	}

	if outPath != "" {
		if err := export.SaveWorkbook(report, outPath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote workbook %s\n", outPath)
	}
	if htmlPath != "" {
		if err := export.WriteHTML(report, htmlPath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote report %s\n", htmlPath)
	}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	framed := app.IsInteractive == nil || app.IsInteractive()
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReport(report, framed))
	return nil
}
