package cli

import (
	"context"
	"fmt"

	"github.com/avernier/chantier/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var outPath, htmlPath string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Analyze a schedule and write artifacts without printing a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outPath == "" && htmlPath == "" {
				return fmt.Errorf("nothing to export: pass --out and/or --html")
			}

			report, err := app.Analysis.AnalyzeFile(context.Background(), args[0])
			if err != nil {
				return err
			}

			if outPath != "" {
				if err := export.SaveWorkbook(report, outPath); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote workbook %s\n", outPath)
			}
			if htmlPath != "" {
				if err := export.WriteHTML(report, htmlPath); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote report %s\n", htmlPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Path for the cleaned xlsx workbook")
	cmd.Flags().StringVar(&htmlPath, "html", "", "Path for the self-contained HTML report")

	return cmd
}
