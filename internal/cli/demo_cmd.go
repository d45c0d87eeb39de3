package cli

import (
	"context"

	"github.com/spf13/cobra"
)

func newDemoCmd(app *App) *cobra.Command {
	var save, asJSON bool
	var outPath, htmlPath string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Analyze the built-in demonstration schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Analysis.AnalyzeDemo(context.Background())
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
