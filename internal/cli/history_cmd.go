package cli

import (
	"context"
	"fmt"

	"github.com/avernier/chantier/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved analysis runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := app.Analysis.History(context.Background(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(runs))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list")

	return cmd
}
