package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand(ctx context.Context, a *app) *cobra.Command {
	var (
		filterFlag string
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recordings in display order, optionally filtered.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, rows, err := loadRows(ctx, a, filterFlag)
			if err != nil {
				return err
			}

			if outputJSON {
				return printRowsJSON(cmd, rows)
			}

			if len(rows) == 0 {
				if filterFlag != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "No recordings match %q\n", filterFlag)
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "No recordings in collection")
				}
				return nil
			}

			printRows(cmd, rows)
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d %s\n", len(rows), len(entries), plural(len(entries), "recording", "recordings"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&filterFlag, "filter", "f", "", "Case-insensitive substring to match across all columns")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Emit rows as JSON")

	return cmd
}
