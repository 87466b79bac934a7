package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/curtaincall/internal/selection"
)

func newSummaryCommand(ctx context.Context, a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary <key>...",
		Short: "Print the selection summary for recordings by id or source path.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, rows, err := loadRows(ctx, a, "")
			if err != nil {
				return err
			}
			set, err := selectKeys(rows, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), set.Summary())
			return nil
		},
	}

	return cmd
}

func newCopyCommand(ctx context.Context, a *app) *cobra.Command {
	var (
		allFlag    bool
		filterFlag string
		stdoutFlag bool
	)

	cmd := &cobra.Command{
		Use:   "copy [key...]",
		Short: "Copy formatted recording info to the clipboard.",
		Long: "Copy formatted recording info to the clipboard. Keys are recording ids or,\n" +
			"for folders without a recording, their source path. Use --all to copy every\n" +
			"row matching --filter instead.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if allFlag && len(args) > 0 {
				return errors.New("pass keys or --all, not both")
			}
			if !allFlag && len(args) == 0 {
				return errors.New("at least one key is required (or --all)")
			}

			var set selection.Set
			if allFlag {
				_, rows, err := loadRows(ctx, a, filterFlag)
				if err != nil {
					return err
				}
				set = selection.New().SetAll(rows, true)
			} else {
				_, rows, err := loadRows(ctx, a, "")
				if err != nil {
					return err
				}
				set, err = selectKeys(rows, args)
				if err != nil {
					return err
				}
			}

			if set.Len() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to copy")
				return nil
			}

			text := set.CopyText()
			if stdoutFlag {
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			}
			if a.clipboard == nil {
				return errors.New("no clipboard available (use --stdout)")
			}
			if err := a.clipboard.WriteText(text); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Copied %d %s to clipboard:\n%s\n",
				set.Len(), plural(set.Len(), "recording", "recordings"), set.Summary())
			return nil
		},
	}

	cmd.Flags().BoolVar(&allFlag, "all", false, "Copy every recording matching --filter")
	cmd.Flags().StringVarP(&filterFlag, "filter", "f", "", "Filter applied with --all")
	cmd.Flags().BoolVar(&stdoutFlag, "stdout", false, "Print the text instead of writing the clipboard")

	return cmd
}
