package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/spf13/cobra"

	"github.com/faizmokh/curtaincall/internal/encora"
	"github.com/faizmokh/curtaincall/internal/exporter"
	"github.com/faizmokh/curtaincall/internal/rclone"
)

func newExportCommand(ctx context.Context, a *app) *cobra.Command {
	var (
		skipAPI bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Rebuild collection.json from the Encora API and the rclone Drive listing.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.settings == nil {
				return errors.New("settings not loaded")
			}
			if !skipAPI {
				if err := a.settings.ValidateExport(); err != nil {
					return err
				}
			}

			progress := progressPrinter(cmd.OutOrStdout(), verbose)

			collection := a.collection
			if collection == nil {
				collection = encora.NewClient(a.settings.APIURL, a.settings.APIKey, a.settings.PerPage,
					encora.WithNotify(func(message string) {
						progress(exporter.ProgressEvent{Message: message, Level: exporter.LevelVerbose})
					}))
			}
			folders := a.folders
			if folders == nil {
				folders = rclone.NewLister(a.settings.RcloneConfig)
			}

			exp := exporter.New(a.store(), collection, folders, a.settings.Remote, progress)
			result, err := exp.Run(ctx, exporter.Options{SkipAPI: skipAPI})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Done: %d fetched, %d linked, %d unmatched folders, %d total\n",
				result.Fetched, result.Linked, result.Unmatched, result.Total)
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipAPI, "skip-api", false, "Reuse the existing collection.json and only refresh Drive links")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show verbose progress")

	return cmd
}

// progressPrinter serialises progress output from the exporter's goroutines.
func progressPrinter(out io.Writer, verbose bool) func(exporter.ProgressEvent) {
	var mu sync.Mutex
	return func(event exporter.ProgressEvent) {
		if event.Level == exporter.LevelVerbose && !verbose {
			return
		}

		prefix := "  "
		switch event.Level {
		case exporter.LevelError:
			prefix = "✗ "
		case exporter.LevelWarning:
			prefix = "! "
		case exporter.LevelSuccess:
			prefix = "✓ "
		case exporter.LevelInfo:
			prefix = "› "
		}

		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintln(out, prefix+event.Message)
	}
}
