package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/curtaincall/internal/catalog"
	"github.com/faizmokh/curtaincall/internal/clip"
	"github.com/faizmokh/curtaincall/internal/config"
	"github.com/faizmokh/curtaincall/internal/exporter"
	"github.com/faizmokh/curtaincall/internal/files"
	"github.com/faizmokh/curtaincall/internal/ui"
)

// app carries the collaborators shared by every command. The root command
// fills it before any subcommand runs; tests construct it directly.
type app struct {
	settings  *config.Settings
	manager   *files.Manager
	clipboard clip.Writer

	// Export sources; nil means build them from settings.
	collection exporter.CollectionSource
	folders    exporter.FolderSource
}

func (a *app) store() *catalog.Store {
	return catalog.NewStore(a.manager)
}

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
func NewRootCommand(ctx context.Context, a *app) *cobra.Command {
	var (
		envFile string
		dataDir string
	)

	cmd := &cobra.Command{
		Use:   "curtaincall",
		Short: "Browse, search and copy your recording collection from the terminal.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.manager != nil {
				return nil
			}
			settings, err := config.Load(envFile, dataDir)
			if err != nil {
				return err
			}
			manager, err := settings.Manager()
			if err != nil {
				return err
			}
			a.settings = settings
			a.manager = manager
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			m := ui.NewModel(ctx, a.store(), a.clipboard)
			if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Dotenv file to load before reading the environment")
	cmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory holding collection.json (default: $OUTPUT_DIR or ./data)")

	cmd.AddCommand(
		newListCommand(ctx, a),
		newSummaryCommand(ctx, a),
		newCopyCommand(ctx, a),
		newExportCommand(ctx, a),
		newVersionCommand(),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	cmd := NewRootCommand(ctx, &app{clipboard: clip.System{}})
	return cmd.ExecuteContext(ctx)
}

// Main is a helper used by cmd/curtaincall/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
