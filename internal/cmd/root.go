package cmd

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/toggl-cli/internal/config"
	cerrors "github.com/salmonumbrella/toggl-cli/internal/errors"
	"github.com/salmonumbrella/toggl-cli/internal/logging"
	"github.com/salmonumbrella/toggl-cli/internal/outfmt"
	"github.com/salmonumbrella/toggl-cli/internal/ui"
)

//go:embed help.txt
var helpText string

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func Execute(args []string) error {
	app := NewApp()
	root := NewRootCmd(app)
	root.SetArgs(args)

	err := root.Execute()
	if err != nil {
		if app.IsJSON() {
			payload := map[string]any{
				"error": map[string]any{
					"message": err.Error(),
				},
			}
			if cerrors.ContainsSuggestion(err) {
				payload["error"].(map[string]any)["suggestion"] = cerrors.GetSuggestion(err)
			}
			_ = outfmt.WriteJSON(os.Stderr, payload)
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)

			if cerrors.ContainsSuggestion(err) {
				fmt.Fprintln(os.Stderr, "")
				fmt.Fprintln(os.Stderr, "Suggestion:", cerrors.GetSuggestion(err))
			}
		}
	}
	return err
}

func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "toggl",
		Short:         "Toggl Track CLI",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			u := ui.New(app.Flags.Color)
			ctx := ui.WithUI(cmd.Context(), u)
			app.UI = u

			// Non-interactive aliases
			if app.Flags.NoInput || app.Flags.NonInteractive {
				app.Flags.Yes = true
			}

			logger := logging.Setup(app.Flags.Debug)
			ctx = logging.WithLogger(ctx, logger)
			app.Logger = logger

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			app.Config = cfg

			cmd.SetContext(ctx)
			return nil
		},
		// Bare `toggl` shows today's report.
		Args: cobra.NoArgs,
		RunE: runE(app, runStatus),
	}
	root.PersistentFlags().StringVar(&app.Flags.Color, "color", app.Flags.Color, "Color output: auto|always|never")
	root.PersistentFlags().StringVar(&app.Flags.Output, "output", app.Flags.Output, "Output format: text|json")
	root.PersistentFlags().StringVar(&app.Flags.Query, "query", "", "JQ filter expression for JSON output")
	root.PersistentFlags().BoolVar(&app.Flags.Debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().BoolVarP(&app.Flags.Yes, "yes", "y", false, "Skip confirmation prompts (non-interactive)")
	root.PersistentFlags().BoolVar(&app.Flags.NoInput, "no-input", false, "Alias for --yes (non-interactive)")
	root.PersistentFlags().BoolVar(&app.Flags.NonInteractive, "non-interactive", false, "Alias for --yes (non-interactive)")
	_ = root.PersistentFlags().MarkHidden("no-input")
	_ = root.PersistentFlags().MarkHidden("non-interactive")

	root.AddCommand(newStatusCmd(app))
	root.AddCommand(newStartCmd(app))
	root.AddCommand(newStopCmd(app))
	root.AddCommand(newRestartCmd(app))
	root.AddCommand(newEntriesCmd(app))
	root.AddCommand(newProjectsCmd(app))
	root.AddCommand(newWorkspacesCmd(app))
	root.AddCommand(newWhoamiCmd(app))
	root.AddCommand(newAuthCmd(app))

	// Override root help only; subcommands keep Cobra's default.
	defaultHelp := root.HelpFunc()
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd.Name() == root.Name() && !cmd.HasParent() {
			fmt.Print(helpText)
			return
		}
		defaultHelp(cmd, args)
	})

	return root
}
