package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	cerrors "github.com/salmonumbrella/toggl-cli/internal/errors"
)

func newStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the running time entry",
		Args:  cobra.NoArgs,
		RunE: runE(app, func(cmd *cobra.Command, _ []string, app *App) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			stopped, err := client.StopCurrentEntry(cmd.Context())
			if err != nil {
				return cerrors.WithContext(err, "stopping time entry")
			}
			if stopped == nil && !app.IsJSON() {
				fmt.Println("No timers running")
				fmt.Println()
			}

			return printStatus(cmd, app, client)
		}),
	}
}
