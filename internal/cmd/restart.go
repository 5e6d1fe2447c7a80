package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	cerrors "github.com/salmonumbrella/toggl-cli/internal/errors"
)

func newRestartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "restart",
		Short: "Restart the most recent time entry",
		Long: `Start a new time entry with the same workspace, project, and description
as the most recently started one.`,
		Args: cobra.NoArgs,
		RunE: runE(app, func(cmd *cobra.Command, _ []string, app *App) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			entries, err := client.TimeEntries(cmd.Context(), nil)
			if err != nil {
				return cerrors.WithContext(err, "retrieving latest time entries")
			}
			if len(entries) == 0 {
				return fmt.Errorf("no recent entries to restart")
			}

			sort.SliceStable(entries, func(i, j int) bool {
				a, b := entries[i].Start, entries[j].Start
				if a == nil || b == nil {
					return b == nil && a != nil
				}
				return a.After(*b)
			})
			last := entries[0]

			if _, err := client.StartEntry(cmd.Context(), last.WorkspaceID, last.ProjectID, last.Description); err != nil {
				return cerrors.WithContext(err, "starting time entry")
			}

			return printStatus(cmd, app, client)
		}),
	}
}
