package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	cerrors "github.com/salmonumbrella/toggl-cli/internal/errors"
	"github.com/salmonumbrella/toggl-cli/internal/format"
	"github.com/salmonumbrella/toggl-cli/internal/toggl"
	"github.com/salmonumbrella/toggl-cli/internal/ui"
)

func newEntriesCmd(app *App) *cobra.Command {
	var startDate, endDate string

	cmd := &cobra.Command{
		Use:     "entries",
		Aliases: []string{"ls"},
		Short:   "List time entries, optionally in a date range",
		Example: `  toggl entries
  toggl entries --start 2024-05-01 --end 2024-05-08
  toggl entries --output json --query '.[].description'`,
		Args: cobra.NoArgs,
		RunE: runE(app, func(cmd *cobra.Command, _ []string, app *App) error {
			rng, err := parseDateRange(startDate, endDate)
			if err != nil {
				return err
			}

			client, err := app.Client()
			if err != nil {
				return err
			}

			entries, err := client.TimeEntries(cmd.Context(), rng)
			if err != nil {
				return cerrors.WithContext(err, "retrieving time entries")
			}

			if app.IsJSON() {
				return app.PrintJSON(entriesToLight(entries))
			}

			u := ui.FromContext(cmd.Context())
			for _, entry := range entries {
				date := ""
				if entry.Start != nil {
					date = entry.Start.Local().Format("2006-01-02")
				}
				fmt.Printf("%s  ", u.Faint(date))
				printEntryLine(u, entry)
			}
			if len(entries) == 0 {
				fmt.Println("No entries")
			}
			return nil
		}),
	}

	cmd.Flags().StringVar(&startDate, "start", "", "Range start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "Range end date, exclusive (YYYY-MM-DD)")

	return cmd
}

// parseDateRange validates --start/--end. Both must be given together; the
// API treats the end date as exclusive.
func parseDateRange(startDate, endDate string) (*toggl.DateRange, error) {
	if startDate == "" && endDate == "" {
		return nil, nil
	}
	if startDate == "" || endDate == "" {
		return nil, fmt.Errorf("%w: --start and --end must be used together", ErrUsage)
	}

	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid --start date %q (want YYYY-MM-DD)", ErrUsage, startDate)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid --end date %q (want YYYY-MM-DD)", ErrUsage, endDate)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: --end %s is before --start %s", ErrUsage, format.Truncate(endDate, 20), format.Truncate(startDate, 20))
	}

	return &toggl.DateRange{Start: start, End: end}, nil
}
