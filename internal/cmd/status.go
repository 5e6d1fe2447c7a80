package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	cerrors "github.com/salmonumbrella/toggl-cli/internal/errors"
	"github.com/salmonumbrella/toggl-cli/internal/format"
	"github.com/salmonumbrella/toggl-cli/internal/logging"
	"github.com/salmonumbrella/toggl-cli/internal/toggl"
	"github.com/salmonumbrella/toggl-cli/internal/ui"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Today's time entries, total, and target projection",
		Args:  cobra.NoArgs,
		RunE:  runE(app, runStatus),
	}
}

func runStatus(cmd *cobra.Command, _ []string, app *App) error {
	client, err := app.Client()
	if err != nil {
		return err
	}
	return printStatus(cmd, app, client)
}

// printStatus renders today's report. Shared with start/stop/restart, which
// show the updated day after mutating the timer.
func printStatus(cmd *cobra.Command, app *App, client *toggl.Client) error {
	entries, err := client.TimeEntries(cmd.Context(), nil)
	if err != nil {
		return cerrors.WithContext(err, "retrieving time entries")
	}
	logging.FromContext(cmd.Context()).WithField("entries", len(entries)).Debug("retrieved time entries")

	now := time.Now()
	report := buildDayReport(entries, now, app.targetDuration())

	if app.IsJSON() {
		payload := map[string]any{
			"date":         now.Format("2006-01-02"),
			"entries":      entriesToLight(report.Entries),
			"totalSeconds": int64(report.Total.Seconds()),
			"running":      report.Running,
		}
		if report.Running {
			payload["targetSeconds"] = int64(app.targetDuration().Seconds())
			payload["targetReachedAt"] = report.TargetAt.Format(time.RFC3339)
		}
		return app.PrintJSON(payload)
	}

	u := ui.FromContext(cmd.Context())
	for _, entry := range report.Entries {
		printEntryLine(u, entry)
	}

	fmt.Println()
	if report.Running {
		fmt.Printf("%s logged today. You'll reach %s logged at %s.\n",
			format.Duration(report.Total),
			format.Duration(app.targetDuration()),
			format.Clock(report.TargetAt))
	} else {
		fmt.Printf("%s logged today.\n", format.Duration(report.Total))
	}
	return nil
}

func printEntryLine(u *ui.UI, entry toggl.TimeEntry) {
	span := format.StartStop(entry.Start, entry.Stop)
	dur := format.Duration(entry.Duration)
	if entry.Running {
		dur = u.Green(dur)
	}
	fmt.Printf("%s (%s) [%s] %s\n",
		dur, span, entry.ProjectName, format.Truncate(entry.Description, 60))
}

type dayReport struct {
	Entries  []toggl.TimeEntry
	Total    time.Duration
	Running  bool
	TargetAt time.Time
}

// buildDayReport keeps the entries that touch today (start or stop within
// the local day), sorted by start time, and totals their durations. When a
// timer is running it projects the wall-clock time at which the daily
// target will be reached.
func buildDayReport(entries []toggl.TimeEntry, now time.Time, target time.Duration) dayReport {
	dayStart, dayEnd := dayBounds(now)

	var report dayReport
	for _, entry := range entries {
		if !touchesDay(entry, dayStart, dayEnd) {
			continue
		}
		report.Entries = append(report.Entries, entry)
		report.Total += entry.Duration
		report.Running = report.Running || entry.Running
	}

	sort.SliceStable(report.Entries, func(i, j int) bool {
		a, b := report.Entries[i].Start, report.Entries[j].Start
		if a == nil {
			return b != nil
		}
		if b == nil {
			return false
		}
		return a.Before(*b)
	})

	if report.Running {
		report.TargetAt = now.Add(target - report.Total)
	}
	return report
}

func dayBounds(now time.Time) (time.Time, time.Time) {
	local := now.Local()
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
	return start, start.AddDate(0, 0, 1)
}

func touchesDay(entry toggl.TimeEntry, dayStart, dayEnd time.Time) bool {
	if entry.Start != nil && !entry.Start.Before(dayStart) && entry.Start.Before(dayEnd) {
		return true
	}
	if entry.Stop != nil && !entry.Stop.Before(dayStart) && entry.Stop.Before(dayEnd) {
		return true
	}
	return false
}

func (a *App) targetDuration() time.Duration {
	hours := 8.0
	if a.Config != nil && a.Config.TargetHours > 0 {
		hours = a.Config.TargetHours
	}
	return time.Duration(hours * float64(time.Hour))
}
