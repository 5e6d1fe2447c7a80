package cmd

import (
	"testing"
	"time"

	"github.com/salmonumbrella/toggl-cli/internal/config"
	"github.com/salmonumbrella/toggl-cli/internal/toggl"
)

func entryAt(t *testing.T, start, stop string, dur time.Duration, running bool) toggl.TimeEntry {
	t.Helper()

	entry := toggl.TimeEntry{Duration: dur, Running: running}
	if start != "" {
		ts, err := time.ParseInLocation("2006-01-02 15:04", start, time.Local)
		if err != nil {
			t.Fatalf("parse start %q: %v", start, err)
		}
		entry.Start = &ts
	}
	if stop != "" {
		ts, err := time.ParseInLocation("2006-01-02 15:04", stop, time.Local)
		if err != nil {
			t.Fatalf("parse stop %q: %v", stop, err)
		}
		entry.Stop = &ts
	}
	return entry
}

func TestBuildDayReport_FiltersToToday(t *testing.T) {
	now := time.Date(2024, 5, 6, 12, 0, 0, 0, time.Local)

	yesterday := entryAt(t, "2024-05-05 09:00", "2024-05-05 10:00", time.Hour, false)
	// Overnight entry: started yesterday, stopped today. Counted because
	// its stop falls within today.
	overnight := entryAt(t, "2024-05-05 23:30", "2024-05-06 00:30", time.Hour, false)
	morning := entryAt(t, "2024-05-06 09:00", "2024-05-06 10:30", 90*time.Minute, false)
	tomorrow := entryAt(t, "2024-05-07 09:00", "2024-05-07 10:00", time.Hour, false)

	report := buildDayReport(
		[]toggl.TimeEntry{morning, tomorrow, yesterday, overnight},
		now, 8*time.Hour)

	if len(report.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(report.Entries))
	}
	// Sorted by start: overnight first.
	if !report.Entries[0].Start.Equal(*overnight.Start) {
		t.Fatalf("entries not sorted by start, first = %v", report.Entries[0].Start)
	}
	if report.Total != 2*time.Hour+30*time.Minute {
		t.Fatalf("Total = %v, want 2h30m", report.Total)
	}
	if report.Running {
		t.Fatalf("Running = true, want false")
	}
}

func TestBuildDayReport_RunningProjection(t *testing.T) {
	now := time.Date(2024, 5, 6, 14, 0, 0, 0, time.Local)

	done := entryAt(t, "2024-05-06 09:00", "2024-05-06 12:00", 3*time.Hour, false)
	running := entryAt(t, "2024-05-06 13:00", "", time.Hour, true)

	report := buildDayReport([]toggl.TimeEntry{done, running}, now, 8*time.Hour)

	if !report.Running {
		t.Fatalf("Running = false, want true")
	}
	if report.Total != 4*time.Hour {
		t.Fatalf("Total = %v, want 4h", report.Total)
	}
	// 4h remaining from 14:00 puts the target at 18:00.
	want := time.Date(2024, 5, 6, 18, 0, 0, 0, time.Local)
	if !report.TargetAt.Equal(want) {
		t.Fatalf("TargetAt = %v, want %v", report.TargetAt, want)
	}
}

func TestBuildDayReport_Empty(t *testing.T) {
	now := time.Date(2024, 5, 6, 14, 0, 0, 0, time.Local)
	report := buildDayReport(nil, now, 8*time.Hour)

	if len(report.Entries) != 0 || report.Total != 0 || report.Running {
		t.Fatalf("report = %+v, want empty", report)
	}
}

func TestTargetDuration(t *testing.T) {
	app := NewApp()
	if got := app.targetDuration(); got != 8*time.Hour {
		t.Fatalf("default targetDuration() = %v, want 8h", got)
	}

	app.Config = &config.Config{TargetHours: 6.5}
	if got := app.targetDuration(); got != 6*time.Hour+30*time.Minute {
		t.Fatalf("targetDuration() = %v, want 6h30m", got)
	}
}
