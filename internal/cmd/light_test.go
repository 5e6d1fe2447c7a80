package cmd

import (
	"testing"
	"time"

	"github.com/salmonumbrella/toggl-cli/internal/toggl"
)

func TestEntryToLight(t *testing.T) {
	start := time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)
	stop := time.Date(2024, 5, 6, 9, 15, 0, 0, time.UTC)

	entry := toggl.TimeEntry{
		ID:          1,
		Description: "standup",
		ProjectName: "Infra",
		Duration:    15 * time.Minute,
		Start:       &start,
		Stop:        &stop,
		WorkspaceID: 5,
	}

	light := entryToLight(entry)
	if light.Start != "2024-05-06T09:00:00Z" {
		t.Fatalf("Start = %q", light.Start)
	}
	if light.Stop != "2024-05-06T09:15:00Z" {
		t.Fatalf("Stop = %q", light.Stop)
	}
	if light.DurationSeconds != 900 {
		t.Fatalf("DurationSeconds = %d, want 900", light.DurationSeconds)
	}
	if light.Running {
		t.Fatalf("Running = true")
	}
}

func TestEntryToLight_Running(t *testing.T) {
	start := time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)

	light := entryToLight(toggl.TimeEntry{
		ID:       2,
		Duration: 30 * time.Second,
		Running:  true,
		Start:    &start,
	})
	if !light.Running {
		t.Fatalf("Running = false")
	}
	if light.Stop != "" {
		t.Fatalf("Stop = %q, want empty", light.Stop)
	}
	if light.Project != "" {
		t.Fatalf("Project = %q, want empty", light.Project)
	}
}
