package cmd

import (
	"time"

	"github.com/salmonumbrella/toggl-cli/internal/toggl"
)

// TimeEntryLight is a minimal entry representation for JSON output.
type TimeEntryLight struct {
	ID              int64  `json:"id"`
	Description     string `json:"description"`
	Project         string `json:"project,omitempty"`
	Start           string `json:"start,omitempty"`
	Stop            string `json:"stop,omitempty"`
	DurationSeconds int64  `json:"durationSeconds"`
	Running         bool   `json:"running"`
	WorkspaceID     int64  `json:"workspaceId"`
}

func entryToLight(e toggl.TimeEntry) TimeEntryLight {
	light := TimeEntryLight{
		ID:              e.ID,
		Description:     e.Description,
		Project:         e.ProjectName,
		DurationSeconds: int64(e.Duration.Seconds()),
		Running:         e.Running,
		WorkspaceID:     e.WorkspaceID,
	}
	if e.Start != nil {
		light.Start = e.Start.Format(time.RFC3339)
	}
	if e.Stop != nil {
		light.Stop = e.Stop.Format(time.RFC3339)
	}
	return light
}

func entriesToLight(entries []toggl.TimeEntry) []TimeEntryLight {
	out := make([]TimeEntryLight, len(entries))
	for i, e := range entries {
		out[i] = entryToLight(e)
	}
	return out
}
