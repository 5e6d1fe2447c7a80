package toggl

import "time"

// TimeEntry is a tracked (or currently running) block of time.
type TimeEntry struct {
	ID          int64
	Description string
	Duration    time.Duration
	Running     bool
	ProjectID   *int64
	ProjectName string
	Start       *time.Time
	Stop        *time.Time
	WorkspaceID int64
}

// Project is a Toggl project within a workspace.
type Project struct {
	ID          int64
	Name        string
	Active      bool
	WorkspaceID int64
}

// Workspace is a Toggl workspace.
type Workspace struct {
	ID   int64
	Name string
}

// Me is the authenticated user's profile.
type Me struct {
	ID                 int64  `json:"id"`
	Fullname           string `json:"fullname"`
	Email              string `json:"email"`
	DefaultWorkspaceID int64  `json:"default_workspace_id"`
	Timezone           string `json:"timezone"`
}

// DateRange bounds a time-entry listing. Both dates are sent to the API in
// YYYY-MM-DD form; End is exclusive, per the Toggl API.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Wire shapes for the v9 API. Durations arrive as seconds; a running entry
// carries the negative epoch timestamp of its start instead.
type apiTimeEntry struct {
	ID          int64   `json:"id"`
	Description *string `json:"description"`
	Duration    int64   `json:"duration"`
	ProjectID   *int64  `json:"project_id"`
	Start       *string `json:"start"`
	Stop        *string `json:"stop"`
	TaskID      *int64  `json:"task_id"`
	WorkspaceID int64   `json:"workspace_id"`
}

type apiNewTimeEntry struct {
	CreatedWith string  `json:"created_with"`
	Description string  `json:"description,omitempty"`
	Duration    int64   `json:"duration"`
	ProjectID   *int64  `json:"project_id,omitempty"`
	Start       string  `json:"start"`
	Stop        *string `json:"stop,omitempty"`
	WorkspaceID int64   `json:"workspace_id"`
}

type apiProject struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Active      bool   `json:"active"`
	ClientID    *int64 `json:"client_id"`
	WorkspaceID int64  `json:"workspace_id"`
}

type apiWorkspace struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
