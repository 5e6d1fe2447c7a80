// Package toggl is a client for the Toggl Track v9 API.
package toggl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/salmonumbrella/toggl-cli/internal/format"
	"github.com/salmonumbrella/toggl-cli/internal/transport"
)

const defaultBaseURL = "https://api.track.toggl.com/api/v9"

// createdWith identifies entries started by this tool in the Toggl UI.
const createdWith = "github.com/salmonumbrella/toggl-cli"

type projectKey struct {
	workspaceID int64
	projectID   int64
}

// Client calls the Toggl Track API and maps wire responses to domain
// types. It is not safe for concurrent use; the CLI runs one linear
// command per process.
type Client struct {
	http    *http.Client
	baseURL string
	now     func() time.Time

	// projects caches one project listing per workspace per process, so
	// rendering N entries doesn't refetch the same workspace.
	projects       map[projectKey]Project
	projectsLoaded map[int64]bool
}

// Option adjusts a Client; used by tests to point at a fake server or fix
// the clock.
type Option func(*Client)

func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

func WithNow(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// New returns a client authenticating with the given API token.
func New(token string, opts ...Option) *Client {
	c := &Client{
		http:           transport.NewClient(token),
		baseURL:        defaultBaseURL,
		now:            time.Now,
		projects:       map[projectKey]Project{},
		projectsLoaded: map[int64]bool{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Me returns the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*Me, error) {
	var me Me
	if err := c.do(ctx, http.MethodGet, "/me", nil, &me); err != nil {
		return nil, err
	}
	return &me, nil
}

// TimeEntries lists recent time entries, optionally bounded by rng.
// Results carry resolved project names.
func (c *Client) TimeEntries(ctx context.Context, rng *DateRange) ([]TimeEntry, error) {
	path := "/me/time_entries"
	if rng != nil {
		path = fmt.Sprintf("%s?start_date=%s&end_date=%s",
			path, rng.Start.Format("2006-01-02"), rng.End.Format("2006-01-02"))
	}

	var apiEntries []apiTimeEntry
	if err := c.do(ctx, http.MethodGet, path, nil, &apiEntries); err != nil {
		return nil, err
	}

	entries := make([]TimeEntry, 0, len(apiEntries))
	for _, ae := range apiEntries {
		entry, err := c.buildEntry(ctx, ae)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// CurrentEntry returns the running time entry, or nil when no timer runs.
func (c *Client) CurrentEntry(ctx context.Context) (*TimeEntry, error) {
	var ae *apiTimeEntry
	if err := c.do(ctx, http.MethodGet, "/me/time_entries/current", nil, &ae); err != nil {
		return nil, err
	}
	if ae == nil {
		return nil, nil
	}
	entry, err := c.buildEntry(ctx, *ae)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// StartEntry starts a new time entry now.
func (c *Client) StartEntry(ctx context.Context, workspaceID int64, projectID *int64, description string) (*TimeEntry, error) {
	now := c.now().UTC()
	body := apiNewTimeEntry{
		CreatedWith: createdWith,
		Description: description,
		// A running entry is encoded as the negative epoch of its start.
		Duration:    -now.Unix(),
		ProjectID:   projectID,
		Start:       now.Format(time.RFC3339),
		WorkspaceID: workspaceID,
	}

	var ae apiTimeEntry
	path := fmt.Sprintf("/workspaces/%d/time_entries", workspaceID)
	if err := c.do(ctx, http.MethodPost, path, body, &ae); err != nil {
		return nil, err
	}
	entry, err := c.buildEntry(ctx, ae)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// StopCurrentEntry stops the running entry. Returns nil when no timer was
// running.
func (c *Client) StopCurrentEntry(ctx context.Context) (*TimeEntry, error) {
	current, err := c.CurrentEntry(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}

	var ae apiTimeEntry
	path := fmt.Sprintf("/workspaces/%d/time_entries/%d/stop", current.WorkspaceID, current.ID)
	if err := c.do(ctx, http.MethodPatch, path, nil, &ae); err != nil {
		return nil, err
	}
	entry, err := c.buildEntry(ctx, ae)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Workspaces lists the user's workspaces.
func (c *Client) Workspaces(ctx context.Context) ([]Workspace, error) {
	var apiWorkspaces []apiWorkspace
	if err := c.do(ctx, http.MethodGet, "/workspaces", nil, &apiWorkspaces); err != nil {
		return nil, err
	}

	workspaces := make([]Workspace, 0, len(apiWorkspaces))
	for _, aw := range apiWorkspaces {
		workspaces = append(workspaces, Workspace{ID: aw.ID, Name: aw.Name})
	}
	return workspaces, nil
}

// Projects lists a workspace's projects and primes the project cache.
func (c *Client) Projects(ctx context.Context, workspaceID int64) ([]Project, error) {
	var apiProjects []apiProject
	path := fmt.Sprintf("/workspaces/%d/projects", workspaceID)
	if err := c.do(ctx, http.MethodGet, path, nil, &apiProjects); err != nil {
		return nil, err
	}

	projects := make([]Project, 0, len(apiProjects))
	for _, ap := range apiProjects {
		p := Project{ID: ap.ID, Name: ap.Name, Active: ap.Active, WorkspaceID: ap.WorkspaceID}
		c.projects[projectKey{workspaceID, ap.ID}] = p
		projects = append(projects, p)
	}
	c.projectsLoaded[workspaceID] = true
	return projects, nil
}

func (c *Client) projectName(ctx context.Context, workspaceID, projectID int64) (string, error) {
	key := projectKey{workspaceID, projectID}
	if p, ok := c.projects[key]; ok {
		return p.Name, nil
	}
	if c.projectsLoaded[workspaceID] {
		// Workspace fetched, project genuinely unknown (archived/deleted).
		return "", nil
	}
	if _, err := c.Projects(ctx, workspaceID); err != nil {
		return "", err
	}
	if p, ok := c.projects[key]; ok {
		return p.Name, nil
	}
	return "", nil
}

func (c *Client) buildEntry(ctx context.Context, ae apiTimeEntry) (TimeEntry, error) {
	duration, running := entryDuration(c.now(), ae.Duration)

	entry := TimeEntry{
		ID:          ae.ID,
		Duration:    duration,
		Running:     running,
		ProjectID:   ae.ProjectID,
		WorkspaceID: ae.WorkspaceID,
	}
	if ae.Description != nil {
		entry.Description = *ae.Description
	}

	var err error
	if entry.Start, err = parseEntryTime(ae.Start); err != nil {
		return TimeEntry{}, fmt.Errorf("parse entry start: %w", err)
	}
	if entry.Stop, err = parseEntryTime(ae.Stop); err != nil {
		return TimeEntry{}, fmt.Errorf("parse entry stop: %w", err)
	}

	if ae.ProjectID != nil {
		name, err := c.projectName(ctx, ae.WorkspaceID, *ae.ProjectID)
		if err != nil {
			return TimeEntry{}, err
		}
		entry.ProjectName = name
	}

	return entry, nil
}

// entryDuration maps the API's duration encoding to an elapsed duration
// and a running flag. Running entries carry -start.Unix().
func entryDuration(now time.Time, raw int64) (time.Duration, bool) {
	if raw < 0 {
		return now.Sub(time.Unix(-raw, 0)), true
	}
	return time.Duration(raw) * time.Second, false
}

func parseEntryTime(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &transport.HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       format.Truncate(string(bytes.TrimSpace(data)), 200),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
