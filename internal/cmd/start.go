package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cerrors "github.com/salmonumbrella/toggl-cli/internal/errors"
	"github.com/salmonumbrella/toggl-cli/internal/toggl"
)

func newStartCmd(app *App) *cobra.Command {
	var workspace int64
	var project string
	var description string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new time entry",
		Example: `  toggl start
  toggl start --project Infra --description "standup"
  toggl start --workspace 1234 --project 5678`,
		Args: cobra.NoArgs,
		RunE: runE(app, func(cmd *cobra.Command, _ []string, app *App) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			workspaceID, err := resolveWorkspace(cmd.Context(), app, client, workspace)
			if err != nil {
				return err
			}

			projectID, err := resolveProject(cmd.Context(), client, workspaceID, project)
			if err != nil {
				return err
			}

			if _, err := client.StartEntry(cmd.Context(), workspaceID, projectID, description); err != nil {
				return cerrors.WithContext(err, "starting time entry")
			}

			return printStatus(cmd, app, client)
		}),
	}

	cmd.Flags().Int64Var(&workspace, "workspace", 0, "Workspace ID (default: config default_workspace_id, or the only workspace)")
	cmd.Flags().StringVar(&project, "project", "", "Project ID or name (optional)")
	cmd.Flags().StringVar(&description, "description", "", "Entry description (optional)")

	return cmd
}

// resolveWorkspace picks the workspace to start the entry in: the explicit
// flag, the configured default, or the account's only workspace.
func resolveWorkspace(ctx context.Context, app *App, client *toggl.Client, flag int64) (int64, error) {
	if flag != 0 {
		return flag, nil
	}
	if app.Config != nil && app.Config.DefaultWorkspaceID != 0 {
		return app.Config.DefaultWorkspaceID, nil
	}

	workspaces, err := client.Workspaces(ctx)
	if err != nil {
		return 0, cerrors.WithContext(err, "retrieving workspaces")
	}
	switch len(workspaces) {
	case 0:
		return 0, fmt.Errorf("no Toggl workspaces found")
	case 1:
		return workspaces[0].ID, nil
	default:
		names := make([]string, len(workspaces))
		for i, w := range workspaces {
			names[i] = fmt.Sprintf("%s (%d)", w.Name, w.ID)
		}
		return 0, cerrors.WithSuggestion(
			fmt.Errorf("%w: multiple workspaces, pass --workspace", ErrUsage),
			"available: "+strings.Join(names, ", ")+
				"; set default_workspace_id in the config file to skip this")
	}
}

// resolveProject maps a --project flag value (numeric ID or name, matched
// case-insensitively against active projects) to a project ID. An empty
// flag means no project.
func resolveProject(ctx context.Context, client *toggl.Client, workspaceID int64, flag string) (*int64, error) {
	flag = strings.TrimSpace(flag)
	if flag == "" {
		return nil, nil
	}

	if id, err := strconv.ParseInt(flag, 10, 64); err == nil {
		return &id, nil
	}

	projects, err := client.Projects(ctx, workspaceID)
	if err != nil {
		return nil, cerrors.WithContext(err, "retrieving projects")
	}
	for _, p := range projects {
		if p.Active && strings.EqualFold(p.Name, flag) {
			id := p.ID
			return &id, nil
		}
	}
	return nil, fmt.Errorf("project not found in workspace %d: %s", workspaceID, flag)
}
