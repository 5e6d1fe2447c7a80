package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	cerrors "github.com/salmonumbrella/toggl-cli/internal/errors"
	"github.com/salmonumbrella/toggl-cli/internal/ui"
)

func newWorkspacesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "workspaces",
		Short: "List workspaces",
		Args:  cobra.NoArgs,
		RunE: runE(app, func(cmd *cobra.Command, _ []string, app *App) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			workspaces, err := client.Workspaces(cmd.Context())
			if err != nil {
				return cerrors.WithContext(err, "retrieving workspaces")
			}

			if app.IsJSON() {
				type workspaceOut struct {
					ID   int64  `json:"id"`
					Name string `json:"name"`
				}
				out := make([]workspaceOut, len(workspaces))
				for i, w := range workspaces {
					out[i] = workspaceOut{ID: w.ID, Name: w.Name}
				}
				return app.PrintJSON(out)
			}

			u := ui.FromContext(cmd.Context())
			for _, w := range workspaces {
				fmt.Printf("%s  %s\n", u.Faint(fmt.Sprintf("%d", w.ID)), w.Name)
			}
			return nil
		}),
	}
}

func newProjectsCmd(app *App) *cobra.Command {
	var workspace int64
	var all bool

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List projects in a workspace",
		Args:  cobra.NoArgs,
		RunE: runE(app, func(cmd *cobra.Command, _ []string, app *App) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			workspaceID, err := resolveWorkspace(cmd.Context(), app, client, workspace)
			if err != nil {
				return err
			}

			projects, err := client.Projects(cmd.Context(), workspaceID)
			if err != nil {
				return cerrors.WithContext(err, "retrieving projects")
			}

			if !all {
				active := projects[:0]
				for _, p := range projects {
					if p.Active {
						active = append(active, p)
					}
				}
				projects = active
			}

			if app.IsJSON() {
				type projectOut struct {
					ID          int64  `json:"id"`
					Name        string `json:"name"`
					Active      bool   `json:"active"`
					WorkspaceID int64  `json:"workspaceId"`
				}
				out := make([]projectOut, len(projects))
				for i, p := range projects {
					out[i] = projectOut{ID: p.ID, Name: p.Name, Active: p.Active, WorkspaceID: p.WorkspaceID}
				}
				return app.PrintJSON(out)
			}

			u := ui.FromContext(cmd.Context())
			for _, p := range projects {
				marker := ""
				if !p.Active {
					marker = u.Faint(" (archived)")
				}
				fmt.Printf("%s  %s%s\n", u.Faint(fmt.Sprintf("%d", p.ID)), p.Name, marker)
			}
			return nil
		}),
	}

	cmd.Flags().Int64Var(&workspace, "workspace", 0, "Workspace ID (default: config default_workspace_id, or the only workspace)")
	cmd.Flags().BoolVar(&all, "all", false, "Include archived projects")

	return cmd
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated user",
		Args:  cobra.NoArgs,
		RunE: runE(app, func(cmd *cobra.Command, _ []string, app *App) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			me, err := client.Me(cmd.Context())
			if err != nil {
				return cerrors.WithContext(err, "retrieving profile")
			}

			if app.IsJSON() {
				return app.PrintJSON(me)
			}

			fmt.Printf("%s <%s>\n", me.Fullname, me.Email)
			fmt.Printf("default workspace: %d\n", me.DefaultWorkspaceID)
			fmt.Printf("timezone: %s\n", me.Timezone)
			return nil
		}),
	}
}
