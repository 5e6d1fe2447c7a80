package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/toggl-cli/internal/config"
	cerrors "github.com/salmonumbrella/toggl-cli/internal/errors"
	"github.com/salmonumbrella/toggl-cli/internal/secrets"
)

func newAuthCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the stored API token",
	}

	cmd.AddCommand(newAuthLoginCmd(app))
	cmd.AddCommand(newAuthStatusCmd(app))
	cmd.AddCommand(newAuthLogoutCmd(app))

	return cmd
}

func newAuthLoginCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Prompt for an API token and store it in the OS keyring",
		Args:  cobra.NoArgs,
		RunE: runE(app, func(cmd *cobra.Command, _ []string, app *App) error {
			// Deliberately bypasses the env var so an existing
			// TOGGL_API_TOKEN doesn't mask what gets stored.
			token, err := app.Resolver.Prompter.ReadSecret(
				"Enter your API token from https://track.toggl.com/profile: ")
			if err != nil {
				return &secrets.PromptError{Err: err}
			}
			token = strings.TrimSpace(token)
			if token == "" {
				return secrets.ErrEmptyCredential
			}

			if err := app.Resolver.Store.Set(token); err != nil {
				return err
			}

			if app.IsJSON() {
				return app.PrintJSON(map[string]any{"status": "stored"})
			}
			fmt.Println("API token stored in the OS keyring")
			return nil
		}),
	}
}

func newAuthStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show where the API token would come from",
		Args:  cobra.NoArgs,
		RunE: runE(app, func(cmd *cobra.Command, _ []string, app *App) error {
			source := tokenSource(app)

			if app.IsJSON() {
				return app.PrintJSON(map[string]any{"source": source})
			}

			switch source {
			case "env":
				fmt.Printf("token comes from %s\n", config.TokenEnvVarName)
			case "keyring":
				fmt.Println("token comes from the OS keyring")
			default:
				fmt.Println("no token configured; the next command will prompt")
			}
			return nil
		}),
	}
}

// tokenSource reports the first source the resolver would use, without
// prompting or persisting anything.
func tokenSource(app *App) string {
	if v, ok := os.LookupEnv(config.TokenEnvVarName); ok && v != "" {
		return "env"
	}
	if _, err := app.Resolver.Store.Get(); err == nil {
		return "keyring"
	}
	return "none"
}

func newAuthLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "logout",
		Aliases: []string{"delete-api-token"},
		Short:   "Delete the stored API token",
		Args:    cobra.NoArgs,
		RunE: runE(app, func(cmd *cobra.Command, _ []string, app *App) error {
			confirmed, err := app.Confirm("Delete the stored API token? [y/N] ")
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Println("Cancelled")
				return nil
			}

			err = app.Resolver.Store.Delete()
			if errors.Is(err, secrets.ErrNotFound) {
				if app.IsJSON() {
					return app.PrintJSON(map[string]any{"status": "absent"})
				}
				fmt.Println("No API token stored")
				return nil
			}
			if err != nil {
				return cerrors.WithContext(err, "deleting API token")
			}

			if app.IsJSON() {
				return app.PrintJSON(map[string]any{"status": "deleted"})
			}
			fmt.Println("API token deleted from the OS keyring")
			return nil
		}),
	}
}
