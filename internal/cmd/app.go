package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/salmonumbrella/toggl-cli/internal/config"
	cerrors "github.com/salmonumbrella/toggl-cli/internal/errors"
	"github.com/salmonumbrella/toggl-cli/internal/outfmt"
	"github.com/salmonumbrella/toggl-cli/internal/secrets"
	"github.com/salmonumbrella/toggl-cli/internal/toggl"
	"github.com/salmonumbrella/toggl-cli/internal/ui"
)

type rootFlags struct {
	Color          string
	Output         string
	Query          string
	Debug          bool
	Yes            bool
	NoInput        bool
	NonInteractive bool
}

// App carries per-invocation state through the command tree.
type App struct {
	Flags  rootFlags
	Logger *logrus.Logger
	UI     *ui.UI
	Config *config.Config

	// Injection points for tests.
	Resolver  *secrets.Resolver
	NewClient func(token string) *toggl.Client
}

func NewApp() *App {
	return &App{
		Flags: rootFlags{
			Color:  "auto",
			Output: envOr("TOGGL_OUTPUT", "text"),
		},
		Resolver: secrets.NewResolver(),
		NewClient: func(token string) *toggl.Client {
			return toggl.New(token)
		},
	}
}

// runE adapts a handler taking the App to cobra's RunE signature.
func runE(app *App, fn func(cmd *cobra.Command, args []string, app *App) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return fn(cmd, args, app)
	}
}

// Client resolves the API token and returns an authenticated Toggl client.
func (a *App) Client() (*toggl.Client, error) {
	token, err := a.Resolver.Resolve()
	if err != nil {
		return nil, authSuggestion(err)
	}
	return a.NewClient(token), nil
}

func authSuggestion(err error) error {
	var pe *secrets.PromptError
	switch {
	case errors.Is(err, secrets.ErrEmptyCredential):
		return cerrors.WithSuggestion(err,
			"re-run the command and enter a non-empty API token, or set "+config.TokenEnvVarName)
	case errors.As(err, &pe):
		return cerrors.WithSuggestion(err,
			"set "+config.TokenEnvVarName+" or run 'toggl auth login' from a terminal")
	default:
		return err
	}
}

// IsJSON reports whether the invocation asked for JSON output.
func (a *App) IsJSON() bool {
	return a.Flags.Output == "json"
}

// PrintJSON writes v as JSON to stdout, honoring --query.
func (a *App) PrintJSON(v any) error {
	return outfmt.WriteJSONQuery(os.Stdout, v, a.Flags.Query)
}

// Confirm asks a yes/no question on stderr. --yes (and its aliases) and
// JSON output mode skip the prompt and answer yes.
func (a *App) Confirm(prompt string) (bool, error) {
	if a.Flags.Yes || a.IsJSON() {
		return true, nil
	}
	fmt.Fprint(os.Stderr, prompt)
	var answer string
	if _, err := fmt.Scanln(&answer); err != nil {
		return false, nil
	}
	return answer == "y" || answer == "yes", nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
