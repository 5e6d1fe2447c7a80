package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/salmonumbrella/toggl-cli/internal/config"
)

const tokenPrompt = "Enter your API token from https://track.toggl.com/profile: "

// Resolver produces the API token for the current invocation. All
// collaborators are injected so the resolution chain is testable without a
// real keyring or terminal.
type Resolver struct {
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(key string) (string, bool)
	Store     Store
	Prompter  Prompter
}

// NewResolver builds the production resolver: process environment, OS
// keyring, controlling terminal.
func NewResolver() *Resolver {
	return &Resolver{
		LookupEnv: os.LookupEnv,
		Store:     OpenKeyring(),
		Prompter:  TerminalPrompter{},
	}
}

// Resolve returns the API token, trying sources in strict order:
//
//  1. TOGGL_API_TOKEN — when non-empty the keyring is neither read nor
//     written this run.
//  2. The keyring entry. A backend failure other than "not found" aborts
//     resolution; it is never treated as a missing entry.
//  3. A hidden interactive prompt. The entered token is persisted to the
//     keyring before it is returned, so the next run skips the prompt.
//
// Every failure is fatal; nothing in the chain retries.
func (r *Resolver) Resolve() (string, error) {
	if token, ok := r.lookupEnv(config.TokenEnvVarName); ok && token != "" {
		return token, nil
	}

	token, err := r.Store.Get()
	if err == nil {
		return token, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return "", err
	}

	entered, err := r.Prompter.ReadSecret(tokenPrompt)
	if err != nil {
		return "", &PromptError{Err: err}
	}
	entered = strings.TrimSpace(entered)
	if entered == "" {
		return "", ErrEmptyCredential
	}

	if err := r.Store.Set(entered); err != nil {
		return "", err
	}
	return entered, nil
}

func (r *Resolver) lookupEnv(key string) (string, bool) {
	if r.LookupEnv != nil {
		return r.LookupEnv(key)
	}
	return os.LookupEnv(key)
}
