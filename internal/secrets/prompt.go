package secrets

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// Prompter reads a secret from the user without echoing it.
type Prompter interface {
	ReadSecret(prompt string) (string, error)
}

// TerminalPrompter reads a secret from the controlling terminal.
type TerminalPrompter struct{}

func (TerminalPrompter) ReadSecret(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal")
	}

	fmt.Fprint(os.Stderr, prompt)
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(secret), nil
}
