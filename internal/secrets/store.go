// Package secrets resolves the Toggl API token for the current process.
//
// Resolution tries, in strict order: the TOGGL_API_TOKEN environment
// variable, the OS keyring (macOS Keychain, Windows Credential Manager,
// Linux Secret Service, or an encrypted file fallback), and finally an
// interactive hidden prompt. A token entered at the prompt is written back
// to the keyring so later runs don't prompt again.
package secrets

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Store.Get when no token has been stored yet.
// Any other Get error means the backend itself failed.
var ErrNotFound = errors.New("no stored credential")

// ErrEmptyCredential is returned when the user submits a blank token at the
// prompt. The store is not written in that case.
var ErrEmptyCredential = errors.New("empty API token")

// Store is the minimal secure-storage contract the resolver needs. The
// real implementation sits on the OS keyring; tests use an in-memory fake.
type Store interface {
	Get() (string, error)
	Set(token string) error
	Delete() error
}

// StoreError wraps a keyring backend failure (anything other than "entry
// not found"). It is fatal for the run; the resolver never treats it as a
// missing entry.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("credential store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// PromptError wraps a failure to read the token interactively, typically
// because no terminal is attached.
type PromptError struct {
	Err error
}

func (e *PromptError) Error() string {
	return fmt.Sprintf("reading API token: %v", e.Err)
}

func (e *PromptError) Unwrap() error { return e.Err }
