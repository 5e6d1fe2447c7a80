package cmd

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/salmonumbrella/toggl-cli/internal/secrets"
	"github.com/salmonumbrella/toggl-cli/internal/transport"
)

const (
	ExitSuccess   = 0
	ExitGeneral   = 1
	ExitUsage     = 2
	ExitAuth      = 3
	ExitNotFound  = 4
	ExitTemporary = 6
	ExitCanceled  = 130
)

// ErrUsage marks command-line usage errors for exit-code mapping.
var ErrUsage = errors.New("usage error")

// ExitCode maps command errors to stable process exit codes for automation.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	if isUsageError(err) {
		return ExitUsage
	}
	if isAuthFailure(err) {
		return ExitAuth
	}
	if isNotFound(err) {
		return ExitNotFound
	}
	if isTemporaryFailure(err) {
		return ExitTemporary
	}
	return ExitGeneral
}

func isUsageError(err error) bool {
	if errors.Is(err, ErrUsage) {
		return true
	}

	msg := strings.ToLower(err.Error())
	fragments := []string{
		"unknown flag",
		"unknown command",
		"invalid argument",
		"accepts no arg",
		"requires at least",
		"flag needs an argument",
		"required flag(s)",
	}
	for _, f := range fragments {
		if strings.Contains(msg, f) {
			return true
		}
	}
	return false
}

func isAuthFailure(err error) bool {
	if transport.IsUnauthorized(err) {
		return true
	}
	if errors.Is(err, secrets.ErrEmptyCredential) {
		return true
	}

	var se *secrets.StoreError
	var pe *secrets.PromptError
	return errors.As(err, &se) || errors.As(err, &pe)
}

func isNotFound(err error) bool {
	if transport.IsHTTPStatus(err, http.StatusNotFound) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "not found")
}

func isTemporaryFailure(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}

	return transport.IsHTTPStatus(err, http.StatusInternalServerError) ||
		transport.IsHTTPStatus(err, http.StatusBadGateway) ||
		transport.IsHTTPStatus(err, http.StatusServiceUnavailable) ||
		transport.IsHTTPStatus(err, http.StatusGatewayTimeout)
}
