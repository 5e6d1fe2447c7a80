// Package logging configures the process logger and carries it through
// context.
package logging

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
)

type contextKey struct{}

// Setup returns a logger writing to stderr. Debug enables verbose output;
// otherwise only warnings and errors are shown so normal command output
// stays clean.
func Setup(debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	return logger
}

// WithLogger returns a context carrying logger.
func WithLogger(ctx context.Context, logger *logrus.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the context's logger, or a quiet default when none
// was attached.
func FromContext(ctx context.Context) *logrus.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*logrus.Logger); ok {
		return logger
	}
	return Setup(false)
}
