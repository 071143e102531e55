// Package logger provides a configured zerolog logger.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a new zerolog.Logger scoped to the given component.
func New(component string) zerolog.Logger {
	return zerolog.New(os.Stdout).With().
		Str("component", component).
		Timestamp().
		Logger()
}
