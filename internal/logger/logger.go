// Package logger builds the zerolog loggers used by the binaries.
package logger

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// New returns a logger writing to 'w' at given level ("trace", "debug",
// "info", ...). Pretty loggers write human readable lines, others write JSON.
func New(w io.Writer, level string, pretty bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), errors.Wrapf(err, "invalid log level %q", level)
	}

	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
