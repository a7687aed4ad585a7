package xferstat

import (
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var logger = zerolog.Nop()

func NewLogger(w io.Writer, level string) (zerolog.Logger, error) {
	logLvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), errors.Wrapf(err, "invalid log level %q", level)
	}

	logWriter := zerolog.ConsoleWriter{Out: w}

	return zerolog.New(logWriter).Level(logLvl).With().Timestamp().Logger(), nil
}

func SetLogger(l zerolog.Logger) {
	logger = l
}
