package logging

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger configures the global logger based on verbosity level
func SetupLogger(verbosity int) {
	SetupLoggerTo(os.Stderr, verbosity)
}

// SetupLoggerTo configures the global logger to write to out
func SetupLoggerTo(out io.Writer, verbosity int) {
	zerolog.SetGlobalLevel(LevelFor(verbosity))

	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(out),
	}
	log.Logger = zerolog.New(consoleWriter).With().Timestamp().Logger()

	// Add caller information for debug and trace levels
	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", verbosity).Msg("Logger initialized")
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// LevelFor maps a -v count to a log level
func LevelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// LogDuration logs the duration of an operation
func LogDuration(logger zerolog.Logger, start time.Time, operation string) {
	logger.Debug().
		Str("operation", operation).
		Dur("duration", time.Since(start)).
		Msg("Operation completed")
}
