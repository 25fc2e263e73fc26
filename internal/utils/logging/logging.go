// Package logging wraps zerolog behind the short call-site helpers used
// throughout the program (I/S/W/E for info, success, warn, error and D
// for leveled debug output).
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Level gates D output; 0 silences debug entirely, 5 is maximally chatty.
var Level int

var logger = zerolog.New(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: time.TimeOnly,
}).With().Timestamp().Logger()

// Setup sets the debug verbosity (0-5).
func Setup(debugLevel int) {
	Level = debugLevel
	if Level > 0 {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}
}

// I logs informational messages.
func I(format string, args ...any) {
	logger.Info().Msgf(format, args...)
}

// S logs success messages.
func S(format string, args ...any) {
	logger.Info().Str("status", "ok").Msgf(format, args...)
}

// W logs warnings.
func W(format string, args ...any) {
	logger.Warn().Msgf(format, args...)
}

// E logs errors.
func E(format string, args ...any) {
	logger.Error().Msgf(format, args...)
}

// D logs debug messages at or below the configured level.
func D(l int, format string, args ...any) {
	if l > Level {
		return
	}
	logger.Debug().Int("lvl", l).Msgf(format, args...)
}
