/*
Package logx provides a structured logging wrapper based on zerolog.

It initializes the global logger for the portal, picks a console or JSON output depending on the
environment, and offers key-value helpers plus component-scoped sub-loggers used by the API client,
the workspace registry and the HTTP layer.
*/
package logx

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitGlobalLogger initializes the global zerolog instance.
// Development: Debug level, colored ConsoleWriter on stderr.
// Production: Info level, JSON on stdout.
// All logs include a Unix timestamp and caller information.
func InitGlobalLogger(isDevelopment bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	var out io.Writer = os.Stdout
	level := zerolog.InfoLevel

	if isDevelopment {
		out = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			NoColor:    false,
			TimeFormat: time.RFC3339,
		}
		level = zerolog.DebugLevel
	}

	log.Logger = zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Caller().
		Logger()
}

// Logger returns a pointer to the global zerolog.Logger instance.
func Logger() *zerolog.Logger {
	return &log.Logger
}

// Component returns a child of the global logger tagged with the given component name.
func Component(name string) zerolog.Logger {
	return Logger().With().Str("component", name).Logger()
}

// checkFields drops an odd-length key-value list so zerolog never receives a dangling key.
func checkFields(level string, fields []any) []any {
	if len(fields)%2 != 0 {
		Logger().Warn().
			Int("fields_count", len(fields)).
			Str("log_level", level).
			Msgf("logx %s call received odd number of fields: %v. Fields ignored.", level, fields)
		return nil
	}
	return fields
}

// Debug records a message at the Debug level with optional key-value fields.
func Debug(msg string, fields ...any) {
	fields = checkFields("Debug", fields)

	Logger().Debug().
		Fields(fields).
		CallerSkipFrame(1).
		Msg(msg)
}

// Info records a message at the Info level with optional key-value fields.
func Info(msg string, fields ...any) {
	fields = checkFields("Info", fields)

	Logger().Info().
		Fields(fields).
		CallerSkipFrame(1).
		Msg(msg)
}

// Warn records a message at the Warn level with optional key-value fields.
func Warn(msg string, fields ...any) {
	fields = checkFields("Warn", fields)

	Logger().Warn().
		Fields(fields).
		CallerSkipFrame(1).
		Msg(msg)
}

// Error records an error at the Error level with optional key-value fields.
func Error(err error, msg string, fields ...any) {
	fields = checkFields("Error", fields)

	Logger().Error().
		Err(err).
		Fields(fields).
		CallerSkipFrame(1).
		Msg(msg)
}

// Fatal records an error at the Fatal level and then terminates the process with os.Exit(1).
func Fatal(err error, msg string, fields ...any) {
	fields = checkFields("Fatal", fields)

	Logger().Fatal().
		Err(err).
		Fields(fields).
		CallerSkipFrame(1).
		Msg(msg)
}
