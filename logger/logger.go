package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"codeberg.org/pointwerk/e57"
)

var log = zerolog.Nop()

type LogLevel int8

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

type LogEvent struct {
	*zerolog.Event
}

func (e *LogEvent) Msg(msg string) {
	e.Event.Msg(msg)
}

func (e *LogEvent) Send() {
	e.Event.Send()
}

// Init initializes the logger writing to the given output. Until Init is
// called all events are discarded, so importing the library never produces
// output the embedding application did not ask for.
func Init(out io.Writer, debug, verbose bool) {
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}

	log = zerolog.New(output).With().Timestamp().Logger()

	SetLogLevel(WarnLevel) // Default log level

	if debug {
		SetLogLevel(DebugLevel)
	} else if verbose {
		SetLogLevel(InfoLevel)
	}
}

// SetLogLevel sets the global log level
func SetLogLevel(level LogLevel) {
	zerolog.SetGlobalLevel(zerolog.Level(level))
}

// Debug logs a debug message
func Debug() *LogEvent {
	return &LogEvent{log.Debug()}
}

// Info logs an info message
func Info() *LogEvent {
	return &LogEvent{log.Info()}
}

// Warn logs a warning message
func Warn() *LogEvent {
	return &LogEvent{log.Warn()}
}

// Error logs an error message
func Error() *LogEvent {
	return &LogEvent{log.Error()}
}

// ErrorWithCode logs an error message carrying an e57 exception's code,
// description, context, and source location as structured fields
func ErrorWithCode(ex *e57.Exception) *LogEvent {
	return &LogEvent{withException(log.Error(), ex)}
}

// FatalWithCode logs a fatal message with an e57 exception and exits the program
func FatalWithCode(ex *e57.Exception) *LogEvent {
	return &LogEvent{withException(log.Fatal(), ex)}
}

func withException(ev *zerolog.Event, ex *e57.Exception) *zerolog.Event {
	if ex == nil {
		return ev
	}

	ev = ev.Int("error_code", int(ex.Code())).
		Str("error_message", e57.Describe(ex.Code()))
	if ex.Context() != "" {
		ev = ev.Str("error_context", ex.Context())
	}
	if ex.SourceFileName() != "" {
		ev = ev.Str("source_file", ex.SourceFileName()).
			Int("source_line", ex.SourceLineNumber()).
			Str("source_function", ex.SourceFunctionName())
	}

	return ev
}
