package logger

import "codeberg.org/pointwerk/e57"

// Logger defines the interface for logging operations.
type Logger interface {
	Debug() *LogEvent
	Info() *LogEvent
	Warn() *LogEvent
	Error() *LogEvent
	ErrorWithCode(ex *e57.Exception) *LogEvent
	FatalWithCode(ex *e57.Exception) *LogEvent
}

type defaultLogger struct{}

// Default returns a Logger backed by the package-level logger.
func Default() Logger {
	return defaultLogger{}
}

func (defaultLogger) Debug() *LogEvent { return Debug() }
func (defaultLogger) Info() *LogEvent  { return Info() }
func (defaultLogger) Warn() *LogEvent  { return Warn() }
func (defaultLogger) Error() *LogEvent { return Error() }

func (defaultLogger) ErrorWithCode(ex *e57.Exception) *LogEvent { return ErrorWithCode(ex) }
func (defaultLogger) FatalWithCode(ex *e57.Exception) *LogEvent { return FatalWithCode(ex) }
