package core

import "log"

// Logger is any service that can report application events and errors.
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}

// StdLogger logs to the standard library logger only. Used in DEV and TEST.
type StdLogger struct {
	std *log.Logger
}

var _ Logger = (*StdLogger)(nil)

func NewStdLogger(std *log.Logger) *StdLogger {
	return &StdLogger{std: std}
}

func (l StdLogger) print(lvl, msg string, args []interface{}) {
	l.std.Printf("%s: %s", lvl, msg)
	for _, arg := range args {
		l.std.Printf("%+v\n", arg)
	}
}

func (l StdLogger) Enable(bool)                            {}
func (l StdLogger) Debug(msg string, args ...interface{})  { l.print("DEBUG", msg, args) }
func (l StdLogger) Info(msg string, args ...interface{})   { l.print("INFO", msg, args) }
func (l StdLogger) Warn(msg string, args ...interface{})   { l.print("WARN", msg, args) }
func (l StdLogger) Error(msg string, args ...interface{})  { l.print("ERROR", msg, args) }
func (l StdLogger) Fatal(msg string, args ...interface{}) {
	l.print("FATAL", msg, args)
	l.std.Fatal(msg)
}
