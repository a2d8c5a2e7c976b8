package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"depscope/internal/domain/interfaces"
)

var (
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed)
	debugColor = color.New(color.FgHiBlack)
)

// consoleLogger writes leveled lines to the terminal. Warnings and errors go
// to stderr with severity coloring; debug lines appear only in verbose mode.
type consoleLogger struct {
	verbose bool
}

// newLogger builds the command logger. Silent mode returns a no-op sink
// instead of filtering output downstream.
func newLogger(silent, verbose bool) interfaces.Logger {
	if silent {
		return &interfaces.NoOpLogger{}
	}
	return &consoleLogger{verbose: verbose}
}

func (l *consoleLogger) Debug(msg string, fields ...interfaces.Field) {
	if !l.verbose {
		return
	}
	debugColor.Fprintln(os.Stderr, "[DEBUG] "+msg+formatFields(fields))
}

func (l *consoleLogger) Info(msg string, fields ...interfaces.Field) {
	fmt.Fprintln(os.Stdout, "[INFO] "+msg+formatFields(fields))
}

func (l *consoleLogger) Warn(msg string, fields ...interfaces.Field) {
	warnColor.Fprintln(os.Stderr, "[WARNING] "+msg+formatFields(fields))
}

func (l *consoleLogger) Error(msg string, fields ...interfaces.Field) {
	errorColor.Fprintln(os.Stderr, "[ERROR] "+msg+formatFields(fields))
}

func formatFields(fields []interfaces.Field) string {
	out := ""
	for _, f := range fields {
		out += fmt.Sprintf(" %s=%v", f.Key, f.Value)
	}
	return out
}
