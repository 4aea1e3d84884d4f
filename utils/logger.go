package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

// Logger provides leveled, printf-style logging throughout the application.
type Logger struct {
	info  *log.Logger
	warn  *log.Logger
	err   *log.Logger
	debug *log.Logger
}

// NewLogger creates a Logger writing to stdout/stderr.
func NewLogger() *Logger {
	return newLogger(os.Stdout, os.Stderr)
}

// NewDiscardLogger returns a Logger that drops everything. Used by tests.
func NewDiscardLogger() *Logger {
	return newLogger(io.Discard, io.Discard)
}

func newLogger(out, errOut io.Writer) *Logger {
	return &Logger{
		info:  log.New(out, "", 0),
		warn:  log.New(out, "", 0),
		err:   log.New(errOut, "", 0),
		debug: log.New(out, "", 0),
	}
}

func (l *Logger) timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

func (l *Logger) Info(format string, args ...any) {
	l.info.Print(fmt.Sprintf("[%s] \033[32mINFO\033[0m  ", l.timestamp()) + fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(format string, args ...any) {
	l.warn.Print(fmt.Sprintf("[%s] \033[33mWARN\033[0m  ", l.timestamp()) + fmt.Sprintf(format, args...))
}

func (l *Logger) Error(format string, args ...any) {
	l.err.Print(fmt.Sprintf("[%s] \033[31mERROR\033[0m ", l.timestamp()) + fmt.Sprintf(format, args...))
}

func (l *Logger) Debug(format string, args ...any) {
	l.debug.Print(fmt.Sprintf("[%s] \033[36mDEBUG\033[0m ", l.timestamp()) + fmt.Sprintf(format, args...))
}
