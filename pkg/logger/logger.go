// Package logger provides structured logging on top of zerolog.
package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type Logger struct {
	logger zerolog.Logger
}

// New creates a JSON logger writing to stdout at the given level.
// Unknown levels fall back to info.
func New(level string) *Logger {
	var l zerolog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = zerolog.DebugLevel
	case "info":
		l = zerolog.InfoLevel
	case "warn", "warning":
		l = zerolog.WarnLevel
	case "error":
		l = zerolog.ErrorLevel
	default:
		l = zerolog.InfoLevel
	}

	logger := zerolog.New(os.Stdout).
		Level(l).
		With().
		Timestamp().
		Logger()

	return &Logger{logger: logger}
}

func (l *Logger) Debug(message string, args ...any) {
	l.msg(l.logger.Debug(), message, args...)
}

func (l *Logger) Info(message string, args ...any) {
	l.msg(l.logger.Info(), message, args...)
}

func (l *Logger) Warn(message string, args ...any) {
	l.msg(l.logger.Warn(), message, args...)
}

func (l *Logger) Error(message any, args ...any) {
	l.msg(l.logger.Error(), toMessage(message), args...)
}

func (l *Logger) Fatal(message any, args ...any) {
	l.msg(l.logger.Fatal(), toMessage(message), args...)
}

func (l *Logger) msg(event *zerolog.Event, message string, args ...any) {
	if len(args) == 0 {
		event.Msg(message)
		return
	}
	event.Msgf(message, args...)
}

func toMessage(message any) string {
	switch m := message.(type) {
	case error:
		return m.Error()
	case string:
		return m
	default:
		return fmt.Sprintf("%v", m)
	}
}
