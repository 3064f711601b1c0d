package logger

import (
	"fmt"
	"strings"

	log "github.com/charmbracelet/log"

	errUtils "github.com/cloudposse/ticktock/errors"
)

// TraceLevel is one step more verbose than charm's DebugLevel.
// Tick-by-tick scheduler diagnostics log at this level.
const TraceLevel = log.DebugLevel - 1

// OffLevel silences all output.
const OffLevel = log.Level(1 << 10)

type LogLevel string

const (
	LogLevelOff     LogLevel = "Off"
	LogLevelTrace   LogLevel = "Trace"
	LogLevelDebug   LogLevel = "Debug"
	LogLevelInfo    LogLevel = "Info"
	LogLevelWarning LogLevel = "Warning"
	LogLevelError   LogLevel = "Error"
)

var levelMap = map[string]log.Level{
	"off":     OffLevel,
	"trace":   TraceLevel,
	"debug":   log.DebugLevel,
	"info":    log.InfoLevel,
	"warning": log.WarnLevel,
	"warn":    log.WarnLevel,
	"error":   log.ErrorLevel,
}

// ParseLogLevel converts a configured level name into a charm level.
// Names are case-insensitive; the empty string means Warning.
func ParseLogLevel(level string) (log.Level, error) {
	if strings.TrimSpace(level) == "" {
		return log.WarnLevel, nil
	}
	if l, ok := levelMap[strings.ToLower(strings.TrimSpace(level))]; ok {
		return l, nil
	}
	return log.WarnLevel, fmt.Errorf("%w: '%s'. Supported log levels are Trace, Debug, Info, Warning, Error, Off",
		errUtils.ErrInvalidLogLevel, level)
}

// Trace logs a message at TraceLevel on the global logger.
func Trace(msg interface{}, keyvals ...interface{}) {
	Default().Log(TraceLevel, msg, keyvals...)
}
