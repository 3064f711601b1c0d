package logger

import log "github.com/charmbracelet/log"

// Debug logs at DebugLevel on the global logger.
func Debug(msg interface{}, keyvals ...interface{}) {
	Default().Debug(msg, keyvals...)
}

// Info logs at InfoLevel on the global logger.
func Info(msg interface{}, keyvals ...interface{}) {
	Default().Info(msg, keyvals...)
}

// Warn logs at WarnLevel on the global logger.
func Warn(msg interface{}, keyvals ...interface{}) {
	Default().Warn(msg, keyvals...)
}

// Error logs at ErrorLevel on the global logger.
func Error(msg interface{}, keyvals ...interface{}) {
	Default().Error(msg, keyvals...)
}

// Debugf logs a formatted message at DebugLevel.
func Debugf(format string, args ...interface{}) {
	Default().Debugf(format, args...)
}

// With returns a child of the global logger carrying keyvals.
func With(keyvals ...interface{}) *log.Logger {
	return Default().With(keyvals...)
}

// GetLevel returns the global logger's level.
func GetLevel() log.Level {
	return Default().GetLevel()
}
