package logger

import (
	"os"
	"sync/atomic"

	log "github.com/charmbracelet/log"
)

// defaultLogger is the global logger stored atomically.
var defaultLogger atomic.Pointer[log.Logger]

func init() {
	defaultLogger.Store(log.Default())
}

// Default returns the global logger.
func Default() *log.Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the global logger. It also becomes charm's package-level
// default, so plain log.Info calls route through it.
func SetDefault(logger *log.Logger) {
	if logger == nil {
		return
	}
	defaultLogger.Store(logger)
	log.SetDefault(logger)
}

// New creates a logger writing to stderr.
func New() *log.Logger {
	return log.New(os.Stderr)
}
