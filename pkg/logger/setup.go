package logger

import (
	"fmt"
	"io"
	"os"

	log "github.com/charmbracelet/log"

	errUtils "github.com/cloudposse/ticktock/errors"
	"github.com/cloudposse/ticktock/pkg/schema"
)

const (
	devStdout = "/dev/stdout"
	devStderr = "/dev/stderr"
	devNull   = "/dev/null"

	logFilePerm = 0o644
)

// Options tunes Setup beyond what the configuration file carries.
type Options struct {
	Styles *log.Styles
	// Stderr is used when no log file is configured.
	Stderr io.Writer
}

// Setup builds the global logger from the logs configuration.
// The returned closer releases the log file, if one was opened.
func Setup(cfg schema.Logs, opts Options) (io.Closer, error) {
	level, err := ParseLogLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	out, closer, err := openOutput(cfg.File, opts.Stderr)
	if err != nil {
		return nil, err
	}

	l := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: cfg.File != "" && cfg.File != devStderr && cfg.File != devStdout,
	})
	if opts.Styles != nil {
		l.SetStyles(opts.Styles)
	}

	SetDefault(l)
	return closer, nil
}

func openOutput(file string, stderr io.Writer) (io.Writer, io.Closer, error) {
	if stderr == nil {
		stderr = os.Stderr
	}

	switch file {
	case "", devStderr:
		return stderr, nopCloser{}, nil
	case devStdout:
		return os.Stdout, nopCloser{}, nil
	case devNull:
		return io.Discard, nopCloser{}, nil
	}

	f, err := os.OpenFile(file, os.O_WRONLY|os.O_APPEND|os.O_CREATE, logFilePerm)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: log file %s: %w", errUtils.ErrInvalidConfiguration, file, err)
	}
	return f, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
