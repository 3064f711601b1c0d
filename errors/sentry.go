package errors

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"

	"github.com/cloudposse/ticktock/pkg/schema"
)

const (
	// CloseSentryTimeout is the timeout for flushing Sentry events before shutdown.
	CloseSentryTimeout = 2 * time.Second

	maxBreadcrumbs = 100
	tagPrefix      = "ticktock."
)

// InitializeSentry initializes the Sentry SDK with the provided configuration.
// A nil or disabled configuration is a no-op.
func InitializeSentry(config *schema.SentryConfig) error {
	if config == nil || !config.Enabled {
		return nil
	}

	sampleRate := config.SampleRate
	if sampleRate == 0 {
		sampleRate = 1.0
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              config.DSN,
		Environment:      config.Environment,
		Release:          config.Release,
		Debug:            config.Debug,
		SampleRate:       sampleRate,
		AttachStacktrace: true,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize Sentry: %w", err)
	}

	for key, value := range config.Tags {
		sentry.ConfigureScope(func(scope *sentry.Scope) {
			scope.SetTag(key, value)
		})
	}

	return nil
}

// CloseSentry flushes any pending Sentry events.
func CloseSentry() {
	sentry.Flush(CloseSentryTimeout)
}

// CaptureError sends an error to Sentry using cockroachdb/errors' PII-free report.
// Safe to call when Sentry was never initialized.
func CaptureError(err error) {
	CaptureErrorWithContext(err, nil)
}

// CaptureErrorWithContext captures an error with extra tags (widget, command, ...).
func CaptureErrorWithContext(err error, context map[string]string) {
	if err == nil {
		return
	}

	event, extraDetails := errors.BuildSentryReport(err)
	hub := sentry.CurrentHub()

	hub.WithScope(func(scope *sentry.Scope) {
		for key, value := range extraDetails {
			if contextMap, ok := value.(map[string]interface{}); ok {
				scope.SetContext(key, contextMap)
			}
		}

		if event.Tags == nil {
			event.Tags = make(map[string]string)
		}
		for key, value := range context {
			event.Tags[tagPrefix+key] = value
		}

		for _, hint := range errors.GetAllHints(err) {
			scope.AddBreadcrumb(&sentry.Breadcrumb{
				Type:     "info",
				Category: "hint",
				Message:  hint,
				Level:    sentry.LevelInfo,
			}, maxBreadcrumbs)
		}

		if exitCode := GetExitCode(err); exitCode != ExitCodeSuccess && exitCode != ExitCodeFailure {
			event.Tags[tagPrefix+"exit_code"] = fmt.Sprintf("%d", exitCode)
		}

		hub.CaptureEvent(event)
	})
}
