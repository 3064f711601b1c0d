package errors

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrorBuilder provides a fluent API for constructing enriched errors.
type ErrorBuilder struct {
	err       error
	title     *string
	hints     []string
	context   map[string]interface{}
	exitCode  *int
	sentinels []error // Sentinel errors to mark with errors.Mark()
}

// Build creates a new ErrorBuilder from a base error.
// If the error is a leaf error (no wrapped cause), it is marked as a sentinel
// so errors.Is() keeps matching after enrichment.
func Build(err error) *ErrorBuilder {
	builder := &ErrorBuilder{err: err}

	if err != nil && errors.UnwrapOnce(err) == nil {
		builder.sentinels = append(builder.sentinels, err)
	}

	return builder
}

// WithHint adds a user-facing hint to the error.
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.hints = append(b.hints, hint)
	return b
}

// WithHintf adds a formatted user-facing hint to the error.
func (b *ErrorBuilder) WithHintf(format string, args ...interface{}) *ErrorBuilder {
	b.hints = append(b.hints, fmt.Sprintf(format, args...))
	return b
}

// WithExplanation adds a detailed explanation to the error.
func (b *ErrorBuilder) WithExplanation(explanation string) *ErrorBuilder {
	b.err = errors.WithDetail(b.err, explanation)
	return b
}

// WithExplanationf adds a formatted explanation to the error.
func (b *ErrorBuilder) WithExplanationf(format string, args ...interface{}) *ErrorBuilder {
	return b.WithExplanation(fmt.Sprintf(format, args...))
}

// WithContext adds safe structured context to the error.
// Context is displayed in verbose mode and sent to Sentry.
func (b *ErrorBuilder) WithContext(key string, value interface{}) *ErrorBuilder {
	if b.context == nil {
		b.context = make(map[string]interface{})
	}
	b.context[key] = value
	return b
}

// WithTitle sets a custom error title ("Timer Error", "Store Error", ...).
func (b *ErrorBuilder) WithTitle(title string) *ErrorBuilder {
	b.title = &title
	return b
}

// WithExitCode attaches an exit code to the error.
func (b *ErrorBuilder) WithExitCode(code int) *ErrorBuilder {
	b.exitCode = &code
	return b
}

// WithSentinel marks the error with a sentinel error for errors.Is() checks.
func (b *ErrorBuilder) WithSentinel(sentinel error) *ErrorBuilder {
	b.sentinels = append(b.sentinels, sentinel)
	return b
}

// Err finalizes and returns the enriched error.
func (b *ErrorBuilder) Err() error {
	if b.err == nil {
		return nil
	}

	err := b.err

	if b.title != nil {
		err = errors.WithHint(err, titlePrefix+*b.title)
	}

	for _, hint := range b.hints {
		err = errors.WithHint(err, hint)
	}

	if len(b.context) > 0 {
		// Sort keys for consistent output.
		keys := make([]string, 0, len(b.context))
		for k := range b.context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		// Build format string: "widget=%s state=%s".
		formatParts := make([]string, 0, len(keys))
		safeValues := make([]interface{}, 0, len(keys))
		for _, key := range keys {
			formatParts = append(formatParts, key+"=%s")
			safeValues = append(safeValues, errors.Safe(b.context[key]))
		}

		err = errors.WithSafeDetails(err, strings.Join(formatParts, " "), safeValues...)
	}

	// Sentinels go on last so they sit at the top of the chain.
	for _, sentinel := range b.sentinels {
		err = &markedError{cause: errors.Mark(err, sentinel), sentinel: sentinel}
	}

	if b.exitCode != nil {
		err = WithExitCode(err, *b.exitCode)
	}

	return err
}

// markedError exposes a sentinel to the standard library's errors.Is, which
// does not see cockroachdb marks.
type markedError struct {
	cause    error
	sentinel error
}

func (e *markedError) Error() string { return e.cause.Error() }

func (e *markedError) Cause() error { return e.cause }

func (e *markedError) Unwrap() error { return e.cause }

func (e *markedError) Is(target error) bool { return target == e.sentinel }

// Format keeps cockroachdb's detailed %+v output for the wrapped chain.
func (e *markedError) Format(s fmt.State, verb rune) { errors.FormatError(e, s, verb) }

// SafeFormatError prints nothing of its own; the message belongs to the cause.
func (e *markedError) SafeFormatError(errors.Printer) error { return e.cause }
