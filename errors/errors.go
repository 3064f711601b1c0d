package errors

import "github.com/cockroachdb/errors"

// Configuration errors.
var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidLogLevel      = errors.New("invalid log level")
	ErrReadConfig           = errors.New("failed to read configuration file")
	ErrUnmarshalConfig      = errors.New("failed to unmarshal configuration")
	ErrInvalidLapOrder      = errors.New("invalid lap order")
	ErrInvalidResetPolicy   = errors.New("invalid timer reset policy")
)

// Widget errors.
var (
	ErrZeroDuration = errors.New("countdown duration is zero")
)

// Theme errors.
var (
	ErrThemeNotFound   = errors.New("theme not found")
	ErrInvalidThemes   = errors.New("failed to load themes")
	ErrInvalidMode     = errors.New("invalid theme mode")
	ErrThemePersist    = errors.New("failed to persist theme preference")
	ErrThemePreference = errors.New("failed to read theme preference")
)

// Store errors.
var (
	ErrUnknownStoreType = errors.New("unknown store type")
	ErrStoreOptions     = errors.New("failed to parse store options")
	ErrStoreOpen        = errors.New("failed to open store")
	ErrStoreRead        = errors.New("failed to read from store")
	ErrStoreWrite       = errors.New("failed to write to store")
	ErrStoreLock        = errors.New("failed to lock store file")
)

// Filesystem errors.
var (
	ErrCreateDirectory = errors.New("failed to create directory")
	ErrXDGPath         = errors.New("failed to resolve XDG directory")
)

// Terminal errors.
var (
	ErrTUI       = errors.New("terminal UI failed")
	ErrPrompt    = errors.New("interactive prompt failed")
	ErrClipboard = errors.New("failed to copy to clipboard")
)

// Command errors.
var (
	ErrInvalidPositionalArgs = errors.New("invalid positional arguments")
	ErrVersionFormat         = errors.New("failed to format version information")
	ErrRenderMarkdown        = errors.New("failed to render markdown")
)

// ErrUserAborted is returned when the user cancels an interactive prompt.
var ErrUserAborted = errors.New("user aborted")

// ErrInvalidDuration is returned for countdown lengths that cannot be parsed.
var ErrInvalidDuration = errors.New("invalid duration")
