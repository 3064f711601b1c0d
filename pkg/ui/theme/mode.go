package theme

import (
	"fmt"
	"strings"

	errUtils "github.com/cloudposse/ticktock/errors"
)

// Mode is the light/dark display preference.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"

	// DefaultMode applies when nothing is persisted.
	DefaultMode = Dark
)

// ParseMode parses "light" or "dark" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", fmt.Errorf("%w: %q (expected light or dark)", errUtils.ErrInvalidMode, s)
	}
}

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m == Light {
		return Dark
	}
	return Light
}

func (m Mode) String() string {
	return string(m)
}
