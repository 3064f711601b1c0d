package countdown

import (
	"strings"
	"time"

	errUtils "github.com/cloudposse/ticktock/errors"
)

const (
	MaxHours   = 23
	MaxMinutes = 59
	MaxSeconds = 59
)

// Config is the user-entered countdown length.
type Config struct {
	Hours   int
	Minutes int
	Seconds int
}

// Clamp returns c with each field forced into its range.
func (c Config) Clamp() Config {
	return Config{
		Hours:   clamp(c.Hours, MaxHours),
		Minutes: clamp(c.Minutes, MaxMinutes),
		Seconds: clamp(c.Seconds, MaxSeconds),
	}
}

// Duration returns the total length of the clamped config.
func (c Config) Duration() time.Duration {
	c = c.Clamp()
	return time.Duration(c.Hours)*time.Hour +
		time.Duration(c.Minutes)*time.Minute +
		time.Duration(c.Seconds)*time.Second
}

// IsZero reports whether the config describes no time at all.
func (c Config) IsZero() bool {
	return c.Duration() == 0
}

func clamp(v, maxValue int) int {
	return min(max(v, 0), maxValue)
}

// Field names a Config field for Adjust.
type Field int

const (
	FieldHours Field = iota
	FieldMinutes
	FieldSeconds
)

func (f Field) String() string {
	switch f {
	case FieldHours:
		return "hours"
	case FieldMinutes:
		return "minutes"
	case FieldSeconds:
		return "seconds"
	default:
		return "unknown"
	}
}

// ResetPolicy decides what Reset does with the entered config.
type ResetPolicy int

const (
	// PreserveConfig keeps the last entered config.
	PreserveConfig ResetPolicy = iota
	// ClearConfig zeroes the config.
	ClearConfig
)

const (
	resetPolicyPreserve = "preserve-config"
	resetPolicyClear    = "clear-config"
)

func (p ResetPolicy) String() string {
	if p == ClearConfig {
		return resetPolicyClear
	}
	return resetPolicyPreserve
}

// ParseResetPolicy accepts "preserve-config" or "clear-config" (or the short
// forms "preserve" and "clear"). The empty string is PreserveConfig.
func ParseResetPolicy(s string) (ResetPolicy, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-") {
	case "", resetPolicyPreserve, "preserve":
		return PreserveConfig, nil
	case resetPolicyClear, "clear":
		return ClearConfig, nil
	default:
		return PreserveConfig, errUtils.Build(errUtils.ErrInvalidResetPolicy).
			WithExplanationf("Reset policy `%s` is not recognized.", s).
			WithHintf("Use `%s` or `%s`.", resetPolicyPreserve, resetPolicyClear).
			WithContext("reset_policy", s).
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}
}

// SandStyle selects the hourglass rendering.
type SandStyle string

const (
	SandClassic    SandStyle = "classic"
	SandMinimal    SandStyle = "minimal"
	SandFuturistic SandStyle = "futuristic"
)

// SandStyles lists the accepted styles.
var SandStyles = []SandStyle{SandClassic, SandMinimal, SandFuturistic}

// ParseSandStyle accepts one of SandStyles, case-insensitively. The empty
// string is SandClassic.
func ParseSandStyle(s string) (SandStyle, error) {
	v := SandStyle(strings.ToLower(strings.TrimSpace(s)))
	if v == "" {
		return SandClassic, nil
	}
	for _, style := range SandStyles {
		if v == style {
			return style, nil
		}
	}
	return SandClassic, errUtils.Build(errUtils.ErrInvalidConfiguration).
		WithExplanationf("Sand style `%s` is not recognized.", s).
		WithHintf("Use one of `%s`, `%s` or `%s`.", SandClassic, SandMinimal, SandFuturistic).
		WithContext("sand_style", s).
		WithExitCode(errUtils.ExitCodeUsage).
		Err()
}
