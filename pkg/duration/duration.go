// Package duration parses the countdown lengths accepted on the command line.
package duration

import (
	"strconv"
	"strings"
	"time"

	errUtils "github.com/cloudposse/ticktock/errors"
)

const (
	base10    = 10
	bitSize64 = 64

	// maxSeconds keeps parsed values well inside time.Duration.
	maxSeconds = 100 * 24 * 3600
)

var unitSeconds = map[byte]int64{
	'h': 3600,
	'm': 60,
	's': 1,
}

// Parse parses a countdown length into seconds.
//
// Supported formats:
//   - Integer seconds: "90" → 90
//   - Suffixed parts, largest first: "1h", "25m", "1h30m", "2m15s" → seconds
//   - Clock notation: "1:30" (minutes:seconds), "1:05:00" (hours:minutes:seconds)
//
// Examples:
//
//	Parse("90")     → 90, nil
//	Parse("1h30m")  → 5400, nil
//	Parse("25:00")  → 1500, nil
//	Parse("soon")   → 0, error
func Parse(s string) (int64, error) {
	value := strings.ToLower(strings.TrimSpace(s))
	if value == "" {
		return 0, invalid(s, "The duration is empty.")
	}

	var seconds int64
	var err error
	switch {
	case strings.Contains(value, ":"):
		seconds, err = parseClock(value)
	default:
		if n, convErr := strconv.ParseInt(value, base10, bitSize64); convErr == nil {
			seconds = n
		} else {
			seconds, err = parseUnits(value)
		}
	}
	if err != nil {
		return 0, invalid(s, err.Error())
	}
	if seconds < 0 {
		return 0, invalid(s, "The duration is negative.")
	}
	if seconds > maxSeconds {
		return 0, invalid(s, "The duration is too long.")
	}
	return seconds, nil
}

// ParseDuration parses a countdown length and returns a time.Duration.
//
// This is a convenience wrapper around Parse.
func ParseDuration(s string) (time.Duration, error) {
	seconds, err := Parse(s)
	if err != nil {
		return 0, err
	}
	return time.Duration(seconds) * time.Second, nil
}

// parseUnits reads "1h30m15s". Units must appear at most once, largest first.
func parseUnits(value string) (int64, error) {
	var total int64
	var lastUnit int64
	rest := value
	for rest != "" {
		i := 0
		for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
			i++
		}
		if i == 0 || i == len(rest) {
			return 0, errUtils.ErrInvalidDuration
		}
		size, ok := unitSeconds[rest[i]]
		if !ok || (lastUnit != 0 && size >= lastUnit) {
			return 0, errUtils.ErrInvalidDuration
		}
		n, err := strconv.ParseInt(rest[:i], base10, bitSize64)
		if err != nil || n > maxSeconds {
			return 0, errUtils.ErrInvalidDuration
		}
		total += n * size
		lastUnit = size
		rest = rest[i+1:]
	}
	return total, nil
}

// parseClock reads "MM:SS" or "HH:MM:SS". Every part after the first is below 60.
func parseClock(value string) (int64, error) {
	parts := strings.Split(value, ":")
	if len(parts) > 3 {
		return 0, errUtils.ErrInvalidDuration
	}
	var total int64
	for i, part := range parts {
		n, err := strconv.ParseInt(part, base10, bitSize64)
		if err != nil || n < 0 || n > maxSeconds || (i > 0 && (len(part) != 2 || n >= 60)) {
			return 0, errUtils.ErrInvalidDuration
		}
		total = total*60 + n
		if total > maxSeconds {
			return 0, errUtils.ErrInvalidDuration
		}
	}
	return total, nil
}

func invalid(value, explanation string) error {
	return errUtils.Build(errUtils.ErrInvalidDuration).
		WithExplanation(explanation).
		WithHint("Use seconds (`90`), units (`1h30m`, `25m`, `45s`) or clock notation (`25:00`, `1:05:00`)").
		WithContext("value", value).
		WithExitCode(errUtils.ExitCodeUsage).
		Err()
}
