package stopwatch

import (
	"strings"
	"time"

	"github.com/samber/lo"

	errUtils "github.com/cloudposse/ticktock/errors"
)

// LapOrder controls how Laps are listed.
type LapOrder int

const (
	// NewestFirst lists the most recent lap first.
	NewestFirst LapOrder = iota
	// NewestLast lists laps in capture order.
	NewestLast
)

const (
	lapOrderNewestFirst = "newest-first"
	lapOrderNewestLast  = "newest-last"
)

func (o LapOrder) String() string {
	if o == NewestLast {
		return lapOrderNewestLast
	}
	return lapOrderNewestFirst
}

// ParseLapOrder accepts "newest-first" or "newest-last", case-insensitively.
// Underscores may stand in for the hyphen. The empty string is NewestFirst.
func ParseLapOrder(s string) (LapOrder, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-") {
	case "", lapOrderNewestFirst:
		return NewestFirst, nil
	case lapOrderNewestLast:
		return NewestLast, nil
	default:
		return NewestFirst, errUtils.Build(errUtils.ErrInvalidLapOrder).
			WithExplanationf("Lap order `%s` is not recognized.", s).
			WithHintf("Use `%s` or `%s`.", lapOrderNewestFirst, lapOrderNewestLast).
			WithContext("lap_order", s).
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}
}

// Lap is a captured elapsed time.
type Lap struct {
	// Number is the 1-based capture order.
	Number int
	// Elapsed is the stopwatch reading when the lap was taken.
	Elapsed time.Duration
	// Split is the time since the previous lap, or since start for the first.
	Split time.Duration
}

// ordered returns a copy of laps, which are stored oldest first, in order o.
func ordered(laps []Lap, o LapOrder) []Lap {
	if o == NewestLast {
		return append([]Lap(nil), laps...)
	}
	return lo.Map(laps, func(_ Lap, i int) Lap {
		return laps[len(laps)-1-i]
	})
}
