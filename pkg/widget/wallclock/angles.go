package wallclock

import (
	"fmt"

	"github.com/cloudposse/ticktock/pkg/clock"
)

const (
	degreesPerHour         = 30.0
	degreesPerHourMinute   = 0.5
	degreesPerHourSecond   = 30.0 / 3600.0
	degreesPerMinute       = 6.0
	degreesPerMinuteSecond = 0.1
	degreesPerSecond       = 6.0
	degreesPerMillisecond  = 0.006
)

// Angles are hand rotations in degrees, clockwise from 12 o'clock.
type Angles struct {
	Hour   float64
	Minute float64
	Second float64
}

// ComputeAngles returns the hand angles for s. Sub-unit terms make the hands
// sweep rather than jump.
func ComputeAngles(s clock.WallClockSample) Angles {
	return Angles{
		Hour: float64(s.Hour24%12)*degreesPerHour +
			float64(s.Minute)*degreesPerHourMinute +
			float64(s.Second)*degreesPerHourSecond,
		Minute: float64(s.Minute)*degreesPerMinute + float64(s.Second)*degreesPerMinuteSecond,
		Second: float64(s.Second)*degreesPerSecond + float64(s.Millisecond)*degreesPerMillisecond,
	}
}

// HourLabel renders the hour for display. In 12-hour mode 0 maps to 12.
func HourLabel(hour24 int, format24h bool) string {
	if format24h {
		return fmt.Sprintf("%02d", hour24)
	}
	h := hour24 % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%02d", h)
}

// PeriodLabel is "AM" before noon and "PM" after. It is empty in 24-hour mode.
func PeriodLabel(hour24 int, format24h bool) string {
	switch {
	case format24h:
		return ""
	case hour24 < 12:
		return "AM"
	default:
		return "PM"
	}
}
