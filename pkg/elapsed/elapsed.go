// Package elapsed formats millisecond durations for display.
package elapsed

import (
	"fmt"
	"time"
)

const (
	msPerHour        = 3_600_000
	msPerMinute      = 60_000
	msPerSecond      = 1000
	msPerCentisecond = 10
)

// Fields holds zero-padded display fields. Hours may grow past two digits.
type Fields struct {
	Hours        string
	Minutes      string
	Seconds      string
	Centiseconds string
}

// Format splits ms into hours, minutes, seconds and centiseconds.
// Negative input is treated as zero.
func Format(ms int64) Fields {
	if ms < 0 {
		ms = 0
	}
	return Fields{
		Hours:        pad(ms / msPerHour),
		Minutes:      pad(ms / msPerMinute % 60),
		Seconds:      pad(ms / msPerSecond % 60),
		Centiseconds: pad(ms / msPerCentisecond % 100),
	}
}

// FromDuration formats d truncated to whole milliseconds.
func FromDuration(d time.Duration) Fields {
	return Format(d.Milliseconds())
}

func pad(n int64) string {
	return fmt.Sprintf("%02d", n)
}

// String renders HH:MM:SS.CC.
func (f Fields) String() string {
	return f.Clock() + "." + f.Centiseconds
}

// Clock renders HH:MM:SS.
func (f Fields) Clock() string {
	return f.Hours + ":" + f.Minutes + ":" + f.Seconds
}
