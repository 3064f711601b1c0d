package clock

import "time"

// WallClockSample is an immutable snapshot of a local time of day.
type WallClockSample struct {
	Hour24      int // 0-23
	Minute      int // 0-59
	Second      int // 0-59
	Millisecond int // 0-999

	// Time is the instant the sample was taken from.
	Time time.Time
}

// Sample converts t into a WallClockSample in t's location.
func Sample(t time.Time) WallClockSample {
	return WallClockSample{
		Hour24:      t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Millisecond: t.Nanosecond() / int(time.Millisecond),
		Time:        t,
	}
}
