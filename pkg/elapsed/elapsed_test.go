package elapsed

import (
	"math/rand"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		ms   int64
		want Fields
	}{
		{"zero", 0, Fields{"00", "00", "00", "00"}},
		{"sub-centisecond", 9, Fields{"00", "00", "00", "00"}},
		{"one centisecond", 10, Fields{"00", "00", "00", "01"}},
		{"mixed", 3_725_040, Fields{"01", "02", "05", "04"}},
		{"just under a minute", 59_999, Fields{"00", "00", "59", "99"}},
		{"one hour", 3_600_000, Fields{"01", "00", "00", "00"}},
		{"hundred hours", 360_000_000, Fields{"100", "00", "00", "00"}},
		{"negative clamps", -500, Fields{"00", "00", "00", "00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.ms))
		})
	}
}

func TestFormat_RoundTripWithinResolution(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		ms := rng.Int63n(100 * msPerHour)
		f := Format(ms)

		total := atoi(t, f.Hours)*msPerHour +
			atoi(t, f.Minutes)*msPerMinute +
			atoi(t, f.Seconds)*msPerSecond +
			atoi(t, f.Centiseconds)*msPerCentisecond

		assert.LessOrEqual(t, total, ms, "ms=%d", ms)
		assert.Less(t, ms, total+msPerCentisecond, "ms=%d", ms)
		assert.Len(t, f.Minutes, 2)
		assert.Len(t, f.Seconds, 2)
		assert.Len(t, f.Centiseconds, 2)
	}
}

func TestFields_Strings(t *testing.T) {
	f := Format(3_725_040)
	assert.Equal(t, "01:02:05.04", f.String())
	assert.Equal(t, "01:02:05", f.Clock())
}

func TestFromDuration(t *testing.T) {
	assert.Equal(t, Format(90_500), FromDuration(90*time.Second+500*time.Millisecond+999*time.Microsecond))
}

func atoi(t *testing.T, s string) int64 {
	t.Helper()
	n, err := strconv.ParseInt(s, 10, 64)
	require.NoError(t, err)
	return n
}
