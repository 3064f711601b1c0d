package errors

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: 0},
		{name: "plain error", err: errors.New("boom"), expected: 1},
		{name: "with exit code", err: WithExitCode(errors.New("boom"), 3), expected: 3},
		{name: "wrapped exit code", err: errors.Wrap(WithExitCode(errors.New("boom"), 4), "outer"), expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetExitCode(tt.err))
		})
	}
}

func TestWithExitCode_Nil(t *testing.T) {
	assert.Nil(t, WithExitCode(nil, 2))
}

func TestExitCoder_Unwrap(t *testing.T) {
	base := errors.New("boom")
	err := WithExitCode(base, 2)

	assert.True(t, errors.Is(err, base))
	assert.Equal(t, "boom", err.Error())
}

func TestSignalExitCode(t *testing.T) {
	assert.Equal(t, 130, SignalExitCode(2))
	assert.Equal(t, 143, SignalExitCode(15))
	assert.Equal(t, ExitCodeInterrupted, SignalExitCode(0))
}
