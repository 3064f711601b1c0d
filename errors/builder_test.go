package errors

import (
	goerrors "errors"
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_NilError(t *testing.T) {
	assert.Nil(t, Build(nil).WithHint("ignored").Err())
}

func TestBuild_MarksLeafSentinel(t *testing.T) {
	err := Build(ErrInvalidConfiguration).WithHint("Set a duration").Err()

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
	assert.Contains(t, errors.GetAllHints(err), "Set a duration")
}

func TestBuild_WithSentinelOnWrappedError(t *testing.T) {
	base := errors.Wrap(errors.New("dial tcp: refused"), "redis")
	err := Build(base).WithSentinel(ErrStoreOpen).Err()

	assert.True(t, errors.Is(err, ErrStoreOpen))
	assert.Contains(t, err.Error(), "dial tcp: refused")
}

func TestBuild_SentinelVisibleToStandardLibrary(t *testing.T) {
	err := Build(ErrZeroDuration).
		WithSentinel(ErrInvalidConfiguration).
		WithHint("Set a duration").
		WithExitCode(ExitCodeUsage).
		Err()

	assert.True(t, goerrors.Is(err, ErrInvalidConfiguration))
	assert.True(t, goerrors.Is(err, ErrZeroDuration))
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
	assert.False(t, goerrors.Is(err, ErrStoreOpen))
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Equal(t, ExitCodeUsage, GetExitCode(err))
	assert.Contains(t, errors.GetAllHints(err), "Set a duration")
	assert.Equal(t, ErrZeroDuration.Error(), err.Error())
}

func TestBuild_SentinelKeepsVerboseDetail(t *testing.T) {
	base := errors.Wrap(errors.New("disk full"), "write preference")
	err := Build(base).WithSentinel(ErrStoreWrite).Err()

	verbose := fmt.Sprintf("%+v", err)
	assert.Contains(t, verbose, "write preference: disk full")
	assert.Contains(t, verbose, "builder_test.go", "the stack of the wrapped error is printed")
}

func TestBuild_WithExitCode(t *testing.T) {
	err := Build(ErrInvalidConfiguration).WithExitCode(ExitCodeUsage).Err()

	assert.Equal(t, ExitCodeUsage, GetExitCode(err))
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}

func TestBuild_WithExplanation(t *testing.T) {
	err := Build(errors.New("bad")).WithExplanationf("value %d is out of range", 99).Err()

	assert.Contains(t, errors.GetAllDetails(err), "value 99 is out of range")
}

func TestBuild_WithContextIsSafeDetail(t *testing.T) {
	err := Build(errors.New("bad")).WithContext("widget", "stopwatch").Err()

	var found bool
	for _, payload := range errors.GetAllSafeDetails(err) {
		for _, detail := range payload.SafeDetails {
			if detail == "widget=stopwatch" {
				found = true
			}
		}
	}
	assert.True(t, found, "context should be recorded as a safe detail")
}
