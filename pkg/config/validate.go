package config

import (
	"fmt"

	errUtils "github.com/cloudposse/ticktock/errors"
	"github.com/cloudposse/ticktock/pkg/logger"
	"github.com/cloudposse/ticktock/pkg/schema"
	"github.com/cloudposse/ticktock/pkg/ui/theme"
	"github.com/cloudposse/ticktock/pkg/widget/countdown"
	"github.com/cloudposse/ticktock/pkg/widget/stopwatch"
)

// Validate checks values that cannot be expressed as types. Timer fields are
// not range-checked beyond sign because the countdown clamps them on entry.
func Validate(cfg *schema.Configuration) error {
	if _, err := logger.ParseLogLevel(cfg.Logs.Level); err != nil {
		return invalid("logs.level", cfg.Logs.Level, err, "Use Trace, Debug, Info, Warning, Error or Off.")
	}

	if cfg.Settings.Terminal.Mode != "" {
		if _, err := theme.ParseMode(cfg.Settings.Terminal.Mode); err != nil {
			return invalid("settings.terminal.mode", cfg.Settings.Terminal.Mode, err, "Use `light` or `dark`.")
		}
	}

	if cfg.Stopwatch.TickMs <= 0 {
		return invalid("stopwatch.tick_ms", cfg.Stopwatch.TickMs, nil, "The tick period must be a positive number of milliseconds.")
	}
	if _, err := stopwatch.ParseLapOrder(cfg.Stopwatch.LapOrder); err != nil {
		return err
	}

	if cfg.Timer.TickMs <= 0 {
		return invalid("timer.tick_ms", cfg.Timer.TickMs, nil, "The tick period must be a positive number of milliseconds.")
	}
	for key, value := range map[string]int{
		"timer.hours":   cfg.Timer.Hours,
		"timer.minutes": cfg.Timer.Minutes,
		"timer.seconds": cfg.Timer.Seconds,
	} {
		if value < 0 {
			return invalid(key, value, nil, "Durations cannot be negative.")
		}
	}
	if _, err := countdown.ParseResetPolicy(cfg.Timer.ResetPolicy); err != nil {
		return err
	}
	if _, err := countdown.ParseSandStyle(cfg.Timer.SandStyle); err != nil {
		return err
	}

	switch cfg.Errors.Format.Color {
	case "", errUtils.ColorAuto, errUtils.ColorAlways, errUtils.ColorNever:
	default:
		return invalid("errors.format.color", cfg.Errors.Format.Color, nil, "Use `auto`, `always` or `never`.")
	}

	if rate := cfg.Errors.Sentry.SampleRate; rate < 0 || rate > 1 {
		return invalid("errors.sentry.sample_rate", rate, nil, "The sample rate must be between 0 and 1.")
	}

	return nil
}

func invalid(key string, value interface{}, cause error, hint string) error {
	base := errUtils.ErrInvalidConfiguration
	if cause != nil {
		base = fmt.Errorf("%w: %w", errUtils.ErrInvalidConfiguration, cause)
	}
	return errUtils.Build(base).
		WithExplanationf("`%s` is set to `%v`.", key, value).
		WithHint(hint).
		WithContext("key", key).
		WithExitCode(errUtils.ExitCodeUsage).
		Err()
}
