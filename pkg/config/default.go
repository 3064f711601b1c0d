package config

import "github.com/spf13/viper"

// setDefaults registers every configuration key with viper.
// Keys must be known to viper for AutomaticEnv to reach them during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("logs.level", DefaultLogLevel)
	v.SetDefault("logs.file", "")

	v.SetDefault("settings.terminal.theme", "")
	v.SetDefault("settings.terminal.mode", "")
	v.SetDefault("settings.terminal.no_color", false)
	v.SetDefault("settings.terminal.mouse", true)

	v.SetDefault("clock.format_24h", false)
	v.SetDefault("clock.analog", false)
	v.SetDefault("clock.sound", false)

	v.SetDefault("stopwatch.tick_ms", DefaultTickMs)
	v.SetDefault("stopwatch.lap_order", DefaultLapOrder)

	v.SetDefault("timer.tick_ms", DefaultTimerTickMs)
	v.SetDefault("timer.reset_policy", DefaultResetPolicy)
	v.SetDefault("timer.hours", 0)
	v.SetDefault("timer.minutes", DefaultTimerMinutes)
	v.SetDefault("timer.seconds", 0)
	v.SetDefault("timer.sound", true)
	v.SetDefault("timer.sand_style", DefaultSandStyle)

	v.SetDefault("store.type", DefaultStoreType)

	v.SetDefault("errors.format.verbose", false)
	v.SetDefault("errors.format.color", "auto")
	v.SetDefault("errors.sentry.enabled", false)
	v.SetDefault("errors.sentry.dsn", "")
	v.SetDefault("errors.sentry.environment", "")
	v.SetDefault("errors.sentry.sample_rate", DefaultSentrySample)
	v.SetDefault("errors.sentry.debug", false)
}
