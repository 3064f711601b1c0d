package markdown

import _ "embed"

// AboutMarkdown contains the content for the about command.
//
//go:embed about.md
var AboutMarkdown string

// ClockUsageMarkdown contains usage examples for the clock command.
//
//go:embed ticktock_clock_usage.md
var ClockUsageMarkdown string

// StopwatchUsageMarkdown contains usage examples for the stopwatch command.
//
//go:embed ticktock_stopwatch_usage.md
var StopwatchUsageMarkdown string

// TimerUsageMarkdown contains usage examples for the timer command.
//
//go:embed ticktock_timer_usage.md
var TimerUsageMarkdown string
