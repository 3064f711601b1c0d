package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cloudposse/ticktock/cmd/markdown"
	errUtils "github.com/cloudposse/ticktock/errors"
	"github.com/cloudposse/ticktock/internal/audio"
	"github.com/cloudposse/ticktock/internal/tui"
	"github.com/cloudposse/ticktock/pkg/duration"
	"github.com/cloudposse/ticktock/pkg/flags"
	log "github.com/cloudposse/ticktock/pkg/logger"
	"github.com/cloudposse/ticktock/pkg/scheduler"
	"github.com/cloudposse/ticktock/pkg/widget/countdown"
)

// timerParser is the flag parser for the timer command.
var timerParser *flags.StandardFlagParser

// timerCmd runs a countdown.
var timerCmd = &cobra.Command{
	Use:   "timer [duration]",
	Short: "Count down a duration",
	Long: "Count down hours, minutes and seconds with an hourglass and a chime at zero. " +
		"The duration is given as an argument (`90`, `1h30m`, `25:00`) or with flags; without either it is asked for interactively. " +
		"Without a terminal the remaining time is printed every tick.",
	Example: markdown.TimerUsageMarkdown,
	Args:    cobra.MaximumNArgs(1),
	GroupID: widgetGroup,
	RunE:    executeTimer,
}

func init() {
	timerParser = flags.NewStandardFlagParser(
		flags.WithIntFlag("hours", "H", 0, "Hours to count down"),
		flags.WithViperKey("hours", "timer.hours"),
		flags.WithIntFlag("minutes", "m", 0, "Minutes to count down"),
		flags.WithViperKey("minutes", "timer.minutes"),
		flags.WithIntFlag("seconds", "s", 0, "Seconds to count down"),
		flags.WithViperKey("seconds", "timer.seconds"),
		flags.WithBoolFlag("sound", "", false, "Play a chime when the countdown completes"),
		flags.WithViperKey("sound", "timer.sound"),
	)
	timerParser.RegisterFlags(timerCmd)
	if err := timerParser.BindToViper(viper.GetViper()); err != nil {
		panic(err)
	}

	RootCmd.AddCommand(timerCmd)
}

func executeTimer(cmd *cobra.Command, args []string) error {
	durationGiven := durationFlagsChanged(cmd)
	if len(args) == 1 {
		parsed, err := configFromArgument(args[0])
		if err != nil {
			return err
		}
		setTimerConfig(parsed)
		durationGiven = true
	}

	if !interactive() {
		bell := audio.Player(ticktockConfig.Timer.Sound, os.Stderr)
		defer bell.Close()
		sched := scheduler.NewTickerScheduler()
		defer sched.Close()
		return tui.RunTimerPlain(commandContext(cmd), &ticktockConfig, sched, cmd.OutOrStdout(), bell)
	}

	if !durationGiven {
		chosen, err := promptDuration(countdown.Config{
			Hours:   ticktockConfig.Timer.Hours,
			Minutes: ticktockConfig.Timer.Minutes,
			Seconds: ticktockConfig.Timer.Seconds,
		}, colorScheme)
		if err != nil {
			return err
		}
		setTimerConfig(chosen)
		log.Debug("Countdown chosen", "hours", chosen.Hours, "minutes", chosen.Minutes, "seconds", chosen.Seconds)
	}

	return runTUI(cmd, tui.RunOptions{InitialTab: tui.TimerTab, StartTimer: true})
}

// configFromArgument converts a duration argument into hours, minutes and seconds.
func configFromArgument(arg string) (countdown.Config, error) {
	d, err := duration.ParseDuration(arg)
	if err != nil {
		return countdown.Config{}, err
	}
	maxDuration := countdown.Config{Hours: countdown.MaxHours, Minutes: countdown.MaxMinutes, Seconds: countdown.MaxSeconds}.Duration()
	if d > maxDuration {
		return countdown.Config{}, errUtils.Build(errUtils.ErrInvalidDuration).
			WithExplanationf("%s is longer than the timer can count.", d).
			WithHintf("Use at most %s", maxDuration).
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}
	return countdown.Config{
		Hours:   int(d / time.Hour),
		Minutes: int(d % time.Hour / time.Minute),
		Seconds: int(d % time.Minute / time.Second),
	}, nil
}

func setTimerConfig(c countdown.Config) {
	ticktockConfig.Timer.Hours = c.Hours
	ticktockConfig.Timer.Minutes = c.Minutes
	ticktockConfig.Timer.Seconds = c.Seconds
}

func durationFlagsChanged(cmd *cobra.Command) bool {
	for _, name := range []string{"hours", "minutes", "seconds"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}
