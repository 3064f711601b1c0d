package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cloudposse/ticktock/cmd/markdown"
	"github.com/cloudposse/ticktock/internal/tui"
	"github.com/cloudposse/ticktock/pkg/clock"
	"github.com/cloudposse/ticktock/pkg/flags"
	"github.com/cloudposse/ticktock/pkg/scheduler"
	"github.com/cloudposse/ticktock/pkg/widget/wallclock"
)

// clockParser is the flag parser for the clock command.
var clockParser *flags.StandardFlagParser

// clockCmd shows the wall clock.
var clockCmd = &cobra.Command{
	Use:     "clock",
	Short:   "Show the current time",
	Long:    "Show the local time and date as digits or on an analog dial. Without a terminal, or with --once, a single reading is printed.",
	Example: markdown.ClockUsageMarkdown,
	Args:    cobra.NoArgs,
	GroupID: widgetGroup,
	RunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("clock.once") || !interactive() {
			return printClock(cmd.OutOrStdout())
		}
		return runTUI(cmd, tui.RunOptions{InitialTab: tui.ClockTab})
	},
}

func init() {
	clockParser = flags.NewStandardFlagParser(
		flags.WithBoolFlag("24h", "", false, "Use a 24-hour clock"),
		flags.WithViperKey("24h", "clock.format_24h"),
		flags.WithEnvVars("24h", "TICKTOCK_CLOCK_FORMAT_24H", "TICKTOCK_CLOCK_24H"),
		flags.WithBoolFlag("analog", "", false, "Draw an analog dial"),
		flags.WithViperKey("analog", "clock.analog"),
		flags.WithBoolFlag("sound", "", false, "Play a tick-tock sound every second"),
		flags.WithViperKey("sound", "clock.sound"),
		flags.WithBoolFlag("once", "", false, "Print the current time once and exit"),
		flags.WithViperKey("once", "clock.once"),
	)
	clockParser.RegisterFlags(clockCmd)
	if err := clockParser.BindToViper(viper.GetViper()); err != nil {
		panic(err)
	}

	RootCmd.AddCommand(clockCmd)
}

// printClock writes one clock reading using the loaded configuration.
func printClock(w io.Writer) error {
	sched := scheduler.NewTickerScheduler()
	defer sched.Close()

	c := wallclock.New(clock.RealClock{}, sched, wallclock.With24Hour(ticktockConfig.Clock.Format24h))
	c.Tick()

	_, err := fmt.Fprintln(w, tui.RenderClock(c.Snapshot(), ticktockConfig.Clock.Analog, colorScheme))
	return err
}
