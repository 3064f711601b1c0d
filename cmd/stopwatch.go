package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cloudposse/ticktock/cmd/markdown"
	"github.com/cloudposse/ticktock/internal/tui"
	"github.com/cloudposse/ticktock/pkg/flags"
	"github.com/cloudposse/ticktock/pkg/scheduler"
)

// stopwatchParser is the flag parser for the stopwatch command.
var stopwatchParser *flags.StandardFlagParser

// stopwatchCmd runs the stopwatch.
var stopwatchCmd = &cobra.Command{
	Use:     "stopwatch",
	Short:   "Measure elapsed time with laps",
	Long:    "Open the stopwatch. Without a terminal the stopwatch starts at once and prints the elapsed time every second until interrupted.",
	Example: markdown.StopwatchUsageMarkdown,
	Args:    cobra.NoArgs,
	GroupID: widgetGroup,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !interactive() {
			sched := scheduler.NewTickerScheduler()
			defer sched.Close()
			return tui.RunStopwatchPlain(commandContext(cmd), &ticktockConfig, sched, cmd.OutOrStdout())
		}
		return runTUI(cmd, tui.RunOptions{InitialTab: tui.StopwatchTab})
	},
}

func init() {
	stopwatchParser = flags.NewStandardFlagParser(
		flags.WithStringFlag("lap-order", "", "", "Lap list order: newest-first or newest-last"),
		flags.WithViperKey("lap-order", "stopwatch.lap_order"),
	)
	stopwatchParser.RegisterFlags(stopwatchCmd)
	if err := stopwatchParser.BindToViper(viper.GetViper()); err != nil {
		panic(err)
	}

	RootCmd.AddCommand(stopwatchCmd)
}
