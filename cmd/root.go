package cmd

import (
	"context"
	"io"
	"os"

	"github.com/elewis787/boa"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	_ "github.com/cloudposse/ticktock/cmd/about"
	"github.com/cloudposse/ticktock/cmd/internal"
	themeCmd "github.com/cloudposse/ticktock/cmd/theme"
	_ "github.com/cloudposse/ticktock/cmd/version"
	errUtils "github.com/cloudposse/ticktock/errors"
	"github.com/cloudposse/ticktock/internal/tui"
	"github.com/cloudposse/ticktock/pkg/config"
	"github.com/cloudposse/ticktock/pkg/flags"
	log "github.com/cloudposse/ticktock/pkg/logger"
	"github.com/cloudposse/ticktock/pkg/schema"
	"github.com/cloudposse/ticktock/pkg/store"
	"github.com/cloudposse/ticktock/pkg/ui"
	"github.com/cloudposse/ticktock/pkg/ui/theme"
	"github.com/cloudposse/ticktock/pkg/version"
)

const widgetGroup = "widgets"

var (
	ticktockConfig schema.Configuration
	colorScheme    *theme.ColorScheme
	prefStore      store.Store
	preference     *theme.Preference
	logCloser      io.Closer
	errorFormat    = errUtils.DefaultFormatterConfig()

	// globalParser holds the persistent flags shared by every command.
	globalParser *flags.StandardFlagParser
)

// isTerminal reports whether f is attached to a terminal. Tests replace it.
var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func interactive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "ticktock",
	Short: "Clock, stopwatch and countdown timer for the terminal",
	Long:  `ticktock shows a clock, a stopwatch with laps and a countdown timer with an hourglass in one tabbed terminal view.`,
	Args:  cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Do not silence usage or errors when help is invoked.
		isHelpRequested := cmd.Name() == "help" || cmd.Flags().Changed("help")
		cmd.SilenceUsage = !isHelpRequested
		cmd.SilenceErrors = !isHelpRequested

		return setup(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !interactive() {
			return printClock(cmd.OutOrStdout())
		}
		return runTUI(cmd, tui.RunOptions{InitialTab: tui.ClockTab})
	},
}

// setup loads the configuration and initializes logging, output styles,
// error reporting and the preference store for the command being run.
func setup(cmd *cobra.Command) error {
	Cleanup()

	explicit, err := cmd.Flags().GetString("config")
	if err != nil {
		explicit = ""
	}
	loaded, err := config.Load(viper.GetViper(), explicit)
	if err != nil {
		return err
	}
	ticktockConfig = loaded

	prefStore, err = store.New(loaded.Store)
	if err != nil {
		return err
	}
	preference = theme.NewPreference(prefStore)
	_, prefErr := preference.Load()

	registry, err := theme.NewRegistry()
	if err != nil {
		return err
	}
	mode := tui.ResolveMode(&ticktockConfig, preference)
	selected := registry.ForMode(loaded.Settings.Terminal.Theme, mode)
	scheme := theme.GenerateColorScheme(selected)
	colorScheme = &scheme

	noColor := loaded.Settings.Terminal.NoColor
	logStyles := theme.GetLogStyles(colorScheme)
	if noColor {
		logStyles = theme.GetLogStylesNoColor()
	}
	logCloser, err = log.Setup(loaded.Logs, log.Options{Styles: logStyles})
	if err != nil {
		return err
	}
	if prefErr != nil {
		log.Warn("Using the default theme mode", "error", prefErr)
	}

	ui.InitFormatter(ui.Options{
		Styles: theme.GetStyles(colorScheme),
		Color:  !noColor && isTerminal(os.Stderr),
		Width:  terminalWidth(),
	})

	errorFormat = errUtils.FormatterConfig{
		Verbose:       loaded.Errors.Format.Verbose,
		Color:         loaded.Errors.Format.Color,
		MaxLineLength: errUtils.DefaultMaxLineLength,
	}
	if noColor {
		errorFormat.Color = errUtils.ColorNever
	}
	if err := errUtils.InitializeSentry(&loaded.Errors.Sentry); err != nil {
		log.Warn("Error reporting disabled", "error", err)
	}

	themeCmd.SetConfig(&ticktockConfig)
	themeCmd.SetPreference(preference)

	log.Debug("Configuration loaded", "file", loaded.ConfigFile, "store", loaded.Store.Type, "mode", mode, "theme", selected.Name)
	return nil
}

func terminalWidth() int {
	if !isTerminal(os.Stdout) {
		return 0
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func runTUI(cmd *cobra.Command, opts tui.RunOptions) error {
	opts.Preference = preference
	return tui.Run(commandContext(cmd), &ticktockConfig, opts)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// ErrorFormat returns the error formatting configured for this run.
func ErrorFormat() errUtils.FormatterConfig {
	return errorFormat
}

// Cleanup releases resources acquired while setting up the command.
// It is safe to call more than once.
func Cleanup() {
	if prefStore != nil {
		if err := prefStore.Close(); err != nil {
			log.Debug("Failed to close preference store", "error", err)
		}
		prefStore = nil
	}
	errUtils.CloseSentry()
	if logCloser != nil {
		if err := logCloser.Close(); err != nil {
			log.Debug("Failed to close log file", "error", err)
		}
		logCloser = nil
	}
}

// Execute runs the root command with ctx.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}

func init() {
	globalParser = flags.NewStandardFlagParser(
		flags.WithStringFlag("config", "", "", "Path to a ticktock.yaml configuration file"),
		flags.WithViperKey("config", "cli.config"),
		flags.WithStringFlag("logs-level", "", config.DefaultLogLevel, "Logs level. Supported log levels are Trace, Debug, Info, Warning, Error and Off"),
		flags.WithViperKey("logs-level", "logs.level"),
		flags.WithStringFlag("logs-file", "", "", "The file to write logs to. Defaults to stderr; '/dev/stdout', '/dev/stderr' and '/dev/null' are accepted"),
		flags.WithViperKey("logs-file", "logs.file"),
		flags.WithBoolFlag("no-color", "", false, "Disable colored output"),
		flags.WithViperKey("no-color", "settings.terminal.no_color"),
	)
	globalParser.RegisterPersistentFlags(RootCmd)
	if err := globalParser.BindToViper(viper.GetViper()); err != nil {
		panic(err)
	}

	RootCmd.AddGroup(&cobra.Group{ID: widgetGroup, Title: "Widgets:"})
	internal.RegisterAll(RootCmd)

	RootCmd.Version = version.Version
	RootCmd.SetVersionTemplate("ticktock {{.Version}}\n")

	cobra.OnInitialize(initConfig)
}

// initConfig styles help output. The styled help is interactive, so plain
// cobra help is kept when output is not a terminal.
func initConfig() {
	if !interactive() {
		return
	}
	b := boa.New(boa.WithStyles(boa.DefaultStyles()))
	RootCmd.SetUsageFunc(b.UsageFunc)
	RootCmd.SetHelpFunc(b.HelpFunc)
}
