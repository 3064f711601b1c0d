package theme

import (
	"fmt"

	"github.com/spf13/cobra"

	errUtils "github.com/cloudposse/ticktock/errors"
	"github.com/cloudposse/ticktock/pkg/ui/theme"
)

// ThemesArgCompletion provides auto-completion for theme names.
func ThemesArgCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	registry, err := theme.NewRegistry()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	themes := registry.List()
	names := make([]string, 0, len(themes))
	for _, t := range themes {
		names = append(names, t.Name)
	}

	return names, cobra.ShellCompDirectiveNoFileComp
}

// ThemeShowOptions holds the options for theme show command.
type ThemeShowOptions struct {
	ThemeName string
}

// themeShowCmd shows details and preview of a specific theme.
var themeShowCmd = &cobra.Command{
	Use:               "show [theme-name]",
	Short:             "Show details and preview of a specific theme",
	Long:              "Display the color palette, a clock readout, log output and a markdown sample for a terminal theme. Without a name the active theme is shown.",
	Example:           "ticktock theme show Dracula",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: ThemesArgCompletion,
	RunE:              executeThemeShow,
}

func init() {
	themeCmd.AddCommand(themeShowCmd)
}

// executeThemeShow displays detailed information about a specific theme.
func executeThemeShow(cmd *cobra.Command, args []string) error {
	opts := &ThemeShowOptions{ThemeName: activeTheme()}
	if len(args) == 1 {
		opts.ThemeName = args[0]
	}
	if opts.ThemeName == "" {
		return errUtils.Build(errUtils.ErrInvalidPositionalArgs).
			WithExplanation("Theme name is required").
			WithHint("Run `ticktock theme list` to see all available themes").
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}

	output, err := theme.ShowTheme(theme.ShowThemeOptions{ThemeName: opts.ThemeName})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
	return err
}
