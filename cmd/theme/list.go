package theme

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cloudposse/ticktock/pkg/flags"
	"github.com/cloudposse/ticktock/pkg/ui"
	"github.com/cloudposse/ticktock/pkg/ui/theme"
)

// themeListParser is the flag parser for theme list command.
var themeListParser *flags.StandardFlagParser

// ThemeListOptions holds the options for theme list command.
type ThemeListOptions struct {
	RecommendedOnly bool
}

// themeListCmd lists available terminal themes.
var themeListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List available terminal themes",
	Long:    "Display the bundled terminal themes. By default shows all themes.",
	Example: "ticktock theme list --recommended",
	Args:    cobra.NoArgs,
	RunE:    executeThemeList,
}

func init() {
	themeListParser = flags.NewStandardFlagParser(
		flags.WithBoolFlag("recommended", "", false, "Show only recommended themes"),
		flags.WithViperKey("recommended", "theme.list.recommended"),
		flags.WithEnvVars("recommended", "TICKTOCK_THEME_RECOMMENDED"),
	)

	themeListParser.RegisterFlags(themeListCmd)

	// Log error but don't fail initialization.
	if err := themeListParser.BindToViper(viper.GetViper()); err != nil {
		_ = err
	}

	themeCmd.AddCommand(themeListCmd)
}

// executeThemeList runs the theme list command.
func executeThemeList(cmd *cobra.Command, args []string) error {
	opts := &ThemeListOptions{
		RecommendedOnly: viper.GetBool("theme.list.recommended"),
	}

	active := activeTheme()
	result, err := theme.ListThemes(theme.ListThemesOptions{
		RecommendedOnly: opts.RecommendedOnly,
		ActiveTheme:     active,
		Styled:          configPtr == nil || !configPtr.Settings.Terminal.NoColor,
	})
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), result.Output); err != nil {
		return err
	}

	countMsg := fmt.Sprintf("%d theme", result.ThemeCount)
	if result.ThemeCount != 1 {
		countMsg += "s"
	}
	if opts.RecommendedOnly {
		countMsg += " (recommended). Use without --recommended to see all themes."
	} else {
		countMsg += " available."
	}
	if err := ui.Info(countMsg); err != nil {
		return err
	}

	return ui.Success(fmt.Sprintf("Active theme: %s", active))
}
