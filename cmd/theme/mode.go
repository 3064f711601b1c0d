package theme

import (
	"github.com/spf13/cobra"

	errUtils "github.com/cloudposse/ticktock/errors"
	"github.com/cloudposse/ticktock/pkg/ui"
	"github.com/cloudposse/ticktock/pkg/ui/theme"
)

// themeSetCmd persists a light or dark mode.
var themeSetCmd = &cobra.Command{
	Use:       "set <light|dark>",
	Short:     "Persist the light or dark mode",
	Long:      "Save the mode the widgets start in. The value is kept in the configured preference store.",
	Example:   "ticktock theme set light",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{theme.Light.String(), theme.Dark.String()},
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := theme.ParseMode(args[0])
		if err != nil {
			return errUtils.Build(err).
				WithHint("Use `light` or `dark`").
				WithExitCode(errUtils.ExitCodeUsage).
				Err()
		}

		pref, err := requirePreference()
		if err != nil {
			return err
		}
		if err := pref.Set(mode); err != nil {
			return err
		}
		return ui.Successf("Theme mode set to %s", mode)
	},
}

// themeToggleCmd flips between light and dark.
var themeToggleCmd = &cobra.Command{
	Use:     "toggle",
	Short:   "Switch between light and dark mode",
	Long:    "Flip the persisted mode, the same as pressing `t` in the interactive view.",
	Example: "ticktock theme toggle",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pref, err := requirePreference()
		if err != nil {
			return err
		}
		mode, err := pref.Toggle()
		if err != nil {
			return err
		}
		return ui.Successf("Theme mode set to %s", mode)
	},
}

func init() {
	themeCmd.AddCommand(themeSetCmd, themeToggleCmd)
}

func requirePreference() (*theme.Preference, error) {
	if preference == nil {
		return nil, errUtils.Build(errUtils.ErrThemePreference).
			WithExplanation("No preference store is available.").
			WithHint("Check the store section of ticktock.yaml").
			Err()
	}
	return preference, nil
}
