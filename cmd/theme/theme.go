package theme

import (
	"github.com/spf13/cobra"

	"github.com/cloudposse/ticktock/cmd/internal"
	"github.com/cloudposse/ticktock/pkg/schema"
	"github.com/cloudposse/ticktock/pkg/ui/theme"
)

var (
	// configPtr is set by SetConfig before command execution.
	configPtr *schema.Configuration
	// preference is set by SetPreference before command execution.
	preference *theme.Preference
)

// SetConfig sets the configuration for the theme commands.
// This is called from root.go after the configuration is loaded.
func SetConfig(config *schema.Configuration) {
	configPtr = config
}

// SetPreference sets the persisted light/dark preference used by set and toggle.
func SetPreference(p *theme.Preference) {
	preference = p
}

// themeCmd groups the theme subcommands.
var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage terminal themes",
	Long:  "List and preview the bundled color themes, and switch between the light and dark mode used by the clock, stopwatch and timer.",
	Args:  cobra.NoArgs,
}

func init() {
	internal.Register(&ThemeCommandProvider{})
}

// activeTheme resolves the theme the widgets would render with.
func activeTheme() string {
	mode := theme.DefaultMode
	if preference != nil {
		mode = preference.Mode()
	}
	configured := ""
	if configPtr != nil {
		configured = configPtr.Settings.Terminal.Theme
		if m, err := theme.ParseMode(configPtr.Settings.Terminal.Mode); err == nil && configPtr.Settings.Terminal.Mode != "" {
			mode = m
		}
	}

	registry, err := theme.NewRegistry()
	if err != nil {
		return configured
	}
	return registry.ForMode(configured, mode).Name
}

// ThemeCommandProvider implements the CommandProvider interface.
type ThemeCommandProvider struct{}

// GetCommand returns the theme command.
func (t *ThemeCommandProvider) GetCommand() *cobra.Command {
	return themeCmd
}

// GetName returns the command name.
func (t *ThemeCommandProvider) GetName() string {
	return "theme"
}

// GetGroup returns the command group for help organization.
func (t *ThemeCommandProvider) GetGroup() string {
	return "Other Commands"
}
