package theme

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/ticktock/errors"
	"github.com/cloudposse/ticktock/pkg/schema"
	"github.com/cloudposse/ticktock/pkg/store"
	"github.com/cloudposse/ticktock/pkg/ui"
	"github.com/cloudposse/ticktock/pkg/ui/theme"
)

func withPreference(t *testing.T) (*theme.Preference, *store.InMemoryStore) {
	t.Helper()
	s := store.NewInMemoryStore()
	pref := theme.NewPreference(s)
	SetPreference(pref)
	t.Cleanup(func() { SetPreference(nil) })

	var buf bytes.Buffer
	ui.InitFormatter(ui.Options{Out: &buf})
	t.Cleanup(func() { ui.InitFormatter(ui.Options{}) })
	return pref, s
}

func TestThemeCommand(t *testing.T) {
	t.Run("theme command exists", func(t *testing.T) {
		assert.Equal(t, "theme", themeCmd.Use)
		assert.NotEmpty(t, themeCmd.Short)
		assert.NotEmpty(t, themeCmd.Long)
	})

	t.Run("has subcommands", func(t *testing.T) {
		uses := map[string]bool{}
		for _, subCmd := range themeCmd.Commands() {
			uses[subCmd.Use] = true
		}
		for _, use := range []string{"list", "show [theme-name]", "set <light|dark>", "toggle"} {
			assert.True(t, uses[use], "theme command should have %q subcommand", use)
		}
	})
}

func TestSetConfig(t *testing.T) {
	t.Run("sets config successfully", func(t *testing.T) {
		config := &schema.Configuration{
			Settings: schema.Settings{Terminal: schema.Terminal{Theme: "dracula"}},
		}
		SetConfig(config)
		assert.Equal(t, config, configPtr)
		assert.Equal(t, "Dracula", activeTheme())
	})

	t.Run("handles nil config", func(t *testing.T) {
		SetConfig(nil)
		assert.Nil(t, configPtr)
		assert.Equal(t, theme.DefaultDarkTheme, activeTheme())
	})
}

func TestActiveTheme_FollowsPreference(t *testing.T) {
	pref, _ := withPreference(t)
	SetConfig(nil)

	require.NoError(t, pref.Set(theme.Light))
	assert.Equal(t, theme.DefaultLightTheme, activeTheme())

	SetConfig(&schema.Configuration{Settings: schema.Settings{Terminal: schema.Terminal{Mode: "dark"}}})
	t.Cleanup(func() { SetConfig(nil) })
	assert.Equal(t, theme.DefaultDarkTheme, activeTheme())
}

func TestThemeSetAndToggle(t *testing.T) {
	_, s := withPreference(t)

	require.NoError(t, themeSetCmd.RunE(themeSetCmd, []string{"light"}))
	value, ok, err := s.Get(theme.PreferenceKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "light", value)

	require.NoError(t, themeToggleCmd.RunE(themeToggleCmd, nil))
	value, _, _ = s.Get(theme.PreferenceKey)
	assert.Equal(t, "dark", value)
}

func TestThemeSet_InvalidMode(t *testing.T) {
	withPreference(t)

	err := themeSetCmd.RunE(themeSetCmd, []string{"sepia"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrInvalidMode)
	assert.Equal(t, errUtils.ExitCodeUsage, errUtils.GetExitCode(err))
}

func TestThemeToggle_NoPreference(t *testing.T) {
	SetPreference(nil)
	err := themeToggleCmd.RunE(themeToggleCmd, nil)
	assert.ErrorIs(t, err, errUtils.ErrThemePreference)
}

func TestThemeShow(t *testing.T) {
	var out bytes.Buffer
	themeShowCmd.SetOut(&out)
	t.Cleanup(func() { themeShowCmd.SetOut(nil) })

	require.NoError(t, executeThemeShow(themeShowCmd, []string{"Nord"}))
	assert.Contains(t, out.String(), "Nord")

	err := executeThemeShow(themeShowCmd, []string{"no-such-theme"})
	assert.ErrorIs(t, err, errUtils.ErrThemeNotFound)
}

func TestThemeList(t *testing.T) {
	withPreference(t)
	SetConfig(&schema.Configuration{Settings: schema.Settings{Terminal: schema.Terminal{NoColor: true}}})
	t.Cleanup(func() { SetConfig(nil) })

	var out bytes.Buffer
	themeListCmd.SetOut(&out)
	t.Cleanup(func() { themeListCmd.SetOut(nil) })

	require.NoError(t, executeThemeList(themeListCmd, nil))
	assert.Contains(t, out.String(), "Dracula")
}

func TestThemesArgCompletion(t *testing.T) {
	names, _ := ThemesArgCompletion(themeShowCmd, nil, "")
	assert.Contains(t, names, "Dracula")

	names, _ = ThemesArgCompletion(themeShowCmd, []string{"Nord"}, "")
	assert.Empty(t, names)
}

func TestThemeCommandProvider(t *testing.T) {
	provider := &ThemeCommandProvider{}

	assert.Equal(t, "theme", provider.GetCommand().Use)
	assert.Equal(t, "theme", provider.GetName())
	assert.Equal(t, "Other Commands", provider.GetGroup())
}
