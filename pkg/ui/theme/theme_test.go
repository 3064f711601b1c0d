package theme

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/ticktock/errors"
)

func TestLoadThemes(t *testing.T) {
	themes, err := LoadThemes()
	require.NoError(t, err)
	require.NotEmpty(t, themes)

	for _, th := range themes {
		assert.NotEmpty(t, th.Name)
		assert.NotEmpty(t, th.Background, "theme %s has no background", th.Name)
		assert.NotEmpty(t, th.Foreground, "theme %s has no foreground", th.Name)
	}
}

func TestRegistry(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	t.Run("case-insensitive lookup", func(t *testing.T) {
		th, ok := registry.Get("dracula")
		require.True(t, ok)
		assert.Equal(t, "Dracula", th.Name)
	})

	t.Run("unknown falls back to default", func(t *testing.T) {
		th := registry.GetOrDefault("no-such-theme")
		require.NotNil(t, th)
		assert.Equal(t, DefaultDarkTheme, th.Name)
	})

	t.Run("list is sorted", func(t *testing.T) {
		list := registry.List()
		for i := 1; i < len(list); i++ {
			assert.LessOrEqual(t, strings.ToLower(list[i-1].Name), strings.ToLower(list[i].Name))
		}
	})
}

func TestRegistry_ForMode(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	tests := []struct {
		name       string
		configured string
		mode       Mode
		expected   string
	}{
		{"dark default", "", Dark, DefaultDarkTheme},
		{"light default", "", Light, DefaultLightTheme},
		{"configured wins", "Nord", Light, "Nord"},
		{"unknown configured falls back to mode", "missing", Light, DefaultLightTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, registry.ForMode(tt.configured, tt.mode).Name)
		})
	}
}

func TestDefaultThemesMatchTheirMode(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	dark, ok := registry.Get(DefaultDarkTheme)
	require.True(t, ok)
	assert.True(t, dark.Meta.IsDark)

	light, ok := registry.Get(DefaultLightTheme)
	require.True(t, ok)
	assert.False(t, light.Meta.IsDark)
}

func TestIsRecommended(t *testing.T) {
	assert.True(t, IsRecommended("DRACULA"))
	assert.True(t, IsRecommended(DefaultLightTheme))
	assert.False(t, IsRecommended("Solarized Dark"))
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode(" Light ")
	require.NoError(t, err)
	assert.Equal(t, Light, mode)

	mode, err = ParseMode("dark")
	require.NoError(t, err)
	assert.Equal(t, Dark, mode)

	_, err = ParseMode("sepia")
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrInvalidMode)
}

func TestModeToggle(t *testing.T) {
	assert.Equal(t, Dark, Light.Toggle())
	assert.Equal(t, Light, Dark.Toggle())
	assert.Equal(t, Dark, Dark.Toggle().Toggle())
}

func TestGenerateColorScheme_LightInvertsText(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	light := registry.GetOrDefault(DefaultLightTheme)
	scheme := GenerateColorScheme(light)
	assert.Equal(t, light.Black, scheme.TextPrimary)
	assert.Equal(t, light.Foreground, scheme.Digits)

	dark := registry.GetOrDefault(DefaultDarkTheme)
	scheme = GenerateColorScheme(dark)
	assert.Equal(t, dark.White, scheme.TextPrimary)
}

func TestGetContrastColor(t *testing.T) {
	tests := []struct {
		bg       string
		expected string
	}{
		{"#FFFFFF", "#000000"},
		{"#000000", "#FFFFFF"},
		{"FAFAFA", "#000000"},
		{"#123", "#FFFFFF"},
		{"#GGGGGG", "#FFFFFF"},
	}
	for _, tt := range tests {
		t.Run(tt.bg, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetContrastColor(tt.bg))
		})
	}
}

func TestGetLogStyles(t *testing.T) {
	assert.NotNil(t, GetLogStyles(nil))

	scheme, err := GetColorSchemeForTheme("Nord")
	require.NoError(t, err)
	styles := GetLogStyles(scheme)
	assert.Len(t, styles.Levels, 5)

	plain := GetLogStylesNoColor()
	assert.Len(t, plain.Levels, 5)
}


func TestGetStyles(t *testing.T) {
	scheme, err := GetColorSchemeForTheme(DefaultDarkTheme)
	require.NoError(t, err)

	styles := GetStyles(scheme)
	require.NotNil(t, styles)
	assert.Equal(t, lipgloss.Color(scheme.Primary), styles.Title.GetForeground())
	assert.Equal(t, lipgloss.Color(scheme.Digits), styles.Digits.GetForeground())
	assert.True(t, styles.Title.GetBold())
}
