package theme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/ticktock/errors"
)

func TestListThemes_Plain(t *testing.T) {
	result, err := ListThemes(ListThemesOptions{ActiveTheme: "Nord"})
	require.NoError(t, err)

	themes, err := LoadThemes()
	require.NoError(t, err)
	assert.Equal(t, len(themes), result.ThemeCount)

	assert.Contains(t, result.Output, "Dracula")
	assert.Contains(t, result.Output, "indicates recommended themes")
	assert.Contains(t, result.Output, "Active theme: Nord")
	assert.Contains(t, result.Output, IconActive+" Nord")
}

func TestListThemes_RecommendedKeepsActive(t *testing.T) {
	result, err := ListThemes(ListThemesOptions{RecommendedOnly: true, ActiveTheme: "Solarized Dark"})
	require.NoError(t, err)

	assert.Equal(t, len(RecommendedThemes)+1, result.ThemeCount)
	assert.Contains(t, result.Output, "Solarized Dark")
	assert.NotContains(t, result.Output, "Gruvbox Dark")
	assert.Contains(t, result.Output, "(recommended)")
}

func TestListThemes_Styled(t *testing.T) {
	result, err := ListThemes(ListThemesOptions{Styled: true, ActiveTheme: DefaultDarkTheme})
	require.NoError(t, err)
	assert.Contains(t, result.Output, "Palette")
	assert.Contains(t, result.Output, "Tokyo Night")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	long := strings.Repeat("x", 60)
	out := truncate(long, sourceMaxLen)
	assert.Len(t, out, sourceMaxLen)
	assert.True(t, strings.HasSuffix(out, "..."))
}

func TestShowTheme(t *testing.T) {
	out, err := ShowTheme(ShowThemeOptions{ThemeName: "dracula"})
	require.NoError(t, err)

	assert.Contains(t, out, "Theme: Dracula")
	assert.Contains(t, out, "COLOR PALETTE")
	assert.Contains(t, out, "CLOCK PREVIEW")
	assert.Contains(t, out, "Timer started")
	assert.Contains(t, out, "TICKTOCK_THEME")
}

func TestShowTheme_NotFound(t *testing.T) {
	_, err := ShowTheme(ShowThemeOptions{ThemeName: "nope"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrThemeNotFound)
	assert.Equal(t, errUtils.ExitCodeUsage, errUtils.GetExitCode(err))
}
