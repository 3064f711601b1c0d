package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	errUtils "github.com/cloudposse/ticktock/errors"
	"github.com/cloudposse/ticktock/pkg/ui/theme"
	"github.com/cloudposse/ticktock/pkg/widget/countdown"
)

// promptDuration asks for the countdown length. Tests replace it.
var promptDuration = askDuration

func askDuration(initial countdown.Config, scheme *theme.ColorScheme) (countdown.Config, error) {
	initial = initial.Clamp()
	hours := strconv.Itoa(initial.Hours)
	minutes := strconv.Itoa(initial.Minutes)
	seconds := strconv.Itoa(initial.Seconds)

	// ESC quits as well as ctrl+c.
	keyMap := huh.NewDefaultKeyMap()
	keyMap.Quit = key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("ctrl+c/esc", "quit"),
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Hours").Value(&hours).Validate(fieldValidator(countdown.MaxHours)),
			huh.NewInput().Title("Minutes").Value(&minutes).Validate(fieldValidator(countdown.MaxMinutes)),
			huh.NewInput().Title("Seconds").Value(&seconds).Validate(fieldValidator(countdown.MaxSeconds)),
		).Title("Countdown"),
	).WithKeyMap(keyMap).WithTheme(huhTheme(scheme))

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return countdown.Config{}, errUtils.Build(errUtils.ErrUserAborted).
				WithExitCode(errUtils.ExitCodeInterrupted).
				Err()
		}
		return countdown.Config{}, errUtils.Build(errUtils.ErrPrompt).
			WithExplanationf("Reading the countdown duration failed: %v", err).
			Err()
	}

	return parseDuration(hours, minutes, seconds)
}

// parseDuration turns the three form fields into a config.
func parseDuration(hours, minutes, seconds string) (countdown.Config, error) {
	var values [3]int
	for i, raw := range []string{hours, minutes, seconds} {
		v, err := parseField(raw)
		if err != nil {
			return countdown.Config{}, errUtils.Build(errUtils.ErrInvalidConfiguration).
				WithExplanation(err.Error()).
				WithExitCode(errUtils.ExitCodeUsage).
				Err()
		}
		values[i] = v
	}
	return countdown.Config{Hours: values[0], Minutes: values[1], Seconds: values[2]}, nil
}

func parseField(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", raw)
	}
	if v < 0 {
		return 0, fmt.Errorf("%d is negative", v)
	}
	return v, nil
}

func fieldValidator(maxValue int) func(string) error {
	return func(raw string) error {
		v, err := parseField(raw)
		if err != nil {
			return err
		}
		if v > maxValue {
			return fmt.Errorf("must be at most %d", maxValue)
		}
		return nil
	}
}

func huhTheme(scheme *theme.ColorScheme) *huh.Theme {
	t := huh.ThemeCharm()
	if scheme == nil {
		return t
	}
	t.Focused.Title = t.Focused.Title.Foreground(lipgloss.Color(scheme.Primary))
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(lipgloss.Color(scheme.Error))
	return t
}
