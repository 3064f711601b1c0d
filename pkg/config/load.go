package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/charmbracelet/log"
	"github.com/spf13/viper"

	errUtils "github.com/cloudposse/ticktock/errors"
	"github.com/cloudposse/ticktock/pkg/schema"
	"github.com/cloudposse/ticktock/pkg/xdg"
)

// Load resolves the configuration into cfg-ready form.
//
// Files are merged from lower to higher priority:
//   - $XDG_CONFIG_HOME/ticktock/ticktock.yaml
//   - ./ticktock.yaml
//   - the file named by TICKTOCK_CONFIG
//   - the file named by explicitPath (--config)
//
// Environment variables (TICKTOCK_*) and flags already bound to v override files.
func Load(v *viper.Viper, explicitPath string) (schema.Configuration, error) {
	var cfg schema.Configuration

	v.SetConfigType(ConfigFileType)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	if err := bindEnvAliases(v); err != nil {
		return cfg, err
	}

	used, err := readConfigFiles(v, explicitPath)
	if err != nil {
		return cfg, err
	}
	if used == "" {
		log.Debug("No ticktock.yaml found, using defaults")
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("%w: %w", errUtils.ErrUnmarshalConfig, err)
	}
	cfg.ConfigFile = used

	if err := Validate(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// bindEnvAliases binds the short or conventional names that do not follow
// the TICKTOCK_<SECTION>_<KEY> pattern.
func bindEnvAliases(v *viper.Viper) error {
	aliases := map[string][]string{
		"settings.terminal.theme":    {"TICKTOCK_THEME"},
		"settings.terminal.no_color": {"TICKTOCK_NO_COLOR", "NO_COLOR"},
		"errors.sentry.dsn":          {"TICKTOCK_SENTRY_DSN", "SENTRY_DSN"},
	}
	for key, envs := range aliases {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("%w: binding %s: %w", errUtils.ErrInvalidConfiguration, key, err)
		}
	}
	return nil
}

func readConfigFiles(v *viper.Viper, explicitPath string) (string, error) {
	var candidates []string

	if dir, err := xdg.GetXDGConfigDir("", configDirPermissions); err == nil {
		candidates = append(candidates, filepath.Join(dir, ConfigFileName+"."+ConfigFileType))
	} else {
		log.Debug("Skipping XDG config directory", "error", err)
	}
	if wd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(wd, ConfigFileName+"."+ConfigFileType))
	}

	var used string
	for _, path := range candidates {
		merged, err := mergeIfExists(v, path, false)
		if err != nil {
			return "", err
		}
		if merged {
			used = path
		}
	}

	// Explicit paths must exist.
	for _, path := range []string{os.Getenv(ConfigPathEnv), explicitPath} {
		if path == "" {
			continue
		}
		if _, err := mergeIfExists(v, path, true); err != nil {
			return "", err
		}
		used = path
	}

	return used, nil
}

func mergeIfExists(v *viper.Viper, path string, required bool) (bool, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) && !required {
		return false, nil
	}
	if err != nil {
		return false, errUtils.Build(errUtils.ErrReadConfig).
			WithExplanationf("Could not open %s.", path).
			WithHint("Check the --config flag or the TICKTOCK_CONFIG environment variable").
			WithContext("path", path).
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}
	defer f.Close()

	if err := v.MergeConfig(f); err != nil {
		return false, fmt.Errorf("%w: %s: %w", errUtils.ErrReadConfig, path, err)
	}
	log.Debug("Merged configuration", "file", path)
	return true, nil
}
