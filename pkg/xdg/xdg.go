package xdg

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	errUtils "github.com/cloudposse/ticktock/errors"
)

// AppName is the directory created under each XDG base directory.
const AppName = "ticktock"

// GetXDGCacheDir returns the ticktock cache directory for subpath, creating it with perm.
// TICKTOCK_XDG_CACHE_HOME takes precedence over XDG_CACHE_HOME.
func GetXDGCacheDir(subpath string, perm os.FileMode) (string, error) {
	return getXDGDir("XDG_CACHE_HOME", "TICKTOCK_XDG_CACHE_HOME", xdg.CacheHome, subpath, perm)
}

// GetXDGDataDir returns the ticktock data directory for subpath, creating it with perm.
// TICKTOCK_XDG_DATA_HOME takes precedence over XDG_DATA_HOME.
func GetXDGDataDir(subpath string, perm os.FileMode) (string, error) {
	return getXDGDir("XDG_DATA_HOME", "TICKTOCK_XDG_DATA_HOME", xdg.DataHome, subpath, perm)
}

// GetXDGConfigDir returns the ticktock config directory for subpath, creating it with perm.
// TICKTOCK_XDG_CONFIG_HOME takes precedence over XDG_CONFIG_HOME.
func GetXDGConfigDir(subpath string, perm os.FileMode) (string, error) {
	return getXDGDir("XDG_CONFIG_HOME", "TICKTOCK_XDG_CONFIG_HOME", xdg.ConfigHome, subpath, perm)
}

func getXDGDir(xdgVar, appVar, libraryDefault, subpath string, perm os.FileMode) (string, error) {
	// adrg/xdg resolves the environment once at init, so read it again here
	// to pick up overrides set after startup.
	v := viper.New()
	if err := v.BindEnv(xdgVar, appVar, xdgVar); err != nil {
		return "", fmt.Errorf("%w: %s: %w", errUtils.ErrXDGPath, xdgVar, err)
	}

	base := v.GetString(xdgVar)
	if base == "" {
		base = libraryDefault
	}

	dir := filepath.Join(base, AppName)
	if subpath != "" {
		dir = filepath.Join(dir, subpath)
	}

	if err := os.MkdirAll(dir, perm); err != nil {
		return "", fmt.Errorf("%w: %s: %w", errUtils.ErrCreateDirectory, dir, err)
	}

	return dir, nil
}
