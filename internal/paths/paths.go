package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/speclint/internal/errors"
)

const (
	// AppName is the directory speclint owns under each XDG base directory.
	AppName = "speclint"

	// ConfigFileName is the config file's base name; viper adds the extension.
	ConfigFileName = "speclint"

	// DefaultDirPerm applies when EnsureDir is called with perm 0.
	DefaultDirPerm = 0o700
)

// ErrHomeDirNotFound is returned when neither HOME nor the platform
// equivalent yields a home directory.
var ErrHomeDirNotFound = errors.New("home directory not found")

// EnsureDir creates path and its parents. An existing directory is not an
// error.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// Home is ResolveHome without the error; it returns "" on failure.
func Home() string {
	dir, _ := ResolveHome()
	return dir
}

// ResolveHome looks up the current user's home directory.
func ResolveHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return dir, nil
}

// ConfigHome is the platform config root: ~/.config on Linux,
// ~/Library/Application Support on macOS, %LOCALAPPDATA% on Windows.
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir is <ConfigHome>/speclint.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigSearchPaths lists the directories searched for speclint.yaml, first
// match wins.
func ConfigSearchPaths() []string {
	return []string{".", ConfigDir()}
}
