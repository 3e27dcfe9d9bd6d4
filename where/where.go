// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/vlctrack/vlctrack/constant"
	"github.com/vlctrack/vlctrack/filesystem"
)

// EnvConfigPath is the environment variable used to override the default configuration directory.
const EnvConfigPath = "VLCTRACK_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the application configuration directory.
// VLCTRACK_CONFIG_PATH takes precedence over the platform default.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Cache resolves the application's cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Logs resolves the directory used for diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// History resolves the JSON viewing history file.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Database resolves the SQLite viewing history database.
func Database() string {
	return filepath.Join(Config(), "history.db")
}

// NowPlaying resolves the snapshot a running watcher publishes for other processes.
func NowPlaying() string {
	return filepath.Join(Cache(), "now_playing.json")
}
