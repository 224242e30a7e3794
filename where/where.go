// Package where resolves the directories and files clipdeck writes to.
package where

import (
	"os"
	"path/filepath"

	"github.com/clipdeck/clipdeck/constant"
	"github.com/clipdeck/clipdeck/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the config directory when set.
const EnvConfigPath = "CLIPDECK_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is the directory holding clipdeck.toml, history and logs.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	return ensureDir(filepath.Join(lo.Must(os.UserConfigDir()), constant.Clipdeck))
}

// Cache is the directory for disposable data such as the release check.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}

	return ensureDir(filepath.Join(base, constant.Clipdeck))
}

func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// History is the playback history file.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Temp holds player IPC sockets.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Clipdeck))
}
