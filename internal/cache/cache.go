// Package cache prunes files clipdeck leaves behind: old daily logs and stale player sockets.
package cache

import (
	"os"
	"path/filepath"
	"time"

	"github.com/clipdeck/clipdeck/filesystem"
	"github.com/clipdeck/clipdeck/log"
	"github.com/clipdeck/clipdeck/where"
)

// TTL is how long a log file is kept.
const TTL = 7 * 24 * time.Hour

// Prune removes regular files under dir last modified before now minus ttl.
// It returns how many files were removed.
func Prune(dir string, ttl time.Duration, now time.Time) (int, error) {
	fs := filesystem.API()

	exists, err := fs.DirExists(dir)
	if err != nil || !exists {
		return 0, err
	}

	var removed int
	err = fs.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}

		if now.Sub(info.ModTime()) > ttl {
			if err := fs.Remove(path); err == nil {
				removed++
			}
		}

		return nil
	})

	return removed, err
}

// CollectGarbage prunes expired logs. It is meant to run in the background at startup.
func CollectGarbage() {
	dir := filepath.Clean(where.Logs())

	removed, err := Prune(dir, TTL, time.Now())
	if err != nil {
		log.Warnf("pruning %s: %v", dir, err)
		return
	}

	if removed > 0 {
		log.Debugf("pruned %d old log files", removed)
	}
}
