// Package player launches an external media player for a stream URL.
package player

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/clipdeck/clipdeck/constant"
)

// Supported player names for player.default.
const (
	NameMPV  = "mpv"
	NameIINA = "iina"
)

// ErrUnsupported is returned by players that can't report playback progress.
var ErrUnsupported = errors.New("not supported by this player")

// ErrClosed is returned by Play once the player has been closed.
var ErrClosed = errors.New("player closed")

// Player is a running playback session.
type Player interface {
	// Play starts playing target, a stream URL or local path, under title.
	Play(target, title string) error

	// PercentWatched is the current position as a percentage of the duration.
	PercentWatched() (float64, error)

	// Track calls fn with the watched percentage about once a second until the player exits or Close is called.
	Track(fn func(percent float64))

	// Wait is closed once the player process has exited.
	Wait() <-chan struct{}

	Close() error
}

// New returns a player by name.
func New(name string) (Player, error) {
	switch name {
	case NameMPV:
		return NewMPV(), nil
	case NameIINA:
		if runtime.GOOS != constant.Darwin {
			return nil, fmt.Errorf("player %q is only available on macOS", name)
		}
		return NewIINA(), nil
	default:
		return nil, fmt.Errorf("unknown player %q, expected %s or %s", name, NameMPV, NameIINA)
	}
}

// Executable is the program that has to be installed for the named player.
func Executable(name string) string {
	if name == NameIINA {
		return "iina"
	}

	return "mpv"
}

// Available reports whether the named player can be launched.
func Available(name string) bool {
	if name == NameIINA && runtime.GOOS == constant.Darwin {
		_, err := exec.LookPath("open")
		return err == nil
	}

	_, err := exec.LookPath(Executable(name))
	return err == nil
}
