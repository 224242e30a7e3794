// Package tui is the interactive terminal interface: video list, details, playback and upload.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/clipdeck/clipdeck/api"
	"github.com/clipdeck/clipdeck/feed"
	"github.com/clipdeck/clipdeck/upload"
)

// Service is the part of *api.Client the interface needs.
type Service interface {
	feed.Lister
	upload.Uploader
	StreamURL(id int64) string
	Base() string
}

var _ Service = (*api.Client)(nil)

type Options struct {
	// Upload opens the upload form instead of the list.
	Upload bool
	// Player overrides player.default.
	Player string
}

// Run blocks until the user quits.
func Run(ctx context.Context, service Service, options *Options) error {
	bubble := newBubble(ctx, service, options)
	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	bubble.shutdown()
	return err
}
