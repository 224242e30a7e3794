package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/clipdeck/clipdeck/color"
	"github.com/clipdeck/clipdeck/history"
	"github.com/clipdeck/clipdeck/key"
	"github.com/clipdeck/clipdeck/style"
	"github.com/clipdeck/clipdeck/video"
	"github.com/spf13/viper"
)

// listItem adapts a video to list.Item.
type listItem struct {
	video     *video.Video
	streamURL string
	watched   float64
	now       func() time.Time
}

func (t *listItem) Title() string {
	return t.video.Title
}

// Description shows size, upload date and progress. The stream URL is added when tui.show_urls is set.
func (t *listItem) Description() string {
	parts := []string{t.video.HumanSize()}

	if t.video.UploadDate != "" {
		parts = append(parts, t.video.UploadedAgo(t.now()))
	}

	if progress := watchedTag(t.watched); progress != "" {
		parts = append(parts, progress)
	}

	description := strings.Join(parts, " • ")
	if viper.GetBool(key.TUIShowURLs) {
		description += "\n" + style.Faint(t.streamURL)
	}

	return description
}

func (t *listItem) FilterValue() string {
	return t.video.Title + " " + t.video.Description
}

// watchedTag renders history progress: "Watched" past the completion threshold, a percentage below it.
func watchedTag(percentage float64) string {
	if percentage <= 0 {
		return ""
	}

	threshold := viper.GetFloat64(key.PlayerCompletionPercentage)
	if threshold <= 0 {
		threshold = 80
	}

	if percentage >= threshold {
		return lipgloss.NewStyle().Foreground(color.Green).Render("Watched")
	}

	return lipgloss.NewStyle().Foreground(color.Yellow).Render(fmt.Sprintf("%.0f%%", percentage))
}

func (b *statefulBubble) newListItem(v *video.Video) *listItem {
	item := &listItem{
		video:     v,
		streamURL: b.service.StreamURL(v.ID),
		now:       b.now,
	}

	if entry, ok := history.Lookup(b.service.Base(), v.ID); ok {
		item.watched = entry.WatchedPercentage
	}

	return item
}
