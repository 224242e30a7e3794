// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/clipdeck/clipdeck/color"
	"github.com/clipdeck/clipdeck/feed"
	"github.com/clipdeck/clipdeck/icon"
	"github.com/clipdeck/clipdeck/style"
	"github.com/clipdeck/clipdeck/video"
	"github.com/muesli/reflow/wrap"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

// EmptyMessage is shown in place of the list when the service has no videos.
const EmptyMessage = "No videos found"

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case errorState:
		output = b.viewError()
	case videosState:
		output = b.viewVideos()
	case detailState:
		output = b.viewDetail()
	case playState:
		output = b.viewPlay()
	case uploadState:
		output = b.viewUpload()
	case pickState:
		output = b.viewPick()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Videos"),
			"",
			b.spinnerC.View() + " Loading videos...",
		},
	)
}

func (b *statefulBubble) viewError() string {
	message := b.feed.Message()
	if message == "" && b.lastError != nil {
		message = b.lastError.Error()
	}

	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " " + wrap.String(message, b.width),
			"",
			style.Faint("Press r to retry"),
		},
	)
}

func (b *statefulBubble) viewVideos() string {
	if len(b.videosC.Items()) == 0 && b.feed.State() != feed.Loading {
		return b.renderLines(
			true,
			[]string{
				style.Title(videosTitle(0)),
				"",
				style.Faint(EmptyMessage),
			},
		)
	}

	return listExtraPaddingStyle.Render(b.videosC.View())
}

func (b *statefulBubble) viewDetail() string {
	v := b.selected
	if v == nil {
		return b.renderLines(true, []string{style.Faint("Nothing selected")})
	}

	lines := []string{
		style.Title(v.Title),
		"",
	}

	if v.Description != "" {
		lines = append(lines, wrap.String(v.Description, b.width), "")
	}

	meta := []string{v.HumanSize()}
	if v.UploadDate != "" {
		meta = append(meta, v.UploadedAgo(b.now()))
	}
	lines = append(lines, style.Faint(strings.Join(meta, " • ")))

	if item := b.newListItem(v); item.watched > 0 {
		lines = append(lines, watchedTag(item.watched))
	}

	lines = append(
		lines,
		"",
		icon.Get(icon.Link)+" "+style.Fg(color.Blue)(b.service.StreamURL(v.ID)),
	)

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewPlay() string {
	title := ""
	if b.playing != nil {
		title = b.playing.Title
	}

	return b.renderLines(
		true,
		[]string{
			style.Title("Now Playing"),
			"",
			icon.Get(icon.Play) + " " + style.Bold(title),
			"",
			b.spinnerC.View() + " " + fmt.Sprintf("%.0f%% watched", b.watched),
		},
	)
}

func (b *statefulBubble) viewUpload() string {
	file := style.Faint("No file selected (ctrl+o to browse)")
	if b.form.Path != "" {
		file = style.Fg(color.Accent)(b.form.Path)
	}

	lines := []string{
		style.Title("Upload Video"),
		"",
		icon.Get(icon.Upload) + " " + file,
		"",
		b.titleC.View(),
		counter(b.titleC.Value(), video.MaxTitleLength),
		"",
		b.descriptionC.View(),
		counter(b.descriptionC.Value(), video.MaxDescriptionLength),
		"",
	}

	switch {
	case b.form.Loading():
		lines = append(lines, b.spinnerC.View()+" Uploading...")
	case b.form.Err() != nil:
		lines = append(lines, style.Fg(color.Red)(icon.Get(icon.Fail)+" "+b.form.Message()))
	case b.form.Notice() != "":
		lines = append(lines, style.Fg(color.Green)(icon.Get(icon.Success)+" "+b.form.Notice()))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewPick() string {
	return b.renderLines(
		false,
		[]string{
			style.Title("Select Video"),
			"",
			style.Faint(b.pickerC.CurrentDirectory),
			"",
			b.pickerC.View(),
		},
	)
}

func counter(value string, limit int) string {
	return style.Faint(fmt.Sprintf("%d/%d", utf8.RuneCountInString(value), limit))
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
