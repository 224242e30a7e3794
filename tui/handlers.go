package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/clipdeck/clipdeck/api"
	"github.com/clipdeck/clipdeck/history"
	"github.com/clipdeck/clipdeck/internal/ui"
	"github.com/clipdeck/clipdeck/key"
	"github.com/clipdeck/clipdeck/log"
	"github.com/clipdeck/clipdeck/open"
	"github.com/clipdeck/clipdeck/player"
	"github.com/clipdeck/clipdeck/video"
	"github.com/spf13/viper"
)

type videosLoadedMsg struct {
	videos []video.Video
	err    error
}

type uploadDoneMsg struct {
	result *api.UploadResult
	err    error
}

type playbackStartedMsg struct {
	player player.Player
	err    error
}

type playbackProgressMsg struct {
	player  player.Player
	percent float64
}

type playbackExitMsg struct {
	player player.Player
}

// requestContext bounds a request with api.timeout when it is set.
func (b *statefulBubble) requestContext() (context.Context, context.CancelFunc) {
	if seconds := viper.GetInt(key.APITimeout); seconds > 0 {
		return context.WithTimeout(b.ctx, time.Duration(seconds)*time.Second)
	}

	return context.WithCancel(b.ctx)
}

// fetchVideos starts a list request unless one is already running.
func (b *statefulBubble) fetchVideos() tea.Cmd {
	if !b.feed.Begin() {
		return nil
	}

	ctx, cancel := b.requestContext()
	b.cancelFetch = cancel

	return tea.Batch(b.spinnerC.Tick, b.videosC.StartSpinner(), func() tea.Msg {
		defer cancel()
		videos, err := b.service.List(ctx)
		return videosLoadedMsg{videos: videos, err: err}
	})
}

// submitUpload validates the form and, if it passes, sends it.
func (b *statefulBubble) submitUpload() tea.Cmd {
	b.form.Title = b.titleC.Value()
	b.form.Description = b.descriptionC.Value()

	req, err := b.form.Begin()
	if err != nil {
		return nil
	}

	ctx, cancel := b.requestContext()
	b.cancelUpload = cancel

	log.Infof("uploading %s as %q", req.Path, req.Title)
	return tea.Batch(b.spinnerC.Tick, func() tea.Msg {
		defer cancel()
		result, err := b.service.Upload(ctx, req)
		return uploadDoneMsg{result: result, err: err}
	})
}

// playVideo launches the configured player for v.
func (b *statefulBubble) playVideo(v *video.Video) tea.Cmd {
	name := b.options.Player
	if name == "" {
		name = viper.GetString(key.Player)
	}

	p, err := b.newPlayer(name)
	if err != nil {
		return func() tea.Msg { return playbackStartedMsg{err: err} }
	}

	b.player = p
	b.playing = v
	b.watched = 0
	b.progress = make(chan float64, 1)
	progress := b.progress
	target := b.service.StreamURL(v.ID)

	return tea.Batch(b.spinnerC.Tick, func() tea.Msg {
		log.Infof("playing %d via %s", v.ID, name)
		if err := p.Play(target, v.Title); err != nil {
			return playbackStartedMsg{player: p, err: fmt.Errorf("%s: %w", name, err)}
		}

		p.Track(func(percent float64) {
			select {
			case progress <- percent:
			default:
			}
		})

		return playbackStartedMsg{player: p}
	})
}

// waitForPlayback delivers the next progress report or the player's exit.
func (b *statefulBubble) waitForPlayback() tea.Cmd {
	p, progress := b.player, b.progress
	if p == nil {
		return nil
	}

	return func() tea.Msg {
		select {
		case percent := <-progress:
			return playbackProgressMsg{player: p, percent: percent}
		case <-p.Wait():
			return playbackExitMsg{player: p}
		}
	}
}

// finishPlayback records history for the video that was playing and releases the player.
func (b *statefulBubble) finishPlayback() {
	if b.player != nil {
		_ = b.player.Close()
		b.player = nil
	}

	if b.playing == nil {
		return
	}

	if viper.GetBool(key.HistorySaveOnPlay) {
		if err := history.Save(b.service.Base(), b.playing, b.watched); err != nil {
			log.Warnf("saving history: %v", err)
		}
	}

	b.playing = nil
}

func (b *statefulBubble) openStream(v *video.Video) tea.Cmd {
	url := b.service.StreamURL(v.ID)
	return func() tea.Msg {
		if err := open.Start(url); err != nil {
			return errorNotice(err)
		}
		return nil
	}
}

func errorNotice(err error) tea.Msg {
	return ui.Notification{Text: err.Error(), IsError: true}
}
