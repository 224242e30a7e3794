package tui

import (
	"context"
	"errors"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/clipdeck/clipdeck/api"
	"github.com/clipdeck/clipdeck/feed"
	"github.com/clipdeck/clipdeck/internal/ui"
	"github.com/clipdeck/clipdeck/player"
	"github.com/clipdeck/clipdeck/upload"
	"github.com/clipdeck/clipdeck/video"
)

func (b *statefulBubble) Init() tea.Cmd {
	if b.state == uploadState {
		return b.focusField(titleField)
	}

	return b.fetchVideos()
}

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if cmd := b.notifier.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		if b.busy() {
			b.spinnerC, cmd = b.spinnerC.Update(msg)
			cmds = append(cmds, cmd)
		}
		b.videosC, cmd = b.videosC.Update(msg)
		return b, tea.Batch(append(cmds, cmd)...)
	case videosLoadedMsg:
		return b, tea.Batch(append(cmds, b.onVideosLoaded(msg))...)
	case uploadDoneMsg:
		return b, tea.Batch(append(cmds, b.onUploadDone(msg))...)
	case playbackStartedMsg, playbackProgressMsg, playbackExitMsg:
		return b, tea.Batch(append(cmds, b.onPlayback(msg))...)
	}

	var cmd tea.Cmd
	switch b.state {
	case loadingState:
		cmd = b.updateLoading(msg)
	case errorState:
		cmd = b.updateError(msg)
	case videosState:
		cmd = b.updateVideos(msg)
	case detailState:
		cmd = b.updateDetail(msg)
	case playState:
		cmd = b.updatePlay(msg)
	case uploadState:
		cmd = b.updateUpload(msg)
	case pickState:
		cmd = b.updatePick(msg)
	}

	return b, tea.Batch(append(cmds, cmd)...)
}

func (b *statefulBubble) busy() bool {
	return b.feed.State() == feed.Loading || b.form.Loading() || b.state == playState
}

// resetTo makes s the root screen.
func (b *statefulBubble) resetTo(s state) {
	for b.statesHistory.Len() > 0 {
		b.statesHistory.Pop()
	}

	b.setState(s)
}

func (b *statefulBubble) back() tea.Cmd {
	if !b.previousState() {
		return tea.Quit
	}

	return nil
}

func (b *statefulBubble) onVideosLoaded(msg videosLoadedMsg) tea.Cmd {
	b.videosC.StopSpinner()
	b.feed.Finish(msg.videos, msg.err)
	b.cancelFetch = nil

	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			return nil
		}

		switch b.state {
		case loadingState, videosState, errorState:
			b.raiseError(msg.err)
			return nil
		default:
			return ui.NotifyError(api.Message(msg.err))
		}
	}

	cmd := b.setVideos(b.feed.Videos())
	if b.state == loadingState || b.state == errorState {
		b.resetTo(videosState)
	}

	return cmd
}

func (b *statefulBubble) setVideos(videos []video.Video) tea.Cmd {
	items := make([]list.Item, len(videos))
	for i := range videos {
		items[i] = b.newListItem(&videos[i])
	}

	b.videosC.Title = videosTitle(len(videos))
	return b.videosC.SetItems(items)
}

func (b *statefulBubble) selectedVideo() *video.Video {
	item, ok := b.videosC.SelectedItem().(*listItem)
	if !ok {
		return nil
	}

	return item.video
}

func (b *statefulBubble) updateLoading(msg tea.Msg) tea.Cmd {
	if ui.Matches(msg, b.keymap.back) {
		if b.cancelFetch != nil {
			b.cancelFetch()
		}
		return b.back()
	}

	return nil
}

func (b *statefulBubble) updateError(msg tea.Msg) tea.Cmd {
	switch {
	case ui.Matches(msg, b.keymap.retry):
		b.setState(loadingState)
		return b.fetchVideos()
	case ui.Matches(msg, b.keymap.quit):
		return tea.Quit
	case ui.Matches(msg, b.keymap.back):
		return b.back()
	}

	return nil
}

func (b *statefulBubble) updateVideos(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && b.videosC.FilterState() != list.Filtering {
		switch {
		case bubblesKey.Matches(keyMsg, b.keymap.confirm):
			if v := b.selectedVideo(); v != nil {
				b.selected = v
				b.newState(detailState)
			}
			return nil
		case bubblesKey.Matches(keyMsg, b.keymap.play):
			if v := b.selectedVideo(); v != nil {
				return b.startPlayback(v)
			}
			return nil
		case bubblesKey.Matches(keyMsg, b.keymap.openURL):
			if v := b.selectedVideo(); v != nil {
				return b.openStream(v)
			}
			return nil
		case bubblesKey.Matches(keyMsg, b.keymap.refresh):
			return b.fetchVideos()
		case bubblesKey.Matches(keyMsg, b.keymap.upload):
			b.newState(uploadState)
			return b.focusField(titleField)
		}
	}

	var cmd tea.Cmd
	b.videosC, cmd = b.videosC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateDetail(msg tea.Msg) tea.Cmd {
	switch {
	case ui.Matches(msg, b.keymap.play, b.keymap.confirm):
		return b.startPlayback(b.selected)
	case ui.Matches(msg, b.keymap.openURL):
		return b.openStream(b.selected)
	case ui.Matches(msg, b.keymap.back):
		return b.back()
	case ui.Matches(msg, b.keymap.quit):
		return tea.Quit
	}

	return nil
}

func (b *statefulBubble) startPlayback(v *video.Video) tea.Cmd {
	b.newState(playState)
	return b.playVideo(v)
}

func (b *statefulBubble) updatePlay(msg tea.Msg) tea.Cmd {
	if ui.Matches(msg, b.keymap.back) {
		b.finishPlayback()
		b.previousState()
		return b.setVideos(b.feed.Videos())
	}

	return nil
}

func (b *statefulBubble) onPlayback(msg tea.Msg) tea.Cmd {
	// reports from a player that was already stopped or replaced
	var from player.Player
	switch msg := msg.(type) {
	case playbackStartedMsg:
		from = msg.player
	case playbackProgressMsg:
		from = msg.player
	case playbackExitMsg:
		from = msg.player
	}

	if from != b.player {
		return nil
	}

	switch msg := msg.(type) {
	case playbackStartedMsg:
		if msg.err != nil {
			b.playing = nil
			b.finishPlayback()
			if b.state == playState {
				b.previousState()
			}
			return ui.NotifyError(msg.err.Error())
		}
		return b.waitForPlayback()
	case playbackProgressMsg:
		b.watched = max(b.watched, msg.percent)
		return b.waitForPlayback()
	case playbackExitMsg:
		if _, ok := b.player.(*player.IINA); ok {
			b.watched = 100
		}
		b.finishPlayback()
		b.previousState()
		return b.setVideos(b.feed.Videos())
	}

	return nil
}

func (b *statefulBubble) focusField(field int) tea.Cmd {
	b.focused = field

	if field == titleField {
		b.descriptionC.Blur()
		return b.titleC.Focus()
	}

	b.titleC.Blur()
	return b.descriptionC.Focus()
}

func (b *statefulBubble) updateUpload(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if b.form.Loading() {
			if bubblesKey.Matches(keyMsg, b.keymap.back) && b.cancelUpload != nil {
				b.cancelUpload()
			}
			return nil
		}

		switch {
		case bubblesKey.Matches(keyMsg, b.keymap.back):
			return b.back()
		case bubblesKey.Matches(keyMsg, b.keymap.pick):
			b.newState(pickState)
			return b.pickerC.Init()
		case bubblesKey.Matches(keyMsg, b.keymap.submit):
			return b.submitUpload()
		case bubblesKey.Matches(keyMsg, b.keymap.nextField):
			return b.focusField((b.focused + 1) % fieldCount)
		}
	}

	var cmd tea.Cmd
	if b.focused == titleField {
		b.titleC, cmd = b.titleC.Update(msg)
	} else {
		b.descriptionC, cmd = b.descriptionC.Update(msg)
	}

	return cmd
}

func (b *statefulBubble) onUploadDone(msg uploadDoneMsg) tea.Cmd {
	b.cancelUpload = nil
	b.form.Finish(msg.err)

	if msg.err != nil {
		return nil
	}

	b.titleC.Reset()
	b.descriptionC.Reset()

	return tea.Batch(ui.Notify(upload.SuccessMessage), b.fetchVideos())
}

func (b *statefulBubble) updatePick(msg tea.Msg) tea.Cmd {
	if ui.Matches(msg, b.keymap.back) {
		b.previousState()
		return nil
	}

	var cmd tea.Cmd
	b.pickerC, cmd = b.pickerC.Update(msg)

	if ok, path := b.pickerC.DidSelectFile(msg); ok {
		b.form.Pick(path)
		b.previousState()
		return tea.Batch(cmd, b.focusField(titleField))
	}

	if ok, path := b.pickerC.DidSelectDisabledFile(msg); ok {
		return tea.Batch(cmd, ui.NotifyError(path+" is not a supported video file"))
	}

	return cmd
}
