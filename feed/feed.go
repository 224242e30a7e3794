// Package feed tracks the lifecycle of the video list shown to the user.
//
// A feed starts Idle, moves to Loading when a fetch begins and settles in
// Success or Failed. Refresh and retry both start a new fetch from any settled state.
package feed

import (
	"context"

	"github.com/clipdeck/clipdeck/api"
	"github.com/clipdeck/clipdeck/video"
)

type State int

const (
	Idle State = iota
	Loading
	Success
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Lister is satisfied by *api.Client.
type Lister interface {
	List(ctx context.Context) ([]video.Video, error)
}

type Feed struct {
	state  State
	videos []video.Video
	err    error
	// fetches counts started fetches.
	fetches int
}

func New() *Feed {
	return &Feed{state: Idle}
}

// Begin moves the feed to Loading and clears the previous error.
// It reports false if a fetch is already running.
func (f *Feed) Begin() bool {
	if f.state == Loading {
		return false
	}

	f.state = Loading
	f.err = nil
	f.fetches++
	return true
}

// Finish settles a running fetch. Videos from a failed fetch are ignored
// and the previous list is kept.
func (f *Feed) Finish(videos []video.Video, err error) {
	if f.state != Loading {
		return
	}

	if err != nil {
		f.state = Failed
		f.err = err
		return
	}

	f.state = Success
	f.videos = videos
}

// Load runs a whole fetch synchronously.
func (f *Feed) Load(ctx context.Context, lister Lister) error {
	if !f.Begin() {
		return nil
	}

	videos, err := lister.List(ctx)
	f.Finish(videos, err)
	return err
}

func (f *Feed) State() State {
	return f.state
}

func (f *Feed) Videos() []video.Video {
	return f.videos
}

func (f *Feed) Len() int {
	return len(f.videos)
}

func (f *Feed) Err() error {
	return f.err
}

// Message is the error text to display, or "" when there is none.
func (f *Feed) Message() string {
	if f.err == nil {
		return ""
	}

	return api.Message(f.err)
}

// Fetches is how many fetches have been started.
func (f *Feed) Fetches() int {
	return f.fetches
}
