package tui

type state int

const (
	loadingState state = iota
	errorState
	videosState
	detailState
	playState
	uploadState
	pickState
)

// transient states are never returned to with esc.
func (s state) transient() bool {
	return s == loadingState || s == errorState || s == playState
}
