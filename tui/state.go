package tui

type state int

const (
	nowPlayingState state = iota
	historyState
	confirmState
	errorState
)

// tabs in display order
var tabs = []state{nowPlayingState, historyState}

func (s state) title() string {
	switch s {
	case nowPlayingState:
		return "Now Playing"
	case historyState:
		return "History"
	default:
		return ""
	}
}
