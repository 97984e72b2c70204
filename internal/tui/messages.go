package tui

import "github.com/vito/progrock"

// MsgTapeUpdate wraps one raw status update from the progress tape.
type MsgTapeUpdate struct {
	Update *progrock.StatusUpdate
}

// MsgTapeEnded is sent when the progress tape stream has ended.
type MsgTapeEnded struct{}
