// Package tui renders packaging pipeline progress in the terminal.
package tui

import (
	"io"

	"github.com/charmbracelet/bubbletea"
	"github.com/vito/progrock"
)

// TapeSource is an interface for reading progrock updates. *progrock.Tape
// does not implement Read(), so the caller provides a readable source,
// typically the telemetry pipe feeding this view.
type TapeSource interface {
	Read() (*progrock.StatusUpdate, error)
}

// WaitForTape returns a Bubble Tea command that reads the next update from
// the tape. It returns MsgTapeUpdate on success or MsgTapeEnded on EOF or
// error.
func WaitForTape(tape TapeSource) tea.Cmd {
	return func() tea.Msg {
		update, err := tape.Read()
		if err != nil {
			if err == io.EOF {
				return MsgTapeEnded{}
			}
			// Treat other errors as end of stream for now
			return MsgTapeEnded{}
		}
		return MsgTapeUpdate{Update: update}
	}
}
