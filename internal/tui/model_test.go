package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// stubTape replays a fixed sequence of updates, then EOF.
type stubTape struct {
	updates []*progrock.StatusUpdate
}

func (s *stubTape) Read() (*progrock.StatusUpdate, error) {
	if len(s.updates) == 0 {
		return nil, io.EOF
	}
	update := s.updates[0]
	s.updates = s.updates[1:]
	return update, nil
}

func vertexUpdate(v *progrock.Vertex) *progrock.StatusUpdate {
	return &progrock.StatusUpdate{Vertexes: []*progrock.Vertex{v}}
}

func TestModel_TracksVertexLifecycle(t *testing.T) {
	m := NewModel(&stubTape{})

	m.apply(vertexUpdate(&progrock.Vertex{Id: "v1", Name: "build"}))
	require.Len(t, m.Steps(), 1)
	assert.Equal(t, "build", m.Steps()[0].Name)
	assert.Equal(t, statusRunning, m.Steps()[0].Status)

	m.apply(vertexUpdate(&progrock.Vertex{Id: "v1", Name: "build", Completed: timestamppb.Now()}))
	assert.Equal(t, statusCompleted, m.Steps()[0].Status)
}

func TestModel_FailedVertex(t *testing.T) {
	m := NewModel(&stubTape{})
	errMsg := "exit status 1"

	m.apply(vertexUpdate(&progrock.Vertex{Id: "v1", Name: "build"}))
	m.apply(vertexUpdate(&progrock.Vertex{Id: "v1", Name: "build", Completed: timestamppb.Now(), Error: &errMsg}))

	assert.Equal(t, statusFailed, m.Steps()[0].Status)
}

func TestModel_DetailShowsLastLogLine(t *testing.T) {
	m := NewModel(&stubTape{})

	m.apply(vertexUpdate(&progrock.Vertex{Id: "v1", Name: "build"}))
	m.apply(&progrock.StatusUpdate{Logs: []*progrock.VertexLog{
		{Vertex: "v1", Data: []byte("compiling a.ts\ncompiling b.ts\n")},
	}})

	assert.Equal(t, "compiling b.ts", m.Steps()[0].Detail)

	// Completion clears the detail line.
	m.apply(vertexUpdate(&progrock.Vertex{Id: "v1", Name: "build", Completed: timestamppb.Now()}))
	assert.Empty(t, m.Steps()[0].Detail)
}

func TestModel_LogsForUnknownVertexIgnored(t *testing.T) {
	m := NewModel(&stubTape{})

	m.apply(&progrock.StatusUpdate{Logs: []*progrock.VertexLog{
		{Vertex: "missing", Data: []byte("orphan line\n")},
	}})

	assert.Empty(t, m.Steps())
}

func TestModel_UpdateMessages(t *testing.T) {
	tape := &stubTape{updates: []*progrock.StatusUpdate{
		vertexUpdate(&progrock.Vertex{Id: "v1", Name: "pre_build"}),
	}}
	m := NewModel(tape)

	msg := WaitForTape(tape)()
	update, ok := msg.(MsgTapeUpdate)
	require.True(t, ok)

	next, cmd := m.Update(update)
	m = next.(*Model)
	require.NotNil(t, cmd)
	require.Len(t, m.Steps(), 1)

	// The tape is drained, so the follow-up read ends the stream.
	msg = cmd()
	_, ok = msg.(MsgTapeEnded)
	assert.True(t, ok)

	_, cmd = m.Update(MsgTapeEnded{})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_View(t *testing.T) {
	m := NewModel(&stubTape{})
	m.width = 80
	m.height = 24

	m.apply(vertexUpdate(&progrock.Vertex{Id: "v1", Name: "pre_build", Completed: timestamppb.Now()}))
	m.apply(vertexUpdate(&progrock.Vertex{Id: "v2", Name: "build"}))
	m.apply(&progrock.StatusUpdate{Logs: []*progrock.VertexLog{
		{Vertex: "v2", Data: []byte("bundling\n")},
	}})

	view := m.View()
	assert.Contains(t, view, "pre_build")
	assert.Contains(t, view, "build")
	assert.Contains(t, view, "bundling")
	assert.Equal(t, 2, strings.Count(view, "\n"))
}

func TestModel_ViewOverflowShowsTail(t *testing.T) {
	m := NewModel(&stubTape{})
	m.height = 2

	m.apply(vertexUpdate(&progrock.Vertex{Id: "v1", Name: "first"}))
	m.apply(vertexUpdate(&progrock.Vertex{Id: "v2", Name: "second"}))
	m.apply(vertexUpdate(&progrock.Vertex{Id: "v3", Name: "third"}))

	view := m.View()
	assert.NotContains(t, view, "first")
	assert.Contains(t, view, "second")
	assert.Contains(t, view, "third")
}

func TestTruncate(t *testing.T) {
	m := NewModel(&stubTape{})
	m.width = 26

	assert.Equal(t, "short", m.truncate("short"))
	assert.Equal(t, "aaaaaaaaaa…", m.truncate(strings.Repeat("a", 40)))

	m.width = 0
	assert.Equal(t, strings.Repeat("a", 40), m.truncate(strings.Repeat("a", 40)))
}
