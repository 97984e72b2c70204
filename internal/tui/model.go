package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vito/progrock"
)

const (
	statusRunning   = "running"
	statusCompleted = "completed"
	statusFailed    = "failed"
)

// StepState represents one pipeline step (a build phase or the archive
// pass) as tracked by the view.
type StepState struct {
	ID     string
	Name   string
	Status string // statusRunning, statusCompleted, statusFailed
	// Detail is the most recent output line of the step, shown dimmed
	// next to the name while the step runs.
	Detail string
}

type styles struct {
	running   lipgloss.Style
	completed lipgloss.Style
	failed    lipgloss.Style
	detail    lipgloss.Style
}

// Model is the Bubble Tea model for pipeline progress, fed by a progrock
// tape.
type Model struct {
	tape    TapeSource
	steps   []StepState
	width   int
	height  int
	spinner spinner.Model
	styles  styles
}

// NewModel creates a new progress model reading from the given tape
// source.
func NewModel(tape TapeSource) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))

	return &Model{
		tape:    tape,
		spinner: s,
		styles: styles{
			running:   lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")),
			completed: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),  // Green
			failed:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")), // Red
			detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")), // Gray
		},
	}
}

// Init starts the tape reader and the spinner.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		WaitForTape(m.tape),
		m.spinner.Tick,
	)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case MsgTapeUpdate:
		m.apply(msg.Update)
		return m, WaitForTape(m.tape)
	case MsgTapeEnded:
		return m, tea.Quit
	}
	return m, nil
}

// Steps exposes the tracked step states. Used by tests.
func (m *Model) Steps() []StepState {
	return m.steps
}

// apply folds one status update into the step list.
func (m *Model) apply(update *progrock.StatusUpdate) {
	for _, v := range update.Vertexes {
		m.updateOrAddStep(v)
	}
	for _, l := range update.Logs {
		m.recordLog(l)
	}
}

func (m *Model) updateOrAddStep(v *progrock.Vertex) {
	for i, existing := range m.steps {
		if existing.ID == v.Id {
			if v.Completed != nil {
				if v.Error != nil {
					m.steps[i].Status = statusFailed
				} else {
					m.steps[i].Status = statusCompleted
				}
				m.steps[i].Detail = ""
			}
			return
		}
	}
	m.steps = append(m.steps, StepState{
		ID:     v.Id,
		Name:   v.Name,
		Status: statusRunning,
	})
}

// recordLog keeps the last non-empty output line of a running step.
func (m *Model) recordLog(l *progrock.VertexLog) {
	line := lastLine(string(l.Data))
	if line == "" {
		return
	}
	for i := range m.steps {
		if m.steps[i].ID == l.Vertex && m.steps[i].Status == statusRunning {
			m.steps[i].Detail = line
			return
		}
	}
}

func lastLine(s string) string {
	s = strings.TrimRight(s, "\r\n")
	if idx := strings.LastIndexByte(s, '\n'); idx >= 0 {
		s = s[idx+1:]
	}
	return strings.TrimSpace(s)
}

// View renders the current state of the model as a string.
func (m *Model) View() string {
	var s strings.Builder

	// Determine start index to handle overflow
	start := 0
	if len(m.steps) > m.height && m.height > 0 {
		start = len(m.steps) - m.height
	}

	for i := start; i < len(m.steps); i++ {
		step := m.steps[i]
		var icon string
		var style lipgloss.Style
		switch step.Status {
		case statusRunning:
			icon = m.spinner.View()
			style = m.styles.running
		case statusCompleted:
			icon = "✓"
			style = m.styles.completed
		default:
			icon = "✗"
			style = m.styles.failed
		}

		line := fmt.Sprintf("%s %s", style.Render(icon), step.Name)
		if step.Detail != "" {
			line += " " + m.styles.detail.Render(m.truncate(step.Detail))
		}
		s.WriteString(line + "\n")
	}

	return s.String()
}

// truncate clips a detail line to the available width.
func (m *Model) truncate(s string) string {
	const reserved = 16 // icon, name, spacing
	if m.width <= reserved || len(s) <= m.width-reserved {
		return s
	}
	return s[:m.width-reserved] + "…"
}
