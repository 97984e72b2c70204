package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/crate/internal/core/ports"
)

var _ ports.Prompter = (*StdinPrompter)(nil)

// StdinPrompter asks yes/no questions on the terminal. Anything other than
// an explicit yes is treated as no.
type StdinPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdinPrompter creates a prompter reading answers from in and writing
// questions to out.
func NewStdinPrompter(in io.Reader, out io.Writer) *StdinPrompter {
	return &StdinPrompter{in: bufio.NewReader(in), out: out}
}

// ConfirmOverwrite asks whether the file at path may be replaced.
func (p *StdinPrompter) ConfirmOverwrite(path string) bool {
	return p.ask(fmt.Sprintf("%s already exists. Overwrite?", path))
}

// ConfirmContinue asks whether the pipeline should proceed past msg.
func (p *StdinPrompter) ConfirmContinue(msg string) bool {
	return p.ask(msg + " Continue anyway?")
}

func (p *StdinPrompter) ask(question string) bool {
	_, _ = fmt.Fprintf(p.out, "%s [y/N] ", question)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
