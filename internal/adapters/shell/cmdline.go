package shell

import (
	"os"
	"strings"

	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/shell"
	"mvdan.cc/sh/v3/syntax"
)

// Split turns a command string into an argv using shell word-splitting
// rules (quoting, parameter expansion) without evaluating anything.
func Split(cmd string) ([]string, error) {
	fields, err := shell.Fields(cmd, os.Getenv)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse command"), "command", cmd)
	}
	if len(fields) == 0 {
		return nil, zerr.With(zerr.New("empty command"), "command", cmd)
	}
	return fields, nil
}

// UsesControlOperators reports whether cmd relies on shell syntax beyond a
// single plain invocation: pipes, logical operators, redirections,
// backgrounding, assignments or substitutions. Such commands only run
// through an interpreter with the explicit shell opt-in.
func UsesControlOperators(cmd string) bool {
	f, err := syntax.NewParser().Parse(strings.NewReader(cmd), "")
	if err != nil {
		return true
	}
	if len(f.Stmts) != 1 {
		return true
	}

	st := f.Stmts[0]
	if st.Background || st.Coprocess || st.Negated || len(st.Redirs) > 0 {
		return true
	}

	call, ok := st.Cmd.(*syntax.CallExpr)
	if !ok {
		return true
	}
	if len(call.Assigns) > 0 {
		return true
	}
	for _, word := range call.Args {
		if !plainWord(word) {
			return true
		}
	}
	return false
}

// plainWord accepts literals, quoting and parameter expansion; command and
// process substitutions make a word non-plain.
func plainWord(w *syntax.Word) bool {
	for _, part := range w.Parts {
		switch p := part.(type) {
		case *syntax.Lit, *syntax.SglQuoted, *syntax.ParamExp:
		case *syntax.DblQuoted:
			for _, inner := range p.Parts {
				switch inner.(type) {
				case *syntax.Lit, *syntax.ParamExp:
				default:
					return false
				}
			}
		default:
			return false
		}
	}
	return true
}

// argvFor resolves the argv actually spawned for a command string. With the
// shell opt-in, commands using control operators run through the
// interpreter; everything else is split into a direct invocation.
func argvFor(cmd string, useShell bool) ([]string, error) {
	if useShell && UsesControlOperators(cmd) {
		return []string{"sh", "-c", cmd}, nil
	}
	return Split(cmd)
}
