// ==============================================================================================
// FILE: ast/print.go
// ==============================================================================================
// PURPOSE: Print and Stringify. Print writes to a single process-wide output sink, installed
//          once before execution begins and never touched concurrently with a running program.
// ==============================================================================================

package ast

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pyrite-lang/pyrite/object"
)

var output io.Writer = os.Stdout

// SetOutput installs the process-wide sink every Print statement writes
// to. Must be called before any AST execution begins; the runner package
// is the usual caller.
func SetOutput(w io.Writer) { output = w }

// Print evaluates each argument left to right, prints each using the
// value's canonical textual form separated by a single space, then a
// trailing newline. An empty holder prints as "None". Always returns an
// empty holder.
type Print struct {
	Args []Node
}

func (p *Print) Execute(scope *object.Scope) (object.Holder, error) {
	parts := make([]string, len(p.Args))
	for i, arg := range p.Args {
		h, err := arg.Execute(scope)
		if err != nil {
			return object.Holder{}, err
		}
		text, err := renderText(h)
		if err != nil {
			return object.Holder{}, err
		}
		parts[i] = text
	}
	fmt.Fprintln(output, strings.Join(parts, " "))
	return object.EmptyHolder, nil
}

// Stringify evaluates Argument and returns an owned String holding its
// canonical textual form: the `str(x)` builtin.
type Stringify struct {
	Argument Node
}

func (s *Stringify) Execute(scope *object.Scope) (object.Holder, error) {
	h, err := s.Argument.Execute(scope)
	if err != nil {
		return object.Holder{}, err
	}
	text, err := renderText(h)
	if err != nil {
		return object.Holder{}, err
	}
	return object.Own(object.String{V: text}), nil
}

// renderText is the one place that implements the printing contract in
// full: an instance whose class (or an ancestor) declares __str__
// delegates to it with zero arguments; everything else, including any
// instance without __str__, uses its Value's own canonical form.
func renderText(h object.Holder) (string, error) {
	if h.IsEmpty() {
		return "None", nil
	}
	if inst, ok := object.TryAs[*object.ClassInstance](h); ok {
		if m := inst.Class.GetMethod("__str__"); m != nil {
			result, err := callMethod(inst, m, nil)
			if err != nil {
				return "", err
			}
			return renderText(result)
		}
	}
	return h.Value().Print(), nil
}
