// ==============================================================================================
// FILE: langerr/langerr.go
// ==============================================================================================
// PACKAGE: langerr
// PURPOSE: The two error families that cross the Lexer/AST boundary outward to callers: lexical
//          errors (token-expectation failures) and runtime errors (undefined names, arity
//          mismatches, type mismatches, missing methods). Both wrap github.com/pkg/errors so
//          callers can still Cause()/Unwrap() down to whatever triggered the failure.
// ==============================================================================================

package langerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// LexError reports an Expect-style assertion failure in the Lexer: the
// caller asserted a token kind or value and the current token did not
// match.
type LexError struct {
	Message string
	Line    int
	Column  int
	cause   error
}

func (e *LexError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("lexical error at %d:%d: %s", e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("lexical error: %s", e.Message)
}

func (e *LexError) Unwrap() error { return e.cause }

// NewLex builds a LexError at the given position, wrapping it with a stack
// trace via pkg/errors so the originating call site survives in logs.
func NewLex(line, column int, format string, args ...any) *LexError {
	msg := fmt.Sprintf(format, args...)
	return &LexError{
		Message: msg,
		Line:    line,
		Column:  column,
		cause:   errors.WithStack(errors.New(msg)),
	}
}

// RuntimeError reports a failure raised by the evaluator: an undefined
// variable, an arity mismatch in a method call, a type mismatch in
// arithmetic or comparison, or a missing method in dynamic dispatch.
type RuntimeError struct {
	Message string
	cause   error
}

func (e *RuntimeError) Error() string { return "runtime error: " + e.Message }

func (e *RuntimeError) Unwrap() error { return e.cause }

// NewRuntime builds a RuntimeError carrying a formatted message.
func NewRuntime(format string, args ...any) *RuntimeError {
	msg := fmt.Sprintf(format, args...)
	return &RuntimeError{Message: msg, cause: errors.WithStack(errors.New(msg))}
}

// Wrap attaches additional context to an existing error without losing its
// identity, mirroring pkg/errors.Wrap.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, format, args...)
}
