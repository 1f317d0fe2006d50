// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ps2pdf

import "fmt"

// Kind tags the taxonomy of externally observable failures (spec.md §7).
type Kind int

const (
	InvalidArgument Kind = iota
	InputNotFound
	InputUnreadable
	TokenizeError
	InterpreterError
	OutputUnwritable
	Cancelled
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case InputNotFound:
		return "InputNotFound"
	case InputUnreadable:
		return "InputUnreadable"
	case TokenizeError:
		return "TokenizeError"
	case InterpreterError:
		return "InterpreterError"
	case OutputUnwritable:
		return "OutputUnwritable"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Error is the single error type threaded through every component
// boundary (spec.md §7's propagation policy: explicit Result/error
// values, no process-wide handler). File and Line are populated when the
// failure occurred while parsing a specific input.
type Error struct {
	Kind Kind
	File string
	Line int // 1-based; 0 when not applicable
	Err  error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.File != "" {
		if e.Line > 0 {
			msg += fmt.Sprintf(" (%s:%d)", e.File, e.Line)
		} else {
			msg += fmt.Sprintf(" (%s)", e.File)
		}
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func newErrorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Severity distinguishes recoverable warnings from purely informational
// diagnostics (spec.md §7's propagation policy: local recovery attempts are
// logged, not fatal).
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityInfo
)

func (s Severity) String() string {
	if s == SeverityInfo {
		return "info"
	}
	return "warning"
}

// Diagnostic is a single user-visible failure or warning line: the severity, a
// message, and — when the diagnostic occurred while parsing a specific
// input — the file path and a 1-based line number captured from the
// tokenizer (spec.md §7).
type Diagnostic struct {
	Severity Severity
	File     string
	Line     int
	Message  string
}

func (d Diagnostic) String() string {
	loc := d.File
	if d.Line > 0 {
		loc = fmt.Sprintf("%s:%d", d.File, d.Line)
	}
	if loc == "" {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s", loc, d.Severity, d.Message)
}

// DiagnosticFunc receives one Diagnostic per warning-level recovery event;
// the interpreter emits no SeverityInfo diagnostics. The zero value (nil) is a no-op, matching
// the teacher's convention of optional function-typed hooks
// (footerFnc, acceptPageBreakFunc) defaulting to inaction rather than a
// logger object threaded everywhere.
type DiagnosticFunc func(Diagnostic)

func (f DiagnosticFunc) emit(d Diagnostic) {
	if f != nil {
		f(d)
	}
}
