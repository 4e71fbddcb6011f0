package automaton

import (
	"fmt"

	errorutil "github.com/projectdiscovery/utils/errors"
)

// DiagnosticKind classifies a failure per spec §7's error-kind table.
type DiagnosticKind int

const (
	// KindInputFormat covers malformed tokens, missing lines, unbalanced
	// parens, unknown characters — always fatal, exit 1.
	KindInputFormat DiagnosticKind = iota
	// KindSemantic covers out-of-range states, nondeterministic
	// transitions, symbols outside the declared alphabet — fatal, exit 1.
	KindSemantic
	// KindResource covers state/symbol count overflow — fatal, exit 1.
	KindResource
	// KindCompatibility is checker-only: alphabets differ — exit 2.
	KindCompatibility
	// KindMismatch is checker-only: a test string diverges — exit 2.
	KindMismatch
	// KindLabelWarning is checker-only and never fatal: a test's declared
	// label disagrees with the reference DFA's own verdict.
	KindLabelWarning
)

// Diagnostic is the one error type every package in this module returns
// for a recognized failure. It is never panicked and never retried —
// propagated to the cmd/* process boundary, which maps Kind to an exit
// code (spec §7) and prints Error() to standard error.
type Diagnostic struct {
	Kind    DiagnosticKind
	Line    int // 1-based source line, 0 if not applicable
	Message string
	cause   error
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	if d.Line > 0 {
		return fmt.Sprintf("line %d: %s", d.Line, d.Message)
	}
	return d.Message
}

// Unwrap exposes the tagged cause, if any, for errors.Is/As.
func (d *Diagnostic) Unwrap() error { return d.cause }

// kindTag names the diagnostic kind for errorutil tagging, matching the
// taxonomy of spec §7.
func (k DiagnosticKind) kindTag() string {
	switch k {
	case KindInputFormat:
		return "input-format"
	case KindSemantic:
		return "semantic"
	case KindResource:
		return "resource"
	case KindCompatibility:
		return "compatibility"
	case KindMismatch:
		return "mismatch"
	case KindLabelWarning:
		return "label-warning"
	default:
		return "diagnostic"
	}
}

// Newf builds a Diagnostic of the given kind, carrying an errorutil-tagged
// cause in the style projectdiscovery-alterx's mutator.go reports its own
// domain errors (errorutil.NewWithTag), so that the diagnostic composes
// with anything downstream that inspects errors via errors.As.
func Newf(kind DiagnosticKind, line int, format string, args ...interface{}) *Diagnostic {
	msg := fmt.Sprintf(format, args...)
	return &Diagnostic{
		Kind:    kind,
		Line:    line,
		Message: msg,
		cause:   errorutil.NewWithTag(kind.kindTag(), "%s", msg),
	}
}

// ExitCode maps a Diagnostic's kind to the process exit code spec §7
// assigns it. KindLabelWarning has no exit code of its own — callers
// print it as a warning and continue.
func (d *Diagnostic) ExitCode() int {
	switch d.Kind {
	case KindCompatibility, KindMismatch:
		return 2
	default:
		return 1
	}
}
