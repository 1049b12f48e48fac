// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fallible

import (
	"fmt"
	"io"
	"runtime"
)

// maxStackDepth bounds the number of program counters a carrier records.
const maxStackDepth = 64

// UncheckedError carries an arbitrary error across a boundary that only
// accepts undistinguished failures. It is the wrap side of the tunnel;
// [Unwrap] and the Checked adapters are the unwrap side.
//
// The cause is set once at construction and is the original error value,
// never a copy. UncheckedError is [Unchecked], so it is never mistaken for
// a declared failure, not even when the declared type is error.
type UncheckedError struct {
	msg   string
	cause error
	pcs   []uintptr
}

// NewUnchecked returns a carrier for cause whose message is cause.Error().
// It records the caller's stack.
// Panics with a [ContractViolation] if cause is nil.
func NewUnchecked(cause error) *UncheckedError {
	require(cause == nil, "cause")
	return &UncheckedError{msg: cause.Error(), cause: cause, pcs: callers()}
}

// NewUncheckedMessage returns a carrier for cause with message msg.
// It records the caller's stack.
// Panics with a [ContractViolation] if cause is nil.
func NewUncheckedMessage(msg string, cause error) *UncheckedError {
	require(cause == nil, "cause")
	return &UncheckedError{msg: msg, cause: cause, pcs: callers()}
}

// WithoutStack returns a carrier for cause whose message is cause.Error().
// No stack is recorded: the cause's own context is considered sufficient.
// Panics with a [ContractViolation] if cause is nil.
func WithoutStack(cause error) *UncheckedError {
	require(cause == nil, "cause")
	return &UncheckedError{msg: cause.Error(), cause: cause}
}

// WithoutStackMessage returns a carrier for cause with message msg.
// No stack is recorded.
// Panics with a [ContractViolation] if cause is nil.
func WithoutStackMessage(msg string, cause error) *UncheckedError {
	require(cause == nil, "cause")
	return &UncheckedError{msg: msg, cause: cause}
}

// callers records the stack of the constructor's caller.
// Skip 3: runtime.Callers, callers, and the constructor.
func callers() []uintptr {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(3, pcs)
	return pcs[:n:n]
}

func (e *UncheckedError) Error() string {
	return e.msg
}

// Unwrap returns the cause, so errors.Is and errors.As see through the carrier.
func (e *UncheckedError) Unwrap() error {
	return e.cause
}

// Cause returns the carried error.
func (e *UncheckedError) Cause() error {
	return e.cause
}

// Unchecked marks UncheckedError as never declared.
func (*UncheckedError) Unchecked() {}

// StackTrace resolves the recorded call sites, innermost first.
// Returns nil for carriers built with WithoutStack or WithoutStackMessage.
func (e *UncheckedError) StackTrace() []runtime.Frame {
	if len(e.pcs) == 0 {
		return nil
	}
	frames := runtime.CallersFrames(e.pcs)
	out := make([]runtime.Frame, 0, len(e.pcs))
	for {
		fr, more := frames.Next()
		out = append(out, fr)
		if !more {
			break
		}
	}
	return out
}

// Format implements fmt.Formatter.
// %v and %s print the message, %q the quoted message, and %+v the message,
// the cause (itself formatted with %+v) and the recorded stack.
func (e *UncheckedError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			io.WriteString(s, e.msg)
			fmt.Fprintf(s, "\ncaused by: %+v", e.cause)
			for _, fr := range e.StackTrace() {
				fmt.Fprintf(s, "\n\t%s\n\t\t%s:%d", fr.Function, fr.File, fr.Line)
			}
			return
		}
		io.WriteString(s, e.msg)
	case 's':
		io.WriteString(s, e.msg)
	case 'q':
		fmt.Fprintf(s, "%q", e.msg)
	default:
		fmt.Fprintf(s, "%%!%c(*fallible.UncheckedError=%s)", verb, e.msg)
	}
}
