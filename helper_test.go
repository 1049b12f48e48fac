// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fallible_test

import (
	"testing"

	"code.hybscloud.com/fallible"
)

// checkedError is the declared error type used throughout the tests.
type checkedError struct {
	msg string
}

func (e *checkedError) Error() string { return e.msg }

// otherError is a second declared type, for recovery into a new type.
type otherError struct {
	msg   string
	cause error
}

func (e *otherError) Error() string { return e.msg }
func (e *otherError) Unwrap() error { return e.cause }

// coded is an interface error type; codedError is assignable to it.
type coded interface {
	error
	Code() int
}

type codedError struct {
	code int
}

func (e *codedError) Error() string { return "coded" }
func (e *codedError) Code() int     { return e.code }

var (
	checked = fallible.ClassOf[*checkedError]()
	other   = fallible.ClassOf[*otherError]()
)

// mustViolate runs f and fails unless it panics with a ContractViolation
// naming arg.
func mustViolate(t *testing.T, arg string, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		cv, ok := r.(*fallible.ContractViolation)
		if !ok {
			t.Fatalf("panic = %v, want *fallible.ContractViolation", r)
		}
		if cv.Arg != arg {
			t.Fatalf("violation arg = %q, want %q", cv.Arg, arg)
		}
	}()
	f()
}

// toOther maps a checkedError to an otherError wrapping it.
func toOther(x *checkedError) *otherError {
	return &otherError{msg: "other: " + x.msg, cause: x}
}
