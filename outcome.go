// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fallible

import (
	"code.hybscloud.com/kont"
)

// Outcome is the tagged result of one invocation of an operation declaring
// X: exactly one of a result, a declared failure, or an undistinguished
// failure. The zero Outcome is a Success with the zero R.
type Outcome[R any, X error] struct {
	value    R
	declared X
	err      error
	kind     Kind
}

// Attempt invokes s once and classifies its outcome against X.
// Panics with a [ContractViolation] if s is nil.
func Attempt[R any, X error](s func() (R, error)) Outcome[R, X] {
	require(s == nil, "operation")
	r, err := s()
	x, k := Classify[X](err)
	switch k {
	case Declared:
		return Outcome[R, X]{declared: x, err: err, kind: Declared}
	case Undistinguished:
		return Outcome[R, X]{err: err, kind: Undistinguished}
	}
	return Outcome[R, X]{value: r}
}

// Try invokes s once and returns its classified outcome.
// Panics with a [ContractViolation] if s is nil.
func (s Supplier[R, X]) Try() Outcome[R, X] {
	return Attempt[R, X](s)
}

// Kind reports which of the three outcomes o is.
func (o Outcome[R, X]) Kind() Kind {
	return o.kind
}

// Get returns o in Go's (result, error) form.
func (o Outcome[R, X]) Get() (R, error) {
	return o.value, o.err
}

// Value returns the result and true if o is a Success.
func (o Outcome[R, X]) Value() (R, bool) {
	return o.value, o.kind == Success
}

// Declared returns the declared failure and true if o is Declared.
func (o Outcome[R, X]) Declared() (X, bool) {
	return o.declared, o.kind == Declared
}

// Undistinguished returns the failure and true if o is Undistinguished.
func (o Outcome[R, X]) Undistinguished() (error, bool) {
	if o.kind != Undistinguished {
		return nil, false
	}
	return o.err, true
}

// Either returns o as Right(result) or Left(declared failure).
// An undistinguished failure has no Either form and is returned as error.
func (o Outcome[R, X]) Either() (kont.Either[X, R], error) {
	switch o.kind {
	case Declared:
		return kont.Left[X, R](o.declared), nil
	case Undistinguished:
		var zero kont.Either[X, R]
		return zero, o.err
	}
	return kont.Right[X, R](o.value), nil
}

// MatchOutcome calls exactly one of onValue, onDeclared or onOther,
// according to o's Kind, and returns its result.
func MatchOutcome[R any, X error, A any](o Outcome[R, X], onValue func(R) A, onDeclared func(X) A, onOther func(error) A) A {
	switch o.kind {
	case Declared:
		return onDeclared(o.declared)
	case Undistinguished:
		return onOther(o.err)
	}
	return onValue(o.value)
}
