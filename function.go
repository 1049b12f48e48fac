// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fallible

import (
	"code.hybscloud.com/kont"
)

// Function maps a T to an R or fails, declaring the error type X.
type Function[T, R any, X error] func(T) (R, error)

// UnaryOperator is a Function whose input and result types agree.
type UnaryOperator[T any, X error] = Function[T, T, X]

// FunctionAndThen returns the function that applies f, then g to its result.
// If f fails, g is not invoked and f's failure is returned unchanged.
// Panics with a [ContractViolation] if f or g is nil.
func FunctionAndThen[T, R, V any, X error](f Function[T, R, X], g Function[R, V, X]) Function[T, V, X] {
	require(f == nil, "operation")
	require(g == nil, "after")
	return func(t T) (V, error) {
		r, err := f(t)
		return then[R, V](r, err, g)
	}
}

// FunctionCompose returns the function that applies before, then f to its
// result. If before fails, f is not invoked.
// Panics with a [ContractViolation] if f or before is nil.
func FunctionCompose[V, T, R any, X error](f Function[T, R, X], before Function[V, T, X]) Function[V, R, X] {
	require(f == nil, "operation")
	require(before == nil, "before")
	return FunctionAndThen(before, f)
}

// Unchecked returns f with every declared failure wrapped in an
// [*UncheckedError] built by [WithoutStack].
func (f Function[T, R, X]) Unchecked() func(T) (R, error) {
	return f.OnErrorThrowAsUnchecked(tunnel[X])
}

// OnErrorThrowAsUnchecked returns f with every declared failure replaced by
// mapper's result. Panics with a [ContractViolation] if f or mapper is nil.
func (f Function[T, R, X]) OnErrorThrowAsUnchecked(mapper func(X) error) func(T) (R, error) {
	require(f == nil, "operation")
	require(mapper == nil, "mapper")
	rec := throwAsUnchecked[R](mapper)
	return func(t T) (R, error) {
		r, err := f(t)
		return recoverDeclared(r, err, rec)
	}
}

// OnErrorHandleUnchecked returns f with every declared failure replaced by
// handler's outcome. Panics with a [ContractViolation] if f or handler is nil.
func (f Function[T, R, X]) OnErrorHandleUnchecked(handler func(X) (R, error)) func(T) (R, error) {
	require(f == nil, "operation")
	require(handler == nil, "handler")
	return func(t T) (R, error) {
		r, err := f(t)
		return recoverDeclared(r, err, handler)
	}
}

// OnErrorApplyUnchecked returns f that applies fallback to the same input on
// a declared failure. Panics with a [ContractViolation] if f or fallback is nil.
func (f Function[T, R, X]) OnErrorApplyUnchecked(fallback func(T) (R, error)) func(T) (R, error) {
	require(f == nil, "operation")
	require(fallback == nil, "fallback")
	return func(t T) (R, error) {
		r, err := f(t)
		return recoverDeclared(r, err, func(X) (R, error) {
			return fallback(t)
		})
	}
}

// OnErrorReturn returns f that yields v on a declared failure.
// Panics with a [ContractViolation] if f is nil.
func (f Function[T, R, X]) OnErrorReturn(v R) func(T) (R, error) {
	require(f == nil, "operation")
	rec := returning[R, X](v)
	return func(t T) (R, error) {
		r, err := f(t)
		return recoverDeclared(r, err, rec)
	}
}

// FunctionOnErrorThrowAs returns f declaring Y, with every declared failure
// x replaced by mapper(x). Panics with a [ContractViolation] if f or mapper
// is nil.
func FunctionOnErrorThrowAs[T, R any, X, Y error](f Function[T, R, X], mapper func(X) Y) Function[T, R, Y] {
	require(f == nil, "operation")
	require(mapper == nil, "mapper")
	rec := throwAs[R](mapper)
	return func(t T) (R, error) {
		r, err := f(t)
		return recoverDeclared(r, err, rec)
	}
}

// FunctionOnErrorHandle returns f declaring Y, with every declared failure
// replaced by handler's outcome. Y is given explicitly.
// Panics with a [ContractViolation] if f or handler is nil.
func FunctionOnErrorHandle[Y error, T, R any, X error](f Function[T, R, X], handler func(X) (R, error)) Function[T, R, Y] {
	require(f == nil, "operation")
	require(handler == nil, "handler")
	return func(t T) (R, error) {
		r, err := f(t)
		return recoverDeclared(r, err, handler)
	}
}

// FunctionOnErrorApply returns f declaring Y that applies fallback to the
// same input on a declared failure.
// Panics with a [ContractViolation] if f or fallback is nil.
func FunctionOnErrorApply[T, R any, X, Y error](f Function[T, R, X], fallback Function[T, R, Y]) Function[T, R, Y] {
	require(f == nil, "operation")
	require(fallback == nil, "fallback")
	return func(t T) (R, error) {
		r, err := f(t)
		return recoverDeclared(r, err, func(X) (R, error) {
			return fallback(t)
		})
	}
}

// CheckedFunction returns f declaring X. A failure that is an
// [*UncheckedError] carrying an X fails with the carried X instead; see
// [Unwrap]. Panics with a [ContractViolation] if f is nil.
//
// Without unwrapping, a plain function converts directly:
// Function[T, R, X](f).
func CheckedFunction[T, R any, X error](f func(T) (R, error), class Class[X]) Function[T, R, X] {
	require(f == nil, "operation")
	return func(t T) (R, error) {
		r, err := f(t)
		return settle(r, Unwrap(err, class))
	}
}

// Lift returns the computation that applies f to t when evaluated.
// A failure, declared or not, is thrown unchanged on the Error effect, so
// a [Lower] declaring the same X sees a declared failure as declared.
// Panics with a [ContractViolation] if f is nil.
func (f Function[T, R, X]) Lift(t T) kont.Eff[R] {
	require(f == nil, "operation")
	return Lift(func() (R, error) { return f(t) })
}

// LiftExpr is Lift for the Expr world.
func (f Function[T, R, X]) LiftExpr(t T) kont.Expr[R] {
	return kont.Reify(f.Lift(t))
}
