// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fallible

import (
	"code.hybscloud.com/kont"
)

// BiFunction maps a T and a U to an R or fails, declaring the error type X.
type BiFunction[T, U, R any, X error] func(T, U) (R, error)

// BinaryOperator is a BiFunction whose inputs and result share one type.
type BinaryOperator[T any, X error] = BiFunction[T, T, T, X]

// BiFunctionAndThen returns the function that applies f, then g to its
// result. If f fails, g is not invoked and f's failure is returned unchanged.
// Panics with a [ContractViolation] if f or g is nil.
func BiFunctionAndThen[T, U, R, V any, X error](f BiFunction[T, U, R, X], g Function[R, V, X]) BiFunction[T, U, V, X] {
	require(f == nil, "operation")
	require(g == nil, "after")
	return func(t T, u U) (V, error) {
		r, err := f(t, u)
		return then[R, V](r, err, g)
	}
}

// Unchecked returns f with every declared failure wrapped in an
// [*UncheckedError] built by [WithoutStack].
func (f BiFunction[T, U, R, X]) Unchecked() func(T, U) (R, error) {
	return f.OnErrorThrowAsUnchecked(tunnel[X])
}

// OnErrorThrowAsUnchecked returns f with every declared failure replaced by
// mapper's result. Panics with a [ContractViolation] if f or mapper is nil.
func (f BiFunction[T, U, R, X]) OnErrorThrowAsUnchecked(mapper func(X) error) func(T, U) (R, error) {
	require(f == nil, "operation")
	require(mapper == nil, "mapper")
	rec := throwAsUnchecked[R](mapper)
	return func(t T, u U) (R, error) {
		r, err := f(t, u)
		return recoverDeclared(r, err, rec)
	}
}

// OnErrorHandleUnchecked returns f with every declared failure replaced by
// handler's outcome. Panics with a [ContractViolation] if f or handler is nil.
func (f BiFunction[T, U, R, X]) OnErrorHandleUnchecked(handler func(X) (R, error)) func(T, U) (R, error) {
	require(f == nil, "operation")
	require(handler == nil, "handler")
	return func(t T, u U) (R, error) {
		r, err := f(t, u)
		return recoverDeclared(r, err, handler)
	}
}

// OnErrorApplyUnchecked returns f that applies fallback to the same inputs
// on a declared failure.
// Panics with a [ContractViolation] if f or fallback is nil.
func (f BiFunction[T, U, R, X]) OnErrorApplyUnchecked(fallback func(T, U) (R, error)) func(T, U) (R, error) {
	require(f == nil, "operation")
	require(fallback == nil, "fallback")
	return func(t T, u U) (R, error) {
		r, err := f(t, u)
		return recoverDeclared(r, err, func(X) (R, error) {
			return fallback(t, u)
		})
	}
}

// OnErrorReturn returns f that yields v on a declared failure.
// Panics with a [ContractViolation] if f is nil.
func (f BiFunction[T, U, R, X]) OnErrorReturn(v R) func(T, U) (R, error) {
	require(f == nil, "operation")
	rec := returning[R, X](v)
	return func(t T, u U) (R, error) {
		r, err := f(t, u)
		return recoverDeclared(r, err, rec)
	}
}

// BiFunctionOnErrorThrowAs returns f declaring Y, with every declared failure
// x replaced by mapper(x).
// Panics with a [ContractViolation] if f or mapper is nil.
func BiFunctionOnErrorThrowAs[T, U, R any, X, Y error](f BiFunction[T, U, R, X], mapper func(X) Y) BiFunction[T, U, R, Y] {
	require(f == nil, "operation")
	require(mapper == nil, "mapper")
	rec := throwAs[R](mapper)
	return func(t T, u U) (R, error) {
		r, err := f(t, u)
		return recoverDeclared(r, err, rec)
	}
}

// BiFunctionOnErrorHandle returns f declaring Y, with every declared failure
// replaced by handler's outcome. Y is given explicitly.
// Panics with a [ContractViolation] if f or handler is nil.
func BiFunctionOnErrorHandle[Y error, T, U, R any, X error](f BiFunction[T, U, R, X], handler func(X) (R, error)) BiFunction[T, U, R, Y] {
	require(f == nil, "operation")
	require(handler == nil, "handler")
	return func(t T, u U) (R, error) {
		r, err := f(t, u)
		return recoverDeclared(r, err, handler)
	}
}

// BiFunctionOnErrorApply returns f declaring Y that applies fallback to the
// same inputs on a declared failure.
// Panics with a [ContractViolation] if f or fallback is nil.
func BiFunctionOnErrorApply[T, U, R any, X, Y error](f BiFunction[T, U, R, X], fallback BiFunction[T, U, R, Y]) BiFunction[T, U, R, Y] {
	require(f == nil, "operation")
	require(fallback == nil, "fallback")
	return func(t T, u U) (R, error) {
		r, err := f(t, u)
		return recoverDeclared(r, err, func(X) (R, error) {
			return fallback(t, u)
		})
	}
}

// CheckedBiFunction returns f declaring X, unwrapping carried X failures;
// see [Unwrap]. Panics with a [ContractViolation] if f is nil.
func CheckedBiFunction[T, U, R any, X error](f func(T, U) (R, error), class Class[X]) BiFunction[T, U, R, X] {
	require(f == nil, "operation")
	return func(t T, u U) (R, error) {
		r, err := f(t, u)
		return settle(r, Unwrap(err, class))
	}
}

// Lift returns the computation that applies f to t and u when evaluated.
// Panics with a [ContractViolation] if f is nil.
func (f BiFunction[T, U, R, X]) Lift(t T, u U) kont.Eff[R] {
	require(f == nil, "operation")
	return Lift(func() (R, error) { return f(t, u) })
}

// LiftExpr is Lift for the Expr world.
func (f BiFunction[T, U, R, X]) LiftExpr(t T, u U) kont.Expr[R] {
	return kont.Reify(f.Lift(t, u))
}
