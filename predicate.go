// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fallible

import (
	"code.hybscloud.com/kont"
)

// Predicate tests a T or fails, declaring the error type X.
type Predicate[T any, X error] func(T) (bool, error)

// And returns the short-circuit conjunction of p and other.
// other runs only if p succeeds with true. A failure of p is returned
// unchanged and other is not invoked.
// Panics with a [ContractViolation] if p or other is nil.
func (p Predicate[T, X]) And(other Predicate[T, X]) Predicate[T, X] {
	require(p == nil, "operation")
	require(other == nil, "other")
	return func(t T) (bool, error) {
		ok, err := p(t)
		return and(ok, err, func() (bool, error) {
			return other(t)
		})
	}
}

// Or returns the short-circuit disjunction of p and other.
// other runs only if p succeeds with false.
// Panics with a [ContractViolation] if p or other is nil.
func (p Predicate[T, X]) Or(other Predicate[T, X]) Predicate[T, X] {
	require(p == nil, "operation")
	require(other == nil, "other")
	return func(t T) (bool, error) {
		ok, err := p(t)
		return or(ok, err, func() (bool, error) {
			return other(t)
		})
	}
}

// Negate returns the logical negation of p. A failure of p is returned
// unchanged. Panics with a [ContractViolation] if p is nil.
func (p Predicate[T, X]) Negate() Predicate[T, X] {
	require(p == nil, "operation")
	return func(t T) (bool, error) {
		return not(p(t))
	}
}

// Unchecked returns p with every declared failure wrapped in an
// [*UncheckedError] built by [WithoutStack].
func (p Predicate[T, X]) Unchecked() func(T) (bool, error) {
	return p.OnErrorThrowAsUnchecked(tunnel[X])
}

// OnErrorThrowAsUnchecked returns p with every declared failure replaced by
// mapper's result. Panics with a [ContractViolation] if p or mapper is nil.
func (p Predicate[T, X]) OnErrorThrowAsUnchecked(mapper func(X) error) func(T) (bool, error) {
	require(p == nil, "operation")
	require(mapper == nil, "mapper")
	rec := throwAsUnchecked[bool](mapper)
	return func(t T) (bool, error) {
		ok, err := p(t)
		return recoverDeclared(ok, err, rec)
	}
}

// OnErrorHandleUnchecked returns p with every declared failure replaced by
// handler's outcome. Panics with a [ContractViolation] if p or handler is nil.
func (p Predicate[T, X]) OnErrorHandleUnchecked(handler func(X) (bool, error)) func(T) (bool, error) {
	require(p == nil, "operation")
	require(handler == nil, "handler")
	return func(t T) (bool, error) {
		ok, err := p(t)
		return recoverDeclared(ok, err, handler)
	}
}

// OnErrorTestUnchecked returns p that tests the same input with fallback on
// a declared failure.
// Panics with a [ContractViolation] if p or fallback is nil.
func (p Predicate[T, X]) OnErrorTestUnchecked(fallback func(T) (bool, error)) func(T) (bool, error) {
	require(p == nil, "operation")
	require(fallback == nil, "fallback")
	return func(t T) (bool, error) {
		ok, err := p(t)
		return recoverDeclared(ok, err, func(X) (bool, error) {
			return fallback(t)
		})
	}
}

// OnErrorReturn returns p that yields v on a declared failure.
// Panics with a [ContractViolation] if p is nil.
func (p Predicate[T, X]) OnErrorReturn(v bool) func(T) (bool, error) {
	require(p == nil, "operation")
	rec := returning[bool, X](v)
	return func(t T) (bool, error) {
		ok, err := p(t)
		return recoverDeclared(ok, err, rec)
	}
}

// PredicateOnErrorThrowAs returns p declaring Y, with every declared failure
// x replaced by mapper(x).
// Panics with a [ContractViolation] if p or mapper is nil.
func PredicateOnErrorThrowAs[T any, X, Y error](p Predicate[T, X], mapper func(X) Y) Predicate[T, Y] {
	require(p == nil, "operation")
	require(mapper == nil, "mapper")
	rec := throwAs[bool](mapper)
	return func(t T) (bool, error) {
		ok, err := p(t)
		return recoverDeclared(ok, err, rec)
	}
}

// PredicateOnErrorHandle returns p declaring Y, with every declared failure
// replaced by handler's outcome. Y is given explicitly.
// Panics with a [ContractViolation] if p or handler is nil.
func PredicateOnErrorHandle[Y error, T any, X error](p Predicate[T, X], handler func(X) (bool, error)) Predicate[T, Y] {
	require(p == nil, "operation")
	require(handler == nil, "handler")
	return func(t T) (bool, error) {
		ok, err := p(t)
		return recoverDeclared(ok, err, handler)
	}
}

// PredicateOnErrorTest returns p declaring Y that tests the same input with
// fallback on a declared failure.
// Panics with a [ContractViolation] if p or fallback is nil.
func PredicateOnErrorTest[T any, X, Y error](p Predicate[T, X], fallback Predicate[T, Y]) Predicate[T, Y] {
	require(p == nil, "operation")
	require(fallback == nil, "fallback")
	return func(t T) (bool, error) {
		ok, err := p(t)
		return recoverDeclared(ok, err, func(X) (bool, error) {
			return fallback(t)
		})
	}
}

// CheckedPredicate returns p declaring X, unwrapping carried X failures;
// see [Unwrap]. Panics with a [ContractViolation] if p is nil.
func CheckedPredicate[T any, X error](p func(T) (bool, error), class Class[X]) Predicate[T, X] {
	require(p == nil, "operation")
	return func(t T) (bool, error) {
		ok, err := p(t)
		return settle(ok, Unwrap(err, class))
	}
}

// Lift returns the computation that tests t with p when evaluated.
// A failure, declared or not, is thrown unchanged on the Error effect, so
// a [Lower] declaring the same X sees a declared failure as declared.
// Panics with a [ContractViolation] if p is nil.
func (p Predicate[T, X]) Lift(t T) kont.Eff[bool] {
	require(p == nil, "operation")
	return Lift(func() (bool, error) { return p(t) })
}

// LiftExpr is Lift for the Expr world.
func (p Predicate[T, X]) LiftExpr(t T) kont.Expr[bool] {
	return kont.Reify(p.Lift(t))
}
