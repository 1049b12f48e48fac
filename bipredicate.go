// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fallible

import (
	"code.hybscloud.com/kont"
)

// BiPredicate tests a T and a U or fails, declaring the error type X.
type BiPredicate[T, U any, X error] func(T, U) (bool, error)

// And returns the short-circuit conjunction of p and other.
// Panics with a [ContractViolation] if p or other is nil.
func (p BiPredicate[T, U, X]) And(other BiPredicate[T, U, X]) BiPredicate[T, U, X] {
	require(p == nil, "operation")
	require(other == nil, "other")
	return func(t T, u U) (bool, error) {
		ok, err := p(t, u)
		return and(ok, err, func() (bool, error) {
			return other(t, u)
		})
	}
}

// Or returns the short-circuit disjunction of p and other.
// Panics with a [ContractViolation] if p or other is nil.
func (p BiPredicate[T, U, X]) Or(other BiPredicate[T, U, X]) BiPredicate[T, U, X] {
	require(p == nil, "operation")
	require(other == nil, "other")
	return func(t T, u U) (bool, error) {
		ok, err := p(t, u)
		return or(ok, err, func() (bool, error) {
			return other(t, u)
		})
	}
}

// Negate returns the logical negation of p.
// Panics with a [ContractViolation] if p is nil.
func (p BiPredicate[T, U, X]) Negate() BiPredicate[T, U, X] {
	require(p == nil, "operation")
	return func(t T, u U) (bool, error) {
		return not(p(t, u))
	}
}

// Unchecked returns p with every declared failure wrapped in an
// [*UncheckedError] built by [WithoutStack].
func (p BiPredicate[T, U, X]) Unchecked() func(T, U) (bool, error) {
	return p.OnErrorThrowAsUnchecked(tunnel[X])
}

// OnErrorThrowAsUnchecked returns p with every declared failure replaced by
// mapper's result. Panics with a [ContractViolation] if p or mapper is nil.
func (p BiPredicate[T, U, X]) OnErrorThrowAsUnchecked(mapper func(X) error) func(T, U) (bool, error) {
	require(p == nil, "operation")
	require(mapper == nil, "mapper")
	rec := throwAsUnchecked[bool](mapper)
	return func(t T, u U) (bool, error) {
		ok, err := p(t, u)
		return recoverDeclared(ok, err, rec)
	}
}

// OnErrorHandleUnchecked returns p with every declared failure replaced by
// handler's outcome. Panics with a [ContractViolation] if p or handler is nil.
func (p BiPredicate[T, U, X]) OnErrorHandleUnchecked(handler func(X) (bool, error)) func(T, U) (bool, error) {
	require(p == nil, "operation")
	require(handler == nil, "handler")
	return func(t T, u U) (bool, error) {
		ok, err := p(t, u)
		return recoverDeclared(ok, err, handler)
	}
}

// OnErrorTestUnchecked returns p that tests the same inputs with fallback
// on a declared failure.
// Panics with a [ContractViolation] if p or fallback is nil.
func (p BiPredicate[T, U, X]) OnErrorTestUnchecked(fallback func(T, U) (bool, error)) func(T, U) (bool, error) {
	require(p == nil, "operation")
	require(fallback == nil, "fallback")
	return func(t T, u U) (bool, error) {
		ok, err := p(t, u)
		return recoverDeclared(ok, err, func(X) (bool, error) {
			return fallback(t, u)
		})
	}
}

// OnErrorReturn returns p that yields v on a declared failure.
// Panics with a [ContractViolation] if p is nil.
func (p BiPredicate[T, U, X]) OnErrorReturn(v bool) func(T, U) (bool, error) {
	require(p == nil, "operation")
	rec := returning[bool, X](v)
	return func(t T, u U) (bool, error) {
		ok, err := p(t, u)
		return recoverDeclared(ok, err, rec)
	}
}

// BiPredicateOnErrorThrowAs returns p declaring Y, with every declared
// failure x replaced by mapper(x).
// Panics with a [ContractViolation] if p or mapper is nil.
func BiPredicateOnErrorThrowAs[T, U any, X, Y error](p BiPredicate[T, U, X], mapper func(X) Y) BiPredicate[T, U, Y] {
	require(p == nil, "operation")
	require(mapper == nil, "mapper")
	rec := throwAs[bool](mapper)
	return func(t T, u U) (bool, error) {
		ok, err := p(t, u)
		return recoverDeclared(ok, err, rec)
	}
}

// BiPredicateOnErrorHandle returns p declaring Y, with every declared
// failure replaced by handler's outcome. Y is given explicitly.
// Panics with a [ContractViolation] if p or handler is nil.
func BiPredicateOnErrorHandle[Y error, T, U any, X error](p BiPredicate[T, U, X], handler func(X) (bool, error)) BiPredicate[T, U, Y] {
	require(p == nil, "operation")
	require(handler == nil, "handler")
	return func(t T, u U) (bool, error) {
		ok, err := p(t, u)
		return recoverDeclared(ok, err, handler)
	}
}

// BiPredicateOnErrorTest returns p declaring Y that tests the same inputs
// with fallback on a declared failure.
// Panics with a [ContractViolation] if p or fallback is nil.
func BiPredicateOnErrorTest[T, U any, X, Y error](p BiPredicate[T, U, X], fallback BiPredicate[T, U, Y]) BiPredicate[T, U, Y] {
	require(p == nil, "operation")
	require(fallback == nil, "fallback")
	return func(t T, u U) (bool, error) {
		ok, err := p(t, u)
		return recoverDeclared(ok, err, func(X) (bool, error) {
			return fallback(t, u)
		})
	}
}

// CheckedBiPredicate returns p declaring X, unwrapping carried X failures;
// see [Unwrap]. Panics with a [ContractViolation] if p is nil.
func CheckedBiPredicate[T, U any, X error](p func(T, U) (bool, error), class Class[X]) BiPredicate[T, U, X] {
	require(p == nil, "operation")
	return func(t T, u U) (bool, error) {
		ok, err := p(t, u)
		return settle(ok, Unwrap(err, class))
	}
}

// Lift returns the computation that tests t and u with p when evaluated.
// Panics with a [ContractViolation] if p is nil.
func (p BiPredicate[T, U, X]) Lift(t T, u U) kont.Eff[bool] {
	require(p == nil, "operation")
	return Lift(func() (bool, error) { return p(t, u) })
}

// LiftExpr is Lift for the Expr world.
func (p BiPredicate[T, U, X]) LiftExpr(t T, u U) kont.Expr[bool] {
	return kont.Reify(p.Lift(t, u))
}
