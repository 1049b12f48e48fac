// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fallible

import (
	"code.hybscloud.com/kont"
)

// BiConsumer accepts a T and a U or fails, declaring the error type X.
type BiConsumer[T, U any, X error] func(T, U) error

// AndThen returns the consumer that runs c, then after, with the same inputs.
// Panics with a [ContractViolation] if c or after is nil.
func (c BiConsumer[T, U, X]) AndThen(after BiConsumer[T, U, X]) BiConsumer[T, U, X] {
	require(c == nil, "operation")
	require(after == nil, "after")
	return func(t T, u U) error {
		if err := c(t, u); err != nil {
			return err
		}
		return after(t, u)
	}
}

// Unchecked returns c with every declared failure wrapped in an
// [*UncheckedError] built by [WithoutStack].
func (c BiConsumer[T, U, X]) Unchecked() func(T, U) error {
	return c.OnErrorThrowAsUnchecked(tunnel[X])
}

// OnErrorThrowAsUnchecked returns c with every declared failure replaced by
// mapper's result. Panics with a [ContractViolation] if c or mapper is nil.
func (c BiConsumer[T, U, X]) OnErrorThrowAsUnchecked(mapper func(X) error) func(T, U) error {
	require(c == nil, "operation")
	require(mapper == nil, "mapper")
	rec := throwAsUnchecked[struct{}](mapper)
	return func(t T, u U) error {
		return recoverVoid(c(t, u), rec)
	}
}

// OnErrorAcceptUnchecked returns c that passes the same inputs to fallback
// on a declared failure.
// Panics with a [ContractViolation] if c or fallback is nil.
func (c BiConsumer[T, U, X]) OnErrorAcceptUnchecked(fallback func(T, U) error) func(T, U) error {
	require(c == nil, "operation")
	require(fallback == nil, "fallback")
	return func(t T, u U) error {
		return recoverVoid(c(t, u), func(X) (struct{}, error) {
			return void(fallback(t, u))
		})
	}
}

// OnErrorDiscard returns c with every declared failure suppressed.
// Panics with a [ContractViolation] if c is nil.
func (c BiConsumer[T, U, X]) OnErrorDiscard() func(T, U) error {
	require(c == nil, "operation")
	return func(t T, u U) error {
		return recoverVoid(c(t, u), discarding[X])
	}
}

// BiConsumerOnErrorThrowAs returns c declaring Y, with every declared
// failure x replaced by mapper(x).
// Panics with a [ContractViolation] if c or mapper is nil.
func BiConsumerOnErrorThrowAs[T, U any, X, Y error](c BiConsumer[T, U, X], mapper func(X) Y) BiConsumer[T, U, Y] {
	require(c == nil, "operation")
	require(mapper == nil, "mapper")
	rec := throwAs[struct{}](mapper)
	return func(t T, u U) error {
		return recoverVoid(c(t, u), rec)
	}
}

// BiConsumerOnErrorAccept returns c declaring Y that passes the same inputs
// to fallback on a declared failure.
// Panics with a [ContractViolation] if c or fallback is nil.
func BiConsumerOnErrorAccept[T, U any, X, Y error](c BiConsumer[T, U, X], fallback BiConsumer[T, U, Y]) BiConsumer[T, U, Y] {
	require(c == nil, "operation")
	require(fallback == nil, "fallback")
	return func(t T, u U) error {
		return recoverVoid(c(t, u), func(X) (struct{}, error) {
			return void(fallback(t, u))
		})
	}
}

// CheckedBiConsumer returns c declaring X, unwrapping carried X failures;
// see [Unwrap]. Panics with a [ContractViolation] if c is nil.
func CheckedBiConsumer[T, U any, X error](c func(T, U) error, class Class[X]) BiConsumer[T, U, X] {
	require(c == nil, "operation")
	return func(t T, u U) error {
		return Unwrap(c(t, u), class)
	}
}

// Lift returns the computation that passes t and u to c when evaluated.
// Panics with a [ContractViolation] if c is nil.
func (c BiConsumer[T, U, X]) Lift(t T, u U) kont.Eff[struct{}] {
	require(c == nil, "operation")
	return Lift(func() (struct{}, error) { return void(c(t, u)) })
}

// LiftExpr is Lift for the Expr world.
func (c BiConsumer[T, U, X]) LiftExpr(t T, u U) kont.Expr[struct{}] {
	return kont.Reify(c.Lift(t, u))
}
