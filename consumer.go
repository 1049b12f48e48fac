// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fallible

import (
	"code.hybscloud.com/kont"
)

// Consumer accepts a T or fails, declaring the error type X.
type Consumer[T any, X error] func(T) error

// AndThen returns the consumer that runs c, then after, with the same input.
// If c fails, after is not invoked and c's failure is returned unchanged.
// Panics with a [ContractViolation] if c or after is nil.
func (c Consumer[T, X]) AndThen(after Consumer[T, X]) Consumer[T, X] {
	require(c == nil, "operation")
	require(after == nil, "after")
	return func(t T) error {
		if err := c(t); err != nil {
			return err
		}
		return after(t)
	}
}

// Unchecked returns c with every declared failure wrapped in an
// [*UncheckedError] built by [WithoutStack].
func (c Consumer[T, X]) Unchecked() func(T) error {
	return c.OnErrorThrowAsUnchecked(tunnel[X])
}

// OnErrorThrowAsUnchecked returns c with every declared failure replaced by
// mapper's result. Panics with a [ContractViolation] if c or mapper is nil.
func (c Consumer[T, X]) OnErrorThrowAsUnchecked(mapper func(X) error) func(T) error {
	require(c == nil, "operation")
	require(mapper == nil, "mapper")
	rec := throwAsUnchecked[struct{}](mapper)
	return func(t T) error {
		return recoverVoid(c(t), rec)
	}
}

// OnErrorAcceptUnchecked returns c that passes the same input to fallback on
// a declared failure.
// Panics with a [ContractViolation] if c or fallback is nil.
func (c Consumer[T, X]) OnErrorAcceptUnchecked(fallback func(T) error) func(T) error {
	require(c == nil, "operation")
	require(fallback == nil, "fallback")
	return func(t T) error {
		return recoverVoid(c(t), func(X) (struct{}, error) {
			return void(fallback(t))
		})
	}
}

// OnErrorDiscard returns c with every declared failure suppressed.
// Panics with a [ContractViolation] if c is nil.
func (c Consumer[T, X]) OnErrorDiscard() func(T) error {
	require(c == nil, "operation")
	return func(t T) error {
		return recoverVoid(c(t), discarding[X])
	}
}

// ConsumerOnErrorThrowAs returns c declaring Y, with every declared failure
// x replaced by mapper(x).
// Panics with a [ContractViolation] if c or mapper is nil.
func ConsumerOnErrorThrowAs[T any, X, Y error](c Consumer[T, X], mapper func(X) Y) Consumer[T, Y] {
	require(c == nil, "operation")
	require(mapper == nil, "mapper")
	rec := throwAs[struct{}](mapper)
	return func(t T) error {
		return recoverVoid(c(t), rec)
	}
}

// ConsumerOnErrorAccept returns c declaring Y that passes the same input to
// fallback on a declared failure.
// Panics with a [ContractViolation] if c or fallback is nil.
func ConsumerOnErrorAccept[T any, X, Y error](c Consumer[T, X], fallback Consumer[T, Y]) Consumer[T, Y] {
	require(c == nil, "operation")
	require(fallback == nil, "fallback")
	return func(t T) error {
		return recoverVoid(c(t), func(X) (struct{}, error) {
			return void(fallback(t))
		})
	}
}

// CheckedConsumer returns c declaring X, unwrapping carried X failures;
// see [Unwrap]. Panics with a [ContractViolation] if c is nil.
func CheckedConsumer[T any, X error](c func(T) error, class Class[X]) Consumer[T, X] {
	require(c == nil, "operation")
	return func(t T) error {
		return Unwrap(c(t), class)
	}
}

// Lift returns the computation that passes t to c when evaluated.
// A failure, declared or not, is thrown unchanged on the Error effect, so
// a [Lower] declaring the same X sees a declared failure as declared.
// Panics with a [ContractViolation] if c is nil.
func (c Consumer[T, X]) Lift(t T) kont.Eff[struct{}] {
	require(c == nil, "operation")
	return Lift(func() (struct{}, error) { return void(c(t)) })
}

// LiftExpr is Lift for the Expr world.
func (c Consumer[T, X]) LiftExpr(t T) kont.Expr[struct{}] {
	return kont.Reify(c.Lift(t))
}
