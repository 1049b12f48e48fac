// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fallible

import (
	"code.hybscloud.com/kont"
)

// The kont Error effect with E = error is a boundary that accepts only
// undistinguished failures. Lift crosses it in one direction and Lower in
// the other; a declared failure survives the trip when it travels as an
// UncheckedError, e.g. Lift(s.Unchecked()) followed by Lower(m, class).

// errorHandler handles the Error effect for Eval and EvalExpr.
// Throw short-circuits to Left; any other effect is a programming error.
// Value type: passed to the evaluation loop on the stack.
type errorHandler[E, A any] struct {
	errCtx *kont.ErrorContext[E]
}

// Dispatch implements kont.Handler for the Error effect.
func (h errorHandler[E, A]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if eop, ok := op.(interface {
		DispatchError(ctx *kont.ErrorContext[E]) (kont.Resumed, bool)
	}); ok {
		v, _ := eop.DispatchError(h.errCtx)
		if h.errCtx.HasErr {
			return kont.Left[E, A](h.errCtx.Err), false
		}
		return v, true
	}
	panic("fallible: unhandled effect in errorHandler")
}

// Lift converts s into a Cont-world computation on the Error effect.
// s runs when the computation is evaluated, once per evaluation. A failure,
// declared or not, is thrown unchanged as an error value.
// Panics with a [ContractViolation] if s is nil.
func Lift[R any](s func() (R, error)) kont.Eff[R] {
	require(s == nil, "operation")
	return kont.Bind(kont.Pure(struct{}{}), func(struct{}) kont.Eff[R] {
		return liftOutcome(s())
	})
}

// LiftExpr is Lift for the Expr world.
func LiftExpr[R any](s func() (R, error)) kont.Expr[R] {
	return kont.Reify(Lift(s))
}

// liftOutcome turns an already computed outcome into a computation.
func liftOutcome[R any](r R, err error) kont.Eff[R] {
	if err != nil {
		return kont.ThrowError[error, R](err)
	}
	return kont.Pure(r)
}

// Eval runs m with the Error effect handled.
// Returns Right on completion, Left with the thrown error otherwise.
func Eval[R any](m kont.Eff[R]) kont.Either[error, R] {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[error, R]](m, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	var errCtx kont.ErrorContext[error]
	h := errorHandler[error, R]{errCtx: &errCtx}
	return kont.Handle(wrapped, h)
}

// EvalExpr runs an Expr-world computation with the Error effect handled.
func EvalExpr[R any](m kont.Expr[R]) kont.Either[error, R] {
	wrapped := kont.ExprMap(m, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	var errCtx kont.ErrorContext[error]
	h := errorHandler[error, R]{errCtx: &errCtx}
	return kont.HandleExpr(wrapped, h)
}

// Lower returns a Supplier declaring X that evaluates m on every call.
// A thrown [*UncheckedError] carrying an X fails with the carried X; any
// other thrown error is returned unchanged. See [Unwrap].
// Panics with a [ContractViolation] if m is nil.
func Lower[R any, X error](m kont.Eff[R], class Class[X]) Supplier[R, X] {
	require(m == nil, "operation")
	return func() (R, error) {
		return fromEither(Eval(m), class)
	}
}

// LowerExpr is Lower for the Expr world.
// Expr frames are consumed by evaluation, so every call evaluates a fresh
// computation from build. Panics with a [ContractViolation] if build is nil.
func LowerExpr[R any, X error](build func() kont.Expr[R], class Class[X]) Supplier[R, X] {
	require(build == nil, "operation")
	return func() (R, error) {
		return fromEither(EvalExpr(build()), class)
	}
}

// fromEither converts an evaluated computation back to (R, error).
func fromEither[R any, X error](e kont.Either[error, R], class Class[X]) (R, error) {
	if err, ok := e.GetLeft(); ok {
		var zero R
		return zero, Unwrap(err, class)
	}
	r, _ := e.GetRight()
	return r, nil
}
