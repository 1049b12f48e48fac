// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fallible provides an algebra for operations that may fail with a
// declared error type, and a tunnel that carries a declared error across
// code that only accepts undistinguished errors.
//
// An operation declares its error type X as a type parameter. A returned
// error whose dynamic type is assignable to X is a declared failure; every
// other error is undistinguished and passes through the algebra untouched.
// [Classify] is the single place that makes this decision.
//
// # Architecture
//
//   - Shapes: [Supplier], [Function], [BiFunction], [Consumer], [BiConsumer],
//     [Runnable], [Predicate], [BiPredicate], plus the [UnaryOperator] and
//     [BinaryOperator] aliases. Each is a plain Go func type with a phantom X.
//   - Algebra: written once over the (R, error) outcome of an invocation and
//     applied per shape. Combinators do no work until the derived operation
//     is invoked, and reject nil arguments eagerly with a [ContractViolation] panic.
//   - Tunnel: [*UncheckedError] wraps a failure; [Unwrap], the Checked
//     adapters and the AndUnwrap functions recover it by [Class].
//   - Outcome: [Outcome] is the tagged three-way result of one invocation,
//     convertible to [code.hybscloud.com/kont.Either].
//   - Effects: [Lift] and [Lower] carry operations across the kont Error effect.
//
// # API Topologies
//
//   - Composition: [Predicate.And], [Predicate.Or], [Predicate.Negate],
//     [FunctionAndThen], [FunctionCompose], [BiFunctionAndThen], [Consumer.AndThen].
//   - Recovery into a new declared type: [FunctionOnErrorThrowAs],
//     [FunctionOnErrorHandle], [FunctionOnErrorApply], and the same per shape
//     ([PredicateOnErrorTest], [SupplierOnErrorGet], [ConsumerOnErrorAccept], [RunnableOnErrorRun]).
//   - Recovery into a plain func: the OnError*Unchecked methods, OnErrorReturn,
//     OnErrorDiscard and Unchecked.
//   - Unwrap: [CheckedFunction] and friends (lazy), [InvokeAndUnwrap] and
//     friends (eager).
//   - Effects: every shape has Lift and LiftExpr methods, e.g. [Function.Lift],
//     alongside the fused [LiftBind], [LiftThen] and [LiftMap].
//
// # Example
//
//	parse := fallible.Function[string, int, *strconv.NumError](func(s string) (int, error) {
//		return strconv.Atoi(s)
//	})
//	registry.Register(parse.Unchecked()) // accepts func(string) (int, error) only
//	...
//	n, err := fallible.ApplyAndUnwrap(registry.Lookup(), "42", fallible.ClassOf[*strconv.NumError]())
//	// err is the original *strconv.NumError, or an undistinguished failure
package fallible
