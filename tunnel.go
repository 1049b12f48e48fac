// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fallible

// Unwrap applies the tunnel's unwrap rule to err at a boundary expecting X.
// If err is an [*UncheckedError] whose cause is assignable to X, the cause
// itself is returned. Any other err, including a carrier whose cause does
// not match, is returned unchanged.
//
// Only err itself is inspected; a carrier wrapped inside another error is
// not unwrapped.
func Unwrap[X error](err error, class Class[X]) error {
	u, ok := err.(*UncheckedError)
	if !ok {
		return err
	}
	if x, ok := class.Match(u.cause); ok {
		return x
	}
	return err
}

// InvokeAndUnwrap invokes s once and applies [Unwrap] to its failure.
// A failure always comes with the zero R.
// It is the eager counterpart of the Checked adapters, for call sites that
// want unwrap semantics without building a reusable operation.
// Panics with a [ContractViolation] if s is nil.
func InvokeAndUnwrap[R any, X error](s func() (R, error), class Class[X]) (R, error) {
	require(s == nil, "operation")
	r, err := s()
	return settle(r, Unwrap(err, class))
}

// ApplyAndUnwrap invokes f with t and applies [Unwrap] to its failure.
// Panics with a [ContractViolation] if f is nil.
func ApplyAndUnwrap[T, R any, X error](f func(T) (R, error), t T, class Class[X]) (R, error) {
	require(f == nil, "operation")
	r, err := f(t)
	return settle(r, Unwrap(err, class))
}

// ApplyAndUnwrap2 invokes f with t and u and applies [Unwrap] to its failure.
// Panics with a [ContractViolation] if f is nil.
func ApplyAndUnwrap2[T, U, R any, X error](f func(T, U) (R, error), t T, u U, class Class[X]) (R, error) {
	require(f == nil, "operation")
	r, err := f(t, u)
	return settle(r, Unwrap(err, class))
}

// AcceptAndUnwrap invokes c with t and applies [Unwrap] to its failure.
// Panics with a [ContractViolation] if c is nil.
func AcceptAndUnwrap[T any, X error](c func(T) error, t T, class Class[X]) error {
	require(c == nil, "operation")
	return Unwrap(c(t), class)
}

// AcceptAndUnwrap2 invokes c with t and u and applies [Unwrap] to its failure.
// Panics with a [ContractViolation] if c is nil.
func AcceptAndUnwrap2[T, U any, X error](c func(T, U) error, t T, u U, class Class[X]) error {
	require(c == nil, "operation")
	return Unwrap(c(t, u), class)
}

// RunAndUnwrap invokes r and applies [Unwrap] to its failure.
// Panics with a [ContractViolation] if r is nil.
func RunAndUnwrap[X error](r func() error, class Class[X]) error {
	require(r == nil, "operation")
	return Unwrap(r(), class)
}
