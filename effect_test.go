// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fallible_test

import (
	"testing"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/fallible"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

func TestLiftEvalSuccess(t *testing.T) {
	result := fallible.Eval(fallible.Lift(func() (int, error) { return 42, nil }))
	if !result.IsRight() {
		t.Fatal("expected Right")
	}
	if v, _ := result.GetRight(); v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
}

func TestLiftEvalFailure(t *testing.T) {
	result := fallible.Eval(fallible.Lift(func() (int, error) { return 0, iox.ErrWouldBlock }))
	if !result.IsLeft() {
		t.Fatal("expected Left")
	}
	if err, _ := result.GetLeft(); err != iox.ErrWouldBlock {
		t.Fatalf("got %v, want the same would block value", err)
	}
}

func TestLiftIsLazy(t *testing.T) {
	var calls atomix.Uint32
	m := fallible.Lift(func() (int, error) {
		calls.Add(1)
		return 1, nil
	})
	if calls.Load() != 0 {
		t.Fatal("Lift should not invoke the operation")
	}
	fallible.Eval(m)
	fallible.Eval(m)
	if calls.Load() != 2 {
		t.Fatalf("calls got %d, want one per evaluation", calls.Load())
	}
}

func TestLiftLowerRoundTrip(t *testing.T) {
	x := &checkedError{msg: "boom"}
	f := fallible.Supplier[int, *checkedError](func() (int, error) { return 0, x })
	s := fallible.Lower(fallible.Lift(f.Unchecked()), checked)
	_, err := s()
	if got, k := fallible.Classify[*checkedError](err); k != fallible.Declared || got != x {
		t.Fatalf("got %v (%v), want the original x", err, k)
	}
	ok := fallible.Lower(fallible.Lift(func() (string, error) { return "v", nil }), checked)
	if v, err := ok(); v != "v" || err != nil {
		t.Fatalf("got (%q, %v), want (v, nil)", v, err)
	}
}

func TestLiftBindShortCircuit(t *testing.T) {
	var contCalls atomix.Uint32
	x := &checkedError{msg: "x"}
	m := fallible.LiftBind(func() (int, error) { return 0, x }, func(n int) kont.Eff[int] {
		contCalls.Add(1)
		return kont.Pure(n + 1)
	})
	result := fallible.Eval(m)
	if err, _ := result.GetLeft(); err != x {
		t.Fatalf("got %v, want x", err)
	}
	if contCalls.Load() != 0 {
		t.Fatal("continuation should not run after a failure")
	}
}

func TestLiftBindChain(t *testing.T) {
	m := fallible.LiftBind(func() (int, error) { return parse("20") }, func(n int) kont.Eff[int] {
		return fallible.LiftMap(func() (int, error) { return parse("22") }, func(k int) int {
			return n + k
		})
	})
	if v, _ := fallible.Eval(m).GetRight(); v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
}

func TestLiftThen(t *testing.T) {
	var calls atomix.Uint32
	step := func() (struct{}, error) {
		calls.Add(1)
		return struct{}{}, nil
	}
	m := fallible.LiftThen(step, fallible.LiftThen(step, kont.Pure("done")))
	if v, _ := fallible.Eval(m).GetRight(); v != "done" {
		t.Fatalf("got %q, want done", v)
	}
	if calls.Load() != 2 {
		t.Fatalf("calls got %d, want 2", calls.Load())
	}
}

func TestLiftCatchError(t *testing.T) {
	m := kont.CatchError(
		fallible.Lift(func() (int, error) { return 0, iox.ErrWouldBlock }),
		func(err error) kont.Eff[int] {
			if iox.IsWouldBlock(err) {
				return kont.Pure(-1)
			}
			return kont.ThrowError[error, int](err)
		},
	)
	if v, _ := fallible.Eval(m).GetRight(); v != -1 {
		t.Fatalf("got %d, want -1", v)
	}
}

func TestLiftExpr(t *testing.T) {
	var calls atomix.Uint32
	x := &checkedError{msg: "x"}
	op := func() (int, error) {
		calls.Add(1)
		return 0, fallible.WithoutStack(x)
	}
	result := fallible.EvalExpr(fallible.LiftExpr(op))
	if !result.IsLeft() {
		t.Fatal("expected Left")
	}
	s := fallible.LowerExpr(func() kont.Expr[int] { return fallible.LiftExpr(op) }, checked)
	if _, err := s(); err != x {
		t.Fatalf("LowerExpr got %v, want x", err)
	}
	if _, err := s(); err != x {
		t.Fatalf("second LowerExpr call got %v, want x", err)
	}
	if calls.Load() != 3 {
		t.Fatalf("calls got %d, want 3", calls.Load())
	}
}

func TestEvalExprSuccess(t *testing.T) {
	m := kont.ExprMap(fallible.LiftExpr(func() (int, error) { return parse("9") }), func(n int) int {
		return n * n
	})
	if v, _ := fallible.EvalExpr(m).GetRight(); v != 81 {
		t.Fatalf("got %d, want 81", v)
	}
}

func TestShapeLift(t *testing.T) {
	var calls atomix.Uint32
	x := &checkedError{msg: "x"}
	inc := fallible.Function[int, int, *checkedError](func(n int) (int, error) {
		calls.Add(1)
		return n + 1, nil
	})
	m := inc.Lift(1)
	if calls.Load() != 0 {
		t.Fatal("Lift should not apply the function")
	}
	if v, _ := fallible.Eval(m).GetRight(); v != 2 {
		t.Fatalf("Function.Lift got %d, want 2", v)
	}
	if v, _ := fallible.EvalExpr(inc.LiftExpr(4)).GetRight(); v != 5 {
		t.Fatalf("Function.LiftExpr got %d, want 5", v)
	}
	if v, _ := fallible.Eval(div.Lift(9, 3)).GetRight(); v != 3 {
		t.Fatalf("BiFunction.Lift got %d, want 3", v)
	}
	if err, _ := fallible.EvalExpr(div.LiftExpr(9, 0)).GetLeft(); err != errDivByZero {
		t.Fatalf("BiFunction.LiftExpr got %v, want division by zero", err)
	}

	positive := fallible.Predicate[int, *checkedError](func(n int) (bool, error) { return n > 0, nil })
	if ok, _ := fallible.Eval(positive.Lift(1)).GetRight(); !ok {
		t.Fatal("Predicate.Lift should hold for 1")
	}
	if ok, _ := fallible.EvalExpr(positive.Negate().LiftExpr(1)).GetRight(); ok {
		t.Fatal("negated Predicate.LiftExpr should not hold for 1")
	}
	less := fallible.BiPredicate[int, int, *checkedError](func(a, b int) (bool, error) { return a < b, nil })
	if ok, _ := fallible.Eval(less.Lift(1, 2)).GetRight(); !ok {
		t.Fatal("BiPredicate.Lift should hold for 1 < 2")
	}
	if ok, _ := fallible.EvalExpr(less.LiftExpr(2, 1)).GetRight(); ok {
		t.Fatal("BiPredicate.LiftExpr should not hold for 2 < 1")
	}

	failing := fallible.Supplier[string, *checkedError](func() (string, error) { return "", x })
	if err, _ := fallible.Eval(failing.Lift()).GetLeft(); err != x {
		t.Fatalf("Supplier.Lift got %v, want x", err)
	}
	recovered := fallible.Supplier[string, *checkedError](failing.OnErrorReturn("d"))
	if v, _ := fallible.EvalExpr(recovered.LiftExpr()).GetRight(); v != "d" {
		t.Fatalf("Supplier.LiftExpr got %q, want d", v)
	}
}

func TestVoidShapeLift(t *testing.T) {
	var s sink
	c := fallible.Consumer[int, *checkedError](s.accept)
	if r := fallible.Eval(c.Lift(3)); !r.IsRight() || s.sum.Load() != 3 {
		t.Fatalf("Consumer.Lift got %v, sum %d", r, s.sum.Load())
	}
	if r := fallible.EvalExpr(c.LiftExpr(-1)); !r.IsLeft() {
		t.Fatal("Consumer.LiftExpr should throw on a negative")
	}
	put := fallible.BiConsumer[string, int, *checkedError](func(k string, _ int) error {
		if k == "" {
			return &checkedError{msg: "empty key"}
		}
		return nil
	})
	if r := fallible.Eval(put.Lift("k", 1)); !r.IsRight() {
		t.Fatal("BiConsumer.Lift should succeed")
	}
	if r := fallible.EvalExpr(put.LiftExpr("", 1)); !r.IsLeft() {
		t.Fatal("BiConsumer.LiftExpr should throw on an empty key")
	}
	var runs atomix.Uint32
	run := fallible.Runnable[*checkedError](func() error {
		runs.Add(1)
		return nil
	})
	m := kont.Then(run.Lift(), kont.Then(run.Lift(), kont.Pure("done")))
	if v, _ := fallible.Eval(m).GetRight(); v != "done" || runs.Load() != 2 {
		t.Fatalf("Runnable.Lift got %q after %d runs", v, runs.Load())
	}
	if r := fallible.EvalExpr(run.LiftExpr()); !r.IsRight() {
		t.Fatal("Runnable.LiftExpr should succeed")
	}
}

func TestShapeLiftLowerKeepsDeclared(t *testing.T) {
	x := &checkedError{msg: "x"}
	f := fallible.Function[int, int, *checkedError](func(int) (int, error) { return 0, x })
	_, err := fallible.Lower(f.Lift(1), checked)()
	if got, k := fallible.Classify[*checkedError](err); k != fallible.Declared || got != x {
		t.Fatalf("got %v (%v), want the original x", err, k)
	}
	_, err = fallible.LowerExpr(func() kont.Expr[int] { return f.LiftExpr(1) }, checked)()
	if err != x {
		t.Fatalf("LowerExpr got %v, want x", err)
	}
}
