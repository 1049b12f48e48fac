// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fallible_test

import (
	"testing"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/fallible"
)

func TestBiPredicateAndShortCircuit(t *testing.T) {
	var p2Calls atomix.Uint32
	x := &checkedError{msg: "x"}
	p1 := fallible.BiPredicate[string, string, *checkedError](func(string, string) (bool, error) {
		return false, x
	})
	p2 := fallible.BiPredicate[string, string, *checkedError](func(string, string) (bool, error) {
		p2Calls.Add(1)
		return true, nil
	})
	ok, err := p1.And(p2)("foo", "bar")
	if ok {
		t.Fatal("And should not succeed when the left operand fails")
	}
	got, k := fallible.Classify[*checkedError](err)
	if k != fallible.Declared || got.msg != "x" {
		t.Fatalf("got %v (%v), want declared x", err, k)
	}
	if p2Calls.Load() != 0 {
		t.Fatal("p2 should never be invoked")
	}
}

func TestBiPredicateCombinators(t *testing.T) {
	eq := fallible.BiPredicate[string, string, *checkedError](func(a, b string) (bool, error) {
		return a == b, nil
	})
	nonEmpty := fallible.BiPredicate[string, string, *checkedError](func(a, _ string) (bool, error) {
		if a == "" {
			return false, &checkedError{msg: "empty"}
		}
		return true, nil
	})
	if ok, _ := nonEmpty.And(eq)("a", "a"); !ok {
		t.Fatal("a == a should hold")
	}
	if ok, _ := nonEmpty.And(eq)("a", "b"); ok {
		t.Fatal("a == b should not hold")
	}
	if ok, _ := eq.Or(nonEmpty)("a", "b"); !ok {
		t.Fatal("a != b but non-empty should hold")
	}
	if ok, _ := eq.Negate()("a", "b"); !ok {
		t.Fatal("negated equality should hold for a, b")
	}
	if _, err := eq.Or(nonEmpty)("", "b"); err == nil {
		t.Fatal("empty left should fail")
	}
}

func TestBiPredicateRecovery(t *testing.T) {
	x := &checkedError{msg: "x"}
	failing := fallible.BiPredicate[int, int, *checkedError](func(int, int) (bool, error) {
		return false, x
	})
	if ok, err := failing.OnErrorReturn(true)(1, 2); !ok || err != nil {
		t.Fatalf("OnErrorReturn got (%v, %v)", ok, err)
	}
	less := func(a, b int) (bool, error) { return a < b, nil }
	if ok, err := failing.OnErrorTestUnchecked(less)(1, 2); !ok || err != nil {
		t.Fatalf("OnErrorTestUnchecked got (%v, %v)", ok, err)
	}
	if ok, err := fallible.BiPredicateOnErrorTest(failing, fallible.BiPredicate[int, int, *otherError](less))(1, 2); !ok || err != nil {
		t.Fatalf("BiPredicateOnErrorTest got (%v, %v)", ok, err)
	}
	if _, err := fallible.BiPredicateOnErrorThrowAs(failing, toOther)(1, 2); err.Error() != "other: x" {
		t.Fatalf("BiPredicateOnErrorThrowAs got %v", err)
	}
	h := fallible.BiPredicateOnErrorHandle[*otherError](failing, func(*checkedError) (bool, error) { return true, nil })
	if ok, err := h(1, 2); !ok || err != nil {
		t.Fatalf("BiPredicateOnErrorHandle got (%v, %v)", ok, err)
	}
	_, err := fallible.CheckedBiPredicate(failing.Unchecked(), checked)(1, 2)
	if err != x {
		t.Fatalf("round trip got %v, want x", err)
	}
}
