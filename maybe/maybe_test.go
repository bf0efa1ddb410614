package maybe_test

import (
	"testing"

	. "github.com/npillmayer/inkml/maybe"
)

func TestMaybeMatch(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()
	//t.Logf("x = %d", x.Just()) // might panic

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Errorf("expected Just(7) to match Just, matched Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	matched := false
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Errorf("expected Nothing to match Nothing, matched Just(%d)", w)
	case m.Nothing():
		matched = true
	}
	if !matched || w != 0 {
		t.Errorf("expected Nothing to leave w untouched, w=%d", w)
	}
}

func TestMaybeWithDefault(t *testing.T) {
	if span := Just(2.5).WithDefault(-1); span != 2.5 {
		t.Errorf("expected Just(2.5) to have value 2.5, is %g", span)
	}
	if span := Nothing[float64]().WithDefault(-1); span != -1 {
		t.Errorf("expected Nothing to default to -1, is %g", span)
	}
}

func TestMaybeMapMethod(t *testing.T) {
	double := func(n int) int { return n * 2 }
	if v, ok := Just(7).Map(double).Get(); !ok || v != 14 {
		t.Errorf("expected Just(7).Map(double) to be 14, is %d/%v", v, ok)
	}
	if !Nothing[int]().Map(double).IsNothing() {
		t.Errorf("expected Nothing.Map(…) to stay Nothing")
	}
}

func TestMaybeAndThen(t *testing.T) {
	positive := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}
	if v, ok := AndThen(positive, Just(7)).Get(); !ok || !v {
		t.Errorf("expected Just(7) |> andThen(positive) to be true, isn't")
	}
	if !AndThen(positive, Just(-3)).IsNothing() {
		t.Errorf("expected Just(-3) |> andThen(positive) to be Nothing, isn't")
	}
	if !AndThen(positive, Nothing[int]()).IsNothing() {
		t.Errorf("expected Nothing |> andThen(positive) to be Nothing, isn't")
	}
}

func TestMaybeGet(t *testing.T) {
	x := FromPair(3, true)
	if v, ok := x.Get(); !ok || v != 3 {
		t.Errorf("expected FromPair(3, true) to be Just(3), is %v/%v", v, ok)
	}
	y := FromPair(3, false)
	if !y.IsNothing() {
		t.Errorf("expected FromPair(3, false) to be Nothing, isn't")
	}
}

func TestMaybeMerge(t *testing.T) {
	larger := func(a, b int) int {
		if a > b {
			return a
		}
		return b
	}
	if v := Merge(larger, Just(3), Nothing[int]()).WithDefault(-1); v != 3 {
		t.Errorf("expected Merge(Just 3, Nothing) to be 3, is %d", v)
	}
	if v := Merge(larger, Nothing[int](), Just(4)).WithDefault(-1); v != 4 {
		t.Errorf("expected Merge(Nothing, Just 4) to be 4, is %d", v)
	}
	if v := Merge(larger, Just(3), Just(4)).WithDefault(-1); v != 4 {
		t.Errorf("expected Merge(Just 3, Just 4) to be 4, is %d", v)
	}
	if !Merge(larger, Nothing[int](), Nothing[int]()).IsNothing() {
		t.Errorf("expected Merge of two Nothings to be Nothing")
	}
	if !Map2(larger, Just(1), Nothing[int]()).IsNothing() {
		t.Errorf("expected Map2 with a Nothing to be Nothing")
	}
}
