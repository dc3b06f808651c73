package rootfind

import (
	"errors"
	"math"
	"testing"
)

func TestFindBracket(t *testing.T) {
	f := func(x float64) float64 { return x*x - x }

	bracket, err := FindBracket(f, 0, &BracketSettings{Step: 0.1, Factor: 2.0, MaxProbes: 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bracket.Low >= bracket.High {
		t.Errorf("bracket not ordered: low %v, high %v", bracket.Low, bracket.High)
	}
	if f(bracket.Low)*f(bracket.High) >= 0 {
		t.Errorf("no sign change over [%v, %v]: f values %v, %v",
			bracket.Low, bracket.High, f(bracket.Low), f(bracket.High))
	}
}

func TestFindBracketFlipsDirection(t *testing.T) {
	// f is ascending in the probe direction from 0, so the search must flip
	// and expand toward the negative root at -sqrt(2).
	f := func(x float64) float64 { return 0.5*x*x - 1 }

	bracket, err := FindBracket(f, 0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f(bracket.Low)*f(bracket.High) >= 0 {
		t.Errorf("no sign change over [%v, %v]", bracket.Low, bracket.High)
	}
	if bracket.Low > -math.Sqrt2 || bracket.High < -math.Sqrt2 {
		t.Errorf("bracket [%v, %v] does not straddle %v", bracket.Low, bracket.High, -math.Sqrt2)
	}
}

func TestFindBracketFeedsBisection(t *testing.T) {
	f := func(x float64) float64 { return x*x - x }

	bracket, err := FindBracket(f, 0, &BracketSettings{Step: 0.1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root, err := Bisection(f, bracket.Low, bracket.High, nil)
	if err != nil {
		t.Fatalf("bisection over found bracket: %v", err)
	}
	if math.Abs(f(root)) >= DefaultTolerance {
		t.Errorf("|f(%v)| = %v, want < %v", root, math.Abs(f(root)), DefaultTolerance)
	}
}

func TestFindBracketExhausted(t *testing.T) {
	evals := 0
	f := countingFunc(func(x float64) float64 { return 1 }, &evals)

	_, err := FindBracket(f, 0, &BracketSettings{MaxProbes: 10})
	if !errors.Is(err, ErrNoBracket) {
		t.Fatalf("expected ErrNoBracket, got %v", err)
	}
	// Two seed evaluations plus exactly one evaluation per probe.
	if want := 2 + 10; evals != want {
		t.Errorf("got %d evaluations, want %d", evals, want)
	}
}

func TestFindBracketIdempotent(t *testing.T) {
	f := func(x float64) float64 { return 0.5*x*x - 1 }

	first, err1 := FindBracket(f, 0, nil)
	second, err2 := FindBracket(f, 0, nil)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if first != second {
		t.Errorf("repeated calls differ: %+v vs %+v", first, second)
	}
}
