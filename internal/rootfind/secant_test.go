package rootfind

import (
	"errors"
	"math"
	"testing"
)

func TestSecant(t *testing.T) {
	tests := []struct {
		name   string
		f      Func
		x0, x1 float64
		root   float64
	}{
		{
			name: "sqrt2",
			f:    func(x float64) float64 { return x*x - 2 },
			x0:   0,
			x1:   2,
			root: math.Sqrt2,
		},
		{
			name: "cubic",
			f:    func(x float64) float64 { return x*x*x - x - 2 },
			x0:   1,
			x1:   2,
			root: 1.5213797068045676,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Secant(tt.f, tt.x0, tt.x1, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(tt.f(got)) >= DefaultTolerance {
				t.Errorf("|f(%v)| = %v, want < %v", got, math.Abs(tt.f(got)), DefaultTolerance)
			}
			if math.Abs(got-tt.root) > 0.0001 {
				t.Errorf("got %v, want %v within 0.0001", got, tt.root)
			}
		})
	}
}

func TestSecantIterationCap(t *testing.T) {
	evals := 0
	f := countingFunc(func(x float64) float64 { return 1 }, &evals)

	// A flat function divides by zero in the update; the non-finite
	// iterates propagate unguarded until the budget runs out.
	_, err := Secant(f, 0, 2, &Settings{MaxIterations: 6})
	if !errors.Is(err, ErrNoConvergence) {
		t.Fatalf("expected ErrNoConvergence, got %v", err)
	}
	// Four evaluations per update step: three in the secant slope, one in
	// the acceptance test.
	if want := 4 * 6; evals != want {
		t.Errorf("got %d evaluations, want %d", evals, want)
	}
}

func TestFixedPointCosine(t *testing.T) {
	got, err := FixedPoint(math.Cos, 1.0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-math.Cos(got)) >= DefaultTolerance {
		t.Errorf("|x - g(x)| = %v, want < %v", math.Abs(got-math.Cos(got)), DefaultTolerance)
	}
	// Dottie number, the fixed point of cos.
	if math.Abs(got-0.7390851332151607) > 0.001 {
		t.Errorf("got %v, want the fixed point of cos within 0.001", got)
	}
}

func TestFixedPointDoubleEvaluation(t *testing.T) {
	// Each update step applies g once and then evaluates it again for the
	// acceptance test, so the total count is exactly twice the steps taken.
	evals := 0
	g := countingFunc(math.Cos, &evals)

	_, err := FixedPoint(g, 1.0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Derive the step count from the acceptance criterion alone; an
	// implementation reusing the update value for the test would come up
	// one evaluation short per step.
	steps := 0
	for x := 1.0; ; {
		x = math.Cos(x)
		steps++
		if math.Abs(x-math.Cos(x)) < DefaultTolerance {
			break
		}
	}
	if want := 2 * steps; evals != want {
		t.Errorf("got %d evaluations, want exactly %d (2 per step over %d steps)", evals, want, steps)
	}
}

func TestFixedPointDivergentMap(t *testing.T) {
	evals := 0
	g := countingFunc(func(x float64) float64 { return 2 * x }, &evals)

	_, err := FixedPoint(g, 1.0, &Settings{MaxIterations: 40})
	if !errors.Is(err, ErrNoConvergence) {
		t.Fatalf("expected ErrNoConvergence, got %v", err)
	}
	if want := 2 * 40; evals != want {
		t.Errorf("got %d evaluations, want %d", evals, want)
	}
}

func TestSecantIdempotent(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }

	first, err1 := Secant(f, 0, 2, nil)
	second, err2 := Secant(f, 0, 2, nil)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if first != second {
		t.Errorf("repeated calls differ: %v vs %v", first, second)
	}
}
