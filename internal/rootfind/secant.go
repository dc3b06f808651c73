package rootfind

import "math"

// Secant locates a root of f starting from the two guesses x0 and x1. Each
// step replaces the derivative in the Newton update with the slope of the
// secant through the two most recent iterates, then slides the window.
//
// There is no protection against f(x1) == f(x0): the division yields an
// infinite or NaN iterate that propagates to a non-converged outcome rather
// than being masked.
func Secant(f Func, x0, x1 float64, s *Settings) (float64, error) {
	cfg := s.withDefaults()

	for i := 0; i < cfg.MaxIterations; i++ {
		x2 := x1 - f(x1)*(x1-x0)/(f(x1)-f(x0))
		if math.Abs(f(x2)) < cfg.Tolerance {
			return x2, nil
		}
		x0 = x1
		x1 = x2
	}
	return 0, noConvergence("secant", cfg.MaxIterations)
}

// FixedPoint iterates the map x = g(x) from initial guess x0 until
// successive application changes x by less than the tolerance. The caller
// reformulates the original f(x) = 0 problem as x = g(x).
//
// The acceptance test evaluates g once more on the value just produced,
// checking |x - g(x)| with the post-update x. That extra evaluation per
// iteration is part of the contract.
//
// Maps with |g'(x)| > 1 near the fixed point diverge and exhaust the
// iteration budget; that is expected, not an error in the toolkit.
func FixedPoint(g Func, x0 float64, s *Settings) (float64, error) {
	cfg := s.withDefaults()

	x := x0
	for i := 0; i < cfg.MaxIterations; i++ {
		x = g(x)
		if math.Abs(x-g(x)) < cfg.Tolerance {
			return x, nil
		}
	}
	return 0, noConvergence("fixed_point", cfg.MaxIterations)
}
