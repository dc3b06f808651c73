package rootfind

import "math"

// Bisection locates a root of f inside [a, b] by repeated interval halving.
// It requires (but does not verify) that f(a) and f(b) have opposite signs;
// under that precondition and a continuous f, convergence is guaranteed.
// The sign-change invariant f(a)*f(b) <= 0 is preserved on every iteration.
//
// Returns ErrNoConvergence if the iteration budget runs out before
// |f(c)| < tolerance.
func Bisection(f Func, a, b float64, s *Settings) (float64, error) {
	cfg := s.withDefaults()

	fa := f(a)
	for i := 0; i < cfg.MaxIterations; i++ {
		c := (a + b) / 2
		fc := f(c)
		if math.Abs(fc) < cfg.Tolerance {
			return c, nil
		}
		if fc*fa < 0 {
			b = c
		} else {
			a = c
			fa = fc
		}
	}
	return 0, noConvergence("bisection", cfg.MaxIterations)
}

// FalsePosition locates a root of f inside [a, b] using the regula falsi
// update: each step replaces an endpoint with the root of the secant line
// through (a, f(a)) and (b, f(b)). Unlike Bisection it verifies the bracket
// up front: if f(a)*f(b) >= 0 it fails immediately without consuming any
// iterations.
//
// For asymmetric functions one endpoint may never update, which slows
// convergence; that stalling is accepted behavior.
func FalsePosition(f Func, a, b float64, s *Settings) (float64, error) {
	cfg := s.withDefaults()

	fa, fb := f(a), f(b)
	if fa*fb >= 0 {
		return 0, &Error{
			Op:      "false_position",
			Message: "f(a) and f(b) must have opposite signs",
			Err:     ErrNoConvergence,
		}
	}
	for i := 0; i < cfg.MaxIterations; i++ {
		c := (a*fb - b*fa) / (fb - fa)
		fc := f(c)
		if math.Abs(fc) < cfg.Tolerance {
			return c, nil
		}
		if fc*fa < 0 {
			b = c
			fb = fc
		} else {
			a = c
			fa = fc
		}
	}
	return 0, noConvergence("false_position", cfg.MaxIterations)
}
