package rootfind

import "math"

// NewtonRaphson locates a root of f starting from initial guess x0, using
// the caller-supplied derivative df for the update x = x - f(x)/df(x).
// Convergence is quadratic near a simple root with a good initial guess.
//
// There is no protection against df(x) == 0: the division yields an
// infinite or NaN iterate, which propagates instead of being replaced by a
// fallback value, and the call surfaces ErrNoConvergence.
func NewtonRaphson(f, df Func, x0 float64, s *Settings) (float64, error) {
	return newtonIterate("newton_raphson", f, df, x0, s.withDefaults())
}

// Tangent is the tangent method: the same algorithm as NewtonRaphson under
// its other common name. It produces identical numerical behavior.
func Tangent(f, df Func, x0 float64, s *Settings) (float64, error) {
	return newtonIterate("tangent", f, df, x0, s.withDefaults())
}

func newtonIterate(op string, f, df Func, x0 float64, cfg Settings) (float64, error) {
	x := x0
	for i := 0; i < cfg.MaxIterations; i++ {
		x = x - f(x)/df(x)
		if math.Abs(f(x)) < cfg.Tolerance {
			return x, nil
		}
	}
	return 0, noConvergence(op, cfg.MaxIterations)
}
