// Package rootfind implements iterative algorithms for locating a root of a
// scalar function, a forward-difference derivative estimator, and an
// expanding search that locates a sign-change bracket.
//
// Every solver is a pure function: it owns its iteration state for the
// lifetime of one call, shares nothing between calls, and is safe to invoke
// concurrently as long as the supplied callables are themselves pure.
package rootfind

// Func is a scalar function handle mapping one real number to one real
// number. It may be undefined (division by zero, domain error) at some
// inputs; the caller is responsible for supplying a function and bounds for
// which the chosen method is valid.
type Func func(x float64) float64

// Default tuning values applied when Settings is nil or a field is unset.
const (
	DefaultTolerance     = 0.0001
	DefaultMaxIterations = 40
)

// Settings contains the optional tuning parameters shared by all solvers.
// A nil *Settings selects the defaults.
type Settings struct {
	// Tolerance is the maximum |f(x)| for an estimate to be accepted as a
	// root (for FixedPoint, the maximum |x - g(x)|).
	Tolerance float64

	// MaxIterations is a hard cap on update steps. Exactly this many update
	// attempts are made before the solver reports ErrNoConvergence.
	MaxIterations int
}

// withDefaults returns a value copy of s with zero fields replaced by the
// package defaults.
func (s *Settings) withDefaults() Settings {
	out := Settings{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
	if s == nil {
		return out
	}
	if s.Tolerance > 0 {
		out.Tolerance = s.Tolerance
	}
	if s.MaxIterations > 0 {
		out.MaxIterations = s.MaxIterations
	}
	return out
}
