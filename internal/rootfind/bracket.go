package rootfind

// Default tuning for the expanding bracket search.
const (
	DefaultBracketStep   = 0.01
	DefaultBracketFactor = 2.0
	DefaultMaxProbes     = 1000
)

// Bracket is an interval [Low, High] on which f changes sign, guaranteeing
// (for continuous f) a root inside.
type Bracket struct {
	Low  float64
	High float64
}

// BracketSettings contains the optional tuning parameters for FindBracket.
// A nil *BracketSettings selects the defaults.
type BracketSettings struct {
	// Step is the initial probe step taken from the starting point.
	Step float64
	// Factor is the geometric growth applied to the step after each failed
	// probe, so the search expands exponentially.
	Factor float64
	// MaxProbes is a hard cap on probe evaluations.
	MaxProbes int
}

func (s *BracketSettings) withDefaults() BracketSettings {
	out := BracketSettings{
		Step:      DefaultBracketStep,
		Factor:    DefaultBracketFactor,
		MaxProbes: DefaultMaxProbes,
	}
	if s == nil {
		return out
	}
	if s.Step > 0 {
		out.Step = s.Step
	}
	if s.Factor > 0 {
		out.Factor = s.Factor
	}
	if s.MaxProbes > 0 {
		out.MaxProbes = s.MaxProbes
	}
	return out
}

// FindBracket searches outward from x for an interval on which f changes
// sign, for use as input to the bracketing solvers. It probes x+step, flips
// the search direction if f is ascending that way, then repeatedly extends
// the window by a geometrically growing step until two consecutive probes
// straddle a sign change.
//
// The returned bracket spans the full final window (two steps), ordered so
// Low < High. If the probe budget runs out without a sign change,
// FindBracket reports ErrNoBracket.
func FindBracket(f Func, x float64, s *BracketSettings) (Bracket, error) {
	cfg := s.withDefaults()

	step := cfg.Step
	a, fa := x, f(x)
	b, fb := a+step, f(a+step)
	if fb > fa {
		a, b = b, a
		fa, fb = fb, fa
		step = -step
	}

	for i := 0; i < cfg.MaxProbes; i++ {
		c := b + step
		fc := f(c)
		if fc*fb < 0 {
			if a < c {
				return Bracket{Low: a, High: c}, nil
			}
			return Bracket{Low: c, High: a}, nil
		}
		a, fa = b, fb
		b, fb = c, fc
		step *= cfg.Factor
	}
	return Bracket{}, &Error{
		Op:      "find_bracket",
		Message: "probe budget exhausted",
		Err:     ErrNoBracket,
	}
}
