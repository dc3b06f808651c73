package rootfind

// DefaultStep is the forward-difference step used when the caller does not
// supply one.
const DefaultStep = 1e-5

// Derivative estimates f'(x0) with the forward-difference quotient
// (f(x0+h) - f(x0)) / h. The estimate is first-order accurate in h; there
// is no adaptive step refinement. A non-positive h selects DefaultStep.
//
// Derivative always returns a value; it has no failure mode.
func Derivative(f Func, x0, h float64) float64 {
	if h <= 0 {
		h = DefaultStep
	}
	return (f(x0+h) - f(x0)) / h
}
