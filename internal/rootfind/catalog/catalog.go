// Package catalog provides named scalar functions and JSON-transportable
// polynomials for driving the root-finding service without any expression
// parsing.
package catalog

import (
	"fmt"
	"math"
	"sort"

	"github.com/copyleftdev/ROOTR/internal/rootfind"
)

// Entry is a catalog function together with its analytic derivative, when
// one is known. Solvers that need a derivative fall back to the numerical
// estimator when Derivative is nil.
type Entry struct {
	Name       string
	Func       rootfind.Func
	Derivative rootfind.Func
}

var entries = map[string]Entry{
	"x^2 - 2": {
		Name:       "x^2 - 2",
		Func:       func(x float64) float64 { return x*x - 2 },
		Derivative: func(x float64) float64 { return 2 * x },
	},
	"x^2 - x": {
		Name:       "x^2 - x",
		Func:       func(x float64) float64 { return x*x - x },
		Derivative: func(x float64) float64 { return 2*x - 1 },
	},
	"x^3 - x - 2": {
		Name:       "x^3 - x - 2",
		Func:       func(x float64) float64 { return x*x*x - x - 2 },
		Derivative: func(x float64) float64 { return 3*x*x - 1 },
	},
	"sin(x)": {
		Name:       "sin(x)",
		Func:       math.Sin,
		Derivative: math.Cos,
	},
	"cos(x) - x": {
		Name:       "cos(x) - x",
		Func:       func(x float64) float64 { return math.Cos(x) - x },
		Derivative: func(x float64) float64 { return -math.Sin(x) - 1 },
	},
	"cos(x)": {
		// Also usable as a fixed-point map: x = cos(x).
		Name:       "cos(x)",
		Func:       math.Cos,
		Derivative: func(x float64) float64 { return -math.Sin(x) },
	},
	"exp(x) - 2": {
		Name:       "exp(x) - 2",
		Func:       func(x float64) float64 { return math.Exp(x) - 2 },
		Derivative: math.Exp,
	},
	"x*exp(x) - 1": {
		Name:       "x*exp(x) - 1",
		Func:       func(x float64) float64 { return x*math.Exp(x) - 1 },
		Derivative: func(x float64) float64 { return (x + 1) * math.Exp(x) },
	},
	"sin(x) - x/2": {
		// No analytic derivative on purpose: derivative-based solvers fall
		// back to the numerical estimator for this entry.
		Name: "sin(x) - x/2",
		Func: func(x float64) float64 { return math.Sin(x) - x/2 },
	},
}

// Lookup returns the catalog entry for name.
func Lookup(name string) (Entry, error) {
	e, ok := entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("unknown function %q", name)
	}
	return e, nil
}

// Names returns the catalog function names in sorted order.
func Names() []string {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Polynomial represents a polynomial by its coefficients in ascending
// order of power: Polynomial{c0, c1, c2} is c0 + c1*x + c2*x^2. The zero
// value evaluates to 0 everywhere.
type Polynomial []float64

// Eval evaluates the polynomial at x using Horner's scheme.
func (p Polynomial) Eval(x float64) float64 {
	r := 0.0
	for i := len(p) - 1; i >= 0; i-- {
		r = r*x + p[i]
	}
	return r
}

// Derivative returns the analytically differentiated polynomial.
func (p Polynomial) Derivative() Polynomial {
	if len(p) < 2 {
		return Polynomial{}
	}
	d := make(Polynomial, len(p)-1)
	for i := 1; i < len(p); i++ {
		d[i-1] = float64(i) * p[i]
	}
	return d
}

// Func returns the polynomial as a scalar function handle.
func (p Polynomial) Func() rootfind.Func {
	return p.Eval
}
