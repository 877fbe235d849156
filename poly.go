package spline

import (
	"fmt"
	"math"
	"slices"
)

// Monotonicity describes how a value changes as the curve parameter
// increases.
type Monotonicity int

const (
	// NotMonotonic means the value both increases and decreases.
	NotMonotonic Monotonicity = iota
	// Constant means the value never changes.
	Constant
	// Increasing means the value never decreases.
	Increasing
	// Decreasing means the value never increases.
	Decreasing
)

func (m Monotonicity) String() string {
	switch m {
	case NotMonotonic:
		return "none"
	case Constant:
		return "constant"
	case Increasing:
		return "increasing"
	case Decreasing:
		return "decreasing"
	default:
		return fmt.Sprintf("Monotonicity(%d)", int(m))
	}
}

// merge combines the monotonicity of two adjacent pieces. Constant pieces
// don't affect the direction of their neighbours.
func (m Monotonicity) merge(o Monotonicity) Monotonicity {
	switch {
	case m == o:
		return m
	case m == Constant:
		return o
	case o == Constant:
		return m
	default:
		return NotMonotonic
	}
}

func signMonotonicity(v float64) Monotonicity {
	switch {
	case v > 0:
		return Increasing
	case v < 0:
		return Decreasing
	default:
		return Constant
	}
}

// monotonicityOn classifies a function over [a, b] given its derivative and
// the derivative's roots. The roots strictly inside the interval cut it into
// pieces on which the derivative has a fixed sign, sampled at each piece's
// midpoint. Roots at which the derivative touches zero without changing sign
// thus don't break monotonicity.
func monotonicityOn(deriv func(float64) float64, roots []float64, a, b float64) Monotonicity {
	if a > b {
		a, b = b, a
	}
	cuts := make([]float64, 0, len(roots)+2)
	cuts = append(cuts, a)
	for _, r := range roots {
		if r > a && r < b {
			cuts = append(cuts, r)
		}
	}
	cuts = append(cuts, b)
	if len(cuts) == 2 && a == b {
		return signMonotonicity(deriv(a))
	}

	out := Constant
	for i := 1; i < len(cuts); i++ {
		out = out.merge(signMonotonicity(deriv(0.5 * (cuts[i-1] + cuts[i]))))
		if out == NotMonotonic {
			return NotMonotonic
		}
	}
	return out
}

// cleanRoots rounds roots to [rootPrecision] decimal places, sorts them and
// drops duplicates as well as non-finite values.
func cleanRoots(roots []float64) []float64 {
	out := roots[:0]
	for _, r := range roots {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			continue
		}
		out = append(out, Round(r, rootPrecision))
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Linear is the polynomial C0 + C1 x.
type Linear struct {
	C0, C1 float64
	// Precision is the number of decimal places of rounded results.
	Precision int
}

// Eval evaluates the polynomial at x.
func (l Linear) Eval(x float64) float64 {
	return l.C0 + l.C1*x
}

// Round evaluates the polynomial at x and rounds the result to the
// polynomial's precision.
func (l Linear) Round(x float64) float64 {
	return Round(l.Eval(x), l.Precision)
}

func (l Linear) Monotonicity() Monotonicity {
	return signMonotonicity(l.C1)
}

// Root returns the zero of the polynomial if it exists and lies within in.
// A constant polynomial has no root, even if it is zero everywhere.
func (l Linear) Root(in Interval) (float64, bool) {
	if l.C1 == 0 {
		return 0, false
	}
	r := Round(-l.C0/l.C1, rootPrecision)
	if !in.Contains(r) {
		return 0, false
	}
	return r, true
}

// Quadratic is the polynomial C0 + C1 x + C2 x².
type Quadratic struct {
	C0, C1, C2 float64
	Precision  int
}

func (q Quadratic) Eval(x float64) float64 {
	return q.C0 + x*(q.C1+x*q.C2)
}

func (q Quadratic) Round(x float64) float64 {
	return Round(q.Eval(x), q.Precision)
}

func (q Quadratic) Derivative() Linear {
	return Linear{C0: q.C1, C1: 2 * q.C2, Precision: q.Precision}
}

// Roots returns the sorted, distinct values of x for which the polynomial
// equals y. A quadratic with a zero leading coefficient is solved as a linear
// equation.
func (q Quadratic) Roots(y float64) []float64 {
	rs, n := solveQuadratic(q.C0-y, q.C1, q.C2)
	if n == 1 && q.C0-y == 0 && q.C1 == 0 && q.C2 == 0 {
		// Every x is a root; report none rather than an arbitrary one.
		return nil
	}
	return cleanRoots(rs[:n])
}

// MonotonicityOn reports the monotonicity of the polynomial over [a, b].
func (q Quadratic) MonotonicityOn(a, b float64) Monotonicity {
	d := q.Derivative()
	var roots []float64
	if r, ok := d.Root(Interval{Min: min(a, b), Max: max(a, b)}); ok {
		roots = append(roots, r)
	}
	return monotonicityOn(d.Eval, roots, a, b)
}

// Cubic is the polynomial C0 + C1 x + C2 x² + C3 x³.
type Cubic struct {
	C0, C1, C2, C3 float64
	Precision      int
}

// NewCubic returns the cubic with coefficients v, lowest order first.
func NewCubic(v Vec4, precision int) Cubic {
	return Cubic{C0: v[0], C1: v[1], C2: v[2], C3: v[3], Precision: precision}
}

// Coefficients returns the coefficients, lowest order first.
func (c Cubic) Coefficients() Vec4 {
	return Vec4{c.C0, c.C1, c.C2, c.C3}
}

func (c Cubic) Eval(x float64) float64 {
	return c.C0 + x*(c.C1+x*(c.C2+x*c.C3))
}

func (c Cubic) Round(x float64) float64 {
	return Round(c.Eval(x), c.Precision)
}

func (c Cubic) Derivative() Quadratic {
	return Quadratic{C0: c.C1, C1: 2 * c.C2, C2: 3 * c.C3, Precision: c.Precision}
}

// Degree returns the degree of the polynomial, ignoring vanishing leading
// coefficients. The zero polynomial has degree 0.
func (c Cubic) Degree() int {
	switch {
	case c.C3 != 0:
		return 3
	case c.C2 != 0:
		return 2
	case c.C1 != 0:
		return 1
	default:
		return 0
	}
}

// Roots returns the sorted, distinct values of x for which the polynomial
// equals y.
func (c Cubic) Roots(y float64) []float64 {
	if c.C0-y == 0 && c.C1 == 0 && c.C2 == 0 && c.C3 == 0 {
		return nil
	}
	rs, n := solveCubic(c.C0-y, c.C1, c.C2, c.C3)
	return cleanRoots(rs[:n])
}

// Extrema returns the parameters in the open interval (0, 1) at which the
// derivative vanishes, in increasing order. Not all of them need to be local
// extrema: a double root of the derivative is a saddle.
func (c Cubic) Extrema() []float64 {
	var out []float64
	for _, t := range c.Derivative().Roots(0) {
		if t > 0 && t < 1 {
			out = append(out, t)
		}
	}
	return out
}

// MonotonicityOn reports the monotonicity of the polynomial over [a, b].
func (c Cubic) MonotonicityOn(a, b float64) Monotonicity {
	d := c.Derivative()
	return monotonicityOn(d.Eval, d.Roots(0), a, b)
}

// Integral returns the definite integral of the polynomial over [a, b].
func (c Cubic) Integral(a, b float64) float64 {
	anti := func(x float64) float64 {
		return x * (c.C0 + x*(c.C1/2+x*(c.C2/3+x*c.C3/4)))
	}
	return anti(b) - anti(a)
}
