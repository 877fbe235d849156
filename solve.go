package spline

import "math"

// solveQuadratic returns the real roots of c0 + c1 x + c2 x² = 0 in ascending
// order. The second return value is the number of roots.
//
// A vanishing or tiny c2 degrades to the linear equation. When every
// coefficient is zero, all x satisfy the equation and a single 0 is returned.
func solveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) || math.IsNaN(sc0) || math.IsNaN(sc1) {
		root := -c0 / c1
		switch {
		case !math.IsInf(root, 0) && !math.IsNaN(root):
			return [2]float64{root}, 1
		case c0 == 0 && c1 == 0:
			return [2]float64{0}, 1
		default:
			return [2]float64{}, 0
		}
	}
	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// sc1² overflowed: x² + sc1 x ≈ 0 gives one root, Vieta the other.
		root1 = -sc1
	} else {
		if arg < 0.0 {
			return [2]float64{}, 0
		} else if arg == 0.0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// Avoids cancellation, see https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if math.IsInf(root2, 0) || math.IsNaN(root2) {
		return [2]float64{root1}, 1
	}
	if root2 > root1 {
		return [2]float64{root1, root2}, 2
	}
	return [2]float64{root2, root1}, 2
}

// solveCubic returns the real roots of c0 + c1 x + c2 x² + c3 x³ = 0.
//
// The cubic is normalized and depressed; the sign of the discriminant picks
// between Cardano's formula (a single real root) and the trigonometric form
// (three real roots). A vanishing c3 degrades to [solveQuadratic].
//
// See Jim Blinn, "How to Solve a Cubic Equation", and
// https://momentsingraphics.de/CubicRoots.html
func solveCubic(c0, c1, c2, c3 float64) ([3]float64, int) {
	c3Recip := 1.0 / c3
	scaledC2 := c2 * (1.0 / 3.0 * c3Recip)
	scaledC1 := c1 * (1.0 / 3.0 * c3Recip)
	scaledC0 := c0 * c3Recip
	if math.IsInf(scaledC0, 0) || math.IsInf(scaledC1, 0) || math.IsInf(scaledC2, 0) ||
		math.IsNaN(scaledC0) || math.IsNaN(scaledC1) || math.IsNaN(scaledC2) {
		roots, n := solveQuadratic(c0, c1, c2)
		return [3]float64{roots[0], roots[1]}, n
	}
	c0, c1, c2 = scaledC0, scaledC1, scaledC2
	d0 := math.FMA(-c2, c2, c1)
	d1 := math.FMA(-c1, c2, c0)
	d2 := c2*c0 - c1*c1
	disc := 4.0*d0*d2 - d1*d1
	// Depressed cubic x³ + 3 d0 x + de = 0.
	de := math.FMA(-2.0*c2, d0, d1)
	switch {
	case disc < 0.0:
		sq := math.Sqrt(-0.25 * disc)
		r := -0.5 * de
		t1 := math.Cbrt(r+sq) + math.Cbrt(r-sq)
		return [3]float64{t1 - c2}, 1
	case disc == 0.0:
		t1 := math.Copysign(math.Sqrt(-d0), de)
		return [3]float64{t1 - c2, -2.0*t1 - c2}, 2
	default:
		th := math.Atan2(math.Sqrt(disc), -de) * (1.0 / 3.0)
		thSin, thCos := math.Sincos(th)
		ss3 := thSin * math.Sqrt(3.0)
		r0 := thCos
		r1 := 0.5 * (-thCos + ss3)
		r2 := 0.5 * (-thCos - ss3)
		t := 2.0 * math.Sqrt(-d0)
		return [3]float64{
			math.FMA(t, r0, -c2),
			math.FMA(t, r1, -c2),
			math.FMA(t, r2, -c2),
		}, 3
	}
}

// bracketZero finds a zero crossing of f on in with the ITP method. f may be
// increasing or decreasing; it reports false if f doesn't change sign on in.
// The result is within epsilon of the crossing when f is monotonic on in.
//
// The method's constants are n0 = 1, k1 = 0.2/|in| and k2 = 2.
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
func bracketZero(f func(float64) float64, in Interval, epsilon float64) option[float64] {
	var out option[float64]
	a, b := in.Min, in.Max
	ya, yb := f(a), f(b)
	switch {
	case ya == 0:
		out.set(a)
		return out
	case yb == 0:
		out.set(b)
		return out
	case math.Signbit(ya) == math.Signbit(yb) || math.IsNaN(ya) || math.IsNaN(yb):
		return out
	}
	// Iterate on an increasing function.
	sign := 1.0
	if ya > 0 {
		sign = -1
		ya, yb = -ya, -yb
	}

	k1 := 0.2 / (b - a)
	n := 1 + int(max(math.Ceil(math.Log2((b-a)/epsilon))-1, 0))
	window := epsilon * float64(uint64(1)<<n)
	for b-a > 2*epsilon {
		mid := 0.5 * (a + b)
		r := window - 0.5*(b-a)
		// Interpolate, truncate towards the midpoint, project into the
		// minmax interval.
		xf := (yb*a - ya*b) / (yb - ya)
		sigma := mid - xf
		delta := k1 * (b - a) * (b - a)
		xt := mid
		if delta <= math.Abs(sigma) {
			xt = xf + math.Copysign(delta, sigma)
		}
		x := project(xt, mid, r, sigma)
		y := sign * f(x)
		switch {
		case y > 0:
			b, yb = x, y
		case y < 0:
			a, ya = x, y
		default:
			out.set(x)
			return out
		}
		window *= 0.5
	}
	out.set(0.5 * (a + b))
	return out
}

// project moves xt into the interval of radius r around mid.
func project(xt, mid, r, sigma float64) float64 {
	if math.Abs(xt-mid) <= r {
		return xt
	}
	return mid - math.Copysign(r, sigma)
}

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}

// Legendre-Gauss abscissae and weights on [-1, 1], positive half only; the
// integrands are evaluated symmetrically. Adapted from
// <https://pomax.github.io/bezierinfo/legendre-gauss.html>

var gaussLegendreCoeffs8Half = [...][2]float64{
	{0.3626837833783620, 0.1834346424956498},
	{0.3137066458778873, 0.5255324099163290},
	{0.2223810344533745, 0.7966664774136267},
	{0.1012285362903763, 0.9602898564975363},
}

var gaussLegendreCoeffs16Half = [...][2]float64{
	{0.1894506104550685, 0.0950125098376374},
	{0.1826034150449236, 0.2816035507792589},
	{0.1691565193950025, 0.4580167776572274},
	{0.1495959888165767, 0.6178762444026438},
	{0.1246289712555339, 0.7554044083550030},
	{0.0951585116824928, 0.8656312023878318},
	{0.0622535239386479, 0.9445750230732326},
	{0.0271524594117541, 0.9894009349916499},
}
