package spline

import "math"

// rootPrecision is the number of decimal places polynomial roots are rounded
// to before deduplication.
const rootPrecision = 12

var pow10tab = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8,
	1e9, 1e10, 1e11, 1e12, 1e13, 1e14, 1e15,
}

func pow10(n int) float64 {
	if n >= 0 && n < len(pow10tab) {
		return pow10tab[n]
	}
	return math.Pow(10, float64(n))
}

// Round rounds v to the given number of decimal places, with halves rounded
// away from zero. Every coordinate, parameter root and length stored or
// returned by this package passes through Round.
//
// Negative zero is normalized to zero so that rounded values can be compared
// and used as map keys.
func Round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	scale := pow10(places)
	scaled := v * scale
	if math.Abs(scaled) >= 1<<52 {
		// Already more precise than float64 can represent at this scale.
		return v
	}
	r := math.Round(scaled)
	// v*scale may land a few ulps below a half (1.005*100 =
	// 100.49999999999999). Past 2⁴⁸ an ulp is too coarse to tell a half from
	// representation error.
	if d := math.Abs(scaled - r); d != 0 && math.Abs(scaled) < 1<<48 {
		if math.Abs(d-0.5) <= 2*ulp(scaled) {
			r = math.Trunc(scaled) + math.Copysign(1, scaled)
		}
	}
	r /= scale
	if r == 0 {
		return 0
	}
	return r
}

// ulp returns the distance from |v| to the next larger float64.
func ulp(v float64) float64 {
	v = math.Abs(v)
	return math.Nextafter(v, math.Inf(1)) - v
}

// equalAt reports whether a and b are equal after rounding to places.
func equalAt(a, b float64, places int) bool {
	return Round(a, places) == Round(b, places)
}

// epsilon returns half a unit in the last kept decimal place, the largest
// error Round can introduce.
func epsilon(places int) float64 {
	return 0.5 / pow10(places)
}
