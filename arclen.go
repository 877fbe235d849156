package spline

import "math"

// maxArclenDepth bounds the recursive subdivision of Arclen.
const maxArclenDepth = 20

// Arclen returns the arc length of the segment, computed by integrating the
// speed |C′(t)| with Legendre-Gauss quadrature. Intervals are subdivided
// until the 8 and 16 point rules agree to within accuracy. The result is
// rounded like [Segment.Length].
//
// Unlike Length, which sums straight lines between lookup table samples,
// Arclen converges on the true length as accuracy shrinks.
func (s *Segment[A]) Arclen(accuracy float64) float64 {
	if !(accuracy > 0) {
		accuracy = 1e-9
	}
	// The speed of a cusp or a stationary point isn't smooth; every such
	// parameter is an extremum candidate.
	var cuts []float64
	for _, e := range s.candidates() {
		cuts = append(cuts, e.T)
	}
	var sum float64
	per := accuracy / float64(len(cuts)-1)
	for i := 1; i < len(cuts); i++ {
		sum += s.arclen(cuts[i-1], cuts[i], per, 0)
	}
	return Round(sum, s.lengthPrecision)
}

func (s *Segment[A]) arclen(a, b, accuracy float64, depth int) float64 {
	est8 := s.quadrature(gaussLegendreCoeffs8Half[:], a, b)
	est16 := s.quadrature(gaussLegendreCoeffs16Half[:], a, b)
	if math.Abs(est16-est8) < accuracy || depth >= maxArclenDepth {
		return est16
	}
	mid := 0.5 * (a + b)
	return s.arclen(a, mid, accuracy*0.5, depth+1) + s.arclen(mid, b, accuracy*0.5, depth+1)
}

func (s *Segment[A]) quadrature(coeffs [][2]float64, a, b float64) float64 {
	half := 0.5 * (b - a)
	mid := 0.5 * (a + b)
	var sum float64
	for _, coeff := range coeffs {
		wi, xi := coeff[0], coeff[1]
		sum += wi * (s.speed(mid+half*xi) + s.speed(mid-half*xi))
	}
	return sum * half
}

// speed returns |C′(t)|.
func (s *Segment[A]) speed(t float64) float64 {
	var sum float64
	for _, a := range s.axes {
		d := s.polys[a].Derivative().Eval(t)
		sum += d * d
	}
	return math.Sqrt(sum)
}
