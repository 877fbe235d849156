package spline

import (
	"math"
	"slices"
	"sort"

	"github.com/montanaflynn/stats"
)

// minInterval is the smallest parameter interval adaptive sampling will
// bisect.
const minInterval = 1e-9

// Sample is an entry of a [LUT].
type Sample[A Axis] struct {
	T float64
	// Point is the rounded point at T.
	Point Point[A]
	// Length is the rounded arc length from t = 0 to T.
	Length float64
}

// LUT is a lookup table of points along a segment, ordered by parameter, with
// the cumulative straight-line distance between consecutive samples. Every
// extremum candidate of the segment is a sample, so the table is monotonic
// between consecutive samples on every axis.
type LUT[A Axis] struct {
	samples []Sample[A]
	// lengths holds the unrounded cumulative lengths.
	lengths []float64
	// discrepancy holds, per interval between samples, the largest deviation
	// of linear interpolation from the curve, measured as the difference of
	// integrals.
	discrepancy     []float64
	lengthPrecision int
}

// SampleStats summarizes the interpolation discrepancy of a lookup table's
// intervals.
type SampleStats struct {
	Max    float64
	Mean   float64
	StdDev float64
}

// buildLUT samples s at LUTResolution equal steps plus the parameters of
// cands, then refines adaptively if MaxError is positive.
func buildLUT[A Axis](s *Segment[A], cands []Extreme[A]) *LUT[A] {
	n := s.opts.LUTResolution
	ts := make([]float64, 0, n+1+len(cands))
	for i := range n + 1 {
		ts = append(ts, Round(float64(i)/float64(n), rootPrecision))
	}
	for _, c := range cands {
		ts = append(ts, c.T)
	}
	slices.Sort(ts)
	ts = slices.Compact(ts)

	disc := make([]float64, len(ts)-1)
	for i := range disc {
		disc[i] = s.discrepancy(ts[i], ts[i+1])
	}
	if s.opts.MaxError > 0 {
		ts, disc = s.refine(ts, disc)
	}

	lut := &LUT[A]{
		samples:         make([]Sample[A], len(ts)),
		lengths:         make([]float64, len(ts)),
		discrepancy:     disc,
		lengthPrecision: s.lengthPrecision,
	}
	var prev Point[A]
	var total float64
	for i, t := range ts {
		raw := s.rawPointAt(t)
		if i > 0 {
			total += distance(s.axes, prev, raw)
		}
		prev = raw
		lut.lengths[i] = total
		lut.samples[i] = Sample[A]{
			T:      t,
			Point:  s.pointAt(t),
			Length: Round(total, s.lengthPrecision),
		}
	}
	return lut
}

// discrepancy returns the largest difference, over all axes, between the
// integral of the axis polynomial over [a, b] and the integral of the line
// interpolating its values at a and b.
func (s *Segment[A]) discrepancy(a, b float64) float64 {
	var worst float64
	for _, axis := range s.axes {
		p := s.polys[axis]
		trapezoid := (b - a) * 0.5 * (p.Eval(a) + p.Eval(b))
		worst = max(worst, math.Abs(p.Integral(a, b)-trapezoid))
	}
	return worst
}

// refine bisects the interval with the largest discrepancy until all
// discrepancies are below MaxError or MaxIterations bisections have been
// done.
func (s *Segment[A]) refine(ts, disc []float64) ([]float64, []float64) {
	maxErr := s.opts.MaxError
	iterations := 0
	for ; iterations < s.opts.MaxIterations; iterations++ {
		worst := 0
		for i, d := range disc {
			if d > disc[worst] {
				worst = i
			}
		}
		if disc[worst] < maxErr {
			break
		}
		a, b := ts[worst], ts[worst+1]
		if b-a < minInterval {
			// Can't do better; stop considering it.
			disc[worst] = 0
			continue
		}
		mid := 0.5 * (a + b)
		ts = slices.Insert(ts, worst+1, mid)
		disc[worst] = s.discrepancy(a, mid)
		disc = slices.Insert(disc, worst+1, s.discrepancy(mid, b))
	}
	if worst := slices.Max(disc); worst >= maxErr {
		Logger().Warn("adaptive sampling stopped before reaching error bound",
			"iterations", iterations,
			"max_error", maxErr,
			"discrepancy", worst)
	} else {
		Logger().Debug("adaptive sampling done",
			"iterations", iterations,
			"samples", len(ts))
	}
	return ts, disc
}

// Len returns the number of samples.
func (l *LUT[A]) Len() int {
	return len(l.samples)
}

// Samples returns a copy of the samples.
func (l *LUT[A]) Samples() []Sample[A] {
	out := make([]Sample[A], len(l.samples))
	for i, s := range l.samples {
		s.Point = s.Point.Clone()
		out[i] = s
	}
	return out
}

// Length returns the total length, rounded.
func (l *LUT[A]) Length() float64 {
	return Round(l.total(), l.lengthPrecision)
}

func (l *LUT[A]) total() float64 {
	return l.lengths[len(l.lengths)-1]
}

// LengthAt returns the arc length from t = 0 to t, interpolated linearly
// between samples and rounded. t is clamped to [0, 1].
func (l *LUT[A]) LengthAt(t float64) float64 {
	return Round(l.lengthAt(t), l.lengthPrecision)
}

func (l *LUT[A]) lengthAt(t float64) float64 {
	n := len(l.samples)
	if t <= l.samples[0].T {
		return 0
	}
	if t >= l.samples[n-1].T {
		return l.total()
	}
	i := sort.Search(n, func(i int) bool { return l.samples[i].T >= t })
	t0, t1 := l.samples[i-1].T, l.samples[i].T
	return lerp(l.lengths[i-1], l.lengths[i], (t-t0)/(t1-t0))
}

// ParamAtLength returns the parameter at which the arc length reaches
// length, interpolated linearly between samples. length is clamped to
// [0, total length].
func (l *LUT[A]) ParamAtLength(length float64) float64 {
	if length <= 0 {
		return 0
	}
	if length >= l.total() {
		return 1
	}
	i := sort.SearchFloat64s(l.lengths, length)
	// lengths[i-1] < length <= lengths[i]
	l0, l1 := l.lengths[i-1], l.lengths[i]
	t0, t1 := l.samples[i-1].T, l.samples[i].T
	if l1 == l0 {
		return t1
	}
	return lerp(t0, t1, (length-l0)/(l1-l0))
}

// Discrepancy returns statistics of the per-interval interpolation
// discrepancy, the quantity bounded by adaptive sampling.
func (l *LUT[A]) Discrepancy() SampleStats {
	data := stats.Float64Data(l.discrepancy)
	var out SampleStats
	// The data is never empty, so none of these fail.
	out.Max, _ = stats.Max(data)
	out.Mean, _ = stats.Mean(data)
	out.StdDev, _ = stats.StandardDeviation(data)
	return out
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
