package spline

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/zeebo/blake3"
)

// rootTolerance is how far outside of a monotonic range a closed-form root
// may lie and still be attributed to that range.
const rootTolerance = 1e-9

// solveKey identifies a query. Windows are compared by fingerprint so that
// the key stays comparable.
type solveKey[A Axis] struct {
	axis   A
	value  float64
	window [32]byte
}

// solveCache memoizes solver results for the lifetime of its owner. Misses
// are remembered as well as hits.
type solveCache[A Axis] struct {
	mu      sync.RWMutex
	entries map[solveKey[A]]option[Point[A]]
}

func newSolveCache[A Axis]() *solveCache[A] {
	return &solveCache[A]{entries: make(map[solveKey[A]]option[Point[A]])}
}

func (c *solveCache[A]) get(key solveKey[A]) (option[Point[A]], bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res, ok := c.entries[key]
	return res, ok
}

func (c *solveCache[A]) put(key solveKey[A], res option[Point[A]]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = res
}

func (c *solveCache[A]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// lookup runs solve unless the result for axis, value and window is
// already known. The returned point is owned by the caller.
func (c *solveCache[A]) lookup(
	axes []A,
	axis A,
	value float64,
	window Box[A],
	solve func() (Point[A], bool),
) (Point[A], bool) {
	key := solveKey[A]{axis: axis, value: value, window: fingerprint(axes, window)}
	res, ok := c.get(key)
	if !ok {
		if pt, found := solve(); found {
			res.set(pt)
		}
		c.put(key, res)
	}
	if !res.isSet {
		return nil, false
	}
	return res.value.Clone(), true
}

// resolveWindow returns the interval every axis but axis has to fall into.
// Axes missing from within default to their bounding interval.
func resolveWindow[A Axis](axes []A, axis A, bbox, within Box[A]) Box[A] {
	out := make(Box[A], len(axes))
	for _, a := range axes {
		if a == axis {
			continue
		}
		if in, ok := within[a]; ok {
			out[a] = in
		} else {
			out[a] = bbox[a]
		}
	}
	return out
}

// fingerprint hashes the canonical encoding of window: for each axis in
// order, its name followed by the bits of its bounds.
func fingerprint[A Axis](axes []A, window Box[A]) [32]byte {
	buf := make([]byte, 0, len(axes)*32)
	for _, a := range axes {
		in, ok := window[a]
		if !ok {
			continue
		}
		buf = binary.LittleEndian.AppendUint64(buf, uint64(len(a)))
		buf = append(buf, string(a)...)
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(in.Min))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(in.Max))
	}
	return blake3.Sum256(buf)
}

func inWindow[A Axis](p Point[A], axis A, window Box[A]) bool {
	for a, in := range window {
		if a == axis {
			continue
		}
		if !in.Contains(p[a]) {
			return false
		}
	}
	return true
}

// Solve finds the point of the segment whose value on axis is value, with
// every other axis inside its interval in within. Axes missing from within
// may take any value. value is rounded to the axis's precision first, and
// the result is rounded per axis, with the queried axis set to the rounded
// value exactly.
//
// Where several points qualify, the one with the smallest parameter wins.
// Solve reports false if value lies outside of the segment's bounding
// interval on axis, if axis is unknown, or if no qualifying point lies in the
// window.
//
// Results are memoized; Solve is safe for concurrent use.
func (s *Segment[A]) Solve(axis A, value float64, within Box[A]) (Point[A], bool) {
	p, ok := s.precision[axis]
	if !ok || math.IsNaN(value) {
		return nil, false
	}
	v := Round(value, p)
	if !s.bbox[axis].Contains(v) {
		return nil, false
	}
	window := resolveWindow(s.axes, axis, s.bbox, within)
	return s.cache.lookup(s.axes, axis, v, window, func() (Point[A], bool) {
		return s.solve(axis, v, window)
	})
}

// solve walks the monotonic ranges of axis in order and returns the first
// point matching v that lies in window.
func (s *Segment[A]) solve(axis A, v float64, window Box[A]) (Point[A], bool) {
	poly := s.polys[axis]
	cuts := make([]float64, 0, len(s.breaks[axis])+2)
	cuts = append(cuts, 0)
	cuts = append(cuts, s.breaks[axis]...)
	cuts = append(cuts, 1)

	for i := 1; i < len(cuts); i++ {
		a, b := cuts[i-1], cuts[i]
		if !NewInterval(poly.Round(a), poly.Round(b)).Contains(v) {
			continue
		}
		if poly.Eval(a) == poly.Eval(b) {
			// Every parameter of a flat range matches; pick from the
			// lookup table.
			if pt, ok := s.solveFlat(axis, v, a, b, window); ok {
				return pt, true
			}
			continue
		}
		t := invert(poly, v, a, b)
		pt := s.pointAt(t)
		pt[axis] = v
		if inWindow(pt, axis, window) {
			return pt, true
		}
	}
	return nil, false
}

func (s *Segment[A]) solveFlat(axis A, v, a, b float64, window Box[A]) (Point[A], bool) {
	for _, sample := range s.lut.samples {
		if sample.T < a || sample.T > b {
			continue
		}
		pt := sample.Point.Clone()
		pt[axis] = v
		if inWindow(pt, axis, window) {
			return pt, true
		}
	}
	return nil, false
}

// invert returns the parameter in [a, b] at which poly, monotonic on that
// range, is closest to v. Closed-form roots are preferred; the bracketing
// solver covers roots lost to floating point error, and the nearer bound
// covers values that only lie in the range after rounding.
func invert(poly Cubic, v, a, b float64) float64 {
	for _, r := range poly.Roots(v) {
		if r >= a-rootTolerance && r <= b+rootTolerance {
			return min(max(r, a), b)
		}
	}

	f := func(t float64) float64 { return poly.Eval(t) - v }
	if t := bracketZero(f, Interval{Min: a, Max: b}, 1e-12); t.isSet {
		return t.value
	}
	ya, yb := f(a), f(b)
	if math.Abs(ya) <= math.Abs(yb) {
		return a
	}
	return b
}

// SolveAtLength returns the point at the given arc length from the start of
// the segment, measured along the lookup table. length is rounded like
// [Segment.Length]; SolveAtLength reports false if it is negative or
// exceeds the length of the segment.
func (s *Segment[A]) SolveAtLength(length float64) (Point[A], bool) {
	if math.IsNaN(length) {
		return nil, false
	}
	l := Round(length, s.lengthPrecision)
	total := s.Length()
	if l < 0 || l > total {
		return nil, false
	}
	var t float64
	if l == total {
		t = 1
	} else {
		t = s.lut.ParamAtLength(l)
	}
	return s.pointAt(t), true
}
