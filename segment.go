package spline

import (
	"fmt"
	"math"

	"golang.org/x/exp/maps"
)

// Segment is a cubic curve over t ∈ [0, 1], with one cubic polynomial per
// axis. Segments are immutable; all derived data is computed on construction.
type Segment[A Axis] struct {
	axes            []A
	precision       map[A]int
	lengthPrecision int
	basis           Basis
	opts            Options

	points map[A]Vec4
	polys  map[A]Cubic
	mono   map[A]Monotonicity
	// breaks holds, per axis, the parameters in (0, 1) at which the
	// derivative vanishes. They delimit the axis's monotonic ranges.
	breaks map[A][]float64

	extrema []Extreme[A]
	bbox    Box[A]
	lut     *LUT[A]

	cache *solveCache[A]
}

// NewSegment builds a segment from four control values per axis, combined
// with a basis matrix. Control values are rounded to their axis's precision
// before use.
//
// NewSegment returns a *ValidationError for empty or non-finite input and
// invalid options.
func NewSegment[A Axis](points map[A]Vec4, basis Basis, opts Options) (*Segment[A], error) {
	if len(points) == 0 {
		return nil, invalid("points", "no axes")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	for _, row := range basis {
		if !Vec4(row).IsFinite() {
			return nil, invalid("basis", "non-finite coefficient in %v", Vec4(row))
		}
	}

	s := &Segment[A]{
		axes:      sortedKeys(points),
		precision: make(map[A]int, len(points)),
		basis:     basis,
		opts:      opts,
		points:    make(map[A]Vec4, len(points)),
		polys:     make(map[A]Cubic, len(points)),
		mono:      make(map[A]Monotonicity, len(points)),
		breaks:    make(map[A][]float64, len(points)),
		cache:     newSolveCache[A](),
	}
	for _, a := range s.axes {
		raw := points[a]
		if !raw.IsFinite() {
			return nil, invalid("points", "axis %q: non-finite control value in %v", string(a), raw)
		}
		p := precisionOf(opts, a)
		s.precision[a] = p
		s.lengthPrecision = max(s.lengthPrecision, p)

		var pts Vec4
		for i, v := range raw {
			pts[i] = Round(v, p)
		}
		s.points[a] = pts
		poly := NewCubic(snapCoefficients(basis.Coefficients(pts), pts), p)
		s.polys[a] = poly
		s.breaks[a] = poly.Extrema()
		s.mono[a] = poly.MonotonicityOn(0, 1)
	}

	cands := s.candidates()
	s.extrema = collapseExtrema(s.axes, cands)
	s.bbox = boundingBox(s.axes, s.extrema)
	s.lut = buildLUT(s, cands)
	for i := range s.extrema {
		s.extrema[i].Length = Round(s.lut.lengthAt(s.extrema[i].T), s.lengthPrecision)
	}

	Logger().Debug("built segment",
		"axes", len(s.axes),
		"extrema", len(s.extrema),
		"samples", s.lut.Len(),
		"length", s.Length())
	return s, nil
}

// snapCoefficients zeroes coefficients that only differ from zero by
// floating point noise of the basis product.
func snapCoefficients(c, pts Vec4) Vec4 {
	scale := 1.0
	for _, v := range pts {
		scale = max(scale, math.Abs(v))
	}
	for i, v := range c {
		if math.Abs(v) <= 1e-12*scale {
			c[i] = 0
		}
	}
	return c
}

// Axes returns the axes of the segment in ascending order.
func (s *Segment[A]) Axes() []A {
	return append([]A(nil), s.axes...)
}

// Precision returns the number of decimal places of values on axis.
func (s *Segment[A]) Precision(axis A) int {
	return s.precision[axis]
}

// Basis returns the basis the segment was built with.
func (s *Segment[A]) Basis() Basis {
	return s.basis
}

// Options returns the options the segment was built with.
func (s *Segment[A]) Options() Options {
	return s.opts
}

// ControlPoints returns the rounded control values per axis.
func (s *Segment[A]) ControlPoints() map[A]Vec4 {
	return maps.Clone(s.points)
}

// Polynomial returns the polynomial of axis.
func (s *Segment[A]) Polynomial(axis A) (Cubic, bool) {
	p, ok := s.polys[axis]
	return p, ok
}

// Monotonicity returns the monotonicity of each axis over the whole segment.
func (s *Segment[A]) Monotonicity() map[A]Monotonicity {
	return maps.Clone(s.mono)
}

// BoundingBox returns the smallest box containing the segment, with bounds
// rounded to each axis's precision.
func (s *Segment[A]) BoundingBox() Box[A] {
	return s.bbox.Clone()
}

// Extrema returns the segment's extremes in increasing parameter order. The
// first and last extremes are always at t = 0 and t = 1.
func (s *Segment[A]) Extrema() []Extreme[A] {
	return cloneExtrema(s.extrema)
}

// Length returns the arc length of the segment as measured by its lookup
// table.
func (s *Segment[A]) Length() float64 {
	return s.lut.Length()
}

// LUT returns the segment's lookup table.
func (s *Segment[A]) LUT() *LUT[A] {
	return s.lut
}

// EvaluateAt returns the point at parameter t, rounded per axis. It returns
// ErrParameterOutOfRange if t isn't in [0, 1].
func (s *Segment[A]) EvaluateAt(t float64) (Point[A], error) {
	if err := checkParam(t); err != nil {
		return nil, err
	}
	return s.pointAt(t), nil
}

// DerivativeAt returns the derivative with respect to t at parameter t,
// rounded per axis. It returns ErrParameterOutOfRange if t isn't in [0, 1].
func (s *Segment[A]) DerivativeAt(t float64) (Point[A], error) {
	if err := checkParam(t); err != nil {
		return nil, err
	}
	out := make(Point[A], len(s.axes))
	for _, a := range s.axes {
		out[a] = s.polys[a].Derivative().Round(t)
	}
	return out, nil
}

func checkParam(t float64) error {
	if !(t >= 0 && t <= 1) {
		return fmt.Errorf("t = %g: %w", t, ErrParameterOutOfRange)
	}
	return nil
}

func (s *Segment[A]) pointAt(t float64) Point[A] {
	out := make(Point[A], len(s.axes))
	for _, a := range s.axes {
		out[a] = s.polys[a].Round(t)
	}
	return out
}

func (s *Segment[A]) rawPointAt(t float64) Point[A] {
	out := make(Point[A], len(s.axes))
	for _, a := range s.axes {
		out[a] = s.polys[a].Eval(t)
	}
	return out
}

// Remap returns a new segment whose values on axis are linearly mapped from
// the segment's bounding interval onto to. Other axes are unchanged.
//
// The mapping is applied to the polynomial and converted back into control
// values of the segment's basis, so it works for bases whose control values
// aren't all points, such as [Hermite].
func (s *Segment[A]) Remap(axis A, to Interval) (*Segment[A], error) {
	poly, ok := s.polys[axis]
	if !ok {
		return nil, invalid("axis", "segment has no axis %q", string(axis))
	}
	from := s.bbox[axis]
	var scale float64
	if size := from.Size(); size != 0 {
		scale = to.Size() / size
	}
	offset := from.Map(0, to)
	c := poly.Coefficients()
	mapped := Vec4{c[0]*scale + offset, c[1] * scale, c[2] * scale, c[3] * scale}
	pts, err := Mat4(s.basis).Solve(mapped)
	if err != nil {
		return nil, fmt.Errorf("remapping axis %q: %w", string(axis), err)
	}
	points := maps.Clone(s.points)
	points[axis] = pts
	return NewSegment(points, s.basis, s.opts)
}
