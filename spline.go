package spline

import (
	"math"
	"slices"
	"sort"

	"golang.org/x/exp/maps"
)

// Spline is a sequence of segments forming one curve. The spline's parameter
// t ∈ [0, 1] is divided evenly among its segments. Like segments, splines
// are immutable.
type Spline[A Axis] struct {
	segments        []*Segment[A]
	axes            []A
	precision       map[A]int
	lengthPrecision int

	// offsets[i] is the unrounded length of the segments before i.
	offsets []float64
	total   float64

	extrema []Extreme[A]
	bbox    Box[A]
	mono    map[A]Monotonicity

	cache *solveCache[A]
}

// NewSpline joins segments into a spline. All segments must have the same
// axes and the same precision per axis. Segments aren't required to be
// continuous.
//
// NewSpline returns ErrEmptySpline if there are no segments, and a
// *ValidationError for nil or mismatched segments.
func NewSpline[A Axis](segments ...*Segment[A]) (*Spline[A], error) {
	if len(segments) == 0 {
		return nil, ErrEmptySpline
	}
	for i, seg := range segments {
		if seg == nil {
			return nil, invalid("segments", "segment %d is nil", i)
		}
	}
	first := segments[0]
	for i, seg := range segments[1:] {
		if !slices.Equal(seg.axes, first.axes) {
			return nil, invalid("segments", "segment %d has axes %v, want %v", i+1, seg.axes, first.axes)
		}
		if !maps.Equal(seg.precision, first.precision) {
			return nil, invalid("segments", "segment %d has precision %v, want %v", i+1, seg.precision, first.precision)
		}
	}

	sp := &Spline[A]{
		segments:        slices.Clone(segments),
		axes:            slices.Clone(first.axes),
		precision:       maps.Clone(first.precision),
		lengthPrecision: first.lengthPrecision,
		offsets:         make([]float64, len(segments)),
		mono:            make(map[A]Monotonicity, len(first.axes)),
		cache:           newSolveCache[A](),
	}
	for i, seg := range segments {
		sp.offsets[i] = sp.total
		sp.total += seg.lut.total()
		sp.bbox = sp.bbox.Union(seg.bbox)
		for _, a := range sp.axes {
			if i == 0 {
				sp.mono[a] = seg.mono[a]
				continue
			}
			// A gap between segments is a step of its own.
			step := signMonotonicity(seg.polys[a].Round(0) - segments[i-1].polys[a].Round(1))
			sp.mono[a] = sp.mono[a].merge(step).merge(seg.mono[a])
		}
	}
	sp.extrema = collapseExtrema(sp.axes, sp.mergeExtrema())

	Logger().Debug("built spline",
		"segments", len(sp.segments),
		"extrema", len(sp.extrema),
		"length", sp.Length())
	return sp, nil
}

// mergeExtrema returns the extrema of all segments, reparameterized to the
// spline. At each joint, only the end of the earlier segment is kept.
func (sp *Spline[A]) mergeExtrema() []Extreme[A] {
	n := float64(len(sp.segments))
	var out []Extreme[A]
	for i, seg := range sp.segments {
		for j, e := range seg.extrema {
			if i > 0 && j == 0 {
				continue
			}
			out = append(out, Extreme[A]{
				T:      Round((float64(i)+e.T)/n, rootPrecision),
				Point:  e.Point.Clone(),
				Length: Round(sp.offsets[i]+seg.lut.lengthAt(e.T), sp.lengthPrecision),
			})
		}
	}
	return out
}

// NewBezierSpline builds a spline of cubic Bézier segments from flattened
// control points. Every axis must have 3n+1 values, for n ≥ 1: segment i
// uses values 3i through 3i+3, so consecutive segments share an end point.
func NewBezierSpline[A Axis](points map[A][]float64, opts Options) (*Spline[A], error) {
	if len(points) == 0 {
		return nil, invalid("points", "no axes")
	}
	axes := sortedKeys(points)
	count := len(points[axes[0]])
	for _, a := range axes {
		vs := points[a]
		if len(vs) < 4 || (len(vs)-1)%3 != 0 {
			return nil, invalid("points", "axis %q: got %d values, want 3n+1 with n ≥ 1", string(a), len(vs))
		}
		if len(vs) != count {
			return nil, invalid("points", "axis %q: got %d values, other axes have %d", string(a), len(vs), count)
		}
	}

	segments := make([]*Segment[A], (count-1)/3)
	for i := range segments {
		pts := make(map[A]Vec4, len(axes))
		for _, a := range axes {
			pts[a] = Vec4(points[a][3*i : 3*i+4])
		}
		seg, err := NewSegment(pts, Bezier, opts)
		if err != nil {
			return nil, err
		}
		segments[i] = seg
	}
	return NewSpline(segments...)
}

// Append returns a new spline with seg added to the end.
func (sp *Spline[A]) Append(seg *Segment[A]) (*Spline[A], error) {
	segments := make([]*Segment[A], 0, len(sp.segments)+1)
	segments = append(segments, sp.segments...)
	segments = append(segments, seg)
	return NewSpline(segments...)
}

// Len returns the number of segments.
func (sp *Spline[A]) Len() int {
	return len(sp.segments)
}

// Segments returns the segments of the spline.
func (sp *Spline[A]) Segments() []*Segment[A] {
	return slices.Clone(sp.segments)
}

// Axes returns the axes of the spline in ascending order.
func (sp *Spline[A]) Axes() []A {
	return slices.Clone(sp.axes)
}

// Precision returns the number of decimal places of values on axis.
func (sp *Spline[A]) Precision(axis A) int {
	return sp.precision[axis]
}

// BoundingBox returns the union of the bounding boxes of all segments.
func (sp *Spline[A]) BoundingBox() Box[A] {
	return sp.bbox.Clone()
}

// Extrema returns the extremes of the whole spline, with parameters and
// lengths relative to the spline.
func (sp *Spline[A]) Extrema() []Extreme[A] {
	return cloneExtrema(sp.extrema)
}

// Monotonicity returns the monotonicity of each axis over the whole spline.
// An axis is only increasing or decreasing if it is so in every segment and
// across every joint, not counting segments in which it is constant.
func (sp *Spline[A]) Monotonicity() map[A]Monotonicity {
	return maps.Clone(sp.mono)
}

// Length returns the sum of the lengths of all segments.
func (sp *Spline[A]) Length() float64 {
	return Round(sp.total, sp.lengthPrecision)
}

// locate maps the spline parameter t onto a segment and its local
// parameter.
func (sp *Spline[A]) locate(t float64) (*Segment[A], float64) {
	n := len(sp.segments)
	scaled := t * float64(n)
	i := min(int(scaled), n-1)
	return sp.segments[i], scaled - float64(i)
}

// EvaluateAt returns the point at parameter t, rounded per axis. It returns
// ErrParameterOutOfRange if t isn't in [0, 1].
func (sp *Spline[A]) EvaluateAt(t float64) (Point[A], error) {
	if err := checkParam(t); err != nil {
		return nil, err
	}
	seg, local := sp.locate(t)
	return seg.pointAt(local), nil
}

// Solve is like [Segment.Solve], over all segments of the spline. Segments
// are tried in order; the first match wins.
func (sp *Spline[A]) Solve(axis A, value float64, within Box[A]) (Point[A], bool) {
	p, ok := sp.precision[axis]
	if !ok || math.IsNaN(value) {
		return nil, false
	}
	v := Round(value, p)
	if !sp.bbox[axis].Contains(v) {
		return nil, false
	}
	window := resolveWindow(sp.axes, axis, sp.bbox, within)
	return sp.cache.lookup(sp.axes, axis, v, window, func() (Point[A], bool) {
		for _, seg := range sp.segments {
			if !seg.bbox[axis].Contains(v) || !overlaps(seg.bbox, window) {
				continue
			}
			if pt, ok := seg.Solve(axis, v, window); ok {
				return pt, true
			}
		}
		return nil, false
	})
}

// overlaps reports whether every interval of window intersects the matching
// interval of bbox.
func overlaps[A Axis](bbox, window Box[A]) bool {
	for a, in := range window {
		if _, ok := bbox[a].Intersect(in); !ok {
			return false
		}
	}
	return true
}

// SolveAtLength returns the point at the given arc length from the start of
// the spline. It reports false if length, rounded, is negative or exceeds
// the length of the spline.
func (sp *Spline[A]) SolveAtLength(length float64) (Point[A], bool) {
	if math.IsNaN(length) {
		return nil, false
	}
	l := Round(length, sp.lengthPrecision)
	total := sp.Length()
	if l < 0 || l > total {
		return nil, false
	}
	if l == total {
		return sp.segments[len(sp.segments)-1].pointAt(1), true
	}
	// The last segment starting at or before l.
	i := sort.Search(len(sp.offsets), func(i int) bool { return sp.offsets[i] > l }) - 1
	seg := sp.segments[i]
	return seg.pointAt(seg.lut.ParamAtLength(l - sp.offsets[i])), true
}
