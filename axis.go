package spline

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
)

// Axis is the constraint for axis identifiers. Callers typically declare a
// string type with a few constants:
//
//	type Channel string
//
//	const (
//		Hue   Channel = "hue"
//		Shade Channel = "shade"
//	)
type Axis interface {
	~string
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// Point maps each axis of a curve to a coordinate.
type Point[A Axis] map[A]float64

func (p Point[A]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, a := range sortedKeys(p) {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %g", string(a), p[a])
	}
	sb.WriteByte(')')
	return sb.String()
}

// Clone returns a copy of p.
func (p Point[A]) Clone() Point[A] {
	return maps.Clone(p)
}

// Distance returns the euclidean distance between p and o, over the axes of
// p.
func (p Point[A]) Distance(o Point[A]) float64 {
	return distance(sortedKeys(p), p, o)
}

func distance[A Axis](axes []A, p, o Point[A]) float64 {
	var sum float64
	for _, a := range axes {
		d := o[a] - p[a]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Interval is the closed range [Min, Max].
type Interval struct {
	Min float64
	Max float64
}

// NewInterval returns the interval spanned by a and b, in either order.
func NewInterval(a, b float64) Interval {
	return Interval{Min: min(a, b), Max: max(a, b)}
}

func (in Interval) String() string {
	return fmt.Sprintf("[%g, %g]", in.Min, in.Max)
}

// Contains reports whether v lies in the interval, bounds included.
func (in Interval) Contains(v float64) bool {
	return v >= in.Min && v <= in.Max
}

// StrictlyOutside reports whether v lies outside the interval, bounds
// excluded.
func (in Interval) StrictlyOutside(v float64) bool {
	return v < in.Min || v > in.Max
}

// Size returns Max − Min.
func (in Interval) Size() float64 {
	return in.Max - in.Min
}

// Union returns the smallest interval containing in and o.
func (in Interval) Union(o Interval) Interval {
	return Interval{Min: min(in.Min, o.Min), Max: max(in.Max, o.Max)}
}

// Extend returns the smallest interval containing in and v.
func (in Interval) Extend(v float64) Interval {
	return Interval{Min: min(in.Min, v), Max: max(in.Max, v)}
}

// Intersect returns the overlap of in and o, and false if there is none.
func (in Interval) Intersect(o Interval) (Interval, bool) {
	out := Interval{Min: max(in.Min, o.Min), Max: min(in.Max, o.Max)}
	return out, out.Min <= out.Max
}

// Map maps v from in onto o, linearly. A degenerate in maps everything onto
// o.Min.
func (in Interval) Map(v float64, o Interval) float64 {
	size := in.Size()
	if size == 0 {
		return o.Min
	}
	return o.Min + (v-in.Min)/size*o.Size()
}

// Box is an axis-aligned bounding box, one interval per axis.
type Box[A Axis] map[A]Interval

func (b Box[A]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, a := range sortedKeys(b) {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %s", string(a), b[a])
	}
	sb.WriteByte('}')
	return sb.String()
}

// Clone returns a copy of b.
func (b Box[A]) Clone() Box[A] {
	return maps.Clone(b)
}

// Contains reports whether every axis of b contains the coordinate of p.
// Axes missing from p aren't contained.
func (b Box[A]) Contains(p Point[A]) bool {
	for a, in := range b {
		v, ok := p[a]
		if !ok || !in.Contains(v) {
			return false
		}
	}
	return true
}

// Union returns the smallest box containing b and o. Axes present in only
// one of the boxes are copied.
func (b Box[A]) Union(o Box[A]) Box[A] {
	out := b.Clone()
	if out == nil {
		out = make(Box[A], len(o))
	}
	for a, in := range o {
		if cur, ok := out[a]; ok {
			out[a] = cur.Union(in)
		} else {
			out[a] = in
		}
	}
	return out
}
