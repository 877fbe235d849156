package spline

import "slices"

// Extreme is a parameter at which at least one axis attains a local minimum
// or maximum.
type Extreme[A Axis] struct {
	T float64
	// Point is the rounded point at T.
	Point Point[A]
	// Length is the arc length from the start of the curve to T.
	Length float64
	// Axes lists the axes that are extremal at T, in ascending order.
	Axes []A
}

// candidates returns t = 0, t = 1 and every parameter at which an axis's
// derivative vanishes, in increasing order, evaluated and rounded.
func (s *Segment[A]) candidates() []Extreme[A] {
	seen := map[float64]struct{}{0: {}, 1: {}}
	for _, a := range s.axes {
		for _, t := range s.breaks[a] {
			seen[t] = struct{}{}
		}
	}
	ts := sortedKeys(seen)
	out := make([]Extreme[A], len(ts))
	for i, t := range ts {
		out[i] = Extreme[A]{T: t, Point: s.pointAt(t)}
	}
	return out
}

// collapseExtrema drops the candidates that aren't extremes. The first and
// last candidates are always kept. An interior candidate is kept if, on at
// least one axis, its value lies strictly outside the range spanned by the
// last kept candidate and the next candidate; those axes become its Axes.
// This rejects saddles, where a derivative vanishes without changing sign,
// and points that only became stationary through rounding.
func collapseExtrema[A Axis](axes []A, cands []Extreme[A]) []Extreme[A] {
	if len(cands) < 2 {
		return cloneExtrema(cands)
	}
	kept := make([]Extreme[A], 0, len(cands))
	kept = append(kept, cands[0])
	for i := 1; i < len(cands)-1; i++ {
		prev, cur, next := kept[len(kept)-1], cands[i], cands[i+1]
		var on []A
		for _, a := range axes {
			if NewInterval(prev.Point[a], next.Point[a]).StrictlyOutside(cur.Point[a]) {
				on = append(on, a)
			}
		}
		if len(on) > 0 {
			cur.Axes = on
			kept = append(kept, cur)
		}
	}
	kept = append(kept, cands[len(cands)-1])

	n := len(kept)
	kept[0].Axes = changedAxes(axes, kept[0].Point, kept[1].Point)
	kept[n-1].Axes = changedAxes(axes, kept[n-1].Point, kept[n-2].Point)
	return kept
}

// changedAxes returns the axes on which p and o differ. An endpoint is
// extremal on every axis that moves away from it.
func changedAxes[A Axis](axes []A, p, o Point[A]) []A {
	var out []A
	for _, a := range axes {
		if p[a] != o[a] {
			out = append(out, a)
		}
	}
	return out
}

func boundingBox[A Axis](axes []A, extrema []Extreme[A]) Box[A] {
	box := make(Box[A], len(axes))
	for i, e := range extrema {
		for _, a := range axes {
			v := e.Point[a]
			if i == 0 {
				box[a] = Interval{Min: v, Max: v}
			} else {
				box[a] = box[a].Extend(v)
			}
		}
	}
	return box
}

func cloneExtrema[A Axis](extrema []Extreme[A]) []Extreme[A] {
	out := make([]Extreme[A], len(extrema))
	for i, e := range extrema {
		e.Point = e.Point.Clone()
		e.Axes = slices.Clone(e.Axes)
		out[i] = e
	}
	return out
}
