package spline

import (
	"math"
	"testing"
)

func TestPoint(t *testing.T) {
	p := Point[xy]{y: 4, x: 3}
	if got, want := p.String(), "(x: 3, y: 4)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := p.Distance(Point[xy]{}); got != 5 {
		t.Errorf("got distance %v, want 5", got)
	}

	c := p.Clone()
	c[x] = 100
	if p[x] != 3 {
		t.Error("Clone shares storage")
	}
}

func TestInterval(t *testing.T) {
	in := NewInterval(3, -1)
	diff(t, Interval{-1, 3}, in)
	if !in.Contains(-1) || !in.Contains(3) || in.Contains(3.01) {
		t.Error("Contains doesn't include exactly its bounds")
	}
	if in.StrictlyOutside(3) || !in.StrictlyOutside(-1.5) {
		t.Error("StrictlyOutside doesn't exclude exactly its bounds")
	}
	if got := in.Size(); got != 4 {
		t.Errorf("got size %v, want 4", got)
	}
	diff(t, Interval{-1, 7}, in.Union(Interval{5, 7}))
	diff(t, Interval{-2, 3}, in.Extend(-2))
	if got, ok := in.Intersect(Interval{2, 10}); !ok || got != (Interval{2, 3}) {
		t.Errorf("got %v, %t", got, ok)
	}
	if _, ok := in.Intersect(Interval{4, 10}); ok {
		t.Error("disjoint intervals intersect")
	}
	if got := in.Map(1, Interval{0, 100}); got != 50 {
		t.Errorf("got %v, want 50", got)
	}
	if got := (Interval{2, 2}).Map(2, Interval{10, 20}); got != 10 {
		t.Errorf("degenerate: got %v, want 10", got)
	}
	if got, want := in.String(), "[-1, 3]"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBox(t *testing.T) {
	b := Box[xy]{x: {0, 1}, y: {-1, 1}}
	if !b.Contains(Point[xy]{x: 0.5, y: 1}) {
		t.Error("point inside isn't contained")
	}
	if b.Contains(Point[xy]{x: 0.5}) {
		t.Error("point missing an axis is contained")
	}
	if b.Contains(Point[xy]{x: 2, y: 0}) {
		t.Error("point outside is contained")
	}
	diff(t, Box[xy]{x: {0, 3}, y: {-1, 1}, "z": {5, 5}}, b.Union(Box[xy]{x: {2, 3}, "z": {5, 5}}))
	diff(t, Box[xy]{x: {0, 1}}, Box[xy](nil).Union(Box[xy]{x: {0, 1}}))
	if got, want := b.String(), "{x: [0, 1], y: [-1, 1]}"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSortedKeys(t *testing.T) {
	diff(t, []float64{-1, 0, 0.5, math.Inf(1)}, sortedKeys(map[float64]bool{0.5: true, math.Inf(1): true, -1: true, 0: false}))
}
