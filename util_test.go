package spline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats up to the error introduced by rounding to places
// decimal places.
func approx(places int) cmp.Option {
	return cmpopts.EquateApprox(0, epsilon(places)+1e-12)
}

type xy string

const (
	x xy = "x"
	y xy = "y"
)

func mustSegment(t testing.TB, points map[xy]Vec4, basis Basis, opts Options) *Segment[xy] {
	t.Helper()
	s, err := NewSegment(points, basis, opts)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func bezierXY(t testing.TB, xs, ys Vec4, opts Options) *Segment[xy] {
	t.Helper()
	return mustSegment(t, map[xy]Vec4{x: xs, y: ys}, Bezier, opts)
}
