package spline

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wave is a hump followed by a dip, joined at (30, 0).
func wave(t testing.TB) *Spline[xy] {
	t.Helper()
	sp, err := NewBezierSpline(map[xy][]float64{
		x: {0, 10, 20, 30, 40, 50, 60},
		y: {0, 10, 10, 0, -10, -10, 0},
	}, DefaultOptions())
	require.NoError(t, err)
	return sp
}

func TestSplineDerived(t *testing.T) {
	sp := wave(t)
	require.Equal(t, 2, sp.Len())
	require.Equal(t, []xy{x, y}, sp.Axes())
	require.Equal(t, 2, sp.Precision(y))

	want := []Extreme[xy]{
		{T: 0, Point: Point[xy]{x: 0, y: 0}, Length: 0, Axes: []xy{x, y}},
		{T: 0.25, Point: Point[xy]{x: 15, y: 7.5}, Length: 17.22, Axes: []xy{y}},
		{T: 0.75, Point: Point[xy]{x: 45, y: -7.5}, Length: 51.65, Axes: []xy{y}},
		{T: 1, Point: Point[xy]{x: 60, y: 0}, Length: 68.87, Axes: []xy{x, y}},
	}
	diff(t, want, sp.Extrema())
	diff(t, Box[xy]{x: {0, 60}, y: {-7.5, 7.5}}, sp.BoundingBox())
	diff(t, map[xy]Monotonicity{x: Increasing, y: NotMonotonic}, sp.Monotonicity())
	assert.Equal(t, 68.87, sp.Length())
}

func TestSplineSingleSegment(t *testing.T) {
	seg := loopSegment(t)
	sp, err := NewSpline(seg)
	require.NoError(t, err)
	diff(t, seg.Extrema(), sp.Extrema())
	diff(t, seg.BoundingBox(), sp.BoundingBox())
	assert.Equal(t, seg.Length(), sp.Length())

	for i := range 11 {
		tt := float64(i) / 10
		want, err := seg.EvaluateAt(tt)
		require.NoError(t, err)
		got, err := sp.EvaluateAt(tt)
		require.NoError(t, err)
		diff(t, want, got)
	}
}

func TestSplineEvaluateAt(t *testing.T) {
	sp := wave(t)
	for _, tt := range []struct {
		t    float64
		want Point[xy]
	}{
		{0, Point[xy]{x: 0, y: 0}},
		{0.25, Point[xy]{x: 15, y: 7.5}},
		{0.5, Point[xy]{x: 30, y: 0}},
		{0.75, Point[xy]{x: 45, y: -7.5}},
		{1, Point[xy]{x: 60, y: 0}},
	} {
		got, err := sp.EvaluateAt(tt.t)
		require.NoError(t, err)
		diff(t, tt.want, got)
	}
	for _, tt := range []float64{-0.5, 1.01, math.NaN()} {
		_, err := sp.EvaluateAt(tt)
		assert.ErrorIs(t, err, ErrParameterOutOfRange)
	}
}

func TestSplineSolve(t *testing.T) {
	sp := wave(t)
	tests := []struct {
		axis   xy
		value  float64
		within Box[xy]
		want   Point[xy]
	}{
		{y, 5, nil, Point[xy]{x: 6.34, y: 5}},
		{y, 5, Box[xy]{x: {20, 30}}, Point[xy]{x: 23.66, y: 5}},
		{y, -5, nil, Point[xy]{x: 36.34, y: -5}},
		{x, 45, nil, Point[xy]{x: 45, y: -7.5}},
		{x, 30, nil, Point[xy]{x: 30, y: 0}},
	}
	for _, tt := range tests {
		got, ok := sp.Solve(tt.axis, tt.value, tt.within)
		if !ok {
			t.Errorf("Solve(%s, %v, %v): no solution", tt.axis, tt.value, tt.within)
			continue
		}
		diff(t, tt.want, got)
	}

	_, ok := sp.Solve(y, 5, Box[xy]{x: {30, 60}})
	assert.False(t, ok)
	_, ok = sp.Solve(x, 61, nil)
	assert.False(t, ok)
	_, ok = sp.Solve("z", 0, nil)
	assert.False(t, ok)
}

func TestSplineSolveMemoized(t *testing.T) {
	sp := wave(t)
	first, ok := sp.Solve(y, -5, nil)
	require.True(t, ok)
	first[x] = 0
	second, ok := sp.Solve(y, -5.001, nil)
	require.True(t, ok)
	diff(t, Point[xy]{x: 36.34, y: -5}, second)
	assert.Equal(t, 1, sp.cache.len())
}

func TestSplineSolveAtLength(t *testing.T) {
	sp := wave(t)
	start, _ := sp.EvaluateAt(0)
	end, _ := sp.EvaluateAt(1)

	got, ok := sp.SolveAtLength(0)
	require.True(t, ok)
	diff(t, start, got)

	got, ok = sp.SolveAtLength(sp.Length())
	require.True(t, ok)
	diff(t, end, got)

	got, ok = sp.SolveAtLength(51.65)
	require.True(t, ok)
	diff(t, Point[xy]{x: 45, y: -7.5}, got, approx(1))

	got, ok = sp.SolveAtLength(40)
	require.True(t, ok)
	assert.Greater(t, got[x], 30.0)

	for _, l := range []float64{-0.01, 68.88, math.NaN()} {
		_, ok := sp.SolveAtLength(l)
		assert.False(t, ok, "length %v", l)
	}
}

func TestSplineAppend(t *testing.T) {
	sp := wave(t)
	seg := bezierXY(t, Vec4{60, 70, 80, 90}, Vec4{0, 0, 0, 30}, DefaultOptions())
	longer, err := sp.Append(seg)
	require.NoError(t, err)
	assert.Equal(t, 3, longer.Len())
	assert.Equal(t, 2, sp.Len())
	diff(t, Box[xy]{x: {0, 90}, y: {-7.5, 30}}, longer.BoundingBox())
	diff(t, Box[xy]{x: {0, 60}, y: {-7.5, 7.5}}, sp.BoundingBox())
	assert.Len(t, longer.Segments(), 3)
}

func TestSplineMonotonicityGaps(t *testing.T) {
	rising := bezierXY(t, Vec4{0, 1, 2, 3}, Vec4{0, 0, 0, 0}, DefaultOptions())
	tests := []struct {
		name string
		next Vec4
		want Monotonicity
	}{
		{"continuous", Vec4{3, 4, 5, 6}, Increasing},
		{"step up", Vec4{5, 6, 7, 8}, Increasing},
		{"step down", Vec4{1, 2, 3, 4}, NotMonotonic},
		{"constant after step down", Vec4{1, 1, 1, 1}, NotMonotonic},
		{"constant at joint", Vec4{3, 3, 3, 3}, Increasing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := bezierXY(t, tt.next, Vec4{0, 0, 0, 0}, DefaultOptions())
			sp, err := NewSpline(rising, next)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sp.Monotonicity()[x])
			assert.Equal(t, Constant, sp.Monotonicity()[y])
		})
	}

	// Sampling agrees with the reported direction across the gap.
	next := bezierXY(t, Vec4{1, 2, 3, 4}, Vec4{0, 0, 0, 0}, DefaultOptions())
	sp, err := NewSpline(rising, next)
	require.NoError(t, err)
	before, _ := sp.EvaluateAt(0.49)
	after, _ := sp.EvaluateAt(0.5)
	assert.Greater(t, before[x], after[x])
}

func TestSplineErrors(t *testing.T) {
	_, err := NewSpline[xy]()
	assert.ErrorIs(t, err, ErrEmptySpline)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewSpline[xy](nil)
	assert.ErrorIs(t, err, ErrValidation)

	full := loopSegment(t)
	onlyX := mustSegment(t, map[xy]Vec4{x: {0, 1, 2, 3}}, Bezier, DefaultOptions())
	_, err = NewSpline(full, onlyX)
	assert.ErrorIs(t, err, ErrValidation)

	precise := bezierXY(t, Vec4{0, 1, 2, 3}, Vec4{0, 1, 2, 3}, DefaultOptions().WithPrecision("y", 4))
	_, err = NewSpline(full, precise)
	assert.ErrorIs(t, err, ErrValidation)

	var verr *ValidationError
	for _, points := range []map[xy][]float64{
		{},
		{x: {0, 1, 2}, y: {0, 1, 2}},
		{x: {0, 1, 2, 3, 4}, y: {0, 1, 2, 3, 4}},
		{x: {0, 1, 2, 3}, y: {0, 1, 2, 3, 4, 5, 6}},
	} {
		_, err := NewBezierSpline(points, DefaultOptions())
		if !errors.As(err, &verr) {
			t.Errorf("%v: got %v, want *ValidationError", points, err)
		}
	}

	bad := DefaultOptions()
	bad.DefaultPrecision = -1
	_, err = NewBezierSpline(map[xy][]float64{x: {0, 1, 2, 3}}, bad)
	assert.ErrorIs(t, err, ErrValidation)
}
