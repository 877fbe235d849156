package spline

import "testing"

func candidatesOf(ts []float64, xs, ys []float64) []Extreme[xy] {
	out := make([]Extreme[xy], len(ts))
	for i, t := range ts {
		out[i] = Extreme[xy]{T: t, Point: Point[xy]{x: xs[i], y: ys[i]}}
	}
	return out
}

func TestCollapseExtrema(t *testing.T) {
	tests := []struct {
		name   string
		ts     []float64
		xs, ys []float64
		want   []float64
		axes   [][]xy
	}{
		{
			name: "peak",
			ts:   []float64{0, 0.5, 1},
			xs:   []float64{0, 1, 2},
			ys:   []float64{0, 3, 0},
			want: []float64{0, 0.5, 1},
			axes: [][]xy{{x, y}, {y}, {x, y}},
		},
		{
			name: "saddle",
			ts:   []float64{0, 0.5, 1},
			xs:   []float64{0, 1, 2},
			ys:   []float64{0, 1, 2},
			want: []float64{0, 1},
			axes: [][]xy{{x, y}, {x, y}},
		},
		{
			// Of two equal values, the later one is kept.
			name: "plateau",
			ts:   []float64{0, 0.3, 0.6, 1},
			xs:   []float64{0, 1, 2, 3},
			ys:   []float64{0, 5, 5, 0},
			want: []float64{0, 0.6, 1},
			axes: [][]xy{{x, y}, {y}, {x, y}},
		},
		{
			// Compared against the last kept extreme, not the dropped
			// candidate before it.
			name: "chain",
			ts:   []float64{0, 0.2, 0.4, 0.6, 1},
			xs:   []float64{0, 1, 2, 3, 4},
			ys:   []float64{0, 1, 4, 2, 0},
			want: []float64{0, 0.4, 1},
			axes: [][]xy{{x, y}, {y}, {x, y}},
		},
		{
			name: "both axes",
			ts:   []float64{0, 0.5, 1},
			xs:   []float64{0, 2, 1},
			ys:   []float64{0, -1, 0},
			want: []float64{0, 0.5, 1},
			axes: [][]xy{{x, y}, {x, y}, {x, y}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collapseExtrema([]xy{x, y}, candidatesOf(tt.ts, tt.xs, tt.ys))
			var ts []float64
			var axes [][]xy
			for _, e := range got {
				ts = append(ts, e.T)
				axes = append(axes, e.Axes)
			}
			diff(t, tt.want, ts)
			diff(t, tt.axes, axes)
		})
	}
}

func TestBoundingBoxOfExtrema(t *testing.T) {
	cands := candidatesOf([]float64{0, 0.5, 1}, []float64{1, -2, 0}, []float64{0, 3, 2})
	diff(t, Box[xy]{x: {-2, 1}, y: {0, 3}}, boundingBox([]xy{x, y}, cands))
}
