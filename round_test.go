package spline

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		v      float64
		places int
		want   float64
	}{
		{1.23456, 3, 1.235},
		{1.005, 2, 1.01},
		{-1.005, 2, -1.01},
		{0.285, 2, 0.29},
		{2.5, 0, 3},
		{-2.5, 0, -3},
		{-13.5625, 2, -13.56},
		{17.2999999999, 2, 17.3},
		{42, 0, 42},
		{1, rootPrecision, 1},
		{0.5, rootPrecision, 0.5},
		{0.1234567890125, rootPrecision, 0.123456789013},
		{12.5, 8, 12.5},
		{1.23, 10, 1.23},
		{1.0000005, 6, 1.000001},
		{-654321.5, 0, -654322},
	}
	for _, tt := range tests {
		if got := Round(tt.v, tt.places); got != tt.want {
			t.Errorf("Round(%v, %d) = %v, want %v", tt.v, tt.places, got, tt.want)
		}
	}
}

func TestRoundNegativeZero(t *testing.T) {
	for _, v := range []float64{math.Copysign(0, -1), -0.001, -1e-9} {
		got := Round(v, 2)
		if got != 0 || math.Signbit(got) {
			t.Errorf("Round(%v, 2) = %v, want +0", v, got)
		}
	}
}

func TestRoundNonFinite(t *testing.T) {
	if got := Round(math.NaN(), 2); !math.IsNaN(got) {
		t.Errorf("got %v, want NaN", got)
	}
	if got := Round(math.Inf(-1), 2); !math.IsInf(got, -1) {
		t.Errorf("got %v, want -Inf", got)
	}
	if got := Round(1e300, 15); got != 1e300 {
		t.Errorf("got %v, want 1e300", got)
	}
}

func TestRoundIdempotent(t *testing.T) {
	values := []float64{
		math.Pi, -math.E, 1.0 / 3, 0.1 + 0.2, 0.5, 1, 12.5,
		1234.5678, -654321.123456789, 999999.99, 1e6,
	}
	for places := range MaxPrecision + 1 {
		for _, v := range values {
			r := Round(v, places)
			if rr := Round(r, places); rr != r {
				t.Errorf("Round(Round(%v, %d)) = %v, want %v", v, places, rr, r)
			}
			if !equalAt(v, r, places) {
				t.Errorf("%v and %v differ at %d places", v, r, places)
			}
			if d := math.Abs(v - r); d > epsilon(places)+2*ulp(v) {
				t.Errorf("Round(%v, %d) = %v is off by %v", v, places, r, d)
			}
		}
	}
}
