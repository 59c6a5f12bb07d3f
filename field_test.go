package chromix

import (
	"math"
	"testing"
)

func TestFalloffString(t *testing.T) {
	tests := []struct {
		falloff Falloff
		want    string
	}{
		{FalloffQuintic, "quintic"},
		{FalloffPolynomial, "polynomial"},
		{Falloff(99), "Falloff(99)"},
	}

	for _, tt := range tests {
		if got := tt.falloff.String(); got != tt.want {
			t.Errorf("Falloff(%d).String() = %q, want %q", int(tt.falloff), got, tt.want)
		}
	}
}

func TestParseFalloff(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Falloff
		wantErr bool
	}{
		{"quintic", "quintic", FalloffQuintic, false},
		{"empty defaults to quintic", "", FalloffQuintic, false},
		{"polynomial", "polynomial", FalloffPolynomial, false},
		{"wyvill alias", "wyvill", FalloffPolynomial, false},
		{"unknown", "gaussian", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFalloff(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseFalloff(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFalloff(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFalloff(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestInfluenceAtCenter(t *testing.T) {
	for _, f := range []Falloff{FalloffQuintic, FalloffPolynomial} {
		if got := f.Influence(0, 30); got != 1 {
			t.Errorf("%v.Influence(0, 30) = %v, want 1", f, got)
		}
	}
}

func TestInfluenceCutoffExact(t *testing.T) {
	radii := []float64{1, 10, 30, 250}

	for _, f := range []Falloff{FalloffQuintic, FalloffPolynomial} {
		for _, r := range radii {
			cutoff := f.Cutoff(r)

			if got := f.Influence(cutoff, r); got != 0 {
				t.Errorf("%v.Influence(cutoff=%v, r=%v) = %v, want exactly 0", f, cutoff, r, got)
			}
			if got := f.Influence(cutoff*2, r); got != 0 {
				t.Errorf("%v.Influence(beyond cutoff, r=%v) = %v, want 0", f, r, got)
			}
			if got := f.Influence(cutoff*0.99, r); got <= 0 {
				t.Errorf("%v.Influence(just inside cutoff, r=%v) = %v, want > 0", f, r, got)
			}
		}
	}
}

func TestInfluenceMonotonic(t *testing.T) {
	const radius = 30.0

	for _, f := range []Falloff{FalloffQuintic, FalloffPolynomial} {
		cutoff := f.Cutoff(radius)
		prev := math.Inf(1)
		for i := 0; i <= 200; i++ {
			d := cutoff * float64(i) / 200
			v := f.Influence(d, radius)
			if v < 0 || v > 1 {
				t.Fatalf("%v.Influence(%v, %v) = %v out of [0, 1]", f, d, radius, v)
			}
			if v > prev {
				t.Fatalf("%v.Influence not monotonic at d=%v: %v > %v", f, d, v, prev)
			}
			prev = v
		}
	}
}

func TestInfluenceContinuousAtCutoff(t *testing.T) {
	const radius = 30.0

	for _, f := range []Falloff{FalloffQuintic, FalloffPolynomial} {
		cutoff := f.Cutoff(radius)
		inside := f.Influence(cutoff-1e-6, radius)
		if inside > 1e-3 {
			t.Errorf("%v.Influence just inside cutoff = %v, want near 0 (continuous)", f, inside)
		}
	}
}

func TestInfluenceDegenerateRadius(t *testing.T) {
	// A non-positive radius must not divide by zero: the distance scale
	// factor degrades to 1.0 and the result stays finite in [0, 1].
	for _, f := range []Falloff{FalloffQuintic, FalloffPolynomial} {
		for _, radius := range []float64{0, -5} {
			for _, d := range []float64{0, 0.1, 0.5, 2} {
				v := f.Influence(d, radius)
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("%v.Influence(%v, %v) = %v, want finite", f, d, radius, v)
				}
				if v < 0 || v > 1 {
					t.Errorf("%v.Influence(%v, %v) = %v out of [0, 1]", f, d, radius, v)
				}
			}
		}
	}
}

func TestQuinticCutoffIsThreeRadii(t *testing.T) {
	if got := FalloffQuintic.Cutoff(30); got != 90 {
		t.Errorf("quintic Cutoff(30) = %v, want 90", got)
	}
}
