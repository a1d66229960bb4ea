package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 16000, 1.0, 32)
	if len(s) != 32 {
		t.Fatalf("len = %d, want 32", len(s))
	}
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	if math.Abs(s[4]-1) > 1e-12 {
		t.Fatalf("s[4] = %v, want 1 (quarter period)", s[4])
	}
}

func TestDeterministicNoiseSeeds(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	c := DeterministicNoise(43, 1.0, 64)

	same := true
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] > 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
		if a[i] != c[i] {
			same = false
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestRamp(t *testing.T) {
	RequireSliceNearlyEqual(t, Ramp(4), []float64{1, 2, 3, 4}, 0)
	if len(Ramp(0)) != 0 {
		t.Fatal("Ramp(0) should be empty")
	}
}

func TestImpulseAndDC(t *testing.T) {
	RequireSliceNearlyEqual(t, Impulse(4, 1), []float64{0, 1, 0, 0}, 0)
	RequireSliceNearlyEqual(t, Impulse(3, 10), []float64{0, 0, 0}, 0)
	RequireSliceNearlyEqual(t, DC(0.5, 2), []float64{0.5, 0.5}, 0)
}
