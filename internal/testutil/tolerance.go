package testutil

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireMatrixNearlyEqual fails t if got and want differ in shape or if any
// element pair exceeds eps (absolute tolerance).
func RequireMatrixNearlyEqual(t *testing.T, got, want mat.Matrix, eps float64) {
	t.Helper()
	gr, gc := got.Dims()
	wr, wc := want.Dims()
	if gr != wr || gc != wc {
		t.Fatalf("shape mismatch: got %dx%d, want %dx%d", gr, gc, wr, wc)
	}
	for i := range gr {
		for j := range gc {
			g, w := got.At(i, j), want.At(i, j)
			if diff := math.Abs(g - w); diff > eps {
				t.Fatalf("(%d,%d): got %v, want %v (diff %v > eps %v)", i, j, g, w, diff, eps)
			}
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireMatrixNonNegative fails t if any element of m is negative, NaN or Inf.
func RequireMatrixNonNegative(t *testing.T, m mat.Matrix) {
	t.Helper()
	r, c := m.Dims()
	for i := range r {
		for j := range c {
			v := m.At(i, j)
			if !(v >= 0) || math.IsInf(v, 0) {
				t.Fatalf("(%d,%d): got %v, want finite >= 0", i, j, v)
			}
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
