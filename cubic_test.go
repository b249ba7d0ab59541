package swp

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/ungerik/go3d/float64/vec3"
)

var square = []vec3.T{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}

func TestBezierWeights(t *testing.T) {
	for i := range 11 {
		ts := float64(i) / 10
		w := Bezier.Weights(ts)
		if sum := w[0] + w[1] + w[2] + w[3]; math.Abs(sum-1) > 1e-12 {
			t.Errorf("weights at t=%g sum to %g, want 1", ts, sum)
		}
	}
	diff(t, [4]float64{1, 0, 0, 0}, Bezier.Weights(0))
	diff(t, [4]float64{0, 0, 0, 1}, Bezier.Weights(1))
	diff(t, [4]float64{0.125, 0.375, 0.375, 0.125}, Bezier.Weights(0.5), cmpopts.EquateApprox(0, 1e-12))
}

func TestBSplineWeights(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, [4]float64{1.0 / 6, 4.0 / 6, 1.0 / 6, 0}, BSpline.Weights(0), approx)
	diff(t, [4]float64{0, 1.0 / 6, 4.0 / 6, 1.0 / 6}, BSpline.Weights(1), approx)
	// ⅙(1-t), ⅙(3t³-6t²+4), ⅙(-3t³+3t²+3t+1), ⅙t³
	diff(t, [4]float64{0.5 / 6, 2.875 / 6, 2.875 / 6, 0.125 / 6}, BSpline.Weights(0.5), approx)
}

func TestBSplinePiecesJoin(t *testing.T) {
	ctrl := []vec3.T{{0, 0, 0}, {1, 2, 0}, {3, 3, 1}, {4, 0, 2}, {6, 1, 0}}
	end := BSpline.Eval(ctrl[0], ctrl[1], ctrl[2], ctrl[3], 1)
	start := BSpline.Eval(ctrl[1], ctrl[2], ctrl[3], ctrl[4], 0)
	diff(t, end, start, vecComparer)
}

func TestSegments(t *testing.T) {
	for n, want := range []int{0, 0, 0, 0, 1, 2, 3} {
		if got := Segments(n); got != want {
			t.Errorf("Segments(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestEvaluateSampleCount(t *testing.T) {
	tests := []struct {
		n, steps int
		want     int
	}{
		{3, 10, 0},
		{4, 10, 10},
		// Windows overlap by three points, so five points form two pieces.
		{5, 10, 20},
		{7, 3, 12},
	}
	for _, tt := range tests {
		ctrl := make([]vec3.T, tt.n)
		for i := range ctrl {
			ctrl[i] = vec3.T{float64(i), float64(i * i), 0}
		}
		for _, basis := range []Basis{Bezier, BSpline} {
			got := slices.Collect(Evaluate(basis, tt.steps, ctrl))
			if len(got) != tt.want {
				t.Errorf("%v with %d points and %d steps: got %d samples, want %d", basis, tt.n, tt.steps, len(got), tt.want)
			}
		}
	}
}

func TestEvaluateBezier(t *testing.T) {
	got := slices.Collect(Evaluate(Bezier, 10, square))
	if len(got) != 10 {
		t.Fatalf("got %d samples, want 10", len(got))
	}
	diff(t, square[0], got[0], vecComparer)
	// t = 0.5
	diff(t, vec3.T{0.75, 0.5, 0}, got[5], vecComparer)
	for i, p := range got {
		if p[2] != 0 {
			t.Errorf("sample %d has Z = %g, want 0", i, p[2])
		}
	}
}

func TestEvaluateNoDuplicateJoints(t *testing.T) {
	ctrl := []vec3.T{{0, 0, 0}, {1, 1, 0}, {2, 0, 0}, {3, 1, 0}, {4, 0, 0}}
	got := slices.Collect(Evaluate(Bezier, 4, ctrl))
	// The second piece starts at its own first control point.
	diff(t, ctrl[1], got[4], vecComparer)
	for i := 1; i < len(got); i++ {
		if approxEqual(got[i-1], got[i], 1e-12) {
			t.Errorf("samples %d and %d coincide at %v", i-1, i, got[i])
		}
	}
}

func TestEvaluateStopsEarly(t *testing.T) {
	var n int
	for range Evaluate(BSpline, 100, square) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("got %d samples, want 3", n)
	}
}
