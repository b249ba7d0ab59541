package swp

import (
	"fmt"
	"iter"

	"github.com/ungerik/go3d/float64/vec3"
)

// Basis selects the blending functions of a piecewise cubic curve.
type Basis int

const (
	// Bezier is the cubic Bernstein basis.
	Bezier Basis = iota
	// BSpline is the uniform cubic B-spline basis.
	BSpline
)

func (b Basis) String() string {
	switch b {
	case Bezier:
		return "Bezier"
	case BSpline:
		return "BSpline"
	default:
		return fmt.Sprintf("Basis(%d)", int(b))
	}
}

// Weights returns the weights of the four control points of a cubic piece
// at parameter t.
//
// For [Bezier] these are the Bernstein polynomials
//
//	(1-t)³, 3(1-t)²t, 3(1-t)t², t³
//
// and for [BSpline] they are
//
//	⅙(1-t), ⅙(3t³-6t²+4), ⅙(-3t³+3t²+3t+1), ⅙t³
//
// Note that the first B-spline weight is linear, not cubic, in (1-t). Both
// forms agree at t = 0 and t = 1, so pieces still join without gaps.
func (b Basis) Weights(t float64) [4]float64 {
	switch b {
	case Bezier:
		mt := 1 - t
		return [4]float64{
			mt * mt * mt,
			3 * mt * mt * t,
			3 * mt * t * t,
			t * t * t,
		}
	case BSpline:
		const s = 1.0 / 6.0
		t2 := t * t
		t3 := t2 * t
		return [4]float64{
			s * (1 - t),
			s * (3*t3 - 6*t2 + 4),
			s * (-3*t3 + 3*t2 + 3*t + 1),
			s * t3,
		}
	default:
		panic(fmt.Sprintf("unhandled basis %v", b))
	}
}

// Eval evaluates the cubic piece defined by the four control points at
// parameter t.
func (b Basis) Eval(p0, p1, p2, p3 vec3.T, t float64) vec3.T {
	w := b.Weights(t)
	var out vec3.T
	for i := range out {
		out[i] = w[0]*p0[i] + w[1]*p1[i] + w[2]*p2[i] + w[3]*p3[i]
	}
	return out
}

// Segments returns the number of cubic pieces described by n control
// points. Every run of four consecutive control points forms one piece, so
// neighbouring pieces share three control points.
func Segments(n int) int {
	if n < 4 {
		return 0
	}
	return n - 3
}

// Evaluate samples the piecewise cubic curve described by ctrl.
//
// Each piece is sampled at steps uniformly spaced parameters t ∈ [0, 1).
// Because t = 1 is never sampled, the joint between two pieces is emitted
// exactly once, as the first sample of the later piece. The sequence has
// Segments(len(ctrl)) * steps elements and is empty if there are fewer than
// four control points.
func Evaluate(basis Basis, steps int, ctrl []vec3.T) iter.Seq[vec3.T] {
	return func(yield func(vec3.T) bool) {
		for i := range Segments(len(ctrl)) {
			p0, p1, p2, p3 := ctrl[i], ctrl[i+1], ctrl[i+2], ctrl[i+3]
			for k := range steps {
				t := float64(k) / float64(steps)
				if !yield(basis.Eval(p0, p1, p2, p3, t)) {
					return
				}
			}
		}
	}
}
