package swp

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// degenerateEpsilon is the length below which a cross product is considered
// to have collapsed.
const degenerateEpsilon = 1e-9

// Rotation is a 3×3 rotation matrix, stored as its three columns.
//
// Applying a rotation to a vector v computes
//
//	Cols[0]*v.x + Cols[1]*v.y + Cols[2]*v.z
type Rotation struct {
	Cols [3]vec3.T
}

// IdentityRotation is the rotation that leaves every vector unchanged.
var IdentityRotation = Rotation{Cols: [3]vec3.T{vec3.UnitX, vec3.UnitY, vec3.UnitZ}}

// RotationY creates a rotation of th radians about the positive Y axis.
//
// The rotation is right-handed: a positive angle rotates +Z into +X.
func RotationY(th float64) Rotation {
	sin, cos := math.Sincos(th)
	return Rotation{Cols: [3]vec3.T{
		{cos, 0, -sin},
		{0, 1, 0},
		{sin, 0, cos},
	}}
}

// FaceTowards creates a rotation that maps the local Z axis onto dir and
// keeps the local Y axis as close to up as possible.
//
// The columns are x = normalize(up × dir), y = normalize(dir × x) and
// z = normalize(dir). up must not be parallel to dir.
func FaceTowards(dir, up vec3.T) Rotation {
	z := dir.Normalized()
	x := cross(up, z)
	y := cross(z, x)
	return Rotation{Cols: [3]vec3.T{x, y, z}}
}

// Apply returns the rotated vector.
func (r Rotation) Apply(v vec3.T) vec3.T {
	var out vec3.T
	for i := range out {
		out[i] = r.Cols[0][i]*v[0] + r.Cols[1][i]*v[1] + r.Cols[2][i]*v[2]
	}
	return out
}

// Transpose returns the transposed matrix. For a rotation this is also its
// inverse.
func (r Rotation) Transpose() Rotation {
	var out Rotation
	for i := range 3 {
		for j := range 3 {
			out.Cols[i][j] = r.Cols[j][i]
		}
	}
	return out
}

// Mul returns the composition r * o, which applies o first.
func (r Rotation) Mul(o Rotation) Rotation {
	return Rotation{Cols: [3]vec3.T{
		r.Apply(o.Cols[0]),
		r.Apply(o.Cols[1]),
		r.Apply(o.Cols[2]),
	}}
}

// initialBinormal returns an arbitrary unit vector that is, for the inputs
// we care about, not parallel to the tangent t. It negates t's Y component.
//
// This is not parallel to t unless t lies in the XZ plane or on the Y axis,
// in which case the result is t or -t. We report that case instead of
// correcting it.
func initialBinormal(t vec3.T) vec3.T {
	b := vec3.T{t[0], -t[1], t[2]}
	return b.Normalized()
}

// PropagateFrames computes a rotation-minimizing frame for every position.
//
// The tangent at point i points from point i-1 to point i. At the first
// point it points towards the second point instead. Each normal is derived
// from the previous binormal rather than from the curve's second derivative,
// which keeps frames from flipping at inflection points and on straight
// runs. Every resulting frame satisfies tangent = normal × binormal.
//
// At least two positions are needed to define a tangent. PropagateFrames
// returns nil for shorter inputs.
func PropagateFrames(positions []vec3.T) []CurvePoint {
	if len(positions) < 2 {
		return nil
	}
	out := make([]CurvePoint, len(positions))
	var binormal vec3.T
	for i, p := range positions {
		var tangent vec3.T
		if i == 0 {
			tangent = direction(p, positions[1])
			binormal = initialBinormal(tangent)
		} else {
			tangent = direction(positions[i-1], p)
		}
		normal := cross(binormal, tangent)
		if isZero(normal, degenerateEpsilon) {
			tracer().Errorf("degenerate frame at sample %d: tangent %v is parallel to binormal %v", i, tangent, binormal)
		}
		binormal = cross(tangent, normal)
		out[i] = CurvePoint{
			Position: p,
			Tangent:  tangent,
			Normal:   normal,
			Binormal: binormal,
		}
	}
	return out
}
