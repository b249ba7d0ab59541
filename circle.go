package swp

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// Circle samples a circle of the given radius, centred on the origin in the
// XY plane, at steps evenly spaced angles starting on the positive X axis.
//
// A final sample identical to the first one closes the loop, so the result
// has steps+1 points. Frames are exact: the tangent is the counter-clockwise
// direction of travel, the normal points away from the centre and the
// binormal is -Z.
func Circle(steps int, radius float64) []CurvePoint {
	points := make([]CurvePoint, 0, steps+1)
	for i := range steps {
		th := float64(i) / float64(steps) * 2 * math.Pi
		sin, cos := math.Sincos(th)
		tangent := vec3.T{-sin, cos, 0}
		normal := vec3.T{cos, sin, 0}
		points = append(points, CurvePoint{
			Position: vec3.T{cos * radius, sin * radius, 0},
			Tangent:  tangent,
			Normal:   normal,
			Binormal: vec3.Cross(&tangent, &normal),
		})
	}
	points = append(points, CurvePoint{
		Position: vec3.T{radius, 0, 0},
		Tangent:  vec3.UnitY,
		Normal:   vec3.UnitX,
		Binormal: vec3.T{0, 0, -1},
	})
	return points
}
