package swp

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// direction returns the unit vector pointing from a to b.
//
// This produces the zero vector if a and b coincide.
func direction(a, b vec3.T) vec3.T {
	d := vec3.Sub(&b, &a)
	return d.Normalized()
}

// cross returns the normalized cross product a × b.
func cross(a, b vec3.T) vec3.T {
	c := vec3.Cross(&a, &b)
	return c.Normalized()
}

// flatten discards the Z coordinate.
func flatten(v vec3.T) vec3.T {
	return vec3.T{v[0], v[1], 0}
}

// isZero reports whether v is shorter than epsilon.
func isZero(v vec3.T, epsilon float64) bool {
	return v.LengthSqr() < epsilon*epsilon
}

// approxEqual reports whether every component of a and b differs by at most
// epsilon.
func approxEqual(a, b vec3.T, epsilon float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > epsilon {
			return false
		}
	}
	return true
}

func to32(v vec3.T) [3]float32 {
	return [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
}
