package swp

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"
)

// Box is an axis-aligned box.
type Box struct {
	Min, Max vec3.T
}

// NewBoxFromPoints returns the smallest box containing p0 and p1.
func NewBoxFromPoints(p0, p1 vec3.T) Box {
	var b Box
	for i := range 3 {
		b.Min[i] = min(p0[i], p1[i])
		b.Max[i] = max(p0[i], p1[i])
	}
	return b
}

func (b Box) String() string {
	return fmt.Sprintf("[%g %g %g]-[%g %g %g]", b.Min[0], b.Min[1], b.Min[2], b.Max[0], b.Max[1], b.Max[2])
}

// Size returns the box's extent along each axis.
func (b Box) Size() vec3.T {
	return vec3.Sub(&b.Max, &b.Min)
}

// Center returns the center point of the box.
func (b Box) Center() vec3.T {
	c := vec3.Add(&b.Min, &b.Max)
	return c.Scaled(0.5)
}

// Contains reports whether pt lies inside the box or on its boundary.
func (b Box) Contains(pt vec3.T) bool {
	for i := range 3 {
		if pt[i] < b.Min[i] || pt[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// UnionPoint returns the smallest box containing both b and pt.
func (b Box) UnionPoint(pt vec3.T) Box {
	for i := range 3 {
		b.Min[i] = min(b.Min[i], pt[i])
		b.Max[i] = max(b.Max[i], pt[i])
	}
	return b
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	return b.UnionPoint(o.Min).UnionPoint(o.Max)
}
