package swp

import (
	"fmt"
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// SweepKind distinguishes revolutions from sweeps along a curve.
type SweepKind int

const (
	// AxisKind revolves the profile about the Y axis.
	AxisKind SweepKind = iota + 1
	// CurveKind moves the profile along another curve.
	CurveKind
)

// Sweep describes how a profile curve is swept to form a surface.
type Sweep struct {
	Kind SweepKind
	// Steps is the number of angular steps of an [AxisKind] sweep.
	Steps int
	// Curve is the curve table index of the spine of a [CurveKind] sweep.
	Curve int
}

// AxisSweep returns a full revolution about the Y axis in steps angular
// steps.
func AxisSweep(steps int) Sweep {
	return Sweep{Kind: AxisKind, Steps: steps}
}

// CurveSweep returns a sweep along the curve with the given index.
func CurveSweep(curve int) Sweep {
	return Sweep{Kind: CurveKind, Curve: curve}
}

func (s Sweep) String() string {
	switch s.Kind {
	case AxisKind:
		return fmt.Sprintf("Axis(%d)", s.Steps)
	case CurveKind:
		return fmt.Sprintf("Curve(%d)", s.Curve)
	default:
		return "InvalidSweep"
	}
}

// SurfaceSpec describes a surface of revolution or a generalized cylinder.
// Profile is the curve table index of a 2D curve.
type SurfaceSpec struct {
	Name    string
	Profile int
	Sweep   Sweep
}

func (s SurfaceSpec) String() string {
	return fmt.Sprintf("%s: profile %d, %s", s.Name, s.Profile, s.Sweep)
}

// Triangulate builds the triangle mesh of a surface. curves is the curve
// table the indices in spec refer to.
//
// The mesh consists of rings of vertices. For a surface of revolution there
// is one ring per profile point, each holding spec.Sweep.Steps rotated
// copies of that point. For a generalized cylinder there is one ring per
// spine point, each holding a copy of the whole profile, oriented by the
// spine's frame at that point and moved to its position. Vertices are
// stored ring after ring.
//
// Each ring except the last is stitched to the next one with two triangles
// per pair of neighbouring samples, including the pair formed by the last
// and first sample. Surfaces are thus closed around each ring but open at
// the first and last ring, unless the curve generating the rings is itself
// closed.
//
// A surface whose mesh would have more than [MaxVertices] vertices yields an
// empty mesh.
func Triangulate(spec SurfaceSpec, curves []Curve) Mesh {
	profile := curves[spec.Profile].Points
	rings, steps := grid(spec, curves)
	if !fitsMesh(spec, curves) {
		tracer().Errorf("surface %s: %d rings of %d vertices exceed %d vertices", spec.Name, len(rings), steps, MaxVertices)
		return Mesh{Name: spec.Name}
	}

	m := Mesh{
		Name:     spec.Name,
		Vertices: make([]Vertex, 0, len(rings)*steps),
		Indices:  make([]uint32, 0, max(len(rings)-1, 0)*steps*6),
	}
	for i, cp := range rings {
		switch spec.Sweep.Kind {
		case AxisKind:
			for j := range steps {
				rot := RotationY(float64(j) / float64(steps) * 2 * math.Pi)
				// The inverse transpose of a rotation is the rotation itself.
				m.Vertices = append(m.Vertices, Vertex{
					Position: to32(rot.Apply(cp.Position)),
					Normal:   to32(rot.Apply(cp.Normal)),
				})
			}
		case CurveKind:
			rot := FaceTowards(cp.Tangent, cp.Normal)
			for _, pp := range profile {
				pos := rot.Apply(pp.Position)
				m.Vertices = append(m.Vertices, Vertex{
					Position: to32(vec3.Add(&pos, &cp.Position)),
					Normal:   to32(rot.Apply(pp.Normal)),
				})
			}
		}
		if i < len(rings)-1 && steps > 0 {
			m.Indices = appendRingFaces(m.Indices, uint32(i*steps), uint32(steps))
		}
	}
	tracer().Debugf("triangulated %s: %d vertices, %d triangles", spec.Name, len(m.Vertices), len(m.Indices)/3)
	return m
}

// grid returns the rings of the mesh of spec and the number of vertices in
// each ring.
func grid(spec SurfaceSpec, curves []Curve) (rings []CurvePoint, steps int) {
	switch spec.Sweep.Kind {
	case AxisKind:
		return curves[spec.Profile].Points, spec.Sweep.Steps
	case CurveKind:
		return curves[spec.Sweep.Curve].Points, curves[spec.Profile].Len()
	default:
		panic(fmt.Sprintf("unhandled sweep kind %v", spec.Sweep.Kind))
	}
}

// fitsMesh reports whether the mesh of spec has at most MaxVertices
// vertices.
func fitsMesh(spec SurfaceSpec, curves []Curve) bool {
	rings, steps := grid(spec, curves)
	if steps < 0 {
		return false
	}
	return len(rings) == 0 || steps <= MaxVertices/len(rings)
}

// appendRingFaces appends the triangles connecting the ring of steps
// vertices starting at offset to the ring following it.
func appendRingFaces(indices []uint32, offset, steps uint32) []uint32 {
	for k := range steps - 1 {
		a := offset + k
		indices = append(indices,
			a, a+steps, a+steps+1,
			a+1, a, a+steps+1,
		)
	}
	indices = append(indices,
		offset, offset+steps-1, offset+steps,
		offset+steps-1, offset+steps, offset+2*steps-1,
	)
	return indices
}
