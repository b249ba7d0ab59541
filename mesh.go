package swp

import (
	"bufio"
	"fmt"
	"io"
	"iter"

	"github.com/ungerik/go3d/float64/vec3"
)

// MaxVertices is the largest number of vertices of a mesh. It also bounds
// the number of samples of a single curve.
const MaxVertices = 1 << 24

// Vertex is a mesh vertex, in the single precision expected by GPUs.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Mesh is an indexed triangle mesh. Every three consecutive indices form one
// triangle.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
}

// Triangles returns an iterator over the mesh's triangles.
func (m Mesh) Triangles() iter.Seq[[3]uint32] {
	return func(yield func([3]uint32) bool) {
		for i := 0; i+2 < len(m.Indices); i += 3 {
			if !yield([3]uint32{m.Indices[i], m.Indices[i+1], m.Indices[i+2]}) {
				return
			}
		}
	}
}

// Bounds returns the smallest box containing every vertex. It is the zero
// box for an empty mesh.
func (m Mesh) Bounds() Box {
	if len(m.Vertices) == 0 {
		return Box{}
	}
	p := position(m.Vertices[0])
	b := NewBoxFromPoints(p, p)
	for _, v := range m.Vertices[1:] {
		b = b.UnionPoint(position(v))
	}
	return b
}

func position(v Vertex) vec3.T {
	return vec3.T{float64(v.Position[0]), float64(v.Position[1]), float64(v.Position[2])}
}

// WriteOBJ writes the mesh as a Wavefront OBJ object. Vertex and normal
// numbering starts at base+1, which allows several meshes to be written into
// one file: pass the total vertex count of the meshes written before.
func (m Mesh) WriteOBJ(w io.Writer, base int) error {
	bw := bufio.NewWriter(w)
	if m.Name != "" {
		fmt.Fprintf(bw, "o %s\n", m.Name)
	}
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.Position[0], v.Position[1], v.Position[2])
	}
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "vn %g %g %g\n", v.Normal[0], v.Normal[1], v.Normal[2])
	}
	for tri := range m.Triangles() {
		a, b, c := int(tri[0])+base+1, int(tri[1])+base+1, int(tri[2])+base+1
		fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
	}
	return bw.Flush()
}
