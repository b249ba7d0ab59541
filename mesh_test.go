package swp

import (
	"slices"
	"strings"
	"testing"

	"github.com/ungerik/go3d/float64/vec3"
)

var quad = Mesh{
	Name: "quad",
	Vertices: []Vertex{
		{Position: [3]float32{0, 0, 0}, Normal: [3]float32{0, 0, 1}},
		{Position: [3]float32{1, 0, 0}, Normal: [3]float32{0, 0, 1}},
		{Position: [3]float32{1, 1, 0.5}, Normal: [3]float32{0, 0, 1}},
		{Position: [3]float32{0, 1, 0}, Normal: [3]float32{0, 0, 1}},
	},
	Indices: []uint32{0, 1, 2, 0, 2, 3},
}

func TestMeshTriangles(t *testing.T) {
	diff(t, [][3]uint32{{0, 1, 2}, {0, 2, 3}}, slices.Collect(quad.Triangles()))

	s := mustParse(t, "circ C 4 2.0 srev R 6 C")
	var n int
	for range s.Mesh(0).Triangles() {
		n++
	}
	if n != 48 {
		t.Errorf("got %d triangles, want 48", n)
	}
}

func TestMeshBounds(t *testing.T) {
	diff(t, Box{Min: vec3.T{0, 0, 0}, Max: vec3.T{1, 1, 0.5}}, quad.Bounds())
	diff(t, Box{}, Mesh{}.Bounds())

	s := mustParse(t, "circ C 8 2.0 srev R 16 C")
	b := s.Mesh(0).Bounds()
	want := Box{Min: vec3.T{-2, -2, -2}, Max: vec3.T{2, 2, 2}}
	diff(t, want, b, vecComparer)
}

func TestMeshWriteOBJ(t *testing.T) {
	var sb strings.Builder
	if err := quad.WriteOBJ(&sb, 10); err != nil {
		t.Fatal(err)
	}
	want := `o quad
v 0 0 0
v 1 0 0
v 1 1 0.5
v 0 1 0
vn 0 0 1
vn 0 0 1
vn 0 0 1
vn 0 0 1
f 11//11 12//12 13//13
f 11//11 13//13 14//14
`
	diff(t, want, sb.String())
}

func TestBox(t *testing.T) {
	b := NewBoxFromPoints(vec3.T{1, -1, 2}, vec3.T{-1, 1, 0})
	diff(t, Box{Min: vec3.T{-1, -1, 0}, Max: vec3.T{1, 1, 2}}, b)
	diff(t, vec3.T{2, 2, 2}, b.Size())
	diff(t, vec3.T{0, 0, 1}, b.Center())
	if !b.Contains(vec3.T{0, 0, 1}) || !b.Contains(vec3.T{1, 1, 2}) || b.Contains(vec3.T{0, 0, 3}) {
		t.Error("Contains is wrong")
	}
	u := b.Union(Box{Min: vec3.T{0, 0, 0}, Max: vec3.T{3, 0, 0}})
	diff(t, Box{Min: vec3.T{-1, -1, 0}, Max: vec3.T{3, 1, 2}}, u)
	diff(t, "[-1 -1 0]-[3 1 2]", u.String())
}
