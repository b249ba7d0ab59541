package swp

import (
	"sync"
)

// Scene is the result of parsing an SWP document.
type Scene struct {
	Curves   CurveTable
	Surfaces []SurfaceSpec
}

// Mesh triangulates the i-th surface.
func (s *Scene) Mesh(i int) Mesh {
	return Triangulate(s.Surfaces[i], s.Curves.Curves())
}

// Surface returns the index of the first surface with the given name.
func (s *Scene) Surface(name string) (int, bool) {
	for i, spec := range s.Surfaces {
		if spec.Name == name {
			return i, true
		}
	}
	return -1, false
}

// Meshes triangulates all surfaces concurrently and returns the meshes in
// surface order.
func (s *Scene) Meshes() []Mesh {
	out := make([]Mesh, len(s.Surfaces))
	var wg sync.WaitGroup
	for i := range s.Surfaces {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out[i] = s.Mesh(i)
		}()
	}
	wg.Wait()
	return out
}
