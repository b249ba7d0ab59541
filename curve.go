package swp

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/ungerik/go3d/float64/vec3"
)

// tracer writes to trace with key 'swp'
func tracer() tracing.Trace {
	return tracing.Select("swp")
}

// CurvePoint is one sample of an evaluated curve, together with its moving
// frame. Position is absolute, the three directions are unit vectors with
// Tangent = Normal × Binormal.
type CurvePoint struct {
	Position vec3.T
	Tangent  vec3.T
	Normal   vec3.T
	Binormal vec3.T
}

// Curve is a named or anonymous sampled curve.
type Curve struct {
	// Name is empty for anonymous curves, which cannot be referenced by
	// surfaces.
	Name string
	// Dims is 2 for planar curves declared with circ, bez2 or bsp2, and 3
	// otherwise. Planar curves lie in the XY plane.
	Dims   int
	Points []CurvePoint
}

// Is2D reports whether the curve was declared as a planar curve.
func (c *Curve) Is2D() bool { return c.Dims == 2 }

// Len returns the number of samples.
func (c *Curve) Len() int { return len(c.Points) }

// Anonymous reports whether the curve has no name.
func (c *Curve) Anonymous() bool { return c.Name == "" }

func (c *Curve) String() string {
	name := c.Name
	if name == "" {
		name = "."
	}
	return fmt.Sprintf("%s (%dD, %d points)", name, c.Dims, len(c.Points))
}

// CurveTable holds curves in declaration order.
//
// Several curves may share a name. Lookups resolve to the earliest matching
// declaration.
type CurveTable struct {
	curves []Curve
	// index maps names to the positions of the curves carrying them, in
	// declaration order.
	index map[string][]int
}

// Add appends c to the table and returns its index.
func (tbl *CurveTable) Add(c Curve) int {
	i := len(tbl.curves)
	tbl.curves = append(tbl.curves, c)
	if c.Name != "" {
		if tbl.index == nil {
			tbl.index = make(map[string][]int)
		}
		tbl.index[c.Name] = append(tbl.index[c.Name], i)
	}
	return i
}

// Len returns the number of curves, including anonymous ones.
func (tbl *CurveTable) Len() int { return len(tbl.curves) }

// At returns the i-th declared curve.
func (tbl *CurveTable) At(i int) *Curve { return &tbl.curves[i] }

// Curves returns all curves in declaration order. The slice must not be
// modified.
func (tbl *CurveTable) Curves() []Curve { return tbl.curves }

// Lookup returns the index of the first curve named name. If require2D is
// set, curves that aren't planar are skipped.
//
// It returns [ErrUnresolved] if no curve carries the name, and
// [ErrDimension] if curves carry the name but none of them is planar.
func (tbl *CurveTable) Lookup(name string, require2D bool) (int, error) {
	idxs, ok := tbl.index[name]
	if name == "" || !ok {
		return -1, ErrUnresolved
	}
	for _, i := range idxs {
		if !require2D || tbl.curves[i].Is2D() {
			return i, nil
		}
	}
	return -1, ErrDimension
}
