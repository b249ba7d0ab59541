package swp

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"

	"github.com/ungerik/go3d/float64/vec3"
)

// Parse reads a complete SWP document from r and parses it with
// [ParseString].
func Parse(r io.Reader) (*Scene, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseString(string(b))
}

// ParseString parses an SWP document, evaluating every curve it declares and
// collecting every surface it describes.
//
// Parsing stops at the first error, which is always a *[ParseError]. No
// partial scene is returned in that case. Tokens that don't start a known
// command are skipped.
func ParseString(src string) (*Scene, error) {
	p := &parser{toks: lex(src), scene: new(Scene)}
	for p.pos < len(p.toks) {
		tok := p.toks[p.pos]
		p.pos++
		p.cmd = tok.text
		var err error
		switch tok.text {
		case "circ":
			err = p.circle()
		case "bez2":
			err = p.spline(Bezier, 2)
		case "bez3":
			err = p.spline(Bezier, 3)
		case "bsp2":
			err = p.spline(BSpline, 2)
		case "bsp3":
			err = p.spline(BSpline, 3)
		case "srev":
			err = p.revolution()
		case "gcyl":
			err = p.cylinder()
		default:
			tracer().Debugf("line %d: skipping unknown token %q", tok.line, tok.text)
		}
		if err != nil {
			return nil, err
		}
	}
	tracer().Debugf("parsed %d curves and %d surfaces", p.scene.Curves.Len(), len(p.scene.Surfaces))
	return p.scene, nil
}

type parser struct {
	toks  []token
	pos   int
	cmd   string
	scene *Scene
}

// errorAt returns a ParseError for the i-th token.
func (p *parser) errorAt(i int, kind error, format string, args ...any) error {
	line := 1
	if i < len(p.toks) {
		line = p.toks[i].line
	} else if len(p.toks) > 0 {
		line = p.toks[len(p.toks)-1].line
	}
	return &ParseError{
		Kind:    kind,
		Command: p.cmd,
		Token:   i,
		Line:    line,
		Msg:     fmt.Sprintf(format, args...),
	}
}

// word consumes the next token, which must not be a bracket.
func (p *parser) word(what string) (string, error) {
	if p.pos >= len(p.toks) {
		return "", p.errorAt(p.pos, ErrMalformed, "missing %s", what)
	}
	tok := p.toks[p.pos]
	if tok.text == "[" || tok.text == "]" {
		return "", p.errorAt(p.pos, ErrMalformed, "expected %s, got %q", what, tok.text)
	}
	p.pos++
	return tok.text, nil
}

// name consumes a curve name. The name "." denotes an anonymous curve and is
// returned as the empty string.
func (p *parser) name() (string, error) {
	s, err := p.word("NAME")
	if s == "." {
		s = ""
	}
	return s, err
}

// integer consumes an integer in the range [lo, hi].
func (p *parser) integer(what string, lo, hi int) (int, error) {
	s, err := p.word(what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, p.errorAt(p.pos-1, ErrMalformed, "%s %q is not an integer", what, s)
	}
	if n < lo {
		return 0, p.errorAt(p.pos-1, ErrMalformed, "%s is %d, must be at least %d", what, n, lo)
	}
	if n > hi {
		return 0, p.errorAt(p.pos-1, ErrMalformed, "%s is %d, must be at most %d", what, n, hi)
	}
	return n, nil
}

func (p *parser) float(what string) (float64, error) {
	s, err := p.word(what)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, p.errorAt(p.pos-1, ErrMalformed, "%s %q is not a finite number", what, s)
	}
	return f, nil
}

func (p *parser) expect(bracket string) error {
	if p.pos >= len(p.toks) {
		return p.errorAt(p.pos, ErrMalformed, "missing %q", bracket)
	}
	if tok := p.toks[p.pos]; tok.text != bracket {
		return p.errorAt(p.pos, ErrMalformed, "expected %q, got %q", bracket, tok.text)
	}
	p.pos++
	return nil
}

// point consumes a control point of the form [ x y ] or [ x y z ]. A missing
// Z coordinate is zero.
func (p *parser) point() (vec3.T, error) {
	var v vec3.T
	if err := p.expect("["); err != nil {
		return v, err
	}
	for i, what := range []string{"x", "y"} {
		f, err := p.float(what)
		if err != nil {
			return v, err
		}
		v[i] = f
	}
	if p.pos < len(p.toks) && p.toks[p.pos].text != "]" {
		f, err := p.float("z")
		if err != nil {
			return v, err
		}
		v[2] = f
	}
	return v, p.expect("]")
}

// ref consumes the name of a previously declared curve and resolves it.
func (p *parser) ref(what string, require2D bool) (int, error) {
	s, err := p.word(what)
	if err != nil {
		return 0, err
	}
	i, err := p.scene.Curves.Lookup(s, require2D)
	if err != nil {
		return 0, p.errorAt(p.pos-1, err, "%s %q", what, s)
	}
	return i, nil
}

// circ NAME STEPS RADIUS
func (p *parser) circle() error {
	name, err := p.name()
	if err != nil {
		return err
	}
	// The closing sample takes one vertex.
	steps, err := p.integer("STEPS", 1, MaxVertices-1)
	if err != nil {
		return err
	}
	radius, err := p.float("RADIUS")
	if err != nil {
		return err
	}
	c := Curve{Name: name, Dims: 2, Points: Circle(steps, radius)}
	p.scene.Curves.Add(c)
	tracer().Debugf("circ %s", &c)
	return nil
}

// bez2|bez3|bsp2|bsp3 NAME STEPS NUMPOINTS [ctrl]...
func (p *parser) spline(basis Basis, dims int) error {
	name, err := p.name()
	if err != nil {
		return err
	}
	steps, err := p.integer("STEPS", 1, MaxVertices)
	if err != nil {
		return err
	}
	n, err := p.integer("NUMPOINTS", 0, math.MaxInt)
	if err != nil {
		return err
	}
	if n < 4 {
		return p.errorAt(p.pos-1, ErrTooFewControlPoints, "got %d, need at least 4", n)
	}
	if segs := Segments(n); steps > MaxVertices/segs {
		return p.errorAt(p.pos-1, ErrMalformed,
			"%d control points at %d steps exceed %d samples", n, steps, MaxVertices)
	}
	// A control point spans at least four tokens.
	ctrl := make([]vec3.T, 0, min(n, (len(p.toks)-p.pos)/4))
	for range n {
		v, err := p.point()
		if err != nil {
			return err
		}
		if dims == 2 {
			v = flatten(v)
		}
		ctrl = append(ctrl, v)
	}
	positions := slices.Collect(Evaluate(basis, steps, ctrl))
	if len(positions) < 2 {
		return p.errorAt(p.pos-1, ErrTooFewControlPoints,
			"%d control points at %d steps yield %d sample, need at least 2", n, steps, len(positions))
	}
	c := Curve{Name: name, Dims: dims, Points: PropagateFrames(positions)}
	p.scene.Curves.Add(c)
	tracer().Debugf("%s %s", p.cmd, &c)
	return nil
}

// srev NAME STEPS PROFILE
func (p *parser) revolution() error {
	name, err := p.word("NAME")
	if err != nil {
		return err
	}
	steps, err := p.integer("STEPS", 1, MaxVertices)
	if err != nil {
		return err
	}
	profile, err := p.ref("PROFILE", true)
	if err != nil {
		return err
	}
	return p.addSurface(SurfaceSpec{Name: name, Profile: profile, Sweep: AxisSweep(steps)})
}

// gcyl NAME PROFILE SWEEP
func (p *parser) cylinder() error {
	name, err := p.word("NAME")
	if err != nil {
		return err
	}
	profile, err := p.ref("PROFILE", true)
	if err != nil {
		return err
	}
	sweep, err := p.ref("SWEEP", false)
	if err != nil {
		return err
	}
	return p.addSurface(SurfaceSpec{Name: name, Profile: profile, Sweep: CurveSweep(sweep)})
}

// addSurface records s unless its mesh would exceed MaxVertices.
func (p *parser) addSurface(s SurfaceSpec) error {
	if !fitsMesh(s, p.scene.Curves.Curves()) {
		return p.errorAt(p.pos-1, ErrMalformed, "surface %s exceeds %d vertices", s.Name, MaxVertices)
	}
	p.scene.Surfaces = append(p.scene.Surfaces, s)
	tracer().Debugf("%s %s", p.cmd, s)
	return nil
}
