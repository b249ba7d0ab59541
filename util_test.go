package swp

import (
	"bytes"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/ungerik/go3d/float64/vec3"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

type traceSelector struct {
	tr tracing.Trace
}

func (sel traceSelector) Select(string) tracing.Trace { return sel.tr }

// traceTo routes all tracing at the given level into the returned buffer
// until the test ends.
func traceTo(t *testing.T, level tracing.TraceLevel) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	tr := gologadapter.New()
	tr.SetOutput(buf)
	tr.SetTraceLevel(level)
	tracing.SetTraceSelector(traceSelector{tr})
	t.Cleanup(func() { tracing.SetTraceSelector(nil) })
	return buf
}

const frameEpsilon = 1e-4

var vecComparer = cmp.Comparer(func(a, b vec3.T) bool {
	return approxEqual(a, b, 1e-9)
})

func mustParse(t *testing.T, src string) *Scene {
	t.Helper()
	s, err := ParseString(src)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	return s
}

// checkFrame verifies that the frame of cp is orthonormal and right-handed.
func checkFrame(t *testing.T, i int, cp CurvePoint) {
	t.Helper()
	for _, v := range []struct {
		name string
		v    vec3.T
	}{{"tangent", cp.Tangent}, {"normal", cp.Normal}, {"binormal", cp.Binormal}} {
		if l := v.v.Length(); math.Abs(l-1) > frameEpsilon {
			t.Errorf("point %d: %s %v has length %g, want 1", i, v.name, v.v, l)
		}
	}
	if d := vec3.Dot(&cp.Tangent, &cp.Normal); math.Abs(d) > frameEpsilon {
		t.Errorf("point %d: tangent·normal = %g, want 0", i, d)
	}
	if d := vec3.Dot(&cp.Tangent, &cp.Binormal); math.Abs(d) > frameEpsilon {
		t.Errorf("point %d: tangent·binormal = %g, want 0", i, d)
	}
	if d := vec3.Dot(&cp.Normal, &cp.Binormal); math.Abs(d) > frameEpsilon {
		t.Errorf("point %d: normal·binormal = %g, want 0", i, d)
	}
	if nb := vec3.Cross(&cp.Normal, &cp.Binormal); !approxEqual(nb, cp.Tangent, frameEpsilon) {
		t.Errorf("point %d: normal×binormal = %v, want tangent %v", i, nb, cp.Tangent)
	}
}
