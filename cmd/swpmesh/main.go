// Command swpmesh parses an SWP document and triangulates its surfaces.
//
// By default it prints a one-line summary per surface. With -obj, it writes
// all meshes to standard output as a single Wavefront OBJ file. Degenerate
// frames are reported on standard error; -v traces every parsed command as
// well.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"honnef.co/go/swp"
)

const (
	exitSuccess    = 0
	exitParseError = 1
	exitUsage      = 2
)

var (
	inFile   = flag.String("in", "", "read the document from `file` instead of standard input")
	writeOBJ = flag.Bool("obj", false, "write meshes as Wavefront OBJ to standard output")
	surface  = flag.String("surface", "", "only triangulate the surface called `name`")
	verbose  = flag.Bool("v", false, "trace parsing and triangulation to standard error")
)

func main() {
	flag.Parse()
	os.Exit(run(os.Stdout, os.Stderr))
}

// traceSelector hands out the same tracer for every key.
type traceSelector struct {
	tr tracing.Trace
}

func (sel traceSelector) Select(string) tracing.Trace { return sel.tr }

// setupTracing routes all tracing to w, at debug level if verbose and at
// error level otherwise. The returned function restores the no-op tracers.
func setupTracing(w io.Writer, verbose bool) func() {
	tr := gologadapter.New()
	tr.SetOutput(w)
	if verbose {
		tr.SetTraceLevel(tracing.LevelDebug)
	} else {
		tr.SetTraceLevel(tracing.LevelError)
	}
	tracing.SetTraceSelector(traceSelector{tr})
	return func() { tracing.SetTraceSelector(nil) }
}

func run(stdout, stderr io.Writer) int {
	defer setupTracing(stderr, *verbose)()

	var in io.Reader = os.Stdin
	if *inFile != "" {
		f, err := os.Open(*inFile)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitUsage
		}
		defer f.Close()
		in = f
	}

	scene, err := swp.Parse(in)
	if err != nil {
		var perr *swp.ParseError
		if errors.As(err, &perr) {
			fmt.Fprintln(stderr, perr)
			return exitParseError
		}
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	var meshes []swp.Mesh
	if *surface != "" {
		i, ok := scene.Surface(*surface)
		if !ok {
			fmt.Fprintf(stderr, "no surface named %q\n", *surface)
			return exitUsage
		}
		meshes = []swp.Mesh{scene.Mesh(i)}
	} else {
		meshes = scene.Meshes()
	}

	if *writeOBJ {
		base := 0
		for _, m := range meshes {
			if err := m.WriteOBJ(stdout, base); err != nil {
				fmt.Fprintln(stderr, err)
				return exitUsage
			}
			base += len(m.Vertices)
		}
		return exitSuccess
	}
	for _, m := range meshes {
		fmt.Fprintf(stdout, "%s: %d vertices, %d triangles, bounds %s\n",
			m.Name, len(m.Vertices), len(m.Indices)/3, m.Bounds())
	}
	return exitSuccess
}
