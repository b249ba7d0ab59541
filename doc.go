// Package swp turns SWP documents, a small language for spline curves and
// swept surfaces, into triangle meshes.
//
// # The SWP format
//
// An SWP document is a sequence of whitespace-separated commands. Keywords
// are case-sensitive, and tokens that don't start a known command are
// skipped.
//
//	circ NAME STEPS RADIUS
//	bez2 NAME STEPS NUMPOINTS [ x y ] ...
//	bez3 NAME STEPS NUMPOINTS [ x y z ] ...
//	bsp2 NAME STEPS NUMPOINTS [ x y ] ...
//	bsp3 NAME STEPS NUMPOINTS [ x y z ] ...
//	srev NAME STEPS PROFILE
//	gcyl NAME PROFILE SWEEP
//
// The first five commands declare curves. A NAME of "." declares an
// anonymous curve, which later commands cannot refer to. Curves declared
// with circ, bez2 and bsp2 are planar and lie in the XY plane; bez3 and bsp3
// declare curves in space.
//
// circ samples a circle of the given radius at STEPS angles. The bez and bsp
// commands describe piecewise cubic curves in the Bézier and uniform
// B-spline bases. Every run of four consecutive control points forms one
// cubic piece, which is sampled at STEPS parameters. At least four control
// points are required.
//
// srev declares a surface of revolution, formed by rotating the planar
// curve PROFILE about the Y axis in STEPS steps. gcyl declares a generalized
// cylinder, formed by moving the planar curve PROFILE along the curve SWEEP.
// Both refer to the earliest previously declared curve of that name; for
// PROFILE, the earliest planar one.
//
// # Curves and frames
//
// Every curve sample is a [CurvePoint]: a position plus an orthonormal
// frame of tangent, normal and binormal. Frames of circles are computed
// exactly. Frames of splines are computed by [PropagateFrames], which
// carries each frame over from the previous sample instead of deriving it
// from the curve's curvature. Such rotation-minimizing frames don't flip at
// inflection points and don't twist on straight runs, which makes them
// suitable for orienting the profile of a generalized cylinder.
//
// # Surfaces
//
// [ParseString] and [Parse] produce a [Scene], holding the [CurveTable] and
// one [SurfaceSpec] per surface. [Triangulate] turns a surface into a
// [Mesh] of single-precision vertices and 32-bit triangle indices, ready to
// be uploaded to a GPU. Triangulation doesn't modify its inputs, and
// [Scene.Meshes] triangulates all surfaces concurrently.
//
// # Errors
//
// Parsing stops at the first problem and reports it as a *[ParseError].
// Its Kind is one of [ErrMalformed], [ErrUnresolved], [ErrDimension] and
// [ErrTooFewControlPoints].
//
// # Tracing
//
// The package traces parsed commands, skipped tokens and degenerate frames
// to the schuko tracer selected by the key "swp".
package swp
