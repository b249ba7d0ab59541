package swp

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed indicates a missing, non-numeric or out-of-range field,
	// or a control point without matching brackets.
	ErrMalformed = errors.New("malformed input")
	// ErrUnresolved indicates a surface referring to a name that no
	// previously declared curve carries. Anonymous curves never resolve.
	ErrUnresolved = errors.New("unresolved curve reference")
	// ErrDimension indicates a profile reference that only matches 3D
	// curves.
	ErrDimension = errors.New("profile curve must be 2D")
	// ErrTooFewControlPoints indicates a curve with fewer than four control
	// points, which describes no cubic piece.
	ErrTooFewControlPoints = errors.New("too few control points")
)

// ParseError describes why and where parsing stopped. Kind is one of
// [ErrMalformed], [ErrUnresolved], [ErrDimension] and
// [ErrTooFewControlPoints], and can be tested for with [errors.Is].
type ParseError struct {
	Kind error
	// Command is the keyword of the command being parsed, if any.
	Command string
	// Token is the 0-based ordinal of the offending token, Line its 1-based
	// line number. At the end of input, Token equals the number of tokens.
	Token int
	Line  int
	Msg   string
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	prefix := fmt.Sprintf("swp: line %d", e.Line)
	if e.Command != "" {
		prefix += " (" + e.Command + ")"
	}
	if e.Msg == "" {
		return prefix + ": " + e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s: %s", prefix, e.Kind.Error(), e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Kind }
