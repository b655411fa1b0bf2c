// Package geom provides gcode aware points and segments for analysing
// and rewriting toolpaths.
//
// Points and segments may carry the gcode.Move records they were built
// from. Splitting a segment redistributes the extrusion (E) of its
// records so the pieces still add up to the original move.
//
// All values are safe to share once built; a Segment is not safe for
// concurrent use with code that still holds its provenance records
// mutably.
package geom

import (
	"errors"

	"github.com/mastercactapus/gcgeom/coord"
)

var (
	// ErrInvalidArgument is returned for constructor arguments of the
	// wrong shape or type.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidMove is returned when a gcode record is not a G0/G1
	// move with both X and Y.
	ErrInvalidMove = errors.New("not a linear X/Y move")

	// ErrDegenerate is returned for zero length segments, splits off the
	// segment and conflicting rotations.
	ErrDegenerate = coord.ErrDegenerate
)
