package gcode

import (
	"fmt"
	"sort"
)

// argOrder is the order args are written when a Line is synthesized.
const argOrder = "XYZEF"

// Move is a linear motion record a point or segment can be built from.
type Move interface {
	// Code is the motion code, e.g. "G0" or "G1".
	Code() string
	// Args returns a copy of the axis and parameter values.
	Args() map[byte]float64
	LineNo() float64
	// Fake reports whether the record was synthesized rather than read.
	Fake() bool
	// Synthesize returns a fresh fake record with the same code and the
	// given args and line number.
	Synthesize(args map[byte]float64, n float64) Move
}

// IsLinearXY reports whether m is a G0/G1 move with both X and Y set.
func IsLinearXY(m Move) bool {
	if m == nil {
		return false
	}
	switch m.Code() {
	case "G0", "G1":
	default:
		return false
	}
	args := m.Args()
	_, okX := args['X']
	_, okY := args['Y']
	return okX && okY
}

var _ Move = &Line{}

// Line is a single block of a program together with its position
// in the source.
//
// Lines produced by splitting a move are marked Synthetic and
// carry fractional line numbers so they sort between the originals.
type Line struct {
	Block     Block
	N         float64
	Synthetic bool
}

// NewLine returns a Line for block b found at line number n.
func NewLine(b Block, n float64) *Line {
	return &Line{Block: b, N: n}
}

// Code returns the motion code of the line, e.g. "G1", or an empty
// string if the line does not move.
func (l *Line) Code() string {
	ok, w := l.Block.Motion()
	if !ok {
		return ""
	}
	return w.String()
}

// Args returns a copy of the non G/M words of the line keyed by letter.
func (l *Line) Args() map[byte]float64 {
	res := make(map[byte]float64, len(l.Block))
	for _, g := range l.Block {
		if g.W == 'G' || g.W == 'M' || g.W == 'N' {
			continue
		}
		res[g.W] = g.Arg
	}
	return res
}

func (l *Line) LineNo() float64 { return l.N }
func (l *Line) Fake() bool      { return l.Synthetic }

// Synthesize returns a new synthetic line with the same motion code
// as l and the given args.
func (l *Line) Synthesize(args map[byte]float64, n float64) Move {
	b := make(Block, 0, len(args)+1)
	if ok, w := l.Block.Motion(); ok {
		b = append(b, w)
	}

	keys := make([]byte, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return argRank(keys[i]) < argRank(keys[j]) })
	for _, k := range keys {
		b = append(b, Word{W: k, Arg: args[k]})
	}

	return &Line{Block: b, N: n, Synthetic: true}
}

func argRank(w byte) int {
	for i := 0; i < len(argOrder); i++ {
		if argOrder[i] == w {
			return i
		}
	}
	return len(argOrder) + int(w)
}

func (l *Line) String() string {
	if l.Synthetic {
		return fmt.Sprintf("%g*: %s", l.N, l.Block)
	}
	return fmt.Sprintf("%g: %s", l.N, l.Block)
}
