package gcode

import "io"

type Reader interface {
	Read() (Block, error)
}

type BlocksReader struct {
	Blocks []Block
	n      int
}

func (b *BlocksReader) Read() (Block, error) {
	if b.n == len(b.Blocks) {
		return nil, io.EOF
	}

	b.n++
	return b.Blocks[b.n-1], nil
}

// LinesReader reads the blocks of a list of Lines.
type LinesReader struct {
	Lines []*Line
	n     int
}

func (l *LinesReader) Read() (Block, error) {
	if l.n == len(l.Lines) {
		return nil, io.EOF
	}

	l.n++
	return l.Lines[l.n-1].Block, nil
}
