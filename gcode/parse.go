package gcode

import (
	"bytes"
	"io"
)

func Parse(data string) ([]Block, error) {
	r := NewParser(bytes.NewBufferString(data))
	var b []Block
	for {
		bl, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		b = append(b, bl)
	}
	return b, nil
}

func MustParse(data string) []Block {
	b, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return b
}

// ReadLines parses a whole program keeping the source line number
// of every block.
func ReadLines(r io.Reader) ([]*Line, error) {
	p := NewParser(r)
	var lines []*Line
	for {
		bl, err := p.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		lines = append(lines, NewLine(bl, float64(p.LineNo())))
	}
	return lines, nil
}
