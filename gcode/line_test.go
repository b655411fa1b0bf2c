package gcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("; start\nG1 X1 Y2 E0.5 F1200\n\nM104 S200\n"))
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, 2.0, lines[0].LineNo())
	assert.Equal(t, 4.0, lines[1].LineNo())
	assert.Equal(t, "G1X1Y2E0.5F1200", lines[0].Block.String())

	_, err = ReadLines(strings.NewReader("G1 X1\nG1 X?\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLine_Move(t *testing.T) {
	l := NewLine(MustParse("G1 X1 Y2 E0.5 F1200")[0], 3)

	assert.Equal(t, "G1", l.Code())
	assert.Equal(t, map[byte]float64{'X': 1, 'Y': 2, 'E': 0.5, 'F': 1200}, l.Args())
	assert.False(t, l.Fake())
	assert.True(t, IsLinearXY(l))

	assert.False(t, IsLinearXY(NewLine(MustParse("G0 X1")[0], 1)))
	assert.False(t, IsLinearXY(NewLine(MustParse("M104 S200")[0], 1)))
	assert.False(t, IsLinearXY(nil))
	assert.Equal(t, "", NewLine(MustParse("M104 S200")[0], 1).Code())
}

func TestLine_Synthesize(t *testing.T) {
	l := NewLine(MustParse("G0 X1 Y2")[0], 3)

	s := l.Synthesize(map[byte]float64{'F': 100, 'E': 0.25, 'Y': 4, 'X': 3, 'S': 1}, 3.5)
	assert.True(t, s.Fake())
	assert.Equal(t, 3.5, s.LineNo())
	assert.Equal(t, "G0", s.Code())
	assert.Equal(t, "G0X3Y4E0.25F100S1", s.(*Line).Block.String())
	assert.Equal(t, "3.5*: G0X3Y4E0.25F100S1", s.(*Line).String())

	// the source line is untouched
	assert.Equal(t, "G0X1Y2", l.Block.String())
	assert.False(t, l.Fake())
}

func TestLinesReader(t *testing.T) {
	lines := []*Line{
		NewLine(Block{{W: 'G', Arg: 1}, {W: 'X', Arg: 1}}, 1),
		NewLine(Block{{W: 'G', Arg: 1}, {W: 'X', Arg: 2.5}}, 2),
	}

	data := new(strings.Builder)
	buf := make([]byte, 64)
	b := NewBuffer(&LinesReader{Lines: lines})
	n, err := b.Read(buf)
	require.NoError(t, err)
	data.Write(buf[:n])
	assert.Equal(t, "G1X1\nG1X2.5\n", data.String())
}
