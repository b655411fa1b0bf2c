package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegment_SplitAt(t *testing.T) {
	s := mustSegment(t, [3]float64{0, 0, 1}, [3]float64{10, 0, 1})

	res, err := s.SplitAt(NewPoint(4, 0, 1))
	require.NoError(t, err)
	require.Len(t, res, 2)
	assertPoint(t, s.Start(), res[0].Start())
	assertPoint(t, NewPoint(4, 0, 1), res[0].End())
	assertPoint(t, res[0].End(), res[1].Start())
	assertPoint(t, s.End(), res[1].End())
	assert.InDelta(t, s.Length(), res[0].Length()+res[1].Length(), 1e-9)

	_, err = s.SplitAt(NewPoint(4, 1, 1))
	assert.ErrorIs(t, err, ErrDegenerate)

	_, err = s.SplitAt(s.Start())
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestSegment_SplitAt_Moves(t *testing.T) {
	l1 := move(t, "G1 X0 Y0 E0.1", 10)
	l2 := move(t, "G1 X10 Y0 E2 F1200", 11)
	s := mustSegment(t, l1, l2, WithExtrude(true))

	res, err := s.SplitAt(NewPoint(2.5, 0, 0))
	require.NoError(t, err)
	a, b := res[0], res[1]

	assert.True(t, a.Extrude())
	assert.True(t, b.Extrude())

	argsA := a.Line2().Args()
	argsB := b.Line2().Args()
	assert.InDelta(t, 0.5, argsA['E'], 1e-9)
	assert.InDelta(t, 1.5, argsB['E'], 1e-9)
	assert.InDelta(t, 2, argsA['E']+argsB['E'], 1e-9)
	assert.Equal(t, 1200.0, argsA['F'])
	assert.Equal(t, 1200.0, argsB['F'])
	assert.Equal(t, 2.5, argsA['X'])
	assert.Equal(t, 0.0, argsA['Y'])
	assert.Equal(t, 10.0, argsB['X'])

	for _, m := range append(a.Lines(), b.Lines()...) {
		assert.True(t, m.Fake(), "record %v", m)
	}
	assert.Equal(t, 10.0, a.Line1().LineNo())
	assert.Equal(t, 10.25, a.Line2().LineNo())
	assert.Equal(t, 10.25, b.Line1().LineNo())
	assert.Equal(t, 11.0, b.Line2().LineNo())
	assert.Equal(t, a.Line2().Args(), b.Line1().Args())
	require.Len(t, a.Lines(), 2)
	assert.Same(t, a.Line2(), a.Lines()[1])
	require.Len(t, b.Lines(), 2)
	assert.Same(t, b.Line1(), b.Lines()[0])

	// parent records are untouched
	assert.False(t, l1.Fake())
	assert.False(t, l2.Fake())
	assert.Equal(t, 2.0, l2.Args()['E'])
	assert.Same(t, l2, s.Line2())
}

func TestSegment_Split(t *testing.T) {
	l1 := move(t, "G1 X0 Y0", 1)
	l2 := move(t, "G1 X10 Y0 E4", 2)
	s := mustSegment(t, l1, l2)

	res, err := s.Split(NewPoint(7, 0, 0), NewPoint(2, 0, 0), NewPoint(5, 0, 0))
	require.NoError(t, err)
	require.Len(t, res, 4)

	ends := []float64{2, 5, 7, 10}
	var total, e float64
	for i, seg := range res {
		assert.Equal(t, ends[i], seg.End().X)
		if i > 0 {
			assertPoint(t, res[i-1].End(), seg.Start())
		}
		total += seg.Length()
		e += seg.Line2().Args()['E']
	}
	assert.InDelta(t, 10, total, 1e-9)
	assert.InDelta(t, 4, e, 1e-9)
	assert.InDelta(t, 0.8, res[0].Line2().Args()['E'], 1e-9)
	assert.InDelta(t, 1.2, res[3].Line2().Args()['E'], 1e-9)

	for i := 1; i < len(res); i++ {
		assert.True(t, res[i-1].Line2().LineNo() <= res[i].Line2().LineNo())
	}

	res, err = s.Split()
	require.NoError(t, err)
	assert.Equal(t, []*Segment{s}, res)

	_, err = s.Split(NewPoint(2, 0, 0), NewPoint(20, 0, 0))
	assert.ErrorIs(t, err, ErrDegenerate)
}
