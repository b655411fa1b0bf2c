package meshlevel

import (
	"fmt"
	"math"

	"github.com/mastercactapus/gcgeom/geom"
)

// Leveler follows the bed surface by shifting the Z of every segment
// endpoint by the offset under it. Long segments are split first so
// they follow the surface between probe points.
type Leveler struct {
	granularity float64
	offsetter   ZOffsetter
}

type Config struct {
	ZOffsetter ZOffsetter

	// Granularity is the longest segment left unsplit. Zero disables
	// splitting.
	Granularity float64
}

func New(cfg Config) *Leveler {
	l := &Leveler{
		granularity: cfg.Granularity,
		offsetter:   cfg.ZOffsetter,
	}
	if l.offsetter == nil {
		l.offsetter = dummyOffsetter{}
	}
	return l
}

// Level returns the levelled pieces of segs in order. Extrusion on the
// gcode records of split segments is shared out between the pieces.
func (l *Leveler) Level(segs []*geom.Segment) ([]*geom.Segment, error) {
	var res []*geom.Segment
	for i, s := range segs {
		pieces, err := l.split(s)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		for _, p := range pieces {
			lp, err := p.Copy(geom.WithStart(l.offset(p.Start())), geom.WithEnd(l.offset(p.End())))
			if err != nil {
				return nil, fmt.Errorf("segment %d: %w", i, err)
			}
			res = append(res, lp)
		}
	}
	return res, nil
}

func (l *Leveler) split(s *geom.Segment) ([]*geom.Segment, error) {
	dist := s.Length()
	if l.granularity <= 0 || dist <= l.granularity {
		return []*geom.Segment{s}, nil
	}

	n := int(math.Ceil(dist / l.granularity))
	cuts := s.Start().Coord().Split(s.End().Coord(), n, false)

	locs := make([]geom.Point, 0, n-1)
	for _, c := range cuts[:n-1] {
		locs = append(locs, geom.NewPoint(c.X, c.Y, c.Z))
	}
	return s.Split(locs...)
}

func (l *Leveler) offset(p geom.Point) geom.Point {
	ok, off := l.offsetter.OffsetZ(p.X, p.Y)
	if !ok {
		return p
	}
	return p.WithZ(p.Z + off)
}
