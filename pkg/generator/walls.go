package generator

import (
	"math/rand/v2"

	"pkg.jsn.cam/ricochet/pkg/ricochet"
)

// WallGenerator generates line segments anywhere on a 1000x1000 field
type WallGenerator struct {
	rand *rand.Rand
}

func (g *WallGenerator) Init(r *rand.Rand) {
	g.rand = r
}

// Wall draws one record: start x, start y, end x, end y.
func (g *WallGenerator) Wall() ricochet.WallRecord {
	start := ricochet.SamplePoint(g.rand, ricochet.WallCoordRange)
	end := ricochet.SamplePoint(g.rand, ricochet.WallCoordRange)
	return ricochet.WallRecord{Start: start, End: end}
}

func (g *WallGenerator) Generate(count int, tick func()) Records {
	walls := make(ricochet.Walls, 0, count)
	for i := 0; i < count; i++ {
		walls = append(walls, g.Wall())
		if tick != nil {
			tick()
		}
	}
	return walls
}

func (g *WallGenerator) Description() string {
	return "Wall segments: start and end in [0,1000]²"
}

func (g *WallGenerator) DefaultCount() int {
	return ricochet.WallCount
}

func (g *WallGenerator) DefaultOutput() string {
	return ricochet.WallsFile
}
