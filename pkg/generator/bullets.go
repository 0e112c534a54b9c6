package generator

import (
	"math/rand/v2"

	"pkg.jsn.cam/ricochet/pkg/ricochet"
)

// BulletGenerator generates projectile spawns clustered around (350, 350)
// with velocities in every direction.
type BulletGenerator struct {
	rand *rand.Rand
}

func (g *BulletGenerator) Init(r *rand.Rand) {
	g.rand = r
}

// Bullet draws one record: start x, start y, velocity x, velocity y.
func (g *BulletGenerator) Bullet() ricochet.BulletRecord {
	start := ricochet.SamplePoint(g.rand, ricochet.BulletStartRange)
	velocity := ricochet.SamplePoint(g.rand, ricochet.BulletVelocityRange)
	return ricochet.BulletRecord{Start: start, Velocity: velocity}
}

func (g *BulletGenerator) Generate(count int, tick func()) Records {
	bullets := make(ricochet.Bullets, 0, count)
	for i := 0; i < count; i++ {
		bullets = append(bullets, g.Bullet())
		if tick != nil {
			tick()
		}
	}
	return bullets
}

func (g *BulletGenerator) Description() string {
	return "Bullet spawns: start in [300,400]², velocity in [-100,100]²"
}

func (g *BulletGenerator) DefaultCount() int {
	return ricochet.BulletCount
}

func (g *BulletGenerator) DefaultOutput() string {
	return ricochet.BulletsFile
}
