package ricochet

import "math/rand/v2"

// streamMix keeps the PCG stream distinct from the state seed.
const streamMix = 0x9e3779b97f4a7c15

// NewRand returns a deterministic random source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^streamMix))
}

// NewSeed draws a seed from the process-wide source.
func NewSeed() uint64 {
	return rand.Uint64()
}

// Sample draws uniformly from the closed interval r.
func Sample(rng *rand.Rand, r Range) int {
	return r.Min + rng.IntN(r.Max-r.Min+1)
}

// SamplePoint draws both coordinates independently from r.
func SamplePoint(rng *rand.Rand, r Range) Point {
	x := Sample(rng, r)
	y := Sample(rng, r)
	return Point{X: x, Y: y}
}
