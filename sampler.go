package cursordust

import "math/rand/v2"

// maxSampleAttempts bounds the rejection loop per point. The cube-to-sphere
// acceptance rate is pi/6 (~1.91 expected draws per point), so the cap is
// never reached in practice; it exists so a sample call provably terminates.
const maxSampleAttempts = 10000

// Sampler draws uniformly distributed points from solid spheres by rejection
// sampling. The RNG is owned by the Sampler so scatters are reproducible
// under a fixed seed.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler returns a Sampler seeded with the given value.
func NewSampler(seed uint64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewPCG(seed, seed<<1|1))}
}

// SampleSphere returns exactly count points uniformly distributed inside the
// solid sphere with the given center and radius. Each candidate is drawn
// uniformly from the enclosing cube and redrawn until it falls inside the
// sphere. The boundary test is inclusive, so radius 0 yields count copies of
// the center rather than looping forever.
func (s *Sampler) SampleSphere(center Vec3, radius float64, count int) []Vec3 {
	points := make([]Vec3, count)
	for i := range points {
		points[i] = s.samplePoint(center, radius)
	}
	return points
}

func (s *Sampler) samplePoint(center Vec3, radius float64) Vec3 {
	r2 := radius * radius
	for attempt := 0; attempt < maxSampleAttempts; attempt++ {
		dx := (s.rng.Float64()*2 - 1) * radius
		dy := (s.rng.Float64()*2 - 1) * radius
		dz := (s.rng.Float64()*2 - 1) * radius
		if dx*dx+dy*dy+dz*dz <= r2 {
			return Vec3{X: center.X + dx, Y: center.Y + dy, Z: center.Z + dz}
		}
	}
	// Unreachable for any sane radius; yield the only point guaranteed
	// to be inside.
	return center
}
