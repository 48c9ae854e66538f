package cursordust

import "math/rand/v2"

// particle holds per-particle simulation state. Unexported; managed by
// ParticleSet.
type particle struct {
	x, y     float64
	rotation float64 // radians
	scaleX   float64
	scaleY   float64
}

// quadVertices is the two-triangle quad shared by every particle, in local
// pixel space.
var quadVertices = [6]Vec2{
	{0, 0}, {ParticleSize, 0}, {0, ParticleSize},
	{0, ParticleSize}, {ParticleSize, 0}, {ParticleSize, ParticleSize},
}

// ParticleSet owns a fixed pool of particles and rebuilds their draw commands
// once per tick. The pool size never changes for the life of the set.
type ParticleSet struct {
	particles []particle
	sampler   *Sampler
	rng       *rand.Rand // spawn positions and color-mode colors
	damping   float64
	commands  []DrawCommand
}

// NewParticleSet creates a pool of count particles with positions randomized
// inside bounds, unit scale, and zero rotation. The seed drives both the
// sphere sampler and color randomization, so a fixed seed replays the same
// scatter.
func NewParticleSet(count int, bounds Rect, seed uint64) *ParticleSet {
	rng := rand.New(rand.NewPCG(seed, seed<<1|1))
	ps := &ParticleSet{
		particles: make([]particle, count),
		sampler:   NewSampler(rng.Uint64()),
		rng:       rng,
		damping:   scatterDamping,
		commands:  make([]DrawCommand, count),
	}
	for i := range ps.particles {
		p := &ps.particles[i]
		p.x = bounds.X + rng.Float64()*bounds.Width
		p.y = bounds.Y + rng.Float64()*bounds.Height
		p.scaleX = 1
		p.scaleY = 1
	}
	return ps
}

// Count returns the fixed pool size.
func (ps *ParticleSet) Count() int {
	return len(ps.particles)
}

// SetDamping overrides the scatter damping factor (default scatterDamping).
func (ps *ParticleSet) SetDamping(d float64) {
	ps.damping = d
}

// Tick advances the simulation by one frame and returns one draw command per
// particle. now is a monotonic clock in seconds shared with the state's
// pointer hooks; viewport is the output size in pixels.
//
// Each command is built from the particle's pre-update position, then the
// position is re-scattered for the next frame: draw output intentionally
// trails the scatter by one frame. Sampled coordinates are scaled by the
// set's damping factor before becoming positions.
//
// The returned slice is reused across ticks; renderers must consume it before
// the next call.
func (ps *ParticleSet) Tick(now float64, viewport Vec2, state *SimulationState) ([]DrawCommand, error) {
	projection, err := Projection(viewport.X, viewport.Y)
	if err != nil {
		return nil, err
	}

	radius := state.Radius(now)
	points := ps.sampler.SampleSphere(
		Vec3{X: state.Anchor.X, Y: state.Anchor.Y},
		radius,
		len(ps.particles),
	)

	for i := range ps.particles {
		p := &ps.particles[i]

		color := ColorWhite
		if state.ColorMode {
			color = Color{
				R: ps.rng.Float64(),
				G: ps.rng.Float64(),
				B: ps.rng.Float64(),
				A: 1,
			}
		}

		ps.commands[i] = DrawCommand{
			Vertices: quadVertices,
			Transform: Compose(
				projection,
				Translation(p.x, p.y),
				Rotation(p.rotation),
				Scaling(p.scaleX, p.scaleY),
			),
			Color: color,
		}

		p.x = points[i].X * ps.damping
		p.y = points[i].Y * ps.damping
	}
	return ps.commands, nil
}
