package cursordust

import (
	"math"
	"testing"
)

var testViewport = Vec2{X: 800, Y: 600}

func testBounds() Rect {
	return Rect{Width: 800, Height: 600}
}

func TestNewParticleSetSpawnsInBounds(t *testing.T) {
	bounds := testBounds()
	ps := NewParticleSet(200, bounds, 1)

	if ps.Count() != 200 {
		t.Fatalf("Count() = %d, want 200", ps.Count())
	}
	for i := range ps.particles {
		p := &ps.particles[i]
		if !bounds.Contains(p.x, p.y) {
			t.Errorf("particle %d spawned at (%v, %v), outside bounds", i, p.x, p.y)
		}
		if p.rotation != 0 {
			t.Errorf("particle %d rotation = %v, want 0", i, p.rotation)
		}
		if p.scaleX != 1 || p.scaleY != 1 {
			t.Errorf("particle %d scale = (%v, %v), want (1, 1)", i, p.scaleX, p.scaleY)
		}
	}
}

func TestTickCommandCount(t *testing.T) {
	ps := NewParticleSet(50, testBounds(), 1)
	commands, err := ps.Tick(0, testViewport, NewSimulationState())
	if err != nil {
		t.Fatal(err)
	}
	if len(commands) != 50 {
		t.Fatalf("len(commands) = %d, want 50", len(commands))
	}
}

func TestTickInvalidViewport(t *testing.T) {
	ps := NewParticleSet(10, testBounds(), 1)
	if _, err := ps.Tick(0, Vec2{}, NewSimulationState()); err == nil {
		t.Fatal("Tick with zero viewport returned nil error")
	}
}

func TestTickGeometryIsFixedQuad(t *testing.T) {
	ps := NewParticleSet(10, testBounds(), 1)
	commands, err := ps.Tick(0, testViewport, NewSimulationState())
	if err != nil {
		t.Fatal(err)
	}
	for i, cmd := range commands {
		if cmd.Vertices != quadVertices {
			t.Errorf("command %d vertices = %v, want shared quad", i, cmd.Vertices)
		}
	}
}

// Commands must be built from the positions particles held before this tick's
// scatter: the drawn frame intentionally trails the update by one frame.
func TestTickUsesPreUpdatePositions(t *testing.T) {
	ps := NewParticleSet(20, testBounds(), 1)
	proj, err := Projection(testViewport.X, testViewport.Y)
	if err != nil {
		t.Fatal(err)
	}

	before := make([]Vec2, ps.Count())
	for i := range ps.particles {
		before[i] = Vec2{X: ps.particles[i].x, Y: ps.particles[i].y}
	}

	commands, err := ps.Tick(0, testViewport, NewSimulationState())
	if err != nil {
		t.Fatal(err)
	}

	moved := false
	for i, cmd := range commands {
		// The quad origin lands where the particle stood pre-update.
		gotX, gotY := cmd.Transform.Apply(0, 0)
		wantX, wantY := proj.Apply(before[i].X, before[i].Y)
		assertNear(t, "origin.x", gotX, wantX)
		assertNear(t, "origin.y", gotY, wantY)

		if ps.particles[i].x != before[i].X || ps.particles[i].y != before[i].Y {
			moved = true
		}
	}
	if !moved {
		t.Error("no particle position changed after Tick")
	}
}

// Post-tick positions are damped sphere samples: every particle ends within
// half the scatter radius of half the anchor.
func TestTickDampsScatter(t *testing.T) {
	ps := NewParticleSet(100, testBounds(), 1)
	state := NewSimulationState()
	state.PointerMove(400, 300)

	if _, err := ps.Tick(0, testViewport, state); err != nil {
		t.Fatal(err)
	}

	maxDist := RestRadius * scatterDamping
	for i := range ps.particles {
		p := &ps.particles[i]
		dx := p.x - 400*scatterDamping
		dy := p.y - 300*scatterDamping
		if math.Sqrt(dx*dx+dy*dy) > maxDist+epsilon {
			t.Errorf("particle %d at (%v, %v), outside damped scatter", i, p.x, p.y)
		}
	}
}

func TestSetDamping(t *testing.T) {
	ps := NewParticleSet(100, testBounds(), 1)
	ps.SetDamping(0.25)
	state := NewSimulationState()
	state.PointerMove(400, 300)

	if _, err := ps.Tick(0, testViewport, state); err != nil {
		t.Fatal(err)
	}

	maxDist := RestRadius * 0.25
	for i := range ps.particles {
		p := &ps.particles[i]
		dx := p.x - 400*0.25
		dy := p.y - 300*0.25
		if math.Sqrt(dx*dx+dy*dy) > maxDist+epsilon {
			t.Errorf("particle %d at (%v, %v), outside rescaled scatter", i, p.x, p.y)
		}
	}
}

func TestTickColorDefaultWhite(t *testing.T) {
	ps := NewParticleSet(30, testBounds(), 1)
	commands, err := ps.Tick(0, testViewport, NewSimulationState())
	if err != nil {
		t.Fatal(err)
	}
	for i, cmd := range commands {
		if cmd.Color != ColorWhite {
			t.Errorf("command %d color = %+v, want white", i, cmd.Color)
		}
	}
}

func TestTickColorMode(t *testing.T) {
	ps := NewParticleSet(30, testBounds(), 1)
	state := NewSimulationState()
	state.ToggleColorMode()

	commands, err := ps.Tick(0, testViewport, state)
	if err != nil {
		t.Fatal(err)
	}

	varied := false
	for i, cmd := range commands {
		if cmd.Color.A != 1 {
			t.Errorf("command %d alpha = %v, want 1", i, cmd.Color.A)
		}
		if cmd.Color != commands[0].Color {
			varied = true
		}
	}
	if !varied {
		t.Error("color mode produced identical colors for every particle")
	}
}

func TestTickDeterministicUnderSeed(t *testing.T) {
	a := NewParticleSet(40, testBounds(), 7)
	b := NewParticleSet(40, testBounds(), 7)

	cmdsA, err := a.Tick(0, testViewport, NewSimulationState())
	if err != nil {
		t.Fatal(err)
	}
	cmdsB, err := b.Tick(0, testViewport, NewSimulationState())
	if err != nil {
		t.Fatal(err)
	}

	for i := range cmdsA {
		if cmdsA[i].Transform != cmdsB[i].Transform {
			t.Fatalf("command %d transforms differ under identical seed", i)
		}
	}
}

func TestTickReusesCommandSlice(t *testing.T) {
	ps := NewParticleSet(10, testBounds(), 1)
	state := NewSimulationState()

	first, err := ps.Tick(0, testViewport, state)
	if err != nil {
		t.Fatal(err)
	}
	second, err := ps.Tick(1.0/60, testViewport, state)
	if err != nil {
		t.Fatal(err)
	}
	if &first[0] != &second[0] {
		t.Error("Tick allocated a fresh command slice")
	}
}

func BenchmarkTick(b *testing.B) {
	ps := NewParticleSet(100, testBounds(), 1)
	state := NewSimulationState()
	state.PointerMove(400, 300)

	now := 0.0
	b.ReportAllocs()
	for b.Loop() {
		now += 1.0 / 60
		if _, err := ps.Tick(now, testViewport, state); err != nil {
			b.Fatal(err)
		}
	}
}
