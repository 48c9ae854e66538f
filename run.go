package cursordust

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// frameRenderer is what the loop needs from a backend: per-frame target
// binding plus Renderer's Flush.
type frameRenderer interface {
	Renderer
	SetTarget(*ebiten.Image)
}

// game adapts the simulation to ebiten.Game: one Tick per update, stimuli
// read from ebiten input, commands flushed through the renderer on Draw.
type game struct {
	state    *SimulationState
	set      *ParticleSet
	renderer frameRenderer
	viewport Vec2
	now      float64 // monotonic simulation clock, seconds
	commands []DrawCommand
	flushErr error // first Draw-side renderer failure, surfaced from Update
}

func (g *game) Update() error {
	// ebiten.Game.Draw cannot fail, so renderer errors surface here on the
	// following frame.
	if g.flushErr != nil {
		return g.flushErr
	}

	g.now += 1.0 / float64(ebiten.TPS())

	x, y := ebiten.CursorPosition()
	g.state.PointerMove(float64(x), float64(y))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.state.PointerDown(g.now)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.state.PointerUp(g.now)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.state.ToggleColorMode()
	}

	commands, err := g.set.Tick(g.now, g.viewport, g.state)
	if err != nil {
		return err
	}
	g.commands = commands
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.renderer.SetTarget(screen)
	if err := g.renderer.Flush(g.viewport, g.commands); err != nil && g.flushErr == nil {
		g.flushErr = err
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return int(g.viewport.X), int(g.viewport.Y)
}

// Run opens a window and drives the simulation until the window closes:
// pointer move re-anchors the scatter, holding the left button grows the
// radius, and the C key toggles color mode. Blocks until exit.
func Run(cfg Config) error {
	cfg.applyDefaults()
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	viewport := Vec2{X: float64(cfg.Width), Y: float64(cfg.Height)}
	bounds := Rect{Width: viewport.X, Height: viewport.Y}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)

	state := NewSimulationState()
	state.SetRadii(cfg.RestRadius, cfg.PressedRadius)

	set := NewParticleSet(cfg.ParticleCount, bounds, seed)
	set.SetDamping(cfg.Damping)

	return ebiten.RunGame(&game{
		state:    state,
		set:      set,
		renderer: NewEbitenRenderer(cfg.ParticleCount),
		viewport: viewport,
	})
}
