package cursordust

// SimulationState holds the external stimuli that parameterize each tick: the
// scatter anchor (usually the pointer), the eased scatter radius, and the
// color-mode flag. It is owned by the frame loop and passed into
// ParticleSet.Tick by pointer; there are no package-level singletons.
//
// All hooks and Tick must run on the same goroutine. A multi-threaded host
// must hand stimuli off to the tick goroutine itself.
type SimulationState struct {
	// Anchor is the point the scatter sphere centers on, in viewport pixels.
	Anchor Vec2
	// ColorMode, when true, re-randomizes every particle's color each tick;
	// when false, particles are opaque white.
	ColorMode bool

	restRadius    float64
	pressedRadius float64
	radius        *radiusTween
}

// NewSimulationState returns the initial state: radius at RestRadius, color
// mode off, anchor at the origin.
func NewSimulationState() *SimulationState {
	return &SimulationState{
		restRadius:    RestRadius,
		pressedRadius: PressedRadius,
		radius:        newRadiusTween(RestRadius),
	}
}

// SetRadii overrides the rest and pressed scatter radii and resets the held
// radius to rest. Call during setup, before the first tick; a reset mid-
// transition snaps.
func (s *SimulationState) SetRadii(rest, pressed float64) {
	s.restRadius = rest
	s.pressedRadius = pressed
	s.radius = newRadiusTween(rest)
}

// PointerMove updates the scatter anchor.
func (s *SimulationState) PointerMove(x, y float64) {
	s.Anchor = Vec2{X: x, Y: y}
}

// PointerDown starts easing the radius from its current value toward the
// pressed radius. now is the same monotonic clock passed to Tick, in seconds.
func (s *SimulationState) PointerDown(now float64) {
	s.radius.Retarget(now, s.pressedRadius)
}

// PointerUp starts easing the radius from its current value back toward the
// rest radius.
func (s *SimulationState) PointerUp(now float64) {
	s.radius.Retarget(now, s.restRadius)
}

// ToggleColorMode flips between opaque-white and per-tick random colors.
func (s *SimulationState) ToggleColorMode() {
	s.ColorMode = !s.ColorMode
}

// Radius advances the radius tween to time now and returns the current
// scatter radius.
func (s *SimulationState) Radius(now float64) float64 {
	return s.radius.At(now)
}
