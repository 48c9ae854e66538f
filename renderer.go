package cursordust

// DrawCommand is the core's output unit: one particle's geometry, composed
// transform, and color, ready for rasterization by a Renderer.
type DrawCommand struct {
	// Vertices are two triangles in pixel space relative to the particle
	// origin. Placement lives entirely in Transform.
	Vertices [6]Vec2
	// Transform is the composed matrix (projection * translation *
	// rotation * scale) mapping Vertices to clip space.
	Transform Matrix
	Color     Color
}

// Renderer rasterizes one frame's worth of draw commands. The simulation core
// produces commands and transform math only; executing the actual drawing is
// the renderer's job. EbitenRenderer is the bundled implementation.
type Renderer interface {
	Flush(viewport Vec2, commands []DrawCommand) error
}
