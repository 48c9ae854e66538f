package cursordust

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default particle color.
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector. The sphere sampler works in 3D; consumers of its output
// use only X and Y.
type Vec3 struct {
	X, Y, Z float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Simulation constants. RestRadius is the scatter radius when the pointer is
// up, PressedRadius while it is held. The radius eases between the two over
// RadiusTweenDuration seconds (equivalent to 0.005 alpha per millisecond).
const (
	RestRadius          = 50.0
	PressedRadius       = 200.0
	RadiusTweenDuration = 0.2

	// ParticleSize is the edge length of each particle's quad in pixels.
	ParticleSize = 5.0

	// scatterDamping scales sampled sphere coordinates down before they
	// become particle positions. Halving keeps the cloud visually tight
	// around the anchor.
	scatterDamping = 0.5
)
