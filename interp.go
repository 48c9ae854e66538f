package cursordust

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// lerp linearly interpolates between a and b by t. t is clamped to [0, 1], so
// the result never overshoots either endpoint.
func lerp(a, b, t float64) float64 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return a + (b-a)*t
}

// radiusTween eases the scatter radius toward a target over
// RadiusTweenDuration seconds. Before the first Retarget it simply holds its
// initial value; after a transition finishes it holds the target.
type radiusTween struct {
	tween *gween.Tween
	value float64 // current radius
	last  float64 // time of the previous At call, seconds
	done  bool
}

// newRadiusTween returns a tween holding the given radius until retargeted.
func newRadiusTween(initial float64) *radiusTween {
	return &radiusTween{value: initial, done: true}
}

// Retarget restarts the transition from the current radius toward target.
// now is the same monotonic clock passed to At.
func (r *radiusTween) Retarget(now, target float64) {
	r.tween = gween.New(float32(r.value), float32(target), RadiusTweenDuration, ease.Linear)
	r.last = now
	r.done = false
}

// At advances the tween to time now (monotonic seconds) and returns the
// radius. Calls with non-increasing now return the value unchanged.
func (r *radiusTween) At(now float64) float64 {
	if r.tween == nil || r.done {
		return r.value
	}
	dt := now - r.last
	if dt < 0 {
		dt = 0
	}
	r.last = now
	val, done := r.tween.Update(float32(dt))
	r.value = float64(val)
	r.done = done
	return r.value
}
