// Package cursordust is a cursor-anchored particle-scatter simulation for
// [Ebitengine].
//
// Cursordust keeps a fixed pool of point particles and, once per frame,
// re-scatters them inside a sphere centered on the pointer. Pressing the
// pointer grows the scatter radius, releasing it shrinks it back (eased via
// [gween]), and a key toggle switches the particles between opaque white and
// per-frame random colors.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and frame
// loop for you:
//
//	if err := cursordust.Run(cursordust.DefaultConfig()); err != nil {
//		log.Fatal(err)
//	}
//
// # Embedding
//
// For full control, own the loop yourself: create a [SimulationState] and a
// [ParticleSet], feed pointer and key events into the state's hooks, and call
// [ParticleSet.Tick] once per frame. Tick returns a slice of [DrawCommand]
// values (two triangles, a composed 3x3 transform, and a color per particle)
// that any [Renderer] can rasterize. [EbitenRenderer] is the bundled backend;
// the simulation core itself never touches the GPU.
//
// The core is single-threaded: state hooks and Tick must run on the same
// goroutine (Ebitengine's update goroutine when using [Run]).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package cursordust
