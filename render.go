package cursordust

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxBatchCommands caps the commands per DrawTriangles call so every vertex
// index stays within uint16 range (6 vertices per command).
const maxBatchCommands = math.MaxUint16 / 6

// whitePixelImage backs untextured triangles. Lazily created; cursordust is
// single-threaded, so no sync.Once.
var whitePixelImage *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// clipToScreen maps a clip-space point (origin center, Y up, range [-1, 1])
// back to viewport pixels. Draw-command transforms end in clip space; ebiten's
// DrawTriangles wants screen pixels, so the backend undoes the projection's
// coordinate convention.
func clipToScreen(clipX, clipY float64, viewport Vec2) (float64, float64) {
	return (clipX + 1) * 0.5 * viewport.X, (1 - clipY) * 0.5 * viewport.Y
}

// EbitenRenderer rasterizes draw commands onto an ebiten image with a single
// DrawTriangles call per frame. Set the frame's target from ebiten.Game.Draw
// before flushing.
type EbitenRenderer struct {
	target *ebiten.Image
	verts  []ebiten.Vertex
	inds   []uint16
}

// NewEbitenRenderer returns a renderer with buffers sized for count particles.
func NewEbitenRenderer(count int) *EbitenRenderer {
	return &EbitenRenderer{
		verts: make([]ebiten.Vertex, 0, count*6),
		inds:  make([]uint16, 0, count*6),
	}
}

// SetTarget sets the image the next Flush draws onto.
func (r *EbitenRenderer) SetTarget(target *ebiten.Image) {
	r.target = target
}

// Flush transforms every command's vertices to screen space and submits them,
// splitting into multiple DrawTriangles calls whenever a single batch would
// overflow uint16 indices. Colors are premultiplied at submission. A nil
// target is a no-op so a Flush racing window teardown stays safe.
func (r *EbitenRenderer) Flush(viewport Vec2, commands []DrawCommand) error {
	if r.target == nil {
		return nil
	}

	img := ensureWhitePixel()
	var triOp ebiten.DrawTrianglesOptions
	for len(commands) > 0 {
		n := len(commands)
		if n > maxBatchCommands {
			n = maxBatchCommands
		}
		r.appendCommands(viewport, commands[:n])
		r.target.DrawTriangles(r.verts, r.inds, img, &triOp)
		commands = commands[n:]
	}
	return nil
}

// appendCommands rebuilds the vertex and index buffers from the frame's
// commands. Split from Flush so buffer contents are checkable without a draw
// target.
func (r *EbitenRenderer) appendCommands(viewport Vec2, commands []DrawCommand) {
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]

	for i := range commands {
		cmd := &commands[i]
		cr := float32(cmd.Color.R)
		cg := float32(cmd.Color.G)
		cb := float32(cmd.Color.B)
		ca := float32(cmd.Color.A)

		base := uint16(len(r.verts))
		for _, v := range cmd.Vertices {
			clipX, clipY := cmd.Transform.Apply(v.X, v.Y)
			sx, sy := clipToScreen(clipX, clipY, viewport)
			r.verts = append(r.verts, ebiten.Vertex{
				DstX: float32(sx),
				DstY: float32(sy),
				// Center of the 1x1 white pixel.
				SrcX:   0.5,
				SrcY:   0.5,
				ColorR: cr * ca,
				ColorG: cg * ca,
				ColorB: cb * ca,
				ColorA: ca,
			})
		}
		for j := uint16(0); j < 6; j++ {
			r.inds = append(r.inds, base+j)
		}
	}
}
