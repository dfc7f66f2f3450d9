package game

import "github.com/vovakirdan/signcatch/internal/core"

// Viewport places the playfield in pointer coordinates.
type Viewport struct {
	Left float64   // Pointer x of the playfield's left edge
	Size core.Size // Playfield size in pixels
}

// GeometryFunc reports the current playfield placement. It returns false when
// the geometry is not known yet, for example before the terminal reported its size.
type GeometryFunc func() (Viewport, bool)

// FixedGeometry returns a GeometryFunc that always reports vp.
func FixedGeometry(vp Viewport) GeometryFunc {
	return func() (Viewport, bool) {
		return vp, true
	}
}

// viewport queries the live geometry, falling back to the configured
// viewport when the query is unavailable or reports an empty area.
func (g *Game) viewport() Viewport {
	if g.geometry != nil {
		if vp, ok := g.geometry(); ok && !vp.Size.Empty() {
			return vp
		}
	}
	return Viewport{
		Size: core.Size{
			W: g.cfg.Playfield.FallbackWidth,
			H: g.cfg.Playfield.FallbackHeight,
		},
	}
}
