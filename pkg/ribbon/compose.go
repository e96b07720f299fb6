package ribbon

import (
	"image"
	"image/draw"
)

// PlaceGrid pastes a ribbon grid (or any overlay) onto a shirt canvas at the
// given anchor point and returns the canvas. When alignTop is true the anchor
// is the overlay's top-left corner; otherwise it is the bottom-left corner.
//
// The paste replaces the covered canvas region wholesale, alpha channel
// included; it does not blend the overlay over existing pixels. Regions
// falling outside the canvas are clipped. If either image is not RGBA it is
// converted first and a warning is logged; when the canvas needs conversion
// the returned image is the converted copy, not the argument.
func (c *Composer) PlaceGrid(canvas, overlay image.Image, anchor image.Point, alignTop bool) *image.RGBA {
	dst, converted := toRGBA(canvas)
	if converted {
		c.log.Warn("shirt canvas was not RGBA and may have incorrect transparency")
	}

	src, converted := toRGBA(overlay)
	if converted {
		c.log.Warn("ribbon grid was not RGBA and may have incorrect transparency")
	}

	b := dst.Bounds()
	if anchor.X < 0 || anchor.X >= b.Dx() || anchor.Y < 0 || anchor.Y >= b.Dy() {
		c.log.Warn("anchor lies outside the shirt canvas, ribbons may be partially obscured",
			"x", anchor.X, "y", anchor.Y, "width", b.Dx(), "height", b.Dy())
	}

	if !alignTop {
		anchor.Y -= src.Bounds().Dy()
	}

	r := image.Rect(anchor.X, anchor.Y, anchor.X+src.Bounds().Dx(), anchor.Y+src.Bounds().Dy())
	draw.Draw(dst, r, src, src.Bounds().Min, draw.Src)

	return dst
}
