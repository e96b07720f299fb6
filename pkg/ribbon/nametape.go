package ribbon

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DefaultFace returns the built-in fixed-width bitmap face used for nametapes
// when no font file is supplied.
func DefaultFace() font.Face {
	return basicfont.Face7x13
}

// RenderNametape draws text horizontally centered onto a nametape template,
// one pixel below the top edge, and returns the decorated template. Text is
// blended over the template with the glyphs' alpha coverage.
//
// If the text measures wider than the template a warning is logged and the
// text is drawn anyway, clipped at the template edges. A non-RGBA template is
// converted first with a warning; the converted copy is what gets drawn on
// and returned.
func (c *Composer) RenderNametape(template image.Image, text string, face font.Face, col color.Color) *image.RGBA {
	tpl, converted := toRGBA(template)
	if converted {
		c.log.Warn("nametape template was not RGBA, output converted to RGBA")
	}

	d := &font.Drawer{
		Dst:  tpl,
		Src:  image.NewUniform(col),
		Face: face,
	}

	textWidth := d.MeasureString(text).Ceil()
	tplWidth := tpl.Bounds().Dx()
	if textWidth > tplWidth {
		c.log.Warn("nametape text is wider than the template and will be cut off",
			"text_width", textWidth, "template_width", tplWidth)
	}

	// Anchor the top of the glyphs one pixel below the template's top edge.
	d.Dot = fixed.P(tplWidth/2-textWidth/2, 1+face.Metrics().Ascent.Ceil())
	d.DrawString(text)

	return tpl
}
