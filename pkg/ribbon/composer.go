package ribbon

import (
	"context"
	"image"
	"image/draw"
	"log/slog"
)

// nopHandler is a slog.Handler that silently discards all records. Enabled
// returns false so the caller skips message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// Composer performs the compositing operations: arranging ribbon grids,
// placing them on a shirt canvas, and rendering nametapes.
//
// By default a Composer produces no log output. All diagnostics described in
// the package documentation (mode conversions, out-of-bounds anchors, text
// overflow) are non-fatal warnings on the configured logger.
type Composer struct {
	log *slog.Logger
}

// Option configures a Composer.
type Option func(*Composer)

// WithLogger sets the logger used for diagnostic warnings. Pass nil to keep
// the default silent behavior.
func WithLogger(l *slog.Logger) Option {
	return func(c *Composer) {
		if l != nil {
			c.log = l
		}
	}
}

// NewComposer creates a new composer instance.
func NewComposer(opts ...Option) *Composer {
	c := &Composer{log: slog.New(nopHandler{})}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewShirt creates a blank fully transparent ShirtSize x ShirtSize canvas for
// the ribbons to go on.
func (c *Composer) NewShirt() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, ShirtSize, ShirtSize))
}

// toRGBA returns img as *image.RGBA, converting if necessary. The second
// return value reports whether a conversion took place.
func toRGBA(img image.Image) (*image.RGBA, bool) {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba, false
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba, true
}
