package shirt

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"path/filepath"

	"github.com/uniformkit/shirtmaker/internal/assets"
	"github.com/uniformkit/shirtmaker/pkg/ribbon"
)

// Default size of a generated nametape template, sized to fit the built-in
// bitmap face with a pixel of headroom.
const (
	DefaultTapeWidth  = 64
	DefaultTapeHeight = 16
)

// ComposeOptions contains all parameters for composing a shirt.
type ComposeOptions struct {
	AssetsDir string
	Ribbons   []string // asset paths relative to AssetsDir; empty means all, sorted
	Grid      ribbon.GridOptions
	Anchor    image.Point
	AlignTop  bool
}

// NametapeOptions contains all parameters for rendering a nametape.
type NametapeOptions struct {
	Text         string
	TemplatePath string // empty generates a blank transparent template
	Width        int    // generated template size, defaults above
	Height       int
	FontPath     string // TTF/OTF file, empty uses the built-in bitmap face
	FontSize     float64
	Color        color.RGBA // zero value means ribbon.DefaultTextColor
}

// UnknownRibbonError reports a requested ribbon that is not present in the
// assets directory.
type UnknownRibbonError struct {
	Name string
	Dir  string
}

func (e *UnknownRibbonError) Error() string {
	return fmt.Sprintf("unknown ribbon %q in %s", e.Name, e.Dir)
}

// Result contains a finished render.
type Result struct {
	ImageData   []byte // PNG
	Width       int
	Height      int
	RibbonCount int
}

// Maker runs the compose pipeline: load ribbon assets, arrange them into a
// grid, and place the grid on a blank shirt canvas.
type Maker struct {
	composer *ribbon.Composer
	loader   *assets.Loader
	log      *slog.Logger
}

// New creates a new maker instance. A nil logger falls back to slog.Default().
func New(log *slog.Logger) *Maker {
	if log == nil {
		log = slog.Default()
	}
	return &Maker{
		composer: ribbon.NewComposer(ribbon.WithLogger(log)),
		loader:   assets.NewLoader(log),
		log:      log,
	}
}

// Compose performs the full shirt composition and returns the encoded result.
func (m *Maker) Compose(ctx context.Context, opts *ComposeOptions) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	all, err := m.loader.Load(opts.AssetsDir)
	if err != nil {
		return nil, err
	}

	var seq []image.Image
	if len(opts.Ribbons) > 0 {
		for _, name := range opts.Ribbons {
			img, ok := all[filepath.Join(opts.AssetsDir, filepath.FromSlash(name))]
			if !ok {
				return nil, &UnknownRibbonError{Name: name, Dir: opts.AssetsDir}
			}
			seq = append(seq, img)
		}
	} else {
		for _, path := range assets.SortedPaths(all) {
			seq = append(seq, all[path])
		}
	}

	m.log.Info("arranging ribbons", "count", len(seq))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	grid, err := m.composer.Arrange(seq, opts.Grid)
	if err != nil {
		return nil, err
	}

	canvas := m.composer.NewShirt()
	canvas = m.composer.PlaceGrid(canvas, grid, opts.Anchor, opts.AlignTop)

	data, err := encodePNG(canvas)
	if err != nil {
		return nil, fmt.Errorf("failed to encode shirt: %v", err)
	}

	return &Result{
		ImageData:   data,
		Width:       canvas.Bounds().Dx(),
		Height:      canvas.Bounds().Dy(),
		RibbonCount: len(seq),
	}, nil
}

// Nametape renders a nametape, either onto a template file or onto a
// generated blank template, and returns the encoded result.
func (m *Maker) Nametape(ctx context.Context, opts *NametapeOptions) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	template, err := m.loadTemplate(opts)
	if err != nil {
		return nil, err
	}

	face, err := LoadFace(opts.FontPath, opts.FontSize)
	if err != nil {
		return nil, err
	}

	col := opts.Color
	if col == (color.RGBA{}) {
		col = ribbon.DefaultTextColor
	}

	tape := m.composer.RenderNametape(template, opts.Text, face, col)

	data, err := encodePNG(tape)
	if err != nil {
		return nil, fmt.Errorf("failed to encode nametape: %v", err)
	}

	return &Result{
		ImageData: data,
		Width:     tape.Bounds().Dx(),
		Height:    tape.Bounds().Dy(),
	}, nil
}

func (m *Maker) loadTemplate(opts *NametapeOptions) (image.Image, error) {
	if opts.TemplatePath != "" {
		return assets.Open(opts.TemplatePath)
	}

	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = DefaultTapeWidth
	}
	if h <= 0 {
		h = DefaultTapeHeight
	}
	return image.NewRGBA(image.Rect(0, 0, w, h)), nil
}

// encodePNG encodes the finished canvas as PNG.
func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
