package shirt

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/uniformkit/shirtmaker/pkg/ribbon"
)

func writeRibbonPNG(t *testing.T, path string, col color.RGBA) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, ribbon.DefaultTileWidth, ribbon.DefaultTileHeight))
	for y := 0; y < ribbon.DefaultTileHeight; y++ {
		for x := 0; x < ribbon.DefaultTileWidth; x++ {
			img.SetRGBA(x, y, col)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode %s: %v", path, err)
	}
}

func setupAssets(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	writeRibbonPNG(t, filepath.Join(dir, "commendation.png"), color.RGBA{R: 200, A: 255})
	writeRibbonPNG(t, filepath.Join(dir, "good_conduct.png"), color.RGBA{G: 200, A: 255})
	writeRibbonPNG(t, filepath.Join(dir, "service.png"), color.RGBA{B: 200, A: 255})
	return dir
}

func TestComposeProducesShirtPNG(t *testing.T) {
	dir := setupAssets(t)

	result, err := New(nil).Compose(context.Background(), &ComposeOptions{
		AssetsDir: dir,
		Grid:      ribbon.DefaultGridOptions(),
		Anchor:    image.Pt(3, 20),
		AlignTop:  true,
	})
	if err != nil {
		t.Fatalf("Compose returned error: %v", err)
	}

	if result.RibbonCount != 3 {
		t.Errorf("Expected 3 ribbons composed, got %d", result.RibbonCount)
	}
	if result.Width != ribbon.ShirtSize || result.Height != ribbon.ShirtSize {
		t.Errorf("Expected %dx%d shirt, got %dx%d", ribbon.ShirtSize, ribbon.ShirtSize, result.Width, result.Height)
	}

	img, err := png.Decode(bytes.NewReader(result.ImageData))
	if err != nil {
		t.Fatalf("Result is not a decodable PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != ribbon.ShirtSize || b.Dy() != ribbon.ShirtSize {
		t.Errorf("Decoded shirt is %dx%d, want %dx%d", b.Dx(), b.Dy(), ribbon.ShirtSize, ribbon.ShirtSize)
	}
}

func TestComposeRibbonSubset(t *testing.T) {
	dir := setupAssets(t)
	m := New(nil)

	result, err := m.Compose(context.Background(), &ComposeOptions{
		AssetsDir: dir,
		Ribbons:   []string{"service.png", "commendation.png"},
		Grid:      ribbon.DefaultGridOptions(),
		AlignTop:  true,
	})
	if err != nil {
		t.Fatalf("Compose returned error: %v", err)
	}
	if result.RibbonCount != 2 {
		t.Errorf("Expected 2 ribbons composed, got %d", result.RibbonCount)
	}

	if _, err := m.Compose(context.Background(), &ComposeOptions{
		AssetsDir: dir,
		Ribbons:   []string{"valor.png"},
		Grid:      ribbon.DefaultGridOptions(),
	}); err == nil {
		t.Error("Expected error for unknown ribbon name")
	}
}

func TestComposeCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(nil).Compose(ctx, &ComposeOptions{
		AssetsDir: setupAssets(t),
		Grid:      ribbon.DefaultGridOptions(),
	})
	if err != context.Canceled {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestNametapeGeneratedTemplate(t *testing.T) {
	result, err := New(nil).Nametape(context.Background(), &NametapeOptions{
		Text: "SMITH",
	})
	if err != nil {
		t.Fatalf("Nametape returned error: %v", err)
	}

	if result.Width != DefaultTapeWidth || result.Height != DefaultTapeHeight {
		t.Errorf("Expected %dx%d tape, got %dx%d", DefaultTapeWidth, DefaultTapeHeight, result.Width, result.Height)
	}

	img, err := png.Decode(bytes.NewReader(result.ImageData))
	if err != nil {
		t.Fatalf("Result is not a decodable PNG: %v", err)
	}

	// The generated template is transparent, so any opaque pixel is text.
	drawn := false
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !drawn; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				drawn = true
				break
			}
		}
	}
	if !drawn {
		t.Error("Expected rendered text pixels on the nametape")
	}
}

func TestNametapeTemplateFile(t *testing.T) {
	dir := t.TempDir()
	tpl := filepath.Join(dir, "tape.png")
	writeRibbonPNG(t, tpl, color.RGBA{R: 40, G: 60, B: 40, A: 255})

	result, err := New(nil).Nametape(context.Background(), &NametapeOptions{
		Text:         "A",
		TemplatePath: tpl,
	})
	if err != nil {
		t.Fatalf("Nametape returned error: %v", err)
	}
	if result.Width != ribbon.DefaultTileWidth {
		t.Errorf("Expected template width %d, got %d", ribbon.DefaultTileWidth, result.Width)
	}
}

func TestNametapeMissingFont(t *testing.T) {
	_, err := New(nil).Nametape(context.Background(), &NametapeOptions{
		Text:     "SMITH",
		FontPath: filepath.Join(t.TempDir(), "missing.ttf"),
	})
	if err == nil {
		t.Error("Expected error for missing font file")
	}
}
