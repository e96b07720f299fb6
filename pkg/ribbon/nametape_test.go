package ribbon

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"golang.org/x/image/font"
)

func TestRenderNametapeCentered(t *testing.T) {
	c := NewComposer()
	face := DefaultFace()

	template := image.NewRGBA(image.Rect(0, 0, 64, 16))
	got := c.RenderNametape(template, "AB", face, DefaultTextColor)

	textWidth := font.MeasureString(face, "AB").Ceil()
	wantLeft := 64/2 - textWidth/2

	minX, maxX := 64, -1
	for y := 0; y < 16; y++ {
		for x := 0; x < 64; x++ {
			if got.RGBAAt(x, y).A == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
		}
	}

	if maxX < 0 {
		t.Fatal("Expected text pixels on the template, found none")
	}
	if minX < wantLeft || maxX >= wantLeft+textWidth {
		t.Errorf("Text drawn at x=%d..%d, want within %d..%d", minX, maxX, wantLeft, wantLeft+textWidth-1)
	}
}

func TestRenderNametapeOverflowWarns(t *testing.T) {
	c, buf := captureLogger()

	template := image.NewRGBA(image.Rect(0, 0, 20, 16))
	got := c.RenderNametape(template, "QUARTERMASTER", DefaultFace(), DefaultTextColor)

	if got == nil {
		t.Fatal("Expected a bitmap back despite the overflow")
	}
	if !strings.Contains(buf.String(), "cut off") {
		t.Errorf("Expected overflow warning, got log output: %q", buf.String())
	}
}

func TestRenderNametapeConvertsTemplate(t *testing.T) {
	c, buf := captureLogger()

	// Non-RGBA template: the converted copy must be the one drawn on.
	template := image.NewNRGBA(image.Rect(0, 0, 64, 16))
	got := c.RenderNametape(template, "AB", DefaultFace(), color.RGBA{R: 255, G: 255, B: 255, A: 255})

	if !strings.Contains(buf.String(), "RGBA") {
		t.Errorf("Expected conversion warning, got log output: %q", buf.String())
	}

	drawn := false
	for y := 0; y < 16 && !drawn; y++ {
		for x := 0; x < 64; x++ {
			if got.RGBAAt(x, y).A != 0 {
				drawn = true
				break
			}
		}
	}
	if !drawn {
		t.Error("Expected text on the returned converted template")
	}

	// The original template stays blank.
	for i, v := range template.Pix {
		if v != 0 {
			t.Errorf("Original template modified at byte %d", i)
			break
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#505050", color.RGBA{80, 80, 80, 255}, false},
		{"505050", color.RGBA{80, 80, 80, 255}, false},
		{"#505050ff", color.RGBA{80, 80, 80, 255}, false},
		{"#50505000", color.RGBA{80, 80, 80, 0}, false},
		{"#f80", color.RGBA{255, 136, 0, 255}, false},
		{"", color.RGBA{}, true},
		{"#12345", color.RGBA{}, true},
		{"#zzzzzz", color.RGBA{}, true},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseHexColor(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHexColor(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
