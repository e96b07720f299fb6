package shirt

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/uniformkit/shirtmaker/pkg/ribbon"
)

// DefaultFontSize is the point size used for TTF/OTF faces when none is
// given. Nametape templates expect small pixel fonts.
const DefaultFontSize = 8

// LoadFace returns the face to render nametape text with. An empty path
// yields the built-in fixed bitmap face; otherwise the file is parsed as
// TTF/OTF and a face of the requested size is created.
func LoadFace(path string, size float64) (font.Face, error) {
	if path == "" {
		return ribbon.DefaultFace(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font %s: %w", path, err)
	}

	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %v", path, err)
	}

	if size <= 0 {
		size = DefaultFontSize
	}

	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("creating font face: %v", err)
	}
	return face, nil
}
