package ribbon

import "image/color"

// ShirtSize is the edge length of the blank garment canvas in pixels.
const ShirtSize = 128

// Default grid geometry for the standard ribbon rack layout.
const (
	DefaultTileWidth  = 9
	DefaultTileHeight = 3
	DefaultPerRow     = 4
)

// DefaultBorderColor is the outline drawn around each ribbon cell.
var DefaultBorderColor = color.RGBA{R: 80, G: 80, B: 80, A: 255}

// DefaultTextColor is the nametape text color.
var DefaultTextColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// GridOptions configures how Arrange lays out ribbons.
type GridOptions struct {
	TileWidth   int // width of a single ribbon in pixels
	TileHeight  int // height of a single ribbon in pixels
	PerRow      int // maximum ribbons per row
	BorderColor color.RGBA
}

// DefaultGridOptions returns the standard 9x3, four-per-row layout.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		TileWidth:   DefaultTileWidth,
		TileHeight:  DefaultTileHeight,
		PerRow:      DefaultPerRow,
		BorderColor: DefaultBorderColor,
	}
}
