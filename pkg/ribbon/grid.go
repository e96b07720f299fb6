package ribbon

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// Arrange lays out the given ribbons into the regular rack layout: rows of at
// most opts.PerRow ribbons, each cell outlined in opts.BorderColor, with the
// last (possibly partial) row centered horizontally. Input order is preserved
// left to right, top to bottom.
//
// The returned image is sized exactly to fit the grid: one pixel of margin
// around (TileWidth+1) x (TileHeight+1) cells. An empty input yields a valid
// 1px-tall transparent image. Ribbons that are not already RGBA are converted
// before pasting.
func (c *Composer) Arrange(ribbons []image.Image, opts GridOptions) (*image.RGBA, error) {
	if opts.TileWidth <= 0 || opts.TileHeight <= 0 {
		return nil, fmt.Errorf("invalid ribbon dimensions %dx%d", opts.TileWidth, opts.TileHeight)
	}
	if opts.PerRow <= 0 {
		return nil, fmt.Errorf("ribbons per row must be positive, got %d", opts.PerRow)
	}

	cellW := opts.TileWidth + 1
	cellH := opts.TileHeight + 1
	rowCount := (len(ribbons) + opts.PerRow - 1) / opts.PerRow

	width := 1 + cellW*opts.PerRow
	height := rowCount*cellH + 1
	if rowCount == 0 {
		height = 1
	}

	grid := image.NewRGBA(image.Rect(0, 0, width, height))

	for r := 0; r < rowCount; r++ {
		row := ribbons[r*opts.PerRow : min(len(ribbons), (r+1)*opts.PerRow)]

		// A short final row is shifted right by half a cell per missing ribbon.
		shift := cellW * (opts.PerRow - len(row)) / 2
		y := r*cellH + 1

		for i, rb := range row {
			x := shift + cellW*i + 1

			outlineRect(grid, x-1, y-1, x+opts.TileWidth, y+opts.TileHeight, opts.BorderColor)

			src, converted := toRGBA(rb)
			if converted {
				c.log.Debug("converted ribbon to RGBA before pasting", "row", r, "column", i)
			}
			dst := image.Rect(x, y, x+opts.TileWidth, y+opts.TileHeight)
			draw.Draw(grid, dst, src, src.Bounds().Min, draw.Src)
		}
	}

	return grid, nil
}

// outlineRect draws a 1px hollow rectangle with inclusive corners
// (x0,y0)-(x1,y1). Pixels outside the image are ignored.
func outlineRect(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	for x := x0; x <= x1; x++ {
		img.SetRGBA(x, y0, col)
		img.SetRGBA(x, y1, col)
	}
	for y := y0; y <= y1; y++ {
		img.SetRGBA(x0, y, col)
		img.SetRGBA(x1, y, col)
	}
}
