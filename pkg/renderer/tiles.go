package renderer

import "image"

// Tile is one unit of render work: a rectangle of pixels owned by a
// single task. IDs are assigned in row-major grid order.
type Tile struct {
	ID     int
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewTileGrid partitions a width x height image into tiles of at most
// tileSize pixels per side. Edge tiles are clamped to the image.
func NewTileGrid(width, height, tileSize int) []Tile {
	var tiles []Tile
	id := 0
	for y0 := 0; y0 < height; y0 += tileSize {
		for x0 := 0; x0 < width; x0 += tileSize {
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)
			tiles = append(tiles, Tile{ID: id, Bounds: image.Rect(x0, y0, x1, y1)})
			id++
		}
	}
	return tiles
}
