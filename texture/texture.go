// Package texture generates procedural UV test textures.
//
// The generated pattern is a colored checkerboard with grid lines, a border,
// and optional per-cell coordinate labels. Mapping it onto a model makes UV
// seams, orientation flips and scale errors immediately visible.
package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DefaultPalette holds the four checker colors, cycled diagonally so no two
// adjacent cells share a color.
var DefaultPalette = []color.RGBA{
	{R: 255, G: 100, B: 100, A: 255}, // red
	{R: 100, G: 255, B: 100, A: 255}, // green
	{R: 100, G: 100, B: 255, A: 255}, // blue
	{R: 255, G: 255, B: 100, A: 255}, // yellow
}

// Options control the generated texture.
type Options struct {
	Width  int
	Height int

	// Cells is the number of checker cells along each axis.
	Cells int

	// Palette is cycled with index (row+col) % len(Palette).
	Palette []color.RGBA

	// GridWidth is the thickness in pixels of the lines drawn on every
	// cell boundary, centered on the boundary.
	GridWidth int

	// BorderWidth is the thickness in pixels of the outer border, drawn
	// inward from the image edge.
	BorderWidth int

	// Labels draws the "row,col" coordinates into each cell.
	Labels bool
}

// DefaultOptions returns the standard 512×512 UV test texture configuration:
// a 4×4 checkerboard of 128 px cells, 3 px grid lines and a 5 px border.
func DefaultOptions() Options {
	return Options{
		Width:       512,
		Height:      512,
		Cells:       4,
		Palette:     DefaultPalette,
		GridWidth:   3,
		BorderWidth: 5,
	}
}

// Generate renders the test texture described by opts. Non-positive
// dimensions, cell counts and empty palettes fall back to their
// DefaultOptions values; a GridWidth or BorderWidth of zero disables that
// element. The output depends only on opts, so repeated runs produce
// identical pixels.
func Generate(opts Options) *image.RGBA {
	def := DefaultOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.Cells <= 0 {
		opts.Cells = def.Cells
	}
	if len(opts.Palette) == 0 {
		opts.Palette = def.Palette
	}
	if opts.GridWidth < 0 {
		opts.GridWidth = 0
	}
	if opts.BorderWidth < 0 {
		opts.BorderWidth = 0
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	fillRect(img, img.Bounds(), color.White)

	drawCheckers(img, opts)
	drawGrid(img, opts)
	drawBorder(img, opts)
	if opts.Labels {
		drawLabels(img, opts)
	}
	return img
}

// cellEdge returns the pixel coordinate of cell boundary i along an axis of
// the given extent.
func cellEdge(i, extent, cells int) int {
	return i * extent / cells
}

func drawCheckers(img *image.RGBA, opts Options) {
	for row := 0; row < opts.Cells; row++ {
		for col := 0; col < opts.Cells; col++ {
			c := opts.Palette[(row+col)%len(opts.Palette)]
			cell := image.Rect(
				cellEdge(col, opts.Width, opts.Cells),
				cellEdge(row, opts.Height, opts.Cells),
				cellEdge(col+1, opts.Width, opts.Cells),
				cellEdge(row+1, opts.Height, opts.Cells),
			)
			fillRect(img, cell, c)
		}
	}
}

func drawGrid(img *image.RGBA, opts Options) {
	if opts.GridWidth == 0 {
		return
	}
	w := opts.GridWidth
	for i := 0; i <= opts.Cells; i++ {
		x := cellEdge(i, opts.Width, opts.Cells)
		fillRect(img, image.Rect(x-w/2, 0, x-w/2+w, opts.Height), color.Black)
		y := cellEdge(i, opts.Height, opts.Cells)
		fillRect(img, image.Rect(0, y-w/2, opts.Width, y-w/2+w), color.Black)
	}
}

func drawBorder(img *image.RGBA, opts Options) {
	if opts.BorderWidth == 0 {
		return
	}
	w, h, b := opts.Width, opts.Height, opts.BorderWidth
	fillRect(img, image.Rect(0, 0, w, b), color.Black)
	fillRect(img, image.Rect(0, h-b, w, h), color.Black)
	fillRect(img, image.Rect(0, 0, b, h), color.Black)
	fillRect(img, image.Rect(w-b, 0, w, h), color.Black)
}

func drawLabels(img *image.RGBA, opts Options) {
	face := basicfont.Face7x13
	for row := 0; row < opts.Cells; row++ {
		for col := 0; col < opts.Cells; col++ {
			x := cellEdge(col, opts.Width, opts.Cells)
			y := cellEdge(row, opts.Height, opts.Cells)
			d := font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(color.Black),
				Face: face,
				Dot: fixed.P(
					x+opts.GridWidth+4,
					y+opts.GridWidth+4+face.Ascent,
				),
			}
			d.DrawString(fmt.Sprintf("%d,%d", row, col))
		}
	}
}

// fillRect fills r (clipped to the image bounds) with a solid color.
func fillRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r.Intersect(img.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}
