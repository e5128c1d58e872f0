// Package raster provides the raster-buffer primitives the core solver
// deliberately has no business with: filling shapes, and saving a frame as a
// PPM image. These mirror the original material's p_frame helpers
// (pictoro_fill_rect, pictoro_save_frame) over Go's image.RGBA instead of a
// raw malloc'd pixel buffer.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/Jprebys/pictoro-go/pkg/wfc"
)

// Frame is a fixed-size RGBA raster buffer.
type Frame struct {
	Width, Height int
	img           *image.RGBA
}

// NewFrame allocates a blank (zero-value, transparent black) frame.
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Fill paints every pixel of the frame the given color.
func (f *Frame) Fill(c color.RGBA) {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			f.img.SetRGBA(x, y, c)
		}
	}
}

// FillRect paints the w x h rectangle with top-left corner (x, y), clipped
// to the frame's bounds.
func (f *Frame) FillRect(x, y, w, h int, c color.RGBA) {
	for j := y; j < y+h; j++ {
		if j < 0 || j >= f.Height {
			continue
		}
		for i := x; i < x+w; i++ {
			if i < 0 || i >= f.Width {
				continue
			}
			f.img.SetRGBA(i, j, c)
		}
	}
}

// DrawLine draws a straight line from (x0, y0) to (x1, y1) using Bresenham's
// algorithm.
func (f *Frame) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		f.setIfInBounds(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawCircle draws the outline of a circle centered at (cx, cy) with the
// given radius using the midpoint circle algorithm.
func (f *Frame) DrawCircle(cx, cy, radius int, c color.RGBA) {
	x, y := radius, 0
	err := 0

	for x >= y {
		for _, p := range [][2]int{
			{cx + x, cy + y}, {cx + y, cy + x},
			{cx - y, cy + x}, {cx - x, cy + y},
			{cx - x, cy - y}, {cx - y, cy - x},
			{cx + y, cy - x}, {cx + x, cy - y},
		} {
			f.setIfInBounds(p[0], p[1], c)
		}

		y++
		if err <= 0 {
			err += 2*y + 1
		}
		if err > 0 {
			x--
			err -= 2*x + 1
		}
	}
}

func (f *Frame) setIfInBounds(x, y int, c color.RGBA) {
	if x >= 0 && x < f.Width && y >= 0 && y < f.Height {
		f.img.SetRGBA(x, y, c)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// SavePPM writes the frame as a binary (P6) PPM: a short ASCII header
// followed by width*height*3 raw RGB bytes, alpha dropped — the same byte
// layout as the original material's pictoro_save_frame.
func (f *Frame) SavePPM(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating ppm file %s: %w", path, err)
	}
	defer file.Close()

	header := fmt.Sprintf("P6\n%d %d\n255\n", f.Width, f.Height)
	if _, err := file.WriteString(header); err != nil {
		return fmt.Errorf("writing ppm header: %w", err)
	}

	body := make([]byte, 0, f.Width*f.Height*3)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.img.RGBAAt(x, y)
			body = append(body, c.R, c.G, c.B)
		}
	}
	if _, err := file.Write(body); err != nil {
		return fmt.Errorf("writing ppm body: %w", err)
	}
	return nil
}

// Palette assigns a display color to each distinct symbol observed in a
// wfc.SymbolGrid.
type Palette map[wfc.Symbol]color.RGBA

// defaultColors is the fixed list BuildPalette assigns from, so any grid can
// be rendered without the caller building a palette by hand.
var defaultColors = []color.RGBA{
	{230, 25, 75, 255},
	{60, 180, 75, 255},
	{255, 225, 25, 255},
	{0, 130, 200, 255},
	{245, 130, 48, 255},
	{145, 30, 180, 255},
	{70, 240, 240, 255},
	{240, 50, 230, 255},
}

// BuildPalette assigns each distinct symbol in grid a color, in order of
// first appearance, cycling defaultColors if there are more symbols than
// entries.
func BuildPalette(grid *wfc.SymbolGrid) Palette {
	pal := make(Palette)
	next := 0
	for _, s := range grid.Symbols() {
		if _, ok := pal[s]; ok {
			continue
		}
		pal[s] = defaultColors[next%len(defaultColors)]
		next++
	}
	return pal
}

// FrameFromSymbolGrid renders grid into a new Frame, one pixel per symbol,
// using pal to map symbols to colors (falling back to opaque black for any
// symbol pal does not cover).
func FrameFromSymbolGrid(grid *wfc.SymbolGrid, pal Palette) *Frame {
	f := NewFrame(grid.Cols, grid.Rows)
	for y := 0; y < grid.Rows; y++ {
		for x := 0; x < grid.Cols; x++ {
			s, _ := grid.At(x, y)
			c, ok := pal[s]
			if !ok {
				c = color.RGBA{A: 255}
			}
			f.img.SetRGBA(x, y, c)
		}
	}
	return f
}
