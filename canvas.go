// seehuhn.de/go/scanfill - scanline polygon filling
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scanfill

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// Canvas is a top-down grayscale coverage buffer with one byte per pixel.
// Its SetRow method can be passed directly to [Rasteriser.Fill].
type Canvas struct {
	Pix           []byte
	Width, Height int
}

// NewCanvas allocates a zeroed width×height canvas.
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas %dx%d: %w", width, height, ErrDimension)
	}
	return &Canvas{
		Pix:    make([]byte, width*height),
		Width:  width,
		Height: height,
	}, nil
}

// SetRow copies one row of coverage values into the canvas.
// Rows outside the canvas are ignored.
func (c *Canvas) SetRow(y int, coverage []byte) {
	if y < 0 || y >= c.Height {
		return
	}
	copy(c.Pix[y*c.Width:(y+1)*c.Width], coverage)
}

// Row returns row y of the canvas. The slice aliases the canvas memory.
func (c *Canvas) Row(y int) []byte {
	return c.Pix[y*c.Width : (y+1)*c.Width]
}

// At returns the coverage of pixel (x, y), or 0 outside the canvas.
func (c *Canvas) At(x, y int) byte {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return 0
	}
	return c.Pix[y*c.Width+x]
}

// Gray returns an image view of the canvas. The image shares the canvas
// memory.
func (c *Canvas) Gray() *image.Gray {
	return &image.Gray{
		Pix:    c.Pix,
		Stride: c.Width,
		Rect:   image.Rect(0, 0, c.Width, c.Height),
	}
}

// Colours for marking geometry on an [RGBCanvas].
var (
	Red   = color.RGBA{R: 255, A: 255}
	Green = color.RGBA{G: 255, A: 255}
	Blue  = color.RGBA{B: 255, A: 255}
)

// RGBCanvas is a colour image used to visualise edge geometry while
// debugging. It is not needed for filling.
type RGBCanvas struct {
	img *image.RGBA
}

// NewRGBCanvas allocates a black width×height canvas.
func NewRGBCanvas(width, height int) (*RGBCanvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas %dx%d: %w", width, height, ErrDimension)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	return &RGBCanvas{img: img}, nil
}

// Image returns the underlying image.
func (c *RGBCanvas) Image() *image.RGBA {
	return c.img
}

// SetRGB sets pixel (x, y) to col. Pixels outside the canvas are ignored.
func (c *RGBCanvas) SetRGB(x, y int, col color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return
	}
	c.img.SetRGBA(x, y, col)
}

// DrawLine draws a one pixel wide line from (x0, y0) to (x1, y1),
// including both end points.
func (c *RGBCanvas) DrawLine(x0, y0, x1, y1 int, col color.RGBA) {
	steep := false
	if abs(x0-x1) < abs(y0-y1) {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
		steep = true
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	limit := c.img.Rect.Dx()
	if steep {
		limit = c.img.Rect.Dy()
	}
	for x := max(x0, 0); x <= min(x1, limit-1); x++ {
		t := 0.0
		if x1 != x0 {
			t = float64(x-x0) / float64(x1-x0)
		}
		y := int(float64(y0)*(1-t) + float64(y1)*t)
		if steep {
			c.SetRGB(y, x, col)
		} else {
			c.SetRGB(x, y, col)
		}
	}
}

// DrawEdges draws the given edges. The edges are in edge space, so y
// coordinates are divided by subsample before drawing.
func (c *RGBCanvas) DrawEdges(edges []Edge, subsample int, col color.RGBA) {
	ss := float64(max(subsample, 1))
	for i := range edges {
		e := &edges[i]
		if !e.isFinite() {
			continue
		}
		c.DrawLine(
			int(math.Floor(e.X0)), int(math.Floor(e.Y0/ss)),
			int(math.Floor(e.X1)), int(math.Floor(e.Y1/ss)),
			col)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
