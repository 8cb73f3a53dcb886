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

package testcases

import (
	"seehuhn.de/go/geom/vec"
)

// largeCases contains polygons with many rows and edges, to exercise the
// active edge list over long sweeps.
var largeCases = []TestCase{
	{
		Name:    "large_rectangle",
		Polygon: rectangle(50, 50, 462, 462),
		Width:   512,
		Height:  512,
	},
	{
		Name:      "large_diamond",
		Polygon:   diamond(256, 256, 180),
		Width:     512,
		Height:    512,
		Subsample: 4,
	},
	{
		Name:      "large_circle",
		Polygon:   regularPolygon(256, 256, 200, 256, 0),
		Width:     512,
		Height:    512,
		Subsample: 8,
	},
	{
		Name:    "large_comb",
		Polygon: comb(16, 480, 32, 32, 440),
		Width:   512,
		Height:  512,
	},

	// shape that extends outside the canvas
	{
		Name:      "large_clipped",
		Polygon:   rectangle(-100, 100, 612, 400),
		Width:     512,
		Height:    512,
		Subsample: 2,
	},
}

// diamond builds a square rotated by 45 degrees, with vertices at distance
// r from the centre.
func diamond(cx, cy, r float64) []vec.Vec2 {
	return []vec.Vec2{pt(cx, cy-r), pt(cx+r, cy), pt(cx, cy+r), pt(cx-r, cy)}
}

// comb builds a comb with its spine along the top, at (x, y) with the
// given total width, and teeth of width w pointing down to yBottom.
// Teeth and gaps alternate, so width should be an odd multiple of w.
func comb(x, width, y, w, yBottom float64) []vec.Vec2 {
	teeth := int(width/w+1) / 2
	pts := []vec.Vec2{pt(x, y), pt(x+width, y)}
	for i := teeth - 1; i >= 0; i-- {
		left := x + float64(2*i)*w
		pts = append(pts,
			pt(left+w, y+w),
			pt(left+w, yBottom),
			pt(left, yBottom),
			pt(left, y+w),
		)
	}
	return pts
}
