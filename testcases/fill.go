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
	"math"

	"seehuhn.de/go/geom/vec"
)

var fillCases = []TestCase{
	{
		Name:    "triangle",
		Polygon: []vec.Vec2{pt(128, 20), pt(72, 140), pt(156, 140)},
		Width:   256,
		Height:  256,
	},
	{
		Name:      "triangle_aa",
		Polygon:   []vec.Vec2{pt(128, 20), pt(72, 140), pt(156, 140)},
		Width:     256,
		Height:    256,
		Subsample: 5,
	},
	{
		Name:    "star",
		Polygon: demoStar(128, 20, 28),
		Width:   256,
		Height:  256,
	},
	{
		Name:      "star_aa",
		Polygon:   demoStar(128, 20, 28),
		Width:     256,
		Height:    256,
		Subsample: 16,
	},
	{
		Name:    "rectangle",
		Polygon: rectangle(10, 10, 44, 44),
		Width:   64,
		Height:  64,
	},
	{
		Name:      "hexagon",
		Polygon:   regularPolygon(32, 32, 25, 6, 0.1),
		Width:     64,
		Height:    64,
		Subsample: 4,
	},
	{
		Name:      "arrow",
		Polygon:   []vec.Vec2{pt(8, 24), pt(36, 24), pt(36, 10), pt(58, 32), pt(36, 54), pt(36, 40), pt(8, 40)},
		Width:     64,
		Height:    64,
		Subsample: 3,
	},
}

// demoStar builds a ten-vertex star whose top point is at (cx, top).
// The points spread d units per step.
func demoStar(cx, top, d float64) []vec.Vec2 {
	return []vec.Vec2{
		pt(cx, top),
		pt(cx-d, top+40),
		pt(cx-2*d, top+40),
		pt(cx-d, top+80),
		pt(cx-2*d, top+120),
		pt(cx, top+80),
		pt(cx+2*d, top+120),
		pt(cx+d, top+80),
		pt(cx+2*d, top+40),
		pt(cx+d, top+40),
	}
}

// rectangle builds an axis-aligned rectangle.
func rectangle(x1, y1, x2, y2 float64) []vec.Vec2 {
	return []vec.Vec2{pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2)}
}

// regularPolygon builds a regular n-gon around (cx, cy), rotated by phase
// radians.
func regularPolygon(cx, cy, r float64, n int, phase float64) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range n {
		angle := float64(i)*2*math.Pi/float64(n) + phase
		pts[i] = vec.Vec2{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return pts
}
