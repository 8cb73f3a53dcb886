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

// windingCases contain self-overlapping rings, where the nonzero rule
// differs from the even-odd rule.
var windingCases = []TestCase{
	{
		Name:      "pentagram",
		Polygon:   pentagram(32, 32, 25),
		Width:     64,
		Height:    64,
		Subsample: 4,
	},
	{
		// both loops run in the same direction, so the inner square is
		// filled
		Name:    "double_loop",
		Polygon: squareLoop(32, 32, 24, 10, false),
		Width:   64,
		Height:  64,
	},
	{
		// the inner loop runs backwards and cuts a hole
		Name:    "keyhole",
		Polygon: squareLoop(32, 32, 24, 10, true),
		Width:   64,
		Height:  64,
	},
	{
		Name:      "figure_eight",
		Polygon:   []vec.Vec2{pt(8, 8), pt(56, 56), pt(56, 8), pt(8, 56)},
		Width:     64,
		Height:    64,
		Subsample: 2,
	},
}

// pentagram builds a five-pointed star by connecting every second point of
// a regular pentagon. The centre pentagon has winding number two.
func pentagram(cx, cy, r float64) []vec.Vec2 {
	pts := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(2*i%5)*2*math.Pi/5 - math.Pi/2
		pts[i] = vec.Vec2{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return pts
}

// squareLoop builds a square of half size outer around (cx, cy) and,
// joined by a zero-width bridge, a square of half size inner. If reverse
// is set, the inner square is traversed in the opposite direction.
func squareLoop(cx, cy, outer, inner float64, reverse bool) []vec.Vec2 {
	pts := []vec.Vec2{
		pt(cx-outer, cy-outer),
		pt(cx+outer, cy-outer),
		pt(cx+outer, cy+outer),
		pt(cx-outer, cy+outer),
		pt(cx-outer, cy-outer),
	}
	in := []vec.Vec2{
		pt(cx-inner, cy-inner),
		pt(cx+inner, cy-inner),
		pt(cx+inner, cy+inner),
		pt(cx-inner, cy+inner),
	}
	if reverse {
		in = []vec.Vec2{in[0], in[3], in[2], in[1]}
	}
	pts = append(pts, in...)
	pts = append(pts, pt(cx-inner, cy-inner))
	return pts
}
