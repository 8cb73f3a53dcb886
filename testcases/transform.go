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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

var transformCases = []TestCase{
	// uniform scaling
	{
		Name:    "scale_2x",
		Polygon: rectangle(0, 0, 20, 20),
		Width:   128,
		Height:  128,
		CTM:     matrix.Scale(2, 2).Translate(24, 24),
	},
	{
		Name:    "scale_half",
		Polygon: rectangle(0, 0, 80, 80),
		Width:   64,
		Height:  64,
		CTM:     matrix.Scale(0.5, 0.5).Translate(12, 12),
	},

	// rotation
	{
		Name:      "rotate_45deg",
		Polygon:   rectangle(-10, -10, 10, 10),
		Width:     64,
		Height:    64,
		Subsample: 4,
		CTM:       matrix.RotateDeg(45).Translate(32, 32),
	},
	{
		Name:      "rotate_5deg",
		Polygon:   rectangle(-20, -10, 20, 10),
		Width:     64,
		Height:    64,
		Subsample: 4,
		CTM:       matrix.RotateDeg(5).Translate(32, 32),
	},

	// non-uniform scaling
	{
		Name:    "hexagon_to_ellipse",
		Polygon: regularPolygon(0, 0, 15, 24, 0),
		Width:   128,
		Height:  64,
		CTM:     matrix.Scale(2, 1).Translate(64, 32),
	},

	// shear
	{
		Name:      "shear_horizontal",
		Polygon:   rectangle(-15, -15, 15, 15),
		Width:     64,
		Height:    64,
		Subsample: 2,
		CTM:       matrix.Matrix{1, 0, 0.5, 1, 0, 0}.Translate(32, 32),
	},
	{
		Name:      "shear_and_rotate",
		Polygon:   rectangle(-12, -12, 12, 12),
		Width:     64,
		Height:    64,
		Subsample: 2,
		CTM:       matrix.Matrix{1, 0, 0.3, 1, 0, 0}.RotateDeg(30).Translate(32, 32),
	},

	// y-up input coordinates
	{
		Name:    "invert_y_triangle",
		Polygon: []vec.Vec2{pt(10, -10), pt(54, -20), pt(20, -54)},
		Width:   64,
		Height:  64,
		InvertY: true,
	},
}
