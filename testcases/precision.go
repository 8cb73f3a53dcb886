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

var precisionCases = []TestCase{
	// subpixel positioning
	{
		Name:      "subpixel_offset_00",
		Polygon:   offsetRectangle(20, 20, 24, 24, 0.0),
		Width:     64,
		Height:    64,
		Subsample: 4,
	},
	{
		Name:      "subpixel_offset_25",
		Polygon:   offsetRectangle(20, 20, 24, 24, 0.25),
		Width:     64,
		Height:    64,
		Subsample: 4,
	},
	{
		Name:      "subpixel_offset_50",
		Polygon:   offsetRectangle(20, 20, 24, 24, 0.5),
		Width:     64,
		Height:    64,
		Subsample: 4,
	},
	{
		Name:      "subpixel_offset_75",
		Polygon:   offsetRectangle(20, 20, 24, 24, 0.75),
		Width:     64,
		Height:    64,
		Subsample: 4,
	},

	// shapes thinner than a pixel
	{
		Name:      "sliver",
		Polygon:   []vec.Vec2{pt(5, 30), pt(59, 31), pt(5, 30.6)},
		Width:     64,
		Height:    64,
		Subsample: 8,
	},
	{
		Name:      "narrow_column",
		Polygon:   rectangle(31.2, 8, 31.7, 56),
		Width:     64,
		Height:    64,
		Subsample: 2,
	},

	// large coordinates, moved back onto the canvas
	{
		Name:    "large_coord_centered",
		Polygon: rectangle(990, 990, 1010, 1010),
		Width:   64,
		Height:  64,
		CTM:     matrix.Matrix{1, 0, 0, 1, 32 - 1000, 32 - 1000},
	},
	{
		Name:      "small_shape_large_offset",
		Polygon:   rectangle(9999, 9999, 10001, 10001),
		Width:     64,
		Height:    64,
		Subsample: 4,
		CTM:       matrix.Matrix{1, 0, 0, 1, 32 - 10000, 32 - 10000},
	},
	{
		Name:    "float64_precision",
		Polygon: float64PrecisionShape(),
		Width:   64,
		Height:  64,
	},
}

// offsetRectangle builds a rectangle with a subpixel offset applied to all
// coordinates.
func offsetRectangle(x1, y1, w, h, offset float64) []vec.Vec2 {
	return rectangle(x1+offset, y1+offset, x1+w+offset, y1+h+offset)
}

// float64PrecisionShape builds a shape using coordinates that require
// full float64 precision to represent accurately.
func float64PrecisionShape() []vec.Vec2 {
	// these values differ only in the low bits of float64
	base := 32.0
	delta1 := 0.123456789012345
	delta2 := 0.123456789012346

	return rectangle(base-10+delta1, base-10+delta1, base+10+delta2, base+10+delta2)
}
