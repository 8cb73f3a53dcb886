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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single polygon filling test.
type TestCase struct {
	Name      string        // lowercase a-z, 0-9 and _ only
	Polygon   []vec.Vec2    // closed vertex ring
	Width     int           // canvas width in pixels
	Height    int           // canvas height in pixels
	Subsample int           // sub-scanlines per row (zero means 1)
	InvertY   bool          // polygon uses a y-up coordinate system
	CTM       matrix.Matrix // transformation matrix (zero-value means no transform)
}

// Convex reports whether the polygon of tc is convex, i.e. whether every
// horizontal line meets its interior in at most one interval. Star
// polygons, which turn in one direction but wind more than once, are not
// convex.
func (tc TestCase) Convex() bool {
	p := tc.Polygon
	n := len(p)
	if n < 3 {
		return false
	}
	sign := 0
	turn := 0.0
	for i := range n {
		a, b, c := p[i], p[(i+1)%n], p[(i+2)%n]
		u := b.Sub(a)
		v := c.Sub(b)
		cross := u.X*v.Y - u.Y*v.X
		switch {
		case cross > 0:
			if sign < 0 {
				return false
			}
			sign = 1
		case cross < 0:
			if sign > 0 {
				return false
			}
			sign = -1
		}
		turn += math.Atan2(cross, u.X*v.X+u.Y*v.Y)
	}
	return sign != 0 && math.Abs(math.Abs(turn)-2*math.Pi) < 1e-6
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
