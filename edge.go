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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Polygon is a closed ring of vertices. The last vertex connects back to
// the first.
type Polygon []vec.Vec2

// Bounds returns the bounding box of the vertices.
// The zero rectangle is returned for an empty polygon.
func (p Polygon) Bounds() rect.Rect {
	if len(p) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{LLx: p[0].X, LLy: p[0].Y, URx: p[0].X, URy: p[0].Y}
	for _, v := range p[1:] {
		b.LLx = min(b.LLx, v.X)
		b.LLy = min(b.LLy, v.Y)
		b.URx = max(b.URx, v.X)
		b.URy = max(b.URy, v.Y)
	}
	return b
}

// Transform maps polygon coordinates to device space.
//
// A vertex v is first mapped by CTM. The result is then scaled and shifted:
//
//	x' = x*ScaleX + ShiftX
//	y' = y*±ScaleY + ShiftY
//
// where ScaleY is negated if InvertY is set. Edges additionally have their
// y coordinates multiplied by Subsample, so that one unit in edge space is
// one sub-scanline.
type Transform struct {
	ScaleX, ScaleY float64
	ShiftX, ShiftY float64

	// InvertY flips the vertical axis, for polygons given in a y-up
	// coordinate system.
	InvertY bool

	// Subsample is the number of sub-scanlines per pixel row.
	// Values below 1 are treated as 1.
	Subsample int

	// CTM is applied to the vertices before scaling.
	// The zero value means identity.
	CTM matrix.Matrix
}

// DefaultTransform is the identity transform with one sub-scanline per row.
var DefaultTransform = Transform{
	ScaleX:    1,
	ScaleY:    1,
	Subsample: 1,
	CTM:       matrix.Identity,
}

func (t *Transform) applyCTM(v vec.Vec2) vec.Vec2 {
	m := t.CTM
	if m == (matrix.Matrix{}) || m == matrix.Identity {
		return v
	}
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

func (t *Transform) subsample() int {
	return max(t.Subsample, 1)
}

// Device maps a polygon vertex to device pixel coordinates.
func (t *Transform) Device(v vec.Vec2) vec.Vec2 {
	return t.scale(t.applyCTM(v))
}

// scale applies the scale and shift part of the transform to a point which
// has already been mapped by the CTM.
func (t *Transform) scale(v vec.Vec2) vec.Vec2 {
	sy := t.ScaleY
	if t.InvertY {
		sy = -sy
	}
	return vec.Vec2{
		X: v.X*t.ScaleX + t.ShiftX,
		Y: v.Y*sy + t.ShiftY,
	}
}

// Edge is a polygon side in edge space, stored top to bottom (Y0 <= Y1).
type Edge struct {
	X0, Y0 float64 // top end point
	X1, Y1 float64 // bottom end point

	// Invert records that the end points were swapped relative to the
	// polygon's vertex order.
	Invert bool
}

// Direction returns the winding contribution of the edge: +1 if the end
// points were swapped, -1 otherwise.
func (e *Edge) Direction() int {
	if e.Invert {
		return 1
	}
	return -1
}

// BuildEdges converts the sides of p into edges, dropping horizontal sides.
//
// Side k runs from vertex k to vertex k-1 (vertex 0 pairs with the last
// vertex). The returned slice has one edge per non-horizontal side and
// capacity len(p)+1, leaving room for an end marker. Polygons with fewer
// than three vertices give no edges.
func BuildEdges(p Polygon, t Transform) []Edge {
	if len(p) < 3 {
		return nil
	}
	edges := make([]Edge, 0, len(p)+1)
	return appendEdges(edges, p, &t)
}

// appendEdges appends the edges of p to edges.
func appendEdges(edges []Edge, p Polygon, t *Transform) []Edge {
	if len(p) < 3 {
		return edges
	}

	ss := float64(t.subsample())
	j := len(p) - 1
	prev := t.applyCTM(p[j])
	for k := range p {
		cur := t.applyCTM(p[k])
		a, b := cur, prev // start, end
		prev = cur

		if a.Y == b.Y {
			continue
		}

		invert := false
		if t.InvertY && b.Y > a.Y || !t.InvertY && b.Y < a.Y {
			a, b = b, a
			invert = true
		}

		a = t.scale(a)
		b = t.scale(b)
		edges = append(edges, Edge{
			X0:     a.X,
			Y0:     a.Y * ss,
			X1:     b.X,
			Y1:     b.Y * ss,
			Invert: invert,
		})
	}
	return edges
}

// isFinite reports whether all coordinates of e are finite.
func (e *Edge) isFinite() bool {
	for _, v := range [...]float64{e.X0, e.Y0, e.X1, e.Y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
