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
	"log/slog"
	"math"
)

// activeEdge is an edge which crosses the current sub-scanline.
type activeEdge struct {
	next Handle
	x    fixed   // x intersection with the current sub-scanline
	dx   fixed   // change of x per sub-scanline
	ey   float64 // sub-scanline coordinate where the edge ends
	dir  int     // winding contribution, +1 or -1
}

// sweep holds the state of one top-to-bottom pass over a sorted edge list.
// Each sweep owns its pool and active list, so independent sweeps can run
// concurrently on the same edges.
type sweep struct {
	edges  []Edge // sorted by Y0; read only
	cursor int    // next edge not yet considered for activation
	y      int    // current sub-scanline

	pool   *Pool[activeEdge]
	active Handle

	subsample int
	weight    int
	scanline  []byte

	skipped int
}

func newSweep(edges []Edge, width, subsample int, pool *Pool[activeEdge]) *sweep {
	return &sweep{
		edges:     edges,
		pool:      pool,
		active:    NoHandle,
		subsample: subsample,
		weight:    maxWeight(subsample),
		scanline:  make([]byte, width),
	}
}

// row computes the coverage of the next pixel row into s.scanline.
// If fill is false, the active edge list is advanced without computing
// coverage.
func (s *sweep) row(fill bool) {
	if fill {
		clear(s.scanline)
	}

	if s.active == NoHandle && !s.startsBefore(s.y+s.subsample) {
		// nothing crosses this row
		s.y += s.subsample
		return
	}

	for range s.subsample {
		scanY := float64(s.y) + 0.5 // sample at the sub-scanline centre

		s.expireAndAdvance(scanY)
		s.resort()
		s.insert(scanY)

		if fill && s.active != NoHandle {
			fillActive(s.scanline, s.pool, s.active, s.weight)
		}
		s.y++
	}
}

// startsBefore reports whether the next unconsumed edge starts above
// sub-scanline y.
func (s *sweep) startsBefore(y int) bool {
	return s.cursor < len(s.edges) && s.edges[s.cursor].Y0 <= float64(y)-0.5
}

// expireAndAdvance removes the edges which end at or above scanY and moves
// the remaining edges down by one sub-scanline.
func (s *sweep) expireAndAdvance(scanY float64) {
	prev := NoHandle
	h := s.active
	for h != NoHandle {
		z := s.pool.Get(h)
		next := z.next
		if z.ey <= scanY {
			s.link(prev, next)
			s.pool.Release(h)
		} else {
			z.x += z.dx
			prev = h
		}
		h = next
	}
}

// resort restores x order in the active list. Edges move only a little
// between sub-scanlines, so the list is nearly sorted and a few bubble
// passes suffice.
func (s *sweep) resort() {
	for {
		changed := false
		prev := NoHandle
		h := s.active
		for h != NoHandle {
			t := s.pool.Get(h)
			if t.next == NoHandle {
				break
			}
			qh := t.next
			q := s.pool.Get(qh)
			if t.x > q.x {
				t.next = q.next
				q.next = h
				s.link(prev, qh)
				prev = qh
				changed = true
				continue
			}
			prev = h
			h = t.next
		}
		if !changed {
			break
		}
	}
}

// insert activates all edges which start at or above scanY. Edges which
// also end at or above scanY are consumed without being activated.
func (s *sweep) insert(scanY float64) {
	for s.cursor < len(s.edges) && s.edges[s.cursor].Y0 <= scanY {
		e := &s.edges[s.cursor]
		s.cursor++
		if e.Y1 <= scanY || !e.isFinite() {
			continue
		}

		h, err := s.newActive(e, scanY)
		if err != nil {
			s.skipped++
			Logger().Warn("edge skipped",
				slog.Float64("y0", e.Y0),
				slog.Float64("y1", e.Y1),
				slog.Any("err", err))
			continue
		}
		s.insertSorted(h)
	}
}

// newActive allocates an active edge for e, positioned on sub-scanline
// scanY.
func (s *sweep) newActive(e *Edge, scanY float64) (Handle, error) {
	h, err := s.pool.Alloc()
	if err != nil {
		return NoHandle, err
	}
	z := s.pool.Get(h)

	// round the slope towards zero, so that the edge never overshoots
	dxdy := (e.X1 - e.X0) / (e.Y1 - e.Y0)
	if dxdy < 0 {
		z.dx = -fixed(math.Floor(fixOne * -dxdy))
	} else {
		z.dx = fixed(math.Floor(fixOne * dxdy))
	}
	z.x = fixed(math.Floor(fixOne*e.X0 + float64(z.dx)*(scanY-e.Y0)))
	z.ey = e.Y1
	z.dir = e.Direction()
	z.next = NoHandle
	return h, nil
}

// insertSorted links the new edge h into the active list, after all edges
// with smaller x.
func (s *sweep) insertSorted(h Handle) {
	z := s.pool.Get(h)
	if s.active == NoHandle {
		s.active = h
		return
	}
	if z.x < s.pool.Get(s.active).x {
		z.next = s.active
		s.active = h
		return
	}

	p := s.pool.Get(s.active)
	for p.next != NoHandle {
		q := s.pool.Get(p.next)
		if q.x >= z.x {
			break
		}
		p = q
	}
	z.next = p.next
	p.next = h
}

// link makes next the successor of prev, or the list head if prev is
// NoHandle.
func (s *sweep) link(prev, next Handle) {
	if prev == NoHandle {
		s.active = next
	} else {
		s.pool.Get(prev).next = next
	}
}

// activeLen returns the number of edges in the active list.
func (s *sweep) activeLen() int {
	n := 0
	for h := s.active; h != NoHandle; h = s.pool.Get(h).next {
		n++
	}
	return n
}
