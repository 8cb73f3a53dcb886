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
	"log/slog"
	"math"
	"slices"

	"golang.org/x/sync/errgroup"
	"seehuhn.de/go/geom/rect"
)

// Rasteriser converts polygons to per-pixel coverage values, one row at a
// time, using the nonzero winding rule. Each row is sampled on Subsample
// sub-scanlines; pixels cut by an edge get partial coverage.
//
// Create one instance and reuse it for multiple polygons. The edge buffer
// grows as needed but never shrinks.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// Transform maps polygon vertices to device space.
	Transform

	// Workers is the number of row groups filled concurrently.
	// Values below 2 select a single sequential sweep.
	Workers int

	// PoolGrow, if set, is consulted whenever an active edge pool needs a
	// new chunk; see [Pool.Grow]. With Workers > 1 it may be called
	// concurrently.
	PoolGrow func(records int) bool

	width, height int

	edges []Edge

	// poolChunk overrides the number of records per pool chunk.
	poolChunk int
}

// FillReport describes the outcome of a fill operation.
type FillReport struct {
	// Edges is the number of non-horizontal edges.
	Edges int

	// SkippedEdges counts edges which could not be activated because the
	// active edge pool could not grow. With Workers > 1, each row group
	// counts its own failures.
	SkippedEdges int

	// Chunks is the number of pool chunks used, summed over row groups.
	Chunks int

	// Bounds is the bounding box of the edges in device pixels.
	// It is the zero rectangle if there are no edges.
	Bounds rect.Rect
}

// NewRasteriser returns a Rasteriser for a width×height target with the
// identity transform and one sub-scanline per row.
func NewRasteriser(width, height int) (*Rasteriser, error) {
	r := &Rasteriser{
		Transform: DefaultTransform,
		Workers:   1,
	}
	if err := r.Reset(width, height); err != nil {
		return nil, err
	}
	return r, nil
}

// Reset changes the target size. Other settings are kept.
func (r *Rasteriser) Reset(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%dx%d: %w", width, height, ErrDimension)
	}
	r.width = width
	r.height = height
	return nil
}

// Size returns the target width and height in pixels.
func (r *Rasteriser) Size() (width, height int) {
	return r.width, r.height
}

// Edges returns the edges of p under the current transform, sorted by Y0.
// The returned slice is newly allocated.
func (r *Rasteriser) Edges(p Polygon) []Edge {
	edges := BuildEdges(p, r.Transform)
	SortEdges(edges)
	return edges
}

// Fill rasterises p. The emit callback is called once for every row of
// the target, in order from top to bottom unless Workers > 1. Its slice
// argument is valid only during the call.
//
// With Workers > 1, emit is called concurrently for distinct rows.
func (r *Rasteriser) Fill(p Polygon, emit func(y int, coverage []byte)) (*FillReport, error) {
	if r.Subsample < 1 {
		return nil, fmt.Errorf("subsample %d: %w", r.Subsample, ErrSubsample)
	}

	r.edges = slices.Grow(r.edges[:0], len(p)+1)
	r.edges = appendEdges(r.edges, p, &r.Transform)
	SortEdges(r.edges)

	return r.FillSorted(r.edges, emit)
}

// FillSorted rasterises edges which have already been sorted by
// [SortEdges]. The edges must be given in edge space, i.e. with y
// coordinates multiplied by Subsample.
func (r *Rasteriser) FillSorted(edges []Edge, emit func(y int, coverage []byte)) (*FillReport, error) {
	if r.Subsample < 1 {
		return nil, fmt.Errorf("subsample %d: %w", r.Subsample, ErrSubsample)
	}

	rep := &FillReport{
		Edges:  len(edges),
		Bounds: edgeBounds(edges, r.Subsample),
	}

	groups := min(max(r.Workers, 1), r.height)
	if groups == 1 {
		pool := r.newPool()
		s := newSweep(edges, r.width, r.Subsample, pool)
		for y := range r.height {
			s.row(true)
			emit(y, s.scanline)
		}
		rep.SkippedEdges = s.skipped
		rep.Chunks = pool.Chunks()
		pool.Teardown()
	} else {
		skipped := make([]int, groups)
		chunks := make([]int, groups)

		var g errgroup.Group
		for i := range groups {
			yMin := i * r.height / groups
			yMax := (i + 1) * r.height / groups
			g.Go(func() error {
				pool := r.newPool()
				defer pool.Teardown()

				// Replay the rows above the group without computing
				// coverage, so that the active list matches the
				// sequential sweep exactly.
				s := newSweep(edges, r.width, r.Subsample, pool)
				for range yMin {
					s.row(false)
				}
				for y := yMin; y < yMax; y++ {
					s.row(true)
					emit(y, s.scanline)
				}
				skipped[i] = s.skipped
				chunks[i] = pool.Chunks()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		for i := range groups {
			rep.SkippedEdges += skipped[i]
			rep.Chunks += chunks[i]
		}
	}

	if rep.SkippedEdges > 0 {
		Logger().Warn("active edge pool exhausted",
			slog.Int("skipped", rep.SkippedEdges),
			slog.Int("edges", rep.Edges))
	}
	Logger().Debug("fill",
		slog.Int("edges", rep.Edges),
		slog.Int("width", r.width),
		slog.Int("height", r.height),
		slog.Int("subsample", r.Subsample),
		slog.Int("groups", groups),
		slog.Int("chunks", rep.Chunks))

	return rep, nil
}

func (r *Rasteriser) newPool() *Pool[activeEdge] {
	pool := NewPool[activeEdge]()
	pool.Grow = r.PoolGrow
	pool.ChunkRecords = r.poolChunk
	return pool
}

// edgeBounds returns the bounding box of edges in device pixels.
func edgeBounds(edges []Edge, subsample int) rect.Rect {
	if len(edges) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	ss := float64(max(subsample, 1))
	for i := range edges {
		e := &edges[i]
		b.LLx = min(b.LLx, e.X0, e.X1)
		b.URx = max(b.URx, e.X0, e.X1)
		b.LLy = min(b.LLy, e.Y0/ss)
		b.URy = max(b.URy, e.Y1/ss)
	}
	return b
}
