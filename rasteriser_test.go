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
	"bytes"
	"errors"
	"image"
	"image/draw"
	"log/slog"
	"math"
	"slices"
	"strings"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/scanfill/testcases"
)

var triangle = Polygon{{X: 128, Y: 20}, {X: 72, Y: 140}, {X: 156, Y: 140}}

// fillCanvas fills p with r into a new canvas of the rasteriser's size.
func fillCanvas(t *testing.T, r *Rasteriser, p Polygon) (*Canvas, *FillReport) {
	t.Helper()
	c, err := NewCanvas(r.Size())
	if err != nil {
		t.Fatal(err)
	}
	rep, err := r.Fill(p, c.SetRow)
	if err != nil {
		t.Fatal(err)
	}
	return c, rep
}

func TestTriangle(t *testing.T) {
	r, err := NewRasteriser(256, 256)
	if err != nil {
		t.Fatal(err)
	}
	c, rep := fillCanvas(t, r, triangle)

	if rep.Edges != 2 {
		t.Errorf("got %d edges, want 2", rep.Edges)
	}
	wantBounds := rect.Rect{LLx: 72, LLy: 20, URx: 156, URy: 140}
	if rep.Bounds != wantBounds {
		t.Errorf("got bounds %v, want %v", rep.Bounds, wantBounds)
	}

	for y := range 20 {
		if slices.ContainsFunc(c.Row(y), func(b byte) bool { return b != 0 }) {
			t.Errorf("row %d above the apex is not empty", y)
		}
	}

	// Row 20 is sampled at y=20.5, just below the apex.
	for x, b := range c.Row(20) {
		inApex := x == 127 || x == 128
		if inApex && b == 0 || !inApex && b != 0 {
			t.Errorf("row 20, pixel %d: coverage %d", x, b)
		}
	}

	row := c.Row(139)
	first, last := -1, -1
	for x, b := range row {
		if b == 0 {
			continue
		}
		if first < 0 {
			first = x
		}
		last = x
	}
	if first != 72 || last != 155 {
		t.Errorf("row 139: span [%d, %d], want [72, 155]", first, last)
	}
	if centre := float64(first+last) / 2; math.Abs(centre-114) > 1 {
		t.Errorf("row 139: span centred at %g", centre)
	}
	for x := first + 1; x < last; x++ {
		if row[x] != 255 {
			t.Errorf("row 139, pixel %d: coverage %d, want 255", x, row[x])
		}
	}

	for y := 140; y < 256; y++ {
		if slices.ContainsFunc(c.Row(y), func(b byte) bool { return b != 0 }) {
			t.Errorf("row %d below the base is not empty", y)
		}
	}
}

func TestRectangleExact(t *testing.T) {
	r, err := NewRasteriser(64, 64)
	if err != nil {
		t.Fatal(err)
	}
	p := Polygon{{X: 10, Y: 10}, {X: 44, Y: 10}, {X: 44, Y: 44}, {X: 10, Y: 44}}
	for _, ss := range []int{1, 2, 5, 16} {
		r.Subsample = ss
		c, _ := fillCanvas(t, r, p)
		full := byte(maxWeight(ss) * ss)
		for y := range 64 {
			for x := range 64 {
				want := byte(0)
				if x >= 10 && x < 44 && y >= 10 && y < 44 {
					want = full
				}
				if got := c.At(x, y); got != want {
					t.Fatalf("subsample %d: pixel (%d,%d) = %d, want %d",
						ss, x, y, got, want)
				}
			}
		}
	}
}

func TestDegenerate(t *testing.T) {
	polygons := []Polygon{
		nil,
		{{X: 5, Y: 5}},
		{{X: 5, Y: 5}, {X: 20, Y: 30}},
		{{X: 1, Y: 8}, {X: 9, Y: 8}, {X: 30, Y: 8}},
	}
	r, err := NewRasteriser(32, 32)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range polygons {
		c, rep := fillCanvas(t, r, p)
		if rep.Edges != 0 {
			t.Errorf("%d: got %d edges", i, rep.Edges)
		}
		if rep.Bounds != (rect.Rect{}) {
			t.Errorf("%d: got bounds %v", i, rep.Bounds)
		}
		if slices.ContainsFunc(c.Pix, func(b byte) bool { return b != 0 }) {
			t.Errorf("%d: canvas not empty", i)
		}
	}
}

func TestEmitOrder(t *testing.T) {
	r, err := NewRasteriser(16, 9)
	if err != nil {
		t.Fatal(err)
	}
	var rows []int
	_, err = r.Fill(nil, func(y int, coverage []byte) {
		if len(coverage) != 16 {
			t.Errorf("row %d has %d pixels", y, len(coverage))
		}
		rows = append(rows, y)
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}
	if !slices.Equal(rows, want) {
		t.Errorf("got rows %v, want %v", rows, want)
	}
}

func TestInvalidSettings(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, 5}} {
		_, err := NewRasteriser(size[0], size[1])
		if !errors.Is(err, ErrDimension) {
			t.Errorf("%dx%d: got error %v", size[0], size[1], err)
		}
	}

	r, err := NewRasteriser(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Reset(0, 0); !errors.Is(err, ErrDimension) {
		t.Errorf("Reset: got error %v", err)
	}
	if w, h := r.Size(); w != 10 || h != 10 {
		t.Errorf("failed Reset changed size to %dx%d", w, h)
	}

	r.Subsample = 0
	_, err = r.Fill(triangle, func(int, []byte) {})
	if !errors.Is(err, ErrSubsample) {
		t.Errorf("Fill: got error %v", err)
	}
	_, err = r.FillSorted(nil, func(int, []byte) {})
	if !errors.Is(err, ErrSubsample) {
		t.Errorf("FillSorted: got error %v", err)
	}
}

func TestEdgesSorted(t *testing.T) {
	r, err := NewRasteriser(256, 256)
	if err != nil {
		t.Fatal(err)
	}
	tc, _ := testcases.Lookup("fill_star")
	r.Transform = ExampleTransform(tc)
	edges := r.Edges(tc.Polygon)
	if len(edges) != 8 {
		t.Errorf("got %d edges, want 8", len(edges))
	}
	if !slices.IsSortedFunc(edges, func(a, b Edge) int {
		return cmpFloat(a.Y0, b.Y0)
	}) {
		t.Error("edges not sorted")
	}
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// TestConvexRows checks that every row of a convex polygon has a single
// run of covered pixels.
func TestConvexRows(t *testing.T) {
	for _, name := range testcases.Names() {
		tc, _ := testcases.Lookup(name)
		if !tc.Convex() {
			continue
		}
		t.Run(name, func(t *testing.T) {
			r, err := NewRasteriser(tc.Width, tc.Height)
			if err != nil {
				t.Fatal(err)
			}
			r.Transform = ExampleTransform(tc)
			r.Subsample = 1
			c, _ := fillCanvas(t, r, tc.Polygon)
			for y := range tc.Height {
				runs := 0
				inside := false
				for _, b := range c.Row(y) {
					if b != 0 && !inside {
						runs++
					}
					inside = b != 0
				}
				if runs > 1 {
					t.Errorf("row %d has %d runs", y, runs)
				}
			}
		})
	}
}

func TestWorkersIdentical(t *testing.T) {
	for _, name := range testcases.Names() {
		tc, _ := testcases.Lookup(name)
		t.Run(name, func(t *testing.T) {
			want := renderWorkers(t, tc, 1)
			for _, workers := range []int{2, 4, 7} {
				got := renderWorkers(t, tc, workers)
				if !bytes.Equal(got.Pix, want.Pix) {
					t.Errorf("%d workers: output differs", workers)
				}
			}
		})
	}
}

func renderWorkers(t *testing.T, tc testcases.TestCase, workers int) *Canvas {
	t.Helper()
	r, err := NewRasteriser(tc.Width, tc.Height)
	if err != nil {
		t.Fatal(err)
	}
	r.Transform = ExampleTransform(tc)
	r.Workers = workers
	c, _ := fillCanvas(t, r, tc.Polygon)
	return c
}

func TestWorkersExceedRows(t *testing.T) {
	r, err := NewRasteriser(256, 3)
	if err != nil {
		t.Fatal(err)
	}
	r.Workers = 10
	r.ShiftY = -60
	c, rep := fillCanvas(t, r, triangle)
	if rep.Edges != 2 {
		t.Errorf("got %d edges", rep.Edges)
	}
	for y := range 3 {
		if c.At(110, y) != 255 {
			t.Errorf("row %d not covered", y)
		}
	}
}

func TestPoolExhausted(t *testing.T) {
	r, err := NewRasteriser(256, 256)
	if err != nil {
		t.Fatal(err)
	}
	r.PoolGrow = func(int) bool { return false }
	c, rep := fillCanvas(t, r, triangle)

	if rep.SkippedEdges != 2 {
		t.Errorf("got %d skipped edges, want 2", rep.SkippedEdges)
	}
	if rep.Chunks != 0 {
		t.Errorf("got %d chunks, want 0", rep.Chunks)
	}
	if slices.ContainsFunc(c.Pix, func(b byte) bool { return b != 0 }) {
		t.Error("canvas not empty")
	}
}

func TestPoolPartlyExhausted(t *testing.T) {
	r, err := NewRasteriser(256, 256)
	if err != nil {
		t.Fatal(err)
	}
	r.poolChunk = 1
	grown := 0
	r.PoolGrow = func(records int) bool {
		if records != 1 {
			t.Errorf("asked for %d records", records)
		}
		grown++
		return grown <= 1
	}
	c, rep := fillCanvas(t, r, triangle)

	if rep.SkippedEdges != 1 {
		t.Errorf("got %d skipped edges, want 1", rep.SkippedEdges)
	}
	if rep.Chunks != 1 {
		t.Errorf("got %d chunks, want 1", rep.Chunks)
	}
	// a lone edge never closes a span
	if slices.ContainsFunc(c.Pix, func(b byte) bool { return b != 0 }) {
		t.Error("canvas not empty")
	}
}

func TestSmallChunks(t *testing.T) {
	tc, _ := testcases.Lookup("winding_pentagram")
	want := renderWorkers(t, tc, 1)

	r, err := NewRasteriser(tc.Width, tc.Height)
	if err != nil {
		t.Fatal(err)
	}
	r.Transform = ExampleTransform(tc)
	r.poolChunk = 1
	got, rep := fillCanvas(t, r, tc.Polygon)
	if !bytes.Equal(got.Pix, want.Pix) {
		t.Error("output differs with one record per chunk")
	}
	if rep.Chunks < 2 {
		t.Errorf("got %d chunks", rep.Chunks)
	}
}

func TestSkippedEdgeLogged(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	r, err := NewRasteriser(256, 256)
	if err != nil {
		t.Fatal(err)
	}
	r.PoolGrow = func(int) bool { return false }
	fillCanvas(t, r, triangle)

	out := buf.String()
	if n := strings.Count(out, "edge skipped"); n != 2 {
		t.Errorf("got %d skip messages, want 2:\n%s", n, out)
	}
	if !strings.Contains(out, "active edge pool exhausted") {
		t.Errorf("missing summary warning:\n%s", out)
	}
	if !strings.Contains(out, "level=DEBUG msg=fill") {
		t.Errorf("missing debug summary:\n%s", out)
	}
}

func TestNonFiniteEdge(t *testing.T) {
	r, err := NewRasteriser(64, 64)
	if err != nil {
		t.Fatal(err)
	}
	p := Polygon{{X: 10, Y: 10}, {X: math.Inf(1), Y: 30}, {X: 10, Y: 50}}
	c, _ := fillCanvas(t, r, p)
	if slices.ContainsFunc(c.Pix, func(b byte) bool { return b != 0 }) {
		t.Error("canvas not empty")
	}
}

// TestAgainstVector compares the covered area with the area computed by
// golang.org/x/image/vector.
func TestAgainstVector(t *testing.T) {
	for _, tc := range testcases.All["fill"] {
		t.Run(tc.Name, func(t *testing.T) {
			tr := ExampleTransform(tc)
			tr.Subsample = 1

			r, err := NewRasteriser(tc.Width, tc.Height)
			if err != nil {
				t.Fatal(err)
			}
			r.Transform = tr
			c, _ := fillCanvas(t, r, tc.Polygon)

			dst := fillVector(tc.Polygon, &tr, tc.Width, tc.Height)

			got := coverageArea(c.Pix)
			want := coverageArea(dst.Pix)
			if math.Abs(got-want) > 0.01*want+2 {
				t.Errorf("covered area %.1f, want %.1f", got, want)
			}
		})
	}
}

func fillVector(p Polygon, tr *Transform, width, height int) *image.Alpha {
	z := vector.NewRasterizer(width, height)
	z.DrawOp = draw.Src
	for i, v := range p {
		d := tr.Device(v)
		if i == 0 {
			z.MoveTo(float32(d.X), float32(d.Y))
		} else {
			z.LineTo(float32(d.X), float32(d.Y))
		}
	}
	z.ClosePath()
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

func coverageArea(pix []byte) float64 {
	sum := 0
	for _, b := range pix {
		sum += int(b)
	}
	return float64(sum) / 255
}

func TestDeviceMatchesEdges(t *testing.T) {
	tr := DefaultTransform
	tr.ScaleX = 2
	tr.ShiftY = 3
	tr.Subsample = 4
	p := Polygon{{X: 1, Y: 1}, {X: 5, Y: 9}, {X: 0, Y: 6}}
	edges := BuildEdges(p, tr)
	for _, e := range edges {
		found := false
		for _, v := range p {
			d := tr.Device(v)
			if d == (vec.Vec2{X: e.X0, Y: e.Y0 / 4}) {
				found = true
			}
		}
		if !found {
			t.Errorf("edge start (%g,%g) is not a device vertex", e.X0, e.Y0)
		}
	}
}
