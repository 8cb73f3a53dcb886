// Package scanfill fills polygons using a scanline sweep and the nonzero
// winding rule.
//
// Polygon sides are turned into top-to-bottom edges, sorted by their top
// end, and swept down the image one sub-scanline at a time. Edges crossing
// the current sub-scanline are kept in an x-sorted active edge list whose
// nodes come from a free-list [Pool]. Coverage for each row is accumulated
// over [Transform.Subsample] sub-scanlines, with fractional coverage for
// pixels cut by an edge.
package scanfill

//go:generate go run ./testcases/export

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/scanfill/testcases"
)

// RenderExample renders a test case into a grayscale buffer.
// The buffer is in row-major order; every row of the canvas is written.
// Each byte represents coverage from 0 (outside) to 255 (inside).
func RenderExample(tc testcases.TestCase, buf []byte, width, height, stride int) (*FillReport, error) {
	r, err := NewRasteriser(width, height)
	if err != nil {
		return nil, err
	}
	if len(buf) < (height-1)*stride+width {
		return nil, fmt.Errorf("buffer of %d bytes too small for %dx%d, stride %d",
			len(buf), width, height, stride)
	}
	r.Transform = ExampleTransform(tc)

	return r.Fill(tc.Polygon, func(y int, coverage []byte) {
		copy(buf[y*stride:y*stride+width], coverage)
	})
}

// ExampleTransform returns the transform which maps the polygon of tc to
// device space.
func ExampleTransform(tc testcases.TestCase) Transform {
	t := DefaultTransform
	t.Subsample = max(tc.Subsample, 1)
	t.InvertY = tc.InvertY

	// zero-value means identity, which is already the default
	if tc.CTM != (matrix.Matrix{}) {
		t.CTM = tc.CTM
	}
	return t
}
