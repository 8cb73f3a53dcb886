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
	"encoding/json"
	"fmt"
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// JSONCase is the serialised form of a TestCase.
type JSONCase struct {
	Name      string       `json:"name"`
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	Subsample int          `json:"subsample,omitempty"`
	InvertY   bool         `json:"invert_y,omitempty"`
	CTM       []float64    `json:"ctm,omitempty"`
	Vertices  [][2]float64 `json:"vertices"`
}

// ToJSON converts tc to its serialised form, under the given name.
func ToJSON(name string, tc TestCase) JSONCase {
	jc := JSONCase{
		Name:      name,
		Width:     tc.Width,
		Height:    tc.Height,
		Subsample: tc.Subsample,
		InvertY:   tc.InvertY,
		Vertices:  make([][2]float64, len(tc.Polygon)),
	}
	if tc.CTM != (matrix.Matrix{}) && tc.CTM != matrix.Identity {
		jc.CTM = tc.CTM[:]
	}
	for i, v := range tc.Polygon {
		jc.Vertices[i] = [2]float64{v.X, v.Y}
	}
	return jc
}

// TestCase converts jc back to a TestCase.
func (jc *JSONCase) TestCase() (TestCase, error) {
	tc := TestCase{
		Name:      jc.Name,
		Width:     jc.Width,
		Height:    jc.Height,
		Subsample: jc.Subsample,
		InvertY:   jc.InvertY,
		Polygon:   make([]vec.Vec2, len(jc.Vertices)),
	}
	switch len(jc.CTM) {
	case 0:
		// identity
	case 6:
		copy(tc.CTM[:], jc.CTM)
	default:
		return TestCase{}, fmt.Errorf("%s: ctm has %d entries, want 6", jc.Name, len(jc.CTM))
	}
	for i, v := range jc.Vertices {
		tc.Polygon[i] = vec.Vec2{X: v[0], Y: v[1]}
	}
	return tc, nil
}

// ReadJSON decodes a single test case from r.
func ReadJSON(r io.Reader) (TestCase, error) {
	var jc JSONCase
	if err := json.NewDecoder(r).Decode(&jc); err != nil {
		return TestCase{}, fmt.Errorf("decoding polygon: %w", err)
	}
	return jc.TestCase()
}
