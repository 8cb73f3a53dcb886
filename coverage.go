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

// Fixed point format for active edge x positions: fixShift binary digits
// after the point.
const (
	fixShift = 10
	fixOne   = 1 << fixShift
	fixMask  = fixOne - 1
)

// fixed is a signed fixed-point number with fixShift fractional bits.
type fixed int

// pixel returns the index of the pixel containing x.
func (x fixed) pixel() int { return int(x >> fixShift) }

// frac returns the fractional part of x, in units of 1/fixOne.
func (x fixed) frac() int { return int(x & fixMask) }

// maxWeight returns the coverage one sub-scanline adds to a fully covered
// pixel. The sum over all sub-scanlines of a row stays at or below 255.
func maxWeight(subsample int) int {
	return 255 / subsample
}

// addSat adds v to *p, saturating at 255.
func addSat(p *byte, v int) {
	s := int(*p) + v
	if s > 255 {
		s = 255
	}
	*p = byte(s)
}

// fillActive adds the coverage of one sub-scanline to scanline, using the
// nonzero winding rule. The active list starting at h must be sorted by x.
func fillActive(scanline []byte, pool *Pool[activeEdge], h Handle, weight int) {
	var x0 fixed
	w := 0
	for h != NoHandle {
		e := pool.Get(h)
		if w == 0 {
			// entering the interior
			x0 = e.x
			w += e.dir
		} else {
			x1 := e.x
			w += e.dir
			if w == 0 {
				fillSpan(scanline, x0, x1, weight)
			}
		}
		h = e.next
	}
}

// fillSpan adds coverage for the interior span [x0, x1). Pixels cut by a
// span end get coverage proportional to the covered fraction. Parts of the
// span outside the scanline are clipped.
func fillSpan(scanline []byte, x0, x1 fixed, weight int) {
	n := len(scanline)
	i := x0.pixel()
	j := x1.pixel()
	if i >= n || j < 0 {
		return
	}

	if i == j {
		// both ends in the same pixel
		addSat(&scanline[i], int(x1-x0)*weight>>fixShift)
		return
	}

	if i >= 0 {
		addSat(&scanline[i], (fixOne-x0.frac())*weight>>fixShift)
	} else {
		i = -1
	}
	if j < n {
		addSat(&scanline[j], x1.frac()*weight>>fixShift)
	} else {
		j = n
	}
	for i++; i < j; i++ {
		addSat(&scanline[i], weight)
	}
}
