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

// sortThreshold is the partition size at and below which quicksort stops
// and leaves the rest to the final insertion sort.
const sortThreshold = 12

// SortEdges orders edges by ascending Y0, in place. The order of edges
// with equal Y0 is unspecified.
func SortEdges(edges []Edge) {
	quickSortEdges(edges)
	insertionSortEdges(edges)
}

// quickSortEdges partitions edges until every partition has at most
// sortThreshold elements. Partitions are ordered relative to each other
// but not sorted internally.
func quickSortEdges(edges []Edge) {
	for len(edges) > sortThreshold {
		n := len(edges)

		// median of three
		m := n >> 1
		c01 := edges[0].Y0 < edges[m].Y0
		c12 := edges[m].Y0 < edges[n-1].Y0
		if c01 != c12 {
			// edges[m] is not the median, swap in the one which is
			c := edges[0].Y0 < edges[n-1].Y0
			z := 0
			if c != c12 {
				z = n - 1
			}
			edges[z], edges[m] = edges[m], edges[z]
		}

		// move the pivot to the front, where the scans below cannot move it
		edges[0], edges[m] = edges[m], edges[0]
		pivot := edges[0].Y0

		i, j := 1, n-1
		for {
			for edges[i].Y0 < pivot {
				i++
			}
			for pivot < edges[j].Y0 {
				j--
			}
			if i >= j {
				break
			}
			edges[i], edges[j] = edges[j], edges[i]
			i++
			j--
		}

		// recurse on the smaller side, iterate on the larger
		if j < n-i {
			quickSortEdges(edges[:j])
			edges = edges[i:]
		} else {
			quickSortEdges(edges[i:])
			edges = edges[:j]
		}
	}
}

func insertionSortEdges(edges []Edge) {
	for i := 1; i < len(edges); i++ {
		t := edges[i]
		j := i
		for j > 0 && t.Y0 < edges[j-1].Y0 {
			edges[j] = edges[j-1]
			j--
		}
		if j != i {
			edges[j] = t
		}
	}
}
