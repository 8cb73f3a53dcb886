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
	"maps"
	"slices"
	"strings"
)

// All contains all test cases, grouped by category.
// The category name is used as a prefix in reference file names.
var All = map[string][]TestCase{
	"fill":      fillCases,
	"transform": transformCases,
	"precision": precisionCases,
	"large":     largeCases,
	"winding":   windingCases,
}

// Lookup finds a test case by its full name, "<category>_<name>".
func Lookup(fullName string) (TestCase, bool) {
	for _, category := range slices.Sorted(maps.Keys(All)) {
		name, ok := strings.CutPrefix(fullName, category+"_")
		if !ok {
			continue
		}
		for _, tc := range All[category] {
			if tc.Name == name {
				return tc, true
			}
		}
	}
	return TestCase{}, false
}

// Names returns the full names of all test cases, in sorted order.
func Names() []string {
	var names []string
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, tc := range All[category] {
			names = append(names, category+"_"+tc.Name)
		}
	}
	return names
}
