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

import "errors"

var (
	// ErrDimension is returned when a target image has a non-positive width
	// or height.
	ErrDimension = errors.New("scanfill: width and height must be positive")

	// ErrSubsample is returned when the vertical subsample count is less
	// than one.
	ErrSubsample = errors.New("scanfill: subsample must be at least 1")

	// ErrAllocation indicates that a [Pool] could not grow. The rasteriser
	// treats this as non-fatal: the affected edge is skipped and the
	// failure is counted in [FillReport].
	ErrAllocation = errors.New("scanfill: pool allocation failed")
)
