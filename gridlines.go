// github.com/go-raster/region - a scanline region builder for 2D vector fills
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

package region

import (
	"iter"
	"math"
)

// GridLines enumerates the integer grid lines strictly inside a Bounds. It
// holds no cursor state, so the same value can be ranged over repeatedly or
// concurrently without reconstruction.
type GridLines struct {
	bounds Bounds
}

// NewGridLines returns the grid-line enumerator for b.
func NewGridLines(b Bounds) GridLines {
	return GridLines{bounds: b}
}

// Horizontal yields the integer y values with ceil(min.y) <= y <= floor(max.y),
// excluding min.y and max.y themselves when they are integers, in ascending
// order.
func (g GridLines) Horizontal() iter.Seq[int32] {
	return axisLines(g.bounds.Min.Y(), g.bounds.Max.Y())
}

// Vertical yields the integer x values with ceil(min.x) <= x <= floor(max.x),
// excluding min.x and max.x themselves when they are integers, in ascending
// order.
func (g GridLines) Vertical() iter.Seq[int32] {
	return axisLines(g.bounds.Min.X(), g.bounds.Max.X())
}

func axisLines(lo, hi float32) iter.Seq[int32] {
	return func(yield func(int32) bool) {
		if lo > hi {
			return
		}
		start := int32(math.Ceil(float64(lo)))
		end := int32(math.Floor(float64(hi)))
		for v := start; v <= end; v++ {
			if float32(v) == lo || float32(v) == hi {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}
