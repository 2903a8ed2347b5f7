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

import "math"

// SampleDepth is the total number of samples taken per boundary pixel when
// estimating its coverage.
type SampleDepth int

const (
	Depth1  SampleDepth = 1
	Depth4  SampleDepth = 4
	Depth8  SampleDepth = 8
	Depth16 SampleDepth = 16
	Depth32 SampleDepth = 32
	Depth64 SampleDepth = 64
)

// gridShape picks the rows/cols factorization of n closest to square,
// preferring more columns than rows when n has no square factorization.
func gridShape(n int) (rows, cols int) {
	if n < 1 {
		n = 1
	}
	rows = int(math.Sqrt(float64(n)))
	if rows < 1 {
		rows = 1
	}
	for rows > 1 && n%rows != 0 {
		rows--
	}
	return rows, n / rows
}

// jitter returns a deterministic, seed-free pseudo-random value in [0,1)
// derived from i, used to perturb each stratified sample off its cell
// center so repeated calls at the same depth sample the same points.
func jitter(i int) float32 {
	v := math.Sin(float64(i)*12.9898) * 43758.5453
	_, frac := math.Modf(v)
	if frac < 0 {
		frac += 1
	}
	return float32(frac)
}

// coverage estimates the fraction of the unit pixel with lower-left corner
// pixel covered by the fill described by segments, using a deterministic
// depth-sample jittered grid laid out as close to square as depth allows,
// and an even-odd inside/outside test consistent with the region walk's
// own fill rule.
func coverage(pixel V2, depth SampleDepth, segments []Segment) float32 {
	n := int(depth)
	rows, cols := gridShape(n)

	var inside int
	idx := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			sx := pixel.X() + (float32(c) + jitter(2*idx)) / float32(cols)
			sy := pixel.Y() + (float32(r) + jitter(2*idx+1)) / float32(rows)
			if pointInside(sx, sy, segments) {
				inside++
			}
			idx++
		}
	}
	return float32(inside) / float32(rows*cols)
}

// pointInside tests whether (x,y) is inside the fill by casting a ray in
// the +x direction and counting segment crossings under the even-odd rule:
// a point is inside when an odd number of segments cross the ray. Samples
// landing exactly on an integer y are nudged by 0.5 to avoid grid-line
// ambiguity in the underlying SampleY; samples exactly on a segment count
// as inside.
func pointInside(x, y float32, segments []Segment) bool {
	if y == float32(math.Trunc(float64(y))) {
		y += 0.5
	}

	crossings := 0
	for _, seg := range segments {
		c, ok := seg.SampleY(y)
		if ok && c.Other == x {
			return true
		}
		if ok && c.Other >= x {
			crossings++
		}
	}
	return crossings%2 == 1
}
