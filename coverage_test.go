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

import "testing"

func TestCoverageRange(t *testing.T) {
	segments := closedPolygon(NewV2(0, 0), NewV2(0, 5), NewV2(5, 0))
	for _, p := range []V2{NewV2(0, 0), NewV2(2, 2), NewV2(10, 10)} {
		c := coverage(p, Depth8, segments)
		if c < 0 || c > 1 {
			t.Errorf("coverage(%v) = %v, want value in [0,1]", p, c)
		}
	}
}

func TestCoverageFullyInsideIsOne(t *testing.T) {
	// A large square with the sample pixel well inside it.
	segments := closedPolygon(NewV2(0, 0), NewV2(0, 20), NewV2(20, 20), NewV2(20, 0))
	c := coverage(NewV2(10, 10), Depth16, segments)
	if c != 1 {
		t.Errorf("coverage in the interior = %v, want 1", c)
	}
}

func TestCoverageFullyOutsideIsZero(t *testing.T) {
	segments := closedPolygon(NewV2(0, 0), NewV2(0, 2), NewV2(2, 2), NewV2(2, 0))
	c := coverage(NewV2(100, 100), Depth16, segments)
	if c != 0 {
		t.Errorf("coverage far outside the shape = %v, want 0", c)
	}
}

func TestCoverageDepthOneSingleSample(t *testing.T) {
	// Depth1 takes exactly one (jittered) sample, so coverage must be
	// all-or-nothing: there is no partial fraction with a single sample.
	segments := closedPolygon(NewV2(0, 0), NewV2(0, 2), NewV2(2, 2), NewV2(2, 0))
	c := coverage(NewV2(0, 0), Depth1, segments)
	if c != 0 && c != 1 {
		t.Errorf("Depth1 coverage must be 0 or 1, got %v", c)
	}
}
