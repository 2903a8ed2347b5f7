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
	"math"
	"testing"
)

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func TestSegmentAtEndpoints(t *testing.T) {
	cases := []Segment{
		NewLine(NewV2(0, 0), NewV2(4, 2)),
		NewQuadratic(NewV2(0, 0), NewV2(2, 4), NewV2(4, 0)),
		NewCubic(NewV2(0, 0), NewV2(1, 3), NewV2(3, 3), NewV2(4, 0)),
	}
	for _, s := range cases {
		start, end := s.Bookends()
		if got := s.At(0); got != start {
			t.Errorf("At(0): got %v, want %v", got, start)
		}
		if got := s.At(1); got != end {
			t.Errorf("At(1): got %v, want %v", got, end)
		}
	}
}

func TestSegmentSampleYRoundTrip(t *testing.T) {
	cases := []Segment{
		NewLine(NewV2(0, 0), NewV2(4, 8)),
		NewQuadratic(NewV2(0, 0), NewV2(2, 4), NewV2(4, 8)),
		NewCubic(NewV2(0, 0), NewV2(1, 2), NewV2(3, 6), NewV2(4, 8)),
	}
	for _, s := range cases {
		for _, y := range []float32{1, 2, 3, 5, 7} {
			c, ok := s.SampleY(y)
			if !ok {
				t.Errorf("SampleY(%v): expected a crossing", y)
				continue
			}
			got := s.At(c.T)
			if !almostEqual(got.Y(), y) {
				t.Errorf("SampleY(%v): At(t).Y() = %v, want %v", y, got.Y(), y)
			}
			if !almostEqual(got.X(), c.Other) {
				t.Errorf("SampleY(%v): At(t).X() = %v, want Crossing.Other = %v", y, got.X(), c.Other)
			}
		}
	}
}

func TestSegmentSampleYOutsideBounds(t *testing.T) {
	s := NewLine(NewV2(0, 0), NewV2(1, 1))
	if _, ok := s.SampleY(5); ok {
		t.Error("SampleY outside the segment's y-extent should return ok == false")
	}
}

func TestSegmentSampleXRoundTrip(t *testing.T) {
	s := NewLine(NewV2(0, 0), NewV2(8, 4))
	for _, x := range []float32{1, 3, 6, 7} {
		c, ok := s.SampleX(x)
		if !ok {
			t.Errorf("SampleX(%v): expected a crossing", x)
			continue
		}
		got := s.At(c.T)
		if !almostEqual(got.X(), x) {
			t.Errorf("SampleX(%v): At(t).X() = %v, want %v", x, got.X(), x)
		}
	}
}

func TestSegmentBoundsQuadraticExtremum(t *testing.T) {
	// A quadratic whose control point pulls the curve above both endpoints.
	s := NewQuadratic(NewV2(0, 0), NewV2(2, 4), NewV2(4, 0))
	b := s.Bounds()
	if b.Max.Y() <= 0 {
		t.Errorf("Bounds.Max.Y() = %v, want > 0 (curve should bulge above the chord)", b.Max.Y())
	}
	if !almostEqual(b.Min.X(), 0) || !almostEqual(b.Max.X(), 4) {
		t.Errorf("Bounds x-extent: got [%v, %v], want [0, 4]", b.Min.X(), b.Max.X())
	}
}

func TestSolveLinearDegenerate(t *testing.T) {
	if _, ok := solveLinear(3, 3, 3); ok {
		t.Error("solveLinear on a constant function should report ok == false")
	}
}

func TestSolveBisectionMonotone(t *testing.T) {
	f := func(t float32) float32 { return t*t*t + t } // strictly increasing on [0,1]
	got, ok := solveBisection(f, 0.5)
	if !ok {
		t.Fatal("solveBisection: expected a root")
	}
	if !almostEqual(f(got), 0.5) {
		t.Errorf("solveBisection: f(%v) = %v, want 0.5", got, f(got))
	}
}
